package tensor

import "fmt"

// Infer marks one reshape dimension to be derived from the element count.
const Infer = -1

// Reshape relabels the tensor to a new shape with the same element count.
// The buffer order is untouched; only the shape and its cumulative
// products are rebuilt.
//
// At most one dimension may be Infer (-1); it resolves to
// NumElements()/product(others) when that divides evenly. Zero or
// otherwise negative dimensions, a second Infer, or a mismatched product
// fail with ErrInvalidReshape. Frozen tensors fail with ErrFrozen.
//
// Example:
//
//	t, _ := tensor.Sequence[int32](tensor.Shape{2, 6})
//	err := t.Reshape(tensor.Infer, 3) // shape (4, 3), same buffer
func (t *Tensor[T]) Reshape(dims ...int) error {
	if t.frozen {
		return fmt.Errorf("%w: reshape", ErrFrozen)
	}

	known := 1
	inferAt := -1
	for i, dim := range dims {
		switch {
		case dim == Infer:
			if inferAt >= 0 {
				return fmt.Errorf("%w: more than one inferred dimension in %v", ErrInvalidReshape, dims)
			}
			inferAt = i
		case dim <= 0:
			return fmt.Errorf("%w: dimension %d is %d", ErrInvalidReshape, i, dim)
		default:
			known *= dim
		}
	}

	target := Shape(dims).Clone()
	if inferAt >= 0 {
		if len(t.data)%known != 0 {
			return fmt.Errorf("%w: cannot infer dimension, %d elements not divisible by %d",
				ErrInvalidReshape, len(t.data), known)
		}
		target[inferAt] = len(t.data) / known
	} else if known != len(t.data) {
		return fmt.Errorf("%w: shape %v has %d elements, tensor has %d",
			ErrInvalidReshape, target, known, len(t.data))
	}

	t.updateShape(target)
	return nil
}

// Resize changes the shape, reallocating the buffer when the element
// count changes. Existing elements are preserved in flat order; growth
// zero-fills the new trailing positions, shrinking truncates them.
func (t *Tensor[T]) Resize(shape Shape) error {
	if t.frozen {
		return fmt.Errorf("%w: resize", ErrFrozen)
	}
	if err := shape.Validate(); err != nil {
		return err
	}
	if n := shape.NumElements(); n != len(t.data) {
		resized := make([]T, n)
		copy(resized, t.data)
		t.data = resized
	}
	t.updateShape(shape.Clone())
	return nil
}

// Squeeze removes all axes of size 1, rebuilding the shape. A tensor
// whose axes are all 1 becomes a scalar.
func (t *Tensor[T]) Squeeze() error {
	if t.frozen {
		return fmt.Errorf("%w: squeeze", ErrFrozen)
	}
	squeezed := make(Shape, 0, len(t.shape))
	for _, dim := range t.shape {
		if dim != 1 {
			squeezed = append(squeezed, dim)
		}
	}
	t.updateShape(squeezed)
	return nil
}

// Flatten returns a new 1-D tensor with a copy of the buffer.
func (t *Tensor[T]) Flatten() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return fromParts(Shape{len(data)}, data, t.config)
}

// Ravel reshapes the tensor to 1-D in place.
func (t *Tensor[T]) Ravel() error {
	if t.frozen {
		return fmt.Errorf("%w: ravel", ErrFrozen)
	}
	t.updateShape(Shape{len(t.data)})
	return nil
}

// SwapAxes exchanges two axes, physically permuting the buffer so that
// row-major addressing stays valid for every subsequent operation. (A
// metadata-only swap would break the stride formula for rank > 2.)
func (t *Tensor[T]) SwapAxes(i, j int) error {
	if t.frozen {
		return fmt.Errorf("%w: swap axes", ErrFrozen)
	}
	if i < 0 || i >= len(t.shape) {
		return fmt.Errorf("%w: axis %d of %d", ErrAxis, i, len(t.shape))
	}
	if j < 0 || j >= len(t.shape) {
		return fmt.Errorf("%w: axis %d of %d", ErrAxis, j, len(t.shape))
	}
	if i == j {
		return nil
	}

	swapped := t.shape.Clone()
	swapped[i], swapped[j] = swapped[j], swapped[i]

	oldStrides := t.shape.ComputeStrides()
	permuted := make([]T, len(t.data))
	idx := make([]int, len(swapped))
	si := 0
	// Walk the new layout in row-major order, reading from the old
	// layout with axes i and j exchanged.
	newStrides := make([]int, len(swapped))
	copy(newStrides, oldStrides)
	newStrides[i], newStrides[j] = oldStrides[j], oldStrides[i]
	for oi := range permuted {
		permuted[oi] = t.data[si]
		for ax := len(swapped) - 1; ax >= 0; ax-- {
			idx[ax]++
			si += newStrides[ax]
			if idx[ax] < swapped[ax] {
				break
			}
			idx[ax] = 0
			si -= newStrides[ax] * swapped[ax]
		}
	}

	t.data = permuted
	t.updateShape(swapped)
	return nil
}

// Gather selects elements of the flat buffer by position.
//
// indices must be 1-dimensional (ErrOpUndefined otherwise); every index
// must be inside [0, NumElements()) (ErrIndex otherwise). The selected
// elements are returned as a new 1-D tensor in index order.
func (t *Tensor[T]) Gather(indices *Tensor[int64]) (*Tensor[T], error) {
	if indices.Dimension() != 1 {
		return nil, fmt.Errorf("%w: gather index tensor must be 1-dimensional, got shape %v",
			ErrOpUndefined, indices.Shape())
	}
	out := make([]T, len(indices.data))
	for i, idx := range indices.data {
		if idx < 0 || int(idx) >= len(t.data) {
			return nil, fmt.Errorf("%w: gather index %d, max indexable is %d",
				ErrIndex, idx, len(t.data)-1)
		}
		out[i] = t.data[idx]
	}
	return fromParts(Shape{len(out)}, out, t.config), nil
}

// CopyTo copies this tensor's shape and elements into target. When the
// element counts differ and allowResize is false it fails with
// ErrSizeMismatch; otherwise the target is resized to this tensor's
// shape first.
func (t *Tensor[T]) CopyTo(target *Tensor[T], allowResize bool) error {
	if !allowResize && len(target.data) != len(t.data) {
		return fmt.Errorf("%w: target has %d elements, source has %d and resize not allowed",
			ErrSizeMismatch, len(target.data), len(t.data))
	}
	if !target.shape.Equal(t.shape) {
		if err := target.Resize(t.shape); err != nil {
			return err
		}
	}
	copy(target.data, t.data)
	return nil
}

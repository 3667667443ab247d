package tensor

import "fmt"

// ReduceAll is the axis sentinel that reduces the whole tensor to a
// scalar.
const ReduceAll = -1

// Mask is a boolean tensor produced by the axis variants of All and Any.
// It carries a shape but no arithmetic; the numeric element constraint
// keeps bool out of Tensor itself.
type Mask struct {
	shape Shape
	data  []bool
}

// Shape returns the mask's shape.
func (m *Mask) Shape() Shape { return m.shape }

// Data returns the mask's flat buffer in row-major order.
func (m *Mask) Data() []bool { return m.data }

// checkAxis validates a concrete (non-sentinel) axis.
func (t *Tensor[T]) checkAxis(axis int) error {
	if axis < 0 || axis >= len(t.shape) {
		return fmt.Errorf("%w: axis %d for shape %v", ErrAxis, axis, t.shape)
	}
	return nil
}

// reducedShape returns the shape with the given axis removed.
func reducedShape(s Shape, axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	for i, dim := range s {
		if i != axis {
			out = append(out, dim)
		}
	}
	return out
}

// AxisGroups partitions the buffer into the ordered groups that vary only
// along axis: one group per fixed combination of the remaining axes, with
// the remaining axes enumerated in row-major order. Each group holds the
// values obtained by varying axis from 0 to shape[axis]-1.
//
// Folding each group to one value and laying the results out in group
// order yields exactly the row-major buffer of the axis-removed shape;
// every axis reduction below relies on that.
func (t *Tensor[T]) AxisGroups(axis int) ([][]T, error) {
	if err := t.checkAxis(axis); err != nil {
		return nil, err
	}
	if len(t.data) == 0 {
		return nil, fmt.Errorf("%w: axis grouping over empty tensor of shape %v",
			ErrOpUndefined, t.shape)
	}

	strides := t.shape.ComputeStrides()
	axisSize := t.shape[axis]
	axisStride := strides[axis]

	rest := reducedShape(t.shape, axis)
	restStrides := make([]int, 0, len(rest))
	for i, s := range strides {
		if i != axis {
			restStrides = append(restStrides, s)
		}
	}

	groupCount := len(t.data) / axisSize
	groups := make([][]T, 0, groupCount)
	idx := make([]int, len(rest))
	base := 0
	for g := 0; g < groupCount; g++ {
		group := make([]T, axisSize)
		for k := 0; k < axisSize; k++ {
			group[k] = t.data[base+k*axisStride]
		}
		groups = append(groups, group)

		for ax := len(rest) - 1; ax >= 0; ax-- {
			idx[ax]++
			base += restStrides[ax]
			if idx[ax] < rest[ax] {
				break
			}
			idx[ax] = 0
			base -= restStrides[ax] * rest[ax]
		}
	}
	return groups, nil
}

// reduce folds the whole buffer (axis == ReduceAll, scalar result) or
// each axis group (axis removed from the result shape). Empty tensors
// (a zero-extent slice result) have no elements to fold and fail with
// ErrOpUndefined rather than producing a partial value.
func reduce[T, R DType](t *Tensor[T], axis int, fold func([]T) R) (*Tensor[R], error) {
	if len(t.data) == 0 {
		return nil, fmt.Errorf("%w: reduction over empty tensor of shape %v",
			ErrOpUndefined, t.shape)
	}
	if axis == ReduceAll {
		return fromParts(Shape{}, []R{fold(t.data)}, t.config), nil
	}
	groups, err := t.AxisGroups(axis)
	if err != nil {
		return nil, err
	}
	out := make([]R, len(groups))
	for i, g := range groups {
		out[i] = fold(g)
	}
	return fromParts(reducedShape(t.shape, axis), out, t.config), nil
}

// Sum reduces by addition. axis == ReduceAll yields a scalar tensor;
// otherwise the result drops the given axis.
//
// Example:
//
//	t, _ := tensor.Sequence[int64](tensor.Shape{2, 3})
//	s, _ := t.Sum(tensor.ReduceAll)
//	v, _ := s.Item() // 15
func (t *Tensor[T]) Sum(axis int) (*Tensor[T], error) {
	return reduce(t, axis, func(g []T) T {
		var acc T
		for _, v := range g {
			acc += v
		}
		return acc
	})
}

// Mean reduces to the arithmetic mean. Integer element types truncate.
func (t *Tensor[T]) Mean(axis int) (*Tensor[T], error) {
	return reduce(t, axis, func(g []T) T {
		acc := 0.0
		for _, v := range g {
			acc += float64(v)
		}
		return T(acc / float64(len(g)))
	})
}

// Max reduces to the largest element.
func (t *Tensor[T]) Max(axis int) (*Tensor[T], error) {
	return reduce(t, axis, func(g []T) T {
		best := g[0]
		for _, v := range g[1:] {
			if v > best {
				best = v
			}
		}
		return best
	})
}

// Min reduces to the smallest element.
func (t *Tensor[T]) Min(axis int) (*Tensor[T], error) {
	return reduce(t, axis, func(g []T) T {
		best := g[0]
		for _, v := range g[1:] {
			if v < best {
				best = v
			}
		}
		return best
	})
}

// Argmax reduces to the index of the largest element: the flat index for
// ReduceAll, the position along the axis otherwise. Ties keep the first
// occurrence.
func (t *Tensor[T]) Argmax(axis int) (*Tensor[int64], error) {
	return reduce(t, axis, func(g []T) int64 {
		best := 0
		for i, v := range g {
			if v > g[best] {
				best = i
			}
		}
		return int64(best)
	})
}

// Argmin reduces to the index of the smallest element, like Argmax.
func (t *Tensor[T]) Argmin(axis int) (*Tensor[int64], error) {
	return reduce(t, axis, func(g []T) int64 {
		best := 0
		for i, v := range g {
			if v < g[best] {
				best = i
			}
		}
		return int64(best)
	})
}

// Variance reduces to the population variance, accumulated in float64
// and cast back to T.
func (t *Tensor[T]) Variance(axis int) (*Tensor[T], error) {
	return reduce(t, axis, func(g []T) T {
		mean := 0.0
		for _, v := range g {
			mean += float64(v)
		}
		mean /= float64(len(g))
		acc := 0.0
		for _, v := range g {
			d := float64(v) - mean
			acc += d * d
		}
		return T(acc / float64(len(g)))
	})
}

// PeakToPeak reduces to max minus min.
func (t *Tensor[T]) PeakToPeak(axis int) (*Tensor[T], error) {
	return reduce(t, axis, func(g []T) T {
		lo, hi := g[0], g[0]
		for _, v := range g[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		return hi - lo
	})
}

// CumSum reduces each group to its final accumulated sum. Under the
// reduction contract (axis removed, one value per group) this is the
// running sum folded to its last element.
func (t *Tensor[T]) CumSum(axis int) (*Tensor[T], error) {
	return t.Sum(axis)
}

// CumProd reduces each group to its final accumulated product.
func (t *Tensor[T]) CumProd(axis int) (*Tensor[T], error) {
	return reduce(t, axis, func(g []T) T {
		acc := T(1)
		for _, v := range g {
			acc *= v
		}
		return acc
	})
}

// All reports whether pred holds for every element.
func (t *Tensor[T]) All(pred func(T) bool) bool {
	for _, v := range t.data {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element.
func (t *Tensor[T]) Any(pred func(T) bool) bool {
	for _, v := range t.data {
		if pred(v) {
			return true
		}
	}
	return false
}

// AllAxis evaluates All per group along the axis, returning a boolean
// mask with that axis removed.
func (t *Tensor[T]) AllAxis(pred func(T) bool, axis int) (*Mask, error) {
	groups, err := t.AxisGroups(axis)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(groups))
	for i, g := range groups {
		out[i] = true
		for _, v := range g {
			if !pred(v) {
				out[i] = false
				break
			}
		}
	}
	return &Mask{shape: reducedShape(t.shape, axis), data: out}, nil
}

// AnyAxis evaluates Any per group along the axis, returning a boolean
// mask with that axis removed.
func (t *Tensor[T]) AnyAxis(pred func(T) bool, axis int) (*Mask, error) {
	groups, err := t.AxisGroups(axis)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(groups))
	for i, g := range groups {
		for _, v := range g {
			if pred(v) {
				out[i] = true
				break
			}
		}
	}
	return &Mask{shape: reducedShape(t.shape, axis), data: out}, nil
}

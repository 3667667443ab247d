package tensor

import "fmt"

// isIntegral reports whether T is an integer element type. Integer
// division by zero is a reported failure; floating-point division
// follows IEEE semantics.
func isIntegral[T DType]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return false
	default:
		return true
	}
}

// align resolves the operand buffers and result shape for a binary
// operation. Identical shapes pass through; mismatched shapes broadcast
// when both configurations allow it.
func align[T DType](a, b *Tensor[T]) (lhs, rhs []T, shape Shape, err error) {
	if a.shape.Equal(b.shape) {
		return a.data, b.data, a.shape.Clone(), nil
	}
	if !a.config.Broadcastable || !b.config.Broadcastable {
		return nil, nil, nil, fmt.Errorf("%w: %v vs %v and broadcasting disabled by configuration",
			ErrShapeMismatch, a.shape, b.shape)
	}
	unified, err := Broadcast(a.shape, b.shape)
	if err != nil {
		return nil, nil, nil, err
	}
	return expand(a, unified), expand(b, unified), unified, nil
}

// Add returns the element-wise sum, broadcasting mismatched shapes when
// both configurations allow it.
//
// Example:
//
//	a, _ := tensor.Sequence[int64](tensor.Shape{3})
//	b, _ := tensor.Sequence[int64](tensor.Shape{3})
//	c, _ := a.Add(b) // [0 2 4]
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	lhs, rhs, shape, err := align(t, other)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(lhs))
	for i := range out {
		out[i] = lhs[i] + rhs[i]
	}
	return fromParts(shape, out, t.config), nil
}

// Sub returns the element-wise difference, broadcasting like Add.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	lhs, rhs, shape, err := align(t, other)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(lhs))
	for i := range out {
		out[i] = lhs[i] - rhs[i]
	}
	return fromParts(shape, out, t.config), nil
}

// Mul returns the element-wise product, broadcasting like Add.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	lhs, rhs, shape, err := align(t, other)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(lhs))
	for i := range out {
		out[i] = lhs[i] * rhs[i]
	}
	return fromParts(shape, out, t.config), nil
}

// Div returns the element-wise quotient, broadcasting like Add.
// For integer element types a zero divisor fails with ErrArithmetic
// before any element is written; floating-point division by zero yields
// IEEE infinities and NaNs.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	lhs, rhs, shape, err := align(t, other)
	if err != nil {
		return nil, err
	}
	if isIntegral[T]() {
		for i, v := range rhs {
			if v == 0 {
				return nil, fmt.Errorf("%w: divisor element at flat index %d", ErrArithmetic, i)
			}
		}
	}
	out := make([]T, len(lhs))
	for i := range out {
		out[i] = lhs[i] / rhs[i]
	}
	return fromParts(shape, out, t.config), nil
}

// AddScalar returns a new tensor with scalar added to every element.
func (t *Tensor[T]) AddScalar(scalar T) *Tensor[T] {
	out := make([]T, len(t.data))
	for i, v := range t.data {
		out[i] = v + scalar
	}
	return fromParts(t.shape.Clone(), out, t.config)
}

// SubScalar returns a new tensor with scalar subtracted from every element.
func (t *Tensor[T]) SubScalar(scalar T) *Tensor[T] {
	out := make([]T, len(t.data))
	for i, v := range t.data {
		out[i] = v - scalar
	}
	return fromParts(t.shape.Clone(), out, t.config)
}

// MulScalar returns a new tensor with every element multiplied by scalar.
func (t *Tensor[T]) MulScalar(scalar T) *Tensor[T] {
	out := make([]T, len(t.data))
	for i, v := range t.data {
		out[i] = v * scalar
	}
	return fromParts(t.shape.Clone(), out, t.config)
}

// DivScalar returns a new tensor with every element divided by scalar.
// A zero integer scalar fails with ErrArithmetic.
func (t *Tensor[T]) DivScalar(scalar T) (*Tensor[T], error) {
	if isIntegral[T]() && scalar == 0 {
		return nil, fmt.Errorf("%w: scalar divisor", ErrArithmetic)
	}
	out := make([]T, len(t.data))
	for i, v := range t.data {
		out[i] = v / scalar
	}
	return fromParts(t.shape.Clone(), out, t.config), nil
}

// requireSameShape guards the compound in-place operations, which never
// broadcast.
func (t *Tensor[T]) requireSameShape(other *Tensor[T]) error {
	if !t.shape.Equal(other.shape) {
		return fmt.Errorf("%w: in-place operation needs %v, got %v",
			ErrShapeMismatch, t.shape, other.shape)
	}
	return nil
}

// AddInPlace adds other into the receiver element-wise and returns the
// receiver. Shapes must match exactly; in-place operations never
// broadcast. Permitted while frozen.
func (t *Tensor[T]) AddInPlace(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.requireSameShape(other); err != nil {
		return nil, err
	}
	for i, v := range other.data {
		t.data[i] += v
	}
	return t, nil
}

// SubInPlace subtracts other from the receiver element-wise.
func (t *Tensor[T]) SubInPlace(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.requireSameShape(other); err != nil {
		return nil, err
	}
	for i, v := range other.data {
		t.data[i] -= v
	}
	return t, nil
}

// MulInPlace multiplies the receiver by other element-wise.
func (t *Tensor[T]) MulInPlace(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.requireSameShape(other); err != nil {
		return nil, err
	}
	for i, v := range other.data {
		t.data[i] *= v
	}
	return t, nil
}

// DivInPlace divides the receiver by other element-wise. Integer zero
// divisors fail with ErrArithmetic before any element is written.
func (t *Tensor[T]) DivInPlace(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.requireSameShape(other); err != nil {
		return nil, err
	}
	if isIntegral[T]() {
		for i, v := range other.data {
			if v == 0 {
				return nil, fmt.Errorf("%w: divisor element at flat index %d", ErrArithmetic, i)
			}
		}
	}
	for i, v := range other.data {
		t.data[i] /= v
	}
	return t, nil
}

// AddScalarInPlace adds scalar to every element and returns the receiver.
func (t *Tensor[T]) AddScalarInPlace(scalar T) *Tensor[T] {
	for i := range t.data {
		t.data[i] += scalar
	}
	return t
}

// SubScalarInPlace subtracts scalar from every element.
func (t *Tensor[T]) SubScalarInPlace(scalar T) *Tensor[T] {
	for i := range t.data {
		t.data[i] -= scalar
	}
	return t
}

// MulScalarInPlace multiplies every element by scalar.
func (t *Tensor[T]) MulScalarInPlace(scalar T) *Tensor[T] {
	for i := range t.data {
		t.data[i] *= scalar
	}
	return t
}

// Clip clamps every element into [min, max] in place. This is the one
// sanctioned implicit clamp in the engine.
func (t *Tensor[T]) Clip(min, max T) {
	for i, v := range t.data {
		if v < min {
			t.data[i] = min
		} else if v > max {
			t.data[i] = max
		}
	}
}

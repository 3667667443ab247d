package tensor

import "fmt"

// DType is the constraint for tensor element types.
type DType interface {
	~uint8 | ~int32 | ~int64 | ~float32 | ~float64
}

// Tensor is a dense N-dimensional array with row-major storage.
//
// A tensor owns exactly one Shape, one contiguous buffer of
// Shape.NumElements() elements, and one Config. There is no internal
// locking: tensors are independent value-like entities, and concurrent
// mutation of the same tensor must be serialized by the caller.
//
// Example:
//
//	t, err := tensor.Sequence[float32](tensor.Shape{2, 3})
//	v, err := t.At(1, 2) // 5
type Tensor[T DType] struct {
	shape  Shape
	cum    []int // cumulative axis products, cum[i] = shape[0]*...*shape[i]
	data   []T
	config Config
	frozen bool
}

// fromParts wraps an already-validated shape and buffer. Internal
// constructor: len(data) must equal shape.NumElements().
func fromParts[T DType](shape Shape, data []T, cfg Config) *Tensor[T] {
	return &Tensor[T]{
		shape:  shape,
		cum:    shape.Cumulative(),
		data:   data,
		config: cfg,
	}
}

// updateShape rebuilds the shape and its cumulative products wholesale.
func (t *Tensor[T]) updateShape(shape Shape) {
	t.shape = shape
	t.cum = shape.Cumulative()
}

// Shape returns the tensor's shape. Callers must not modify it.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Dimension returns the number of axes. Scalars have dimension 0.
func (t *Tensor[T]) Dimension() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Config returns the tensor's configuration.
func (t *Tensor[T]) Config() Config {
	return t.config
}

// Frozen reports whether the tensor is frozen.
func (t *Tensor[T]) Frozen() bool {
	return t.frozen
}

// Data returns the flat buffer in row-major order (last axis fastest).
//
// WARNING: the slice aliases the tensor's storage; modifications are
// visible to the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// DataType returns the element type name, for diagnostics.
func (t *Tensor[T]) DataType() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// FlatIndex converts a multi-index to a position in the flat buffer.
//
// Axis i has stride NumElements()/cum[i] where cum is the cumulative
// shape, so for shape (a, b, c) the strides are (b*c, c, 1). This is the
// addressing invariant the rest of the engine depends on.
func (t *Tensor[T]) FlatIndex(indices ...int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("%w: got %d indices for %d dimensions",
			ErrIndex, len(indices), len(t.shape))
	}
	n := len(t.data)
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of bounds for axis %d (size %d)",
				ErrIndex, idx, i, t.shape[i])
		}
		flat += idx * (n / t.cum[i])
	}
	return flat, nil
}

// At returns the element at the given multi-index.
func (t *Tensor[T]) At(indices ...int) (T, error) {
	flat, err := t.FlatIndex(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[flat], nil
}

// Set stores value at the given multi-index. Permitted while frozen:
// freezing blocks shape mutation, not element mutation.
func (t *Tensor[T]) Set(value T, indices ...int) error {
	flat, err := t.FlatIndex(indices...)
	if err != nil {
		return err
	}
	t.data[flat] = value
	return nil
}

// Item returns the value of a scalar (shape ()) or single-element tensor.
func (t *Tensor[T]) Item() (T, error) {
	if len(t.data) != 1 {
		var zero T
		return zero, fmt.Errorf("%w: Item needs exactly 1 element, shape %v has %d",
			ErrOpUndefined, t.shape, len(t.data))
	}
	return t.data[0], nil
}

// Equal reports whether the two tensors have the same shape and
// pairwise-equal elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// Apply invokes fn once per element in flat storage order (row-major,
// last axis fastest) and stores the result in place. Permitted while
// frozen.
func (t *Tensor[T]) Apply(fn func(T) T) {
	for i, v := range t.data {
		t.data[i] = fn(v)
	}
}

// Clone returns a deep copy. The clone is never frozen.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return fromParts(t.shape.Clone(), data, t.config)
}

// Freeze marks the tensor immutable in shape: Reshape, Resize, Squeeze,
// SwapAxes and Ravel fail with ErrFrozen until Unfreeze. Element mutation
// (Set, Apply, in-place arithmetic, Clip) stays permitted. Freezing may
// shrink the buffer capacity to exactly fit.
func (t *Tensor[T]) Freeze() error {
	if !t.config.Freezable {
		return fmt.Errorf("%w: configuration forbids freezing", ErrNotFreezable)
	}
	if cap(t.data) > len(t.data) {
		exact := make([]T, len(t.data))
		copy(exact, t.data)
		t.data = exact
	}
	t.frozen = true
	return nil
}

// Unfreeze clears the frozen flag. Always succeeds.
func (t *Tensor[T]) Unfreeze() {
	t.frozen = false
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DataType(), t.shape)
}

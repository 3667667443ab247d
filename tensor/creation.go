package tensor

import "fmt"

// Initializer selects the fill policy applied to a freshly allocated
// buffer at construction.
type Initializer int

// Supported initializers.
const (
	// Zero fills the buffer with T(0).
	Zero Initializer = iota
	// One fills the buffer with T(1).
	One
	// Gaussian draws each element from the standard normal distribution
	// of the injected Source.
	Gaussian
	// Uniform draws each element uniformly from [0, 1).
	Uniform
	// IndexSequence sets element i to T(i).
	IndexSequence
	// Uninitialized leaves the buffer as allocated.
	Uninitialized
)

// String returns the initializer name.
func (in Initializer) String() string {
	switch in {
	case Zero:
		return "zero"
	case One:
		return "one"
	case Gaussian:
		return "gaussian"
	case Uniform:
		return "uniform"
	case IndexSequence:
		return "index-sequence"
	case Uninitialized:
		return "uninitialized"
	default:
		return "unknown"
	}
}

// New allocates a tensor of the given shape and fills it per the
// initializer policy. Gaussian and Uniform require a Source; the other
// policies ignore it.
//
// Example:
//
//	src := tensor.NewSource(42)
//	t, err := tensor.New[float32](tensor.Shape{3, 4}, tensor.Gaussian, tensor.DefaultConfig(), src)
func New[T DType](shape Shape, init Initializer, cfg Config, src Source) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]T, shape.NumElements())

	switch init {
	case Zero, Uninitialized:
		// Go allocation is already zeroed.
	case One:
		for i := range data {
			data[i] = 1
		}
	case Gaussian:
		if src == nil {
			return nil, fmt.Errorf("%w: %s initializer needs a random source", ErrOpUndefined, init)
		}
		for i := range data {
			data[i] = T(src.Normal())
		}
	case Uniform:
		if src == nil {
			return nil, fmt.Errorf("%w: %s initializer needs a random source", ErrOpUndefined, init)
		}
		for i := range data {
			data[i] = T(src.Uniform())
		}
	case IndexSequence:
		for i := range data {
			data[i] = T(i)
		}
	default:
		return nil, fmt.Errorf("%w: unknown initializer %d", ErrOpUndefined, init)
	}

	return fromParts(shape.Clone(), data, cfg), nil
}

// FromSlice creates a tensor owning a copy of data.
func FromSlice[T DType](data []T, shape Shape, cfg Config) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrInvalidShape, shape, shape.NumElements(), len(data))
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return fromParts(shape.Clone(), buf, cfg), nil
}

// Zeros creates a zero-filled tensor with the default configuration.
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	return New[T](shape, Zero, DefaultConfig(), nil)
}

// Ones creates a one-filled tensor with the default configuration.
func Ones[T DType](shape Shape) (*Tensor[T], error) {
	return New[T](shape, One, DefaultConfig(), nil)
}

// Full creates a tensor filled with value.
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Sequence creates an IndexSequence tensor: element i holds T(i) in flat
// order.
//
// Example:
//
//	t, _ := tensor.Sequence[int64](tensor.Shape{2, 3}) // [0 1 2 3 4 5]
func Sequence[T DType](shape Shape) (*Tensor[T], error) {
	return New[T](shape, IndexSequence, DefaultConfig(), nil)
}

// Randn creates a tensor of standard normal samples drawn from src.
func Randn[T DType](shape Shape, src Source) (*Tensor[T], error) {
	return New[T](shape, Gaussian, DefaultConfig(), src)
}

// Rand creates a tensor of uniform [0, 1) samples drawn from src.
func Rand[T DType](shape Shape, src Source) (*Tensor[T], error) {
	return New[T](shape, Uniform, DefaultConfig(), src)
}

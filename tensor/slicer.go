package tensor

import "fmt"

// Sentinels for the one-sided Slicer constructors. Begin resolves to 0,
// End resolves to the bound shape's extent on each axis.
const (
	Begin = -1
	End   = -1
)

// Slicer describes a sub-range request: per-axis inclusive start and
// exclusive stop, plus a step shared by all axes. A slicer is a transient
// value; it is validated against one shape and used immediately for
// extraction.
type Slicer struct {
	start []int
	stop  []int
	step  int
}

// NewSlicer builds a slicer from explicit bounds. Entries may be Begin
// (in start) or End (in stop).
func NewSlicer(start, stop []int, step int) Slicer {
	return Slicer{
		start: append([]int(nil), start...),
		stop:  append([]int(nil), stop...),
		step:  step,
	}
}

// From builds a slicer that runs from the given start positions to the
// end of every axis with step 1.
func From(start ...int) Slicer {
	stop := make([]int, len(start))
	for i := range stop {
		stop[i] = End
	}
	return Slicer{start: append([]int(nil), start...), stop: stop, step: 1}
}

// Until builds a slicer that runs from the beginning of every axis to
// the given stop positions with step 1.
func Until(stop ...int) Slicer {
	start := make([]int, len(stop))
	for i := range start {
		start[i] = Begin
	}
	return Slicer{start: start, stop: append([]int(nil), stop...), step: 1}
}

// Validate checks the slicer against the bound shape and resolves the
// Begin/End sentinels, returning the concrete per-axis bounds.
func (s Slicer) Validate(shape Shape) (start, stop []int, err error) {
	if len(s.start) != len(s.stop) {
		return nil, nil, fmt.Errorf("%w: start has %d axes, stop has %d",
			ErrBadSlice, len(s.start), len(s.stop))
	}
	if len(s.start) != len(shape) {
		return nil, nil, fmt.Errorf("%w: slicer has %d axes, shape %v has %d",
			ErrBadSlice, len(s.start), shape, len(shape))
	}
	if s.step <= 0 {
		return nil, nil, fmt.Errorf("%w: step must be positive, got %d", ErrBadSlice, s.step)
	}

	start = make([]int, len(shape))
	stop = make([]int, len(shape))
	for axis := range shape {
		from := s.start[axis]
		if from == Begin {
			from = 0
		}
		to := s.stop[axis]
		if to == End {
			to = shape[axis]
		}
		switch {
		case from < 0 || to < 0:
			return nil, nil, fmt.Errorf("%w: negative index on axis %d", ErrBadSlice, axis)
		case from > to:
			return nil, nil, fmt.Errorf("%w: start %d after stop %d on axis %d",
				ErrBadSlice, from, to, axis)
		case to > shape[axis]:
			return nil, nil, fmt.Errorf("%w: stop %d past extent %d on axis %d",
				ErrBadSlice, to, shape[axis], axis)
		}
		start[axis] = from
		stop[axis] = to
	}
	return start, stop, nil
}

// Slice extracts the sub-range described by s into a new tensor. The
// per-axis extent of the result is ceil((stop-start)/step); extraction
// reuses the row-major stride formula with a per-axis step multiplier.
func (t *Tensor[T]) Slice(s Slicer) (*Tensor[T], error) {
	start, stop, err := s.Validate(t.shape)
	if err != nil {
		return nil, err
	}

	strides := t.shape.ComputeStrides()
	outShape := make(Shape, len(t.shape))
	stepStrides := make([]int, len(t.shape))
	base := 0
	for axis := range t.shape {
		span := stop[axis] - start[axis]
		outShape[axis] = (span + s.step - 1) / s.step
		stepStrides[axis] = strides[axis] * s.step
		base += start[axis] * strides[axis]
	}

	out := make([]T, outShape.NumElements())
	if len(out) > 0 {
		idx := make([]int, len(outShape))
		si := base
		for oi := range out {
			out[oi] = t.data[si]
			for ax := len(outShape) - 1; ax >= 0; ax-- {
				idx[ax]++
				si += stepStrides[ax]
				if idx[ax] < outShape[ax] {
					break
				}
				idx[ax] = 0
				si -= stepStrides[ax] * outShape[ax]
			}
		}
	}
	return fromParts(outShape, out, t.config), nil
}

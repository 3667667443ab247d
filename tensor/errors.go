package tensor

import "errors"

// Sentinel errors for every failure mode of the engine.
// Operations wrap these with fmt.Errorf("%w: ...") to attach the
// expected-vs-actual context; callers match with errors.Is.
var (
	// ErrInvalidShape reports a shape with a non-positive dimension, an
	// element count that overflows int, or a data/shape length mismatch
	// at construction.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrInvalidReshape reports a reshape target with a zero dimension,
	// more than one inferred dimension, or a non-matching element count.
	ErrInvalidReshape = errors.New("tensor: invalid reshape")

	// ErrIndex reports a multi-index of the wrong rank or an index that
	// is out of bounds for its axis.
	ErrIndex = errors.New("tensor: index out of range")

	// ErrBadSlice reports an invalid slicer (rank mismatch, zero step,
	// start past stop, or stop past the axis extent).
	ErrBadSlice = errors.New("tensor: bad slice")

	// ErrBroadcast reports two shapes that cannot be broadcast together.
	ErrBroadcast = errors.New("tensor: shapes not broadcastable")

	// ErrShapeMismatch reports an operation that requires matching shapes
	// (or broadcasting disabled by configuration).
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrAxis reports an axis outside [0, rank).
	ErrAxis = errors.New("tensor: axis out of range")

	// ErrNotFreezable reports a Freeze call on a tensor whose
	// configuration forbids freezing.
	ErrNotFreezable = errors.New("tensor: not freezable")

	// ErrFrozen reports a shape-mutating operation on a frozen tensor.
	ErrFrozen = errors.New("tensor: tensor is frozen")

	// ErrArithmetic reports integer division by zero. Floating-point
	// division follows IEEE semantics and never returns this.
	ErrArithmetic = errors.New("tensor: integer division by zero")

	// ErrSizeMismatch reports a CopyTo between tensors of different
	// element counts without resizing allowed.
	ErrSizeMismatch = errors.New("tensor: size mismatch")

	// ErrOpUndefined reports an operation whose preconditions on the
	// operand kind are not met (e.g. gathering with a non-1D index).
	ErrOpUndefined = errors.New("tensor: operation undefined")
)

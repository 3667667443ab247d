package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Shape represents the dimensions of a tensor.
//
// A shape is an ordered sequence of positive axis sizes. The empty shape
// is a scalar with one element. Shapes are treated as immutable: tensors
// never mutate a shape in place, they rebuild it wholesale.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// The empty shape is a scalar and has 1 element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive and that the element
// count does not overflow int.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes have the same ordered dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Cumulative returns the running product of the dimensions, axis 0 first:
// cum[0] = s[0], cum[i] = cum[i-1] * s[i].
func (s Shape) Cumulative() []int {
	cum := make([]int, len(s))
	n := 1
	for i, dim := range s {
		n *= dim
		cum[i] = n
	}
	return cum
}

// ReverseCumulative returns the running product over the reversed axis
// order: rev[i] = s[len-1] * ... * s[i]. Axis grouping uses it to convert
// between fastest-varying and slowest-varying traversal order.
func (s Shape) ReverseCumulative() []int {
	rev := make([]int, len(s))
	n := 1
	for i := len(s) - 1; i >= 0; i-- {
		n *= s[i]
		rev[i] = n
	}
	return rev
}

// ComputeStrides calculates row-major strides for the shape: stride[i] is
// the product of all dimensions after i, so the last axis varies fastest.
// Equivalently stride[i] = NumElements() / Cumulative()[i].
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String renders the shape as "(d0, d1, ..., dn)". Diagnostic only.
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, dim := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", dim)
	}
	b.WriteByte(')')
	return b.String()
}

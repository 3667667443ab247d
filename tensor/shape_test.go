package tensor

import (
	"errors"
	"math"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1}, // scalar
		{Shape{5}, 5},
		{Shape{3, 2, 4}, 24},
		{Shape{2, 3, 4}, 24},
		{Shape{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	for _, s := range []Shape{{1}, {3, 4}, {2, 3, 4}, {}} {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	for _, s := range []Shape{{0}, {3, 0}, {-1}, {3, -4}} {
		if err := s.Validate(); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("Shape%v.Validate() = %v, want ErrInvalidShape", s, err)
		}
	}

	overflow := Shape{math.MaxInt / 2, 3}
	if err := overflow.Validate(); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("overflowing shape Validate() = %v, want ErrInvalidShape", err)
	}
}

func TestShapeCumulative(t *testing.T) {
	tests := []struct {
		shape Shape
		cum   []int
		rev   []int
	}{
		{Shape{2, 3, 4}, []int{2, 6, 24}, []int{24, 12, 4}},
		{Shape{5}, []int{5}, []int{5}},
		{Shape{}, []int{}, []int{}},
	}

	for _, tt := range tests {
		cum := tt.shape.Cumulative()
		for i := range tt.cum {
			if cum[i] != tt.cum[i] {
				t.Errorf("Shape%v.Cumulative() = %v, want %v", tt.shape, cum, tt.cum)
				break
			}
		}
		rev := tt.shape.ReverseCumulative()
		for i := range tt.rev {
			if rev[i] != tt.rev[i] {
				t.Errorf("Shape%v.ReverseCumulative() = %v, want %v", tt.shape, rev, tt.rev)
				break
			}
		}
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape   Shape
		strides []int
	}{
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{3, 2}, []int{2, 1}},
		{Shape{7}, []int{1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		for i := range tt.strides {
			if got[i] != tt.strides[i] {
				t.Errorf("Shape%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.strides)
				break
			}
		}
	}

	// stride(i) must agree with NumElements / Cumulative()[i].
	s := Shape{3, 2, 4}
	strides := s.ComputeStrides()
	cum := s.Cumulative()
	n := s.NumElements()
	for i := range s {
		if strides[i] != n/cum[i] {
			t.Errorf("stride(%d) = %d, want NumElements/cum = %d", i, strides[i], n/cum[i])
		}
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("identical shapes should be equal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("permuted shapes should not be equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("shapes of different rank should not be equal")
	}
}

func TestShapeString(t *testing.T) {
	tests := []struct {
		shape Shape
		str   string
	}{
		{Shape{2, 3, 4}, "(2, 3, 4)"},
		{Shape{5}, "(5)"},
		{Shape{}, "()"},
	}

	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.str {
			t.Errorf("Shape%v.String() = %q, want %q", tt.shape, got, tt.str)
		}
	}
}

package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSameShape(t *testing.T) {
	a, err := Sequence[int64](Shape{3})
	require.NoError(t, err)
	b, err := Sequence[int64](Shape{3})
	require.NoError(t, err)

	c, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 4}, c.Data())
	assert.Equal(t, Shape{3}, c.Shape())

	// Commutative for identical-shape operands.
	d, err := b.Add(a)
	require.NoError(t, err)
	assert.True(t, c.Equal(d))
}

func TestSubMulDiv(t *testing.T) {
	a, err := FromSlice([]float64{8, 6, 4}, Shape{3}, DefaultConfig())
	require.NoError(t, err)
	b, err := FromSlice([]float64{2, 3, 4}, Shape{3}, DefaultConfig())
	require.NoError(t, err)

	sub, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 3, 0}, sub.Data())

	mul, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{16, 18, 16}, mul.Data())

	div, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 2, 1}, div.Data())
}

func TestAddBroadcast(t *testing.T) {
	a, err := FromSlice([]float32{1, 2, 3}, Shape{1, 3}, DefaultConfig())
	require.NoError(t, err)
	b, err := Ones[float32](Shape{4, 3})
	require.NoError(t, err)

	c, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 3}, c.Shape())
	assert.Equal(t, []float32{2, 3, 4, 2, 3, 4, 2, 3, 4, 2, 3, 4}, c.Data())
}

func TestBroadcastScalarOperand(t *testing.T) {
	scalar, err := Full[float64](Shape{}, 10)
	require.NoError(t, err)
	m, err := Sequence[float64](Shape{2, 2})
	require.NoError(t, err)

	got, err := m.Mul(scalar)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, got.Shape())
	assert.Equal(t, []float64{0, 10, 20, 30}, got.Data())
}

func TestAddIncompatibleShapes(t *testing.T) {
	a, err := Zeros[float32](Shape{2, 3})
	require.NoError(t, err)
	b, err := Zeros[float32](Shape{4, 3})
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.ErrorIs(t, err, ErrBroadcast)
}

func TestBroadcastDisabledByConfig(t *testing.T) {
	cfg := Config{Broadcastable: false, Freezable: true}
	a, err := New[float32](Shape{1, 3}, Zero, cfg, nil)
	require.NoError(t, err)
	b, err := Zeros[float32](Shape{4, 3})
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// The other operand's config also vetoes broadcasting.
	_, err = b.Add(a)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestIntegerDivisionByZero(t *testing.T) {
	a, err := Sequence[int32](Shape{3})
	require.NoError(t, err)
	b, err := FromSlice([]int32{1, 0, 2}, Shape{3}, DefaultConfig())
	require.NoError(t, err)

	_, err = a.Div(b)
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = a.DivScalar(0)
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = a.DivInPlace(b)
	assert.ErrorIs(t, err, ErrArithmetic)
	assert.Equal(t, []int32{0, 1, 2}, a.Data(), "failed division must not mutate")
}

func TestFloatDivisionByZeroIsIEEE(t *testing.T) {
	a, err := FromSlice([]float64{1, -1, 0}, Shape{3}, DefaultConfig())
	require.NoError(t, err)
	b, err := Zeros[float64](Shape{3})
	require.NoError(t, err)

	c, err := a.Div(b)
	require.NoError(t, err)
	assert.True(t, math.IsInf(c.Data()[0], 1))
	assert.True(t, math.IsInf(c.Data()[1], -1))
	assert.True(t, math.IsNaN(c.Data()[2]))
}

func TestScalarOps(t *testing.T) {
	a, err := Sequence[float32](Shape{3})
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 2, 3}, a.AddScalar(1).Data())
	assert.Equal(t, []float32{-1, 0, 1}, a.SubScalar(1).Data())
	assert.Equal(t, []float32{0, 2, 4}, a.MulScalar(2).Data())

	halves, err := a.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0.5, 1}, halves.Data())

	// Shape is preserved and the receiver untouched.
	assert.Equal(t, []float32{0, 1, 2}, a.Data())
}

func TestInPlaceOpsRequireExactShape(t *testing.T) {
	a, err := Ones[float32](Shape{2, 3})
	require.NoError(t, err)
	b, err := Ones[float32](Shape{1, 3})
	require.NoError(t, err)

	// Broadcasting would be legal for Add, but never for compound ops.
	_, err = a.AddInPlace(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.SubInPlace(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.MulInPlace(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.DivInPlace(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestInPlaceOpsMutateReceiver(t *testing.T) {
	a, err := Sequence[int64](Shape{3})
	require.NoError(t, err)
	b, err := Ones[int64](Shape{3})
	require.NoError(t, err)

	ret, err := a.AddInPlace(b)
	require.NoError(t, err)
	assert.Same(t, a, ret, "in-place ops return the receiver")
	assert.Equal(t, []int64{1, 2, 3}, a.Data())

	_, err = a.MulInPlace(a)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 9}, a.Data())
}

func TestScalarInPlaceOps(t *testing.T) {
	a, err := Sequence[int32](Shape{3})
	require.NoError(t, err)

	a.AddScalarInPlace(5).SubScalarInPlace(2).MulScalarInPlace(2)
	assert.Equal(t, []int32{6, 8, 10}, a.Data())
}

func TestClip(t *testing.T) {
	a, err := FromSlice([]float64{-2, 0.5, 3, 7}, Shape{4}, DefaultConfig())
	require.NoError(t, err)

	a.Clip(0, 5)
	assert.Equal(t, []float64{0, 0.5, 3, 5}, a.Data())
}

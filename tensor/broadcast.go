package tensor

import "fmt"

// Broadcast implements NumPy-style broadcasting rules.
//
// The two shapes are compared element-wise from right to left; the shorter
// one is conceptually left-padded with size-1 axes. An aligned pair of
// dimensions is compatible if the sizes are equal or if either is 1, in
// which case the unified size is the non-1 value.
//
// Examples:
//
//	Broadcast(Shape{3, 1}, Shape{3, 5}) → (3, 5)
//	Broadcast(Shape{1, 3}, Shape{4, 3}) → (4, 3)
//	Broadcast(Shape{2, 3}, Shape{4, 3}) → ErrBroadcast
func Broadcast(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	unified := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == bDim:
			unified[maxLen-1-i] = aDim
		case aDim == 1:
			unified[maxLen-1-i] = bDim
		case bDim == 1:
			unified[maxLen-1-i] = aDim
		default:
			return nil, fmt.Errorf("%w: %v vs %v (axis %d: %d vs %d)",
				ErrBroadcast, a, b, maxLen-1-i, aDim, bDim)
		}
	}
	return unified, nil
}

// expand materializes src broadcast to target. The shapes must already be
// known compatible (target obtained from Broadcast).
func expand[T DType](src *Tensor[T], target Shape) []T {
	if src.shape.Equal(target) {
		out := make([]T, len(src.data))
		copy(out, src.data)
		return out
	}

	out := make([]T, target.NumElements())
	srcStrides := make([]int, len(target))
	base := src.shape.ComputeStrides()
	offset := len(target) - len(src.shape)
	for i := range target {
		// Missing leading axes and size-1 axes repeat: stride 0.
		if i >= offset && src.shape[i-offset] != 1 {
			srcStrides[i] = base[i-offset]
		}
	}

	idx := make([]int, len(target))
	si := 0
	for oi := range out {
		out[oi] = src.data[si]
		for ax := len(target) - 1; ax >= 0; ax-- {
			idx[ax]++
			si += srcStrides[ax]
			if idx[ax] < target[ax] {
				break
			}
			idx[ax] = 0
			si -= srcStrides[ax] * target[ax]
		}
	}
	return out
}

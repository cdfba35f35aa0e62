package product

import "github.com/tensorcore-ml/tensorcore/internal/array"

// linearPreferred reports whether every operand prefers flat
// traversal, enabling the joint linear loops and the vectorized
// kernels.
func linearPreferred[T array.Num](arrs ...array.Array[T]) bool {
	for _, a := range arrs {
		if a.IndexStyle() != array.IndexLinear {
			return false
		}
	}
	return true
}

// float64Slices returns the row-major backing slices when all three
// operands are dense float64 arrays.
func float64Slices[T array.Num](dest, a, b array.Array[T]) (d, x, y []float64, ok bool) {
	dd, okD := any(dest).(*array.Dense[float64])
	ad, okA := any(a).(*array.Dense[float64])
	bd, okB := any(b).(*array.Dense[float64])
	if !okD || !okA || !okB {
		return nil, nil, nil, false
	}
	return dd.Data(), ad.Data(), bd.Data(), true
}

// float32Slices is the float32 counterpart of float64Slices.
func float32Slices[T array.Num](dest, a, b array.Array[T]) (d, x, y []float32, ok bool) {
	dd, okD := any(dest).(*array.Dense[float32])
	ad, okA := any(a).(*array.Dense[float32])
	bd, okB := any(b).(*array.Dense[float32])
	if !okD || !okA || !okB {
		return nil, nil, nil, false
	}
	return dd.Data(), ad.Data(), bd.Data(), true
}

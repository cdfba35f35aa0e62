package product

import (
	"fmt"

	"github.com/tensorcore-ml/tensorcore/internal/array"
)

// Kron returns the Kronecker product of two one-dimensional arrays as
// a flat zero-based vector:
//
//	Kron(v, w)[i*len(w)+j] = v[i] * w[j]
//
// With row-major layout this is exactly the flattening of Outer(v, w),
// so it shares Outer's vectorized kernels. Dual inputs are stripped
// like in Outer. Panics if either input is not one-dimensional.
func Kron[T array.Num](v, w array.Array[T]) (*array.Dense[T], error) {
	v, w = stripDual(v), stripDual(w)
	if len(v.Axes()) != 1 || len(w.Axes()) != 1 {
		panic(fmt.Sprintf("Kron requires one-dimensional inputs, got ranks %d and %d", len(v.Axes()), len(w.Axes())))
	}
	o, err := Outer(v, w)
	if err != nil {
		return nil, err
	}
	return o.Reshape(array.OfLengths(o.NumElements()))
}

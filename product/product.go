// Package product is the public API for the shape-checked products:
// the Hadamard (elementwise) product and the tensor (outer) product,
// each with an allocating and an in-place variant, plus the Kronecker
// product of vectors and the operator-style aliases Odot and Otimes.
//
// Example:
//
//	a := array.Vector(2.0, 3.0)
//	b := array.Vector(5.0, 7.0, 11.0)
//	c, err := product.Outer(a, b) // (0:1, 0:2); c.At(0, 2) == 22
package product

import (
	"github.com/tensorcore-ml/tensorcore/array"
	iproduct "github.com/tensorcore-ml/tensorcore/internal/product"
)

// Hadamard returns the elementwise product of two equally-shaped
// arrays as a newly allocated dense array. On axes mismatch it
// returns a *array.ShapeMismatchError.
func Hadamard[T array.Num](a, b array.Array[T]) (*array.Dense[T], error) {
	return iproduct.Hadamard(a, b)
}

// HadamardInto writes the elementwise product of a and b into dest,
// whose axes must match both operands. On mismatch dest is untouched.
func HadamardInto[T array.Num](dest, a, b array.Array[T]) error {
	return iproduct.HadamardInto(dest, a, b)
}

// Odot is the operator-style alias of Hadamard (⊙).
func Odot[T array.Num](a, b array.Array[T]) (*array.Dense[T], error) {
	return iproduct.Odot(a, b)
}

// Outer returns the tensor (outer) product of two arrays of arbitrary
// rank. The result's axes are a's axes followed by b's. Dual inputs
// are reduced to their underlying plain vectors first.
func Outer[T array.Num](a, b array.Array[T]) (*array.Dense[T], error) {
	return iproduct.Outer(a, b)
}

// OuterInto writes the tensor product of a and b into dest, whose
// axes must be the exact ordered concatenation of a's and b's axes.
// On mismatch dest is untouched.
func OuterInto[T array.Num](dest, a, b array.Array[T]) error {
	return iproduct.OuterInto(dest, a, b)
}

// Otimes is the operator-style alias of Outer (⊗).
func Otimes[T array.Num](a, b array.Array[T]) (*array.Dense[T], error) {
	return iproduct.Otimes(a, b)
}

// Kron returns the Kronecker product of two one-dimensional arrays as
// a flat vector, the row-major flattening of Outer(v, w).
func Kron[T array.Num](v, w array.Array[T]) (*array.Dense[T], error) {
	return iproduct.Kron(v, w)
}

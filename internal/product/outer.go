package product

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/ziutek/blas"

	"github.com/tensorcore-ml/tensorcore/internal/array"
)

// Outer returns the tensor (outer) product of a and b as a newly
// allocated dense array. There is no shape precondition: the result
// has rank(a)+rank(b), its axes are a's axes followed by b's, and
//
//	C[i..., j...] = A[i...] * B[j...]
//
// for every multi-index i over a and j over b. Dual inputs are reduced
// to their underlying plain vectors before the general rule applies,
// which makes duality distribute over the product:
//
//	dual(Outer(u, v)) == Outer(dual(v), dual(u))
//
// Inputs are never mutated.
func Outer[T array.Num](a, b array.Array[T]) (*array.Dense[T], error) {
	a, b = stripDual(a), stripDual(b)
	dest, err := array.NewDense[T](a.Axes().Concat(b.Axes()))
	if err != nil {
		return nil, err
	}
	outerFill(dest, a, b)
	return dest, nil
}

// OuterInto writes the tensor product of a and b into dest, whose axes
// must be the exact ordered concatenation of a's axes and b's axes
// (concatenation is not commutative). On mismatch it returns a
// *array.ShapeMismatchError carrying all three axis sets and leaves
// dest untouched. Dual inputs are stripped exactly as in Outer; the
// caller's Dual wrapper is never mutated.
func OuterInto[T array.Num](dest, a, b array.Array[T]) error {
	a, b = stripDual(a), stripDual(b)
	if !dest.Axes().Equal(a.Axes().Concat(b.Axes())) {
		return &array.ShapeMismatchError{
			Dest:   dest.Axes().Clone(),
			A:      a.Axes().Clone(),
			B:      b.Axes().Clone(),
			Concat: true,
		}
	}
	outerFill(dest, a, b)
	return nil
}

// Otimes is the operator-style alias of Outer (the ⊗ of the linear
// algebra literature), convenient as a first-class function value.
func Otimes[T array.Num](a, b array.Array[T]) (*array.Dense[T], error) {
	return Outer(a, b)
}

// stripDual reduces a dual view to its underlying plain vector.
func stripDual[T array.Num](a array.Array[T]) array.Array[T] {
	if d, ok := a.(*array.Dual[T]); ok {
		return d.Parent()
	}
	return a
}

// outerFill assumes dest's axes were already checked. Both traversal
// strategies produce identical results; the choice follows the
// operands' index styles.
func outerFill[T array.Num](dest, a, b array.Array[T]) {
	if linearPreferred[T](dest, a, b) {
		outerFillLinear(dest, a, b)
		return
	}
	// Multi-index strategy: outer loop over b's indices, inner loop
	// over a's, writing through multi-index addressing.
	axA, axB := a.Axes(), b.Axes()
	ix := make([]int, len(axA)+len(axB))
	itB := array.NewIndexIter(axB)
	for jx, okB := itB.Next(); okB; jx, okB = itB.Next() {
		bv := b.At(jx...)
		copy(ix[len(axA):], jx)
		itA := array.NewIndexIter(axA)
		for kx, okA := itA.Next(); okA; kx, okA = itA.Next() {
			copy(ix, kx)
			dest.Set(a.At(kx...)*bv, ix...)
		}
	}
}

// outerFillLinear walks dest with a monotonically increasing flat
// cursor: a's elements as the outer loop, b's as the inner, matching
// dest's row-major layout. Dense float64 and float32 operands take
// vectorized per-row kernels.
func outerFillLinear[T array.Num](dest, a, b array.Array[T]) {
	na := a.Axes().NumElements()
	nb := b.Axes().NumElements()
	if d, x, y, ok := float64Slices(dest, a, b); ok {
		for i := 0; i < na; i++ {
			vecmath.ScaleBlock(d[i*nb:(i+1)*nb], y, x[i])
		}
		return
	}
	if d, x, y, ok := float32Slices(dest, a, b); ok {
		for i := 0; i < na; i++ {
			row := d[i*nb : (i+1)*nb]
			blas.Scopy(nb, y, 1, row, 1)
			blas.Sscal(nb, x[i], row, 1)
		}
		return
	}
	k := 0
	for i := 0; i < na; i++ {
		av := a.Linear(i)
		for j := 0; j < nb; j++ {
			dest.SetLinear(k, av*b.Linear(j))
			k++
		}
	}
}

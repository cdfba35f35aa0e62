package product

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/tensorcore-ml/tensorcore/internal/array"
)

// Hadamard returns the elementwise product of a and b as a newly
// allocated dense array. The operands must have identical axes,
// including per-dimension index ranges. On mismatch it returns a
// *array.ShapeMismatchError and allocates nothing. Inputs are never
// mutated.
func Hadamard[T array.Num](a, b array.Array[T]) (*array.Dense[T], error) {
	if !a.Axes().Equal(b.Axes()) {
		return nil, &array.ShapeMismatchError{A: a.Axes().Clone(), B: b.Axes().Clone()}
	}
	dest, err := array.NewDense[T](a.Axes())
	if err != nil {
		return nil, err
	}
	hadamardFill(dest, a, b)
	return dest, nil
}

// HadamardInto writes the elementwise product of a and b into dest,
// which must have the same axes as both operands. Both pair equalities
// are evaluated before failing, so a mismatch between a and b alone is
// still reported with all three axis sets for context. On mismatch
// dest is untouched; on success every element of dest is overwritten.
// No allocation happens on the element path.
func HadamardInto[T array.Num](dest, a, b array.Array[T]) error {
	destOK := dest.Axes().Equal(a.Axes())
	abOK := a.Axes().Equal(b.Axes())
	if !destOK || !abOK {
		return &array.ShapeMismatchError{
			Dest: dest.Axes().Clone(),
			A:    a.Axes().Clone(),
			B:    b.Axes().Clone(),
		}
	}
	hadamardFill(dest, a, b)
	return nil
}

// Odot is the operator-style alias of Hadamard (the ⊙ of the linear
// algebra literature), convenient as a first-class function value.
func Odot[T array.Num](a, b array.Array[T]) (*array.Dense[T], error) {
	return Hadamard(a, b)
}

// hadamardFill assumes axes were already checked.
func hadamardFill[T array.Num](dest, a, b array.Array[T]) {
	if linearPreferred[T](dest, a, b) {
		if d, x, y, ok := float64Slices(dest, a, b); ok {
			vecmath.MulBlock(d, x, y)
			return
		}
		n := dest.Axes().NumElements()
		for i := 0; i < n; i++ {
			dest.SetLinear(i, a.Linear(i)*b.Linear(i))
		}
		return
	}
	it := array.NewIndexIter(dest.Axes())
	for ix, ok := it.Next(); ok; ix, ok = it.Next() {
		dest.Set(a.At(ix...)*b.At(ix...), ix...)
	}
}

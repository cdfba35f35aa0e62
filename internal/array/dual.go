package array

import "fmt"

// Dual marks a one-dimensional array as a row-vector-like (adjoint)
// view for algebraic composition. It is a marker, not a transform:
// every access delegates unchanged to the wrapped vector, and Parent
// strips the marker. Operations that distribute duality over their
// arguments reduce a Dual to its parent before computing.
type Dual[T Num] struct {
	parent Array[T]
}

var _ Array[float64] = (*Dual[float64])(nil)

// NewDual wraps a one-dimensional array as its dual.
// Panics if v is not one-dimensional.
func NewDual[T Num](v Array[T]) *Dual[T] {
	if len(v.Axes()) != 1 {
		panic(fmt.Sprintf("Dual wraps one-dimensional arrays, got rank %d", len(v.Axes())))
	}
	return &Dual[T]{parent: v}
}

// Parent returns the underlying plain vector.
func (d *Dual[T]) Parent() Array[T] {
	return d.parent
}

// Axes returns the axes of the underlying vector.
func (d *Dual[T]) Axes() Axes {
	return d.parent.Axes()
}

// At returns the element at the given multi-index.
func (d *Dual[T]) At(ix ...int) T {
	return d.parent.At(ix...)
}

// Set stores v at the given multi-index.
func (d *Dual[T]) Set(v T, ix ...int) {
	d.parent.Set(v, ix...)
}

// Linear returns the element at flat position i.
func (d *Dual[T]) Linear(i int) T {
	return d.parent.Linear(i)
}

// SetLinear stores v at flat position i.
func (d *Dual[T]) SetLinear(i int, v T) {
	d.parent.SetLinear(i, v)
}

// IndexStyle reports the underlying vector's preferred traversal.
func (d *Dual[T]) IndexStyle() IndexStyle {
	return d.parent.IndexStyle()
}

// String returns a human-readable summary of the view.
func (d *Dual[T]) String() string {
	return fmt.Sprintf("Dual(%v)", d.parent)
}

// Package array is the public API for the generic array abstraction:
// axes (ordered per-dimension index ranges, possibly offset from
// zero), the Array interface the product operations consume, the
// dense row-major implementation, and the Dual row-vector marker.
//
// Example:
//
//	a := array.Vector(2.0, 3.0)                        // (0:1)
//	m, _ := array.FromSlice([]float64{1, 2, 3, 4},
//		array.Axes{{First: 1, Last: 2}, {First: 1, Last: 2}}) // (1:2, 1:2)
//	v := m.At(2, 1)                                     // 3
package array

import (
	iarray "github.com/tensorcore-ml/tensorcore/internal/array"
)

// Num constrains array elements to Go's built-in numeric types.
type Num = iarray.Num

// Axis describes the inclusive index range of one dimension.
type Axis = iarray.Axis

// Axes is the ordered per-dimension index ranges of an array.
type Axes = iarray.Axes

// IndexStyle hints whether an array traverses faster linearly or by
// multi-index.
type IndexStyle = iarray.IndexStyle

// Index style constants.
const (
	IndexLinear    IndexStyle = iarray.IndexLinear
	IndexCartesian IndexStyle = iarray.IndexCartesian
)

// Array is a generic multi-dimensional container of numeric elements.
type Array[T Num] = iarray.Array[T]

// Dense is a dense row-major Array with per-dimension index offsets.
type Dense[T Num] = iarray.Dense[T]

// Dual marks a one-dimensional array as a row-vector-like view.
type Dual[T Num] = iarray.Dual[T]

// ShapeMismatchError reports operand axes failing a shape
// precondition.
type ShapeMismatchError = iarray.ShapeMismatchError

// IndexIter enumerates the multi-indices of a set of axes in
// row-major order.
type IndexIter = iarray.IndexIter

// OfLengths returns zero-based Axes with the given dimension lengths.
func OfLengths(sizes ...int) Axes {
	return iarray.OfLengths(sizes...)
}

// NewDense allocates a zero-filled dense array over the given axes.
func NewDense[T Num](axes Axes) (*Dense[T], error) {
	return iarray.NewDense[T](axes)
}

// FromSlice builds a dense array over the given axes from a row-major
// element slice. The slice is copied.
func FromSlice[T Num](data []T, axes Axes) (*Dense[T], error) {
	return iarray.FromSlice(data, axes)
}

// Vector builds a one-dimensional zero-based dense array from data.
func Vector[T Num](data ...T) *Dense[T] {
	return iarray.Vector(data...)
}

// Scalar builds a rank-0 dense array holding v.
func Scalar[T Num](v T) *Dense[T] {
	return iarray.Scalar(v)
}

// NewDual wraps a one-dimensional array as its dual.
// Panics if v is not one-dimensional.
func NewDual[T Num](v Array[T]) *Dual[T] {
	return iarray.NewDual(v)
}

// NewIndexIter returns an iterator over the multi-indices of axes.
func NewIndexIter(axes Axes) *IndexIter {
	return iarray.NewIndexIter(axes)
}

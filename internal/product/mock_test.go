package product

import "github.com/tensorcore-ml/tensorcore/internal/array"

// cartesianArray wraps a Dense but reports multi-index traversal,
// forcing operations onto the generic cartesian path in tests.
type cartesianArray[T array.Num] struct {
	*array.Dense[T]
}

func (c cartesianArray[T]) IndexStyle() array.IndexStyle {
	return array.IndexCartesian
}

var _ array.Array[float64] = cartesianArray[float64]{}

func cartesian[T array.Num](d *array.Dense[T]) cartesianArray[T] {
	return cartesianArray[T]{d}
}

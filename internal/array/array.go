// Package array provides the generic multi-dimensional array
// abstraction the product operations are written against: ordered
// per-dimension index ranges (Axes), a generic container interface
// (Array), a dense row-major implementation with arbitrary index
// offsets (Dense), and a row-vector marker for one-dimensional arrays
// (Dual).
package array

// Num constrains array elements to Go's built-in numeric types.
// Element multiplication delegates to the type's own * operator; the
// package imposes no numeric semantics beyond that.
type Num interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// IndexStyle is a traversal hint: whether an array is addressed more
// efficiently by flat linear position or by full multi-index. It only
// selects how an operation iterates, never what it computes.
type IndexStyle int

const (
	// IndexLinear marks arrays whose linear accessors are at least as
	// cheap as multi-index access, e.g. dense row-major storage.
	IndexLinear IndexStyle = iota
	// IndexCartesian marks arrays that prefer multi-index access.
	IndexCartesian
)

// String returns a human-readable style name.
func (s IndexStyle) String() string {
	switch s {
	case IndexLinear:
		return "linear"
	case IndexCartesian:
		return "cartesian"
	default:
		return "unknown"
	}
}

// Array is a generic multi-dimensional container of elements of type
// T. Implementations must keep Linear consistent with At: linear
// position i addresses the same element as the i-th multi-index of
// Axes() in row-major order, counting from 0 regardless of axis
// offsets.
type Array[T Num] interface {
	// Axes returns the ordered per-dimension index ranges.
	Axes() Axes
	// At returns the element at the given multi-index.
	// Panics if the index is out of bounds or of the wrong rank.
	At(ix ...int) T
	// Set stores v at the given multi-index.
	// Panics if the index is out of bounds or of the wrong rank.
	Set(v T, ix ...int)
	// Linear returns the element at flat row-major position i.
	Linear(i int) T
	// SetLinear stores v at flat row-major position i.
	SetLinear(i int, v T)
	// IndexStyle reports which accessors traverse fastest.
	IndexStyle() IndexStyle
}

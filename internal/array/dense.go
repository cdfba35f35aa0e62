package array

import "fmt"

// Dense is a dense row-major Array backed by a flat slice, supporting
// arbitrary (possibly non-zero) index offsets per dimension.
type Dense[T Num] struct {
	axes    Axes
	strides []int
	data    []T
}

var _ Array[float64] = (*Dense[float64])(nil)

// NewDense allocates a zero-filled dense array over the given axes.
// Empty axes allocate a scalar (one element).
func NewDense[T Num](axes Axes) (*Dense[T], error) {
	if err := axes.Validate(); err != nil {
		return nil, err
	}
	ax := axes.Clone()
	return &Dense[T]{
		axes:    ax,
		strides: ax.computeStrides(),
		data:    make([]T, ax.NumElements()),
	}, nil
}

// FromSlice builds a dense array over the given axes from a row-major
// element slice. The slice is copied into the array's memory.
func FromSlice[T Num](data []T, axes Axes) (*Dense[T], error) {
	d, err := NewDense[T](axes)
	if err != nil {
		return nil, err
	}
	if len(data) != len(d.data) {
		return nil, fmt.Errorf("axes %v require %d elements, but got %d", axes, len(d.data), len(data))
	}
	copy(d.data, data)
	return d, nil
}

// Vector builds a one-dimensional zero-based dense array from data.
func Vector[T Num](data ...T) *Dense[T] {
	d, err := FromSlice(data, OfLengths(len(data)))
	if err != nil {
		panic(err) // only reachable for empty data
	}
	return d
}

// Scalar builds a rank-0 dense array holding v.
func Scalar[T Num](v T) *Dense[T] {
	d, _ := NewDense[T](nil)
	d.data[0] = v
	return d
}

// Axes returns the array's axes. The caller must not modify it.
func (d *Dense[T]) Axes() Axes {
	return d.axes
}

// NumElements returns the total number of elements.
func (d *Dense[T]) NumElements() int {
	return len(d.data)
}

// Data returns the row-major backing slice (zero-copy).
//
// WARNING: modifications to the returned slice modify the array.
func (d *Dense[T]) Data() []T {
	return d.data
}

// offset maps a multi-index to a flat position, honoring axis offsets.
func (d *Dense[T]) offset(ix []int) int {
	if len(ix) != len(d.axes) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(d.axes), len(ix)))
	}
	off := 0
	for i, x := range ix {
		if !d.axes[i].Contains(x) {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (range %s)", x, i, d.axes[i]))
		}
		off += (x - d.axes[i].First) * d.strides[i]
	}
	return off
}

// At returns the element at the given multi-index.
// Panics if the index is out of bounds.
func (d *Dense[T]) At(ix ...int) T {
	return d.data[d.offset(ix)]
}

// Set stores v at the given multi-index.
// Panics if the index is out of bounds.
func (d *Dense[T]) Set(v T, ix ...int) {
	d.data[d.offset(ix)] = v
}

// Linear returns the element at flat row-major position i.
func (d *Dense[T]) Linear(i int) T {
	return d.data[i]
}

// SetLinear stores v at flat row-major position i.
func (d *Dense[T]) SetLinear(i int, v T) {
	d.data[i] = v
}

// IndexStyle reports linear traversal, the natural order for dense
// row-major storage.
func (d *Dense[T]) IndexStyle() IndexStyle {
	return IndexLinear
}

// Clone returns a deep copy of the array.
func (d *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(d.data))
	copy(data, d.data)
	return &Dense[T]{
		axes:    d.axes.Clone(),
		strides: d.axes.computeStrides(),
		data:    data,
	}
}

// Reshape returns a dense array sharing d's data under new axes. The
// new axes must span the same number of elements.
func (d *Dense[T]) Reshape(axes Axes) (*Dense[T], error) {
	if err := axes.Validate(); err != nil {
		return nil, err
	}
	if axes.NumElements() != len(d.data) {
		return nil, fmt.Errorf("cannot reshape %d elements to axes %v (%d elements)", len(d.data), axes, axes.NumElements())
	}
	ax := axes.Clone()
	return &Dense[T]{
		axes:    ax,
		strides: ax.computeStrides(),
		data:    d.data,
	}, nil
}

// String returns a human-readable summary of the array.
func (d *Dense[T]) String() string {
	return fmt.Sprintf("Dense%v%v", d.axes, d.data)
}

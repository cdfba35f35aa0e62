package array

import (
	"fmt"
	"strings"
)

// Axis describes the valid index range of one array dimension. Both
// bounds are inclusive, so an axis need not start at zero:
// Axis{First: 1, Last: 3} spans the three indices 1, 2, 3.
type Axis struct {
	First int
	Last  int
}

// Len returns the number of valid indices on the axis.
func (a Axis) Len() int {
	if a.Last < a.First {
		return 0
	}
	return a.Last - a.First + 1
}

// Contains reports whether i is a valid index on the axis.
func (a Axis) Contains(i int) bool {
	return i >= a.First && i <= a.Last
}

// String returns the range in first:last form.
func (a Axis) String() string {
	return fmt.Sprintf("%d:%d", a.First, a.Last)
}

// Axes is the ordered sequence of per-dimension index ranges of an
// array, one Axis per dimension. A rank-0 (scalar) array has empty
// Axes.
type Axes []Axis

// OfLengths returns zero-based Axes with the given dimension lengths.
//
// Example:
//
//	OfLengths(2, 3) // (0:1, 0:2)
func OfLengths(sizes ...int) Axes {
	axes := make(Axes, len(sizes))
	for i, n := range sizes {
		axes[i] = Axis{First: 0, Last: n - 1}
	}
	return axes
}

// NumElements returns the total number of elements spanned by the
// axes. Empty axes describe a scalar, which has one element.
func (ax Axes) NumElements() int {
	n := 1
	for _, a := range ax {
		n *= a.Len()
	}
	return n
}

// Validate checks that every axis spans at least one index.
func (ax Axes) Validate() error {
	for i, a := range ax {
		if a.Len() <= 0 {
			return fmt.Errorf("invalid axis at dimension %d: %s (must span at least one index)", i, a)
		}
	}
	return nil
}

// Equal reports whether two axis sets have the same rank and identical
// per-dimension ranges. Matching lengths with shifted ranges are not
// equal.
func (ax Axes) Equal(other Axes) bool {
	if len(ax) != len(other) {
		return false
	}
	for i := range ax {
		if ax[i] != other[i] {
			return false
		}
	}
	return true
}

// Concat returns the concatenation of ax followed by other.
func (ax Axes) Concat(other Axes) Axes {
	out := make(Axes, 0, len(ax)+len(other))
	out = append(out, ax...)
	return append(out, other...)
}

// Clone returns a copy of the axes.
func (ax Axes) Clone() Axes {
	out := make(Axes, len(ax))
	copy(out, ax)
	return out
}

// String returns the axes in (first:last, ...) form.
func (ax Axes) String() string {
	parts := make([]string, len(ax))
	for i, a := range ax {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// computeStrides returns row-major strides over the axis lengths.
// strides[i] is the product of all dimension lengths after i.
func (ax Axes) computeStrides() []int {
	strides := make([]int, len(ax))
	if len(ax) == 0 {
		return strides
	}
	strides[len(ax)-1] = 1
	for i := len(ax) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * ax[i+1].Len()
	}
	return strides
}

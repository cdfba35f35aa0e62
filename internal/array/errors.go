package array

import "fmt"

// ShapeMismatchError reports operand axes that fail an operation's
// shape precondition. It is always raised before any write, so a
// failed in-place operation leaves its destination untouched.
type ShapeMismatchError struct {
	// A and B are the axes of the two operands.
	A, B Axes
	// Dest holds the destination axes of an in-place operation,
	// nil otherwise.
	Dest Axes
	// Concat is set when Dest had to be the concatenation of A's and
	// B's axes rather than equal to them.
	Concat bool
}

var _ error = (*ShapeMismatchError)(nil)

func (e *ShapeMismatchError) Error() string {
	switch {
	case e.Concat:
		return fmt.Sprintf("axes(dest) must concatenate axes(A) and axes(B), got dest=%v, A=%v, B=%v", e.Dest, e.A, e.B)
	case e.Dest != nil:
		return fmt.Sprintf("axes of dest, A and B must all match, got %v, %v and %v", e.Dest, e.A, e.B)
	default:
		return fmt.Sprintf("axes of A and B must match, got %v and %v", e.A, e.B)
	}
}

// Package product implements shape-checked products over the generic
// array abstraction: the Hadamard (elementwise) product of two
// equally-shaped arrays and the tensor (outer) product of two arrays
// of arbitrary rank, each with an allocating and an in-place variant.
//
// All shape preconditions are checked before any write, so a failed
// in-place call leaves its destination untouched. The only error kind
// is *array.ShapeMismatchError. Traversal strategy (flat linear loops
// with vectorized kernels vs. multi-index iteration) follows the
// operands' IndexStyle and never changes results.
package product

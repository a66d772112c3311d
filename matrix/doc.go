// Package matrix provides the square integer weight storage behind every graph.
//
// The matrix package provides:
//
//   - Dense: an n×n row-major []int buffer with checked accessors (At, Set)
//     and an unchecked hot-path Get used by traversal kernels.
//   - FromRows / ToRows: copy-in and copy-out of [][]int row slices, with
//     validation of emptiness and squareness.
//   - Element-wise kernels (Add, Sub, Scale, Div, AddScalar), the matrix
//     product Mul, Transpose, Equal and a lexicographic Compare.
//   - Closure: Warshall's reflexive transitive closure, used for exact
//     reachability.
//
// Errors are package sentinels (ErrEmpty, ErrNonSquare, ErrDimensionMismatch,
// ErrOutOfRange, ErrDivideByZero, ErrNilMatrix) wrapped with the call site and
// matched via errors.Is. No exported function panics on user input, Get aside.
//
// Matrices are best for dense or small graphs where O(V²) memory is acceptable.
package matrix

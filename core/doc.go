// Package core provides the dense weight-matrix Graph every algorithm in
// densegraph runs on, together with its load contract and whole-graph operators.
//
// A Graph G = (V, W) has vertices 0..n-1 and a square integer matrix W:
//
//   - W[i][j] == NoEdge (0) means "no edge from i to j"; a genuine zero-weight
//     edge cannot be expressed.
//   - Load copies and validates the matrix (matrix.ErrEmpty, matrix.ErrNonSquare)
//     and derives an immutable Classification once:
//     Directed iff W is not symmetric, Negative iff some W[i][j] < 0,
//     Weighted iff some W[i][j] < 0 or > 1.
//   - A Graph that was never loaded (or whose last Load failed) reports
//     Loaded() == false and NumVertices() == 0; At returns ErrNotLoaded.
//
// Algorithms consume the read-only View interface, which *Graph implements.
// Derived graphs (Underlying, WithoutPath, and every operator) are new,
// freshly classified Graphs; the source is never mutated.
//
// Operators:
//
//	Add, Sub, Mul        - element-wise sum/difference and matrix product
//	Scale, Div, Negate   - scalar multiply, truncating divide, sign flip
//	Increment, Decrement - ±1 on every entry (NoEdge entries included)
//	Equal, Contains      - structural equality and subgraph containment
//	Compare              - containment, then edge count, then lexicographic order
//	Reachability         - reflexive transitive closure (see StronglyConnected)
//
// Concurrency:
//
// Graph guards its matrix pointer with a sync.RWMutex. The matrix itself is
// never modified after Load, so concurrent queries are safe; a concurrent
// Load swaps the snapshot atomically with respect to each accessor call.
//
// See example_test.go for usage.
package core

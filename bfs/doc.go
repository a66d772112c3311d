// Package bfs provides breadth-first search over a dense core.View.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source.
//   - Returns a Result containing:
//   - Dist: distance from the source (core.Infinity if unreached)
//   - Pred: predecessor in the BFS tree (core.None for the source and unreached)
//   - Color: core.Black for every reached vertex, core.White otherwise
//   - Order: dequeue sequence
//   - Supports observation hooks OnEnqueue and OnDequeue.
//
// Determinism
//
//	Neighbors of a vertex are scanned in increasing index and every vertex is
//	enqueued at most once, so distances, predecessors and order are fully
//	reproducible. Among several shortest paths, ties resolve toward the
//	lowest-indexed intermediate vertices.
//
// Weights are ignored: any entry other than core.NoEdge is an edge.
//
// Complexity
//
//   - Time:   O(n²)  (each row of the matrix is scanned once)
//   - Memory: O(n)
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrNotLoaded         if the graph has no matrix (wraps core.ErrNotLoaded).
//   - ErrSourceOutOfRange  if the source is outside [0, n).
//   - ErrUnreachable       from Result.PathTo for an unreached destination.
package bfs

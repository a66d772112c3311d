// Package dfs implements depth-first search and first-back-edge cycle
// detection on a dense core.View, supporting directed and undirected graphs.
//
// What:
//
//   - DFS: explores every vertex, starting a new tree at each still-unvisited
//     vertex in increasing index and scanning out-neighbors in increasing
//     index. Records predecessors, discovery and finish stamps from one
//     shared counter, and the post-order. Result.LastFinishedRoot picks the
//     forest root that finished last.
//   - DetectCycle: same traversal, stops at the first back edge (an edge to a
//     Gray vertex). In undirected graphs the edge back to the DFS predecessor
//     does not count. CycleResult.Cycle rebuilds the closed cycle.
//   - TopologicalSort: reverse post-order of DFS, checked against every arc;
//     any cycle (undirected edges and self-loops included) yields
//     ErrCycleDetected.
//
// Why:
//   - Directed connectivity picks its BFS root from LastFinishedRoot.
//   - Cycle existence queries need a single witness, not every cycle.
//
// Key Types & Constants:
//
//   - core.White, core.Gray, core.Black (visitation markers)
//   - Option: functional options (WithOnVisit, WithOnExit)
//   - Result, CycleResult
//
// Implementation:
//
// Both traversals use an explicit stack of (vertex, next-neighbor) frames
// instead of recursion; the order of discoveries and finishes is the same
// as the textbook recursive DFS.
//
// Complexity:
//
//   - Time:   O(n²) on the dense matrix.
//   - Memory: O(n).
//
// Errors:
//
//   - ErrGraphNil   if g is nil.
//   - ErrNotLoaded  if g has no matrix (wraps core.ErrNotLoaded).
//   - ErrCycleDetected from TopologicalSort when no order exists.
package dfs

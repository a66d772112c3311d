// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm on a dense core.View with arbitrary integer weights.
//
// What:
//
//	BellmanFord(g, src, opts...) runs n-1 relaxation rounds over all edges in
//	row-major order, then one more pass. An edge still relaxable on that pass
//	is definitive evidence of a negative cycle reachable from src; it is
//	reported as Result.Relaxable and Result.NegativeCycle recovers the cycle.
//
// Options:
//
//	WithSourceDistance(d) seeds the source distance (default 0).
//
// Undirected graphs:
//
//	The edge from a vertex back to its current predecessor is skipped, so a
//	single negative undirected edge is not mistaken for a two-vertex cycle.
//
// Complexity:
//
//	Time O(n³) on the dense matrix, memory O(n).
package bellmanford

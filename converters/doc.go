// Package converters provides two-way adapters between core.Graph and
// gonum's graph packages (gonum.org/v1/gonum/graph).
//
// ToGonum exports the weight matrix as a simple.WeightedDirectedGraph with
// one node per vertex (IDs 0..n-1); ToGonumUndirected exports the underlying
// undirected shape. FromGonum imports any graph.Weighted whose node IDs are
// exactly 0..n-1 and whose weights are non-zero integers.
//
// gonum's simple graphs cannot hold self-loops, so diagonal entries are
// dropped on export.
package converters

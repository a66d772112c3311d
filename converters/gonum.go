package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/densegraph/core"
)

var (
	// ErrNotLoaded is returned when exporting an unloaded graph.
	ErrNotLoaded = fmt.Errorf("converters: %w", core.ErrNotLoaded)

	// ErrNodeIDs is returned by FromGonum when node IDs are not exactly 0..n-1.
	ErrNodeIDs = errors.New("converters: node IDs must be 0..n-1")

	// ErrWeight is returned by FromGonum for a weight that is not a non-zero
	// integer representable as int.
	ErrWeight = errors.New("converters: edge weight must be a non-zero integer")
)

// ToGonum exports g as a weighted directed gonum graph. Every vertex becomes
// a node; every off-diagonal non-zero entry W[i][j] becomes an edge i→j of
// weight W[i][j]. Undirected graphs yield both directions.
// Complexity: O(n²).
func ToGonum(g core.View) (*simple.WeightedDirectedGraph, error) {
	if g == nil || !g.Loaded() {
		return nil, ErrNotLoaded
	}
	n := g.NumVertices()
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < n; i++ {
		out.AddNode(simple.Node(i))
	}
	var w int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if w = g.Weight(i, j); w == core.NoEdge {
				continue
			}
			out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(i), simple.Node(j), float64(w)))
		}
	}

	return out, nil
}

// ToGonumUndirected exports the underlying undirected shape of g: an edge
// {i, j} exists when either W[i][j] or W[j][i] is non-zero. Weights are
// discarded.
// Complexity: O(n²).
func ToGonumUndirected(g core.View) (*simple.UndirectedGraph, error) {
	if g == nil || !g.Loaded() {
		return nil, ErrNotLoaded
	}
	n := g.NumVertices()
	out := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		out.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.Weight(i, j) != core.NoEdge || g.Weight(j, i) != core.NoEdge {
				out.SetEdge(out.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}

	return out, nil
}

// FromGonum builds a core.Graph from a weighted gonum graph. For directed
// gonum graphs only From-edges are read, so an undirected source yields a
// symmetric matrix.
//
// Errors:
//   - ErrNodeIDs if the IDs are not a permutation of 0..n-1 (or n == 0).
//   - ErrWeight if some edge weight is zero, fractional or out of int range.
//
// Complexity: O(V + E).
func FromGonum(src graph.Weighted) (*core.Graph, error) {
	nodes := graph.NodesOf(src.Nodes())
	n := len(nodes)
	if n == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", ErrNodeIDs)
	}
	for _, nd := range nodes {
		if id := nd.ID(); id < 0 || id >= int64(n) {
			return nil, fmt.Errorf("%w: found %d with %d nodes", ErrNodeIDs, id, n)
		}
	}

	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for _, u := range nodes {
		uid := u.ID()
		to := src.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			w := src.WeightedEdge(uid, vid).Weight()
			if w == 0 || w != math.Trunc(w) || w > math.MaxInt32 || w < math.MinInt32 {
				return nil, fmt.Errorf("%w: %d->%d has %v", ErrWeight, uid, vid, w)
			}
			rows[uid][vid] = int(w)
		}
	}

	return core.New(rows)
}

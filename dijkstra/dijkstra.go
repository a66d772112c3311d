// Package dijkstra implements Dijkstra's shortest-path algorithm on dense
// weighted graphs with non-negative weights.
//
// Notes on implementation choices:
//
//   - The minimum is found by a linear scan each round (no heap): on a dense
//     matrix every extraction already costs O(n) for relaxation, so a heap
//     would not improve the O(n²) bound.
//   - Ties are broken toward the lowest vertex index.
//   - A round in which no unvisited vertex has a finite distance is skipped.
package dijkstra

import (
	"github.com/katalvlaran/densegraph/core"
)

// Dijkstra computes shortest distances from src to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. g must be loaded (ErrNotLoaded).
//  3. src must be in [0, n) (ErrSourceOutOfRange).
//  4. g must not be classified negative (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(n²)
//   - Space: O(n)
func Dijkstra(g core.View, src int) (*Result, error) {
	// 1) Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Loaded() {
		return nil, ErrNotLoaded
	}

	// 2) Validate source
	n := g.NumVertices()
	if src < 0 || src >= n {
		return nil, ErrSourceOutOfRange
	}

	// 3) Fail fast on negative weights
	if g.Negative() {
		return nil, ErrNegativeWeight
	}

	// 4) Initialize runner and run the n-1 rounds
	r := &runner{g: g, n: n}
	r.init(src)
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g   core.View // read-only within Dijkstra
	n   int
	res *Result
}

// init sets every distance to core.Infinity, every predecessor to core.None,
// and the source distance to zero.
func (r *runner) init(src int) {
	r.res = &Result{
		Source:  src,
		Dist:    make([]int, r.n),
		Pred:    make([]int, r.n),
		Visited: make([]bool, r.n),
	}
	for v := 0; v < r.n; v++ {
		r.res.Dist[v] = core.Infinity
		r.res.Pred[v] = core.None
	}
	r.res.Dist[src] = 0
}

// process runs n-1 rounds of extract-minimum and relaxation.
func (r *runner) process() {
	for round := 0; round < r.n-1; round++ {
		u := r.extractMin()
		if u == core.None {
			continue // nothing finite left this round
		}
		r.res.Visited[u] = true
		r.relax(u)
	}
}

// extractMin returns the unvisited vertex with the smallest finite distance,
// lowest index first, or core.None.
func (r *runner) extractMin() int {
	best, bestDist := core.None, core.Infinity
	for v := 0; v < r.n; v++ {
		if !r.res.Visited[v] && r.res.Dist[v] < bestDist {
			best, bestDist = v, r.res.Dist[v]
		}
	}

	return best
}

// relax improves every unvisited out-neighbor of u through u.
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	var w int
	for v := 0; v < r.n; v++ {
		if r.res.Visited[v] {
			continue
		}
		if w = r.g.Weight(u, v); w == core.NoEdge {
			continue
		}
		if du+w < r.res.Dist[v] {
			r.res.Dist[v] = du + w
			r.res.Pred[v] = u
		}
	}
}

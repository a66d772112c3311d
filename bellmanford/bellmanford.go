package bellmanford

import (
	"github.com/katalvlaran/densegraph/core"
)

// BellmanFord relaxes every edge of g for n-1 rounds starting from src, then
// makes one more pass to find an edge that can still be relaxed.
//
// Edges are visited in row-major order. A round skips:
//   - sources u whose distance is still core.Infinity;
//   - on undirected graphs, the edge u→Pred[u], which is the tree edge
//     that reached u walked backwards and not an independent edge.
//
// Relaxation: Dist[v] = Dist[u] + W[u][v] and Pred[v] = u when strictly
// smaller.
//
// Returns ErrGraphNil, ErrNotLoaded or ErrSourceOutOfRange for invalid input.
// Complexity: O(n³) time, O(n) memory.
func BellmanFord(g core.View, src int, opts ...Option) (*Result, error) {
	// 1) Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Loaded() {
		return nil, ErrNotLoaded
	}
	n := g.NumVertices()
	if src < 0 || src >= n {
		return nil, ErrSourceOutOfRange
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Initialize state
	r := &relaxer{g: g, n: n, directed: g.Directed()}
	r.init(src, o.SourceDistance)

	// 3) n-1 full rounds
	for round := 0; round < n-1; round++ {
		r.round()
	}

	// 4) Final detection pass
	r.detect()

	return r.res, nil
}

// relaxer holds the mutable state of one run.
type relaxer struct {
	g        core.View
	n        int
	directed bool
	res      *Result
}

func (r *relaxer) init(src, seed int) {
	r.res = &Result{
		Source: src,
		Dist:   make([]int, r.n),
		Pred:   make([]int, r.n),
	}
	for v := 0; v < r.n; v++ {
		r.res.Dist[v] = core.Infinity
		r.res.Pred[v] = core.None
	}
	r.res.Dist[src] = seed
}

// candidate reports whether u→v takes part in relaxation and returns its weight.
func (r *relaxer) candidate(u, v int) (int, bool) {
	w := r.g.Weight(u, v)
	if w == core.NoEdge {
		return 0, false
	}
	if !r.directed && r.res.Pred[u] == v {
		return 0, false
	}
	if r.res.Dist[u] == core.Infinity {
		return 0, false
	}

	return w, true
}

func (r *relaxer) round() {
	for u := 0; u < r.n; u++ {
		for v := 0; v < r.n; v++ {
			w, ok := r.candidate(u, v)
			if !ok {
				continue
			}
			if d := r.res.Dist[u] + w; d < r.res.Dist[v] {
				r.res.Dist[v] = d
				r.res.Pred[v] = u
			}
		}
	}
}

// detect records the first edge that still relaxes and stops.
func (r *relaxer) detect() {
	for u := 0; u < r.n; u++ {
		for v := 0; v < r.n; v++ {
			w, ok := r.candidate(u, v)
			if !ok {
				continue
			}
			if r.res.Dist[u]+w < r.res.Dist[v] {
				r.res.Pred[v] = u
				r.res.Relaxable = &Edge{From: u, To: v}
				return
			}
		}
	}
}

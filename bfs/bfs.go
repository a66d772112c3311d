// Package bfs provides breadth-first search over a dense core.View,
// returning edge-count distances, predecessor links, and visit order.
package bfs

import (
	"github.com/katalvlaran/densegraph/core"
)

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph core.View
	opts  Options
	n     int
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g from src.
//
// Neighbors are scanned in increasing index, a vertex is enqueued at most
// once (Gray on enqueue, Black on dequeue), so among several shortest paths
// the one through the lowest-indexed vertices wins.
//
// Returns ErrGraphNil, ErrNotLoaded or ErrSourceOutOfRange for invalid
// input; no traversal is attempted in that case.
// Complexity: O(n²) time, O(n) memory.
func BFS(g core.View, src int, opts ...Option) (*Result, error) {
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

	w := &walker{
		graph: g,
		opts:  o,
		n:     n,
		queue: make([]int, 0, n),
		res:   newResult(src, n),
	}
	w.enqueue(src, core.None)
	w.loop()

	return w.res, nil
}

// newResult allocates sentinel-initialized state for n vertices.
func newResult(src, n int) *Result {
	r := &Result{
		Source: src,
		Dist:   make([]int, n),
		Pred:   make([]int, n),
		Color:  make([]core.Color, n), // zero value is core.White
		Order:  make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		r.Dist[v] = core.Infinity
		r.Pred[v] = core.None
	}

	return r
}

// enqueue marks v Gray, records its predecessor and distance, and queues it.
func (w *walker) enqueue(v, parent int) {
	w.res.Color[v] = core.Gray
	w.res.Pred[v] = parent
	if parent == core.None {
		w.res.Dist[v] = 0
	} else {
		w.res.Dist[v] = w.res.Dist[parent] + 1
	}
	w.opts.OnEnqueue(v, w.res.Dist[v])
	w.queue = append(w.queue, v)
}

// dequeue pops the first vertex and invokes OnDequeue.
func (w *walker) dequeue() int {
	v := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(v, w.res.Dist[v])

	return v
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		cur := w.dequeue()
		for v := 0; v < w.n; v++ {
			if w.graph.Weight(cur, v) != core.NoEdge && w.res.Color[v] == core.White {
				w.enqueue(v, cur)
			}
		}
		w.res.Color[cur] = core.Black
		w.res.Order = append(w.res.Order, cur)
	}
}

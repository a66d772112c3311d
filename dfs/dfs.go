// Package dfs implements depth-first search on a dense core.View.
//
// Recursion is replaced by an explicit stack of (vertex, next-neighbor)
// frames, so stack depth does not depend on the goroutine stack while the
// discovery/finish stamps match the recursive formulation exactly.
package dfs

import (
	"github.com/katalvlaran/densegraph/core"
)

// frame is one suspended visit: vertex v resumes its neighbor scan at next.
type frame struct {
	v    int
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph core.View
	opts  Options
	n     int
	color []core.Color
	time  int
	res   *Result
	stack []frame
}

// validate performs the shared nil/loaded checks.
func validate(g core.View) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Loaded() {
		return ErrNotLoaded
	}

	return nil
}

// DFS visits every vertex: each still-White vertex, in increasing index,
// becomes a root, and out-neighbors are explored in increasing index.
// Returns ErrGraphNil or ErrNotLoaded without traversing.
// Complexity: O(n²) time, O(n) memory.
func DFS(g core.View, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if err := validate(g); err != nil {
		return nil, err
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize state
	n := g.NumVertices()
	w := &dfsWalker{
		graph: g,
		opts:  o,
		n:     n,
		color: make([]core.Color, n),
		res: &Result{
			Pred:      make([]int, n),
			Discovery: make([]int, n),
			Finish:    make([]int, n),
			Order:     make([]int, 0, n),
		},
		stack: make([]frame, 0, n),
	}
	for v := 0; v < n; v++ {
		w.res.Pred[v] = core.None
	}

	// 4. Forest traversal
	for v := 0; v < n; v++ {
		if w.color[v] == core.White {
			w.visit(v)
		}
	}

	return w.res, nil
}

// discover stamps v Gray and pushes its frame.
func (w *dfsWalker) discover(v, parent int) {
	w.color[v] = core.Gray
	w.res.Pred[v] = parent
	w.time++
	w.res.Discovery[v] = w.time
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(v)
	}
	w.stack = append(w.stack, frame{v: v})
}

// finish stamps v Black and pops its frame.
func (w *dfsWalker) finish(v int) {
	w.color[v] = core.Black
	w.time++
	w.res.Finish[v] = w.time
	w.res.Order = append(w.res.Order, v)
	if w.opts.OnExit != nil {
		w.opts.OnExit(v)
	}
	w.stack = w.stack[:len(w.stack)-1]
}

// visit runs the tree rooted at root to completion.
func (w *dfsWalker) visit(root int) {
	w.discover(root, core.None)
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next >= w.n {
			w.finish(top.v)
			continue
		}
		u, i := top.v, top.next
		top.next++ // top may be invalidated by discover below
		if w.graph.Weight(u, i) != core.NoEdge && w.color[i] == core.White {
			w.discover(i, u)
		}
	}
}

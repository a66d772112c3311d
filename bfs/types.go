// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.View.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/paths"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNotLoaded is returned when the graph has no loaded matrix.
	// It wraps core.ErrNotLoaded.
	ErrNotLoaded = fmt.Errorf("bfs: %w", core.ErrNotLoaded)

	// ErrSourceOutOfRange is returned when the source is outside [0, n).
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrUnreachable is returned by PathTo for a vertex the search never reached.
	ErrUnreachable = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds observation hooks for a BFS run. Hooks never alter the
// traversal; they only see it.
type Options struct {
	// OnEnqueue is called when a vertex is discovered (turned Gray),
	// with its distance from the source.
	OnEnqueue func(v, depth int)

	// OnDequeue is called when a vertex leaves the queue, just before its
	// neighbors are scanned.
	OnDequeue func(v, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a BFS run. All slices have length n.
//   - Dist[v]: edge count from Source, core.Infinity if unreached.
//   - Pred[v]: predecessor on one shortest path, core.None for Source and unreached.
//   - Color[v]: core.Black for reached vertices, core.White otherwise.
//   - Order: vertices in dequeue order.
type Result struct {
	Source int
	Dist   []int
	Pred   []int
	Color  []core.Color
	Order  []int
}

// Reached reports whether v was reached from Source.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != core.Infinity
}

// AllReached reports whether every vertex finished, i.e. Source reaches all.
func (r *Result) AllReached() bool {
	for _, c := range r.Color {
		if c != core.Black {
			return false
		}
	}

	return true
}

// PathTo reconstructs the path from Source to dst.
// Returns ErrUnreachable if dst was not reached.
func (r *Result) PathTo(dst int) ([]int, error) {
	if !r.Reached(dst) {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, dst, r.Source)
	}
	p, ok := paths.Reconstruct(r.Pred, r.Source, dst)
	if !ok {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, dst, r.Source)
	}

	return p, nil
}

// Package bellmanford defines options, result types and sentinel errors for
// the Bellman-Ford relaxation primitive over a dense core.View.
package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/paths"
)

var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bellmanford: graph is nil")

	// ErrNotLoaded is returned when the graph has no loaded matrix.
	// It wraps core.ErrNotLoaded.
	ErrNotLoaded = fmt.Errorf("bellmanford: %w", core.ErrNotLoaded)

	// ErrSourceOutOfRange is returned when the source is outside [0, n).
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrUnreachable is returned by PathTo for a vertex that was never reached.
	ErrUnreachable = errors.New("bellmanford: vertex not reached")
)

// Option configures a BellmanFord run via functional arguments.
type Option func(*Options)

// Options holds tunables for a run.
type Options struct {
	// SourceDistance is the initial distance of the source vertex.
	// It is 0 for ordinary shortest paths; the negative-cycle detector seeds
	// its synthetic vertex with -1 so the unit edges leaving it cost nothing.
	SourceDistance int
}

// DefaultOptions returns Options with SourceDistance 0.
func DefaultOptions() Options {
	return Options{SourceDistance: 0}
}

// WithSourceDistance seeds the source with d instead of 0.
func WithSourceDistance(d int) Option {
	return func(o *Options) {
		o.SourceDistance = d
	}
}

// Edge is a directed pair of vertices.
type Edge struct {
	From int
	To   int
}

// Result holds the outcome of a run. All slices have length n.
//   - Dist[v]: tentative distance after n-1 rounds, core.Infinity if unreached.
//   - Pred[v]: last relaxing predecessor, core.None for Source and unreached.
//   - Relaxable: the first edge (row-major) that still relaxed after
//     convergence, or nil. A non-nil value is proof of a negative cycle
//     reachable from Source; Pred[Relaxable.To] has been set to
//     Relaxable.From.
type Result struct {
	Source    int
	Dist      []int
	Pred      []int
	Relaxable *Edge
}

// HasNegativeCycle reports whether the final pass found a relaxable edge.
func (r *Result) HasNegativeCycle() bool {
	return r.Relaxable != nil
}

// NegativeCycle returns the vertices of a negative cycle in forward edge
// order (each vertex is followed by one of its out-neighbors, the last one
// leads back to the first). The cycle is not closed: the first vertex is
// not repeated.
//
// It walks len(Pred) predecessor steps back from Relaxable.To, which lands
// on the cycle, then follows predecessors until the start repeats.
// Returns nil when there is no relaxable edge or the chain breaks.
// Complexity: O(n).
func (r *Result) NegativeCycle() []int {
	if r.Relaxable == nil {
		return nil
	}
	n := len(r.Pred)
	x := r.Relaxable.To
	for i := 0; i < n; i++ {
		if x = r.Pred[x]; x == core.None {
			return nil
		}
	}

	back := []int{x}
	for y := r.Pred[x]; y != x; y = r.Pred[y] {
		if y == core.None || len(back) > n {
			return nil
		}
		back = append(back, y)
	}

	// back lists the cycle against edge direction
	for i, j := 0, len(back)-1; i < j; i, j = i+1, j-1 {
		back[i], back[j] = back[j], back[i]
	}

	return back
}

// PathTo reconstructs Source -> dst from the predecessors. It is meaningful
// only when HasNegativeCycle is false.
func (r *Result) PathTo(dst int) ([]int, error) {
	if dst < 0 || dst >= len(r.Dist) || r.Dist[dst] == core.Infinity {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, dst, r.Source)
	}
	p, ok := paths.Reconstruct(r.Pred, r.Source, dst)
	if !ok {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, dst, r.Source)
	}

	return p, nil
}

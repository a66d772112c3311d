// Package dijkstra defines result types and sentinel errors for the
// linear-scan Dijkstra shortest-path algorithm on dense weighted graphs.
//
// Errors (sentinel):
//
//	– ErrGraphNil          if the provided graph is nil.
//	– ErrNotLoaded         if the graph has no matrix (wraps core.ErrNotLoaded).
//	– ErrSourceOutOfRange  if the source is outside [0, n).
//	– ErrNegativeWeight    if the graph is classified as having negative weights.
//	– ErrUnreachable       from Result.PathTo for an unreached destination.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/paths"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNotLoaded indicates that the graph has no loaded matrix.
	ErrNotLoaded = fmt.Errorf("dijkstra: %w", core.ErrNotLoaded)

	// ErrSourceOutOfRange indicates a source vertex outside [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that the graph carries a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable is returned by PathTo for a vertex that was never reached.
	ErrUnreachable = errors.New("dijkstra: vertex not reached")
)

// Result carries the per-vertex output of one run.
//   - Dist[v]: minimum total weight from Source, core.Infinity if unreached.
//   - Pred[v]: predecessor on that path, core.None for Source and unreached.
//   - Visited[v]: whether v was extracted as a round minimum.
type Result struct {
	Source  int
	Dist    []int
	Pred    []int
	Visited []bool
}

// PathTo reconstructs the minimum-weight path Source -> dst.
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

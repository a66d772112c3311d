// Package dfs defines types and options for depth-first search over a dense
// core.View: the full-forest traversal with timestamps and the
// cycle-sensitive variant that stops at the first back edge.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/paths"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or DetectCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNotLoaded is returned when the graph has no loaded matrix.
	// It wraps core.ErrNotLoaded.
	ErrNotLoaded = fmt.Errorf("dfs: %w", core.ErrNotLoaded)
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds observation hooks. Hooks never alter the traversal.
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	OnVisit func(v int)

	// OnExit, if non-nil, is invoked when a vertex finishes (post-order).
	OnExit func(v int)
}

// DefaultOptions returns Options without hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int)) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// Result captures the outcome of a full depth-first traversal.
// Discovery and Finish stamps come from one shared counter starting at 1,
// so every stamp in 1..2n is used exactly once.
type Result struct {
	// Pred[v] is the vertex that discovered v, or core.None for a root.
	Pred []int

	// Discovery[v] is the stamp taken when v turned Gray.
	Discovery []int

	// Finish[v] is the stamp taken when v turned Black.
	Finish []int

	// Order records vertices in the sequence they finished (post-order).
	Order []int
}

// Roots returns the roots of the DFS forest in increasing index.
func (r *Result) Roots() []int {
	var roots []int
	for v, p := range r.Pred {
		if p == core.None {
			roots = append(roots, v)
		}
	}

	return roots
}

// LastFinishedRoot returns the forest root with the largest finish stamp,
// or core.None for an empty result.
func (r *Result) LastFinishedRoot() int {
	best := core.None
	for v, p := range r.Pred {
		if p != core.None {
			continue
		}
		if best == core.None || r.Finish[v] > r.Finish[best] {
			best = v
		}
	}

	return best
}

// CycleResult reports the first back edge found by DetectCycle.
// When Found, the edge To -> From closes a cycle: From is a Gray ancestor of
// To in the DFS tree recorded by Pred.
type CycleResult struct {
	Found bool
	From  int
	To    int
	Pred  []int
}

// Cycle reconstructs the closed vertex sequence From -> ... -> To -> From,
// or nil when nothing was found.
func (c *CycleResult) Cycle() []int {
	if !c.Found {
		return nil
	}
	p, ok := paths.Reconstruct(c.Pred, c.From, c.To)
	if !ok {
		return nil
	}

	return append(p, c.From)
}

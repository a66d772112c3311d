package algorithms

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dfs"
	"github.com/katalvlaran/densegraph/negcycle"
	"github.com/katalvlaran/densegraph/paths"
)

// ContainsCycle reports the first cycle met by a cycle-sensitive DFS, roots
// and neighbors in increasing index. On undirected graphs the edge back to
// the DFS parent does not count, so a single undirected edge is acyclic; a
// self-loop is a cycle of one vertex.
//
// Errors: ErrNotLoaded.
// Complexity: O(n²).
func ContainsCycle(g core.View, opts ...Option) (CycleResult, error) {
	q := begin(buildOptions(opts), opContainsCycle)
	res, err := containsCycle(g, q)
	outcome := "acyclic"
	if res.Found {
		outcome = "cycle"
	}
	q.end(outcome, err)

	return res, err
}

func containsCycle(g core.View, q *query) (CycleResult, error) {
	out := CycleResult{Kind: AnyCycle}
	if _, err := loaded(g); err != nil {
		return out, err
	}
	q.describe(g)

	res, err := dfs.DetectCycle(g)
	if err != nil {
		return out, fmt.Errorf("algorithms: %w", err)
	}
	cyc := res.Cycle()
	if cyc == nil {
		return out, nil
	}
	out.Found = true
	out.Cycle = cyc
	// every step of a DFS tree path and the back edge is an existing edge
	out.Weight, _ = paths.Weight(g, cyc)

	return out, nil
}

// NegativeCycle reports one negative-weight cycle, rotated to start at its
// smallest vertex and closed. Graphs without negative entries answer
// immediately without a traversal.
//
// Errors: ErrNotLoaded.
// Complexity: O(n³).
func NegativeCycle(g core.View, opts ...Option) (CycleResult, error) {
	q := begin(buildOptions(opts), opNegativeCycle)
	res, err := negativeCycle(g, q)
	outcome := "none"
	if res.Found {
		outcome = "negative_cycle"
	}
	q.end(outcome, err)

	return res, err
}

func negativeCycle(g core.View, q *query) (CycleResult, error) {
	out := CycleResult{Kind: NegativeWeightCycle}
	if _, err := loaded(g); err != nil {
		return out, err
	}
	q.describe(g)

	c, err := negcycle.Detect(g)
	if err != nil {
		return out, fmt.Errorf("algorithms: %w", err)
	}
	if c == nil {
		return out, nil
	}
	out.Found = true
	out.Cycle = c.Vertices
	out.Weight = c.Weight

	return out, nil
}

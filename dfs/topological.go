// Package dfs provides topological ordering on a dense core.View.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every edge u→v, u appears before v. Every non-NoEdge entry is read as a
// directed arc, so an undirected edge i–j is the 2-cycle i→j→i and a
// self-loop is a cycle of length one.
//
// Complexity:
//
//   - Time:   O(n²) (one DFS plus one scan of the matrix)
//   - Memory: O(n)
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densegraph/core"
)

// ErrCycleDetected indicates that the graph admits no topological order.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// TopologicalSort returns the vertices in reverse DFS post-order.
//
// The order is verified against every arc afterwards: reverse post-order
// is a topological order exactly when the graph is acyclic, so the first
// arc u→v with v not after u is reported as ErrCycleDetected.
// Returns ErrGraphNil or ErrNotLoaded without traversing.
func TopologicalSort(g core.View) ([]int, error) {
	// 1. Full DFS (validates g)
	res, err := DFS(g)
	if err != nil {
		return nil, err
	}

	// 2. Reverse post-order
	n := len(res.Order)
	order := make([]int, n)
	pos := make([]int, n)
	for i, v := range res.Order {
		order[n-1-i] = v
		pos[v] = n - 1 - i
	}

	// 3. Every arc must point forward
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if g.Weight(u, v) != core.NoEdge && pos[u] >= pos[v] {
				return nil, fmt.Errorf("%w: arc %d->%d", ErrCycleDetected, u, v)
			}
		}
	}

	return order, nil
}

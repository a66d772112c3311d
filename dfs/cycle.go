// Package dfs implements cycle detection on a dense core.View.
//
// DetectCycle performs the same forest traversal as DFS and stops at the
// first back edge. For undirected graphs the edge back to the immediate DFS
// predecessor is the tree edge seen from the other side and is skipped.
package dfs

import (
	"github.com/katalvlaran/densegraph/core"
)

// DetectCycle reports the first back edge (v, i) found, recorded as
// From = i, To = v, together with the predecessor array at that moment.
// A self-loop is a back edge of length one.
// Returns ErrGraphNil or ErrNotLoaded without traversing.
// Complexity: O(n²) time, O(n) memory.
func DetectCycle(g core.View) (*CycleResult, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	n := g.NumVertices()
	directed := g.Directed()
	color := make([]core.Color, n)
	pred := make([]int, n)
	for v := range pred {
		pred[v] = core.None
	}
	stack := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if color[root] != core.White {
			continue
		}
		color[root] = core.Gray
		stack = append(stack[:0], frame{v: root})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= n {
				color[top.v] = core.Black
				stack = stack[:len(stack)-1]
				continue
			}
			v, i := top.v, top.next
			top.next++
			if g.Weight(v, i) == core.NoEdge {
				continue
			}
			switch color[i] {
			case core.White:
				pred[i] = v
				color[i] = core.Gray
				stack = append(stack, frame{v: i})
			case core.Gray:
				if directed || pred[v] != i {
					return &CycleResult{Found: true, From: i, To: v, Pred: pred}, nil
				}
			}
		}
	}

	return &CycleResult{Found: false, From: core.None, To: core.None, Pred: pred}, nil
}

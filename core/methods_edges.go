// File: methods_edges.go
// Role: Edge enumeration, counting, and the one-line textual summary.
// Determinism:
//   - Edges are produced in row-major order (from asc, then to asc).

package core

import "fmt"

// Edge is one non-NoEdge matrix entry.
type Edge struct {
	From   int
	To     int
	Weight int
}

// Edges lists every edge in row-major order. For undirected graphs each
// edge is reported once, with From <= To. An unloaded graph has no edges.
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	m, c := g.snapshot()
	if m == nil {
		return nil
	}

	n := m.Rows()
	out := make([]Edge, 0, n)
	var w, start int
	for i := 0; i < n; i++ {
		start = 0
		if !c.Directed {
			start = i
		}
		for j := start; j < n; j++ {
			if w = m.Get(i, j); w != NoEdge {
				out = append(out, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return out
}

// CountEdges returns the number of edges: every non-NoEdge entry for a
// directed graph, the upper triangle (diagonal included) for an undirected one.
// Complexity: O(n²).
func (g *Graph) CountEdges() int {
	m, c := g.snapshot()
	if m == nil {
		return 0
	}

	n := m.Rows()
	count := 0
	var start int
	for i := 0; i < n; i++ {
		start = 0
		if !c.Directed {
			start = i
		}
		for j := start; j < n; j++ {
			if m.Get(i, j) != NoEdge {
				count++
			}
		}
	}

	return count
}

// String renders the summary line, e.g.
// "This is an undirected graph with 3 vertices and 2 edges."
func (g *Graph) String() string {
	m, c := g.snapshot()
	if m == nil {
		return "This graph is not loaded."
	}
	if c.Directed {
		return fmt.Sprintf("This is a directed graph with %d vertices and %d edges.", m.Rows(), g.CountEdges())
	}

	return fmt.Sprintf("This is an undirected graph with %d vertices and %d edges.", m.Rows(), g.CountEdges())
}

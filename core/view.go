// File: view.go
// Role: Non-mutating derived graphs (underlying undirected graph, edge removal).
// Determinism:
//   - Results are freshly loaded graphs; their Classification is derived anew
//     and never copied from the source.
// Concurrency:
//   - Read lock on the source only while taking its snapshot.

package core

import "github.com/katalvlaran/densegraph/matrix"

// Underlying returns the undirected graph beneath g: U[i][j] = U[j][i] = 1
// whenever g has an edge in either direction between i and j. Self-loops
// are preserved as 1 on the diagonal.
//
// The result is symmetric and 0/1-valued, hence classified undirected and
// unweighted. g is not mutated.
// Complexity: O(n²).
func Underlying(g View) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Loaded() {
		return nil, ErrNotLoaded
	}

	n := g.NumVertices()
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if g.Weight(i, j) != NoEdge || g.Weight(j, i) != NoEdge {
				_ = m.Set(i, j, 1) // indices are in range by construction
				_ = m.Set(j, i, 1)
			}
		}
	}

	return fromDense(m), nil
}

// WithoutPath returns a copy of g in which every edge seq[k] -> seq[k+1]
// has been replaced by NoEdge. Only the listed direction is removed, so an
// undirected source may come back classified as directed.
//
// Vertices outside [0, n) in seq are ignored. g is not mutated.
// Complexity: O(n² + len(seq)).
func WithoutPath(g *Graph, seq []int) (*Graph, error) {
	m, err := loadedMatrix(g)
	if err != nil {
		return nil, err
	}

	cp := m.Clone()
	for k := 0; k+1 < len(seq); k++ {
		// out-of-range pairs are skipped by Set's own bounds check
		_ = cp.Set(seq[k], seq[k+1], NoEdge)
	}

	return fromDense(cp), nil
}

// Reachability returns the reflexive transitive closure of g as a graph:
// R[i][j] == 1 iff j is reachable from i. g is not mutated.
// Complexity: O(n³).
func Reachability(g *Graph) (*Graph, error) {
	m, err := loadedMatrix(g)
	if err != nil {
		return nil, err
	}
	r, err := matrix.Closure(m)
	if err != nil {
		return nil, err
	}

	return fromDense(r), nil
}

// StronglyConnected reports whether every vertex reaches every other one.
// For an undirected graph this is plain connectivity. An unloaded graph is
// never strongly connected.
// Complexity: O(n³).
func (g *Graph) StronglyConnected() bool {
	m, _ := g.snapshot()
	if m == nil {
		return false
	}
	r, err := matrix.Closure(m)
	if err != nil {
		return false
	}

	return r.IsComplete()
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Load contract and read-only getters.
// Policy:
//   - Load validates, copies, and classifies in one step; failure leaves the
//     graph unloaded.
//   - Getters take the read lock and never allocate, Rows/Clone aside.

package core

import (
	"fmt"

	"github.com/katalvlaran/densegraph/matrix"
)

// New creates a Graph and loads rows into it.
// Complexity: O(n²).
func New(rows [][]int) (*Graph, error) {
	g := &Graph{}
	if err := g.Load(rows); err != nil {
		return nil, err
	}

	return g, nil
}

// Load replaces the graph's matrix with a copy of rows and re-derives the
// Classification.
//
// Errors:
//   - matrix.ErrEmpty when rows has no row.
//   - matrix.ErrNonSquare when any row length differs from len(rows).
//
// On failure the graph is left unloaded, even if it held a matrix before.
// Complexity: O(n²).
func (g *Graph) Load(rows [][]int) error {
	m, err := matrix.FromRows(rows)

	g.mu.Lock()
	defer g.mu.Unlock()
	if err != nil {
		g.m = nil
		g.class = Classification{}
		return fmt.Errorf("core: load: %w", err)
	}
	g.m = m
	g.class = Classify(m)

	return nil
}

// fromDense wraps an already-owned matrix in a freshly classified Graph.
func fromDense(m *matrix.Dense) *Graph {
	return &Graph{m: m, class: Classify(m)}
}

// snapshot returns the current matrix and classification under the read lock.
// The matrix is immutable once loaded, so callers may read it without locking.
// A nil *Graph behaves as an unloaded one.
func (g *Graph) snapshot() (*matrix.Dense, Classification) {
	if g == nil {
		return nil, Classification{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m, g.class
}

// Loaded reports whether a matrix has been successfully loaded.
func (g *Graph) Loaded() bool {
	m, _ := g.snapshot()

	return m != nil
}

// NumVertices returns n, or 0 when the graph is unloaded.
func (g *Graph) NumVertices() int {
	m, _ := g.snapshot()
	if m == nil {
		return 0
	}

	return m.Rows()
}

// Weight returns W[i][j]. It never panics: an unloaded graph or an index
// outside [0, n) yields NoEdge.
// Complexity: O(1).
func (g *Graph) Weight(i, j int) int {
	m, _ := g.snapshot()
	if m == nil || i < 0 || j < 0 || i >= m.Rows() || j >= m.Rows() {
		return NoEdge
	}

	return m.Get(i, j)
}

// At is the checked variant of Weight.
//
// Errors:
//   - ErrNotLoaded on an unloaded graph.
//   - matrix.ErrOutOfRange for an index outside [0, n).
func (g *Graph) At(i, j int) (int, error) {
	m, _ := g.snapshot()
	if m == nil {
		return 0, ErrNotLoaded
	}

	return m.At(i, j)
}

// Directed reports whether the loaded matrix is asymmetric.
func (g *Graph) Directed() bool {
	_, c := g.snapshot()

	return c.Directed
}

// Weighted reports whether some entry is outside {0, 1}.
func (g *Graph) Weighted() bool {
	_, c := g.snapshot()

	return c.Weighted
}

// Negative reports whether some entry is negative.
func (g *Graph) Negative() bool {
	_, c := g.snapshot()

	return c.Negative
}

// Classification returns the value derived at the last successful Load.
func (g *Graph) Classification() Classification {
	_, c := g.snapshot()

	return c
}

// Rows returns a deep copy of the weight matrix, or nil when unloaded.
// Complexity: O(n²).
func (g *Graph) Rows() [][]int {
	m, _ := g.snapshot()
	if m == nil {
		return nil
	}

	return m.ToRows()
}

// Clone returns an independent Graph with the same matrix and classification.
// Cloning an unloaded graph yields an unloaded graph.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	m, c := g.snapshot()
	if m == nil {
		return &Graph{}
	}

	return &Graph{m: m.Clone(), class: c}
}

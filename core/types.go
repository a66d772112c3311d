// Package core defines the central Graph type, its immutable Classification,
// and the read-only View consumed by every traversal package.
//
// This file declares NoEdge, Classification, Graph, View and the sentinel
// errors of the package.
//
// Errors:
//
//	ErrNilGraph   - graph pointer is nil.
//	ErrNotLoaded  - the graph has no loaded weight matrix.
package core

import (
	"errors"
	"math"
	"sync"

	"github.com/katalvlaran/densegraph/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNotLoaded indicates an operation on a Graph whose matrix was never loaded.
	ErrNotLoaded = errors.New("core: graph is not loaded")
)

// NoEdge is the weight that marks the absence of an edge.
// A true edge weight of exactly zero therefore cannot be represented.
const NoEdge = 0

// Traversal-state sentinels shared by every algorithm package.
const (
	// Infinity is the distance of a vertex that has not been reached.
	Infinity = math.MaxInt
	// None is the predecessor of a root or unreached vertex.
	None = -1
)

// Color is the visitation state of a vertex during a traversal.
type Color uint8

const (
	White Color = iota // not discovered yet
	Gray               // discovered, not finished
	Black              // finished
)

// Classification is derived once from the weight matrix at load time and
// never recomputed for the lifetime of that load.
//
//   - Directed: the matrix is not symmetric.
//   - Weighted: some entry is < 0 or > 1.
//   - Negative: some entry is < 0.
type Classification struct {
	Directed bool
	Weighted bool
	Negative bool
}

// Classify scans m once and returns its Classification.
// Complexity: O(n²).
func Classify(m *matrix.Dense) Classification {
	c := Classification{Directed: !m.IsSymmetric()}
	n := m.Rows()
	var w int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w = m.Get(i, j)
			if w < 0 {
				c.Negative = true
				c.Weighted = true
			} else if w > 1 {
				c.Weighted = true
			}
		}
	}

	return c
}

// View is the read-only surface every algorithm consumes.
// *Graph implements it; packages may wrap a View to present an augmented graph
// without copying the matrix.
type View interface {
	// Loaded reports whether a weight matrix is present.
	Loaded() bool
	// NumVertices returns n, or 0 for an unloaded graph.
	NumVertices() int
	// Weight returns W[i][j]; NoEdge means "no edge".
	Weight(i, j int) int
	Directed() bool
	Weighted() bool
	Negative() bool
}

// Graph is a dense weight-matrix graph on vertices 0..n-1.
//
// The zero value is an unloaded graph. Load swaps in a fresh matrix and a
// freshly derived Classification; the matrix is never mutated in place, so
// readers hold the lock only long enough to grab the current snapshot.
type Graph struct {
	mu sync.RWMutex // guards m and class

	m     *matrix.Dense  // nil until a successful Load
	class Classification // derived from m at load time
}

// Compile-time assertion that *Graph satisfies View.
var _ View = (*Graph)(nil)

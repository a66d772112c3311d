package negcycle

import (
	"fmt"

	"github.com/katalvlaran/densegraph/bellmanford"
	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/paths"
)

// augmented presents g plus one synthetic vertex n with a unit edge to every
// original vertex and no incoming edges. It copies nothing.
type augmented struct {
	g core.View
	n int
}

var _ core.View = augmented{}

func (a augmented) Loaded() bool     { return true }
func (a augmented) NumVertices() int { return a.n + 1 }
func (a augmented) Directed() bool   { return a.g.Directed() }
func (a augmented) Weighted() bool   { return true }
func (a augmented) Negative() bool   { return a.g.Negative() }

func (a augmented) Weight(i, j int) int {
	switch {
	case i == a.n && j >= 0 && j < a.n:
		return 1
	case i == a.n || j == a.n:
		return core.NoEdge
	default:
		return a.g.Weight(i, j)
	}
}

// Detect reports one negative cycle of g, or nil when there is none.
//
// A graph without negative entries returns nil immediately. Otherwise g is
// augmented with a synthetic source that reaches every vertex through a
// unit edge, seeded at distance -1 so those edges cost nothing, and
// Bellman-Ford runs from it. The augmented view keeps g's directedness.
//
// The synthetic vertex has no incoming edges and so never lies on a
// predecessor cycle; it is filtered anyway before the cycle is rotated to
// start at its smallest vertex.
//
// Complexity: O(n³).
func Detect(g core.View) (*Cycle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Loaded() {
		return nil, ErrNotLoaded
	}
	if !g.Negative() {
		return nil, nil
	}

	n := g.NumVertices()
	res, err := bellmanford.BellmanFord(augmented{g: g, n: n}, n, bellmanford.WithSourceDistance(-1))
	if err != nil {
		return nil, fmt.Errorf("negcycle: %w", err)
	}
	raw := res.NegativeCycle()
	if raw == nil {
		return nil, nil
	}

	verts := make([]int, 0, len(raw)+1)
	for _, v := range raw {
		if v != n {
			verts = append(verts, v)
		}
	}
	if len(verts) == 0 {
		return nil, nil
	}
	verts = canonical(verts)
	verts = append(verts, verts[0])

	w, err := paths.Weight(g, verts)
	if err != nil {
		return nil, fmt.Errorf("negcycle: %w", err)
	}

	return &Cycle{Vertices: verts, Weight: w}, nil
}

// canonical rotates an open cycle so it starts at its smallest vertex,
// keeping direction.
func canonical(c []int) []int {
	k := 0
	for i, v := range c {
		if v < c[k] {
			k = i
		}
	}
	if k == 0 {
		return c
	}

	out := make([]int, 0, len(c))
	out = append(out, c[k:]...)
	out = append(out, c[:k]...)

	return out
}

package algorithms

import (
	"github.com/katalvlaran/densegraph/core"
)

// loaded returns n for a usable graph, ErrNotLoaded otherwise.
// A typed nil *core.Graph reports Loaded() == false and is caught here too.
func loaded(g core.View) (int, error) {
	if g == nil || !g.Loaded() {
		return 0, ErrNotLoaded
	}

	return g.NumVertices(), nil
}

// materialize returns g as a *core.Graph, copying it when g is some other
// View. Negative-cycle elimination needs an owned Graph to derive copies from.
func materialize(g core.View) (*core.Graph, error) {
	if cg, ok := g.(*core.Graph); ok {
		return cg, nil
	}

	n := g.NumVertices()
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = g.Weight(i, j)
		}
	}

	return core.New(rows)
}

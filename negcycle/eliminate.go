package negcycle

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/densegraph/core"
)

// Eliminate strips negative cycles from a copy of g until Detect finds none.
//
// Each pass removes every edge c[k]→c[k+1] of the detected cycle from the
// working copy and reloads it, so the Classification is derived afresh. Only
// the traversed direction is removed: an undirected input may come back
// directed. g itself is never modified.
//
// Returns the cycle-free copy and the number of cycles removed. Detect only
// reports cycles whose edges all exist, so each pass deletes at least one
// edge and the loop ends after at most n² passes.
//
// Complexity: O(k·n³) for k removed cycles.
func Eliminate(g *core.Graph, opts ...Option) (*core.Graph, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if !g.Loaded() {
		return nil, 0, ErrNotLoaded
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	work := g.Clone()
	removed := 0
	for {
		c, err := Detect(work)
		if err != nil {
			return nil, removed, err
		}
		if c == nil {
			break
		}

		if work, err = core.WithoutPath(work, c.Vertices); err != nil {
			return nil, removed, fmt.Errorf("negcycle: %w", err)
		}
		removed++
		cyclesStripped.Inc()
		o.Logger.WithFields(logrus.Fields{
			"cycle":  c.String(),
			"weight": c.Weight,
			"pass":   removed,
		}).Debug("stripped negative cycle")
	}

	return work, removed, nil
}

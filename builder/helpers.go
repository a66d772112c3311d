// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// helpers.go: shared edge emission and validation.

package builder

import (
	"github.com/katalvlaran/densegraph/core"
)

// Method tags used as error context.
const (
	methodBuildGraph  = "BuildGraph"
	methodPath        = "Path"
	methodCycle       = "Cycle"
	methodComplete    = "Complete"
	methodStar        = "Star"
	methodWheel       = "Wheel"
	methodGrid        = "Grid"
	methodBipartite   = "CompleteBipartite"
	methodRandomSparse = "RandomSparse"
)

// Minimum sizes per constructor.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinCompleteNodes = 1
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinGridDim       = 1
	MinPartition     = 1
)

// validateMin ensures got >= min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "n=%d < min=%d: %w", got, min, ErrTooFewVertices)
	}

	return nil
}

// validateBudget ensures the matrix holds at least k vertices.
func validateBudget(method string, rows [][]int, k int) error {
	if k > len(rows) {
		return builderErrorf(method, "needs %d vertices, matrix has %d: %w", k, len(rows), ErrVertexBudget)
	}

	return nil
}

// validateProbability ensures p ∈ [0, 1].
func validateProbability(method string, p float64) error {
	if p < 0 || p > 1 {
		return builderErrorf(method, "p=%v: %w", p, ErrInvalidProbability)
	}

	return nil
}

// addEdge draws one weight and writes u→v, plus v→u for undirected builds.
func addEdge(method string, rows [][]int, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if w == core.NoEdge {
		return builderErrorf(method, "edge %d->%d: %w", u, v, ErrZeroWeight)
	}
	rows[u][v] = w
	if !cfg.directed {
		rows[v][u] = w
	}

	return nil
}

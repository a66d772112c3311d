// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Allocates the matrix,
//     resolves cfg, runs cons in order, loads the graph.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
)

// Constructor writes edges into an n×n row slice using the resolved
// builderConfig. Constructors validate parameters before writing anything
// and report failures with sentinel errors.
type Constructor func(rows [][]int, cfg builderConfig) error

// BuildGraph allocates an n×n NoEdge matrix, applies every constructor in
// order and loads the result into a new core.Graph. Later constructors
// overwrite entries written by earlier ones.
//
// Errors:
//   - ErrTooFewVertices when n < 1.
//   - ErrNeedRandSource when a random weight distribution has no RNG.
//   - ErrConstructFailed for a nil constructor.
//   - any constructor error, wrapped as "BuildGraph: %w".
//
// Complexity: O(n²) plus the constructors' own cost.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if err := validateMin(methodBuildGraph, n, 1); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(bopts...)
	if cfg.needsRand && cfg.rng == nil {
		return nil, fmt.Errorf("%s: uniform weights: %w", methodBuildGraph, ErrNeedRandSource)
	}

	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(rows, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return core.New(rows)
}

// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi G(n, p).

package builder

// RandomSparse returns a Constructor that includes each candidate edge of
// vertices 0..n-1 independently with probability p. Undirected builds
// consider pairs i < j; directed builds consider every ordered pair i != j.
// Candidates are visited in row-major order, so a fixed seed yields a fixed
// graph.
//
// Requires n >= 1, p ∈ [0, 1] and an RNG (WithSeed / WithRand).
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(rows [][]int, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, 1); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomSparse, "%w", ErrNeedRandSource)
		}
		if err := validateBudget(methodRandomSparse, rows, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, rows, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_complete.go: Complete(n): every pair of distinct vertices.

package builder

// Complete returns a Constructor for K_n on vertices 0..n-1. Undirected
// builds emit each pair once (i < j); directed builds emit both arcs.
// Requires n >= MinCompleteNodes.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(rows [][]int, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := validateBudget(methodComplete, rows, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				if err := addEdge(methodComplete, rows, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

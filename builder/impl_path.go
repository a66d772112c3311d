// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_path.go: Path(n): edges i -> i+1 for i = 0..n-2.

package builder

// Path returns a Constructor for the path P_n on vertices 0..n-1.
// Requires n >= MinPathNodes.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(rows [][]int, cfg builderConfig) error {
		if err := validateMin(methodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := validateBudget(methodPath, rows, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, rows, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_cycle.go: Cycle(n): edges i -> (i+1)%n, emitted in increasing i.

package builder

// Cycle returns a Constructor for the simple cycle C_n on vertices 0..n-1.
// Requires n >= MinCycleNodes.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(rows [][]int, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if err := validateBudget(methodCycle, rows, n); err != nil {
			return err
		}

		return ring(methodCycle, rows, cfg, 0, n)
	}
}

// ring emits the cycle first -> first+1 -> ... -> first+k-1 -> first.
func ring(method string, rows [][]int, cfg builderConfig, first, k int) error {
	for i := 0; i < k; i++ {
		if err := addEdge(method, rows, cfg, first+i, first+(i+1)%k); err != nil {
			return err
		}
	}

	return nil
}

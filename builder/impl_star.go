// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_star.go: Star(n) and Wheel(n).

package builder

// Star returns a Constructor for the star S_n: center 0 joined to 1..n-1.
// Directed builds point every spoke away from the center.
// Requires n >= MinStarNodes.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(rows [][]int, cfg builderConfig) error {
		if err := validateMin(methodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := validateBudget(methodStar, rows, n); err != nil {
			return err
		}

		return spokes(methodStar, rows, cfg, n)
	}
}

// Wheel returns a Constructor for the wheel W_n: a Star on 0..n-1 plus the
// rim cycle 1 -> 2 -> ... -> n-1 -> 1.
// Requires n >= MinWheelNodes.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(rows [][]int, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := validateBudget(methodWheel, rows, n); err != nil {
			return err
		}
		if err := spokes(methodWheel, rows, cfg, n); err != nil {
			return err
		}

		return ring(methodWheel, rows, cfg, 1, n-1)
	}
}

// spokes emits 0 -> i for i = 1..n-1.
func spokes(method string, rows [][]int, cfg builderConfig, n int) error {
	for i := 1; i < n; i++ {
		if err := addEdge(method, rows, cfg, 0, i); err != nil {
			return err
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_grid.go: Grid(r, c) and CompleteBipartite(n1, n2).

package builder

// Grid returns a Constructor for the r×c lattice. Cell (i, j) is vertex
// i*c + j; edges go right and down, so directed builds are acyclic.
// Requires r, c >= MinGridDim.
// Complexity: O(r·c).
func Grid(r, c int) Constructor {
	return func(rows [][]int, cfg builderConfig) error {
		if err := validateMin(methodGrid, r, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, c, MinGridDim); err != nil {
			return err
		}
		if err := validateBudget(methodGrid, rows, r*c); err != nil {
			return err
		}
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v := i*c + j
				if j+1 < c {
					if err := addEdge(methodGrid, rows, cfg, v, v+1); err != nil {
						return err
					}
				}
				if i+1 < r {
					if err := addEdge(methodGrid, rows, cfg, v, v+c); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}: left side
// 0..n1-1, right side n1..n1+n2-1, every left vertex joined to every right
// one (left → right when directed).
// Requires n1, n2 >= MinPartition.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(rows [][]int, cfg builderConfig) error {
		if err := validateMin(methodBipartite, n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(methodBipartite, n2, MinPartition); err != nil {
			return err
		}
		if err := validateBudget(methodBipartite, rows, n1+n2); err != nil {
			return err
		}
		for u := 0; u < n1; u++ {
			for v := n1; v < n1+n2; v++ {
				if err := addEdge(methodBipartite, rows, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense transitive closure (Warshall) with deterministic loop order.
//   - Backs exact reachability queries on graph matrices.
//
// Contract:
//   - Any non-zero entry is an edge; the diagonal is reflexive in the result.

package matrix

import "fmt"

// Operation name constant for unified error wrapping.
const opClosure = "Closure"

// initReachInPlace converts a weight matrix into a 0/1 reachability seed:
//
//	diag = 1; non-zero -> 1; zero -> 0.
//
// Complexity: O(n²).
func initReachInPlace(r *Dense) {
	n := r.n
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || r.data[i*n+j] != 0 {
				r.data[i*n+j] = 1
			}
		}
	}
}

// closureInPlace runs Warshall's closure on a 0/1 seed in place.
// Loop order is fixed (k → i → j).
// Time: O(n³); Extra space: O(1).
func closureInPlace(r *Dense) {
	n := r.n
	data := r.data

	var k, i, j, baseK, baseI int
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			if data[i*n+k] == 0 { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				if data[baseK+j] != 0 {
					data[baseI+j] = 1
				}
			}
		}
	}
}

// Closure returns the reflexive transitive closure of m as a new 0/1 matrix:
// out[i][j] == 1 iff j is reachable from i along non-zero entries.
// m is not modified.
//
// Errors: ErrNilMatrix when m is nil.
// Complexity: Time O(n³), memory O(n²).
func Closure(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opClosure, err)
	}
	r := m.Clone()
	initReachInPlace(r)
	closureInPlace(r)

	return r, nil
}

// IsComplete reports whether every entry of m is non-zero.
// Complexity: O(n²).
func (m *Dense) IsComplete() bool {
	for _, v := range m.data {
		if v == 0 {
			return false
		}
	}

	return true
}

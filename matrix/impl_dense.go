// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - FromRows: O(n²); At/Set: O(1); Clone: O(n²); IsSymmetric: O(n²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete square row-major integer matrix.
//   - n holds the dimension (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Dense struct {
	n    int   // dimension (>0 for every public constructor)
	data []int // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero matrix.
// Returns ErrEmpty if n <= 0.
// Complexity: O(n²).
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}

	return &Dense{n: n, data: make([]int, n*n)}, nil
}

// FromRows copies a row-slice representation into a fresh Dense.
//
// Validation order:
//  1. len(rows) == 0        -> ErrEmpty
//  2. any len(row) != n     -> ErrNonSquare (wrapped with the offending row)
//
// The input is never retained; later mutation of rows does not affect the result.
// Complexity: O(n²).
func FromRows(rows [][]int) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrEmpty)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(row), n, ErrNonSquare)
		}
	}

	m := &Dense{n: n, data: make([]int, n*n)}
	for i, row := range rows {
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Rows returns the dimension. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Get is the unchecked hot-path accessor used by traversal kernels.
// Callers must guarantee 0 <= row, col < Rows().
func (m *Dense) Get(row, col int) int { return m.data[row*m.n+col] }

// Clone returns a deep copy (new buffer).
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// ToRows returns a deep copy as a slice of rows.
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = make([]int, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// IsSymmetric reports whether m[i][j] == m[j][i] for every pair.
// Only the upper triangle is scanned.
func (m *Dense) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[0, 1]\n[1, 0]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.Itoa(m.data[i*m.n+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

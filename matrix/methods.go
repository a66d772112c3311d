// Package matrix provides the element-wise and product kernels on *Dense:
// addition, subtraction, matrix multiplication, transpose, scalar scaling,
// integer division and comparison. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opDiv       = "Div"
	opAddScalar = "AddScalar"
	opEqual     = "Equal"
	opCompare   = "Compare"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new Dense containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): single flat loop over both buffers.
// Complexity: O(n²) time and memory.
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res := &Dense{n: a.n, data: make([]int, len(a.data))}
	for idx := range a.data {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Sub returns a new Dense containing the element-wise difference a - b.
// Complexity: O(n²) time and memory.
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	res := &Dense{n: a.n, data: make([]int, len(a.data))}
	for idx := range a.data {
		res.data[idx] = a.data[idx] - b.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and dimension match (both square, same n).
// Stage 2 (Execute): i-k-j loop over the flat buffers, skipping zero factors.
// Complexity: O(n³) time and O(n²) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := a.n
	res := &Dense{n: n, data: make([]int, n*n)}
	var av int
	for i := 0; i < n; i++ {
		rowA := i * n
		for k := 0; k < n; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB := k * n
			for j := 0; j < n; j++ {
				res.data[rowA+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new Dense where rows and columns of m are swapped.
// Complexity: O(n²).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	n := m.n
	res := &Dense{n: n, data: make([]int, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res.data[j*n+i] = m.data[i*n+j]
		}
	}

	return res, nil
}

// Scale returns k*m.
// Complexity: O(n²).
func Scale(m *Dense, k int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Dense{n: m.n, data: make([]int, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * k
	}

	return res, nil
}

// Div returns m/k with Go integer (truncating) division.
// Returns ErrDivideByZero when k == 0.
// Complexity: O(n²).
func Div(m *Dense, k int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	if k == 0 {
		return nil, matrixErrorf(opDiv, ErrDivideByZero)
	}

	res := &Dense{n: m.n, data: make([]int, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v / k
	}

	return res, nil
}

// AddScalar returns m + k applied to every entry (including zero entries).
// Complexity: O(n²).
func AddScalar(m *Dense, k int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddScalar, err)
	}

	res := &Dense{n: m.n, data: make([]int, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v + k
	}

	return res, nil
}

// Equal reports whether a and b have the same dimension and identical entries.
// A dimension mismatch is not an error here: it simply yields false.
func Equal(a, b *Dense) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.n != b.n {
		return false, nil
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false, nil
		}
	}

	return true, nil
}

// Compare orders a and b lexicographically in row-major order.
// Returns -1 if a < b, 0 if equal, +1 if a > b. Shapes must match.
func Compare(a, b *Dense) (int, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opCompare, err)
	}
	for idx := range a.data {
		switch {
		case a.data[idx] < b.data[idx]:
			return -1, nil
		case a.data[idx] > b.data[idx]:
			return 1, nil
		}
	}

	return 0, nil
}

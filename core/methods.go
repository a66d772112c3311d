// File: methods.go
// Role: Whole-graph operators (arithmetic, containment, ordering).
// Determinism:
//   - Every operator returns a NEW graph with a freshly derived Classification;
//     operands are never mutated.
// Errors:
//   - ErrNilGraph / ErrNotLoaded for a missing operand (checked left to right).
//   - matrix.ErrDimensionMismatch when operand sizes differ.

package core

import (
	"fmt"

	"github.com/katalvlaran/densegraph/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opDiv       = "Div"
	opNegate    = "Negate"
	opIncrement = "Increment"
	opDecrement = "Decrement"
	opEqual     = "Equal"
	opContains  = "Contains"
	opCompare   = "Compare"
)

// coreErrorf wraps err with the operator tag.
func coreErrorf(op string, err error) error {
	return fmt.Errorf("core.%s: %w", op, err)
}

// loadedMatrix returns g's matrix or the reason it has none.
func loadedMatrix(g *Graph) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	m, _ := g.snapshot()
	if m == nil {
		return nil, ErrNotLoaded
	}

	return m, nil
}

// pair resolves both operands and checks that their sizes match.
func pair(a, b *Graph) (*matrix.Dense, *matrix.Dense, error) {
	ma, err := loadedMatrix(a)
	if err != nil {
		return nil, nil, err
	}
	mb, err := loadedMatrix(b)
	if err != nil {
		return nil, nil, err
	}
	if err = matrix.ValidateSameShape(ma, mb); err != nil {
		return nil, nil, err
	}

	return ma, mb, nil
}

// binary applies a matrix kernel to two loaded, same-size graphs.
func binary(op string, a, b *Graph, kernel func(x, y *matrix.Dense) (*matrix.Dense, error)) (*Graph, error) {
	ma, mb, err := pair(a, b)
	if err != nil {
		return nil, coreErrorf(op, err)
	}
	res, err := kernel(ma, mb)
	if err != nil {
		return nil, coreErrorf(op, err)
	}

	return fromDense(res), nil
}

// unary applies a scalar kernel to one loaded graph.
func unary(op string, g *Graph, k int, kernel func(m *matrix.Dense, k int) (*matrix.Dense, error)) (*Graph, error) {
	m, err := loadedMatrix(g)
	if err != nil {
		return nil, coreErrorf(op, err)
	}
	res, err := kernel(m, k)
	if err != nil {
		return nil, coreErrorf(op, err)
	}

	return fromDense(res), nil
}

// Add returns the graph whose matrix is the element-wise sum a + b.
// Complexity: O(n²).
func Add(a, b *Graph) (*Graph, error) { return binary(opAdd, a, b, matrix.Add) }

// Sub returns the graph whose matrix is the element-wise difference a - b.
// Complexity: O(n²).
func Sub(a, b *Graph) (*Graph, error) { return binary(opSub, a, b, matrix.Sub) }

// Mul returns the graph whose matrix is the matrix product a × b.
// Complexity: O(n³).
func Mul(a, b *Graph) (*Graph, error) { return binary(opMul, a, b, matrix.Mul) }

// Scale multiplies every weight by k.
func Scale(g *Graph, k int) (*Graph, error) { return unary(opScale, g, k, matrix.Scale) }

// Div divides every weight by k (integer truncation).
// Returns matrix.ErrDivideByZero when k == 0.
func Div(g *Graph, k int) (*Graph, error) { return unary(opDiv, g, k, matrix.Div) }

// Negate flips the sign of every weight.
func Negate(g *Graph) (*Graph, error) { return unary(opNegate, g, -1, matrix.Scale) }

// Increment adds 1 to every entry, NoEdge entries included.
func Increment(g *Graph) (*Graph, error) { return unary(opIncrement, g, 1, matrix.AddScalar) }

// Decrement subtracts 1 from every entry, NoEdge entries included.
func Decrement(g *Graph) (*Graph, error) { return unary(opDecrement, g, -1, matrix.AddScalar) }

// Equal reports whether a and b have identical matrices.
func Equal(a, b *Graph) (bool, error) {
	ma, mb, err := pair(a, b)
	if err != nil {
		return false, coreErrorf(opEqual, err)
	}

	return matrix.Equal(ma, mb)
}

// Contains reports whether every edge of b is also an edge of a with the same
// weight, i.e. b is a subgraph of a.
// Complexity: O(n²).
func Contains(a, b *Graph) (bool, error) {
	ma, mb, err := pair(a, b)
	if err != nil {
		return false, coreErrorf(opContains, err)
	}

	return containsDense(ma, mb), nil
}

func containsDense(outer, inner *matrix.Dense) bool {
	n := inner.Rows()
	var w int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w = inner.Get(i, j)
			if w != NoEdge && outer.Get(i, j) != w {
				return false
			}
		}
	}

	return true
}

// Compare orders two same-size graphs and returns -1, 0 or +1.
//
// Order of decision:
//  1. identical matrices -> 0;
//  2. one graph strictly contains the other -> the container is greater;
//  3. otherwise the graph with fewer edges is smaller;
//  4. otherwise lexicographic row-major order of the matrices.
//
// Complexity: O(n²).
func Compare(a, b *Graph) (int, error) {
	ma, mb, err := pair(a, b)
	if err != nil {
		return 0, coreErrorf(opCompare, err)
	}

	if eq, _ := matrix.Equal(ma, mb); eq {
		return 0, nil
	}
	switch {
	case containsDense(mb, ma):
		return -1, nil
	case containsDense(ma, mb):
		return 1, nil
	}

	ea, eb := a.CountEdges(), b.CountEdges()
	switch {
	case ea < eb:
		return -1, nil
	case ea > eb:
		return 1, nil
	}

	return matrix.Compare(ma, mb)
}

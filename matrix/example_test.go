package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/matrix"
)

// ExampleFromRows shows copy-in validation and the symmetric check used to
// classify a graph as directed or undirected.
func ExampleFromRows() {
	m, err := matrix.FromRows([][]int{
		{0, 1, 0},
		{1, 0, 5},
		{0, 5, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	fmt.Println("symmetric:", m.IsSymmetric())

	_, err = matrix.FromRows([][]int{{0, 1}})
	fmt.Println(err)
	// Output:
	// [0, 1, 0]
	// [1, 0, 5]
	// [0, 5, 0]
	// symmetric: true
	// FromRows: row 0 has 2 columns, want 1: matrix: matrix is not square
}

// ExampleMul counts walks of length two in a directed triangle.
func ExampleMul() {
	ring, _ := matrix.FromRows([][]int{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	sq, _ := matrix.Mul(ring, ring)
	fmt.Print(sq)
	// Output:
	// [0, 0, 1]
	// [1, 0, 0]
	// [0, 1, 0]
}

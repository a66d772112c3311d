package core_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
)

// ExampleNew loads a matrix and prints its derived classification.
func ExampleNew() {
	g, err := core.New([][]int{
		{0, 1, 0},
		{1, 0, 4},
		{0, 4, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g)
	fmt.Printf("%+v\n", g.Classification())
	// Output:
	// This is an undirected graph with 3 vertices and 2 edges.
	// {Directed:false Weighted:true Negative:false}
}

// ExampleCompare orders a path against the triangle containing it.
func ExampleCompare() {
	path, _ := core.New([][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	tri, _ := core.New([][]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})

	cmp, _ := core.Compare(path, tri)
	sub, _ := core.Contains(tri, path)
	fmt.Println(cmp, sub)
	// Output:
	// -1 true
}

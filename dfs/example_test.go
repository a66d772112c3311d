package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dfs"
)

// ExampleDFS prints the forest stamps of a graph with two trees.
func ExampleDFS() {
	g, _ := core.New([][]int{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 1, 0},
	})
	res, _ := dfs.DFS(g)
	fmt.Println("discovery:", res.Discovery)
	fmt.Println("finish:", res.Finish)
	fmt.Println("roots:", res.Roots(), "last finished:", res.LastFinishedRoot())
	// Output:
	// discovery: [1 2 3 7]
	// finish: [6 5 4 8]
	// roots: [0 3] last finished: 3
}

// ExampleDetectCycle shows the first back edge closing a triangle.
func ExampleDetectCycle() {
	g, _ := core.New([][]int{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	res, _ := dfs.DetectCycle(g)
	fmt.Println(res.Found, res.Cycle())
	// Output:
	// true [0 1 2 0]
}

package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/bellmanford"
	"github.com/katalvlaran/densegraph/core"
)

// ExampleBellmanFord finds the negative 3-cycle 0->1->2->0.
func ExampleBellmanFord() {
	g, _ := core.New([][]int{
		{0, -3, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	res, err := bellmanford.BellmanFord(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.HasNegativeCycle(), *res.Relaxable, res.NegativeCycle())
	// Output:
	// true {0 1} [2 0 1]
}

package paths_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/paths"
)

func ExampleReconstruct() {
	pred := []int{core.None, 0, 1, 2}
	seq, ok := paths.Reconstruct(pred, 0, 3)
	fmt.Println(paths.Format(seq), ok)
	// Output:
	// 0->1->2->3 true
}

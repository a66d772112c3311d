package bellmanford_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densegraph/bellmanford"
	"github.com/katalvlaran/densegraph/core"
)

func BenchmarkBellmanFord(b *testing.B) {
	g, err := core.New(randomDirected(rand.New(rand.NewSource(1)), 96))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.BellmanFord(g, 0)
	}
}

package bellmanford_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/densegraph/bellmanford"
	"github.com/katalvlaran/densegraph/converters"
	"github.com/katalvlaran/densegraph/core"
)

func mustGraph(t testing.TB, rows [][]int) *core.Graph {
	t.Helper()
	g, err := core.New(rows)
	require.NoError(t, err)

	return g
}

func TestBellmanFord_Errors(t *testing.T) {
	_, err := bellmanford.BellmanFord(nil, 0)
	assert.ErrorIs(t, err, bellmanford.ErrGraphNil)

	_, err = bellmanford.BellmanFord(&core.Graph{}, 0)
	assert.ErrorIs(t, err, core.ErrNotLoaded)
	assert.ErrorIs(t, err, bellmanford.ErrNotLoaded)

	g := mustGraph(t, [][]int{{0}})
	_, err = bellmanford.BellmanFord(g, -1)
	assert.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)
}

func TestBellmanFord_NegativeEdgeNoCycle(t *testing.T) {
	g := mustGraph(t, [][]int{
		{0, 4, 5, 0},
		{0, 0, -3, 0},
		{0, 0, 0, 2},
		{0, 0, 0, 0},
	})
	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.False(t, res.HasNegativeCycle())
	assert.Nil(t, res.NegativeCycle())
	assert.Equal(t, []int{0, 4, 1, 3}, res.Dist)
	assert.Equal(t, []int{core.None, 0, 1, 2}, res.Pred)

	p, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, p)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := mustGraph(t, [][]int{
		{0, -3, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	require.True(t, res.HasNegativeCycle())
	assert.Equal(t, &bellmanford.Edge{From: 0, To: 1}, res.Relaxable)

	cyc := res.NegativeCycle()
	assert.Equal(t, []int{2, 0, 1}, cyc)
	sum := 0
	for i := range cyc {
		w := g.Weight(cyc[i], cyc[(i+1)%len(cyc)])
		require.NotEqual(t, core.NoEdge, w)
		sum += w
	}
	assert.Negative(t, sum)
}

// TestBellmanFord_UndirectedNegativeEdge: walking a negative undirected edge
// back and forth is not a cycle.
func TestBellmanFord_UndirectedNegativeEdge(t *testing.T) {
	g := mustGraph(t, [][]int{{0, -1}, {-1, 0}})
	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.False(t, res.HasNegativeCycle())
	assert.Equal(t, []int{0, -1}, res.Dist)
}

func TestBellmanFord_SourceDistance(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {0, 0}})
	res, err := bellmanford.BellmanFord(g, 0, bellmanford.WithSourceDistance(-1))
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0}, res.Dist)
}

func TestBellmanFord_Unreached(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 0}, {2, 0}})
	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Infinity, res.Dist[1])
	_, err = res.PathTo(1)
	assert.ErrorIs(t, err, bellmanford.ErrUnreachable)
}

// randomDirected returns a loop-free directed matrix with weights in
// [-2, 9] \ {0}.
func randomDirected(rng *rand.Rand, n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			if i == j || rng.Intn(3) != 0 {
				continue
			}
			w := rng.Intn(12) - 2
			if w == 0 {
				w = 1
			}
			rows[i][j] = w
		}
	}
	rows[0][1], rows[1][0] = 3, 0 // keep it asymmetric

	return rows
}

// TestBellmanFord_MatchesGonum compares distances and cycle detection with
// gonum's Bellman-Ford-Moore implementation.
func TestBellmanFord_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 200; iter++ {
		n := 2 + rng.Intn(7)
		g := mustGraph(t, randomDirected(rng, n))
		require.True(t, g.Directed())
		src := rng.Intn(n)

		res, err := bellmanford.BellmanFord(g, src)
		require.NoError(t, err)

		gg, err := converters.ToGonum(g)
		require.NoError(t, err)
		sp, ok := path.BellmanFordFrom(simple.Node(src), gg)

		require.Equal(t, !ok, res.HasNegativeCycle(), "iter %d rows %v src %d", iter, g.Rows(), src)
		if !ok {
			cyc := res.NegativeCycle()
			require.NotEmpty(t, cyc)
			sum := 0
			for i := range cyc {
				w := g.Weight(cyc[i], cyc[(i+1)%len(cyc)])
				require.NotEqual(t, core.NoEdge, w)
				sum += w
			}
			assert.Negative(t, sum)
			continue
		}
		for v := 0; v < n; v++ {
			want := sp.WeightTo(int64(v))
			if math.IsInf(want, 1) {
				assert.Equal(t, core.Infinity, res.Dist[v], "iter %d v %d", iter, v)
				continue
			}
			assert.Equal(t, want, float64(res.Dist[v]), "iter %d v %d", iter, v)
		}
	}
}

// TestBellmanFord_Converged checks Dist[v] <= Dist[u] + W[u][v] for every
// edge of a directed graph without negative cycles.
func TestBellmanFord_Converged(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 100; iter++ {
		n := 2 + rng.Intn(7)
		g := mustGraph(t, randomDirected(rng, n))
		res, err := bellmanford.BellmanFord(g, 0)
		require.NoError(t, err)
		if res.HasNegativeCycle() {
			continue
		}
		for u := 0; u < n; u++ {
			if res.Dist[u] == core.Infinity {
				continue
			}
			for v := 0; v < n; v++ {
				if w := g.Weight(u, v); w != core.NoEdge {
					assert.LessOrEqual(t, res.Dist[v], res.Dist[u]+w)
				}
			}
		}
	}
}

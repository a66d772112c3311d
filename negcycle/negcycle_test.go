package negcycle_test

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/negcycle"
)

func mustGraph(t testing.TB, rows [][]int) *core.Graph {
	t.Helper()
	g, err := core.New(rows)
	require.NoError(t, err)

	return g
}

var negTriangle = [][]int{
	{0, -3, 0},
	{0, 0, 1},
	{1, 0, 0},
}

func TestDetect_Errors(t *testing.T) {
	_, err := negcycle.Detect(nil)
	assert.ErrorIs(t, err, negcycle.ErrGraphNil)
	_, err = negcycle.Detect(&core.Graph{})
	assert.ErrorIs(t, err, core.ErrNotLoaded)

	_, _, err = negcycle.Eliminate(nil)
	assert.ErrorIs(t, err, negcycle.ErrGraphNil)
	_, _, err = negcycle.Eliminate(&core.Graph{})
	assert.ErrorIs(t, err, negcycle.ErrNotLoaded)
}

func TestDetect_NonNegativeShortCircuits(t *testing.T) {
	c, err := negcycle.Detect(mustGraph(t, [][]int{{0, 5}, {5, 0}}))
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestDetect_NegativeEdgeWithoutCycle(t *testing.T) {
	g := mustGraph(t, [][]int{
		{0, 4, 5, 0},
		{0, 0, -3, 0},
		{0, 0, 0, 2},
		{0, 0, 0, 0},
	})
	c, err := negcycle.Detect(g)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestDetect_Triangle(t *testing.T) {
	c, err := negcycle.Detect(mustGraph(t, negTriangle))
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, []int{0, 1, 2, 0}, c.Vertices)
	assert.Equal(t, -1, c.Weight)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "0->1->2->0", c.String())
}

// TestDetect_RotatesToSmallest: the cycle 3->1->2->3 is unrelated to vertex 0.
func TestDetect_RotatesToSmallest(t *testing.T) {
	g := mustGraph(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, -5},
		{0, 1, 0, 0},
	})
	c, err := negcycle.Detect(g)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, []int{1, 2, 3, 1}, c.Vertices)
	assert.Equal(t, -2, c.Weight)
}

func TestDetect_UndirectedSingleEdgeIsNotACycle(t *testing.T) {
	c, err := negcycle.Detect(mustGraph(t, [][]int{{0, -1}, {-1, 0}}))
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestEliminate_Triangle(t *testing.T) {
	g := mustGraph(t, negTriangle)
	out, removed, err := negcycle.Eliminate(g)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, out.CountEdges())
	// the input is untouched
	assert.Equal(t, negTriangle, g.Rows())
}

// TestEliminate_UndirectedTriangle: removing one direction leaves the
// reverse cycle, which a second pass removes.
func TestEliminate_UndirectedTriangle(t *testing.T) {
	g := mustGraph(t, [][]int{
		{0, -1, -1},
		{-1, 0, -1},
		{-1, -1, 0},
	})
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	out, removed, err := negcycle.Eliminate(g, negcycle.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, out.CountEdges())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "0->1->2->0", entries[0].Data["cycle"])
	assert.Equal(t, "stripped negative cycle", entries[0].Message)
}

func TestEliminate_KeepsAlternateRoute(t *testing.T) {
	// 0->1->2->0 is negative, 0->3->2 is an independent route
	g := mustGraph(t, [][]int{
		{0, -3, 0, 2},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 4, 0},
	})
	out, removed, err := negcycle.Eliminate(g)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, out.Weight(0, 3))
	assert.Equal(t, 4, out.Weight(3, 2))
	assert.Equal(t, core.NoEdge, out.Weight(0, 1))
}

// TestEliminate_ResultIsClean re-feeds random outputs to Detect.
func TestEliminate_ResultIsClean(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for iter := 0; iter < 150; iter++ {
		n := 2 + rng.Intn(6)
		rows := make([][]int, n)
		for i := range rows {
			rows[i] = make([]int, n)
			for j := range rows[i] {
				if rng.Intn(2) == 0 {
					continue
				}
				if w := rng.Intn(9) - 4; w != 0 {
					rows[i][j] = w
				}
			}
		}
		g := mustGraph(t, rows)
		out, _, err := negcycle.Eliminate(g)
		require.NoError(t, err, "rows %v", rows)

		c, err := negcycle.Detect(out)
		require.NoError(t, err)
		assert.Nil(t, c, "rows %v left %v", rows, out.Rows())
	}
}

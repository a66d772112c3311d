package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dfs"
)

// mustGraph loads rows or fails the test.
func mustGraph(t testing.TB, rows [][]int) *core.Graph {
	t.Helper()
	g, err := core.New(rows)
	require.NoError(t, err)

	return g
}

// recursiveDFS is the textbook recursive formulation, used as a reference.
func recursiveDFS(g core.View) (pred, disc, fin []int) {
	n := g.NumVertices()
	pred, disc, fin = make([]int, n), make([]int, n), make([]int, n)
	color := make([]core.Color, n)
	for i := range pred {
		pred[i] = core.None
	}
	time := 0
	var visit func(v int)
	visit = func(v int) {
		color[v] = core.Gray
		time++
		disc[v] = time
		for i := 0; i < n; i++ {
			if g.Weight(v, i) != core.NoEdge && color[i] == core.White {
				pred[i] = v
				visit(i)
			}
		}
		color[v] = core.Black
		time++
		fin[v] = time
	}
	for v := 0; v < n; v++ {
		if color[v] == core.White {
			visit(v)
		}
	}

	return pred, disc, fin
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(&core.Graph{})
	assert.ErrorIs(t, err, dfs.ErrNotLoaded)
	assert.ErrorIs(t, err, core.ErrNotLoaded)
}

func TestDFS_Timestamps(t *testing.T) {
	// 0 -> 1 -> 2, 3 -> 2
	g := mustGraph(t, [][]int{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 1, 0},
	})
	res, err := dfs.DFS(g)
	require.NoError(t, err)

	assert.Equal(t, []int{core.None, 0, 1, core.None}, res.Pred)
	assert.Equal(t, []int{1, 2, 3, 7}, res.Discovery)
	assert.Equal(t, []int{6, 5, 4, 8}, res.Finish)
	assert.Equal(t, []int{2, 1, 0, 3}, res.Order)
	assert.Equal(t, []int{0, 3}, res.Roots())
	assert.Equal(t, 3, res.LastFinishedRoot())
}

func TestDFS_Hooks(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {1, 0}})
	var pre, post []int
	_, err := dfs.DFS(g,
		dfs.WithOnVisit(func(v int) { pre = append(pre, v) }),
		dfs.WithOnExit(func(v int) { post = append(post, v) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, pre)
	assert.Equal(t, []int{1, 0}, post)
}

// TestDFS_MatchesRecursive checks the explicit-stack walker against the
// recursive reference on random directed and undirected graphs.
func TestDFS_MatchesRecursive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(12)
		rows := make([][]int, n)
		for i := range rows {
			rows[i] = make([]int, n)
		}
		undirected := trial%2 == 0
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if rng.Intn(4) != 0 {
					continue
				}
				rows[i][j] = 1
				if undirected {
					rows[j][i] = 1
				}
			}
		}
		g := mustGraph(t, rows)

		res, err := dfs.DFS(g)
		require.NoError(t, err)
		pred, disc, fin := recursiveDFS(g)
		assert.Equal(t, pred, res.Pred, "trial %d", trial)
		assert.Equal(t, disc, res.Discovery, "trial %d", trial)
		assert.Equal(t, fin, res.Finish, "trial %d", trial)
	}
}

// TestDFS_DeepChain makes sure a long chain does not depend on call depth.
func TestDFS_DeepChain(t *testing.T) {
	const n = 2000
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		if i+1 < n {
			rows[i][i+1] = 1
		}
	}
	res, err := dfs.DFS(mustGraph(t, rows))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Discovery[0])
	assert.Equal(t, 2*n, res.Finish[0])
	assert.Equal(t, []int{0}, res.Roots())
}

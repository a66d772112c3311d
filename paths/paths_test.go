package paths_test

import (
	"testing"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstruct(t *testing.T) {
	pred := []int{core.None, 0, 1, 1, core.None}

	p, ok := paths.Reconstruct(pred, 0, 2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, p)

	p, ok = paths.Reconstruct(pred, 0, 0)
	require.True(t, ok)
	assert.Equal(t, []int{0}, p)

	// a sub-path of the tree
	p, ok = paths.Reconstruct(pred, 1, 3)
	require.True(t, ok)
	assert.Equal(t, []int{1, 3}, p)

	_, ok = paths.Reconstruct(pred, 0, 4)
	assert.False(t, ok)
	_, ok = paths.Reconstruct(pred, 0, 5)
	assert.False(t, ok)
	_, ok = paths.Reconstruct(pred, -1, 2)
	assert.False(t, ok)
}

func TestReconstructCyclicPredecessors(t *testing.T) {
	// 1 -> 2 -> 1 never reaches 0
	pred := []int{core.None, 2, 1}
	_, ok := paths.Reconstruct(pred, 0, 1)
	assert.False(t, ok)
}

func TestFormatParseRoundTrip(t *testing.T) {
	assert.Equal(t, "0->1->2", paths.Format([]int{0, 1, 2}))
	assert.Equal(t, "7", paths.Format([]int{7}))
	assert.Equal(t, "", paths.Format(nil))

	seq, err := paths.Parse("0->1->2->0")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0}, seq)

	seq, err = paths.Parse(" 3 -> 10 ")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 10}, seq)
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "0->", "->1", "a->b", "0->-1", "0-1"} {
		_, err := paths.Parse(in)
		assert.ErrorIs(t, err, paths.ErrBadPath, "input %q", in)
	}
}

func TestWeight(t *testing.T) {
	g, err := core.New([][]int{
		{0, 4, 0},
		{0, 0, -2},
		{1, 0, 0},
	})
	require.NoError(t, err)

	w, err := paths.Weight(g, []int{0, 1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, w)

	w, err = paths.Weight(g, []int{2})
	require.NoError(t, err)
	assert.Equal(t, 0, w)

	_, err = paths.Weight(g, []int{0, 2})
	assert.ErrorIs(t, err, paths.ErrMissingEdge)
	_, err = paths.Weight(g, []int{0, 9})
	assert.ErrorIs(t, err, paths.ErrMissingEdge)

	_, err = paths.Weight(&core.Graph{}, []int{0})
	assert.ErrorIs(t, err, core.ErrNotLoaded)
	_, err = paths.Weight(nil, []int{0})
	assert.ErrorIs(t, err, paths.ErrNotLoaded)
}

package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/densegraph/converters"
	"github.com/katalvlaran/densegraph/core"
)

func TestToGonum_RoundTrip(t *testing.T) {
	g, err := core.New([][]int{
		{0, -3, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	require.NoError(t, err)

	gg, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Nodes().Len())
	w, ok := gg.Weight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, -3.0, w)
	assert.False(t, gg.HasEdgeFromTo(1, 0))

	back, err := converters.FromGonum(gg)
	require.NoError(t, err)
	assert.Equal(t, g.Rows(), back.Rows())
	assert.Equal(t, g.Classification(), back.Classification())
}

func TestToGonum_DropsSelfLoops(t *testing.T) {
	g, err := core.New([][]int{{4, 1}, {1, 0}})
	require.NoError(t, err)

	gg, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.False(t, gg.HasEdgeFromTo(0, 0))
	assert.True(t, gg.HasEdgeBetween(0, 1))
}

func TestToGonumUndirected_Components(t *testing.T) {
	g, err := core.New([][]int{
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 5, 0},
	})
	require.NoError(t, err)

	ug, err := converters.ToGonumUndirected(g)
	require.NoError(t, err)
	assert.Len(t, topo.ConnectedComponents(ug), 2)
}

func TestConverters_Errors(t *testing.T) {
	_, err := converters.ToGonum(&core.Graph{})
	assert.ErrorIs(t, err, core.ErrNotLoaded)
	_, err = converters.ToGonumUndirected(nil)
	assert.ErrorIs(t, err, converters.ErrNotLoaded)

	_, err = converters.FromGonum(simple.NewWeightedDirectedGraph(0, 0))
	assert.ErrorIs(t, err, converters.ErrNodeIDs)

	gap := simple.NewWeightedDirectedGraph(0, 0)
	gap.AddNode(simple.Node(0))
	gap.AddNode(simple.Node(5))
	_, err = converters.FromGonum(gap)
	assert.ErrorIs(t, err, converters.ErrNodeIDs)

	frac := simple.NewWeightedDirectedGraph(0, 0)
	frac.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1.5})
	_, err = converters.FromGonum(frac)
	assert.ErrorIs(t, err, converters.ErrWeight)
}

package algorithms

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/densegraph/core"
)

func TestQueryMetrics(t *testing.T) {
	g, err := core.New([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)

	connected := queriesTotal.WithLabelValues(opIsConnected, "connected")
	failed := queriesTotal.WithLabelValues(opIsConnected, outcomeError)
	okBefore, errBefore := testutil.ToFloat64(connected), testutil.ToFloat64(failed)

	_, err = IsConnected(g)
	require.NoError(t, err)
	_, err = IsConnected(&core.Graph{})
	require.ErrorIs(t, err, ErrNotLoaded)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(connected))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(failed))
}

func TestQuerySpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	g, err := core.New([][]int{{0, 2}, {2, 0}})
	require.NoError(t, err)

	_, err = ShortestPath(g, 0, 1, WithTracerProvider(tp))
	require.NoError(t, err)
	_, err = ShortestPath(g, 0, 9, WithTracerProvider(tp))
	require.ErrorIs(t, err, ErrVertexOutOfRange)

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "algorithms.ShortestPath", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("query.outcome", "found"))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("graph.vertices", 2))

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Contains(t, spans[1].Attributes(), attribute.String("query.outcome", outcomeError))
}

func TestQueryLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g, err := core.New([][]int{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	require.NoError(t, err)
	_, err = ContainsCycle(g, WithLogger(logger))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "query done", entry.Message)
	assert.Equal(t, opContainsCycle, entry.Data["operation"])
	assert.Equal(t, "cycle", entry.Data["outcome"])
}

func TestResultStrings(t *testing.T) {
	assert.Equal(t, "There is no path between 1 and 3.", PathResult{Outcome: NoPath, Src: 1, Dst: 3}.String())
	assert.Equal(t, "unknown", PathOutcome(9).String())
	assert.Equal(t, "There is no cycle in the graph.", CycleResult{}.String())
	assert.Equal(t, "The graph has no negative cycle.", CycleResult{Kind: NegativeWeightCycle}.String())
	assert.Equal(t, "The graph is bipartite: A={}, B={}.", BipartiteResult{Bipartite: true}.String())
	assert.Equal(t, "The graph is not connected.", Connectivity{}.String())
}

// doubled is a foreign View that materialize has to copy.
type doubled struct{ core.View }

func (s doubled) Weight(i, j int) int { return s.View.Weight(i, j) * 2 }

func TestMaterialize(t *testing.T) {
	g, err := core.New([][]int{{0, -1}, {0, 0}})
	require.NoError(t, err)

	same, err := materialize(g)
	require.NoError(t, err)
	assert.Same(t, g, same)

	cp, err := materialize(doubled{g})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, -2}, {0, 0}}, cp.Rows())
}

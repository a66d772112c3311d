package algorithms

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/densegraph/core"
)

const tracerName = "densegraph.algorithms"

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "densegraph_queries_total",
		Help: "Graph queries by operation and outcome",
	}, []string{"operation", "outcome"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "densegraph_query_duration_seconds",
		Help:    "Graph query duration",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"operation"})
)

// Operation names used for spans, metric labels and log fields.
const (
	opIsConnected   = "IsConnected"
	opShortestPath  = "ShortestPath"
	opContainsCycle = "ContainsCycle"
	opIsBipartite   = "IsBipartite"
	opNegativeCycle = "NegativeCycle"
)

const outcomeError = "error"

// query tracks one in-flight operation.
type query struct {
	op    string
	start time.Time
	span  trace.Span
	log   logrus.FieldLogger
}

func begin(o Options, op string, attrs ...attribute.KeyValue) *query {
	_, span := o.TracerProvider.Tracer(tracerName).Start(o.Ctx, "algorithms."+op, trace.WithAttributes(attrs...))

	return &query{op: op, start: time.Now(), span: span, log: o.Logger}
}

// describe attaches the graph's size and classification to the span.
func (q *query) describe(g core.View) {
	q.span.SetAttributes(
		attribute.Int("graph.vertices", g.NumVertices()),
		attribute.Bool("graph.directed", g.Directed()),
		attribute.Bool("graph.weighted", g.Weighted()),
		attribute.Bool("graph.negative", g.Negative()),
	)
}

// end records outcome (or the error) on every signal and closes the span.
func (q *query) end(outcome string, err error) {
	if err != nil {
		outcome = outcomeError
		q.span.RecordError(err)
		q.span.SetStatus(codes.Error, err.Error())
	} else {
		q.span.SetStatus(codes.Ok, "")
	}
	q.span.SetAttributes(attribute.String("query.outcome", outcome))
	q.span.End()

	elapsed := time.Since(q.start)
	queriesTotal.WithLabelValues(q.op, outcome).Inc()
	queryDuration.WithLabelValues(q.op).Observe(elapsed.Seconds())

	entry := q.log.WithFields(logrus.Fields{
		"operation": q.op,
		"outcome":   outcome,
		"elapsed":   elapsed,
	})
	if err != nil {
		entry.WithError(err).Debug("query failed")
		return
	}
	entry.Debug("query done")
}

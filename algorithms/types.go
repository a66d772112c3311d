package algorithms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/paths"
)

// Sentinel errors; these are the only two failure kinds a query reports.
var (
	// ErrNotLoaded is returned for a nil or unloaded graph.
	ErrNotLoaded = fmt.Errorf("algorithms: %w", core.ErrNotLoaded)

	// ErrVertexOutOfRange is returned by ShortestPath when src or dst is
	// outside [0, n).
	ErrVertexOutOfRange = errors.New("algorithms: vertex out of range")
)

// Option configures a query.
type Option func(*Options)

// Options carries the ambient dependencies of a query.
type Options struct {
	// Ctx parents the query's span. It never cancels the query.
	Ctx context.Context

	// Logger receives one Debug entry per query.
	Logger logrus.FieldLogger

	// TracerProvider creates the query spans.
	TracerProvider trace.TracerProvider
}

// DefaultOptions returns a background context, a discarding logger and the
// global tracer provider.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Ctx:            context.Background(),
		Logger:         l,
		TracerProvider: otel.GetTracerProvider(),
	}
}

// WithContext sets the parent context for tracing. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the query logger. Nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider sets the provider the query spans come from. Nil is
// ignored.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Connectivity is the outcome of IsConnected.
type Connectivity struct {
	Connected bool
	// Root is the BFS source that decided the answer.
	Root int
}

func (c Connectivity) String() string {
	if c.Connected {
		return "The graph is connected."
	}

	return "The graph is not connected."
}

// PathOutcome tags a ShortestPath result.
type PathOutcome uint8

const (
	// PathFound: Path and Distance are set.
	PathFound PathOutcome = iota
	// NoPath: dst is not reachable from src at all.
	NoPath
	// NegativeCycleOnly: dst is reachable from src, but only through a
	// negative cycle, so no finite shortest distance exists.
	NegativeCycleOnly
)

func (o PathOutcome) String() string {
	switch o {
	case PathFound:
		return "found"
	case NoPath:
		return "no_path"
	case NegativeCycleOnly:
		return "negative_cycle_only"
	default:
		return "unknown"
	}
}

// PathResult is the outcome of ShortestPath.
type PathResult struct {
	Outcome  PathOutcome
	Src, Dst int
	// Path runs Src..Dst inclusive when Outcome is PathFound.
	Path []int
	// Distance is the total weight along Path (the edge count on
	// unweighted graphs).
	Distance int
}

func (r PathResult) String() string {
	switch r.Outcome {
	case PathFound:
		return "The shortest path is: " + paths.Format(r.Path)
	case NegativeCycleOnly:
		return fmt.Sprintf("%d and %d are connected by a negative weight cycle.", r.Src, r.Dst)
	default:
		return fmt.Sprintf("There is no path between %d and %d.", r.Src, r.Dst)
	}
}

// CycleKind distinguishes the two cycle queries.
type CycleKind uint8

const (
	// AnyCycle results come from ContainsCycle.
	AnyCycle CycleKind = iota
	// NegativeWeightCycle results come from NegativeCycle.
	NegativeWeightCycle
)

// CycleResult is the outcome of ContainsCycle and NegativeCycle.
type CycleResult struct {
	Kind  CycleKind
	Found bool
	// Cycle is closed: its first and last vertices are equal.
	Cycle []int
	// Weight is the total weight around Cycle.
	Weight int
}

func (r CycleResult) String() string {
	switch {
	case r.Kind == NegativeWeightCycle && r.Found:
		return "The negative cycle is: " + paths.Format(r.Cycle)
	case r.Kind == NegativeWeightCycle:
		return "The graph has no negative cycle."
	case r.Found:
		return "The cycle is: " + paths.Format(r.Cycle)
	default:
		return "There is no cycle in the graph."
	}
}

// BipartiteResult is the outcome of IsBipartite.
type BipartiteResult struct {
	Bipartite bool
	// A and B list the two sides in discovery order.
	A, B []int
}

func (r BipartiteResult) String() string {
	if !r.Bipartite {
		return "The graph is not bipartite."
	}

	return "The graph is bipartite: A={" + joinInts(r.A) + "}, B={" + joinInts(r.B) + "}."
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}

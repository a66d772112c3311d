// Package negcycle detects negative-weight cycles and strips them from a
// graph so that finite shortest distances can still be computed.
package negcycle

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/paths"
)

var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("negcycle: graph is nil")

	// ErrNotLoaded is returned when the graph has no loaded matrix.
	// It wraps core.ErrNotLoaded.
	ErrNotLoaded = fmt.Errorf("negcycle: %w", core.ErrNotLoaded)
)

var cyclesStripped = promauto.NewCounter(prometheus.CounterOpts{
	Name: "densegraph_negative_cycles_stripped_total",
	Help: "Negative cycles removed by Eliminate",
})

// Cycle is a closed vertex sequence: Vertices[0] == Vertices[len-1], and
// Vertices[0] is the smallest vertex on the cycle.
type Cycle struct {
	Vertices []int
	// Weight is the sum of edge weights around the cycle.
	Weight int
}

// Len returns the number of distinct vertices on the cycle.
func (c *Cycle) Len() int {
	if c == nil || len(c.Vertices) == 0 {
		return 0
	}

	return len(c.Vertices) - 1
}

// String renders the cycle as "0->1->2->0".
func (c *Cycle) String() string {
	if c == nil {
		return ""
	}

	return paths.Format(c.Vertices)
}

// Option configures Eliminate.
type Option func(*Options)

// Options for Eliminate.
type Options struct {
	// Logger receives one Debug entry per stripped cycle.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with a logger that discards everything.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithLogger routes Eliminate's debug output to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

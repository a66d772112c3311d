// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context via builderErrorf and %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, side)
// is smaller than the minimum the constructor needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrVertexBudget indicates that a constructor needs more vertices than the
// matrix passed to BuildGraph holds.
var ErrVertexBudget = errors.New("builder: not enough vertices in matrix")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or weight
// distribution ran without an RNG (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrZeroWeight indicates that the weight function produced NoEdge, which
// cannot be stored as an edge.
var ErrZeroWeight = errors.New("builder: zero edge weight")

// ErrConstructFailed indicates a programmer error in composition, such as
// a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps a formatted message with the given method context:
// "<method>: <message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

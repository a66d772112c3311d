// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// weight_fn.go: edge-weight distributions.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn draws the weight of one edge. rng may be nil for deterministic
// distributions.
type WeightFn func(rng *rand.Rand) int

// ConstantWeightFn always returns w.
func ConstantWeightFn(w int) WeightFn {
	return func(*rand.Rand) int { return w }
}

// UniformWeightFn draws uniformly from [min, max] with 0 removed, so every
// draw is a storable edge weight. Panics when the range is empty or {0}.
// The returned function panics on a nil rng; BuildGraph guards against that
// for weights installed through WithUniformWeight.
func UniformWeightFn(min, max int) WeightFn {
	if min > max || (min == 0 && max == 0) {
		panic(fmt.Sprintf("builder: UniformWeightFn(%d, %d): empty range", min, max))
	}
	span := max - min + 1
	skipZero := min <= 0 && max >= 0
	if skipZero {
		span--
	}

	return func(rng *rand.Rand) int {
		w := min + rng.Intn(span)
		if skipZero && w >= 0 {
			w++ // shift past the NoEdge slot
		}

		return w
	}
}

// WithConstantWeight sets every edge weight to w. Panics when w is 0.
func WithConstantWeight(w int) BuilderOption {
	if w == 0 {
		panic("builder: WithConstantWeight(0)")
	}

	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws edge weights from UniformWeightFn(min, max).
// BuildGraph then requires an RNG.
func WithUniformWeight(min, max int) BuilderOption {
	fn := UniformWeightFn(min, max)

	return func(c *builderConfig) {
		c.weightFn = fn
		c.needsRand = true
	}
}

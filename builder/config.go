// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// config.go: resolved builder configuration.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and shared, read-only
// apart from the RNG stream, by every constructor of that call.
type builderConfig struct {
	directed  bool       // emit one arc per edge instead of a symmetric pair
	rng       *rand.Rand // nil unless WithSeed/WithRand
	weightFn  WeightFn   // per-edge weight draw
	needsRand bool       // weightFn draws from rng
}

// defaultConstWeight is the weight of every edge unless overridden.
const defaultConstWeight = 1

// newBuilderConfig applies opts over the defaults: undirected, no RNG,
// constant weight 1.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

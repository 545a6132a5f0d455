// SPDX-License-Identifier: MIT
// Package: mwis/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng      = nil                  (pure unless seeded)
//   - weightFn = DefaultWeightFn      (every vertex weighs DefaultVertexWeight)
//   - weights  = nil                  (no explicit override)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Vertex weight generator, called once per vertex in id order.
	weightFn WeightFn
	// Explicit per-vertex weights applied after all constructors ran.
	weights []float64
}

// newBuilderConfig applies options over deterministic defaults, last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SPDX-License-Identifier: MIT
// Package: mwis/builder
//
// weight_fn.go - vertex weight distributions.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultVertexWeight is the weight of every vertex when no WeightFn is set.
const DefaultVertexWeight float64 = 1

// WeightFn produces the weight of vertex v given an optional *rand.Rand.
// It must be deterministic for a given RNG state.
type WeightFn func(v int, rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultVertexWeight.
func DefaultWeightFn(int, *rand.Rand) float64 { return DefaultVertexWeight }

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0 or is not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}
	return func(int, *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [min, max). Panics unless 0 ≤ min ≤ max.
// With a nil RNG it yields DefaultVertexWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(_ int, rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultVertexWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// ExponentialWeightFn samples from Exp(rate), mean 1/rate. Panics if rate ≤ 0.
// With a nil RNG it yields DefaultVertexWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}
	return func(_ int, rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultVertexWeight
		}
		return rng.ExpFloat64() / rate
	}
}

// GeometricWeightFn yields base * ratio^v, a strictly monotone weight profile
// that makes every vertex lose to its higher-numbered neighbors.
// Panics unless base > 0 and ratio > 0.
func GeometricWeightFn(base, ratio float64) WeightFn {
	if base <= 0 || ratio <= 0 {
		panic(fmt.Sprintf("GeometricWeightFn: require base > 0 and ratio > 0, got base=%g, ratio=%g", base, ratio))
	}
	return func(v int, _ *rand.Rand) float64 {
		return base * math.Pow(ratio, float64(v))
	}
}

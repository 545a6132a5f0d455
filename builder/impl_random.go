// SPDX-License-Identifier: MIT
// Package: mwis/builder
//
// impl_random.go - stochastic topologies: RandomSparse, RandomRegular.
//
// Determinism:
//   - Vertex weights are drawn when the component's vertices are added.
//   - RandomSparse trials run over pairs (i<j) with i asc, then j asc.
//   - RandomRegular adds nothing until a valid pairing is found.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mwis/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	minRandomNodes          = 1
	probMin                 = 0.0
	probMax                 = 1.0
	maxStubMatchingAttempts = 64
)

// RandomSparse adds an Erdős–Rényi G(n, p) component: every pair is an edge
// independently with probability p. The RNG is required unless p ∈ {0, 1}.
// Complexity: O(n^2) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, "n", n, minRandomNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		f := addVertices(b, cfg, n)
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax || cfg.rng.Float64() < p {
					b.AddEdge(f+i, f+j)
				}
			}
		}
		return nil
	}
}

// RandomRegular adds a d-regular simple graph by stub matching with bounded
// reshuffles. Requires 0 ≤ d < n, n*d even, and an RNG.
// Complexity: O(n*d) per attempt.
func RandomRegular(n, d int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomRegular, "n", n, minRandomNodes)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// Validate a pairing before touching b so a failure leaves no trace.
		seen := make(map[[2]int]struct{}, len(stubs)/2)
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			clear(seen)
			if pairable(stubs, seen) {
				f := addVertices(b, cfg, n)
				for i := 0; i < len(stubs); i += 2 {
					b.AddEdge(f+stubs[i], f+stubs[i+1])
				}
				return nil
			}
		}
		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// pairable reports whether consecutive stub pairs form a simple graph.
func pairable(stubs []int, seen map[[2]int]struct{}) bool {
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// SPDX-License-Identifier: MIT
// Package: mwis/builder
//
// api.go - public entry point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against one graph.Builder, applies WithWeights, validates.
//   - Each constructor appends a vertex-disjoint component whose ids continue
//     from the previous component's last id.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mwis/graph"
)

// Constructor appends one component to b using the resolved config.
// Constructors MUST validate parameters before touching b, return sentinel
// errors and never panic.
type Constructor func(b *graph.Builder, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the validated graph.
//
// Errors:
//   - constructor errors wrapped as "BuildGraph: %w";
//   - ErrConstructFailed for a nil constructor;
//   - ErrBadSize if WithWeights does not match the vertex count;
//   - graph.ErrInvalidGraphInput if a WeightFn produced an illegal weight.
//
// Complexity: Σ cost of each constructor + O(V + E log d) for the final build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	b := graph.NewBuilder(0, 0)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.weights != nil {
		if len(cfg.weights) != b.Order() {
			return nil, fmt.Errorf("BuildGraph: %d weights for %d vertices: %w", len(cfg.weights), b.Order(), ErrBadSize)
		}
		for v, w := range cfg.weights {
			b.SetWeight(v, w)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	return g, nil
}

// addVertices appends n weighted vertices and returns the id of the first.
func addVertices(b *graph.Builder, cfg builderConfig, n int) int {
	first := b.Order()
	for i := 0; i < n; i++ {
		b.AddVertex(cfg.weightFn(first+i, cfg.rng))
	}
	return first
}

// SPDX-License-Identifier: MIT
// Package: mwis/graph
//
// validate.go - input validation shared by constructors and solvers.
//
// Contract:
//   - Deterministic, side-effect free; no logging, no panics on user input.
//   - The first violation found (vertex order ascending) is reported.
//   - O(V + E) for weight/range/loop checks; symmetry is O(E log d) on sorted
//     lists and O(E) with a hash set for foreign View implementations.

package graph

import (
	"math"
	"slices"
)

// validateWeights checks count, sign and finiteness of a weight vector.
func validateWeights(n int, weights []float64) error {
	if len(weights) != n {
		return detailError(ConstraintWeightCount, "got %d weights for %d vertices", len(weights), n)
	}
	if uint64(n) > maxOrder {
		return ErrTooManyVertices
	}
	for v, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return vertexError(ConstraintNonFiniteWeight, v)
		}
		if w < 0 {
			return vertexError(ConstraintNegativeWeight, v)
		}
	}
	return nil
}

// validateEndpoints checks that (u, v) is a legal simple edge in an n-vertex graph.
func validateEndpoints(n, u, v int) error {
	if u < 0 || u >= n || v < 0 || v >= n {
		return edgeError(ConstraintVertexRange, u, v)
	}
	if u == v {
		return vertexError(ConstraintSelfLoop, u)
	}
	return nil
}

// Validate checks that an arbitrary View satisfies the solver contract:
// finite non-negative weights, in-range neighbors, no self-loops, no repeated
// neighbors, and symmetric adjacency.
//
// A *Graph was validated at construction and is accepted without rescanning.
//
// Complexity: O(V + E) time, O(E) extra space for the symmetry set.
func Validate(g View) error {
	if gg, ok := g.(*Graph); ok && gg != nil {
		return nil
	}
	n := g.Order()
	if n < 0 {
		return detailError(ConstraintShape, "negative order %d", n)
	}
	if uint64(n) > maxOrder {
		return ErrTooManyVertices
	}

	// Weights first: they are the cheapest and most common mistake.
	var v int
	for v = 0; v < n; v++ {
		w := g.Weight(v)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return vertexError(ConstraintNonFiniteWeight, v)
		}
		if w < 0 {
			return vertexError(ConstraintNegativeWeight, v)
		}
	}

	// Directed arc set; symmetry holds iff every arc has its reverse.
	arcs := make(map[uint64]struct{})
	for v = 0; v < n; v++ {
		for _, u := range g.Neighbors(v) {
			if err := validateEndpoints(n, v, u); err != nil {
				return err
			}
			key := arcKey(v, u)
			if _, dup := arcs[key]; dup {
				return edgeError(ConstraintDuplicateNeighbor, v, u)
			}
			arcs[key] = struct{}{}
		}
	}
	for key := range arcs {
		from, to := int(key>>32), int(key&math.MaxUint32)
		if _, ok := arcs[arcKey(to, from)]; !ok {
			return edgeError(ConstraintAsymmetric, from, to)
		}
	}
	return nil
}

// arcKey packs a directed pair of uint32-range ids into one map key.
func arcKey(from, to int) uint64 {
	return uint64(uint32(from))<<32 | uint64(uint32(to))
}

// checkSortedSymmetric verifies symmetry of sorted, deduplicated CSR lists.
func checkSortedSymmetric(offsets, adj []int) error {
	n := len(offsets) - 1
	for u := 0; u < n; u++ {
		for _, v := range adj[offsets[u]:offsets[u+1]] {
			if _, found := slices.BinarySearch(adj[offsets[v]:offsets[v+1]], u); !found {
				return edgeError(ConstraintAsymmetric, u, v)
			}
		}
	}
	return nil
}

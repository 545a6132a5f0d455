// SPDX-License-Identifier: MIT
// Package: mwis/builder
//
// impl_basic.go - deterministic topologies: Isolated, Path, Cycle, Star,
// Wheel, Complete, CompleteBipartite.
//
// Numbering: every component is numbered from its first vertex f onward.
//   - Path/Cycle: f, f+1, ... in ring order.
//   - Star/Wheel: the hub is f, leaves/rim follow.
//   - CompleteBipartite: left side first, then right side.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mwis/graph"
)

// File-local constants (stable method tags and minimum sizes).
const (
	methodIsolated          = "Isolated"
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"

	minIsolatedNodes = 1
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minPartitionSize = 1
)

// tooFew formats the common size violation.
func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}

// Isolated adds n vertices and no edges (n ≥ 1).
// Complexity: O(n).
func Isolated(n int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minIsolatedNodes {
			return tooFew(methodIsolated, "n", n, minIsolatedNodes)
		}
		addVertices(b, cfg, n)
		return nil
	}
}

// Path adds the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		f := addVertices(b, cfg, n)
		for i := 1; i < n; i++ {
			b.AddEdge(f+i-1, f+i)
		}
		return nil
	}
}

// Cycle adds the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		f := addVertices(b, cfg, n)
		for i := 0; i < n; i++ {
			b.AddEdge(f+i, f+(i+1)%n)
		}
		return nil
	}
}

// Star adds a hub and n-1 leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		f := addVertices(b, cfg, n)
		for i := 1; i < n; i++ {
			b.AddEdge(f, f+i)
		}
		return nil
	}
}

// Wheel adds W_n: a hub joined to every vertex of the rim C_{n-1} (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		f := addVertices(b, cfg, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			b.AddEdge(f, f+1+i)
			b.AddEdge(f+1+i, f+1+(i+1)%rim)
		}
		return nil
	}
}

// Complete adds K_n (n ≥ 1).
// Complexity: O(n^2).
func Complete(n int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		f := addVertices(b, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.AddEdge(f+i, f+j)
			}
		}
		return nil
	}
}

// CompleteBipartite adds K_{n1,n2} (n1, n2 ≥ 1).
// Complexity: O(n1*n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n1 < minPartitionSize {
			return tooFew(methodCompleteBipartite, "n1", n1, minPartitionSize)
		}
		if n2 < minPartitionSize {
			return tooFew(methodCompleteBipartite, "n2", n2, minPartitionSize)
		}
		f := addVertices(b, cfg, n1+n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				b.AddEdge(f+i, f+n1+j)
			}
		}
		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: mwis/solver
//
// types.go - sentinels, algorithm selector and result types.

package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel errors for solver execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("solver: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrUnsupportedAlgorithm is returned by Solve and ParseAlgorithm for an
	// unknown algorithm.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")
)

// Algorithm selects the engine used by Solve.
type Algorithm int

const (
	// Local is the synchronous local-greedy elimination protocol.
	Local Algorithm = iota

	// Relaxed is the epsilon-relaxed distributed greedy approximation.
	Relaxed

	// Annealing is the Ising-style message-passing annealer with greedy cleanup.
	Annealing

	// Central is the single-pass descending-weight greedy baseline.
	Central
)

var algorithmNames = [...]string{
	Local:     "local",
	Relaxed:   "relaxed",
	Annealing: "anneal",
	Central:   "greedy",
}

// Algorithms lists every supported Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Local, Relaxed, Annealing, Central}
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a canonical name (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Stats carries the protocol diagnostics of a solve.
//
//   - Rounds: synchronous rounds (annealing: temperature steps) executed.
//   - Messages: remaining-neighbor lookups summed over every vertex evaluated
//     in every round; annealing counts priority exchanges of marked vertices.
//   - Broadcasts: remaining vertices per round plus one final announcement per
//     selected vertex.
//   - Overhead: per-vertex message count plus one per selection; nil unless
//     instrumentation was requested.
//   - Updates: accepted spin flips (annealing only).
type Stats struct {
	Rounds     int
	Messages   int64
	Broadcasts int64
	Overhead   []int64
	Updates    int64
}

// Params reports the derived parameters a solve ran with.
type Params struct {
	Epsilon float64 // relaxed only
	Alpha   float64 // candidate threshold divisor, 1+epsilon/3
	Beta    float64 // 3/epsilon, reported but unused by the candidate test
	Penalty float64 // annealing A
	Reward  float64 // annealing B = A/3
}

// Result is the outcome of a solve.
//
// Set is always an independent set of the input graph. Excluded and Remaining
// partition the vertices not in Set; Remaining is empty unless a round budget
// stopped the solve early (Converged == false). Candidates holds the raw
// spin-up set of the annealer before cleanup and is nil for other engines.
type Result struct {
	Algorithm  Algorithm
	Set        *roaring.Bitmap
	Weight     float64
	Converged  bool
	Excluded   *roaring.Bitmap
	Remaining  *roaring.Bitmap
	Candidates *roaring.Bitmap
	Stats      Stats
	Params     Params
}

// Members returns the selected vertices in ascending order.
func (r Result) Members() []int {
	if r.Set == nil {
		return []int{}
	}
	out := make([]int, 0, r.Set.GetCardinality())
	it := r.Set.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Len returns the number of selected vertices.
func (r Result) Len() int {
	if r.Set == nil {
		return 0
	}
	return int(r.Set.GetCardinality())
}

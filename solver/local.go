// SPDX-License-Identifier: MIT
// Package: mwis/solver
//
// local.go - synchronous local-greedy elimination.
//
// Each round every undecided vertex compares itself with its undecided
// neighbors only. A vertex that outranks all of them (heavier, or tied and
// preferred by the TieBreak) joins the set, and its neighbors drop out.
// Decisions read the start-of-round snapshot, so the outcome does not depend
// on evaluation order or on the number of workers.
//
// The globally top-ranked undecided vertex always wins, so every round
// decides at least one vertex and the protocol stops within N rounds.

package solver

import (
	"slices"

	"github.com/katalvlaran/mwis/graph"
)

// LocalGreedy runs the local-greedy protocol to convergence, or until
// WithMaxRounds stops it. Stats always carries round, message and broadcast
// counts; WithInstrumentation adds the per-vertex overhead vector.
//
// Complexity: O(V + E) bookkeeping amortized over the solve, plus the
// frontier re-evaluations, each O(deg).
func LocalGreedy(g graph.View, opts ...Option) (Result, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return Result{}, err
	}
	return runLocal(g, o, roundLimit(o))
}

// LocalGreedyOverhead is LocalGreedy with per-vertex overhead tracking on:
// Stats.Overhead[v] is the number of remaining-neighbor lookups v made
// across all rounds plus one for its final announcement if selected.
func LocalGreedyOverhead(g graph.View, opts ...Option) (Result, error) {
	return LocalGreedy(g, append(slices.Clip(opts), WithInstrumentation())...)
}

// LocalGreedyBounded runs at most k rounds and returns the partial solution:
// Set is independent, Remaining holds the still-undecided vertices and
// Converged reports whether Remaining is empty. k == 0 decides nothing.
// A partial result is a success, not an error.
func LocalGreedyBounded(g graph.View, k int, opts ...Option) (Result, error) {
	if k < 0 {
		return Result{}, fmtViolation("round budget cannot be negative (%d)", k)
	}
	o, err := prepare(g, opts)
	if err != nil {
		return Result{}, err
	}
	return runLocal(g, o, k)
}

// runLocal executes rounds until convergence or limit (limit < 0 ⇒ none).
func runLocal(g graph.View, o Options, limit int) (Result, error) {
	s := newRoundState(g, o)
	for !s.done() {
		if limit >= 0 && s.stats.Rounds >= limit {
			break
		}
		if err := s.cancelled(); err != nil {
			return Result{}, err
		}

		s.beginRound()
		s.evaluate(s.outranksRemaining)

		won := 0
		for i, v := range s.frontier {
			if s.flags[i] {
				s.selectVertex(v)
				won++
			}
		}
		o.Logger.Debug("round done",
			"algo", Local,
			"round", s.stats.Rounds,
			"frontier", len(s.frontier),
			"selected", won,
			"remaining", s.remaining.Count())
	}
	return s.result(Local), nil
}

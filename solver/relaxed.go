// SPDX-License-Identifier: MIT
// Package: mwis/solver
//
// relaxed.go - epsilon-relaxed distributed greedy.
//
// A vertex becomes a candidate when it is within a factor alpha = 1+eps/3 of
// its heaviest undecided neighbor, which lets many vertices commit in the same
// round. Candidates are then resolved within the round by rank (weight
// descending, TieBreak on ties); a candidate is accepted unless a neighbor was
// accepted before it. Larger eps admits more candidates and usually needs
// fewer rounds, at the cost of a looser weight guarantee. It is not monotone:
// a newly admitted candidate can displace one whose neighbors then wait for
// another round.

package solver

import (
	"slices"

	"github.com/katalvlaran/mwis/graph"
)

// RelaxedGreedy runs the relaxed protocol with parameter eps in (0,1).
// Result.Params reports Epsilon, Alpha = 1+eps/3 and Beta = 3/eps.
//
// Rounds terminate: the top-ranked undecided vertex is always a candidate and
// is resolved first.
func RelaxedGreedy(g graph.View, eps float64, opts ...Option) (Result, error) {
	o, err := prepare(g, append(slices.Clip(opts), WithEpsilon(eps)))
	if err != nil {
		return Result{}, err
	}

	alpha := 1 + o.Epsilon/3
	params := Params{Epsilon: o.Epsilon, Alpha: alpha, Beta: 3 / o.Epsilon}
	limit := roundLimit(o)

	s := newRoundState(g, o)
	isCandidate := func(v int) bool {
		best, ok := s.maxRemainingNeighbor(v)
		return !ok || s.w[v] >= best/alpha
	}
	byRank := func(a, b int) int {
		switch {
		case outranks(s.w[a], s.w[b], a, b, s.rule):
			return -1
		case outranks(s.w[b], s.w[a], b, a, s.rule):
			return 1
		}
		return 0
	}

	var cands []int
	for !s.done() {
		if limit >= 0 && s.stats.Rounds >= limit {
			break
		}
		if err = s.cancelled(); err != nil {
			return Result{}, err
		}

		s.beginRound()
		s.evaluate(isCandidate)

		// Every candidate leaves remaining this round, accepted or excluded,
		// so the next round's candidates all come from the new frontier.
		cands = cands[:0]
		for i, v := range s.frontier {
			if s.flags[i] {
				cands = append(cands, v)
			}
		}
		slices.SortFunc(cands, byRank)

		accepted := 0
		for _, v := range cands {
			if s.remaining.Test(uint(v)) {
				s.selectVertex(v)
				accepted++
			}
		}
		o.Logger.Debug("round done",
			"algo", Relaxed,
			"round", s.stats.Rounds,
			"candidates", len(cands),
			"accepted", accepted,
			"remaining", s.remaining.Count())
	}

	res := s.result(Relaxed)
	res.Params = params
	return res, nil
}

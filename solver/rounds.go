// SPDX-License-Identifier: MIT
// Package: mwis/solver
//
// rounds.go - shared synchronous-round machinery for the local engines.
//
// A round is read-evaluate-commit:
//   - evaluate: every vertex on the frontier decides from the start-of-round
//     snapshot of remaining; evaluations only write their own flag slot, so
//     they may run on several goroutines.
//   - commit: flagged vertices and their excluded neighbors leave remaining,
//     sequentially, at the barrier.
//
// Bookkeeping:
//   - live[v] counts v's remaining neighbors and is updated on every removal,
//     so nobody rescans full adjacency lists to learn who is still around.
//   - Only neighbors of removed vertices can change their verdict; they form
//     the next frontier. Everybody else keeps last round's "undecided".

package solver

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mwis/graph"
)

// parallelThreshold is the smallest frontier worth splitting across workers.
const parallelThreshold = 256

// roundState is the per-solve mutable state of a round-based engine.
type roundState struct {
	ctx  context.Context
	g    graph.View
	n    int
	w    []float64
	rule TieBreak

	remaining *bitset.BitSet
	selected  *bitset.BitSet
	excluded  *bitset.BitSet
	dirty     *bitset.BitSet

	live     []int
	liveEnds int64

	frontier []int
	flags    []bool
	workers  int

	stats Stats
}

// newRoundState snapshots weights and degrees; every vertex starts remaining
// and on the frontier.
func newRoundState(g graph.View, o Options) *roundState {
	n := g.Order()
	s := &roundState{
		ctx:       o.Ctx,
		g:         g,
		n:         n,
		w:         make([]float64, n),
		rule:      o.TieBreak,
		remaining: bitset.New(uint(n)),
		selected:  bitset.New(uint(n)),
		excluded:  bitset.New(uint(n)),
		dirty:     bitset.New(uint(n)),
		live:      make([]int, n),
		workers:   o.Workers,
	}
	for v := 0; v < n; v++ {
		s.w[v] = g.Weight(v)
		s.live[v] = len(g.Neighbors(v))
		s.liveEnds += int64(s.live[v])
		s.remaining.Set(uint(v))
		s.dirty.Set(uint(v))
	}
	if o.Instrument {
		s.stats.Overhead = make([]int64, n)
	}
	return s
}

// done reports whether every vertex is decided.
func (s *roundState) done() bool { return s.remaining.None() }

// beginRound charges the round's communication cost and collects the
// frontier: dirty vertices that are still remaining, ascending.
func (s *roundState) beginRound() {
	s.stats.Rounds++
	s.stats.Messages += s.liveEnds
	s.stats.Broadcasts += int64(s.remaining.Count())
	if s.stats.Overhead != nil {
		for i, ok := s.remaining.NextSet(0); ok; i, ok = s.remaining.NextSet(i + 1) {
			s.stats.Overhead[i] += int64(s.live[i])
		}
	}

	s.frontier = s.frontier[:0]
	for i, ok := s.dirty.NextSet(0); ok; i, ok = s.dirty.NextSet(i + 1) {
		if s.remaining.Test(i) {
			s.frontier = append(s.frontier, int(i))
		}
	}
	s.dirty.ClearAll()
	if cap(s.flags) < len(s.frontier) {
		s.flags = make([]bool, len(s.frontier))
	}
	s.flags = s.flags[:len(s.frontier)]
}

// evaluate runs decide over the frontier, writing flags[i] for frontier[i].
// decide must only read round state.
func (s *roundState) evaluate(decide func(v int) bool) {
	m := len(s.frontier)
	if s.workers <= 1 || m < parallelThreshold {
		for i, v := range s.frontier {
			s.flags[i] = decide(v)
		}
		return
	}

	chunk := (m + s.workers - 1) / s.workers
	var eg errgroup.Group
	eg.SetLimit(s.workers)
	for lo := 0; lo < m; lo += chunk {
		hi := min(lo+chunk, m)
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				s.flags[i] = decide(s.frontier[i])
			}
			return nil
		})
	}
	_ = eg.Wait()
}

// outranksRemaining reports whether v beats every remaining neighbor.
func (s *roundState) outranksRemaining(v int) bool {
	if s.live[v] == 0 {
		return true
	}
	wv := s.w[v]
	for _, u := range s.g.Neighbors(v) {
		if s.remaining.Test(uint(u)) && !outranks(wv, s.w[u], v, u, s.rule) {
			return false
		}
	}
	return true
}

// maxRemainingNeighbor returns the largest weight among v's remaining
// neighbors; ok is false if v has none.
func (s *roundState) maxRemainingNeighbor(v int) (best float64, ok bool) {
	if s.live[v] == 0 {
		return 0, false
	}
	for _, u := range s.g.Neighbors(v) {
		if s.remaining.Test(uint(u)) && (!ok || s.w[u] > best) {
			best, ok = s.w[u], true
		}
	}
	return best, ok
}

// remove takes x out of remaining and marks its remaining neighbors dirty.
func (s *roundState) remove(x int) {
	s.remaining.Clear(uint(x))
	s.liveEnds -= int64(s.live[x])
	for _, y := range s.g.Neighbors(x) {
		if s.remaining.Test(uint(y)) {
			s.live[y]--
			s.liveEnds--
			s.dirty.Set(uint(y))
		}
	}
}

// selectVertex commits v and excludes its remaining neighbors. Callers must
// never select two adjacent vertices in one round.
func (s *roundState) selectVertex(v int) {
	s.selected.Set(uint(v))
	if s.stats.Overhead != nil {
		s.stats.Overhead[v]++
	}
	s.remove(v)
	for _, u := range s.g.Neighbors(v) {
		if s.remaining.Test(uint(u)) {
			s.excluded.Set(uint(u))
			s.remove(u)
		}
	}
}

// cancelled reports a context error at a round barrier.
func (s *roundState) cancelled() error {
	if s.ctx == nil {
		return nil
	}
	return s.ctx.Err()
}

// result packs the final state. The closing announcement of every selected
// vertex is charged here.
func (s *roundState) result(algo Algorithm) Result {
	set := toRoaring(s.selected)
	s.stats.Broadcasts += int64(s.selected.Count())
	return Result{
		Algorithm: algo,
		Set:       set,
		Weight:    graph.TotalWeight(s.g, set),
		Converged: s.done(),
		Excluded:  toRoaring(s.excluded),
		Remaining: toRoaring(s.remaining),
		Stats:     s.stats,
	}
}

// toRoaring converts a dense bitset into a compressed result bitmap.
func toRoaring(b *bitset.BitSet) *roaring.Bitmap {
	out := roaring.New()
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out.Add(uint32(i))
	}
	return out
}

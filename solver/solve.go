// SPDX-License-Identifier: MIT
// Package: mwis/solver
//
// solve.go - single entry point dispatching on Options.Algo.

package solver

import (
	"fmt"

	"github.com/katalvlaran/mwis/graph"
)

// Solve runs the engine selected by WithAlgorithm (default Local) with the
// remaining options passed through.
//
//	Local     → LocalGreedy
//	Relaxed   → RelaxedGreedy(Options.Epsilon)
//	Annealing → Anneal
//	Central   → Greedy
func Solve(g graph.View, opts ...Option) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	switch o.Algo {
	case Local:
		return LocalGreedy(g, opts...)
	case Relaxed:
		return RelaxedGreedy(g, o.Epsilon, opts...)
	case Annealing:
		return Anneal(g, opts...)
	case Central:
		return Greedy(g, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, o.Algo)
	}
}

// prepare resolves options and rejects nil or malformed graphs before any
// engine state is allocated.
func prepare(g graph.View, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	if gg, ok := g.(*graph.Graph); ok && gg == nil {
		return Options{}, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return o, err
	}
	if err = graph.Validate(g); err != nil {
		return o, err
	}
	return o, nil
}

// roundLimit maps MaxRounds (0 ⇒ unlimited) onto the runner's limit (-1 ⇒ unlimited).
func roundLimit(o Options) int {
	if o.MaxRounds == 0 {
		return -1
	}
	return o.MaxRounds
}

// fmtViolation builds an ErrOptionViolation-wrapped error.
func fmtViolation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
}

// SPDX-License-Identifier: MIT
// Package: mwis/solver
//
// options.go - functional options shared by every engine.
//
// Contract:
//   - Options never panic; an invalid value is recorded and surfaced as
//     ErrOptionViolation when the engine is invoked.
//   - Later options override earlier ones.
//   - Defaults are deterministic: seed 0 maps to a fixed stream.

package solver

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Annealing schedule defaults.
const (
	DefaultSteps       = 128
	DefaultMinExponent = -5.0
	DefaultMaxExponent = 5.0
	DefaultEpsilon     = 0.5
)

// Option configures an engine via functional arguments.
type Option func(*Options)

// Options holds every knob understood by the engines. Fields irrelevant to
// the engine being run are ignored.
type Options struct {
	// Ctx is checked at round barriers.
	Ctx context.Context

	// Algo selects the engine for Solve.
	Algo Algorithm

	// Epsilon in (0,1) parameterizes the relaxed engine.
	Epsilon float64

	// MaxRounds, if > 0, stops round-based engines after that many rounds.
	// Zero means no limit.
	MaxRounds int

	// Workers > 1 evaluates each round's frontier on that many goroutines.
	Workers int

	// TieBreak orders weight-tied vertices; nil means LowerID.
	TieBreak TieBreak

	// Instrument enables the per-vertex Overhead vector.
	Instrument bool

	// Seed drives the annealer when Rand is nil (0 ⇒ fixed default stream).
	Seed int64

	// Rand, if non-nil, is used verbatim by the annealer.
	Rand *rand.Rand

	// Steps is the number of temperature steps.
	Steps int

	// MinExponent and MaxExponent bound the inverse temperature 10^e sweep.
	MinExponent float64
	MaxExponent float64

	// Penalty is the annealing coefficient A; 0 means "vertex count".
	Penalty float64

	// Logger receives per-round debug records.
	Logger *log.Logger

	err error
}

// DefaultOptions returns Options with:
//   - background context, Local algorithm, epsilon 0.5;
//   - no round limit, sequential evaluation, LowerID tie-break;
//   - seed 0, 128 steps over exponents [-5, 5], penalty = vertex count;
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Algo:        Local,
		Epsilon:     DefaultEpsilon,
		TieBreak:    LowerID,
		Steps:       DefaultSteps,
		MinExponent: DefaultMinExponent,
		MaxExponent: DefaultMaxExponent,
		Logger:      log.New(io.Discard),
	}
}

// resolve applies opts over defaults and reports the first recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if o.MinExponent > o.MaxExponent {
		return o, fmt.Errorf("%w: MinExponent %g > MaxExponent %g", ErrOptionViolation, o.MinExponent, o.MaxExponent)
	}
	return o, nil
}

// violate records the first violation only.
func (o *Options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmtViolation(format, args...)
	}
}

// WithContext sets a custom context for cancellation at round barriers.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlgorithm selects the engine used by Solve.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a < Local || a > Central {
			if o.err == nil {
				o.err = fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(a))
			}
			return
		}
		o.Algo = a
	}
}

// WithEpsilon sets the relaxation parameter; it must lie strictly in (0,1).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0 && eps < 1) {
			o.violate("epsilon must be in (0,1), got %g", eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxRounds bounds the number of synchronous rounds.
//
//	k > 0:  stop after k rounds
//	k == 0: explicit no limit
//	k < 0:  ErrOptionViolation
func WithMaxRounds(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.violate("MaxRounds cannot be negative (%d)", k)
			return
		}
		o.MaxRounds = k
	}
}

// WithWorkers evaluates each round's frontier on n goroutines (n ≤ 1 ⇒ sequential).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.violate("Workers cannot be negative (%d)", n)
			return
		}
		o.Workers = n
	}
}

// WithTieBreak replaces the identity tie-break rule.
func WithTieBreak(rule TieBreak) Option {
	return func(o *Options) {
		if rule != nil {
			o.TieBreak = rule
		}
	}
}

// WithInstrumentation enables the per-vertex Overhead vector.
func WithInstrumentation() Option {
	return func(o *Options) { o.Instrument = true }
}

// WithSeed fixes the annealer's random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand hands the annealer an explicit source. The source is consumed and
// must not be shared with concurrent solves.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSchedule sets the number of temperature steps and the exponent range
// of the inverse temperature beta = 10^e.
func WithSchedule(steps int, minExp, maxExp float64) Option {
	return func(o *Options) {
		switch {
		case steps < 1:
			o.violate("Steps must be ≥ 1, got %d", steps)
		case math.IsNaN(minExp) || math.IsNaN(maxExp) || math.IsInf(minExp, 0) || math.IsInf(maxExp, 0):
			o.violate("schedule exponents must be finite")
		default:
			o.Steps, o.MinExponent, o.MaxExponent = steps, minExp, maxExp
		}
	}
}

// WithPenalty sets the annealing coefficient A (reward B = A/3).
// Zero restores the vertex-count default.
func WithPenalty(a float64) Option {
	return func(o *Options) {
		if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			o.violate("penalty must be finite and ≥ 0, got %g", a)
			return
		}
		o.Penalty = a
	}
}

// WithLogger routes per-round debug records to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

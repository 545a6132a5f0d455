// SPDX-License-Identifier: MIT
// Package: mwis/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   - Constructors never panic; option constructors may (programmer error).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempts (for
// example stub matching in RandomRegular) or received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates that an explicit weight vector does not match the
// number of vertices produced.
var ErrBadSize = errors.New("builder: invalid size/length")

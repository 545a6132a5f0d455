// SPDX-License-Identifier: MIT
// Package: mwis/graph
//
// errors.go - sentinel and typed errors for graph ingestion.
//
// Error policy:
//   - Every malformed input is reported as *InputError naming the violated
//     Constraint; errors.Is(err, ErrInvalidGraphInput) holds for all of them.
//   - Validation happens before any solver touches the graph; solvers never
//     re-check what a constructor already guaranteed.

package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidGraphInput is the umbrella sentinel for malformed graph input.
var ErrInvalidGraphInput = errors.New("graph: invalid graph input")

// ErrTooManyVertices is returned when the order exceeds the uint32 id space
// used by result bitmaps.
var ErrTooManyVertices = fmt.Errorf("%w: too many vertices", ErrInvalidGraphInput)

// Constraint names the input rule an InputError violated.
type Constraint string

// Known constraints.
const (
	ConstraintWeightCount       Constraint = "weight count must equal vertex count"
	ConstraintNegativeWeight    Constraint = "weights must be non-negative"
	ConstraintNonFiniteWeight   Constraint = "weights must be finite"
	ConstraintSelfLoop          Constraint = "self-loops are not allowed"
	ConstraintVertexRange       Constraint = "vertex id out of range"
	ConstraintAsymmetric        Constraint = "adjacency must be symmetric"
	ConstraintDuplicateNeighbor Constraint = "neighbor listed twice"
	ConstraintShape             Constraint = "adjacency matrix must be square"
)

// InputError reports a violated input constraint. Vertex and Other locate the
// offending vertex or edge when applicable (-1 otherwise).
type InputError struct {
	Constraint Constraint
	Vertex     int
	Other      int
	Detail     string
}

// Error implements error.
func (e *InputError) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("graph: invalid graph input: %s (%s)", e.Constraint, e.Detail)
	case e.Other >= 0:
		return fmt.Sprintf("graph: invalid graph input: %s (edge %d-%d)", e.Constraint, e.Vertex, e.Other)
	case e.Vertex >= 0:
		return fmt.Sprintf("graph: invalid graph input: %s (vertex %d)", e.Constraint, e.Vertex)
	default:
		return fmt.Sprintf("graph: invalid graph input: %s", e.Constraint)
	}
}

// Is lets errors.Is match the ErrInvalidGraphInput umbrella.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidGraphInput
}

func vertexError(c Constraint, v int) error {
	return &InputError{Constraint: c, Vertex: v, Other: -1}
}

func edgeError(c Constraint, u, v int) error {
	return &InputError{Constraint: c, Vertex: u, Other: v}
}

func detailError(c Constraint, format string, args ...any) error {
	return &InputError{Constraint: c, Vertex: -1, Other: -1, Detail: fmt.Sprintf(format, args...)}
}

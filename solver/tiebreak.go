// SPDX-License-Identifier: MIT
// Package: mwis/solver
//
// tiebreak.go - deterministic ordering of weight-tied vertices.
//
// Every engine decides "does v beat u" from data visible to both endpoints:
// the two weights and the two ids. Ties on weight fall back to a TieBreak,
// which must be a strict total order on ids so both endpoints of an edge
// reach the same verdict without talking to each other.

package solver

// TieBreak reports whether v wins a weight tie against u. Implementations
// must be irreflexive, asymmetric and transitive over vertex ids.
type TieBreak func(v, u int) bool

// LowerID lets the smaller identity win a weight tie.
func LowerID(v, u int) bool { return v < u }

// HigherID lets the larger identity win a weight tie.
func HigherID(v, u int) bool { return v > u }

// outranks reports whether v (weight wv) beats u (weight wu): strictly
// heavier, or equally heavy and preferred by rule.
func outranks(wv, wu float64, v, u int, rule TieBreak) bool {
	if wv != wu {
		return wv > wu
	}
	return rule(v, u)
}

// Outranks is the exported form of the comparison every engine uses to
// decide whether v (weight wv) beats u (weight wu). A nil rule means LowerID.
func Outranks(wv float64, v int, wu float64, u int, rule TieBreak) bool {
	if rule == nil {
		rule = LowerID
	}
	return outranks(wv, wu, v, u, rule)
}

package services

import (
	"fulfillment/internal/core/domain/model/task"

	"github.com/agnivade/levenshtein"
)

// maxEditDistance is the only tolerance the matcher applies: one
// substitution between equal-length codes. Not configurable.
const maxEditDistance = 1

// CodeMatcher is a domain service implementing the tolerant delivery-code
// matching policy:
//
//  1. Both codes are normalized (whitespace and hyphens stripped,
//     case-folded).
//  2. An exact match succeeds.
//  3. Otherwise the match succeeds when the codes have equal normalized
//     length and their Levenshtein distance is at most one, tolerating a
//     single mistyped digit.
//  4. Anything else is a mismatch, which is a result rather than an error.
//
// A length mismatch always fails: an extra or missing digit is never
// accepted, even though its edit distance may be one.
type CodeMatcher struct{}

// NewCodeMatcher creates a CodeMatcher.
func NewCodeMatcher() CodeMatcher {
	return CodeMatcher{}
}

// Match reports whether a submitted code confirms the expected one under
// the tolerant policy above.
func (m CodeMatcher) Match(submitted string, expected task.DeliveryCode) bool {
	normalized := task.NormalizeCode(submitted)
	if normalized == expected.Value() {
		return true
	}

	if len(normalized) != len(expected.Value()) {
		return false
	}

	return levenshtein.ComputeDistance(normalized, expected.Value()) <= maxEditDistance
}

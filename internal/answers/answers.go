// Package answers implements the shared answer-matching rule used by the
// assessment and by lesson exercises.
package answers

import "strings"

// Normalize prepares an answer string for comparison: surrounding whitespace
// is trimmed and the text is case-folded. Nothing else: "2*x" and "2x" are
// distinct answers on purpose.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Match reports whether the submitted answer equals the correct answer under
// Normalize. An empty submission never matches.
func Match(submitted, correct string) bool {
	n := Normalize(submitted)
	if n == "" {
		return false
	}
	return n == Normalize(correct)
}

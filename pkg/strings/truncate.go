// Package strings holds text helpers for terminal output.
package strings

import (
	"strings"
)

// DefaultValueMaxLen is the width option values and descriptions are cut to
// in table output.
const DefaultValueMaxLen = 100

// minTruncateLen leaves room for one character plus the ellipsis.
const minTruncateLen = 4

// Truncate collapses all whitespace runs in s, including newlines, into
// single spaces and shortens the result to at most maxLen runes, ending
// in "..." when anything was cut. maxLen is raised to 4 if smaller.
func Truncate(s string, maxLen int) string {
	if maxLen < minTruncateLen {
		maxLen = minTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

package utils

import (
	"strings"
	"unicode/utf8"
)

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}

// Preview collapses all whitespace runs of s into single spaces and truncates the
// result, so multi-line resume text fits on one log line.
func Preview(s string, limit int) string {
	return TruncateForLog(strings.Join(strings.Fields(s), " "), limit)
}

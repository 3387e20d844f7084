package ranking

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Character classes shared by the pattern based scorers. They cover Unicode
// letters, digits and separators so that non-ASCII resumes match the same way
// ASCII ones do.
const (
	spaceClass = `\s\v\p{Z}\x{85}\x{1c}-\x{1f}`
	wordClass  = `\p{L}\p{N}_`
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func fields(s string) []string {
	return strings.FieldsFunc(s, isSpace)
}

// countContained returns how many entries of terms occur as substrings of text.
// Repeated entries are counted every time. Terms are lowercased and trimmed
// before the lookup; text must already be lowercased.
func countContained(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(text, trimSpace(strings.ToLower(term))) {
			count++
		}
	}
	return count
}

// countDistinct is countContained over the distinct entries of a lookup table.
func countDistinct(text string, table []string) int {
	seen := make(map[string]struct{}, len(table))
	count := 0
	for _, term := range table {
		term = trimSpace(strings.ToLower(term))
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		if strings.Contains(text, term) {
			count++
		}
	}
	return count
}

// round2 rounds half to even on the exact decimal expansion of v.
func round2(v float64) float64 {
	// FormatFloat output always parses.
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

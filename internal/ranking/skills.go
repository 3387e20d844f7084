package ranking

import (
	"math"
	"strings"
)

// SkillsMatch returns the share of required skills found in the resume, as a
// percentage. Skills match as plain substrings, so "java" also matches "javascript".
// Without required skills nothing can match and the score is 0.
func (e *Engine) SkillsMatch(text string, skills []string) float64 {
	if len(skills) == 0 {
		return 0
	}

	matched := countContained(strings.ToLower(text), skills)
	return math.Min(float64(matched)/float64(len(skills))*100, 100)
}

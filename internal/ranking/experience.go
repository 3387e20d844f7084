package ranking

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

const (
	defaultExperienceScore = 50.0
	pointsPerYear          = 8
	maxYearsPoints         = 50
	maxKeywordPoints       = 50.0
)

var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\p{Nd}+)[` + spaceClass + `]*years?[` + spaceClass + `]*of[` + spaceClass + `]*experience`),
	regexp.MustCompile(`(\p{Nd}+)[` + spaceClass + `]*years?[` + spaceClass + `]*experience`),
	regexp.MustCompile(`(\p{Nd}+)\+[` + spaceClass + `]*years?`),
}

// ExperienceRelevance combines the stated years of experience (8 points per year,
// up to 50) with the share of job keywords found in the resume (up to 50).
// Without keywords there is nothing to compare against and the neutral 50 is returned.
func (e *Engine) ExperienceRelevance(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return defaultExperienceScore
	}

	lower := strings.ToLower(text)

	keywordScore := float64(countContained(lower, keywords)) / float64(len(keywords)) * maxKeywordPoints
	return math.Min(keywordScore+yearsScore(YearsOfExperience(lower)), 100)
}

// YearsOfExperience returns the largest "N years of experience", "N years experience"
// or "N+ years" figure found in text, or 0. N may be written in any decimal digit
// script. Figures too large for an int saturate.
func YearsOfExperience(text string) int {
	lower := strings.ToLower(text)

	years := 0
	for _, pattern := range yearsPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			years = max(years, parseDigits(match[1]))
		}
	}
	return years
}

func yearsScore(years int) float64 {
	if years >= maxYearsPoints/pointsPerYear+1 {
		return maxYearsPoints
	}
	return math.Min(float64(years*pointsPerYear), maxYearsPoints)
}

// parseDigits converts a run of Unicode decimal digits to an int, saturating at math.MaxInt.
func parseDigits(s string) int {
	n := 0
	for _, r := range s {
		d := digitValue(r)
		if n > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		n = n*10 + d
	}
	return n
}

// digitValue returns the value of a decimal digit rune. Unicode keeps every decimal
// digit set as a contiguous run of ten code points starting at zero, and adjacent
// sets are whole runs, so the value is the offset into the run modulo ten.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}

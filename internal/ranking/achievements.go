package ranking

import (
	"math"
	"regexp"
	"strings"
)

const (
	pointsPerAchievement   = 5
	pointsPerCertification = 10
)

// Certification phrasings. The patterns overlap on purpose and a single phrase can
// be counted by more than one of them.
var certificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`certified[` + spaceClass + `]+[` + wordClass + spaceClass + `]+`),
	regexp.MustCompile(`certification[` + spaceClass + `]+in[` + spaceClass + `]+[` + wordClass + spaceClass + `]+`),
	regexp.MustCompile(`[` + wordClass + spaceClass + `]+[` + spaceClass + `]+certified`),
}

// AchievementsCertifications gives 5 points per distinct achievement indicator
// word and 10 points per certification phrase match, capped at 100.
func (e *Engine) AchievementsCertifications(text string) float64 {
	lower := strings.ToLower(text)

	score := countDistinct(lower, e.achievementKeywords) * pointsPerAchievement
	score += CertificationMatches(lower) * pointsPerCertification

	return math.Min(float64(score), 100)
}

// CertificationMatches counts the matches of all certification patterns in text.
func CertificationMatches(text string) int {
	lower := strings.ToLower(text)

	count := 0
	for _, pattern := range certificationPatterns {
		count += len(pattern.FindAllStringIndex(lower, -1))
	}
	return count
}

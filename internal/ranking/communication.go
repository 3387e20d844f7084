package ranking

import "strings"

const (
	baseCommunicationScore = 50
	pointsPerTerm          = 2
	maxTermPoints          = 10
)

// CommunicationQuality is a rough readability heuristic. It starts at 50 and
// adjusts for the average sentence length, the overall length of the resume and
// the number of distinct professional terms used.
func (e *Engine) CommunicationQuality(text string) float64 {
	if trimSpace(text) == "" {
		return 0
	}

	sentences := 0
	for _, s := range strings.Split(text, ".") {
		if trimSpace(s) != "" {
			sentences++
		}
	}

	words := len(fields(text))
	if words == 0 {
		return 0
	}

	avg := float64(words) / float64(max(sentences, 1))

	score := baseCommunicationScore

	switch {
	case avg >= 10 && avg <= 20:
		score += 20
	case avg < 5 || avg > 30:
		score -= 10
	}

	switch {
	case words >= 150 && words <= 1000:
		score += 30
	case words < 50:
		score -= 30
	}

	terms := countDistinct(strings.ToLower(text), e.professionalTerms)
	score += min(terms*pointsPerTerm, maxTermPoints)

	return clamp(float64(score), 0, 100)
}

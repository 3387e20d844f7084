package ranking

import (
	"math"
	"strings"
)

const (
	bonusPerQualification = 5
	maxQualificationBonus = 20
)

// EducationBackground scores the highest qualification mentioned in the resume and
// adds 5 points for every distinct qualification term found, up to 20.
func (e *Engine) EducationBackground(text string) float64 {
	lower := strings.ToLower(text)

	base := 0.0
	matched := 0
	seen := make(map[string]struct{}, len(e.qualifications))
	for _, q := range e.qualifications {
		if !strings.Contains(lower, q.Term) {
			continue
		}
		base = math.Max(base, q.Score)

		if _, ok := seen[q.Term]; !ok {
			seen[q.Term] = struct{}{}
			matched++
		}
	}

	bonus := math.Min(float64(matched*bonusPerQualification), maxQualificationBonus)
	return math.Min(base+bonus, 100)
}

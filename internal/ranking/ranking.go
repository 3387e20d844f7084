// Package ranking scores resume text against job requirements.
//
// Five independent heuristics (skills, experience, education, achievements and
// communication) produce factor scores in [0, 100]. They are combined with fixed
// weights into a final score and mapped onto one of four classification labels.
// An Engine holds only read-only tables, so it is safe for concurrent use.
package ranking

// Classification labels, from the highest tier to the lowest.
const (
	LabelPerfect     = "Perfect candidate"
	LabelOutstanding = "Outstanding"
	LabelUpToTheMark = "Up to the mark"
	LabelGood        = "Good candidate"
)

// UnknownID identifies batch entries that were submitted without an identifier.
// An identifier given as an empty string is kept as is.
const UnknownID = "Unknown"

// Requirements are the skills and keywords a resume is evaluated against.
// Skills must be present when decoded from external input but may be empty.
type Requirements struct {
	Skills   []string `json:"skills" mapstructure:"skills" validate:"required"`
	Keywords []string `json:"keywords" mapstructure:"keywords"`
}

// FactorScores holds the five factor scores, each in [0, 100].
type FactorScores struct {
	SkillsMatch                float64 `json:"skills_match"`
	ExperienceRelevance        float64 `json:"experience_relevance"`
	EducationBackground        float64 `json:"education_background"`
	AchievementsCertifications float64 `json:"achievements_certifications"`
	CommunicationQuality       float64 `json:"communication_quality"`
}

// Get returns the score of the given factor.
func (s FactorScores) Get(f Factor) float64 {
	switch f {
	case FactorSkills:
		return s.SkillsMatch
	case FactorExperience:
		return s.ExperienceRelevance
	case FactorEducation:
		return s.EducationBackground
	case FactorAchievements:
		return s.AchievementsCertifications
	case FactorCommunication:
		return s.CommunicationQuality
	default:
		return 0
	}
}

func (s FactorScores) rounded() FactorScores {
	return FactorScores{
		SkillsMatch:                round2(s.SkillsMatch),
		ExperienceRelevance:        round2(s.ExperienceRelevance),
		EducationBackground:        round2(s.EducationBackground),
		AchievementsCertifications: round2(s.AchievementsCertifications),
		CommunicationQuality:       round2(s.CommunicationQuality),
	}
}

// Weights are the fractions each factor contributes to the final score.
type Weights struct {
	Skills        float64 `json:"skills"`
	Experience    float64 `json:"experience"`
	Education     float64 `json:"education"`
	Achievements  float64 `json:"achievements"`
	Communication float64 `json:"communication"`
}

// Get returns the weight of the given factor.
func (w Weights) Get(f Factor) float64 {
	switch f {
	case FactorSkills:
		return w.Skills
	case FactorExperience:
		return w.Experience
	case FactorEducation:
		return w.Education
	case FactorAchievements:
		return w.Achievements
	case FactorCommunication:
		return w.Communication
	default:
		return 0
	}
}

// Sum returns the total of all five weights.
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Achievements + w.Communication
}

// Result is the outcome of ranking a single resume.
type Result struct {
	FinalScore     float64      `json:"final_score"`
	Classification string       `json:"classification"`
	FactorScores   FactorScores `json:"factor_scores"`
	WeightsUsed    Weights      `json:"weights_used"`
}

// Resume is one entry of a batch.
type Resume struct {
	ID   string
	Text string
}

// RankedResult is a Result tagged with the identifier of the ranked resume.
type RankedResult struct {
	ID string `json:"filename"`
	Result
}

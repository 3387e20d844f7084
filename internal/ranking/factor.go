package ranking

// Factor identifies one of the five scoring heuristics.
type Factor int

const (
	FactorSkills Factor = iota
	FactorExperience
	FactorEducation
	FactorAchievements
	FactorCommunication
)

var factors = []Factor{
	FactorSkills,
	FactorExperience,
	FactorEducation,
	FactorAchievements,
	FactorCommunication,
}

// Factors returns all factors in their fixed reporting order.
func Factors() []Factor {
	out := make([]Factor, len(factors))
	copy(out, factors)
	return out
}

// Key returns the factor score key used in results.
func (f Factor) Key() string {
	switch f {
	case FactorSkills:
		return "skills_match"
	case FactorExperience:
		return "experience_relevance"
	case FactorEducation:
		return "education_background"
	case FactorAchievements:
		return "achievements_certifications"
	case FactorCommunication:
		return "communication_quality"
	default:
		return ""
	}
}

// WeightKey returns the short key the factor uses in Weights.
func (f Factor) WeightKey() string {
	switch f {
	case FactorSkills:
		return "skills"
	case FactorExperience:
		return "experience"
	case FactorEducation:
		return "education"
	case FactorAchievements:
		return "achievements"
	case FactorCommunication:
		return "communication"
	default:
		return ""
	}
}

// Title returns a human readable factor name.
func (f Factor) Title() string {
	switch f {
	case FactorSkills:
		return "Skills Match"
	case FactorExperience:
		return "Experience Relevance"
	case FactorEducation:
		return "Education Background"
	case FactorAchievements:
		return "Achievements & Certifications"
	case FactorCommunication:
		return "Communication Quality"
	default:
		return "Unknown"
	}
}

func (f Factor) String() string { return f.Key() }

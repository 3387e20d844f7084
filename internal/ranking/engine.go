package ranking

import "strings"

// Engine ranks resumes. It is immutable after construction.
type Engine struct {
	weights             Weights
	tiers               []Tier
	fallbackLabel       string
	qualifications      []Qualification
	achievementKeywords []string
	professionalTerms   []string
}

// NewEngine creates an engine with the built-in weights and tables.
func NewEngine() *Engine {
	e, err := NewEngineWithConfig(DefaultConfig())
	if err != nil {
		// the built-in config is covered by tests
		panic(err)
	}
	return e
}

// NewEngineWithConfig creates an engine from cfg. The config is copied, so later
// changes to it do not affect the engine.
func NewEngineWithConfig(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg = cfg.clone()
	for i, q := range cfg.Qualifications {
		cfg.Qualifications[i].Term = trimSpace(strings.ToLower(q.Term))
	}

	return &Engine{
		weights:             cfg.Weights,
		tiers:               cfg.Tiers,
		fallbackLabel:       cfg.FallbackLabel,
		qualifications:      cfg.Qualifications,
		achievementKeywords: cfg.AchievementKeywords,
		professionalTerms:   cfg.ProfessionalTerms,
	}, nil
}

// Weights returns the weights the engine combines factor scores with.
func (e *Engine) Weights() Weights { return e.weights }

// Tiers returns a copy of the classification tiers, highest first.
func (e *Engine) Tiers() []Tier {
	return append([]Tier(nil), e.tiers...)
}

// Labels returns every classification label the engine can produce, highest tier first.
func (e *Engine) Labels() []string {
	labels := make([]string, 0, len(e.tiers)+1)
	for _, tier := range e.tiers {
		labels = append(labels, tier.Label)
	}
	return append(labels, e.fallbackLabel)
}

// Rank scores a resume against the requirements.
func (e *Engine) Rank(text string, req Requirements) Result {
	return e.Result(e.FactorScores(text, req))
}

// Result builds the ranking result of already computed factor scores.
func (e *Engine) Result(scores FactorScores) Result {
	// Classified on the rounded score so the label always agrees with the reported
	// FinalScore: a raw 60.998 is reported as 61 and labelled as 61.
	final := round2(e.Combine(scores))

	return Result{
		FinalScore:     final,
		Classification: e.Classify(final),
		FactorScores:   scores.rounded(),
		WeightsUsed:    e.weights,
	}
}

// FactorScores computes the unrounded scores of all five factors.
func (e *Engine) FactorScores(text string, req Requirements) FactorScores {
	return FactorScores{
		SkillsMatch:                e.SkillsMatch(text, req.Skills),
		ExperienceRelevance:        e.ExperienceRelevance(text, req.Keywords),
		EducationBackground:        e.EducationBackground(text),
		AchievementsCertifications: e.AchievementsCertifications(text),
		CommunicationQuality:       e.CommunicationQuality(text),
	}
}

// Combine returns the weighted sum of the factor scores.
func (e *Engine) Combine(scores FactorScores) float64 {
	total := 0.0
	for _, f := range factors {
		total += scores.Get(f) * e.weights.Get(f)
	}
	return total
}

// Classify maps a final score to its label. Tier minimums are inclusive.
func (e *Engine) Classify(score float64) string {
	for _, tier := range e.tiers {
		if score >= tier.Min {
			return tier.Label
		}
	}
	return e.fallbackLabel
}

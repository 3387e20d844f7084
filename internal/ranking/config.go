package ranking

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidConfig is returned when an engine configuration breaks its invariants.
var ErrInvalidConfig = errors.New("invalid ranking config")

const weightTolerance = 1e-9

// Tier maps every score at or above Min to Label.
type Tier struct {
	Min   float64 `json:"min"`
	Label string  `json:"label"`
}

// Qualification is an education table entry matched as a substring of the resume.
type Qualification struct {
	Term  string
	Score float64
}

// Config is the set of constant tables an Engine is built from.
type Config struct {
	Weights Weights
	// Tiers are evaluated from the first to the last, so they must be sorted by Min descending.
	Tiers               []Tier
	FallbackLabel       string
	Qualifications      []Qualification
	AchievementKeywords []string
	ProfessionalTerms   []string
}

// DefaultWeights returns the fixed factor weights.
func DefaultWeights() Weights {
	return Weights{
		Skills:        0.30,
		Experience:    0.25,
		Education:     0.20,
		Achievements:  0.15,
		Communication: 0.10,
	}
}

// DefaultConfig returns a fresh copy of the built-in tables.
func DefaultConfig() Config {
	return Config{
		Weights: DefaultWeights(),
		Tiers: []Tier{
			{Min: 91, Label: LabelPerfect},
			{Min: 76, Label: LabelOutstanding},
			{Min: 61, Label: LabelUpToTheMark},
		},
		FallbackLabel: LabelGood,
		Qualifications: []Qualification{
			{Term: "phd", Score: 100},
			{Term: "doctorate", Score: 100},
			{Term: "ph.d", Score: 100},
			{Term: "master", Score: 80},
			{Term: "mba", Score: 85},
			{Term: "ms", Score: 80},
			{Term: "ma", Score: 80},
			{Term: "m.tech", Score: 85},
			{Term: "bachelor", Score: 60},
			{Term: "degree", Score: 50},
			{Term: "b.tech", Score: 60},
			{Term: "be", Score: 60},
			{Term: "bs", Score: 60},
			{Term: "ba", Score: 60},
			{Term: "diploma", Score: 40},
			{Term: "certificate", Score: 30},
			{Term: "high school", Score: 20},
			{Term: "secondary", Score: 20},
		},
		AchievementKeywords: []string{
			"certified", "certification", "award", "recognition", "achievement",
			"published", "patent", "project", "led", "managed", "developed",
			"implemented", "created", "designed", "improved", "increased",
			"reduced", "optimized", "successful", "excellence",
		},
		ProfessionalTerms: []string{
			"experience", "responsible", "managed", "developed",
			"achieved", "implemented", "collaborated", "leadership",
		},
	}
}

// Validate checks the weight and tier invariants.
func (c Config) Validate() error {
	for _, f := range factors {
		if w := c.Weights.Get(f); w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: weight %s is %v", ErrInvalidConfig, f.WeightKey(), w)
		}
	}
	if sum := c.Weights.Sum(); math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v, expected 1", ErrInvalidConfig, sum)
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("%w: at least one tier is required", ErrInvalidConfig)
	}
	for i, tier := range c.Tiers {
		if strings.TrimSpace(tier.Label) == "" {
			return fmt.Errorf("%w: tier %d has an empty label", ErrInvalidConfig, i)
		}
		if i > 0 && tier.Min >= c.Tiers[i-1].Min {
			return fmt.Errorf("%w: tiers must be sorted by descending minimum", ErrInvalidConfig)
		}
	}
	if strings.TrimSpace(c.FallbackLabel) == "" {
		return fmt.Errorf("%w: fallback label is required", ErrInvalidConfig)
	}
	return nil
}

func (c Config) clone() Config {
	out := c
	out.Tiers = append([]Tier(nil), c.Tiers...)
	out.Qualifications = append([]Qualification(nil), c.Qualifications...)
	out.AchievementKeywords = append([]string(nil), c.AchievementKeywords...)
	out.ProfessionalTerms = append([]string(nil), c.ProfessionalTerms...)
	return out
}

// Package candidates holds the resumes of one batch together with their ranking results.
package candidates

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/spigell/resume-ranker/internal/ranking"
)

const (
	CandidateIDField             = "ID"
	CandidateClassificationField = "Classification"
)

type Candidates struct {
	Items []*Candidate
}

type Candidate struct {
	ID     string          `json:"filename" mapstructure:"filename"`
	Text   string          `json:"text,omitempty" mapstructure:"text"`
	Result *ranking.Result `json:"result,omitempty" mapstructure:"-"`
}

func New(items ...*Candidate) *Candidates {
	return &Candidates{Items: items}
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) IDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, candidate := range c.Items {
		ids = append(ids, candidate.ID)
	}
	return ids
}

func (ca *Candidate) GetStringField(name string) string {
	switch name {
	case CandidateIDField:
		return ca.ID
	case CandidateClassificationField:
		if ca.Result == nil {
			return ""
		}
		return ca.Result.Classification
	default:
		return ""
	}
}

// Score returns the final score, or 0 for candidates that were not ranked yet.
func (ca *Candidate) Score() float64 {
	if ca.Result == nil {
		return 0
	}
	return ca.Result.FinalScore
}

// Exclude removes every candidate whose field matches one of targets and returns the removed ids.
// The order of the remaining candidates is preserved.
func (c *Candidates) Exclude(name string, targets []string) []string {
	var excluded []string
	c.Items = slices.DeleteFunc(c.Items, func(candidate *Candidate) bool {
		if slices.Contains(targets, candidate.GetStringField(name)) {
			excluded = append(excluded, candidate.ID)
			return true
		}
		return false
	})
	return excluded
}

// Keep removes every candidate for which keep returns false and returns the removed ids.
func (c *Candidates) Keep(keep func(*Candidate) bool) []string {
	var excluded []string
	c.Items = slices.DeleteFunc(c.Items, func(candidate *Candidate) bool {
		if keep(candidate) {
			return false
		}
		excluded = append(excluded, candidate.ID)
		return true
	})
	return excluded
}

// Top keeps the first n candidates and returns the ids of the dropped ones.
func (c *Candidates) Top(n int) []string {
	if n < 0 || n >= len(c.Items) {
		return nil
	}

	excluded := make([]string, 0, len(c.Items)-n)
	for _, candidate := range c.Items[n:] {
		excluded = append(excluded, candidate.ID)
	}
	c.Items = c.Items[:n]
	return excluded
}

// Resumes converts the candidates into ranking input.
func (c *Candidates) Resumes() []ranking.Resume {
	resumes := make([]ranking.Resume, 0, len(c.Items))
	for _, candidate := range c.Items {
		resumes = append(resumes, ranking.Resume{ID: candidate.ID, Text: candidate.Text})
	}
	return resumes
}

// Ranked returns the ranking results of all ranked candidates in their current order.
func (c *Candidates) Ranked() []ranking.RankedResult {
	results := make([]ranking.RankedResult, 0, len(c.Items))
	for _, candidate := range c.Items {
		if candidate.Result == nil {
			continue
		}
		results = append(results, ranking.RankedResult{ID: candidate.ID, Result: *candidate.Result})
	}
	return results
}

// Rank scores every candidate against req and reorders the items by final score,
// highest first. Candidates with equal scores keep their relative order.
func (c *Candidates) Rank(ctx context.Context, engine *ranking.Engine, req ranking.Requirements, workers int) error {
	resumes := c.Resumes()
	for i := range resumes {
		// positional ids keep duplicates and empty ids apart while ranking
		resumes[i].ID = strconv.Itoa(i)
	}

	results, err := engine.RankBatchParallel(ctx, resumes, req, workers)
	if err != nil {
		return fmt.Errorf("ranking candidates: %w", err)
	}

	ranked := make([]*Candidate, 0, len(results))
	for _, r := range results {
		idx, err := strconv.Atoi(r.ID)
		if err != nil {
			return fmt.Errorf("unexpected ranking id %q: %w", r.ID, err)
		}

		candidate := c.Items[idx]
		result := r.Result
		candidate.Result = &result
		ranked = append(ranked, candidate)
	}

	c.Items = ranked
	return nil
}

package filtering

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-ranker/internal/candidates"
)

// Default returns the standard pipeline. labels are the classifications the
// classification step accepts.
func Default(labels []string) []Filter {
	return []Filter{
		NewMinimumScore(),
		NewClassification(labels),
		NewExcludeFile(),
		NewTop(),
	}
}

// toggle carries the enabled state shared by all steps.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

type minimumScoreFilter struct {
	toggle
	minimum float64
}

// NewMinimumScore creates a filter that removes candidates scoring below the configured minimum.
func NewMinimumScore() Filter {
	return &minimumScoreFilter{}
}

func (f *minimumScoreFilter) Name() string { return "minimum_score" }

func (f *minimumScoreFilter) Validate(cfg *Config) error {
	f.minimum = 0
	if cfg == nil {
		return nil
	}
	if math.IsNaN(cfg.MinimumScore) || cfg.MinimumScore < 0 || cfg.MinimumScore > 100 {
		return fmt.Errorf("minimum score must be within [0, 100], got %v", cfg.MinimumScore)
	}
	f.minimum = cfg.MinimumScore
	return nil
}

func (f *minimumScoreFilter) Apply(_ context.Context, deps Deps, c *candidates.Candidates) (*candidates.Candidates, Step, error) {
	initial := c.Len()
	if f.minimum == 0 {
		return c, Step{Initial: initial, Dropped: 0, Left: c.Len()}, nil
	}

	excluded := c.Keep(func(candidate *candidates.Candidate) bool {
		return candidate.Result != nil && candidate.Result.FinalScore >= f.minimum
	})
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding candidates below the minimum score",
			zap.Float64("minimum_score", f.minimum),
			zap.Strings("excluded_candidates", excluded),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(excluded), Left: c.Len()}, nil
}

func (f *minimumScoreFilter) Status() Status {
	details := map[string]string{}
	if f.minimum > 0 {
		details["minimum_score"] = strconv.FormatFloat(f.minimum, 'f', 2, 64)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type classificationFilter struct {
	toggle
	known []string
	keep  []string
}

// NewClassification creates a filter that keeps only candidates with one of the configured labels.
func NewClassification(labels []string) Filter {
	return &classificationFilter{known: slices.Clone(labels)}
}

func (f *classificationFilter) Name() string { return "classification" }

func (f *classificationFilter) Validate(cfg *Config) error {
	f.keep = nil
	if cfg == nil {
		return nil
	}
	for _, label := range cfg.Classifications {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if !slices.Contains(f.known, label) {
			return fmt.Errorf("unknown classification %q, expected one of: %s", label, strings.Join(f.known, ", "))
		}
		f.keep = append(f.keep, label)
	}
	return nil
}

func (f *classificationFilter) Apply(_ context.Context, deps Deps, c *candidates.Candidates) (*candidates.Candidates, Step, error) {
	initial := c.Len()
	if len(f.keep) == 0 {
		return c, Step{Initial: initial, Dropped: 0, Left: c.Len()}, nil
	}

	excluded := c.Keep(func(candidate *candidates.Candidate) bool {
		return slices.Contains(f.keep, candidate.GetStringField(candidates.CandidateClassificationField))
	})
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding candidates by classification",
			zap.Strings("classifications", f.keep),
			zap.Strings("excluded_candidates", excluded),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(excluded), Left: c.Len()}, nil
}

func (f *classificationFilter) Status() Status {
	details := map[string]string{}
	if len(f.keep) > 0 {
		details["classifications"] = strings.Join(f.keep, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type excludeFileFilter struct {
	toggle
	path string
}

// NewExcludeFile creates a filter that removes candidates contained in an exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, c *candidates.Candidates) (*candidates.Candidates, Step, error) {
	initial := c.Len()
	if f.path == "" {
		return c, Step{Initial: initial, Dropped: 0, Left: c.Len()}, nil
	}

	excluded, err := candidates.GetExcludedFromFile(f.path)
	if err != nil {
		return c, Step{}, fmt.Errorf("getting excluded candidates from file: %w", err)
	}

	removed := c.Exclude(candidates.CandidateIDField, excluded.IDs())
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding candidates based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_candidates", removed),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(removed), Left: c.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type topFilter struct {
	toggle
	n int
}

// NewTop creates a filter that keeps only the n best candidates. Candidates must be ranked first.
func NewTop() Filter {
	return &topFilter{}
}

func (f *topFilter) Name() string { return "top" }

func (f *topFilter) Validate(cfg *Config) error {
	f.n = 0
	if cfg == nil {
		return nil
	}
	if cfg.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", cfg.Top)
	}
	f.n = cfg.Top
	return nil
}

func (f *topFilter) Apply(_ context.Context, deps Deps, c *candidates.Candidates) (*candidates.Candidates, Step, error) {
	initial := c.Len()
	if f.n == 0 {
		return c, Step{Initial: initial, Dropped: 0, Left: c.Len()}, nil
	}

	excluded := c.Top(f.n)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("keeping the best candidates only",
			zap.Int("top", f.n),
			zap.Strings("excluded_candidates", excluded),
		)
	}

	return c, Step{Initial: initial, Dropped: len(excluded), Left: c.Len()}, nil
}

func (f *topFilter) Status() Status {
	details := map[string]string{}
	if f.n > 0 {
		details["top"] = strconv.Itoa(f.n)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

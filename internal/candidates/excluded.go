package candidates

import (
	"encoding/json"
	"os"
	"time"
)

type ExcludedCandidates struct {
	Items []*ExcludedCandidate
}

type ExcludedCandidate struct {
	ID             string
	Score          float64
	Classification string
	ExcludedAt     time.Time
}

func (c *Candidates) ToExcluded() *ExcludedCandidates {
	excluded := &ExcludedCandidates{}
	for _, candidate := range c.Items {
		excluded.Items = append(excluded.Items, &ExcludedCandidate{
			ID:             candidate.ID,
			Score:          candidate.Score(),
			Classification: candidate.GetStringField(CandidateClassificationField),
			ExcludedAt:     time.Now().UTC(),
		})
	}
	return excluded
}

// GetExcludedFromFile reads an exclude file. A missing or empty file is an empty list.
func GetExcludedFromFile(path string) (*ExcludedCandidates, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return &ExcludedCandidates{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedCandidates{}, nil
	}

	var excluded ExcludedCandidates
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedCandidates) Append(s *ExcludedCandidates) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedCandidates) IDs() []string {
	ids := make([]string, 0, len(e.Items))
	for _, candidate := range e.Items {
		ids = append(ids, candidate.ID)
	}
	return ids
}

func (e *ExcludedCandidates) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

package candidates

import (
	"encoding/json"
	"os"
	"strconv"
)

const unrankedKey = "Not ranked"

// ReportByClassification groups the candidates by their classification label.
func (c *Candidates) ReportByClassification() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, candidate := range c.Items {
		key := candidate.GetStringField(CandidateClassificationField)
		if key == "" {
			key = unrankedKey
		}

		entry := map[string]string{
			"candidate": candidate.ID,
		}
		if candidate.Result != nil {
			entry["final_score"] = strconv.FormatFloat(candidate.Result.FinalScore, 'f', 2, 64)
			entry["skills_match"] = strconv.FormatFloat(candidate.Result.FactorScores.SkillsMatch, 'f', 2, 64)
			entry["experience_relevance"] = strconv.FormatFloat(candidate.Result.FactorScores.ExperienceRelevance, 'f', 2, 64)
		}

		report[key] = append(report[key], entry)
	}
	return report
}

// DumpToTmpFile writes the ranked results to a new temporary JSON file and returns its name.
func (c *Candidates) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "rankings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.Ranked()); err != nil {
		return "", err
	}
	return file.Name(), nil
}

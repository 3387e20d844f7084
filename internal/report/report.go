// Package report renders ranking results as plain text for terminals.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spigell/resume-ranker/internal/ranking"
)

const (
	barLength = 20
	wide      = 70
	narrow    = 60
)

// Status returns the short status tag of a classification label.
func Status(classification string) string {
	switch {
	case strings.Contains(classification, "Perfect"):
		return "PERFECT"
	case strings.Contains(classification, "Outstanding"):
		return "OUTSTANDING"
	case strings.Contains(classification, "Up to the mark"):
		return "ADEQUATE"
	default:
		return "GOOD"
	}
}

// DisplayName turns a candidate identifier such as "sarah_johnson.txt" into "Sarah Johnson".
func DisplayName(id string) string {
	name := strings.TrimSuffix(id, filepath.Ext(id))
	if name == "" {
		name = id
	}
	name = strings.ReplaceAll(name, "_", " ")
	return cases.Title(language.Und).String(name)
}

// Bar draws score in [0, 100] as a bar of barLength cells.
func Bar(score float64) string {
	filled := min(max(int(barLength*score/100), 0), barLength)
	return strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled)
}

// WriteResult writes the detailed report of a single ranking result. title is
// the job position and may be empty.
func WriteResult(w io.Writer, title string, result ranking.Result) error {
	p := &printer{w: w}

	p.line(strings.Repeat("=", narrow))
	p.line("RESUME RANKING RESULTS")
	p.line(strings.Repeat("=", narrow))
	if title != "" {
		p.printf("Job Position: %s\n", title)
	}
	p.line("")

	p.printf("FINAL SCORE: %s/100\n", formatScore(result.FinalScore))
	p.printf("CLASSIFICATION: %s\n", result.Classification)
	p.printf("Status: %s\n", Status(result.Classification))
	p.line("")

	p.line("DETAILED FACTOR ANALYSIS")
	p.line(strings.Repeat("-", 40))
	for _, f := range ranking.Factors() {
		score := result.FactorScores.Get(f)
		weight := result.WeightsUsed.Get(f) * 100
		p.printf("%-29s %6.1f/100 [%s] (%2.0f%%)\n", f.Title(), score, Bar(score), weight)
	}
	p.line("")

	p.line("SCORING BREAKDOWN")
	p.line(strings.Repeat("-", 25))
	for _, f := range ranking.Factors() {
		score := result.FactorScores.Get(f)
		weight := result.WeightsUsed.Get(f)
		p.printf("%-29s %6.1f x %4.2f = %6.2f\n", f.Title(), score, weight, score*weight)
	}
	p.line(strings.Repeat("-", 50))
	p.printf("%-29s %15s = %6.2f\n", "TOTAL WEIGHTED SCORE", "", result.FinalScore)

	return p.err
}

// WriteRanking writes a ranking table followed by the factor breakdown of the
// top candidate. results must already be ordered.
func WriteRanking(w io.Writer, results []ranking.RankedResult) error {
	p := &printer{w: w}

	p.line("RANKING RESULTS (Highest to Lowest)")
	p.line(strings.Repeat("-", wide))
	p.printf("%-5s %-20s %-8s %-20s\n", "RANK", "CANDIDATE", "SCORE", "CLASSIFICATION")
	p.line(strings.Repeat("-", wide))
	for i, r := range results {
		p.printf("%-5d %-20s %-8.1f %s\n", i+1, DisplayName(r.ID), r.FinalScore, r.Classification)
	}
	p.line(strings.Repeat("-", wide))

	if len(results) == 0 {
		p.line("No candidates to rank.")
		return p.err
	}

	top := results[0]
	p.printf("\nTOP CANDIDATE DETAILS: %s\n", DisplayName(top.ID))
	p.line(strings.Repeat("-", 50))
	for _, f := range ranking.Factors() {
		p.printf("%-29s %6.1f/100\n", f.Title(), top.FactorScores.Get(f))
	}

	return p.err
}

// formatScore prints a score with at most two decimals and no trailing zeros.
func formatScore(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// printer remembers the first write error so callers check it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}

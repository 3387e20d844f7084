package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-ranker/internal/logger"
	"github.com/spigell/resume-ranker/internal/ranking"
	"github.com/spigell/resume-ranker/internal/report"
	"github.com/spigell/resume-ranker/internal/samples"
)

const (
	PromptCustomDemo = "Interactive demo (enter your own data)"
	PromptSampleDemo = "Sample demo (pre-loaded resume)"
	PromptMultiDemo  = "Multiple candidates demo"

	demoModeCustom = "custom"
	demoModeSample = "sample"
	demoModeMulti  = "multi"
)

var errNoResume = errors.New("no resume text provided")

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the ranking with your own data or the built-in samples",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return demo(cmd)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().String("mode", "", "skip the menu: custom, sample or multi")
}

func demo(cmd *cobra.Command) error {
	zlog, _, err := setup()
	if err != nil {
		return err
	}
	defer zlog.Sync()

	mode, _ := cmd.Flags().GetString("mode")
	if mode == "" {
		prompt := promptui.Select{
			Label: "Choose demo mode",
			Items: []string{PromptCustomDemo, PromptSampleDemo, PromptMultiDemo},
		}
		_, selected, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}
		mode = demoModes[selected]
	}

	engine := ranking.NewEngine()
	out := cmd.OutOrStdout()

	switch mode {
	case demoModeCustom:
		return customDemo(cmd.InOrStdin(), out, zlog, engine)
	case demoModeSample:
		job := samples.DataScientist()
		fmt.Fprintln(out, "Running analysis with sample data...")
		result := engine.Rank(samples.Resume, job.Requirements)
		zlog.Info("sample resume ranked", logger.ResultFields("sample", result)...)
		return report.WriteResult(out, job.Title, result)
	case demoModeMulti:
		job := samples.DataScientist()
		resumes := samples.Candidates()
		fmt.Fprintf(out, "Ranking %d candidates for %s position\n\n", len(resumes), job.Title)
		results, err := engine.RankBatchParallel(cmd.Context(), resumes, job.Requirements, 0)
		if err != nil {
			return err
		}
		return report.WriteRanking(out, results)
	default:
		return fmt.Errorf("unknown demo mode %q, expected %s, %s or %s", mode, demoModeCustom, demoModeSample, demoModeMulti)
	}
}

var demoModes = map[string]string{
	PromptCustomDemo: demoModeCustom,
	PromptSampleDemo: demoModeSample,
	PromptMultiDemo:  demoModeMulti,
}

func customDemo(in io.Reader, out io.Writer, zlog *zap.Logger, engine *ranking.Engine) error {
	title, err := (&promptui.Prompt{Label: "Job title"}).Run()
	if err != nil {
		return err
	}

	skills, err := (&promptui.Prompt{Label: "Required skills (comma separated, e.g. Python, SQL)"}).Run()
	if err != nil {
		return err
	}

	keywords, err := (&promptui.Prompt{Label: "Job keywords (comma separated, e.g. analytics, modeling)"}).Run()
	if err != nil {
		return err
	}

	req := ranking.Requirements{
		Skills:   splitList(skills),
		Keywords: splitList(keywords),
	}

	fmt.Fprintln(out, "Enter the candidate's resume text (press Enter twice when done):")
	resume, err := readResume(in)
	if err != nil {
		return err
	}

	result := engine.Rank(resume, req)
	zlog.Info("resume ranked", logger.ResultFields("interactive", result)...)

	return report.WriteResult(out, strings.TrimSpace(title), result)
}

// splitList splits a comma separated answer into trimmed non-empty items.
func splitList(s string) []string {
	return cleanList(strings.Split(s, ","))
}

// readResume reads lines until two consecutive blank lines or the end of input.
func readResume(in io.Reader) (string, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" && len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading resume: %w", err)
	}

	text := strings.Join(lines, "\n")
	if strings.TrimSpace(text) == "" {
		return "", errNoResume
	}
	return text, nil
}

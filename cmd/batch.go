package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-ranker/internal/candidates"
	"github.com/spigell/resume-ranker/internal/filtering"
	"github.com/spigell/resume-ranker/internal/logger"
	"github.com/spigell/resume-ranker/internal/ranking"
	"github.com/spigell/resume-ranker/internal/report"
)

const (
	PromptReportByClassification = "Report by classification"
	PromptCandidatesToFile       = "Dump rankings to file"
	PromptAppendToExcludeFile    = "Append all candidates to exclude file"
	PromptExit                   = "Exit"
)

var errExit = errors.New("exit requested")

var batchCmd = &cobra.Command{
	Use:   "batch [resume files...]",
	Short: "Rank several resumes against the same job requirements",
	Example: `  resume-ranker batch resumes/*.txt --skills Python,SQL --top 3
  resume-ranker batch --input batch.json --min-score 60 --output json`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindFlags(cmd, batchFlags)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return batch(cmd, args)
	},
}

var batchFlags = map[string]string{
	"skills":         "requirements.skills",
	"keywords":       "requirements.keywords",
	"min-score":      "filters.minimum-score",
	"classification": "filters.classifications",
	"top":            "filters.top",
	"exclude-file":   "filters.exclude-file",
	"workers":        "batch.workers",
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("input", "i", "", `JSON batch document: [{"filename": ..., "text": ...}], "-" reads stdin`)
	batchCmd.Flags().Float64("min-score", 0, "drop candidates with a lower final score")
	batchCmd.Flags().StringSlice("classification", nil, "keep only candidates with these classifications")
	batchCmd.Flags().Int("top", 0, "keep only the n best candidates")
	batchCmd.Flags().StringP("exclude-file", "e", "", "special file with candidates to exclude. Default is unset.")
	batchCmd.Flags().IntP("workers", "w", 0, "goroutines used for ranking, 0 means one per CPU")
	batchCmd.Flags().StringP("output", "o", outputText, "output format: text or json")
	batchCmd.Flags().BoolP("yes", "y", false, "do not show the interactive action menu")
	batchCmd.Flags().StringSlice("skip-filter", nil, "filter steps to skip: minimum_score, classification, exclude_file, top")
	addRequirementFlags(batchCmd.Flags())
}

func batch(cmd *cobra.Command, files []string) error {
	ctx := cmd.Context()

	zlog, config, err := setup()
	if err != nil {
		return err
	}
	defer zlog.Sync()

	output, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	pool, err := loadCandidates(files, input, cmd.InOrStdin())
	if err != nil {
		return err
	}

	zlog.Info("starting the ranking",
		zap.Int("candidates", pool.Len()),
		zap.Int("workers", config.Batch.Workers),
		zap.String("version", version),
	)

	engine := ranking.NewEngine()
	if err := pool.Rank(ctx, engine, *config.Requirements, config.Batch.Workers); err != nil {
		return err
	}

	for _, candidate := range pool.Items {
		logger.WithCandidate(zlog, candidate.ID).Debug("candidate ranked", logger.ResultFields("", *candidate.Result)...)
	}

	skip, _ := cmd.Flags().GetStringSlice("skip-filter")
	steps, err := filterSteps(engine.Labels(), skip)
	if err != nil {
		return err
	}

	pool, err = filtering.Run(ctx, config.Filters, filtering.Deps{Logger: zlog}, steps, pool)
	if err != nil {
		return fmt.Errorf("filtering failed: %w", err)
	}

	logFilterStatus(zlog, steps)

	out := cmd.OutOrStdout()
	if output == outputJSON {
		return writeJSON(out, pool.Ranked())
	}
	if err := report.WriteRanking(out, pool.Ranked()); err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes || pool.Len() == 0 {
		return nil
	}

	for {
		zlog.Info("current list of candidates", zap.Int("count", pool.Len()))

		prompt := promptui.Select{
			Label: "What next?",
			Items: actions(config.Filters.ExcludeFile, pool),
		}

		_, action, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}

		if err := handleAction(action, zlog, config, pool); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

// loadCandidates reads the plain text files and the JSON batch document, in that order.
// An input of "-" reads the batch document from stdin.
func loadCandidates(files []string, input string, stdin io.Reader) (*candidates.Candidates, error) {
	pool, err := candidates.FromFiles(files)
	if err != nil {
		return nil, err
	}

	if input = strings.TrimSpace(input); input != "" {
		var docs *candidates.Candidates
		if input == "-" {
			docs, err = candidates.FromJSONReader(stdin)
		} else {
			docs, err = candidates.FromJSONFile(input)
		}
		if err != nil {
			return nil, err
		}
		pool.Items = append(pool.Items, docs.Items...)
	}

	if pool.Len() == 0 {
		return nil, errors.New("no resumes given, pass resume files or --input")
	}

	return pool, nil
}

// filterSteps builds the default pipeline with the skipped steps disabled.
func filterSteps(labels, skip []string) ([]filtering.Filter, error) {
	steps := filtering.Default(labels)

	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, step.Name())
	}

	for _, name := range cleanList(skip) {
		if !slices.Contains(names, name) {
			return nil, fmt.Errorf("unknown filter %q, expected one of %s", name, strings.Join(names, ", "))
		}
		filtering.DisableByName(steps, name, "skipped with --skip-filter")
	}

	return steps, nil
}

func logFilterStatus(zlog *zap.Logger, steps []filtering.Filter) {
	for _, status := range filtering.Describe(steps) {
		zlog.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}
}

func actions(excludeFile string, pool *candidates.Candidates) []string {
	items := []string{PromptReportByClassification, PromptCandidatesToFile}
	if excludeFile != "" && pool.Len() != 0 {
		items = append(items, PromptAppendToExcludeFile)
	}
	return append(items, PromptExit)
}

func handleAction(action string, zlog *zap.Logger, config *Config, pool *candidates.Candidates) error {
	switch action {
	case PromptExit:
		zlog.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByClassification:
		pretty, _ := json.MarshalIndent(pool.ReportByClassification(), "", "  ")
		zlog.Info(string(pretty), zap.Int("candidates count", pool.Len()))
		return nil
	case PromptCandidatesToFile:
		filename, err := pool.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		zlog.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(config.Filters.ExcludeFile, zlog, pool)
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// appendToExcludeFile records every candidate in the exclude file and empties the pool.
func appendToExcludeFile(path string, zlog *zap.Logger, pool *candidates.Candidates) error {
	excluded, err := candidates.GetExcludedFromFile(path)
	if err != nil {
		return err
	}

	excluded.Append(pool.ToExcluded())

	if err := excluded.ToFile(path); err != nil {
		return err
	}

	zlog.Info("appended to exclude file", zap.String("filename", path))

	pool.Exclude(candidates.CandidateIDField, excluded.IDs())
	return nil
}

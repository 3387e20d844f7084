package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-ranker/internal/candidates"
	"github.com/spigell/resume-ranker/internal/logger"
	"github.com/spigell/resume-ranker/internal/ranking"
	"github.com/spigell/resume-ranker/internal/report"
	"github.com/spigell/resume-ranker/internal/utils"
)

const (
	outputText = "text"
	outputJSON = "json"

	previewLength = 60
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a single resume against the job requirements",
	Example: `  resume-ranker rank --file resume.txt --skills Python,SQL --keywords analytics
  cat resume.txt | resume-ranker rank --file - --output json`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindFlags(cmd, requirementFlags)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("file", "f", "", `plain text resume file, "-" reads stdin`)
	rankCmd.Flags().StringP("text", "t", "", "inline resume text")
	rankCmd.Flags().String("title", "", "job position shown in the report")
	rankCmd.Flags().StringP("output", "o", outputText, "output format: text or json")
	addRequirementFlags(rankCmd.Flags())
}

func rank(cmd *cobra.Command) error {
	zlog, config, err := setup()
	if err != nil {
		return err
	}
	defer zlog.Sync()

	output, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	text, _ := cmd.Flags().GetString("text")
	title, _ := cmd.Flags().GetString("title")

	resume, err := candidates.Load(candidates.Source{
		Name:  "resume",
		Value: text,
		File:  file,
		Stdin: cmd.InOrStdin(),
	})
	if err != nil {
		return fmt.Errorf("%w (use --file or --text)", err)
	}

	if len(config.Requirements.Skills) == 0 {
		zlog.Warn("no required skills configured, the skills score will be 0",
			zap.String("hint", "set --skills or requirements.skills in the config"),
		)
	}

	zlog.Debug("ranking resume", zap.String("preview", utils.Preview(resume, previewLength)))

	result := ranking.NewEngine().Rank(resume, *config.Requirements)

	zlog.Info("resume ranked", logger.ResultFields(resumeName(file), result)...)

	return writeResult(cmd.OutOrStdout(), output, title, result)
}

func resumeName(file string) string {
	if file == "" {
		return "inline"
	}
	return file
}

func outputFormat(cmd *cobra.Command) (string, error) {
	output, _ := cmd.Flags().GetString("output")
	switch output {
	case outputText, outputJSON:
		return output, nil
	default:
		return "", fmt.Errorf("unsupported output format %q, expected %s or %s", output, outputText, outputJSON)
	}
}

func writeResult(w io.Writer, output, title string, result ranking.Result) error {
	if output == outputJSON {
		return writeJSON(w, result)
	}
	return report.WriteResult(w, title, result)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

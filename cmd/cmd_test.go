package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-ranker/internal/candidates"
	"github.com/spigell/resume-ranker/internal/filtering"
	"github.com/spigell/resume-ranker/internal/ranking"
	"github.com/spigell/resume-ranker/internal/samples"
)

const testConfig = `
requirements:
  skills: [Python, " SQL ", ""]
  keywords: analytics, modeling
filters:
  minimum-score: 60
  classifications: [Outstanding]
  top: 3
batch:
  workers: 4
server:
  listen: ":9000"
  read-timeout: 5s
`

func TestDecodeConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume-ranker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	v := viper.New()
	setDefaults(v)
	require.NoError(t, readConfig(v, path))

	config, err := decodeConfig(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "SQL"}, config.Requirements.Skills)
	assert.Equal(t, []string{"analytics", "modeling"}, config.Requirements.Keywords)
	assert.Equal(t, 60.0, config.Filters.MinimumScore)
	assert.Equal(t, []string{ranking.LabelOutstanding}, config.Filters.Classifications)
	assert.Equal(t, 3, config.Filters.Top)
	assert.Equal(t, 4, config.Batch.Workers)
	assert.Equal(t, ":9000", config.Server.Listen)
	assert.Equal(t, 5*time.Second, config.Server.ReadTimeout)
	assert.EqualValues(t, 1<<20, config.Server.MaxBodyBytes)
}

func TestDecodeConfigDefaults(t *testing.T) {
	t.Parallel()

	v := viper.New()
	setDefaults(v)

	config, err := decodeConfig(v)
	require.NoError(t, err)

	require.NotNil(t, config.Requirements.Skills)
	assert.Empty(t, config.Requirements.Skills)
	assert.Empty(t, config.Requirements.Keywords)
	assert.Zero(t, config.Filters.Top)
	assert.Equal(t, "127.0.0.1:8000", config.Server.Listen)
	assert.Equal(t, 30*time.Second, config.Server.ReadTimeout)
}

func TestDecodeConfigFromEnv(t *testing.T) {
	t.Setenv("RESUME_RANKER_REQUIREMENTS_SKILLS", "Go, Rust")
	t.Setenv("RESUME_RANKER_FILTERS_MINIMUM_SCORE", "75.5")
	t.Setenv("RESUME_RANKER_SERVER_LISTEN", "0.0.0.0:8080")

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	config, err := decodeConfig(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Rust"}, config.Requirements.Skills)
	assert.Equal(t, 75.5, config.Filters.MinimumScore)
	assert.Equal(t, "0.0.0.0:8080", config.Server.Listen)
}

func TestReadConfig(t *testing.T) {
	t.Parallel()

	require.Error(t, readConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml")))

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("requirements: [\n"), 0o600))
	require.Error(t, readConfig(viper.New(), broken))
}

func TestReadResume(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in      string
		want    string
		wantErr error
	}{
		"stops at two blank lines": {
			in:   "John Doe\n\nGo developer\n\n\nignored\n",
			want: "John Doe\n\nGo developer\n",
		},
		"end of input": {
			in:   "John Doe\nGo developer",
			want: "John Doe\nGo developer",
		},
		"leading blank line is kept": {
			in:   "\nJohn\n\n\n",
			want: "\nJohn\n",
		},
		"whitespace only": {
			in:      "   \n\t\n\n",
			wantErr: errNoResume,
		},
		"empty": {
			in:      "",
			wantErr: errNoResume,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := readResume(strings.NewReader(tt.in))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Python", "Machine Learning", "SQL"}, splitList(" Python, Machine Learning ,, SQL,"))
	assert.Empty(t, splitList(""))
	assert.NotNil(t, splitList(""))
}

func TestOutputFormat(t *testing.T) {
	t.Parallel()

	newCmd := func(output string) *cobra.Command {
		c := &cobra.Command{}
		c.Flags().String("output", output, "")
		return c
	}

	got, err := outputFormat(newCmd(outputJSON))
	require.NoError(t, err)
	assert.Equal(t, outputJSON, got)

	_, err = outputFormat(newCmd("yaml"))
	require.Error(t, err)
}

func TestLoadCandidates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "alice.txt")
	require.NoError(t, os.WriteFile(file, []byte("Python developer"), 0o600))
	doc := filepath.Join(dir, "batch.json")
	require.NoError(t, os.WriteFile(doc, []byte(`[{"filename": "bob.txt", "text": "Go"}]`), 0o600))

	pool, err := loadCandidates([]string{file}, doc, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice.txt", "bob.txt"}, pool.IDs())

	pool, err = loadCandidates(nil, "-", strings.NewReader(`[{"filename": "carol.txt", "text": "SQL"}, {"text": "Rust"}]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"carol.txt", ranking.UnknownID}, pool.IDs())

	_, err = loadCandidates(nil, " ", nil)
	require.Error(t, err)

	_, err = loadCandidates(nil, "-", strings.NewReader(`{"filename": "x"}`))
	require.Error(t, err)
}

func TestFilterSteps(t *testing.T) {
	t.Parallel()

	labels := ranking.NewEngine().Labels()

	steps, err := filterSteps(labels, []string{"top", " exclude_file ", ""})
	require.NoError(t, err)

	enabled := make(map[string]bool)
	for _, status := range filtering.Describe(steps) {
		enabled[status.Name] = status.Enabled
	}
	assert.Equal(t, map[string]bool{
		"minimum_score":  true,
		"classification": true,
		"exclude_file":   false,
		"top":            false,
	}, enabled)

	_, err = filterSteps(labels, []string{"employers"})
	require.ErrorContains(t, err, `unknown filter "employers"`)
}

func TestSkippedFilterIsNotApplied(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	zlog := zap.New(core)

	steps, err := filterSteps(ranking.NewEngine().Labels(), []string{"top"})
	require.NoError(t, err)

	pool, err := filtering.Run(context.Background(), &filtering.Config{Top: 1}, filtering.Deps{Logger: zlog}, steps, rankedPool(t))
	require.NoError(t, err)
	assert.Equal(t, 4, pool.Len())

	logFilterStatus(zlog, steps)
	statuses := logs.FilterMessage("filter status").All()
	require.Len(t, statuses, 4)
	top := statuses[3].ContextMap()
	assert.Equal(t, "top", top["name"])
	assert.Equal(t, false, top["enabled"])
	assert.Equal(t, "skipped with --skip-filter", top["reason"])
}

func TestActions(t *testing.T) {
	t.Parallel()

	pool := candidates.New(&candidates.Candidate{ID: "a.txt"})

	assert.Equal(t, []string{PromptReportByClassification, PromptCandidatesToFile, PromptExit}, actions("", pool))
	assert.Equal(t,
		[]string{PromptReportByClassification, PromptCandidatesToFile, PromptAppendToExcludeFile, PromptExit},
		actions("seen.json", pool),
	)
	assert.NotContains(t, actions("seen.json", candidates.New()), PromptAppendToExcludeFile)
}

func TestHandleAction(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	zlog := zap.New(core)

	excludeFile := filepath.Join(t.TempDir(), "seen.json")
	config := &Config{Filters: &filtering.Config{ExcludeFile: excludeFile}}

	pool := rankedPool(t)

	require.ErrorIs(t, handleAction(PromptExit, zlog, config, pool), errExit)
	require.Error(t, handleAction("bogus", zlog, config, pool))

	require.NoError(t, handleAction(PromptReportByClassification, zlog, config, pool))
	assert.Equal(t, 1, logs.FilterFieldKey("candidates count").Len())

	require.NoError(t, handleAction(PromptAppendToExcludeFile, zlog, config, pool))
	assert.Equal(t, 0, pool.Len())

	excluded, err := candidates.GetExcludedFromFile(excludeFile)
	require.NoError(t, err)
	assert.Len(t, excluded.Items, 4)
}

func rankedPool(t *testing.T) *candidates.Candidates {
	t.Helper()

	items := make([]*candidates.Candidate, 0)
	for _, r := range samples.Candidates() {
		items = append(items, &candidates.Candidate{ID: r.ID, Text: r.Text})
	}
	pool := candidates.New(items...)
	require.NoError(t, pool.Rank(context.Background(), ranking.NewEngine(), samples.DataScientist().Requirements, 0))
	return pool
}

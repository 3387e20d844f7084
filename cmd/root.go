package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-ranker/internal/filtering"
	"github.com/spigell/resume-ranker/internal/logger"
	"github.com/spigell/resume-ranker/internal/ranking"
	"github.com/spigell/resume-ranker/internal/server"
)

const (
	app       = "resume-ranker"
	envPrefix = "RESUME_RANKER"
)

type Config struct {
	Requirements *ranking.Requirements `mapstructure:"requirements"`
	Filters      *filtering.Config     `mapstructure:"filters"`
	Batch        *BatchConfig          `mapstructure:"batch"`
	Server       *server.Config        `mapstructure:"server"`
}

type BatchConfig struct {
	// Workers bounds the goroutines ranking a batch. Zero means one per CPU.
	Workers int `mapstructure:"workers"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "resume-ranker scores plain text resumes against job skills and keywords",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command. Cancelling ctx stops long running commands.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-ranker.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("requirements.skills", []string{})
	v.SetDefault("requirements.keywords", []string{})
	v.SetDefault("filters.minimum-score", 0)
	v.SetDefault("filters.classifications", []string{})
	v.SetDefault("filters.exclude-file", "")
	v.SetDefault("filters.top", 0)
	v.SetDefault("batch.workers", 0)
	v.SetDefault("server.listen", "127.0.0.1:8000")
	v.SetDefault("server.max-body-bytes", 1<<20)
	v.SetDefault("server.read-timeout", "30s")
	v.SetDefault("server.workers", 0)
}

func initConfig() {
	// A missing .env is fine, the variables may come from the environment itself.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env file: %v", err)
	}

	bindEnv(viper.GetViper())

	if err := readConfig(viper.GetViper(), cfgFile); err != nil {
		log.Fatal(err)
	}
}

// bindEnv makes every config key settable as RESUME_RANKER_<KEY>, e.g.
// RESUME_RANKER_REQUIREMENTS_SKILLS="Python,SQL".
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// readConfig reads the explicit config file, or resume-ranker.yaml from the
// current directory when it exists.
func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(app)
		v.SetConfigType("yaml")
	}

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if file == "" && errors.As(err, &notFound) {
		return nil
	}

	// We can't proceed if the config file parsed with error.
	return fmt.Errorf("reading config: %w", err)
}

func getConfig() (*Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if config == nil {
		config = &Config{}
	}
	if config.Requirements == nil {
		config.Requirements = &ranking.Requirements{}
	}
	if config.Requirements.Skills == nil {
		config.Requirements.Skills = []string{}
	}
	if config.Filters == nil {
		config.Filters = &filtering.Config{}
	}
	if config.Batch == nil {
		config.Batch = &BatchConfig{}
	}
	if config.Server == nil {
		config.Server = &server.Config{}
	}

	config.Requirements.Skills = cleanList(config.Requirements.Skills)
	config.Requirements.Keywords = cleanList(config.Requirements.Keywords)

	return config, nil
}

// cleanList trims the entries of a comma separated setting and drops empty ones.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// bindFlags binds the flags of the running command to config keys. It runs in
// PreRunE so that commands sharing a key do not override each other's binding.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for flagName, key := range keys {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			return fmt.Errorf("unknown flag %q", flagName)
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %q: %w", flagName, err)
		}
	}
	return nil
}

func addRequirementFlags(flags *pflag.FlagSet) {
	flags.StringSlice("skills", nil, "required skills, comma separated (default from requirements.skills)")
	flags.StringSlice("keywords", nil, "job keywords, comma separated (default from requirements.keywords)")
}

var requirementFlags = map[string]string{
	"skills":   "requirements.skills",
	"keywords": "requirements.keywords",
}

// setup builds the logger and reads the config, the common start of every command.
func setup() (*zap.Logger, *Config, error) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, nil, fmt.Errorf("creating a logger: %w", err)
	}

	config, err := getConfig()
	if err != nil {
		return nil, nil, err
	}

	zlog.Debug("config loaded",
		zap.Strings("skills", config.Requirements.Skills),
		zap.Strings("keywords", config.Requirements.Keywords),
		zap.String("config_file", viper.ConfigFileUsed()),
	)

	return zlog, config, nil
}

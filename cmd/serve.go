package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-ranker/internal/ranking"
	"github.com/spigell/resume-ranker/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ranking engine over a JSON HTTP API",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindFlags(cmd, map[string]string{"listen": "server.listen"})
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default from server.listen)")
}

func serve(cmd *cobra.Command) error {
	zlog, config, err := setup()
	if err != nil {
		return err
	}
	defer zlog.Sync()

	if viper.GetBool("debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if config.Server.Workers == 0 {
		config.Server.Workers = config.Batch.Workers
	}

	zlog.Info("starting the resume-ranker server",
		zap.String("version", version),
		zap.String("listen", config.Server.Listen),
	)

	return server.New(*config.Server, ranking.NewEngine(), zlog).Run(cmd.Context())
}

package cmd

import (
	"fmt"
	"os"

	"ghost-storage-gcs/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	envDir     string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ghost-gcs",
	Short: "Google Cloud Storage adapter for Ghost",
	Long: `ghost-gcs stores Ghost content assets in a Google Cloud Storage bucket.
It runs as an HTTP asset host or performs single storage operations from the shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console output with ISO8601 timestamps reads better from a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "host JSON config file (defaults to $GHOST_CONFIG)")
	RootCmd.PersistentFlags().StringVar(&envDir, "env-dir", ".", "directory holding the .env file")
}

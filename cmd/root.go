// Package cmd implements the alphachat command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alphaui/alphachat/config"
	"github.com/alphaui/alphachat/logger"
)

// Version is set at build time.
var Version = "dev"

var configDirFlag string

var rootCmd = &cobra.Command{
	Use:   "alphachat",
	Short: "A terminal chat panel for a remote answer service",
	Long: `alphachat shows a chat panel with quick-reply prompts and a free-text
input. Every question is posted to the answer service and its reply is
shown in the conversation.

Running alphachat without a subcommand starts the chat panel.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if configDirFlag != "" {
			config.SetConfigDir(configDirFlag)
		}
		initLogger()
	},
	RunE: runChat,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Config directory (default ~/.alphachat)")
	addChatFlags(rootCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// initLogger starts logging once the config directory is final, so that
// --config-dir also moves the log file. A broken config still gets the
// default log setup; the command reports the config error itself.
func initLogger() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	dir, _ := config.ConfigDir()
	if err := logger.Init(cfg.BuildLoggerConfig(), dir); err != nil {
		fmt.Fprintln(os.Stderr, "logger init error:", err)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w\nRun 'alphachat onboard' to recreate it", err)
	}
	return cfg, nil
}

// Package cli wires the cobra command tree for the appforge binary.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ece-platform/appforge/internal/adapters/outbound/config"
	"github.com/ece-platform/appforge/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "appforge",
		Short: "Turn codebases into deployable ECE applications",
		Long: "AppForge analyzes codebases for enhancement viability, generates applications\n" +
			"from curated templates, and audits output against ECE branding standards.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd(&configPath))
	cmd.AddCommand(newHistoryCmd(&configPath))
	cmd.AddCommand(newGenerateCmd(&configPath))
	cmd.AddCommand(newEnhanceCmd(&configPath))
	cmd.AddCommand(newValidateCmd(&configPath))
	cmd.AddCommand(newServeCmd(&configPath))
	cmd.AddCommand(newMCPCmd(&configPath))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// loadRuntime resolves config and installs the process logger.
func loadRuntime(configPath string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log := logger.Init(logger.Config{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})
	return cfg, log, nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/ece-platform/appforge/internal/adapters/inbound/mcp"
	"github.com/ece-platform/appforge/internal/adapters/outbound/config"
	"github.com/ece-platform/appforge/internal/adapters/outbound/fetcher"
	"github.com/ece-platform/appforge/internal/application"
)

func newMCPCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the AppForge MCP server (stdio)",
		Long:  "Expose viability analysis, app generation, and branding audits as MCP tools for AI coding agents.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}

			schema, err := config.NewSchemaLoader().Load(cfg.BrandingSchema)
			if err != nil {
				return err
			}

			generation, err := buildGenerationService(cfg, log)
			if err != nil {
				return err
			}
			viability := application.NewViabilityService(fetcher.New(log), log)
			compliance := application.NewComplianceService(schema, log)

			return mcp.Serve(viability, generation, compliance, version)
		},
	}
}

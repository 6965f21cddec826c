package cli

import (
	"github.com/spf13/cobra"

	"github.com/ece-platform/appforge/internal/adapters/inbound/httpapi"
	"github.com/ece-platform/appforge/internal/adapters/outbound/config"
	"github.com/ece-platform/appforge/internal/adapters/outbound/fetcher"
	"github.com/ece-platform/appforge/internal/adapters/outbound/store"
	"github.com/ece-platform/appforge/internal/application"
)

func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the AppForge HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
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

			server := httpapi.New(viability, generation, compliance, store.NewAppStore(cfg.DataDir), log)
			log.Info("http api listening", "addr", cfg.ListenAddr)
			return server.Run(cfg.ListenAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

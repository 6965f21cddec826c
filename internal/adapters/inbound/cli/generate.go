package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ece-platform/appforge/internal/adapters/outbound/config"
	"github.com/ece-platform/appforge/internal/adapters/outbound/fetcher"
	"github.com/ece-platform/appforge/internal/adapters/outbound/store"
	"github.com/ece-platform/appforge/internal/adapters/outbound/tui"
	"github.com/ece-platform/appforge/internal/application"
	"github.com/ece-platform/appforge/internal/domain"
	"github.com/ece-platform/appforge/internal/domain/genapp"
)

func newGenerateCmd(configPath *string) *cobra.Command {
	var (
		jsonOutput  bool
		orderID     string
		wallet      string
		title       string
		description string
		projectType string
		features    []string
		complexity  float64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an application from a template",
		Long:  "Select the best matching template for the project, synthesize its source bundle, and mint its trading card.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}

			svc, err := buildGenerationService(cfg, log)
			if err != nil {
				return err
			}

			result := svc.GenerateApplication(cmd.Context(), domain.GenerationRequest{
				OrderID:       orderID,
				WalletAddress: wallet,
				ProjectDetails: domain.ProjectDetails{
					Title:       title,
					Description: description,
					ProjectType: projectType,
					Features:    features,
					Complexity:  complexity,
				},
			})
			return renderGeneration(cmd, result, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().StringVar(&orderID, "order", "", "Order ID to fulfil")
	cmd.Flags().StringVar(&wallet, "wallet", "", "Wallet address of the ordering user")
	cmd.Flags().StringVar(&title, "title", "", "Application title")
	cmd.Flags().StringVar(&description, "description", "", "Application description")
	cmd.Flags().StringVar(&projectType, "type", "", "Project type, e.g. saas dashboard")
	cmd.Flags().StringSliceVar(&features, "feature", nil, "Requested feature (repeatable)")
	cmd.Flags().Float64Var(&complexity, "complexity", 1.0, "Project complexity multiplier")
	_ = cmd.MarkFlagRequired("order")
	_ = cmd.MarkFlagRequired("wallet")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func buildGenerationService(cfg *config.Config, log *slog.Logger) (*application.GenerationService, error) {
	schema, err := config.NewSchemaLoader().Load(cfg.BrandingSchema)
	if err != nil {
		return nil, err
	}
	viability := application.NewViabilityService(fetcher.New(log), log)
	return application.NewGenerationService(
		store.NewUserStore(cfg.DataDir),
		store.NewOrderStore(cfg.DataDir),
		store.NewAppStore(cfg.DataDir),
		viability,
		genapp.NewSynthesizer(schema),
		log,
	), nil
}

func renderGeneration(cmd *cobra.Command, result *domain.GenerationResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderCard(result.GeneratedApp))
	fmt.Fprintf(cmd.OutOrStdout(), "\n  Revision tokens granted: %d\n", result.RevisionTokens)
	return nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/ece-platform/appforge/internal/domain"
)

func newEnhanceCmd(configPath *string) *cobra.Command {
	var (
		jsonOutput  bool
		orderID     string
		wallet      string
		title       string
		description string
		complexity  float64
		branch      string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "enhance <url>",
		Short: "Enhance an existing codebase into an ECE application",
		Long:  "Analyze an existing codebase and, when viable, integrate platform branding and security to produce an enhanced app with a boosted card.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			if token == "" {
				token = cfg.GitAccessToken
			}

			svc, err := buildGenerationService(cfg, log)
			if err != nil {
				return err
			}

			result := svc.EnhanceCodebase(cmd.Context(), domain.GenerationRequest{
				OrderID:       orderID,
				WalletAddress: wallet,
				ProjectDetails: domain.ProjectDetails{
					Title:             title,
					Description:       description,
					Complexity:        complexity,
					TargetCodebaseURL: args[0],
					Branch:            branch,
					AccessToken:       token,
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
	cmd.Flags().Float64Var(&complexity, "complexity", 1.0, "Project complexity multiplier")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to analyze (git hosts only)")
	cmd.Flags().StringVar(&token, "token", "", "Access token for private repositories")
	_ = cmd.MarkFlagRequired("order")
	_ = cmd.MarkFlagRequired("wallet")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ece-platform/appforge/internal/adapters/outbound/config"
	"github.com/ece-platform/appforge/internal/adapters/outbound/tui"
	"github.com/ece-platform/appforge/internal/application"
)

func newValidateCmd(configPath *string) *cobra.Command {
	var (
		jsonOutput bool
		markdown   bool
		schemaPath string
	)

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Audit source files against ECE branding standards",
		Long:  "Check generated or hand-written source for required components, color usage, security middleware, and accessibility.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			if schemaPath == "" {
				schemaPath = cfg.BrandingSchema
			}

			schema, err := config.NewSchemaLoader().Load(schemaPath)
			if err != nil {
				return err
			}
			svc := application.NewComplianceService(schema, log)

			var code string
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				code += string(data) + "\n"
			}

			report := svc.ValidateCode(code)
			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			case markdown:
				fmt.Fprint(cmd.OutOrStdout(), svc.RenderReport(report))
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCompliance(report))
			}

			if !report.IsCompliant {
				return fmt.Errorf("branding compliance failed with %d violations", len(report.Violations))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Output report as Markdown")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "Branding schema override (YAML)")
	return cmd
}

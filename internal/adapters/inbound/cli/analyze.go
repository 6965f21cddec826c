package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ece-platform/appforge/internal/adapters/outbound/cache"
	"github.com/ece-platform/appforge/internal/adapters/outbound/fetcher"
	"github.com/ece-platform/appforge/internal/adapters/outbound/history"
	"github.com/ece-platform/appforge/internal/adapters/outbound/tui"
	"github.com/ece-platform/appforge/internal/application"
	"github.com/ece-platform/appforge/internal/domain"
)

func newAnalyzeCmd(configPath *string) *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   int
		branch     string
		token      string
		useCache   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <url-or-path>",
		Short: "Analyze a codebase's enhancement viability",
		Long:  "Fetch a codebase from a git host or local path and score its structure, security, compatibility, and quality.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			if token == "" {
				token = cfg.GitAccessToken
			}

			results := cache.New(cfg.DataDir)

			var result *domain.ViabilityResult
			if useCache {
				cached, err := results.Load(args[0])
				if err != nil {
					log.Warn("reading analysis cache", "error", err)
				}
				result = cached
			}
			if result == nil {
				svc := application.NewViabilityService(fetcher.New(log), log)
				result = svc.CheckViability(cmd.Context(), args[0],
					domain.WithBranch(branch),
					domain.WithAccessToken(token),
				)
				if err := results.Save(args[0], result); err != nil {
					log.Warn("writing analysis cache", "error", err)
				}
				if err := history.New(cfg.DataDir).Append(domain.AnalysisEntry{
					URL:        args[0],
					Score:      result.Score,
					IsViable:   result.IsViable,
					AnalyzedAt: time.Now(),
				}); err != nil {
					log.Warn("recording analysis history", "error", err)
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderViability(args[0], result))
			}

			if ciMode {
				if !result.IsViable {
					return fmt.Errorf("codebase is not viable: %s", result.Reason)
				}
				if result.Score < minScore {
					return fmt.Errorf("score %d is below minimum %d", result.Score, minScore)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if not viable or below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to analyze (git hosts only)")
	cmd.Flags().StringVar(&token, "token", "", "Access token for private repositories")
	cmd.Flags().BoolVar(&useCache, "cached", false, "Reuse a recent analysis if one exists")
	return cmd
}

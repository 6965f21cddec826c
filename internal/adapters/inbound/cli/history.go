package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ece-platform/appforge/internal/adapters/outbound/history"
)

func newHistoryCmd(configPath *string) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history [url-or-path]",
		Short: "Show past viability analyses",
		Long:  "List recorded analysis runs, optionally filtered to a single codebase, with score deltas between consecutive runs.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}

			log := history.New(cfg.DataDir)
			entries, err := log.Load()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				entries, err = log.ForURL(args[0])
				if err != nil {
					return err
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded analyses.")
				return nil
			}
			for i, e := range entries {
				verdict := "not viable"
				if e.IsViable {
					verdict = "viable"
				}
				delta := ""
				if i > 0 && entries[i-1].URL == e.URL {
					delta = fmt.Sprintf(" (%+d)", e.Score-entries[i-1].Score)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %3d%s  %s  %s\n",
					e.AnalyzedAt.Format("2006-01-02 15:04"), e.Score, delta, verdict, e.URL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output entries as JSON")
	return cmd
}

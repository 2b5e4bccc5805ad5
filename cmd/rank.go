package cmd

import (
	"github.com/seojoon/ypindex/core"
	"github.com/seojoon/ypindex/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd runs the full evaluation and prints the composite ranking.
var rankCmd = &cobra.Command{
	Use:   "rank [data-dir]",
	Short: "Rank regions by composite youth policy score.",
	Long: `Evaluate every region in the dataset and rank them by composite score.

The composite blends two intensities, each min-max normalized over the
full evaluated set:
- Strategic intensity: how each region's per-category policy effort
  stands against tier peers, plus a portfolio balance bonus
- Administrative intensity: youth budget concentration weighted by
  fiscal autonomy

Metropolitan and municipal governments are scored in the same pass, and
each row carries both an overall rank and a within-tier rank.

Examples:
  # Rank all regions in the current dataset
  ypindex rank ./data

  # Only municipal governments, with the intermediate columns
  ypindex rank ./data --tier basic --detail

  # Percentile standings with no squashing
  ypindex rank ./data --method percentile --scaling none

  # Export the full audit trail to CSV
  ypindex rank ./data --output csv --output-file scores.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Cannot run ranking", err)
		}
	},
}

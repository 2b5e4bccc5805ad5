package cmd

import (
	"github.com/seojoon/ypindex/core"
	"github.com/seojoon/ypindex/internal/contract"
	"github.com/spf13/cobra"
)

// linkedCmd prints the municipal ranking blended with metro support.
var linkedCmd = &cobra.Command{
	Use:   "linked [data-dir]",
	Short: "Rank municipalities with their metro parent's score blended in.",
	Long: `Evaluate every region, then re-rank municipal governments by a linked
score that blends their own composite with their metropolitan parent's.

linked = composite * basic-weight + parent composite * (1 - basic-weight)

Parents come from the hierarchy table when present, otherwise from name
prefix matching. Dual-role governments act as their own parent.

Examples:
  # Default 0.7 self / 0.3 parent blend
  ypindex linked ./data

  # Weight the municipality's own effort higher
  ypindex linked ./data --basic-weight 0.9

  # Export linked rows to CSV
  ypindex linked ./data --output csv --output-file linked.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLinked(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Cannot run linked ranking", err)
		}
	},
}

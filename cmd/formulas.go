package cmd

import (
	"fmt"

	"github.com/seojoon/ypindex/schema"
	"github.com/spf13/cobra"
)

// formulasCmd documents the scoring pipeline with the active parameters.
var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "Show the scoring formulas with the active parameters.",
	Long: `Print the full scoring pipeline, substituting the parameter values
that the current flags, environment and config file resolve to.

Useful for:
- Documenting a run's methodology alongside its exported scores
- Checking which method/scaling combination a config file selects`,
	Args:    cobra.NoArgs,
	PreRunE: configSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("Strategic intensity")
		switch cfg.Method {
		case schema.PercentileMethod:
			cmd.Println("  standing(c)  = fraction of tier peers with count <= own count in category c")
		default:
			cmd.Println("  standing(c)  = CDF((count - peer mean) / peer sample std) per category c")
		}
		switch cfg.Scaling {
		case schema.RootScaling:
			cmd.Printf("  squash(x)    = x^(1/%g)\n", cfg.RootN)
		case schema.NoScaling:
			cmd.Println("  squash(x)    = x")
		default:
			cmd.Printf("  squash(x)    = 1 / (1 + e^(-%g*(x - 0.5)))\n", cfg.SigmoidK)
		}
		cmd.Println("  balance      = Shannon entropy over active category counts / log2(active)")
		cmd.Println("  strategic    = sum over categories of squash(standing) + balance")
		cmd.Println()
		cmd.Println("Administrative intensity")
		cmd.Println("  concentration = youth budget per youth / total budget per capita")
		cmd.Println("  admin         = ln(concentration / fiscal autonomy + 1)")
		cmd.Println()
		cmd.Println("Composite")
		cmd.Println("  composite = (minmax(admin) + minmax(strategic)) / 2")
		cmd.Println()
		cmd.Println("Linked municipal score")
		cmd.Printf("  linked = composite * %.2f + parent composite * %.2f\n", cfg.BasicWeight, cfg.MetroWeight)
		cmd.Println()
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Parameters: method=%s scaling=%s sigmoid-k=%g root-n=%g basic-weight=%.2f\n",
			cfg.Method, cfg.Scaling, cfg.SigmoidK, cfg.RootN, cfg.BasicWeight)
	},
}

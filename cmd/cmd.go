// Package cmd defines the command-line interface for ypindex.
package cmd

import (
	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(linkedCmd)
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the results subcommands to the parent results command
	resultsCmd.AddCommand(resultsStatusCmd)
	resultsCmd.AddCommand(resultsClearCmd)
	resultsCmd.AddCommand(resultsExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("policy-dir", "", "Directory of policy catalog JSON documents (default: <data-dir>/policy)")
	rootCmd.PersistentFlags().String("population-file", "", "Youth/total population CSV (default: <data-dir>/population.csv)")
	rootCmd.PersistentFlags().String("fiscal-file", "", "Fiscal autonomy CSV (default: <data-dir>/fiscal_autonomy.csv)")
	rootCmd.PersistentFlags().String("metro-budget-file", "", "Metropolitan enacted-budget CSV (default: <data-dir>/budget_metro.csv)")
	rootCmd.PersistentFlags().String("basic-budget-file", "", "Municipal enacted-budget CSV (default: <data-dir>/budget_basic.csv)")
	rootCmd.PersistentFlags().String("hierarchy-file", "", "Optional child-to-parent region CSV (default: <data-dir>/hierarchy.csv)")
	rootCmd.PersistentFlags().StringSlice("dual-role-regions", schema.DefaultDualRoleRegions, "Self-governing regions evaluated under both tiers")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("tier", "", "Restrict output to one tier: metro or basic")
	rootCmd.PersistentFlags().Bool("detail", false, "Print intermediate ratios and per-category columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("method", string(schema.ZScoreMethod), "Peer comparison method: percentile or zscore")
	rootCmd.PersistentFlags().String("scaling", string(schema.SigmoidScaling), "Category score scaling: sigmoid or root or none")
	rootCmd.PersistentFlags().Float64("sigmoid-k", contract.DefaultSigmoidK, "Steepness of the sigmoid squash")
	rootCmd.PersistentFlags().Float64("root-n", contract.DefaultRootN, "Degree of the root squash")
	rootCmd.PersistentFlags().Float64("basic-weight", contract.DefaultBasicWeight, "Municipal self-effort weight for linked scores")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of resultsExportCmd to Viper
	resultsExportCmd.Flags().String("export-dir", ".", "Directory to write parquet exports to")
	if err := viper.BindPFlags(resultsExportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding results export flags", err)
	}
}

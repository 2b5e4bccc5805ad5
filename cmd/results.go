package cmd

import (
	"fmt"

	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/internal/resultstore"
	"github.com/seojoon/ypindex/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resultsSetup loads minimal configuration needed for results operations.
// This avoids dataset validation for simple store management commands.
func resultsSetup(_ *cobra.Command, _ []string) error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	backend := schema.DatabaseBackend(backendStr)
	if backendStr == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q (expected sqlite, mysql, postgresql or none)", backendStr)
	}
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	s, err := resultstore.New(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to open results store: %w", err)
	}
	store = s

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	return nil
}

// resultsCmd is the parent command for run tracking management.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage persisted evaluation runs",
	Long: `Manage the store of persisted evaluation runs.

When run tracking is enabled, every rank/linked invocation stores:
- Run metadata (timestamp, parameters, duration)
- Every scored row, including normalization and linkage columns

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show run tracking statistics
  clear  - Remove all tracked runs
  export - Export tracked data to Parquet`,
}

// resultsStatusCmd shows run tracking statistics.
var resultsStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display run tracking statistics",
	PreRunE: resultsSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		status, err := store.Status(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get results status", err)
		}
		cmd.Printf("Backend:     %s\n", status.Backend)
		cmd.Printf("Total runs:  %d\n", status.Runs)
		cmd.Printf("Total rows:  %d\n", status.Rows)
		if status.LastRun != nil {
			cmd.Printf("Last run:    %s\n", status.LastRun.Format("2006-01-02 15:04:05"))
		}
	},
}

// resultsClearCmd removes all tracked runs.
var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all persisted evaluation runs",
	Long: `Delete all stored runs and their scored rows.

WARNING: This action cannot be undone. Consider exporting data first.`,
	PreRunE: resultsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := store.Clear(rootCtx); err != nil {
			contract.LogFatal("Failed to clear results", err)
		}
		fmt.Println("Results cleared successfully.")
	},
}

// resultsExportCmd exports tracked data to Parquet files.
var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export persisted runs to Parquet for analytics",
	Long: `Export all stored evaluation data to Parquet format.

Exports two datasets into the export directory:
- eval_runs.parquet - metadata about each run
- eval_rows.parquet - every scored row with linkage columns

The files load directly into DuckDB, pandas, Spark or any other
Parquet-compatible tool.

Examples:
  ypindex results export --export-dir ./exports
  duckdb -c "SELECT * FROM read_parquet('./exports/eval_rows.parquet') LIMIT 10"`,
	PreRunE: resultsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		dir := viper.GetString("export-dir")
		if err := store.ExportParquet(rootCtx, dir); err != nil {
			contract.LogFatal("Failed to export results", err)
		}
	},
}

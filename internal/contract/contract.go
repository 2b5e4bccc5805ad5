package contract

import (
	"context"
	"time"

	"github.com/seojoon/ypindex/schema"
)

// RunRecord summarizes one persisted evaluation run.
type RunRecord struct {
	RunID        int64
	StartTime    time.Time
	EndTime      *time.Time
	TotalRows    int
	ConfigParams map[string]any
}

// StoreStatus summarizes the results store contents.
type StoreStatus struct {
	Backend schema.DatabaseBackend
	Runs    int
	Rows    int
	LastRun *time.Time
}

// ResultStore records evaluation runs and their output rows for later
// inspection and export. Implementations must be safe for concurrent
// RecordRow calls within one run.
type ResultStore interface {
	// BeginRun opens a new run and returns its ID. A zero ID with nil error
	// means tracking is disabled.
	BeginRun(ctx context.Context, start time.Time, params map[string]any) (int64, error)

	// RecordRow persists one evaluation row; linked is nil for
	// metropolitan rows.
	RecordRow(ctx context.Context, runID int64, row *schema.EvaluationRow, linked *schema.LinkedRow) error

	// EndRun finalizes a run with its end time and row count.
	EndRun(ctx context.Context, runID int64, end time.Time, totalRows int) error

	// Status reports run/row counts for the status subcommand.
	Status(ctx context.Context) (*StoreStatus, error)

	// Clear removes all persisted runs and rows.
	Clear(ctx context.Context) error

	// ExportParquet writes all runs and rows as parquet files under dir.
	ExportParquet(ctx context.Context, dir string) error

	// Close releases the underlying connection.
	Close() error
}

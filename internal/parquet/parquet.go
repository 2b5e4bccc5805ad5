// Package parquet provides data structures and functions for exporting
// evaluation run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
)

// EvalRun represents a single evaluation run with metadata.
// This struct maps to the ypindex_eval_runs database table.
type EvalRun struct {
	// RunID is the unique identifier for this evaluation run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the evaluation began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the evaluation completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalRows is the number of scored rows in this run (nullable)
	TotalRows *int32 `parquet:"total_rows,optional,snappy"`

	// ConfigParams contains the JSON-encoded run parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// EvalRow represents one region-tier score row in an evaluation run.
// This struct maps to the ypindex_eval_rows database table.
type EvalRow struct {
	// RunID references the parent evaluation run
	RunID int64 `parquet:"run_id,snappy"`

	// Region is the administrative region name
	Region string `parquet:"region,snappy"`

	// Tier is the evaluation tier, metropolitan or municipal
	Tier string `parquet:"tier,snappy"`

	// Composite is the final composite score in [0, 1]
	Composite float64 `parquet:"composite,snappy"`

	// OverallRank is the rank across all rows of the run
	OverallRank int32 `parquet:"overall_rank,snappy"`

	// TierRank is the rank within the row's tier
	TierRank int32 `parquet:"tier_rank,snappy"`

	// AdminIntensity is the raw administrative intensity
	AdminIntensity float64 `parquet:"admin_intensity,snappy"`

	// AdminNorm is the min-max normalized administrative intensity
	AdminNorm float64 `parquet:"admin_norm,snappy"`

	// StrategicIntensity is the raw strategic intensity
	StrategicIntensity float64 `parquet:"strategic_intensity,snappy"`

	// StrategicNorm is the min-max normalized strategic intensity
	StrategicNorm float64 `parquet:"strategic_norm,snappy"`

	// EntropyScore is the normalized category balance component
	EntropyScore float64 `parquet:"entropy_score,snappy"`

	// FiscalAutonomy is the fiscal autonomy ratio used for this row
	FiscalAutonomy float64 `parquet:"fiscal_autonomy,snappy"`

	// BudgetPerYouth is youth policy budget per youth resident in won
	BudgetPerYouth float64 `parquet:"budget_per_youth,snappy"`

	// ParentRegion is the linked metropolitan parent (nullable, municipal only)
	ParentRegion *string `parquet:"parent_region,optional,snappy"`

	// LinkedScore is the weighted municipal-metro blend (nullable)
	LinkedScore *float64 `parquet:"linked_score,optional,snappy"`

	// LinkedRank is the rank by linked score (nullable)
	LinkedRank *int32 `parquet:"linked_rank,optional,snappy"`
}

// WriteRunsParquet writes a slice of EvalRun structs to a Parquet file.
func WriteRunsParquet(data []EvalRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRowsParquet writes a slice of EvalRow structs to a Parquet file.
func WriteRowsParquet(data []EvalRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes records to outputPath with the schema inferred from
// the struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

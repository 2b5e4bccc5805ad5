package resultstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/seojoon/ypindex/internal/parquet"
	"github.com/seojoon/ypindex/schema"
)

// ExportParquet writes all persisted runs and rows as parquet files under
// dir, one file per table.
func (s *Store) ExportParquet(ctx context.Context, dir string) error {
	if s.backend == schema.NoneBackend || s.db == nil {
		return errors.New("run tracking is disabled, nothing to export")
	}

	runs, err := s.fetchRuns(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve evaluation runs: %w", err)
	}
	if len(runs) == 0 {
		return errors.New("no evaluation data found to export")
	}

	rows, err := s.fetchRows(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve evaluation rows: %w", err)
	}

	runsFile := filepath.Join(dir, "eval_runs.parquet")
	if err := parquet.WriteRunsParquet(runs, runsFile); err != nil {
		return fmt.Errorf("failed to write evaluation runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runs), runsFile)

	rowsFile := filepath.Join(dir, "eval_rows.parquet")
	if err := parquet.WriteRowsParquet(rows, rowsFile); err != nil {
		return fmt.Errorf("failed to write evaluation rows: %w", err)
	}
	fmt.Printf("Exported %d rows to: %s\n", len(rows), rowsFile)

	return nil
}

// fetchRuns retrieves all evaluation runs from the store.
func (s *Store) fetchRuns(ctx context.Context) ([]parquet.EvalRun, error) {
	quotedTableName := quoteTableName(evalRunsTable, s.backend)
	query := fmt.Sprintf("SELECT run_id, start_time, end_time, run_duration_ms, total_rows, config_params FROM %s ORDER BY run_id", quotedTableName)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []parquet.EvalRun
	for rows.Next() {
		var record parquet.EvalRun

		switch s.backend {
		case schema.SQLiteBackend:
			var startStr string
			var endStr *string
			if err := rows.Scan(&record.RunID, &startStr, &endStr, &record.RunDurationMs, &record.TotalRows, &record.ConfigParams); err != nil {
				return nil, err
			}
			record.StartTime, err = time.Parse(time.RFC3339Nano, startStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			if endStr != nil {
				end, err := time.Parse(time.RFC3339Nano, *endStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &end
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.StartTime, &record.EndTime, &record.RunDurationMs, &record.TotalRows, &record.ConfigParams); err != nil {
				return nil, err
			}
		}

		results = append(results, record)
	}

	return results, rows.Err()
}

// fetchRows retrieves all evaluation rows from the store.
func (s *Store) fetchRows(ctx context.Context) ([]parquet.EvalRow, error) {
	quotedTableName := quoteTableName(evalRowsTable, s.backend)
	query := fmt.Sprintf(`SELECT run_id, region, tier, composite, overall_rank, tier_rank,
    admin_intensity, admin_norm, strategic_intensity, strategic_norm,
    entropy_score, fiscal_autonomy, budget_per_youth,
    parent_region, linked_score, linked_rank
    FROM %s ORDER BY run_id, overall_rank`, quotedTableName)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []parquet.EvalRow
	for rows.Next() {
		var record parquet.EvalRow
		if err := rows.Scan(&record.RunID, &record.Region, &record.Tier, &record.Composite,
			&record.OverallRank, &record.TierRank, &record.AdminIntensity, &record.AdminNorm,
			&record.StrategicIntensity, &record.StrategicNorm, &record.EntropyScore,
			&record.FiscalAutonomy, &record.BudgetPerYouth,
			&record.ParentRegion, &record.LinkedScore, &record.LinkedRank); err != nil {
			return nil, err
		}
		results = append(results, record)
	}

	return results, rows.Err()
}

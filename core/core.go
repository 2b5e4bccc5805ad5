// Package core has the scoring, ranking and linkage logic for ypindex.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/internal/loader"
	"github.com/seojoon/ypindex/internal/outwriter"
	"github.com/seojoon/ypindex/schema"
)

// ExecuteRank runs the full evaluation pipeline and prints the ranked
// composite table. It serves as the main entry point for the 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config, store contract.ResultStore) error {
	start := time.Now()
	output, err := runPipeline(ctx, cfg, store)
	if err != nil {
		return err
	}

	rows := output.Rows
	if cfg.TierFilter != "" {
		rows = output.TierRows(cfg.TierFilter)
	}
	summary := outwriter.SummarizeRows(output.Rows)
	if len(rows) > cfg.ResultLimit {
		rows = rows[:cfg.ResultLimit]
	}
	return outwriter.WriteRankResults(rows, summary, cfg, time.Since(start))
}

// ExecuteLinked runs the full evaluation pipeline and prints the municipal
// table enriched with metropolitan linkage.
func ExecuteLinked(ctx context.Context, cfg *contract.Config, store contract.ResultStore) error {
	start := time.Now()
	output, err := runPipeline(ctx, cfg, store)
	if err != nil {
		return err
	}

	linked := output.Linked
	if len(linked) > cfg.ResultLimit {
		linked = linked[:cfg.ResultLimit]
	}
	return outwriter.WriteLinkedResults(linked, cfg, time.Since(start))
}

// runPipeline executes one batch evaluation over a fixed input snapshot:
// load, peer snapshot, parallel scoring, global normalization, ranking,
// metro-municipal linkage, and optional run tracking.
func runPipeline(ctx context.Context, cfg *contract.Config, store contract.ResultStore) (*schema.RunOutput, error) {
	dataset, err := loader.Load(cfg)
	if err != nil {
		return nil, err
	}

	// Run tracking failures degrade to an untracked run, never abort it.
	var runID int64
	if store != nil {
		params := map[string]any{
			"data_dir":     cfg.DataDir,
			"method":       string(cfg.Method),
			"scaling":      string(cfg.Scaling),
			"basic_weight": cfg.BasicWeight,
			"workers":      cfg.Workers,
		}
		runID, err = store.BeginRun(ctx, time.Now(), params)
		if err != nil {
			contract.LogWarn("run tracking initialization failed", err)
			runID = 0
		}
	}

	// Peer statistics are computed exactly once, before any scoring.
	stats := BuildPeerStats(dataset.Regions)
	rows := EvaluateRegions(cfg, stats, dataset.Regions)
	NormalizeAndScore(rows)
	rows = RankRows(rows)
	linked := LinkMunicipal(cfg, rows, dataset.Hierarchy)

	output := &schema.RunOutput{Rows: rows, Linked: linked}

	if store != nil && runID > 0 {
		recordRun(ctx, store, runID, output)
	}
	return output, nil
}

// recordRun persists every output row and finalizes the run record.
func recordRun(ctx context.Context, store contract.ResultStore, runID int64, output *schema.RunOutput) {
	linkedByRegion := make(map[string]*schema.LinkedRow, len(output.Linked))
	for i := range output.Linked {
		linkedByRegion[output.Linked[i].Region] = &output.Linked[i]
	}

	for i := range output.Rows {
		row := &output.Rows[i]
		var linked *schema.LinkedRow
		if row.Tier == schema.BasicTier {
			linked = linkedByRegion[row.Region]
		}
		if err := store.RecordRow(ctx, runID, row, linked); err != nil {
			contract.LogWarn(fmt.Sprintf("run tracking failed for %s", row.Region), err)
		}
	}
	if err := store.EndRun(ctx, runID, time.Now(), len(output.Rows)); err != nil {
		contract.LogWarn("failed to finalize run tracking", err)
	}
}

package core

import (
	"sort"
	"sync"

	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/schema"
)

// EvaluateRegions scores every region against the shared peer-group
// snapshot using a worker pool. A dual-role region yields one row per tier,
// both sharing the administrative result computed once from the same raw
// inputs.
func EvaluateRegions(cfg *contract.Config, stats *PeerStats, regions []schema.Region) []schema.EvaluationRow {
	regionCh := make(chan *schema.Region, len(regions))
	rowsCh := make(chan []schema.EvaluationRow, len(regions))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for region := range regionCh {
				rowsCh <- evaluateRegion(cfg, stats, region)
			}
		})
	}

	// Send regions to worker channel
	for i := range regions {
		regionCh <- &regions[i]
	}
	close(regionCh)

	wg.Wait()
	close(rowsCh)

	var rows []schema.EvaluationRow
	for regionRows := range rowsCh {
		rows = append(rows, regionRows...)
	}

	// Channel collection order is nondeterministic; restore name order so
	// that rank tie-breaks are stable across runs.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Region != rows[j].Region {
			return rows[i].Region < rows[j].Region
		}
		return rows[i].Tier < rows[j].Tier
	})
	return rows
}

// evaluateRegion produces the evaluation rows for one region: one per tier
// it evaluates as.
func evaluateRegion(cfg *contract.Config, stats *PeerStats, region *schema.Region) []schema.EvaluationRow {
	admin := ComputeAdminIntensity(region)

	rows := make([]schema.EvaluationRow, 0, len(region.EvaluatesAs))
	for _, tier := range region.EvaluatesAs {
		rows = append(rows, schema.EvaluationRow{
			Region:    region.Name,
			Tier:      tier,
			Admin:     admin,
			Strategic: ComputeStrategicIntensity(cfg, stats, region.Name, tier),
		})
	}
	return rows
}

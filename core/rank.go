package core

import (
	"sort"

	"github.com/seojoon/ypindex/schema"
)

// RankRows sorts rows by composite score descending and assigns overall and
// within-tier ranks, both starting at 1. The sort is stable: among equal
// scores the first-encountered row ranks ahead, so callers must present
// rows in a deterministic order.
func RankRows(rows []schema.EvaluationRow) []schema.EvaluationRow {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Composite > rows[j].Composite
	})

	tierCounters := make(map[schema.Tier]int)
	for i := range rows {
		rows[i].OverallRank = i + 1
		tierCounters[rows[i].Tier]++
		rows[i].TierRank = tierCounters[rows[i].Tier]
	}
	return rows
}

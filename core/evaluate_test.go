package core

import (
	"testing"

	"github.com/seojoon/ypindex/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluateRegions verifies row production and deterministic ordering
// under the worker pool.
func TestEvaluateRegions(t *testing.T) {
	regions := []schema.Region{
		{
			Name:            "부산광역시",
			EvaluatesAs:     []schema.Tier{schema.MetroTier},
			YouthPopulation: 600000,
			TotalPopulation: 3300000,
			FiscalAutonomy:  0.5,
			TotalBudgetMil:  15000000,
			Catalog: map[schema.PolicyCategory]schema.CategoryEntry{
				schema.CategoryEmployment: {DeclaredCount: 8, AggregateBudgetMil: 50000},
			},
		},
		{
			Name:            "김해시",
			EvaluatesAs:     []schema.Tier{schema.BasicTier},
			YouthPopulation: 100000,
			TotalPopulation: 530000,
			FiscalAutonomy:  0.3,
			TotalBudgetMil:  2000000,
			Catalog: map[schema.PolicyCategory]schema.CategoryEntry{
				schema.CategoryEmployment: {DeclaredCount: 3, AggregateBudgetMil: 8000},
			},
		},
		{
			Name:            "양산시",
			EvaluatesAs:     []schema.Tier{schema.BasicTier},
			YouthPopulation: 70000,
			TotalPopulation: 350000,
			FiscalAutonomy:  0.35,
			TotalBudgetMil:  1500000,
			Catalog: map[schema.PolicyCategory]schema.CategoryEntry{
				schema.CategoryHousing: {DeclaredCount: 2, AggregateBudgetMil: 5000},
			},
		},
	}

	cfg := newTestConfig()
	cfg.Workers = 4
	stats := BuildPeerStats(regions)

	rows := EvaluateRegions(cfg, stats, regions)
	require.Len(t, rows, 3)

	// Rows come back in region name order regardless of worker scheduling.
	assert.Equal(t, "김해시", rows[0].Region)
	assert.Equal(t, "부산광역시", rows[1].Region)
	assert.Equal(t, "양산시", rows[2].Region)

	for _, row := range rows {
		assert.NotZero(t, row.Admin.Intensity, "admin intensity for %s", row.Region)
		assert.NotNil(t, row.Strategic.CategoryScores)
	}
}

// TestEvaluateRegionsDualRole verifies that a dual-role region produces one
// row per tier sharing one admin result.
func TestEvaluateRegionsDualRole(t *testing.T) {
	regions := []schema.Region{
		{
			Name:            "세종특별자치시",
			EvaluatesAs:     []schema.Tier{schema.MetroTier, schema.BasicTier},
			YouthPopulation: 90000,
			TotalPopulation: 390000,
			FiscalAutonomy:  0.55,
			TotalBudgetMil:  2000000,
			Catalog: map[schema.PolicyCategory]schema.CategoryEntry{
				schema.CategoryEmployment: {DeclaredCount: 5, AggregateBudgetMil: 12000},
				schema.CategoryHousing:    {DeclaredCount: 5, AggregateBudgetMil: 20000},
			},
		},
	}

	cfg := newTestConfig()
	stats := BuildPeerStats(regions)

	rows := EvaluateRegions(cfg, stats, regions)
	require.Len(t, rows, 2)

	assert.Equal(t, schema.MetroTier, rows[0].Tier)
	assert.Equal(t, schema.BasicTier, rows[1].Tier)

	// Both rows share the admin result computed once from the raw inputs.
	assert.InDelta(t, rows[0].Admin.Intensity, rows[1].Admin.Intensity, 0.0001)
	assert.InDelta(t, rows[0].Admin.ConcentrationIndex, rows[1].Admin.ConcentrationIndex, 0.0001)
}

// TestEvaluateRegionsEmpty verifies an empty region set yields no rows.
func TestEvaluateRegionsEmpty(t *testing.T) {
	cfg := newTestConfig()
	rows := EvaluateRegions(cfg, BuildPeerStats(nil), nil)
	assert.Empty(t, rows)
}

package core

import (
	"testing"

	"github.com/seojoon/ypindex/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinkMunicipalHierarchy verifies the weighted blend using an explicit
// hierarchy table.
func TestLinkMunicipalHierarchy(t *testing.T) {
	cfg := newTestConfig() // basic 0.7 / metro 0.3
	rows := []schema.EvaluationRow{
		{Region: "경기도", Tier: schema.MetroTier, Composite: 0.8},
		{Region: "수원시", Tier: schema.BasicTier, Composite: 0.6},
	}
	hierarchy := map[string]string{"수원시": "경기도"}

	linked := LinkMunicipal(cfg, rows, hierarchy)
	require.Len(t, linked, 1)

	assert.Equal(t, "수원시", linked[0].Region)
	assert.Equal(t, "경기도", linked[0].ParentRegion)
	assert.InDelta(t, 0.8, linked[0].ParentComposite, 0.001)
	assert.InDelta(t, 0.6*0.7+0.8*0.3, linked[0].LinkedScore, 0.001) // 0.66
	assert.Equal(t, 1, linked[0].LinkedRank)
}

// TestLinkMunicipalDualRole verifies that a dual-role region parents itself.
func TestLinkMunicipalDualRole(t *testing.T) {
	cfg := newTestConfig()
	rows := []schema.EvaluationRow{
		{Region: "세종특별자치시", Tier: schema.MetroTier, Composite: 0.5},
		{Region: "세종특별자치시", Tier: schema.BasicTier, Composite: 0.5},
	}

	linked := LinkMunicipal(cfg, rows, nil)
	require.Len(t, linked, 1)

	assert.Equal(t, "세종특별자치시", linked[0].ParentRegion)
	assert.InDelta(t, 0.5, linked[0].LinkedScore, 0.001)
}

// TestLinkMunicipalPrefix verifies prefix matching with the paired-province
// disambiguation.
func TestLinkMunicipalPrefix(t *testing.T) {
	cfg := newTestConfig()
	rows := []schema.EvaluationRow{
		{Region: "경상남도", Tier: schema.MetroTier, Composite: 0.4},
		{Region: "경상북도", Tier: schema.MetroTier, Composite: 0.9},
		{Region: "경상북도 포항시", Tier: schema.BasicTier, Composite: 0.2},
	}

	linked := LinkMunicipal(cfg, rows, nil)
	require.Len(t, linked, 1)

	// Both provinces share the two-character prefix; the 남도 candidate must
	// not claim a 북도 municipality.
	assert.Equal(t, "경상북도", linked[0].ParentRegion)
	assert.InDelta(t, 0.2*0.7+0.9*0.3, linked[0].LinkedScore, 0.001)
}

// TestLinkMunicipalUnresolved verifies the zero-parent degradation.
func TestLinkMunicipalUnresolved(t *testing.T) {
	cfg := newTestConfig()
	rows := []schema.EvaluationRow{
		{Region: "독립시", Tier: schema.BasicTier, Composite: 0.6},
	}

	linked := LinkMunicipal(cfg, rows, nil)
	require.Len(t, linked, 1)

	assert.Empty(t, linked[0].ParentRegion)
	assert.Zero(t, linked[0].ParentComposite)
	assert.InDelta(t, 0.6*0.7, linked[0].LinkedScore, 0.001)
}

// TestLinkMunicipalHierarchyBeatsPrefix verifies the resolution order.
func TestLinkMunicipalHierarchyBeatsPrefix(t *testing.T) {
	cfg := newTestConfig()
	rows := []schema.EvaluationRow{
		{Region: "경기도", Tier: schema.MetroTier, Composite: 0.3},
		{Region: "강원특별자치도", Tier: schema.MetroTier, Composite: 0.7},
		{Region: "경기시", Tier: schema.BasicTier, Composite: 0.5},
	}
	// The hierarchy says otherwise even though the prefix matches 경기도.
	hierarchy := map[string]string{"경기시": "강원특별자치도"}

	linked := LinkMunicipal(cfg, rows, hierarchy)
	require.Len(t, linked, 1)
	assert.Equal(t, "강원특별자치도", linked[0].ParentRegion)
	assert.InDelta(t, 0.7, linked[0].ParentComposite, 0.001)
}

// TestLinkMunicipalRanking verifies linked ranks follow the blended score.
func TestLinkMunicipalRanking(t *testing.T) {
	cfg := newTestConfig()
	rows := []schema.EvaluationRow{
		{Region: "경기도", Tier: schema.MetroTier, Composite: 1.0},
		{Region: "전라남도", Tier: schema.MetroTier, Composite: 0.0},
		{Region: "수원시", Tier: schema.BasicTier, Composite: 0.2},
		{Region: "목포시", Tier: schema.BasicTier, Composite: 0.4},
	}
	hierarchy := map[string]string{"수원시": "경기도", "목포시": "전라남도"}

	linked := LinkMunicipal(cfg, rows, hierarchy)
	require.Len(t, linked, 2)

	// 수원시: 0.2*0.7 + 1.0*0.3 = 0.44; 목포시: 0.4*0.7 + 0.0*0.3 = 0.28.
	// Metro support flips the self-effort order.
	assert.Equal(t, "수원시", linked[0].Region)
	assert.Equal(t, 1, linked[0].LinkedRank)
	assert.Equal(t, "목포시", linked[1].Region)
	assert.Equal(t, 2, linked[1].LinkedRank)
}

package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleRows returns two ranked rows covering both tiers.
func sampleRows() []schema.EvaluationRow {
	return []schema.EvaluationRow{
		{
			Region:        "서울특별시",
			Tier:          schema.MetroTier,
			OverallRank:   1,
			TierRank:      1,
			Composite:     0.82,
			AdminNorm:     0.9,
			StrategicNorm: 0.74,
			Admin: schema.AdminResult{
				Intensity:          1.1,
				ConcentrationIndex: 0.4,
				BudgetPerYouth:     120000,
				BudgetPerCapita:    300000,
				FiscalAutonomy:     0.75,
				YouthBudgetMil:     240000,
				TotalBudgetMil:     28000000,
				YouthPopulation:    2000000,
				TotalPopulation:    9300000,
			},
			Strategic: schema.StrategicResult{
				Intensity:     4.2,
				CategoryTotal: 3.4,
				Entropy:       2.1,
				EntropyScore:  0.8,
				CategoryScores: map[schema.PolicyCategory]float64{
					schema.CategoryEmployment: 0.9,
				},
				CategoryCounts: map[schema.PolicyCategory]int{
					schema.CategoryEmployment: 12,
				},
			},
		},
		{
			Region:      "수원시",
			Tier:        schema.BasicTier,
			OverallRank: 2,
			TierRank:    1,
			Composite:   0.41,
			Strategic: schema.StrategicResult{
				CategoryScores: map[schema.PolicyCategory]float64{},
				CategoryCounts: map[schema.PolicyCategory]int{},
			},
		},
	}
}

// TestSummarizeRows verifies run summary aggregation.
func TestSummarizeRows(t *testing.T) {
	summary := SummarizeRows(sampleRows())

	assert.Equal(t, 2, summary.TotalRows)
	assert.Equal(t, 1, summary.MetroRows)
	assert.Equal(t, 1, summary.BasicRows)
	assert.InDelta(t, 0.615, summary.MeanComposite, 0.001)
	assert.InDelta(t, 0.82, summary.MaxComposite, 0.001)
	assert.InDelta(t, 0.41, summary.MinComposite, 0.001)
	assert.Equal(t, "서울특별시", summary.TopRegion)
}

// TestSummarizeRowsEmpty verifies the zero-value summary.
func TestSummarizeRowsEmpty(t *testing.T) {
	summary := SummarizeRows(nil)
	assert.Zero(t, summary.TotalRows)
	assert.Empty(t, summary.TopRegion)
}

// TestWriteRankCSV verifies the audit-trail header and row values.
func TestWriteRankCSV(t *testing.T) {
	fmtFloat, intFmt := createFormatters(4)
	var buf bytes.Buffer
	require.NoError(t, writeRankCSV(&buf, sampleRows(), fmtFloat, intFmt))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	header := records[0]
	assert.Equal(t, "overall_rank", header[0])
	assert.Contains(t, header, "concentration_index")
	assert.Contains(t, header, "entropy_score")
	assert.Contains(t, header, "employment_score")
	assert.Contains(t, header, "employment_count")

	first := records[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "서울특별시", first[2])
	assert.Equal(t, "metropolitan", first[3])
	assert.Equal(t, "0.8200", first[4])
	assert.Equal(t, contract.LeadingValue, first[5])
}

// TestWriteLinkedCSV verifies the linked export columns.
func TestWriteLinkedCSV(t *testing.T) {
	linked := []schema.LinkedRow{
		{
			EvaluationRow:   sampleRows()[1],
			ParentRegion:    "경기도",
			ParentComposite: 0.7,
			LinkedScore:     0.497,
			LinkedRank:      1,
		},
	}

	fmtFloat, _ := createFormatters(3)
	var buf bytes.Buffer
	require.NoError(t, writeLinkedCSV(&buf, linked, fmtFloat))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "linked_rank", records[0][0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "수원시", records[1][1])
	assert.Equal(t, "경기도", records[1][2])
	assert.Equal(t, "0.497", records[1][3])
}

// TestWriteJSON verifies rows survive a JSON round trip.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleRows()))

	var decoded []schema.EvaluationRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "서울특별시", decoded[0].Region)
	assert.InDelta(t, 0.82, decoded[0].Composite, 0.001)
}

// TestWriteRankTable smoke-tests the table renderer.
func TestWriteRankTable(t *testing.T) {
	contract.SetColorEnabled(false)
	defer contract.SetColorEnabled(true)

	cfg := &contract.Config{Precision: 2, Width: 120, Workers: 2, Detail: true}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	summary := SummarizeRows(sampleRows())
	require.NoError(t, writeRankTable(sampleRows(), summary, cfg, fmtFloat, time.Second, &buf))

	out := buf.String()
	assert.Contains(t, out, "서울특별시")
	assert.Contains(t, out, "Metro")
	assert.Contains(t, out, "Showing 2 of 2 rows")
}

// TestGetMaxRegionWidth verifies the width override and clamping.
func TestGetMaxRegionWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		detail   bool
		expected int
	}{
		{name: "wide override", width: 200, detail: false, expected: 40},
		{name: "narrow override", width: 40, detail: false, expected: 12},
		{name: "detail eats width", width: 100, detail: true, expected: 12},
		{name: "mid override", width: 60, detail: false, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width, Detail: tt.detail}
			assert.Equal(t, tt.expected, getMaxRegionWidth(cfg))
		})
	}
}

// TestTruncateName verifies rune-safe truncation.
func TestTruncateName(t *testing.T) {
	assert.Equal(t, "수원시", truncateName("수원시", 12))
	assert.Equal(t, "서귀…", truncateName("서귀포시", 3))
	assert.Equal(t, "서", truncateName("서귀포시", 1))
	assert.False(t, strings.Contains(truncateName("충청북도 청주시", 5), "청주"))
}

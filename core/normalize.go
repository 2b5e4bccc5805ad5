package core

import "github.com/seojoon/ypindex/schema"

// degenerateNorm is the normalized value every row takes when an intensity
// column has zero variance. The midpoint keeps the 50/50 composite
// meaningful on all-equal inputs.
const degenerateNorm = 0.5

// NormalizeAndScore min-max normalizes both intensities across the entire
// row set and computes the composite score for every row, in place.
func NormalizeAndScore(rows []schema.EvaluationRow) {
	if len(rows) == 0 {
		return
	}

	adminMin, adminMax := rows[0].Admin.Intensity, rows[0].Admin.Intensity
	stratMin, stratMax := rows[0].Strategic.Intensity, rows[0].Strategic.Intensity
	for _, row := range rows[1:] {
		adminMin = min(adminMin, row.Admin.Intensity)
		adminMax = max(adminMax, row.Admin.Intensity)
		stratMin = min(stratMin, row.Strategic.Intensity)
		stratMax = max(stratMax, row.Strategic.Intensity)
	}

	for i := range rows {
		rows[i].AdminNorm = minMax(rows[i].Admin.Intensity, adminMin, adminMax)
		rows[i].StrategicNorm = minMax(rows[i].Strategic.Intensity, stratMin, stratMax)
		rows[i].Composite = (rows[i].AdminNorm + rows[i].StrategicNorm) / 2
	}
}

// minMax scales v into [0,1] given the column bounds.
func minMax(v, lo, hi float64) float64 {
	if hi <= lo {
		return degenerateNorm
	}
	return (v - lo) / (hi - lo)
}

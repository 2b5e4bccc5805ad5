// Package schema has the domain model and shared constants for ypindex.
package schema

// Project is a single youth-policy project declared in a region's catalog.
type Project struct {
	Name          string  // Project name as declared in the catalog
	BudgetMillion float64 // Declared budget in millions of won (0 if unparsable)
}

// CategoryEntry holds one policy category's slice of a region's catalog.
// A category either carries individual projects with their own budgets, or
// only the aggregate figures declared at the category level, or both.
type CategoryEntry struct {
	DeclaredCount      int       // Declared project count ("사업수"), 0 if absent
	AggregateBudgetMil float64   // Category-level aggregate budget ("총예산") in millions
	Projects           []Project // Individual projects ("세부사업")
}

// Region is a single administrative unit read once per run. All fields are
// immutable after loading.
type Region struct {
	Name            string  // Unique region name within a run
	EvaluatesAs     []Tier  // One tier, or both for dual-role regions
	YouthPopulation int     // Youth population count
	TotalPopulation int     // Total population count
	FiscalAutonomy  float64 // Self-financing ratio in [0,1]
	TotalBudgetMil  float64 // Total enacted budget in millions

	// Catalog is the policy catalog keyed by canonical category.
	Catalog map[PolicyCategory]CategoryEntry
}

// IsDualRole reports whether the region is evaluated under both tiers.
func (r *Region) IsDualRole() bool {
	return len(r.EvaluatesAs) > 1
}

// ProjectCount returns the project count used for strategic scoring in the
// given category: the declared count when present, otherwise the number of
// catalog entries, otherwise 0.
func (r *Region) ProjectCount(cat PolicyCategory) int {
	entry, ok := r.Catalog[cat]
	if !ok {
		return 0
	}
	if entry.DeclaredCount > 0 {
		return entry.DeclaredCount
	}
	return len(entry.Projects)
}

// StrategicResult holds the strategic intensity of one region against one
// peer group, plus the per-category components kept for auditability.
type StrategicResult struct {
	Intensity      float64                    // CategoryTotal + EntropyScore
	CategoryTotal  float64                    // Sum of squashed per-category standings
	CategoryScores map[PolicyCategory]float64 // Squashed standing per category
	CategoryCounts map[PolicyCategory]int     // Project count per category
	Entropy        float64                    // Raw Shannon entropy in bits
	EntropyScore   float64                    // Entropy normalized to [0,1], 0 if <2 active categories
}

// AdminResult holds the administrative intensity of one region plus all
// intermediate ratios for transparency.
type AdminResult struct {
	Intensity          float64 // ln(concentration/autonomy + 1), or ln(concentration + 1) if autonomy is 0
	ConcentrationIndex float64 // BudgetPerYouth / BudgetPerCapita
	BudgetPerYouth     float64 // Youth-policy budget per youth, in won
	BudgetPerCapita    float64 // Total budget per resident, in won
	FiscalAutonomy     float64 // Ratio in [0,1]
	YouthBudgetMil     float64 // Youth-policy budget in millions
	TotalBudgetMil     float64 // Total enacted budget in millions
	YouthPopulation    int
	TotalPopulation    int
}

// EvaluationRow is one scored output row. A dual-role region produces two
// rows sharing the same AdminResult. Rows are never mutated after ranking.
type EvaluationRow struct {
	Region    string
	Tier      Tier
	Admin     AdminResult
	Strategic StrategicResult

	AdminNorm     float64 // Min-max normalized administrative intensity
	StrategicNorm float64 // Min-max normalized strategic intensity
	Composite     float64 // (AdminNorm + StrategicNorm) / 2
	OverallRank   int     // 1..N over all rows
	TierRank      int     // 1..M within the row's tier
}

// LinkedRow is a municipal EvaluationRow extended with its parent
// metropolitan linkage.
type LinkedRow struct {
	EvaluationRow

	ParentRegion    string  // Resolved parent metro name, "" if unresolved
	ParentComposite float64 // Parent metro composite, 0 if unresolved
	LinkedScore     float64 // Composite blended with ParentComposite
	LinkedRank      int     // 1..M over all municipal rows by LinkedScore
}

// RunOutput is the complete output of one evaluation run.
type RunOutput struct {
	Rows   []EvaluationRow // All ranked rows, overall-rank order
	Linked []LinkedRow     // Municipal rows with metro linkage, linked-rank order
}

// TierRows returns the subset of Rows with the given tier, preserving order.
func (o *RunOutput) TierRows(tier Tier) []EvaluationRow {
	var out []EvaluationRow
	for _, row := range o.Rows {
		if row.Tier == tier {
			out = append(out, row)
		}
	}
	return out
}

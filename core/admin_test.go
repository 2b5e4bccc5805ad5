package core

import (
	"math"
	"testing"

	"github.com/seojoon/ypindex/schema"
	"github.com/stretchr/testify/assert"
)

// TestComputeAdminIntensity verifies the concentration index and the log
// transform on a fully populated region.
func TestComputeAdminIntensity(t *testing.T) {
	region := &schema.Region{
		Name:            "대전광역시",
		YouthPopulation: 100000,
		TotalPopulation: 1000000,
		FiscalAutonomy:  0.3,
		TotalBudgetMil:  5000, // per capita 5,000 won
		Catalog: map[schema.PolicyCategory]schema.CategoryEntry{
			schema.CategoryEmployment: {
				Projects: []schema.Project{
					{Name: "청년취업지원", BudgetMillion: 60},
					{Name: "청년창업펀드", BudgetMillion: 40},
				},
			},
		},
	}

	result := ComputeAdminIntensity(region)

	assert.InDelta(t, 100.0, result.YouthBudgetMil, 0.001)
	assert.InDelta(t, 1000.0, result.BudgetPerYouth, 0.001)  // 100M won / 100k youths
	assert.InDelta(t, 5000.0, result.BudgetPerCapita, 0.001) // 5,000M won / 1M people
	assert.InDelta(t, 0.2, result.ConcentrationIndex, 0.001)
	assert.InDelta(t, math.Log(0.2/0.3+1), result.Intensity, 0.001)
}

// TestComputeAdminIntensityZeroAutonomy verifies the autonomy-free fallback.
func TestComputeAdminIntensityZeroAutonomy(t *testing.T) {
	region := &schema.Region{
		Name:            "옹진군",
		YouthPopulation: 1000,
		TotalPopulation: 10000,
		FiscalAutonomy:  0,
		TotalBudgetMil:  100,
		Catalog: map[schema.PolicyCategory]schema.CategoryEntry{
			schema.CategoryHousing: {
				Projects: []schema.Project{{Name: "청년주택", BudgetMillion: 5}},
			},
		},
	}

	result := ComputeAdminIntensity(region)

	// CI = (5M/1000) / (100M/10000) = 5000/10000 = 0.5, no autonomy divisor.
	assert.InDelta(t, 0.5, result.ConcentrationIndex, 0.001)
	assert.InDelta(t, math.Log(1.5), result.Intensity, 0.001)
}

// TestComputeAdminIntensityZeroPopulations verifies the division guards.
func TestComputeAdminIntensityZeroPopulations(t *testing.T) {
	region := &schema.Region{
		Name:           "무인지역",
		FiscalAutonomy: 0.25,
		TotalBudgetMil: 1000,
	}

	result := ComputeAdminIntensity(region)

	assert.Zero(t, result.BudgetPerYouth)
	assert.Zero(t, result.BudgetPerCapita)
	assert.Zero(t, result.ConcentrationIndex)
	assert.Zero(t, result.Intensity) // ln(0/0.25 + 1) = 0
}

// TestYouthPolicyBudget verifies the per-category aggregate fallback.
func TestYouthPolicyBudget(t *testing.T) {
	tests := []struct {
		name     string
		catalog  map[schema.PolicyCategory]schema.CategoryEntry
		expected float64
	}{
		{
			name:     "empty catalog",
			catalog:  map[schema.PolicyCategory]schema.CategoryEntry{},
			expected: 0,
		},
		{
			name: "project budgets win over the aggregate",
			catalog: map[schema.PolicyCategory]schema.CategoryEntry{
				schema.CategoryEmployment: {
					AggregateBudgetMil: 999,
					Projects: []schema.Project{
						{BudgetMillion: 30},
						{BudgetMillion: 20},
					},
				},
			},
			expected: 50,
		},
		{
			name: "aggregate used when no project budget parsed",
			catalog: map[schema.PolicyCategory]schema.CategoryEntry{
				schema.CategoryEducation: {
					AggregateBudgetMil: 120,
					Projects:           []schema.Project{{Name: "장학사업"}},
				},
			},
			expected: 120,
		},
		{
			name: "mixed categories sum independently",
			catalog: map[schema.PolicyCategory]schema.CategoryEntry{
				schema.CategoryEmployment: {
					Projects: []schema.Project{{BudgetMillion: 70}},
				},
				schema.CategoryWelfare: {
					AggregateBudgetMil: 30,
				},
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := &schema.Region{Catalog: tt.catalog}
			assert.InDelta(t, tt.expected, youthPolicyBudget(region), 0.001)
		})
	}
}

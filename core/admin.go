package core

import (
	"math"

	"github.com/seojoon/ypindex/schema"
)

// Budgets are declared in millions of won; per-person figures are reported
// in won.
const millionUnit = 1_000_000

// ComputeAdminIntensity scores how disproportionately a region concentrates
// budget on youth policy relative to its youth population share and fiscal
// self-sufficiency. All intermediate ratios are kept on the result for
// transparency.
//
// The log transform compresses the heavy-tailed concentration ratio, and
// dividing by fiscal autonomy rewards intensity achieved despite low
// self-financing capacity.
func ComputeAdminIntensity(region *schema.Region) schema.AdminResult {
	youthBudgetMil := youthPolicyBudget(region)

	result := schema.AdminResult{
		FiscalAutonomy:  region.FiscalAutonomy,
		YouthBudgetMil:  youthBudgetMil,
		TotalBudgetMil:  region.TotalBudgetMil,
		YouthPopulation: region.YouthPopulation,
		TotalPopulation: region.TotalPopulation,
	}

	if region.YouthPopulation > 0 {
		result.BudgetPerYouth = youthBudgetMil * millionUnit / float64(region.YouthPopulation)
	}
	if region.TotalPopulation > 0 {
		result.BudgetPerCapita = region.TotalBudgetMil * millionUnit / float64(region.TotalPopulation)
	}
	if result.BudgetPerCapita > 0 {
		result.ConcentrationIndex = result.BudgetPerYouth / result.BudgetPerCapita
	}

	if region.FiscalAutonomy > 0 {
		result.Intensity = math.Log(result.ConcentrationIndex/region.FiscalAutonomy + 1)
	} else {
		result.Intensity = math.Log(result.ConcentrationIndex + 1)
	}
	return result
}

// youthPolicyBudget sums the region's youth-policy spend bottom-up: per
// category, individual project budgets first, the category aggregate only
// when no project budget parsed, 0 when neither is present.
func youthPolicyBudget(region *schema.Region) float64 {
	var total float64
	for _, entry := range region.Catalog {
		var categoryBudget float64
		for _, project := range entry.Projects {
			categoryBudget += project.BudgetMillion
		}
		if categoryBudget == 0 {
			categoryBudget = entry.AggregateBudgetMil
		}
		total += categoryBudget
	}
	return total
}

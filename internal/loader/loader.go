// Package loader adapts the raw civic dataset snapshot (policy catalogs,
// population, fiscal autonomy, enacted budgets, region hierarchy) into the
// immutable Region set consumed by the scoring engine.
package loader

import (
	"fmt"
	"os"
	"sort"

	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/schema"
)

// Tier-typical default values substituted for regions missing from one of
// the input tables. The substitution is logged, never fatal.
const (
	defaultMetroYouthPop  = 200000
	defaultBasicYouthPop  = 10000
	defaultMetroTotalPop  = 1000000
	defaultBasicTotalPop  = 50000
	defaultFiscalAutonomy = 0.25
	defaultMetroBudgetMil = 10000000 // 10 trillion won
	defaultBasicBudgetMil = 1000000  // 1 trillion won
)

// Dataset is the fully joined input snapshot for one evaluation run.
type Dataset struct {
	Regions   []schema.Region   // Sorted by name for deterministic runs
	Hierarchy map[string]string // Municipal region -> parent metro region
	MetroSet  map[string]bool   // Names evaluated under the metropolitan tier
}

// Load reads all input tables and joins them into one Dataset. The complete
// absence of any required table aborts the run; missing per-region rows
// degrade to tier-typical defaults with a logged substitution.
func Load(cfg *contract.Config) (*Dataset, error) {
	catalogs, err := loadCatalogs(cfg.PolicyDir)
	if err != nil {
		return nil, fmt.Errorf("loading policy catalog: %w", err)
	}
	population, err := readPopulationTable(cfg.PopulationFile)
	if err != nil {
		return nil, fmt.Errorf("loading population table: %w", err)
	}
	fiscal, err := readFiscalTable(cfg.FiscalFile)
	if err != nil {
		return nil, fmt.Errorf("loading fiscal-autonomy table: %w", err)
	}
	metroBudget, err := readBudgetTable(cfg.MetroBudgetFile)
	if err != nil {
		return nil, fmt.Errorf("loading metropolitan budget table: %w", err)
	}
	basicBudget, err := readBudgetTable(cfg.BasicBudgetFile)
	if err != nil {
		return nil, fmt.Errorf("loading municipal budget table: %w", err)
	}
	hierarchy, err := readHierarchyTable(cfg.HierarchyFile)
	if err != nil {
		return nil, fmt.Errorf("loading hierarchy table: %w", err)
	}

	ds := &Dataset{
		Hierarchy: hierarchy,
		MetroSet:  make(map[string]bool),
	}

	dualRoleNames := cfg.DualRoleRegions
	if len(dualRoleNames) == 0 {
		dualRoleNames = schema.DefaultDualRoleRegions
	}
	dualRole := make(map[string]bool, len(dualRoleNames))
	for _, name := range dualRoleNames {
		dualRole[name] = true
	}

	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		region := schema.Region{
			Name:    name,
			Catalog: catalogs[name],
		}

		// Tier assignment: the metropolitan budget table defines the metro
		// tier and the municipal table the basic tier. The configured
		// self-governing regions get both tiers regardless of which table
		// carries them; so does any region present in both.
		inMetro := hasKey(metroBudget, name)
		inBasic := hasKey(basicBudget, name)
		switch {
		case dualRole[name] || (inMetro && inBasic):
			region.EvaluatesAs = []schema.Tier{schema.MetroTier, schema.BasicTier}
		case inMetro:
			region.EvaluatesAs = []schema.Tier{schema.MetroTier}
		case inBasic:
			region.EvaluatesAs = []schema.Tier{schema.BasicTier}
		default:
			// Not in either budget table: assume municipal, budget defaulted.
			region.EvaluatesAs = []schema.Tier{schema.BasicTier}
		}
		metroTyped := inMetro || dualRole[name]
		if metroTyped {
			ds.MetroSet[name] = true
		}

		if row, ok := population[name]; ok {
			region.YouthPopulation = row.Youth
			region.TotalPopulation = row.Total
		} else {
			region.YouthPopulation = tierDefault(metroTyped, defaultMetroYouthPop, defaultBasicYouthPop)
			region.TotalPopulation = tierDefault(metroTyped, defaultMetroTotalPop, defaultBasicTotalPop)
			contract.LogSubstitution(name, "population", region.YouthPopulation)
		}

		if ratio, ok := fiscal[name]; ok {
			region.FiscalAutonomy = ratio
		} else {
			region.FiscalAutonomy = defaultFiscalAutonomy
			contract.LogSubstitution(name, "fiscal autonomy", defaultFiscalAutonomy)
		}

		switch {
		case inMetro:
			region.TotalBudgetMil = metroBudget[name]
		case inBasic:
			region.TotalBudgetMil = basicBudget[name]
		default:
			region.TotalBudgetMil = tierDefault(metroTyped, float64(defaultMetroBudgetMil), float64(defaultBasicBudgetMil))
			contract.LogSubstitution(name, "total budget", region.TotalBudgetMil)
		}

		ds.Regions = append(ds.Regions, region)
	}

	if len(ds.Regions) == 0 {
		return nil, fmt.Errorf("no regions found across policy catalog and budget tables")
	}
	return ds, nil
}

// hasKey reports map membership for a budget table.
func hasKey(m map[string]float64, key string) bool {
	_, ok := m[key]
	return ok
}

// tierDefault picks the metro or basic default for a substitution.
func tierDefault[T any](metro bool, metroVal, basicVal T) T {
	if metro {
		return metroVal
	}
	return basicVal
}

// warnf logs a loader warning to stderr.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn "+format+"\n", args...)
}

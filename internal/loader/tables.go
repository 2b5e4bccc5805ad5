package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSV header aliases. The upstream tables use Korean headers; aliases cover
// re-exported snapshots with English headers.
var (
	regionHeaders   = []string{"지자체명", "자치단체명", "region"}
	youthPopHeaders = []string{"청년인구", "youth_population"}
	totalPopHeaders = []string{"전체인구", "total_population"}
	autonomyHeaders = []string{"재정자립도", "fiscal_autonomy"}
	budgetHeaders   = []string{"세출총계", "total_budget"}
	parentHeaders   = []string{"소속_광역", "parent", "parent_region"}
)

// populationRow holds one region's population counts.
type populationRow struct {
	Youth int
	Total int
}

// readPopulationTable loads the youth/total population table.
func readPopulationTable(path string) (map[string]populationRow, error) {
	rows := make(map[string]populationRow)
	err := readCSVTable(path, func(get func([]string) string) {
		region := get(regionHeaders)
		if region == "" {
			return
		}
		rows[region] = populationRow{
			Youth: int(sanitizeNumericString(get(youthPopHeaders))),
			Total: int(sanitizeNumericString(get(totalPopHeaders))),
		}
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// readFiscalTable loads the fiscal-autonomy table. Values arrive as
// percentages and are converted to [0,1] ratios.
func readFiscalTable(path string) (map[string]float64, error) {
	rows := make(map[string]float64)
	err := readCSVTable(path, func(get func([]string) string) {
		region := get(regionHeaders)
		if region == "" {
			return
		}
		rows[region] = sanitizeNumericString(get(autonomyHeaders)) / 100.0
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// readBudgetTable loads a total enacted-budget table (million units).
func readBudgetTable(path string) (map[string]float64, error) {
	rows := make(map[string]float64)
	err := readCSVTable(path, func(get func([]string) string) {
		region := get(regionHeaders)
		if region == "" {
			return
		}
		rows[region] = sanitizeNumericString(get(budgetHeaders))
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// readHierarchyTable loads the optional child-to-parent region table. A
// missing file is not an error; the linker falls back to name matching.
func readHierarchyTable(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	rows := make(map[string]string)
	err := readCSVTable(path, func(get func([]string) string) {
		child := get(regionHeaders)
		parent := get(parentHeaders)
		if child == "" || parent == "" {
			return
		}
		rows[child] = parent
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// readCSVTable streams a header-keyed CSV file, invoking visit for each data
// row with an alias-aware column getter.
func readCSVTable(path string, visit func(get func([]string) string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("table %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged exports

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("table %q: reading header: %w", path, err)
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("table %q: %w", path, err)
		}
		get := func(aliases []string) string {
			for _, alias := range aliases {
				if i, ok := index[alias]; ok && i < len(record) {
					return strings.TrimSpace(record[i])
				}
			}
			return ""
		}
		visit(get)
	}
	return nil
}

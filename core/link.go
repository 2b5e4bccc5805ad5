package core

import (
	"sort"
	"strings"

	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/schema"
)

// LinkMunicipal blends every municipal row's composite with its parent
// metropolitan composite into a linked score and assigns linked ranks.
// Metropolitan rows are untouched; they only feed the parent lookup.
//
// Parent resolution order: a metropolitan row with the same name (dual-role
// regions parent themselves), then the explicit hierarchy table, then the
// name-prefix heuristic. An unresolved parent degrades to score 0.
func LinkMunicipal(cfg *contract.Config, rows []schema.EvaluationRow, hierarchy map[string]string) []schema.LinkedRow {
	metroScores := make(map[string]float64)
	var metroNames []string
	for _, row := range rows {
		if row.Tier == schema.MetroTier {
			metroScores[row.Region] = row.Composite
			metroNames = append(metroNames, row.Region)
		}
	}
	sort.Strings(metroNames)

	var linked []schema.LinkedRow
	for _, row := range rows {
		if row.Tier != schema.BasicTier {
			continue
		}

		lr := schema.LinkedRow{EvaluationRow: row}
		parent := resolveParent(row.Region, metroScores, hierarchy, metroNames)
		if parent == "" {
			contract.LogWarn("unresolved parent region for "+row.Region, nil)
		} else {
			lr.ParentRegion = parent
			lr.ParentComposite = metroScores[parent]
		}
		lr.LinkedScore = row.Composite*cfg.BasicWeight + lr.ParentComposite*cfg.MetroWeight
		linked = append(linked, lr)
	}

	sort.SliceStable(linked, func(i, j int) bool {
		return linked[i].LinkedScore > linked[j].LinkedScore
	})
	for i := range linked {
		linked[i].LinkedRank = i + 1
	}
	return linked
}

// resolveParent finds the parent metropolitan region for a municipal name.
func resolveParent(name string, metroScores map[string]float64, hierarchy map[string]string, metroNames []string) string {
	// Dual-role regions are their own parent.
	if _, ok := metroScores[name]; ok {
		return name
	}

	// The explicit hierarchy table wins over name matching. A parent named
	// there but absent from the metro rows keeps its name with score 0.
	if parent, ok := hierarchy[name]; ok {
		return parent
	}

	return matchParentByPrefix(name, metroNames)
}

// matchParentByPrefix matches the municipal name's leading two characters
// against the known metropolitan names. The paired provinces (South/North
// Gyeongsang, Jeolla and Chungcheong) share their two-character prefix, so
// a "남도" candidate must not claim a "북도" municipal name and vice versa.
func matchParentByPrefix(name string, metroNames []string) string {
	for _, metro := range metroNames {
		runes := []rune(metro)
		if len(runes) < 2 {
			continue
		}
		if !strings.HasPrefix(name, string(runes[:2])) {
			continue
		}
		if strings.HasSuffix(metro, "남도") && strings.Contains(name, "북도") {
			continue
		}
		if strings.HasSuffix(metro, "북도") && strings.Contains(name, "남도") {
			continue
		}
		return metro
	}
	return ""
}

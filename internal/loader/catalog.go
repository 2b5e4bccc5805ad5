package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/seojoon/ypindex/schema"
)

// Catalog document keys. The policy booklets are authored in Korean; English
// aliases cover re-exported snapshots.
var (
	executionKeys  = []string{"정책수행", "policy_execution"}
	countKeys      = []string{"사업수", "project_count"}
	budgetKeys     = []string{"총예산", "total_budget"}
	projectsKeys   = []string{"세부사업", "projects"}
	nameKeys       = []string{"사업명", "name"}
	projBudgetKeys = []string{"예산", "budget"}
)

// loadCatalogs reads every *.json document under dir and merges them into a
// single region-name keyed catalog map. Documents that fail to parse are
// skipped with a warning; an unreadable directory is fatal.
func loadCatalogs(dir string) (map[string]map[schema.PolicyCategory]schema.CategoryEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("policy catalog directory %q: %w", dir, err)
	}

	catalogs := make(map[string]map[schema.PolicyCategory]schema.CategoryEntry)
	parsed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := parseCatalogFile(path, catalogs); err != nil {
			warnf("skipping policy document %s: %v", entry.Name(), err)
			continue
		}
		parsed++
	}
	if parsed == 0 {
		return nil, fmt.Errorf("policy catalog directory %q contains no readable JSON documents", dir)
	}
	return catalogs, nil
}

// parseCatalogFile parses one policy document and merges its regions into
// the shared catalog map. Later documents win on duplicate region names.
func parseCatalogFile(path string, catalogs map[string]map[schema.PolicyCategory]schema.CategoryEntry) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	for regionName, regionRaw := range doc {
		var regionDoc map[string]json.RawMessage
		if err := json.Unmarshal(regionRaw, &regionDoc); err != nil {
			continue // region value is not an object
		}
		execRaw, ok := firstKey(regionDoc, executionKeys)
		if !ok {
			continue // no policy execution block, not a region entry
		}

		var execDoc map[string]json.RawMessage
		if err := json.Unmarshal(execRaw, &execDoc); err != nil {
			continue
		}

		catalog := make(map[schema.PolicyCategory]schema.CategoryEntry)
		for label, catRaw := range execDoc {
			cat, known := schema.CanonicalCategory(label)
			if !known {
				continue // categories outside the fixed set are ignored
			}
			catalog[cat] = parseCategoryEntry(catRaw)
		}
		catalogs[regionName] = catalog
	}
	return nil
}

// parseCategoryEntry decodes one category block, tolerating numeric fields
// declared as strings with unit suffixes or thousands separators.
func parseCategoryEntry(raw json.RawMessage) schema.CategoryEntry {
	var entry schema.CategoryEntry

	var catDoc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &catDoc); err != nil {
		return entry
	}

	if countRaw, ok := firstKey(catDoc, countKeys); ok {
		entry.DeclaredCount = int(sanitizeNumeric(countRaw))
	}
	if budgetRaw, ok := firstKey(catDoc, budgetKeys); ok {
		entry.AggregateBudgetMil = sanitizeNumeric(budgetRaw)
	}
	if projectsRaw, ok := firstKey(catDoc, projectsKeys); ok {
		var projects []map[string]json.RawMessage
		if err := json.Unmarshal(projectsRaw, &projects); err == nil {
			for _, p := range projects {
				proj := schema.Project{}
				if nameRaw, ok := firstKey(p, nameKeys); ok {
					_ = json.Unmarshal(nameRaw, &proj.Name)
				}
				if budgetRaw, ok := firstKey(p, projBudgetKeys); ok {
					proj.BudgetMillion = sanitizeNumeric(budgetRaw)
				}
				entry.Projects = append(entry.Projects, proj)
			}
		}
	}
	return entry
}

// firstKey returns the value for the first alias present in the object.
func firstKey(doc map[string]json.RawMessage, aliases []string) (json.RawMessage, bool) {
	for _, key := range aliases {
		if v, ok := doc[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// sanitizeNumeric extracts a numeric value from a raw JSON scalar. Numbers
// pass through; strings are parsed directly, then with every non-digit
// character stripped. Anything else counts as 0.
func sanitizeNumeric(raw json.RawMessage) float64 {
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	return sanitizeNumericString(s)
}

// sanitizeNumericString parses a budget figure out of free-form text.
func sanitizeNumericString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
		return v
	}
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRankResults outputs the ranked composite table, dispatching on the
// configured output format.
func WriteRankResults(rows []schema.EvaluationRow, summary RunSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankCSV(w, rows, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTable(rows, summary, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeRankTable generates and writes the human-readable ranked table.
func writeRankTable(rows []schema.EvaluationRow, summary RunSummary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Region", "Tier", "TierRank", "Composite", "Label"}
	if cfg.Detail {
		headers = append(headers, "Admin", "AdminN", "Strategic", "StratN", "Entropy")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxRegionWidth(cfg)
	var data [][]string
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.OverallRank),
			truncateName(r.Region, maxWidth),
			schema.TierTitle(r.Tier),
			strconv.Itoa(r.TierRank),
			fmtFloat(r.Composite),
			contract.GetColorLabel(r.Composite),
		}
		if cfg.Detail {
			row = append(row,
				fmtFloat(r.Admin.Intensity),
				fmtFloat(r.AdminNorm),
				fmtFloat(r.Strategic.Intensity),
				fmtFloat(r.StrategicNorm),
				fmtFloat(r.Strategic.EntropyScore),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d of %d rows (metro: %d, basic: %d)\n",
		len(rows), summary.TotalRows, summary.MetroRows, summary.BasicRows); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Composite mean %s, max %s (%s), min %s\n",
		fmtFloat(summary.MeanComposite), fmtFloat(summary.MaxComposite), summary.TopRegion,
		fmtFloat(summary.MinComposite)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Evaluation completed in %v with %d workers\n", duration, cfg.Workers)
	return err
}

// writeRankCSV writes the full audit trail per row: intensities, all
// intermediate ratios, per-category sub-scores and entropy components.
func writeRankCSV(w io.Writer, rows []schema.EvaluationRow, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"overall_rank",
		"tier_rank",
		"region",
		"tier",
		"composite",
		"label",
		"admin_intensity",
		"admin_norm",
		"strategic_intensity",
		"strategic_norm",
		"concentration_index",
		"budget_per_youth",
		"budget_per_capita",
		"fiscal_autonomy",
		"youth_budget_million",
		"total_budget_million",
		"youth_population",
		"total_population",
		"category_total",
		"entropy",
		"entropy_score",
	}
	for _, cat := range schema.AllCategories {
		header = append(header, string(cat)+"_score", string(cat)+"_count")
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range rows {
			record := []string{
				strconv.Itoa(r.OverallRank),
				strconv.Itoa(r.TierRank),
				r.Region,
				string(r.Tier),
				fmtFloat(r.Composite),
				contract.GetPlainLabel(r.Composite),
				fmtFloat(r.Admin.Intensity),
				fmtFloat(r.AdminNorm),
				fmtFloat(r.Strategic.Intensity),
				fmtFloat(r.StrategicNorm),
				fmtFloat(r.Admin.ConcentrationIndex),
				fmtFloat(r.Admin.BudgetPerYouth),
				fmtFloat(r.Admin.BudgetPerCapita),
				fmtFloat(r.Admin.FiscalAutonomy),
				fmtFloat(r.Admin.YouthBudgetMil),
				fmtFloat(r.Admin.TotalBudgetMil),
				fmt.Sprintf(intFmt, r.Admin.YouthPopulation),
				fmt.Sprintf(intFmt, r.Admin.TotalPopulation),
				fmtFloat(r.Strategic.CategoryTotal),
				fmtFloat(r.Strategic.Entropy),
				fmtFloat(r.Strategic.EntropyScore),
			}
			for _, cat := range schema.AllCategories {
				record = append(record,
					fmtFloat(r.Strategic.CategoryScores[cat]),
					fmt.Sprintf(intFmt, r.Strategic.CategoryCounts[cat]),
				)
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

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

// WriteLinkedResults outputs the municipal table enriched with metro
// linkage, dispatching on the configured output format.
func WriteLinkedResults(linked []schema.LinkedRow, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, linked)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLinkedCSV(w, linked, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLinkedTable(linked, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeLinkedTable generates and writes the human-readable linked table.
func writeLinkedTable(linked []schema.LinkedRow, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Region", "Parent", "Linked", "Composite", "ParentScore", "Label"}
	if cfg.Detail {
		headers = append(headers, "Admin", "Strategic", "Autonomy", "PerYouth")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxRegionWidth(cfg)
	var data [][]string
	for _, r := range linked {
		parent := r.ParentRegion
		if parent == "" {
			parent = "-"
		}
		row := []string{
			strconv.Itoa(r.LinkedRank),
			truncateName(r.Region, maxWidth),
			truncateName(parent, maxWidth),
			fmtFloat(r.LinkedScore),
			fmtFloat(r.Composite),
			fmtFloat(r.ParentComposite),
			contract.GetColorLabel(r.LinkedScore),
		}
		if cfg.Detail {
			row = append(row,
				fmtFloat(r.Admin.Intensity),
				fmtFloat(r.Strategic.Intensity),
				fmtFloat(r.Admin.FiscalAutonomy),
				fmtFloat(r.Admin.BudgetPerYouth),
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

	if _, err := fmt.Fprintf(writer, "Showing %d municipal rows with metro linkage (basic %.1f / metro %.1f)\n",
		len(linked), cfg.BasicWeight, cfg.MetroWeight); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Evaluation completed in %v with %d workers\n", duration, cfg.Workers)
	return err
}

// writeLinkedCSV writes the linked municipal rows in CSV format.
func writeLinkedCSV(w io.Writer, linked []schema.LinkedRow, fmtFloat func(float64) string) error {
	header := []string{
		"linked_rank",
		"region",
		"parent_region",
		"linked_score",
		"composite",
		"parent_composite",
		"overall_rank",
		"tier_rank",
		"admin_intensity",
		"strategic_intensity",
		"fiscal_autonomy",
		"budget_per_youth",
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range linked {
			record := []string{
				strconv.Itoa(r.LinkedRank),
				r.Region,
				r.ParentRegion,
				fmtFloat(r.LinkedScore),
				fmtFloat(r.Composite),
				fmtFloat(r.ParentComposite),
				strconv.Itoa(r.OverallRank),
				strconv.Itoa(r.TierRank),
				fmtFloat(r.Admin.Intensity),
				fmtFloat(r.Strategic.Intensity),
				fmtFloat(r.Admin.FiscalAutonomy),
				fmtFloat(r.Admin.BudgetPerYouth),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

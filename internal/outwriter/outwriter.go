// Package outwriter renders evaluation results as text tables, CSV or JSON.
package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/schema"
	"golang.org/x/term"
)

// RunSummary aggregates one run's output for the trailing summary lines.
type RunSummary struct {
	TotalRows     int
	MetroRows     int
	BasicRows     int
	MeanComposite float64
	MaxComposite  float64
	MinComposite  float64
	TopRegion     string
}

// SummarizeRows computes summary statistics over the full ranked row set.
func SummarizeRows(rows []schema.EvaluationRow) RunSummary {
	summary := RunSummary{TotalRows: len(rows)}
	if len(rows) == 0 {
		return summary
	}

	summary.MaxComposite = rows[0].Composite
	summary.MinComposite = rows[0].Composite
	var sum float64
	for _, row := range rows {
		switch row.Tier {
		case schema.MetroTier:
			summary.MetroRows++
		case schema.BasicTier:
			summary.BasicRows++
		}
		sum += row.Composite
		summary.MaxComposite = max(summary.MaxComposite, row.Composite)
		summary.MinComposite = min(summary.MinComposite, row.Composite)
	}
	summary.MeanComposite = sum / float64(len(rows))
	summary.TopRegion = rows[0].Region // rows arrive in overall-rank order
	return summary
}

// writeWithFile handles the common pattern of opening a file, writing to
// it, and cleaning up.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "%s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return writeRows(csvWriter)
}

// createFormatters creates the formatter closures shared by all outputs.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	return fmtFloat, intFmt
}

// getMaxRegionWidth calculates the maximum width for region names in table
// output based on terminal width and table configuration.
func getMaxRegionWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	baseWidth := 35 // rank, tier, score and label columns with borders
	if cfg.Detail {
		baseWidth += 60
	}

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}

// truncateName shortens a region name to fit the table column.
func truncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) <= maxWidth {
		return name
	}
	if maxWidth <= 1 {
		return string(runes[:1])
	}
	return string(runes[:maxWidth-1]) + "…"
}

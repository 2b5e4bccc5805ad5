package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Composite score label constants.
const (
	LeadingValue    = "Leading"    // Top band of composite scores
	StrongValue     = "Strong"     // Upper-middle band
	DevelopingValue = "Developing" // Lower-middle band
	EmergingValue   = "Emerging"   // Bottom band
)

// Color variables for console output.
var (
	LeadingColor    = color.New(color.FgGreen, color.Bold) // leadingColor marks the strongest composites.
	StrongColor     = color.New(color.FgCyan)              // strongColor marks solid performers.
	DevelopingColor = color.New(color.FgYellow)            // developingColor marks middling composites.
	EmergingColor   = color.New(color.FgRed)               // emergingColor marks the weakest composites.
)

// SetColorEnabled toggles colored output globally.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}

// GetPlainLabel returns a plain text band label for a composite score in
// [0,1]. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 0.75:
		return LeadingValue
	case score >= 0.5:
		return StrongValue
	case score >= 0.25:
		return DevelopingValue
	default:
		return EmergingValue
	}
}

// GetColorLabel returns a colored band label for console output (table).
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case LeadingValue:
		return LeadingColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case DevelopingValue:
		return DevelopingColor.Sprint(text)
	default: // "Emerging"
		return EmergingColor.Sprint(text)
	}
}

// ParseYesNo interprets a yes/no style flag value, falling back to the
// provided default for unknown input.
func ParseYesNo(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error to stderr and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogSubstitution logs a documented default-value substitution for a region
// missing from one of the input tables.
func LogSubstitution(region, field string, value any) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: no %s data, using default %v\n", region, field, value)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for the results
// store.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ypindex-results.db")
	}
	dir := filepath.Join(homeDir, ".ypindex")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return filepath.Join(os.TempDir(), "ypindex-results.db")
	}
	return filepath.Join(dir, "results.db")
}

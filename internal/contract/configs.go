// Package contract holds the validated runtime configuration and shared
// CLI utilities for ypindex.
package contract

import (
	"fmt"
	"math"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/seojoon/ypindex/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 4
	DefaultSigmoidK    = 5.0
	DefaultRootN       = 2.0
	DefaultBasicWeight = 0.7
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Default file names under the data directory.
const (
	DefaultPolicyDirName   = "policy"
	DefaultPopulationName  = "population.csv"
	DefaultFiscalName      = "fiscal_autonomy.csv"
	DefaultMetroBudgetName = "budget_metro.csv"
	DefaultBasicBudgetName = "budget_basic.csv"
	DefaultHierarchyName   = "hierarchy.csv"
)

// Config holds the runtime configuration for an evaluation run.
// This struct is the final, validated config.
type Config struct {
	DataDir         string // Root directory of the civic dataset snapshot
	PolicyDir       string // Directory of policy catalog JSON documents
	PopulationFile  string // Youth/total population CSV
	FiscalFile      string // Fiscal-autonomy CSV
	MetroBudgetFile string // Metropolitan enacted-budget CSV
	BasicBudgetFile string // Municipal enacted-budget CSV
	HierarchyFile   string // Optional child-to-parent region CSV

	DualRoleRegions []string // Regions evaluated under both tiers

	Workers     int
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	TierFilter  schema.Tier // Empty means all tiers
	Detail      bool        // Print intermediate ratios and category columns
	Width       int         // Terminal width override (0 = auto-detect)

	Method      schema.ComparisonMethod
	Scaling     schema.ScalingMethod
	SigmoidK    float64
	RootN       float64
	BasicWeight float64 // Municipal self-effort weight for linked scores
	MetroWeight float64 // Parent metro support weight; BasicWeight + MetroWeight = 1

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseColors bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataDirStr string

	PolicyDir       string `mapstructure:"policy-dir"`
	PopulationFile  string `mapstructure:"population-file"`
	FiscalFile      string `mapstructure:"fiscal-file"`
	MetroBudgetFile string `mapstructure:"metro-budget-file"`
	BasicBudgetFile string `mapstructure:"basic-budget-file"`
	HierarchyFile   string `mapstructure:"hierarchy-file"`

	DualRoleRegions []string `mapstructure:"dual-role-regions"`

	Workers    int    `mapstructure:"workers"`
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Tier       string `mapstructure:"tier"`
	Detail     bool   `mapstructure:"detail"`
	Width      int    `mapstructure:"width"`

	Method      string  `mapstructure:"method"`
	Scaling     string  `mapstructure:"scaling"`
	SigmoidK    float64 `mapstructure:"sigmoid-k"`
	RootN       float64 `mapstructure:"root-n"`
	BasicWeight float64 `mapstructure:"basic-weight"`

	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	Color string `mapstructure:"color"`
}

// ProcessAndValidate converts the raw input into the final Config,
// validating every enum and numeric range. It populates cfg in place.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.DataDir = input.DataDirStr
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}

	// Resolve data file paths: explicit overrides win, otherwise derive
	// from the data directory.
	cfg.PolicyDir = orDerived(input.PolicyDir, cfg.DataDir, DefaultPolicyDirName)
	cfg.PopulationFile = orDerived(input.PopulationFile, cfg.DataDir, DefaultPopulationName)
	cfg.FiscalFile = orDerived(input.FiscalFile, cfg.DataDir, DefaultFiscalName)
	cfg.MetroBudgetFile = orDerived(input.MetroBudgetFile, cfg.DataDir, DefaultMetroBudgetName)
	cfg.BasicBudgetFile = orDerived(input.BasicBudgetFile, cfg.DataDir, DefaultBasicBudgetName)
	cfg.HierarchyFile = orDerived(input.HierarchyFile, cfg.DataDir, DefaultHierarchyName)

	cfg.DualRoleRegions = input.DualRoleRegions
	if len(cfg.DualRoleRegions) == 0 {
		cfg.DualRoleRegions = schema.DefaultDualRoleRegions
	}

	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d", MaxResultLimit)
	}
	cfg.ResultLimit = input.Limit
	if cfg.ResultLimit == 0 {
		cfg.ResultLimit = DefaultResultLimit
	}

	cfg.Workers = input.Workers
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 6 {
		cfg.Precision = 6
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode %q (expected text, csv or json)", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	if input.Tier != "" {
		tier, err := schema.ParseTier(input.Tier)
		if err != nil {
			return err
		}
		cfg.TierFilter = tier
	}

	cfg.Method = schema.ComparisonMethod(strings.ToLower(input.Method))
	if _, ok := schema.ValidComparisonMethods[cfg.Method]; !ok {
		return fmt.Errorf("invalid comparison method %q (expected percentile or zscore)", input.Method)
	}

	cfg.Scaling = schema.ScalingMethod(strings.ToLower(input.Scaling))
	if _, ok := schema.ValidScalingMethods[cfg.Scaling]; !ok {
		return fmt.Errorf("invalid scaling method %q (expected sigmoid, root or none)", input.Scaling)
	}

	cfg.SigmoidK = input.SigmoidK
	if cfg.SigmoidK <= 0 {
		cfg.SigmoidK = DefaultSigmoidK
	}
	cfg.RootN = input.RootN
	if cfg.RootN < 1 {
		cfg.RootN = DefaultRootN
	}

	cfg.BasicWeight = input.BasicWeight
	if math.IsNaN(cfg.BasicWeight) || cfg.BasicWeight < 0 || cfg.BasicWeight > 1 {
		return fmt.Errorf("basic-weight must be within [0,1], got %v", input.BasicWeight)
	}
	cfg.MetroWeight = 1 - cfg.BasicWeight

	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend %q (expected sqlite, mysql, postgresql or none)", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	cfg.UseColors = ParseYesNo(input.Color, true)
	SetColorEnabled(cfg.UseColors)

	return nil
}

// ValidateDatabaseConnectionString checks that network backends carry a
// connection string. SQLite derives a default path and none needs nothing.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store backend %s requires store-db-connect", backend)
		}
	}
	return nil
}

// orDerived returns the explicit path if set, otherwise joins the data
// directory with the default name.
func orDerived(explicit, dataDir, defaultName string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(dataDir, defaultName)
}

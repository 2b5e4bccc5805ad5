package contract

import (
	"path/filepath"
	"testing"

	"github.com/seojoon/ypindex/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation with defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		DataDirStr:   "./data",
		Limit:        DefaultResultLimit,
		Workers:      DefaultWorkers,
		Precision:    DefaultPrecision,
		Output:       string(schema.TextOut),
		Method:       string(schema.ZScoreMethod),
		Scaling:      string(schema.SigmoidScaling),
		SigmoidK:     DefaultSigmoidK,
		RootN:        DefaultRootN,
		BasicWeight:  DefaultBasicWeight,
		StoreBackend: string(schema.SQLiteBackend),
		Color:        "no",
	}
}

// TestProcessAndValidateDefaults verifies the happy path and derived paths.
func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, filepath.Join("./data", DefaultPolicyDirName), cfg.PolicyDir)
	assert.Equal(t, filepath.Join("./data", DefaultPopulationName), cfg.PopulationFile)
	assert.Equal(t, filepath.Join("./data", DefaultHierarchyName), cfg.HierarchyFile)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, schema.ZScoreMethod, cfg.Method)
	assert.Equal(t, schema.SigmoidScaling, cfg.Scaling)
	assert.InDelta(t, DefaultBasicWeight, cfg.BasicWeight, 0.0001)
	assert.InDelta(t, 1-DefaultBasicWeight, cfg.MetroWeight, 0.0001)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.Equal(t, schema.DefaultDualRoleRegions, cfg.DualRoleRegions)
	assert.False(t, cfg.UseColors)
}

// TestProcessAndValidateDualRoleOverride verifies a custom dual-role set
// replaces the default.
func TestProcessAndValidateDualRoleOverride(t *testing.T) {
	input := validInput()
	input.DualRoleRegions = []string{"강원특별자치도"}

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"강원특별자치도"}, cfg.DualRoleRegions)
}

// TestProcessAndValidateExplicitPaths verifies explicit overrides win.
func TestProcessAndValidateExplicitPaths(t *testing.T) {
	input := validInput()
	input.PopulationFile = "/etc/pop.csv"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "/etc/pop.csv", cfg.PopulationFile)
}

// TestProcessAndValidateRejections covers every enum/range rejection.
func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{name: "bad output mode", mutate: func(i *ConfigRawInput) { i.Output = "yaml" }},
		{name: "bad method", mutate: func(i *ConfigRawInput) { i.Method = "median" }},
		{name: "bad scaling", mutate: func(i *ConfigRawInput) { i.Scaling = "cube" }},
		{name: "bad tier", mutate: func(i *ConfigRawInput) { i.Tier = "village" }},
		{name: "negative limit", mutate: func(i *ConfigRawInput) { i.Limit = -1 }},
		{name: "limit over max", mutate: func(i *ConfigRawInput) { i.Limit = MaxResultLimit + 1 }},
		{name: "weight below zero", mutate: func(i *ConfigRawInput) { i.BasicWeight = -0.1 }},
		{name: "weight above one", mutate: func(i *ConfigRawInput) { i.BasicWeight = 1.5 }},
		{name: "bad store backend", mutate: func(i *ConfigRawInput) { i.StoreBackend = "oracle" }},
		{name: "mysql without connect", mutate: func(i *ConfigRawInput) { i.StoreBackend = "mysql" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

// TestProcessAndValidateTierShorts verifies the tier short names.
func TestProcessAndValidateTierShorts(t *testing.T) {
	input := validInput()
	input.Tier = "metro"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.MetroTier, cfg.TierFilter)

	input = validInput()
	input.Tier = "basic"
	cfg = &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.BasicTier, cfg.TierFilter)
}

// TestProcessAndValidateClamping verifies silent clamps on soft fields.
func TestProcessAndValidateClamping(t *testing.T) {
	input := validInput()
	input.Workers = 0
	input.Precision = 9
	input.SigmoidK = -3
	input.RootN = 0.1

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, 6, cfg.Precision)
	assert.InDelta(t, DefaultSigmoidK, cfg.SigmoidK, 0.0001)
	assert.InDelta(t, DefaultRootN, cfg.RootN, 0.0001)
}

// TestValidateDatabaseConnectionString verifies backend requirements.
func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/ypindex"))
}

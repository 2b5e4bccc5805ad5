package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/internal/resultstore"
	"github.com/seojoon/ypindex/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// store is the run tracking store, nil when tracking is unavailable.
var store contract.ResultStore

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "ypindex",
	Short:              "Score regional youth policy portfolios with a composite index.",
	Long:               `ypindex reads a civic dataset snapshot and ranks regions by the intensity of their youth policy efforts.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".ypindex") // Name of config file (without extension)
		viper.SetConfigType("yaml")     // We'll use YAML format
		viper.AddConfigPath(".")        // Look in the current directory
		viper.AddConfigPath("$HOME")    // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("YPINDEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("method", schema.ZScoreMethod)
	viper.SetDefault("scaling", schema.SigmoidScaling)
	viper.SetDefault("sigmoid-k", contract.DefaultSigmoidK)
	viper.SetDefault("root-n", contract.DefaultRootN)
	viper.SetDefault("basic-weight", contract.DefaultBasicWeight)
	viper.SetDefault("store-backend", schema.SQLiteBackend)
	viper.SetDefault("store-db-connect", "")
	viper.SetDefault("color", "yes")
}

// configSetup unmarshals config and runs validation, without touching the
// run tracking store.
func configSetup(_ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.DataDirStr = args[0]
	} else {
		input.DataDirStr = "."
	}

	// 4. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetup validates config and opens the run tracking store. A store
// that fails to open degrades to an untracked run.
func sharedSetup(cmd *cobra.Command, args []string) error {
	if err := configSetup(cmd, args); err != nil {
		return err
	}

	s, err := resultstore.New(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		contract.LogWarn("run tracking unavailable", err)
		return nil
	}
	store = s
	return nil
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if store != nil {
		_ = store.Close()
	}
	return err
}

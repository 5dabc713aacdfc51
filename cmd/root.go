package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/artifact"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
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
var cfg *contract.Config

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// creds holds the static API credentials from the environment.
var creds *contract.Credentials

// store is the artifact store rooted at the configured output directory.
var store *artifact.Store

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "rescuetime-reporter",
	Short:              "Aggregate daily activity signals into markdown reports and AI summaries.",
	Long:               `rescuetime-reporter renders time-tracking and commit-history data into per-day markdown artifacts, then summarizes each day with a language model.`,
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
		viper.SetConfigName(".rescuetime-reporter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("RESCUETIME_REPORTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Set defaults in Viper
	viper.SetDefault("output", ".")
	viper.SetDefault("prompt", contract.DefaultPromptPath)
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("page-size", contract.DefaultPageSize)
	viper.SetDefault("page-delay-ms", contract.DefaultPageDelayMS)
	viper.SetDefault("top-activities", contract.DefaultTopActivities)
	viper.SetDefault("top-per-hour", contract.DefaultTopPerHour)
	viper.SetDefault("context-window", contract.DefaultContextWindow)
	viper.SetDefault("model", contract.DefaultModel)
	viper.SetDefault("temperature", contract.DefaultTemperature)
	viper.SetDefault("color", "yes")
	viper.SetDefault("rescuetime-base-url", contract.DefaultRescueTimeBaseURL)
	viper.SetDefault("github-base-url", contract.DefaultGitHubBaseURL)
	viper.SetDefault("openai-base-url", contract.DefaultOpenAIBaseURL)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, _ []string) error {
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

	// 3. Run all validation and populate the global 'cfg' from 'input'.
	validated, err := input.ProcessAndValidate()
	if err != nil {
		return err
	}
	cfg = validated

	// 4. Load credentials. Missing values only matter to the commands that
	// need them, which check their own requirements.
	creds, err = contract.LoadCredentials()
	if err != nil {
		return fmt.Errorf("unable to load credentials: %w", err)
	}

	// 5. Initialize the artifact store with the validated output root.
	store = artifact.NewStore(cfg.OutputRoot)

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}

// Package cmd provides the command-line interface for driftlint.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --format, etc.) - highest priority
//	2. DRIFTLINT_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (DRIFTLINT_OUTPUT_FORMAT, etc.)
//	4. Configuration files (.driftlint.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "driftlint",
	Short: "Audit a source tree for duplicate/renamed file chaos",
	Long: `driftlint audits a source tree for the anti-pattern of duplicate or
renamed variants of a file (FooUpdated.js, foo.js next to Foo.js) created
instead of editing the original in place.

It applies naming and import-consistency checks and emits a severity-tagged
report, failing the process when error-severity issues are found.

Quick Start:
  driftlint audit                 Audit the current directory
  driftlint audit ./src           Audit a specific tree
  driftlint watch ./src           Re-run the audit on every change
  driftlint rules                 Show the active pattern tables`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .driftlint.yml, can also use DRIFTLINT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
//
// Loading priority (highest to lowest):
//  1. --config flag: explicitly specified config file path
//  2. DRIFTLINT_CONFIG_FILE environment variable
//  3. Default: .driftlint.yml in the current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("DRIFTLINT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".driftlint")
	}

	// Automatic env binding: DRIFTLINT_OUTPUT_FORMAT, DRIFTLINT_LOG_LEVEL, ...
	viper.SetEnvPrefix("DRIFTLINT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; everything has a default.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

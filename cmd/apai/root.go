package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/FabioGuin/open-apia/pkg/logging"
)

var (
	// Global flags
	logLevel  string
	logFormat string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "apai",
	Short: "APAI - AI-pipeline specification validator",
	Long: `APAI validates AI-pipeline specification documents written in YAML or JSON.

Specifications declare models, prompts, constraints, tasks, context, and
evaluation criteria for an AI pipeline. The validator checks each section
against the schema, resolves hierarchical composition through 'inherits'
declarations, and verifies cross-references between sections (task steps
referencing models, prompts, and MCP servers).

Commands:
  validate   Validate a specification (with inheritance)
  tree       Print the inheritance hierarchy of a specification
  merge      Merge specifications into one output document`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (log level debug)")
}

// newLogger builds the logger configured by the global flags.
func newLogger() (*slog.Logger, error) {
	level := logLevel
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: logFormat,
	})
}

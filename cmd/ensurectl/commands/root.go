// Package commands provides the command tree for ensurectl.
//
// COMMAND STRUCTURE:
//   - format: check a {N} format template against an argument list
//   - indices: list the distinct placeholder indices of a template
//
// Handlers are assigned by the main package so the tree stays free of
// business logic.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "ensurectl",
	Short: "CLI tool for checking ensure preconditions from the shell",
	Long: `ensurectl runs the ensure precondition checks from the command line.

It is useful for verifying format templates in configuration or message
catalogs before they reach code that substitutes arguments into them.`,
	SilenceUsage: true,
	Example: `  # Check a template against two arguments
  ensurectl format "copied {0} to {1}" src dst

  # List the placeholder indices of a template
  ensurectl indices "copied {0} to {1}, {0} unchanged"

  # Output in JSON format
  ensurectl -o json format "hello {0}" world`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(formatCmd)
	RootCmd.AddCommand(indicesCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, logLevelPtr *string, verbosePtr *bool,
	outputPtr *string, defaultLogLevel, defaultOutput string) {
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", defaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", defaultOutput,
		"Output format: table, json")
}

// Package commands provides format template command definitions for ensurectl.
//
// FORMAT COMMANDS:
//   - format: Validates that a template and its arguments agree
//   - indices: Shows the distinct placeholder indices of a template

package commands

import (
	"github.com/spf13/cobra"
)

// Format command (template/argument consistency)
var formatCmd = &cobra.Command{
	Use:   "format TEMPLATE [ARG...]",
	Short: "Check that a format template and its arguments agree",
	Long: `Check that the {N} placeholders of TEMPLATE form the run 0..K-1 and
that exactly K arguments follow it. A placeholder that appears more than
once counts once. A template without placeholders accepts no arguments.

No substitution is performed.`,
	Example: `  # Valid: one distinct placeholder, one argument
  ensurectl format "string with {0} parameter {0} in two places" x

  # Invalid: indices must start at zero
  ensurectl format "string with {1} parameter" x`,
	Args: cobra.MinimumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Indices command (placeholder index set)
var indicesCmd = &cobra.Command{
	Use:   "indices TEMPLATE",
	Short: "Show the distinct placeholder indices of a template",
	Example: `  # Prints 0 and 2
  ensurectl indices "{2} then {0} then {2}"`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// GetFormatCommands returns the format commands for handler assignment
func GetFormatCommands() (*cobra.Command, *cobra.Command) {
	return formatCmd, indicesCmd
}

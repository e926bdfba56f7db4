// Package handlers provides command handler functions for ensurectl.
//
// All handlers follow the same pattern:
//   - cobra.Command RunE function signature for CLI integration
//   - Logging setup and progress messages through the logging package
//   - Output rendering through the display package
//   - Contract violations returned as errors so the process exits non-zero
package handlers

// Package config provides default configuration values shared by ensure
// components. Keeping them in one place lets the CLI and its tests agree on
// the same defaults.
package config

const (
	// DefaultLogLevel is the default log level for CLI tools.
	// ERROR keeps normal runs quiet; violations are still reported.
	DefaultLogLevel = "ERROR"

	// DefaultOutput is the default output format for CLI results.
	DefaultOutput = "table"
)

// OutputFormats lists the supported output formats in display order.
var OutputFormats = []string{"table", "json"}

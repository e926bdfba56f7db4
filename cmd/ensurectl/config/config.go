// Package config provides configuration management for the ensurectl CLI.
package config

import (
	defaults "github.com/concave-dev/ensure/internal/config"
	"github.com/concave-dev/ensure/internal/version"
)

const (
	DefaultLogLevel = defaults.DefaultLogLevel
	DefaultOutput   = defaults.DefaultOutput
)

// Version returns the current ensurectl CLI version from the centralized version package
var Version = version.EnsurectlVersion

// Global holds the global CLI configuration
var Global struct {
	LogLevel string // Log level for CLI operations
	Verbose  bool   // Show verbose output
	Output   string // Output format: table, json
}

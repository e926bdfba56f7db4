// Package utils provides utility functions for the ensurectl CLI.
// This file contains logging setup utilities.
package utils

import (
	"os"

	"github.com/concave-dev/ensure/cmd/ensurectl/config"
	"github.com/concave-dev/ensure/internal/logging"
)

// SetupLogging configures CLI logging behavior based on environment and config.
// Enables debug output when DEBUG=true, otherwise applies --log-level.
func SetupLogging() {
	if os.Getenv("DEBUG") == "true" {
		// Show debug output - restore normal logging and enable DEBUG level
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	logging.SetLevel(config.Global.LogLevel)
}

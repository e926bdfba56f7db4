// Package config provides configuration management for the ensurectl CLI.
package config

import (
	"fmt"

	defaults "github.com/concave-dev/ensure/internal/config"
	"github.com/concave-dev/ensure/internal/logging"
	"github.com/concave-dev/ensure/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateLogLevel(); err != nil {
		return err
	}

	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	return nil
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Invalid log level '%s' - valid levels are: DEBUG, INFO, WARN, ERROR", Global.LogLevel)
		return fmt.Errorf("invalid log level - valid: DEBUG, INFO, WARN, ERROR")
	}
	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	if err := validate.ValidateOneOf(Global.Output, "output format", defaults.OutputFormats...); err != nil {
		logging.Error("%v", err)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}

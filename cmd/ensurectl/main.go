// Package main provides the entry point for the ensure CLI tool (ensurectl).
//
// INITIALIZATION FLOW:
// 1. Command structure setup
// 2. Global flag configuration
// 3. Handler assignment linking commands to the ensure checks
// 4. Flag validation in PersistentPreRunE
// 5. Command execution with a non-zero exit code on violation
package main

import (
	"os"

	"github.com/concave-dev/ensure/cmd/ensurectl/commands"
	"github.com/concave-dev/ensure/cmd/ensurectl/config"
	"github.com/concave-dev/ensure/cmd/ensurectl/handlers"
)

func init() {
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	commands.SetupCommands()
	commands.SetupGlobalFlags(rootCmd, &config.Global.LogLevel, &config.Global.Verbose,
		&config.Global.Output, config.DefaultLogLevel, config.DefaultOutput)

	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	formatCmd, indicesCmd := commands.GetFormatCommands()

	formatCmd.RunE = handlers.HandleFormat
	indicesCmd.RunE = handlers.HandleIndices
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package handlers

import (
	"strings"

	"github.com/concave-dev/ensure"
	"github.com/concave-dev/ensure/cmd/ensurectl/display"
	"github.com/concave-dev/ensure/cmd/ensurectl/utils"
	"github.com/concave-dev/ensure/internal/logging"
	"github.com/spf13/cobra"
)

// HandleFormat checks the template in args[0] against the remaining args.
func HandleFormat(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	template, rest := args[0], args[1:]
	if logging.IsDebugEnabled() {
		logging.Debug("Checking template %q against %d argument(s): %s", template, len(rest), strings.Join(rest, ","))
	}

	formatArgs := make([]any, len(rest))
	for i, a := range rest {
		formatArgs[i] = a
	}

	result := display.FormatResult{
		Template: template,
		Args:     rest,
		Valid:    true,
	}

	// Indices are informational; Format reports any problem with them
	if indices, err := ensure.PlaceholderIndices(template); err == nil {
		result.Indices = indices
	}

	err := ensure.Format(template, formatArgs...)
	if err != nil {
		result.Valid = false
		result.Error = err.Error()
	}

	display.DisplayFormatResult(result)
	if err != nil {
		return err
	}

	logging.Success("Template is consistent with %d argument(s)", len(rest))
	return nil
}

// HandleIndices shows the distinct placeholder indices of args[0].
func HandleIndices(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := ensure.NotNullOrEmpty(args[0], "template", "template must not be empty"); err != nil {
		return err
	}

	indices, err := ensure.PlaceholderIndices(args[0])
	if err != nil {
		return err
	}

	if n := len(indices); n > 0 && (indices[0] != 0 || indices[n-1] != n-1) {
		logging.Warn("Placeholder indices %v do not form a run from 0 to %d", indices, n-1)
	}

	display.DisplayIndices(args[0], indices)
	logging.Info("Found %d distinct placeholder(s)", len(indices))
	return nil
}

// Package display provides output formatting for ensurectl.
//
// Results are rendered either as an aligned table using text/tabwriter or as
// indented JSON, following the global --output flag. Verbose mode adds the
// derived placeholder indices and the raw argument list to table output.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/concave-dev/ensure/cmd/ensurectl/config"
	"github.com/concave-dev/ensure/internal/logging"
)

// Output is where results are written. Tests replace it with a buffer.
var Output io.Writer = os.Stdout

// FormatResult is the outcome of checking one template against its arguments.
type FormatResult struct {
	Template string   `json:"template"`
	Indices  []int    `json:"indices"`
	Args     []string `json:"args"`
	Valid    bool     `json:"valid"`
	Error    string   `json:"error,omitempty"`
}

// DisplayFormatResult renders a format check in table or JSON format.
func DisplayFormatResult(result FormatResult) {
	if config.Global.Output == "json" {
		encodeJSON(result)
		return
	}

	w := tabwriter.NewWriter(Output, 0, 0, 2, ' ', 0)
	defer w.Flush()

	status := "valid"
	if !result.Valid {
		status = "invalid"
	}

	if config.Global.Verbose {
		fmt.Fprintln(w, "TEMPLATE\tINDICES\tARGS\tSTATUS")
		fmt.Fprintf(w, "%q\t%s\t%s\t%s\n", result.Template, formatIndices(result.Indices),
			formatArgs(result.Args), status)
	} else {
		fmt.Fprintln(w, "TEMPLATE\tARGS\tSTATUS")
		fmt.Fprintf(w, "%q\t%d\t%s\n", result.Template, len(result.Args), status)
	}
}

// DisplayIndices renders the distinct placeholder indices of a template.
func DisplayIndices(template string, indices []int) {
	if config.Global.Output == "json" {
		encodeJSON(struct {
			Template string `json:"template"`
			Indices  []int  `json:"indices"`
			Count    int    `json:"count"`
		}{template, indices, len(indices)})
		return
	}

	if len(indices) == 0 {
		fmt.Fprintln(Output, "No placeholders found")
		return
	}

	w := tabwriter.NewWriter(Output, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "INDEX\tPLACEHOLDER")
	for _, idx := range indices {
		fmt.Fprintf(w, "%d\t{%d}\n", idx, idx)
	}
}

func encodeJSON(v any) {
	encoder := json.NewEncoder(Output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Fprintln(Output, "Error encoding JSON output")
	}
}

func formatIndices(indices []int) string {
	if len(indices) == 0 {
		return "-"
	}
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return strings.Join(parts, ",")
}

func formatArgs(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return strings.Join(args, ",")
}

package ensure

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// placeholderPattern matches positional placeholders such as {0} or {12}.
var placeholderPattern = regexp.MustCompile(`\{(\d+)\}`)

// PlaceholderIndices returns the distinct placeholder indices found in
// template, sorted ascending. A template without placeholders yields an empty
// slice. An index too large for an int is reported as KindInvalidState.
func PlaceholderIndices(template string) ([]int, error) {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	indices := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, invalidState("invalid placeholder index {%s}, format string was: %q", m[1], template)
		}
		indices = append(indices, n)
	}

	slices.Sort(indices)
	return slices.Compact(indices), nil
}

// Format checks that template and args are consistent with each other. It
// does not perform any substitution.
//
// The distinct placeholder indices of template must form the run 0..K-1 and
// exactly K arguments must be supplied. A placeholder repeated in the
// template counts once. A template without placeholders accepts no arguments.
// Argument values are never inspected.
func Format(template string, args ...any) error {
	if template == "" {
		return emptyArgument("format", "format must be supplied")
	}

	indices, err := PlaceholderIndices(template)
	if err != nil {
		return err
	}

	if len(indices) == 0 {
		if len(args) > 0 {
			return invalidState("the format string: %q contains no placeholders but %d argument(s) were passed: %s",
				template, len(args), joinArgs(args))
		}
		return nil
	}

	if indices[0] != 0 {
		return invalidState("placeholder indices must start at zero, got %v. Format string was: %q", indices, template)
	}

	want := len(indices)
	if indices[want-1] != want-1 {
		return invalidState("invalid placeholder indices %v, expected 0..%d. Format string was: %q", indices, want-1, template)
	}

	if len(args) == 0 {
		return invalidState("the format string: %q requires %d argument(s) but none were passed", template, want)
	}

	if len(args) != want {
		return invalidState("the format string: %q requires %d argument(s) but %d were passed", template, want, len(args))
	}

	return nil
}

// joinArgs renders args the way they appear in diagnostics: comma separated
// default formatting.
func joinArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, ",")
}

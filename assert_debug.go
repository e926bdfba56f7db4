//go:build debug

package ensure

import "fmt"

// assertf panics when cond is false. It guards preconditions of the checks
// themselves, such as an empty parameter name, which are bugs in the calling
// code rather than contract violations to report. Only built with -tags debug.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("ensure: assertion failed: "+format, args...))
	}
}

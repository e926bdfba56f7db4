// Package ensure provides precondition checks that callers run at the start
// of an operation to assert that their arguments honor basic contracts.
//
// CHECKS:
//   - NotNull: a required value is present
//   - NotNullOrEmpty, NotNullOrEmptySlice, NotNullOrEmptySeq: a string or sequence is non-empty
//   - Format: a {N} format template and its argument list agree
//   - Singleton: a type is constructed at most once per Registry
//
// Every check returns nil or an *Error describing the violation. Errors match
// ErrNullArgument, ErrEmptyArgument or ErrInvalidState with errors.Is. Callers
// that prefer to abort wrap a check in Must.
//
// Usage:
//
//	func NewServer(store *Store, name string) *Server {
//		ensure.Must(ensure.NotNull(store, "store", "NewServer"))
//		ensure.Must(ensure.NotNullOrEmpty(name, "name", ""))
//		...
//	}
package ensure

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/concave-dev/ensure/internal/validate"
)

// NotNull fails with KindNullArgument when value is absent. Untyped nil and
// typed nil pointers, maps, slices, channels, funcs and interfaces are all
// absent. callerName is optional diagnostic context naming the member that
// performed the check.
func NotNull(value any, parameterName, callerName string) error {
	assertf(parameterName != "", "parameter name cannot be empty")

	if !isNil(value) {
		return nil
	}

	var message string
	if callerName == "" {
		message = fmt.Sprintf("expected parameter %s to not be null", parameterName)
	} else {
		message = fmt.Sprintf("expected parameter %s in member %s to not be null", parameterName, callerName)
	}
	return nullArgument(parameterName, callerName, message)
}

// NotNullOrEmpty fails with KindEmptyArgument when value is the empty string.
// message replaces the generic diagnostic when non-empty.
func NotNullOrEmpty(value, parameterName, message string) error {
	assertf(parameterName != "", "parameter name cannot be empty")

	if err := validate.ValidateRequiredString(value, parameterName); err == nil {
		return nil
	}

	if message == "" {
		message = fmt.Sprintf("expected %s to not be null or empty", parameterName)
	}
	return emptyArgument(parameterName, message)
}

// NotNullOrEmptySlice fails with KindEmptyArgument when value has no elements.
// A nil slice is empty. message replaces the generated diagnostic when non-empty.
func NotNullOrEmptySlice[T any](value []T, parameterName, message string) error {
	assertf(parameterName != "", "parameter name cannot be empty")

	if err := validate.ValidateMinLength(value, 1, parameterName); err == nil {
		return nil
	}
	return emptySequence(parameterName, message)
}

// NotNullOrEmptySeq fails with KindEmptyArgument when value yields no
// elements. At most one element is pulled from the sequence. A nil sequence
// is empty.
func NotNullOrEmptySeq[T any](value iter.Seq[T], parameterName, message string) error {
	assertf(parameterName != "", "parameter name cannot be empty")

	if value != nil {
		for range value {
			return nil
		}
	}
	return emptySequence(parameterName, message)
}

func emptySequence(parameterName, message string) error {
	if message == "" {
		message = fmt.Sprintf("expected %s to not be empty", parameterName)
	}
	return emptyArgument(parameterName, message)
}

// DoesNotThrow runs operation and reports whether it completed without
// failing. The error returned by operation is passed through. A panic inside
// operation is not recovered.
func DoesNotThrow(operation func() error) (bool, error) {
	if operation == nil {
		return false, nullArgument("operation", "DoesNotThrow", "expected parameter operation in member DoesNotThrow to not be null")
	}
	if err := operation(); err != nil {
		return false, err
	}
	return true, nil
}

// Must panics with err when it is non-nil.
//
// Note: this is for programmer error detected at construction time, not for
// runtime conditions a caller is expected to handle.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// isNil reports whether v is nil or a nil value of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

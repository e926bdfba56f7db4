package ensure

import (
	"errors"
	"fmt"
)

// Kind classifies a violated contract.
type Kind int

const (
	// KindNullArgument means a required value was absent.
	KindNullArgument Kind = iota + 1
	// KindEmptyArgument means a required string or sequence was present but empty.
	KindEmptyArgument
	// KindInvalidState means a format/argument mismatch or a duplicate singleton.
	KindInvalidState
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNullArgument:
		return "null argument"
	case KindEmptyArgument:
		return "empty argument"
	case KindInvalidState:
		return "invalid state"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinel errors for errors.Is. Every *Error matches the sentinel of its Kind.
var (
	ErrNullArgument  = errors.New("null argument")
	ErrEmptyArgument = errors.New("empty argument")
	ErrInvalidState  = errors.New("invalid state")
)

// Error is returned by every check in this package. Param and Caller are set
// when the violated contract concerns a named parameter.
type Error struct {
	Kind    Kind
	Param   string
	Caller  string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (parameter %s): %s", e.Kind, e.Param, e.Message)
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindNullArgument:
		return target == ErrNullArgument
	case KindEmptyArgument:
		return target == ErrEmptyArgument
	case KindInvalidState:
		return target == ErrInvalidState
	}
	return false
}

func nullArgument(param, caller, message string) *Error {
	return &Error{Kind: KindNullArgument, Param: param, Caller: caller, Message: message}
}

func emptyArgument(param, message string) *Error {
	return &Error{Kind: KindEmptyArgument, Param: param, Message: message}
}

func invalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

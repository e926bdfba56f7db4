package ensure

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"
)

type widget struct{}

// TestNotNull tests absent and present values
func TestNotNull(t *testing.T) {
	var nilPtr *widget
	var nilMap map[string]int
	var nilSlice []int
	var nilFunc func()
	var nilChan chan int
	var nilErr error

	tests := []struct {
		name        string
		value       any
		expectError bool
	}{
		// Present values
		{name: "struct pointer", value: &widget{}},
		{name: "struct value", value: widget{}},
		{name: "zero int", value: 0},
		{name: "empty string", value: ""},
		{name: "empty non-nil slice", value: []int{}},

		// Absent values
		{name: "untyped nil", value: nil, expectError: true},
		{name: "typed nil pointer", value: nilPtr, expectError: true},
		{name: "nil map", value: nilMap, expectError: true},
		{name: "nil slice", value: nilSlice, expectError: true},
		{name: "nil func", value: nilFunc, expectError: true},
		{name: "nil chan", value: nilChan, expectError: true},
		{name: "nil error interface", value: nilErr, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotNull(tt.value, "value", "")

			if tt.expectError {
				if !errors.Is(err, ErrNullArgument) {
					t.Errorf("Expected ErrNullArgument, got: %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, but got: %v", err)
			}
		})
	}
}

// TestNotNullDiagnostics tests the parameter and caller carried by the error
func TestNotNullDiagnostics(t *testing.T) {
	err := NotNull(nil, "store", "NewServer")

	var ensureErr *Error
	if !errors.As(err, &ensureErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if ensureErr.Kind != KindNullArgument {
		t.Errorf("Expected KindNullArgument, got %s", ensureErr.Kind)
	}
	if ensureErr.Param != "store" || ensureErr.Caller != "NewServer" {
		t.Errorf("Unexpected param/caller: %s/%s", ensureErr.Param, ensureErr.Caller)
	}
	expected := "expected parameter store in member NewServer to not be null"
	if ensureErr.Message != expected {
		t.Errorf("Expected message '%s', got '%s'", expected, ensureErr.Message)
	}
	if !strings.Contains(err.Error(), "null argument (parameter store)") {
		t.Errorf("Unexpected error string: %s", err.Error())
	}

	err = NotNull(nil, "store", "")
	if !errors.As(err, &ensureErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if strings.Contains(ensureErr.Message, "member") {
		t.Errorf("Expected no member context without caller, got: %s", ensureErr.Message)
	}
}

// TestNotNullOrEmpty tests the string guard
func TestNotNullOrEmpty(t *testing.T) {
	if err := NotNullOrEmpty("value", "name", ""); err != nil {
		t.Errorf("Expected no error for non-empty string, got: %v", err)
	}

	err := NotNullOrEmpty("", "name", "")
	if !errors.Is(err, ErrEmptyArgument) {
		t.Fatalf("Expected ErrEmptyArgument, got: %v", err)
	}
	if !strings.Contains(err.Error(), "expected name to not be null or empty") {
		t.Errorf("Expected generic message, got: %s", err.Error())
	}

	err = NotNullOrEmpty("", "name", "a server needs a name")
	var ensureErr *Error
	if !errors.As(err, &ensureErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if ensureErr.Message != "a server needs a name" || ensureErr.Param != "name" {
		t.Errorf("Expected custom message and param, got: %+v", ensureErr)
	}
}

// TestNotNullOrEmptySlice tests the slice guard
func TestNotNullOrEmptySlice(t *testing.T) {
	tests := []struct {
		name        string
		value       []string
		expectError bool
	}{
		{name: "nil", value: nil, expectError: true},
		{name: "empty", value: []string{}, expectError: true},
		{name: "one element", value: []string{"a"}},
		{name: "empty element", value: []string{""}},
		{name: "many elements", value: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotNullOrEmptySlice(tt.value, "items", "")

			if tt.expectError {
				if !errors.Is(err, ErrEmptyArgument) {
					t.Fatalf("Expected ErrEmptyArgument, got: %v", err)
				}
				if !strings.Contains(err.Error(), "expected items to not be empty") {
					t.Errorf("Expected generated message, got: %s", err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error, but got: %v", err)
			}
		})
	}

	err := NotNullOrEmptySlice([]int{}, "ids", "at least one id is required")
	if err == nil || !strings.Contains(err.Error(), "at least one id is required") {
		t.Errorf("Expected custom message, got: %v", err)
	}
}

// TestNotNullOrEmptySeq tests the iterator guard
func TestNotNullOrEmptySeq(t *testing.T) {
	pulled := 0
	counting := func(yield func(int) bool) {
		for i := 0; i < 10; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	if err := NotNullOrEmptySeq(iter.Seq[int](counting), "numbers", ""); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if pulled != 1 {
		t.Errorf("Expected exactly one element to be pulled, got %d", pulled)
	}

	if err := NotNullOrEmptySeq(slices.Values([]string{"a"}), "names", ""); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	if err := NotNullOrEmptySeq(slices.Values([]string{}), "names", ""); !errors.Is(err, ErrEmptyArgument) {
		t.Errorf("Expected ErrEmptyArgument for empty sequence, got: %v", err)
	}

	var nilSeq iter.Seq[string]
	if err := NotNullOrEmptySeq(nilSeq, "names", ""); !errors.Is(err, ErrEmptyArgument) {
		t.Errorf("Expected ErrEmptyArgument for nil sequence, got: %v", err)
	}
}

// TestDoesNotThrow tests the probe helper
func TestDoesNotThrow(t *testing.T) {
	ok, err := DoesNotThrow(func() error {
		return Format("string with {0} parameter", 1)
	})
	if !ok || err != nil {
		t.Errorf("Expected (true, nil), got (%v, %v)", ok, err)
	}

	ok, err = DoesNotThrow(func() error {
		return Format("string with {1} parameter", 1)
	})
	if ok || !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected (false, ErrInvalidState), got (%v, %v)", ok, err)
	}

	ok, err = DoesNotThrow(nil)
	if ok || !errors.Is(err, ErrNullArgument) {
		t.Errorf("Expected (false, ErrNullArgument) for nil operation, got (%v, %v)", ok, err)
	}
}

// TestDoesNotThrowPropagatesPanic tests that panics are not swallowed
func TestDoesNotThrowPropagatesPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("Expected panic 'boom' to propagate, got: %v", r)
		}
	}()

	DoesNotThrow(func() error { panic("boom") })
	t.Error("Expected DoesNotThrow to panic")
}

// TestMust tests the fail-fast helper
func TestMust(t *testing.T) {
	Must(nil)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEmptyArgument) {
			t.Errorf("Expected panic with ErrEmptyArgument, got: %v", r)
		}
	}()

	Must(NotNullOrEmpty("", "name", ""))
	t.Error("Expected Must to panic")
}

// TestKindString tests kind names
func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindNullArgument:  "null argument",
		KindEmptyArgument: "empty argument",
		KindInvalidState:  "invalid state",
		Kind(42):          "kind(42)",
	}
	for kind, expected := range tests {
		if kind.String() != expected {
			t.Errorf("Expected '%s', got '%s'", expected, kind.String())
		}
	}
}

// TestErrorIsMatchesOnlyOwnKind tests sentinel matching
func TestErrorIsMatchesOnlyOwnKind(t *testing.T) {
	err := Format("")
	if errors.Is(err, ErrNullArgument) || errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected error to match only ErrEmptyArgument, got: %v", err)
	}
}

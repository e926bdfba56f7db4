package ensure

import (
	"reflect"
	"sync"

	"github.com/concave-dev/ensure/internal/logging"
)

// Registry records which types have been constructed. A type is identified by
// its reflect.Type, so *T and T are distinct entries. Entries are never
// removed; a Registry lives as long as the component that owns it.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	types map[reflect.Type]struct{}
}

// NewRegistry creates an empty Registry. Applications that want explicit
// ownership create one at their composition root and pass it to constructors.
func NewRegistry() *Registry {
	return &Registry{types: make(map[reflect.Type]struct{})}
}

// Default is the process-lifetime Registry used by the package-level
// Singleton function. It is created at package initialization and never reset.
var Default = NewRegistry()

// Singleton registers the dynamic type of instance in the Default registry.
func Singleton(instance any) error {
	return Default.Singleton(instance)
}

// Singleton registers the dynamic type of instance. It fails with
// KindInvalidState when the type is already registered, and with
// KindNullArgument when instance is untyped nil. Call it once from the
// construction path of the type being guarded.
func (r *Registry) Singleton(instance any) error {
	if instance == nil {
		return nullArgument("instance", "Singleton", "expected parameter instance in member Singleton to not be null")
	}
	t := reflect.TypeOf(instance)

	r.mu.Lock()
	_, exists := r.types[t]
	if !exists {
		r.types[t] = struct{}{}
	}
	r.mu.Unlock()

	if exists {
		return invalidState("expected %s to be singleton", t)
	}

	logging.Debug("Registered singleton %s", t)
	return nil
}

// Contains reports whether the dynamic type of instance has been registered.
func (r *Registry) Contains(instance any) bool {
	if instance == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.types[reflect.TypeOf(instance)]
	return ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.types)
}

package autoinject

import (
	"errors"
	"time"

	"github.com/BrunoMoraes-Z/autoinject/internal/reflect"
	"github.com/BrunoMoraes-Z/autoinject/internal/registry"
)

// Lookup returns the value registered for T. The four stores are consulted
// in precedence order: instances first, then factories, then memoized
// singletons, then lazy factories; the first store holding T decides the
// outcome. When build is true and no store holds T, a T is constructed
// reflectively (see Construct) and registered as an instance.
//
// Lookup never fails loudly: a miss, a failing factory and a failed
// construction all report false. Use Resolve to tell them apart.
func Lookup[T any](inj *Injector, build bool) (T, bool) {
	var zero T
	token := reflect.TypeOf[T]()
	start := time.Now()

	value, kind, err := inj.registry.Resolve(token, build)
	inj.notifyLookup(reflect.TypeName(token), kind, start, err)
	if err != nil {
		return zero, false
	}

	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Resolve returns the value registered for T, constructing one when no
// registration exists. A plain miss yields a NOT_FOUND error naming T; a
// failing factory yields CONSTRUCTION_FAILED carrying the cause; a cyclic
// construction yields CYCLIC_DEPENDENCY with the dependency chain.
func Resolve[T any](inj *Injector) (T, error) {
	var zero T
	token := reflect.TypeOf[T]()
	typeName := reflect.TypeName(token)
	start := time.Now()

	value, kind, err := inj.registry.Resolve(token, true)
	inj.notifyLookup(typeName, kind, start, err)
	if err != nil {
		var (
			cycle    *registry.CycleError
			fieldErr *registry.FieldError
		)
		switch {
		case errors.As(err, &cycle):
			return zero, errCycle(typeName, cycle.Chain)
		case errors.As(err, &fieldErr):
			// Construction of T started and broke on a dependency. The
			// sentinels inside describe the dependency, not T.
			return zero, errConstructionFailed(typeName, err)
		case errors.Is(err, registry.ErrNotFound), errors.Is(err, registry.ErrNotConstructible):
			return zero, errNotFound(typeName)
		default:
			return zero, errConstructionFailed(typeName, err)
		}
	}

	typed, ok := value.(T)
	if !ok {
		return zero, errNotFound(typeName)
	}
	return typed, nil
}

// MustResolve is Resolve, panicking on failure.
func MustResolve[T any](inj *Injector) T {
	value, err := Resolve[T](inj)
	if err != nil {
		panic(err)
	}
	return value
}

// Contains reports whether any store holds a registration for T.
func Contains[T any](inj *Injector) bool {
	return inj.registry.Has(reflect.TypeOf[T]())
}

// IsSingleton reports whether T is registered with singleton semantics,
// eager or lazy, materialized or not. A factory registered for the same T
// does not change the answer, even though it shadows the singleton during
// lookups.
func IsSingleton[T any](inj *Injector) bool {
	return inj.registry.HasSingleton(reflect.TypeOf[T]())
}

// Remove drops every registration for T across all four stores, atomically
// with respect to concurrent lookups.
func Remove[T any](inj *Injector) {
	inj.registry.Remove(reflect.TypeOf[T]())
}

// DisposeSingleton drops the memoized singleton for T and nothing else. A
// lazy factory registered for T materializes a fresh singleton on the next
// lookup; an eager singleton with no lazy factory behind it is simply gone.
func DisposeSingleton[T any](inj *Injector) {
	inj.registry.DisposeSingleton(reflect.TypeOf[T]())
}

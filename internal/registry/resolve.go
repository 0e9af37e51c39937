package registry

import (
	"fmt"
	"reflect"
)

// Resolve returns the value held for t, consulting the stores in precedence
// order: instances, then factories, then memoized singletons, then lazy
// factories. The first store holding the token decides the outcome; a
// factory registration shadows a singleton for the same token.
//
// When build is true and no store holds the token, the value is constructed
// reflectively as a last resort and registered as an instance of t.
//
// The returned Kind names the tier that satisfied the lookup; on failure it
// names the tier that produced the error. Factories run outside the registry
// lock and are free to re-enter the registry.
func (r *Registry) Resolve(t reflect.Type, build bool) (any, Kind, error) {
	return r.resolve(t, build, nil)
}

func (r *Registry) resolve(t reflect.Type, build bool, stack []reflect.Type) (any, Kind, error) {
	r.mu.RLock()
	if v, ok := r.instances[t]; ok {
		r.mu.RUnlock()
		return v, KindInstance, nil
	}
	factory, hasFactory := r.factories[t]
	var (
		singleton    any
		hasSingleton bool
		lazy         *lazyEntry
	)
	if !hasFactory {
		singleton, hasSingleton = r.singletons[t]
		if !hasSingleton {
			lazy = r.lazies[t]
		}
	}
	r.mu.RUnlock()

	switch {
	case hasFactory:
		v, err := factory()
		if err != nil {
			return nil, KindFactory, fmt.Errorf("factory for %s: %w", t, err)
		}
		return v, KindFactory, nil

	case hasSingleton:
		return singleton, KindSingleton, nil

	case lazy != nil:
		v, ok, err := r.materialize(t, lazy)
		if err != nil {
			return nil, KindLazy, err
		}
		if ok {
			return v, KindLazy, nil
		}
		// The registration was removed while we waited on the entry; treat
		// the token as absent.
	}

	if !build {
		return nil, KindConstructed, fmt.Errorf("%s: %w", t, ErrNotFound)
	}

	v, err := r.construct(t, stack, true)
	if err != nil {
		return nil, KindConstructed, err
	}
	return v, KindConstructed, nil
}

// materialize runs a lazy factory and promotes the result into the singleton
// store. The entry mutex makes the promotion at-most-once under concurrent
// first lookups: the winner runs the factory, losers find the singleton on
// recheck. A factory error promotes nothing, so the next lookup retries.
//
// ok is false when the registration was removed while waiting on the entry.
func (r *Registry) materialize(t reflect.Type, entry *lazyEntry) (any, bool, error) {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	r.mu.RLock()
	v, done := r.singletons[t]
	current := r.lazies[t]
	r.mu.RUnlock()

	if done {
		return v, true, nil
	}
	if current != entry {
		return nil, false, nil
	}

	v, err := entry.factory()
	if err != nil {
		r.logger.Warn("lazy singleton factory failed", "type", t.String(), "error", err)
		return nil, false, fmt.Errorf("factory for %s: %w", t, err)
	}

	r.mu.Lock()
	// Skip the promotion if the registration was removed while the factory
	// ran; storing would resurrect a removed token.
	if r.lazies[t] == entry {
		r.singletons[t] = v
	}
	r.mu.Unlock()

	r.logger.Debug("materialized lazy singleton", "type", t.String())
	return v, true, nil
}

package registry

import (
	"log/slog"
	"maps"
	"reflect"
	"sync"
)

// Config carries the settings the public package threads into a registry.
type Config struct {
	Logger *slog.Logger
}

// Registry is the four-store engine behind an injector. Each store maps a
// type token to one way of obtaining a value; Resolve consults the stores in
// a fixed precedence order.
//
// One mutex guards all four maps so that Remove and Merge are atomic with
// respect to lookups. Factories never run while it is held.
type Registry struct {
	mu         sync.RWMutex
	logger     *slog.Logger
	instances  map[reflect.Type]any
	factories  map[reflect.Type]func() (any, error)
	singletons map[reflect.Type]any
	lazies     map[reflect.Type]*lazyEntry
}

// lazyEntry defers a singleton factory until first lookup. The entry mutex
// serializes materialization so the factory runs at most once per successful
// materialization; a failed run leaves no trace and is retried on the next
// lookup.
type lazyEntry struct {
	mu      sync.Mutex
	factory func() (any, error)
}

func New(cfg *Config) *Registry {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &Registry{
		logger:     logger,
		instances:  make(map[reflect.Type]any),
		factories:  make(map[reflect.Type]func() (any, error)),
		singletons: make(map[reflect.Type]any),
		lazies:     make(map[reflect.Type]*lazyEntry),
	}
}

func (r *Registry) SetInstance(t reflect.Type, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances[t] = value
	r.logger.Debug("registered instance", "type", t.String())
}

func (r *Registry) SetFactory(t reflect.Type, factory func() (any, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[t] = factory
	r.logger.Debug("registered factory", "type", t.String())
}

// SetSingleton stores an already materialized singleton. The caller runs the
// factory beforehand so it never executes under the registry lock.
func (r *Registry) SetSingleton(t reflect.Type, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.singletons[t] = value
	r.logger.Debug("registered singleton", "type", t.String())
}

func (r *Registry) SetLazy(t reflect.Type, factory func() (any, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lazies[t] = &lazyEntry{factory: factory}
	r.logger.Debug("registered lazy singleton", "type", t.String())
}

// Has reports whether any store holds the token.
func (r *Registry) Has(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.instances[t]; ok {
		return true
	}
	if _, ok := r.factories[t]; ok {
		return true
	}
	if _, ok := r.singletons[t]; ok {
		return true
	}
	_, ok := r.lazies[t]
	return ok
}

// HasSingleton reports whether the token is registered with singleton
// semantics, materialized or not.
func (r *Registry) HasSingleton(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.singletons[t]; ok {
		return true
	}
	_, ok := r.lazies[t]
	return ok
}

// Remove drops the token from every store in one critical section, so no
// concurrent lookup observes a partial removal.
func (r *Registry) Remove(t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.instances, t)
	delete(r.factories, t)
	delete(r.singletons, t)
	delete(r.lazies, t)
	r.logger.Debug("removed registrations", "type", t.String())
}

// DisposeSingleton drops only the materialized singleton. A lazy factory
// registered for the token materializes again on the next lookup.
func (r *Registry) DisposeSingleton(t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.singletons, t)
	r.logger.Debug("disposed singleton", "type", t.String())
}

// Merge copies every registration from other into r, store by store. On
// collision the entry from other wins. Lazy factories are re-wrapped in
// fresh entries so the two registries never share materialization state.
func (r *Registry) Merge(other *Registry) {
	if other == nil || other == r {
		return
	}

	other.mu.RLock()
	instances := maps.Clone(other.instances)
	factories := maps.Clone(other.factories)
	singletons := maps.Clone(other.singletons)
	lazyFactories := make(map[reflect.Type]func() (any, error), len(other.lazies))
	for t, entry := range other.lazies {
		lazyFactories[t] = entry.factory
	}
	other.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	maps.Copy(r.instances, instances)
	maps.Copy(r.factories, factories)
	maps.Copy(r.singletons, singletons)
	for t, factory := range lazyFactories {
		r.lazies[t] = &lazyEntry{factory: factory}
	}

	r.logger.Debug(
		"merged registry",
		"tokens", len(instances)+len(factories)+len(singletons)+len(lazyFactories),
	)
}

// Reset clears every store.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances = make(map[reflect.Type]any)
	r.factories = make(map[reflect.Type]func() (any, error))
	r.singletons = make(map[reflect.Type]any)
	r.lazies = make(map[reflect.Type]*lazyEntry)
	r.logger.Debug("reset registry")
}

// Size returns the number of distinct tokens across all stores.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[reflect.Type]struct{}, len(r.instances)+len(r.factories)+len(r.singletons)+len(r.lazies))
	for t := range r.instances {
		seen[t] = struct{}{}
	}
	for t := range r.factories {
		seen[t] = struct{}{}
	}
	for t := range r.singletons {
		seen[t] = struct{}{}
	}
	for t := range r.lazies {
		seen[t] = struct{}{}
	}
	return len(seen)
}

// Entry reports which stores hold a token.
type Entry struct {
	Type      reflect.Type
	Instance  bool
	Factory   bool
	Singleton bool
	Lazy      bool
}

// Entries returns one Entry per distinct token, in no particular order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byType := make(map[reflect.Type]*Entry)
	entryFor := func(t reflect.Type) *Entry {
		e, ok := byType[t]
		if !ok {
			e = &Entry{Type: t}
			byType[t] = e
		}
		return e
	}

	for t := range r.instances {
		entryFor(t).Instance = true
	}
	for t := range r.factories {
		entryFor(t).Factory = true
	}
	for t := range r.singletons {
		entryFor(t).Singleton = true
	}
	for t := range r.lazies {
		entryFor(t).Lazy = true
	}

	entries := make([]Entry, 0, len(byType))
	for _, e := range byType {
		entries = append(entries, *e)
	}
	return entries
}

// Package autoinject provides a type-indexed runtime service registry for
// Go 1.25+.
//
// An Injector maps types to values through four registration kinds with a
// fixed lookup precedence: pre-built instances win over factories, factories
// win over memoized singletons, and singletons win over not-yet-materialized
// lazy factories. Types with no registration at all can be constructed
// reflectively from struct tags.
//
// # Quick Start
//
// Create an injector and register what your application needs:
//
//	inj := autoinject.New()
//
//	autoinject.MustRegisterSingleton(inj, func() (*Config, error) {
//	    return LoadConfig()
//	})
//
//	autoinject.RegisterLazySingleton(inj, func() (*Database, error) {
//	    cfg := autoinject.MustResolve[*Config](inj)
//	    return OpenDatabase(cfg.DSN)
//	})
//
//	db, err := autoinject.Resolve[*Database](inj)
//
// # Registration Kinds
//
// Each kind answers lookups differently:
//
//	autoinject.RegisterInstance(inj, value)          // pre-built value, keyed by its dynamic type
//	autoinject.RegisterInstanceAs[Iface](inj, value) // pre-built value, keyed by Iface
//	autoinject.RegisterFactory(inj, fn)              // fn runs on every lookup
//	autoinject.RegisterSingleton(inj, fn)            // fn runs now, result memoized
//	autoinject.RegisterLazySingleton(inj, fn)        // fn runs on first lookup, result memoized
//
// A type may be registered under several kinds at once; lookups take the
// first kind in precedence order. Registering the same kind twice replaces
// the earlier entry.
//
// # Lookup and Resolution
//
//	value, ok := autoinject.Lookup[*Service](inj, false) // miss reports ok=false
//	value, err := autoinject.Resolve[*Service](inj)      // miss constructs or errors
//	value := autoinject.MustResolve[*Service](inj)       // panics on error
//
// Lookup's build flag enables reflective construction on a miss; Resolve
// always builds. Errors carry an ErrorCode, inspectable with IsNotFound,
// IsConstructionFailed, IsCycle and IsNilInstance.
//
// # Auto-Construction
//
// A struct type with tagged fields can be built without a registration.
// Required fields fail construction when unresolvable; optional fields are
// left zero:
//
//	type Server struct {
//	    DB    *Database `autoinject:""`
//	    Cache *Cache    `autoinject:"optional"`
//	}
//
//	srv, err := autoinject.Resolve[*Server](inj)
//
// Constructed values are registered as instances, so the next lookup returns
// the same value. Construct builds without registering the top-level result:
//
//	srv, err := autoinject.Construct[*Server](inj)
//
// # Test Doubles
//
// ReplaceInstance shadows every other registration for a type, which makes
// swapping a dependency under test a one-liner:
//
//	autoinject.ReplaceInstance(inj, &fakeMailer{})
//
// The autoinjecttest subpackage wraps this with test-scoped cleanup.
//
// # Interface Binding
//
// Bind routes lookups of an interface through the registration of a concrete
// implementation:
//
//	autoinject.Bind[UserStore, *PostgresUserStore](inj)
//
// # Modules
//
// Group registrations into reusable batches:
//
//	var storage = autoinject.NewModule("storage")
//	autoinject.ModuleLazy(storage, openDatabase)
//	autoinject.ModuleBind[UserStore, *PostgresUserStore](storage)
//
//	var app = autoinject.NewModule("app").Include(storage)
//
//	if err := inj.Apply(app); err != nil { ... }
//
// # Introspection
//
// Snapshot reports every registered token with its kinds and whether a
// concrete value currently exists:
//
//	inj.PrintSnapshot()
//	regs := inj.Snapshot()
//
// # Observability
//
// Observers see every registration and every lookup with its outcome:
//
//	inj := autoinject.New(
//	    autoinject.WithLogger(logger),
//	    autoinject.WithLookupObserver(func(typeName string, kind autoinject.Kind, d time.Duration, err error) {
//	        metrics.RecordLookup(typeName, kind, d, err)
//	    }),
//	    autoinject.WithRegisterObserver(func(typeName string, kind autoinject.Kind) {
//	        metrics.RecordRegistration(typeName, kind)
//	    }),
//	)
//
// The otelinject subpackage provides ready-made OpenTelemetry hooks.
//
// # Merging
//
// Merge copies every registration from another injector, replacing entries
// for types both hold:
//
//	base.Merge(overrides)
//
// Reset clears an injector completely; Remove and DisposeSingleton drop
// single types.
package autoinject

package autoinject

import (
	"github.com/BrunoMoraes-Z/autoinject/internal/reflect"
)

// Module is a reusable batch of registrations. A module is built once,
// possibly composed from submodules, and applied to any number of injectors;
// nothing touches an injector until Apply.
type Module struct {
	name       string
	entries    []func(inj *Injector) error
	submodules []*Module
}

func NewModule(name string) *Module {
	return &Module{name: name}
}

func (m *Module) Name() string {
	return m.name
}

// Instance defers a RegisterInstance of value. A nil value fails the
// application instead of panicking.
func (m *Module) Instance(value any) *Module {
	m.entries = append(
		m.entries, func(inj *Injector) error {
			if reflect.IsNil(value) {
				return errNilInstance()
			}
			RegisterInstance(inj, value)
			return nil
		},
	)
	return m
}

// Include nests a submodule. Its registrations are applied before m's own.
func (m *Module) Include(sub *Module) *Module {
	m.submodules = append(m.submodules, sub)
	return m
}

func (m *Module) apply(inj *Injector) error {
	for _, sub := range m.submodules {
		if err := sub.apply(inj); err != nil {
			return err
		}
	}

	for _, entry := range m.entries {
		if err := entry(inj); err != nil {
			return err
		}
	}

	return nil
}

// Apply runs every module against the injector, submodules first, entries in
// the order they were added. The first failure stops the application and is
// returned wrapped with the failing module's name; registrations made before
// the failure stay in place.
func (inj *Injector) Apply(modules ...*Module) error {
	for _, m := range modules {
		if err := m.apply(inj); err != nil {
			return errModuleApplyFailed(m.name, err)
		}
	}
	return nil
}

// ModuleInstanceAs defers a RegisterInstanceAs of value under the token of T.
func ModuleInstanceAs[T any](m *Module, value T) *Module {
	m.entries = append(
		m.entries, func(inj *Injector) error {
			if reflect.IsNil(value) {
				return errNilInstance()
			}
			RegisterInstanceAs(inj, value)
			return nil
		},
	)
	return m
}

// ModuleFactory defers a RegisterFactory of fn for T.
func ModuleFactory[T any](m *Module, fn Factory[T]) *Module {
	m.entries = append(
		m.entries, func(inj *Injector) error {
			RegisterFactory(inj, fn)
			return nil
		},
	)
	return m
}

// ModuleSingleton defers a RegisterSingleton of fn for T. The factory runs
// at Apply time, and its failure fails the application.
func ModuleSingleton[T any](m *Module, fn Factory[T]) *Module {
	m.entries = append(
		m.entries, func(inj *Injector) error {
			return RegisterSingleton(inj, fn)
		},
	)
	return m
}

// ModuleLazy defers a RegisterLazySingleton of fn for T.
func ModuleLazy[T any](m *Module, fn Factory[T]) *Module {
	m.entries = append(
		m.entries, func(inj *Injector) error {
			RegisterLazySingleton(inj, fn)
			return nil
		},
	)
	return m
}

// ModuleBind defers a Bind of I to Impl.
func ModuleBind[I, Impl any](m *Module) *Module {
	m.entries = append(
		m.entries, func(inj *Injector) error {
			Bind[I, Impl](inj)
			return nil
		},
	)
	return m
}

func errModuleApplyFailed(moduleName string, cause error) *Error {
	return newError(
		ErrCodeModuleApplyFailed,
		"failed to apply module "+moduleName,
		cause,
	)
}

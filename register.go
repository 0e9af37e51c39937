package autoinject

import (
	"github.com/BrunoMoraes-Z/autoinject/internal/reflect"
)

// Factory produces a value of type T. A factory registered on a shared
// injector must be safe for concurrent use.
type Factory[T any] func() (T, error)

// RegisterFactory registers fn to run on every lookup of T. Results are
// never memoized; each lookup gets a fresh value.
func RegisterFactory[T any](inj *Injector, fn Factory[T]) {
	token := reflect.TypeOf[T]()
	inj.registry.SetFactory(token, wrapFactory(fn))
	inj.notifyRegister(reflect.TypeName(token), KindFactory)
}

// RegisterSingleton runs fn immediately and memoizes the result for T. When
// fn fails the error is returned and nothing is registered.
func RegisterSingleton[T any](inj *Injector, fn Factory[T]) error {
	token := reflect.TypeOf[T]()

	value, err := fn()
	if err != nil {
		return errConstructionFailed(reflect.TypeName(token), err)
	}

	inj.registry.SetSingleton(token, value)
	inj.notifyRegister(reflect.TypeName(token), KindSingleton)
	return nil
}

// MustRegisterSingleton is RegisterSingleton, panicking when the factory
// fails.
func MustRegisterSingleton[T any](inj *Injector, fn Factory[T]) {
	if err := RegisterSingleton(inj, fn); err != nil {
		panic(err)
	}
}

// RegisterLazySingleton registers fn to run on the first lookup of T. The
// result is memoized like an eager singleton; a failed run memoizes nothing
// and the next lookup retries.
func RegisterLazySingleton[T any](inj *Injector, fn Factory[T]) {
	token := reflect.TypeOf[T]()
	inj.registry.SetLazy(token, wrapFactory(fn))
	inj.notifyRegister(reflect.TypeName(token), KindLazy)
}

// RegisterInstance registers a pre-built value under its dynamic type: a
// value of type *Database is looked up as *Database. Registering nil panics,
// since no type can be derived from it. To register a value under an
// interface type it implements, use RegisterInstanceAs.
func RegisterInstance(inj *Injector, value any) {
	if reflect.IsNil(value) {
		panic(errNilInstance())
	}

	token := reflect.TypeOfValue(value)
	inj.registry.SetInstance(token, value)
	inj.notifyRegister(reflect.TypeName(token), KindInstance)
}

func wrapFactory[T any](fn Factory[T]) func() (any, error) {
	return func() (any, error) {
		value, err := fn()
		if err != nil {
			return nil, err
		}
		return value, nil
	}
}

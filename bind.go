package autoinject

import (
	"github.com/BrunoMoraes-Z/autoinject/internal/reflect"
)

// RegisterInstanceAs registers value under the token of T instead of its
// dynamic type. This is the way to make a concrete value resolvable through
// an interface it implements:
//
//	autoinject.RegisterInstanceAs[Store](inj, &sqlStore{})
//
// Registering a nil value (or a typed nil pointer) panics.
func RegisterInstanceAs[T any](inj *Injector, value T) {
	if reflect.IsNil(value) {
		panic(errNilInstance())
	}

	token := reflect.TypeOf[T]()
	inj.registry.SetInstance(token, value)
	inj.notifyRegister(reflect.TypeName(token), KindInstance)
}

// Bind makes lookups of the interface I resolve through the registration of
// Impl. It installs a factory for I, so the binding follows whatever is
// currently registered for Impl: replace the implementation and the next
// lookup of I sees the replacement.
//
// Resolution of I fails when Impl cannot be resolved, or when the resolved
// value does not satisfy I.
func Bind[I, Impl any](inj *Injector) {
	interfaceToken := reflect.TypeOf[I]()
	implToken := reflect.TypeOf[Impl]()

	RegisterFactory(inj, func() (I, error) {
		value, err := Resolve[Impl](inj)
		if err != nil {
			var zero I
			return zero, err
		}

		typed, ok := any(value).(I)
		if !ok {
			var zero I
			return zero, errBindFailed(reflect.TypeName(interfaceToken), reflect.TypeName(implToken))
		}
		return typed, nil
	})
}

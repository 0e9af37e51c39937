package autoinject

// ReplaceInstance swaps a pre-built value in under its dynamic type,
// overwriting any previous instance of that type. Because lookups prefer the
// instance store over every other store, the replacement takes effect
// immediately, shadowing factories and singletons registered for the same
// type. It exists for installing test doubles; prefer the Register functions
// in production wiring.
//
// Registering nil panics.
func ReplaceInstance(inj *Injector, value any) {
	RegisterInstance(inj, value)
}

// ReplaceInstanceAs is ReplaceInstance with the type chosen by the caller
// instead of derived from the value, so doubles can be installed for
// interface types.
func ReplaceInstanceAs[T any](inj *Injector, value T) {
	RegisterInstanceAs(inj, value)
}

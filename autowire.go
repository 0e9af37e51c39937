package autoinject

import (
	"errors"

	"github.com/BrunoMoraes-Z/autoinject/internal/reflect"
	"github.com/BrunoMoraes-Z/autoinject/internal/registry"
)

// TagKey is the struct tag consulted during reflective construction:
//
//	type Server struct {
//		DB    *Database `autoinject:""`
//		Cache *Cache    `autoinject:"optional"`
//	}
//
// A required field fails the construction when its type cannot be resolved;
// an optional field is left zero instead. Untagged fields are never touched.
const TagKey = reflect.TagKey

// Construct builds a T by resolving every tagged field, without registering
// the result. T must be a struct or a pointer to one. Dependencies that had
// to be constructed along the way are registered as instances, exactly as
// they would be during a building lookup.
func Construct[T any](inj *Injector) (T, error) {
	var zero T
	token := reflect.TypeOf[T]()
	typeName := reflect.TypeName(token)

	value, err := inj.registry.Construct(token)
	if err != nil {
		var cycle *registry.CycleError
		if errors.As(err, &cycle) {
			return zero, errCycle(typeName, cycle.Chain)
		}
		return zero, errConstructionFailed(typeName, err)
	}

	typed, ok := value.(T)
	if !ok {
		return zero, errConstructionFailed(typeName, nil)
	}
	return typed, nil
}

// MustConstruct is Construct, panicking on failure.
func MustConstruct[T any](inj *Injector) T {
	value, err := Construct[T](inj)
	if err != nil {
		panic(err)
	}
	return value
}

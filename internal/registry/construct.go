package registry

import (
	"fmt"
	reflectPkg "reflect"

	"github.com/BrunoMoraes-Z/autoinject/internal/reflect"
)

// Construct builds a value of type t by filling its tagged fields with
// recursively resolved dependencies, without registering the result.
// Dependencies it constructs along the way are registered as usual.
func (r *Registry) Construct(t reflectPkg.Type) (any, error) {
	return r.construct(t, nil, false)
}

// construct reflectively builds a value of type t. Only struct and
// pointer-to-struct types are constructible; every exported field tagged
// autoinject is resolved with build semantics, so missing dependencies are
// themselves constructed when possible. A required field that cannot be
// resolved fails the whole construction and nothing is stored for t.
//
// stack holds the tokens currently under construction; revisiting one is a
// cycle. When store is true the finished value lands in the instance store,
// so later lookups of t hit the first tier.
func (r *Registry) construct(t reflectPkg.Type, stack []reflectPkg.Type, store bool) (any, error) {
	for _, pending := range stack {
		if pending == t {
			return nil, cycleError(append(stack, t))
		}
	}

	base := t
	isPtr := t.Kind() == reflectPkg.Ptr
	if isPtr {
		base = t.Elem()
	}

	if base.Kind() != reflectPkg.Struct {
		return nil, fmt.Errorf("%s: %w", t, ErrNotConstructible)
	}

	fields, err := reflect.Fields(base)
	if err != nil {
		return nil, fmt.Errorf("constructing %s: %w", t, err)
	}

	stack = append(stack, t)
	structVal := reflectPkg.New(base).Elem()

	for _, field := range fields {
		value, _, err := r.resolve(field.Type, true, stack)
		if err != nil {
			if field.Optional {
				continue
			}
			return nil, &FieldError{Struct: t.String(), Field: field.Name, Err: err}
		}
		if value == nil {
			if field.Optional {
				continue
			}
			return nil, fmt.Errorf("constructing %s: field %s resolved to nil", t, field.Name)
		}

		fieldVal := structVal.Field(field.Index)
		valueVal := reflectPkg.ValueOf(value)
		if !valueVal.Type().AssignableTo(fieldVal.Type()) {
			return nil, fmt.Errorf(
				"constructing %s: cannot assign %s to field %s of type %s",
				t, valueVal.Type(), field.Name, fieldVal.Type(),
			)
		}
		fieldVal.Set(valueVal)
	}

	var result any
	if isPtr {
		ptr := reflectPkg.New(base)
		ptr.Elem().Set(structVal)
		result = ptr.Interface()
	} else {
		result = structVal.Interface()
	}

	if store {
		r.mu.Lock()
		r.instances[t] = result
		r.mu.Unlock()
		r.logger.Debug("constructed instance", "type", t.String())
	}

	return result, nil
}

func cycleError(stack []reflectPkg.Type) *CycleError {
	chain := make([]string, len(stack))
	for i, t := range stack {
		chain[i] = t.String()
	}
	return &CycleError{Chain: chain}
}

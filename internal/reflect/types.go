package reflect

import (
	"fmt"
	"reflect"
)

// TagKey is the struct tag consulted when the injector constructs a value
// reflectively.
const TagKey = "autoinject"

// TypeOf returns the reflect.Type for T. Unlike reflect.TypeOf on a zero
// value it also works when T is an interface type.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeOfValue returns the dynamic type of v, or nil when v is nil.
func TypeOfValue(v any) reflect.Type {
	if v == nil {
		return nil
	}
	return reflect.TypeOf(v)
}

// TypeName returns the display name used for t in errors and logs.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// IsNil reports whether v is nil, including a typed nil carried inside an
// interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// Field describes one injectable field of a struct type.
type Field struct {
	Name     string
	Index    int
	Type     reflect.Type
	Optional bool
}

// Fields returns the injectable fields of the struct type t: the exported
// fields carrying the autoinject tag. A tagged unexported field is an error,
// as is any tag value other than "" or "optional".
func Fields(t reflect.Type) ([]Field, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a struct type, got %s", t.Kind())
	}

	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		tag, tagged := sf.Tag.Lookup(TagKey)
		if !tagged {
			continue
		}

		if sf.PkgPath != "" {
			return nil, fmt.Errorf("field %s.%s is unexported and cannot be injected", t.Name(), sf.Name)
		}

		var optional bool
		switch tag {
		case "":
		case "optional":
			optional = true
		default:
			return nil, fmt.Errorf("field %s.%s has unknown %s tag value %q", t.Name(), sf.Name, TagKey, tag)
		}

		fields = append(
			fields, Field{
				Name:     sf.Name,
				Index:    i,
				Type:     sf.Type,
				Optional: optional,
			},
		)
	}

	return fields, nil
}

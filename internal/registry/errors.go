package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel failures surfaced by Resolve. The public package maps them onto
// its coded error type.
var (
	// ErrNotFound is wrapped when no store holds the token and construction
	// was not attempted.
	ErrNotFound = errors.New("no registration found")

	// ErrNotConstructible is wrapped when construction was attempted for a
	// token that is not a struct or pointer-to-struct type.
	ErrNotConstructible = errors.New("type is not constructible")
)

// CycleError reports a cyclic dependency discovered during construction.
// Chain holds the construction path, outermost token first, with the
// revisited token repeated at the end.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic dependency: %s", strings.Join(e.Chain, " -> "))
}

// FieldError reports that a required field could not be filled while
// constructing a struct. It keeps nested resolution failures distinguishable
// from a failure of the requested token itself: a FieldError anywhere in a
// chain means construction started and then broke on a dependency.
type FieldError struct {
	Struct string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("constructing %s: field %s: %v", e.Struct, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

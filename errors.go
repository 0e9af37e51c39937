package autoinject

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeNotFound
	ErrCodeConstructionFailed
	ErrCodeCycle
	ErrCodeNilInstance
	ErrCodeModuleApplyFailed
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:            "UNKNOWN",
	ErrCodeNotFound:           "NOT_FOUND",
	ErrCodeConstructionFailed: "CONSTRUCTION_FAILED",
	ErrCodeCycle:              "CYCLIC_DEPENDENCY",
	ErrCodeNilInstance:        "NIL_INSTANCE",
	ErrCodeModuleApplyFailed:  "MODULE_APPLY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}

// Error is the error type returned by Resolve and carried by the panics of
// the fail-fast registration paths. Code classifies the failure, Type names
// the requested type, and Chain holds the construction path when a cycle was
// detected.
type Error struct {
	Code    ErrorCode
	Message string
	Type    string
	Cause   error
	Chain   []string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Type != "" {
		b.WriteString(fmt.Sprintf(" type=%q:", e.Type))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithType(typeName string) *Error {
	e.Type = typeName
	return e
}

func (e *Error) WithChain(chain []string) *Error {
	e.Chain = chain
	return e
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func errNotFound(typeName string) *Error {
	return newError(
		ErrCodeNotFound,
		fmt.Sprintf("instance not found: %s", typeName),
		nil,
	).WithType(typeName)
}

func errConstructionFailed(typeName string, cause error) *Error {
	return newError(
		ErrCodeConstructionFailed,
		fmt.Sprintf("failed to construct %s", typeName),
		cause,
	).WithType(typeName)
}

func errCycle(typeName string, chain []string) *Error {
	return newError(
		ErrCodeCycle,
		fmt.Sprintf("cyclic dependency detected: %s", strings.Join(chain, " -> ")),
		nil,
	).WithType(typeName).WithChain(chain)
}

func errNilInstance() *Error {
	return newError(
		ErrCodeNilInstance,
		"cannot register a nil instance",
		nil,
	)
}

func errBindFailed(interfaceName, implName string) *Error {
	return newError(
		ErrCodeConstructionFailed,
		fmt.Sprintf("%s does not satisfy %s", implName, interfaceName),
		nil,
	).WithType(interfaceName)
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNotFound
}

func IsConstructionFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConstructionFailed
}

func IsCycle(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeCycle
}

func IsNilInstance(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNilInstance
}

func IsModuleApplyFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeModuleApplyFailed
}

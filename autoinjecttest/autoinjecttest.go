package autoinjecttest

import (
	"github.com/BrunoMoraes-Z/autoinject"
	"github.com/BrunoMoraes-Z/autoinject/internal/reflect"
)

// TB is the subset of testing.TB the helpers need.
type TB interface {
	Helper()
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Cleanup(f func())
}

// TestInjector wraps an Injector whose registrations are dropped when the
// test ends, so parallel tests never leak state into each other.
type TestInjector struct {
	*autoinject.Injector
	tb TB
}

func New(tb TB, opts ...autoinject.Option) *TestInjector {
	tb.Helper()

	inj := autoinject.New(opts...)
	tb.Cleanup(inj.Reset)

	return &TestInjector{
		Injector: inj,
		tb:       tb,
	}
}

// Replace swaps in value under the token of T, shadowing whatever the code
// under test registered. A nil value fails the test instead of panicking.
func Replace[T any](ti *TestInjector, value T) {
	ti.tb.Helper()

	if reflect.IsNil(value) {
		ti.tb.Fatalf("cannot replace %s with a nil value", reflect.TypeName(reflect.TypeOf[T]()))
	}
	autoinject.ReplaceInstanceAs(ti.Injector, value)
}

func MustRegisterSingleton[T any](ti *TestInjector, fn autoinject.Factory[T]) {
	ti.tb.Helper()

	if err := autoinject.RegisterSingleton(ti.Injector, fn); err != nil {
		ti.tb.Fatalf("failed to register singleton %s: %v", reflect.TypeName(reflect.TypeOf[T]()), err)
	}
}

func MustResolve[T any](ti *TestInjector) T {
	ti.tb.Helper()

	v, err := autoinject.Resolve[T](ti.Injector)
	if err != nil {
		ti.tb.Fatalf("failed to resolve %s: %v", reflect.TypeName(reflect.TypeOf[T]()), err)
	}
	return v
}

func MustConstruct[T any](ti *TestInjector) T {
	ti.tb.Helper()

	v, err := autoinject.Construct[T](ti.Injector)
	if err != nil {
		ti.tb.Fatalf("failed to construct %s: %v", reflect.TypeName(reflect.TypeOf[T]()), err)
	}
	return v
}

// RequireApply applies the modules and fails the test on the first error.
func (ti *TestInjector) RequireApply(modules ...*autoinject.Module) {
	ti.tb.Helper()

	if err := ti.Apply(modules...); err != nil {
		ti.tb.Fatalf("failed to apply modules: %v", err)
	}
}

func AssertContains[T any](ti *TestInjector) {
	ti.tb.Helper()

	if !autoinject.Contains[T](ti.Injector) {
		ti.tb.Fatalf("expected injector to contain %s", reflect.TypeName(reflect.TypeOf[T]()))
	}
}

func AssertNotContains[T any](ti *TestInjector) {
	ti.tb.Helper()

	if autoinject.Contains[T](ti.Injector) {
		ti.tb.Fatalf("expected injector to not contain %s", reflect.TypeName(reflect.TypeOf[T]()))
	}
}

func AssertSingleton[T any](ti *TestInjector) {
	ti.tb.Helper()

	if !autoinject.IsSingleton[T](ti.Injector) {
		ti.tb.Fatalf("expected %s to be registered as a singleton", reflect.TypeName(reflect.TypeOf[T]()))
	}
}

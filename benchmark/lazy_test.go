package benchmark

import (
	"testing"

	"github.com/samber/do/v2"
	"go.uber.org/dig"

	"github.com/BrunoMoraes-Z/autoinject"
)

// Materialization cost: how long the first lookup of a deferred registration
// takes. Each iteration gets a fresh container so the factory really runs.

func BenchmarkLazy_Materialize_Autoinject(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		inj := autoinject.New()
		autoinject.RegisterLazySingleton(
			inj, func() (*Config, error) {
				return &Config{Host: "localhost", Port: 8080}, nil
			},
		)
		b.StartTimer()
		_ = autoinject.MustResolve[*Config](inj)
	}
}

func BenchmarkLazy_Materialize_Do(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		injector := do.New()
		do.Provide(
			injector, func(do.Injector) (*Config, error) {
				return &Config{Host: "localhost", Port: 8080}, nil
			},
		)
		b.StartTimer()
		_ = do.MustInvoke[*Config](injector)
	}
}

func BenchmarkLazy_Materialize_Dig(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c := dig.New()
		_ = c.Provide(func() *Config { return &Config{Host: "localhost", Port: 8080} })
		b.StartTimer()
		_ = c.Invoke(func(*Config) {})
	}
}

// Memoized hits: lookups after materialization.

func BenchmarkLazy_Memoized_Autoinject(b *testing.B) {
	inj := autoinject.New()
	autoinject.RegisterLazySingleton(
		inj, func() (*Config, error) {
			return &Config{Host: "localhost", Port: 8080}, nil
		},
	)
	_ = autoinject.MustResolve[*Config](inj)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = autoinject.MustResolve[*Config](inj)
	}
}

func BenchmarkLazy_Memoized_Do(b *testing.B) {
	injector := do.New()
	do.Provide(
		injector, func(do.Injector) (*Config, error) {
			return &Config{Host: "localhost", Port: 8080}, nil
		},
	)
	_ = do.MustInvoke[*Config](injector)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = do.MustInvoke[*Config](injector)
	}
}

func BenchmarkLazy_Memoized_Dig(b *testing.B) {
	c := dig.New()
	_ = c.Provide(func() *Config { return &Config{Host: "localhost", Port: 8080} })
	_ = c.Invoke(func(*Config) {})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Invoke(func(*Config) {})
	}
}

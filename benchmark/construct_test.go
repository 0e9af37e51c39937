package benchmark

import (
	"testing"

	"go.uber.org/dig"

	"github.com/BrunoMoraes-Z/autoinject"
)

// Reflective struct filling, in each framework's native style: autoinject
// reads its struct tags, dig injects function parameters. samber/do has no
// comparable struct-filling call, so it sits this category out.

type taggedHandler struct {
	Repo   *Repository `autoinject:""`
	Logger *Logger     `autoinject:""`
}

func BenchmarkConstruct_Tagged_Autoinject(b *testing.B) {
	inj := autoinject.New()
	autoinject.RegisterInstance(inj, &Config{Host: "localhost", Port: 8080})
	autoinject.RegisterInstance(inj, &Logger{Level: "info"})
	autoinject.RegisterLazySingleton(
		inj, func() (*Database, error) {
			cfg := autoinject.MustResolve[*Config](inj)
			log := autoinject.MustResolve[*Logger](inj)
			return &Database{Config: cfg, Logger: log}, nil
		},
	)
	autoinject.RegisterLazySingleton(
		inj, func() (*Cache, error) {
			log := autoinject.MustResolve[*Logger](inj)
			return &Cache{Logger: log}, nil
		},
	)
	autoinject.RegisterLazySingleton(
		inj, func() (*Repository, error) {
			db := autoinject.MustResolve[*Database](inj)
			cache := autoinject.MustResolve[*Cache](inj)
			return &Repository{DB: db, Cache: cache}, nil
		},
	)
	_, _ = autoinject.Construct[*taggedHandler](inj)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = autoinject.Construct[*taggedHandler](inj)
	}
}

func BenchmarkConstruct_Tagged_Dig(b *testing.B) {
	c := dig.New()
	_ = c.Provide(func() *Config { return &Config{Host: "localhost", Port: 8080} })
	_ = c.Provide(func() *Logger { return &Logger{Level: "info"} })
	_ = c.Provide(func(cfg *Config, log *Logger) *Database { return &Database{Config: cfg, Logger: log} })
	_ = c.Provide(func(log *Logger) *Cache { return &Cache{Logger: log} })
	_ = c.Provide(func(db *Database, cache *Cache) *Repository { return &Repository{DB: db, Cache: cache} })
	_ = c.Invoke(func(*Repository, *Logger) {})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Invoke(func(*Repository, *Logger) {})
	}
}

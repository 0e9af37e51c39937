package autoinject

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BrunoMoraes-Z/autoinject/internal/registry"
)

// Injector is a type-keyed service registry. Values are registered as
// pre-built instances, per-lookup factories, eager singletons or lazy
// singletons, and retrieved by type; the four stores are consulted in a
// fixed precedence order (see Lookup).
//
// All methods are safe for concurrent use. Factories run outside the
// injector's locks, so they may re-enter the injector.
type Injector struct {
	id       string
	registry *registry.Registry
	config   *injectorConfig
}

type injectorConfig struct {
	logger     *slog.Logger
	onLookup   []LookupHook
	onRegister []RegisterHook
}

// New creates an empty injector.
func New(opts ...Option) *Injector {
	cfg := &injectorConfig{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	id := uuid.NewString()
	internal := registry.New(
		&registry.Config{
			Logger: cfg.logger.With(slog.String("injector_id", id)),
		},
	)

	return &Injector{
		id:       id,
		registry: internal,
		config:   cfg,
	}
}

// ID returns the identifier assigned to this injector at creation. It shows
// up as injector_id in log records.
func (inj *Injector) ID() string {
	return inj.id
}

// Size returns the number of distinct types holding at least one
// registration.
func (inj *Injector) Size() int {
	return inj.registry.Size()
}

// Merge copies every registration from other into inj, store by store. Where
// both injectors register the same type in the same store, the entry from
// other wins. Memoized singletons carry over as-is; unmaterialized lazy
// registrations stay unmaterialized and materialize independently in each
// injector.
func (inj *Injector) Merge(other *Injector) {
	if other == nil || other == inj {
		return
	}
	inj.registry.Merge(other.registry)
}

// Reset removes every registration.
func (inj *Injector) Reset() {
	inj.registry.Reset()
}

func (inj *Injector) notifyLookup(typeName string, kind Kind, start time.Time, err error) {
	if len(inj.config.onLookup) == 0 {
		return
	}

	duration := time.Since(start)
	for _, hook := range inj.config.onLookup {
		hook(typeName, kind, duration, err)
	}
}

func (inj *Injector) notifyRegister(typeName string, kind Kind) {
	for _, hook := range inj.config.onRegister {
		hook(typeName, kind)
	}
}

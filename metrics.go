package autoinject

import (
	"time"

	"github.com/BrunoMoraes-Z/autoinject/internal/registry"
)

// Kind classifies how a type is registered and reports which store satisfied
// a lookup.
type Kind = registry.Kind

const (
	KindInstance    = registry.KindInstance
	KindFactory     = registry.KindFactory
	KindSingleton   = registry.KindSingleton
	KindLazy        = registry.KindLazy
	KindConstructed = registry.KindConstructed
)

// LookupHook observes lookups. kind names the store that satisfied the
// lookup; on failure it names the store that produced the error. Hooks run
// synchronously on the calling goroutine.
type LookupHook func(typeName string, kind Kind, duration time.Duration, err error)

// RegisterHook observes registrations.
type RegisterHook func(typeName string, kind Kind)

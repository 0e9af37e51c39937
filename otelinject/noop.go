package otelinject

import (
	"context"
	"time"

	"github.com/BrunoMoraes-Z/autoinject"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordLookup does nothing.
func (NoopMetrics) RecordLookup(_ context.Context, _ string, _ autoinject.Kind, _ time.Duration, _ error) {
}

// RecordRegistration does nothing.
func (NoopMetrics) RecordRegistration(_ context.Context, _ string, _ autoinject.Kind) {}

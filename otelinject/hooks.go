package otelinject

import (
	"context"
	"time"

	"github.com/BrunoMoraes-Z/autoinject"
)

// LookupHook adapts rec into a lookup observer.
func LookupHook(rec MetricsRecorder) autoinject.LookupHook {
	return func(typeName string, kind autoinject.Kind, duration time.Duration, err error) {
		rec.RecordLookup(context.Background(), typeName, kind, duration, err)
	}
}

// RegisterHook adapts rec into a register observer.
func RegisterHook(rec MetricsRecorder) autoinject.RegisterHook {
	return func(typeName string, kind autoinject.Kind) {
		rec.RecordRegistration(context.Background(), typeName, kind)
	}
}

// Options returns injector options that record every lookup and registration
// through the global OTel meter provider.
//
//	inj := autoinject.New(otelinject.Options()...)
func Options() []autoinject.Option {
	rec := NewMetricsRecorder()
	return []autoinject.Option{
		autoinject.WithLookupObserver(LookupHook(rec)),
		autoinject.WithRegisterObserver(RegisterHook(rec)),
	}
}

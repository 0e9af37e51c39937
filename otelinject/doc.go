// Package otelinject exports injector activity through OpenTelemetry.
//
// It provides a MetricsRecorder backed by the global meter provider, hook
// adapters that feed it from an injector's lookup and register observers,
// and a traced Resolve wrapper that opens a span per resolution.
//
//	inj := autoinject.New(otelinject.Options()...)
//
// Configure the global OTel providers before creating the injector.
package otelinject

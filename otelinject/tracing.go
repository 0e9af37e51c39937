package otelinject

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/BrunoMoraes-Z/autoinject"
	"github.com/BrunoMoraes-Z/autoinject/internal/reflect"
)

// Uses the global OTel tracer provider.
var tracer = otel.Tracer("autoinject")

// Resolve looks up T inside a span named autoinject.resolve. The span records
// the requested type and, on failure, the resolution error.
func Resolve[T any](ctx context.Context, inj *autoinject.Injector) (T, error) {
	_, span := StartResolveSpan(ctx, reflect.TypeName(reflect.TypeOf[T]()))

	v, err := autoinject.Resolve[T](inj)
	EndSpanWithError(span, err)
	return v, err
}

// Construct builds T inside a span named autoinject.construct.
func Construct[T any](ctx context.Context, inj *autoinject.Injector) (T, error) {
	_, span := tracer.Start(ctx, "autoinject.construct",
		trace.WithAttributes(
			attribute.String("type", reflect.TypeName(reflect.TypeOf[T]())),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	v, err := autoinject.Construct[T](inj)
	EndSpanWithError(span, err)
	return v, err
}

// StartResolveSpan starts a span covering the resolution of typeName.
// Uses the global OTel tracer.
func StartResolveSpan(ctx context.Context, typeName string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "autoinject.resolve",
		trace.WithAttributes(
			attribute.String("type", typeName),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

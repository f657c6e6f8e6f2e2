// Package tracing provides the shared OTel tracer helper.
//
// When no TracerProvider is registered (tests, local dev without OTel) the
// global no-op provider is used and every call is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "bildo-landing"

// Start creates a span as a child of the span in ctx, or a root span when ctx
// carries none. Callers must End the span.
//
//	ctx, span := tracing.Start(ctx, "leads.deliver",
//	    attribute.String("bildo.lead.id", lead.ID),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}

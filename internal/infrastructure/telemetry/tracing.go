package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer used for business spans
const TracerName = "github.com/fieldstock/backend"

// StartSpan starts an internal span named "{component}.{operation}"
//
//	ctx, span := telemetry.StartSpan(ctx, "ledger", "transfer_to_rider")
//	defer span.End()
func StartSpan(ctx context.Context, component, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, component+"."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err on span, if any, and ends it
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

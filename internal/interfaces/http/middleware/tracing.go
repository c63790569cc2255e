package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
	// TracerProvider overrides the global provider, mainly for tests.
	TracerProvider trace.TracerProvider
}

// Tracing returns OpenTelemetry tracing middleware.
// It wraps otelgin, which names spans after the route pattern and marks 5xx
// responses as failed.
func Tracing(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	var opts []otelgin.Option
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgin.WithTracerProvider(cfg.TracerProvider))
	}
	base := otelgin.Middleware(cfg.ServiceName, opts...)

	return base
}

// SpanEnricher must run inside the Tracing middleware. It adds request and
// principal attributes once downstream middleware (JWT) has populated them.
func SpanEnricher() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		enrichSpan(c, span)
	}
}

func enrichSpan(c *gin.Context, span trace.Span) {
	if id := GetRequestID(c); id != "" {
		span.SetAttributes(attribute.String("request_id", id))
	}
	if principal, ok := GetPrincipal(c); ok {
		span.SetAttributes(
			attribute.String("user_id", principal.ID.String()),
			attribute.String("user_role", string(principal.Role)),
		)
	}
}

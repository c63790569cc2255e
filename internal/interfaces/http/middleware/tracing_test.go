package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTracingRouter(t *testing.T, enabled bool) (*gin.Engine, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	svc := newTestJWTService()
	r := gin.New()
	r.Use(
		RequestID(),
		Tracing(TracingConfig{ServiceName: "fieldstock-test", Enabled: enabled, TracerProvider: tp}),
		SpanEnricher(),
	)
	api := r.Group("/api/v1")
	api.Use(JWTAuthMiddleware(JWTMiddlewareConfig{JWTService: svc}))
	api.GET("/riders/:rider_id/inventory", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, sr
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestTracing_EnrichesSpanWithPrincipal(t *testing.T) {
	r, sr := newTracingRouter(t, true)
	rider := identity.Principal{ID: uuid.New(), Role: identity.RoleRider, Username: "rider-1"}
	token := issueToken(t, newTestJWTService(), rider)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/riders/"+rider.ID.String()+"/inventory", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	req.Header.Set(RequestIDHeader, "req-trace-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
	assert.Contains(t, spans[0].Name(), "/api/v1/riders/:rider_id/inventory")

	attrs := spanAttrs(spans[0])
	assert.Equal(t, "req-trace-1", attrs["request_id"].AsString())
	assert.Equal(t, rider.ID.String(), attrs["user_id"].AsString())
	assert.Equal(t, "rider", attrs["user_role"].AsString())
}

func TestTracing_AnonymousRequest(t *testing.T) {
	r, sr := newTracingRouter(t, true)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := spanAttrs(spans[0])
	assert.NotEmpty(t, attrs["request_id"].AsString())
	_, hasUser := attrs["user_id"]
	assert.False(t, hasUser)
}

func TestTracing_Disabled(t *testing.T) {
	r, sr := newTracingRouter(t, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sr.Ended())
}

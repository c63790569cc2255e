package middleware

import (
	"time"

	"github.com/fieldstock/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// UnmatchedRoute labels requests that did not match any registered route
const UnmatchedRoute = "unmatched"

// HTTPMetrics records request count, latency and in-flight requests on the
// Prometheus registry. The route label is the matched pattern, not the raw
// path, to keep cardinality bounded.
func HTTPMetrics(m *telemetry.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		start := time.Now()
		m.IncInFlight()
		defer m.DecInFlight()

		c.Next()

		m.RecordHTTPRequest(c.Request.Method, routePattern(c), c.Writer.Status(), time.Since(start))
	}
}

func routePattern(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return UnmatchedRoute
}

package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinContextKey is the gin context key holding the request-scoped logger
const GinContextKey = "logger"

// GinMiddleware logs one line per request and attaches a request-scoped
// logger to both the gin context and the request context.
// Requests for skipPaths (health checks, metrics scrapes) are served but not logged.
func GinMiddleware(logger *zap.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := c.GetString("request_id")
		ctx, reqLogger := WithRequestID(c.Request.Context(), logger, requestID)
		reqLogger = WithTraceContext(ctx, reqLogger).With(
			zap.String("method", c.Request.Method),
			zap.String("path", path),
		)
		c.Request = c.Request.WithContext(WithContext(ctx, reqLogger))
		c.Set(GinContextKey, reqLogger)

		c.Next()

		if _, ok := skip[path]; ok {
			return
		}

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if route := c.FullPath(); route != "" {
			fields = append(fields, zap.String("route", route))
		}
		if query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if userID := c.GetString("user_id"); userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		msg := "HTTP Request"
		switch {
		case status >= http.StatusInternalServerError:
			reqLogger.Error(msg, fields...)
		case status >= http.StatusBadRequest:
			reqLogger.Warn(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
	}
}

// Recovery recovers from handler panics, logs them and answers 500
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.String("request_id", c.GetString("request_id")),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("error", err),
					zap.Stack("stacktrace"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Internal server error",
					},
				})
			}
		}()
		c.Next()
	}
}

// GetGinLogger retrieves the request-scoped logger from the gin context
func GetGinLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(GinContextKey); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	return zap.NewNop()
}

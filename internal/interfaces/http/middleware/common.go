package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gin context keys shared with the logger and the handlers
const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
	UserIDKey       = "user_id"
)

// MaxRequestIDLength bounds client-supplied request IDs
const MaxRequestIDLength = 128

// CORSConfig holds CORS middleware configuration
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// DefaultCORSConfig returns a configuration that allows no origin
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:     []string{},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", RequestIDHeader, IdempotencyKeyHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// CORSWithConfig returns a CORS middleware. Preflight requests are always
// answered 204; headers are only set for allowed origins.
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	allowWildcard := false
	allowed := make(map[string]struct{}, len(cfg.AllowOrigins))
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			allowWildcard = true
		}
		allowed[o] = struct{}{}
	}

	resolve := func(origin string) string {
		if allowWildcard {
			return "*"
		}
		if _, ok := allowed[origin]; ok && origin != "" {
			return origin
		}
		return ""
	}

	return func(c *gin.Context) {
		if allowedOrigin := resolve(c.GetHeader("Origin")); allowedOrigin != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", allowedOrigin)
			if cfg.AllowCredentials && allowedOrigin != "*" {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			h.Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowHeaders, ", "))
			h.Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowMethods, ", "))
			if len(cfg.ExposeHeaders) > 0 {
				h.Set("Access-Control-Expose-Headers", strings.Join(cfg.ExposeHeaders, ", "))
			}
			if cfg.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", strconv.Itoa(int(cfg.MaxAge.Seconds())))
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestID propagates X-Request-ID or assigns a new UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if len(requestID) > MaxRequestIDLength {
			requestID = requestID[:MaxRequestIDLength]
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// Secure adds baseline security headers for a JSON API
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Next()
	}
}

// abortWithError writes the error envelope with the status derived from code
func abortWithError(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(code, message, GetRequestID(c)))
}

package middleware

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader is the client-chosen replay key of a mutating request
const IdempotencyKeyHeader = "Idempotency-Key"

// MaxIdempotencyKeyLength bounds the header value
const MaxIdempotencyKeyLength = 128

var idempotencyKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Store  shared.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// Idempotency answers a repeated Idempotency-Key on a mutating request with
// 409 DUPLICATE_REQUEST without running the handler. Keys are scoped to the
// caller, method and path. A key whose request failed with a 5xx is released
// so the client may retry it. Requests without the header pass through.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return func(c *gin.Context) {
		if cfg.Store == nil || !isMutatingMethod(c.Request.Method) {
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if key == "" {
			c.Next()
			return
		}
		if len(key) > MaxIdempotencyKeyLength || !idempotencyKeyPattern.MatchString(key) {
			abortWithError(c, dto.ErrCodeInvalidInput, "Idempotency-Key must be at most 128 characters of letters, digits, '-' or '_'")
			return
		}

		scoped := scopedIdempotencyKey(c, key)
		ctx := c.Request.Context()

		isNew, err := cfg.Store.MarkProcessed(ctx, scoped, ttl)
		if err != nil {
			log.Error("Idempotency store unavailable", zap.Error(err), zap.String("path", c.Request.URL.Path))
			abortWithError(c, dto.ErrCodeServiceUnavailable, "Idempotency storage is temporarily unavailable")
			return
		}
		if !isNew {
			log.Info("Duplicate request rejected",
				zap.String("idempotency_key", key),
				zap.String("path", c.Request.URL.Path),
			)
			abortWithError(c, dto.ErrCodeDuplicateRequest, "A request with this Idempotency-Key was already processed")
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusInternalServerError {
			// the request context may already be cancelled
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
			defer cancel()
			if err := cfg.Store.Release(releaseCtx, scoped); err != nil {
				log.Warn("Failed to release idempotency key", zap.Error(err), zap.String("idempotency_key", key))
			}
		}
	}
}

func scopedIdempotencyKey(c *gin.Context, key string) string {
	caller := c.GetString(UserIDKey)
	if caller == "" {
		caller = "anonymous"
	}
	return caller + ":" + c.Request.Method + ":" + c.Request.URL.Path + ":" + key
}

func isMutatingMethod(method string) bool {
	return method == http.MethodPost ||
		method == http.MethodPut ||
		method == http.MethodPatch ||
		method == http.MethodDelete
}

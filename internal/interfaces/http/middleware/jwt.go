package middleware

import (
	"errors"
	"strings"

	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/infrastructure/auth"
	"github.com/fieldstock/backend/internal/infrastructure/logger"
	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

var errMissingToken = errors.New("missing bearer token")

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// Logger for middleware logging
	Logger *zap.Logger
}

// JWTAuthMiddleware authenticates the bearer token and places the caller's
// principal on the request context for the application services
func JWTAuthMiddleware(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			rejectToken(c, log, errMissingToken, "Missing authorization header")
			return
		}
		tokenString, ok := strings.CutPrefix(authHeader, BearerPrefix)
		if !ok || tokenString == "" {
			rejectToken(c, log, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			rejectToken(c, log, err, "Token validation failed")
			return
		}
		principal, err := claims.Principal()
		if err != nil {
			rejectToken(c, log, err, "Token validation failed")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(UserIDKey, principal.ID.String())

		ctx := auth.ContextWithPrincipal(c.Request.Context(), principal)
		ctx, _ = logger.WithPrincipal(ctx, logger.FromContext(ctx), principal.ID.String(), principal.Role.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func rejectToken(c *gin.Context, log *zap.Logger, err error, reason string) {
	log.Debug("JWT authentication failed",
		zap.Error(err),
		zap.String("reason", reason),
		zap.String("path", c.Request.URL.Path),
	)

	message := "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		message = "Token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		message = "Token is not yet valid"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidClaims),
		errors.Is(err, auth.ErrMissingUserID), errors.Is(err, auth.ErrInvalidRole):
		message = "Invalid token"
	}
	abortWithError(c, dto.ErrCodeUnauthorized, message)
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetPrincipal returns the authenticated caller of the request
func GetPrincipal(c *gin.Context) (identity.Principal, bool) {
	return auth.PrincipalFromContext(c.Request.Context())
}

package auth

import (
	"errors"
	"time"

	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = time.Hour

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingUserID    = errors.New("missing user_id in claims")
	ErrInvalidRole      = errors.New("missing or unknown role in claims")
)

// Claims are the access token claims issued by the identity provider
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role"`
}

// Principal converts verified claims into an identity principal
func (c *Claims) Principal() (identity.Principal, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return identity.Principal{}, ErrMissingUserID
	}
	role, err := identity.ParseRole(c.Role)
	if err != nil {
		return identity.Principal{}, ErrInvalidRole
	}
	return identity.Principal{ID: id, Role: role, Username: c.Username}, nil
}

// JWTService verifies HS256 access tokens
type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// JWTOption configures a JWTService
type JWTOption func(*JWTService)

// WithTokenTTL sets the lifetime of tokens produced by IssueAccessToken
func WithTokenTTL(ttl time.Duration) JWTOption {
	return func(s *JWTService) {
		s.ttl = ttl
	}
}

// WithClock overrides the time source used when issuing tokens
func WithClock(now func() time.Time) JWTOption {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig, opts ...JWTOption) *JWTService {
	s := &JWTService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    defaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueAccessToken signs a token for p. Production tokens come from the
// identity provider; this is used by tests and local tooling.
func (s *JWTService) IssueAccessToken(p identity.Principal) (string, error) {
	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   p.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   p.ID.String(),
		Username: p.Username,
		Role:     p.Role.String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateAccessToken verifies signature, issuer and lifetime, then the custom claims
func (s *JWTService) ValidateAccessToken(tokenString string) (*Claims, error) {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.UserID == "" {
		return nil, ErrMissingUserID
	}
	if _, err := identity.ParseRole(claims.Role); err != nil {
		return nil, ErrInvalidRole
	}
	return claims, nil
}

// GetRemainingTTL returns the remaining time until the token expires
func (c *Claims) GetRemainingTTL() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(c.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}

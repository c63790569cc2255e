package auth

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

type principalKey struct{}

// ContextWithPrincipal attaches an authenticated principal to ctx
func ContextWithPrincipal(ctx context.Context, p identity.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal placed by the JWT middleware
func PrincipalFromContext(ctx context.Context) (identity.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(identity.Principal)
	if !ok || p.ID == uuid.Nil {
		return identity.Principal{}, false
	}
	return p, true
}

// ContextAccessControl reports the principal carried by the request context
type ContextAccessControl struct{}

// NewContextAccessControl creates the request-scoped AccessControl
func NewContextAccessControl() ContextAccessControl {
	return ContextAccessControl{}
}

// CurrentRole implements identity.AccessControl
func (ContextAccessControl) CurrentRole(ctx context.Context) (identity.Role, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return "", shared.ErrUnauthorized
	}
	return p.Role, nil
}

// CurrentPrincipalID implements identity.AccessControl
func (ContextAccessControl) CurrentPrincipalID(ctx context.Context) (uuid.UUID, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return uuid.Nil, shared.ErrUnauthorized
	}
	return p.ID, nil
}

var _ identity.AccessControl = ContextAccessControl{}

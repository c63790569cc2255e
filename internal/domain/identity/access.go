package identity

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccessControl supplies the authenticated caller of the current operation.
// The core never authenticates; it trusts whatever principal this reports.
type AccessControl interface {
	// CurrentRole returns the caller's role, or ErrUnauthorized when there is no caller
	CurrentRole(ctx context.Context) (Role, error)
	// CurrentPrincipalID returns the caller's ID, or ErrUnauthorized when there is no caller
	CurrentPrincipalID(ctx context.Context) (uuid.UUID, error)
}

// Principal is an authenticated caller
type Principal struct {
	ID       uuid.UUID
	Role     Role
	Username string
}

// IsAdmin reports whether the principal has the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Current resolves the full principal from an AccessControl
func Current(ctx context.Context, ac AccessControl) (Principal, error) {
	role, err := ac.CurrentRole(ctx)
	if err != nil {
		return Principal{}, err
	}
	id, err := ac.CurrentPrincipalID(ctx)
	if err != nil {
		return Principal{}, err
	}
	if !role.IsValid() || id == uuid.Nil {
		return Principal{}, shared.ErrUnauthorized
	}
	return Principal{ID: id, Role: role}, nil
}

// RequireAdmin authorizes admin-only operations and returns the admin's principal
func RequireAdmin(ctx context.Context, ac AccessControl) (Principal, error) {
	p, err := Current(ctx, ac)
	if err != nil {
		return Principal{}, err
	}
	if !p.IsAdmin() {
		return Principal{}, shared.NewDomainError(shared.CodeForbidden, "Admin role required")
	}
	return p, nil
}

// RequireRider authorizes an operation that only the rider identified by riderID may perform
func RequireRider(ctx context.Context, ac AccessControl, riderID uuid.UUID) (Principal, error) {
	p, err := Current(ctx, ac)
	if err != nil {
		return Principal{}, err
	}
	if p.Role != RoleRider || p.ID != riderID {
		return Principal{}, shared.NewDomainError(shared.CodeForbidden, "Only the rider themself may perform this action")
	}
	return p, nil
}

// RequireSelfOrAdmin authorizes reads of a rider's own data
func RequireSelfOrAdmin(ctx context.Context, ac AccessControl, riderID uuid.UUID) (Principal, error) {
	p, err := Current(ctx, ac)
	if err != nil {
		return Principal{}, err
	}
	if p.IsAdmin() || p.ID == riderID {
		return p, nil
	}
	return Principal{}, shared.NewDomainError(shared.CodeForbidden, "Access to another rider's data is forbidden")
}

// StaticAccessControl always reports the same principal.
// It is used by tooling that runs outside an HTTP request.
type StaticAccessControl struct {
	Principal Principal
}

// CurrentRole implements AccessControl
func (s StaticAccessControl) CurrentRole(context.Context) (Role, error) {
	if s.Principal.ID == uuid.Nil {
		return "", shared.ErrUnauthorized
	}
	return s.Principal.Role, nil
}

// CurrentPrincipalID implements AccessControl
func (s StaticAccessControl) CurrentPrincipalID(context.Context) (uuid.UUID, error) {
	if s.Principal.ID == uuid.Nil {
		return uuid.Nil, shared.ErrUnauthorized
	}
	return s.Principal.ID, nil
}

var _ AccessControl = StaticAccessControl{}

package identity

import (
	"strings"

	"github.com/fieldstock/backend/internal/domain/shared"
)

// Role is the coarse authorization role of a principal
type Role string

const (
	RoleAdmin Role = "admin"
	RoleRider Role = "rider"
)

// ParseRole converts a claim value into a Role
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleRider:
		return RoleRider, nil
	default:
		return "", shared.NewValidationError("Unknown role: " + s)
	}
}

// IsValid checks if the role is a known role
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleRider
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

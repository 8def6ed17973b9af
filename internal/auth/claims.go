// Package auth implements the session and authorization core: token
// issuance and refresh, the route guard, the API auth middleware, and the
// presentational role gate. All of them share a single role predicate so
// the enforcement points cannot drift apart.
package auth

import (
	"slices"
	"time"

	"github.com/articlehub/backend/internal/models"
)

// Claims is the decoded, verified payload of a session token
type Claims struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
	IssuedAt  time.Time   `json:"issuedAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// ClaimsPatch describes a partial claims update. Nil fields are carried
// over unchanged from the existing claims.
type ClaimsPatch struct {
	Name  *string
	Email *string
	Role  *models.Role
}

// Allowed reports whether the claims carry one of the allowed roles.
// Nil claims (no session) are never allowed.
func Allowed(claims *Claims, allowedRoles []models.Role) bool {
	if claims == nil {
		return false
	}
	return slices.Contains(allowedRoles, claims.Role)
}

package auth

import "github.com/articlehub/backend/internal/models"

// Session is a cached snapshot of the caller's claims as seen by a
// presentational component. While the snapshot is still being resolved,
// Loading is true and Claims is nil.
type Session struct {
	Claims  *Claims
	Loading bool
}

// GateDecision is what a presentational gate should render
type GateDecision int

const (
	// GatePending renders neither the content nor the fallback
	GatePending GateDecision = iota
	// GateShow renders the gated content
	GateShow
	// GateHide renders the fallback
	GateHide
)

// Decide evaluates a role gate over a cached session snapshot. It is
// advisory only: the route guard and the per-resource ownership checks are
// the real enforcement boundary.
func Decide(s Session, allowedRoles []models.Role) GateDecision {
	if s.Loading {
		return GatePending
	}
	if !Allowed(s.Claims, allowedRoles) {
		return GateHide
	}
	return GateShow
}

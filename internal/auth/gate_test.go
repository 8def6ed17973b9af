package auth

import (
	"testing"

	"github.com/articlehub/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		session      Session
		allowedRoles []models.Role
		expected     GateDecision
	}{
		{
			name:         "loading session is pending",
			session:      Session{Loading: true},
			allowedRoles: []models.Role{models.RoleAdmin},
			expected:     GatePending,
		},
		{
			name:         "loading wins even with claims present",
			session:      Session{Loading: true, Claims: &Claims{Role: models.RoleAdmin}},
			allowedRoles: []models.Role{models.RoleAdmin},
			expected:     GatePending,
		},
		{
			name:         "no session hides content",
			session:      Session{},
			allowedRoles: []models.Role{models.RoleAdmin},
			expected:     GateHide,
		},
		{
			name:         "insufficient role hides content",
			session:      Session{Claims: &Claims{Role: models.RoleUser}},
			allowedRoles: []models.Role{models.RoleAdmin},
			expected:     GateHide,
		},
		{
			name:         "matching role shows content",
			session:      Session{Claims: &Claims{Role: models.RoleAdmin}},
			allowedRoles: []models.Role{models.RoleAdmin},
			expected:     GateShow,
		},
		{
			name:         "any of several roles shows content",
			session:      Session{Claims: &Claims{Role: models.RoleUser}},
			allowedRoles: []models.Role{models.RoleUser, models.RoleAdmin},
			expected:     GateShow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decide(tt.session, tt.allowedRoles))
		})
	}
}

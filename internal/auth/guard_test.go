package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/articlehub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func issueTestToken(t *testing.T, ts *TokenService, role models.Role) string {
	t.Helper()
	token, _, err := ts.Issue(&models.User{
		ID:    "u1",
		Email: "alice@example.com",
		Name:  "Alice",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func TestRouteGuard_Transitions(t *testing.T) {
	logger := zap.NewNop()
	ts := NewTokenService("test-secret", time.Hour)
	userToken := issueTestToken(t, ts, models.RoleUser)
	adminToken := issueTestToken(t, ts, models.RoleAdmin)

	tests := []struct {
		name             string
		path             string
		cookie           string
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:           "public path without session passes",
			path:           "/about",
			expectedStatus: http.StatusOK,
		},
		{
			name:             "protected path without session redirects to login",
			path:             "/profile",
			expectedStatus:   http.StatusFound,
			expectedLocation: "/login?callbackUrl=%2Fprofile",
		},
		{
			name:             "articles path without session redirects to login",
			path:             "/articles/drafts",
			expectedStatus:   http.StatusFound,
			expectedLocation: "/login?callbackUrl=%2Farticles%2Fdrafts",
		},
		{
			name:           "protected path with session passes",
			path:           "/profile",
			cookie:         userToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:             "admin path with user session redirects home",
			path:             "/admin",
			cookie:           userToken,
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
		{
			name:           "admin path with admin session passes",
			path:           "/admin",
			cookie:         adminToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:             "role gated demo page with user session redirects home",
			path:             "/examples/role-ui",
			cookie:           userToken,
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
		{
			name:             "admin path without session redirects home",
			path:             "/admin",
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
		{
			name:           "login without session passes",
			path:           "/login",
			expectedStatus: http.StatusOK,
		},
		{
			name:             "login with session redirects home",
			path:             "/login",
			cookie:           userToken,
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
		{
			name:             "signup with session redirects home",
			path:             "/signup",
			cookie:           userToken,
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
		{
			name:           "api namespace is skipped",
			path:           "/api/articles",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "static assets are skipped",
			path:           "/static/app.js",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "dotted paths are skipped",
			path:           "/favicon.ico",
			expectedStatus: http.StatusOK,
		},
		{
			name:             "invalid token is treated as no session",
			path:             "/profile",
			cookie:           "garbage-token",
			expectedStatus:   http.StatusFound,
			expectedLocation: "/login?callbackUrl=%2Fprofile",
		},
	}

	guard := RouteGuard(ts, DefaultGuardConfig(), logger)
	handler := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			}
		})
	}
}

// A missing signing secret is a guard failure, not a missing session. The
// failure mode is configurable: open for development, closed otherwise.
func TestRouteGuard_FailureMode(t *testing.T) {
	logger := zap.NewNop()
	broken := NewTokenService("", time.Hour)

	tests := []struct {
		name             string
		failOpen         bool
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:           "fail open passes the request through",
			failOpen:       true,
			expectedStatus: http.StatusOK,
		},
		{
			name:             "fail closed redirects home",
			failOpen:         false,
			expectedStatus:   http.StatusFound,
			expectedLocation: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGuardConfig()
			cfg.FailOpen = tt.failOpen

			handler := RouteGuard(broken, cfg, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "some-token"})
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			}
		})
	}
}

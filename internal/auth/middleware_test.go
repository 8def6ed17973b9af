package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/articlehub/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRequireAuth(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	userToken := issueTestToken(t, ts, models.RoleUser)

	tests := []struct {
		name           string
		authHeader     string
		cookie         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid bearer token",
			authHeader:     "Bearer " + userToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid session cookie",
			cookie:         userToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"authentication required"}`,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer garbage",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid or expired token"}`,
		},
		{
			name:           "malformed authorization header",
			authHeader:     "garbage",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"authentication required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *Claims
			handler := RequireAuth(ts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := GetClaims(r.Context())
				assert.True(t, ok)
				gotClaims = claims
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
			if tt.expectedStatus == http.StatusOK {
				assert.NotNil(t, gotClaims)
				assert.Equal(t, "u1", gotClaims.ID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	userToken := issueTestToken(t, ts, models.RoleUser)
	adminToken := issueTestToken(t, ts, models.RoleAdmin)

	tests := []struct {
		name           string
		cookie         string
		allowedRoles   []models.Role
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "admin allowed on admin route",
			cookie:         adminToken,
			allowedRoles:   []models.Role{models.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "user forbidden on admin route",
			cookie:         userToken,
			allowedRoles:   []models.Role{models.RoleAdmin},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"insufficient permissions"}`,
		},
		{
			name:           "no session",
			allowedRoles:   []models.Role{models.RoleAdmin},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"authentication required"}`,
		},
		{
			name:           "user allowed when role is in the set",
			cookie:         userToken,
			allowedRoles:   []models.Role{models.RoleUser, models.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(ts, tt.allowedRoles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

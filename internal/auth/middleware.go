package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/articlehub/backend/internal/models"
)

type contextKey string

const claimsKey contextKey = "claims"

// RequireAuth validates the session token and injects the claims into the
// request context. Requests without a valid session get 401.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := resolveClaims(w, r, tokens)
			if !ok {
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole validates the session token and checks the role against the
// allowed set. Requests without a session get 401, sessions with an
// insufficient role get 403.
func RequireRole(tokens *TokenService, allowedRoles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := resolveClaims(w, r, tokens)
			if !ok {
				return
			}

			if !Allowed(claims, allowedRoles) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"insufficient permissions"}`))
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveClaims extracts and validates the session token, writing the 401
// response itself when the request has no usable session
func resolveClaims(w http.ResponseWriter, r *http.Request, tokens *TokenService) (*Claims, bool) {
	// Extract token from Authorization header or cookie
	var token string

	// Try Authorization header first
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			token = parts[1]
		}
	}

	// If not in header, try cookie
	if token == "" {
		cookie, err := r.Cookie(SessionCookieName)
		if err == nil {
			token = cookie.Value
		}
	}

	// If no token found, return 401
	if token == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"authentication required"}`))
		return nil, false
	}

	claims, err := tokens.Parse(token)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid or expired token"}`))
		return nil, false
	}

	return claims, true
}

// GetClaims retrieves the session claims from context
func GetClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

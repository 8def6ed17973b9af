package auth

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/articlehub/backend/internal/models"
	"go.uber.org/zap"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "session_token"

// GuardConfig holds the access-control path rules for the route guard
type GuardConfig struct {
	// AuthRequiredPaths are path prefixes that require a valid session
	AuthRequiredPaths []string
	// AdminRequiredPaths are path prefixes that require the ADMIN role
	AdminRequiredPaths []string
	// LoginPath is where unauthenticated requests to protected paths are sent
	LoginPath string
	// SignupPath is redirected home for already-authenticated users, like LoginPath
	SignupPath string
	// HomePath is the destination for role failures and guard failures
	HomePath string
	// CookieName is the session cookie name
	CookieName string
	// FailOpen passes requests through on token decode failures instead of
	// redirecting home, deferring to downstream checks. Development aid only:
	// the default posture is fail closed.
	FailOpen bool
}

// DefaultGuardConfig returns the application's standard path rules
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		AuthRequiredPaths:  []string{"/profile", "/articles"},
		AdminRequiredPaths: []string{"/admin", "/examples/role-ui"},
		LoginPath:          "/login",
		SignupPath:         "/signup",
		HomePath:           "/",
		CookieName:         SessionCookieName,
	}
}

// RouteGuard intercepts every page request and enforces the path-based
// access rules before any handler runs. The API namespace and static assets
// are skipped: API routes carry their own RequireAuth/RequireRole middleware.
func RouteGuard(tokens *TokenService, cfg GuardConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pathname := r.URL.Path

			// Skip classification for API routes, static assets and anything
			// with a file extension
			if strings.HasPrefix(pathname, "/api") ||
				strings.HasPrefix(pathname, "/static") ||
				strings.HasPrefix(pathname, "/swagger") ||
				strings.Contains(pathname, ".") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := sessionClaims(r, tokens, cfg.CookieName)
			if err != nil {
				if cfg.FailOpen {
					logger.Warn("route guard failing open",
						zap.String("path", pathname),
						zap.Error(err),
					)
					next.ServeHTTP(w, r)
					return
				}
				logger.Error("route guard failing closed",
					zap.String("path", pathname),
					zap.Error(err),
				)
				http.Redirect(w, r, cfg.HomePath, http.StatusFound)
				return
			}

			authRequired := hasPathPrefix(pathname, cfg.AuthRequiredPaths)
			adminRequired := hasPathPrefix(pathname, cfg.AdminRequiredPaths)

			// Not logged in on a protected path: send to login, preserving the
			// intended destination
			if authRequired && claims == nil {
				loginURL := &url.URL{Path: cfg.LoginPath}
				q := url.Values{}
				q.Set("callbackUrl", r.URL.RequestURI())
				loginURL.RawQuery = q.Encode()
				http.Redirect(w, r, loginURL.String(), http.StatusFound)
				return
			}

			// Missing ADMIN role on an admin path: send home
			if adminRequired && !Allowed(claims, []models.Role{models.RoleAdmin}) {
				http.Redirect(w, r, cfg.HomePath, http.StatusFound)
				return
			}

			// Already authenticated users have no business on login/signup
			if claims != nil && (pathname == cfg.LoginPath || pathname == cfg.SignupPath) {
				http.Redirect(w, r, cfg.HomePath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// sessionClaims resolves the session cookie into claims. An absent cookie or
// an invalid/expired token both mean "no session" and return nil claims with
// no error; only configuration failures (missing secret) surface as errors.
func sessionClaims(r *http.Request, tokens *TokenService, cookieName string) (*Claims, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	claims, err := tokens.Parse(cookie.Value)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return nil, nil
		}
		return nil, err
	}

	return claims, nil
}

// hasPathPrefix reports whether the pathname starts with any of the prefixes
func hasPathPrefix(pathname string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(pathname, prefix) {
			return true
		}
	}
	return false
}

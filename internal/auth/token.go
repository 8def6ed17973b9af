package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/articlehub/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret means the signing secret is not configured. Unlike
	// ErrInvalidToken this is a server misconfiguration, not a bad client token.
	ErrNoSecret = errors.New("session secret is not configured")

	// ErrInvalidToken means the token failed signature or expiry validation
	ErrInvalidToken = errors.New("invalid or expired session token")
)

// TokenService signs and verifies stateless session tokens
type TokenService struct {
	secret string
	maxAge time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(secret string, maxAge time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		maxAge: maxAge,
	}
}

// MaxAge returns the fixed session lifetime
func (ts *TokenService) MaxAge() time.Duration {
	return ts.maxAge
}

// Issue builds claims from the user record and signs a session token that
// expires maxAge after issuance
func (ts *TokenService) Issue(user *models.User) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(ts.maxAge),
	}

	token, err := ts.sign(claims)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, claims, nil
}

// Refresh re-signs an existing session with the patched claim values.
// Fields absent from the patch are carried over unchanged, and the original
// issuance and expiry timestamps are preserved: refreshing never extends a
// session past its fixed maximum age.
//
// Refresh performs no store lookups and no password check. Callers must
// derive patch values from a trusted source, such as a database write they
// just performed.
func (ts *TokenService) Refresh(claims *Claims, patch ClaimsPatch) (string, *Claims, error) {
	updated := *claims
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Role != nil {
		updated.Role = *patch.Role
	}

	token, err := ts.sign(&updated)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign refreshed session token: %w", err)
	}

	return token, &updated, nil
}

// sign serializes claims into a signed HS256 token
func (ts *TokenService) sign(c *Claims) (string, error) {
	if ts.secret == "" {
		return "", ErrNoSecret
	}

	claims := jwt.MapClaims{
		"id":    c.ID,
		"email": c.Email,
		"name":  c.Name,
		"role":  string(c.Role),
		"iat":   c.IssuedAt.Unix(),
		"exp":   c.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ts.secret))
}

// Parse validates a session token and returns its claims
func (ts *TokenService) Parse(tokenString string) (*Claims, error) {
	if ts.secret == "" {
		return nil, ErrNoSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, ok := mapClaims["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: id not found in token", ErrInvalidToken)
	}

	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: email not found in token", ErrInvalidToken)
	}

	// Name may legitimately be empty
	name, _ := mapClaims["name"].(string)

	roleStr, ok := mapClaims["role"].(string)
	if !ok || !models.Role(roleStr).Valid() {
		return nil, fmt.Errorf("%w: role not found in token", ErrInvalidToken)
	}

	// JWT claims decode numbers as float64
	iat, ok := mapClaims["iat"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: iat not found in token", ErrInvalidToken)
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: exp not found in token", ErrInvalidToken)
	}

	return &Claims{
		ID:        id,
		Email:     email,
		Name:      name,
		Role:      models.Role(roleStr),
		IssuedAt:  time.Unix(int64(iat), 0),
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}

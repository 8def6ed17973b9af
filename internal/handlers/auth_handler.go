package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/articlehub/backend/internal/auth"
	"github.com/articlehub/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Authenticate verifies email/password credentials and returns the user.
	//
	// "email" and "password" parameters are the submitted credentials.
	//
	// If the credentials are wrong for any reason, models.ErrInvalidCredentials will be returned
	// together with "nil" value; unknown email and wrong password are indistinguishable.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	// Method Signup creates a new user account with the USER role.
	//
	// "req" parameter contains name, email and password.
	//
	// If the submitted fields are invalid or the email is taken, a validation error will be
	// returned together with "nil" value.
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
	tokens      *auth.TokenService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, tokens *auth.TokenService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		authService: authService,
		tokens:      tokens,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/signup", h.Signup)
		r.Post("/logout", h.Logout)
	})
}

// Login handles POST /auth/login
// @Summary Login user
// @Description Authenticate with email and password. On success the session token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} map[string]models.PublicUser "Login successful"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		h.respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// Uniform failure: no detail about which part of the credential was wrong
		if errors.Is(err, models.ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.respondServiceError(w, err)
		return
	}

	token, _, err := h.tokens.Issue(user)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	setSessionCookie(w, token, h.tokens.MaxAge())
	h.respondJSON(w, http.StatusOK, map[string]any{"user": user.Public()})
}

// Signup handles POST /auth/signup
// @Summary Register a new user
// @Description Create a user account and establish a session. The new user gets the USER role.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} map[string]models.PublicUser "User registered successfully"
// @Failure 400 {object} map[string]string "Invalid request body or email already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	token, _, err := h.tokens.Issue(user)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	setSessionCookie(w, token, h.tokens.MaxAge())
	h.respondJSON(w, http.StatusCreated, map[string]any{"user": user.Public()})
}

// Logout handles POST /auth/logout
// @Summary Logout user
// @Description Expire the session cookie. The token itself remains valid until its expiry since sessions are stateless.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Logout successful"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

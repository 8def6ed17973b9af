package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/articlehub/backend/internal/auth"
	"github.com/articlehub/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProfileService is the interface that wraps methods for profile business logic
type ProfileService interface {
	// Method UpdateName updates the caller's display name.
	//
	// "userID" parameter identifies the caller.
	// "name" parameter is the new display name.
	//
	// If the name is empty a validation error will be returned; if the user no longer
	// exists, models.ErrNotFound will be returned. On success the updated public user
	// fields are returned.
	UpdateName(ctx context.Context, userID, name string) (*models.PublicUser, error)
}

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	BaseHandler
	profileService ProfileService
	tokens         *auth.TokenService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService ProfileService, tokens *auth.TokenService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    BaseHandler{logger: logger},
		profileService: profileService,
		tokens:         tokens,
	}
}

// RegisterRoutes registers all profile handler routes
func (h *ProfileHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/user", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Put("/update", h.UpdateProfile)
	})
}

// UpdateProfile handles PUT /user/update
// @Summary Update profile
// @Description Update the caller's display name. The session token is re-signed in place with the new name; its expiry is not extended.
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} map[string]models.PublicUser "Profile updated successfully"
// @Failure 400 {object} map[string]string "Valid name is required"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /user/update [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.logger.Error("claims not found in context")
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.profileService.UpdateName(r.Context(), claims.ID, req.Name)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	// Refresh the session in place so the new name is visible without
	// re-authentication. The patch comes from the database write above.
	token, _, err := h.tokens.Refresh(claims, auth.ClaimsPatch{Name: &user.Name})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	setSessionCookie(w, token, time.Until(claims.ExpiresAt))

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": "profile updated successfully",
		"user":    user,
	})
}

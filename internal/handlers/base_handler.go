package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/articlehub/backend/internal/auth"
	"github.com/articlehub/backend/internal/models"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// respondServiceError translates a service error into the API error
// taxonomy. Internal failures get a generic message; details stay in the log.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.respondError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		h.respondError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, models.ErrUnauthorized):
		h.respondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, models.ErrForbidden):
		h.respondError(w, http.StatusForbidden, "you don't have permission to access this resource")
	case errors.Is(err, models.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "resource not found")
	default:
		h.logger.Error("internal error", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// setSessionCookie sets the signed session token as an HTTP-only cookie
func setSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

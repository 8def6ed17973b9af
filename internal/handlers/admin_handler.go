package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/articlehub/backend/internal/auth"
	"github.com/articlehub/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminService is the interface that wraps methods for admin user management business logic
type AdminService interface {
	// Method ListUsers retrieves all users ordered by creation date, newest first.
	//
	// If some error occurs, the error will be returned together with "nil" value.
	ListUsers(ctx context.Context) ([]models.UserListItem, error)
	// Method UpdateRole changes a user's role.
	//
	// "userID" parameter identifies the target user.
	// "role" parameter must be USER or ADMIN; anything else yields a validation error
	// and no mutation.
	//
	// If user with such ID does not exist, models.ErrNotFound will be returned together with "nil" value.
	UpdateRole(ctx context.Context, userID string, role models.Role) (*models.PublicUser, error)
	// Method DeleteUser deletes a user by ID. Self-deletion is forbidden.
	//
	// "callerID" parameter is the acting admin's user ID.
	// "userID" parameter identifies the user to delete.
	//
	// If the caller targets themselves, a validation error will be returned and the
	// user record is left unchanged.
	DeleteUser(ctx context.Context, callerID, userID string) error
}

// AdminArticleService is the interface that wraps the article methods available to admins
type AdminArticleService interface {
	// Method ListAll retrieves every article with author details.
	//
	// If some error occurs, the error will be returned together with "nil" value.
	ListAll(ctx context.Context) ([]models.Article, error)
}

// AdminHandler handles admin HTTP requests
type AdminHandler struct {
	BaseHandler
	adminService   AdminService
	articleService AdminArticleService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, articleService AdminArticleService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    BaseHandler{logger: logger},
		adminService:   adminService,
		articleService: articleService,
	}
}

// RegisterRoutes registers all admin handler routes
// Note: the caller must mount these behind the ADMIN role middleware
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/users", h.ListUsers)
		r.Patch("/users", h.UpdateUserRole)
		r.Delete("/users", h.DeleteUser)
		r.Get("/articles", h.ListArticles)
	})
}

// ListUsers handles GET /admin/users
// @Summary List all users
// @Description List all users with role and creation date. Requires the ADMIN role.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string][]models.UserListItem "User list"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - insufficient permissions"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	if users == nil {
		users = []models.UserListItem{}
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"users": users})
}

// UpdateUserRole handles PATCH /admin/users
// @Summary Change a user's role
// @Description Set a user's role to USER or ADMIN. The change takes effect on the target's next session issuance or refresh.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.UpdateRoleRequest true "Role update request"
// @Success 200 {object} map[string]models.PublicUser "Updated user"
// @Failure 400 {object} map[string]string "Invalid role value"
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users [patch]
func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.adminService.UpdateRole(r.Context(), req.ID, req.Role)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"user": user})
}

// DeleteUser handles DELETE /admin/users?id=
// @Summary Delete a user
// @Description Delete a user by ID. Self-deletion is rejected. Authored articles are removed by the database cascade.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id query string true "User ID"
// @Success 200 {object} map[string]string "User deleted successfully"
// @Failure 400 {object} map[string]string "Missing ID or self-deletion attempt"
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.logger.Error("claims not found in context")
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	userID := r.URL.Query().Get("id")
	if userID == "" {
		h.respondError(w, http.StatusBadRequest, "user id is required")
		return
	}

	if err := h.adminService.DeleteUser(r.Context(), claims.ID, userID); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "user deleted successfully"})
}

// ListArticles handles GET /admin/articles
// @Summary List all articles
// @Description List every article, published or not, with author details. Requires the ADMIN role.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string][]models.Article "Article list"
// @Failure 403 {object} map[string]string "Forbidden - insufficient permissions"
// @Router /admin/articles [get]
func (h *AdminHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.ListAll(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

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

// ArticleService is the interface that wraps methods for article business logic
type ArticleService interface {
	// Method ListOwn retrieves the caller's articles, published or not.
	//
	// "authorID" parameter identifies the caller.
	//
	// If some error occurs, the error will be returned together with "nil" value.
	ListOwn(ctx context.Context, authorID string) ([]models.Article, error)
	// Method Create creates a new article owned by the caller.
	//
	// "authorID" parameter identifies the caller.
	// "req" parameter contains title, content and the published flag.
	//
	// If title or content is missing, a validation error will be returned together with "nil" value.
	Create(ctx context.Context, authorID string, req *models.CreateArticleRequest) (*models.Article, error)
	// Method Get retrieves a single article for its author or an admin.
	//
	// If the caller is neither the author nor an admin, models.ErrForbidden will be returned
	// together with "nil" value.
	Get(ctx context.Context, callerID string, callerRole models.Role, articleID string) (*models.Article, error)
	// Method Update updates an article after re-checking ownership.
	//
	// Please reference Get method for ownership semantics.
	Update(ctx context.Context, callerID string, callerRole models.Role, articleID string, req *models.UpdateArticleRequest) (*models.Article, error)
	// Method Delete deletes an article after re-checking ownership.
	//
	// Please reference Get method for ownership semantics.
	Delete(ctx context.Context, callerID string, callerRole models.Role, articleID string) error
	// Method ListPublished retrieves all published articles for public view.
	//
	// If some error occurs, the error will be returned together with "nil" value.
	ListPublished(ctx context.Context) ([]models.Article, error)
	// Method GetPublished retrieves a single published article for public view.
	//
	// Unpublished articles are reported as models.ErrNotFound.
	GetPublished(ctx context.Context, articleID string) (*models.Article, error)
}

// ArticleHandler handles article HTTP requests
type ArticleHandler struct {
	BaseHandler
	articleService ArticleService
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService ArticleService, logger *zap.Logger) *ArticleHandler {
	return &ArticleHandler{
		BaseHandler:    BaseHandler{logger: logger},
		articleService: articleService,
	}
}

// RegisterRoutes registers article routes. The /articles group requires a
// session; the /public/articles group does not.
func (h *ArticleHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/articles", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.ListOwn)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	r.Route("/public/articles", func(r chi.Router) {
		r.Get("/", h.ListPublished)
		r.Get("/{id}", h.GetPublished)
	})
}

// ListOwn handles GET /articles
// @Summary List own articles
// @Description List the caller's articles, drafts included. Requires authentication.
// @Tags articles
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string][]models.Article "Article list"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Router /articles [get]
func (h *ArticleHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	articles, err := h.articleService.ListOwn(r.Context(), claims.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

// Create handles POST /articles
// @Summary Create an article
// @Description Create a new article owned by the caller. Requires authentication.
// @Tags articles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateArticleRequest true "Article to create"
// @Success 201 {object} map[string]models.Article "Article created successfully"
// @Failure 400 {object} map[string]string "Title and content are required"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Router /articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.articleService.Create(r.Context(), claims.ID, &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"message": "article created successfully",
		"article": article,
	})
}

// Get handles GET /articles/{id}
// @Summary Get an article
// @Description Fetch a single article by ID. Only the author or an admin may view it.
// @Tags articles
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]models.Article "Article"
// @Failure 403 {object} map[string]string "Forbidden - not the author"
// @Failure 404 {object} map[string]string "Article not found"
// @Router /articles/{id} [get]
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	article, err := h.articleService.Get(r.Context(), claims.ID, claims.Role, chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"article": article})
}

// Update handles PUT /articles/{id}
// @Summary Update an article
// @Description Update an article's title, content and published flag. Only the author or an admin may update it.
// @Tags articles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Article ID"
// @Param request body models.UpdateArticleRequest true "New article fields"
// @Success 200 {object} map[string]models.Article "Article updated successfully"
// @Failure 400 {object} map[string]string "Title and content are required"
// @Failure 403 {object} map[string]string "Forbidden - not the author"
// @Failure 404 {object} map[string]string "Article not found"
// @Router /articles/{id} [put]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.articleService.Update(r.Context(), claims.ID, claims.Role, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": "article updated successfully",
		"article": article,
	})
}

// Delete handles DELETE /articles/{id}
// @Summary Delete an article
// @Description Delete an article by ID. Only the author or an admin may delete it.
// @Tags articles
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]string "Article deleted successfully"
// @Failure 403 {object} map[string]string "Forbidden - not the author"
// @Failure 404 {object} map[string]string "Article not found"
// @Router /articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.articleService.Delete(r.Context(), claims.ID, claims.Role, chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "article deleted successfully"})
}

// ListPublished handles GET /public/articles
// @Summary List published articles
// @Description List all published articles with author details. No authentication required.
// @Tags public
// @Produce json
// @Success 200 {object} map[string][]models.Article "Article list"
// @Router /public/articles [get]
func (h *ArticleHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.ListPublished(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

// GetPublished handles GET /public/articles/{id}
// @Summary Get a published article
// @Description Fetch a single published article by ID. Unpublished drafts are not found. No authentication required.
// @Tags public
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]models.Article "Article"
// @Failure 404 {object} map[string]string "Article not found"
// @Router /public/articles/{id} [get]
func (h *ArticleHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	article, err := h.articleService.GetPublished(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"article": article})
}

package services

import (
	"context"

	"github.com/articlehub/backend/internal/models"
	"go.uber.org/zap"
)

// ArticleRepository is the interface that wraps methods for Article table data access
type ArticleRepository interface {
	// Method Create inserts a new article into the database.
	//
	// "article" parameter is used to create a new article.
	//
	// If some error occurs during article creation, the error will be returned.
	Create(ctx context.Context, article *models.Article) error
	// Method GetByID retrieves an article with its author by ID.
	//
	// "articleID" parameter is used to retrieve an article by ID.
	//
	// If article with such ID does not exist, models.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, articleID string) (*models.Article, error)
	// Method GetByAuthor retrieves all articles authored by the given user.
	//
	// "authorID" parameter is used to retrieve articles by author.
	//
	// If some error occurs, the error will be returned together with "nil" value.
	GetByAuthor(ctx context.Context, authorID string) ([]models.Article, error)
	// Method GetPublished retrieves all published articles with their authors.
	//
	// If some error occurs, the error will be returned together with "nil" value.
	GetPublished(ctx context.Context) ([]models.Article, error)
	// Method GetAll retrieves every article with its author.
	//
	// If some error occurs, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Article, error)
	// Method Update updates an article's title, content and published flag.
	//
	// "articleID" parameter is used to identify the article.
	//
	// If some error occurs during the update, the error will be returned.
	Update(ctx context.Context, articleID, title, content string, published bool) error
	// Method Delete deletes an article by ID.
	//
	// "articleID" parameter is used to identify the article to delete.
	//
	// If article with such ID does not exist, models.ErrNotFound will be returned.
	Delete(ctx context.Context, articleID string) error
}

// articleService implements article business logic
type articleService struct {
	articleRepo ArticleRepository
	logger      *zap.Logger
}

// NewArticleService creates a new article service
func NewArticleService(articleRepo ArticleRepository, logger *zap.Logger) *articleService {
	return &articleService{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

// ListOwn retrieves the caller's articles, published or not
func (s *articleService) ListOwn(ctx context.Context, authorID string) ([]models.Article, error) {
	return s.articleRepo.GetByAuthor(ctx, authorID)
}

// Create creates a new article owned by the caller
func (s *articleService) Create(ctx context.Context, authorID string, req *models.CreateArticleRequest) (*models.Article, error) {
	if req.Title == "" {
		return nil, models.NewValidationError("title", "title is required")
	}
	if req.Content == "" {
		return nil, models.NewValidationError("content", "content is required")
	}

	article := &models.Article{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
		AuthorID:  authorID,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	// Re-fetch to pick up database-assigned timestamps and the author
	return s.articleRepo.GetByID(ctx, article.ID)
}

// Get retrieves a single article for its author or an admin. Every read of
// an unpublished draft re-checks ownership here regardless of what any
// client-side gate decided.
func (s *articleService) Get(ctx context.Context, callerID string, callerRole models.Role, articleID string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if !canAccess(article, callerID, callerRole) {
		return nil, models.ErrForbidden
	}

	return article, nil
}

// Update updates an article after re-checking ownership
func (s *articleService) Update(ctx context.Context, callerID string, callerRole models.Role, articleID string, req *models.UpdateArticleRequest) (*models.Article, error) {
	if req.Title == "" {
		return nil, models.NewValidationError("title", "title is required")
	}
	if req.Content == "" {
		return nil, models.NewValidationError("content", "content is required")
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if !canAccess(article, callerID, callerRole) {
		return nil, models.ErrForbidden
	}

	if err := s.articleRepo.Update(ctx, articleID, req.Title, req.Content, req.Published); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(ctx, articleID)
}

// Delete deletes an article after re-checking ownership
func (s *articleService) Delete(ctx context.Context, callerID string, callerRole models.Role, articleID string) error {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return err
	}

	if !canAccess(article, callerID, callerRole) {
		return models.ErrForbidden
	}

	return s.articleRepo.Delete(ctx, articleID)
}

// ListPublished retrieves all published articles for the public listing
func (s *articleService) ListPublished(ctx context.Context) ([]models.Article, error) {
	return s.articleRepo.GetPublished(ctx)
}

// GetPublished retrieves a single published article for public view.
// Unpublished drafts are reported as not found rather than forbidden so the
// public endpoint leaks nothing about their existence.
func (s *articleService) GetPublished(ctx context.Context, articleID string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if !article.Published {
		return nil, models.ErrNotFound
	}

	return article, nil
}

// ListAll retrieves every article with author details for the admin view
func (s *articleService) ListAll(ctx context.Context) ([]models.Article, error) {
	return s.articleRepo.GetAll(ctx)
}

// canAccess is the per-resource ownership check: the author or an admin
func canAccess(article *models.Article, callerID string, callerRole models.Role) bool {
	return article.AuthorID == callerID || callerRole == models.RoleAdmin
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/articlehub/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// articleRepository implements article data access over MySQL
type articleRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sql.DB, logger *zap.Logger) *articleRepository {
	return &articleRepository{
		db:     db,
		logger: logger,
	}
}

// articleWithAuthorColumns is the select list shared by all queries that
// join the author
const articleWithAuthorColumns = `
	a.id, a.title, a.content, a.published, a.author_id, a.created_at, a.updated_at,
	u.id, u.name, u.email, u.role
`

// Create inserts a new article into the database, generating an ID when absent
func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}

	query := `
		INSERT INTO articles (id, title, content, published, author_id)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, article.ID, article.Title, article.Content, article.Published, article.AuthorID)
	if err != nil {
		r.logger.Error("failed to create article", zap.Error(err))
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

// GetByID retrieves an article with its author by ID
func (r *articleRepository) GetByID(ctx context.Context, articleID string) (*models.Article, error) {
	query := `
		SELECT ` + articleWithAuthorColumns + `
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.id = ?
	`

	article, err := r.scanArticle(r.db.QueryRowContext(ctx, query, articleID))
	if err != nil {
		return nil, err
	}

	return article, nil
}

// GetByAuthor retrieves all articles authored by the given user, newest first
func (r *articleRepository) GetByAuthor(ctx context.Context, authorID string) ([]models.Article, error) {
	query := `
		SELECT id, title, content, published, author_id, created_at, updated_at
		FROM articles
		WHERE author_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		r.logger.Error("failed to get articles by author", zap.Error(err), zap.String("authorId", authorID))
		return nil, fmt.Errorf("failed to get articles by author: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Published, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			r.logger.Error("failed to scan article row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate article rows: %w", err)
	}

	return articles, nil
}

// GetPublished retrieves all published articles with authors, newest first
func (r *articleRepository) GetPublished(ctx context.Context) ([]models.Article, error) {
	query := `
		SELECT ` + articleWithAuthorColumns + `
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.published = TRUE
		ORDER BY a.created_at DESC
	`

	return r.queryArticles(ctx, query)
}

// GetAll retrieves every article with its author, newest first
func (r *articleRepository) GetAll(ctx context.Context) ([]models.Article, error) {
	query := `
		SELECT ` + articleWithAuthorColumns + `
		FROM articles a
		JOIN users u ON u.id = a.author_id
		ORDER BY a.created_at DESC
	`

	return r.queryArticles(ctx, query)
}

// Update updates an article's title, content and published flag
func (r *articleRepository) Update(ctx context.Context, articleID, title, content string, published bool) error {
	query := `UPDATE articles SET title = ?, content = ?, published = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, title, content, published, articleID)
	if err != nil {
		r.logger.Error("failed to update article", zap.Error(err), zap.String("articleId", articleID))
		return fmt.Errorf("failed to update article: %w", err)
	}

	return nil
}

// Delete deletes an article by ID
func (r *articleRepository) Delete(ctx context.Context, articleID string) error {
	query := `DELETE FROM articles WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, articleID)
	if err != nil {
		r.logger.Error("failed to delete article", zap.Error(err), zap.String("articleId", articleID))
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return rowsAffectedOrNotFound(result)
}

// queryArticles runs a query over the article/author join and scans all rows
func (r *articleRepository) queryArticles(ctx context.Context, query string, args ...any) ([]models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query articles", zap.Error(err))
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		var author models.PublicUser
		var authorName sql.NullString
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Content, &a.Published, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt,
			&author.ID, &authorName, &author.Email, &author.Role,
		); err != nil {
			r.logger.Error("failed to scan article row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		author.Name = authorName.String
		a.Author = &author
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate article rows: %w", err)
	}

	return articles, nil
}

// scanArticle scans a single article/author row, mapping sql.ErrNoRows to
// models.ErrNotFound
func (r *articleRepository) scanArticle(row *sql.Row) (*models.Article, error) {
	a := &models.Article{}
	var author models.PublicUser
	var authorName sql.NullString
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Published, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt,
		&author.ID, &authorName, &author.Email, &author.Role,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to scan article", zap.Error(err))
		return nil, fmt.Errorf("failed to scan article: %w", err)
	}

	author.Name = authorName.String
	a.Author = &author
	return a, nil
}

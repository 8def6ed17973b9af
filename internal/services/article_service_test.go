package services

import (
	"context"
	"errors"
	"testing"

	"github.com/articlehub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockArticleRepo is a mock implementation of ArticleRepository
type mockArticleRepo struct {
	article   *models.Article
	articles  []models.Article
	err       error
	created   *models.Article
	updated   bool
	deletedID string
}

func (m *mockArticleRepo) Create(ctx context.Context, article *models.Article) error {
	if m.err != nil {
		return m.err
	}
	article.ID = "generated-id"
	m.created = article
	m.article = article
	return nil
}

func (m *mockArticleRepo) GetByID(ctx context.Context, articleID string) (*models.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.article == nil || m.article.ID != articleID {
		return nil, models.ErrNotFound
	}
	return m.article, nil
}

func (m *mockArticleRepo) GetByAuthor(ctx context.Context, authorID string) ([]models.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.articles, nil
}

func (m *mockArticleRepo) GetPublished(ctx context.Context) ([]models.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.articles, nil
}

func (m *mockArticleRepo) GetAll(ctx context.Context) ([]models.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.articles, nil
}

func (m *mockArticleRepo) Update(ctx context.Context, articleID, title, content string, published bool) error {
	if m.err != nil {
		return m.err
	}
	m.updated = true
	m.article.Title = title
	m.article.Content = content
	m.article.Published = published
	return nil
}

func (m *mockArticleRepo) Delete(ctx context.Context, articleID string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = articleID
	return nil
}

func draftArticle() *models.Article {
	return &models.Article{
		ID:        "a1",
		Title:     "Draft",
		Content:   "Work in progress",
		Published: false,
		AuthorID:  "author-1",
	}
}

func TestArticleService_Create(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name          string
		req           *models.CreateArticleRequest
		mockRepo      *mockArticleRepo
		expectedError bool
	}{
		{
			name:          "success",
			req:           &models.CreateArticleRequest{Title: "Hello", Content: "World", Published: true},
			mockRepo:      &mockArticleRepo{},
			expectedError: false,
		},
		{
			name:          "missing title",
			req:           &models.CreateArticleRequest{Content: "World"},
			mockRepo:      &mockArticleRepo{},
			expectedError: true,
		},
		{
			name:          "missing content",
			req:           &models.CreateArticleRequest{Title: "Hello"},
			mockRepo:      &mockArticleRepo{},
			expectedError: true,
		},
		{
			name:          "repository error",
			req:           &models.CreateArticleRequest{Title: "Hello", Content: "World"},
			mockRepo:      &mockArticleRepo{err: errors.New("database error")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewArticleService(tt.mockRepo, logger)

			article, err := svc.Create(context.Background(), "author-1", tt.req)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, article)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, article)
				assert.Equal(t, "author-1", article.AuthorID)
				assert.Equal(t, tt.req.Title, article.Title)
			}
		})
	}
}

func TestArticleService_Get_Ownership(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name          string
		callerID      string
		callerRole    models.Role
		articleID     string
		expectedError error
	}{
		{
			name:       "author reads own draft",
			callerID:   "author-1",
			callerRole: models.RoleUser,
			articleID:  "a1",
		},
		{
			name:          "other user is forbidden",
			callerID:      "author-2",
			callerRole:    models.RoleUser,
			articleID:     "a1",
			expectedError: models.ErrForbidden,
		},
		{
			name:       "admin reads any draft",
			callerID:   "admin-1",
			callerRole: models.RoleAdmin,
			articleID:  "a1",
		},
		{
			name:          "article not found",
			callerID:      "author-1",
			callerRole:    models.RoleUser,
			articleID:     "missing",
			expectedError: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockArticleRepo{article: draftArticle()}
			svc := NewArticleService(repo, logger)

			article, err := svc.Get(context.Background(), tt.callerID, tt.callerRole, tt.articleID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, article)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, article)
				assert.Equal(t, tt.articleID, article.ID)
			}
		})
	}
}

func TestArticleService_Update_Ownership(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	req := &models.UpdateArticleRequest{Title: "Updated", Content: "Updated content", Published: true}

	tests := []struct {
		name          string
		callerID      string
		callerRole    models.Role
		req           *models.UpdateArticleRequest
		expectedError error
		expectUpdated bool
	}{
		{
			name:          "author updates own article",
			callerID:      "author-1",
			callerRole:    models.RoleUser,
			req:           req,
			expectUpdated: true,
		},
		{
			name:          "admin updates any article",
			callerID:      "admin-1",
			callerRole:    models.RoleAdmin,
			req:           req,
			expectUpdated: true,
		},
		{
			name:          "other user is forbidden",
			callerID:      "author-2",
			callerRole:    models.RoleUser,
			req:           req,
			expectedError: models.ErrForbidden,
		},
		{
			name:       "missing title rejected before any read",
			callerID:   "author-1",
			callerRole: models.RoleUser,
			req:        &models.UpdateArticleRequest{Content: "Updated content"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockArticleRepo{article: draftArticle()}
			svc := NewArticleService(repo, logger)

			article, err := svc.Update(context.Background(), tt.callerID, tt.callerRole, "a1", tt.req)

			if tt.expectUpdated {
				assert.NoError(t, err)
				assert.NotNil(t, article)
				assert.True(t, repo.updated)
				assert.Equal(t, "Updated", article.Title)
				return
			}

			assert.Error(t, err)
			assert.Nil(t, article)
			assert.False(t, repo.updated)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			}
		})
	}
}

func TestArticleService_Delete_Ownership(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name          string
		callerID      string
		callerRole    models.Role
		expectedError error
	}{
		{
			name:       "author deletes own article",
			callerID:   "author-1",
			callerRole: models.RoleUser,
		},
		{
			name:       "admin deletes any article",
			callerID:   "admin-1",
			callerRole: models.RoleAdmin,
		},
		{
			name:          "other user is forbidden",
			callerID:      "author-2",
			callerRole:    models.RoleUser,
			expectedError: models.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockArticleRepo{article: draftArticle()}
			svc := NewArticleService(repo, logger)

			err := svc.Delete(context.Background(), tt.callerID, tt.callerRole, "a1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, repo.deletedID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "a1", repo.deletedID)
			}
		})
	}
}

func TestArticleService_GetPublished(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("published article is returned", func(t *testing.T) {
		article := draftArticle()
		article.Published = true
		repo := &mockArticleRepo{article: article}
		svc := NewArticleService(repo, logger)

		got, err := svc.GetPublished(context.Background(), "a1")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.True(t, got.Published)
	})

	t.Run("unpublished draft is not found", func(t *testing.T) {
		repo := &mockArticleRepo{article: draftArticle()}
		svc := NewArticleService(repo, logger)

		got, err := svc.GetPublished(context.Background(), "a1")

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("missing article is not found", func(t *testing.T) {
		repo := &mockArticleRepo{}
		svc := NewArticleService(repo, logger)

		got, err := svc.GetPublished(context.Background(), "missing")

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestArticleService_Lists(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	articles := []models.Article{
		{ID: "a1", Title: "One", AuthorID: "author-1", Published: true},
		{ID: "a2", Title: "Two", AuthorID: "author-1", Published: false},
	}

	t.Run("list own", func(t *testing.T) {
		svc := NewArticleService(&mockArticleRepo{articles: articles}, logger)
		got, err := svc.ListOwn(context.Background(), "author-1")
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("list published", func(t *testing.T) {
		svc := NewArticleService(&mockArticleRepo{articles: articles[:1]}, logger)
		got, err := svc.ListPublished(context.Background())
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("list all", func(t *testing.T) {
		svc := NewArticleService(&mockArticleRepo{articles: articles}, logger)
		got, err := svc.ListAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		svc := NewArticleService(&mockArticleRepo{err: errors.New("database error")}, logger)
		got, err := svc.ListAll(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

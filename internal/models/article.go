package models

import "time"

// Article represents an article in the system
type Article struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Published bool        `json:"published"`
	AuthorID  string      `json:"authorId"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Author    *PublicUser `json:"author,omitempty"`
}

// CreateArticleRequest represents an article creation request
type CreateArticleRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// UpdateArticleRequest represents an article update request
type UpdateArticleRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

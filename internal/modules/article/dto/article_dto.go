package dto

import (
	"time"

	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
)

type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required,min=3,max=255"`
	Content string `json:"content" binding:"required,min=10"`
	Status  string `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateArticleRequest struct {
	Title   string `json:"title" binding:"omitempty,min=3,max=255"`
	Content string `json:"content" binding:"omitempty,min=10"`
	Status  string `json:"status" binding:"omitempty,oneof=draft published archived"`
}

type ArticleFilter struct {
	dto.PageFilter
	Status string `form:"status" binding:"omitempty,oneof=draft published archived"`
	Search string `form:"search"`
}

type ArticleResponse struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Slug         string             `json:"slug"`
	Content      string             `json:"content"`
	Status       string             `json:"status"`
	Author       dto.AuthorResponse `json:"author"`
	CommentCount int64              `json:"comment_count"`
	Rating       dto.RatingSummary  `json:"rating"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type PaginatedArticleResponse struct {
	Data []ArticleResponse  `json:"data"`
	Meta dto.PaginationMeta `json:"meta"`
}

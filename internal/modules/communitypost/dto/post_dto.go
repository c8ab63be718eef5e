package dto

import (
	"time"

	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=255"`
	Content string  `json:"content" binding:"required,min=1,max=10000"`
}

type UpdatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=255"`
	Content string  `json:"content" binding:"omitempty,min=1,max=10000"`
}

type PostResponse struct {
	ID           uuid.UUID          `json:"id"`
	Title        *string            `json:"title,omitempty"`
	Content      string             `json:"content"`
	Status       int16              `json:"status"`
	Author       dto.AuthorResponse `json:"author"`
	CommentCount int64              `json:"comment_count"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type PaginatedPostResponse struct {
	Data []PostResponse     `json:"data"`
	Meta dto.PaginationMeta `json:"meta"`
}

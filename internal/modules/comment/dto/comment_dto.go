package dto

import (
	"time"

	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
)

type PostCommentRequest struct {
	OwnerID   string  `json:"owner_id" binding:"required,uuid"`
	OwnerType string  `json:"owner_type" binding:"required"`
	Content   string  `json:"content" binding:"required,min=1,max=5000"`
	ParentID  *string `json:"parent_id" binding:"omitempty,uuid"`
}

type EditCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

type ModerateCommentRequest struct {
	Status int16 `json:"status" binding:"required,oneof=-1 0 1"`
}

type CommentResponse struct {
	ID         uuid.UUID          `json:"id"`
	OwnerID    uuid.UUID          `json:"owner_id"`
	OwnerType  string             `json:"owner_type"`
	AuthorID   uuid.UUID          `json:"author_id"`
	Author     dto.AuthorResponse `json:"author"`
	ParentID   *uuid.UUID         `json:"parent_id,omitempty"`
	Content    string             `json:"content"`
	Status     int16              `json:"status"`
	ReplyCount int64              `json:"reply_count"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type PaginatedCommentResponse struct {
	Data []CommentResponse  `json:"data"`
	Meta dto.PaginationMeta `json:"meta"`
}

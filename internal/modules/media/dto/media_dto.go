package dto

import (
	"time"

	"github.com/google/uuid"
)

type AttachMediaRequest struct {
	ReferenceID   string `form:"reference_id" binding:"required,uuid"`
	ReferenceType string `form:"reference_type" binding:"required"`
	Title         string `form:"title" binding:"omitempty,max=150"`
	Description   string `form:"description" binding:"omitempty,max=2000"`
	MediaType     string `form:"media_type" binding:"omitempty,oneof=image video document"`
}

type UpdateMediaRequest struct {
	Title       string `json:"title" binding:"omitempty,max=150"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	MediaType   string `json:"media_type" binding:"omitempty,oneof=image video document"`
}

type MediaResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	ReferenceID   uuid.UUID  `json:"reference_id"`
	ReferenceType string     `json:"reference_type"`
	FileURL       string     `json:"file_url"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	MediaType     string     `json:"media_type"`
	Status        int16      `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

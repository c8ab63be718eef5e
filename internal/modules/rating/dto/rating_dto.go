package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRatingRequest struct {
	ReferenceID   string  `json:"reference_id" binding:"required,uuid"`
	ReferenceType string  `json:"reference_type" binding:"required"`
	Value         float64 `json:"value" binding:"required"`
	Comment       *string `json:"comment" binding:"omitempty,max=2000"`
}

type UpdateRatingRequest struct {
	Value   float64 `json:"value" binding:"required"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

type RatingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ReferenceID   uuid.UUID `json:"reference_id"`
	ReferenceType string    `json:"reference_type"`
	Value         float64   `json:"value"`
	Comment       *string   `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RatingSummaryResponse struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

package dto

import (
	"time"

	ratingDto "anoa.com/wisatapedia/internal/modules/rating/dto"
	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
)

type CreateOrganizerRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=150"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Website     *string `json:"website" binding:"omitempty,url,max=255"`
	Description string  `json:"description" binding:"omitempty,max=10000"`
}

type UpdateOrganizerRequest struct {
	Name        string  `json:"name" binding:"omitempty,min=2,max=150"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Website     *string `json:"website" binding:"omitempty,url,max=255"`
	Description *string `json:"description" binding:"omitempty,max=10000"`
}

type OrganizerResponse struct {
	ID          uuid.UUID                       `json:"id"`
	Name        string                          `json:"name"`
	Email       *string                         `json:"email,omitempty"`
	Website     *string                         `json:"website,omitempty"`
	Description string                          `json:"description"`
	Rating      *ratingDto.RatingSummaryResponse `json:"rating,omitempty"`
	CreatedAt   time.Time                       `json:"created_at"`
	UpdatedAt   time.Time                       `json:"updated_at"`
}

type CreateEventRequest struct {
	OrganizerID string    `json:"organizer_id" binding:"required,uuid"`
	LocationID  *string   `json:"location_id" binding:"omitempty,uuid"`
	Name        string    `json:"name" binding:"required,min=2,max=150"`
	Description string    `json:"description" binding:"omitempty,max=10000"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at" binding:"required"`
}

type UpdateEventRequest struct {
	LocationID  *string    `json:"location_id" binding:"omitempty,uuid"`
	Name        string     `json:"name" binding:"omitempty,min=2,max=150"`
	Description *string    `json:"description" binding:"omitempty,max=10000"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

type EventFilter struct {
	dto.PageFilter
	OrganizerID string `form:"organizer_id" binding:"omitempty,uuid"`
	Upcoming    bool   `form:"upcoming"`
}

type EventResponse struct {
	ID          uuid.UUID                       `json:"id"`
	OrganizerID uuid.UUID                       `json:"organizer_id"`
	LocationID  *uuid.UUID                      `json:"location_id,omitempty"`
	Name        string                          `json:"name"`
	Slug        string                          `json:"slug"`
	Description string                          `json:"description"`
	StartsAt    time.Time                       `json:"starts_at"`
	EndsAt      time.Time                       `json:"ends_at"`
	Rating      *ratingDto.RatingSummaryResponse `json:"rating,omitempty"`
	CreatedAt   time.Time                       `json:"created_at"`
	UpdatedAt   time.Time                       `json:"updated_at"`
}

type PaginatedEventResponse struct {
	Data []EventResponse    `json:"data"`
	Meta dto.PaginationMeta `json:"meta"`
}

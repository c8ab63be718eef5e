package dto

import (
	"time"

	ratingDto "anoa.com/wisatapedia/internal/modules/rating/dto"
	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	WardID      string   `json:"ward_id" binding:"required,uuid"`
	Name        string   `json:"name" binding:"required,min=2,max=150"`
	Category    string   `json:"category" binding:"required,max=50"`
	Description string   `json:"description" binding:"omitempty,max=10000"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type UpdateLocationRequest struct {
	Name        string   `json:"name" binding:"omitempty,min=2,max=150"`
	Category    string   `json:"category" binding:"omitempty,max=50"`
	Description *string  `json:"description" binding:"omitempty,max=10000"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type LocationFilter struct {
	dto.PageFilter
	WardID   string `form:"ward_id" binding:"omitempty,uuid"`
	Category string `form:"category" binding:"omitempty,max=50"`
}

type LocationResponse struct {
	ID          uuid.UUID                       `json:"id"`
	WardID      uuid.UUID                       `json:"ward_id"`
	Name        string                          `json:"name"`
	Slug        string                          `json:"slug"`
	Category    string                          `json:"category"`
	Description string                          `json:"description"`
	Latitude    *float64                        `json:"latitude,omitempty"`
	Longitude   *float64                        `json:"longitude,omitempty"`
	Rating      *ratingDto.RatingSummaryResponse `json:"rating,omitempty"`
	CreatedAt   time.Time                       `json:"created_at"`
	UpdatedAt   time.Time                       `json:"updated_at"`
}

type PaginatedLocationResponse struct {
	Data []LocationResponse `json:"data"`
	Meta dto.PaginationMeta `json:"meta"`
}

type CreateAccommodationRequest struct {
	WardID        string  `json:"ward_id" binding:"required,uuid"`
	Name          string  `json:"name" binding:"required,min=2,max=150"`
	Type          string  `json:"type" binding:"required,max=50"`
	Description   string  `json:"description" binding:"omitempty,max=10000"`
	PricePerNight float64 `json:"price_per_night" binding:"required,min=0"`
}

type UpdateAccommodationRequest struct {
	Name          string   `json:"name" binding:"omitempty,min=2,max=150"`
	Type          string   `json:"type" binding:"omitempty,max=50"`
	Description   *string  `json:"description" binding:"omitempty,max=10000"`
	PricePerNight *float64 `json:"price_per_night" binding:"omitempty,min=0"`
}

type AccommodationFilter struct {
	dto.PageFilter
	WardID   string   `form:"ward_id" binding:"omitempty,uuid"`
	Type     string   `form:"type" binding:"omitempty,max=50"`
	MinPrice *float64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,min=0"`
}

type AccommodationResponse struct {
	ID            uuid.UUID                       `json:"id"`
	WardID        uuid.UUID                       `json:"ward_id"`
	Name          string                          `json:"name"`
	Slug          string                          `json:"slug"`
	Type          string                          `json:"type"`
	Description   string                          `json:"description"`
	PricePerNight float64                         `json:"price_per_night"`
	Rating        *ratingDto.RatingSummaryResponse `json:"rating,omitempty"`
	CreatedAt     time.Time                       `json:"created_at"`
	UpdatedAt     time.Time                       `json:"updated_at"`
}

type PaginatedAccommodationResponse struct {
	Data []AccommodationResponse `json:"data"`
	Meta dto.PaginationMeta      `json:"meta"`
}

type CreateFoodRequest struct {
	WardID      string   `json:"ward_id" binding:"required,uuid"`
	Name        string   `json:"name" binding:"required,min=2,max=150"`
	Cuisine     string   `json:"cuisine" binding:"omitempty,max=50"`
	Description string   `json:"description" binding:"omitempty,max=10000"`
	PriceFrom   *float64 `json:"price_from" binding:"omitempty,min=0"`
	PriceTo     *float64 `json:"price_to" binding:"omitempty,min=0"`
}

type UpdateFoodRequest struct {
	Name        string   `json:"name" binding:"omitempty,min=2,max=150"`
	Cuisine     string   `json:"cuisine" binding:"omitempty,max=50"`
	Description *string  `json:"description" binding:"omitempty,max=10000"`
	PriceFrom   *float64 `json:"price_from" binding:"omitempty,min=0"`
	PriceTo     *float64 `json:"price_to" binding:"omitempty,min=0"`
}

type FoodFilter struct {
	dto.PageFilter
	WardID  string `form:"ward_id" binding:"omitempty,uuid"`
	Cuisine string `form:"cuisine" binding:"omitempty,max=50"`
}

type FoodResponse struct {
	ID          uuid.UUID                       `json:"id"`
	WardID      uuid.UUID                       `json:"ward_id"`
	Name        string                          `json:"name"`
	Slug        string                          `json:"slug"`
	Cuisine     string                          `json:"cuisine"`
	Description string                          `json:"description"`
	PriceFrom   *float64                        `json:"price_from,omitempty"`
	PriceTo     *float64                        `json:"price_to,omitempty"`
	Rating      *ratingDto.RatingSummaryResponse `json:"rating,omitempty"`
	CreatedAt   time.Time                       `json:"created_at"`
	UpdatedAt   time.Time                       `json:"updated_at"`
}

type PaginatedFoodResponse struct {
	Data []FoodResponse     `json:"data"`
	Meta dto.PaginationMeta `json:"meta"`
}

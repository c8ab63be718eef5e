package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContinentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Code string `json:"code" binding:"required,min=2,max=10"`
}

type CreateCountryRequest struct {
	ContinentID string `json:"continent_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Code        string `json:"code" binding:"required,min=2,max=10"`
}

type CreateRegionRequest struct {
	CountryID string `json:"country_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
}

type CreateDistrictRequest struct {
	RegionID string `json:"region_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
}

type CreateWardRequest struct {
	DistrictID string `json:"district_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required,min=2,max=100"`
}

type RenameRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type PlaceNodeResponse struct {
	ID        uuid.UUID `json:"id"`
	ParentID  uuid.UUID `json:"parent_id,omitempty"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Slug      string    `json:"slug,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

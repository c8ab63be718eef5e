package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Geography reference data. A strict hierarchy:
// Continent -> Country -> Region -> District -> Ward.

type Continent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Code      string         `gorm:"size:10;uniqueIndex;not null" json:"code"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Continent) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

type Country struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ContinentID uuid.UUID      `gorm:"type:uuid;not null;index" json:"continent_id"`
	Continent   Continent      `gorm:"constraint:OnDelete:CASCADE" json:"continent,omitempty"`
	Name        string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Code        string         `gorm:"size:10;uniqueIndex;not null" json:"code"` // ISO 3166-1 alpha-2
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Country) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

type Region struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CountryID uuid.UUID      `gorm:"type:uuid;not null;index:idx_regions_country_name,unique,priority:1" json:"country_id"`
	Country   Country        `gorm:"constraint:OnDelete:CASCADE" json:"country,omitempty"`
	Name      string         `gorm:"size:100;not null;index:idx_regions_country_name,unique,priority:2" json:"name"`
	Slug      string         `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Region) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID, err = uuid.NewV7()
	}
	return
}

// Name uniqueness for regions/districts/wards is scoped to the parent, not
// global; the composite indexes mirror that.

type District struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	RegionID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_districts_region_name,unique,priority:1" json:"region_id"`
	Region    Region         `gorm:"constraint:OnDelete:CASCADE" json:"region,omitempty"`
	Name      string         `gorm:"size:100;not null;index:idx_districts_region_name,unique,priority:2" json:"name"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (d *District) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID, err = uuid.NewV7()
	}
	return
}

type Ward struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	DistrictID uuid.UUID      `gorm:"type:uuid;not null;index:idx_wards_district_name,unique,priority:1" json:"district_id"`
	District   District       `gorm:"constraint:OnDelete:CASCADE" json:"district,omitempty"`
	Name       string         `gorm:"size:100;not null;index:idx_wards_district_name,unique,priority:2" json:"name"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (w *Ward) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID, err = uuid.NewV7()
	}
	return
}

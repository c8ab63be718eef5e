package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Points of interest. Each place lives in a ward; name uniqueness is scoped
// to the ward so two cities can both have a "Central Market".

type Location struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	WardID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_locations_ward_name,unique,priority:1" json:"ward_id"`
	Ward        Ward           `gorm:"constraint:OnDelete:CASCADE" json:"ward,omitempty"`
	Name        string         `gorm:"size:150;not null;index:idx_locations_ward_name,unique,priority:2" json:"name"`
	Slug        string         `gorm:"size:180;uniqueIndex;not null" json:"slug"`
	Category    string         `gorm:"size:50;not null;index" json:"category"` // 'nature', 'culture', 'landmark', ...
	Description string         `gorm:"type:text" json:"description"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (l *Location) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID, err = uuid.NewV7()
	}
	return
}

type Accommodation struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	WardID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_accommodations_ward_name,unique,priority:1" json:"ward_id"`
	Ward          Ward           `gorm:"constraint:OnDelete:CASCADE" json:"ward,omitempty"`
	Name          string         `gorm:"size:150;not null;index:idx_accommodations_ward_name,unique,priority:2" json:"name"`
	Slug          string         `gorm:"size:180;uniqueIndex;not null" json:"slug"`
	Type          string         `gorm:"size:50;not null;index" json:"type"` // 'hotel', 'hostel', 'homestay', ...
	Description   string         `gorm:"type:text" json:"description"`
	PricePerNight float64        `gorm:"not null;index" json:"price_per_night"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Accommodation) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID, err = uuid.NewV7()
	}
	return
}

type Food struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	WardID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_foods_ward_name,unique,priority:1" json:"ward_id"`
	Ward        Ward           `gorm:"constraint:OnDelete:CASCADE" json:"ward,omitempty"`
	Name        string         `gorm:"size:150;not null;index:idx_foods_ward_name,unique,priority:2" json:"name"`
	Slug        string         `gorm:"size:180;uniqueIndex;not null" json:"slug"`
	Cuisine     string         `gorm:"size:50;index" json:"cuisine"`
	Description string         `gorm:"type:text" json:"description"`
	PriceFrom   *float64       `json:"price_from,omitempty"`
	PriceTo     *float64       `json:"price_to,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (f *Food) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID, err = uuid.NewV7()
	}
	return
}

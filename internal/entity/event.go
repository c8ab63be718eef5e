package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organizer struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:150;uniqueIndex;not null" json:"name"`
	Email       *string        `gorm:"size:100" json:"email,omitempty"`
	Website     *string        `gorm:"size:255" json:"website,omitempty"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Organizer) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID, err = uuid.NewV7()
	}
	return
}

type Event struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"organizer_id"`
	Organizer   Organizer      `gorm:"constraint:OnDelete:CASCADE" json:"organizer,omitempty"`
	LocationID  *uuid.UUID     `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Location    *Location      `gorm:"constraint:OnDelete:SET NULL" json:"location,omitempty"`
	Name        string         `gorm:"size:150;not null" json:"name"`
	Slug        string         `gorm:"size:180;uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	StartsAt    time.Time      `gorm:"not null;index" json:"starts_at"`
	EndsAt      time.Time      `gorm:"not null" json:"ends_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID, err = uuid.NewV7()
	}
	return
}

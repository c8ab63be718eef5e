package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MediaStatusInactive int16 = 0
	MediaStatusActive   int16 = 1
)

const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeDocument = "document"
)

// Media attaches an uploaded file to any entity via the polymorphic
// (ReferenceID, ReferenceType) pair. UserID is nullable: imported or seeded
// media has no uploader. Removal flips Status; the hard-delete path also
// destroys the backing blob.
type Media struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        *uuid.UUID    `gorm:"type:uuid;index" json:"user_id,omitempty"`
	ReferenceID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_media_lookup,priority:1" json:"reference_id"`
	ReferenceType ReferenceType `gorm:"size:20;not null;index:idx_media_lookup,priority:2" json:"reference_type"`
	FileURL       string        `gorm:"type:text;not null" json:"file_url"`
	Title         string        `gorm:"size:150" json:"title"`
	Description   string        `gorm:"type:text" json:"description"`
	MediaType     string        `gorm:"size:20;not null;default:image" json:"media_type"`
	Status        int16         `gorm:"not null;default:1;index" json:"status"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (m *Media) TableName() string {
	return "media"
}

func (m *Media) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID, err = uuid.NewV7()
	}
	return
}

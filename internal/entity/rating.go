package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RatingMin = 1.0
	RatingMax = 5.0
)

// Rating attaches a 1.0-5.0 score to any rateable entity via the polymorphic
// (ReferenceID, ReferenceType) pair. The composite unique index is the real
// one-rating-per-user guard; the service pre-check only exists for a friendly
// error message.
type Rating struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index:idx_ratings_unique,unique,priority:1" json:"user_id"`
	User          User          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReferenceID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_ratings_unique,unique,priority:2;index:idx_ratings_lookup,priority:1" json:"reference_id"`
	ReferenceType ReferenceType `gorm:"size:20;not null;index:idx_ratings_unique,unique,priority:3;index:idx_ratings_lookup,priority:2" json:"reference_type"`
	Value         float64       `gorm:"not null" json:"value"`
	Comment       *string       `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Rating) TableName() string {
	return "ratings"
}

func (r *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID, err = uuid.NewV7()
	}
	return
}

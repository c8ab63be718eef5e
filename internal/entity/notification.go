package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ActorID    uuid.UUID  `gorm:"type:uuid" json:"actor_id"`
	EntityID   uuid.UUID  `gorm:"type:uuid" json:"entity_id"`
	EntitySlug string     `gorm:"size:255" json:"entity_slug"`
	EntityType string     `gorm:"size:30" json:"entity_type"` // where the frontend should route
	Type       string     `gorm:"size:30;not null" json:"type"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	IsRead     bool       `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID, err = uuid.NewV7()
	}
	return
}

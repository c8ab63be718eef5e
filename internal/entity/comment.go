package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment moderation states. "Deleted" is a status value, never a row removal.
const (
	CommentStatusRejected int16 = -1
	CommentStatusDeleted  int16 = 0
	CommentStatusActive   int16 = 1
)

func ValidCommentStatus(s int16) bool {
	return s == CommentStatusRejected || s == CommentStatusDeleted || s == CommentStatusActive
}

// Comment is a node in a self-referencing tree attached to owning content via
// the polymorphic (OwnerID, OwnerType) pair. A nil ParentID marks a top-level
// comment. Depth is unbounded; listings materialize one level at a time.
type Comment struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_comments_owner,priority:1" json:"owner_id"`
	OwnerType ReferenceType `gorm:"size:20;not null;index:idx_comments_owner,priority:2" json:"owner_type"`
	AuthorID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"author_id"`
	Author    User          `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	ParentID  *uuid.UUID    `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Parent    *Comment      `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"parent,omitempty"`
	Content   string        `gorm:"type:text;not null" json:"content"`
	Status    int16         `gorm:"not null;default:1;index" json:"status"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

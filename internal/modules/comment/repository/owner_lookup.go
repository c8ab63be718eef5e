package repository

import (
	"context"
	"fmt"

	"anoa.com/wisatapedia/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerLookup answers "does this owning content exist" for the comment
// engine. The engine depends on owners only through this capability, which is
// what lets one engine serve every commentable content type.
type OwnerLookup interface {
	Exists(ctx context.Context, ownerType entity.ReferenceType, ownerID uuid.UUID) (bool, error)
}

type gormOwnerLookup struct {
	db *gorm.DB
}

func NewOwnerLookup(db *gorm.DB) OwnerLookup {
	return &gormOwnerLookup{db: db}
}

// Exists switches exhaustively over the commentable reference types so a new
// kind fails loudly here instead of silently passing validation.
func (l *gormOwnerLookup) Exists(ctx context.Context, ownerType entity.ReferenceType, ownerID uuid.UUID) (bool, error) {
	var count int64
	var err error

	switch ownerType {
	case entity.RefArticle:
		err = l.db.WithContext(ctx).
			Model(&entity.Article{}).
			Where("id = ?", ownerID).
			Count(&count).Error
	case entity.RefCommunityPost:
		err = l.db.WithContext(ctx).
			Model(&entity.CommunityPost{}).
			Where("id = ? AND status = ?", ownerID, entity.PostStatusActive).
			Count(&count).Error
	default:
		return false, fmt.Errorf("reference type %q is not commentable", ownerType)
	}

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UserLookup answers "does this author exist" without pulling the whole user
// module into the comment engine.
type UserLookup interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type gormUserLookup struct {
	db *gorm.DB
}

func NewUserLookup(db *gorm.DB) UserLookup {
	return &gormUserLookup{db: db}
}

func (l *gormUserLookup) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

package repository

import (
	"context"

	"anoa.com/wisatapedia/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	Update(ctx context.Context, comment *entity.Comment) error
	FindTopLevel(ctx context.Context, ownerID uuid.UUID, ownerType entity.ReferenceType, offset, limit int) ([]*entity.Comment, int64, error)
	FindReplies(ctx context.Context, parentID uuid.UUID) ([]*entity.Comment, error)
	CountActiveByOwner(ctx context.Context, ownerID uuid.UUID, ownerType entity.ReferenceType) (int64, error)
	CountReplies(ctx context.Context, parentID uuid.UUID) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// FindTopLevel lists active root comments newest-first.
func (r *commentRepository) FindTopLevel(ctx context.Context, ownerID uuid.UUID, ownerType entity.ReferenceType, offset, limit int) ([]*entity.Comment, int64, error) {
	var comments []*entity.Comment
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("owner_id = ? AND owner_type = ? AND parent_id IS NULL AND status = ?",
			ownerID, ownerType, entity.CommentStatusActive)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Author").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// FindReplies lists active direct replies oldest-first, chronological reading
// order. Only one level is materialized; deeper threads are fetched per node.
func (r *commentRepository) FindReplies(ctx context.Context, parentID uuid.UUID) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("parent_id = ? AND status = ?", parentID, entity.CommentStatusActive).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) CountActiveByOwner(ctx context.Context, ownerID uuid.UUID, ownerType entity.ReferenceType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("owner_id = ? AND owner_type = ? AND status = ?", ownerID, ownerType, entity.CommentStatusActive).
		Count(&count).Error
	return count, err
}

func (r *commentRepository) CountReplies(ctx context.Context, parentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("parent_id = ? AND status = ?", parentID, entity.CommentStatusActive).
		Count(&count).Error
	return count, err
}

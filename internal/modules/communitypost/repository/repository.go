package repository

import (
	"context"

	"anoa.com/wisatapedia/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.CommunityPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error)
	FindAllActive(ctx context.Context, offset, limit int) ([]*entity.CommunityPost, int64, error)
	Update(ctx context.Context, post *entity.CommunityPost) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status int16) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.CommunityPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	var post entity.CommunityPost
	if err := r.db.WithContext(ctx).
		Preload("Author").
		First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindAllActive(ctx context.Context, offset, limit int) ([]*entity.CommunityPost, int64, error) {
	var posts []*entity.CommunityPost
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.CommunityPost{}).
		Where("status = ?", entity.PostStatusActive)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Author").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepository) Update(ctx context.Context, post *entity.CommunityPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status int16) error {
	return r.db.WithContext(ctx).
		Model(&entity.CommunityPost{}).
		Where("id = ?", id).
		Update("status", status).Error
}

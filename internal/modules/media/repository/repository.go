package repository

import (
	"context"

	"anoa.com/wisatapedia/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(ctx context.Context, media *entity.Media) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Media, error)
	FindActiveByReference(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) ([]*entity.Media, error)
	Update(ctx context.Context, media *entity.Media) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status int16) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *entity.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	var media entity.Media
	if err := r.db.WithContext(ctx).First(&media, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) FindActiveByReference(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) ([]*entity.Media, error) {
	var media []*entity.Media
	err := r.db.WithContext(ctx).
		Where("reference_id = ? AND reference_type = ? AND status = ?", refID, refType, entity.MediaStatusActive).
		Find(&media).Error
	return media, err
}

func (r *mediaRepository) Update(ctx context.Context, media *entity.Media) error {
	return r.db.WithContext(ctx).Save(media).Error
}

func (r *mediaRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status int16) error {
	return r.db.WithContext(ctx).
		Model(&entity.Media{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Media{}, "id = ?", id).Error
}

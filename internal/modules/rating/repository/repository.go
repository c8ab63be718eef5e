package repository

import (
	"context"

	"anoa.com/wisatapedia/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)
	FindByUserAndReference(ctx context.Context, userID, refID uuid.UUID, refType entity.ReferenceType) (*entity.Rating, error)
	FindByReference(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) ([]*entity.Rating, error)
	Update(ctx context.Context, rating *entity.Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
	AverageAndCount(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) (float64, int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	var rating entity.Rating
	if err := r.db.WithContext(ctx).First(&rating, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) FindByUserAndReference(ctx context.Context, userID, refID uuid.UUID, refType entity.ReferenceType) (*entity.Rating, error) {
	// Find with slice to avoid "record not found" log noise from GORM's First()
	var existing []entity.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND reference_id = ? AND reference_type = ?", userID, refID, refType).
		Limit(1).
		Find(&existing).Error
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, nil
	}
	return &existing[0], nil
}

func (r *ratingRepository) FindByReference(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) ([]*entity.Rating, error) {
	var ratings []*entity.Rating
	err := r.db.WithContext(ctx).
		Where("reference_id = ? AND reference_type = ?", refID, refType).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Rating{}, "id = ?", id).Error
}

func (r *ratingRepository) AverageAndCount(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) (float64, int64, error) {
	type result struct {
		Average float64
		Count   int64
	}
	var res result

	err := r.db.WithContext(ctx).
		Model(&entity.Rating{}).
		Select("COALESCE(AVG(value), 0) as average, COUNT(*) as count").
		Where("reference_id = ? AND reference_type = ?", refID, refType).
		Scan(&res).Error
	if err != nil {
		return 0, 0, err
	}

	return res.Average, res.Count, nil
}

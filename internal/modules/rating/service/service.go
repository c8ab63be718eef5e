package rating

import (
	"context"
	"errors"
	"fmt"
	"math"

	"anoa.com/wisatapedia/internal/entity"
	"anoa.com/wisatapedia/internal/modules/rating/dto"
	"anoa.com/wisatapedia/internal/modules/rating/repository"
	"anoa.com/wisatapedia/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingService interface {
	CreateRating(ctx context.Context, userID uuid.UUID, refID uuid.UUID, refType entity.ReferenceType, value float64, comment *string) (*dto.RatingResponse, error)
	UpdateRating(ctx context.Context, userID uuid.UUID, id uuid.UUID, req dto.UpdateRatingRequest) (*dto.RatingResponse, error)
	DeleteRating(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) error
	GetRatings(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) ([]dto.RatingResponse, error)
	GetSummary(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) (*dto.RatingSummaryResponse, error)
}

type ratingService struct {
	repo repository.RatingRepository
}

func NewRatingService(repo repository.RatingRepository) RatingService {
	return &ratingService{repo: repo}
}

func validateValue(value float64) error {
	if value < entity.RatingMin || value > entity.RatingMax {
		return fmt.Errorf("%w: rating value must be between %.1f and %.1f", apperror.ErrInvalidInput, entity.RatingMin, entity.RatingMax)
	}
	return nil
}

func (s *ratingService) CreateRating(ctx context.Context, userID uuid.UUID, refID uuid.UUID, refType entity.ReferenceType, value float64, comment *string) (*dto.RatingResponse, error) {
	if !refType.Valid() {
		return nil, fmt.Errorf("%w: unknown reference type %q", apperror.ErrInvalidInput, refType)
	}
	if err := validateValue(value); err != nil {
		return nil, err
	}

	// Friendly pre-check. The unique index on (user_id, reference_id,
	// reference_type) is what actually guards against concurrent inserts.
	existing, err := s.repo.FindByUserAndReference(ctx, userID, refID, refType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: you already rated this %s", apperror.ErrDuplicate, refType)
	}

	rating := &entity.Rating{
		UserID:        userID,
		ReferenceID:   refID,
		ReferenceType: refType,
		Value:         value,
		Comment:       comment,
	}

	if err := s.repo.Create(ctx, rating); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: you already rated this %s", apperror.ErrDuplicate, refType)
		}
		return nil, err
	}

	return toResponse(rating), nil
}

func (s *ratingService) UpdateRating(ctx context.Context, userID uuid.UUID, id uuid.UUID, req dto.UpdateRatingRequest) (*dto.RatingResponse, error) {
	if err := validateValue(req.Value); err != nil {
		return nil, err
	}

	rating, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rating", apperror.ErrNotFound)
		}
		return nil, err
	}

	if rating.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	// Identity is immutable: only value fields change after creation.
	rating.Value = req.Value
	rating.Comment = req.Comment

	if err := s.repo.Update(ctx, rating); err != nil {
		return nil, err
	}

	return toResponse(rating), nil
}

func (s *ratingService) DeleteRating(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	rating, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: rating", apperror.ErrNotFound)
		}
		return err
	}

	if rating.UserID != userID && !isAdmin {
		return apperror.ErrForbidden
	}

	// Ratings are removed outright, no soft delete.
	return s.repo.Delete(ctx, id)
}

func (s *ratingService) GetRatings(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) ([]dto.RatingResponse, error) {
	if !refType.Valid() {
		return nil, fmt.Errorf("%w: unknown reference type %q", apperror.ErrInvalidInput, refType)
	}

	ratings, err := s.repo.FindByReference(ctx, refID, refType)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		responses = append(responses, *toResponse(r))
	}
	return responses, nil
}

func (s *ratingService) GetSummary(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) (*dto.RatingSummaryResponse, error) {
	if !refType.Valid() {
		return nil, fmt.Errorf("%w: unknown reference type %q", apperror.ErrInvalidInput, refType)
	}

	avg, count, err := s.repo.AverageAndCount(ctx, refID, refType)
	if err != nil {
		return nil, err
	}

	return &dto.RatingSummaryResponse{
		Average: math.Round(avg*10) / 10,
		Count:   count,
	}, nil
}

func toResponse(r *entity.Rating) *dto.RatingResponse {
	return &dto.RatingResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		ReferenceID:   r.ReferenceID,
		ReferenceType: r.ReferenceType.String(),
		Value:         r.Value,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

package repository

import (
	"context"

	"anoa.com/wisatapedia/internal/entity"
	placeDto "anoa.com/wisatapedia/internal/modules/place/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaceRepository interface {
	CreateLocation(ctx context.Context, l *entity.Location) error
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	FindLocationBySlug(ctx context.Context, slug string) (*entity.Location, error)
	FindLocations(ctx context.Context, filter placeDto.LocationFilter, offset, limit int) ([]*entity.Location, int64, error)
	UpdateLocation(ctx context.Context, l *entity.Location) error
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	CreateAccommodation(ctx context.Context, a *entity.Accommodation) error
	FindAccommodationByID(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error)
	FindAccommodations(ctx context.Context, filter placeDto.AccommodationFilter, offset, limit int) ([]*entity.Accommodation, int64, error)
	UpdateAccommodation(ctx context.Context, a *entity.Accommodation) error
	DeleteAccommodation(ctx context.Context, id uuid.UUID) error

	CreateFood(ctx context.Context, f *entity.Food) error
	FindFoodByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
	FindFoods(ctx context.Context, filter placeDto.FoodFilter, offset, limit int) ([]*entity.Food, int64, error)
	UpdateFood(ctx context.Context, f *entity.Food) error
	DeleteFood(ctx context.Context, id uuid.UUID) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) CreateLocation(ctx context.Context, l *entity.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *placeRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var location entity.Location
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *placeRepository) FindLocationBySlug(ctx context.Context, slug string) (*entity.Location, error) {
	var location entity.Location
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *placeRepository) FindLocations(ctx context.Context, filter placeDto.LocationFilter, offset, limit int) ([]*entity.Location, int64, error) {
	var locations []*entity.Location
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Location{})
	if filter.WardID != "" {
		query = query.Where("ward_id = ?", filter.WardID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&locations).Error; err != nil {
		return nil, 0, err
	}

	return locations, total, nil
}

func (r *placeRepository) UpdateLocation(ctx context.Context, l *entity.Location) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *placeRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Location{}, "id = ?", id).Error
}

func (r *placeRepository) CreateAccommodation(ctx context.Context, a *entity.Accommodation) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *placeRepository) FindAccommodationByID(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error) {
	var accommodation entity.Accommodation
	if err := r.db.WithContext(ctx).First(&accommodation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &accommodation, nil
}

func (r *placeRepository) FindAccommodations(ctx context.Context, filter placeDto.AccommodationFilter, offset, limit int) ([]*entity.Accommodation, int64, error) {
	var accommodations []*entity.Accommodation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Accommodation{})
	if filter.WardID != "" {
		query = query.Where("ward_id = ?", filter.WardID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.MinPrice != nil {
		query = query.Where("price_per_night >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price_per_night <= ?", *filter.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("price_per_night ASC").
		Offset(offset).
		Limit(limit).
		Find(&accommodations).Error; err != nil {
		return nil, 0, err
	}

	return accommodations, total, nil
}

func (r *placeRepository) UpdateAccommodation(ctx context.Context, a *entity.Accommodation) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *placeRepository) DeleteAccommodation(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Accommodation{}, "id = ?", id).Error
}

func (r *placeRepository) CreateFood(ctx context.Context, f *entity.Food) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *placeRepository) FindFoodByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var food entity.Food
	if err := r.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *placeRepository) FindFoods(ctx context.Context, filter placeDto.FoodFilter, offset, limit int) ([]*entity.Food, int64, error) {
	var foods []*entity.Food
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Food{})
	if filter.WardID != "" {
		query = query.Where("ward_id = ?", filter.WardID)
	}
	if filter.Cuisine != "" {
		query = query.Where("cuisine = ?", filter.Cuisine)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, 0, err
	}

	return foods, total, nil
}

func (r *placeRepository) UpdateFood(ctx context.Context, f *entity.Food) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *placeRepository) DeleteFood(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Food{}, "id = ?", id).Error
}

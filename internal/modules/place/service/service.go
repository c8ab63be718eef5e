package place

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"anoa.com/wisatapedia/internal/entity"
	geoRepo "anoa.com/wisatapedia/internal/modules/geography/repository"
	placeDto "anoa.com/wisatapedia/internal/modules/place/dto"
	"anoa.com/wisatapedia/internal/modules/place/repository"
	rating "anoa.com/wisatapedia/internal/modules/rating/service"
	search "anoa.com/wisatapedia/internal/modules/search/service"
	"anoa.com/wisatapedia/pkg/apperror"
	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

type PlaceService interface {
	CreateLocation(ctx context.Context, req placeDto.CreateLocationRequest) (*placeDto.LocationResponse, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*placeDto.LocationResponse, error)
	GetLocationBySlug(ctx context.Context, slug string) (*placeDto.LocationResponse, error)
	ListLocations(ctx context.Context, filter placeDto.LocationFilter) (*placeDto.PaginatedLocationResponse, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, req placeDto.UpdateLocationRequest) (*placeDto.LocationResponse, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	CreateAccommodation(ctx context.Context, req placeDto.CreateAccommodationRequest) (*placeDto.AccommodationResponse, error)
	GetAccommodation(ctx context.Context, id uuid.UUID) (*placeDto.AccommodationResponse, error)
	ListAccommodations(ctx context.Context, filter placeDto.AccommodationFilter) (*placeDto.PaginatedAccommodationResponse, error)
	UpdateAccommodation(ctx context.Context, id uuid.UUID, req placeDto.UpdateAccommodationRequest) (*placeDto.AccommodationResponse, error)
	DeleteAccommodation(ctx context.Context, id uuid.UUID) error

	CreateFood(ctx context.Context, req placeDto.CreateFoodRequest) (*placeDto.FoodResponse, error)
	GetFood(ctx context.Context, id uuid.UUID) (*placeDto.FoodResponse, error)
	ListFoods(ctx context.Context, filter placeDto.FoodFilter) (*placeDto.PaginatedFoodResponse, error)
	UpdateFood(ctx context.Context, id uuid.UUID, req placeDto.UpdateFoodRequest) (*placeDto.FoodResponse, error)
	DeleteFood(ctx context.Context, id uuid.UUID) error
}

type placeService struct {
	repo      repository.PlaceRepository
	geoRepo   geoRepo.GeographyRepository
	ratingSvc rating.RatingService
	searchSvc search.SearchService
	sanitizer *bluemonday.Policy
}

func NewPlaceService(repo repository.PlaceRepository, geoRepo geoRepo.GeographyRepository, ratingSvc rating.RatingService, searchSvc search.SearchService) PlaceService {
	return &placeService{
		repo:      repo,
		geoRepo:   geoRepo,
		ratingSvc: ratingSvc,
		searchSvc: searchSvc,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// uniqueSlug tacks on a short random suffix; slugs are globally unique while
// names are only unique per ward.
func uniqueSlug(name string) string {
	return slugify(name) + "-" + uuid.New().String()[:8]
}

func (s *placeService) checkWard(ctx context.Context, rawID string) (uuid.UUID, error) {
	wardID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: ward_id", apperror.ErrInvalidInput)
	}
	if _, err := s.geoRepo.FindWardByID(ctx, wardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("%w: ward", apperror.ErrNotFound)
		}
		return uuid.Nil, err
	}
	return wardID, nil
}

func translateWriteErr(err error, what string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s already exists in this ward", apperror.ErrDuplicate, what)
	}
	return err
}

func (s *placeService) CreateLocation(ctx context.Context, req placeDto.CreateLocationRequest) (*placeDto.LocationResponse, error) {
	wardID, err := s.checkWard(ctx, req.WardID)
	if err != nil {
		return nil, err
	}

	location := &entity.Location{
		WardID:      wardID,
		Name:        strings.TrimSpace(req.Name),
		Slug:        uniqueSlug(req.Name),
		Category:    strings.ToLower(strings.TrimSpace(req.Category)),
		Description: s.sanitizer.Sanitize(req.Description),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if err := s.repo.CreateLocation(ctx, location); err != nil {
		return nil, translateWriteErr(err, "location")
	}

	if s.searchSvc != nil {
		if err := s.searchSvc.IndexLocation(location); err != nil {
			log.Printf("failed to index location: %v", err)
		}
	}

	return s.locationResponse(ctx, location), nil
}

func (s *placeService) GetLocation(ctx context.Context, id uuid.UUID) (*placeDto.LocationResponse, error) {
	location, err := s.repo.FindLocationByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "location")
	}
	return s.locationResponse(ctx, location), nil
}

func (s *placeService) GetLocationBySlug(ctx context.Context, slug string) (*placeDto.LocationResponse, error) {
	location, err := s.repo.FindLocationBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "location")
	}
	return s.locationResponse(ctx, location), nil
}

func (s *placeService) ListLocations(ctx context.Context, filter placeDto.LocationFilter) (*placeDto.PaginatedLocationResponse, error) {
	filter.Normalize()

	locations, total, err := s.repo.FindLocations(ctx, filter, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]placeDto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, *s.locationResponse(ctx, l))
	}

	return &placeDto.PaginatedLocationResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *placeService) UpdateLocation(ctx context.Context, id uuid.UUID, req placeDto.UpdateLocationRequest) (*placeDto.LocationResponse, error) {
	location, err := s.repo.FindLocationByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "location")
	}

	if req.Name != "" {
		location.Name = strings.TrimSpace(req.Name)
	}
	if req.Category != "" {
		location.Category = strings.ToLower(strings.TrimSpace(req.Category))
	}
	if req.Description != nil {
		location.Description = s.sanitizer.Sanitize(*req.Description)
	}
	if req.Latitude != nil {
		location.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		location.Longitude = req.Longitude
	}

	if err := s.repo.UpdateLocation(ctx, location); err != nil {
		return nil, translateWriteErr(err, "location")
	}

	if s.searchSvc != nil {
		if err := s.searchSvc.IndexLocation(location); err != nil {
			log.Printf("failed to reindex location: %v", err)
		}
	}

	return s.locationResponse(ctx, location), nil
}

func (s *placeService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindLocationByID(ctx, id); err != nil {
		return notFound(err, "location")
	}
	if err := s.repo.DeleteLocation(ctx, id); err != nil {
		return err
	}

	if s.searchSvc != nil {
		if err := s.searchSvc.DeleteLocation(id.String()); err != nil {
			log.Printf("failed to remove location from index: %v", err)
		}
	}
	return nil
}

func (s *placeService) CreateAccommodation(ctx context.Context, req placeDto.CreateAccommodationRequest) (*placeDto.AccommodationResponse, error) {
	wardID, err := s.checkWard(ctx, req.WardID)
	if err != nil {
		return nil, err
	}

	accommodation := &entity.Accommodation{
		WardID:        wardID,
		Name:          strings.TrimSpace(req.Name),
		Slug:          uniqueSlug(req.Name),
		Type:          strings.ToLower(strings.TrimSpace(req.Type)),
		Description:   s.sanitizer.Sanitize(req.Description),
		PricePerNight: req.PricePerNight,
	}
	if err := s.repo.CreateAccommodation(ctx, accommodation); err != nil {
		return nil, translateWriteErr(err, "accommodation")
	}
	return s.accommodationResponse(ctx, accommodation), nil
}

func (s *placeService) GetAccommodation(ctx context.Context, id uuid.UUID) (*placeDto.AccommodationResponse, error) {
	accommodation, err := s.repo.FindAccommodationByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "accommodation")
	}
	return s.accommodationResponse(ctx, accommodation), nil
}

func (s *placeService) ListAccommodations(ctx context.Context, filter placeDto.AccommodationFilter) (*placeDto.PaginatedAccommodationResponse, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, fmt.Errorf("%w: min_price exceeds max_price", apperror.ErrInvalidInput)
	}
	filter.Normalize()

	accommodations, total, err := s.repo.FindAccommodations(ctx, filter, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]placeDto.AccommodationResponse, 0, len(accommodations))
	for _, a := range accommodations {
		responses = append(responses, *s.accommodationResponse(ctx, a))
	}

	return &placeDto.PaginatedAccommodationResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *placeService) UpdateAccommodation(ctx context.Context, id uuid.UUID, req placeDto.UpdateAccommodationRequest) (*placeDto.AccommodationResponse, error) {
	accommodation, err := s.repo.FindAccommodationByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "accommodation")
	}

	if req.Name != "" {
		accommodation.Name = strings.TrimSpace(req.Name)
	}
	if req.Type != "" {
		accommodation.Type = strings.ToLower(strings.TrimSpace(req.Type))
	}
	if req.Description != nil {
		accommodation.Description = s.sanitizer.Sanitize(*req.Description)
	}
	if req.PricePerNight != nil {
		accommodation.PricePerNight = *req.PricePerNight
	}

	if err := s.repo.UpdateAccommodation(ctx, accommodation); err != nil {
		return nil, translateWriteErr(err, "accommodation")
	}
	return s.accommodationResponse(ctx, accommodation), nil
}

func (s *placeService) DeleteAccommodation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindAccommodationByID(ctx, id); err != nil {
		return notFound(err, "accommodation")
	}
	return s.repo.DeleteAccommodation(ctx, id)
}

func (s *placeService) CreateFood(ctx context.Context, req placeDto.CreateFoodRequest) (*placeDto.FoodResponse, error) {
	wardID, err := s.checkWard(ctx, req.WardID)
	if err != nil {
		return nil, err
	}
	if req.PriceFrom != nil && req.PriceTo != nil && *req.PriceFrom > *req.PriceTo {
		return nil, fmt.Errorf("%w: price_from exceeds price_to", apperror.ErrInvalidInput)
	}

	food := &entity.Food{
		WardID:      wardID,
		Name:        strings.TrimSpace(req.Name),
		Slug:        uniqueSlug(req.Name),
		Cuisine:     strings.ToLower(strings.TrimSpace(req.Cuisine)),
		Description: s.sanitizer.Sanitize(req.Description),
		PriceFrom:   req.PriceFrom,
		PriceTo:     req.PriceTo,
	}
	if err := s.repo.CreateFood(ctx, food); err != nil {
		return nil, translateWriteErr(err, "food")
	}
	return s.foodResponse(ctx, food), nil
}

func (s *placeService) GetFood(ctx context.Context, id uuid.UUID) (*placeDto.FoodResponse, error) {
	food, err := s.repo.FindFoodByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "food")
	}
	return s.foodResponse(ctx, food), nil
}

func (s *placeService) ListFoods(ctx context.Context, filter placeDto.FoodFilter) (*placeDto.PaginatedFoodResponse, error) {
	filter.Normalize()

	foods, total, err := s.repo.FindFoods(ctx, filter, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]placeDto.FoodResponse, 0, len(foods))
	for _, f := range foods {
		responses = append(responses, *s.foodResponse(ctx, f))
	}

	return &placeDto.PaginatedFoodResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *placeService) UpdateFood(ctx context.Context, id uuid.UUID, req placeDto.UpdateFoodRequest) (*placeDto.FoodResponse, error) {
	food, err := s.repo.FindFoodByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "food")
	}

	if req.Name != "" {
		food.Name = strings.TrimSpace(req.Name)
	}
	if req.Cuisine != "" {
		food.Cuisine = strings.ToLower(strings.TrimSpace(req.Cuisine))
	}
	if req.Description != nil {
		food.Description = s.sanitizer.Sanitize(*req.Description)
	}
	if req.PriceFrom != nil {
		food.PriceFrom = req.PriceFrom
	}
	if req.PriceTo != nil {
		food.PriceTo = req.PriceTo
	}
	if food.PriceFrom != nil && food.PriceTo != nil && *food.PriceFrom > *food.PriceTo {
		return nil, fmt.Errorf("%w: price_from exceeds price_to", apperror.ErrInvalidInput)
	}

	if err := s.repo.UpdateFood(ctx, food); err != nil {
		return nil, translateWriteErr(err, "food")
	}
	return s.foodResponse(ctx, food), nil
}

func (s *placeService) DeleteFood(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindFoodByID(ctx, id); err != nil {
		return notFound(err, "food")
	}
	return s.repo.DeleteFood(ctx, id)
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", apperror.ErrNotFound, what)
	}
	return err
}

func (s *placeService) locationResponse(ctx context.Context, l *entity.Location) *placeDto.LocationResponse {
	summary, _ := s.ratingSvc.GetSummary(ctx, l.ID, entity.RefLocation)

	return &placeDto.LocationResponse{
		ID:          l.ID,
		WardID:      l.WardID,
		Name:        l.Name,
		Slug:        l.Slug,
		Category:    l.Category,
		Description: l.Description,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Rating:      summary,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func (s *placeService) accommodationResponse(ctx context.Context, a *entity.Accommodation) *placeDto.AccommodationResponse {
	summary, _ := s.ratingSvc.GetSummary(ctx, a.ID, entity.RefAccommodation)

	return &placeDto.AccommodationResponse{
		ID:            a.ID,
		WardID:        a.WardID,
		Name:          a.Name,
		Slug:          a.Slug,
		Type:          a.Type,
		Description:   a.Description,
		PricePerNight: a.PricePerNight,
		Rating:        summary,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (s *placeService) foodResponse(ctx context.Context, f *entity.Food) *placeDto.FoodResponse {
	summary, _ := s.ratingSvc.GetSummary(ctx, f.ID, entity.RefFood)

	return &placeDto.FoodResponse{
		ID:          f.ID,
		WardID:      f.WardID,
		Name:        f.Name,
		Slug:        f.Slug,
		Cuisine:     f.Cuisine,
		Description: f.Description,
		PriceFrom:   f.PriceFrom,
		PriceTo:     f.PriceTo,
		Rating:      summary,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

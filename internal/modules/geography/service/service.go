package geography

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"anoa.com/wisatapedia/internal/entity"
	geoDto "anoa.com/wisatapedia/internal/modules/geography/dto"
	"anoa.com/wisatapedia/internal/modules/geography/repository"
	"anoa.com/wisatapedia/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GeographyService interface {
	CreateContinent(ctx context.Context, req geoDto.CreateContinentRequest) (*geoDto.PlaceNodeResponse, error)
	ListContinents(ctx context.Context) ([]geoDto.PlaceNodeResponse, error)
	RenameContinent(ctx context.Context, id uuid.UUID, name string) (*geoDto.PlaceNodeResponse, error)
	DeleteContinent(ctx context.Context, id uuid.UUID) error

	CreateCountry(ctx context.Context, req geoDto.CreateCountryRequest) (*geoDto.PlaceNodeResponse, error)
	ListCountries(ctx context.Context, continentID uuid.UUID) ([]geoDto.PlaceNodeResponse, error)
	RenameCountry(ctx context.Context, id uuid.UUID, name string) (*geoDto.PlaceNodeResponse, error)
	DeleteCountry(ctx context.Context, id uuid.UUID) error

	CreateRegion(ctx context.Context, req geoDto.CreateRegionRequest) (*geoDto.PlaceNodeResponse, error)
	ListRegions(ctx context.Context, countryID uuid.UUID) ([]geoDto.PlaceNodeResponse, error)
	GetRegionBySlug(ctx context.Context, slug string) (*geoDto.PlaceNodeResponse, error)
	RenameRegion(ctx context.Context, id uuid.UUID, name string) (*geoDto.PlaceNodeResponse, error)
	DeleteRegion(ctx context.Context, id uuid.UUID) error

	CreateDistrict(ctx context.Context, req geoDto.CreateDistrictRequest) (*geoDto.PlaceNodeResponse, error)
	ListDistricts(ctx context.Context, regionID uuid.UUID) ([]geoDto.PlaceNodeResponse, error)
	RenameDistrict(ctx context.Context, id uuid.UUID, name string) (*geoDto.PlaceNodeResponse, error)
	DeleteDistrict(ctx context.Context, id uuid.UUID) error

	CreateWard(ctx context.Context, req geoDto.CreateWardRequest) (*geoDto.PlaceNodeResponse, error)
	ListWards(ctx context.Context, districtID uuid.UUID) ([]geoDto.PlaceNodeResponse, error)
	RenameWard(ctx context.Context, id uuid.UUID, name string) (*geoDto.PlaceNodeResponse, error)
	DeleteWard(ctx context.Context, id uuid.UUID) error
}

type geographyService struct {
	repo repository.GeographyRepository
}

func NewGeographyService(repo repository.GeographyRepository) GeographyService {
	return &geographyService{repo: repo}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// translateWriteErr folds the two DB failure modes every create/rename here
// shares: duplicate names within a parent and dangling parent ids.
func translateWriteErr(err error, what string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s already exists", apperror.ErrDuplicate, what)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: parent of %s", apperror.ErrNotFound, what)
	}
	return err
}

func (s *geographyService) CreateContinent(ctx context.Context, req geoDto.CreateContinentRequest) (*geoDto.PlaceNodeResponse, error) {
	continent := &entity.Continent{
		Name: strings.TrimSpace(req.Name),
		Code: strings.ToUpper(strings.TrimSpace(req.Code)),
	}
	if err := s.repo.CreateContinent(ctx, continent); err != nil {
		return nil, translateWriteErr(err, "continent")
	}
	return &geoDto.PlaceNodeResponse{
		ID: continent.ID, Name: continent.Name, Code: continent.Code,
		CreatedAt: continent.CreatedAt, UpdatedAt: continent.UpdatedAt,
	}, nil
}

func (s *geographyService) ListContinents(ctx context.Context) ([]geoDto.PlaceNodeResponse, error) {
	continents, err := s.repo.FindContinents(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]geoDto.PlaceNodeResponse, 0, len(continents))
	for _, c := range continents {
		out = append(out, geoDto.PlaceNodeResponse{
			ID: c.ID, Name: c.Name, Code: c.Code,
			CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
		})
	}
	return out, nil
}

func (s *geographyService) RenameContinent(ctx context.Context, id uuid.UUID, name string) (*geoDto.PlaceNodeResponse, error) {
	if _, err := s.repo.FindContinentByID(ctx, id); err != nil {
		return nil, notFound(err, "continent")
	}
	if err := s.repo.RenameContinent(ctx, id, strings.TrimSpace(name)); err != nil {
		return nil, translateWriteErr(err, "continent")
	}
	continent, err := s.repo.FindContinentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &geoDto.PlaceNodeResponse{
		ID: continent.ID, Name: continent.Name, Code: continent.Code,
		CreatedAt: continent.CreatedAt, UpdatedAt: continent.UpdatedAt,
	}, nil
}

func (s *geographyService) DeleteContinent(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindContinentByID(ctx, id); err != nil {
		return notFound(err, "continent")
	}
	return s.repo.DeleteContinent(ctx, id)
}

func (s *geographyService) CreateCountry(ctx context.Context, req geoDto.CreateCountryRequest) (*geoDto.PlaceNodeResponse, error) {
	continentID, err := uuid.Parse(req.ContinentID)
	if err != nil {
		return nil, fmt.Errorf("%w: continent_id", apperror.ErrInvalidInput)
	}
	if _, err := s.repo.FindContinentByID(ctx, continentID); err != nil {
		return nil, notFound(err, "continent")
	}

	country := &entity.Country{
		ContinentID: continentID,
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
	}
	if err := s.repo.CreateCountry(ctx, country); err != nil {
		return nil, translateWriteErr(err, "country")
	}
	return countryNode(country), nil
}

func (s *geographyService) ListCountries(ctx context.Context, continentID uuid.UUID) ([]geoDto.PlaceNodeResponse, error) {
	countries, err := s.repo.FindCountries(ctx, continentID)
	if err != nil {
		return nil, err
	}
	out := make([]geoDto.PlaceNodeResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, *countryNode(c))
	}
	return out, nil
}

func (s *geographyService) RenameCountry(ctx context.Context, id uuid.UUID, name string) (*geoDto.PlaceNodeResponse, error) {
	if _, err := s.repo.FindCountryByID(ctx, id); err != nil {
		return nil, notFound(err, "country")
	}
	if err := s.repo.RenameCountry(ctx, id, strings.TrimSpace(name)); err != nil {
		return nil, translateWriteErr(err, "country")
	}
	country, err := s.repo.FindCountryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return countryNode(country), nil
}

func (s *geographyService) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindCountryByID(ctx, id); err != nil {
		return notFound(err, "country")
	}
	return s.repo.DeleteCountry(ctx, id)
}

func (s *geographyService) CreateRegion(ctx context.Context, req geoDto.CreateRegionRequest) (*geoDto.PlaceNodeResponse, error) {
	countryID, err := uuid.Parse(req.CountryID)
	if err != nil {
		return nil, fmt.Errorf("%w: country_id", apperror.ErrInvalidInput)
	}
	country, err := s.repo.FindCountryByID(ctx, countryID)
	if err != nil {
		return nil, notFound(err, "country")
	}

	name := strings.TrimSpace(req.Name)
	region := &entity.Region{
		CountryID: countryID,
		Name:      name,
		// Country code prefix keeps slugs for same-named regions apart
		Slug: slugify(country.Code + " " + name),
	}
	if err := s.repo.CreateRegion(ctx, region); err != nil {
		return nil, translateWriteErr(err, "region")
	}
	return regionNode(region), nil
}

func (s *geographyService) ListRegions(ctx context.Context, countryID uuid.UUID) ([]geoDto.PlaceNodeResponse, error) {
	regions, err := s.repo.FindRegions(ctx, countryID)
	if err != nil {
		return nil, err
	}
	out := make([]geoDto.PlaceNodeResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, *regionNode(r))
	}
	return out, nil
}

func (s *geographyService) GetRegionBySlug(ctx context.Context, slug string) (*geoDto.PlaceNodeResponse, error) {
	region, err := s.repo.FindRegionBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "region")
	}
	return regionNode(region), nil
}

func (s *geographyService) RenameRegion(ctx context.Context, id uuid.UUID, name string) (*geoDto.PlaceNodeResponse, error) {
	region, err := s.repo.FindRegionByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "region")
	}
	country, err := s.repo.FindCountryByID(ctx, region.CountryID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := s.repo.RenameRegion(ctx, id, name, slugify(country.Code+" "+name)); err != nil {
		return nil, translateWriteErr(err, "region")
	}
	region, err = s.repo.FindRegionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return regionNode(region), nil
}

func (s *geographyService) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindRegionByID(ctx, id); err != nil {
		return notFound(err, "region")
	}
	return s.repo.DeleteRegion(ctx, id)
}

func (s *geographyService) CreateDistrict(ctx context.Context, req geoDto.CreateDistrictRequest) (*geoDto.PlaceNodeResponse, error) {
	regionID, err := uuid.Parse(req.RegionID)
	if err != nil {
		return nil, fmt.Errorf("%w: region_id", apperror.ErrInvalidInput)
	}
	if _, err := s.repo.FindRegionByID(ctx, regionID); err != nil {
		return nil, notFound(err, "region")
	}

	district := &entity.District{
		RegionID: regionID,
		Name:     strings.TrimSpace(req.Name),
	}
	if err := s.repo.CreateDistrict(ctx, district); err != nil {
		return nil, translateWriteErr(err, "district")
	}
	return districtNode(district), nil
}

func (s *geographyService) ListDistricts(ctx context.Context, regionID uuid.UUID) ([]geoDto.PlaceNodeResponse, error) {
	districts, err := s.repo.FindDistricts(ctx, regionID)
	if err != nil {
		return nil, err
	}
	out := make([]geoDto.PlaceNodeResponse, 0, len(districts))
	for _, d := range districts {
		out = append(out, *districtNode(d))
	}
	return out, nil
}

func (s *geographyService) RenameDistrict(ctx context.Context, id uuid.UUID, name string) (*geoDto.PlaceNodeResponse, error) {
	if _, err := s.repo.FindDistrictByID(ctx, id); err != nil {
		return nil, notFound(err, "district")
	}
	if err := s.repo.RenameDistrict(ctx, id, strings.TrimSpace(name)); err != nil {
		return nil, translateWriteErr(err, "district")
	}
	district, err := s.repo.FindDistrictByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return districtNode(district), nil
}

func (s *geographyService) DeleteDistrict(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindDistrictByID(ctx, id); err != nil {
		return notFound(err, "district")
	}
	return s.repo.DeleteDistrict(ctx, id)
}

func (s *geographyService) CreateWard(ctx context.Context, req geoDto.CreateWardRequest) (*geoDto.PlaceNodeResponse, error) {
	districtID, err := uuid.Parse(req.DistrictID)
	if err != nil {
		return nil, fmt.Errorf("%w: district_id", apperror.ErrInvalidInput)
	}
	if _, err := s.repo.FindDistrictByID(ctx, districtID); err != nil {
		return nil, notFound(err, "district")
	}

	ward := &entity.Ward{
		DistrictID: districtID,
		Name:       strings.TrimSpace(req.Name),
	}
	if err := s.repo.CreateWard(ctx, ward); err != nil {
		return nil, translateWriteErr(err, "ward")
	}
	return wardNode(ward), nil
}

func (s *geographyService) ListWards(ctx context.Context, districtID uuid.UUID) ([]geoDto.PlaceNodeResponse, error) {
	wards, err := s.repo.FindWards(ctx, districtID)
	if err != nil {
		return nil, err
	}
	out := make([]geoDto.PlaceNodeResponse, 0, len(wards))
	for _, w := range wards {
		out = append(out, *wardNode(w))
	}
	return out, nil
}

func (s *geographyService) RenameWard(ctx context.Context, id uuid.UUID, name string) (*geoDto.PlaceNodeResponse, error) {
	if _, err := s.repo.FindWardByID(ctx, id); err != nil {
		return nil, notFound(err, "ward")
	}
	if err := s.repo.RenameWard(ctx, id, strings.TrimSpace(name)); err != nil {
		return nil, translateWriteErr(err, "ward")
	}
	ward, err := s.repo.FindWardByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return wardNode(ward), nil
}

func (s *geographyService) DeleteWard(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindWardByID(ctx, id); err != nil {
		return notFound(err, "ward")
	}
	return s.repo.DeleteWard(ctx, id)
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", apperror.ErrNotFound, what)
	}
	return err
}

func countryNode(c *entity.Country) *geoDto.PlaceNodeResponse {
	return &geoDto.PlaceNodeResponse{
		ID: c.ID, ParentID: c.ContinentID, Name: c.Name, Code: c.Code,
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

func regionNode(r *entity.Region) *geoDto.PlaceNodeResponse {
	return &geoDto.PlaceNodeResponse{
		ID: r.ID, ParentID: r.CountryID, Name: r.Name, Slug: r.Slug,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

func districtNode(d *entity.District) *geoDto.PlaceNodeResponse {
	return &geoDto.PlaceNodeResponse{
		ID: d.ID, ParentID: d.RegionID, Name: d.Name,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

func wardNode(w *entity.Ward) *geoDto.PlaceNodeResponse {
	return &geoDto.PlaceNodeResponse{
		ID: w.ID, ParentID: w.DistrictID, Name: w.Name,
		CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt,
	}
}

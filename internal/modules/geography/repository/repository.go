package repository

import (
	"context"

	"anoa.com/wisatapedia/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GeographyRepository interface {
	CreateContinent(ctx context.Context, c *entity.Continent) error
	FindContinents(ctx context.Context) ([]*entity.Continent, error)
	FindContinentByID(ctx context.Context, id uuid.UUID) (*entity.Continent, error)
	RenameContinent(ctx context.Context, id uuid.UUID, name string) error
	DeleteContinent(ctx context.Context, id uuid.UUID) error

	CreateCountry(ctx context.Context, c *entity.Country) error
	FindCountries(ctx context.Context, continentID uuid.UUID) ([]*entity.Country, error)
	FindCountryByID(ctx context.Context, id uuid.UUID) (*entity.Country, error)
	RenameCountry(ctx context.Context, id uuid.UUID, name string) error
	DeleteCountry(ctx context.Context, id uuid.UUID) error

	CreateRegion(ctx context.Context, r *entity.Region) error
	FindRegions(ctx context.Context, countryID uuid.UUID) ([]*entity.Region, error)
	FindRegionByID(ctx context.Context, id uuid.UUID) (*entity.Region, error)
	FindRegionBySlug(ctx context.Context, slug string) (*entity.Region, error)
	RenameRegion(ctx context.Context, id uuid.UUID, name, slug string) error
	DeleteRegion(ctx context.Context, id uuid.UUID) error

	CreateDistrict(ctx context.Context, d *entity.District) error
	FindDistricts(ctx context.Context, regionID uuid.UUID) ([]*entity.District, error)
	FindDistrictByID(ctx context.Context, id uuid.UUID) (*entity.District, error)
	RenameDistrict(ctx context.Context, id uuid.UUID, name string) error
	DeleteDistrict(ctx context.Context, id uuid.UUID) error

	CreateWard(ctx context.Context, w *entity.Ward) error
	FindWards(ctx context.Context, districtID uuid.UUID) ([]*entity.Ward, error)
	FindWardByID(ctx context.Context, id uuid.UUID) (*entity.Ward, error)
	RenameWard(ctx context.Context, id uuid.UUID, name string) error
	DeleteWard(ctx context.Context, id uuid.UUID) error
}

type geographyRepository struct {
	db *gorm.DB
}

func NewGeographyRepository(db *gorm.DB) GeographyRepository {
	return &geographyRepository{db: db}
}

func (r *geographyRepository) CreateContinent(ctx context.Context, c *entity.Continent) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *geographyRepository) FindContinents(ctx context.Context) ([]*entity.Continent, error) {
	var continents []*entity.Continent
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&continents).Error; err != nil {
		return nil, err
	}
	return continents, nil
}

func (r *geographyRepository) FindContinentByID(ctx context.Context, id uuid.UUID) (*entity.Continent, error) {
	var continent entity.Continent
	if err := r.db.WithContext(ctx).First(&continent, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &continent, nil
}

func (r *geographyRepository) RenameContinent(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Continent{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *geographyRepository) DeleteContinent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Continent{}, "id = ?", id).Error
}

func (r *geographyRepository) CreateCountry(ctx context.Context, c *entity.Country) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *geographyRepository) FindCountries(ctx context.Context, continentID uuid.UUID) ([]*entity.Country, error) {
	var countries []*entity.Country
	query := r.db.WithContext(ctx).Order("name ASC")
	if continentID != uuid.Nil {
		query = query.Where("continent_id = ?", continentID)
	}
	if err := query.Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *geographyRepository) FindCountryByID(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	var country entity.Country
	if err := r.db.WithContext(ctx).First(&country, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *geographyRepository) RenameCountry(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Country{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *geographyRepository) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Country{}, "id = ?", id).Error
}

func (r *geographyRepository) CreateRegion(ctx context.Context, region *entity.Region) error {
	return r.db.WithContext(ctx).Create(region).Error
}

func (r *geographyRepository) FindRegions(ctx context.Context, countryID uuid.UUID) ([]*entity.Region, error) {
	var regions []*entity.Region
	query := r.db.WithContext(ctx).Order("name ASC")
	if countryID != uuid.Nil {
		query = query.Where("country_id = ?", countryID)
	}
	if err := query.Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *geographyRepository) FindRegionByID(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	var region entity.Region
	if err := r.db.WithContext(ctx).First(&region, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *geographyRepository) FindRegionBySlug(ctx context.Context, slug string) (*entity.Region, error) {
	var region entity.Region
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&region).Error; err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *geographyRepository) RenameRegion(ctx context.Context, id uuid.UUID, name, slug string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Region{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "slug": slug}).Error
}

func (r *geographyRepository) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Region{}, "id = ?", id).Error
}

func (r *geographyRepository) CreateDistrict(ctx context.Context, d *entity.District) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *geographyRepository) FindDistricts(ctx context.Context, regionID uuid.UUID) ([]*entity.District, error) {
	var districts []*entity.District
	query := r.db.WithContext(ctx).Order("name ASC")
	if regionID != uuid.Nil {
		query = query.Where("region_id = ?", regionID)
	}
	if err := query.Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *geographyRepository) FindDistrictByID(ctx context.Context, id uuid.UUID) (*entity.District, error) {
	var district entity.District
	if err := r.db.WithContext(ctx).First(&district, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *geographyRepository) RenameDistrict(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).
		Model(&entity.District{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *geographyRepository) DeleteDistrict(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.District{}, "id = ?", id).Error
}

func (r *geographyRepository) CreateWard(ctx context.Context, w *entity.Ward) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *geographyRepository) FindWards(ctx context.Context, districtID uuid.UUID) ([]*entity.Ward, error) {
	var wards []*entity.Ward
	query := r.db.WithContext(ctx).Order("name ASC")
	if districtID != uuid.Nil {
		query = query.Where("district_id = ?", districtID)
	}
	if err := query.Find(&wards).Error; err != nil {
		return nil, err
	}
	return wards, nil
}

func (r *geographyRepository) FindWardByID(ctx context.Context, id uuid.UUID) (*entity.Ward, error) {
	var ward entity.Ward
	if err := r.db.WithContext(ctx).First(&ward, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ward, nil
}

func (r *geographyRepository) RenameWard(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Ward{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *geographyRepository) DeleteWard(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Ward{}, "id = ?", id).Error
}

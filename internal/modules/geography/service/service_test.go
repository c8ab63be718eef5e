package geography

import (
	"context"
	"testing"

	"anoa.com/wisatapedia/internal/entity"
	geoDto "anoa.com/wisatapedia/internal/modules/geography/dto"
	"anoa.com/wisatapedia/internal/modules/geography/repository"
	"anoa.com/wisatapedia/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) GeographyService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Continent{},
		&entity.Country{},
		&entity.Region{},
		&entity.District{},
		&entity.Ward{},
	))

	return NewGeographyService(repository.NewGeographyRepository(db))
}

// seedCountry builds a continent and a country underneath it.
func seedCountry(t *testing.T, svc GeographyService, code string) *geoDto.PlaceNodeResponse {
	t.Helper()
	ctx := context.Background()

	continent, err := svc.CreateContinent(ctx, geoDto.CreateContinentRequest{Name: "Asia " + code, Code: "AS" + code})
	require.NoError(t, err)

	country, err := svc.CreateCountry(ctx, geoDto.CreateCountryRequest{
		ContinentID: continent.ID.String(),
		Name:        "Country " + code,
		Code:        code,
	})
	require.NoError(t, err)
	return country
}

func TestCreateContinent_DuplicateNameOrCode(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	created, err := svc.CreateContinent(ctx, geoDto.CreateContinentRequest{Name: "Asia", Code: "as"})
	require.NoError(t, err)
	assert.Equal(t, "AS", created.Code, "codes are stored uppercase")

	_, err = svc.CreateContinent(ctx, geoDto.CreateContinentRequest{Name: "Asia", Code: "XX"})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)

	_, err = svc.CreateContinent(ctx, geoDto.CreateContinentRequest{Name: "Somewhere", Code: "AS"})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
}

func TestCreateCountry_UnknownContinent(t *testing.T) {
	svc := setup(t)

	_, err := svc.CreateCountry(context.Background(), geoDto.CreateCountryRequest{
		ContinentID: uuid.NewString(),
		Name:        "Indonesia",
		Code:        "ID",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreateRegion_SlugIncludesCountryCode(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	id := seedCountry(t, svc, "ID")
	my := seedCountry(t, svc, "MY")

	first, err := svc.CreateRegion(ctx, geoDto.CreateRegionRequest{CountryID: id.ID.String(), Name: "West Java"})
	require.NoError(t, err)
	assert.Equal(t, "id-west-java", first.Slug)

	// Same region name in another country gets its own slug
	second, err := svc.CreateRegion(ctx, geoDto.CreateRegionRequest{CountryID: my.ID.String(), Name: "West Java"})
	require.NoError(t, err)
	assert.Equal(t, "my-west-java", second.Slug)

	found, err := svc.GetRegionBySlug(ctx, "id-west-java")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestCreateRegion_NameUniquePerCountry(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	country := seedCountry(t, svc, "ID")

	_, err := svc.CreateRegion(ctx, geoDto.CreateRegionRequest{CountryID: country.ID.String(), Name: "Bali"})
	require.NoError(t, err)

	_, err = svc.CreateRegion(ctx, geoDto.CreateRegionRequest{CountryID: country.ID.String(), Name: "Bali"})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
}

func TestRenameRegion_SlugFollowsName(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	country := seedCountry(t, svc, "ID")
	region, err := svc.CreateRegion(ctx, geoDto.CreateRegionRequest{CountryID: country.ID.String(), Name: "Bali"})
	require.NoError(t, err)

	renamed, err := svc.RenameRegion(ctx, region.ID, "North Bali")
	require.NoError(t, err)
	assert.Equal(t, "North Bali", renamed.Name)
	assert.Equal(t, "id-north-bali", renamed.Slug)

	_, err = svc.RenameRegion(ctx, uuid.New(), "Nowhere")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDistrictAndWard_ScopedToParent(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	country := seedCountry(t, svc, "ID")
	bali, err := svc.CreateRegion(ctx, geoDto.CreateRegionRequest{CountryID: country.ID.String(), Name: "Bali"})
	require.NoError(t, err)
	java, err := svc.CreateRegion(ctx, geoDto.CreateRegionRequest{CountryID: country.ID.String(), Name: "West Java"})
	require.NoError(t, err)

	_, err = svc.CreateDistrict(ctx, geoDto.CreateDistrictRequest{RegionID: bali.ID.String(), Name: "Ubud"})
	require.NoError(t, err)

	// Same district name under a different region is fine
	_, err = svc.CreateDistrict(ctx, geoDto.CreateDistrictRequest{RegionID: java.ID.String(), Name: "Ubud"})
	require.NoError(t, err)

	// Under the same region it collides
	_, err = svc.CreateDistrict(ctx, geoDto.CreateDistrictRequest{RegionID: bali.ID.String(), Name: "Ubud"})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)

	_, err = svc.CreateWard(ctx, geoDto.CreateWardRequest{DistrictID: uuid.NewString(), Name: "Padangtegal"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListChildren_FilteredByParent(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	id := seedCountry(t, svc, "ID")
	my := seedCountry(t, svc, "MY")

	_, err := svc.CreateRegion(ctx, geoDto.CreateRegionRequest{CountryID: id.ID.String(), Name: "Bali"})
	require.NoError(t, err)
	_, err = svc.CreateRegion(ctx, geoDto.CreateRegionRequest{CountryID: my.ID.String(), Name: "Penang"})
	require.NoError(t, err)

	regions, err := svc.ListRegions(ctx, id.ID)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "Bali", regions[0].Name)

	// uuid.Nil lists everything, name ordered
	all, err := svc.ListRegions(ctx, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bali", all[0].Name)
	assert.Equal(t, "Penang", all[1].Name)
}

func TestDeleteWard(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	country := seedCountry(t, svc, "ID")
	region, err := svc.CreateRegion(ctx, geoDto.CreateRegionRequest{CountryID: country.ID.String(), Name: "Bali"})
	require.NoError(t, err)
	district, err := svc.CreateDistrict(ctx, geoDto.CreateDistrictRequest{RegionID: region.ID.String(), Name: "Ubud"})
	require.NoError(t, err)
	ward, err := svc.CreateWard(ctx, geoDto.CreateWardRequest{DistrictID: district.ID.String(), Name: "Padangtegal"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWard(ctx, ward.ID))

	wards, err := svc.ListWards(ctx, district.ID)
	require.NoError(t, err)
	assert.Empty(t, wards)

	assert.ErrorIs(t, svc.DeleteWard(ctx, ward.ID), apperror.ErrNotFound)
}

package rating

import (
	"context"
	"testing"

	"anoa.com/wisatapedia/internal/entity"
	"anoa.com/wisatapedia/internal/modules/rating/dto"
	"anoa.com/wisatapedia/internal/modules/rating/repository"
	"anoa.com/wisatapedia/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) RatingService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.Rating{}))

	return NewRatingService(repository.NewRatingRepository(db))
}

func TestCreateRating_RejectsOutOfBounds(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	userID := uuid.New()
	refID := uuid.New()

	tests := []struct {
		name  string
		value float64
	}{
		{"below minimum", 0.5},
		{"above maximum", 5.5},
		{"zero", 0},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRating(ctx, userID, refID, entity.RefLocation, tt.value, nil)
			assert.ErrorIs(t, err, apperror.ErrInvalidInput)
		})
	}
}

func TestCreateRating_RejectsUnknownReferenceType(t *testing.T) {
	svc := setupService(t)

	_, err := svc.CreateRating(context.Background(), uuid.New(), uuid.New(), entity.ReferenceType("hotel"), 4, nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCreateRating_OnePerUserPerItem(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	userID := uuid.New()
	refID := uuid.New()

	first, err := svc.CreateRating(ctx, userID, refID, entity.RefFood, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, first.Value)

	_, err = svc.CreateRating(ctx, userID, refID, entity.RefFood, 5, nil)
	assert.ErrorIs(t, err, apperror.ErrDuplicate)

	// Same item, different type namespace: allowed
	_, err = svc.CreateRating(ctx, userID, refID, entity.RefLocation, 5, nil)
	assert.NoError(t, err)

	// Different user on the same item: allowed
	_, err = svc.CreateRating(ctx, uuid.New(), refID, entity.RefFood, 3, nil)
	assert.NoError(t, err)
}

func TestUpdateRating_OwnerOnly(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.CreateRating(ctx, owner, uuid.New(), entity.RefAccommodation, 3, nil)
	require.NoError(t, err)

	_, err = svc.UpdateRating(ctx, uuid.New(), created.ID, dto.UpdateRatingRequest{Value: 5})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	updated, err := svc.UpdateRating(ctx, owner, created.ID, dto.UpdateRatingRequest{Value: 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.Value)
	// Identity survives the update
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.ReferenceID, updated.ReferenceID)
}

func TestDeleteRating_AdminOverride(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateRating(ctx, uuid.New(), uuid.New(), entity.RefEvent, 2, nil)
	require.NoError(t, err)

	stranger := uuid.New()
	err = svc.DeleteRating(ctx, stranger, false, created.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	err = svc.DeleteRating(ctx, stranger, true, created.ID)
	require.NoError(t, err)

	err = svc.DeleteRating(ctx, stranger, true, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetSummary(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	refID := uuid.New()

	// No ratings yet
	summary, err := svc.GetSummary(ctx, refID, entity.RefLocation)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.Average)
	assert.Equal(t, int64(0), summary.Count)

	_, err = svc.CreateRating(ctx, uuid.New(), refID, entity.RefLocation, 4, nil)
	require.NoError(t, err)
	_, err = svc.CreateRating(ctx, uuid.New(), refID, entity.RefLocation, 5, nil)
	require.NoError(t, err)

	summary, err = svc.GetSummary(ctx, refID, entity.RefLocation)
	require.NoError(t, err)
	assert.Equal(t, 4.5, summary.Average)
	assert.Equal(t, int64(2), summary.Count)

	// Ratings under a different type don't leak into the summary
	_, err = svc.CreateRating(ctx, uuid.New(), refID, entity.RefFood, 1, nil)
	require.NoError(t, err)

	summary, err = svc.GetSummary(ctx, refID, entity.RefLocation)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
}

func TestGetRatings_NewestFirst(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	refID := uuid.New()

	comment := "great place"
	_, err := svc.CreateRating(ctx, uuid.New(), refID, entity.RefLocation, 4, &comment)
	require.NoError(t, err)
	_, err = svc.CreateRating(ctx, uuid.New(), refID, entity.RefLocation, 5, nil)
	require.NoError(t, err)

	ratings, err := svc.GetRatings(ctx, refID, entity.RefLocation)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
}

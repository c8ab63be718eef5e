package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"anoa.com/wisatapedia/internal/entity"
	"anoa.com/wisatapedia/internal/modules/media/dto"
	"anoa.com/wisatapedia/internal/modules/media/repository"
	"anoa.com/wisatapedia/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeStorage records uploads and deletes in memory.
type fakeStorage struct {
	uploads    []string
	deletes    []string
	failUpload bool
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, folder, fileName string) (string, error) {
	if f.failUpload {
		return "", errors.New("upload failed")
	}
	url := "https://cdn.example.com/" + folder + "/" + fileName
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeStorage) Delete(ctx context.Context, fileURL string) error {
	f.deletes = append(f.deletes, fileURL)
	return nil
}

func setup(t *testing.T) (MediaService, *fakeStorage) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Media{}))

	fs := &fakeStorage{}
	return NewMediaService(repository.NewMediaRepository(db), fs), fs
}

func attach(t *testing.T, svc MediaService, userID uuid.UUID, refID uuid.UUID) *dto.MediaResponse {
	t.Helper()
	resp, err := svc.AttachMedia(context.Background(), &userID, refID, entity.RefLocation,
		strings.NewReader("bytes"), "sunset.jpg", dto.AttachMediaRequest{Title: "Sunset"})
	require.NoError(t, err)
	return resp
}

func TestAttachMedia(t *testing.T) {
	svc, fs := setup(t)
	userID := uuid.New()
	refID := uuid.New()

	resp := attach(t, svc, userID, refID)
	assert.Equal(t, entity.MediaStatusActive, resp.Status)
	assert.Equal(t, entity.MediaTypeImage, resp.MediaType)
	assert.Contains(t, resp.FileURL, "media/location")
	require.Len(t, fs.uploads, 1)

	_, err := svc.AttachMedia(context.Background(), &userID, refID, entity.ReferenceType("gallery"),
		strings.NewReader("bytes"), "x.jpg", dto.AttachMediaRequest{})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSoftDelete_HidesFromListingsOnly(t *testing.T) {
	svc, fs := setup(t)
	userID := uuid.New()
	refID := uuid.New()
	ctx := context.Background()

	resp := attach(t, svc, userID, refID)

	require.NoError(t, svc.SoftDeleteMedia(ctx, userID, false, resp.ID))

	// Gone from the active listing
	listed, err := svc.ListFor(ctx, refID, entity.RefLocation)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// Still fetchable by ID, status flipped
	got, err := svc.GetMedia(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MediaStatusInactive, got.Status)

	// Blob untouched
	assert.Empty(t, fs.deletes)
}

func TestHardDelete_RemovesRowAndBlob(t *testing.T) {
	svc, fs := setup(t)
	userID := uuid.New()
	ctx := context.Background()

	resp := attach(t, svc, userID, uuid.New())

	require.NoError(t, svc.HardDeleteMedia(ctx, userID, false, resp.ID))

	_, err := svc.GetMedia(ctx, resp.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.Len(t, fs.deletes, 1)
	assert.Equal(t, resp.FileURL, fs.deletes[0])
}

func TestDelete_OwnerOrAdminOnly(t *testing.T) {
	svc, _ := setup(t)
	userID := uuid.New()
	ctx := context.Background()

	resp := attach(t, svc, userID, uuid.New())

	stranger := uuid.New()
	assert.ErrorIs(t, svc.SoftDeleteMedia(ctx, stranger, false, resp.ID), apperror.ErrForbidden)
	assert.ErrorIs(t, svc.HardDeleteMedia(ctx, stranger, false, resp.ID), apperror.ErrForbidden)

	// Admin may remove someone else's upload
	assert.NoError(t, svc.SoftDeleteMedia(ctx, stranger, true, resp.ID))
}

func TestUpdateMedia_IdentityImmutable(t *testing.T) {
	svc, _ := setup(t)
	userID := uuid.New()
	refID := uuid.New()
	ctx := context.Background()

	resp := attach(t, svc, userID, refID)

	updated, err := svc.UpdateMedia(ctx, userID, false, resp.ID, dto.UpdateMediaRequest{
		Title:     "Sunrise",
		MediaType: entity.MediaTypeVideo,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sunrise", updated.Title)
	assert.Equal(t, entity.MediaTypeVideo, updated.MediaType)
	assert.Equal(t, refID, updated.ReferenceID)
	assert.Equal(t, resp.FileURL, updated.FileURL)
}

package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"anoa.com/wisatapedia/internal/entity"
	"anoa.com/wisatapedia/internal/modules/media/dto"
	"anoa.com/wisatapedia/internal/modules/media/repository"
	"anoa.com/wisatapedia/pkg/apperror"
	"anoa.com/wisatapedia/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaService interface {
	AttachMedia(ctx context.Context, userID *uuid.UUID, refID uuid.UUID, refType entity.ReferenceType, file io.Reader, fileName string, req dto.AttachMediaRequest) (*dto.MediaResponse, error)
	GetMedia(ctx context.Context, id uuid.UUID) (*dto.MediaResponse, error)
	UpdateMedia(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID, req dto.UpdateMediaRequest) (*dto.MediaResponse, error)
	SoftDeleteMedia(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) error
	HardDeleteMedia(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) error
	ListFor(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) ([]dto.MediaResponse, error)
}

type mediaService struct {
	repo        repository.MediaRepository
	fileStorage storage.MediaStorage
}

func NewMediaService(repo repository.MediaRepository, fileStorage storage.MediaStorage) MediaService {
	return &mediaService{
		repo:        repo,
		fileStorage: fileStorage,
	}
}

func (s *mediaService) AttachMedia(ctx context.Context, userID *uuid.UUID, refID uuid.UUID, refType entity.ReferenceType, file io.Reader, fileName string, req dto.AttachMediaRequest) (*dto.MediaResponse, error) {
	if !refType.Valid() {
		return nil, fmt.Errorf("%w: unknown reference type %q", apperror.ErrInvalidInput, refType)
	}

	folder := "media/" + refType.String()
	fileURL, err := s.fileStorage.Upload(ctx, file, folder, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = entity.MediaTypeImage
	}

	media := &entity.Media{
		UserID:        userID,
		ReferenceID:   refID,
		ReferenceType: refType,
		FileURL:       fileURL,
		Title:         req.Title,
		Description:   req.Description,
		MediaType:     mediaType,
		Status:        entity.MediaStatusActive,
	}

	if err := s.repo.Create(ctx, media); err != nil {
		// Row failed, don't leave an orphan blob behind
		if delErr := s.fileStorage.Delete(ctx, fileURL); delErr != nil {
			log.Printf("failed to clean up orphan media blob %s: %v", fileURL, delErr)
		}
		return nil, err
	}

	return toResponse(media), nil
}

// GetMedia returns the record regardless of status; soft-deleted media stays
// readable by ID.
func (s *mediaService) GetMedia(ctx context.Context, id uuid.UUID) (*dto.MediaResponse, error) {
	media, err := s.findMedia(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(media), nil
}

func (s *mediaService) UpdateMedia(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID, req dto.UpdateMediaRequest) (*dto.MediaResponse, error) {
	media, err := s.findMedia(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(media, userID, isAdmin); err != nil {
		return nil, err
	}

	// Reference pair, uploader and URL are immutable after creation.
	if req.Title != "" {
		media.Title = req.Title
	}
	if req.Description != "" {
		media.Description = req.Description
	}
	if req.MediaType != "" {
		media.MediaType = req.MediaType
	}

	if err := s.repo.Update(ctx, media); err != nil {
		return nil, err
	}

	return toResponse(media), nil
}

// SoftDeleteMedia flips status to inactive; the row and the blob survive.
func (s *mediaService) SoftDeleteMedia(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	media, err := s.findMedia(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(media, userID, isAdmin); err != nil {
		return err
	}

	return s.repo.UpdateStatus(ctx, id, entity.MediaStatusInactive)
}

// HardDeleteMedia removes the row and destroys the backing blob.
func (s *mediaService) HardDeleteMedia(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	media, err := s.findMedia(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(media, userID, isAdmin); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.fileStorage.Delete(ctx, media.FileURL); err != nil {
		// Row is gone; the blob delete failure is logged, not surfaced
		log.Printf("failed to delete media blob %s: %v", media.FileURL, err)
	}

	return nil
}

func (s *mediaService) ListFor(ctx context.Context, refID uuid.UUID, refType entity.ReferenceType) ([]dto.MediaResponse, error) {
	if !refType.Valid() {
		return nil, fmt.Errorf("%w: unknown reference type %q", apperror.ErrInvalidInput, refType)
	}

	media, err := s.repo.FindActiveByReference(ctx, refID, refType)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MediaResponse, 0, len(media))
	for _, m := range media {
		responses = append(responses, *toResponse(m))
	}
	return responses, nil
}

func (s *mediaService) findMedia(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: media", apperror.ErrNotFound)
		}
		return nil, err
	}
	return media, nil
}

func (s *mediaService) checkOwnership(media *entity.Media, userID uuid.UUID, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	if media.UserID == nil || *media.UserID != userID {
		return apperror.ErrForbidden
	}
	return nil
}

func toResponse(m *entity.Media) *dto.MediaResponse {
	return &dto.MediaResponse{
		ID:            m.ID,
		UserID:        m.UserID,
		ReferenceID:   m.ReferenceID,
		ReferenceType: m.ReferenceType.String(),
		FileURL:       m.FileURL,
		Title:         m.Title,
		Description:   m.Description,
		MediaType:     m.MediaType,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}

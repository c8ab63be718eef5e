package event

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"anoa.com/wisatapedia/internal/entity"
	eventDto "anoa.com/wisatapedia/internal/modules/event/dto"
	"anoa.com/wisatapedia/internal/modules/event/repository"
	placeRepo "anoa.com/wisatapedia/internal/modules/place/repository"
	rating "anoa.com/wisatapedia/internal/modules/rating/service"
	"anoa.com/wisatapedia/pkg/apperror"
	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

type EventService interface {
	CreateOrganizer(ctx context.Context, req eventDto.CreateOrganizerRequest) (*eventDto.OrganizerResponse, error)
	GetOrganizer(ctx context.Context, id uuid.UUID) (*eventDto.OrganizerResponse, error)
	ListOrganizers(ctx context.Context, page dto.PageFilter) ([]eventDto.OrganizerResponse, *dto.PaginationMeta, error)
	UpdateOrganizer(ctx context.Context, id uuid.UUID, req eventDto.UpdateOrganizerRequest) (*eventDto.OrganizerResponse, error)
	DeleteOrganizer(ctx context.Context, id uuid.UUID) error

	CreateEvent(ctx context.Context, req eventDto.CreateEventRequest) (*eventDto.EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*eventDto.EventResponse, error)
	GetEventBySlug(ctx context.Context, slug string) (*eventDto.EventResponse, error)
	ListEvents(ctx context.Context, filter eventDto.EventFilter) (*eventDto.PaginatedEventResponse, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req eventDto.UpdateEventRequest) (*eventDto.EventResponse, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	repo      repository.EventRepository
	placeRepo placeRepo.PlaceRepository
	ratingSvc rating.RatingService
	sanitizer *bluemonday.Policy
}

func NewEventService(repo repository.EventRepository, placeRepo placeRepo.PlaceRepository, ratingSvc rating.RatingService) EventService {
	return &eventService{
		repo:      repo,
		placeRepo: placeRepo,
		ratingSvc: ratingSvc,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *eventService) CreateOrganizer(ctx context.Context, req eventDto.CreateOrganizerRequest) (*eventDto.OrganizerResponse, error) {
	organizer := &entity.Organizer{
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		Website:     req.Website,
		Description: s.sanitizer.Sanitize(req.Description),
	}
	if err := s.repo.CreateOrganizer(ctx, organizer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: organizer name already taken", apperror.ErrDuplicate)
		}
		return nil, err
	}
	return s.organizerResponse(ctx, organizer), nil
}

func (s *eventService) GetOrganizer(ctx context.Context, id uuid.UUID) (*eventDto.OrganizerResponse, error) {
	organizer, err := s.repo.FindOrganizerByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "organizer")
	}
	return s.organizerResponse(ctx, organizer), nil
}

func (s *eventService) ListOrganizers(ctx context.Context, page dto.PageFilter) ([]eventDto.OrganizerResponse, *dto.PaginationMeta, error) {
	page.Normalize()

	organizers, total, err := s.repo.FindOrganizers(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]eventDto.OrganizerResponse, 0, len(organizers))
	for _, o := range organizers {
		responses = append(responses, *s.organizerResponse(ctx, o))
	}

	meta := dto.NewPaginationMeta(page.Page, page.Limit, total)
	return responses, &meta, nil
}

func (s *eventService) UpdateOrganizer(ctx context.Context, id uuid.UUID, req eventDto.UpdateOrganizerRequest) (*eventDto.OrganizerResponse, error) {
	organizer, err := s.repo.FindOrganizerByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "organizer")
	}

	if req.Name != "" {
		organizer.Name = strings.TrimSpace(req.Name)
	}
	if req.Email != nil {
		organizer.Email = req.Email
	}
	if req.Website != nil {
		organizer.Website = req.Website
	}
	if req.Description != nil {
		organizer.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if err := s.repo.UpdateOrganizer(ctx, organizer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: organizer name already taken", apperror.ErrDuplicate)
		}
		return nil, err
	}
	return s.organizerResponse(ctx, organizer), nil
}

func (s *eventService) DeleteOrganizer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindOrganizerByID(ctx, id); err != nil {
		return notFound(err, "organizer")
	}
	return s.repo.DeleteOrganizer(ctx, id)
}

func (s *eventService) CreateEvent(ctx context.Context, req eventDto.CreateEventRequest) (*eventDto.EventResponse, error) {
	organizerID, err := uuid.Parse(req.OrganizerID)
	if err != nil {
		return nil, fmt.Errorf("%w: organizer_id", apperror.ErrInvalidInput)
	}
	if _, err := s.repo.FindOrganizerByID(ctx, organizerID); err != nil {
		return nil, notFound(err, "organizer")
	}

	if !req.EndsAt.After(req.StartsAt) {
		return nil, fmt.Errorf("%w: ends_at must be after starts_at", apperror.ErrInvalidInput)
	}

	var locationID *uuid.UUID
	if req.LocationID != nil {
		id, err := uuid.Parse(*req.LocationID)
		if err != nil {
			return nil, fmt.Errorf("%w: location_id", apperror.ErrInvalidInput)
		}
		if _, err := s.placeRepo.FindLocationByID(ctx, id); err != nil {
			return nil, notFound(err, "location")
		}
		locationID = &id
	}

	event := &entity.Event{
		OrganizerID: organizerID,
		LocationID:  locationID,
		Name:        strings.TrimSpace(req.Name),
		Slug:        slugify(req.Name) + "-" + uuid.New().String()[:8],
		Description: s.sanitizer.Sanitize(req.Description),
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return s.eventResponse(ctx, event), nil
}

func (s *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*eventDto.EventResponse, error) {
	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "event")
	}
	return s.eventResponse(ctx, event), nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*eventDto.EventResponse, error) {
	event, err := s.repo.FindEventBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "event")
	}
	return s.eventResponse(ctx, event), nil
}

func (s *eventService) ListEvents(ctx context.Context, filter eventDto.EventFilter) (*eventDto.PaginatedEventResponse, error) {
	filter.Normalize()

	events, total, err := s.repo.FindEvents(ctx, filter, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]eventDto.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, *s.eventResponse(ctx, e))
	}

	return &eventDto.PaginatedEventResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uuid.UUID, req eventDto.UpdateEventRequest) (*eventDto.EventResponse, error) {
	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "event")
	}

	if req.Name != "" {
		event.Name = strings.TrimSpace(req.Name)
	}
	if req.Description != nil {
		event.Description = s.sanitizer.Sanitize(*req.Description)
	}
	if req.LocationID != nil {
		locationID, err := uuid.Parse(*req.LocationID)
		if err != nil {
			return nil, fmt.Errorf("%w: location_id", apperror.ErrInvalidInput)
		}
		if _, err := s.placeRepo.FindLocationByID(ctx, locationID); err != nil {
			return nil, notFound(err, "location")
		}
		event.LocationID = &locationID
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = *req.EndsAt
	}
	if !event.EndsAt.After(event.StartsAt) {
		return nil, fmt.Errorf("%w: ends_at must be after starts_at", apperror.ErrInvalidInput)
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}
	return s.eventResponse(ctx, event), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindEventByID(ctx, id); err != nil {
		return notFound(err, "event")
	}
	return s.repo.DeleteEvent(ctx, id)
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", apperror.ErrNotFound, what)
	}
	return err
}

func (s *eventService) organizerResponse(ctx context.Context, o *entity.Organizer) *eventDto.OrganizerResponse {
	summary, _ := s.ratingSvc.GetSummary(ctx, o.ID, entity.RefOrganizer)

	return &eventDto.OrganizerResponse{
		ID:          o.ID,
		Name:        o.Name,
		Email:       o.Email,
		Website:     o.Website,
		Description: o.Description,
		Rating:      summary,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (s *eventService) eventResponse(ctx context.Context, e *entity.Event) *eventDto.EventResponse {
	summary, _ := s.ratingSvc.GetSummary(ctx, e.ID, entity.RefEvent)

	return &eventDto.EventResponse{
		ID:          e.ID,
		OrganizerID: e.OrganizerID,
		LocationID:  e.LocationID,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		Rating:      summary,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

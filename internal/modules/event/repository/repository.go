package repository

import (
	"context"
	"time"

	"anoa.com/wisatapedia/internal/entity"
	eventDto "anoa.com/wisatapedia/internal/modules/event/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	CreateOrganizer(ctx context.Context, o *entity.Organizer) error
	FindOrganizerByID(ctx context.Context, id uuid.UUID) (*entity.Organizer, error)
	FindOrganizers(ctx context.Context, offset, limit int) ([]*entity.Organizer, int64, error)
	UpdateOrganizer(ctx context.Context, o *entity.Organizer) error
	DeleteOrganizer(ctx context.Context, id uuid.UUID) error

	CreateEvent(ctx context.Context, e *entity.Event) error
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindEventBySlug(ctx context.Context, slug string) (*entity.Event, error)
	FindEvents(ctx context.Context, filter eventDto.EventFilter, offset, limit int) ([]*entity.Event, int64, error)
	UpdateEvent(ctx context.Context, e *entity.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateOrganizer(ctx context.Context, o *entity.Organizer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *eventRepository) FindOrganizerByID(ctx context.Context, id uuid.UUID) (*entity.Organizer, error) {
	var organizer entity.Organizer
	if err := r.db.WithContext(ctx).First(&organizer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &organizer, nil
}

func (r *eventRepository) FindOrganizers(ctx context.Context, offset, limit int) ([]*entity.Organizer, int64, error) {
	var organizers []*entity.Organizer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Organizer{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&organizers).Error; err != nil {
		return nil, 0, err
	}

	return organizers, total, nil
}

func (r *eventRepository) UpdateOrganizer(ctx context.Context, o *entity.Organizer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *eventRepository) DeleteOrganizer(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Organizer{}, "id = ?", id).Error
}

func (r *eventRepository) CreateEvent(ctx context.Context, e *entity.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	if err := r.db.WithContext(ctx).
		Preload("Organizer").
		First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindEventBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	var event entity.Event
	if err := r.db.WithContext(ctx).
		Preload("Organizer").
		Where("slug = ?", slug).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindEvents(ctx context.Context, filter eventDto.EventFilter, offset, limit int) ([]*entity.Event, int64, error) {
	var events []*entity.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Event{})
	if filter.OrganizerID != "" {
		query = query.Where("organizer_id = ?", filter.OrganizerID)
	}
	if filter.Upcoming {
		query = query.Where("starts_at > ?", time.Now())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Organizer").
		Order("starts_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *eventRepository) UpdateEvent(ctx context.Context, e *entity.Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *eventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Event{}, "id = ?", id).Error
}

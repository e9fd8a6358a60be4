package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/daybook/daybook/internal/metrics"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

// Event service errors.
var (
	// ErrEventNotFound covers both a missing event and one owned by a
	// different user; the two are deliberately indistinguishable.
	ErrEventNotFound = errors.New("event not found")
	ErrMissingTitle  = errors.New("event title is required")
	ErrMissingDate   = errors.New("event date is required")
)

// EventStore is the event store interface required by EventService.
// *repository.Repository satisfies it. Every method is scoped by owner
// id at the query level.
type EventStore interface {
	CreateEvent(ctx context.Context, event *model.Event) error
	ListEventsByOwner(ctx context.Context, ownerID string) ([]*model.Event, error)
	GetEventForOwner(ctx context.Context, id, ownerID string) (*model.Event, error)
	UpdateEvent(ctx context.Context, event *model.Event) error
	DeleteEvent(ctx context.Context, id, ownerID string) error
}

// EventService performs CRUD on events scoped to the authenticated user.
type EventService struct {
	store   EventStore
	metrics metrics.Recorder
}

// NewEventService creates a new EventService.
func NewEventService(store EventStore, recorder metrics.Recorder) *EventService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &EventService{
		store:   store,
		metrics: recorder,
	}
}

// CreateEventInput defines input for creating an event.
type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Category    string
	Reminder    bool
}

// UpdateEventInput defines input for a partial event update.
// Nil fields are left unchanged.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Category    *string
	Reminder    *bool
}

// List returns all events owned by ownerID, in date order.
func (s *EventService) List(ctx context.Context, ownerID string) ([]*model.Event, error) {
	events, err := s.store.ListEventsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Create persists a new event owned by ownerID. The owner is always the
// authenticated caller; any owner field supplied by the client is
// ignored upstream.
func (s *EventService) Create(ctx context.Context, ownerID string, input CreateEventInput) (*model.Event, error) {
	if input.Title == "" {
		return nil, ErrMissingTitle
	}
	if input.Date.IsZero() {
		return nil, ErrMissingDate
	}

	now := time.Now().UTC()
	event := &model.Event{
		ID:          ulid.Make().String(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Category:    input.Category,
		Reminder:    input.Reminder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.metrics.IncEventCreated()

	return event, nil
}

// Update merges the supplied fields into an existing event and persists
// it. The load and the write are both scoped by owner; two concurrent
// updates race with last-write-wins semantics.
func (s *EventService) Update(ctx context.Context, ownerID, eventID string, input UpdateEventInput) (*model.Event, error) {
	event, err := s.store.GetEventForOwner(ctx, eventID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrMissingTitle
		}
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, ErrMissingDate
		}
		event.Date = *input.Date
	}
	if input.Category != nil {
		event.Category = *input.Category
	}
	if input.Reminder != nil {
		event.Reminder = *input.Reminder
	}
	event.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateEvent(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.metrics.IncEventUpdated()

	return event, nil
}

// Delete removes an event owned by ownerID. Deleting an event that no
// longer exists returns ErrEventNotFound, never an internal error.
func (s *EventService) Delete(ctx context.Context, ownerID, eventID string) error {
	if err := s.store.DeleteEvent(ctx, eventID, ownerID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.metrics.IncEventDeleted()

	return nil
}

// Package testutil provides shared helpers for tests.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

// MemStore is an in-memory credential and event store for tests.
// It mirrors the repository semantics: unique username/email on users,
// owner-scoped lookups on events, and the repository sentinel errors.
type MemStore struct {
	mu     sync.Mutex
	users  map[string]*model.User
	events map[string]*model.Event
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		users:  make(map[string]*model.User),
		events: make(map[string]*model.Event),
	}
}

// CreateUser inserts a user, enforcing username and email uniqueness.
func (s *MemStore) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}

	copied := *user
	s.users[user.ID] = &copied
	return nil
}

// GetUserByID retrieves a user by id.
func (s *MemStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetUserByEmail retrieves a user by email.
func (s *MemStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// CreateEvent inserts an event.
func (s *MemStore) CreateEvent(ctx context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *event
	s.events[event.ID] = &copied
	return nil
}

// ListEventsByOwner returns all events owned by ownerID.
func (s *MemStore) ListEventsByOwner(ctx context.Context, ownerID string) ([]*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]*model.Event, 0)
	for _, event := range s.events {
		if event.OwnerID == ownerID {
			copied := *event
			events = append(events, &copied)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}

// GetEventForOwner retrieves an event scoped by owner.
func (s *MemStore) GetEventForOwner(ctx context.Context, id, ownerID string) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok || event.OwnerID != ownerID {
		return nil, repository.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

// UpdateEvent persists an event scoped by owner.
func (s *MemStore) UpdateEvent(ctx context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.events[event.ID]
	if !ok || existing.OwnerID != event.OwnerID {
		return repository.ErrEventNotFound
	}
	copied := *event
	s.events[event.ID] = &copied
	return nil
}

// DeleteEvent removes an event scoped by owner.
func (s *MemStore) DeleteEvent(ctx context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok || event.OwnerID != ownerID {
		return repository.ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

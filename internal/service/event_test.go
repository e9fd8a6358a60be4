package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daybook/daybook/internal/testutil"
)

func newEventService(t *testing.T) *EventService {
	t.Helper()
	return NewEventService(testutil.NewMemStore(), nil)
}

func TestEventService_CreateThenList(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()

	date := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, "user-a", CreateEventInput{Title: "Standup", Date: date})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.OwnerID != "user-a" {
		t.Errorf("expected owner user-a, got %s", created.OwnerID)
	}

	events, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(events))
	}
	if events[0].Title != "Standup" || !events[0].Date.Equal(date) {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestEventService_Create_Validation(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-a", CreateEventInput{Date: time.Now()})
	if !errors.Is(err, ErrMissingTitle) {
		t.Errorf("expected ErrMissingTitle, got %v", err)
	}

	_, err = svc.Create(ctx, "user-a", CreateEventInput{Title: "No date"})
	if !errors.Is(err, ErrMissingDate) {
		t.Errorf("expected ErrMissingDate, got %v", err)
	}
}

func TestEventService_OwnerIsolation(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", CreateEventInput{Title: "Private", Date: time.Now()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// B never sees A's events.
	events, err := svc.List(ctx, "user-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected user-b to see no events, got %d", len(events))
	}

	// B cannot update or delete A's event; the failure is identical to
	// a missing event.
	title := "Hijacked"
	if _, err := svc.Update(ctx, "user-b", created.ID, UpdateEventInput{Title: &title}); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound on foreign update, got %v", err)
	}
	if err := svc.Delete(ctx, "user-b", created.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound on foreign delete, got %v", err)
	}

	// The event is untouched for its owner.
	remaining, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Title != "Private" {
		t.Errorf("expected user-a's event intact, got %+v", remaining)
	}
}

func TestEventService_Update_MergesFields(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", CreateEventInput{
		Title:       "Planning",
		Description: "Quarterly planning",
		Date:        time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Category:    "work",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newTitle := "Planning (moved)"
	newDate := time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, "user-a", created.ID, UpdateEventInput{
		Title: &newTitle,
		Date:  &newDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Title != newTitle || !updated.Date.Equal(newDate) {
		t.Errorf("expected merged title/date, got %+v", updated)
	}
	// Untouched fields survive.
	if updated.Description != "Quarterly planning" || updated.Category != "work" {
		t.Errorf("expected untouched fields to survive, got %+v", updated)
	}
}

func TestEventService_Update_EmptyTitleRejected(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", CreateEventInput{Title: "Keep me", Date: time.Now()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := ""
	if _, err := svc.Update(ctx, "user-a", created.ID, UpdateEventInput{Title: &empty}); !errors.Is(err, ErrMissingTitle) {
		t.Errorf("expected ErrMissingTitle, got %v", err)
	}
}

func TestEventService_DoubleDelete(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", CreateEventInput{Title: "Once", Date: time.Now()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, "user-a", created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second delete is a clean not-found, never an internal error.
	if err := svc.Delete(ctx, "user-a", created.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound on repeat delete, got %v", err)
	}
}

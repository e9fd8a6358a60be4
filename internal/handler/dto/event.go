package dto

import (
	"time"

	"github.com/daybook/daybook/internal/model"
)

// CreateEventRequest represents the request body for creating an event.
// Any owner field a client might send is simply not part of the shape;
// ownership always comes from the verified token.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category,omitempty"`
	Reminder    bool      `json:"reminder,omitempty"`
}

// UpdateEventRequest represents a partial event update.
// Absent fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Reminder    *bool      `json:"reminder,omitempty"`
}

// EventResponse represents an event in API responses.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category,omitempty"`
	Reminder    bool      `json:"reminder"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToEventResponse converts an Event to its API representation.
func ToEventResponse(event *model.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Category:    event.Category,
		Reminder:    event.Reminder,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

// ToEventListResponse converts a slice of events.
func ToEventListResponse(events []*model.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, ToEventResponse(event))
	}
	return out
}

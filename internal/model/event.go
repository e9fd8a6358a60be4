package model

import "time"

// Event represents a calendar entry owned by exactly one user.
// OwnerID is always derived from the verified token, never from
// client input.
type Event struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category,omitempty"`
	Reminder    bool      `json:"reminder"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

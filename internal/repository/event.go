package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daybook/daybook/internal/model"
)

// ErrEventNotFound covers both "no such event" and "owned by someone
// else"; every query below is scoped by owner id at the SQL level, so a
// caller can never distinguish the two cases.
var ErrEventNotFound = errors.New("event not found")

// CreateEvent inserts a new event into the database.
func (r *Repository) CreateEvent(ctx context.Context, event *model.Event) error {
	query := `
		INSERT INTO events (id, owner_id, title, description, date, category, reminder, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.OwnerID,
		event.Title,
		event.Description,
		event.Date,
		event.Category,
		event.Reminder,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// ListEventsByOwner retrieves all events owned by the given user,
// ordered by date.
func (r *Repository) ListEventsByOwner(ctx context.Context, ownerID string) ([]*model.Event, error) {
	query := `
		SELECT id, owner_id, title, description, date, category, reminder, created_at, updated_at
		FROM events
		WHERE owner_id = $1
		ORDER BY date
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}

// GetEventForOwner retrieves a single event by id, scoped to its owner.
func (r *Repository) GetEventForOwner(ctx context.Context, id, ownerID string) (*model.Event, error) {
	query := `
		SELECT id, owner_id, title, description, date, category, reminder, created_at, updated_at
		FROM events
		WHERE id = $1 AND owner_id = $2
	`

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// UpdateEvent persists the mutable fields of an event, scoped to its
// owner. Last write wins; there is no version check.
func (r *Repository) UpdateEvent(ctx context.Context, event *model.Event) error {
	query := `
		UPDATE events
		SET title = $3, description = $4, date = $5, category = $6, reminder = $7, updated_at = $8
		WHERE id = $1 AND owner_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		event.ID,
		event.OwnerID,
		event.Title,
		event.Description,
		event.Date,
		event.Category,
		event.Reminder,
		event.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes an event, scoped to its owner.
func (r *Repository) DeleteEvent(ctx context.Context, id, ownerID string) error {
	query := `
		DELETE FROM events
		WHERE id = $1 AND owner_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}

// scanEvent scans an event row.
func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.OwnerID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Category,
		&event.Reminder,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	return &event, err
}

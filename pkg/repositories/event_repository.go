// Package repositories provides data access for the event catalog.
package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/asiet-labs/festbot/pkg/database"
	"github.com/asiet-labs/festbot/pkg/models"
)

// EventRepository defines the interface for event catalog access.
type EventRepository interface {
	// LoadAll returns every event in catalog order.
	LoadAll(ctx context.Context) ([]*models.Event, error)
	// ReplaceAll atomically replaces the stored catalog with the given events.
	ReplaceAll(ctx context.Context, events []*models.Event) error
}

// eventRepository implements EventRepository using PostgreSQL.
type eventRepository struct {
	db *database.DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *database.DB) EventRepository {
	return &eventRepository{db: db}
}

// LoadAll returns every event ordered by insertion position, which the
// snapshot relies on for deterministic tie-breaks.
func (r *eventRepository) LoadAll(ctx context.Context) ([]*models.Event, error) {
	query := `
		SELECT event_id, event_name, date, time, venue, details, phone,
		       fest, slots, poster, amount, category, coordinators
		FROM events
		ORDER BY position`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		ev := &models.Event{}
		if err := rows.Scan(
			&ev.ID, &ev.Name, &ev.Date, &ev.Time, &ev.Venue, &ev.Details,
			&ev.Phone, &ev.Fest, &ev.Slots, &ev.Poster, &ev.Amount,
			&ev.Category, &ev.Coordinators,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}

// ReplaceAll swaps in a fresh catalog inside one transaction so readers never
// see a half-synced table.
func (r *eventRepository) ReplaceAll(ctx context.Context, events []*models.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin sync transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE events RESTART IDENTITY`); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}

	query := `
		INSERT INTO events (event_id, event_name, date, time, venue, details,
		                    phone, fest, slots, poster, amount, category,
		                    coordinators, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	now := time.Now()
	for i, ev := range events {
		if ev == nil || ev.Name == "" {
			continue
		}
		id := ev.ID
		if id == "" {
			id = fmt.Sprintf("%s_%d", ev.Name, i)
		}
		coordinators := ev.Coordinators
		if coordinators == nil {
			coordinators = []string{}
		}
		if _, err := tx.Exec(ctx, query,
			id, ev.Name, ev.Date, ev.Time, ev.Venue, ev.Details,
			ev.Phone, ev.Fest, ev.Slots, ev.Poster, ev.Amount,
			ev.Category, coordinators, now,
		); err != nil {
			return fmt.Errorf("failed to insert event %q: %w", ev.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sync transaction: %w", err)
	}
	return nil
}

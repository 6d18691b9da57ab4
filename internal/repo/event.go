package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ahalloran/fairhaven-week/internal/domain"
)

// EventRepo defines the persistence operations for ItineraryEvents.
type EventRepo interface {
	// Create inserts a new event and returns the persisted record.
	Create(ctx context.Context, e domain.ItineraryEvent) (domain.ItineraryEvent, error)

	// GetByID retrieves a single event by its UUID primary key.
	// Returns domain.ErrNotFound if no event with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.ItineraryEvent, error)

	// List returns events ordered by start_time ascending, since the itinerary
	// is a schedule, unlike the other resources. A non-nil rng restricts the
	// result to events whose start_time falls within [rng.From, rng.To).
	List(ctx context.Context, rng *domain.EventRange) ([]domain.ItineraryEvent, error)

	// Update overwrites every mutable field of an existing event, refreshes
	// updated_at, and returns the updated record. Returns domain.ErrNotFound
	// if absent.
	Update(ctx context.Context, e domain.ItineraryEvent) (domain.ItineraryEvent, error)

	// Delete removes an event by ID. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of persisted events.
	Count(ctx context.Context) (int64, error)
}

// pgEventRepo is the Postgres implementation of EventRepo.
type pgEventRepo struct {
	db db
}

// NewEventRepo constructs an EventRepo backed by the provided db connection.
func NewEventRepo(db db) EventRepo {
	return &pgEventRepo{db: db}
}

const eventColumns = `id, title, description, start_time, end_time, location, url, category, color, created_by, created_at, updated_at`

func (r *pgEventRepo) Create(ctx context.Context, e domain.ItineraryEvent) (domain.ItineraryEvent, error) {
	const q = `
		INSERT INTO itinerary_events (title, description, start_time, end_time, location, url, category, color, created_by)
		VALUES (@title, @description, @start_time, @end_time, @location, @url, @category, @color, @created_by)
		RETURNING ` + eventColumns

	args := pgx.NamedArgs{
		"title":       e.Title,
		"description": e.Description,
		"start_time":  e.StartTime,
		"end_time":    e.EndTime,
		"location":    e.Location,
		"url":         e.URL,
		"category":    e.Category,
		"color":       e.Color,
		"created_by":  e.CreatedBy,
	}
	return queryOne(ctx, r.db, "repo.EventRepo.Create", q, args, scanEvent)
}

func (r *pgEventRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ItineraryEvent, error) {
	const q = `
		SELECT ` + eventColumns + `
		FROM itinerary_events
		WHERE id = @id`

	return queryOne(ctx, r.db, "repo.EventRepo.GetByID", q, pgx.NamedArgs{"id": id}, scanEvent)
}

// List returns events in schedule order, optionally restricted to a
// half-open [From, To) window on start_time.
func (r *pgEventRepo) List(ctx context.Context, rng *domain.EventRange) ([]domain.ItineraryEvent, error) {
	if rng == nil {
		const q = `
			SELECT ` + eventColumns + `
			FROM itinerary_events
			ORDER BY start_time ASC`
		return queryAll(ctx, r.db, "repo.EventRepo.List", q, nil, scanEvent)
	}

	const q = `
		SELECT ` + eventColumns + `
		FROM itinerary_events
		WHERE start_time >= @from AND start_time < @to
		ORDER BY start_time ASC`
	return queryAll(ctx, r.db, "repo.EventRepo.List", q, pgx.NamedArgs{"from": rng.From, "to": rng.To}, scanEvent)
}

// Update is a full replacement of every mutable field. updated_at is bumped
// on every call; created_at and created_by are immutable.
func (r *pgEventRepo) Update(ctx context.Context, e domain.ItineraryEvent) (domain.ItineraryEvent, error) {
	const q = `
		UPDATE itinerary_events
		SET title       = @title,
		    description = @description,
		    start_time  = @start_time,
		    end_time    = @end_time,
		    location    = @location,
		    url         = @url,
		    category    = @category,
		    color       = @color,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + eventColumns

	args := pgx.NamedArgs{
		"id":          e.ID,
		"title":       e.Title,
		"description": e.Description,
		"start_time":  e.StartTime,
		"end_time":    e.EndTime,
		"location":    e.Location,
		"url":         e.URL,
		"category":    e.Category,
		"color":       e.Color,
	}
	return queryOne(ctx, r.db, "repo.EventRepo.Update", q, args, scanEvent)
}

func (r *pgEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM itinerary_events WHERE id = @id`
	return execExpectingRows(ctx, r.db, "repo.EventRepo.Delete", q, pgx.NamedArgs{"id": id})
}

func (r *pgEventRepo) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM itinerary_events`
	return countRows(ctx, r.db, "repo.EventRepo.Count", q)
}

// scanEvent maps a single database row into a domain.ItineraryEvent.
func scanEvent(s scanner) (domain.ItineraryEvent, error) {
	var (
		out domain.ItineraryEvent
		id  pgtype.UUID
	)
	err := s.Scan(&id, &out.Title, &out.Description, &out.StartTime, &out.EndTime,
		&out.Location, &out.URL, &out.Category, &out.Color, &out.CreatedBy,
		&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return domain.ItineraryEvent{}, notFoundAsDomain(err)
	}
	out.ID = uuid.UUID(id.Bytes)
	return out, nil
}

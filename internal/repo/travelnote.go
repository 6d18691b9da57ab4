package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ahalloran/fairhaven-week/internal/domain"
)

// TravelNoteRepo defines the persistence operations for TravelNotes.
type TravelNoteRepo interface {
	// Create inserts a new travel note and returns the persisted record.
	Create(ctx context.Context, n domain.TravelNote) (domain.TravelNote, error)

	// GetByID retrieves a single travel note by its UUID primary key.
	// Returns domain.ErrNotFound if no note with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TravelNote, error)

	// List returns all travel notes ordered by created_at descending.
	List(ctx context.Context) ([]domain.TravelNote, error)

	// Update overwrites every mutable field of an existing note and returns
	// the updated record. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, n domain.TravelNote) (domain.TravelNote, error)

	// Delete removes a travel note by ID. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of persisted travel notes.
	Count(ctx context.Context) (int64, error)
}

// pgTravelNoteRepo is the Postgres implementation of TravelNoteRepo.
type pgTravelNoteRepo struct {
	db db
}

// NewTravelNoteRepo constructs a TravelNoteRepo backed by the provided db connection.
func NewTravelNoteRepo(db db) TravelNoteRepo {
	return &pgTravelNoteRepo{db: db}
}

const travelNoteColumns = `id, name, arrival_date, departure_date, travel_method, accommodation, notes, created_at`

func (r *pgTravelNoteRepo) Create(ctx context.Context, n domain.TravelNote) (domain.TravelNote, error) {
	const q = `
		INSERT INTO travel_notes (name, arrival_date, departure_date, travel_method, accommodation, notes)
		VALUES (@name, @arrival_date, @departure_date, @travel_method, @accommodation, @notes)
		RETURNING ` + travelNoteColumns

	args := pgx.NamedArgs{
		"name":           n.Name,
		"arrival_date":   n.ArrivalDate,
		"departure_date": n.DepartureDate,
		"travel_method":  n.TravelMethod,
		"accommodation":  n.Accommodation,
		"notes":          n.Notes,
	}
	return queryOne(ctx, r.db, "repo.TravelNoteRepo.Create", q, args, scanTravelNote)
}

func (r *pgTravelNoteRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TravelNote, error) {
	const q = `
		SELECT ` + travelNoteColumns + `
		FROM travel_notes
		WHERE id = @id`

	return queryOne(ctx, r.db, "repo.TravelNoteRepo.GetByID", q, pgx.NamedArgs{"id": id}, scanTravelNote)
}

// List returns all travel notes, most recent first.
func (r *pgTravelNoteRepo) List(ctx context.Context) ([]domain.TravelNote, error) {
	const q = `
		SELECT ` + travelNoteColumns + `
		FROM travel_notes
		ORDER BY created_at DESC`

	return queryAll(ctx, r.db, "repo.TravelNoteRepo.List", q, nil, scanTravelNote)
}

// Update is a full replacement of every mutable field; created_at is immutable.
func (r *pgTravelNoteRepo) Update(ctx context.Context, n domain.TravelNote) (domain.TravelNote, error) {
	const q = `
		UPDATE travel_notes
		SET name           = @name,
		    arrival_date   = @arrival_date,
		    departure_date = @departure_date,
		    travel_method  = @travel_method,
		    accommodation  = @accommodation,
		    notes          = @notes
		WHERE id = @id
		RETURNING ` + travelNoteColumns

	args := pgx.NamedArgs{
		"id":             n.ID,
		"name":           n.Name,
		"arrival_date":   n.ArrivalDate,
		"departure_date": n.DepartureDate,
		"travel_method":  n.TravelMethod,
		"accommodation":  n.Accommodation,
		"notes":          n.Notes,
	}
	return queryOne(ctx, r.db, "repo.TravelNoteRepo.Update", q, args, scanTravelNote)
}

func (r *pgTravelNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM travel_notes WHERE id = @id`
	return execExpectingRows(ctx, r.db, "repo.TravelNoteRepo.Delete", q, pgx.NamedArgs{"id": id})
}

func (r *pgTravelNoteRepo) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM travel_notes`
	return countRows(ctx, r.db, "repo.TravelNoteRepo.Count", q)
}

// scanTravelNote maps a single database row into a domain.TravelNote.
// Arrival and departure are DATE columns, scanned through pgtype.Date.
func scanTravelNote(s scanner) (domain.TravelNote, error) {
	var (
		out       domain.TravelNote
		id        pgtype.UUID
		arrival   pgtype.Date
		departure pgtype.Date
	)
	err := s.Scan(&id, &out.Name, &arrival, &departure,
		&out.TravelMethod, &out.Accommodation, &out.Notes, &out.CreatedAt)
	if err != nil {
		return domain.TravelNote{}, notFoundAsDomain(err)
	}
	out.ID = uuid.UUID(id.Bytes)
	out.ArrivalDate = arrival.Time
	out.DepartureDate = departure.Time
	return out, nil
}

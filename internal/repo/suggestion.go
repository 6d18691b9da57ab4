package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ahalloran/fairhaven-week/internal/domain"
)

// SuggestionRepo defines the persistence operations for ActivitySuggestions.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type SuggestionRepo interface {
	// Create inserts a new suggestion and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, s domain.ActivitySuggestion) (domain.ActivitySuggestion, error)

	// GetByID retrieves a single suggestion by its UUID primary key.
	// Returns domain.ErrNotFound if no suggestion with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.ActivitySuggestion, error)

	// List returns all suggestions ordered by created_at descending.
	List(ctx context.Context) ([]domain.ActivitySuggestion, error)

	// Update overwrites every mutable field of an existing suggestion and
	// returns the updated record. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, s domain.ActivitySuggestion) (domain.ActivitySuggestion, error)

	// Delete removes a suggestion by ID. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of persisted suggestions.
	Count(ctx context.Context) (int64, error)
}

// pgSuggestionRepo is the Postgres implementation of SuggestionRepo.
type pgSuggestionRepo struct {
	db db
}

// NewSuggestionRepo constructs a SuggestionRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewSuggestionRepo(db db) SuggestionRepo {
	return &pgSuggestionRepo{db: db}
}

const suggestionColumns = `id, name, activity_name, description, location, website, category, notes, created_at`

func (r *pgSuggestionRepo) Create(ctx context.Context, s domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
	const q = `
		INSERT INTO activity_suggestions (name, activity_name, description, location, website, category, notes)
		VALUES (@name, @activity_name, @description, @location, @website, @category, @notes)
		RETURNING ` + suggestionColumns

	args := pgx.NamedArgs{
		"name":          s.Name,
		"activity_name": s.ActivityName,
		"description":   s.Description,
		"location":      s.Location,
		"website":       s.Website,
		"category":      s.Category,
		"notes":         s.Notes,
	}
	return queryOne(ctx, r.db, "repo.SuggestionRepo.Create", q, args, scanSuggestion)
}

func (r *pgSuggestionRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ActivitySuggestion, error) {
	const q = `
		SELECT ` + suggestionColumns + `
		FROM activity_suggestions
		WHERE id = @id`

	return queryOne(ctx, r.db, "repo.SuggestionRepo.GetByID", q, pgx.NamedArgs{"id": id}, scanSuggestion)
}

// List returns all suggestions, most recent first.
func (r *pgSuggestionRepo) List(ctx context.Context) ([]domain.ActivitySuggestion, error) {
	const q = `
		SELECT ` + suggestionColumns + `
		FROM activity_suggestions
		ORDER BY created_at DESC`

	return queryAll(ctx, r.db, "repo.SuggestionRepo.List", q, nil, scanSuggestion)
}

// Update is a full replacement of every mutable field; created_at is immutable.
func (r *pgSuggestionRepo) Update(ctx context.Context, s domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
	const q = `
		UPDATE activity_suggestions
		SET name          = @name,
		    activity_name = @activity_name,
		    description   = @description,
		    location      = @location,
		    website       = @website,
		    category      = @category,
		    notes         = @notes
		WHERE id = @id
		RETURNING ` + suggestionColumns

	args := pgx.NamedArgs{
		"id":            s.ID,
		"name":          s.Name,
		"activity_name": s.ActivityName,
		"description":   s.Description,
		"location":      s.Location,
		"website":       s.Website,
		"category":      s.Category,
		"notes":         s.Notes,
	}
	return queryOne(ctx, r.db, "repo.SuggestionRepo.Update", q, args, scanSuggestion)
}

func (r *pgSuggestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM activity_suggestions WHERE id = @id`
	return execExpectingRows(ctx, r.db, "repo.SuggestionRepo.Delete", q, pgx.NamedArgs{"id": id})
}

func (r *pgSuggestionRepo) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM activity_suggestions`
	return countRows(ctx, r.db, "repo.SuggestionRepo.Count", q)
}

// scanSuggestion maps a single database row into a domain.ActivitySuggestion.
func scanSuggestion(s scanner) (domain.ActivitySuggestion, error) {
	var (
		out domain.ActivitySuggestion
		id  pgtype.UUID
	)
	err := s.Scan(&id, &out.Name, &out.ActivityName, &out.Description,
		&out.Location, &out.Website, &out.Category, &out.Notes, &out.CreatedAt)
	if err != nil {
		return domain.ActivitySuggestion{}, notFoundAsDomain(err)
	}
	out.ID = uuid.UUID(id.Bytes)
	return out, nil
}

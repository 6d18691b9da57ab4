package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/ahalloran/fairhaven-week/internal/domain"
	"github.com/ahalloran/fairhaven-week/internal/repo"
)

// TravelNoteService implements business logic for TravelNote operations.
type TravelNoteService struct {
	repo repo.TravelNoteRepo
}

// NewTravelNoteService constructs a TravelNoteService backed by the provided repo.
func NewTravelNoteService(r repo.TravelNoteRepo) *TravelNoteService {
	return &TravelNoteService{repo: r}
}

// Create validates and persists a new travel note.
// Returns a *domain.FieldErrors if the travel method is not a known mode.
func (s *TravelNoteService) Create(ctx context.Context, note domain.TravelNote) (domain.TravelNote, error) {
	if err := validateTravelNote(note); err != nil {
		return domain.TravelNote{}, err
	}
	result, err := s.repo.Create(ctx, note)
	if err != nil {
		return domain.TravelNote{}, fmt.Errorf("service.TravelNoteService.Create: %w", err)
	}
	return result, nil
}

// List returns all travel notes, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TravelNoteService) List(ctx context.Context) ([]domain.TravelNote, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TravelNoteService.List: %w", err)
	}
	if notes == nil {
		return []domain.TravelNote{}, nil
	}
	return notes, nil
}

// Update replaces every mutable field of an existing note and returns the
// stored record. Returns domain.ErrNotFound if the id does not exist.
func (s *TravelNoteService) Update(ctx context.Context, note domain.TravelNote) (domain.TravelNote, error) {
	if err := validateTravelNote(note); err != nil {
		return domain.TravelNote{}, err
	}
	if _, err := s.repo.GetByID(ctx, note.ID); err != nil {
		return domain.TravelNote{}, fmt.Errorf("service.TravelNoteService.Update: %w", err)
	}
	result, err := s.repo.Update(ctx, note)
	if err != nil {
		return domain.TravelNote{}, fmt.Errorf("service.TravelNoteService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a travel note by ID and returns the number of remaining rows.
// Returns domain.ErrNotFound if the id does not exist.
func (s *TravelNoteService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("service.TravelNoteService.Delete: %w", err)
	}
	remaining, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.TravelNoteService.Delete: %w", err)
	}
	return remaining, nil
}

// validateTravelNote enforces the closed transport-mode set offered by the
// travel form. Arrival relative to departure is informational and not checked.
func validateTravelNote(n domain.TravelNote) error {
	if !slices.Contains(domain.TravelMethods, n.TravelMethod) {
		return &domain.FieldErrors{Fields: []string{"travel_method"}}
	}
	return nil
}

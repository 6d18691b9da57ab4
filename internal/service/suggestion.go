// Package service contains the business logic for the Fairhaven Week API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
//
// Field presence is checked at the HTTP layer where the request shape is
// known; services own the rules that need domain knowledge (closed
// enumerations, time ordering, existence checks).
package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/ahalloran/fairhaven-week/internal/domain"
	"github.com/ahalloran/fairhaven-week/internal/repo"
)

// SuggestionService implements business logic for ActivitySuggestion operations.
type SuggestionService struct {
	repo repo.SuggestionRepo
}

// NewSuggestionService constructs a SuggestionService backed by the provided repo.
func NewSuggestionService(r repo.SuggestionRepo) *SuggestionService {
	return &SuggestionService{repo: r}
}

// Create validates and persists a new suggestion.
// Returns a *domain.FieldErrors if the category is not one of the form's options.
func (s *SuggestionService) Create(ctx context.Context, suggestion domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
	if err := validateSuggestion(suggestion); err != nil {
		return domain.ActivitySuggestion{}, err
	}
	result, err := s.repo.Create(ctx, suggestion)
	if err != nil {
		return domain.ActivitySuggestion{}, fmt.Errorf("service.SuggestionService.Create: %w", err)
	}
	return result, nil
}

// List returns all suggestions, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *SuggestionService) List(ctx context.Context) ([]domain.ActivitySuggestion, error) {
	suggestions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SuggestionService.List: %w", err)
	}
	if suggestions == nil {
		return []domain.ActivitySuggestion{}, nil
	}
	return suggestions, nil
}

// Update replaces every mutable field of an existing suggestion and returns
// the stored record. The row is looked up first so a missing id surfaces as
// domain.ErrNotFound rather than a silent no-op.
func (s *SuggestionService) Update(ctx context.Context, suggestion domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
	if err := validateSuggestion(suggestion); err != nil {
		return domain.ActivitySuggestion{}, err
	}
	if _, err := s.repo.GetByID(ctx, suggestion.ID); err != nil {
		return domain.ActivitySuggestion{}, fmt.Errorf("service.SuggestionService.Update: %w", err)
	}
	result, err := s.repo.Update(ctx, suggestion)
	if err != nil {
		return domain.ActivitySuggestion{}, fmt.Errorf("service.SuggestionService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a suggestion by ID and returns the number of remaining rows.
// Returns domain.ErrNotFound if the id does not exist.
func (s *SuggestionService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("service.SuggestionService.Delete: %w", err)
	}
	remaining, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.SuggestionService.Delete: %w", err)
	}
	return remaining, nil
}

// validateSuggestion enforces the closed category set shared with the
// suggestion form, so a typo can never invent a new page section.
func validateSuggestion(s domain.ActivitySuggestion) error {
	if !slices.Contains(domain.SuggestionCategories, s.Category) {
		return &domain.FieldErrors{Fields: []string{"category"}}
	}
	return nil
}

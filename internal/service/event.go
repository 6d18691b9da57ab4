package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahalloran/fairhaven-week/internal/domain"
	"github.com/ahalloran/fairhaven-week/internal/repo"
)

// EventService implements business logic for ItineraryEvent operations.
// Its rules: start_time must be strictly before end_time, and category and
// color fall back to display defaults when omitted.
type EventService struct {
	repo repo.EventRepo
}

// NewEventService constructs an EventService backed by the provided repo.
func NewEventService(r repo.EventRepo) *EventService {
	return &EventService{repo: r}
}

// Create validates and persists a new event.
// Returns a wrapped domain.ErrValidation when the time range is inverted,
// distinct from the missing-field failures reported at the HTTP layer.
func (s *EventService) Create(ctx context.Context, event domain.ItineraryEvent) (domain.ItineraryEvent, error) {
	event = applyEventDefaults(event)
	if err := validateEvent(event); err != nil {
		return domain.ItineraryEvent{}, err
	}
	result, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.ItineraryEvent{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	return result, nil
}

// List returns events in schedule order (start_time ascending), optionally
// restricted to the half-open window rng.
// Always returns a non-nil slice so callers can safely range over it.
func (s *EventService) List(ctx context.Context, rng *domain.EventRange) ([]domain.ItineraryEvent, error) {
	events, err := s.repo.List(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("service.EventService.List: %w", err)
	}
	if events == nil {
		return []domain.ItineraryEvent{}, nil
	}
	return events, nil
}

// Update replaces every mutable field of an existing event, refreshing
// updated_at. Returns domain.ErrNotFound if the id does not exist.
func (s *EventService) Update(ctx context.Context, event domain.ItineraryEvent) (domain.ItineraryEvent, error) {
	event = applyEventDefaults(event)
	if err := validateEvent(event); err != nil {
		return domain.ItineraryEvent{}, err
	}
	if _, err := s.repo.GetByID(ctx, event.ID); err != nil {
		return domain.ItineraryEvent{}, fmt.Errorf("service.EventService.Update: %w", err)
	}
	result, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.ItineraryEvent{}, fmt.Errorf("service.EventService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an event by ID and returns the number of remaining rows.
// Returns domain.ErrNotFound if the id does not exist.
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("service.EventService.Delete: %w", err)
	}
	remaining, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.EventService.Delete: %w", err)
	}
	return remaining, nil
}

// applyEventDefaults fills category and color when the client omits them.
func applyEventDefaults(e domain.ItineraryEvent) domain.ItineraryEvent {
	if e.Category == "" {
		e.Category = domain.DefaultEventCategory
	}
	if e.Color == "" {
		e.Color = domain.DefaultEventColor
	}
	return e
}

// validateEvent enforces the schedule invariant: an event must end after it starts.
func validateEvent(e domain.ItineraryEvent) error {
	if !e.StartTime.Before(e.EndTime) {
		return fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/ahalloran/fairhaven-week/internal/catalog"
	"github.com/ahalloran/fairhaven-week/internal/repo"
)

// BrowseService assembles the things-to-do view: the fixed activity catalog
// with every family-submitted suggestion merged into its category section.
type BrowseService struct {
	suggestions repo.SuggestionRepo
}

// NewBrowseService constructs a BrowseService backed by the provided repo.
func NewBrowseService(suggestions repo.SuggestionRepo) *BrowseService {
	return &BrowseService{suggestions: suggestions}
}

// Groups returns the catalog sections with current suggestions merged in.
// Suggestions are fetched newest-first, so merged entries appear newest-first
// within their section. Categories with no catalog section come last, in
// first-submission order.
func (s *BrowseService) Groups(ctx context.Context) ([]catalog.Group, error) {
	suggestions, err := s.suggestions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.BrowseService.Groups: %w", err)
	}
	return catalog.Merge(suggestions), nil
}

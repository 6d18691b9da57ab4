package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahalloran/fairhaven-week/internal/catalog"
	"github.com/ahalloran/fairhaven-week/internal/domain"
	"github.com/ahalloran/fairhaven-week/internal/service"
)

func TestBrowseService_Groups_MergesSuggestions(t *testing.T) {
	suggestion := validSuggestion()
	suggestion.ID = uuid.New()

	svc := service.NewBrowseService(&mockSuggestionRepo{
		list: func(_ context.Context) ([]domain.ActivitySuggestion, error) {
			return []domain.ActivitySuggestion{suggestion}, nil
		},
	})

	groups, err := svc.Groups(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, groups)

	var outdoors *catalog.Group
	for i := range groups {
		if groups[i].Category == "Outdoors & Nature" {
			outdoors = &groups[i]
			break
		}
	}
	require.NotNil(t, outdoors, "expected the Outdoors & Nature section")

	var merged *catalog.Activity
	for i := range outdoors.Activities {
		if outdoors.Activities[i].Name == suggestion.ActivityName {
			merged = &outdoors.Activities[i]
			break
		}
	}
	require.NotNil(t, merged, "expected the suggestion merged into its section")
	assert.True(t, merged.UserSubmitted)
	assert.Equal(t, suggestion.Name, merged.SubmittedBy)
}

func TestBrowseService_Groups_RepoError(t *testing.T) {
	svc := service.NewBrowseService(&mockSuggestionRepo{
		list: func(_ context.Context) ([]domain.ActivitySuggestion, error) {
			return nil, errors.New("connection refused")
		},
	})

	_, err := svc.Groups(context.Background())

	require.Error(t, err)
}

func TestBrowseService_Groups_NoSuggestionsReturnsSeed(t *testing.T) {
	svc := service.NewBrowseService(&mockSuggestionRepo{
		list: func(_ context.Context) ([]domain.ActivitySuggestion, error) {
			return []domain.ActivitySuggestion{}, nil
		},
	})

	groups, err := svc.Groups(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog.Seed(), groups)
}

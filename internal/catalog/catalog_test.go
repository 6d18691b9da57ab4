package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahalloran/fairhaven-week/internal/catalog"
	"github.com/ahalloran/fairhaven-week/internal/domain"
)

func suggestion(category, activityName string) domain.ActivitySuggestion {
	return domain.ActivitySuggestion{
		ID:           uuid.New(),
		Name:         "Uncle Pete",
		ActivityName: activityName,
		Description:  "Worth a look.",
		Category:     category,
	}
}

func findGroup(t *testing.T, groups []catalog.Group, category string) catalog.Group {
	t.Helper()
	for _, g := range groups {
		if g.Category == category {
			return g
		}
	}
	t.Fatalf("group %q not found", category)
	return catalog.Group{}
}

func TestMerge_NoSuggestions(t *testing.T) {
	groups := catalog.Merge(nil)

	assert.Equal(t, catalog.Seed(), groups)
}

func TestMerge_AppendsToMatchingGroup(t *testing.T) {
	s := suggestion("Food & Drink", "Turk's Seafood")

	groups := catalog.Merge([]domain.ActivitySuggestion{s})

	food := findGroup(t, groups, "Food & Drink")
	seedCount := len(findGroup(t, catalog.Seed(), "Food & Drink").Activities)
	require.Len(t, food.Activities, seedCount+1)

	merged := food.Activities[len(food.Activities)-1]
	assert.Equal(t, "Turk's Seafood", merged.Name)
	assert.Equal(t, "Uncle Pete", merged.SubmittedBy)
	assert.True(t, merged.UserSubmitted)
	assert.Equal(t, s.ID.String(), merged.ID)
}

// A category with no seed section gets its own synthesized group, appended
// after the seed sections.
func TestMerge_SynthesizesGroupForUnmatchedCategory(t *testing.T) {
	s := suggestion("Shopping", "Euro Ship Store")

	groups := catalog.Merge([]domain.ActivitySuggestion{s})

	seedLen := len(catalog.Seed())
	require.Len(t, groups, seedLen+1)
	extra := groups[seedLen]
	assert.Equal(t, "Shopping", extra.Category)
	assert.Equal(t, "🛍️", extra.Icon)
	require.Len(t, extra.Activities, 1)
	assert.Equal(t, "Euro Ship Store", extra.Activities[0].Name)
}

// Matching is exact and case-sensitive. A casing mismatch lands in its own
// synthesized singleton group rather than the seed section.
func TestMerge_CaseMismatchMakesNewGroup(t *testing.T) {
	s := suggestion("food & drink", "Mac's Soda Bar")

	groups := catalog.Merge([]domain.ActivitySuggestion{s})

	seedLen := len(catalog.Seed())
	require.Len(t, groups, seedLen+1)
	assert.Equal(t, "food & drink", groups[seedLen].Category)
	assert.Equal(t, "✨", groups[seedLen].Icon, "unknown casing falls back to the generic icon")

	food := findGroup(t, groups, "Food & Drink")
	seedCount := len(findGroup(t, catalog.Seed(), "Food & Drink").Activities)
	assert.Len(t, food.Activities, seedCount, "seed section must be untouched")
}

// Synthesized groups keep first-submission order, and suggestions keep their
// arrival order within each group.
func TestMerge_ExtraGroupOrder(t *testing.T) {
	input := []domain.ActivitySuggestion{
		suggestion("Shopping", "Euro Ship Store"),
		suggestion("Entertainment", "Zeiterion Theatre"),
		suggestion("Shopping", "Alden Road Antiques"),
	}

	groups := catalog.Merge(input)

	seedLen := len(catalog.Seed())
	require.Len(t, groups, seedLen+2)
	assert.Equal(t, "Shopping", groups[seedLen].Category)
	assert.Equal(t, "Entertainment", groups[seedLen+1].Category)

	shopping := groups[seedLen]
	require.Len(t, shopping.Activities, 2)
	assert.Equal(t, "Euro Ship Store", shopping.Activities[0].Name)
	assert.Equal(t, "Alden Road Antiques", shopping.Activities[1].Name)
}

func TestMerge_DoesNotMutateSeed(t *testing.T) {
	before := catalog.Seed()

	_ = catalog.Merge([]domain.ActivitySuggestion{
		suggestion("Outdoors & Nature", "Little Bay Kayaking"),
	})

	assert.Equal(t, before, catalog.Seed())
}

func TestIconFor(t *testing.T) {
	assert.Equal(t, "🍽️", catalog.IconFor("Food & Drink"))
	assert.Equal(t, "⛵", catalog.IconFor("Day Trips"))
	assert.Equal(t, "✨", catalog.IconFor("Mystery Tours"))
}

func TestTravelMethodIcon(t *testing.T) {
	assert.Equal(t, "✈️", catalog.TravelMethodIcon("Flying"))
	assert.Equal(t, "🚗", catalog.TravelMethodIcon("Driving"))
	assert.Equal(t, "🧳", catalog.TravelMethodIcon("Teleporting"))
}

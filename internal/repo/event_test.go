package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahalloran/fairhaven-week/internal/domain"
	"github.com/ahalloran/fairhaven-week/internal/repo"
)

func eventFixture() domain.ItineraryEvent {
	return domain.ItineraryEvent{
		Title:       "Whaling Museum visit",
		Description: "Meet at the entrance at ten.",
		StartTime:   time.Date(2026, 7, 13, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 7, 13, 12, 30, 0, 0, time.UTC),
		Location:    "New Bedford, MA",
		URL:         "https://www.whalingmuseum.org",
		Category:    "museum",
		Color:       "#7c3aed",
		CreatedBy:   "Megan",
	}
}

func TestEventRepo_Create(t *testing.T) {
	r := repo.NewEventRepo(testTx(t))
	ctx := context.Background()

	input := eventFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, input.Title, got.Title)
	assert.True(t, got.StartTime.Equal(input.StartTime), "StartTime mismatch")
	assert.True(t, got.EndTime.Equal(input.EndTime), "EndTime mismatch")
	assert.Equal(t, input.Category, got.Category)
	assert.Equal(t, input.Color, got.Color)
	assert.Equal(t, input.CreatedBy, got.CreatedBy)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

// The table enforces start_time < end_time. Rows that slip past service
// validation still fail the CHECK constraint.
func TestEventRepo_Create_InvertedRangeRejected(t *testing.T) {
	r := repo.NewEventRepo(testTx(t))
	ctx := context.Background()

	input := eventFixture()
	input.StartTime, input.EndTime = input.EndTime, input.StartTime

	_, err := r.Create(ctx, input)

	require.Error(t, err)
}

func TestEventRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewEventRepo(testTx(t))

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepo_List_ScheduleOrder(t *testing.T) {
	r := repo.NewEventRepo(testTx(t))
	ctx := context.Background()

	later := eventFixture()
	later.Title = "Evening bonfire"
	later.StartTime = time.Date(2026, 7, 13, 19, 0, 0, 0, time.UTC)
	later.EndTime = time.Date(2026, 7, 13, 21, 0, 0, 0, time.UTC)

	earlier := eventFixture()
	earlier.Title = "Morning beach walk"
	earlier.StartTime = time.Date(2026, 7, 13, 7, 0, 0, 0, time.UTC)
	earlier.EndTime = time.Date(2026, 7, 13, 8, 0, 0, 0, time.UTC)

	// Insert out of order; List must sort by start_time.
	_, err := r.Create(ctx, later)
	require.NoError(t, err)
	_, err = r.Create(ctx, earlier)
	require.NoError(t, err)

	got, err := r.List(ctx, nil)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Morning beach walk", got[0].Title)
	assert.Equal(t, "Evening bonfire", got[1].Title)
}

// The window is half-open: an event starting exactly at the upper bound is
// excluded, one starting exactly at the lower bound is included.
func TestEventRepo_List_HalfOpenRange(t *testing.T) {
	r := repo.NewEventRepo(testTx(t))
	ctx := context.Background()

	atLower := eventFixture()
	atLower.Title = "At lower bound"
	atLower.StartTime = time.Date(2026, 7, 11, 0, 0, 0, 0, time.UTC)
	atLower.EndTime = time.Date(2026, 7, 11, 1, 0, 0, 0, time.UTC)

	inside := eventFixture()
	inside.Title = "Inside window"

	atUpper := eventFixture()
	atUpper.Title = "At upper bound"
	atUpper.StartTime = time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC)
	atUpper.EndTime = time.Date(2026, 7, 18, 1, 0, 0, 0, time.UTC)

	for _, e := range []domain.ItineraryEvent{atLower, inside, atUpper} {
		_, err := r.Create(ctx, e)
		require.NoError(t, err)
	}

	from := time.Date(2026, 7, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC)
	got, err := r.List(ctx, domain.NewEventRange(&from, &to))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "At lower bound", got[0].Title)
	assert.Equal(t, "Inside window", got[1].Title)
}

func TestEventRepo_Update_FullReplacement(t *testing.T) {
	r := repo.NewEventRepo(testTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, eventFixture())
	require.NoError(t, err)

	updated := created
	updated.Title = "Whaling Museum and waterfront walk"
	updated.EndTime = created.EndTime.Add(time.Hour)
	updated.Description = ""

	got, err := r.Update(ctx, updated)

	require.NoError(t, err)
	assert.Equal(t, updated.Title, got.Title)
	assert.True(t, got.EndTime.Equal(updated.EndTime))
	assert.Empty(t, got.Description)
	assert.Equal(t, created.CreatedAt, got.CreatedAt, "created_at must not change on update")
}

func TestEventRepo_Update_NotFound(t *testing.T) {
	r := repo.NewEventRepo(testTx(t))

	input := eventFixture()
	input.ID = uuid.New()

	_, err := r.Update(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepo_Delete(t *testing.T) {
	r := repo.NewEventRepo(testTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, eventFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewEventRepo(testTx(t))

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepo_Count(t *testing.T) {
	r := repo.NewEventRepo(testTx(t))
	ctx := context.Background()

	before, err := r.Count(ctx)
	require.NoError(t, err)

	_, err = r.Create(ctx, eventFixture())
	require.NoError(t, err)

	after, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahalloran/fairhaven-week/internal/domain"
	"github.com/ahalloran/fairhaven-week/internal/handler"
)

// mockSuggestionServicer is a test double for handler.SuggestionServicer.
// Set only the method fields the test needs.
type mockSuggestionServicer struct {
	create func(ctx context.Context, s domain.ActivitySuggestion) (domain.ActivitySuggestion, error)
	list   func(ctx context.Context) ([]domain.ActivitySuggestion, error)
	update func(ctx context.Context, s domain.ActivitySuggestion) (domain.ActivitySuggestion, error)
	delete func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockSuggestionServicer) Create(ctx context.Context, s domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
	return m.create(ctx, s)
}
func (m *mockSuggestionServicer) List(ctx context.Context) ([]domain.ActivitySuggestion, error) {
	return m.list(ctx)
}
func (m *mockSuggestionServicer) Update(ctx context.Context, s domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
	return m.update(ctx, s)
}
func (m *mockSuggestionServicer) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.delete(ctx, id)
}

// compile-time check: mockSuggestionServicer must satisfy handler.SuggestionServicer.
var _ handler.SuggestionServicer = (*mockSuggestionServicer)(nil)

// ---- shared helpers --------------------------------------------------------

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func formBody(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Fields  []string `json:"fields"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func newSuggestionHandler(svc handler.SuggestionServicer) http.Handler {
	return handler.NewServer(svc, nil, nil, nil).Routes()
}

func suggestionFixture() domain.ActivitySuggestion {
	return domain.ActivitySuggestion{
		ID:           uuid.New(),
		Name:         "Aunt Carol",
		ActivityName: "Seastreak Whale Watch",
		Description:  "Afternoon whale watching cruise out of New Bedford.",
		Location:     "New Bedford, MA",
		Category:     "Outdoors & Nature",
	}
}

func suggestionPayload(fixture domain.ActivitySuggestion) map[string]any {
	return map[string]any{
		"name":          fixture.Name,
		"activity_name": fixture.ActivityName,
		"description":   fixture.Description,
		"location":      fixture.Location,
		"category":      fixture.Category,
	}
}

// ---- POST /api/activity-suggestions ----------------------------------------

func TestCreateSuggestion_201(t *testing.T) {
	fixture := suggestionFixture()
	svc := &mockSuggestionServicer{
		create: func(_ context.Context, _ domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/activity-suggestions", jsonBody(t, suggestionPayload(fixture)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		OK      bool   `json:"ok"`
		ID      string `json:"id"`
		Storage string `json:"storage"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, fixture.ID.String(), resp.ID)
	assert.Equal(t, "database", resp.Storage)
}

func TestCreateSuggestion_201_FormEncoded(t *testing.T) {
	fixture := suggestionFixture()
	var received domain.ActivitySuggestion
	svc := &mockSuggestionServicer{
		create: func(_ context.Context, s domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
			received = s
			return fixture, nil
		},
	}

	form := url.Values{}
	form.Set("name", fixture.Name)
	form.Set("activity_name", fixture.ActivityName)
	form.Set("description", fixture.Description)
	form.Set("category", fixture.Category)

	req := httptest.NewRequest(http.MethodPost, "/api/activity-suggestions", formBody(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, fixture.ActivityName, received.ActivityName)
}

func TestCreateSuggestion_400_MissingFields(t *testing.T) {
	svc := &mockSuggestionServicer{}

	req := httptest.NewRequest(http.MethodPost, "/api/activity-suggestions",
		jsonBody(t, map[string]any{"location": "Fairhaven"}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.ElementsMatch(t, []string{"name", "activity_name", "description", "category"}, body.Error.Fields)
}

// Whitespace-only values are trimmed before the required check, so they fail
// the same way missing values do.
func TestCreateSuggestion_400_WhitespaceOnly(t *testing.T) {
	fixture := suggestionFixture()
	payload := suggestionPayload(fixture)
	payload["description"] = "   "

	req := httptest.NewRequest(http.MethodPost, "/api/activity-suggestions", jsonBody(t, payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSuggestionHandler(&mockSuggestionServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, []string{"description"}, body.Error.Fields)
}

func TestCreateSuggestion_400_UnknownCategory(t *testing.T) {
	svc := &mockSuggestionServicer{
		create: func(_ context.Context, _ domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
			return domain.ActivitySuggestion{}, &domain.FieldErrors{Fields: []string{"category"}}
		},
	}

	payload := suggestionPayload(suggestionFixture())
	payload["category"] = "Nightlife"

	req := httptest.NewRequest(http.MethodPost, "/api/activity-suggestions", jsonBody(t, payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.Equal(t, []string{"category"}, body.Error.Fields)
}

func TestCreateSuggestion_500_StorageError(t *testing.T) {
	svc := &mockSuggestionServicer{
		create: func(_ context.Context, _ domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
			return domain.ActivitySuggestion{}, errors.New("dial tcp: connection refused")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/activity-suggestions",
		jsonBody(t, suggestionPayload(suggestionFixture())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "storage_error", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "dial tcp", "driver details must not leak")
}

func TestCreateSuggestion_400_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/activity-suggestions",
		strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSuggestionHandler(&mockSuggestionServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- GET /api/activity-suggestions -----------------------------------------

func TestListSuggestions_200(t *testing.T) {
	fixture := suggestionFixture()
	svc := &mockSuggestionServicer{
		list: func(_ context.Context) ([]domain.ActivitySuggestion, error) {
			return []domain.ActivitySuggestion{fixture}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/activity-suggestions", nil)
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items   []domain.ActivitySuggestion `json:"items"`
		Count   int                         `json:"count"`
		Storage string                      `json:"storage"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "database", resp.Storage)
	assert.Equal(t, fixture.ActivityName, resp.Items[0].ActivityName)
}

// Reads degrade instead of failing: the page still renders with an empty
// collection, and the response names the storage tier that answered.
func TestListSuggestions_200_Degraded(t *testing.T) {
	svc := &mockSuggestionServicer{
		list: func(_ context.Context) ([]domain.ActivitySuggestion, error) {
			return nil, errors.New("connection refused")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/activity-suggestions", nil)
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items   []any  `json:"items"`
		Count   int    `json:"count"`
		Storage string `json:"storage"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.Count)
	assert.Equal(t, "none", resp.Storage)
	assert.NotEmpty(t, resp.Error)
}

// ---- PUT /api/activity-suggestions -----------------------------------------

func TestUpdateSuggestion_200(t *testing.T) {
	fixture := suggestionFixture()
	var received domain.ActivitySuggestion
	svc := &mockSuggestionServicer{
		update: func(_ context.Context, s domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
			received = s
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/activity-suggestions?id="+fixture.ID.String(),
		jsonBody(t, suggestionPayload(fixture)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fixture.ID, received.ID)

	var resp struct {
		OK   bool                      `json:"ok"`
		Item domain.ActivitySuggestion `json:"item"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, fixture.ID, resp.Item.ID)
}

func TestUpdateSuggestion_400_MissingID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/activity-suggestions",
		jsonBody(t, suggestionPayload(suggestionFixture())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSuggestionHandler(&mockSuggestionServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Contains(t, body.Error.Message, "id")
}

func TestUpdateSuggestion_404(t *testing.T) {
	svc := &mockSuggestionServicer{
		update: func(_ context.Context, _ domain.ActivitySuggestion) (domain.ActivitySuggestion, error) {
			return domain.ActivitySuggestion{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/activity-suggestions?id="+uuid.NewString(),
		jsonBody(t, suggestionPayload(suggestionFixture())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "not_found", body.Error.Code)
}

// ---- DELETE /api/activity-suggestions --------------------------------------

func TestDeleteSuggestion_200(t *testing.T) {
	id := uuid.New()
	svc := &mockSuggestionServicer{
		delete: func(_ context.Context, got uuid.UUID) (int64, error) {
			assert.Equal(t, id, got)
			return 3, nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/activity-suggestions?id="+id.String(), nil)
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK        bool  `json:"ok"`
		Remaining int64 `json:"remaining"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.EqualValues(t, 3, resp.Remaining)
}

func TestDeleteSuggestion_400_InvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/activity-suggestions?id=not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newSuggestionHandler(&mockSuggestionServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSuggestion_404(t *testing.T) {
	svc := &mockSuggestionServicer{
		delete: func(_ context.Context, _ uuid.UUID) (int64, error) {
			return 0, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/activity-suggestions?id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newSuggestionHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

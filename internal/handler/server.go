// Package handler wires HTTP routes to services and owns the request and
// response shapes of the API. Handlers decode and normalize input, run the
// required-field checks, and translate service errors into the wire format.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ahalloran/fairhaven-week/internal/catalog"
	"github.com/ahalloran/fairhaven-week/internal/domain"
	"github.com/ahalloran/fairhaven-week/spec"
)

// SuggestionServicer is the suggestion business logic the handlers depend on.
type SuggestionServicer interface {
	Create(ctx context.Context, suggestion domain.ActivitySuggestion) (domain.ActivitySuggestion, error)
	List(ctx context.Context) ([]domain.ActivitySuggestion, error)
	Update(ctx context.Context, suggestion domain.ActivitySuggestion) (domain.ActivitySuggestion, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// TravelNoteServicer is the travel-note business logic the handlers depend on.
type TravelNoteServicer interface {
	Create(ctx context.Context, note domain.TravelNote) (domain.TravelNote, error)
	List(ctx context.Context) ([]domain.TravelNote, error)
	Update(ctx context.Context, note domain.TravelNote) (domain.TravelNote, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// EventServicer is the itinerary-event business logic the handlers depend on.
type EventServicer interface {
	Create(ctx context.Context, event domain.ItineraryEvent) (domain.ItineraryEvent, error)
	List(ctx context.Context, rng *domain.EventRange) ([]domain.ItineraryEvent, error)
	Update(ctx context.Context, event domain.ItineraryEvent) (domain.ItineraryEvent, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// BrowseServicer assembles the merged things-to-do view.
type BrowseServicer interface {
	Groups(ctx context.Context) ([]catalog.Group, error)
}

// Server holds the services behind the HTTP API.
type Server struct {
	suggestions SuggestionServicer
	travelNotes TravelNoteServicer
	events      EventServicer
	browse      BrowseServicer
}

// NewServer constructs a Server from its service dependencies.
func NewServer(suggestions SuggestionServicer, travelNotes TravelNoteServicer, events EventServicer, browse BrowseServicer) *Server {
	return &Server{
		suggestions: suggestions,
		travelNotes: travelNotes,
		events:      events,
		browse:      browse,
	}
}

// Routes builds the API router. Collection endpoints follow one pattern:
// POST and GET on the collection path, PUT and DELETE addressed by the id
// query parameter.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", handleOpenAPI)

	r.Route("/api/activity-suggestions", func(r chi.Router) {
		r.Post("/", s.handleSuggestionCreate)
		r.Get("/", s.handleSuggestionList)
		r.Put("/", s.handleSuggestionUpdate)
		r.Delete("/", s.handleSuggestionDelete)
	})

	r.Route("/api/travel-notes", func(r chi.Router) {
		r.Post("/", s.handleTravelNoteCreate)
		r.Get("/", s.handleTravelNoteList)
		r.Put("/", s.handleTravelNoteUpdate)
		r.Delete("/", s.handleTravelNoteDelete)
	})

	r.Route("/api/itinerary-events", func(r chi.Router) {
		r.Post("/", s.handleEventCreate)
		r.Get("/", s.handleEventList)
		r.Put("/", s.handleEventUpdate)
		r.Delete("/", s.handleEventDelete)
	})

	r.Get("/api/activities", s.handleBrowse)

	return r
}

func handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ahalloran/fairhaven-week/internal/domain"
)

func (s *Server) handleEventCreate(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	req.trim()
	if err := checkRequired(req); err != nil {
		respondError(w, r, err)
		return
	}
	event, err := req.domain()
	if err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.events.Create(r.Context(), event)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{OK: true, ID: created.ID.String(), Storage: storageDatabase})
}

func (s *Server) handleEventList(w http.ResponseWriter, r *http.Request) {
	rng, err := rangeFromRequest(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	events, err := s.events.List(r.Context(), rng)
	if err != nil {
		respondDegradedList(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: events, Count: len(events), Storage: storageDatabase})
}

func (s *Server) handleEventUpdate(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	req.trim()

	id, err := eventID(r, req)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	if err := checkRequired(req); err != nil {
		respondError(w, r, err)
		return
	}
	event, err := req.domain()
	if err != nil {
		respondError(w, r, err)
		return
	}

	event.ID = id
	updated, err := s.events.Update(r.Context(), event)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updatedResponse{OK: true, Item: updated})
}

func (s *Server) handleEventDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	remaining, err := s.events.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedResponse{OK: true, Remaining: remaining})
}

// eventID resolves the event id for an update from the id query parameter,
// falling back to the id in the request body. Calendar clients send it in
// the body; form clients put it in the URL.
func eventID(r *http.Request, req eventRequest) (uuid.UUID, error) {
	if strings.TrimSpace(r.URL.Query().Get("id")) != "" {
		return idFromRequest(r)
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return uuid.Nil, err
		}
		return id, nil
	}
	return idFromRequest(r)
}

// rangeFromRequest parses the optional startDate and endDate query
// parameters into a half-open window. Both must be present for the filter to
// apply; either alone is ignored, matching an unfiltered listing.
func rangeFromRequest(r *http.Request) (*domain.EventRange, error) {
	q := r.URL.Query()
	from, err := rangeBound(q.Get("startDate"))
	if err != nil {
		return nil, err
	}
	to, err := rangeBound(q.Get("endDate"))
	if err != nil {
		return nil, err
	}
	return domain.NewEventRange(from, to), nil
}

func rangeBound(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := parseDate(raw); err == nil {
		return &t, nil
	}
	t, err := parseEventTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

package handler

import "net/http"

func (s *Server) handleSuggestionCreate(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	req.trim()
	if err := checkRequired(req); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.suggestions.Create(r.Context(), req.domain())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{OK: true, ID: created.ID.String(), Storage: storageDatabase})
}

func (s *Server) handleSuggestionList(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.suggestions.List(r.Context())
	if err != nil {
		respondDegradedList(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: suggestions, Count: len(suggestions), Storage: storageDatabase})
}

func (s *Server) handleSuggestionUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	var req suggestionRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	req.trim()
	if err := checkRequired(req); err != nil {
		respondError(w, r, err)
		return
	}

	suggestion := req.domain()
	suggestion.ID = id
	updated, err := s.suggestions.Update(r.Context(), suggestion)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updatedResponse{OK: true, Item: updated})
}

func (s *Server) handleSuggestionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	remaining, err := s.suggestions.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedResponse{OK: true, Remaining: remaining})
}

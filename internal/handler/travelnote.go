package handler

import "net/http"

func (s *Server) handleTravelNoteCreate(w http.ResponseWriter, r *http.Request) {
	var req travelNoteRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	req.trim()
	if err := checkRequired(req); err != nil {
		respondError(w, r, err)
		return
	}
	note, err := req.domain()
	if err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.travelNotes.Create(r.Context(), note)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{OK: true, ID: created.ID.String(), Storage: storageDatabase})
}

func (s *Server) handleTravelNoteList(w http.ResponseWriter, r *http.Request) {
	notes, err := s.travelNotes.List(r.Context())
	if err != nil {
		respondDegradedList(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: notes, Count: len(notes), Storage: storageDatabase})
}

func (s *Server) handleTravelNoteUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	var req travelNoteRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	req.trim()
	if err := checkRequired(req); err != nil {
		respondError(w, r, err)
		return
	}
	note, err := req.domain()
	if err != nil {
		respondError(w, r, err)
		return
	}

	note.ID = id
	updated, err := s.travelNotes.Update(r.Context(), note)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updatedResponse{OK: true, Item: updated})
}

func (s *Server) handleTravelNoteDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	remaining, err := s.travelNotes.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedResponse{OK: true, Remaining: remaining})
}

package handler

import "net/http"

// handleHealth reports process liveness. It deliberately does not touch the
// database; storage health shows up in the storage field of read responses.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

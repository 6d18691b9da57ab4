package handler

import (
	"log/slog"
	"net/http"

	"github.com/ahalloran/fairhaven-week/internal/catalog"
)

// handleBrowse serves the merged things-to-do view: the seed catalog with
// every stored suggestion folded into its category section. When storage is
// down the seed catalog still renders, with the storage tier marking the
// suggestions as absent.
func (s *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	groups, err := s.browse.Groups(r.Context())
	if err != nil {
		slog.WarnContext(r.Context(), "handler: degraded browse", "error", err)
		writeJSON(w, http.StatusOK, browseResponse{
			Groups:  catalog.Seed(),
			Storage: storageNone,
			Error:   "storage unavailable",
		})
		return
	}
	writeJSON(w, http.StatusOK, browseResponse{Groups: groups, Storage: storageDatabase})
}

type browseResponse struct {
	Groups  []catalog.Group `json:"groups"`
	Storage string          `json:"storage"`
	Error   string          `json:"error,omitempty"`
}

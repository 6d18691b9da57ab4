package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ahalloran/fairhaven-week/internal/domain"
)

// Storage tiers reported to the client. Every successful database round trip
// reports "database"; a read that could not reach storage reports "none".
const (
	storageDatabase = "database"
	storageNone     = "none"
)

// Error codes used in the wire format.
const (
	codeValidation = "validation_error"
	codeNotFound   = "not_found"
	codeStorage    = "storage_error"
)

type errorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type createdResponse struct {
	OK      bool   `json:"ok"`
	ID      string `json:"id"`
	Storage string `json:"storage"`
}

type listResponse struct {
	Items   any    `json:"items"`
	Count   int    `json:"count"`
	Storage string `json:"storage"`
	Error   string `json:"error,omitempty"`
}

type updatedResponse struct {
	OK   bool `json:"ok"`
	Item any  `json:"item"`
}

type deletedResponse struct {
	OK        bool  `json:"ok"`
	Remaining int64 `json:"remaining"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("handler: encode response", "error", err)
	}
}

// respondError maps service errors onto the API's error vocabulary. Field
// failures and domain rule violations are 400, missing rows 404, anything
// else is treated as a storage failure and reported as 500 without leaking
// driver details.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs *domain.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorDetail{
			Code:    codeValidation,
			Message: "missing or invalid fields",
			Fields:  fieldErrs.Fields,
		}})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorDetail{
			Code:    codeValidation,
			Message: validationMessage(err),
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errorDetail{
			Code:    codeNotFound,
			Message: "record not found",
		}})
	default:
		slog.ErrorContext(r.Context(), "handler: storage failure", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorDetail{
			Code:    codeStorage,
			Message: "storage unavailable",
		}})
	}
}

// respondBadRequest reports a malformed request body or parameter.
func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorDetail{
		Code:    codeValidation,
		Message: message,
	}})
}

// respondDegradedList reports an empty collection when storage is down. Reads
// stay 200 so the page still renders; the storage tier and error fields tell
// the client what happened.
func respondDegradedList(w http.ResponseWriter, r *http.Request, err error) {
	slog.WarnContext(r.Context(), "handler: degraded read", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusOK, listResponse{
		Items:   []any{},
		Count:   0,
		Storage: storageNone,
		Error:   "storage unavailable",
	})
}

// validationMessage extracts the human-readable part of a wrapped
// domain.ErrValidation, dropping the sentinel prefix.
func validationMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, domain.ErrValidation.Error()+": "); ok {
		return rest
	}
	return msg
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default values applied when an event is created without a category or color.
const (
	DefaultEventCategory = "general"
	DefaultEventColor    = "#0ea5e9"
)

// ItineraryEvent is a scheduled entry on the shared trip calendar.
// StartTime must be strictly before EndTime; this is the one invariant
// enforced at write time. Color is purely presentational.
type ItineraryEvent struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location,omitempty"`
	URL         string    `json:"url,omitempty"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

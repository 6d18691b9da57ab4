package domain

import "time"

// EventRange filters itinerary events to those whose start time falls in the
// half-open interval [From, To). A nil *EventRange means no filtering.
type EventRange struct {
	From time.Time
	To   time.Time
}

// NewEventRange builds an EventRange from optional query parameters.
// Both bounds must be supplied for the filter to apply; a lone bound is
// ignored and nil is returned, matching an unfiltered read.
func NewEventRange(from, to *time.Time) *EventRange {
	if from == nil || to == nil {
		return nil
	}
	return &EventRange{From: *from, To: *to}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// TravelNote records one family member's travel plans for the week.
// ArrivalDate and DepartureDate are calendar dates; arrival is expected to be
// on or before departure but this is informational and not enforced.
type TravelNote struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ArrivalDate   time.Time `json:"arrival_date"`
	DepartureDate time.Time `json:"departure_date"`
	TravelMethod  string    `json:"travel_method"`
	Accommodation string    `json:"accommodation"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TravelMethods is the closed set of transport modes the travel form offers.
var TravelMethods = []string{
	"Flying",
	"Driving",
	"Train",
	"Bus",
	"Other",
}

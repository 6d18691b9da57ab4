// Package domain contains the core data types for the Fairhaven Week application.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (repo, service, handler, catalog).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivitySuggestion is a family member's proposed activity for the week.
// Category is constrained to SuggestionCategories at submission time; the
// merge view groups suggestions under the catalog section with the same
// category name.
type ActivitySuggestion struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`          // submitter's display name
	ActivityName string    `json:"activity_name"` // title of the suggested activity
	Description  string    `json:"description"`
	Location     string    `json:"location,omitempty"`
	Website      string    `json:"website,omitempty"`
	Category     string    `json:"category"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SuggestionCategories is the closed set of categories the suggestion form
// offers. Submissions outside this set are rejected, so a typo can never
// silently create a new section on the things-to-do page.
var SuggestionCategories = []string{
	"Outdoors & Nature",
	"Museums & History",
	"Food & Drink",
	"Entertainment",
	"Shopping",
	"Day Trips",
	"Family-Friendly",
	"Other",
}

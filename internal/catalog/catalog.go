// Package catalog holds the fixed set of featured activities shown on the
// things-to-do page, and the merge transform that folds family-submitted
// suggestions into it. The catalog ships with the binary; only suggestions
// live in the database.
package catalog

import "github.com/ahalloran/fairhaven-week/internal/domain"

// Activity is the display shape shared by seed entries and submitted
// suggestions. Seed entries carry images and highlights; submissions carry
// the submitter attribution instead.
type Activity struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Location      string   `json:"location,omitempty"`
	Website       string   `json:"website,omitempty"`
	Image         string   `json:"image,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	UserSubmitted bool     `json:"is_user_submitted,omitempty"`
	SubmittedBy   string   `json:"submitted_by,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Category      string   `json:"category,omitempty"`
}

// Group is one titled section of the things-to-do page.
type Group struct {
	Category   string     `json:"category"`
	Icon       string     `json:"icon"`
	Activities []Activity `json:"activities"`
}

// icons maps category names to their section icon. Categories without an
// entry fall back to the generic sparkle.
var icons = map[string]string{
	"Outdoors & Nature":  "🌊",
	"Museums & History":  "🏛️",
	"Food & Drink":       "🍽️",
	"Entertainment":      "🎭",
	"Shopping":           "🛍️",
	"Day Trips":          "⛵",
	"Day Trips & Ferries": "⛵",
	"Family-Friendly":    "👨‍👩‍👧‍👦",
	"Other":              "✨",
}

const fallbackIcon = "✨"

// IconFor returns the section icon for a category, falling back to a generic
// icon for categories the lookup does not know.
func IconFor(category string) string {
	if icon, ok := icons[category]; ok {
		return icon
	}
	return fallbackIcon
}

// travelMethodIcons maps the travel form's transport modes to the icons the
// travel page renders next to each family's plans.
var travelMethodIcons = map[string]string{
	"Flying":  "✈️",
	"Driving": "🚗",
	"Train":   "🚆",
	"Bus":     "🚌",
	"Other":   "🧳",
}

// TravelMethodIcon returns the icon for a travel method. Unknown methods get
// the same icon as "Other".
func TravelMethodIcon(method string) string {
	if icon, ok := travelMethodIcons[method]; ok {
		return icon
	}
	return travelMethodIcons["Other"]
}

// Merge appends each suggestion to the seed group whose category name equals
// the suggestion's category exactly (case-sensitive), then synthesizes a new
// group for every remaining category, in first-seen submission order.
// Suggestions keep the order they arrive in, so a created_at-descending list
// stays newest-first within each group.
func Merge(suggestions []domain.ActivitySuggestion) []Group {
	groups := Seed()

	matched := make(map[string]bool, len(groups))
	byCategory := make(map[string][]Activity)
	var extraOrder []string

	for i := range groups {
		matched[groups[i].Category] = true
	}

	for _, s := range suggestions {
		a := fromSuggestion(s)
		if !matched[s.Category] && byCategory[s.Category] == nil {
			extraOrder = append(extraOrder, s.Category)
		}
		byCategory[s.Category] = append(byCategory[s.Category], a)
	}

	for i := range groups {
		groups[i].Activities = append(groups[i].Activities, byCategory[groups[i].Category]...)
	}

	for _, category := range extraOrder {
		groups = append(groups, Group{
			Category:   category,
			Icon:       IconFor(category),
			Activities: byCategory[category],
		})
	}

	return groups
}

// fromSuggestion maps a stored suggestion onto the display shape:
// activity_name becomes the display name and name becomes the attribution.
func fromSuggestion(s domain.ActivitySuggestion) Activity {
	return Activity{
		ID:            s.ID.String(),
		Name:          s.ActivityName,
		Description:   s.Description,
		Location:      s.Location,
		Website:       s.Website,
		UserSubmitted: true,
		SubmittedBy:   s.Name,
		Notes:         s.Notes,
		Category:      s.Category,
	}
}

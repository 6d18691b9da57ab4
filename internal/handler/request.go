package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ahalloran/fairhaven-week/internal/domain"
)

// validate checks required fields on request bodies. Tag names come from the
// json tags so failed-field lists use the wire names the client sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formDecodable is implemented by request bodies that also accept
// form-encoded submissions from plain HTML forms.
type formDecodable interface {
	fromForm(url.Values)
}

// decodeBody fills dst from the request body. JSON bodies are decoded by
// content type; everything else is treated as a form submission, which is
// what browsers send when JavaScript is unavailable.
func decodeBody(r *http.Request, dst formDecodable) error {
	ct := r.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(ct); err == nil && mt == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("invalid JSON body: %w", err)
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("invalid form body: %w", err)
	}
	dst.fromForm(r.PostForm)
	return nil
}

// checkRequired runs struct validation on a request body and converts the
// failures into the field list the wire format reports.
func checkRequired(body any) error {
	err := validate.Struct(body)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return &domain.FieldErrors{Fields: fields}
	}
	return err
}

// idFromRequest reads the id query parameter required by PUT and DELETE.
func idFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("id"))
	if raw == "" {
		return uuid.Nil, errors.New("missing id parameter")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// eventTimeLayouts are the timestamp formats accepted for event times. The
// first is what datetime-local inputs produce; the rest cover API clients.
var eventTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// parseEventTime parses an event timestamp, trying each accepted layout.
func parseEventTime(raw string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

// parseDate parses a calendar date in the form's YYYY-MM-DD format.
func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return t, nil
}

type suggestionRequest struct {
	Name         string `json:"name" validate:"required"`
	ActivityName string `json:"activity_name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Location     string `json:"location"`
	Website      string `json:"website"`
	Category     string `json:"category" validate:"required"`
	Notes        string `json:"notes"`
}

func (q *suggestionRequest) fromForm(v url.Values) {
	q.Name = v.Get("name")
	q.ActivityName = v.Get("activity_name")
	q.Description = v.Get("description")
	q.Location = v.Get("location")
	q.Website = v.Get("website")
	q.Category = v.Get("category")
	q.Notes = v.Get("notes")
}

func (q *suggestionRequest) trim() {
	q.Name = strings.TrimSpace(q.Name)
	q.ActivityName = strings.TrimSpace(q.ActivityName)
	q.Description = strings.TrimSpace(q.Description)
	q.Location = strings.TrimSpace(q.Location)
	q.Website = strings.TrimSpace(q.Website)
	q.Category = strings.TrimSpace(q.Category)
	q.Notes = strings.TrimSpace(q.Notes)
}

func (q *suggestionRequest) domain() domain.ActivitySuggestion {
	return domain.ActivitySuggestion{
		Name:         q.Name,
		ActivityName: q.ActivityName,
		Description:  q.Description,
		Location:     q.Location,
		Website:      q.Website,
		Category:     q.Category,
		Notes:        q.Notes,
	}
}

type travelNoteRequest struct {
	Name          string `json:"name" validate:"required"`
	ArrivalDate   string `json:"arrival_date" validate:"required"`
	DepartureDate string `json:"departure_date" validate:"required"`
	TravelMethod  string `json:"travel_method" validate:"required"`
	Accommodation string `json:"accommodation" validate:"required"`
	Notes         string `json:"notes"`
}

func (q *travelNoteRequest) fromForm(v url.Values) {
	q.Name = v.Get("name")
	q.ArrivalDate = v.Get("arrival_date")
	q.DepartureDate = v.Get("departure_date")
	q.TravelMethod = v.Get("travel_method")
	q.Accommodation = v.Get("accommodation")
	q.Notes = v.Get("notes")
}

func (q *travelNoteRequest) trim() {
	q.Name = strings.TrimSpace(q.Name)
	q.ArrivalDate = strings.TrimSpace(q.ArrivalDate)
	q.DepartureDate = strings.TrimSpace(q.DepartureDate)
	q.TravelMethod = strings.TrimSpace(q.TravelMethod)
	q.Accommodation = strings.TrimSpace(q.Accommodation)
	q.Notes = strings.TrimSpace(q.Notes)
}

// domain converts the request to a TravelNote, parsing the date fields.
// Unparseable dates are reported with the same field list a missing field
// would produce.
func (q *travelNoteRequest) domain() (domain.TravelNote, error) {
	var bad []string
	arrival, err := parseDate(q.ArrivalDate)
	if err != nil {
		bad = append(bad, "arrival_date")
	}
	departure, err := parseDate(q.DepartureDate)
	if err != nil {
		bad = append(bad, "departure_date")
	}
	if len(bad) > 0 {
		return domain.TravelNote{}, &domain.FieldErrors{Fields: bad}
	}
	return domain.TravelNote{
		Name:          q.Name,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		TravelMethod:  q.TravelMethod,
		Accommodation: q.Accommodation,
		Notes:         q.Notes,
	}, nil
}

type eventRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	CreatedBy   string `json:"created_by"`
}

func (q *eventRequest) fromForm(v url.Values) {
	q.ID = v.Get("id")
	q.Title = v.Get("title")
	q.Description = v.Get("description")
	q.StartTime = v.Get("start_time")
	q.EndTime = v.Get("end_time")
	q.Location = v.Get("location")
	q.URL = v.Get("url")
	q.Category = v.Get("category")
	q.Color = v.Get("color")
	q.CreatedBy = v.Get("created_by")
}

func (q *eventRequest) trim() {
	q.ID = strings.TrimSpace(q.ID)
	q.Title = strings.TrimSpace(q.Title)
	q.Description = strings.TrimSpace(q.Description)
	q.StartTime = strings.TrimSpace(q.StartTime)
	q.EndTime = strings.TrimSpace(q.EndTime)
	q.Location = strings.TrimSpace(q.Location)
	q.URL = strings.TrimSpace(q.URL)
	q.Category = strings.TrimSpace(q.Category)
	q.Color = strings.TrimSpace(q.Color)
	q.CreatedBy = strings.TrimSpace(q.CreatedBy)
}

// domain converts the request to an ItineraryEvent, parsing both timestamps.
func (q *eventRequest) domain() (domain.ItineraryEvent, error) {
	var bad []string
	start, err := parseEventTime(q.StartTime)
	if err != nil {
		bad = append(bad, "start_time")
	}
	end, err := parseEventTime(q.EndTime)
	if err != nil {
		bad = append(bad, "end_time")
	}
	if len(bad) > 0 {
		return domain.ItineraryEvent{}, &domain.FieldErrors{Fields: bad}
	}
	return domain.ItineraryEvent{
		Title:       q.Title,
		Description: q.Description,
		StartTime:   start,
		EndTime:     end,
		Location:    q.Location,
		URL:         q.URL,
		Category:    q.Category,
		Color:       q.Color,
		CreatedBy:   q.CreatedBy,
	}, nil
}

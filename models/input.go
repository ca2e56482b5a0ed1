package models

import (
	"strconv"
	"strings"
	"time"
)

// EventInput is the wire shape of an event create/update request. Price and
// categoryId arrive loosely typed (number or string, front-end dependent),
// so coercion happens here in one place rather than inline in handlers.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate"`
	Location    string `json:"location"`
	Price       any    `json:"price"`
	CategoryID  any    `json:"categoryId"`
	ImageURL    string `json:"imageUrl"`
}

// EventParams is the fully validated, typed command handed to the
// repository. Nothing reaches the store without passing through here.
type EventParams struct {
	Title       string
	Description string
	EventDate   time.Time
	Location    string
	Price       float64
	CategoryID  *int64
	ImageURL    *string
}

// eventDateLayouts are the accepted request formats, RFC3339 plus the
// HTML datetime-local variants the front ends submit.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Validate checks required fields and coerces the loose ones into typed
// values: price defaults to 0 on absent, non-numeric or negative input and
// categoryId becomes an integer or null.
func (in EventInput) Validate() (*EventParams, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	date := strings.TrimSpace(in.EventDate)
	location := strings.TrimSpace(in.Location)

	if title == "" || description == "" || date == "" || location == "" {
		return nil, &ValidationError{Message: "Missing required fields: title, description, eventDate, location"}
	}

	eventDate, ok := parseEventDate(date)
	if !ok {
		return nil, &ValidationError{Message: "Invalid eventDate: expected an ISO-8601 date/time"}
	}

	p := &EventParams{
		Title:       title,
		Description: description,
		EventDate:   eventDate,
		Location:    location,
		Price:       coercePrice(in.Price),
		CategoryID:  coerceID(in.CategoryID),
	}
	if url := strings.TrimSpace(in.ImageURL); url != "" {
		p.ImageURL = &url
	}
	return p, nil
}

// RegistrationInput is the wire shape of a registration request.
type RegistrationInput struct {
	EventID             any    `json:"eventId"`
	UserName            string `json:"userName"`
	UserEmail           string `json:"userEmail"`
	UserPhone           string `json:"userPhone"`
	TicketQuantity      any    `json:"ticketQuantity"`
	SpecialRequirements string `json:"specialRequirements"`
}

// RegistrationParams is the validated registration command. UserEmail is
// already normalized (trimmed, lower-cased) so that case-variant duplicates
// collide on the store's unique key.
type RegistrationParams struct {
	EventID             int64
	UserName            string
	UserEmail           string
	UserPhone           *string
	TicketQuantity      int
	SpecialRequirements *string
}

// Validate checks required fields, coerces eventId and ticketQuantity and
// normalizes the email. Quantity has a lower bound of 1 and, deliberately,
// no upper bound server-side.
func (in RegistrationInput) Validate() (*RegistrationParams, error) {
	eventID, eventOK := coerceInt(in.EventID)
	name := strings.TrimSpace(in.UserName)
	email := strings.ToLower(strings.TrimSpace(in.UserEmail))
	quantity, quantityOK := coerceInt(in.TicketQuantity)

	if !eventOK || eventID <= 0 || name == "" || email == "" || !quantityOK {
		return nil, &ValidationError{Message: "Missing required fields: eventId, userName, userEmail, ticketQuantity"}
	}
	if quantity < 1 {
		return nil, &ValidationError{Message: "Ticket quantity must be at least 1"}
	}

	p := &RegistrationParams{
		EventID:        eventID,
		UserName:       name,
		UserEmail:      email,
		TicketQuantity: int(quantity),
	}
	if phone := strings.TrimSpace(in.UserPhone); phone != "" {
		p.UserPhone = &phone
	}
	if reqs := strings.TrimSpace(in.SpecialRequirements); reqs != "" {
		p.SpecialRequirements = &reqs
	}
	return p, nil
}

func parseEventDate(s string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// coercePrice implements the parse-or-default price policy.
func coercePrice(v any) float64 {
	var price float64
	switch val := v.(type) {
	case float64:
		price = val
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		price = parsed
	default:
		return 0
	}
	if price < 0 {
		return 0
	}
	return price
}

// coerceID turns a loose category reference into an integer or null.
func coerceID(v any) *int64 {
	id, ok := coerceInt(v)
	if !ok || id <= 0 {
		return nil
	}
	return &id
}

// coerceInt accepts JSON numbers and numeric strings.
func coerceInt(v any) (int64, bool) {
	switch val := v.(type) {
	case float64:
		return int64(val), true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

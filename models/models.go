// Package models holds the domain types, input validation and the SQL
// repositories. Struct tags carry the field mapping in both directions:
// snake_case db tags for storage, camelCase json tags for the wire.
package models

import (
	"context"
	"time"
)

// Category is a fixed classification tag attached to events. Seed data;
// this API never mutates categories.
type Category struct {
	ID   int64  `db:"category_id" json:"categoryId"`
	Name string `db:"category_name" json:"categoryName"`
}

// Event is a charity fundraising occasion open for public registration.
type Event struct {
	ID          int64     `db:"event_id" json:"eventId"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	EventDate   time.Time `db:"event_date" json:"eventDate"`
	Location    string    `db:"location" json:"location"`
	Price       float64   `db:"price" json:"price"`
	CategoryID  *int64    `db:"category_id" json:"categoryId"`
	ImageURL    *string   `db:"image_url" json:"imageUrl"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// EventSummary is one row of the event listing: the event joined to its
// category name plus the derived registration count. The count is computed
// by aggregation at read time and never stored.
type EventSummary struct {
	Event
	CategoryName      *string `db:"category_name" json:"categoryName"`
	RegistrationCount int64   `db:"registration_count" json:"registrationCount"`
}

// EventDetail is a single event joined to its category name.
type EventDetail struct {
	Event
	CategoryName *string `db:"category_name" json:"categoryName"`
}

// Registration records one person's intent to attend an event. Append-only:
// there is no update or delete endpoint for registrations.
type Registration struct {
	ID                  int64     `db:"registration_id" json:"registrationId"`
	UserName            string    `db:"user_name" json:"userName"`
	UserEmail           string    `db:"user_email" json:"userEmail"`
	UserPhone           *string   `db:"user_phone" json:"userPhone"`
	TicketQuantity      int       `db:"ticket_quantity" json:"ticketQuantity"`
	RegistrationDate    time.Time `db:"registration_date" json:"registrationDate"`
	SpecialRequirements *string   `db:"special_requirements" json:"specialRequirements"`
}

// EventRepository is the store boundary for events.
type EventRepository interface {
	List(ctx context.Context) ([]EventSummary, error)
	Get(ctx context.Context, id int64) (*EventDetail, error)
	Create(ctx context.Context, p EventParams) (int64, error)
	Update(ctx context.Context, id int64, p EventParams) error
	// Delete refuses with RegistrationsExistError while registrations
	// reference the event.
	Delete(ctx context.Context, id int64) error
}

// RegistrationRepository is the store boundary for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, p RegistrationParams) (int64, error)
	ListByEvent(ctx context.Context, eventID int64) ([]Registration, error)
	CountByEvent(ctx context.Context, eventID int64) (int64, error)
}

// CategoryRepository is the store boundary for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
}

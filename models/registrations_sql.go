package models

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type sqlRegistrationRepo struct {
	db *sqlx.DB
}

// NewSQLRegistrationRepository returns a RegistrationRepository backed by
// the given pool.
func NewSQLRegistrationRepository(db *sqlx.DB) RegistrationRepository {
	return &sqlRegistrationRepo{db: db}
}

// Create inserts a registration. The UNIQUE (event_id, user_email) key
// rejects a second registration for the same event and email; that store
// violation is translated to ErrDuplicateRegistration here.
func (r *sqlRegistrationRepo) Create(ctx context.Context, p RegistrationParams) (int64, error) {
	query := `
		INSERT INTO registrations (event_id, user_name, user_email, user_phone, ticket_quantity, special_requirements)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING registration_id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		p.EventID, p.UserName, p.UserEmail, p.UserPhone, p.TicketQuantity, p.SpecialRequirements,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateRegistration
		}
		return 0, fmt.Errorf("failed to create registration: %w", err)
	}
	return id, nil
}

func (r *sqlRegistrationRepo) ListByEvent(ctx context.Context, eventID int64) ([]Registration, error) {
	query := `
		SELECT
			registration_id,
			user_name,
			user_email,
			user_phone,
			ticket_quantity,
			registration_date,
			special_requirements
		FROM registrations
		WHERE event_id = $1
		ORDER BY registration_date DESC
	`

	var registrations []Registration
	if err := r.db.SelectContext(ctx, &registrations, query, eventID); err != nil {
		return nil, fmt.Errorf("failed to list registrations for event %d: %w", eventID, err)
	}
	return registrations, nil
}

func (r *sqlRegistrationRepo) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM registrations WHERE event_id = $1`
	if err := r.db.GetContext(ctx, &count, query, eventID); err != nil {
		return 0, fmt.Errorf("failed to count registrations for event %d: %w", eventID, err)
	}
	return count, nil
}

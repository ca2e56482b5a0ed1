package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type sqlEventRepo struct {
	db *sqlx.DB
}

// NewSQLEventRepository returns an EventRepository backed by the given pool.
func NewSQLEventRepository(db *sqlx.DB) EventRepository {
	return &sqlEventRepo{db: db}
}

func (r *sqlEventRepo) List(ctx context.Context) ([]EventSummary, error) {
	query := `
		SELECT
			e.event_id,
			e.title,
			e.description,
			e.event_date,
			e.location,
			e.price,
			e.category_id,
			e.image_url,
			e.created_at,
			ec.category_name,
			COUNT(r.registration_id) AS registration_count
		FROM events e
		LEFT JOIN event_categories ec ON e.category_id = ec.category_id
		LEFT JOIN registrations r ON e.event_id = r.event_id
		GROUP BY e.event_id, ec.category_name
		ORDER BY e.event_date ASC
	`

	var events []EventSummary
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (r *sqlEventRepo) Get(ctx context.Context, id int64) (*EventDetail, error) {
	query := `
		SELECT
			e.event_id,
			e.title,
			e.description,
			e.event_date,
			e.location,
			e.price,
			e.category_id,
			e.image_url,
			e.created_at,
			ec.category_name
		FROM events e
		LEFT JOIN event_categories ec ON e.category_id = ec.category_id
		WHERE e.event_id = $1
	`

	var event EventDetail
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return &event, nil
}

func (r *sqlEventRepo) Create(ctx context.Context, p EventParams) (int64, error) {
	query := `
		INSERT INTO events (title, description, event_date, location, price, category_id, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING event_id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		p.Title, p.Description, p.EventDate, p.Location, p.Price, p.CategoryID, p.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}
	return id, nil
}

func (r *sqlEventRepo) Update(ctx context.Context, id int64, p EventParams) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, event_date = $3, location = $4,
			price = $5, category_id = $6, image_url = $7
		WHERE event_id = $8
	`

	res, err := r.db.ExecContext(ctx, query,
		p.Title, p.Description, p.EventDate, p.Location, p.Price, p.CategoryID, p.ImageURL, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update event %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete refuses while registrations reference the event, reporting the
// blocking count. The count and the delete are two separate round-trips with
// no transaction; a registration inserted in between makes the delete fail
// on the foreign key rather than orphan rows.
func (r *sqlEventRepo) Delete(ctx context.Context, id int64) error {
	var count int64
	countQuery := `SELECT COUNT(*) FROM registrations WHERE event_id = $1`
	if err := r.db.GetContext(ctx, &count, countQuery, id); err != nil {
		return fmt.Errorf("failed to count registrations for event %d: %w", id, err)
	}
	if count > 0 {
		return &RegistrationsExistError{Count: count}
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE event_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

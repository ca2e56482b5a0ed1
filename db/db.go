// Package db owns the database connection pool and the schema bootstrap.
package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"charity-events-api/config"
)

// DB wraps the sqlx pool so callers hold an explicit resource with a
// lifecycle instead of a package-level global.
type DB struct {
	*sqlx.DB
}

// Connect opens the Postgres pool, applies the configured limits and
// verifies the connection.
func Connect(cfg *config.DBConfig) (*DB, error) {
	conn, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{conn}, nil
}

// schema mirrors the reference deployment. The composite UNIQUE key on
// registrations backs the one-registration-per-email rule; the plain FK on
// registrations.event_id restricts event deletion at the store level.
const schema = `
CREATE TABLE IF NOT EXISTS event_categories (
	category_id SERIAL PRIMARY KEY,
	category_name VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	event_id SERIAL PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	event_date TIMESTAMP NOT NULL,
	location VARCHAR(255) NOT NULL,
	price NUMERIC(10,2) NOT NULL DEFAULT 0,
	category_id INTEGER REFERENCES event_categories(category_id),
	image_url TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS registrations (
	registration_id SERIAL PRIMARY KEY,
	event_id INTEGER NOT NULL REFERENCES events(event_id),
	user_name VARCHAR(255) NOT NULL,
	user_email VARCHAR(255) NOT NULL,
	user_phone VARCHAR(50),
	ticket_quantity INTEGER NOT NULL CHECK (ticket_quantity >= 1),
	special_requirements TEXT,
	registration_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (event_id, user_email)
);
`

// seedCategories inserts the fixed classification tags on first boot.
// Categories have no mutation endpoints; they are seed data.
const seedCategories = `
INSERT INTO event_categories (category_name)
SELECT name FROM (VALUES
	('Gala Dinner'),
	('Fun Run'),
	('Silent Auction'),
	('Charity Concert'),
	('Community Workshop')
) AS seed(name)
WHERE NOT EXISTS (SELECT 1 FROM event_categories);
`

// InitSchema creates the tables if they do not exist and seeds the
// category list on an empty database.
func (db *DB) InitSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if _, err := db.ExecContext(ctx, seedCategories); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return nil
}

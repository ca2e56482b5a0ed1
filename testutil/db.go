// Package testutil provides an in-memory SQLite database mirroring the
// Postgres schema, so repository and handler tests run without a server.
package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// Schema is the SQLite rendering of the production schema. Column names,
// constraints and the composite UNIQUE key match db.InitSchema exactly;
// only the id and timestamp column syntax differs by dialect.
const Schema = `
CREATE TABLE event_categories (
	category_id INTEGER PRIMARY KEY AUTOINCREMENT,
	category_name TEXT NOT NULL
);

CREATE TABLE events (
	event_id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	event_date TIMESTAMP NOT NULL,
	location TEXT NOT NULL,
	price REAL NOT NULL DEFAULT 0,
	category_id INTEGER REFERENCES event_categories(category_id),
	image_url TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE registrations (
	registration_id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id INTEGER NOT NULL REFERENCES events(event_id),
	user_name TEXT NOT NULL,
	user_email TEXT NOT NULL,
	user_phone TEXT,
	ticket_quantity INTEGER NOT NULL CHECK (ticket_quantity >= 1),
	special_requirements TEXT,
	registration_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (event_id, user_email)
);
`

// seed matches the category names planted by db.InitSchema.
const seed = `
INSERT INTO event_categories (category_name) VALUES
	('Gala Dinner'),
	('Fun Run'),
	('Silent Auction'),
	('Charity Concert'),
	('Community Workshop');
`

// NewTestDB creates an in-memory database with the full schema and seeded
// categories. A single connection keeps every query on the same in-memory
// store. The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(Schema)
	require.NoError(t, err)
	_, err = conn.Exec(seed)
	require.NoError(t, err)

	return conn
}

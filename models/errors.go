package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// ErrNotFound signals that a referenced identifier matched no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicateRegistration signals that the (event, email) pair already
// holds a registration. Raised from the store's unique constraint.
var ErrDuplicateRegistration = errors.New("email already registered for event")

// ValidationError reports missing or malformed request input. Detected
// before any store mutation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RegistrationsExistError blocks event deletion and carries the exact
// number of registrations standing in the way.
type RegistrationsExistError struct {
	Count int64
}

func (e *RegistrationsExistError) Error() string {
	return fmt.Sprintf("Cannot delete event with %d registration(s). Please remove all registrations first.", e.Count)
}

// isUniqueViolation reports whether err is a unique-constraint violation.
// Postgres surfaces these as pq error code 23505; the sqlite driver used in
// tests reports them in the error text.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

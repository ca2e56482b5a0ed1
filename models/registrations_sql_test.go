package models_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity-events-api/models"
	"charity-events-api/testutil"
)

func newEventForRegistrations(t *testing.T, events models.EventRepository) int64 {
	t.Helper()
	id, err := events.Create(context.Background(), galaParams())
	require.NoError(t, err)
	return id
}

func TestRegistrationCreate(t *testing.T) {
	conn := testutil.NewTestDB(t)
	events := models.NewSQLEventRepository(conn)
	registrations := models.NewSQLRegistrationRepository(conn)
	ctx := context.Background()

	eventID := newEventForRegistrations(t, events)

	phone := "555-0100"
	reqs := "Wheelchair access"
	id, err := registrations.Create(ctx, models.RegistrationParams{
		EventID:             eventID,
		UserName:            "Jane Doe",
		UserEmail:           "jane@x.com",
		UserPhone:           &phone,
		TicketQuantity:      2,
		SpecialRequirements: &reqs,
	})
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	list, err := registrations.ListByEvent(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Jane Doe", got.UserName)
	assert.Equal(t, "jane@x.com", got.UserEmail)
	require.NotNil(t, got.UserPhone)
	assert.Equal(t, "555-0100", *got.UserPhone)
	assert.Equal(t, 2, got.TicketQuantity)
	require.NotNil(t, got.SpecialRequirements)
	assert.Equal(t, "Wheelchair access", *got.SpecialRequirements)
	assert.False(t, got.RegistrationDate.IsZero(), "registration_date is store-assigned")
}

func TestRegistrationDuplicateEmailConflicts(t *testing.T) {
	conn := testutil.NewTestDB(t)
	events := models.NewSQLEventRepository(conn)
	registrations := models.NewSQLRegistrationRepository(conn)
	ctx := context.Background()

	eventID := newEventForRegistrations(t, events)

	params := models.RegistrationParams{
		EventID:        eventID,
		UserName:       "Jane Doe",
		UserEmail:      "jane@x.com",
		TicketQuantity: 2,
	}
	_, err := registrations.Create(ctx, params)
	require.NoError(t, err)

	// Same (event, email) pair: the store's unique key refuses the insert.
	_, err = registrations.Create(ctx, params)
	assert.ErrorIs(t, err, models.ErrDuplicateRegistration)

	// A different email for the same event is fine.
	params.UserEmail = "john@x.com"
	_, err = registrations.Create(ctx, params)
	require.NoError(t, err)

	// And the same email on a different event is fine too.
	otherEvent := newEventForRegistrations(t, events)
	params.UserEmail = "jane@x.com"
	params.EventID = otherEvent
	_, err = registrations.Create(ctx, params)
	require.NoError(t, err)
}

func TestRegistrationCountByEvent(t *testing.T) {
	conn := testutil.NewTestDB(t)
	events := models.NewSQLEventRepository(conn)
	registrations := models.NewSQLRegistrationRepository(conn)
	ctx := context.Background()

	eventID := newEventForRegistrations(t, events)

	count, err := registrations.CountByEvent(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := registrations.Create(ctx, models.RegistrationParams{
			EventID:        eventID,
			UserName:       "Guest",
			UserEmail:      email,
			TicketQuantity: 1,
		})
		require.NoError(t, err)
	}

	count, err = registrations.CountByEvent(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRegistrationListByEventOrder(t *testing.T) {
	conn := testutil.NewTestDB(t)
	events := models.NewSQLEventRepository(conn)
	registrations := models.NewSQLRegistrationRepository(conn)
	ctx := context.Background()

	eventID := newEventForRegistrations(t, events)

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		_, err := registrations.Create(ctx, models.RegistrationParams{
			EventID:        eventID,
			UserName:       "Guest",
			UserEmail:      email,
			TicketQuantity: 1,
		})
		require.NoError(t, err)
	}

	list, err := registrations.ListByEvent(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, list, 3)

	// Most recent first; same-second inserts may tie, so only the
	// non-increasing property is asserted.
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].RegistrationDate.After(list[i-1].RegistrationDate))
	}

	seen := map[string]bool{}
	for _, r := range list {
		seen[r.UserEmail] = true
	}
	for _, email := range emails {
		assert.True(t, seen[email])
	}
}

func TestCategoryList(t *testing.T) {
	conn := testutil.NewTestDB(t)
	categories := models.NewSQLCategoryRepository(conn)

	list, err := categories.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 5)

	// Ordered by name, not by id.
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Charity Concert", "Community Workshop", "Fun Run", "Gala Dinner", "Silent Auction"}, names)
}

// Package storagetest holds behaviour checks shared by every storage.Store
// driver. Each driver's tests call Run against a fresh, empty store.
package storagetest

import (
	"context"
	"testing"
	"time"

	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Run(t *testing.T, s storage.Store) {
	t.Run("Events", func(t *testing.T) { testEvents(t, s) })
	t.Run("Attendees", func(t *testing.T) { testAttendees(t, s) })
	t.Run("Tickets", func(t *testing.T) { testTickets(t, s) })
	t.Run("Users", func(t *testing.T) { testUsers(t, s) })
}

func testEvents(t *testing.T, s storage.Store) {
	ctx := context.Background()

	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	saved, err := s.SaveEvent(ctx, models.Event{
		EventName:   "Tech Fest",
		Venue:       "Main Hall",
		EventDate:   &date,
		StartTime:   "10:00",
		EndTime:     "17:00",
		ChiefGuest:  "Dr. Rao",
		ConductedBy: "CS Dept",
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	_, err = s.SaveEvent(ctx, models.Event{EventName: "No Date"})
	require.NoError(t, err)

	events, err := s.GetAllEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, saved.ID, events[0].ID)
	assert.Equal(t, "Tech Fest", events[0].EventName)
	assert.Equal(t, "CS Dept", events[0].ConductedBy)
	require.NotNil(t, events[0].EventDate)
	assert.True(t, date.Equal(*events[0].EventDate))
	assert.Nil(t, events[1].EventDate)
}

func testAttendees(t *testing.T, s storage.Store) {
	ctx := context.Background()

	_, err := s.GetAttendeeByRegistrationID(ctx, "REG-1")
	require.ErrorIs(t, err, storage.ErrNotFound)

	saved, err := s.SaveAttendee(ctx, models.Attendee{
		Name:           "Ann",
		MailID:         "ann@x.com",
		PasswordHash:   "hash",
		City:           "Pune",
		Event:          "Tech Fest",
		RegistrationID: "REG-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := s.GetAttendeeByRegistrationID(ctx, "REG-1")
	require.NoError(t, err)
	assert.Equal(t, *saved, *got)

	all, err := s.GetAllAttendees(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, saved.ID, all[0].ID)
}

func testTickets(t *testing.T, s storage.Store) {
	ctx := context.Background()

	_, err := s.GetTicketByRegistrationID(ctx, "REG-1")
	require.ErrorIs(t, err, storage.ErrNotFound)

	first, err := s.SaveTicket(ctx, models.Ticket{
		RegistrationID: "REG-1",
		Name:           "Ann",
		PhoneNo:        "555",
		EventName:      "Tech Fest",
		TicketCategory: "VIP",
		TicketPrice:    499.5,
	})
	require.NoError(t, err)

	_, err = s.SaveTicket(ctx, models.Ticket{
		RegistrationID: "REG-1",
		Name:           "Ann",
		PhoneNo:        "555",
		EventName:      "Tech Fest",
		TicketCategory: "General",
		TicketPrice:    99,
	})
	require.NoError(t, err)

	got, err := s.GetTicketByRegistrationID(ctx, "REG-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "VIP", got.TicketCategory)
	assert.InDelta(t, 499.5, got.TicketPrice, 0.001)
	assert.Nil(t, got.TicketDate)
}

func testUsers(t *testing.T, s storage.Store) {
	ctx := context.Background()

	_, err := s.GetUserByEmail(ctx, "a@x.com")
	require.ErrorIs(t, err, storage.ErrNotFound)

	saved, err := s.SaveUser(ctx, models.User{Email: "a@x.com", PasswordHash: "first"})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	_, err = s.SaveUser(ctx, models.User{Email: "a@x.com", PasswordHash: "second"})
	require.ErrorIs(t, err, storage.ErrUserExists)

	got, err := s.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "first", got.PasswordHash)
}

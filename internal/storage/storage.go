package storage

import (
	"context"
	"errors"

	"eventRegistry/internal/models"
)

var (
	ErrNotFound   = errors.New("document not found")
	ErrUserExists = errors.New("user already exists")
)

// Store is the set of collections the HTTP layer works against. Every
// document is write-once: there are no update or delete operations.
type Store interface {
	SaveEvent(ctx context.Context, event models.Event) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)

	SaveAttendee(ctx context.Context, attendee models.Attendee) (*models.Attendee, error)
	GetAllAttendees(ctx context.Context) ([]models.Attendee, error)
	GetAttendeeByRegistrationID(ctx context.Context, registrationID string) (*models.Attendee, error)

	SaveTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error)
	GetTicketByRegistrationID(ctx context.Context, registrationID string) (*models.Ticket, error)

	// SaveUser fails with ErrUserExists when the email is taken.
	SaveUser(ctx context.Context, user models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	Close(ctx context.Context) error
}

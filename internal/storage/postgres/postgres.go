package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventRegistry/internal/config"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE postgres reports for a unique constraint hit.
const uniqueViolation = pq.ErrorCode("23505")

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id           TEXT PRIMARY KEY,
	event_name   TEXT NOT NULL DEFAULT '',
	venue        TEXT NOT NULL DEFAULT '',
	event_date   TIMESTAMPTZ,
	start_time   TEXT NOT NULL DEFAULT '',
	end_time     TEXT NOT NULL DEFAULT '',
	chief_guest  TEXT NOT NULL DEFAULT '',
	conducted_by TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendees (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL DEFAULT '',
	mail_id           TEXT NOT NULL DEFAULT '',
	password_hash     TEXT NOT NULL DEFAULT '',
	phone_no          TEXT NOT NULL DEFAULT '',
	address_line1     TEXT NOT NULL DEFAULT '',
	address_line2     TEXT NOT NULL DEFAULT '',
	city              TEXT NOT NULL DEFAULT '',
	pincode           TEXT NOT NULL DEFAULT '',
	state             TEXT NOT NULL DEFAULT '',
	country           TEXT NOT NULL DEFAULT '',
	event             TEXT NOT NULL DEFAULT '',
	registration_id   TEXT NOT NULL DEFAULT '',
	registration_date TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tickets (
	id              TEXT PRIMARY KEY,
	registration_id TEXT NOT NULL,
	name            TEXT NOT NULL,
	phone_no        TEXT NOT NULL,
	event_name      TEXT NOT NULL,
	ticket_category TEXT NOT NULL,
	ticket_price    DOUBLE PRECISION NOT NULL,
	ticket_date     TIMESTAMPTZ,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

type Storage struct {
	DB *sql.DB
}

func InitDB(ctx context.Context, dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	return Open(ctx, connStr)
}

// Open connects with a libpq connection string or URL and creates the
// tables when they are missing.
func Open(ctx context.Context, connStr string) (*Storage, error) {
	const op = "storage.postgres.Open"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to create schema: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close(_ context.Context) error {
	return s.DB.Close()
}

func (s *Storage) SaveEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	const op = "storage.postgres.SaveEvent"

	event.ID = uuid.NewString()

	query := `
		INSERT INTO events (id, event_name, venue, event_date, start_time, end_time, chief_guest, conducted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.DB.ExecContext(ctx, query,
		event.ID,
		event.EventName,
		event.Venue,
		event.EventDate,
		event.StartTime,
		event.EndTime,
		event.ChiefGuest,
		event.ConductedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.postgres.GetAllEvents"

	query := `
		SELECT id, event_name, venue, event_date, start_time, end_time, chief_guest, conducted_by
		FROM events
		ORDER BY created_at ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.EventName,
			&event.Venue,
			&event.EventDate,
			&event.StartTime,
			&event.EndTime,
			&event.ChiefGuest,
			&event.ConductedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	return events, nil
}

func (s *Storage) SaveAttendee(ctx context.Context, attendee models.Attendee) (*models.Attendee, error) {
	const op = "storage.postgres.SaveAttendee"

	attendee.ID = uuid.NewString()

	query := `
		INSERT INTO attendees (id, name, mail_id, password_hash, phone_no, address_line1, address_line2,
			city, pincode, state, country, event, registration_id, registration_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := s.DB.ExecContext(ctx, query,
		attendee.ID,
		attendee.Name,
		attendee.MailID,
		attendee.PasswordHash,
		attendee.PhoneNo,
		attendee.AddressLine1,
		attendee.AddressLine2,
		attendee.City,
		attendee.Pincode,
		attendee.State,
		attendee.Country,
		attendee.Event,
		attendee.RegistrationID,
		attendee.RegistrationDate,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &attendee, nil
}

const attendeeColumns = `id, name, mail_id, password_hash, phone_no, address_line1, address_line2,
	city, pincode, state, country, event, registration_id, registration_date`

type scanner interface {
	Scan(dest ...any) error
}

func scanAttendee(row scanner) (models.Attendee, error) {
	var a models.Attendee
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.MailID,
		&a.PasswordHash,
		&a.PhoneNo,
		&a.AddressLine1,
		&a.AddressLine2,
		&a.City,
		&a.Pincode,
		&a.State,
		&a.Country,
		&a.Event,
		&a.RegistrationID,
		&a.RegistrationDate,
	)

	return a, err
}

func (s *Storage) GetAllAttendees(ctx context.Context) ([]models.Attendee, error) {
	const op = "storage.postgres.GetAllAttendees"

	rows, err := s.DB.QueryContext(ctx, `SELECT `+attendeeColumns+` FROM attendees ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	attendees := []models.Attendee{}
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan attendee: %w", op, err)
		}
		attendees = append(attendees, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating attendees: %w", op, err)
	}

	return attendees, nil
}

func (s *Storage) GetAttendeeByRegistrationID(ctx context.Context, registrationID string) (*models.Attendee, error) {
	const op = "storage.postgres.GetAttendeeByRegistrationID"

	query := `SELECT ` + attendeeColumns + `
		FROM attendees
		WHERE registration_id = $1
		ORDER BY created_at ASC
		LIMIT 1`

	a, err := scanAttendee(s.DB.QueryRowContext(ctx, query, registrationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &a, nil
}

func (s *Storage) SaveTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error) {
	const op = "storage.postgres.SaveTicket"

	ticket.ID = uuid.NewString()

	query := `
		INSERT INTO tickets (id, registration_id, name, phone_no, event_name, ticket_category, ticket_price, ticket_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.DB.ExecContext(ctx, query,
		ticket.ID,
		ticket.RegistrationID,
		ticket.Name,
		ticket.PhoneNo,
		ticket.EventName,
		ticket.TicketCategory,
		ticket.TicketPrice,
		ticket.TicketDate,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &ticket, nil
}

func (s *Storage) GetTicketByRegistrationID(ctx context.Context, registrationID string) (*models.Ticket, error) {
	const op = "storage.postgres.GetTicketByRegistrationID"

	query := `
		SELECT id, registration_id, name, phone_no, event_name, ticket_category, ticket_price, ticket_date
		FROM tickets
		WHERE registration_id = $1
		ORDER BY created_at ASC
		LIMIT 1`

	var t models.Ticket
	err := s.DB.QueryRowContext(ctx, query, registrationID).Scan(
		&t.ID,
		&t.RegistrationID,
		&t.Name,
		&t.PhoneNo,
		&t.EventName,
		&t.TicketCategory,
		&t.TicketPrice,
		&t.TicketDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &t, nil
}

// SaveUser relies on the UNIQUE constraint on email, so two concurrent
// signups for one address cannot both succeed.
func (s *Storage) SaveUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.postgres.SaveUser"

	user.ID = uuid.NewString()

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO users (id, email, password) VALUES ($1, $2, $3)`,
		user.ID, user.Email, user.PasswordHash,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, storage.ErrUserExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.GetUserByEmail"

	var u models.User
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, email, password FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}

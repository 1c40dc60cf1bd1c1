package mongo

import (
	"context"
	"errors"
	"fmt"

	"eventRegistry/internal/config"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	eventsCollection    = "events"
	attendeesCollection = "attendees"
	ticketsCollection   = "tickets"
	usersCollection     = "users"
)

type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to the server, verifies it with a ping and creates the unique
// index on users.email.
func New(ctx context.Context, cfg *config.Mongo) (*Storage, error) {
	const op = "storage.mongo.New"

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect: %w", op, err)
	}

	if err = client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: failed to ping: %w", op, err)
	}

	s := &Storage{
		client: client,
		db:     client.Database(cfg.Database),
	}

	_, err = s.db.Collection(usersCollection).Indexes().CreateOne(connectCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: failed to create users index: %w", op, err)
	}

	return s, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

func (s *Storage) SaveEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	const op = "storage.mongo.SaveEvent"

	event.ID = newID()

	if _, err := s.db.Collection(eventsCollection).InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.mongo.GetAllEvents"

	events := []models.Event{}
	if err := findAll(ctx, s.db.Collection(eventsCollection), &events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Storage) SaveAttendee(ctx context.Context, attendee models.Attendee) (*models.Attendee, error) {
	const op = "storage.mongo.SaveAttendee"

	attendee.ID = newID()

	if _, err := s.db.Collection(attendeesCollection).InsertOne(ctx, attendee); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &attendee, nil
}

func (s *Storage) GetAllAttendees(ctx context.Context) ([]models.Attendee, error) {
	const op = "storage.mongo.GetAllAttendees"

	attendees := []models.Attendee{}
	if err := findAll(ctx, s.db.Collection(attendeesCollection), &attendees); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return attendees, nil
}

func (s *Storage) GetAttendeeByRegistrationID(ctx context.Context, registrationID string) (*models.Attendee, error) {
	const op = "storage.mongo.GetAttendeeByRegistrationID"

	var attendee models.Attendee
	if err := findFirst(ctx, s.db.Collection(attendeesCollection), bson.M{"registrationId": registrationID}, &attendee); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &attendee, nil
}

func (s *Storage) SaveTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error) {
	const op = "storage.mongo.SaveTicket"

	ticket.ID = newID()

	if _, err := s.db.Collection(ticketsCollection).InsertOne(ctx, ticket); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &ticket, nil
}

func (s *Storage) GetTicketByRegistrationID(ctx context.Context, registrationID string) (*models.Ticket, error) {
	const op = "storage.mongo.GetTicketByRegistrationID"

	var ticket models.Ticket
	if err := findFirst(ctx, s.db.Collection(ticketsCollection), bson.M{"registrationId": registrationID}, &ticket); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &ticket, nil
}

// SaveUser relies on the unique index on email, so two concurrent signups
// for one address cannot both succeed.
func (s *Storage) SaveUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.mongo.SaveUser"

	user.ID = newID()

	if _, err := s.db.Collection(usersCollection).InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, storage.ErrUserExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.mongo.GetUserByEmail"

	var user models.User
	if err := findFirst(ctx, s.db.Collection(usersCollection), bson.M{"email": email}, &user); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

// findFirst decodes the earliest inserted document matching filter.
// ObjectID hex keys sort in creation order.
func findFirst(ctx context.Context, coll *mongo.Collection, filter bson.M, dst any) error {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	err := coll.FindOne(ctx, filter, opts).Decode(dst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storage.ErrNotFound
	}

	return err
}

func findAll(ctx context.Context, coll *mongo.Collection, dst any) error {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return err
	}

	return cur.All(ctx, dst)
}

package reservationRepo

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quickwash/database"
	"quickwash/models"
)

// ErrOverlap is returned by Create when the bay already has an active
// reservation overlapping the requested range.
var ErrOverlap = errors.New("bay already has an active reservation in this time range")

// ReservationRepository defines methods for reservation data access.
// Overlap enforcement between active reservations of a bay lives here, at
// the persistence layer; the availability engine only reads.
type ReservationRepository interface {
	Create(reservation *models.Reservation) error
	GetByID(id string) (*models.Reservation, error)
	// ActiveInWindow returns active reservations across the given stations
	// overlapping [windowStart, windowEnd], sorted by start ascending.
	ActiveInWindow(stationIDs []string, windowStart, windowEnd time.Time) ([]models.Reservation, error)
	ListByUser(userID string) ([]models.Reservation, error)
	ListByStation(stationID string, activeOnly bool, now time.Time) ([]models.Reservation, error)
	// Checkout finalizes a reservation early, capping its end at the given
	// instant. Returns the updated reservation.
	Checkout(id string, at time.Time) (*models.Reservation, error)
	// FinalizeExpired flips active reservations whose end has passed to
	// finalized and reports how many were touched.
	FinalizeExpired(now time.Time) (int64, error)
}

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a ReservationRepository backed by the given client.
func NewMongoReservationRepo(client *mongo.Client) ReservationRepository {
	coll := client.Database(database.DatabaseName).Collection("reservations")
	repo := &MongoReservationRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("reservation repo: %v", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// Window scans filter on station + status and range over the
		// time bounds.
		{Keys: bson.D{
			{Key: "stationId", Value: 1},
			{Key: "status", Value: 1},
			{Key: "start", Value: 1},
		}},
		{Keys: bson.D{{Key: "bayId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "start", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	return err
}

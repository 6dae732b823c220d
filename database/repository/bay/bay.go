package bayRepo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quickwash/database"
	"quickwash/models"
)

// BayRepository defines methods for washing-bay data access.
type BayRepository interface {
	Create(bay *models.Bay) error
	GetByID(id string) (*models.Bay, error)
	ListByStation(stationID string) ([]models.Bay, error)
	// AvailableByStations returns bays flagged available across the given
	// stations, the candidate set for an availability search.
	AvailableByStations(stationIDs []string) ([]models.Bay, error)
	UpdateWithDocument(id string, updateDoc bson.M) error
	Delete(id string) error
}

// MongoBayRepo implements BayRepository using MongoDB.
type MongoBayRepo struct {
	coll *mongo.Collection
}

// NewMongoBayRepo creates a BayRepository backed by the given client.
func NewMongoBayRepo(client *mongo.Client) BayRepository {
	coll := client.Database(database.DatabaseName).Collection("bays")
	repo := &MongoBayRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("bay repo: %v", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoBayRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "stationId", Value: 1}, {Key: "isAvailable", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	return err
}

package stationRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quickwash/database"
	"quickwash/models"
)

// StationRepository defines methods for washing-station data access.
type StationRepository interface {
	Create(station *models.Station) error
	GetByID(id string) (*models.Station, error)
	GetAll() ([]models.Station, error)
	Update(station *models.Station) error
	Delete(id string) error
	// Nearby returns stations within radiusKm of the point, nearest first.
	Nearby(lat, lon, radiusKm float64) ([]models.NearbyStation, error)
}

// MongoStationRepo implements StationRepository using MongoDB.
type MongoStationRepo struct {
	coll *mongo.Collection
}

// NewMongoStationRepo creates a StationRepository backed by the given client.
func NewMongoStationRepo(client *mongo.Client) StationRepository {
	coll := client.Database(database.DatabaseName).Collection("stations")
	repo := &MongoStationRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("station repo: %v", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// ensureIndexes creates indexes for frequently used fields in queries.
func (r *MongoStationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "locationGeo", Value: "2dsphere"}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

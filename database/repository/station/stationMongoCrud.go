package stationRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"quickwash/models"
)

// Create inserts a new station document.
func (r *MongoStationRepo) Create(station *models.Station) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, station); err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}
	return nil
}

// GetByID retrieves a station by its unique ID.
func (r *MongoStationRepo) GetByID(id string) (*models.Station, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var station models.Station
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&station); err != nil {
		return nil, fmt.Errorf("failed to fetch station with id %s: %w", id, err)
	}
	return &station, nil
}

// GetAll retrieves every station document.
func (r *MongoStationRepo) GetAll() ([]models.Station, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve stations: %w", err)
	}
	defer cursor.Close(ctx)

	var stations []models.Station
	if err := cursor.All(ctx, &stations); err != nil {
		return nil, fmt.Errorf("failed to decode stations: %w", err)
	}
	return stations, nil
}

// Update modifies an existing station document.
func (r *MongoStationRepo) Update(station *models.Station) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": station.ID}
	update := bson.M{"$set": station}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update station with id %s: %w", station.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("station with id %s not found", station.ID)
	}
	return nil
}

// Delete removes a station document by its ID.
func (r *MongoStationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete station with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("station with id %s not found", id)
	}
	return nil
}

package bayRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"quickwash/models"
)

// Create inserts a new bay document.
func (r *MongoBayRepo) Create(bay *models.Bay) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, bay); err != nil {
		return fmt.Errorf("failed to create bay: %w", err)
	}
	return nil
}

// GetByID retrieves a bay by its unique ID.
func (r *MongoBayRepo) GetByID(id string) (*models.Bay, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var bay models.Bay
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&bay); err != nil {
		return nil, fmt.Errorf("failed to fetch bay with id %s: %w", id, err)
	}
	return &bay, nil
}

// ListByStation retrieves all bays belonging to a station.
func (r *MongoBayRepo) ListByStation(stationID string) ([]models.Bay, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"stationId": stationID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bays for station %s: %w", stationID, err)
	}
	defer cursor.Close(ctx)

	var bays []models.Bay
	if err := cursor.All(ctx, &bays); err != nil {
		return nil, fmt.Errorf("failed to decode bays: %w", err)
	}
	return bays, nil
}

// AvailableByStations retrieves available bays across the given stations.
func (r *MongoBayRepo) AvailableByStations(stationIDs []string) ([]models.Bay, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"stationId":   bson.M{"$in": stationIDs},
		"isAvailable": true,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve available bays: %w", err)
	}
	defer cursor.Close(ctx)

	var bays []models.Bay
	if err := cursor.All(ctx, &bays); err != nil {
		return nil, fmt.Errorf("failed to decode bays: %w", err)
	}
	return bays, nil
}

// UpdateWithDocument updates a bay using a custom update document.
func (r *MongoBayRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update bay with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("bay with id %s not found", id)
	}
	return nil
}

// Delete removes a bay document by its ID.
func (r *MongoBayRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete bay with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("bay with id %s not found", id)
	}
	return nil
}

package reservationRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quickwash/models"
)

// ActiveInWindow returns the active reservations across the given stations
// overlapping [windowStart, windowEnd], sorted ascending by start. This is
// the snapshot the availability engine scans; rows created after the fetch
// are deliberately not reflected.
func (r *MongoReservationRepo) ActiveInWindow(stationIDs []string, windowStart, windowEnd time.Time) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"stationId": bson.M{"$in": stationIDs},
		"status":    models.ReservationStatusActive,
		"end":       bson.M{"$gte": windowStart},
		"start":     bson.M{"$lte": windowEnd},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations in window: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

// ListByUser returns a user's reservation history, newest first.
func (r *MongoReservationRepo) ListByUser(userID string) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

// ListByStation returns a station's reservations, newest first. With
// activeOnly set, only active reservations still running at now are kept.
func (r *MongoReservationRepo) ListByStation(stationID string, activeOnly bool, now time.Time) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"stationId": stationID}
	if activeOnly {
		filter["status"] = models.ReservationStatusActive
		filter["end"] = bson.M{"$gte": now}
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations for station %s: %w", stationID, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

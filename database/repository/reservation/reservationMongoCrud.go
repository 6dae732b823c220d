package reservationRepo

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"quickwash/models"
)

// overlapFilter matches active reservations on the bay whose half-open
// [start, end) range intersects the given one.
func overlapFilter(bayID string, start, end time.Time) bson.M {
	return bson.M{
		"bayId":  bayID,
		"status": models.ReservationStatusActive,
		"start":  bson.M{"$lt": end},
		"end":    bson.M{"$gt": start},
	}
}

// Create inserts a reservation only if no active reservation on the same
// bay overlaps it. The overlap check and the insert run inside one mongo
// transaction so two concurrent creates cannot both pass the check.
func (r *MongoReservationRepo) Create(reservation *models.Reservation) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		n, err := r.coll.CountDocuments(sc, overlapFilter(reservation.BayID, reservation.Start, reservation.End))
		if err != nil {
			return fmt.Errorf("failed to check reservation overlap: %w", err)
		}
		if n > 0 {
			return ErrOverlap
		}
		if _, err := r.coll.InsertOne(sc, reservation); err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrOverlap) {
			return ErrOverlap
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
	return nil
}

// GetByID retrieves a reservation by its unique ID.
func (r *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var reservation models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reservation); err != nil {
		return nil, fmt.Errorf("failed to fetch reservation with id %s: %w", id, err)
	}
	return &reservation, nil
}

// Checkout finalizes a reservation early: its end is capped at the given
// instant and its status flipped to finalized. Only an active reservation
// matches; a finalized one is left untouched.
func (r *MongoReservationRepo) Checkout(id string, at time.Time) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": models.ReservationStatusActive,
	}
	update := bson.M{"$set": bson.M{
		"end":    at,
		"status": models.ReservationStatusFinalized,
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to checkout reservation with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return r.GetByID(id)
}

// FinalizeExpired flips active reservations whose end instant has passed.
func (r *MongoReservationRepo) FinalizeExpired(now time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.ReservationStatusActive,
		"end":    bson.M{"$lte": now},
	}
	update := bson.M{"$set": bson.M{"status": models.ReservationStatusFinalized}}
	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to finalize expired reservations: %w", err)
	}
	return result.ModifiedCount, nil
}

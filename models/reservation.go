package models

import "time"

// Reservation statuses. Only active reservations block availability;
// finalized ones are kept for history.
const (
	ReservationStatusActive    = "active"
	ReservationStatusFinalized = "finalized"
)

// Reservation is a booked time range against a bay. Overlap between active
// reservations of the same bay is rejected at write time by the repository.
type Reservation struct {
	ID        string    `bson:"id" json:"id"`
	BayID     string    `bson:"bayId" json:"bayId"`
	StationID string    `bson:"stationId" json:"stationId"`
	UserID    string    `bson:"userId" json:"userId"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end" json:"end"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// Duration returns the booked length of the reservation.
func (r Reservation) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// IsWellFormed reports whether the time range is usable. Rows with
// start >= end must be discarded before any availability scan.
func (r Reservation) IsWellFormed() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether two reservations share any instant.
// Boundaries are half-open: back-to-back reservations do not overlap.
func (r Reservation) Overlaps(other Reservation) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

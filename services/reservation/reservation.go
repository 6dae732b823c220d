package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bayRepo "quickwash/database/repository/bay"
	reservationRepo "quickwash/database/repository/reservation"
	"quickwash/models"
	"quickwash/utils"
)

// ReservationService defines reservation write and read operations.
type ReservationService interface {
	// Create books a bay for the user starting now, for durationMinutes.
	Create(userID, bayID string, durationMinutes int) (*models.Reservation, error)
	// Checkout finalizes the user's reservation early.
	Checkout(userID, reservationID string) (*models.Reservation, error)
	History(userID string) ([]models.Reservation, error)
	StationReservations(stationID string, activeOnly bool) ([]models.Reservation, error)
}

// DefaultReservationService is the production ReservationService.
type DefaultReservationService struct {
	Repo    reservationRepo.ReservationRepository
	BayRepo bayRepo.BayRepository
}

// Create books a bay starting now. Overlap with another active reservation
// of the same bay surfaces as a Conflict.
func (s *DefaultReservationService) Create(userID, bayID string, durationMinutes int) (*models.Reservation, error) {
	bay, err := s.BayRepo.GetByID(bayID)
	if err != nil {
		return nil, utils.NewNotFoundError("bay not found")
	}
	if durationMinutes <= 0 {
		durationMinutes = bay.DefaultDurationMinutes
	}

	start := time.Now().UTC()
	res := &models.Reservation{
		ID:        uuid.New().String(),
		BayID:     bay.ID,
		StationID: bay.StationID,
		UserID:    userID,
		Start:     start,
		End:       start.Add(time.Duration(durationMinutes) * time.Minute),
		Status:    models.ReservationStatusActive,
		CreatedAt: start,
	}
	if err := s.Repo.Create(res); err != nil {
		if errors.Is(err, reservationRepo.ErrOverlap) {
			return nil, utils.NewConflictError("bay is already reserved for this time")
		}
		utils.GetLogger().Error("Create: failed to persist reservation",
			zap.String("bayId", bayID), zap.Error(err))
		return nil, err
	}
	return res, nil
}

// Checkout finalizes a reservation early, capping its end at now. Only the
// reservation's owner may check out, and only while it is still active.
func (s *DefaultReservationService) Checkout(userID, reservationID string) (*models.Reservation, error) {
	existing, err := s.Repo.GetByID(reservationID)
	if err != nil {
		return nil, utils.NewNotFoundError("reservation not found")
	}
	if existing.UserID != userID {
		return nil, utils.NewUnauthorizedError("reservation belongs to another user")
	}
	if existing.Status != models.ReservationStatusActive {
		return nil, utils.NewConflictError("reservation is already finalized")
	}
	updated, err := s.Repo.Checkout(reservationID, time.Now().UTC())
	if err != nil {
		// The repo only matches active reservations, so a concurrent
		// checkout or finalizer run lands here.
		return nil, utils.NewConflictError("reservation is already finalized")
	}
	return updated, nil
}

// History returns the user's reservations, newest first.
func (s *DefaultReservationService) History(userID string) ([]models.Reservation, error) {
	return s.Repo.ListByUser(userID)
}

// StationReservations returns a station's reservations for its admin view.
func (s *DefaultReservationService) StationReservations(stationID string, activeOnly bool) ([]models.Reservation, error) {
	return s.Repo.ListByStation(stationID, activeOnly, time.Now().UTC())
}

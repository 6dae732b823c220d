package station

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bayRepo "quickwash/database/repository/bay"
	reservationRepo "quickwash/database/repository/reservation"
	stationRepo "quickwash/database/repository/station"
	"quickwash/models"
	"quickwash/services/availability"
	"quickwash/utils"
)

// StationService defines station management and availability search.
type StationService interface {
	CreateStation(input CreateStationInput) (*models.Station, error)
	GetStation(id string) (*models.Station, error)
	Nearby(lat, lon, radiusKm float64) ([]models.NearbyStation, error)
	// NearbyAvailability is the headline query: stations within range
	// whose available bays offer at least one free interval of the
	// requested minimum duration within the horizon.
	NearbyAvailability(lat, lon, radiusKm float64, minDurationMinutes int, horizon time.Duration) ([]models.StationAvailability, error)
}

// CreateStationInput carries the fields for a new station.
type CreateStationInput struct {
	Name           string
	Address        string
	OperatingHours string
	Latitude       float64
	Longitude      float64
}

// DefaultStationService is the production StationService.
type DefaultStationService struct {
	Repo            stationRepo.StationRepository
	BayRepo         bayRepo.BayRepository
	ReservationRepo reservationRepo.ReservationRepository
	Engine          availability.Engine
}

var scheduleFormat = regexp.MustCompile(`^\d{2}:\d{2}\s*-\s*\d{2}:\d{2}$`)

// NormalizeSchedule validates an operating-hours string at creation time.
// Non-stop aliases normalize to "00:00 - 24:00"; anything else must match
// "HH:MM - HH:MM". This is the write-time gate; the availability engine
// still tolerates malformed rows that predate it.
func NormalizeSchedule(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "00:00 - 24:00", nil
	}
	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "non") && strings.Contains(lower, "stop") {
		return "00:00 - 24:00", nil
	}
	if !scheduleFormat.MatchString(trimmed) {
		return "", utils.NewBadRequestError(`invalid operating hours, expected "HH:MM - HH:MM"`)
	}
	return trimmed, nil
}

// CreateStation validates the schedule and persists a new station.
func (s *DefaultStationService) CreateStation(input CreateStationInput) (*models.Station, error) {
	schedule, err := NormalizeSchedule(input.OperatingHours)
	if err != nil {
		return nil, err
	}

	station := &models.Station{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Address:        input.Address,
		OperatingHours: schedule,
		LocationGeo:    models.NewGeoPoint(input.Latitude, input.Longitude),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(station); err != nil {
		utils.GetLogger().Error("CreateStation: failed to persist station", zap.Error(err))
		return nil, err
	}
	return station, nil
}

// GetStation fetches a single station.
func (s *DefaultStationService) GetStation(id string) (*models.Station, error) {
	station, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, utils.NewNotFoundError("station not found")
	}
	return station, nil
}

// Nearby returns stations within radiusKm, nearest first.
func (s *DefaultStationService) Nearby(lat, lon, radiusKm float64) ([]models.NearbyStation, error) {
	return s.Repo.Nearby(lat, lon, radiusKm)
}

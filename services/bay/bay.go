package bay

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	bayRepo "quickwash/database/repository/bay"
	stationRepo "quickwash/database/repository/station"
	"quickwash/models"
	"quickwash/utils"
)

// BayService defines bay management operations.
type BayService interface {
	CreateBay(stationID string, input CreateBayInput) (*models.Bay, error)
	ListBays(stationID string) ([]models.Bay, error)
	UpdateBay(stationID, bayID string, upd models.BayUpdate) (*models.Bay, error)
	DeleteBay(stationID, bayID string) error
}

// CreateBayInput carries the fields for a new bay. Zero values fall back
// to the station defaults used by the mobile client.
type CreateBayInput struct {
	Name                   string
	Price                  float64
	DefaultDurationMinutes int
	IsAvailable            *bool
}

// DefaultBayService is the production BayService.
type DefaultBayService struct {
	Repo        bayRepo.BayRepository
	StationRepo stationRepo.StationRepository
}

// CreateBay persists a new bay under an existing station.
func (s *DefaultBayService) CreateBay(stationID string, input CreateBayInput) (*models.Bay, error) {
	if _, err := s.StationRepo.GetByID(stationID); err != nil {
		return nil, utils.NewNotFoundError("station not found")
	}

	price := input.Price
	if price == 0 {
		price = 15.0
	}
	duration := input.DefaultDurationMinutes
	if duration == 0 {
		duration = 60
	}
	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	bay := &models.Bay{
		ID:                     uuid.New().String(),
		StationID:              stationID,
		Name:                   input.Name,
		Price:                  price,
		DefaultDurationMinutes: duration,
		IsAvailable:            available,
		CreatedAt:              time.Now().UTC(),
	}
	if err := s.Repo.Create(bay); err != nil {
		return nil, err
	}
	return bay, nil
}

// ListBays returns all bays of a station.
func (s *DefaultBayService) ListBays(stationID string) ([]models.Bay, error) {
	return s.Repo.ListByStation(stationID)
}

// UpdateBay patches the provided fields of a bay.
func (s *DefaultBayService) UpdateBay(stationID, bayID string, upd models.BayUpdate) (*models.Bay, error) {
	bay, err := s.Repo.GetByID(bayID)
	if err != nil || bay.StationID != stationID {
		return nil, utils.NewNotFoundError("bay not found")
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.DefaultDurationMinutes != nil {
		set["defaultDurationMinutes"] = *upd.DefaultDurationMinutes
	}
	if upd.IsAvailable != nil {
		set["isAvailable"] = *upd.IsAvailable
	}
	if len(set) > 0 {
		if err := s.Repo.UpdateWithDocument(bayID, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(bayID)
}

// DeleteBay removes a bay from a station.
func (s *DefaultBayService) DeleteBay(stationID, bayID string) error {
	bay, err := s.Repo.GetByID(bayID)
	if err != nil || bay.StationID != stationID {
		return utils.NewNotFoundError("bay not found")
	}
	return s.Repo.Delete(bayID)
}

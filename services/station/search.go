package station

import (
	"time"

	"go.uber.org/zap"

	"quickwash/models"
	"quickwash/utils"
)

// NearbyAvailability assembles the availability search response: nearby
// stations, their available bays, and each bay's free intervals over the
// horizon. Stations with no qualifying bay and bays with no qualifying
// interval are omitted. Reservations are fetched once for all stations,
// so every bay is evaluated against the same snapshot.
func (s *DefaultStationService) NearbyAvailability(lat, lon, radiusKm float64, minDurationMinutes int, horizon time.Duration) ([]models.StationAvailability, error) {
	logger := utils.GetLogger()

	stations, err := s.Repo.Nearby(lat, lon, radiusKm)
	if err != nil {
		return nil, err
	}
	if len(stations) == 0 {
		return nil, nil
	}

	windowStart := time.Now().UTC()
	windowEnd := windowStart.Add(horizon)

	stationIDs := make([]string, 0, len(stations))
	for _, st := range stations {
		stationIDs = append(stationIDs, st.ID)
	}

	bays, err := s.BayRepo.AvailableByStations(stationIDs)
	if err != nil {
		return nil, err
	}
	reservations, err := s.ReservationRepo.ActiveInWindow(stationIDs, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	baysByStation := make(map[string][]models.Bay)
	for _, b := range bays {
		baysByStation[b.StationID] = append(baysByStation[b.StationID], b)
	}
	reservationsByBay := make(map[string][]models.Reservation)
	for _, r := range reservations {
		reservationsByBay[r.BayID] = append(reservationsByBay[r.BayID], r)
	}

	var result []models.StationAvailability
	for _, st := range stations {
		var freeBays []models.AvailableBay
		for _, bay := range baysByStation[st.ID] {
			intervals := s.Engine.FreeIntervals(
				windowStart, windowEnd,
				reservationsByBay[bay.ID],
				minDurationMinutes,
				st.OperatingHours,
			)
			if len(intervals) == 0 {
				continue
			}
			freeBays = append(freeBays, models.AvailableBay{
				BayID:     bay.ID,
				Name:      bay.Name,
				Price:     bay.Price,
				Intervals: intervals,
			})
		}
		if len(freeBays) == 0 {
			continue
		}
		result = append(result, models.StationAvailability{
			StationID:      st.ID,
			Name:           st.Name,
			OperatingHours: st.OperatingHours,
			DistanceKm:     st.DistanceKm,
			Latitude:       st.LocationGeo.Latitude(),
			Longitude:      st.LocationGeo.Longitude(),
			Bays:           freeBays,
		})
	}

	logger.Debug("NearbyAvailability: search complete",
		zap.Int("stationsInRange", len(stations)),
		zap.Int("stationsWithFreeBays", len(result)))
	return result, nil
}

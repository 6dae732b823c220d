package models

import "time"

// FreeInterval is a continuous free time range within the queried window,
// long enough to fit the requested minimum duration.
type FreeInterval struct {
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	MinutesAvailable int       `json:"minutesAvailable"`
}

// AvailableBay pairs a bay with its free intervals over the horizon.
type AvailableBay struct {
	BayID     string         `json:"bayId"`
	Name      string         `json:"name"`
	Price     float64        `json:"price"`
	Intervals []FreeInterval `json:"intervals"`
}

// StationAvailability is one entry of the nearby-availability response:
// a station within range with at least one bay offering a qualifying gap.
type StationAvailability struct {
	StationID      string         `json:"stationId"`
	Name           string         `json:"name"`
	OperatingHours string         `json:"operatingHours"`
	DistanceKm     float64        `json:"distanceKm"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	Bays           []AvailableBay `json:"availableBays"`
}

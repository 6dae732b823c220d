package models

import "time"

// Bay is a single bookable washing bay within a station.
type Bay struct {
	ID                     string    `bson:"id" json:"id"`
	StationID              string    `bson:"stationId" json:"stationId"`
	Name                   string    `bson:"name" json:"name"`
	Price                  float64   `bson:"price" json:"price"`
	DefaultDurationMinutes int       `bson:"defaultDurationMinutes" json:"defaultDurationMinutes"`
	IsAvailable            bool      `bson:"isAvailable" json:"isAvailable"`
	CreatedAt              time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// BayUpdate carries the patchable bay fields; nil means "leave unchanged".
type BayUpdate struct {
	Name                   *string  `json:"name,omitempty"`
	Price                  *float64 `json:"price,omitempty"`
	DefaultDurationMinutes *int     `json:"defaultDurationMinutes,omitempty"`
	IsAvailable            *bool    `json:"isAvailable,omitempty"`
}

package models

import "time"

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from a latitude/longitude pair.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

// Latitude returns the latitude component, or 0 for a malformed point.
func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}
	return p.Coordinates[1]
}

// Longitude returns the longitude component, or 0 for a malformed point.
func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}
	return p.Coordinates[0]
}

// Station is a washing station hosting one or more bookable bays.
// OperatingHours is a free-form "HH:MM - HH:MM" string, validated at
// creation time; historical rows may still carry malformed values.
type Station struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Address        string    `bson:"address,omitempty" json:"address,omitempty"`
	OperatingHours string    `bson:"operatingHours" json:"operatingHours"`
	LocationGeo    GeoPoint  `bson:"locationGeo" json:"locationGeo"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// NearbyStation is a station enriched with the distance from the query
// point, as produced by the $geoNear aggregation.
type NearbyStation struct {
	Station    `bson:",inline"`
	DistanceKm float64 `bson:"distanceKm" json:"distanceKm"`
}

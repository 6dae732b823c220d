package stationRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"quickwash/models"
)

// Nearby runs a $geoNear aggregation returning stations within radiusKm of
// the query point, nearest first, each annotated with its distance.
func (r *MongoStationRepo) Nearby(lat, lon, radiusKm float64) ([]models.NearbyStation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// $geoNear must be the first stage; distance comes back in meters.
	pipeline := mongo.Pipeline{
		bson.D{
			{Key: "$geoNear", Value: bson.D{
				{Key: "near", Value: bson.D{
					{Key: "type", Value: "Point"},
					{Key: "coordinates", Value: []float64{lon, lat}},
				}},
				{Key: "distanceField", Value: "distanceMeters"},
				{Key: "spherical", Value: true},
				{Key: "maxDistance", Value: radiusKm * 1000},
			}},
		},
		bson.D{
			{Key: "$addFields", Value: bson.M{
				"distanceKm": bson.M{"$divide": bson.A{"$distanceMeters", 1000}},
			}},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("geo aggregation query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var stations []models.NearbyStation
	if err := cursor.All(ctx, &stations); err != nil {
		return nil, fmt.Errorf("failed to decode nearby stations: %w", err)
	}
	return stations, nil
}

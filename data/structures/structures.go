package structures

import (
	"github.com/seventv/common/mongo"
)

const (
	CollectionNameUsers        mongo.CollectionName = "users"
	CollectionNameEvents       mongo.CollectionName = "events"
	CollectionNameConnections  mongo.CollectionName = "connections"
	CollectionNameLiveSessions mongo.CollectionName = "live_sessions"
)

// GeoPoint is a GeoJSON point, stored alongside the plain lat/lng pair so a
// 2dsphere index can serve proximity queries. Coordinates are [lng, lat].
type GeoPoint struct {
	Type        string     `json:"type" bson:"type"`
	Coordinates [2]float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: [2]float64{lng, lat},
	}
}

func (p GeoPoint) Lat() float64 {
	return p.Coordinates[1]
}

func (p GeoPoint) Lng() float64 {
	return p.Coordinates[0]
}

type Location struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

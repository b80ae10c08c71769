package utils

import (
	"math"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/ridelink/tripsync/internal/pkg/models"
)

// Earth's radius in kilometers
const earthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the haversine formula.
func DistanceKm(a, b models.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// EstimateETA returns the distance and estimated time to destination.
// When the reported speed is at or below minSpeedKmh the floor speed is
// used instead, so a momentarily stationary vehicle does not produce an
// absurd arrival time.
func EstimateETA(pos, dest models.Coordinates, speedKmh, minSpeedKmh, floorSpeedKmh float64) models.ETA {
	if speedKmh <= minSpeedKmh {
		speedKmh = floorSpeedKmh
	}

	distance := DistanceKm(pos, dest)
	minutes := distance / speedKmh * 60

	return models.ETA{
		DistanceKm:  distance,
		Minutes:     minutes,
		ArrivalTime: time.Now().Add(time.Duration(minutes * float64(time.Minute))),
	}
}

// EncodePosition converts coordinates to a geohash string
func EncodePosition(c models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodePosition converts a geohash string back to coordinates
func DecodePosition(hash string) models.Coordinates {
	lat, lng := geohash.Decode(hash)
	return models.Coordinates{Latitude: lat, Longitude: lng}
}

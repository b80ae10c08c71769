package models

import "time"

// Coordinates is a geographic point
type Coordinates struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Valid reports whether the coordinates are within range
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Location is a coordinate pair with an optional street address
type Location struct {
	Coordinates
	Address string `json:"address,omitempty" db:"address"`
}

// PositionSample is the latest reported position of a trip's vehicle.
// Ephemeral: each sample supersedes the previous one, no history is kept.
type PositionSample struct {
	TripID      string      `json:"trip_id"`
	Coordinates Coordinates `json:"coordinates"`
	SpeedKmh    float64     `json:"speed_kmh"`
	Heading     float64     `json:"heading"`
	Timestamp   time.Time   `json:"timestamp"`
}

// ETA is an arrival estimate derived from a position sample
type ETA struct {
	DistanceKm  float64   `json:"distance_km"`
	Minutes     float64   `json:"minutes"`
	ArrivalTime time.Time `json:"arrival_time"`
}

// PositionBroadcast is the trip-room payload for a position update
type PositionBroadcast struct {
	TripID      string      `json:"trip_id"`
	DriverID    string      `json:"driver_id"`
	Coordinates Coordinates `json:"coordinates"`
	SpeedKmh    float64     `json:"speed_kmh"`
	Heading     float64     `json:"heading"`
	Timestamp   time.Time   `json:"timestamp"`
	ETA         *ETA        `json:"eta,omitempty"`
}

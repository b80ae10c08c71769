package models

import "time"

// TripStatus represents the lifecycle state of a trip
type TripStatus string

const (
	TripStatusScheduled  TripStatus = "SCHEDULED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

// tripTransitions is the authoritative transition table. Any pair not
// listed here is an invalid transition.
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusScheduled:  {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress: {TripStatusCompleted},
}

// CanTransitionTrip reports whether a trip may move from one status to another
func CanTransitionTrip(from, to TripStatus) bool {
	for _, next := range tripTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Trip represents a published trip with a bounded seat inventory
type Trip struct {
	ID             string     `json:"id" db:"id"`
	DriverID       string     `json:"driver_id" db:"driver_id"`
	Origin         Location   `json:"origin"`
	Destination    Location   `json:"destination"`
	DepartureAt    time.Time  `json:"departure_at" db:"departure_at"`
	SeatsTotal     int        `json:"seats_total" db:"seats_total"`
	SeatsAvailable int        `json:"seats_available" db:"seats_available"`
	AutoAccept     bool       `json:"auto_accept" db:"auto_accept"`
	Status         TripStatus `json:"status" db:"status"`
	StartedAt      *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// Started reports whether the trip has left the SCHEDULED state in a way
// that forfeits seat returns (seats are never refunded mid-trip or after).
func (t *Trip) Started() bool {
	return t.Status == TripStatusInProgress || t.Status == TripStatusCompleted
}

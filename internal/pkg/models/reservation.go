package models

import "time"

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusRejected  ReservationStatus = "REJECTED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusRejected},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusCancelled},
}

// CanTransitionReservation reports whether a reservation may move between states
func CanTransitionReservation(from, to ReservationStatus) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Holding reports whether the status counts against the trip's seat inventory
func (s ReservationStatus) Holding() bool {
	return s == ReservationStatusPending || s == ReservationStatusConfirmed
}

// Terminal reports whether the status admits no further transitions
func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusRejected ||
		s == ReservationStatusCompleted ||
		s == ReservationStatusCancelled
}

// Reservation is a rider's claim on seats of a trip.
// Seats is immutable after creation; changing quantity means cancelling
// and reserving again.
type Reservation struct {
	ID           string            `json:"id" db:"id"`
	TripID       string            `json:"trip_id" db:"trip_id"`
	PassengerID  string            `json:"passenger_id" db:"passenger_id"`
	Seats        int               `json:"seats" db:"seats"`
	Pickup       Location          `json:"pickup"`
	Dropoff      Location          `json:"dropoff"`
	Status       ReservationStatus `json:"status" db:"status"`
	CancelReason string            `json:"cancel_reason,omitempty" db:"cancel_reason"`
	PickedUpAt   *time.Time        `json:"picked_up_at,omitempty" db:"picked_up_at"`
	DroppedOffAt *time.Time        `json:"dropped_off_at,omitempty" db:"dropped_off_at"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
}

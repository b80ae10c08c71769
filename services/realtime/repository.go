package realtime

import (
	"context"
	"time"

	"github.com/ridelink/tripsync/internal/pkg/models"
)

// TripRepo defines trip data access. Seat mutations are guarded at the
// storage level as well: ReserveSeats only decrements when enough seats
// remain, ReleaseSeats clamps at the trip's total.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridelink/tripsync/services/realtime TripRepo,ReservationRepo,AlertRepo,ConversationRepo,PresenceRepo
type TripRepo interface {
	GetTrip(ctx context.Context, id string) (*models.Trip, error)
	// UpdateTripStatus transitions the status with a compare-and-swap on
	// the expected current status; a lost race returns ErrInvalidTripState.
	UpdateTripStatus(ctx context.Context, id string, from, to models.TripStatus) error
	// ReserveSeats atomically decrements seats_available by qty and
	// returns the new value, or ErrInsufficientSeats.
	ReserveSeats(ctx context.Context, tripID string, qty int) (int, error)
	// ReleaseSeats atomically increments seats_available by qty, clamped
	// at seats_total. Reports the new value and whether clamping occurred.
	ReleaseSeats(ctx context.Context, tripID string, qty int) (newAvailable int, clamped bool, err error)
}

// ReservationRepo defines reservation data access
type ReservationRepo interface {
	CreateReservation(ctx context.Context, r *models.Reservation) error
	GetReservation(ctx context.Context, id string) (*models.Reservation, error)
	// UpdateReservationStatus is a compare-and-swap on the expected current
	// status; a lost race returns ErrInvalidReservationState.
	UpdateReservationStatus(ctx context.Context, id string, from, to models.ReservationStatus, reason string) error
	ListByTripAndStatus(ctx context.Context, tripID string, statuses ...models.ReservationStatus) ([]*models.Reservation, error)
	MarkPickedUp(ctx context.Context, id string, at time.Time) error
	MarkDroppedOff(ctx context.Context, id string, at time.Time) error
}

// AlertRepo defines emergency alert data access
type AlertRepo interface {
	CreateAlert(ctx context.Context, alert *models.EmergencyAlert) error
	GetAlert(ctx context.Context, id string) (*models.EmergencyAlert, error)
	UpdateAlertStatus(ctx context.Context, id string, from, to models.AlertStatus, resolvedBy, resolution string) error
}

// ConversationRepo defines conversation membership lookups and message writes
type ConversationRepo interface {
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)
	Members(ctx context.Context, conversationID string) ([]string, error)
	CreateMessage(ctx context.Context, msg *models.Message) error
}

// PresenceRepo persists the ephemeral presence side state: last-seen
// timestamps and the latest position sample per trip
type PresenceRepo interface {
	SetLastSeen(ctx context.Context, userID string, at time.Time) error
	// GetLastSeen returns the user's last-seen timestamp, or ErrNotFound
	// when the identity has never disconnected cleanly.
	GetLastSeen(ctx context.Context, userID string) (time.Time, error)
	SetTripPosition(ctx context.Context, sample *models.PositionSample) error
	GetTripPosition(ctx context.Context, tripID string) (*models.PositionSample, error)
}

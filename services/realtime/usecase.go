package realtime

import (
	"context"

	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime/rooms"
)

// RealtimeUC defines the coordination business logic. Every method
// validates, authorizes, persists through the storage collaborator, and
// only then fans the resulting event out - a broadcast never precedes a
// committed state change.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridelink/tripsync/services/realtime RealtimeUC
type RealtimeUC interface {
	// CanJoin re-derives room authorization; consulted by the room router
	// on every join.
	CanJoin(ctx context.Context, room rooms.Room, actor models.Actor) error

	// Connection lifecycle hooks. HandlePresenceChange broadcasts the
	// presence flip and, on offline, persists the last-seen timestamp
	// (fire and forget).
	HandlePresenceChange(userID string, online bool)

	// Chat. excludeConnID is the sender's connection, excluded from the
	// room broadcast (the acknowledgement already carries the message).
	SendChatMessage(ctx context.Context, actor models.Actor, req *models.SendMessageRequest, excludeConnID string) (*models.Message, error)

	// Reservations
	CreateReservation(ctx context.Context, actor models.Actor, req *models.CreateReservationRequest) (*models.Reservation, error)
	ConfirmReservation(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error)
	RejectReservation(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error)
	CancelReservation(ctx context.Context, actor models.Actor, reservationID, reason string) (*models.Reservation, error)

	// Trip lifecycle
	StartTrip(ctx context.Context, actor models.Actor, tripID string) (*models.Trip, error)
	CompleteTrip(ctx context.Context, actor models.Actor, tripID string) (*models.Trip, error)
	CancelTrip(ctx context.Context, actor models.Actor, tripID, reason string) (*models.Trip, error)
	ConfirmPickup(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error)
	ConfirmDropoff(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error)

	// Position pipeline
	UpdatePosition(ctx context.Context, actor models.Actor, req *models.PositionUpdateRequest, excludeConnID string) (*models.PositionBroadcast, error)

	// Emergency alerts
	TriggerAlert(ctx context.Context, actor models.Actor, req *models.TriggerAlertRequest) (*models.EmergencyAlert, error)
	ResolveAlert(ctx context.Context, actor models.Actor, req *models.ResolveAlertRequest) (*models.EmergencyAlert, error)
	EscalateAlert(ctx context.Context, actor models.Actor, alertID string) (*models.EmergencyAlert, error)

	// Read-side lookups for the HTTP boundary
	GetTrip(ctx context.Context, id string) (*models.Trip, error)
	GetAlert(ctx context.Context, id string) (*models.EmergencyAlert, error)
	GetTripPosition(ctx context.Context, tripID string) (*models.PositionSample, error)
	GetUserPresence(ctx context.Context, userID string) (*models.UserPresence, error)
}

package realtime

import (
	"context"

	"github.com/ridelink/tripsync/internal/pkg/models"
)

// NotifyGW is the out-of-band notification collaborator. It is reached
// only for identities with no live connection; delivery is best effort
// and failures never fail the triggering operation.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ridelink/tripsync/services/realtime NotifyGW,Broadcaster,PresenceIndex
type NotifyGW interface {
	PushOffline(ctx context.Context, userID, event string, payload interface{}) error
	PushEmergency(ctx context.Context, userID string, alert *models.EmergencyAlert) error
}

// Broadcaster fans an event out to the current members of a room.
// Returns the number of connections the event was handed to.
type Broadcaster interface {
	Broadcast(roomID, event string, payload interface{}, excludeConnID string) int
}

// PresenceIndex answers whether an identity has at least one live connection
type PresenceIndex interface {
	IsOnline(userID string) bool
}

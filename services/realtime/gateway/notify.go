package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/models"
	natspkg "github.com/ridelink/tripsync/internal/pkg/nats"
)

// NotifyGW publishes out-of-band notifications to NATS. Downstream
// push/email workers consume the subjects; this service only produces.
type NotifyGW struct {
	nc *natspkg.Client
}

// NewNotifyGW creates a NATS-backed notification gateway
func NewNotifyGW(nc *natspkg.Client) *NotifyGW {
	return &NotifyGW{nc: nc}
}

// pushEnvelope is the wire format consumed by the notification workers
type pushEnvelope struct {
	UserID    string      `json:"user_id"`
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// PushOffline queues a push notification for an identity with no live
// connection
func (g *NotifyGW) PushOffline(_ context.Context, userID, event string, payload interface{}) error {
	data, err := json.Marshal(pushEnvelope{
		UserID:    userID,
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push notification: %w", err)
	}
	return g.nc.Publish(constants.SubjectNotifyPush, data)
}

// emergencyEnvelope carries the full alert so workers can escalate to
// SMS/voice without a read back
type emergencyEnvelope struct {
	UserID    string                 `json:"user_id"`
	Alert     *models.EmergencyAlert `json:"alert"`
	Timestamp time.Time              `json:"timestamp"`
}

// PushEmergency queues an emergency notification for an offline participant
func (g *NotifyGW) PushEmergency(_ context.Context, userID string, alert *models.EmergencyAlert) error {
	data, err := json.Marshal(emergencyEnvelope{
		UserID:    userID,
		Alert:     alert,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal emergency notification: %w", err)
	}
	return g.nc.Publish(constants.SubjectNotifyEmergency, data)
}

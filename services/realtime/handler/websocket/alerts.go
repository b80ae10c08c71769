package websocket

import (
	"context"
	"encoding/json"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/models"
	wspkg "github.com/ridelink/tripsync/internal/pkg/websocket"
	"github.com/ridelink/tripsync/services/realtime"
)

// handleEmergencyTrigger processes emergency alert triggers
func (h *WSHandler) handleEmergencyTrigger(client *wspkg.Client, data json.RawMessage) error {
	var req models.TriggerAlertRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	alert, err := h.uc.TriggerAlert(context.Background(), client.Identity(), &req)
	if err != nil {
		return err
	}
	return client.Send(constants.EventEmergencyAlert, alert)
}

// handleEmergencyEscalate moves an active alert into IN_PROGRESS
// handling. Moderator/admin connections only; the use case enforces it.
func (h *WSHandler) handleEmergencyEscalate(client *wspkg.Client, data json.RawMessage) error {
	var req models.EscalateAlertRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	alert, err := h.uc.EscalateAlert(context.Background(), client.Identity(), req.AlertID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventEmergencyAlert, alert)
}

// handleEmergencyResolve processes alert resolutions
func (h *WSHandler) handleEmergencyResolve(client *wspkg.Client, data json.RawMessage) error {
	var req models.ResolveAlertRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	alert, err := h.uc.ResolveAlert(context.Background(), client.Identity(), &req)
	if err != nil {
		return err
	}
	return client.Send(constants.EventEmergencyResolved, alert)
}

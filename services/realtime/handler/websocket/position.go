package websocket

import (
	"context"
	"encoding/json"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/models"
	wspkg "github.com/ridelink/tripsync/internal/pkg/websocket"
	"github.com/ridelink/tripsync/services/realtime"
)

// handlePositionUpdate processes driver position samples. The trip room
// broadcast excludes the reporting connection; the acknowledgement
// returns the enriched sample (with ETA) to the driver instead.
func (h *WSHandler) handlePositionUpdate(client *wspkg.Client, data json.RawMessage) error {
	var req models.PositionUpdateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	broadcast, err := h.uc.UpdatePosition(context.Background(), client.Identity(), &req, client.ConnID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventPositionUpdate, broadcast)
}

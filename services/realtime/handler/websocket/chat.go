package websocket

import (
	"context"
	"encoding/json"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/models"
	wspkg "github.com/ridelink/tripsync/internal/pkg/websocket"
	"github.com/ridelink/tripsync/services/realtime"
)

// handleMessageSend persists a chat message and acknowledges it to the
// sender. The room broadcast excludes the sender's connection since the
// acknowledgement already carries the stored message.
func (h *WSHandler) handleMessageSend(client *wspkg.Client, data json.RawMessage) error {
	var req models.SendMessageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	msg, err := h.uc.SendChatMessage(context.Background(), client.Identity(), &req, client.ConnID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventMessageNew, msg)
}

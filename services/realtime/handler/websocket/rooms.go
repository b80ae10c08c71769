package websocket

import (
	"context"
	"encoding/json"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/models"
	wspkg "github.com/ridelink/tripsync/internal/pkg/websocket"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/rooms"
)

// handleRoomJoin processes explicit room join requests. Authorization is
// re-derived inside the router on every join.
func (h *WSHandler) handleRoomJoin(client *wspkg.Client, data json.RawMessage) error {
	var req models.RoomRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	room, err := rooms.ParseRoomID(req.RoomID)
	if err != nil {
		return realtime.ErrValidation
	}

	if err := h.rooms.Join(context.Background(), room, client); err != nil {
		return err
	}
	return client.Send(constants.EventRoomJoined, models.RoomRequest{RoomID: room.ID()})
}

// handleRoomLeave processes room leave requests. Leaving is always
// permitted, including rooms the connection never joined.
func (h *WSHandler) handleRoomLeave(client *wspkg.Client, data json.RawMessage) error {
	var req models.RoomRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	room, err := rooms.ParseRoomID(req.RoomID)
	if err != nil {
		return realtime.ErrValidation
	}

	h.rooms.Leave(room.ID(), client.ConnID)
	return client.Send(constants.EventRoomLeft, models.RoomRequest{RoomID: room.ID()})
}

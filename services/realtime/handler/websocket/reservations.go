package websocket

import (
	"context"
	"encoding/json"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/models"
	wspkg "github.com/ridelink/tripsync/internal/pkg/websocket"
	"github.com/ridelink/tripsync/services/realtime"
)

// handleReservationCreate processes seat reservation requests from riders
func (h *WSHandler) handleReservationCreate(client *wspkg.Client, data json.RawMessage) error {
	var req models.CreateReservationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	res, err := h.uc.CreateReservation(context.Background(), client.Identity(), &req)
	if err != nil {
		return err
	}
	return client.Send(constants.EventReservationCreated, res)
}

// handleReservationConfirm processes confirmations from the trip's driver
func (h *WSHandler) handleReservationConfirm(client *wspkg.Client, data json.RawMessage) error {
	var req models.ReservationActionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	res, err := h.uc.ConfirmReservation(context.Background(), client.Identity(), req.ReservationID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventReservationConfirmed, res)
}

// handleReservationReject processes rejections from the trip's driver
func (h *WSHandler) handleReservationReject(client *wspkg.Client, data json.RawMessage) error {
	var req models.ReservationActionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	res, err := h.uc.RejectReservation(context.Background(), client.Identity(), req.ReservationID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventReservationRejected, res)
}

// handleReservationCancel processes cancellations from either side
func (h *WSHandler) handleReservationCancel(client *wspkg.Client, data json.RawMessage) error {
	var req models.ReservationActionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	res, err := h.uc.CancelReservation(context.Background(), client.Identity(), req.ReservationID, req.Reason)
	if err != nil {
		return err
	}
	return client.Send(constants.EventReservationCancelled, res)
}

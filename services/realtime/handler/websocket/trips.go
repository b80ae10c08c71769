package websocket

import (
	"context"
	"encoding/json"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/models"
	wspkg "github.com/ridelink/tripsync/internal/pkg/websocket"
	"github.com/ridelink/tripsync/services/realtime"
)

// handleTripStart processes trip start requests from the driver
func (h *WSHandler) handleTripStart(client *wspkg.Client, data json.RawMessage) error {
	var req models.TripActionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	trip, err := h.uc.StartTrip(context.Background(), client.Identity(), req.TripID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventTripStarted, trip)
}

// handleTripComplete processes trip completion requests from the driver
func (h *WSHandler) handleTripComplete(client *wspkg.Client, data json.RawMessage) error {
	var req models.TripActionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	trip, err := h.uc.CompleteTrip(context.Background(), client.Identity(), req.TripID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventTripCompleted, trip)
}

// handleTripCancel processes cancellations. A driver cancels the whole
// trip; a rider's request resolves to cancelling their own reservation.
func (h *WSHandler) handleTripCancel(client *wspkg.Client, data json.RawMessage) error {
	var req models.TripActionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	trip, err := h.uc.CancelTrip(context.Background(), client.Identity(), req.TripID, req.Reason)
	if err != nil {
		return err
	}
	return client.Send(constants.EventTripCancelled, trip)
}

// handlePickupConfirm records a rider boarding
func (h *WSHandler) handlePickupConfirm(client *wspkg.Client, data json.RawMessage) error {
	var req models.ReservationActionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	res, err := h.uc.ConfirmPickup(context.Background(), client.Identity(), req.ReservationID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventPickup, res)
}

// handleDropoffConfirm records a rider leaving the vehicle and completes
// their reservation
func (h *WSHandler) handleDropoffConfirm(client *wspkg.Client, data json.RawMessage) error {
	var req models.ReservationActionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return realtime.ErrValidation
	}

	res, err := h.uc.ConfirmDropoff(context.Background(), client.Identity(), req.ReservationID)
	if err != nil {
		return err
	}
	return client.Send(constants.EventDropoff, res)
}

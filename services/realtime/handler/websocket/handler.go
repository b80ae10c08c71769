package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"

	gws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/logger"
	wspkg "github.com/ridelink/tripsync/internal/pkg/websocket"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/presence"
	"github.com/ridelink/tripsync/services/realtime/rooms"
)

// WSHandler owns the per-connection protocol loop: it reads frames,
// dispatches them to the use case, and acknowledges or reports errors
// back on the same connection. Fan-out to other connections happens in
// the use case, never here.
type WSHandler struct {
	manager  *wspkg.Manager
	uc       realtime.RealtimeUC
	rooms    *rooms.Router
	presence *presence.Registry
}

// NewWSHandler creates a new WebSocket handler
func NewWSHandler(
	manager *wspkg.Manager,
	uc realtime.RealtimeUC,
	router *rooms.Router,
	registry *presence.Registry,
) *WSHandler {
	return &WSHandler{
		manager:  manager,
		uc:       uc,
		rooms:    router,
		presence: registry,
	}
}

// HandleWebSocket authenticates and upgrades the request, then serves
// the connection until it closes
func (h *WSHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

// serveClient runs one connection's lifetime: presence registration,
// auto-join of the identity's personal room, then the read loop.
// Teardown always unwinds room membership before presence so a
// departing connection can never receive a frame after it stopped
// counting as online.
func (h *WSHandler) serveClient(client *wspkg.Client) error {
	if _, err := h.presence.MarkConnected(client.UserID, client.ConnID); err != nil {
		_ = h.manager.SendError(client, constants.ErrCodeTooManyConnections, err.Error())
		return err
	}
	defer func() {
		h.rooms.LeaveAll(client.ConnID)
		h.presence.MarkDisconnected(client.UserID, client.ConnID)
	}()

	// Every identity is implicitly a member of its own inbox room so
	// directed events reach it without an explicit join.
	if err := h.rooms.Join(context.Background(), rooms.UserRoom(client.UserID), client); err != nil {
		logger.Error("Failed to join personal room",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		return err
	}

	logger.Info("WebSocket client connected",
		logger.String("conn_id", client.ConnID),
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		msg, err := client.ReadMessage()
		if err != nil {
			if !isExpectedClose(err) {
				logger.Debug("WebSocket read failed",
					logger.String("conn_id", client.ConnID),
					logger.Err(err))
			}
			return nil
		}
		if err := h.dispatch(client, msg.Event, msg.Data); err != nil {
			h.sendDomainError(client, err)
		}
	}
}

// dispatch routes an inbound frame to its event handler. Unknown events
// are validation errors, not protocol violations: the connection stays up.
func (h *WSHandler) dispatch(client *wspkg.Client, event string, data json.RawMessage) error {
	switch event {
	case constants.EventPing:
		return client.Send(constants.EventPong, nil)
	case constants.EventRoomJoin:
		return h.handleRoomJoin(client, data)
	case constants.EventRoomLeave:
		return h.handleRoomLeave(client, data)
	case constants.EventMessageSend:
		return h.handleMessageSend(client, data)
	case constants.EventReservationCreate:
		return h.handleReservationCreate(client, data)
	case constants.EventReservationConfirm:
		return h.handleReservationConfirm(client, data)
	case constants.EventReservationReject:
		return h.handleReservationReject(client, data)
	case constants.EventReservationCancel:
		return h.handleReservationCancel(client, data)
	case constants.EventTripStart:
		return h.handleTripStart(client, data)
	case constants.EventTripComplete:
		return h.handleTripComplete(client, data)
	case constants.EventTripCancel:
		return h.handleTripCancel(client, data)
	case constants.EventPickupConfirm:
		return h.handlePickupConfirm(client, data)
	case constants.EventDropoffConfirm:
		return h.handleDropoffConfirm(client, data)
	case constants.EventPositionUpdate:
		return h.handlePositionUpdate(client, data)
	case constants.EventEmergencyTrigger:
		return h.handleEmergencyTrigger(client, data)
	case constants.EventEmergencyResolve:
		return h.handleEmergencyResolve(client, data)
	case constants.EventEmergencyEscalate:
		return h.handleEmergencyEscalate(client, data)
	default:
		return realtime.ErrValidation
	}
}

// sendDomainError translates a domain error onto the wire. Anything not
// recognized is reported as INTERNAL_ERROR with a generic message so
// storage details never leak to clients.
func (h *WSHandler) sendDomainError(client *wspkg.Client, err error) {
	code := errorCode(err)
	message := err.Error()
	if code == constants.ErrCodeInternal {
		logger.Error("Unhandled error in WebSocket dispatch",
			logger.String("conn_id", client.ConnID),
			logger.String("user_id", client.UserID),
			logger.Err(err))
		message = "internal error"
	}
	_ = h.manager.SendError(client, code, message)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, realtime.ErrValidation):
		return constants.ErrCodeValidation
	case errors.Is(err, realtime.ErrForbidden):
		return constants.ErrCodeForbidden
	case errors.Is(err, realtime.ErrNotFound):
		return constants.ErrCodeNotFound
	case errors.Is(err, realtime.ErrInsufficientSeats):
		return constants.ErrCodeInsufficientSeats
	case errors.Is(err, realtime.ErrTooManyConnections):
		return constants.ErrCodeTooManyConnections
	case errors.Is(err, realtime.ErrInvalidTripState),
		errors.Is(err, realtime.ErrInvalidReservationState),
		errors.Is(err, realtime.ErrInvalidAlertState):
		return constants.ErrCodeInvalidState
	}
	return constants.ErrCodeInternal
}

func isExpectedClose(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return websocketIsCloseError(err)
}

func websocketIsCloseError(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	return gws.IsCloseError(err,
		gws.CloseNormalClosure,
		gws.CloseGoingAway,
		gws.CloseNoStatusReceived)
}

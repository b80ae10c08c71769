package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// WSMessage represents a WebSocket frame
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error frame sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClaims are the token claims attached to a connection
type WebSocketClaims struct {
	UserID        string `json:"user_id"`
	Role          string `json:"role"`
	AccountStatus string `json:"account_status"`
	jwt.RegisteredClaims
}

// RoomRequest is the payload of room:join and room:leave
type RoomRequest struct {
	RoomID string `json:"roomId"`
}

// SendMessageRequest is the payload of message:send
type SendMessageRequest struct {
	RoomID         string      `json:"roomId"`
	DestinataireID string      `json:"destinataireId,omitempty"`
	Content        string      `json:"content"`
	Type           MessageType `json:"type"`
}

// CreateReservationRequest is the payload of reservation:create
type CreateReservationRequest struct {
	TripID  string   `json:"tripId"`
	Seats   int      `json:"seats"`
	Pickup  Location `json:"pickup"`
	Dropoff Location `json:"dropoff"`
}

// ReservationActionRequest is the payload of reservation:confirm|reject|cancel
// and of pickup:confirm|dropoff:confirm
type ReservationActionRequest struct {
	ReservationID string `json:"reservationId"`
	Reason        string `json:"reason,omitempty"`
}

// TripActionRequest is the payload of trip:start|complete|cancel
type TripActionRequest struct {
	TripID string `json:"tripId"`
	Reason string `json:"reason,omitempty"`
}

// PositionUpdateRequest is the payload of position:update
type PositionUpdateRequest struct {
	TripID      string      `json:"tripId"`
	Coordinates Coordinates `json:"coordinates"`
	SpeedKmh    float64     `json:"speed"`
	Heading     float64     `json:"heading"`
}

// TriggerAlertRequest is the payload of emergency:trigger
type TriggerAlertRequest struct {
	TripID      string        `json:"tripId,omitempty"`
	Type        string        `json:"type"`
	Description string        `json:"description"`
	Position    Coordinates   `json:"position"`
	Severity    AlertSeverity `json:"severity"`
}

// EscalateAlertRequest is the payload of emergency:escalate
type EscalateAlertRequest struct {
	AlertID string `json:"alertId"`
}

// ResolveAlertRequest is the payload of emergency:resolve
type ResolveAlertRequest struct {
	AlertID    string `json:"alertId"`
	Comment    string `json:"comment,omitempty"`
	FalseAlarm bool   `json:"falseAlarm,omitempty"`
}

// PresenceUpdate is broadcast when an identity's online status flips
type PresenceUpdate struct {
	UserID string `json:"identityId"`
	Online bool   `json:"online"`
}

package constants

// Inbound WebSocket event types (client -> server)
const (
	EventRoomJoin           = "room:join"
	EventRoomLeave          = "room:leave"
	EventMessageSend        = "message:send"
	EventReservationCreate  = "reservation:create"
	EventReservationConfirm = "reservation:confirm"
	EventReservationReject  = "reservation:reject"
	EventReservationCancel  = "reservation:cancel"
	EventTripStart          = "trip:start"
	EventTripComplete       = "trip:complete"
	EventTripCancel         = "trip:cancel"
	EventPositionUpdate     = "position:update"
	EventPickupConfirm      = "pickup:confirm"
	EventDropoffConfirm     = "dropoff:confirm"
	EventEmergencyTrigger   = "emergency:trigger"
	EventEmergencyResolve   = "emergency:resolve"
	EventEmergencyEscalate  = "emergency:escalate"
	EventPing               = "ping"
)

// Outbound WebSocket event types (server -> client)
const (
	EventError                = "error"
	EventPong                 = "pong"
	EventRoomJoined           = "room:joined"
	EventRoomLeft             = "room:left"
	EventMessageNew           = "message:new"
	EventReservationCreated   = "reservation:created"
	EventReservationConfirmed = "reservation:confirmed"
	EventReservationRejected  = "reservation:rejected"
	EventReservationCancelled = "reservation:cancelled"
	EventTripStarted          = "trip:started"
	EventTripCompleted        = "trip:completed"
	EventTripCancelled        = "trip:cancelled"
	EventPickup               = "pickup:event"
	EventDropoff              = "dropoff:event"
	EventEmergencyAlert       = "emergency:alert"
	EventEmergencyResolved    = "emergency:resolved"
	EventPresenceUpdate       = "presence:update"
)

// Acknowledgement error codes
const (
	ErrCodeAuthFailed         = "AUTH_FAILED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInvalidState       = "INVALID_STATE"
	ErrCodeInsufficientSeats  = "INSUFFICIENT_SEATS"
	ErrCodeTooManyConnections = "TOO_MANY_CONNECTIONS"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

package realtime

import "errors"

// Domain errors. The websocket handler maps these onto acknowledgement
// error codes; anything unrecognized becomes INTERNAL_ERROR.
var (
	ErrForbidden               = errors.New("actor is not allowed to perform this operation")
	ErrNotFound                = errors.New("entity not found")
	ErrInvalidTripState        = errors.New("operation not legal in the trip's current state")
	ErrInvalidReservationState = errors.New("operation not legal in the reservation's current state")
	ErrInvalidAlertState       = errors.New("operation not legal in the alert's current state")
	ErrInsufficientSeats       = errors.New("not enough seats available")
	ErrTooManyConnections      = errors.New("connection limit reached for identity")
	ErrValidation              = errors.New("invalid request payload")
)

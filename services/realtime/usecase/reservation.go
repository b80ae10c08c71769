package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/logger"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/internal/pkg/observability"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/rooms"
)

// CreateReservation claims seats on a trip. Seats are reserved before
// the reservation row exists; a failed insert releases them again so
// the inventory is never leaked.
func (uc *realtimeUC) CreateReservation(ctx context.Context, actor models.Actor, req *models.CreateReservationRequest) (*models.Reservation, error) {
	if req.TripID == "" || req.Seats <= 0 {
		return nil, realtime.ErrValidation
	}

	trip, err := uc.trips.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusScheduled {
		return nil, realtime.ErrInvalidTripState
	}
	if trip.DriverID == actor.ID {
		return nil, realtime.ErrForbidden
	}

	if _, err := uc.seats.Reserve(ctx, req.TripID, req.Seats); err != nil {
		observability.ReservationsTotal.WithLabelValues("insufficient_seats").Inc()
		return nil, err
	}

	now := time.Now()
	res := &models.Reservation{
		ID:          uuid.NewString(),
		TripID:      req.TripID,
		PassengerID: actor.ID,
		Seats:       req.Seats,
		Pickup:      req.Pickup,
		Dropoff:     req.Dropoff,
		Status:      models.ReservationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.reservations.CreateReservation(ctx, res); err != nil {
		if _, relErr := uc.seats.Release(ctx, req.TripID, req.Seats); relErr != nil {
			logger.Error("Failed to release seats after create failure",
				logger.String("trip_id", req.TripID),
				logger.Err(relErr))
		}
		return nil, err
	}

	if trip.AutoAccept {
		if err := uc.reservations.UpdateReservationStatus(ctx, res.ID,
			models.ReservationStatusPending, models.ReservationStatusConfirmed, ""); err == nil {
			res.Status = models.ReservationStatusConfirmed
		} else {
			logger.Warn("Auto-accept transition failed, reservation stays pending",
				logger.String("reservation_id", res.ID),
				logger.Err(err))
		}
	}

	observability.ReservationsTotal.WithLabelValues("created").Inc()

	uc.rooms.Broadcast(rooms.TripRoom(trip.ID).ID(), constants.EventReservationCreated, res, "")
	uc.rooms.Broadcast(rooms.UserRoom(trip.DriverID).ID(), constants.EventReservationCreated, res, "")
	uc.notifyIfOffline(ctx, trip.DriverID, constants.EventReservationCreated, res)

	if res.Status == models.ReservationStatusConfirmed {
		uc.rooms.Broadcast(rooms.UserRoom(actor.ID).ID(), constants.EventReservationConfirmed, res, "")
	}

	return res, nil
}

// ConfirmReservation is the driver accepting a pending reservation
func (uc *realtimeUC) ConfirmReservation(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error) {
	return uc.transitionReservation(ctx, actor, reservationID,
		models.ReservationStatusConfirmed, "", constants.EventReservationConfirmed)
}

// RejectReservation is the driver declining a pending reservation.
// The held seats return to the trip's inventory.
func (uc *realtimeUC) RejectReservation(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error) {
	return uc.transitionReservation(ctx, actor, reservationID,
		models.ReservationStatusRejected, "", constants.EventReservationRejected)
}

// CancelReservation cancels a confirmed reservation; either party may
// invoke it pre-trip-start. A pending reservation cannot be cancelled,
// only confirmed or rejected. Seats return to the inventory only while
// the trip has not started.
func (uc *realtimeUC) CancelReservation(ctx context.Context, actor models.Actor, reservationID, reason string) (*models.Reservation, error) {
	return uc.transitionReservation(ctx, actor, reservationID,
		models.ReservationStatusCancelled, reason, constants.EventReservationCancelled)
}

// transitionReservation drives a single transition through the state
// table: load, authorize, compare-and-swap, then seat side effects and
// fan-out. A racing transition loses the CAS and surfaces as
// ErrInvalidReservationState.
func (uc *realtimeUC) transitionReservation(ctx context.Context, actor models.Actor, reservationID string, to models.ReservationStatus, reason, event string) (*models.Reservation, error) {
	res, err := uc.reservations.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransitionReservation(res.Status, to) {
		return nil, realtime.ErrInvalidReservationState
	}

	trip, err := uc.trips.GetTrip(ctx, res.TripID)
	if err != nil {
		return nil, err
	}
	if err := authorizeReservationTransition(actor, trip, res, to); err != nil {
		return nil, err
	}

	from := res.Status
	if err := uc.reservations.UpdateReservationStatus(ctx, reservationID, from, to, reason); err != nil {
		return nil, err
	}
	res.Status = to
	res.CancelReason = reason
	res.UpdatedAt = time.Now()

	// Seats go back on reject/cancel, but never once the trip has
	// started: a seat on a moving vehicle is not resellable.
	if (to == models.ReservationStatusRejected || to == models.ReservationStatusCancelled) && !trip.Started() {
		if _, err := uc.seats.Release(ctx, res.TripID, res.Seats); err != nil {
			logger.Error("Seat release failed after reservation transition",
				logger.String("reservation_id", reservationID),
				logger.Err(err))
		}
	}

	observability.ReservationsTotal.WithLabelValues(string(to)).Inc()

	uc.rooms.Broadcast(rooms.TripRoom(res.TripID).ID(), event, res, "")
	uc.rooms.Broadcast(rooms.UserRoom(res.PassengerID).ID(), event, res, "")
	if actor.ID != res.PassengerID {
		uc.notifyIfOffline(ctx, res.PassengerID, event, res)
	} else {
		uc.rooms.Broadcast(rooms.UserRoom(trip.DriverID).ID(), event, res, "")
		uc.notifyIfOffline(ctx, trip.DriverID, event, res)
	}

	return res, nil
}

// authorizeReservationTransition encodes who may drive which transition:
// confirm/reject are the driver's, cancel belongs to the rider always
// and to the driver for confirmed reservations.
func authorizeReservationTransition(actor models.Actor, trip *models.Trip, res *models.Reservation, to models.ReservationStatus) error {
	switch to {
	case models.ReservationStatusConfirmed, models.ReservationStatusRejected:
		if actor.ID != trip.DriverID {
			return realtime.ErrForbidden
		}
	case models.ReservationStatusCancelled:
		// only reachable from CONFIRMED; a pending reservation is
		// withdrawn through the driver's reject
		if actor.ID != res.PassengerID && actor.ID != trip.DriverID {
			return realtime.ErrForbidden
		}
	case models.ReservationStatusCompleted:
		if actor.ID != trip.DriverID {
			return realtime.ErrForbidden
		}
	default:
		return realtime.ErrInvalidReservationState
	}
	return nil
}

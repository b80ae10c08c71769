package usecase

import (
	"context"
	"time"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/logger"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/rooms"
)

// StartTrip moves a scheduled trip to IN_PROGRESS. Driver only. The
// confirmed-reservation list is snapshotted at start time so everyone
// aboard hears about it, connected or not.
func (uc *realtimeUC) StartTrip(ctx context.Context, actor models.Actor, tripID string) (*models.Trip, error) {
	trip, err := uc.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != actor.ID {
		return nil, realtime.ErrForbidden
	}
	if !models.CanTransitionTrip(trip.Status, models.TripStatusInProgress) {
		return nil, realtime.ErrInvalidTripState
	}

	if err := uc.trips.UpdateTripStatus(ctx, tripID, trip.Status, models.TripStatusInProgress); err != nil {
		return nil, err
	}
	now := time.Now()
	trip.Status = models.TripStatusInProgress
	trip.StartedAt = &now

	confirmed, err := uc.reservations.ListByTripAndStatus(ctx, tripID, models.ReservationStatusConfirmed)
	if err != nil {
		logger.Warn("Failed to snapshot confirmed reservations at trip start",
			logger.String("trip_id", tripID),
			logger.Err(err))
		confirmed = nil
	}

	uc.rooms.Broadcast(rooms.TripRoom(tripID).ID(), constants.EventTripStarted, trip, "")
	for _, res := range confirmed {
		uc.rooms.Broadcast(rooms.UserRoom(res.PassengerID).ID(), constants.EventTripStarted, trip, "")
		uc.notifyIfOffline(ctx, res.PassengerID, constants.EventTripStarted, trip)
	}

	return trip, nil
}

// CompleteTrip moves an in-progress trip to COMPLETED and settles every
// still-confirmed reservation into COMPLETED with it.
func (uc *realtimeUC) CompleteTrip(ctx context.Context, actor models.Actor, tripID string) (*models.Trip, error) {
	trip, err := uc.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != actor.ID {
		return nil, realtime.ErrForbidden
	}
	if !models.CanTransitionTrip(trip.Status, models.TripStatusCompleted) {
		return nil, realtime.ErrInvalidTripState
	}

	if err := uc.trips.UpdateTripStatus(ctx, tripID, trip.Status, models.TripStatusCompleted); err != nil {
		return nil, err
	}
	now := time.Now()
	trip.Status = models.TripStatusCompleted
	trip.CompletedAt = &now

	confirmed, err := uc.reservations.ListByTripAndStatus(ctx, tripID, models.ReservationStatusConfirmed)
	if err != nil {
		logger.Warn("Failed to list confirmed reservations at trip completion",
			logger.String("trip_id", tripID),
			logger.Err(err))
		confirmed = nil
	}
	for _, res := range confirmed {
		if err := uc.reservations.UpdateReservationStatus(ctx, res.ID,
			models.ReservationStatusConfirmed, models.ReservationStatusCompleted, ""); err != nil {
			// a racing cancel may have won; the reservation is terminal either way
			logger.Debug("Reservation already transitioned during trip completion",
				logger.String("reservation_id", res.ID),
				logger.Err(err))
		}
	}

	uc.rooms.Broadcast(rooms.TripRoom(tripID).ID(), constants.EventTripCompleted, trip, "")
	for _, res := range confirmed {
		uc.rooms.Broadcast(rooms.UserRoom(res.PassengerID).ID(), constants.EventTripCompleted, trip, "")
		uc.notifyIfOffline(ctx, res.PassengerID, constants.EventTripCompleted, trip)
	}

	return trip, nil
}

// CancelTrip cancels a scheduled trip. The driver cancels the whole
// trip, which cancels every holding reservation with it; a rider
// "cancelling the trip" resolves to cancelling their own reservation.
func (uc *realtimeUC) CancelTrip(ctx context.Context, actor models.Actor, tripID, reason string) (*models.Trip, error) {
	trip, err := uc.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if trip.DriverID != actor.ID {
		held, err := uc.reservations.ListByTripAndStatus(ctx, tripID,
			models.ReservationStatusPending, models.ReservationStatusConfirmed)
		if err != nil {
			return nil, err
		}
		for _, res := range held {
			if res.PassengerID == actor.ID {
				if _, err := uc.CancelReservation(ctx, actor, res.ID, reason); err != nil {
					return nil, err
				}
				return trip, nil
			}
		}
		return nil, realtime.ErrForbidden
	}

	if !models.CanTransitionTrip(trip.Status, models.TripStatusCancelled) {
		return nil, realtime.ErrInvalidTripState
	}
	if err := uc.trips.UpdateTripStatus(ctx, tripID, trip.Status, models.TripStatusCancelled); err != nil {
		return nil, err
	}
	now := time.Now()
	trip.Status = models.TripStatusCancelled
	trip.CancelledAt = &now

	held, err := uc.reservations.ListByTripAndStatus(ctx, tripID,
		models.ReservationStatusPending, models.ReservationStatusConfirmed)
	if err != nil {
		logger.Warn("Failed to list holding reservations at trip cancellation",
			logger.String("trip_id", tripID),
			logger.Err(err))
		held = nil
	}
	for _, res := range held {
		// pending reservations leave through REJECTED, the only exit the
		// state table gives them; confirmed ones are cancelled
		settled := models.ReservationStatusCancelled
		if res.Status == models.ReservationStatusPending {
			settled = models.ReservationStatusRejected
		}
		if err := uc.reservations.UpdateReservationStatus(ctx, res.ID,
			res.Status, settled, reason); err != nil {
			logger.Debug("Reservation already transitioned during trip cancellation",
				logger.String("reservation_id", res.ID),
				logger.Err(err))
			continue
		}
		if _, err := uc.seats.Release(ctx, tripID, res.Seats); err != nil {
			logger.Error("Seat release failed during trip cancellation",
				logger.String("reservation_id", res.ID),
				logger.Err(err))
		}
	}

	uc.rooms.Broadcast(rooms.TripRoom(tripID).ID(), constants.EventTripCancelled, trip, "")
	for _, res := range held {
		uc.rooms.Broadcast(rooms.UserRoom(res.PassengerID).ID(), constants.EventTripCancelled, trip, "")
		uc.notifyIfOffline(ctx, res.PassengerID, constants.EventTripCancelled, trip)
	}

	return trip, nil
}

// ConfirmPickup records that a rider boarded. Driver only, trip must be
// in progress.
func (uc *realtimeUC) ConfirmPickup(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error) {
	res, trip, err := uc.loadBoardingContext(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.reservations.MarkPickedUp(ctx, reservationID, now); err != nil {
		return nil, err
	}
	res.PickedUpAt = &now

	uc.rooms.Broadcast(rooms.TripRoom(trip.ID).ID(), constants.EventPickup, res, "")
	uc.rooms.Broadcast(rooms.UserRoom(res.PassengerID).ID(), constants.EventPickup, res, "")
	return res, nil
}

// ConfirmDropoff records that a rider left the vehicle; their
// reservation completes immediately rather than waiting for trip end.
func (uc *realtimeUC) ConfirmDropoff(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error) {
	res, trip, err := uc.loadBoardingContext(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}

	if err := uc.reservations.UpdateReservationStatus(ctx, reservationID,
		models.ReservationStatusConfirmed, models.ReservationStatusCompleted, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.reservations.MarkDroppedOff(ctx, reservationID, now); err != nil {
		logger.Warn("Failed to record dropoff timestamp",
			logger.String("reservation_id", reservationID),
			logger.Err(err))
	}
	res.Status = models.ReservationStatusCompleted
	res.DroppedOffAt = &now

	uc.rooms.Broadcast(rooms.TripRoom(trip.ID).ID(), constants.EventDropoff, res, "")
	uc.rooms.Broadcast(rooms.UserRoom(res.PassengerID).ID(), constants.EventDropoff, res, "")
	return res, nil
}

// loadBoardingContext shares the validation for pickup/dropoff events:
// the acting identity must be the trip's driver, the trip in progress,
// the reservation confirmed.
func (uc *realtimeUC) loadBoardingContext(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, *models.Trip, error) {
	res, err := uc.reservations.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, nil, err
	}
	trip, err := uc.trips.GetTrip(ctx, res.TripID)
	if err != nil {
		return nil, nil, err
	}
	if trip.DriverID != actor.ID {
		return nil, nil, realtime.ErrForbidden
	}
	if trip.Status != models.TripStatusInProgress {
		return nil, nil, realtime.ErrInvalidTripState
	}
	if res.Status != models.ReservationStatusConfirmed {
		return nil, nil, realtime.ErrInvalidReservationState
	}
	return res, trip, nil
}

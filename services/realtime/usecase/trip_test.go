package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime"
)

func TestStartTrip_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.trips.EXPECT().
		UpdateTripStatus(gomock.Any(), "trip-1",
			models.TripStatusScheduled, models.TripStatusInProgress).
		Return(nil)
	m.reservations.EXPECT().
		ListByTripAndStatus(gomock.Any(), "trip-1", models.ReservationStatusConfirmed).
		Return([]*models.Reservation{
			{ID: "res-1", PassengerID: "rider-1", Status: models.ReservationStatusConfirmed},
		}, nil)
	m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(1).AnyTimes()
	m.presence.EXPECT().IsOnline("rider-1").Return(true)

	// Act
	out, err := uc.StartTrip(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver}, "trip-1")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusInProgress, out.Status)
	assert.NotNil(t, out.StartedAt)
}

func TestStartTrip_NonDriverForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)

	_, err := uc.StartTrip(context.Background(),
		models.Actor{ID: "rider-1", Role: models.RoleRider}, "trip-1")

	assert.ErrorIs(t, err, realtime.ErrForbidden)
}

func TestStartTrip_AlreadyStartedInvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)
	trip.Status = models.TripStatusInProgress

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)

	_, err := uc.StartTrip(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver}, "trip-1")

	assert.ErrorIs(t, err, realtime.ErrInvalidTripState)
}

func TestCompleteTrip_SettlesConfirmedReservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)
	trip.Status = models.TripStatusInProgress

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.trips.EXPECT().
		UpdateTripStatus(gomock.Any(), "trip-1",
			models.TripStatusInProgress, models.TripStatusCompleted).
		Return(nil)
	m.reservations.EXPECT().
		ListByTripAndStatus(gomock.Any(), "trip-1", models.ReservationStatusConfirmed).
		Return([]*models.Reservation{
			{ID: "res-1", PassengerID: "rider-1", Status: models.ReservationStatusConfirmed},
			{ID: "res-2", PassengerID: "rider-2", Status: models.ReservationStatusConfirmed},
		}, nil)
	m.reservations.EXPECT().
		UpdateReservationStatus(gomock.Any(), "res-1",
			models.ReservationStatusConfirmed, models.ReservationStatusCompleted, "").
		Return(nil)
	m.reservations.EXPECT().
		UpdateReservationStatus(gomock.Any(), "res-2",
			models.ReservationStatusConfirmed, models.ReservationStatusCompleted, "").
		Return(nil)
	m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(1).AnyTimes()
	m.presence.EXPECT().IsOnline(gomock.Any()).Return(true).AnyTimes()

	out, err := uc.CompleteTrip(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver}, "trip-1")

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, out.Status)
}

func TestCancelTrip_DriverCancelsHoldingReservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 1)

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.trips.EXPECT().
		UpdateTripStatus(gomock.Any(), "trip-1",
			models.TripStatusScheduled, models.TripStatusCancelled).
		Return(nil)
	m.reservations.EXPECT().
		ListByTripAndStatus(gomock.Any(), "trip-1",
			models.ReservationStatusPending, models.ReservationStatusConfirmed).
		Return([]*models.Reservation{
			{ID: "res-1", PassengerID: "rider-1", Seats: 2, Status: models.ReservationStatusConfirmed},
		}, nil)
	m.reservations.EXPECT().
		UpdateReservationStatus(gomock.Any(), "res-1",
			models.ReservationStatusConfirmed, models.ReservationStatusCancelled, "vehicle broke down").
		Return(nil)
	m.trips.EXPECT().ReleaseSeats(gomock.Any(), "trip-1", 2).Return(3, false, nil)
	m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(1).AnyTimes()
	m.presence.EXPECT().IsOnline("rider-1").Return(true)

	out, err := uc.CancelTrip(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver}, "trip-1", "vehicle broke down")

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, out.Status)
}

func TestCancelTrip_RiderResolvesToOwnReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)
	res := &models.Reservation{
		ID:          "res-1",
		TripID:      "trip-1",
		PassengerID: "rider-1",
		Seats:       1,
		Status:      models.ReservationStatusConfirmed,
	}

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil).Times(2)
	m.reservations.EXPECT().
		ListByTripAndStatus(gomock.Any(), "trip-1",
			models.ReservationStatusPending, models.ReservationStatusConfirmed).
		Return([]*models.Reservation{res}, nil)
	m.reservations.EXPECT().GetReservation(gomock.Any(), "res-1").Return(res, nil)
	m.reservations.EXPECT().
		UpdateReservationStatus(gomock.Any(), "res-1",
			models.ReservationStatusConfirmed, models.ReservationStatusCancelled, "").
		Return(nil)
	m.trips.EXPECT().ReleaseSeats(gomock.Any(), "trip-1", 1).Return(3, false, nil)
	m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(1).AnyTimes()
	m.presence.EXPECT().IsOnline("driver-1").Return(true)

	_, err := uc.CancelTrip(context.Background(),
		models.Actor{ID: "rider-1", Role: models.RoleRider}, "trip-1", "")

	assert.NoError(t, err)
}

func TestConfirmDropoff_CompletesReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)
	trip.Status = models.TripStatusInProgress
	res := &models.Reservation{
		ID:          "res-1",
		TripID:      "trip-1",
		PassengerID: "rider-1",
		Status:      models.ReservationStatusConfirmed,
	}

	m.reservations.EXPECT().GetReservation(gomock.Any(), "res-1").Return(res, nil)
	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.reservations.EXPECT().
		UpdateReservationStatus(gomock.Any(), "res-1",
			models.ReservationStatusConfirmed, models.ReservationStatusCompleted, "").
		Return(nil)
	m.reservations.EXPECT().MarkDroppedOff(gomock.Any(), "res-1", gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(1).AnyTimes()

	out, err := uc.ConfirmDropoff(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver}, "res-1")

	assert.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCompleted, out.Status)
	assert.NotNil(t, out.DroppedOffAt)
}

func TestConfirmPickup_TripNotInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)
	res := &models.Reservation{
		ID:          "res-1",
		TripID:      "trip-1",
		PassengerID: "rider-1",
		Status:      models.ReservationStatusConfirmed,
	}

	m.reservations.EXPECT().GetReservation(gomock.Any(), "res-1").Return(res, nil)
	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)

	_, err := uc.ConfirmPickup(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver}, "res-1")

	assert.ErrorIs(t, err, realtime.ErrInvalidTripState)
}

func TestCancelTrip_PendingReservationSettledAsRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 1)

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.trips.EXPECT().
		UpdateTripStatus(gomock.Any(), "trip-1",
			models.TripStatusScheduled, models.TripStatusCancelled).
		Return(nil)
	m.reservations.EXPECT().
		ListByTripAndStatus(gomock.Any(), "trip-1",
			models.ReservationStatusPending, models.ReservationStatusConfirmed).
		Return([]*models.Reservation{
			{ID: "res-1", PassengerID: "rider-1", Seats: 1, Status: models.ReservationStatusPending},
		}, nil)
	m.reservations.EXPECT().
		UpdateReservationStatus(gomock.Any(), "res-1",
			models.ReservationStatusPending, models.ReservationStatusRejected, "no riders").
		Return(nil)
	m.trips.EXPECT().ReleaseSeats(gomock.Any(), "trip-1", 1).Return(2, false, nil)
	m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(1).AnyTimes()
	m.presence.EXPECT().IsOnline("rider-1").Return(true)

	// Act
	_, err := uc.CancelTrip(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver}, "trip-1", "no riders")

	// Assert: the pending reservation left through REJECTED, the only
	// exit the state table allows it
	assert.NoError(t, err)
}

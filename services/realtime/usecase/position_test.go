package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime"
)

func positionRequest(tripID string) *models.PositionUpdateRequest {
	return &models.PositionUpdateRequest{
		TripID:      tripID,
		Coordinates: models.Coordinates{Latitude: -6.2, Longitude: 106.8},
		SpeedKmh:    42,
		Heading:     90,
	}
}

func TestUpdatePosition_StoresBeforeBroadcast(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)
	trip.Status = models.TripStatusInProgress

	stored := false
	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.presenceRepo.EXPECT().
		SetTripPosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sample *models.PositionSample) error {
			stored = true
			assert.Equal(t, 42.0, sample.SpeedKmh)
			return nil
		})
	m.broadcaster.EXPECT().
		Broadcast("trip:trip-1", gomock.Any(), gomock.Any(), "conn-1").
		DoAndReturn(func(string, string, interface{}, string) int {
			assert.True(t, stored, "broadcast must not precede the stored sample")
			return 2
		})

	// Act
	out, err := uc.UpdatePosition(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver},
		positionRequest("trip-1"), "conn-1")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, out.ETA)
	assert.Greater(t, out.ETA.DistanceKm, 0.0)
}

func TestUpdatePosition_TripNotInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	// no store, no broadcast

	_, err := uc.UpdatePosition(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver},
		positionRequest("trip-1"), "conn-1")

	assert.ErrorIs(t, err, realtime.ErrInvalidTripState)
}

func TestUpdatePosition_NonDriverForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)
	trip.Status = models.TripStatusInProgress

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)

	_, err := uc.UpdatePosition(context.Background(),
		models.Actor{ID: "rider-1", Role: models.RoleRider},
		positionRequest("trip-1"), "conn-1")

	assert.ErrorIs(t, err, realtime.ErrForbidden)
}

func TestUpdatePosition_StorageFailureSuppressesBroadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)
	trip.Status = models.TripStatusInProgress

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.presenceRepo.EXPECT().SetTripPosition(gomock.Any(), gomock.Any()).Return(assert.AnError)
	// no Broadcast expectation: nobody hears about a sample that failed to store

	_, err := uc.UpdatePosition(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver},
		positionRequest("trip-1"), "conn-1")

	assert.Error(t, err)
}

func TestUpdatePosition_RejectsInvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	req := positionRequest("trip-1")
	req.Coordinates.Latitude = 91

	_, err := uc.UpdatePosition(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver}, req, "conn-1")

	assert.ErrorIs(t, err, realtime.ErrValidation)
}

package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime"
)

func validAlertRequest(tripID string) *models.TriggerAlertRequest {
	return &models.TriggerAlertRequest{
		TripID:      tripID,
		Type:        "accident",
		Description: "collision at the intersection",
		Position:    models.Coordinates{Latitude: -6.2, Longitude: 106.8},
		Severity:    models.AlertSeverityHigh,
	}
}

func TestTriggerAlert_SnapshotsParticipants(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)
	trip.Status = models.TripStatusInProgress

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.reservations.EXPECT().
		ListByTripAndStatus(gomock.Any(), "trip-1",
			models.ReservationStatusConfirmed, models.ReservationStatusCompleted).
		Return([]*models.Reservation{
			{PassengerID: "rider-1", Status: models.ReservationStatusConfirmed},
			{PassengerID: "rider-2", Status: models.ReservationStatusConfirmed},
		}, nil)
	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.EmergencyAlert) error {
			assert.Equal(t, models.AlertStatusActive, alert.Status)
			assert.ElementsMatch(t, []string{"driver-1", "rider-1", "rider-2"}, alert.Participants)
			return nil
		})
	m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(1).AnyTimes()
	// rider-2 is offline: exactly one emergency push goes out
	m.presence.EXPECT().IsOnline("driver-1").Return(true)
	m.presence.EXPECT().IsOnline("rider-1").Return(true)
	m.presence.EXPECT().IsOnline("rider-2").Return(false)
	m.notify.EXPECT().PushEmergency(gomock.Any(), "rider-2", gomock.Any()).Return(nil).Times(1)

	// Act
	alert, err := uc.TriggerAlert(context.Background(),
		models.Actor{ID: "driver-1", Role: models.RoleDriver}, validAlertRequest("trip-1"))

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
}

func TestTriggerAlert_WithoutTripSoloParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.EmergencyAlert) error {
			assert.Equal(t, []string{"rider-1"}, alert.Participants)
			return nil
		})
	m.broadcaster.EXPECT().Broadcast("user:rider-1", gomock.Any(), gomock.Any(), "").Return(1)
	m.presence.EXPECT().IsOnline("rider-1").Return(true)

	_, err := uc.TriggerAlert(context.Background(),
		models.Actor{ID: "rider-1", Role: models.RoleRider}, validAlertRequest(""))

	assert.NoError(t, err)
}

func TestTriggerAlert_StrangerOnTripForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	trip := scheduledTrip("trip-1", "driver-1", 2)

	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.reservations.EXPECT().
		ListByTripAndStatus(gomock.Any(), "trip-1",
			models.ReservationStatusConfirmed, models.ReservationStatusCompleted).
		Return(nil, nil)

	_, err := uc.TriggerAlert(context.Background(),
		models.Actor{ID: "stranger", Role: models.RoleRider}, validAlertRequest("trip-1"))

	assert.ErrorIs(t, err, realtime.ErrForbidden)
}

func TestTriggerAlert_InvalidSeverity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	req := validAlertRequest("")
	req.Severity = "URGENT"

	_, err := uc.TriggerAlert(context.Background(),
		models.Actor{ID: "rider-1", Role: models.RoleRider}, req)

	assert.ErrorIs(t, err, realtime.ErrValidation)
}

func TestResolveAlert_ByTriggeringIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	alert := &models.EmergencyAlert{
		ID:           "alert-1",
		TriggeredBy:  "rider-1",
		Status:       models.AlertStatusActive,
		Participants: []string{"rider-1"},
	}

	m.alerts.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(alert, nil)
	m.alerts.EXPECT().
		UpdateAlertStatus(gomock.Any(), "alert-1",
			models.AlertStatusActive, models.AlertStatusResolved, "rider-1", "all good").
		Return(nil)
	m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(1).AnyTimes()

	out, err := uc.ResolveAlert(context.Background(),
		models.Actor{ID: "rider-1", Role: models.RoleRider},
		&models.ResolveAlertRequest{AlertID: "alert-1", Comment: "all good"})

	assert.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, out.Status)
	assert.Equal(t, "rider-1", out.ResolvedBy)
}

func TestResolveAlert_FalseAlarmNeedsPrivilege(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	alert := &models.EmergencyAlert{
		ID:           "alert-1",
		TriggeredBy:  "rider-1",
		Status:       models.AlertStatusActive,
		Participants: []string{"rider-1"},
	}

	m.alerts.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(alert, nil)

	_, err := uc.ResolveAlert(context.Background(),
		models.Actor{ID: "rider-1", Role: models.RoleRider},
		&models.ResolveAlertRequest{AlertID: "alert-1", FalseAlarm: true})

	assert.ErrorIs(t, err, realtime.ErrForbidden)
}

func TestResolveAlert_AlreadyResolvedInvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	alert := &models.EmergencyAlert{
		ID:          "alert-1",
		TriggeredBy: "rider-1",
		Status:      models.AlertStatusResolved,
	}

	m.alerts.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(alert, nil)

	_, err := uc.ResolveAlert(context.Background(),
		models.Actor{ID: "rider-1", Role: models.RoleRider},
		&models.ResolveAlertRequest{AlertID: "alert-1"})

	assert.ErrorIs(t, err, realtime.ErrInvalidAlertState)
}

func TestEscalateAlert_PrivilegedOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	_, err := uc.EscalateAlert(context.Background(),
		models.Actor{ID: "rider-1", Role: models.RoleRider}, "alert-1")
	assert.ErrorIs(t, err, realtime.ErrForbidden)

	alert := &models.EmergencyAlert{
		ID:           "alert-1",
		TriggeredBy:  "rider-1",
		Status:       models.AlertStatusActive,
		Participants: []string{"rider-1"},
	}
	m.alerts.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(alert, nil)
	m.alerts.EXPECT().
		UpdateAlertStatus(gomock.Any(), "alert-1",
			models.AlertStatusActive, models.AlertStatusInProgress, "mod-1", "").
		Return(nil)
	m.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(1).AnyTimes()

	out, err := uc.EscalateAlert(context.Background(),
		models.Actor{ID: "mod-1", Role: models.RoleModerator}, "alert-1")

	assert.NoError(t, err)
	assert.Equal(t, models.AlertStatusInProgress, out.Status)
}

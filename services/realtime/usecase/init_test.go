package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/mocks"
	"github.com/ridelink/tripsync/services/realtime/rooms"
	"github.com/ridelink/tripsync/services/realtime/seats"
)

type ucMocks struct {
	trips        *mocks.MockTripRepo
	reservations *mocks.MockReservationRepo
	alerts       *mocks.MockAlertRepo
	convs        *mocks.MockConversationRepo
	presenceRepo *mocks.MockPresenceRepo
	broadcaster  *mocks.MockBroadcaster
	presence     *mocks.MockPresenceIndex
	notify       *mocks.MockNotifyGW
}

func newTestUC(ctrl *gomock.Controller) (realtime.RealtimeUC, *ucMocks) {
	m := &ucMocks{
		trips:        mocks.NewMockTripRepo(ctrl),
		reservations: mocks.NewMockReservationRepo(ctrl),
		alerts:       mocks.NewMockAlertRepo(ctrl),
		convs:        mocks.NewMockConversationRepo(ctrl),
		presenceRepo: mocks.NewMockPresenceRepo(ctrl),
		broadcaster:  mocks.NewMockBroadcaster(ctrl),
		presence:     mocks.NewMockPresenceIndex(ctrl),
		notify:       mocks.NewMockNotifyGW(ctrl),
	}
	cfg := &models.Config{
		Realtime: models.RealtimeConfig{
			MaxMessageLength: 2000,
			MinSpeedKmh:      5,
			FloorSpeedKmh:    20,
		},
	}
	uc := NewRealtimeUC(cfg, m.trips, m.reservations, m.alerts, m.convs,
		m.presenceRepo, seats.NewInventory(m.trips), m.broadcaster, m.presence, m.notify)
	return uc, m
}

func scheduledTrip(id, driverID string, available int) *models.Trip {
	return &models.Trip{
		ID:             id,
		DriverID:       driverID,
		Status:         models.TripStatusScheduled,
		SeatsTotal:     4,
		SeatsAvailable: available,
		Destination: models.Location{
			Coordinates: models.Coordinates{Latitude: -6.1751, Longitude: 106.8650},
		},
	}
}

func TestCanJoin_TripRoom_ConfirmedRiderAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	trip := scheduledTrip("trip-1", "driver-1", 2)
	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.reservations.EXPECT().
		ListByTripAndStatus(gomock.Any(), "trip-1",
			models.ReservationStatusConfirmed, models.ReservationStatusCompleted).
		Return([]*models.Reservation{
			{PassengerID: "rider-1", Status: models.ReservationStatusConfirmed},
		}, nil)

	err := uc.CanJoin(context.Background(), rooms.TripRoom("trip-1"),
		models.Actor{ID: "rider-1", Role: models.RoleRider})

	assert.NoError(t, err)
}

func TestCanJoin_TripRoom_StrangerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	trip := scheduledTrip("trip-1", "driver-1", 2)
	m.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.reservations.EXPECT().
		ListByTripAndStatus(gomock.Any(), "trip-1",
			models.ReservationStatusConfirmed, models.ReservationStatusCompleted).
		Return(nil, nil)

	err := uc.CanJoin(context.Background(), rooms.TripRoom("trip-1"),
		models.Actor{ID: "stranger", Role: models.RoleRider})

	assert.ErrorIs(t, err, realtime.ErrForbidden)
}

func TestCanJoin_UserRoom_SelfAndModerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	assert.NoError(t, uc.CanJoin(context.Background(), rooms.UserRoom("user-1"),
		models.Actor{ID: "user-1", Role: models.RoleRider}))
	assert.NoError(t, uc.CanJoin(context.Background(), rooms.UserRoom("user-1"),
		models.Actor{ID: "mod-1", Role: models.RoleModerator}))
	assert.ErrorIs(t,
		uc.CanJoin(context.Background(), rooms.UserRoom("user-1"),
			models.Actor{ID: "user-2", Role: models.RoleRider}),
		realtime.ErrForbidden)
}

func TestHandlePresenceChange_OfflinePersistsLastSeen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.broadcaster.EXPECT().
		Broadcast("user:user-1", gomock.Any(), gomock.Any(), "").
		Return(0)

	persisted := make(chan struct{})
	m.presenceRepo.EXPECT().
		SetLastSeen(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(context.Context, string, time.Time) error {
			close(persisted)
			return nil
		})

	uc.HandlePresenceChange("user-1", false)

	select {
	case <-persisted:
	case <-time.After(2 * time.Second):
		t.Fatal("last-seen persist was never attempted")
	}
}

func TestHandlePresenceChange_OnlineBroadcastsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.broadcaster.EXPECT().
		Broadcast("user:user-1", gomock.Any(), gomock.Any(), "").
		Return(1)

	uc.HandlePresenceChange("user-1", true)
}

func TestGetUserPresence_OnlineSkipsLastSeenLookup(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	m.presence.EXPECT().IsOnline("user-1").Return(true)

	// Act
	p, err := uc.GetUserPresence(context.Background(), "user-1")

	// Assert
	assert.NoError(t, err)
	assert.True(t, p.Online)
	assert.Nil(t, p.LastSeen)
}

func TestGetUserPresence_OfflineReturnsLastSeen(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	seenAt := time.Now().Add(-10 * time.Minute)
	m.presence.EXPECT().IsOnline("user-1").Return(false)
	m.presenceRepo.EXPECT().GetLastSeen(gomock.Any(), "user-1").Return(seenAt, nil)

	// Act
	p, err := uc.GetUserPresence(context.Background(), "user-1")

	// Assert
	assert.NoError(t, err)
	assert.False(t, p.Online)
	assert.True(t, seenAt.Equal(*p.LastSeen))
}

func TestGetUserPresence_NeverSeenIdentity(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	m.presence.EXPECT().IsOnline("ghost").Return(false)
	m.presenceRepo.EXPECT().GetLastSeen(gomock.Any(), "ghost").Return(time.Time{}, realtime.ErrNotFound)

	// Act
	p, err := uc.GetUserPresence(context.Background(), "ghost")

	// Assert: an unknown identity is just offline with no timestamp
	assert.NoError(t, err)
	assert.False(t, p.Online)
	assert.Nil(t, p.LastSeen)
}

func TestCanJoin_ConversationRoom_NonParticipantForbidden(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	m.convs.EXPECT().
		IsParticipant(gomock.Any(), "conv-1", "outsider").
		Return(false, nil)

	// Act: the room existing with other members changes nothing, the
	// membership table is the only authority
	err := uc.CanJoin(context.Background(), rooms.ConversationRoom("conv-1"),
		models.Actor{ID: "outsider", Role: models.RoleRider})

	// Assert
	assert.ErrorIs(t, err, realtime.ErrForbidden)
}

func TestCanJoin_ConversationRoom_ParticipantAllowed(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	m.convs.EXPECT().
		IsParticipant(gomock.Any(), "conv-1", "member").
		Return(true, nil)

	// Act
	err := uc.CanJoin(context.Background(), rooms.ConversationRoom("conv-1"),
		models.Actor{ID: "member", Role: models.RoleRider})

	// Assert
	assert.NoError(t, err)
}

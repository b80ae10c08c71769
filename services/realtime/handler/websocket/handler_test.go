package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/models"
	wspkg "github.com/ridelink/tripsync/internal/pkg/websocket"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/mocks"
	"github.com/ridelink/tripsync/services/realtime/presence"
	"github.com/ridelink/tripsync/services/realtime/rooms"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", realtime.ErrValidation, constants.ErrCodeValidation},
		{"forbidden", realtime.ErrForbidden, constants.ErrCodeForbidden},
		{"not found", realtime.ErrNotFound, constants.ErrCodeNotFound},
		{"insufficient seats", realtime.ErrInsufficientSeats, constants.ErrCodeInsufficientSeats},
		{"connection cap", realtime.ErrTooManyConnections, constants.ErrCodeTooManyConnections},
		{"trip state", realtime.ErrInvalidTripState, constants.ErrCodeInvalidState},
		{"reservation state", realtime.ErrInvalidReservationState, constants.ErrCodeInvalidState},
		{"alert state", realtime.ErrInvalidAlertState, constants.ErrCodeInvalidState},
		{"unrecognized", io.ErrUnexpectedEOF, constants.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(tt.err))
		})
	}
}

func TestErrorCode_WrappedDomainError(t *testing.T) {
	// Repositories wrap sentinels with call context; the mapping must
	// see through the wrapping
	wrapped := fmt.Errorf("confirm reservation res-1: %w", realtime.ErrInvalidReservationState)
	assert.Equal(t, constants.ErrCodeInvalidState, errorCode(wrapped))
}

func TestIsExpectedClose(t *testing.T) {
	assert.True(t, isExpectedClose(io.EOF))
	assert.True(t, isExpectedClose(&gws.CloseError{Code: gws.CloseNormalClosure}))
	assert.True(t, isExpectedClose(&gws.CloseError{Code: gws.CloseGoingAway}))
	assert.False(t, isExpectedClose(&gws.CloseError{Code: gws.CloseAbnormalClosure}))
	assert.False(t, isExpectedClose(io.ErrUnexpectedEOF))
}

func newTestHandler(t *testing.T, uc realtime.RealtimeUC) (*WSHandler, *rooms.Router, *presence.Registry) {
	t.Helper()
	registry := presence.NewRegistry(2)
	router := rooms.NewRouter(rooms.AuthorizerFunc(func(context.Context, rooms.Room, models.Actor) error {
		return nil
	}))
	manager := wspkg.NewManager(models.JWTConfig{}, models.RealtimeConfig{})
	return NewWSHandler(manager, uc, router, registry), router, registry
}

func TestServeClient_ReadFailureTearsDownLikeClose(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, router, registry := newTestHandler(t, mocks.NewMockRealtimeUC(ctrl))

	// A conn-less client's read loop ends on the first ReadMessage, the
	// same path a heartbeat timeout or dropped socket takes
	client := wspkg.NewClient(nil, "conn-1", "user-1", models.RoleRider, models.RealtimeConfig{})

	// Act
	err := h.serveClient(client)

	// Assert: the loop exits cleanly and teardown unwound both room
	// membership and presence
	assert.NoError(t, err)
	assert.False(t, registry.IsOnline("user-1"))
	assert.Empty(t, router.Members(rooms.UserRoom("user-1").ID()))
}

func TestServeClient_ConnectionCapRejectsBeforeJoin(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, router, registry := newTestHandler(t, mocks.NewMockRealtimeUC(ctrl))

	_, err := registry.MarkConnected("user-1", "conn-1")
	require.NoError(t, err)
	_, err = registry.MarkConnected("user-1", "conn-2")
	require.NoError(t, err)

	// Act
	err = h.serveClient(wspkg.NewClient(nil, "conn-3", "user-1", models.RoleRider, models.RealtimeConfig{}))

	// Assert: rejected connections never reach the personal room and the
	// identity keeps its prior connections
	assert.ErrorIs(t, err, realtime.ErrTooManyConnections)
	assert.ElementsMatch(t, []string{"conn-1", "conn-2"}, registry.ConnectionsOf("user-1"))
	assert.Empty(t, router.Members(rooms.UserRoom("user-1").ID()))
}

func TestDispatch_EmergencyEscalate(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockRealtimeUC(ctrl)
	h, _, _ := newTestHandler(t, uc)
	client := wspkg.NewClient(nil, "conn-1", "mod-1", models.RoleModerator, models.RealtimeConfig{})

	uc.EXPECT().
		EscalateAlert(gomock.Any(), models.Actor{ID: "mod-1", Role: models.RoleModerator}, "alert-1").
		Return(&models.EmergencyAlert{ID: "alert-1", Status: models.AlertStatusInProgress}, nil)

	// Act
	err := h.dispatch(client, constants.EventEmergencyEscalate, json.RawMessage(`{"alertId":"alert-1"}`))

	// Assert
	assert.NoError(t, err)
}

func TestDispatch_EmergencyEscalateForbiddenSurfaces(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockRealtimeUC(ctrl)
	h, _, _ := newTestHandler(t, uc)
	client := wspkg.NewClient(nil, "conn-1", "rider-1", models.RoleRider, models.RealtimeConfig{})

	uc.EXPECT().
		EscalateAlert(gomock.Any(), gomock.Any(), "alert-1").
		Return(nil, realtime.ErrForbidden)

	// Act
	err := h.dispatch(client, constants.EventEmergencyEscalate, json.RawMessage(`{"alertId":"alert-1"}`))

	// Assert
	assert.ErrorIs(t, err, realtime.ErrForbidden)
}

func TestDispatch_UnknownEventIsValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _, _ := newTestHandler(t, mocks.NewMockRealtimeUC(ctrl))
	client := wspkg.NewClient(nil, "conn-1", "user-1", models.RoleRider, models.RealtimeConfig{})

	err := h.dispatch(client, "no:such:event", json.RawMessage(`{}`))

	assert.ErrorIs(t, err, realtime.ErrValidation)
}

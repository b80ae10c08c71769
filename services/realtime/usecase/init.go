package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/logger"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/rooms"
	"github.com/ridelink/tripsync/services/realtime/seats"
)

// realtimeUC implements realtime.RealtimeUC
type realtimeUC struct {
	cfg          *models.Config
	trips        realtime.TripRepo
	reservations realtime.ReservationRepo
	alerts       realtime.AlertRepo
	convs        realtime.ConversationRepo
	presenceRepo realtime.PresenceRepo
	seats        *seats.Inventory
	rooms        realtime.Broadcaster
	presence     realtime.PresenceIndex
	notify       realtime.NotifyGW
}

// NewRealtimeUC creates the coordination use case
func NewRealtimeUC(
	cfg *models.Config,
	trips realtime.TripRepo,
	reservations realtime.ReservationRepo,
	alerts realtime.AlertRepo,
	convs realtime.ConversationRepo,
	presenceRepo realtime.PresenceRepo,
	seatInv *seats.Inventory,
	broadcaster realtime.Broadcaster,
	presenceIdx realtime.PresenceIndex,
	notifyGW realtime.NotifyGW,
) realtime.RealtimeUC {
	return &realtimeUC{
		cfg:          cfg,
		trips:        trips,
		reservations: reservations,
		alerts:       alerts,
		convs:        convs,
		presenceRepo: presenceRepo,
		seats:        seatInv,
		rooms:        broadcaster,
		presence:     presenceIdx,
		notify:       notifyGW,
	}
}

// CanJoin re-derives room authorization on every join request. A
// revocation therefore applies on the next join, never retroactively.
func (uc *realtimeUC) CanJoin(ctx context.Context, room rooms.Room, actor models.Actor) error {
	switch room.Kind {
	case rooms.KindConversation:
		ok, err := uc.convs.IsParticipant(ctx, room.EntityID, actor.ID)
		if err != nil {
			return err
		}
		if !ok {
			return realtime.ErrForbidden
		}
		return nil

	case rooms.KindTrip:
		trip, err := uc.trips.GetTrip(ctx, room.EntityID)
		if err != nil {
			return err
		}
		if trip.DriverID == actor.ID || actor.IsPrivileged() {
			return nil
		}
		held, err := uc.reservations.ListByTripAndStatus(ctx, room.EntityID,
			models.ReservationStatusConfirmed, models.ReservationStatusCompleted)
		if err != nil {
			return err
		}
		for _, r := range held {
			if r.PassengerID == actor.ID {
				return nil
			}
		}
		return realtime.ErrForbidden

	case rooms.KindUser:
		if room.EntityID == actor.ID || actor.IsPrivileged() {
			return nil
		}
		return realtime.ErrForbidden
	}
	return realtime.ErrForbidden
}

// HandlePresenceChange broadcasts the online/offline flip to the
// identity's personal room and, on offline, persists the last-seen
// timestamp. The persist is fire and forget: a storage failure is
// logged and never blocks connection teardown.
func (uc *realtimeUC) HandlePresenceChange(userID string, online bool) {
	uc.rooms.Broadcast(rooms.UserRoom(userID).ID(), constants.EventPresenceUpdate,
		models.PresenceUpdate{UserID: userID, Online: online}, "")

	if !online {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := uc.presenceRepo.SetLastSeen(ctx, userID, time.Now()); err != nil {
				logger.Warn("Failed to persist last-seen timestamp",
					logger.String("user_id", userID),
					logger.Err(err))
			}
		}()
	}
}

// GetTrip returns a trip for the HTTP read boundary
func (uc *realtimeUC) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	return uc.trips.GetTrip(ctx, id)
}

// GetAlert returns an alert for the HTTP read boundary
func (uc *realtimeUC) GetAlert(ctx context.Context, id string) (*models.EmergencyAlert, error) {
	return uc.alerts.GetAlert(ctx, id)
}

// GetTripPosition returns the latest position sample for a trip
func (uc *realtimeUC) GetTripPosition(ctx context.Context, tripID string) (*models.PositionSample, error) {
	return uc.presenceRepo.GetTripPosition(ctx, tripID)
}

// GetUserPresence reports whether the identity is online and, when it
// is not, when it was last seen. An identity with no last-seen record
// simply has a nil timestamp.
func (uc *realtimeUC) GetUserPresence(ctx context.Context, userID string) (*models.UserPresence, error) {
	p := &models.UserPresence{UserID: userID, Online: uc.presence.IsOnline(userID)}
	if p.Online {
		return p, nil
	}
	seenAt, err := uc.presenceRepo.GetLastSeen(ctx, userID)
	if err != nil {
		if errors.Is(err, realtime.ErrNotFound) {
			return p, nil
		}
		return nil, err
	}
	p.LastSeen = &seenAt
	return p, nil
}

// notifyIfOffline dispatches an out-of-band notification when the
// identity has no live connection. Best effort: failures are logged and
// swallowed so they can never fail the triggering operation.
func (uc *realtimeUC) notifyIfOffline(ctx context.Context, userID, event string, payload interface{}) {
	if uc.presence.IsOnline(userID) {
		return
	}
	if err := uc.notify.PushOffline(ctx, userID, event, payload); err != nil {
		logger.Warn("Offline notification dispatch failed",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/internal/utils"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/rooms"
)

// UpdatePosition ingests a driver's position sample for an in-progress
// trip. The sample is written to the ephemeral store before anything is
// broadcast; a storage failure means nobody hears about the sample.
func (uc *realtimeUC) UpdatePosition(ctx context.Context, actor models.Actor, req *models.PositionUpdateRequest, excludeConnID string) (*models.PositionBroadcast, error) {
	if req.TripID == "" || !req.Coordinates.Valid() || req.SpeedKmh < 0 {
		return nil, realtime.ErrValidation
	}

	trip, err := uc.trips.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != actor.ID {
		return nil, realtime.ErrForbidden
	}
	if trip.Status != models.TripStatusInProgress {
		return nil, realtime.ErrInvalidTripState
	}

	sample := &models.PositionSample{
		TripID:      req.TripID,
		Coordinates: req.Coordinates,
		SpeedKmh:    req.SpeedKmh,
		Heading:     req.Heading,
		Timestamp:   time.Now(),
	}
	if err := uc.presenceRepo.SetTripPosition(ctx, sample); err != nil {
		return nil, err
	}

	eta := utils.EstimateETA(req.Coordinates, trip.Destination.Coordinates,
		req.SpeedKmh, uc.cfg.Realtime.MinSpeedKmh, uc.cfg.Realtime.FloorSpeedKmh)

	broadcast := &models.PositionBroadcast{
		TripID:      req.TripID,
		DriverID:    actor.ID,
		Coordinates: req.Coordinates,
		SpeedKmh:    req.SpeedKmh,
		Heading:     req.Heading,
		Timestamp:   sample.Timestamp,
		ETA:         &eta,
	}
	uc.rooms.Broadcast(rooms.TripRoom(req.TripID).ID(), constants.EventPositionUpdate, broadcast, excludeConnID)

	return broadcast, nil
}

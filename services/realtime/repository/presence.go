package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/database"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/internal/utils"
	"github.com/ridelink/tripsync/services/realtime"
)

// geohashPrecision of 7 resolves to roughly a city block, enough for
// proximity grouping without leaking exact positions into the geo index.
const geohashPrecision = 7

// PresenceRepo stores the ephemeral presence side state in Redis:
// last-seen timestamps and the latest position sample per trip
type PresenceRepo struct {
	cache       *database.RedisClient
	positionTTL time.Duration
}

// NewPresenceRepo creates a new presence repository
func NewPresenceRepo(cache *database.RedisClient, cfg models.RealtimeConfig) *PresenceRepo {
	return &PresenceRepo{
		cache:       cache,
		positionTTL: time.Duration(cfg.PositionTTLSec) * time.Second,
	}
}

// SetLastSeen records when the user's last connection went away
func (r *PresenceRepo) SetLastSeen(ctx context.Context, userID string, at time.Time) error {
	key := fmt.Sprintf(constants.KeyUserLastSeen, userID)
	if err := r.cache.Set(ctx, key, at.UTC().Format(time.RFC3339), 0); err != nil {
		return fmt.Errorf("failed to set last seen: %w", err)
	}
	return nil
}

// GetLastSeen returns the user's last-seen timestamp, or ErrNotFound when
// the user has never disconnected
func (r *PresenceRepo) GetLastSeen(ctx context.Context, userID string) (time.Time, error) {
	key := fmt.Sprintf(constants.KeyUserLastSeen, userID)
	raw, err := r.cache.Get(ctx, key)
	if err == redis.Nil {
		return time.Time{}, realtime.ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last seen: %w", err)
	}
	return time.Parse(time.RFC3339, raw)
}

// SetTripPosition stores the latest position sample for a trip. Each sample
// supersedes the previous one; the hash expires when updates stop, and the
// trip is indexed in the shared geo set for proximity queries.
func (r *PresenceRepo) SetTripPosition(ctx context.Context, sample *models.PositionSample) error {
	key := fmt.Sprintf(constants.KeyTripPosition, sample.TripID)

	fields := map[string]interface{}{
		constants.FieldLatitude:  sample.Coordinates.Latitude,
		constants.FieldLongitude: sample.Coordinates.Longitude,
		constants.FieldSpeed:     sample.SpeedKmh,
		constants.FieldHeading:   sample.Heading,
		constants.FieldTimestamp: sample.Timestamp.UTC().Format(time.RFC3339),
		constants.FieldGeohash:   utils.EncodePosition(sample.Coordinates, geohashPrecision),
	}
	if err := r.cache.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store trip position: %w", err)
	}
	if err := r.cache.Expire(ctx, key, r.positionTTL); err != nil {
		return fmt.Errorf("failed to set trip position TTL: %w", err)
	}

	if err := r.cache.GeoAdd(ctx, constants.KeyTripGeo, sample.Coordinates.Longitude, sample.Coordinates.Latitude, sample.TripID); err != nil {
		return fmt.Errorf("failed to index trip position: %w", err)
	}
	return nil
}

// GetTripPosition returns the latest position sample for a trip, or
// ErrNotFound when no recent sample exists
func (r *PresenceRepo) GetTripPosition(ctx context.Context, tripID string) (*models.PositionSample, error) {
	key := fmt.Sprintf(constants.KeyTripPosition, tripID)
	fields, err := r.cache.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip position: %w", err)
	}
	if len(fields) == 0 {
		return nil, realtime.ErrNotFound
	}

	sample := &models.PositionSample{TripID: tripID}
	if sample.Coordinates.Latitude, err = strconv.ParseFloat(fields[constants.FieldLatitude], 64); err != nil {
		return nil, fmt.Errorf("corrupt position latitude: %w", err)
	}
	if sample.Coordinates.Longitude, err = strconv.ParseFloat(fields[constants.FieldLongitude], 64); err != nil {
		return nil, fmt.Errorf("corrupt position longitude: %w", err)
	}
	if sample.SpeedKmh, err = strconv.ParseFloat(fields[constants.FieldSpeed], 64); err != nil {
		return nil, fmt.Errorf("corrupt position speed: %w", err)
	}
	if sample.Heading, err = strconv.ParseFloat(fields[constants.FieldHeading], 64); err != nil {
		return nil, fmt.Errorf("corrupt position heading: %w", err)
	}
	if sample.Timestamp, err = time.Parse(time.RFC3339, fields[constants.FieldTimestamp]); err != nil {
		return nil, fmt.Errorf("corrupt position timestamp: %w", err)
	}
	return sample, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime"
)

// TripRepo provides trip data access over PostgreSQL
type TripRepo struct {
	db *sqlx.DB
}

// NewTripRepo creates a new trip repository
func NewTripRepo(db *sqlx.DB) *TripRepo {
	return &TripRepo{db: db}
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	query := `
		SELECT id, driver_id,
		       origin_latitude, origin_longitude, origin_address,
		       destination_latitude, destination_longitude, destination_address,
		       departure_at, seats_total, seats_available, auto_accept,
		       status, started_at, completed_at, cancelled_at, created_at, updated_at
		FROM trips
		WHERE id = $1
	`

	trip := &models.Trip{}
	row := r.db.QueryRowContext(ctx, query, id)
	err := row.Scan(
		&trip.ID,
		&trip.DriverID,
		&trip.Origin.Latitude,
		&trip.Origin.Longitude,
		&trip.Origin.Address,
		&trip.Destination.Latitude,
		&trip.Destination.Longitude,
		&trip.Destination.Address,
		&trip.DepartureAt,
		&trip.SeatsTotal,
		&trip.SeatsAvailable,
		&trip.AutoAccept,
		&trip.Status,
		&trip.StartedAt,
		&trip.CompletedAt,
		&trip.CancelledAt,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, realtime.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// UpdateTripStatus transitions the trip's status with a compare-and-swap
// on the expected current status. A racing transition loses the swap and
// gets ErrInvalidTripState.
func (r *TripRepo) UpdateTripStatus(ctx context.Context, id string, from, to models.TripStatus) error {
	query := `
		UPDATE trips
		SET status = $1,
		    started_at = CASE WHEN $1 = 'IN_PROGRESS' THEN NOW() ELSE started_at END,
		    completed_at = CASE WHEN $1 = 'COMPLETED' THEN NOW() ELSE completed_at END,
		    cancelled_at = CASE WHEN $1 = 'CANCELLED' THEN NOW() ELSE cancelled_at END,
		    updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return realtime.ErrInvalidTripState
	}
	return nil
}

// ReserveSeats decrements seats_available by qty in one statement; the
// WHERE clause is the storage-level guard against going negative.
func (r *TripRepo) ReserveSeats(ctx context.Context, tripID string, qty int) (int, error) {
	query := `
		UPDATE trips
		SET seats_available = seats_available - $1, updated_at = NOW()
		WHERE id = $2 AND seats_available >= $1
		RETURNING seats_available
	`

	var newAvailable int
	err := r.db.QueryRowContext(ctx, query, qty, tripID).Scan(&newAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		// either the trip is gone or the seats are
		if _, getErr := r.GetTrip(ctx, tripID); getErr != nil {
			return 0, getErr
		}
		return 0, realtime.ErrInsufficientSeats
	}
	if err != nil {
		return 0, fmt.Errorf("failed to reserve seats: %w", err)
	}
	return newAvailable, nil
}

// ReleaseSeats increments seats_available by qty, clamped at seats_total.
// Reports whether clamping occurred so the caller can log the anomaly.
// The CTE captures the pre-update value, which RETURNING cannot see.
func (r *TripRepo) ReleaseSeats(ctx context.Context, tripID string, qty int) (int, bool, error) {
	query := `
		WITH prev AS (
			SELECT seats_available FROM trips WHERE id = $2 FOR UPDATE
		)
		UPDATE trips
		SET seats_available = LEAST(trips.seats_available + $1, trips.seats_total),
		    updated_at = NOW()
		FROM prev
		WHERE trips.id = $2
		RETURNING trips.seats_available, trips.seats_total, prev.seats_available
	`

	var newAvailable, total, prevAvailable int
	err := r.db.QueryRowContext(ctx, query, qty, tripID).Scan(&newAvailable, &total, &prevAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, realtime.ErrNotFound
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to release seats: %w", err)
	}

	clamped := prevAvailable+qty > total
	return newAvailable, clamped, nil
}

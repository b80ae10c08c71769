package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime"
)

// ReservationRepo provides reservation data access over PostgreSQL
type ReservationRepo struct {
	db *sqlx.DB
}

// NewReservationRepo creates a new reservation repository
func NewReservationRepo(db *sqlx.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// CreateReservation inserts a new reservation
func (r *ReservationRepo) CreateReservation(ctx context.Context, res *models.Reservation) error {
	query := `
		INSERT INTO reservations (
			id, trip_id, passenger_id, seats,
			pickup_latitude, pickup_longitude, pickup_address,
			dropoff_latitude, dropoff_longitude, dropoff_address,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		res.ID,
		res.TripID,
		res.PassengerID,
		res.Seats,
		res.Pickup.Latitude,
		res.Pickup.Longitude,
		res.Pickup.Address,
		res.Dropoff.Latitude,
		res.Dropoff.Longitude,
		res.Dropoff.Address,
		res.Status,
		res.CreatedAt,
		res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// GetReservation retrieves a reservation by ID
func (r *ReservationRepo) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	query := `
		SELECT id, trip_id, passenger_id, seats,
		       pickup_latitude, pickup_longitude, pickup_address,
		       dropoff_latitude, dropoff_longitude, dropoff_address,
		       status, COALESCE(cancel_reason, ''), picked_up_at, dropped_off_at,
		       created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	res := &models.Reservation{}
	row := r.db.QueryRowContext(ctx, query, id)
	err := row.Scan(
		&res.ID,
		&res.TripID,
		&res.PassengerID,
		&res.Seats,
		&res.Pickup.Latitude,
		&res.Pickup.Longitude,
		&res.Pickup.Address,
		&res.Dropoff.Latitude,
		&res.Dropoff.Longitude,
		&res.Dropoff.Address,
		&res.Status,
		&res.CancelReason,
		&res.PickedUpAt,
		&res.DroppedOffAt,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, realtime.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return res, nil
}

// UpdateReservationStatus transitions the reservation's status with a
// compare-and-swap on the expected current status. Of two racing
// transitions only one sees its expected status; the loser gets
// ErrInvalidReservationState.
func (r *ReservationRepo) UpdateReservationStatus(ctx context.Context, id string, from, to models.ReservationStatus, reason string) error {
	query := `
		UPDATE reservations
		SET status = $1,
		    cancel_reason = NULLIF($2, ''),
		    updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, to, reason, id, from)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return realtime.ErrInvalidReservationState
	}
	return nil
}

// ListByTripAndStatus returns the trip's reservations holding any of the
// given statuses
func (r *ReservationRepo) ListByTripAndStatus(ctx context.Context, tripID string, statuses ...models.ReservationStatus) ([]*models.Reservation, error) {
	query := `
		SELECT id, trip_id, passenger_id, seats,
		       pickup_latitude, pickup_longitude, pickup_address,
		       dropoff_latitude, dropoff_longitude, dropoff_address,
		       status, COALESCE(cancel_reason, ''), picked_up_at, dropped_off_at,
		       created_at, updated_at
		FROM reservations
		WHERE trip_id = ? AND status IN (?)
		ORDER BY created_at
	`

	query, args, err := sqlx.In(query, tripID, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to expand status list: %w", err)
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*models.Reservation
	for rows.Next() {
		res := &models.Reservation{}
		if err := rows.Scan(
			&res.ID,
			&res.TripID,
			&res.PassengerID,
			&res.Seats,
			&res.Pickup.Latitude,
			&res.Pickup.Longitude,
			&res.Pickup.Address,
			&res.Dropoff.Latitude,
			&res.Dropoff.Longitude,
			&res.Dropoff.Address,
			&res.Status,
			&res.CancelReason,
			&res.PickedUpAt,
			&res.DroppedOffAt,
			&res.CreatedAt,
			&res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// MarkPickedUp records the boarding timestamp
func (r *ReservationRepo) MarkPickedUp(ctx context.Context, id string, at time.Time) error {
	return r.markTimestamp(ctx, id, "picked_up_at", at)
}

// MarkDroppedOff records the dropoff timestamp
func (r *ReservationRepo) MarkDroppedOff(ctx context.Context, id string, at time.Time) error {
	return r.markTimestamp(ctx, id, "dropped_off_at", at)
}

func (r *ReservationRepo) markTimestamp(ctx context.Context, id, column string, at time.Time) error {
	// column comes from the two callers above, never from input
	query := fmt.Sprintf(`UPDATE reservations SET %s = $1, updated_at = NOW() WHERE id = $2`, column)

	result, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to mark %s: %w", column, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return realtime.ErrNotFound
	}
	return nil
}

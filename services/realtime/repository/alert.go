package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime"
)

// AlertRepo provides emergency alert data access over PostgreSQL.
// The participant snapshot is stored as JSONB alongside the alert row so
// the set frozen at trigger time survives later reservation changes.
type AlertRepo struct {
	db *sqlx.DB
}

// NewAlertRepo creates a new alert repository
func NewAlertRepo(db *sqlx.DB) *AlertRepo {
	return &AlertRepo{db: db}
}

// CreateAlert inserts a new emergency alert
func (r *AlertRepo) CreateAlert(ctx context.Context, alert *models.EmergencyAlert) error {
	participants, err := json.Marshal(alert.Participants)
	if err != nil {
		return fmt.Errorf("failed to encode participants: %w", err)
	}

	query := `
		INSERT INTO emergency_alerts (
			id, trip_id, triggered_by, type, description,
			latitude, longitude, severity, status, participants, created_at
		) VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		alert.ID,
		alert.TripID,
		alert.TriggeredBy,
		alert.Type,
		alert.Description,
		alert.Position.Latitude,
		alert.Position.Longitude,
		alert.Severity,
		alert.Status,
		participants,
		alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetAlert retrieves an emergency alert by ID
func (r *AlertRepo) GetAlert(ctx context.Context, id string) (*models.EmergencyAlert, error) {
	query := `
		SELECT id, COALESCE(trip_id, ''), triggered_by, type, description,
		       latitude, longitude, severity, status, participants,
		       COALESCE(resolved_by, ''), COALESCE(resolution, ''),
		       created_at, resolved_at
		FROM emergency_alerts
		WHERE id = $1
	`

	alert := &models.EmergencyAlert{}
	var participants []byte
	row := r.db.QueryRowContext(ctx, query, id)
	err := row.Scan(
		&alert.ID,
		&alert.TripID,
		&alert.TriggeredBy,
		&alert.Type,
		&alert.Description,
		&alert.Position.Latitude,
		&alert.Position.Longitude,
		&alert.Severity,
		&alert.Status,
		&participants,
		&alert.ResolvedBy,
		&alert.Resolution,
		&alert.CreatedAt,
		&alert.ResolvedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, realtime.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	if err := json.Unmarshal(participants, &alert.Participants); err != nil {
		return nil, fmt.Errorf("failed to decode participants: %w", err)
	}
	return alert, nil
}

// UpdateAlertStatus transitions the alert's status with a compare-and-swap
// on the expected current status; a lost race returns ErrInvalidAlertState.
// Resolution metadata is only written when the target state is terminal.
func (r *AlertRepo) UpdateAlertStatus(ctx context.Context, id string, from, to models.AlertStatus, resolvedBy, resolution string) error {
	query := `
		UPDATE emergency_alerts
		SET status = $1,
		    resolved_by = CASE WHEN $2 IN ('RESOLVED', 'FALSE_ALARM') THEN $3 ELSE resolved_by END,
		    resolution = CASE WHEN $2 IN ('RESOLVED', 'FALSE_ALARM') THEN NULLIF($4, '') ELSE resolution END,
		    resolved_at = CASE WHEN $2 IN ('RESOLVED', 'FALSE_ALARM') THEN NOW() ELSE resolved_at END
		WHERE id = $5 AND status = $6
	`

	result, err := r.db.ExecContext(ctx, query, to, string(to), resolvedBy, resolution, id, from)
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return realtime.ErrInvalidAlertState
	}
	return nil
}

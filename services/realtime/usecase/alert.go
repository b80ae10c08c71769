package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/logger"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/internal/pkg/observability"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/rooms"
)

// TriggerAlert creates an emergency alert with a participant snapshot
// taken at trigger time. The snapshot is deliberate: it captures who
// was on the trip when the alarm fired, independent of later changes.
// Persist comes first; no broadcast ever precedes the committed alert.
func (uc *realtimeUC) TriggerAlert(ctx context.Context, actor models.Actor, req *models.TriggerAlertRequest) (*models.EmergencyAlert, error) {
	if req.Type == "" || !req.Position.Valid() || !models.ValidAlertSeverity(req.Severity) {
		return nil, realtime.ErrValidation
	}

	participants := []string{actor.ID}
	if req.TripID != "" {
		trip, err := uc.trips.GetTrip(ctx, req.TripID)
		if err != nil {
			return nil, err
		}
		confirmed, err := uc.reservations.ListByTripAndStatus(ctx, req.TripID,
			models.ReservationStatusConfirmed, models.ReservationStatusCompleted)
		if err != nil {
			return nil, err
		}

		authorized := trip.DriverID == actor.ID
		participants = []string{trip.DriverID}
		for _, res := range confirmed {
			if res.PassengerID == actor.ID {
				authorized = true
			}
			if res.Status == models.ReservationStatusConfirmed {
				participants = append(participants, res.PassengerID)
			}
		}
		if !authorized {
			return nil, realtime.ErrForbidden
		}
	}

	alert := &models.EmergencyAlert{
		ID:           uuid.NewString(),
		TripID:       req.TripID,
		TriggeredBy:  actor.ID,
		Type:         req.Type,
		Description:  req.Description,
		Position:     req.Position,
		Severity:     req.Severity,
		Status:       models.AlertStatusActive,
		Participants: participants,
		CreatedAt:    time.Now(),
	}
	if err := uc.alerts.CreateAlert(ctx, alert); err != nil {
		return nil, err
	}

	observability.AlertsTotal.WithLabelValues(string(req.Severity)).Inc()
	logger.Warn("Emergency alert triggered",
		logger.String("alert_id", alert.ID),
		logger.String("trip_id", alert.TripID),
		logger.String("severity", string(alert.Severity)),
		logger.Strings("participants", participants))

	if alert.TripID != "" {
		uc.rooms.Broadcast(rooms.TripRoom(alert.TripID).ID(), constants.EventEmergencyAlert, alert, "")
	}
	for _, p := range participants {
		uc.rooms.Broadcast(rooms.UserRoom(p).ID(), constants.EventEmergencyAlert, alert, "")
		if !uc.presence.IsOnline(p) {
			observability.OfflineNotifiesTotal.Inc()
			if err := uc.notify.PushEmergency(ctx, p, alert); err != nil {
				logger.Warn("Emergency notification dispatch failed",
					logger.String("user_id", p),
					logger.Err(err))
			}
		}
	}

	return alert, nil
}

// ResolveAlert closes an alert as RESOLVED or, for privileged roles,
// classifies it as FALSE_ALARM.
func (uc *realtimeUC) ResolveAlert(ctx context.Context, actor models.Actor, req *models.ResolveAlertRequest) (*models.EmergencyAlert, error) {
	if req.AlertID == "" {
		return nil, realtime.ErrValidation
	}

	alert, err := uc.alerts.GetAlert(ctx, req.AlertID)
	if err != nil {
		return nil, err
	}

	target := models.AlertStatusResolved
	if req.FalseAlarm {
		target = models.AlertStatusFalseAlarm
	}
	if !models.CanTransitionAlert(alert.Status, target) {
		return nil, realtime.ErrInvalidAlertState
	}
	if err := uc.authorizeAlertResolution(ctx, actor, alert, target); err != nil {
		return nil, err
	}

	if err := uc.alerts.UpdateAlertStatus(ctx, alert.ID, alert.Status, target, actor.ID, req.Comment); err != nil {
		return nil, err
	}
	now := time.Now()
	alert.Status = target
	alert.ResolvedBy = actor.ID
	alert.Resolution = req.Comment
	alert.ResolvedAt = &now

	uc.broadcastAlertUpdate(alert, constants.EventEmergencyResolved)
	return alert, nil
}

// EscalateAlert moves an active alert into IN_PROGRESS handling.
// Administrative transition: privileged roles only.
func (uc *realtimeUC) EscalateAlert(ctx context.Context, actor models.Actor, alertID string) (*models.EmergencyAlert, error) {
	if !actor.IsPrivileged() {
		return nil, realtime.ErrForbidden
	}

	alert, err := uc.alerts.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransitionAlert(alert.Status, models.AlertStatusInProgress) {
		return nil, realtime.ErrInvalidAlertState
	}
	if err := uc.alerts.UpdateAlertStatus(ctx, alert.ID, alert.Status, models.AlertStatusInProgress, actor.ID, ""); err != nil {
		return nil, err
	}
	alert.Status = models.AlertStatusInProgress

	uc.broadcastAlertUpdate(alert, constants.EventEmergencyAlert)
	return alert, nil
}

// authorizeAlertResolution: the triggering identity or the trip's
// driver may resolve; FALSE_ALARM classification needs a privileged role.
func (uc *realtimeUC) authorizeAlertResolution(ctx context.Context, actor models.Actor, alert *models.EmergencyAlert, target models.AlertStatus) error {
	if target == models.AlertStatusFalseAlarm {
		if !actor.IsPrivileged() {
			return realtime.ErrForbidden
		}
		return nil
	}
	if actor.IsPrivileged() || actor.ID == alert.TriggeredBy {
		return nil
	}
	if alert.TripID != "" {
		trip, err := uc.trips.GetTrip(ctx, alert.TripID)
		if err != nil {
			return err
		}
		if trip.DriverID == actor.ID {
			return nil
		}
	}
	return realtime.ErrForbidden
}

// broadcastAlertUpdate fans an alert state change out to the snapshot
// participants (and the trip room). The snapshot is fixed at trigger
// time; later joiners do not receive alert traffic retroactively.
func (uc *realtimeUC) broadcastAlertUpdate(alert *models.EmergencyAlert, event string) {
	if alert.TripID != "" {
		uc.rooms.Broadcast(rooms.TripRoom(alert.TripID).ID(), event, alert, "")
	}
	for _, p := range alert.Participants {
		uc.rooms.Broadcast(rooms.UserRoom(p).ID(), event, alert, "")
	}
}

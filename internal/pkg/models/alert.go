package models

import "time"

// AlertStatus represents the lifecycle state of an emergency alert
type AlertStatus string

const (
	AlertStatusActive     AlertStatus = "ACTIVE"
	AlertStatusInProgress AlertStatus = "IN_PROGRESS"
	AlertStatusResolved   AlertStatus = "RESOLVED"
	AlertStatusFalseAlarm AlertStatus = "FALSE_ALARM"
)

var alertTransitions = map[AlertStatus][]AlertStatus{
	AlertStatusActive:     {AlertStatusInProgress, AlertStatusResolved, AlertStatusFalseAlarm},
	AlertStatusInProgress: {AlertStatusResolved, AlertStatusFalseAlarm},
}

// CanTransitionAlert reports whether an alert may move between states
func CanTransitionAlert(from, to AlertStatus) bool {
	for _, next := range alertTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AlertSeverity grades an emergency alert
type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "LOW"
	AlertSeverityMedium   AlertSeverity = "MEDIUM"
	AlertSeverityHigh     AlertSeverity = "HIGH"
	AlertSeverityCritical AlertSeverity = "CRITICAL"
)

// ValidAlertSeverity reports whether the severity is one of the known grades
func ValidAlertSeverity(s AlertSeverity) bool {
	switch s {
	case AlertSeverityLow, AlertSeverityMedium, AlertSeverityHigh, AlertSeverityCritical:
		return true
	}
	return false
}

// EmergencyAlert is a triggered emergency with a fixed participant snapshot.
// Participants captures who was on the trip at trigger time; it is never
// recomputed afterwards.
type EmergencyAlert struct {
	ID           string        `json:"id" db:"id"`
	TripID       string        `json:"trip_id,omitempty" db:"trip_id"`
	TriggeredBy  string        `json:"triggered_by" db:"triggered_by"`
	Type         string        `json:"type" db:"type"`
	Description  string        `json:"description" db:"description"`
	Position     Coordinates   `json:"position"`
	Severity     AlertSeverity `json:"severity" db:"severity"`
	Status       AlertStatus   `json:"status" db:"status"`
	Participants []string      `json:"participants" db:"participants"`
	ResolvedBy   string        `json:"resolved_by,omitempty" db:"resolved_by"`
	Resolution   string        `json:"resolution,omitempty" db:"resolution"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	ResolvedAt   *time.Time    `json:"resolved_at,omitempty" db:"resolved_at"`
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConnectionsLive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tripsync", Name: "connections_live", Help: "Live WebSocket connections"})
	IdentitiesOnline = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tripsync", Name: "identities_online", Help: "Identities with at least one live connection"})
	RoomsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tripsync", Name: "rooms_active", Help: "Rooms with at least one member"})

	BroadcastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripsync", Name: "broadcasts_total", Help: "Room broadcasts by event"},
		[]string{"event"},
	)
	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripsync", Name: "reservations_total", Help: "Reservation transitions by outcome"},
		[]string{"outcome"},
	)
	AlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripsync", Name: "alerts_total", Help: "Emergency alerts by severity"},
		[]string{"severity"},
	)
	OfflineNotifiesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tripsync", Name: "offline_notifies_total", Help: "Out-of-band notification dispatches"})
	SeatClampsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tripsync", Name: "seat_clamps_total", Help: "Seat releases clamped at trip capacity"})
)

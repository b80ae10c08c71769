package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridelink/tripsync/internal/utils"
	"github.com/ridelink/tripsync/services/realtime"
)

// RealtimeHandler serves the read-side HTTP endpoints. All mutation
// flows over the WebSocket protocol; these exist for dashboards and
// support tooling.
type RealtimeHandler struct {
	uc realtime.RealtimeUC
}

// NewRealtimeHandler creates a new HTTP handler
func NewRealtimeHandler(uc realtime.RealtimeUC) *RealtimeHandler {
	return &RealtimeHandler{uc: uc}
}

// GetTrip handles trip retrieval requests
func (h *RealtimeHandler) GetTrip(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.uc.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		return mapReadError(c, err, "Failed to retrieve trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// GetTripPosition handles latest-position retrieval for a trip
func (h *RealtimeHandler) GetTripPosition(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	sample, err := h.uc.GetTripPosition(c.Request().Context(), tripID)
	if err != nil {
		return mapReadError(c, err, "Failed to retrieve trip position")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip position retrieved successfully", sample)
}

// GetAlert handles emergency alert retrieval requests
func (h *RealtimeHandler) GetAlert(c echo.Context) error {
	alertID := c.Param("id")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Invalid alert ID")
	}

	alert, err := h.uc.GetAlert(c.Request().Context(), alertID)
	if err != nil {
		return mapReadError(c, err, "Failed to retrieve alert")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Alert retrieved successfully", alert)
}

// GetUserPresence handles presence lookups for an identity
func (h *RealtimeHandler) GetUserPresence(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	presence, err := h.uc.GetUserPresence(c.Request().Context(), userID)
	if err != nil {
		return mapReadError(c, err, "Failed to retrieve presence")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Presence retrieved successfully", presence)
}

func mapReadError(c echo.Context, err error, fallback string) error {
	if errors.Is(err, realtime.ErrNotFound) {
		return utils.NotFoundResponse(c, "")
	}
	return utils.InternalServerErrorResponse(c, fallback)
}

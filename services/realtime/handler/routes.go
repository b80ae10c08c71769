package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ridelink/tripsync/internal/pkg/models"
	httphandler "github.com/ridelink/tripsync/services/realtime/handler/http"
	wshandler "github.com/ridelink/tripsync/services/realtime/handler/websocket"
)

// Handler coordinates the protocol handlers for the realtime service
type Handler struct {
	realtimeHandler *httphandler.RealtimeHandler
	wsHandler       *wshandler.WSHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	realtimeHandler *httphandler.RealtimeHandler,
	wsHandler *wshandler.WSHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		realtimeHandler: realtimeHandler,
		wsHandler:       wsHandler,
		cfg:             cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &models.WebSocketClaims{}
		},
		SuccessHandler: func(c echo.Context) {
			if token, ok := c.Get("user").(*jwt.Token); ok {
				if claims, ok := token.Claims.(*models.WebSocketClaims); ok {
					c.Set("user_id", claims.UserID)
					c.Set("role", claims.Role)
				}
			}
		},
	})
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints (no authentication)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Read-side routes with JWT middleware
	protected := e.Group("", h.GetJWTMiddleware())

	tripGroup := protected.Group("/trips")
	tripGroup.GET("/:id", h.realtimeHandler.GetTrip)
	tripGroup.GET("/:id/position", h.realtimeHandler.GetTripPosition)

	alertGroup := protected.Group("/alerts")
	alertGroup.GET("/:id", h.realtimeHandler.GetAlert)

	userGroup := protected.Group("/users")
	userGroup.GET("/:id/presence", h.realtimeHandler.GetUserPresence)

	// The WebSocket endpoint authenticates inside the upgrade handshake:
	// browsers cannot set headers there, so the manager also accepts a
	// token query parameter.
	e.GET("/ws", h.wsHandler.HandleWebSocket)
}

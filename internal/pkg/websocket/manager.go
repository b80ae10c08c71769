package websocket

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/jwt"
	"github.com/ridelink/tripsync/internal/pkg/logger"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/internal/pkg/observability"
)

// Manager authenticates and tracks WebSocket connections
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client // keyed by connection ID
	jwtCfg   models.JWTConfig
	rtCfg    models.RealtimeConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtCfg models.JWTConfig, rtCfg models.RealtimeConfig) *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		jwtCfg:  jwtCfg,
		rtCfg:   rtCfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates the request, upgrades it, and hands the
// resulting client to the caller. It blocks until the client's read loop
// returns and always tears the connection down afterwards.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	claims, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := NewClient(ws, uuid.NewString(), claims.UserID, claims.Role, m.rtCfg)
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(client.idleTimeout))
	})

	m.addClient(client)
	go client.WritePump()

	defer func() {
		client.Close()
		m.removeClient(client.ConnID)
	}()

	return handleClient(client)
}

// authenticate extracts and verifies the bearer credential from the
// handshake. Browsers cannot set headers on WebSocket upgrades, so a
// token query parameter is accepted as a fallback.
func (m *Manager) authenticate(c echo.Context) (*models.WebSocketClaims, error) {
	tokenString := ""
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, constants.ErrCodeAuthFailed)
		}
		tokenString = parts[1]
	} else {
		tokenString = c.QueryParam("token")
	}

	if tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, constants.ErrCodeAuthFailed)
	}

	claims, err := jwt.VerifyToken(tokenString, m.jwtCfg)
	if err != nil {
		logger.Warn("Token verification failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, constants.ErrCodeAuthFailed)
	}

	return claims, nil
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.ConnID] = client
	observability.ConnectionsLive.Set(float64(len(m.clients)))
}

func (m *Manager) removeClient(connID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, connID)
	observability.ConnectionsLive.Set(float64(len(m.clients)))
}

// SendError sends an error frame to a client
func (m *Manager) SendError(client *Client, code string, message string) error {
	return client.Send(constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

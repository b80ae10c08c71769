package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ridelink/tripsync/internal/pkg/logger"
	"github.com/ridelink/tripsync/internal/pkg/models"
)

var (
	// ErrClientClosed is returned when sending on a torn-down connection
	ErrClientClosed = errors.New("websocket client closed")
	// ErrSendBufferFull is returned when the outbound queue is saturated
	ErrSendBufferFull = errors.New("websocket send buffer full")
)

// Client is a single live WebSocket connection bound to one identity.
// Many clients may share one identity (multi-device). All writes go
// through the outbound channel: gorilla connections allow one writer.
type Client struct {
	ConnID string
	UserID string
	Role   string

	conn         *websocket.Conn
	send         chan models.WSMessage
	done         chan struct{}
	closeOnce    sync.Once
	writeWait    time.Duration
	pingInterval time.Duration
	idleTimeout  time.Duration
}

// NewClient wraps an upgraded connection. A nil conn is tolerated so
// handler tests can construct clients without a live socket.
func NewClient(conn *websocket.Conn, connID, userID, role string, cfg models.RealtimeConfig) *Client {
	bufSize := cfg.SendBufferSize
	if bufSize <= 0 {
		bufSize = 64
	}
	return &Client{
		ConnID:       connID,
		UserID:       userID,
		Role:         role,
		conn:         conn,
		send:         make(chan models.WSMessage, bufSize),
		done:         make(chan struct{}),
		writeWait:    durationOr(cfg.WriteTimeoutSec, 10*time.Second),
		pingInterval: durationOr(cfg.HeartbeatIntervalSec, 25*time.Second),
		idleTimeout:  durationOr(cfg.IdleTimeoutSec, 60*time.Second),
	}
}

func durationOr(secs int, def time.Duration) time.Duration {
	if secs <= 0 {
		return def
	}
	return time.Duration(secs) * time.Second
}

// ConnectionID returns the connection's unique ID
func (c *Client) ConnectionID() string {
	return c.ConnID
}

// Identity returns the actor bound to this connection
func (c *Client) Identity() models.Actor {
	return models.Actor{ID: c.UserID, Role: c.Role}
}

// Send enqueues a frame for delivery. It never blocks: a saturated
// buffer means the peer is not draining and the connection is dropped
// by the caller's error handling instead.
func (c *Client) Send(event string, data interface{}) error {
	if c.conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	msg := models.WSMessage{Event: event, Data: rawData}
	select {
	case <-c.done:
		return ErrClientClosed
	case c.send <- msg:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// ReadMessage blocks for the next inbound frame, refreshing the idle
// deadline on every read. Idle connections fail the deadline and are
// torn down through the same path as an explicit close.
func (c *Client) ReadMessage() (*models.WSMessage, error) {
	if c.conn == nil {
		return nil, io.EOF
	}
	if err := c.conn.SetReadDeadline(time.Now().Add(c.idleTimeout)); err != nil {
		return nil, err
	}
	var msg models.WSMessage
	if err := c.conn.ReadJSON(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// WritePump drains the outbound queue onto the wire and keeps the
// heartbeat going. Run in its own goroutine; returns when the client
// closes or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Debug("WebSocket write failed",
					logger.String("conn_id", c.ConnID),
					logger.Err(err))
				c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		}
	}
}

// Close tears the connection down. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

// Done is closed when the client has been torn down
func (c *Client) Done() <-chan struct{} {
	return c.done
}

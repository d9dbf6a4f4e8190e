package realtime

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// writeWait bounds a single write to the peer.
	writeWait = 10 * time.Second
	// pongWait is how long to wait for a pong before declaring the
	// connection dead.
	pongWait = 60 * time.Second
	// pingPeriod must be shorter than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// maxMessageSize bounds inbound control messages.
	maxMessageSize = 512
	// sendBuffer is the per-connection outbound queue. A subscriber that
	// falls this far behind is evicted rather than allowed to block the
	// broadcast path.
	sendBuffer = 64
)

var errSlowSubscriber = errors.New("subscriber send buffer full")

// controlMessage is the inbound join/leave request from a connection.
type controlMessage struct {
	Action string `json:"action"`
	Scope  string `json:"scope"`
}

// Client wraps a websocket connection as a registry subscriber.
// Outbound payloads go through a buffered channel so a slow peer never
// blocks the broadcaster.
type Client struct {
	conn     *websocket.Conn
	registry *Registry
	logger   *zap.SugaredLogger
	send     chan []byte
	closing  chan struct{}
	once     sync.Once
}

// NewClient wraps an upgraded websocket connection.
func NewClient(conn *websocket.Conn, registry *Registry, logger *zap.SugaredLogger) *Client {
	return &Client{
		conn:     conn,
		registry: registry,
		logger:   logger,
		send:     make(chan []byte, sendBuffer),
		closing:  make(chan struct{}),
	}
}

// Send queues a payload for delivery. It fails fast when the buffer is
// full or the connection is closing.
func (c *Client) Send(payload []byte) error {
	select {
	case <-c.closing:
		return errors.New("connection closed")
	case c.send <- payload:
		return nil
	default:
		return errSlowSubscriber
	}
}

// Close terminates the connection once; safe to call concurrently.
func (c *Client) Close() {
	c.once.Do(func() {
		close(c.closing)
		_ = c.conn.Close()
	})
}

// Run services the connection until it closes, then removes it from
// every scope. Blocks the caller.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump consumes join/leave messages and keeps liveness deadlines.
func (c *Client) readPump() {
	defer func() {
		c.registry.Drop(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debugw("websocket read failed", "error", err)
			}
			return
		}

		var msg controlMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debugw("ignoring malformed control message", "error", err)
			continue
		}

		switch msg.Action {
		case "join":
			if ValidScope(msg.Scope) {
				c.registry.Join(msg.Scope, c)
			}
		case "leave":
			if ValidScope(msg.Scope) {
				c.registry.Leave(msg.Scope, c)
			}
		}
	}
}

// writePump drains the send queue and pings the peer.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.closing:
			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	pongWait   = 60 * time.Second
	writeWait  = 10 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// client is one open connection. Writes are serialized per connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, data)
}

// Hub keeps the live websocket connections per profile and pushes messages
// to them. A profile may have several connections open.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[string]map[*client]struct{}
}

func NewHub(logger *slog.Logger, allowedOrigins []string) *Hub {
	h := &Hub{
		logger:  logger.With("component", "websocket"),
		clients: make(map[string]map[*client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

// originChecker allows any origin when the list is empty.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		_, ok := set[r.Header.Get("Origin")]
		return ok
	}
}

func (h *Hub) Name() string {
	return "websocket"
}

// Send pushes msg to every connection of the recipient. An offline
// recipient is not an error. Connections that fail the write are dropped
// and the send still counts as done, so a retry never repeats the message
// on the connections that got it.
func (h *Hub) Send(_ context.Context, msg Message) error {
	h.mu.RLock()
	conns := make([]*client, 0, len(h.clients[msg.RecipientID]))
	for c := range h.clients[msg.RecipientID] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	if len(conns) == 0 {
		return nil
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	for _, c := range conns {
		if err := c.write(websocket.TextMessage, data); err != nil {
			h.logger.Warn("Dropping websocket connection", "profile_id", msg.RecipientID, "error", err)
			h.unregister(msg.RecipientID, c)
			_ = c.conn.Close()
		}
	}
	return nil
}

// Connections reports the number of open connections of a profile.
func (h *Hub) Connections(profileID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[profileID])
}

// Serve upgrades the request and blocks until the client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, profileID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{conn: conn}
	h.register(profileID, c)
	defer func() {
		h.unregister(profileID, c)
		_ = conn.Close()
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go h.ping(c, done)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Unexpected websocket close", "profile_id", profileID, "error", err)
			}
			return nil
		}
	}
}

func (h *Hub) ping(c *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) register(profileID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[profileID] == nil {
		h.clients[profileID] = make(map[*client]struct{})
	}
	h.clients[profileID][c] = struct{}{}
	h.logger.Debug("Websocket client registered", "profile_id", profileID)
}

func (h *Hub) unregister(profileID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.clients[profileID]
	if !ok {
		return
	}
	delete(conns, c)
	if len(conns) == 0 {
		delete(h.clients, profileID)
	}
}

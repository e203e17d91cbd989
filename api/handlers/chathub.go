package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nyayconnect/nyayconnect-api/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// cross-origin browsers are filtered by the CORS layer on the REST
	// surface; the websocket channel authenticates via token instead
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChatHub maps logical chat rooms to the live connections currently joined
// to them. All access to the room map goes through the mutex; fan-out is
// best-effort and never blocks on a slow recipient.
type ChatHub struct {
	mu    sync.RWMutex
	rooms map[int64]map[*ChatClient]bool
}

// NewChatHub creates an empty hub ready to accept connections
func NewChatHub() *ChatHub {
	return &ChatHub{
		rooms: make(map[int64]map[*ChatClient]bool),
	}
}

// Join associates a live connection with a room group. A connection may be
// joined to any number of rooms; joining persists nothing.
func (h *ChatHub) Join(roomID int64, c *ChatClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*ChatClient]bool)
	}
	h.rooms[roomID][c] = true
	zap.S().Debugw("client joined room", "connection", c.id, "room", roomID)
}

// Remove drops a connection from every room it joined
func (h *ChatHub) Remove(c *ChatClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for roomID, members := range h.rooms {
		if members[c] {
			delete(members, c)
			if len(members) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
}

// RoomSize returns the number of live connections joined to a room
func (h *ChatHub) RoomSize(roomID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// BroadcastToRoom delivers the payload to every connection currently joined
// to the room and returns the number of deliveries. A recipient whose send
// buffer is full is skipped rather than waited on.
func (h *ChatHub) BroadcastToRoom(roomID int64, payload []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for c := range h.rooms[roomID] {
		select {
		case c.send <- payload:
			delivered++
		default:
			zap.S().Warnw("dropping message for slow client", "connection", c.id, "room", roomID)
		}
	}
	return delivered
}

// ChatClient represents one live websocket connection of an authenticated
// user. Outbound frames go through the buffered send channel so broadcasts
// never block on the socket.
type ChatClient struct {
	id     string
	userID int64
	role   models.Role
	conn   *websocket.Conn
	send   chan []byte
	hub    *ChatHub
	chat   *Chat
}

func newChatClient(conn *websocket.Conn, hub *ChatHub, chat *Chat, userID int64, role models.Role) *ChatClient {
	return &ChatClient{
		id:     uuid.New().String(),
		userID: userID,
		role:   role,
		conn:   conn,
		send:   make(chan []byte, 256),
		hub:    hub,
		chat:   chat,
	}
}

// trySend queues a frame for this connection only, without blocking
func (c *ChatClient) trySend(payload []byte) {
	select {
	case c.send <- payload:
	default:
	}
}

func (c *ChatClient) readPump() {
	defer func() {
		c.hub.Remove(c)
		close(c.send)
		c.conn.Close()
		zap.S().Debugw("client disconnected", "connection", c.id, "user", c.userID)
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.S().With(err).Warnw("unexpected websocket close", "connection", c.id)
			}
			return
		}

		var evt models.ChatEvent
		if err := json.Unmarshal(raw, &evt); err != nil {
			zap.S().With(err).Warnw("invalid chat event", "connection", c.id)
			continue
		}

		switch evt.Event {
		case models.EventJoinRoom:
			c.hub.Join(evt.RoomID, c)
		case models.EventSendMessage:
			c.chat.handleSendEvent(c, evt)
		default:
			zap.S().Warnw("unknown chat event", "event", evt.Event, "connection", c.id)
		}
	}
}

func (c *ChatClient) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/nyayconnect/nyayconnect-api/api"
	"github.com/nyayconnect/nyayconnect-api/config"
	"github.com/nyayconnect/nyayconnect-api/databases"
	"github.com/nyayconnect/nyayconnect-api/models"
)

// Chat exported for testing purposes
type Chat struct {
	DB     databases.ChatDatabase
	Hub    *ChatHub
	Secret string
}

var errNotParticipant = errors.New("user is not a room participant")

// findRoomFor returns the room only when userID is one of its two
// participants. Room history and the persist paths all gate on this.
func (c Chat) findRoomFor(ctx context.Context, roomID, userID int64) (*models.ChatRoom, error) {
	room, err := c.DB.FindRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.ClientID != userID && room.LawyerID != userID {
		return nil, errNotParticipant
	}
	return room, nil
}

// roomAccessError writes the status for a failed findRoomFor lookup
func roomAccessError(w http.ResponseWriter, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		config.ErrorStatus("room not found", http.StatusNotFound, w, err)
		return
	}
	if errors.Is(err, errNotParticipant) {
		config.ErrorStatus("you are not a participant of this room", http.StatusForbidden, w, err)
		return
	}
	config.ErrorStatus("failed to get room", http.StatusInternalServerError, w, err)
}

// GetOrCreateRoomHandler returns the room pairing the authenticated client
// with the given lawyer, creating it on first contact
func (c Chat) GetOrCreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())

	var req models.GetOrCreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.LawyerID == 0 || req.LawyerID == userID {
		config.ErrorStatus("a valid lawyer ID is required", http.StatusBadRequest, w, fmt.Errorf("lawyerId %d", req.LawyerID))
		return
	}

	roomID, err := c.DB.GetOrCreateRoom(r.Context(), userID, req.LawyerID)
	if err != nil {
		config.ErrorStatus("failed to get or create room", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.GetOrCreateRoomResponse{
		Success: true,
		RoomID:  roomID,
	})
}

// RoomsHandler lists the caller's rooms, most recently active first
func (c Chat) RoomsHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())
	role, _ := api.RoleFromContext(r.Context())

	var rooms []models.RoomSummary
	var err error
	if role == models.RoleLawyer {
		rooms, err = c.DB.ListRoomsForLawyer(r.Context(), userID)
	} else {
		rooms, err = c.DB.ListRoomsForClient(r.Context(), userID)
	}
	if err != nil {
		config.ErrorStatus("failed to get chat rooms", http.StatusInternalServerError, w, err)
		return
	}
	if len(rooms) == 0 {
		rooms = []models.RoomSummary{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.RoomsResponse{
		Success: true,
		Rooms:   rooms,
	})
}

// MessagesHandler returns a room's full history in chronological order.
// Only the room's two participants may read it.
func (c Chat) MessagesHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())

	roomID, err := strconv.ParseInt(mux.Vars(r)["room_id"], 10, 64)
	if err != nil {
		config.ErrorStatus("invalid room ID", http.StatusBadRequest, w, err)
		return
	}

	if _, err := c.findRoomFor(r.Context(), roomID, userID); err != nil {
		roomAccessError(w, err)
		return
	}

	messages, err := c.DB.ListMessages(r.Context(), roomID)
	if err != nil {
		config.ErrorStatus("failed to get messages", http.StatusInternalServerError, w, err)
		return
	}
	if len(messages) == 0 {
		messages = []models.Message{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.MessagesResponse{
		Success:  true,
		Messages: messages,
	})
}

// SendMessageHandler persists a message over plain HTTP and fans it out to
// any live connections in the room. Persistence commits before any fan-out.
func (c Chat) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.RoomID == 0 || req.Message == "" {
		config.ErrorStatus("room ID and message are required", http.StatusBadRequest, w, fmt.Errorf("missing field"))
		return
	}

	if _, err := c.findRoomFor(r.Context(), req.RoomID, userID); err != nil {
		roomAccessError(w, err)
		return
	}

	msg, err := c.DB.SaveMessage(r.Context(), req.RoomID, userID, req.Message)
	if err != nil {
		config.ErrorStatus("failed to save message", http.StatusInternalServerError, w, err)
		return
	}

	c.broadcastMessage(msg)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
	})
}

// WebSocketHandler upgrades the connection and runs the live chat channel.
// Browsers cannot set an Authorization header on a websocket handshake, so
// the bearer token travels as a query parameter.
func (c Chat) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		config.ErrorStatus("token is missing", http.StatusUnauthorized, w, fmt.Errorf("no token"))
		return
	}
	userID, role, err := api.VerifyToken(token, c.Secret)
	if err != nil {
		config.ErrorStatus("token is invalid or has expired", http.StatusUnauthorized, w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().With(err).Error("websocket upgrade failed")
		return
	}

	client := newChatClient(conn, c.Hub, &c, userID, role)
	zap.S().Infow("client connected to chat", "connection", client.id, "user", userID)

	go client.writePump()
	client.readPump()
}

// handleSendEvent is the websocket send path: persist first, then fan out.
// On persistence failure the sender gets an error frame and nobody else
// hears about the message.
func (c *Chat) handleSendEvent(client *ChatClient, evt models.ChatEvent) {
	ctx := api.ContextWithIdentity(context.Background(), client.userID, client.role)

	if _, err := c.findRoomFor(ctx, evt.RoomID, client.userID); err != nil {
		zap.S().With(err).Warnw("rejected chat message", "room", evt.RoomID, "sender", client.userID)
		errPayload, _ := json.Marshal(models.ChatEvent{
			Event:   models.EventError,
			RoomID:  evt.RoomID,
			Message: "room not found or you are not a participant",
		})
		client.trySend(errPayload)
		return
	}

	msg, err := c.DB.SaveMessage(ctx, evt.RoomID, client.userID, evt.Message)
	if err != nil {
		zap.S().With(err).Errorw("failed to save chat message", "room", evt.RoomID, "sender", client.userID)
		errPayload, _ := json.Marshal(models.ChatEvent{
			Event:   models.EventError,
			RoomID:  evt.RoomID,
			Message: "failed to save message",
		})
		client.trySend(errPayload)
		return
	}

	c.broadcastMessage(msg)
}

// broadcastMessage fans a committed message out to the room's live members
func (c *Chat) broadcastMessage(msg *models.Message) {
	payload, err := json.Marshal(models.ChatEvent{
		Event:    models.EventReceiveMessage,
		RoomID:   msg.RoomID,
		SenderID: msg.SenderID,
		Message:  msg.Text,
	})
	if err != nil {
		zap.S().With(err).Error("failed to marshal chat event")
		return
	}
	c.Hub.BroadcastToRoom(msg.RoomID, payload)
}

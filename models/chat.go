package models

import "time"

// ChatRoom holds the structure for a row in the chat_rooms table. A room
// pairs exactly one client and one lawyer; the last message fields are a
// denormalized cache kept in sync with message inserts.
type ChatRoom struct {
	RoomID          int64      `json:"RoomID" db:"room_id"`
	ClientID        int64      `json:"ClientID" db:"client_id"`
	LawyerID        int64      `json:"LawyerID" db:"lawyer_id"`
	CreatedAt       time.Time  `json:"CreatedAt" db:"created_at"`
	LastMessage     *string    `json:"LastMessage" db:"last_message"`
	LastMessageTime *time.Time `json:"LastMessageTime" db:"last_message_time"`
}

// RoomSummary is one entry of the room listing, joined with the peer's name
type RoomSummary struct {
	RoomID          int64      `json:"RoomID" db:"room_id"`
	ClientName      *string    `json:"ClientName,omitempty" db:"client_name"`
	LawyerName      *string    `json:"LawyerName,omitempty" db:"lawyer_name"`
	LastMessage     *string    `json:"LastMessage" db:"last_message"`
	LastMessageTime *time.Time `json:"LastMessageTime" db:"last_message_time"`
}

// Message holds the structure for a row in the messages table
type Message struct {
	ID        int64     `json:"MessageID" db:"message_id"`
	RoomID    int64     `json:"RoomID" db:"room_id"`
	SenderID  int64     `json:"SenderID" db:"sender_id"`
	Text      string    `json:"MessageText" db:"message_text"`
	Timestamp time.Time `json:"Timestamp" db:"timestamp"`
	IsRead    bool      `json:"IsRead" db:"is_read"`
}

// GetOrCreateRoomRequest is the body for POST /api/chat/get_or_create_room
type GetOrCreateRoomRequest struct {
	LawyerID int64 `json:"lawyerId"`
}

// GetOrCreateRoomResponse returns the room identifier for the pair
type GetOrCreateRoomResponse struct {
	Success bool  `json:"success"`
	RoomID  int64 `json:"room_id"`
}

// RoomsResponse wraps the room listing
type RoomsResponse struct {
	Success bool          `json:"success"`
	Rooms   []RoomSummary `json:"rooms"`
}

// MessagesResponse wraps the message history of a room
type MessagesResponse struct {
	Success  bool      `json:"success"`
	Messages []Message `json:"messages"`
}

// SendMessageRequest is the body for POST /api/chat/send
type SendMessageRequest struct {
	RoomID  int64  `json:"room_id"`
	Message string `json:"message"`
}

// Chat event names carried over the websocket channel
const (
	EventJoinRoom       = "join_room"
	EventSendMessage    = "send_message"
	EventReceiveMessage = "receive_message"
	EventError          = "error"
)

// ChatEvent is the envelope for every frame on the websocket channel
type ChatEvent struct {
	Event    string `json:"event"`
	RoomID   int64  `json:"room_id,omitempty"`
	SenderID int64  `json:"sender_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

package databases

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/nyayconnect/nyayconnect-api/models"
)

// ChatDatabase contains all the chat room and message queries
type ChatDatabase interface {
	GetOrCreateRoom(ctx context.Context, clientID, lawyerID int64) (int64, error)
	FindRoom(ctx context.Context, roomID int64) (*models.ChatRoom, error)
	ListRoomsForClient(ctx context.Context, clientID int64) ([]models.RoomSummary, error)
	ListRoomsForLawyer(ctx context.Context, lawyerID int64) ([]models.RoomSummary, error)
	ListMessages(ctx context.Context, roomID int64) ([]models.Message, error)
	SaveMessage(ctx context.Context, roomID, senderID int64, text string) (*models.Message, error)
}

type chatDatabase struct {
	db *sqlx.DB
}

// NewChatDatabase initializes a new instance of chat database
func NewChatDatabase(db *sqlx.DB) ChatDatabase {
	return &chatDatabase{db: db}
}

// GetOrCreateRoom returns the room for the (client, lawyer) pair, creating it
// on first contact. Concurrent first contacts race on the unique
// (client_id, lawyer_id) constraint: the loser's insert affects no row and
// falls through to the re-select, so every caller gets the same room id.
func (c *chatDatabase) GetOrCreateRoom(ctx context.Context, clientID, lawyerID int64) (int64, error) {
	var roomID int64
	selectQuery := `SELECT room_id FROM chat_rooms WHERE client_id = $1 AND lawyer_id = $2`

	err := c.db.GetContext(ctx, &roomID, selectQuery, clientID, lawyerID)
	if err == nil {
		return roomID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	insertQuery := `
		INSERT INTO chat_rooms (client_id, lawyer_id)
		VALUES ($1, $2)
		ON CONFLICT (client_id, lawyer_id) DO NOTHING
		RETURNING room_id
	`
	err = c.db.QueryRowxContext(ctx, insertQuery, clientID, lawyerID).Scan(&roomID)
	if err == nil {
		return roomID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	// someone else just created it
	err = c.db.GetContext(ctx, &roomID, selectQuery, clientID, lawyerID)
	return roomID, err
}

func (c *chatDatabase) FindRoom(ctx context.Context, roomID int64) (*models.ChatRoom, error) {
	var room models.ChatRoom
	query := `
		SELECT room_id, client_id, lawyer_id, created_at, last_message, last_message_time
		FROM chat_rooms
		WHERE room_id = $1
	`
	if err := c.db.GetContext(ctx, &room, query, roomID); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *chatDatabase) ListRoomsForClient(ctx context.Context, clientID int64) ([]models.RoomSummary, error) {
	var rooms []models.RoomSummary
	query := `
		SELECT cr.room_id, u.name AS lawyer_name, cr.last_message, cr.last_message_time
		FROM chat_rooms cr
		JOIN users u ON cr.lawyer_id = u.user_id
		WHERE cr.client_id = $1
		ORDER BY cr.last_message_time DESC NULLS LAST
	`
	if err := c.db.SelectContext(ctx, &rooms, query, clientID); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *chatDatabase) ListRoomsForLawyer(ctx context.Context, lawyerID int64) ([]models.RoomSummary, error) {
	var rooms []models.RoomSummary
	query := `
		SELECT cr.room_id, u.name AS client_name, cr.last_message, cr.last_message_time
		FROM chat_rooms cr
		JOIN users u ON cr.client_id = u.user_id
		WHERE cr.lawyer_id = $1
		ORDER BY cr.last_message_time DESC NULLS LAST
	`
	if err := c.db.SelectContext(ctx, &rooms, query, lawyerID); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *chatDatabase) ListMessages(ctx context.Context, roomID int64) ([]models.Message, error) {
	var messages []models.Message
	query := `
		SELECT message_id, room_id, sender_id, message_text, timestamp, is_read
		FROM messages
		WHERE room_id = $1
		ORDER BY timestamp ASC
	`
	if err := c.db.SelectContext(ctx, &messages, query, roomID); err != nil {
		return nil, err
	}
	return messages, nil
}

// SaveMessage persists the message row and refreshes the room's denormalized
// last message fields as one atomic unit. Callers must not broadcast until
// this returns nil.
func (c *chatDatabase) SaveMessage(ctx context.Context, roomID, senderID int64, text string) (*models.Message, error) {
	msg := models.Message{RoomID: roomID, SenderID: senderID, Text: text}

	err := WithTx(ctx, c.db, func(tx *sqlx.Tx) error {
		insertQuery := `
			INSERT INTO messages (room_id, sender_id, message_text)
			VALUES ($1, $2, $3)
			RETURNING message_id, timestamp
		`
		if err := tx.QueryRowxContext(ctx, insertQuery, roomID, senderID, text).Scan(&msg.ID, &msg.Timestamp); err != nil {
			return err
		}

		updateQuery := `
			UPDATE chat_rooms
			SET last_message = $1, last_message_time = NOW()
			WHERE room_id = $2
		`
		_, err := tx.ExecContext(ctx, updateQuery, text, roomID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

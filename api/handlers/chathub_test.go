package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(buffer int) *ChatClient {
	return &ChatClient{
		id:   "test",
		send: make(chan []byte, buffer),
	}
}

func TestChatHub_JoinAndBroadcast(t *testing.T) {
	hub := NewChatHub()
	c1 := newTestClient(1)
	c2 := newTestClient(1)
	c3 := newTestClient(1)

	hub.Join(1, c1)
	hub.Join(1, c2)
	hub.Join(2, c3)

	delivered := hub.BroadcastToRoom(1, []byte("hello"))
	assert.Equal(t, 2, delivered)
	assert.Equal(t, []byte("hello"), <-c1.send)
	assert.Equal(t, []byte("hello"), <-c2.send)
	assert.Empty(t, c3.send)
}

func TestChatHub_BroadcastSkipsSlowClient(t *testing.T) {
	hub := NewChatHub()
	fast := newTestClient(1)
	slow := newTestClient(1)
	slow.send <- []byte("backlog") // buffer full, next send would block

	hub.Join(1, fast)
	hub.Join(1, slow)

	delivered := hub.BroadcastToRoom(1, []byte("hello"))
	assert.Equal(t, 1, delivered)
	assert.Equal(t, []byte("hello"), <-fast.send)
	assert.Equal(t, []byte("backlog"), <-slow.send)
}

func TestChatHub_BroadcastToEmptyRoom(t *testing.T) {
	hub := NewChatHub()
	assert.Equal(t, 0, hub.BroadcastToRoom(42, []byte("hello")))
}

func TestChatHub_RemoveDropsAllRooms(t *testing.T) {
	hub := NewChatHub()
	c := newTestClient(1)

	hub.Join(1, c)
	hub.Join(2, c)
	assert.Equal(t, 1, hub.RoomSize(1))
	assert.Equal(t, 1, hub.RoomSize(2))

	hub.Remove(c)
	assert.Equal(t, 0, hub.RoomSize(1))
	assert.Equal(t, 0, hub.RoomSize(2))
}

func TestChatHub_JoinIsIdempotent(t *testing.T) {
	hub := NewChatHub()
	c := newTestClient(2)

	hub.Join(1, c)
	hub.Join(1, c)
	assert.Equal(t, 1, hub.RoomSize(1))

	delivered := hub.BroadcastToRoom(1, []byte("once"))
	assert.Equal(t, 1, delivered)
}

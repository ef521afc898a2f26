package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.ConnectedCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, want, hub.ConnectedCount())
}

func TestHubRegisterUnregister(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	client := &Client{UserID: "alice", Send: make(chan []byte, 1)}
	hub.Register <- client
	waitForCount(t, hub, 1)

	hub.Unregister <- client
	waitForCount(t, hub, 0)

	_, open := <-client.Send
	assert.False(t, open)
}

func TestHubSendToUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	client := &Client{UserID: "alice", Send: make(chan []byte, 4)}
	hub.Register <- client
	waitForCount(t, hub, 1)

	hub.SendToUser("alice", map[string]string{"title": "New review"})

	select {
	case message := <-client.Send:
		var payload map[string]string
		require.NoError(t, json.Unmarshal(message, &payload))
		assert.Equal(t, "New review", payload["title"])
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}
}

func TestHubSendToAbsentUserIsNoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	hub.SendToUser("nobody", map[string]string{"title": "lost"})
	assert.Equal(t, 0, hub.ConnectedCount())
}

func TestHubDropsSlowClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	client := &Client{UserID: "alice", Send: make(chan []byte, 1)}
	hub.Register <- client
	waitForCount(t, hub, 1)

	// First send fills the buffer; the second finds it full and evicts.
	hub.SendToUser("alice", map[string]string{"n": "1"})
	hub.SendToUser("alice", map[string]string{"n": "2"})

	assert.Equal(t, 0, hub.ConnectedCount())
}

func TestHubStaleUnregisterKeepsReplacement(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	stale := &Client{UserID: "alice", Send: make(chan []byte, 1)}
	replacement := &Client{UserID: "alice", Send: make(chan []byte, 1)}
	hub.Register <- stale
	hub.Register <- replacement
	waitForCount(t, hub, 1)

	// The stale connection going away must not tear down the replacement.
	hub.Unregister <- stale
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, hub.ConnectedCount())

	hub.SendToUser("alice", map[string]string{"title": "still here"})
	select {
	case message, open := <-replacement.Send:
		require.True(t, open)
		assert.Contains(t, string(message), "still here")
	case <-time.After(time.Second):
		t.Fatal("replacement client stopped receiving")
	}
}

func TestHubReplacesClientForSameUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	first := &Client{UserID: "alice", Send: make(chan []byte, 1)}
	second := &Client{UserID: "alice", Send: make(chan []byte, 1)}
	hub.Register <- first
	hub.Register <- second
	waitForCount(t, hub, 1)
	time.Sleep(20 * time.Millisecond)

	hub.SendToUser("alice", map[string]string{"title": "hello"})

	select {
	case <-second.Send:
	case <-time.After(time.Second):
		t.Fatal("replacement client did not receive the message")
	}
	assert.Empty(t, first.Send)
}

package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID int64, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]CatchupEvent, 0, len(m.events))
	for _, evt := range m.events {
		if evt.ID > sinceID {
			out = append(out, evt)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func setupTestManager(t *testing.T, querier CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(querier, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func writeJSON(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func waitForSubscribers(t *testing.T, m *ConnectionManager, channel string, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if m.subscriberCount(channel) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("channel %s never reached %d subscribers", channel, want)
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeConfirmed(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: TaskChannel("test-123")})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "task:test-123", msg["channel"])
	waitForSubscribers(t, manager, "task:test-123", 1)
}

func TestConnectionManager_SubscribeRequiresChannel(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe"})

	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestConnectionManager_BroadcastToSubscribers(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})

	subscriber := connectWS(t, server)
	readJSON(t, subscriber)
	writeJSON(t, subscriber, ClientMessage{Action: "subscribe", Channel: TaskChannel("bcast")})
	readJSON(t, subscriber) // subscription.confirmed

	bystander := connectWS(t, server)
	readJSON(t, bystander)

	waitForSubscribers(t, manager, "task:bcast", 1)

	event, _ := json.Marshal(TaskStatusPayload{
		Type:   EventTypeTaskStatus,
		TaskID: "bcast",
		Status: "CODING",
	})
	manager.Broadcast(TaskChannel("bcast"), event)

	msg := readJSON(t, subscriber)
	assert.Equal(t, EventTypeTaskStatus, msg["type"])
	assert.Equal(t, "CODING", msg["status"])
}

func TestConnectionManager_AutoCatchupOnSubscribe(t *testing.T) {
	querier := &mockCatchupQuerier{
		events: []CatchupEvent{
			{ID: 1, Payload: map[string]interface{}{"type": EventTypeTaskProgress, "message": "first"}},
			{ID: 2, Payload: map[string]interface{}{"type": EventTypeTaskProgress, "message": "second"}},
		},
	}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: TaskChannel("hist")})
	readJSON(t, conn) // subscription.confirmed

	first := readJSON(t, conn)
	assert.Equal(t, "first", first["message"])
	assert.Equal(t, float64(1), first["db_event_id"])

	second := readJSON(t, conn)
	assert.Equal(t, "second", second["message"])
	assert.Equal(t, float64(2), second["db_event_id"])
}

func TestConnectionManager_CatchupSinceCursor(t *testing.T) {
	querier := &mockCatchupQuerier{
		events: []CatchupEvent{
			{ID: 5, Payload: map[string]interface{}{"type": EventTypeTaskProgress, "message": "old"}},
			{ID: 9, Payload: map[string]interface{}{"type": EventTypeTaskProgress, "message": "new"}},
		},
	}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: TaskChannel("cur")})
	readJSON(t, conn) // subscription.confirmed
	readJSON(t, conn) // auto-catchup: old
	readJSON(t, conn) // auto-catchup: new

	since := int64(5)
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: TaskChannel("cur"), LastEventID: &since})

	msg := readJSON(t, conn)
	assert.Equal(t, "new", msg["message"])
	assert.Equal(t, float64(9), msg["db_event_id"])
}

func TestConnectionManager_Ping(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "ping"})

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_UnsubscribeRemovesSubscriber(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: TaskChannel("gone")})
	readJSON(t, conn)
	waitForSubscribers(t, manager, "task:gone", 1)

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: TaskChannel("gone")})
	waitForSubscribers(t, manager, "task:gone", 0)
}

func TestConnectionManager_DisconnectCleansUp(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: TaskChannel("bye")})
	readJSON(t, conn)
	waitForSubscribers(t, manager, "task:bye", 1)

	conn.Close(websocket.StatusNormalClosure, "")
	waitForSubscribers(t, manager, "task:bye", 0)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) && manager.ActiveConnections() > 0 {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, manager.ActiveConnections())
}

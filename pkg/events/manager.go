package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps how many missed task events one catchup answers. Clients
// further behind get a catchup.overflow and should reload over REST.
const catchupLimit = 200

// listenTimeout bounds the LISTEN round-trip when a channel gains its first
// subscriber, so a stalled database cannot wedge the client's read loop.
const listenTimeout = 10 * time.Second

// CatchupEvent is one persisted task event replayed to a catching-up client.
type CatchupEvent struct {
	ID      int64
	Payload map[string]interface{}
}

// CatchupQuerier reads persisted events for catchup. Satisfied by
// services.EventService via the catchup adapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error)
}

// serverMessage is the control-frame shape sent to WebSocket clients. Task
// events themselves are forwarded as raw payloads, not through this struct.
type serverMessage struct {
	Type         string `json:"type"`
	Channel      string `json:"channel,omitempty"`
	ConnectionID string `json:"connection_id,omitempty"`
	Message      string `json:"message,omitempty"`
	HasMore      bool   `json:"has_more,omitempty"`
}

// client is one WebSocket subscriber. Its channels set is only touched from
// the goroutine running HandleConnection, so it needs no lock of its own.
type client struct {
	id       string
	conn     *websocket.Conn
	channels map[string]struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

// ConnectionManager fans task events out to WebSocket clients. One instance
// per process; cross-process distribution happens over Postgres NOTIFY, which
// the NotifyListener feeds into Broadcast.
type ConnectionManager struct {
	mu      sync.RWMutex
	clients map[string]*client
	subs    map[string]map[string]*client // channel -> client id -> client

	listenerMu sync.RWMutex
	listener   *NotifyListener

	catchup      CatchupQuerier
	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewConnectionManager creates the manager. The listener is attached
// separately via SetListener once it exists.
func NewConnectionManager(catchup CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		clients:      make(map[string]*client),
		subs:         make(map[string]map[string]*client),
		catchup:      catchup,
		writeTimeout: writeTimeout,
		logger:       slog.Default().With("component", "ws_manager"),
	}
}

// SetListener attaches the NotifyListener used for first-subscriber LISTEN
// and last-subscriber UNLISTEN. Called once during startup.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection runs one client's session: register, greet, then read
// control messages until the socket closes. Blocks for the connection's
// lifetime.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &client{
		id:       uuid.NewString(),
		conn:     conn,
		channels: make(map[string]struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}

	m.mu.Lock()
	m.clients[c.id] = c
	m.mu.Unlock()
	defer m.drop(c)

	m.send(c, serverMessage{Type: "connection.established", ConnectionID: c.id})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return // closed or failed; drop cleans up
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			m.logger.Warn("Unparseable client message", "client_id", c.id, "error", err)
			continue
		}
		m.dispatch(ctx, c, &msg)
	}
}

// Broadcast forwards a raw event payload to every subscriber of a channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.mu.RLock()
	targets := make([]*client, 0, len(m.subs[channel]))
	for _, c := range m.subs[channel] {
		targets = append(targets, c)
	}
	m.mu.RUnlock()

	// Sends happen outside the lock: a slow client blocks at most
	// writeTimeout, never the registry.
	for _, c := range targets {
		if err := m.write(c, event); err != nil {
			m.logger.Warn("Dropped event for slow client", "client_id", c.id, "error", err)
		}
	}
}

// ActiveConnections reports how many clients are connected.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// subscriberCount reports a channel's subscriber count. Tests poll this
// instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs[channel])
}

func (m *ConnectionManager) dispatch(ctx context.Context, c *client, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.send(c, serverMessage{Type: "error", Message: "channel is required for subscribe"})
			return
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.send(c, serverMessage{
				Type:    "subscription.error",
				Channel: msg.Channel,
				Message: "failed to subscribe to channel",
			})
			return
		}
		m.send(c, serverMessage{Type: "subscription.confirmed", Channel: msg.Channel})
		// Replay the channel's full history so a late subscriber starts
		// with the complete task timeline.
		m.replay(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.send(c, serverMessage{Type: "error", Message: "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.send(c, serverMessage{Type: "error", Message: "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.replay(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.send(c, serverMessage{Type: "pong"})
	}
}

// subscribe adds the client to a channel, issuing the Postgres LISTEN when it
// is the channel's first subscriber. The LISTEN completes before subscribe
// returns so the following replay cannot miss events published in between.
func (m *ConnectionManager) subscribe(c *client, channel string) error {
	m.mu.Lock()
	first := m.subs[channel] == nil
	if first {
		m.subs[channel] = make(map[string]*client)
	}
	m.subs[channel][c.id] = c
	m.mu.Unlock()

	if first {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(ctx, channel); err != nil {
				m.logger.Error("LISTEN failed for channel", "channel", channel, "error", err)
				m.failChannel(c, channel)
				return fmt.Errorf("listen on %s: %w", channel, err)
			}
		}
	}

	c.channels[channel] = struct{}{}
	return nil
}

// failChannel tears a channel down after a LISTEN failure. Clients that
// subscribed while the LISTEN was in flight saw the channel as established
// and skipped their own LISTEN; their subscriptions are void now, so each one
// is told to resubscribe or fall back to REST.
func (m *ConnectionManager) failChannel(triggering *client, channel string) {
	m.mu.Lock()
	var orphaned []*client
	for id, c := range m.subs[channel] {
		if id != triggering.id {
			orphaned = append(orphaned, c)
		}
	}
	delete(m.subs, channel)
	m.mu.Unlock()

	for _, c := range orphaned {
		m.logger.Warn("Voiding subscription after LISTEN failure",
			"client_id", c.id, "channel", channel)
		m.send(c, serverMessage{
			Type:    "subscription.error",
			Channel: channel,
			Message: "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes the client from a channel. The last subscriber leaving
// triggers an async UNLISTEN, which re-checks the registry first so a rapid
// unsubscribe/resubscribe cycle cannot drop an active LISTEN.
func (m *ConnectionManager) unsubscribe(c *client, channel string) {
	m.mu.Lock()
	last := false
	if subs, ok := m.subs[channel]; ok {
		delete(subs, c.id)
		if len(subs) == 0 {
			delete(m.subs, channel)
			last = true
		}
	}
	m.mu.Unlock()
	delete(c.channels, channel)

	if !last {
		return
	}
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		m.mu.RLock()
		_, resubscribed := m.subs[channel]
		m.mu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			m.logger.Error("UNLISTEN failed for channel", "channel", channel, "error", err)
		}
	}()
}

// replay streams persisted events newer than sinceID to one client, stamping
// each with its db_event_id so the client can resume from a cursor later.
func (m *ConnectionManager) replay(ctx context.Context, c *client, channel string, sinceID int64) {
	if m.catchup == nil {
		return
	}

	// One extra row tells us whether the client is further behind than one
	// replay can cover.
	rows, err := m.catchup.GetCatchupEvents(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		m.logger.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}
	overflow := len(rows) > catchupLimit
	if overflow {
		rows = rows[:catchupLimit]
	}

	for _, row := range rows {
		// Stored payloads carry no db_event_id (it is stamped onto the
		// NOTIFY copy at publish time); stamp it from the row id here.
		row.Payload["db_event_id"] = row.ID
		data, err := json.Marshal(row.Payload)
		if err != nil {
			continue
		}
		if err := m.write(c, data); err != nil {
			m.logger.Warn("Replay aborted", "client_id", c.id, "error", err)
			return
		}
	}

	if overflow {
		m.send(c, serverMessage{Type: "catchup.overflow", Channel: channel, HasMore: true})
	}
}

// drop unregisters a client and releases every channel it was subscribed to.
func (m *ConnectionManager) drop(c *client) {
	for channel := range c.channels {
		m.unsubscribe(c, channel)
	}

	m.mu.Lock()
	delete(m.clients, c.id)
	m.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) send(c *client, msg serverMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		m.logger.Warn("Failed to marshal control message", "client_id", c.id, "error", err)
		return
	}
	if err := m.write(c, data); err != nil {
		m.logger.Warn("Failed to send control message", "client_id", c.id, "error", err)
	}
}

func (m *ConnectionManager) write(c *client, data []byte) error {
	ctx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, data)
}

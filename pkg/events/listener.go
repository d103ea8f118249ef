package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	// notifyWaitSlice bounds one WaitForNotification call so the loop can
	// interleave pending LISTEN/UNLISTEN commands between notifications.
	notifyWaitSlice = 100 * time.Millisecond

	redialBaseDelay = 500 * time.Millisecond
	redialMaxDelay  = 30 * time.Second
)

// chanCmd asks the receive loop to start or stop listening on one channel.
// All LISTEN/UNLISTEN traffic goes through the loop because pgx connections
// tolerate exactly one user at a time.
type chanCmd struct {
	listen  bool
	channel string
	done    chan error
}

// NotifyListener owns the dedicated Postgres connection that LISTENs on task
// channels and feeds incoming NOTIFY payloads to the ConnectionManager. Task
// channels survive reconnects: after a redial every tracked channel is
// re-LISTENed before notifications are consumed again, so subscribers keep
// receiving task events across database hiccups.
type NotifyListener struct {
	dsn     string
	manager *ConnectionManager

	mu      sync.Mutex
	conn    *pgx.Conn
	tracked map[string]struct{}
	started bool

	cmds   chan chanCmd
	cancel context.CancelFunc
	done   chan struct{}

	logger *slog.Logger
}

// NewNotifyListener creates the listener. Start dials the connection.
func NewNotifyListener(dsn string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		dsn:     dsn,
		manager: manager,
		tracked: make(map[string]struct{}),
		cmds:    make(chan chanCmd, 16),
		logger:  slog.Default().With("component", "notify_listener"),
	}
}

// Start dials the dedicated LISTEN connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("failed to dial LISTEN connection: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	l.conn = conn
	l.started = true
	l.cancel = cancel
	l.done = make(chan struct{})
	l.mu.Unlock()

	go func() {
		defer close(l.done)
		l.run(loopCtx)
	}()

	l.logger.Info("Notify listener started")
	return nil
}

// Stop shuts the receive loop down and closes the connection. The loop is
// drained before the close so WaitForNotification never races conn.Close.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.mu.Lock()
	l.started = false
	cancel, done := l.cancel, l.done
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}

// Subscribe starts LISTEN on a channel. Idempotent per channel; the channel
// stays tracked until Unsubscribe, including across reconnects.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.mu.Lock()
	if _, ok := l.tracked[channel]; ok {
		l.mu.Unlock()
		return nil
	}
	started := l.started
	l.mu.Unlock()

	if !started {
		return fmt.Errorf("notify listener is not running")
	}

	if err := l.submit(ctx, chanCmd{listen: true, channel: channel}); err != nil {
		return fmt.Errorf("LISTEN %s: %w", channel, err)
	}

	l.mu.Lock()
	l.tracked[channel] = struct{}{}
	l.mu.Unlock()
	l.logger.Debug("Listening on channel", "channel", channel)
	return nil
}

// Unsubscribe stops LISTEN on a channel and drops it from the tracked set.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.mu.Lock()
	_, tracked := l.tracked[channel]
	started := l.started
	l.mu.Unlock()

	if !tracked || !started {
		return nil
	}

	if err := l.submit(ctx, chanCmd{listen: false, channel: channel}); err != nil {
		return fmt.Errorf("UNLISTEN %s: %w", channel, err)
	}

	l.mu.Lock()
	delete(l.tracked, channel)
	l.mu.Unlock()
	return nil
}

// submit hands a command to the receive loop and waits for its result.
func (l *NotifyListener) submit(ctx context.Context, cmd chanCmd) error {
	cmd.done = make(chan error, 1)
	select {
	case l.cmds <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the sole user of the pgx connection. It alternates between applying
// pending channel commands and waiting (briefly) for notifications, redialing
// on connection failure.
func (l *NotifyListener) run(ctx context.Context) {
	for ctx.Err() == nil {
		l.applyPending(ctx)

		l.mu.Lock()
		conn := l.conn
		l.mu.Unlock()
		if conn == nil {
			l.redial(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, notifyWaitSlice)
		n, err := conn.WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue // wait slice elapsed; check for pending commands
			}
			l.logger.Error("Notification wait failed", "error", err)
			l.redial(ctx)
			continue
		}

		l.manager.Broadcast(n.Channel, []byte(n.Payload))
	}
}

// applyPending executes queued LISTEN/UNLISTEN commands on the connection.
func (l *NotifyListener) applyPending(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmds:
			l.mu.Lock()
			conn := l.conn
			l.mu.Unlock()
			if conn == nil {
				cmd.done <- fmt.Errorf("LISTEN connection is down")
				continue
			}
			verb := "UNLISTEN "
			if cmd.listen {
				verb = "LISTEN "
			}
			_, err := conn.Exec(ctx, verb+pgx.Identifier{cmd.channel}.Sanitize())
			cmd.done <- err
		default:
			return
		}
	}
}

// redial replaces a broken connection with exponential backoff and restores
// LISTEN on every tracked channel before notifications resume.
func (l *NotifyListener) redial(ctx context.Context) {
	l.mu.Lock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
	l.mu.Unlock()

	delay := redialBaseDelay
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		conn, err := pgx.Connect(ctx, l.dsn)
		if err != nil {
			l.logger.Error("LISTEN redial failed", "error", err, "retry_in", delay)
			delay = min(delay*2, redialMaxDelay)
			continue
		}

		for _, channel := range l.trackedChannels() {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
				l.logger.Error("Failed to restore channel after redial",
					"channel", channel, "error", err)
			}
		}

		l.mu.Lock()
		l.conn = conn
		l.mu.Unlock()
		l.logger.Info("Notify listener reconnected", "channels", len(l.trackedChannels()))
		return
	}
}

func (l *NotifyListener) trackedChannels() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.tracked))
	for ch := range l.tracked {
		out = append(out, ch)
	}
	return out
}

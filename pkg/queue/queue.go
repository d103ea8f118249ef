// Package queue coordinates task execution across workers. Claims live on
// the task row (claimed_by plus a heartbeat), so any instance can pick up
// work and crashed workers leave claims the orphan sweep releases.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// Processor advances one task to its next resting state. Satisfied by
// orchestrator.Engine.
type Processor interface {
	Process(ctx context.Context, taskID uuid.UUID) error
}

// Config tunes the worker pool.
type Config struct {
	Workers           int
	PollInterval      time.Duration
	HeartbeatInterval time.Duration
	OrphanTimeout     time.Duration
}

// DefaultConfig returns the standard pool tuning.
func DefaultConfig() Config {
	return Config{
		Workers:           2,
		PollInterval:      2 * time.Second,
		HeartbeatInterval: 15 * time.Second,
		OrphanTimeout:     2 * time.Minute,
	}
}

// Pool runs the queue workers and the orphan sweep.
type Pool struct {
	client    *ent.Client
	processor Processor
	cfg       Config
	host      string
	workerID  string
	logger    *slog.Logger

	mu      sync.Mutex
	running map[uuid.UUID]context.CancelFunc

	wg   sync.WaitGroup
	stop context.CancelFunc
}

// NewPool creates a worker pool. Workers start on Start.
func NewPool(client *ent.Client, processor Processor, cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = DefaultConfig().HeartbeatInterval
	}
	if cfg.OrphanTimeout <= 0 {
		cfg.OrphanTimeout = DefaultConfig().OrphanTimeout
	}
	host := hostname()
	return &Pool{
		client:    client,
		processor: processor,
		cfg:       cfg,
		host:      host,
		workerID:  fmt.Sprintf("%s-%s", host, uuid.NewString()[:8]),
		running:   make(map[uuid.UUID]context.CancelFunc),
		logger:    slog.Default().With("component", "queue"),
	}
}

func hostname() string {
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

// Start launches the workers and the orphan sweep. They run until Stop.
func (p *Pool) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.stop = cancel

	// A previous instance on this host cannot heartbeat its claims anymore;
	// release them now instead of waiting out the orphan timeout.
	if err := p.cleanupStartupOrphans(ctx); err != nil {
		p.logger.Error("Startup orphan cleanup failed", "error", err)
	}

	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go func(n int) {
			defer p.wg.Done()
			p.workerLoop(ctx, n)
		}(i)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.orphanLoop(ctx)
	}()

	p.logger.Info("Queue started", "workers", p.cfg.Workers, "worker_id", p.workerID)
}

// Stop cancels all workers and waits for them to drain.
func (p *Pool) Stop() {
	if p.stop != nil {
		p.stop()
	}
	p.wg.Wait()
}

// Stats is the pool's view of the queue, for the health surface.
type Stats struct {
	Workers    int `json:"workers"`
	InFlight   int `json:"in_flight"`
	QueueDepth int `json:"queue_depth"`
}

// Stats counts tasks waiting for a claim alongside this instance's in-flight
// work.
func (p *Pool) Stats(ctx context.Context) (*Stats, error) {
	depth, err := p.client.Task.Query().
		Where(
			task.ParentTaskIDIsNil(),
			task.ClaimedByIsNil(),
			task.StatusIn(processableStatuses()...),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count queued tasks: %w", err)
	}
	p.mu.Lock()
	inFlight := len(p.running)
	p.mu.Unlock()
	return &Stats{Workers: p.cfg.Workers, InFlight: inFlight, QueueDepth: depth}, nil
}

// Cancel aborts a task this instance is currently processing. Returns false
// when the task is not running here.
func (p *Pool) Cancel(taskID uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	cancel, ok := p.running[taskID]
	if ok {
		cancel()
	}
	return ok
}

func (p *Pool) workerLoop(ctx context.Context, n int) {
	logger := p.logger.With("worker", n)
	for {
		if ctx.Err() != nil {
			return
		}

		claimed, err := p.claimNext(ctx)
		if err != nil {
			logger.Error("Failed to claim task", "error", err)
		}
		if claimed == nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.cfg.PollInterval):
			}
			continue
		}

		p.runClaimed(ctx, logger, claimed)
	}
}

// processableStatuses are the states a worker picks up: everything that is
// neither terminal nor parked for a human.
func processableStatuses() []models.Status {
	var out []models.Status
	for _, s := range models.AllStatuses() {
		if s.Terminal() || s == models.StatusWaitingHuman {
			continue
		}
		out = append(out, s)
	}
	return out
}

// claimNext locks and claims the oldest unclaimed processable top-level
// task. SKIP LOCKED keeps concurrent claimers from serializing on the same
// row. Returns nil when the queue is empty.
func (p *Pool) claimNext(ctx context.Context) (*ent.Task, error) {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Task.Query().
		Where(
			task.ParentTaskIDIsNil(),
			task.ClaimedByIsNil(),
			task.StatusIn(processableStatuses()...),
		).
		Order(ent.Asc(task.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query claimable tasks: %w", err)
	}

	now := time.Now()
	t, err = t.Update().
		SetClaimedBy(p.workerID).
		SetClaimedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task %s: %w", t.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return t, nil
}

// runClaimed processes one claimed task under a per-task cancel and a
// heartbeat, then releases the claim whatever the outcome.
func (p *Pool) runClaimed(ctx context.Context, logger *slog.Logger, t *ent.Task) {
	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.mu.Lock()
	p.running[t.ID] = cancel
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.running, t.ID)
		p.mu.Unlock()
	}()

	stopHeartbeat := p.startHeartbeat(taskCtx, t.ID)
	defer stopHeartbeat()

	logger.Info("Processing task", "task_id", t.ID, "status", t.Status)
	if err := p.processor.Process(taskCtx, t.ID); err != nil {
		logger.Error("Task processing ended with error", "task_id", t.ID, "error", err)
	}

	p.release(t.ID)
}

// startHeartbeat refreshes the claim's heartbeat until the returned stop
// function is called or the context ends.
func (p *Pool) startHeartbeat(ctx context.Context, taskID uuid.UUID) func() {
	done := make(chan struct{})
	var once sync.Once
	stop := func() { once.Do(func() { close(done) }) }

	go func() {
		ticker := time.NewTicker(p.cfg.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				hbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				err := p.client.Task.UpdateOneID(taskID).
					SetLastHeartbeatAt(time.Now()).
					Exec(hbCtx)
				cancel()
				if err != nil && !ent.IsNotFound(err) {
					p.logger.Warn("Failed to heartbeat", "task_id", taskID, "error", err)
				}
			}
		}
	}()
	return stop
}

// release drops this worker's claim. Background context: the release must
// land even when the worker is shutting down.
func (p *Pool) release(taskID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := p.client.Task.Update().
		Where(task.IDEQ(taskID), task.ClaimedByEQ(p.workerID)).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		p.logger.Warn("Failed to release claim", "task_id", taskID, "error", err)
	}
}

// cleanupStartupOrphans releases claims held by earlier worker incarnations
// on this host.
func (p *Pool) cleanupStartupOrphans(ctx context.Context) error {
	n, err := p.client.Task.Update().
		Where(
			task.ClaimedByHasPrefix(p.host+"-"),
			task.ClaimedByNEQ(p.workerID),
		).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release startup orphans: %w", err)
	}
	if n > 0 {
		p.logger.Warn("Released claims from a previous instance", "count", n, "host", p.host)
	}
	return nil
}

// orphanLoop releases claims whose heartbeat went stale, so tasks left
// behind by a crashed worker become claimable again.
func (p *Pool) orphanLoop(ctx context.Context) {
	interval := p.cfg.OrphanTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.releaseOrphans(ctx); err != nil {
				p.logger.Error("Orphan sweep failed", "error", err)
			}
		}
	}
}

func (p *Pool) releaseOrphans(ctx context.Context) error {
	cutoff := time.Now().Add(-p.cfg.OrphanTimeout)
	n, err := p.client.Task.Update().
		Where(
			task.ClaimedByNotNil(),
			task.LastHeartbeatAtLT(cutoff),
		).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release orphaned claims: %w", err)
	}
	if n > 0 {
		p.logger.Warn("Released orphaned task claims", "count", n)
	}
	return nil
}

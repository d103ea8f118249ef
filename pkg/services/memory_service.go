package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/ent/sessionmemory"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// MemoryService manages durable session memory: the append-only progress
// ledger, attempt history, failure patterns, write-once agent outputs,
// orchestration state, and checkpoints. Every mutation locks the memory row
// so concurrent writers serialize.
type MemoryService struct {
	client *ent.Client
	retry  StoreRetryConfig
	logger *slog.Logger
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(client *ent.Client, retry StoreRetryConfig, logger *slog.Logger) *MemoryService {
	return &MemoryService{client: client, retry: retry, logger: logger}
}

// Get fetches the session memory for a task.
func (s *MemoryService) Get(ctx context.Context, taskID uuid.UUID) (*ent.SessionMemory, error) {
	mem, err := s.client.SessionMemory.Query().
		Where(sessionmemory.TaskIDEQ(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session memory: %w", err)
	}
	return mem, nil
}

// mutate runs fn against the locked memory row inside a transaction and
// saves the result, under the store retry policy.
func (s *MemoryService) mutate(ctx context.Context, taskID uuid.UUID, name string, fn func(mem *ent.SessionMemory, upd *ent.SessionMemoryUpdateOne) error) error {
	return withRetry(ctx, s.retry, s.logger, name, func() error {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		mem, err := tx.SessionMemory.Query().
			Where(sessionmemory.TaskIDEQ(taskID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock session memory: %w", err)
		}

		upd := mem.Update()
		if err := fn(mem, upd); err != nil {
			return err
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update session memory: %w", err)
		}
		return tx.Commit()
	})
}

// LogProgress appends one ledger entry. Error kinds bump the error counter,
// retry_triggered bumps the retry counter; both are monotonic.
func (s *MemoryService) LogProgress(ctx context.Context, taskID uuid.UUID, kind models.ProgressKind, phase models.Phase, attempt int, summary string, payload json.RawMessage) error {
	return s.mutate(ctx, taskID, "log_progress", func(mem *ent.SessionMemory, upd *ent.SessionMemoryUpdateOne) error {
		entry := models.ProgressEntry{
			Kind:      kind,
			Phase:     phase,
			Attempt:   attempt,
			Summary:   summary,
			Payload:   payload,
			Timestamp: time.Now(),
		}
		upd.SetProgress(append(mem.Progress, entry))
		upd.SetPhase(string(phase))
		if kind.IsError() {
			upd.SetErrorCount(mem.ErrorCount + 1)
		}
		if kind == models.ProgressRetryTriggered {
			upd.SetRetryCount(mem.RetryCount + 1)
		}
		return nil
	})
}

// StartAttempt opens attempt N+1 and returns its number.
func (s *MemoryService) StartAttempt(ctx context.Context, taskID uuid.UUID) (int, error) {
	var number int
	err := s.mutate(ctx, taskID, "start_attempt", func(mem *ent.SessionMemory, upd *ent.SessionMemoryUpdateOne) error {
		number = len(mem.Attempts) + 1
		upd.SetAttempts(append(mem.Attempts, models.AttemptRecord{
			AttemptNumber: number,
			StartedAt:     time.Now(),
			Outcome:       models.AttemptInProgress,
		}))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return number, nil
}

// AttemptResult carries the fields EndAttempt writes onto the open attempt.
type AttemptResult struct {
	Outcome        models.AttemptOutcome
	Diff           string
	CommitMessage  string
	FailureReason  string
	FailureDetails string
	TotalTokens    int
	Duration       time.Duration
}

// EndAttempt closes the most recent in-progress attempt. A non-success
// outcome with a failure reason also merges into the failure pattern list.
func (s *MemoryService) EndAttempt(ctx context.Context, taskID uuid.UUID, result AttemptResult) error {
	return s.mutate(ctx, taskID, "end_attempt", func(mem *ent.SessionMemory, upd *ent.SessionMemoryUpdateOne) error {
		attempts := append([]models.AttemptRecord(nil), mem.Attempts...)
		idx := -1
		for i := len(attempts) - 1; i >= 0; i-- {
			if attempts[i].Outcome == models.AttemptInProgress {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: no in-progress attempt to end", ErrInvalidInput)
		}

		now := time.Now()
		attempts[idx].EndedAt = &now
		attempts[idx].Outcome = result.Outcome
		attempts[idx].Diff = result.Diff
		attempts[idx].CommitMessage = result.CommitMessage
		attempts[idx].FailureReason = result.FailureReason
		attempts[idx].FailureDetails = result.FailureDetails
		attempts[idx].TotalTokens = result.TotalTokens
		attempts[idx].TotalDuration = result.Duration
		upd.SetAttempts(attempts)

		if result.Outcome != models.AttemptSuccess && result.FailureReason != "" {
			upd.SetFailurePatterns(models.MergeFailurePattern(mem.FailurePatterns, result.FailureReason, now))
		}
		return nil
	})
}

// SetAgentOutput stores a typed agent output. Write-once per (task, agent):
// a second write fails with ErrOutputAlreadySet.
func (s *MemoryService) SetAgentOutput(ctx context.Context, taskID uuid.UUID, agent models.Stage, output any) error {
	raw, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to marshal %s output: %w", agent, err)
	}
	return s.mutate(ctx, taskID, "set_agent_output", func(mem *ent.SessionMemory, upd *ent.SessionMemoryUpdateOne) error {
		outputs := mem.Outputs
		if outputs == nil {
			outputs = make(map[string]json.RawMessage)
		}
		if _, exists := outputs[string(agent)]; exists {
			return fmt.Errorf("%w: %s", ErrOutputAlreadySet, agent)
		}
		outputs[string(agent)] = raw
		upd.SetOutputs(outputs)
		return nil
	})
}

// GetAgentOutput decodes the stored output for one agent into out.
func (s *MemoryService) GetAgentOutput(ctx context.Context, taskID uuid.UUID, agent models.Stage, out any) error {
	mem, err := s.Get(ctx, taskID)
	if err != nil {
		return err
	}
	raw, ok := mem.Outputs[string(agent)]
	if !ok {
		return fmt.Errorf("%w: no %s output", ErrNotFound, agent)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s output: %w", agent, err)
	}
	return nil
}

// Orchestration returns the task's subtask plan, or nil when the task was
// never broken down.
func (s *MemoryService) Orchestration(ctx context.Context, taskID uuid.UUID) (*models.OrchestrationState, error) {
	mem, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return mem.Orchestration, nil
}

// SetOrchestration installs the initial orchestration state after breakdown.
func (s *MemoryService) SetOrchestration(ctx context.Context, taskID uuid.UUID, state *models.OrchestrationState) error {
	return s.mutate(ctx, taskID, "set_orchestration", func(mem *ent.SessionMemory, upd *ent.SessionMemoryUpdateOne) error {
		if mem.Orchestration != nil && len(mem.Orchestration.Subtasks) > 0 {
			return fmt.Errorf("%w: orchestration state already set", ErrConcurrentModification)
		}
		upd.SetOrchestration(state)
		return nil
	})
}

// UpdateSubtaskStatus transitions one subtask inside the parent's
// orchestration state, enforcing pending → in_progress → {completed,failed}
// and diff immutability after completion.
func (s *MemoryService) UpdateSubtaskStatus(ctx context.Context, taskID uuid.UUID, subtaskID string, status models.SubtaskStatus, childTaskID string, diff string) error {
	return s.mutate(ctx, taskID, "update_subtask_status", func(mem *ent.SessionMemory, upd *ent.SessionMemoryUpdateOne) error {
		state := mem.Orchestration
		if state == nil {
			return fmt.Errorf("%w: task has no orchestration state", ErrInvalidInput)
		}
		st := state.Subtask(subtaskID)
		if st == nil {
			return fmt.Errorf("%w: unknown subtask %q", ErrInvalidInput, subtaskID)
		}
		if !st.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: subtask %s %s -> %s", ErrIllegalTransition, subtaskID, st.Status, status)
		}

		st.Status = status
		switch status {
		case models.SubtaskInProgress:
			st.Attempts++
			if childTaskID != "" {
				st.ChildTaskID = childTaskID
			}
			state.CurrentSubtask = subtaskID
		case models.SubtaskCompleted:
			st.Diff = diff
			state.CompletedSubtasks = append(state.CompletedSubtasks, subtaskID)
			if state.CurrentSubtask == subtaskID {
				state.CurrentSubtask = ""
			}
		case models.SubtaskFailed:
			if state.CurrentSubtask == subtaskID {
				state.CurrentSubtask = ""
			}
		}
		upd.SetOrchestration(state)
		return nil
	})
}

// SetAggregatedDiff records the aggregator's combined diff.
func (s *MemoryService) SetAggregatedDiff(ctx context.Context, taskID uuid.UUID, diff string) error {
	return s.mutate(ctx, taskID, "set_aggregated_diff", func(mem *ent.SessionMemory, upd *ent.SessionMemoryUpdateOne) error {
		if mem.Orchestration == nil {
			return fmt.Errorf("%w: task has no orchestration state", ErrInvalidInput)
		}
		state := mem.Orchestration
		state.AggregatedDiff = diff
		upd.SetOrchestration(state)
		return nil
	})
}

// Checkpoint snapshots the entire session into a new checkpoint row and
// records the reference in the memory.
func (s *MemoryService) Checkpoint(ctx context.Context, taskID uuid.UUID, reason string) (*ent.Checkpoint, error) {
	var cp *ent.Checkpoint
	err := withRetry(ctx, s.retry, s.logger, "checkpoint", func() error {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		mem, err := tx.SessionMemory.Query().
			Where(sessionmemory.TaskIDEQ(taskID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock session memory: %w", err)
		}

		cp, err = tx.Checkpoint.Create().
			SetTaskID(taskID).
			SetReason(reason).
			SetSnapshot(snapshotOf(mem)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create checkpoint: %w", err)
		}

		entry := models.ProgressEntry{
			Kind:      models.ProgressCheckpointed,
			Phase:     models.Phase(mem.Phase),
			Attempt:   len(mem.Attempts),
			Summary:   checkpointSummary(cp.ID, reason),
			Timestamp: time.Now(),
		}
		if err := mem.Update().
			SetLastCheckpointID(cp.ID).
			SetProgress(append(mem.Progress, entry)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to record checkpoint reference: %w", err)
		}
		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}
	return cp, nil
}

// Restore replaces the session contents with a checkpoint snapshot. The
// append-only invariant is relaxed only here, and the restore itself is
// logged onto the restored ledger.
func (s *MemoryService) Restore(ctx context.Context, taskID uuid.UUID, checkpointID uuid.UUID) error {
	return withRetry(ctx, s.retry, s.logger, "restore", func() error {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		cp, err := tx.Checkpoint.Get(ctx, checkpointID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get checkpoint: %w", err)
		}
		if cp.TaskID != taskID {
			return fmt.Errorf("%w: checkpoint %s belongs to another task", ErrInvalidInput, checkpointID)
		}

		mem, err := tx.SessionMemory.Query().
			Where(sessionmemory.TaskIDEQ(taskID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock session memory: %w", err)
		}

		snap := cp.Snapshot
		restored := models.ProgressEntry{
			Kind:      models.ProgressRestored,
			Phase:     snap.Phase,
			Attempt:   len(snap.Attempts),
			Summary:   fmt.Sprintf("session restored from checkpoint %s", checkpointID),
			Timestamp: time.Now(),
		}

		upd := mem.Update().
			SetPhase(string(snap.Phase)).
			SetProgress(append(snap.Progress, restored)).
			SetAttempts(snap.Attempts).
			SetFailurePatterns(snap.FailurePatterns).
			SetOutputs(snap.Outputs).
			SetErrorCount(snap.ErrorCount).
			SetRetryCount(snap.RetryCount).
			SetLastCheckpointID(checkpointID)
		if snap.Orchestration != nil {
			upd.SetOrchestration(snap.Orchestration)
		} else {
			upd.ClearOrchestration()
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("failed to restore session memory: %w", err)
		}
		return tx.Commit()
	})
}

// GetRecentErrors returns the last n error-kind ledger entries, newest last.
func (s *MemoryService) GetRecentErrors(ctx context.Context, taskID uuid.UUID, n int) ([]models.ProgressEntry, error) {
	mem, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	var errs []models.ProgressEntry
	for _, entry := range mem.Progress {
		if entry.Kind.IsError() {
			errs = append(errs, entry)
		}
	}
	if n > 0 && len(errs) > n {
		errs = errs[len(errs)-n:]
	}
	return errs, nil
}

// GetAttemptSummary formats the attempt history for a fixer prompt.
func (s *MemoryService) GetAttemptSummary(ctx context.Context, taskID uuid.UUID) (string, error) {
	mem, err := s.Get(ctx, taskID)
	if err != nil {
		return "", err
	}
	if len(mem.Attempts) == 0 {
		return "no previous attempts", nil
	}
	var b strings.Builder
	for _, a := range mem.Attempts {
		fmt.Fprintf(&b, "attempt %d: %s", a.AttemptNumber, a.Outcome)
		if a.FailureReason != "" {
			fmt.Fprintf(&b, " (%s)", a.FailureReason)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// GetFailurePatterns returns patterns that recurred (occurrences >= 2).
func (s *MemoryService) GetFailurePatterns(ctx context.Context, taskID uuid.UUID) ([]models.FailurePattern, error) {
	mem, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	var recurring []models.FailurePattern
	for _, p := range mem.FailurePatterns {
		if p.Occurrences >= 2 {
			recurring = append(recurring, p)
		}
	}
	return recurring, nil
}

func snapshotOf(mem *ent.SessionMemory) models.SessionSnapshot {
	snap := models.SessionSnapshot{
		Phase:           models.Phase(mem.Phase),
		Progress:        append([]models.ProgressEntry(nil), mem.Progress...),
		Attempts:        append([]models.AttemptRecord(nil), mem.Attempts...),
		FailurePatterns: append([]models.FailurePattern(nil), mem.FailurePatterns...),
		ErrorCount:      mem.ErrorCount,
		RetryCount:      mem.RetryCount,
	}
	if mem.Outputs != nil {
		snap.Outputs = make(map[string]json.RawMessage, len(mem.Outputs))
		for k, v := range mem.Outputs {
			snap.Outputs[k] = append(json.RawMessage(nil), v...)
		}
	}
	if mem.Orchestration != nil {
		cloned := *mem.Orchestration
		cloned.Subtasks = append([]models.SubtaskState(nil), mem.Orchestration.Subtasks...)
		cloned.CompletedSubtasks = append([]string(nil), mem.Orchestration.CompletedSubtasks...)
		snap.Orchestration = &cloned
	}
	if mem.LastCheckpointID != nil {
		snap.LastCheckpointID = mem.LastCheckpointID.String()
	}
	return snap
}

func checkpointSummary(id uuid.UUID, reason string) string {
	if reason == "" {
		return fmt.Sprintf("checkpoint %s created", id)
	}
	return fmt.Sprintf("checkpoint %s created: %s", id, reason)
}

// Package orchestrator drives tasks through the workflow state machine.
// The persisted Status is the only ground truth: Process can be re-entered
// after a crash or restart and resumes from wherever the task stopped.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/pkg/agent"
	"github.com/patchpilot/patchpilot/pkg/events"
	"github.com/patchpilot/patchpilot/pkg/fault"
	"github.com/patchpilot/patchpilot/pkg/graph"
	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/patchpilot/patchpilot/pkg/services"
	"github.com/patchpilot/patchpilot/pkg/vcs"
)

// maxStageIterations bounds the Process loop. A healthy task finishes in far
// fewer steps; hitting the bound means the state machine is thrashing.
const maxStageIterations = 60

// escalationAttempts is how many extra attempts run on escalation models
// after the regular attempt budget is spent.
const escalationAttempts = 2

// maxAttemptsError is the lastError marker for an exhausted attempt budget.
const maxAttemptsError = "MAX_ATTEMPTS"

// TaskStore is the slice of the task service the engine needs.
type TaskStore interface {
	GetTask(ctx context.Context, id uuid.UUID) (*ent.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next models.Status, upd services.StatusUpdate) (*ent.Task, error)
	SetPlanArtifacts(ctx context.Context, id uuid.UUID, out *models.PlannerOutput) (*ent.Task, error)
	SetDiff(ctx context.Context, id uuid.UUID, diff, commitMessage string) (*ent.Task, error)
	SetPR(ctx context.Context, id uuid.UUID, pr models.PRRef) (*ent.Task, error)
	CreateChildTask(ctx context.Context, parent *ent.Task, def models.SubtaskDefinition, index int) (*ent.Task, error)
	MarkOrchestrated(ctx context.Context, id uuid.UUID) error
	Children(ctx context.Context, parentID uuid.UUID) ([]*ent.Task, error)
}

// MemoryStore is the slice of the session memory service the engine needs.
type MemoryStore interface {
	Get(ctx context.Context, taskID uuid.UUID) (*ent.SessionMemory, error)
	LogProgress(ctx context.Context, taskID uuid.UUID, kind models.ProgressKind, phase models.Phase, attempt int, summary string, payload json.RawMessage) error
	StartAttempt(ctx context.Context, taskID uuid.UUID) (int, error)
	EndAttempt(ctx context.Context, taskID uuid.UUID, result services.AttemptResult) error
	SetAgentOutput(ctx context.Context, taskID uuid.UUID, stage models.Stage, output any) error
	SetOrchestration(ctx context.Context, taskID uuid.UUID, state *models.OrchestrationState) error
	UpdateSubtaskStatus(ctx context.Context, taskID uuid.UUID, subtaskID string, status models.SubtaskStatus, childTaskID string, diff string) error
	SetAggregatedDiff(ctx context.Context, taskID uuid.UUID, diff string) error
	Checkpoint(ctx context.Context, taskID uuid.UUID, reason string) (*ent.Checkpoint, error)
	Restore(ctx context.Context, taskID uuid.UUID, checkpointID uuid.UUID) error
	GetFailurePatterns(ctx context.Context, taskID uuid.UUID) ([]models.FailurePattern, error)
	GetAttemptSummary(ctx context.Context, taskID uuid.UUID) (string, error)
}

// AgentRunner invokes the model-backed agents.
type AgentRunner interface {
	RunPlanner(ctx context.Context, call agent.Call, in agent.PlannerInput) (*models.PlannerOutput, agent.Usage, error)
	RunCoder(ctx context.Context, call agent.Call, in agent.CoderInput) (*models.CoderOutput, agent.Usage, error)
	RunFixer(ctx context.Context, call agent.Call, in agent.FixerInput) (*models.FixerOutput, agent.Usage, error)
	RunReviewer(ctx context.Context, call agent.Call, in agent.ReviewerInput) (*models.ReviewerOutput, agent.Usage, error)
}

// Publisher broadcasts task events. Satisfied by events.EventPublisher.
type Publisher interface {
	PublishTaskStatus(ctx context.Context, taskID string, payload events.TaskStatusPayload) error
	PublishTaskProgress(ctx context.Context, taskID string, payload events.TaskProgressPayload) error
	PublishAttempt(ctx context.Context, taskID string, payload events.AttemptPayload) error
	PublishSubtaskStatus(ctx context.Context, taskID string, payload events.SubtaskStatusPayload) error
}

// Config tunes the engine.
type Config struct {
	// MaxParallel bounds concurrent subtask execution within one parent.
	MaxParallel int
	// CheckTimeout bounds one CI polling cycle.
	CheckTimeout time.Duration
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		MaxParallel:  graph.DefaultMaxParallel,
		CheckTimeout: 60 * time.Second,
	}
}

// Engine runs the task workflow.
type Engine struct {
	tasks     TaskStore
	memory    MemoryStore
	runner    AgentRunner
	vcs       vcs.Client
	publisher Publisher
	cfg       Config
	logger    *slog.Logger
}

// NewEngine creates an orchestration engine.
func NewEngine(tasks TaskStore, memory MemoryStore, runner AgentRunner, vcsClient vcs.Client, publisher Publisher, cfg Config) *Engine {
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = graph.DefaultMaxParallel
	}
	if cfg.CheckTimeout <= 0 {
		cfg.CheckTimeout = 60 * time.Second
	}
	return &Engine{
		tasks:     tasks,
		memory:    memory,
		runner:    runner,
		vcs:       vcsClient,
		publisher: publisher,
		cfg:       cfg,
		logger:    slog.Default().With("component", "orchestrator"),
	}
}

// Process advances a task until it reaches a resting state: terminal,
// WAITING_HUMAN, or (for subtask children) REVIEW_APPROVED. It derives every
// step from the persisted Status, so it is safe to call again after a crash.
func (e *Engine) Process(ctx context.Context, taskID uuid.UUID) error {
	consecutiveRestores := 0

	for i := 0; i < maxStageIterations; i++ {
		if ctx.Err() != nil {
			return e.cancelTask(taskID)
		}

		task, err := e.tasks.GetTask(ctx, taskID)
		if err != nil {
			return err
		}
		if atRest(task) {
			return nil
		}

		stepErr := e.step(ctx, task)
		switch {
		case stepErr == nil:
			consecutiveRestores = 0

		case errors.Is(stepErr, context.Canceled) || fault.Is(stepErr, fault.Cancelled):
			return e.cancelTask(taskID)

		case fault.Is(stepErr, fault.StorageFatal):
			consecutiveRestores++
			if consecutiveRestores >= 2 {
				return e.failTask(task, "storage failure", stepErr)
			}
			if err := e.restoreLastCheckpoint(ctx, task); err != nil {
				return e.failTask(task, "storage failure", stepErr)
			}

		default:
			return e.failTask(task, classify(stepErr), stepErr)
		}
	}
	return fmt.Errorf("task %s exceeded %d stage iterations", taskID, maxStageIterations)
}

// atRest reports whether processing should stop at the task's current state.
// Children rest at REVIEW_APPROVED; the parent aggregates their diffs.
func atRest(task *ent.Task) bool {
	status := task.Status
	if status.Terminal() || status == models.StatusWaitingHuman {
		return true
	}
	return task.ParentTaskID != nil && status == models.StatusReviewApproved
}

// step executes the handler for the task's current state. Each handler
// performs its stage's actions and persists exactly the transitions the
// state machine allows.
func (e *Engine) step(ctx context.Context, task *ent.Task) error {
	e.logger.Info("Processing stage", "task_id", task.ID, "status", task.Status)

	switch task.Status {
	case models.StatusNew:
		_, err := e.transition(ctx, task, models.StatusPlanning, services.StatusUpdate{})
		return err
	case models.StatusPlanning:
		return e.handlePlanning(ctx, task)
	case models.StatusPlanningDone:
		_, err := e.transition(ctx, task, models.StatusCoding, services.StatusUpdate{})
		return err
	case models.StatusBreakdownDone:
		return e.handleBreakdown(ctx, task)
	case models.StatusOrchestrating:
		return e.handleOrchestrating(ctx, task)
	case models.StatusCoding:
		return e.handleCoding(ctx, task)
	case models.StatusCodingDone:
		return e.handlePublishDiff(ctx, task)
	case models.StatusTesting:
		return e.handleTesting(ctx, task)
	case models.StatusTestsFailed:
		return e.handleTestsFailed(ctx, task)
	case models.StatusFixing:
		return e.handleFixing(ctx, task)
	case models.StatusTestsPassed:
		_, err := e.transition(ctx, task, models.StatusReviewing, services.StatusUpdate{})
		return err
	case models.StatusReviewing:
		return e.handleReviewing(ctx, task)
	case models.StatusReviewApproved:
		return e.handleApproved(ctx, task)
	case models.StatusReviewRejected:
		return e.handleRejected(ctx, task)
	default:
		return fmt.Errorf("no handler for status %s", task.Status)
	}
}

// transition moves the task to next, checkpoints, and broadcasts the new
// status. The checkpoint after every successful transition is what restore
// rolls back to on storage failures.
func (e *Engine) transition(ctx context.Context, task *ent.Task, next models.Status, upd services.StatusUpdate) (*ent.Task, error) {
	updated, err := e.tasks.UpdateStatus(ctx, task.ID, next, upd)
	if err != nil {
		return nil, err
	}

	if !next.Terminal() {
		if _, err := e.memory.Checkpoint(ctx, task.ID, "entered "+string(next)); err != nil {
			return nil, err
		}
	}

	e.publishStatus(ctx, updated)
	return updated, nil
}

// publishStatus broadcasts the task's current status. Best-effort: event
// delivery must never fail a workflow step.
func (e *Engine) publishStatus(ctx context.Context, task *ent.Task) {
	err := e.publisher.PublishTaskStatus(ctx, task.ID.String(), events.TaskStatusPayload{
		Type:       events.EventTypeTaskStatus,
		TaskID:     task.ID.String(),
		Status:     string(task.Status),
		Phase:      string(models.PhaseOf(task.Status)),
		LastError:  task.LastError,
		Repo:       task.RepoOwner + "/" + task.RepoName,
		IssueTitle: task.IssueTitle,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		e.logger.Warn("Failed to publish status event", "task_id", task.ID, "error", err)
	}
}

// logProgress appends to the session ledger and mirrors the entry onto the
// event stream.
func (e *Engine) logProgress(ctx context.Context, task *ent.Task, kind models.ProgressKind, attempt int, summary string) {
	if err := e.memory.LogProgress(ctx, task.ID, kind, models.PhaseOf(task.Status), attempt, summary, nil); err != nil {
		e.logger.Warn("Failed to log progress", "task_id", task.ID, "kind", kind, "error", err)
	}
	err := e.publisher.PublishTaskProgress(ctx, task.ID.String(), events.TaskProgressPayload{
		Type:      events.EventTypeTaskProgress,
		TaskID:    task.ID.String(),
		Kind:      string(kind),
		Message:   summary,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		e.logger.Warn("Failed to publish progress event", "task_id", task.ID, "error", err)
	}
}

// failTask marks the task FAILED with a short classification plus detail.
// Uses a background context so the terminal write survives cancellation.
func (e *Engine) failTask(task *ent.Task, reason string, cause error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	detail := reason
	if cause != nil {
		detail = fmt.Sprintf("%s: %v", reason, cause)
	}
	updated, err := e.tasks.UpdateStatus(ctx, task.ID, models.StatusFailed, services.StatusUpdate{
		LastError: &detail,
	})
	if err != nil {
		e.logger.Error("Failed to mark task failed", "task_id", task.ID, "error", err)
		return cause
	}
	e.logProgress(ctx, updated, models.ProgressError, 0, detail)
	e.publishStatus(ctx, updated)
	e.commentOnFailure(ctx, updated, detail)
	return cause
}

// cancelTask is external cancellation: terminal FAILED with "cancelled".
func (e *Engine) cancelTask(taskID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reason := "cancelled"
	updated, err := e.tasks.UpdateStatus(ctx, taskID, models.StatusFailed, services.StatusUpdate{
		LastError: &reason,
	})
	if err != nil {
		return fmt.Errorf("failed to cancel task %s: %w", taskID, err)
	}
	e.logProgress(ctx, updated, models.ProgressCancelled, 0, "task cancelled")
	e.publishStatus(ctx, updated)
	return nil
}

// commentOnFailure posts a short failure summary to the PR (or the source
// issue when no PR exists yet). Best-effort.
func (e *Engine) commentOnFailure(ctx context.Context, task *ent.Task, detail string) {
	if task.ParentTaskID != nil {
		return // Children don't own a PR or the issue thread.
	}
	repo := models.RepoRef{Owner: task.RepoOwner, Name: task.RepoName}
	number := task.IssueNumber
	if task.PrNumber != nil && *task.PrNumber != 0 {
		number = *task.PrNumber
	}
	body := fmt.Sprintf("Automated processing stopped: %s", detail)
	if err := e.vcs.AddComment(ctx, repo, number, body); err != nil {
		e.logger.Warn("Failed to post failure comment", "task_id", task.ID, "error", err)
	}
}

// restoreLastCheckpoint rolls session memory back to the most recent
// checkpoint after a storage failure, before the stage is re-entered.
func (e *Engine) restoreLastCheckpoint(ctx context.Context, task *ent.Task) error {
	mem, err := e.memory.Get(ctx, task.ID)
	if err != nil {
		return err
	}
	if mem.LastCheckpointID == nil || *mem.LastCheckpointID == uuid.Nil {
		return fmt.Errorf("task %s has no checkpoint to restore", task.ID)
	}
	checkpointID := *mem.LastCheckpointID
	if err := e.memory.Restore(ctx, task.ID, checkpointID); err != nil {
		return err
	}
	e.logger.Warn("Restored checkpoint after storage failure",
		"task_id", task.ID, "checkpoint_id", checkpointID)
	return nil
}

// attemptBudget is the total attempt cap: the regular budget plus the
// escalation attempts that run on stronger models.
func attemptBudget(task *ent.Task) int {
	return task.MaxAttempts + escalationAttempts
}

// escalationLevel maps an attempt number onto the escalation ladder:
// attempts within the regular budget use the routed position, the ones after
// it climb escalation_1 then escalation_2.
func escalationLevel(task *ent.Task, attemptNo int) int {
	level := attemptNo - task.MaxAttempts
	if level < 0 {
		return 0
	}
	if level > escalationAttempts {
		return escalationAttempts
	}
	return level
}

// classify maps an error to the short lastError prefix users see.
func classify(err error) string {
	var sf *subtaskFailure
	if errors.As(err, &sf) {
		return "subtask failed"
	}
	var ma *maxAttemptsExceeded
	if errors.As(err, &ma) {
		return maxAttemptsError
	}
	switch fault.KindOf(err) {
	case fault.ModelFatal:
		return "agent failure"
	case fault.SchemaInvalid:
		return "agent output invalid"
	case fault.StorageFatal:
		return "storage failure"
	case fault.DiffInvalid:
		return "invalid diff"
	case fault.MergeConflict:
		return "merge conflict"
	case fault.Cancelled:
		return "cancelled"
	default:
		return "internal error"
	}
}

func repoOf(task *ent.Task) models.RepoRef {
	return models.RepoRef{Owner: task.RepoOwner, Name: task.RepoName}
}

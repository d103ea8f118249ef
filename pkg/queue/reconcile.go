package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/pkg/events"
	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/patchpilot/patchpilot/pkg/services"
	"github.com/patchpilot/patchpilot/pkg/vcs"
)

// ReconcileStore is the slice of the task service the reconciler needs.
type ReconcileStore interface {
	TasksByStatus(ctx context.Context, status models.Status) ([]*ent.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next models.Status, upd services.StatusUpdate) (*ent.Task, error)
}

// StatusPublisher broadcasts terminal transitions the reconciler makes.
type StatusPublisher interface {
	PublishTaskStatus(ctx context.Context, taskID string, payload events.TaskStatusPayload) error
}

// Reconciler resolves WAITING_HUMAN tasks against their pull request state:
// a merged PR completes the task, a closed-unmerged PR fails it. Everything
// else stays parked.
type Reconciler struct {
	tasks     ReconcileStore
	vcs       vcs.Client
	publisher StatusPublisher
	interval  time.Duration
	logger    *slog.Logger
}

// NewReconciler creates the reconcile loop. Run starts it.
func NewReconciler(tasks ReconcileStore, vcsClient vcs.Client, publisher StatusPublisher, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Reconciler{
		tasks:     tasks,
		vcs:       vcsClient,
		publisher: publisher,
		interval:  interval,
		logger:    slog.Default().With("component", "reconciler"),
	}
}

// Run sweeps on the configured interval until the context ends.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Sweep(ctx); err != nil {
				r.logger.Error("Reconcile sweep failed", "error", err)
			}
		}
	}
}

// Sweep runs one reconcile pass over all parked tasks.
func (r *Reconciler) Sweep(ctx context.Context) error {
	parked, err := r.tasks.TasksByStatus(ctx, models.StatusWaitingHuman)
	if err != nil {
		return err
	}

	for _, t := range parked {
		if t.PrNumber == nil || *t.PrNumber == 0 {
			continue // Parked without a PR: only a human or re-trigger resolves it.
		}

		pull, err := r.vcs.GetPullState(ctx, models.RepoRef{Owner: t.RepoOwner, Name: t.RepoName}, *t.PrNumber)
		if err != nil {
			r.logger.Warn("Failed to fetch pull state", "task_id", t.ID, "pr", *t.PrNumber, "error", err)
			continue
		}

		next, reason, ok := resolvePull(pull)
		if !ok {
			continue
		}

		upd := services.StatusUpdate{}
		if reason != "" {
			upd.LastError = &reason
		}
		updated, err := r.tasks.UpdateStatus(ctx, t.ID, next, upd)
		if err != nil {
			r.logger.Error("Failed to resolve parked task", "task_id", t.ID, "next", next, "error", err)
			continue
		}
		r.logger.Info("Resolved parked task", "task_id", t.ID, "status", next, "pr", *t.PrNumber)
		r.publish(ctx, updated)
	}
	return nil
}

// resolvePull maps a pull request state onto the task's terminal outcome.
// The third return is false while the PR is still open.
func resolvePull(pull *vcs.PullState) (models.Status, string, bool) {
	if pull.Merged {
		return models.StatusCompleted, "", true
	}
	if pull.State == "closed" {
		return models.StatusFailed, "pull request closed without merge", true
	}
	return "", "", false
}

func (r *Reconciler) publish(ctx context.Context, t *ent.Task) {
	err := r.publisher.PublishTaskStatus(ctx, t.ID.String(), events.TaskStatusPayload{
		Type:       events.EventTypeTaskStatus,
		TaskID:     t.ID.String(),
		Status:     string(t.Status),
		Phase:      string(models.PhaseOf(t.Status)),
		LastError:  t.LastError,
		Repo:       t.RepoOwner + "/" + t.RepoName,
		IssueTitle: t.IssueTitle,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		r.logger.Warn("Failed to publish status event", "task_id", t.ID, "error", err)
	}
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/ent/repository"
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// TaskService manages task lifecycle. Status is only ever mutated through
// UpdateStatus so the workflow edge set is enforced in one place.
type TaskService struct {
	client *ent.Client
	retry  StoreRetryConfig
	logger *slog.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client, retry StoreRetryConfig, logger *slog.Logger) *TaskService {
	return &TaskService{client: client, retry: retry, logger: logger}
}

// CreateResult reports what CreateTask did: on re-trigger of a live task the
// existing row wins and Created is false.
type CreateResult struct {
	Task    *ent.Task
	Created bool
	Reason  string
}

// CreateTask ingests an issue. One live top-level task per (repo, issue):
// re-triggering while a task is in flight returns the existing task;
// re-triggering after a terminal state replaces it (latest wins).
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*CreateResult, error) {
	if req.Repo.Owner == "" {
		return nil, NewValidationError("repo.owner", "required")
	}
	if req.Repo.Name == "" {
		return nil, NewValidationError("repo.name", "required")
	}
	if req.Issue.Number <= 0 {
		return nil, NewValidationError("issue.number", "must be positive")
	}
	if req.Issue.Title == "" {
		return nil, NewValidationError("issue.title", "required")
	}

	// Critical write: survive the HTTP request being cancelled.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var result *CreateResult
	err := withRetry(ctx, s.retry, s.logger, "create_task", func() error {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		// Webhook re-deliveries carry the same delivery id; answer with the
		// task the original delivery produced, even after it completed.
		if req.WebhookDeliveryID != "" {
			dup, err := tx.Task.Query().
				Where(task.WebhookDeliveryIDEQ(req.WebhookDeliveryID)).
				Only(ctx)
			if err != nil && !ent.IsNotFound(err) {
				return fmt.Errorf("failed to query delivery id: %w", err)
			}
			if dup != nil {
				result = &CreateResult{Task: dup, Created: false, Reason: "duplicate delivery"}
				return tx.Commit()
			}
		}

		existing, err := tx.Task.Query().
			Where(
				task.RepoOwnerEQ(req.Repo.Owner),
				task.RepoNameEQ(req.Repo.Name),
				task.IssueNumberEQ(req.Issue.Number),
				task.ParentTaskIDIsNil(),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query existing task: %w", err)
		}

		if existing != nil {
			if !existing.Status.Terminal() {
				result = &CreateResult{Task: existing, Created: false, Reason: "task already in progress"}
				return tx.Commit()
			}
			// Latest wins: the terminal task and its session are replaced.
			if err := tx.Task.DeleteOne(existing).Exec(ctx); err != nil {
				return fmt.Errorf("failed to replace terminal task: %w", err)
			}
		}

		builder := tx.Task.Create().
			SetRepoOwner(req.Repo.Owner).
			SetRepoName(req.Repo.Name).
			SetIssueNumber(req.Issue.Number).
			SetIssueTitle(req.Issue.Title).
			SetIssueBody(req.Issue.Body)
		if req.MaxAttempts > 0 {
			builder.SetMaxAttempts(req.MaxAttempts)
		}
		if req.WebhookSource != "" {
			builder.SetWebhookSource(req.WebhookSource)
		}
		if req.WebhookDeliveryID != "" {
			builder.SetWebhookDeliveryID(req.WebhookDeliveryID)
		}
		created, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to create task: %w", err)
		}

		if _, err := tx.SessionMemory.Create().
			SetTaskID(created.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to create session memory: %w", err)
		}

		result = &CreateResult{Task: created, Created: true}
		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateChildTask creates one subtask child under a parent, with its own
// session memory.
func (s *TaskService) CreateChildTask(ctx context.Context, parent *ent.Task, def models.SubtaskDefinition, index int) (*ent.Task, error) {
	var child *ent.Task
	err := withRetry(ctx, s.retry, s.logger, "create_child_task", func() error {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		child, err = tx.Task.Create().
			SetRepoOwner(parent.RepoOwner).
			SetRepoName(parent.RepoName).
			SetIssueNumber(parent.IssueNumber).
			SetIssueTitle(def.Title).
			SetIssueBody(def.Description).
			SetParentTaskID(parent.ID).
			SetSubtaskIndex(index).
			SetMaxAttempts(parent.MaxAttempts).
			SetEstimatedComplexity(string(def.EstimatedComplexity)).
			SetDefinitionOfDone(def.AcceptanceCriteria).
			SetTargetFiles(def.TargetFiles).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create child task: %w", err)
		}

		if _, err := tx.SessionMemory.Create().
			SetTaskID(child.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to create child session memory: %w", err)
		}
		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}
	return child, nil
}

// GetTask fetches one task by id.
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks returns top-level tasks matching the filters, newest first.
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) ([]*ent.Task, error) {
	q := s.client.Task.Query().
		Where(task.ParentTaskIDIsNil()).
		Order(ent.Desc(task.FieldCreatedAt))

	if filters.Status != "" {
		q = q.Where(task.StatusEQ(models.Status(filters.Status)))
	}
	if filters.RepoOwner != "" {
		q = q.Where(task.RepoOwnerEQ(filters.RepoOwner))
	}
	if filters.RepoName != "" {
		q = q.Where(task.RepoNameEQ(filters.RepoName))
	}
	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		q = q.Offset(filters.Offset)
	}

	tasks, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// TasksByStatus returns all tasks in the given status, oldest first.
func (s *TaskService) TasksByStatus(ctx context.Context, status models.Status) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.StatusEQ(status)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by status: %w", err)
	}
	return tasks, nil
}

// Children returns the subtask child tasks of a parent, in subtask order.
func (s *TaskService) Children(ctx context.Context, parentID uuid.UUID) ([]*ent.Task, error) {
	children, err := s.client.Task.Query().
		Where(task.ParentTaskIDEQ(parentID)).
		Order(ent.Asc(task.FieldSubtaskIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query child tasks: %w", err)
	}
	return children, nil
}

// ChildDiff is one completed subtask's diff, in subtask index order.
type ChildDiff struct {
	SubtaskIndex int
	TaskID       uuid.UUID
	Diff         string
}

// CompletedChildDiffs returns the diffs of children that reached approval,
// ordered by subtask index for deterministic aggregation.
func (s *TaskService) CompletedChildDiffs(ctx context.Context, parentID uuid.UUID) ([]ChildDiff, error) {
	children, err := s.client.Task.Query().
		Where(
			task.ParentTaskIDEQ(parentID),
			task.StatusEQ(models.StatusReviewApproved),
		).
		Order(ent.Asc(task.FieldSubtaskIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed children: %w", err)
	}

	diffs := make([]ChildDiff, 0, len(children))
	for _, child := range children {
		index := 0
		if child.SubtaskIndex != nil {
			index = *child.SubtaskIndex
		}
		diffs = append(diffs, ChildDiff{SubtaskIndex: index, TaskID: child.ID, Diff: child.CurrentDiff})
	}
	return diffs, nil
}

// StatusUpdate carries the optional field writes accompanying a transition.
type StatusUpdate struct {
	LastError       *string
	ClearLastError  bool
	BranchName      string
	AttemptCount    *int
	TotalAttempts   *int
	EscalationLevel *int
}

// UpdateStatus transitions a task through the workflow, enforcing the edge
// set under a row lock.
func (s *TaskService) UpdateStatus(ctx context.Context, id uuid.UUID, next models.Status, upd StatusUpdate) (*ent.Task, error) {
	var updated *ent.Task
	err := withRetry(ctx, s.retry, s.logger, "update_status", func() error {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		current, err := tx.Task.Query().
			Where(task.IDEQ(id)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock task: %w", err)
		}

		if !current.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, next)
		}

		builder := current.Update().SetStatus(next)
		now := time.Now()
		if current.Status == models.StatusNew {
			builder.SetStartedAt(now)
		}
		if next.Terminal() {
			builder.SetCompletedAt(now)
		}
		if upd.LastError != nil {
			builder.SetLastError(*upd.LastError)
		} else if upd.ClearLastError {
			builder.ClearLastError()
		}
		if upd.BranchName != "" {
			builder.SetBranchName(upd.BranchName)
		}
		if upd.AttemptCount != nil {
			builder.SetAttemptCount(*upd.AttemptCount)
		}
		if upd.TotalAttempts != nil {
			builder.SetTotalAttempts(*upd.TotalAttempts)
		}
		if upd.EscalationLevel != nil {
			builder.SetEscalationLevel(*upd.EscalationLevel)
		}

		updated, err = builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetPlanArtifacts persists the planner output onto the task row.
func (s *TaskService) SetPlanArtifacts(ctx context.Context, id uuid.UUID, out *models.PlannerOutput) (*ent.Task, error) {
	t, err := s.client.Task.UpdateOneID(id).
		SetDefinitionOfDone(out.DefinitionOfDone).
		SetPlan(out.Plan).
		SetTargetFiles(out.TargetFiles).
		SetEstimatedComplexity(string(out.EstimatedComplexity)).
		SetEstimatedEffort(string(out.EstimatedEffort)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set plan artifacts: %w", err)
	}
	return t, nil
}

// SetDiff persists the current diff and commit message.
func (s *TaskService) SetDiff(ctx context.Context, id uuid.UUID, diff, commitMessage string) (*ent.Task, error) {
	t, err := s.client.Task.UpdateOneID(id).
		SetCurrentDiff(diff).
		SetCommitMessage(commitMessage).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set diff: %w", err)
	}
	return t, nil
}

// SetPR records the published pull request reference.
func (s *TaskService) SetPR(ctx context.Context, id uuid.UUID, pr models.PRRef) (*ent.Task, error) {
	t, err := s.client.Task.UpdateOneID(id).
		SetPrNumber(pr.Number).
		SetPrURL(pr.URL).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set PR reference: %w", err)
	}
	return t, nil
}

// RepoEnabled reports whether the service may operate on the repository.
// Unknown repositories are allowed by default; a row in the repositories
// table can disable one explicitly.
func (s *TaskService) RepoEnabled(ctx context.Context, repo models.RepoRef) (bool, error) {
	row, err := s.client.Repository.Query().
		Where(repository.OwnerEQ(repo.Owner), repository.NameEQ(repo.Name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to query repository: %w", err)
	}
	return row.Enabled, nil
}

// MarkOrchestrated flags the parent after breakdown created its children.
func (s *TaskService) MarkOrchestrated(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Task.UpdateOneID(id).
		SetIsOrchestrated(true).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark orchestrated: %w", err)
	}
	return nil
}

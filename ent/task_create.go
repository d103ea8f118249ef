// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/agenttrace"
	"github.com/patchpilot/patchpilot/ent/checkpoint"
	"github.com/patchpilot/patchpilot/ent/sessionmemory"
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/ent/taskevent"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRepoOwner sets the "repo_owner" field.
func (_c *TaskCreate) SetRepoOwner(v string) *TaskCreate {
	_c.mutation.SetRepoOwner(v)
	return _c
}

// SetRepoName sets the "repo_name" field.
func (_c *TaskCreate) SetRepoName(v string) *TaskCreate {
	_c.mutation.SetRepoName(v)
	return _c
}

// SetIssueNumber sets the "issue_number" field.
func (_c *TaskCreate) SetIssueNumber(v int) *TaskCreate {
	_c.mutation.SetIssueNumber(v)
	return _c
}

// SetIssueTitle sets the "issue_title" field.
func (_c *TaskCreate) SetIssueTitle(v string) *TaskCreate {
	_c.mutation.SetIssueTitle(v)
	return _c
}

// SetIssueBody sets the "issue_body" field.
func (_c *TaskCreate) SetIssueBody(v string) *TaskCreate {
	_c.mutation.SetIssueBody(v)
	return _c
}

// SetNillableIssueBody sets the "issue_body" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIssueBody(v *string) *TaskCreate {
	if v != nil {
		_c.SetIssueBody(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v models.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *models.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *TaskCreate) SetAttemptCount(v int) *TaskCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAttemptCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *TaskCreate) SetTotalAttempts(v int) *TaskCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTotalAttempts(v *int) *TaskCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *TaskCreate) SetMaxAttempts(v int) *TaskCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMaxAttempts(v *int) *TaskCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetEscalationLevel sets the "escalation_level" field.
func (_c *TaskCreate) SetEscalationLevel(v int) *TaskCreate {
	_c.mutation.SetEscalationLevel(v)
	return _c
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEscalationLevel(v *int) *TaskCreate {
	if v != nil {
		_c.SetEscalationLevel(*v)
	}
	return _c
}

// SetParentTaskID sets the "parent_task_id" field.
func (_c *TaskCreate) SetParentTaskID(v uuid.UUID) *TaskCreate {
	_c.mutation.SetParentTaskID(v)
	return _c
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableParentTaskID(v *uuid.UUID) *TaskCreate {
	if v != nil {
		_c.SetParentTaskID(*v)
	}
	return _c
}

// SetSubtaskIndex sets the "subtask_index" field.
func (_c *TaskCreate) SetSubtaskIndex(v int) *TaskCreate {
	_c.mutation.SetSubtaskIndex(v)
	return _c
}

// SetNillableSubtaskIndex sets the "subtask_index" field if the given value is not nil.
func (_c *TaskCreate) SetNillableSubtaskIndex(v *int) *TaskCreate {
	if v != nil {
		_c.SetSubtaskIndex(*v)
	}
	return _c
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (_c *TaskCreate) SetIsOrchestrated(v bool) *TaskCreate {
	_c.mutation.SetIsOrchestrated(v)
	return _c
}

// SetNillableIsOrchestrated sets the "is_orchestrated" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIsOrchestrated(v *bool) *TaskCreate {
	if v != nil {
		_c.SetIsOrchestrated(*v)
	}
	return _c
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (_c *TaskCreate) SetDefinitionOfDone(v []string) *TaskCreate {
	_c.mutation.SetDefinitionOfDone(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *TaskCreate) SetPlan(v []models.PlanStep) *TaskCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetTargetFiles sets the "target_files" field.
func (_c *TaskCreate) SetTargetFiles(v []string) *TaskCreate {
	_c.mutation.SetTargetFiles(v)
	return _c
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_c *TaskCreate) SetEstimatedComplexity(v string) *TaskCreate {
	_c.mutation.SetEstimatedComplexity(v)
	return _c
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEstimatedComplexity(v *string) *TaskCreate {
	if v != nil {
		_c.SetEstimatedComplexity(*v)
	}
	return _c
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_c *TaskCreate) SetEstimatedEffort(v string) *TaskCreate {
	_c.mutation.SetEstimatedEffort(v)
	return _c
}

// SetNillableEstimatedEffort sets the "estimated_effort" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEstimatedEffort(v *string) *TaskCreate {
	if v != nil {
		_c.SetEstimatedEffort(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *TaskCreate) SetBranchName(v string) *TaskCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_c *TaskCreate) SetNillableBranchName(v *string) *TaskCreate {
	if v != nil {
		_c.SetBranchName(*v)
	}
	return _c
}

// SetCurrentDiff sets the "current_diff" field.
func (_c *TaskCreate) SetCurrentDiff(v string) *TaskCreate {
	_c.mutation.SetCurrentDiff(v)
	return _c
}

// SetNillableCurrentDiff sets the "current_diff" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCurrentDiff(v *string) *TaskCreate {
	if v != nil {
		_c.SetCurrentDiff(*v)
	}
	return _c
}

// SetCommitMessage sets the "commit_message" field.
func (_c *TaskCreate) SetCommitMessage(v string) *TaskCreate {
	_c.mutation.SetCommitMessage(v)
	return _c
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCommitMessage(v *string) *TaskCreate {
	if v != nil {
		_c.SetCommitMessage(*v)
	}
	return _c
}

// SetPrNumber sets the "pr_number" field.
func (_c *TaskCreate) SetPrNumber(v int) *TaskCreate {
	_c.mutation.SetPrNumber(v)
	return _c
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePrNumber(v *int) *TaskCreate {
	if v != nil {
		_c.SetPrNumber(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *TaskCreate) SetPrURL(v string) *TaskCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePrURL(v *string) *TaskCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *TaskCreate) SetLastError(v string) *TaskCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastError(v *string) *TaskCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetWebhookSource sets the "webhook_source" field.
func (_c *TaskCreate) SetWebhookSource(v string) *TaskCreate {
	_c.mutation.SetWebhookSource(v)
	return _c
}

// SetNillableWebhookSource sets the "webhook_source" field if the given value is not nil.
func (_c *TaskCreate) SetNillableWebhookSource(v *string) *TaskCreate {
	if v != nil {
		_c.SetWebhookSource(*v)
	}
	return _c
}

// SetWebhookDeliveryID sets the "webhook_delivery_id" field.
func (_c *TaskCreate) SetWebhookDeliveryID(v string) *TaskCreate {
	_c.mutation.SetWebhookDeliveryID(v)
	return _c
}

// SetNillableWebhookDeliveryID sets the "webhook_delivery_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableWebhookDeliveryID(v *string) *TaskCreate {
	if v != nil {
		_c.SetWebhookDeliveryID(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *TaskCreate) SetClaimedBy(v string) *TaskCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *TaskCreate) SetNillableClaimedBy(v *string) *TaskCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *TaskCreate) SetClaimedAt(v time.Time) *TaskCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableClaimedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *TaskCreate) SetLastHeartbeatAt(v time.Time) *TaskCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastHeartbeatAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v uuid.UUID) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableID(v *uuid.UUID) *TaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMemoryID sets the "memory" edge to the SessionMemory entity by ID.
func (_c *TaskCreate) SetMemoryID(id uuid.UUID) *TaskCreate {
	_c.mutation.SetMemoryID(id)
	return _c
}

// SetNillableMemoryID sets the "memory" edge to the SessionMemory entity by ID if the given value is not nil.
func (_c *TaskCreate) SetNillableMemoryID(id *uuid.UUID) *TaskCreate {
	if id != nil {
		_c = _c.SetMemoryID(*id)
	}
	return _c
}

// SetMemory sets the "memory" edge to the SessionMemory entity.
func (_c *TaskCreate) SetMemory(v *SessionMemory) *TaskCreate {
	return _c.SetMemoryID(v.ID)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *TaskCreate) AddCheckpointIDs(ids ...uuid.UUID) *TaskCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *TaskCreate) AddCheckpoints(v ...*Checkpoint) *TaskCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (_c *TaskCreate) AddEventIDs(ids ...int64) *TaskCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (_c *TaskCreate) AddEvents(v ...*TaskEvent) *TaskCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by IDs.
func (_c *TaskCreate) AddTraceIDs(ids ...uuid.UUID) *TaskCreate {
	_c.mutation.AddTraceIDs(ids...)
	return _c
}

// AddTraces adds the "traces" edges to the AgentTrace entity.
func (_c *TaskCreate) AddTraces(v ...*AgentTrace) *TaskCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTraceIDs(ids...)
}

// SetParentID sets the "parent" edge to the Task entity by ID.
func (_c *TaskCreate) SetParentID(id uuid.UUID) *TaskCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetNillableParentID sets the "parent" edge to the Task entity by ID if the given value is not nil.
func (_c *TaskCreate) SetNillableParentID(id *uuid.UUID) *TaskCreate {
	if id != nil {
		_c = _c.SetParentID(*id)
	}
	return _c
}

// SetParent sets the "parent" edge to the Task entity.
func (_c *TaskCreate) SetParent(v *Task) *TaskCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Task entity by IDs.
func (_c *TaskCreate) AddChildIDs(ids ...uuid.UUID) *TaskCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the Task entity.
func (_c *TaskCreate) AddChildren(v ...*Task) *TaskCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := task.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := task.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := task.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		v := task.DefaultEscalationLevel
		_c.mutation.SetEscalationLevel(v)
	}
	if _, ok := _c.mutation.IsOrchestrated(); !ok {
		v := task.DefaultIsOrchestrated
		_c.mutation.SetIsOrchestrated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := task.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.RepoOwner(); !ok {
		return &ValidationError{Name: "repo_owner", err: errors.New(`ent: missing required field "Task.repo_owner"`)}
	}
	if _, ok := _c.mutation.RepoName(); !ok {
		return &ValidationError{Name: "repo_name", err: errors.New(`ent: missing required field "Task.repo_name"`)}
	}
	if _, ok := _c.mutation.IssueNumber(); !ok {
		return &ValidationError{Name: "issue_number", err: errors.New(`ent: missing required field "Task.issue_number"`)}
	}
	if _, ok := _c.mutation.IssueTitle(); !ok {
		return &ValidationError{Name: "issue_title", err: errors.New(`ent: missing required field "Task.issue_title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "Task.attempt_count"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "Task.total_attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Task.max_attempts"`)}
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		return &ValidationError{Name: "escalation_level", err: errors.New(`ent: missing required field "Task.escalation_level"`)}
	}
	if _, ok := _c.mutation.IsOrchestrated(); !ok {
		return &ValidationError{Name: "is_orchestrated", err: errors.New(`ent: missing required field "Task.is_orchestrated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RepoOwner(); ok {
		_spec.SetField(task.FieldRepoOwner, field.TypeString, value)
		_node.RepoOwner = value
	}
	if value, ok := _c.mutation.RepoName(); ok {
		_spec.SetField(task.FieldRepoName, field.TypeString, value)
		_node.RepoName = value
	}
	if value, ok := _c.mutation.IssueNumber(); ok {
		_spec.SetField(task.FieldIssueNumber, field.TypeInt, value)
		_node.IssueNumber = value
	}
	if value, ok := _c.mutation.IssueTitle(); ok {
		_spec.SetField(task.FieldIssueTitle, field.TypeString, value)
		_node.IssueTitle = value
	}
	if value, ok := _c.mutation.IssueBody(); ok {
		_spec.SetField(task.FieldIssueBody, field.TypeString, value)
		_node.IssueBody = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(task.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(task.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.EscalationLevel(); ok {
		_spec.SetField(task.FieldEscalationLevel, field.TypeInt, value)
		_node.EscalationLevel = value
	}
	if value, ok := _c.mutation.SubtaskIndex(); ok {
		_spec.SetField(task.FieldSubtaskIndex, field.TypeInt, value)
		_node.SubtaskIndex = &value
	}
	if value, ok := _c.mutation.IsOrchestrated(); ok {
		_spec.SetField(task.FieldIsOrchestrated, field.TypeBool, value)
		_node.IsOrchestrated = value
	}
	if value, ok := _c.mutation.DefinitionOfDone(); ok {
		_spec.SetField(task.FieldDefinitionOfDone, field.TypeJSON, value)
		_node.DefinitionOfDone = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(task.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.TargetFiles(); ok {
		_spec.SetField(task.FieldTargetFiles, field.TypeJSON, value)
		_node.TargetFiles = value
	}
	if value, ok := _c.mutation.EstimatedComplexity(); ok {
		_spec.SetField(task.FieldEstimatedComplexity, field.TypeString, value)
		_node.EstimatedComplexity = value
	}
	if value, ok := _c.mutation.EstimatedEffort(); ok {
		_spec.SetField(task.FieldEstimatedEffort, field.TypeString, value)
		_node.EstimatedEffort = value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(task.FieldBranchName, field.TypeString, value)
		_node.BranchName = value
	}
	if value, ok := _c.mutation.CurrentDiff(); ok {
		_spec.SetField(task.FieldCurrentDiff, field.TypeString, value)
		_node.CurrentDiff = value
	}
	if value, ok := _c.mutation.CommitMessage(); ok {
		_spec.SetField(task.FieldCommitMessage, field.TypeString, value)
		_node.CommitMessage = value
	}
	if value, ok := _c.mutation.PrNumber(); ok {
		_spec.SetField(task.FieldPrNumber, field.TypeInt, value)
		_node.PrNumber = &value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(task.FieldPrURL, field.TypeString, value)
		_node.PrURL = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.WebhookSource(); ok {
		_spec.SetField(task.FieldWebhookSource, field.TypeString, value)
		_node.WebhookSource = value
	}
	if value, ok := _c.mutation.WebhookDeliveryID(); ok {
		_spec.SetField(task.FieldWebhookDeliveryID, field.TypeString, value)
		_node.WebhookDeliveryID = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(task.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(task.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.MemoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.MemoryTable,
			Columns: []string{task.MemoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CheckpointsTable,
			Columns: []string{task.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TracesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TracesTable,
			Columns: []string{task.TracesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ParentTable,
			Columns: []string{task.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentTaskID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ChildrenTable,
			Columns: []string{task.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetRepoOwner(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetRepoOwner(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetRepoOwner sets the "repo_owner" field.
func (u *TaskUpsert) SetRepoOwner(v string) *TaskUpsert {
	u.Set(task.FieldRepoOwner, v)
	return u
}

// UpdateRepoOwner sets the "repo_owner" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRepoOwner() *TaskUpsert {
	u.SetExcluded(task.FieldRepoOwner)
	return u
}

// SetRepoName sets the "repo_name" field.
func (u *TaskUpsert) SetRepoName(v string) *TaskUpsert {
	u.Set(task.FieldRepoName, v)
	return u
}

// UpdateRepoName sets the "repo_name" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRepoName() *TaskUpsert {
	u.SetExcluded(task.FieldRepoName)
	return u
}

// SetIssueNumber sets the "issue_number" field.
func (u *TaskUpsert) SetIssueNumber(v int) *TaskUpsert {
	u.Set(task.FieldIssueNumber, v)
	return u
}

// UpdateIssueNumber sets the "issue_number" field to the value that was provided on create.
func (u *TaskUpsert) UpdateIssueNumber() *TaskUpsert {
	u.SetExcluded(task.FieldIssueNumber)
	return u
}

// AddIssueNumber adds v to the "issue_number" field.
func (u *TaskUpsert) AddIssueNumber(v int) *TaskUpsert {
	u.Add(task.FieldIssueNumber, v)
	return u
}

// SetIssueTitle sets the "issue_title" field.
func (u *TaskUpsert) SetIssueTitle(v string) *TaskUpsert {
	u.Set(task.FieldIssueTitle, v)
	return u
}

// UpdateIssueTitle sets the "issue_title" field to the value that was provided on create.
func (u *TaskUpsert) UpdateIssueTitle() *TaskUpsert {
	u.SetExcluded(task.FieldIssueTitle)
	return u
}

// SetIssueBody sets the "issue_body" field.
func (u *TaskUpsert) SetIssueBody(v string) *TaskUpsert {
	u.Set(task.FieldIssueBody, v)
	return u
}

// UpdateIssueBody sets the "issue_body" field to the value that was provided on create.
func (u *TaskUpsert) UpdateIssueBody() *TaskUpsert {
	u.SetExcluded(task.FieldIssueBody)
	return u
}

// ClearIssueBody clears the value of the "issue_body" field.
func (u *TaskUpsert) ClearIssueBody() *TaskUpsert {
	u.SetNull(task.FieldIssueBody)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v models.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetAttemptCount sets the "attempt_count" field.
func (u *TaskUpsert) SetAttemptCount(v int) *TaskUpsert {
	u.Set(task.FieldAttemptCount, v)
	return u
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAttemptCount() *TaskUpsert {
	u.SetExcluded(task.FieldAttemptCount)
	return u
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *TaskUpsert) AddAttemptCount(v int) *TaskUpsert {
	u.Add(task.FieldAttemptCount, v)
	return u
}

// SetTotalAttempts sets the "total_attempts" field.
func (u *TaskUpsert) SetTotalAttempts(v int) *TaskUpsert {
	u.Set(task.FieldTotalAttempts, v)
	return u
}

// UpdateTotalAttempts sets the "total_attempts" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTotalAttempts() *TaskUpsert {
	u.SetExcluded(task.FieldTotalAttempts)
	return u
}

// AddTotalAttempts adds v to the "total_attempts" field.
func (u *TaskUpsert) AddTotalAttempts(v int) *TaskUpsert {
	u.Add(task.FieldTotalAttempts, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *TaskUpsert) SetMaxAttempts(v int) *TaskUpsert {
	u.Set(task.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *TaskUpsert) UpdateMaxAttempts() *TaskUpsert {
	u.SetExcluded(task.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *TaskUpsert) AddMaxAttempts(v int) *TaskUpsert {
	u.Add(task.FieldMaxAttempts, v)
	return u
}

// SetEscalationLevel sets the "escalation_level" field.
func (u *TaskUpsert) SetEscalationLevel(v int) *TaskUpsert {
	u.Set(task.FieldEscalationLevel, v)
	return u
}

// UpdateEscalationLevel sets the "escalation_level" field to the value that was provided on create.
func (u *TaskUpsert) UpdateEscalationLevel() *TaskUpsert {
	u.SetExcluded(task.FieldEscalationLevel)
	return u
}

// AddEscalationLevel adds v to the "escalation_level" field.
func (u *TaskUpsert) AddEscalationLevel(v int) *TaskUpsert {
	u.Add(task.FieldEscalationLevel, v)
	return u
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *TaskUpsert) SetParentTaskID(v uuid.UUID) *TaskUpsert {
	u.Set(task.FieldParentTaskID, v)
	return u
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateParentTaskID() *TaskUpsert {
	u.SetExcluded(task.FieldParentTaskID)
	return u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (u *TaskUpsert) ClearParentTaskID() *TaskUpsert {
	u.SetNull(task.FieldParentTaskID)
	return u
}

// SetSubtaskIndex sets the "subtask_index" field.
func (u *TaskUpsert) SetSubtaskIndex(v int) *TaskUpsert {
	u.Set(task.FieldSubtaskIndex, v)
	return u
}

// UpdateSubtaskIndex sets the "subtask_index" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSubtaskIndex() *TaskUpsert {
	u.SetExcluded(task.FieldSubtaskIndex)
	return u
}

// AddSubtaskIndex adds v to the "subtask_index" field.
func (u *TaskUpsert) AddSubtaskIndex(v int) *TaskUpsert {
	u.Add(task.FieldSubtaskIndex, v)
	return u
}

// ClearSubtaskIndex clears the value of the "subtask_index" field.
func (u *TaskUpsert) ClearSubtaskIndex() *TaskUpsert {
	u.SetNull(task.FieldSubtaskIndex)
	return u
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (u *TaskUpsert) SetIsOrchestrated(v bool) *TaskUpsert {
	u.Set(task.FieldIsOrchestrated, v)
	return u
}

// UpdateIsOrchestrated sets the "is_orchestrated" field to the value that was provided on create.
func (u *TaskUpsert) UpdateIsOrchestrated() *TaskUpsert {
	u.SetExcluded(task.FieldIsOrchestrated)
	return u
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (u *TaskUpsert) SetDefinitionOfDone(v []string) *TaskUpsert {
	u.Set(task.FieldDefinitionOfDone, v)
	return u
}

// UpdateDefinitionOfDone sets the "definition_of_done" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDefinitionOfDone() *TaskUpsert {
	u.SetExcluded(task.FieldDefinitionOfDone)
	return u
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (u *TaskUpsert) ClearDefinitionOfDone() *TaskUpsert {
	u.SetNull(task.FieldDefinitionOfDone)
	return u
}

// SetPlan sets the "plan" field.
func (u *TaskUpsert) SetPlan(v []models.PlanStep) *TaskUpsert {
	u.Set(task.FieldPlan, v)
	return u
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePlan() *TaskUpsert {
	u.SetExcluded(task.FieldPlan)
	return u
}

// ClearPlan clears the value of the "plan" field.
func (u *TaskUpsert) ClearPlan() *TaskUpsert {
	u.SetNull(task.FieldPlan)
	return u
}

// SetTargetFiles sets the "target_files" field.
func (u *TaskUpsert) SetTargetFiles(v []string) *TaskUpsert {
	u.Set(task.FieldTargetFiles, v)
	return u
}

// UpdateTargetFiles sets the "target_files" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTargetFiles() *TaskUpsert {
	u.SetExcluded(task.FieldTargetFiles)
	return u
}

// ClearTargetFiles clears the value of the "target_files" field.
func (u *TaskUpsert) ClearTargetFiles() *TaskUpsert {
	u.SetNull(task.FieldTargetFiles)
	return u
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (u *TaskUpsert) SetEstimatedComplexity(v string) *TaskUpsert {
	u.Set(task.FieldEstimatedComplexity, v)
	return u
}

// UpdateEstimatedComplexity sets the "estimated_complexity" field to the value that was provided on create.
func (u *TaskUpsert) UpdateEstimatedComplexity() *TaskUpsert {
	u.SetExcluded(task.FieldEstimatedComplexity)
	return u
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (u *TaskUpsert) ClearEstimatedComplexity() *TaskUpsert {
	u.SetNull(task.FieldEstimatedComplexity)
	return u
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (u *TaskUpsert) SetEstimatedEffort(v string) *TaskUpsert {
	u.Set(task.FieldEstimatedEffort, v)
	return u
}

// UpdateEstimatedEffort sets the "estimated_effort" field to the value that was provided on create.
func (u *TaskUpsert) UpdateEstimatedEffort() *TaskUpsert {
	u.SetExcluded(task.FieldEstimatedEffort)
	return u
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (u *TaskUpsert) ClearEstimatedEffort() *TaskUpsert {
	u.SetNull(task.FieldEstimatedEffort)
	return u
}

// SetBranchName sets the "branch_name" field.
func (u *TaskUpsert) SetBranchName(v string) *TaskUpsert {
	u.Set(task.FieldBranchName, v)
	return u
}

// UpdateBranchName sets the "branch_name" field to the value that was provided on create.
func (u *TaskUpsert) UpdateBranchName() *TaskUpsert {
	u.SetExcluded(task.FieldBranchName)
	return u
}

// ClearBranchName clears the value of the "branch_name" field.
func (u *TaskUpsert) ClearBranchName() *TaskUpsert {
	u.SetNull(task.FieldBranchName)
	return u
}

// SetCurrentDiff sets the "current_diff" field.
func (u *TaskUpsert) SetCurrentDiff(v string) *TaskUpsert {
	u.Set(task.FieldCurrentDiff, v)
	return u
}

// UpdateCurrentDiff sets the "current_diff" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCurrentDiff() *TaskUpsert {
	u.SetExcluded(task.FieldCurrentDiff)
	return u
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (u *TaskUpsert) ClearCurrentDiff() *TaskUpsert {
	u.SetNull(task.FieldCurrentDiff)
	return u
}

// SetCommitMessage sets the "commit_message" field.
func (u *TaskUpsert) SetCommitMessage(v string) *TaskUpsert {
	u.Set(task.FieldCommitMessage, v)
	return u
}

// UpdateCommitMessage sets the "commit_message" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCommitMessage() *TaskUpsert {
	u.SetExcluded(task.FieldCommitMessage)
	return u
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (u *TaskUpsert) ClearCommitMessage() *TaskUpsert {
	u.SetNull(task.FieldCommitMessage)
	return u
}

// SetPrNumber sets the "pr_number" field.
func (u *TaskUpsert) SetPrNumber(v int) *TaskUpsert {
	u.Set(task.FieldPrNumber, v)
	return u
}

// UpdatePrNumber sets the "pr_number" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePrNumber() *TaskUpsert {
	u.SetExcluded(task.FieldPrNumber)
	return u
}

// AddPrNumber adds v to the "pr_number" field.
func (u *TaskUpsert) AddPrNumber(v int) *TaskUpsert {
	u.Add(task.FieldPrNumber, v)
	return u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (u *TaskUpsert) ClearPrNumber() *TaskUpsert {
	u.SetNull(task.FieldPrNumber)
	return u
}

// SetPrURL sets the "pr_url" field.
func (u *TaskUpsert) SetPrURL(v string) *TaskUpsert {
	u.Set(task.FieldPrURL, v)
	return u
}

// UpdatePrURL sets the "pr_url" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePrURL() *TaskUpsert {
	u.SetExcluded(task.FieldPrURL)
	return u
}

// ClearPrURL clears the value of the "pr_url" field.
func (u *TaskUpsert) ClearPrURL() *TaskUpsert {
	u.SetNull(task.FieldPrURL)
	return u
}

// SetLastError sets the "last_error" field.
func (u *TaskUpsert) SetLastError(v string) *TaskUpsert {
	u.Set(task.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLastError() *TaskUpsert {
	u.SetExcluded(task.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *TaskUpsert) ClearLastError() *TaskUpsert {
	u.SetNull(task.FieldLastError)
	return u
}

// SetWebhookSource sets the "webhook_source" field.
func (u *TaskUpsert) SetWebhookSource(v string) *TaskUpsert {
	u.Set(task.FieldWebhookSource, v)
	return u
}

// UpdateWebhookSource sets the "webhook_source" field to the value that was provided on create.
func (u *TaskUpsert) UpdateWebhookSource() *TaskUpsert {
	u.SetExcluded(task.FieldWebhookSource)
	return u
}

// ClearWebhookSource clears the value of the "webhook_source" field.
func (u *TaskUpsert) ClearWebhookSource() *TaskUpsert {
	u.SetNull(task.FieldWebhookSource)
	return u
}

// SetWebhookDeliveryID sets the "webhook_delivery_id" field.
func (u *TaskUpsert) SetWebhookDeliveryID(v string) *TaskUpsert {
	u.Set(task.FieldWebhookDeliveryID, v)
	return u
}

// UpdateWebhookDeliveryID sets the "webhook_delivery_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateWebhookDeliveryID() *TaskUpsert {
	u.SetExcluded(task.FieldWebhookDeliveryID)
	return u
}

// ClearWebhookDeliveryID clears the value of the "webhook_delivery_id" field.
func (u *TaskUpsert) ClearWebhookDeliveryID() *TaskUpsert {
	u.SetNull(task.FieldWebhookDeliveryID)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *TaskUpsert) SetClaimedBy(v string) *TaskUpsert {
	u.Set(task.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *TaskUpsert) UpdateClaimedBy() *TaskUpsert {
	u.SetExcluded(task.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *TaskUpsert) ClearClaimedBy() *TaskUpsert {
	u.SetNull(task.FieldClaimedBy)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *TaskUpsert) SetClaimedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateClaimedAt() *TaskUpsert {
	u.SetExcluded(task.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *TaskUpsert) ClearClaimedAt() *TaskUpsert {
	u.SetNull(task.FieldClaimedAt)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsert) SetLastHeartbeatAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLastHeartbeatAt() *TaskUpsert {
	u.SetExcluded(task.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsert) ClearLastHeartbeatAt() *TaskUpsert {
	u.SetNull(task.FieldLastHeartbeatAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsert) SetStartedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStartedAt() *TaskUpsert {
	u.SetExcluded(task.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsert) ClearStartedAt() *TaskUpsert {
	u.SetNull(task.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsert) SetCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsert) ClearCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetRepoOwner sets the "repo_owner" field.
func (u *TaskUpsertOne) SetRepoOwner(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRepoOwner(v)
	})
}

// UpdateRepoOwner sets the "repo_owner" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRepoOwner() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRepoOwner()
	})
}

// SetRepoName sets the "repo_name" field.
func (u *TaskUpsertOne) SetRepoName(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRepoName(v)
	})
}

// UpdateRepoName sets the "repo_name" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRepoName() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRepoName()
	})
}

// SetIssueNumber sets the "issue_number" field.
func (u *TaskUpsertOne) SetIssueNumber(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetIssueNumber(v)
	})
}

// AddIssueNumber adds v to the "issue_number" field.
func (u *TaskUpsertOne) AddIssueNumber(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddIssueNumber(v)
	})
}

// UpdateIssueNumber sets the "issue_number" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateIssueNumber() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIssueNumber()
	})
}

// SetIssueTitle sets the "issue_title" field.
func (u *TaskUpsertOne) SetIssueTitle(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetIssueTitle(v)
	})
}

// UpdateIssueTitle sets the "issue_title" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateIssueTitle() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIssueTitle()
	})
}

// SetIssueBody sets the "issue_body" field.
func (u *TaskUpsertOne) SetIssueBody(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetIssueBody(v)
	})
}

// UpdateIssueBody sets the "issue_body" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateIssueBody() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIssueBody()
	})
}

// ClearIssueBody clears the value of the "issue_body" field.
func (u *TaskUpsertOne) ClearIssueBody() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearIssueBody()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v models.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *TaskUpsertOne) SetAttemptCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *TaskUpsertOne) AddAttemptCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAttemptCount() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetTotalAttempts sets the "total_attempts" field.
func (u *TaskUpsertOne) SetTotalAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTotalAttempts(v)
	})
}

// AddTotalAttempts adds v to the "total_attempts" field.
func (u *TaskUpsertOne) AddTotalAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddTotalAttempts(v)
	})
}

// UpdateTotalAttempts sets the "total_attempts" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTotalAttempts() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTotalAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *TaskUpsertOne) SetMaxAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *TaskUpsertOne) AddMaxAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateMaxAttempts() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetEscalationLevel sets the "escalation_level" field.
func (u *TaskUpsertOne) SetEscalationLevel(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetEscalationLevel(v)
	})
}

// AddEscalationLevel adds v to the "escalation_level" field.
func (u *TaskUpsertOne) AddEscalationLevel(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddEscalationLevel(v)
	})
}

// UpdateEscalationLevel sets the "escalation_level" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateEscalationLevel() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEscalationLevel()
	})
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *TaskUpsertOne) SetParentTaskID(v uuid.UUID) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetParentTaskID(v)
	})
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateParentTaskID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateParentTaskID()
	})
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (u *TaskUpsertOne) ClearParentTaskID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearParentTaskID()
	})
}

// SetSubtaskIndex sets the "subtask_index" field.
func (u *TaskUpsertOne) SetSubtaskIndex(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSubtaskIndex(v)
	})
}

// AddSubtaskIndex adds v to the "subtask_index" field.
func (u *TaskUpsertOne) AddSubtaskIndex(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddSubtaskIndex(v)
	})
}

// UpdateSubtaskIndex sets the "subtask_index" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSubtaskIndex() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSubtaskIndex()
	})
}

// ClearSubtaskIndex clears the value of the "subtask_index" field.
func (u *TaskUpsertOne) ClearSubtaskIndex() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSubtaskIndex()
	})
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (u *TaskUpsertOne) SetIsOrchestrated(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetIsOrchestrated(v)
	})
}

// UpdateIsOrchestrated sets the "is_orchestrated" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateIsOrchestrated() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIsOrchestrated()
	})
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (u *TaskUpsertOne) SetDefinitionOfDone(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDefinitionOfDone(v)
	})
}

// UpdateDefinitionOfDone sets the "definition_of_done" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDefinitionOfDone() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDefinitionOfDone()
	})
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (u *TaskUpsertOne) ClearDefinitionOfDone() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDefinitionOfDone()
	})
}

// SetPlan sets the "plan" field.
func (u *TaskUpsertOne) SetPlan(v []models.PlanStep) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePlan() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *TaskUpsertOne) ClearPlan() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPlan()
	})
}

// SetTargetFiles sets the "target_files" field.
func (u *TaskUpsertOne) SetTargetFiles(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTargetFiles(v)
	})
}

// UpdateTargetFiles sets the "target_files" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTargetFiles() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTargetFiles()
	})
}

// ClearTargetFiles clears the value of the "target_files" field.
func (u *TaskUpsertOne) ClearTargetFiles() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTargetFiles()
	})
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (u *TaskUpsertOne) SetEstimatedComplexity(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstimatedComplexity(v)
	})
}

// UpdateEstimatedComplexity sets the "estimated_complexity" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateEstimatedComplexity() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstimatedComplexity()
	})
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (u *TaskUpsertOne) ClearEstimatedComplexity() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEstimatedComplexity()
	})
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (u *TaskUpsertOne) SetEstimatedEffort(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstimatedEffort(v)
	})
}

// UpdateEstimatedEffort sets the "estimated_effort" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateEstimatedEffort() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstimatedEffort()
	})
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (u *TaskUpsertOne) ClearEstimatedEffort() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEstimatedEffort()
	})
}

// SetBranchName sets the "branch_name" field.
func (u *TaskUpsertOne) SetBranchName(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetBranchName(v)
	})
}

// UpdateBranchName sets the "branch_name" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateBranchName() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateBranchName()
	})
}

// ClearBranchName clears the value of the "branch_name" field.
func (u *TaskUpsertOne) ClearBranchName() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearBranchName()
	})
}

// SetCurrentDiff sets the "current_diff" field.
func (u *TaskUpsertOne) SetCurrentDiff(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCurrentDiff(v)
	})
}

// UpdateCurrentDiff sets the "current_diff" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCurrentDiff() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCurrentDiff()
	})
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (u *TaskUpsertOne) ClearCurrentDiff() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCurrentDiff()
	})
}

// SetCommitMessage sets the "commit_message" field.
func (u *TaskUpsertOne) SetCommitMessage(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCommitMessage(v)
	})
}

// UpdateCommitMessage sets the "commit_message" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCommitMessage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCommitMessage()
	})
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (u *TaskUpsertOne) ClearCommitMessage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCommitMessage()
	})
}

// SetPrNumber sets the "pr_number" field.
func (u *TaskUpsertOne) SetPrNumber(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPrNumber(v)
	})
}

// AddPrNumber adds v to the "pr_number" field.
func (u *TaskUpsertOne) AddPrNumber(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddPrNumber(v)
	})
}

// UpdatePrNumber sets the "pr_number" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePrNumber() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePrNumber()
	})
}

// ClearPrNumber clears the value of the "pr_number" field.
func (u *TaskUpsertOne) ClearPrNumber() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPrNumber()
	})
}

// SetPrURL sets the "pr_url" field.
func (u *TaskUpsertOne) SetPrURL(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPrURL(v)
	})
}

// UpdatePrURL sets the "pr_url" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePrURL() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePrURL()
	})
}

// ClearPrURL clears the value of the "pr_url" field.
func (u *TaskUpsertOne) ClearPrURL() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPrURL()
	})
}

// SetLastError sets the "last_error" field.
func (u *TaskUpsertOne) SetLastError(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLastError() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *TaskUpsertOne) ClearLastError() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastError()
	})
}

// SetWebhookSource sets the "webhook_source" field.
func (u *TaskUpsertOne) SetWebhookSource(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetWebhookSource(v)
	})
}

// UpdateWebhookSource sets the "webhook_source" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateWebhookSource() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateWebhookSource()
	})
}

// ClearWebhookSource clears the value of the "webhook_source" field.
func (u *TaskUpsertOne) ClearWebhookSource() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearWebhookSource()
	})
}

// SetWebhookDeliveryID sets the "webhook_delivery_id" field.
func (u *TaskUpsertOne) SetWebhookDeliveryID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetWebhookDeliveryID(v)
	})
}

// UpdateWebhookDeliveryID sets the "webhook_delivery_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateWebhookDeliveryID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateWebhookDeliveryID()
	})
}

// ClearWebhookDeliveryID clears the value of the "webhook_delivery_id" field.
func (u *TaskUpsertOne) ClearWebhookDeliveryID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearWebhookDeliveryID()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *TaskUpsertOne) SetClaimedBy(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateClaimedBy() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *TaskUpsertOne) ClearClaimedBy() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearClaimedBy()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *TaskUpsertOne) SetClaimedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateClaimedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *TaskUpsertOne) ClearClaimedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearClaimedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsertOne) SetLastHeartbeatAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLastHeartbeatAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsertOne) ClearLastHeartbeatAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertOne) SetStartedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertOne) ClearStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertOne) SetCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertOne) ClearCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetRepoOwner(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetRepoOwner sets the "repo_owner" field.
func (u *TaskUpsertBulk) SetRepoOwner(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRepoOwner(v)
	})
}

// UpdateRepoOwner sets the "repo_owner" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRepoOwner() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRepoOwner()
	})
}

// SetRepoName sets the "repo_name" field.
func (u *TaskUpsertBulk) SetRepoName(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRepoName(v)
	})
}

// UpdateRepoName sets the "repo_name" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRepoName() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRepoName()
	})
}

// SetIssueNumber sets the "issue_number" field.
func (u *TaskUpsertBulk) SetIssueNumber(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetIssueNumber(v)
	})
}

// AddIssueNumber adds v to the "issue_number" field.
func (u *TaskUpsertBulk) AddIssueNumber(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddIssueNumber(v)
	})
}

// UpdateIssueNumber sets the "issue_number" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateIssueNumber() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIssueNumber()
	})
}

// SetIssueTitle sets the "issue_title" field.
func (u *TaskUpsertBulk) SetIssueTitle(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetIssueTitle(v)
	})
}

// UpdateIssueTitle sets the "issue_title" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateIssueTitle() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIssueTitle()
	})
}

// SetIssueBody sets the "issue_body" field.
func (u *TaskUpsertBulk) SetIssueBody(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetIssueBody(v)
	})
}

// UpdateIssueBody sets the "issue_body" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateIssueBody() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIssueBody()
	})
}

// ClearIssueBody clears the value of the "issue_body" field.
func (u *TaskUpsertBulk) ClearIssueBody() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearIssueBody()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v models.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *TaskUpsertBulk) SetAttemptCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *TaskUpsertBulk) AddAttemptCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAttemptCount() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetTotalAttempts sets the "total_attempts" field.
func (u *TaskUpsertBulk) SetTotalAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTotalAttempts(v)
	})
}

// AddTotalAttempts adds v to the "total_attempts" field.
func (u *TaskUpsertBulk) AddTotalAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddTotalAttempts(v)
	})
}

// UpdateTotalAttempts sets the "total_attempts" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTotalAttempts() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTotalAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *TaskUpsertBulk) SetMaxAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *TaskUpsertBulk) AddMaxAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateMaxAttempts() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetEscalationLevel sets the "escalation_level" field.
func (u *TaskUpsertBulk) SetEscalationLevel(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetEscalationLevel(v)
	})
}

// AddEscalationLevel adds v to the "escalation_level" field.
func (u *TaskUpsertBulk) AddEscalationLevel(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddEscalationLevel(v)
	})
}

// UpdateEscalationLevel sets the "escalation_level" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateEscalationLevel() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEscalationLevel()
	})
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *TaskUpsertBulk) SetParentTaskID(v uuid.UUID) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetParentTaskID(v)
	})
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateParentTaskID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateParentTaskID()
	})
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (u *TaskUpsertBulk) ClearParentTaskID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearParentTaskID()
	})
}

// SetSubtaskIndex sets the "subtask_index" field.
func (u *TaskUpsertBulk) SetSubtaskIndex(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSubtaskIndex(v)
	})
}

// AddSubtaskIndex adds v to the "subtask_index" field.
func (u *TaskUpsertBulk) AddSubtaskIndex(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddSubtaskIndex(v)
	})
}

// UpdateSubtaskIndex sets the "subtask_index" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSubtaskIndex() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSubtaskIndex()
	})
}

// ClearSubtaskIndex clears the value of the "subtask_index" field.
func (u *TaskUpsertBulk) ClearSubtaskIndex() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSubtaskIndex()
	})
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (u *TaskUpsertBulk) SetIsOrchestrated(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetIsOrchestrated(v)
	})
}

// UpdateIsOrchestrated sets the "is_orchestrated" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateIsOrchestrated() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIsOrchestrated()
	})
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (u *TaskUpsertBulk) SetDefinitionOfDone(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDefinitionOfDone(v)
	})
}

// UpdateDefinitionOfDone sets the "definition_of_done" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDefinitionOfDone() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDefinitionOfDone()
	})
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (u *TaskUpsertBulk) ClearDefinitionOfDone() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDefinitionOfDone()
	})
}

// SetPlan sets the "plan" field.
func (u *TaskUpsertBulk) SetPlan(v []models.PlanStep) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePlan() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *TaskUpsertBulk) ClearPlan() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPlan()
	})
}

// SetTargetFiles sets the "target_files" field.
func (u *TaskUpsertBulk) SetTargetFiles(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTargetFiles(v)
	})
}

// UpdateTargetFiles sets the "target_files" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTargetFiles() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTargetFiles()
	})
}

// ClearTargetFiles clears the value of the "target_files" field.
func (u *TaskUpsertBulk) ClearTargetFiles() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTargetFiles()
	})
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (u *TaskUpsertBulk) SetEstimatedComplexity(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstimatedComplexity(v)
	})
}

// UpdateEstimatedComplexity sets the "estimated_complexity" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateEstimatedComplexity() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstimatedComplexity()
	})
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (u *TaskUpsertBulk) ClearEstimatedComplexity() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEstimatedComplexity()
	})
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (u *TaskUpsertBulk) SetEstimatedEffort(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstimatedEffort(v)
	})
}

// UpdateEstimatedEffort sets the "estimated_effort" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateEstimatedEffort() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstimatedEffort()
	})
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (u *TaskUpsertBulk) ClearEstimatedEffort() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEstimatedEffort()
	})
}

// SetBranchName sets the "branch_name" field.
func (u *TaskUpsertBulk) SetBranchName(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetBranchName(v)
	})
}

// UpdateBranchName sets the "branch_name" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateBranchName() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateBranchName()
	})
}

// ClearBranchName clears the value of the "branch_name" field.
func (u *TaskUpsertBulk) ClearBranchName() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearBranchName()
	})
}

// SetCurrentDiff sets the "current_diff" field.
func (u *TaskUpsertBulk) SetCurrentDiff(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCurrentDiff(v)
	})
}

// UpdateCurrentDiff sets the "current_diff" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCurrentDiff() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCurrentDiff()
	})
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (u *TaskUpsertBulk) ClearCurrentDiff() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCurrentDiff()
	})
}

// SetCommitMessage sets the "commit_message" field.
func (u *TaskUpsertBulk) SetCommitMessage(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCommitMessage(v)
	})
}

// UpdateCommitMessage sets the "commit_message" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCommitMessage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCommitMessage()
	})
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (u *TaskUpsertBulk) ClearCommitMessage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCommitMessage()
	})
}

// SetPrNumber sets the "pr_number" field.
func (u *TaskUpsertBulk) SetPrNumber(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPrNumber(v)
	})
}

// AddPrNumber adds v to the "pr_number" field.
func (u *TaskUpsertBulk) AddPrNumber(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddPrNumber(v)
	})
}

// UpdatePrNumber sets the "pr_number" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePrNumber() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePrNumber()
	})
}

// ClearPrNumber clears the value of the "pr_number" field.
func (u *TaskUpsertBulk) ClearPrNumber() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPrNumber()
	})
}

// SetPrURL sets the "pr_url" field.
func (u *TaskUpsertBulk) SetPrURL(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPrURL(v)
	})
}

// UpdatePrURL sets the "pr_url" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePrURL() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePrURL()
	})
}

// ClearPrURL clears the value of the "pr_url" field.
func (u *TaskUpsertBulk) ClearPrURL() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPrURL()
	})
}

// SetLastError sets the "last_error" field.
func (u *TaskUpsertBulk) SetLastError(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLastError() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *TaskUpsertBulk) ClearLastError() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastError()
	})
}

// SetWebhookSource sets the "webhook_source" field.
func (u *TaskUpsertBulk) SetWebhookSource(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetWebhookSource(v)
	})
}

// UpdateWebhookSource sets the "webhook_source" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateWebhookSource() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateWebhookSource()
	})
}

// ClearWebhookSource clears the value of the "webhook_source" field.
func (u *TaskUpsertBulk) ClearWebhookSource() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearWebhookSource()
	})
}

// SetWebhookDeliveryID sets the "webhook_delivery_id" field.
func (u *TaskUpsertBulk) SetWebhookDeliveryID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetWebhookDeliveryID(v)
	})
}

// UpdateWebhookDeliveryID sets the "webhook_delivery_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateWebhookDeliveryID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateWebhookDeliveryID()
	})
}

// ClearWebhookDeliveryID clears the value of the "webhook_delivery_id" field.
func (u *TaskUpsertBulk) ClearWebhookDeliveryID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearWebhookDeliveryID()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *TaskUpsertBulk) SetClaimedBy(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateClaimedBy() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *TaskUpsertBulk) ClearClaimedBy() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearClaimedBy()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *TaskUpsertBulk) SetClaimedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateClaimedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *TaskUpsertBulk) ClearClaimedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearClaimedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsertBulk) SetLastHeartbeatAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLastHeartbeatAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsertBulk) ClearLastHeartbeatAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertBulk) SetStartedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertBulk) ClearStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertBulk) SetCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertBulk) ClearCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/agenttrace"
	"github.com/patchpilot/patchpilot/ent/checkpoint"
	"github.com/patchpilot/patchpilot/ent/predicate"
	"github.com/patchpilot/patchpilot/ent/sessionmemory"
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/ent/taskevent"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRepoOwner sets the "repo_owner" field.
func (_u *TaskUpdate) SetRepoOwner(v string) *TaskUpdate {
	_u.mutation.SetRepoOwner(v)
	return _u
}

// SetNillableRepoOwner sets the "repo_owner" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRepoOwner(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRepoOwner(*v)
	}
	return _u
}

// SetRepoName sets the "repo_name" field.
func (_u *TaskUpdate) SetRepoName(v string) *TaskUpdate {
	_u.mutation.SetRepoName(v)
	return _u
}

// SetNillableRepoName sets the "repo_name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRepoName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRepoName(*v)
	}
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *TaskUpdate) SetIssueNumber(v int) *TaskUpdate {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIssueNumber(v *int) *TaskUpdate {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *TaskUpdate) AddIssueNumber(v int) *TaskUpdate {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// SetIssueTitle sets the "issue_title" field.
func (_u *TaskUpdate) SetIssueTitle(v string) *TaskUpdate {
	_u.mutation.SetIssueTitle(v)
	return _u
}

// SetNillableIssueTitle sets the "issue_title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIssueTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetIssueTitle(*v)
	}
	return _u
}

// SetIssueBody sets the "issue_body" field.
func (_u *TaskUpdate) SetIssueBody(v string) *TaskUpdate {
	_u.mutation.SetIssueBody(v)
	return _u
}

// SetNillableIssueBody sets the "issue_body" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIssueBody(v *string) *TaskUpdate {
	if v != nil {
		_u.SetIssueBody(*v)
	}
	return _u
}

// ClearIssueBody clears the value of the "issue_body" field.
func (_u *TaskUpdate) ClearIssueBody() *TaskUpdate {
	_u.mutation.ClearIssueBody()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v models.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *models.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *TaskUpdate) SetAttemptCount(v int) *TaskUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAttemptCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *TaskUpdate) AddAttemptCount(v int) *TaskUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *TaskUpdate) SetTotalAttempts(v int) *TaskUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTotalAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *TaskUpdate) AddTotalAttempts(v int) *TaskUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TaskUpdate) SetMaxAttempts(v int) *TaskUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TaskUpdate) AddMaxAttempts(v int) *TaskUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *TaskUpdate) SetEscalationLevel(v int) *TaskUpdate {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEscalationLevel(v *int) *TaskUpdate {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *TaskUpdate) AddEscalationLevel(v int) *TaskUpdate {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdate) SetParentTaskID(v uuid.UUID) *TaskUpdate {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentTaskID(v *uuid.UUID) *TaskUpdate {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdate) ClearParentTaskID() *TaskUpdate {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetSubtaskIndex sets the "subtask_index" field.
func (_u *TaskUpdate) SetSubtaskIndex(v int) *TaskUpdate {
	_u.mutation.ResetSubtaskIndex()
	_u.mutation.SetSubtaskIndex(v)
	return _u
}

// SetNillableSubtaskIndex sets the "subtask_index" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSubtaskIndex(v *int) *TaskUpdate {
	if v != nil {
		_u.SetSubtaskIndex(*v)
	}
	return _u
}

// AddSubtaskIndex adds value to the "subtask_index" field.
func (_u *TaskUpdate) AddSubtaskIndex(v int) *TaskUpdate {
	_u.mutation.AddSubtaskIndex(v)
	return _u
}

// ClearSubtaskIndex clears the value of the "subtask_index" field.
func (_u *TaskUpdate) ClearSubtaskIndex() *TaskUpdate {
	_u.mutation.ClearSubtaskIndex()
	return _u
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (_u *TaskUpdate) SetIsOrchestrated(v bool) *TaskUpdate {
	_u.mutation.SetIsOrchestrated(v)
	return _u
}

// SetNillableIsOrchestrated sets the "is_orchestrated" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIsOrchestrated(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetIsOrchestrated(*v)
	}
	return _u
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (_u *TaskUpdate) SetDefinitionOfDone(v []string) *TaskUpdate {
	_u.mutation.SetDefinitionOfDone(v)
	return _u
}

// AppendDefinitionOfDone appends value to the "definition_of_done" field.
func (_u *TaskUpdate) AppendDefinitionOfDone(v []string) *TaskUpdate {
	_u.mutation.AppendDefinitionOfDone(v)
	return _u
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (_u *TaskUpdate) ClearDefinitionOfDone() *TaskUpdate {
	_u.mutation.ClearDefinitionOfDone()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *TaskUpdate) SetPlan(v []models.PlanStep) *TaskUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *TaskUpdate) AppendPlan(v []models.PlanStep) *TaskUpdate {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *TaskUpdate) ClearPlan() *TaskUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetTargetFiles sets the "target_files" field.
func (_u *TaskUpdate) SetTargetFiles(v []string) *TaskUpdate {
	_u.mutation.SetTargetFiles(v)
	return _u
}

// AppendTargetFiles appends value to the "target_files" field.
func (_u *TaskUpdate) AppendTargetFiles(v []string) *TaskUpdate {
	_u.mutation.AppendTargetFiles(v)
	return _u
}

// ClearTargetFiles clears the value of the "target_files" field.
func (_u *TaskUpdate) ClearTargetFiles() *TaskUpdate {
	_u.mutation.ClearTargetFiles()
	return _u
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_u *TaskUpdate) SetEstimatedComplexity(v string) *TaskUpdate {
	_u.mutation.SetEstimatedComplexity(v)
	return _u
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEstimatedComplexity(v *string) *TaskUpdate {
	if v != nil {
		_u.SetEstimatedComplexity(*v)
	}
	return _u
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (_u *TaskUpdate) ClearEstimatedComplexity() *TaskUpdate {
	_u.mutation.ClearEstimatedComplexity()
	return _u
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_u *TaskUpdate) SetEstimatedEffort(v string) *TaskUpdate {
	_u.mutation.SetEstimatedEffort(v)
	return _u
}

// SetNillableEstimatedEffort sets the "estimated_effort" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEstimatedEffort(v *string) *TaskUpdate {
	if v != nil {
		_u.SetEstimatedEffort(*v)
	}
	return _u
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (_u *TaskUpdate) ClearEstimatedEffort() *TaskUpdate {
	_u.mutation.ClearEstimatedEffort()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TaskUpdate) SetBranchName(v string) *TaskUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBranchName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TaskUpdate) ClearBranchName() *TaskUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetCurrentDiff sets the "current_diff" field.
func (_u *TaskUpdate) SetCurrentDiff(v string) *TaskUpdate {
	_u.mutation.SetCurrentDiff(v)
	return _u
}

// SetNillableCurrentDiff sets the "current_diff" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCurrentDiff(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCurrentDiff(*v)
	}
	return _u
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (_u *TaskUpdate) ClearCurrentDiff() *TaskUpdate {
	_u.mutation.ClearCurrentDiff()
	return _u
}

// SetCommitMessage sets the "commit_message" field.
func (_u *TaskUpdate) SetCommitMessage(v string) *TaskUpdate {
	_u.mutation.SetCommitMessage(v)
	return _u
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCommitMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCommitMessage(*v)
	}
	return _u
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (_u *TaskUpdate) ClearCommitMessage() *TaskUpdate {
	_u.mutation.ClearCommitMessage()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *TaskUpdate) SetPrNumber(v int) *TaskUpdate {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePrNumber(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *TaskUpdate) AddPrNumber(v int) *TaskUpdate {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *TaskUpdate) ClearPrNumber() *TaskUpdate {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TaskUpdate) SetPrURL(v string) *TaskUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePrURL(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TaskUpdate) ClearPrURL() *TaskUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TaskUpdate) SetLastError(v string) *TaskUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastError(v *string) *TaskUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TaskUpdate) ClearLastError() *TaskUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetWebhookSource sets the "webhook_source" field.
func (_u *TaskUpdate) SetWebhookSource(v string) *TaskUpdate {
	_u.mutation.SetWebhookSource(v)
	return _u
}

// SetNillableWebhookSource sets the "webhook_source" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableWebhookSource(v *string) *TaskUpdate {
	if v != nil {
		_u.SetWebhookSource(*v)
	}
	return _u
}

// ClearWebhookSource clears the value of the "webhook_source" field.
func (_u *TaskUpdate) ClearWebhookSource() *TaskUpdate {
	_u.mutation.ClearWebhookSource()
	return _u
}

// SetWebhookDeliveryID sets the "webhook_delivery_id" field.
func (_u *TaskUpdate) SetWebhookDeliveryID(v string) *TaskUpdate {
	_u.mutation.SetWebhookDeliveryID(v)
	return _u
}

// SetNillableWebhookDeliveryID sets the "webhook_delivery_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableWebhookDeliveryID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetWebhookDeliveryID(*v)
	}
	return _u
}

// ClearWebhookDeliveryID clears the value of the "webhook_delivery_id" field.
func (_u *TaskUpdate) ClearWebhookDeliveryID() *TaskUpdate {
	_u.mutation.ClearWebhookDeliveryID()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *TaskUpdate) SetClaimedBy(v string) *TaskUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableClaimedBy(v *string) *TaskUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *TaskUpdate) ClearClaimedBy() *TaskUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *TaskUpdate) SetClaimedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableClaimedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *TaskUpdate) ClearClaimedAt() *TaskUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdate) SetLastHeartbeatAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdate) ClearLastHeartbeatAt() *TaskUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetMemoryID sets the "memory" edge to the SessionMemory entity by ID.
func (_u *TaskUpdate) SetMemoryID(id uuid.UUID) *TaskUpdate {
	_u.mutation.SetMemoryID(id)
	return _u
}

// SetNillableMemoryID sets the "memory" edge to the SessionMemory entity by ID if the given value is not nil.
func (_u *TaskUpdate) SetNillableMemoryID(id *uuid.UUID) *TaskUpdate {
	if id != nil {
		_u = _u.SetMemoryID(*id)
	}
	return _u
}

// SetMemory sets the "memory" edge to the SessionMemory entity.
func (_u *TaskUpdate) SetMemory(v *SessionMemory) *TaskUpdate {
	return _u.SetMemoryID(v.ID)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *TaskUpdate) AddCheckpointIDs(ids ...uuid.UUID) *TaskUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdate) AddCheckpoints(v ...*Checkpoint) *TaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (_u *TaskUpdate) AddEventIDs(ids ...int64) *TaskUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (_u *TaskUpdate) AddEvents(v ...*TaskEvent) *TaskUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by IDs.
func (_u *TaskUpdate) AddTraceIDs(ids ...uuid.UUID) *TaskUpdate {
	_u.mutation.AddTraceIDs(ids...)
	return _u
}

// AddTraces adds the "traces" edges to the AgentTrace entity.
func (_u *TaskUpdate) AddTraces(v ...*AgentTrace) *TaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTraceIDs(ids...)
}

// SetParentID sets the "parent" edge to the Task entity by ID.
func (_u *TaskUpdate) SetParentID(id uuid.UUID) *TaskUpdate {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the Task entity by ID if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentID(id *uuid.UUID) *TaskUpdate {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the Task entity.
func (_u *TaskUpdate) SetParent(v *Task) *TaskUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Task entity by IDs.
func (_u *TaskUpdate) AddChildIDs(ids ...uuid.UUID) *TaskUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Task entity.
func (_u *TaskUpdate) AddChildren(v ...*Task) *TaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearMemory clears the "memory" edge to the SessionMemory entity.
func (_u *TaskUpdate) ClearMemory() *TaskUpdate {
	_u.mutation.ClearMemory()
	return _u
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdate) ClearCheckpoints() *TaskUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *TaskUpdate) RemoveCheckpointIDs(ids ...uuid.UUID) *TaskUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *TaskUpdate) RemoveCheckpoints(v ...*Checkpoint) *TaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearEvents clears all "events" edges to the TaskEvent entity.
func (_u *TaskUpdate) ClearEvents() *TaskUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TaskEvent entities by IDs.
func (_u *TaskUpdate) RemoveEventIDs(ids ...int64) *TaskUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TaskEvent entities.
func (_u *TaskUpdate) RemoveEvents(v ...*TaskEvent) *TaskUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearTraces clears all "traces" edges to the AgentTrace entity.
func (_u *TaskUpdate) ClearTraces() *TaskUpdate {
	_u.mutation.ClearTraces()
	return _u
}

// RemoveTraceIDs removes the "traces" edge to AgentTrace entities by IDs.
func (_u *TaskUpdate) RemoveTraceIDs(ids ...uuid.UUID) *TaskUpdate {
	_u.mutation.RemoveTraceIDs(ids...)
	return _u
}

// RemoveTraces removes "traces" edges to AgentTrace entities.
func (_u *TaskUpdate) RemoveTraces(v ...*AgentTrace) *TaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTraceIDs(ids...)
}

// ClearParent clears the "parent" edge to the Task entity.
func (_u *TaskUpdate) ClearParent() *TaskUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Task entity.
func (_u *TaskUpdate) ClearChildren() *TaskUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Task entities by IDs.
func (_u *TaskUpdate) RemoveChildIDs(ids ...uuid.UUID) *TaskUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Task entities.
func (_u *TaskUpdate) RemoveChildren(v ...*Task) *TaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RepoOwner(); ok {
		_spec.SetField(task.FieldRepoOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoName(); ok {
		_spec.SetField(task.FieldRepoName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(task.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(task.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IssueTitle(); ok {
		_spec.SetField(task.FieldIssueTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueBody(); ok {
		_spec.SetField(task.FieldIssueBody, field.TypeString, value)
	}
	if _u.mutation.IssueBodyCleared() {
		_spec.ClearField(task.FieldIssueBody, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(task.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(task.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(task.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(task.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubtaskIndex(); ok {
		_spec.SetField(task.FieldSubtaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtaskIndex(); ok {
		_spec.AddField(task.FieldSubtaskIndex, field.TypeInt, value)
	}
	if _u.mutation.SubtaskIndexCleared() {
		_spec.ClearField(task.FieldSubtaskIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.IsOrchestrated(); ok {
		_spec.SetField(task.FieldIsOrchestrated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefinitionOfDone(); ok {
		_spec.SetField(task.FieldDefinitionOfDone, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefinitionOfDone(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDefinitionOfDone, value)
		})
	}
	if _u.mutation.DefinitionOfDoneCleared() {
		_spec.ClearField(task.FieldDefinitionOfDone, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(task.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(task.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetFiles(); ok {
		_spec.SetField(task.FieldTargetFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTargetFiles, value)
		})
	}
	if _u.mutation.TargetFilesCleared() {
		_spec.ClearField(task.FieldTargetFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedComplexity(); ok {
		_spec.SetField(task.FieldEstimatedComplexity, field.TypeString, value)
	}
	if _u.mutation.EstimatedComplexityCleared() {
		_spec.ClearField(task.FieldEstimatedComplexity, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedEffort(); ok {
		_spec.SetField(task.FieldEstimatedEffort, field.TypeString, value)
	}
	if _u.mutation.EstimatedEffortCleared() {
		_spec.ClearField(task.FieldEstimatedEffort, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(task.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(task.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentDiff(); ok {
		_spec.SetField(task.FieldCurrentDiff, field.TypeString, value)
	}
	if _u.mutation.CurrentDiffCleared() {
		_spec.ClearField(task.FieldCurrentDiff, field.TypeString)
	}
	if value, ok := _u.mutation.CommitMessage(); ok {
		_spec.SetField(task.FieldCommitMessage, field.TypeString, value)
	}
	if _u.mutation.CommitMessageCleared() {
		_spec.ClearField(task.FieldCommitMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(task.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(task.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(task.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(task.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(task.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(task.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSource(); ok {
		_spec.SetField(task.FieldWebhookSource, field.TypeString, value)
	}
	if _u.mutation.WebhookSourceCleared() {
		_spec.ClearField(task.FieldWebhookSource, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookDeliveryID(); ok {
		_spec.SetField(task.FieldWebhookDeliveryID, field.TypeString, value)
	}
	if _u.mutation.WebhookDeliveryIDCleared() {
		_spec.ClearField(task.FieldWebhookDeliveryID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(task.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(task.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(task.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(task.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.MemoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTracesIDs(); len(nodes) > 0 && !_u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TracesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetRepoOwner sets the "repo_owner" field.
func (_u *TaskUpdateOne) SetRepoOwner(v string) *TaskUpdateOne {
	_u.mutation.SetRepoOwner(v)
	return _u
}

// SetNillableRepoOwner sets the "repo_owner" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRepoOwner(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRepoOwner(*v)
	}
	return _u
}

// SetRepoName sets the "repo_name" field.
func (_u *TaskUpdateOne) SetRepoName(v string) *TaskUpdateOne {
	_u.mutation.SetRepoName(v)
	return _u
}

// SetNillableRepoName sets the "repo_name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRepoName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRepoName(*v)
	}
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *TaskUpdateOne) SetIssueNumber(v int) *TaskUpdateOne {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIssueNumber(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *TaskUpdateOne) AddIssueNumber(v int) *TaskUpdateOne {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// SetIssueTitle sets the "issue_title" field.
func (_u *TaskUpdateOne) SetIssueTitle(v string) *TaskUpdateOne {
	_u.mutation.SetIssueTitle(v)
	return _u
}

// SetNillableIssueTitle sets the "issue_title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIssueTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetIssueTitle(*v)
	}
	return _u
}

// SetIssueBody sets the "issue_body" field.
func (_u *TaskUpdateOne) SetIssueBody(v string) *TaskUpdateOne {
	_u.mutation.SetIssueBody(v)
	return _u
}

// SetNillableIssueBody sets the "issue_body" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIssueBody(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetIssueBody(*v)
	}
	return _u
}

// ClearIssueBody clears the value of the "issue_body" field.
func (_u *TaskUpdateOne) ClearIssueBody() *TaskUpdateOne {
	_u.mutation.ClearIssueBody()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v models.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *models.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *TaskUpdateOne) SetAttemptCount(v int) *TaskUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAttemptCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *TaskUpdateOne) AddAttemptCount(v int) *TaskUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *TaskUpdateOne) SetTotalAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTotalAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *TaskUpdateOne) AddTotalAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TaskUpdateOne) SetMaxAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TaskUpdateOne) AddMaxAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *TaskUpdateOne) SetEscalationLevel(v int) *TaskUpdateOne {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEscalationLevel(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *TaskUpdateOne) AddEscalationLevel(v int) *TaskUpdateOne {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdateOne) SetParentTaskID(v uuid.UUID) *TaskUpdateOne {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentTaskID(v *uuid.UUID) *TaskUpdateOne {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdateOne) ClearParentTaskID() *TaskUpdateOne {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetSubtaskIndex sets the "subtask_index" field.
func (_u *TaskUpdateOne) SetSubtaskIndex(v int) *TaskUpdateOne {
	_u.mutation.ResetSubtaskIndex()
	_u.mutation.SetSubtaskIndex(v)
	return _u
}

// SetNillableSubtaskIndex sets the "subtask_index" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSubtaskIndex(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetSubtaskIndex(*v)
	}
	return _u
}

// AddSubtaskIndex adds value to the "subtask_index" field.
func (_u *TaskUpdateOne) AddSubtaskIndex(v int) *TaskUpdateOne {
	_u.mutation.AddSubtaskIndex(v)
	return _u
}

// ClearSubtaskIndex clears the value of the "subtask_index" field.
func (_u *TaskUpdateOne) ClearSubtaskIndex() *TaskUpdateOne {
	_u.mutation.ClearSubtaskIndex()
	return _u
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (_u *TaskUpdateOne) SetIsOrchestrated(v bool) *TaskUpdateOne {
	_u.mutation.SetIsOrchestrated(v)
	return _u
}

// SetNillableIsOrchestrated sets the "is_orchestrated" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIsOrchestrated(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetIsOrchestrated(*v)
	}
	return _u
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (_u *TaskUpdateOne) SetDefinitionOfDone(v []string) *TaskUpdateOne {
	_u.mutation.SetDefinitionOfDone(v)
	return _u
}

// AppendDefinitionOfDone appends value to the "definition_of_done" field.
func (_u *TaskUpdateOne) AppendDefinitionOfDone(v []string) *TaskUpdateOne {
	_u.mutation.AppendDefinitionOfDone(v)
	return _u
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (_u *TaskUpdateOne) ClearDefinitionOfDone() *TaskUpdateOne {
	_u.mutation.ClearDefinitionOfDone()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *TaskUpdateOne) SetPlan(v []models.PlanStep) *TaskUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *TaskUpdateOne) AppendPlan(v []models.PlanStep) *TaskUpdateOne {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *TaskUpdateOne) ClearPlan() *TaskUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetTargetFiles sets the "target_files" field.
func (_u *TaskUpdateOne) SetTargetFiles(v []string) *TaskUpdateOne {
	_u.mutation.SetTargetFiles(v)
	return _u
}

// AppendTargetFiles appends value to the "target_files" field.
func (_u *TaskUpdateOne) AppendTargetFiles(v []string) *TaskUpdateOne {
	_u.mutation.AppendTargetFiles(v)
	return _u
}

// ClearTargetFiles clears the value of the "target_files" field.
func (_u *TaskUpdateOne) ClearTargetFiles() *TaskUpdateOne {
	_u.mutation.ClearTargetFiles()
	return _u
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_u *TaskUpdateOne) SetEstimatedComplexity(v string) *TaskUpdateOne {
	_u.mutation.SetEstimatedComplexity(v)
	return _u
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEstimatedComplexity(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetEstimatedComplexity(*v)
	}
	return _u
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (_u *TaskUpdateOne) ClearEstimatedComplexity() *TaskUpdateOne {
	_u.mutation.ClearEstimatedComplexity()
	return _u
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_u *TaskUpdateOne) SetEstimatedEffort(v string) *TaskUpdateOne {
	_u.mutation.SetEstimatedEffort(v)
	return _u
}

// SetNillableEstimatedEffort sets the "estimated_effort" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEstimatedEffort(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetEstimatedEffort(*v)
	}
	return _u
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (_u *TaskUpdateOne) ClearEstimatedEffort() *TaskUpdateOne {
	_u.mutation.ClearEstimatedEffort()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TaskUpdateOne) SetBranchName(v string) *TaskUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBranchName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TaskUpdateOne) ClearBranchName() *TaskUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetCurrentDiff sets the "current_diff" field.
func (_u *TaskUpdateOne) SetCurrentDiff(v string) *TaskUpdateOne {
	_u.mutation.SetCurrentDiff(v)
	return _u
}

// SetNillableCurrentDiff sets the "current_diff" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCurrentDiff(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCurrentDiff(*v)
	}
	return _u
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (_u *TaskUpdateOne) ClearCurrentDiff() *TaskUpdateOne {
	_u.mutation.ClearCurrentDiff()
	return _u
}

// SetCommitMessage sets the "commit_message" field.
func (_u *TaskUpdateOne) SetCommitMessage(v string) *TaskUpdateOne {
	_u.mutation.SetCommitMessage(v)
	return _u
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCommitMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCommitMessage(*v)
	}
	return _u
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (_u *TaskUpdateOne) ClearCommitMessage() *TaskUpdateOne {
	_u.mutation.ClearCommitMessage()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *TaskUpdateOne) SetPrNumber(v int) *TaskUpdateOne {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePrNumber(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *TaskUpdateOne) AddPrNumber(v int) *TaskUpdateOne {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *TaskUpdateOne) ClearPrNumber() *TaskUpdateOne {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TaskUpdateOne) SetPrURL(v string) *TaskUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePrURL(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TaskUpdateOne) ClearPrURL() *TaskUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TaskUpdateOne) SetLastError(v string) *TaskUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastError(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TaskUpdateOne) ClearLastError() *TaskUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetWebhookSource sets the "webhook_source" field.
func (_u *TaskUpdateOne) SetWebhookSource(v string) *TaskUpdateOne {
	_u.mutation.SetWebhookSource(v)
	return _u
}

// SetNillableWebhookSource sets the "webhook_source" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableWebhookSource(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetWebhookSource(*v)
	}
	return _u
}

// ClearWebhookSource clears the value of the "webhook_source" field.
func (_u *TaskUpdateOne) ClearWebhookSource() *TaskUpdateOne {
	_u.mutation.ClearWebhookSource()
	return _u
}

// SetWebhookDeliveryID sets the "webhook_delivery_id" field.
func (_u *TaskUpdateOne) SetWebhookDeliveryID(v string) *TaskUpdateOne {
	_u.mutation.SetWebhookDeliveryID(v)
	return _u
}

// SetNillableWebhookDeliveryID sets the "webhook_delivery_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableWebhookDeliveryID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetWebhookDeliveryID(*v)
	}
	return _u
}

// ClearWebhookDeliveryID clears the value of the "webhook_delivery_id" field.
func (_u *TaskUpdateOne) ClearWebhookDeliveryID() *TaskUpdateOne {
	_u.mutation.ClearWebhookDeliveryID()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *TaskUpdateOne) SetClaimedBy(v string) *TaskUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableClaimedBy(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *TaskUpdateOne) ClearClaimedBy() *TaskUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *TaskUpdateOne) SetClaimedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableClaimedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *TaskUpdateOne) ClearClaimedAt() *TaskUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) SetLastHeartbeatAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) ClearLastHeartbeatAt() *TaskUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetMemoryID sets the "memory" edge to the SessionMemory entity by ID.
func (_u *TaskUpdateOne) SetMemoryID(id uuid.UUID) *TaskUpdateOne {
	_u.mutation.SetMemoryID(id)
	return _u
}

// SetNillableMemoryID sets the "memory" edge to the SessionMemory entity by ID if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMemoryID(id *uuid.UUID) *TaskUpdateOne {
	if id != nil {
		_u = _u.SetMemoryID(*id)
	}
	return _u
}

// SetMemory sets the "memory" edge to the SessionMemory entity.
func (_u *TaskUpdateOne) SetMemory(v *SessionMemory) *TaskUpdateOne {
	return _u.SetMemoryID(v.ID)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *TaskUpdateOne) AddCheckpointIDs(ids ...uuid.UUID) *TaskUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdateOne) AddCheckpoints(v ...*Checkpoint) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (_u *TaskUpdateOne) AddEventIDs(ids ...int64) *TaskUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (_u *TaskUpdateOne) AddEvents(v ...*TaskEvent) *TaskUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by IDs.
func (_u *TaskUpdateOne) AddTraceIDs(ids ...uuid.UUID) *TaskUpdateOne {
	_u.mutation.AddTraceIDs(ids...)
	return _u
}

// AddTraces adds the "traces" edges to the AgentTrace entity.
func (_u *TaskUpdateOne) AddTraces(v ...*AgentTrace) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTraceIDs(ids...)
}

// SetParentID sets the "parent" edge to the Task entity by ID.
func (_u *TaskUpdateOne) SetParentID(id uuid.UUID) *TaskUpdateOne {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the Task entity by ID if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentID(id *uuid.UUID) *TaskUpdateOne {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the Task entity.
func (_u *TaskUpdateOne) SetParent(v *Task) *TaskUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Task entity by IDs.
func (_u *TaskUpdateOne) AddChildIDs(ids ...uuid.UUID) *TaskUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Task entity.
func (_u *TaskUpdateOne) AddChildren(v ...*Task) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearMemory clears the "memory" edge to the SessionMemory entity.
func (_u *TaskUpdateOne) ClearMemory() *TaskUpdateOne {
	_u.mutation.ClearMemory()
	return _u
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdateOne) ClearCheckpoints() *TaskUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *TaskUpdateOne) RemoveCheckpointIDs(ids ...uuid.UUID) *TaskUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *TaskUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearEvents clears all "events" edges to the TaskEvent entity.
func (_u *TaskUpdateOne) ClearEvents() *TaskUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TaskEvent entities by IDs.
func (_u *TaskUpdateOne) RemoveEventIDs(ids ...int64) *TaskUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TaskEvent entities.
func (_u *TaskUpdateOne) RemoveEvents(v ...*TaskEvent) *TaskUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearTraces clears all "traces" edges to the AgentTrace entity.
func (_u *TaskUpdateOne) ClearTraces() *TaskUpdateOne {
	_u.mutation.ClearTraces()
	return _u
}

// RemoveTraceIDs removes the "traces" edge to AgentTrace entities by IDs.
func (_u *TaskUpdateOne) RemoveTraceIDs(ids ...uuid.UUID) *TaskUpdateOne {
	_u.mutation.RemoveTraceIDs(ids...)
	return _u
}

// RemoveTraces removes "traces" edges to AgentTrace entities.
func (_u *TaskUpdateOne) RemoveTraces(v ...*AgentTrace) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTraceIDs(ids...)
}

// ClearParent clears the "parent" edge to the Task entity.
func (_u *TaskUpdateOne) ClearParent() *TaskUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Task entity.
func (_u *TaskUpdateOne) ClearChildren() *TaskUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Task entities by IDs.
func (_u *TaskUpdateOne) RemoveChildIDs(ids ...uuid.UUID) *TaskUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Task entities.
func (_u *TaskUpdateOne) RemoveChildren(v ...*Task) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RepoOwner(); ok {
		_spec.SetField(task.FieldRepoOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoName(); ok {
		_spec.SetField(task.FieldRepoName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(task.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(task.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IssueTitle(); ok {
		_spec.SetField(task.FieldIssueTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueBody(); ok {
		_spec.SetField(task.FieldIssueBody, field.TypeString, value)
	}
	if _u.mutation.IssueBodyCleared() {
		_spec.ClearField(task.FieldIssueBody, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(task.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(task.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(task.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(task.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubtaskIndex(); ok {
		_spec.SetField(task.FieldSubtaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtaskIndex(); ok {
		_spec.AddField(task.FieldSubtaskIndex, field.TypeInt, value)
	}
	if _u.mutation.SubtaskIndexCleared() {
		_spec.ClearField(task.FieldSubtaskIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.IsOrchestrated(); ok {
		_spec.SetField(task.FieldIsOrchestrated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefinitionOfDone(); ok {
		_spec.SetField(task.FieldDefinitionOfDone, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefinitionOfDone(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDefinitionOfDone, value)
		})
	}
	if _u.mutation.DefinitionOfDoneCleared() {
		_spec.ClearField(task.FieldDefinitionOfDone, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(task.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(task.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetFiles(); ok {
		_spec.SetField(task.FieldTargetFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTargetFiles, value)
		})
	}
	if _u.mutation.TargetFilesCleared() {
		_spec.ClearField(task.FieldTargetFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedComplexity(); ok {
		_spec.SetField(task.FieldEstimatedComplexity, field.TypeString, value)
	}
	if _u.mutation.EstimatedComplexityCleared() {
		_spec.ClearField(task.FieldEstimatedComplexity, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedEffort(); ok {
		_spec.SetField(task.FieldEstimatedEffort, field.TypeString, value)
	}
	if _u.mutation.EstimatedEffortCleared() {
		_spec.ClearField(task.FieldEstimatedEffort, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(task.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(task.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentDiff(); ok {
		_spec.SetField(task.FieldCurrentDiff, field.TypeString, value)
	}
	if _u.mutation.CurrentDiffCleared() {
		_spec.ClearField(task.FieldCurrentDiff, field.TypeString)
	}
	if value, ok := _u.mutation.CommitMessage(); ok {
		_spec.SetField(task.FieldCommitMessage, field.TypeString, value)
	}
	if _u.mutation.CommitMessageCleared() {
		_spec.ClearField(task.FieldCommitMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(task.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(task.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(task.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(task.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(task.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(task.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSource(); ok {
		_spec.SetField(task.FieldWebhookSource, field.TypeString, value)
	}
	if _u.mutation.WebhookSourceCleared() {
		_spec.ClearField(task.FieldWebhookSource, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookDeliveryID(); ok {
		_spec.SetField(task.FieldWebhookDeliveryID, field.TypeString, value)
	}
	if _u.mutation.WebhookDeliveryIDCleared() {
		_spec.ClearField(task.FieldWebhookDeliveryID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(task.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(task.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(task.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(task.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.MemoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTracesIDs(); len(nodes) > 0 && !_u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TracesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

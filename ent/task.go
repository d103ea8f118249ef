// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/sessionmemory"
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RepoOwner holds the value of the "repo_owner" field.
	RepoOwner string `json:"repo_owner,omitempty"`
	// RepoName holds the value of the "repo_name" field.
	RepoName string `json:"repo_name,omitempty"`
	// IssueNumber holds the value of the "issue_number" field.
	IssueNumber int `json:"issue_number,omitempty"`
	// IssueTitle holds the value of the "issue_title" field.
	IssueTitle string `json:"issue_title,omitempty"`
	// IssueBody holds the value of the "issue_body" field.
	IssueBody string `json:"issue_body,omitempty"`
	// Status holds the value of the "status" field.
	Status models.Status `json:"status,omitempty"`
	// Same-stage retries; drives model escalation
	AttemptCount int `json:"attempt_count,omitempty"`
	// Cumulative attempts across stages, capped
	TotalAttempts int `json:"total_attempts,omitempty"`
	// MaxAttempts holds the value of the "max_attempts" field.
	MaxAttempts int `json:"max_attempts,omitempty"`
	// EscalationLevel holds the value of the "escalation_level" field.
	EscalationLevel int `json:"escalation_level,omitempty"`
	// Set on subtask child tasks
	ParentTaskID *uuid.UUID `json:"parent_task_id,omitempty"`
	// SubtaskIndex holds the value of the "subtask_index" field.
	SubtaskIndex *int `json:"subtask_index,omitempty"`
	// Parent went through breakdown
	IsOrchestrated bool `json:"is_orchestrated,omitempty"`
	// DefinitionOfDone holds the value of the "definition_of_done" field.
	DefinitionOfDone []string `json:"definition_of_done,omitempty"`
	// Plan holds the value of the "plan" field.
	Plan []models.PlanStep `json:"plan,omitempty"`
	// TargetFiles holds the value of the "target_files" field.
	TargetFiles []string `json:"target_files,omitempty"`
	// EstimatedComplexity holds the value of the "estimated_complexity" field.
	EstimatedComplexity string `json:"estimated_complexity,omitempty"`
	// EstimatedEffort holds the value of the "estimated_effort" field.
	EstimatedEffort string `json:"estimated_effort,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName string `json:"branch_name,omitempty"`
	// CurrentDiff holds the value of the "current_diff" field.
	CurrentDiff string `json:"current_diff,omitempty"`
	// CommitMessage holds the value of the "commit_message" field.
	CommitMessage string `json:"commit_message,omitempty"`
	// PrNumber holds the value of the "pr_number" field.
	PrNumber *int `json:"pr_number,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL string `json:"pr_url,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError string `json:"last_error,omitempty"`
	// Webhook source path segment that created this task
	WebhookSource string `json:"webhook_source,omitempty"`
	// Delivery id of the originating webhook event, for re-delivery dedupe
	WebhookDeliveryID string `json:"webhook_delivery_id,omitempty"`
	// Worker id for queue coordination
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Memory holds the value of the memory edge.
	Memory *SessionMemory `json:"memory,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// Events holds the value of the events edge.
	Events []*TaskEvent `json:"events,omitempty"`
	// Traces holds the value of the traces edge.
	Traces []*AgentTrace `json:"traces,omitempty"`
	// Parent holds the value of the parent edge.
	Parent *Task `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*Task `json:"children,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// MemoryOrErr returns the Memory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) MemoryOrErr() (*SessionMemory, error) {
	if e.Memory != nil {
		return e.Memory, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sessionmemory.Label}
	}
	return nil, &NotLoadedError{edge: "memory"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[1] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) EventsOrErr() ([]*TaskEvent, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// TracesOrErr returns the Traces value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) TracesOrErr() ([]*AgentTrace, error) {
	if e.loadedTypes[3] {
		return e.Traces, nil
	}
	return nil, &NotLoadedError{edge: "traces"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) ParentOrErr() (*Task, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ChildrenOrErr() ([]*Task, error) {
	if e.loadedTypes[5] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldParentTaskID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case task.FieldDefinitionOfDone, task.FieldPlan, task.FieldTargetFiles:
			values[i] = new([]byte)
		case task.FieldIsOrchestrated:
			values[i] = new(sql.NullBool)
		case task.FieldIssueNumber, task.FieldAttemptCount, task.FieldTotalAttempts, task.FieldMaxAttempts, task.FieldEscalationLevel, task.FieldSubtaskIndex, task.FieldPrNumber:
			values[i] = new(sql.NullInt64)
		case task.FieldRepoOwner, task.FieldRepoName, task.FieldIssueTitle, task.FieldIssueBody, task.FieldStatus, task.FieldEstimatedComplexity, task.FieldEstimatedEffort, task.FieldBranchName, task.FieldCurrentDiff, task.FieldCommitMessage, task.FieldPrURL, task.FieldLastError, task.FieldWebhookSource, task.FieldWebhookDeliveryID, task.FieldClaimedBy:
			values[i] = new(sql.NullString)
		case task.FieldClaimedAt, task.FieldLastHeartbeatAt, task.FieldCreatedAt, task.FieldUpdatedAt, task.FieldStartedAt, task.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case task.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case task.FieldRepoOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_owner", values[i])
			} else if value.Valid {
				_m.RepoOwner = value.String
			}
		case task.FieldRepoName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_name", values[i])
			} else if value.Valid {
				_m.RepoName = value.String
			}
		case task.FieldIssueNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field issue_number", values[i])
			} else if value.Valid {
				_m.IssueNumber = int(value.Int64)
			}
		case task.FieldIssueTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_title", values[i])
			} else if value.Valid {
				_m.IssueTitle = value.String
			}
		case task.FieldIssueBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_body", values[i])
			} else if value.Valid {
				_m.IssueBody = value.String
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = models.Status(value.String)
			}
		case task.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case task.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case task.FieldMaxAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_attempts", values[i])
			} else if value.Valid {
				_m.MaxAttempts = int(value.Int64)
			}
		case task.FieldEscalationLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_level", values[i])
			} else if value.Valid {
				_m.EscalationLevel = int(value.Int64)
			}
		case task.FieldParentTaskID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field parent_task_id", values[i])
			} else if value.Valid {
				_m.ParentTaskID = new(uuid.UUID)
				*_m.ParentTaskID = *value.S.(*uuid.UUID)
			}
		case task.FieldSubtaskIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtask_index", values[i])
			} else if value.Valid {
				_m.SubtaskIndex = new(int)
				*_m.SubtaskIndex = int(value.Int64)
			}
		case task.FieldIsOrchestrated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_orchestrated", values[i])
			} else if value.Valid {
				_m.IsOrchestrated = value.Bool
			}
		case task.FieldDefinitionOfDone:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field definition_of_done", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DefinitionOfDone); err != nil {
					return fmt.Errorf("unmarshal field definition_of_done: %w", err)
				}
			}
		case task.FieldPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Plan); err != nil {
					return fmt.Errorf("unmarshal field plan: %w", err)
				}
			}
		case task.FieldTargetFiles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target_files", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TargetFiles); err != nil {
					return fmt.Errorf("unmarshal field target_files: %w", err)
				}
			}
		case task.FieldEstimatedComplexity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_complexity", values[i])
			} else if value.Valid {
				_m.EstimatedComplexity = value.String
			}
		case task.FieldEstimatedEffort:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_effort", values[i])
			} else if value.Valid {
				_m.EstimatedEffort = value.String
			}
		case task.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = value.String
			}
		case task.FieldCurrentDiff:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_diff", values[i])
			} else if value.Valid {
				_m.CurrentDiff = value.String
			}
		case task.FieldCommitMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_message", values[i])
			} else if value.Valid {
				_m.CommitMessage = value.String
			}
		case task.FieldPrNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pr_number", values[i])
			} else if value.Valid {
				_m.PrNumber = new(int)
				*_m.PrNumber = int(value.Int64)
			}
		case task.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = value.String
			}
		case task.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = value.String
			}
		case task.FieldWebhookSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_source", values[i])
			} else if value.Valid {
				_m.WebhookSource = value.String
			}
		case task.FieldWebhookDeliveryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_delivery_id", values[i])
			} else if value.Valid {
				_m.WebhookDeliveryID = value.String
			}
		case task.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case task.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case task.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case task.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMemory queries the "memory" edge of the Task entity.
func (_m *Task) QueryMemory() *SessionMemoryQuery {
	return NewTaskClient(_m.config).QueryMemory(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Task entity.
func (_m *Task) QueryCheckpoints() *CheckpointQuery {
	return NewTaskClient(_m.config).QueryCheckpoints(_m)
}

// QueryEvents queries the "events" edge of the Task entity.
func (_m *Task) QueryEvents() *TaskEventQuery {
	return NewTaskClient(_m.config).QueryEvents(_m)
}

// QueryTraces queries the "traces" edge of the Task entity.
func (_m *Task) QueryTraces() *AgentTraceQuery {
	return NewTaskClient(_m.config).QueryTraces(_m)
}

// QueryParent queries the "parent" edge of the Task entity.
func (_m *Task) QueryParent() *TaskQuery {
	return NewTaskClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the Task entity.
func (_m *Task) QueryChildren() *TaskQuery {
	return NewTaskClient(_m.config).QueryChildren(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("repo_owner=")
	builder.WriteString(_m.RepoOwner)
	builder.WriteString(", ")
	builder.WriteString("repo_name=")
	builder.WriteString(_m.RepoName)
	builder.WriteString(", ")
	builder.WriteString("issue_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.IssueNumber))
	builder.WriteString(", ")
	builder.WriteString("issue_title=")
	builder.WriteString(_m.IssueTitle)
	builder.WriteString(", ")
	builder.WriteString("issue_body=")
	builder.WriteString(_m.IssueBody)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("max_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAttempts))
	builder.WriteString(", ")
	builder.WriteString("escalation_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationLevel))
	builder.WriteString(", ")
	if v := _m.ParentTaskID; v != nil {
		builder.WriteString("parent_task_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SubtaskIndex; v != nil {
		builder.WriteString("subtask_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_orchestrated=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOrchestrated))
	builder.WriteString(", ")
	builder.WriteString("definition_of_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefinitionOfDone))
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plan))
	builder.WriteString(", ")
	builder.WriteString("target_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetFiles))
	builder.WriteString(", ")
	builder.WriteString("estimated_complexity=")
	builder.WriteString(_m.EstimatedComplexity)
	builder.WriteString(", ")
	builder.WriteString("estimated_effort=")
	builder.WriteString(_m.EstimatedEffort)
	builder.WriteString(", ")
	builder.WriteString("branch_name=")
	builder.WriteString(_m.BranchName)
	builder.WriteString(", ")
	builder.WriteString("current_diff=")
	builder.WriteString(_m.CurrentDiff)
	builder.WriteString(", ")
	builder.WriteString("commit_message=")
	builder.WriteString(_m.CommitMessage)
	builder.WriteString(", ")
	if v := _m.PrNumber; v != nil {
		builder.WriteString("pr_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("pr_url=")
	builder.WriteString(_m.PrURL)
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(_m.LastError)
	builder.WriteString(", ")
	builder.WriteString("webhook_source=")
	builder.WriteString(_m.WebhookSource)
	builder.WriteString(", ")
	builder.WriteString("webhook_delivery_id=")
	builder.WriteString(_m.WebhookDeliveryID)
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task

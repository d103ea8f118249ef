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

// SessionMemory is the model entity for the SessionMemory schema.
type SessionMemory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID uuid.UUID `json:"task_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase string `json:"phase,omitempty"`
	// Append-only ledger
	Progress []models.ProgressEntry `json:"progress,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts []models.AttemptRecord `json:"attempts,omitempty"`
	// FailurePatterns holds the value of the "failure_patterns" field.
	FailurePatterns []models.FailurePattern `json:"failure_patterns,omitempty"`
	// Write-once per agent
	Outputs map[string]json.RawMessage `json:"outputs,omitempty"`
	// Orchestration holds the value of the "orchestration" field.
	Orchestration *models.OrchestrationState `json:"orchestration,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int `json:"error_count,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// LastCheckpointID holds the value of the "last_checkpoint_id" field.
	LastCheckpointID *uuid.UUID `json:"last_checkpoint_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionMemoryQuery when eager-loading is set.
	Edges        SessionMemoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionMemoryEdges holds the relations/edges for other nodes in the graph.
type SessionMemoryEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionMemoryEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionMemory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionmemory.FieldLastCheckpointID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case sessionmemory.FieldProgress, sessionmemory.FieldAttempts, sessionmemory.FieldFailurePatterns, sessionmemory.FieldOutputs, sessionmemory.FieldOrchestration:
			values[i] = new([]byte)
		case sessionmemory.FieldErrorCount, sessionmemory.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case sessionmemory.FieldPhase:
			values[i] = new(sql.NullString)
		case sessionmemory.FieldCreatedAt, sessionmemory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case sessionmemory.FieldID, sessionmemory.FieldTaskID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionMemory fields.
func (_m *SessionMemory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionmemory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sessionmemory.FieldTaskID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value != nil {
				_m.TaskID = *value
			}
		case sessionmemory.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case sessionmemory.FieldProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Progress); err != nil {
					return fmt.Errorf("unmarshal field progress: %w", err)
				}
			}
		case sessionmemory.FieldAttempts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attempts); err != nil {
					return fmt.Errorf("unmarshal field attempts: %w", err)
				}
			}
		case sessionmemory.FieldFailurePatterns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failure_patterns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailurePatterns); err != nil {
					return fmt.Errorf("unmarshal field failure_patterns: %w", err)
				}
			}
		case sessionmemory.FieldOutputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outputs); err != nil {
					return fmt.Errorf("unmarshal field outputs: %w", err)
				}
			}
		case sessionmemory.FieldOrchestration:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field orchestration", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Orchestration); err != nil {
					return fmt.Errorf("unmarshal field orchestration: %w", err)
				}
			}
		case sessionmemory.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case sessionmemory.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case sessionmemory.FieldLastCheckpointID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field last_checkpoint_id", values[i])
			} else if value.Valid {
				_m.LastCheckpointID = new(uuid.UUID)
				*_m.LastCheckpointID = *value.S.(*uuid.UUID)
			}
		case sessionmemory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessionmemory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionMemory.
// This includes values selected through modifiers, order, etc.
func (_m *SessionMemory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the SessionMemory entity.
func (_m *SessionMemory) QueryTask() *TaskQuery {
	return NewSessionMemoryClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this SessionMemory.
// Note that you need to call SessionMemory.Unwrap() before calling this method if this SessionMemory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionMemory) Update() *SessionMemoryUpdateOne {
	return NewSessionMemoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionMemory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionMemory) Unwrap() *SessionMemory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionMemory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionMemory) String() string {
	var builder strings.Builder
	builder.WriteString("SessionMemory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskID))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("failure_patterns=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailurePatterns))
	builder.WriteString(", ")
	builder.WriteString("outputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outputs))
	builder.WriteString(", ")
	builder.WriteString("orchestration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Orchestration))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.LastCheckpointID; v != nil {
		builder.WriteString("last_checkpoint_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionMemories is a parsable slice of SessionMemory.
type SessionMemories []*SessionMemory

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/agenttrace"
	"github.com/patchpilot/patchpilot/ent/task"
)

// AgentTrace is the model entity for the AgentTrace schema.
type AgentTrace struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID uuid.UUID `json:"task_id,omitempty"`
	// ParentTraceID holds the value of the "parent_trace_id" field.
	ParentTraceID *uuid.UUID `json:"parent_trace_id,omitempty"`
	// planner/coder/fixer/reviewer
	Stage string `json:"stage,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Router position that resolved the model
	Position string `json:"position,omitempty"`
	// Status holds the value of the "status" field.
	Status agenttrace.Status `json:"status,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// CostUsd holds the value of the "cost_usd" field.
	CostUsd float64 `json:"cost_usd,omitempty"`
	// OutputSummary holds the value of the "output_summary" field.
	OutputSummary string `json:"output_summary,omitempty"`
	// GateName holds the value of the "gate_name" field.
	GateName string `json:"gate_name,omitempty"`
	// GatePassed holds the value of the "gate_passed" field.
	GatePassed *bool `json:"gate_passed,omitempty"`
	// ErrorType holds the value of the "error_type" field.
	ErrorType string `json:"error_type,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentTraceQuery when eager-loading is set.
	Edges        AgentTraceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentTraceEdges holds the relations/edges for other nodes in the graph.
type AgentTraceEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentTraceEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentTrace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agenttrace.FieldParentTraceID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case agenttrace.FieldGatePassed:
			values[i] = new(sql.NullBool)
		case agenttrace.FieldCostUsd:
			values[i] = new(sql.NullFloat64)
		case agenttrace.FieldInputTokens, agenttrace.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case agenttrace.FieldStage, agenttrace.FieldModel, agenttrace.FieldPosition, agenttrace.FieldStatus, agenttrace.FieldOutputSummary, agenttrace.FieldGateName, agenttrace.FieldErrorType, agenttrace.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case agenttrace.FieldStartedAt, agenttrace.FieldEndedAt:
			values[i] = new(sql.NullTime)
		case agenttrace.FieldID, agenttrace.FieldTaskID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentTrace fields.
func (_m *AgentTrace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agenttrace.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case agenttrace.FieldTaskID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value != nil {
				_m.TaskID = *value
			}
		case agenttrace.FieldParentTraceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field parent_trace_id", values[i])
			} else if value.Valid {
				_m.ParentTraceID = new(uuid.UUID)
				*_m.ParentTraceID = *value.S.(*uuid.UUID)
			}
		case agenttrace.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case agenttrace.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case agenttrace.FieldPosition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = value.String
			}
		case agenttrace.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agenttrace.Status(value.String)
			}
		case agenttrace.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case agenttrace.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case agenttrace.FieldCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = value.Float64
			}
		case agenttrace.FieldOutputSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_summary", values[i])
			} else if value.Valid {
				_m.OutputSummary = value.String
			}
		case agenttrace.FieldGateName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gate_name", values[i])
			} else if value.Valid {
				_m.GateName = value.String
			}
		case agenttrace.FieldGatePassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field gate_passed", values[i])
			} else if value.Valid {
				_m.GatePassed = new(bool)
				*_m.GatePassed = value.Bool
			}
		case agenttrace.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = value.String
			}
		case agenttrace.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case agenttrace.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case agenttrace.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentTrace.
// This includes values selected through modifiers, order, etc.
func (_m *AgentTrace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the AgentTrace entity.
func (_m *AgentTrace) QueryTask() *TaskQuery {
	return NewAgentTraceClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this AgentTrace.
// Note that you need to call AgentTrace.Unwrap() before calling this method if this AgentTrace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentTrace) Update() *AgentTraceUpdateOne {
	return NewAgentTraceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentTrace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentTrace) Unwrap() *AgentTrace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentTrace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentTrace) String() string {
	var builder strings.Builder
	builder.WriteString("AgentTrace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskID))
	builder.WriteString(", ")
	if v := _m.ParentTraceID; v != nil {
		builder.WriteString("parent_trace_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(_m.Position)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsd))
	builder.WriteString(", ")
	builder.WriteString("output_summary=")
	builder.WriteString(_m.OutputSummary)
	builder.WriteString(", ")
	builder.WriteString("gate_name=")
	builder.WriteString(_m.GateName)
	builder.WriteString(", ")
	if v := _m.GatePassed; v != nil {
		builder.WriteString("gate_passed=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("error_type=")
	builder.WriteString(_m.ErrorType)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AgentTraces is a parsable slice of AgentTrace.
type AgentTraces []*AgentTrace

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/agenttrace"
	"github.com/patchpilot/patchpilot/ent/checkpoint"
	"github.com/patchpilot/patchpilot/ent/modelconfig"
	"github.com/patchpilot/patchpilot/ent/modelconfigaudit"
	"github.com/patchpilot/patchpilot/ent/predicate"
	"github.com/patchpilot/patchpilot/ent/repository"
	"github.com/patchpilot/patchpilot/ent/sessionmemory"
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/ent/taskevent"
	"github.com/patchpilot/patchpilot/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentTrace       = "AgentTrace"
	TypeCheckpoint       = "Checkpoint"
	TypeModelConfig      = "ModelConfig"
	TypeModelConfigAudit = "ModelConfigAudit"
	TypeRepository       = "Repository"
	TypeSessionMemory    = "SessionMemory"
	TypeTask             = "Task"
	TypeTaskEvent        = "TaskEvent"
)

// AgentTraceMutation represents an operation that mutates the AgentTrace nodes in the graph.
type AgentTraceMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	parent_trace_id  *uuid.UUID
	stage            *string
	model            *string
	position         *string
	status           *agenttrace.Status
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cost_usd         *float64
	addcost_usd      *float64
	output_summary   *string
	gate_name        *string
	gate_passed      *bool
	error_type       *string
	error_message    *string
	started_at       *time.Time
	ended_at         *time.Time
	clearedFields    map[string]struct{}
	task             *uuid.UUID
	clearedtask      bool
	done             bool
	oldValue         func(context.Context) (*AgentTrace, error)
	predicates       []predicate.AgentTrace
}

var _ ent.Mutation = (*AgentTraceMutation)(nil)

// agenttraceOption allows management of the mutation configuration using functional options.
type agenttraceOption func(*AgentTraceMutation)

// newAgentTraceMutation creates new mutation for the AgentTrace entity.
func newAgentTraceMutation(c config, op Op, opts ...agenttraceOption) *AgentTraceMutation {
	m := &AgentTraceMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentTraceID sets the ID field of the mutation.
func withAgentTraceID(id uuid.UUID) agenttraceOption {
	return func(m *AgentTraceMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentTrace
		)
		m.oldValue = func(ctx context.Context) (*AgentTrace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentTrace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentTrace sets the old AgentTrace of the mutation.
func withAgentTrace(node *AgentTrace) agenttraceOption {
	return func(m *AgentTraceMutation) {
		m.oldValue = func(context.Context) (*AgentTrace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentTraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentTraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentTrace entities.
func (m *AgentTraceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentTraceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentTraceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentTrace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *AgentTraceMutation) SetTaskID(u uuid.UUID) {
	m.task = &u
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AgentTraceMutation) TaskID() (r uuid.UUID, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldTaskID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AgentTraceMutation) ResetTaskID() {
	m.task = nil
}

// SetParentTraceID sets the "parent_trace_id" field.
func (m *AgentTraceMutation) SetParentTraceID(u uuid.UUID) {
	m.parent_trace_id = &u
}

// ParentTraceID returns the value of the "parent_trace_id" field in the mutation.
func (m *AgentTraceMutation) ParentTraceID() (r uuid.UUID, exists bool) {
	v := m.parent_trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTraceID returns the old "parent_trace_id" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldParentTraceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTraceID: %w", err)
	}
	return oldValue.ParentTraceID, nil
}

// ClearParentTraceID clears the value of the "parent_trace_id" field.
func (m *AgentTraceMutation) ClearParentTraceID() {
	m.parent_trace_id = nil
	m.clearedFields[agenttrace.FieldParentTraceID] = struct{}{}
}

// ParentTraceIDCleared returns if the "parent_trace_id" field was cleared in this mutation.
func (m *AgentTraceMutation) ParentTraceIDCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldParentTraceID]
	return ok
}

// ResetParentTraceID resets all changes to the "parent_trace_id" field.
func (m *AgentTraceMutation) ResetParentTraceID() {
	m.parent_trace_id = nil
	delete(m.clearedFields, agenttrace.FieldParentTraceID)
}

// SetStage sets the "stage" field.
func (m *AgentTraceMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *AgentTraceMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *AgentTraceMutation) ResetStage() {
	m.stage = nil
}

// SetModel sets the "model" field.
func (m *AgentTraceMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentTraceMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AgentTraceMutation) ResetModel() {
	m.model = nil
}

// SetPosition sets the "position" field.
func (m *AgentTraceMutation) SetPosition(s string) {
	m.position = &s
}

// Position returns the value of the "position" field in the mutation.
func (m *AgentTraceMutation) Position() (r string, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldPosition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// ResetPosition resets all changes to the "position" field.
func (m *AgentTraceMutation) ResetPosition() {
	m.position = nil
}

// SetStatus sets the "status" field.
func (m *AgentTraceMutation) SetStatus(a agenttrace.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentTraceMutation) Status() (r agenttrace.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldStatus(ctx context.Context) (v agenttrace.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentTraceMutation) ResetStatus() {
	m.status = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *AgentTraceMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AgentTraceMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AgentTraceMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AgentTraceMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AgentTraceMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AgentTraceMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AgentTraceMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AgentTraceMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AgentTraceMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AgentTraceMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *AgentTraceMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *AgentTraceMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *AgentTraceMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *AgentTraceMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *AgentTraceMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetOutputSummary sets the "output_summary" field.
func (m *AgentTraceMutation) SetOutputSummary(s string) {
	m.output_summary = &s
}

// OutputSummary returns the value of the "output_summary" field in the mutation.
func (m *AgentTraceMutation) OutputSummary() (r string, exists bool) {
	v := m.output_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSummary returns the old "output_summary" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldOutputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSummary: %w", err)
	}
	return oldValue.OutputSummary, nil
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (m *AgentTraceMutation) ClearOutputSummary() {
	m.output_summary = nil
	m.clearedFields[agenttrace.FieldOutputSummary] = struct{}{}
}

// OutputSummaryCleared returns if the "output_summary" field was cleared in this mutation.
func (m *AgentTraceMutation) OutputSummaryCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldOutputSummary]
	return ok
}

// ResetOutputSummary resets all changes to the "output_summary" field.
func (m *AgentTraceMutation) ResetOutputSummary() {
	m.output_summary = nil
	delete(m.clearedFields, agenttrace.FieldOutputSummary)
}

// SetGateName sets the "gate_name" field.
func (m *AgentTraceMutation) SetGateName(s string) {
	m.gate_name = &s
}

// GateName returns the value of the "gate_name" field in the mutation.
func (m *AgentTraceMutation) GateName() (r string, exists bool) {
	v := m.gate_name
	if v == nil {
		return
	}
	return *v, true
}

// OldGateName returns the old "gate_name" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldGateName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGateName: %w", err)
	}
	return oldValue.GateName, nil
}

// ClearGateName clears the value of the "gate_name" field.
func (m *AgentTraceMutation) ClearGateName() {
	m.gate_name = nil
	m.clearedFields[agenttrace.FieldGateName] = struct{}{}
}

// GateNameCleared returns if the "gate_name" field was cleared in this mutation.
func (m *AgentTraceMutation) GateNameCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldGateName]
	return ok
}

// ResetGateName resets all changes to the "gate_name" field.
func (m *AgentTraceMutation) ResetGateName() {
	m.gate_name = nil
	delete(m.clearedFields, agenttrace.FieldGateName)
}

// SetGatePassed sets the "gate_passed" field.
func (m *AgentTraceMutation) SetGatePassed(b bool) {
	m.gate_passed = &b
}

// GatePassed returns the value of the "gate_passed" field in the mutation.
func (m *AgentTraceMutation) GatePassed() (r bool, exists bool) {
	v := m.gate_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldGatePassed returns the old "gate_passed" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldGatePassed(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGatePassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGatePassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGatePassed: %w", err)
	}
	return oldValue.GatePassed, nil
}

// ClearGatePassed clears the value of the "gate_passed" field.
func (m *AgentTraceMutation) ClearGatePassed() {
	m.gate_passed = nil
	m.clearedFields[agenttrace.FieldGatePassed] = struct{}{}
}

// GatePassedCleared returns if the "gate_passed" field was cleared in this mutation.
func (m *AgentTraceMutation) GatePassedCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldGatePassed]
	return ok
}

// ResetGatePassed resets all changes to the "gate_passed" field.
func (m *AgentTraceMutation) ResetGatePassed() {
	m.gate_passed = nil
	delete(m.clearedFields, agenttrace.FieldGatePassed)
}

// SetErrorType sets the "error_type" field.
func (m *AgentTraceMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *AgentTraceMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldErrorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *AgentTraceMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[agenttrace.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *AgentTraceMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *AgentTraceMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, agenttrace.FieldErrorType)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentTraceMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentTraceMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentTraceMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agenttrace.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentTraceMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentTraceMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agenttrace.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *AgentTraceMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentTraceMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentTraceMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *AgentTraceMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AgentTraceMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *AgentTraceMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[agenttrace.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *AgentTraceMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AgentTraceMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, agenttrace.FieldEndedAt)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *AgentTraceMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[agenttrace.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *AgentTraceMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *AgentTraceMutation) TaskIDs() (ids []uuid.UUID) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *AgentTraceMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the AgentTraceMutation builder.
func (m *AgentTraceMutation) Where(ps ...predicate.AgentTrace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentTraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentTraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentTrace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentTraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentTraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentTrace).
func (m *AgentTraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentTraceMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.task != nil {
		fields = append(fields, agenttrace.FieldTaskID)
	}
	if m.parent_trace_id != nil {
		fields = append(fields, agenttrace.FieldParentTraceID)
	}
	if m.stage != nil {
		fields = append(fields, agenttrace.FieldStage)
	}
	if m.model != nil {
		fields = append(fields, agenttrace.FieldModel)
	}
	if m.position != nil {
		fields = append(fields, agenttrace.FieldPosition)
	}
	if m.status != nil {
		fields = append(fields, agenttrace.FieldStatus)
	}
	if m.input_tokens != nil {
		fields = append(fields, agenttrace.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, agenttrace.FieldOutputTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, agenttrace.FieldCostUsd)
	}
	if m.output_summary != nil {
		fields = append(fields, agenttrace.FieldOutputSummary)
	}
	if m.gate_name != nil {
		fields = append(fields, agenttrace.FieldGateName)
	}
	if m.gate_passed != nil {
		fields = append(fields, agenttrace.FieldGatePassed)
	}
	if m.error_type != nil {
		fields = append(fields, agenttrace.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, agenttrace.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, agenttrace.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, agenttrace.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentTraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agenttrace.FieldTaskID:
		return m.TaskID()
	case agenttrace.FieldParentTraceID:
		return m.ParentTraceID()
	case agenttrace.FieldStage:
		return m.Stage()
	case agenttrace.FieldModel:
		return m.Model()
	case agenttrace.FieldPosition:
		return m.Position()
	case agenttrace.FieldStatus:
		return m.Status()
	case agenttrace.FieldInputTokens:
		return m.InputTokens()
	case agenttrace.FieldOutputTokens:
		return m.OutputTokens()
	case agenttrace.FieldCostUsd:
		return m.CostUsd()
	case agenttrace.FieldOutputSummary:
		return m.OutputSummary()
	case agenttrace.FieldGateName:
		return m.GateName()
	case agenttrace.FieldGatePassed:
		return m.GatePassed()
	case agenttrace.FieldErrorType:
		return m.ErrorType()
	case agenttrace.FieldErrorMessage:
		return m.ErrorMessage()
	case agenttrace.FieldStartedAt:
		return m.StartedAt()
	case agenttrace.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentTraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agenttrace.FieldTaskID:
		return m.OldTaskID(ctx)
	case agenttrace.FieldParentTraceID:
		return m.OldParentTraceID(ctx)
	case agenttrace.FieldStage:
		return m.OldStage(ctx)
	case agenttrace.FieldModel:
		return m.OldModel(ctx)
	case agenttrace.FieldPosition:
		return m.OldPosition(ctx)
	case agenttrace.FieldStatus:
		return m.OldStatus(ctx)
	case agenttrace.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case agenttrace.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case agenttrace.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case agenttrace.FieldOutputSummary:
		return m.OldOutputSummary(ctx)
	case agenttrace.FieldGateName:
		return m.OldGateName(ctx)
	case agenttrace.FieldGatePassed:
		return m.OldGatePassed(ctx)
	case agenttrace.FieldErrorType:
		return m.OldErrorType(ctx)
	case agenttrace.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agenttrace.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agenttrace.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentTrace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agenttrace.FieldTaskID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case agenttrace.FieldParentTraceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTraceID(v)
		return nil
	case agenttrace.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case agenttrace.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agenttrace.FieldPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case agenttrace.FieldStatus:
		v, ok := value.(agenttrace.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agenttrace.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case agenttrace.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case agenttrace.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case agenttrace.FieldOutputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSummary(v)
		return nil
	case agenttrace.FieldGateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGateName(v)
		return nil
	case agenttrace.FieldGatePassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGatePassed(v)
		return nil
	case agenttrace.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case agenttrace.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agenttrace.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agenttrace.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentTrace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentTraceMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, agenttrace.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, agenttrace.FieldOutputTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, agenttrace.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentTraceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agenttrace.FieldInputTokens:
		return m.AddedInputTokens()
	case agenttrace.FieldOutputTokens:
		return m.AddedOutputTokens()
	case agenttrace.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agenttrace.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case agenttrace.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case agenttrace.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown AgentTrace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentTraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agenttrace.FieldParentTraceID) {
		fields = append(fields, agenttrace.FieldParentTraceID)
	}
	if m.FieldCleared(agenttrace.FieldOutputSummary) {
		fields = append(fields, agenttrace.FieldOutputSummary)
	}
	if m.FieldCleared(agenttrace.FieldGateName) {
		fields = append(fields, agenttrace.FieldGateName)
	}
	if m.FieldCleared(agenttrace.FieldGatePassed) {
		fields = append(fields, agenttrace.FieldGatePassed)
	}
	if m.FieldCleared(agenttrace.FieldErrorType) {
		fields = append(fields, agenttrace.FieldErrorType)
	}
	if m.FieldCleared(agenttrace.FieldErrorMessage) {
		fields = append(fields, agenttrace.FieldErrorMessage)
	}
	if m.FieldCleared(agenttrace.FieldEndedAt) {
		fields = append(fields, agenttrace.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentTraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentTraceMutation) ClearField(name string) error {
	switch name {
	case agenttrace.FieldParentTraceID:
		m.ClearParentTraceID()
		return nil
	case agenttrace.FieldOutputSummary:
		m.ClearOutputSummary()
		return nil
	case agenttrace.FieldGateName:
		m.ClearGateName()
		return nil
	case agenttrace.FieldGatePassed:
		m.ClearGatePassed()
		return nil
	case agenttrace.FieldErrorType:
		m.ClearErrorType()
		return nil
	case agenttrace.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agenttrace.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentTraceMutation) ResetField(name string) error {
	switch name {
	case agenttrace.FieldTaskID:
		m.ResetTaskID()
		return nil
	case agenttrace.FieldParentTraceID:
		m.ResetParentTraceID()
		return nil
	case agenttrace.FieldStage:
		m.ResetStage()
		return nil
	case agenttrace.FieldModel:
		m.ResetModel()
		return nil
	case agenttrace.FieldPosition:
		m.ResetPosition()
		return nil
	case agenttrace.FieldStatus:
		m.ResetStatus()
		return nil
	case agenttrace.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case agenttrace.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case agenttrace.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case agenttrace.FieldOutputSummary:
		m.ResetOutputSummary()
		return nil
	case agenttrace.FieldGateName:
		m.ResetGateName()
		return nil
	case agenttrace.FieldGatePassed:
		m.ResetGatePassed()
		return nil
	case agenttrace.FieldErrorType:
		m.ResetErrorType()
		return nil
	case agenttrace.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agenttrace.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agenttrace.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentTraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, agenttrace.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentTraceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agenttrace.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentTraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentTraceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentTraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, agenttrace.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentTraceMutation) EdgeCleared(name string) bool {
	switch name {
	case agenttrace.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentTraceMutation) ClearEdge(name string) error {
	switch name {
	case agenttrace.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentTraceMutation) ResetEdge(name string) error {
	switch name {
	case agenttrace.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	reason        *string
	snapshot      *models.SessionSnapshot
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *uuid.UUID
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*Checkpoint, error)
	predicates    []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id uuid.UUID) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CheckpointMutation) SetTaskID(u uuid.UUID) {
	m.task = &u
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CheckpointMutation) TaskID() (r uuid.UUID, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTaskID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CheckpointMutation) ResetTaskID() {
	m.task = nil
}

// SetReason sets the "reason" field.
func (m *CheckpointMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *CheckpointMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *CheckpointMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[checkpoint.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *CheckpointMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *CheckpointMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, checkpoint.FieldReason)
}

// SetSnapshot sets the "snapshot" field.
func (m *CheckpointMutation) SetSnapshot(ms models.SessionSnapshot) {
	m.snapshot = &ms
}

// Snapshot returns the value of the "snapshot" field in the mutation.
func (m *CheckpointMutation) Snapshot() (r models.SessionSnapshot, exists bool) {
	v := m.snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshot returns the old "snapshot" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSnapshot(ctx context.Context) (v models.SessionSnapshot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshot: %w", err)
	}
	return oldValue.Snapshot, nil
}

// ResetSnapshot resets all changes to the "snapshot" field.
func (m *CheckpointMutation) ResetSnapshot() {
	m.snapshot = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *CheckpointMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[checkpoint.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *CheckpointMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) TaskIDs() (ids []uuid.UUID) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CheckpointMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task != nil {
		fields = append(fields, checkpoint.FieldTaskID)
	}
	if m.reason != nil {
		fields = append(fields, checkpoint.FieldReason)
	}
	if m.snapshot != nil {
		fields = append(fields, checkpoint.FieldSnapshot)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldTaskID:
		return m.TaskID()
	case checkpoint.FieldReason:
		return m.Reason()
	case checkpoint.FieldSnapshot:
		return m.Snapshot()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldTaskID:
		return m.OldTaskID(ctx)
	case checkpoint.FieldReason:
		return m.OldReason(ctx)
	case checkpoint.FieldSnapshot:
		return m.OldSnapshot(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldTaskID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case checkpoint.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case checkpoint.FieldSnapshot:
		v, ok := value.(models.SessionSnapshot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshot(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldReason) {
		fields = append(fields, checkpoint.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldTaskID:
		m.ResetTaskID()
		return nil
	case checkpoint.FieldReason:
		m.ResetReason()
		return nil
	case checkpoint.FieldSnapshot:
		m.ResetSnapshot()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, checkpoint.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, checkpoint.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// ModelConfigMutation represents an operation that mutates the ModelConfig nodes in the graph.
type ModelConfigMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	position      *string
	model         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ModelConfig, error)
	predicates    []predicate.ModelConfig
}

var _ ent.Mutation = (*ModelConfigMutation)(nil)

// modelconfigOption allows management of the mutation configuration using functional options.
type modelconfigOption func(*ModelConfigMutation)

// newModelConfigMutation creates new mutation for the ModelConfig entity.
func newModelConfigMutation(c config, op Op, opts ...modelconfigOption) *ModelConfigMutation {
	m := &ModelConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeModelConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelConfigID sets the ID field of the mutation.
func withModelConfigID(id uuid.UUID) modelconfigOption {
	return func(m *ModelConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelConfig
		)
		m.oldValue = func(ctx context.Context) (*ModelConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelConfig sets the old ModelConfig of the mutation.
func withModelConfig(node *ModelConfig) modelconfigOption {
	return func(m *ModelConfigMutation) {
		m.oldValue = func(context.Context) (*ModelConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelConfig entities.
func (m *ModelConfigMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelConfigMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelConfigMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPosition sets the "position" field.
func (m *ModelConfigMutation) SetPosition(s string) {
	m.position = &s
}

// Position returns the value of the "position" field in the mutation.
func (m *ModelConfigMutation) Position() (r string, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldPosition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// ResetPosition resets all changes to the "position" field.
func (m *ModelConfigMutation) ResetPosition() {
	m.position = nil
}

// SetModel sets the "model" field.
func (m *ModelConfigMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ModelConfigMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ModelConfigMutation) ResetModel() {
	m.model = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModelConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModelConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModelConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ModelConfigMutation builder.
func (m *ModelConfigMutation) Where(ps ...predicate.ModelConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelConfig).
func (m *ModelConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelConfigMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.position != nil {
		fields = append(fields, modelconfig.FieldPosition)
	}
	if m.model != nil {
		fields = append(fields, modelconfig.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, modelconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, modelconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelconfig.FieldPosition:
		return m.Position()
	case modelconfig.FieldModel:
		return m.Model()
	case modelconfig.FieldCreatedAt:
		return m.CreatedAt()
	case modelconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelconfig.FieldPosition:
		return m.OldPosition(ctx)
	case modelconfig.FieldModel:
		return m.OldModel(ctx)
	case modelconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case modelconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelconfig.FieldPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case modelconfig.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case modelconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case modelconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ModelConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelConfigMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelConfigMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ModelConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelConfigMutation) ResetField(name string) error {
	switch name {
	case modelconfig.FieldPosition:
		m.ResetPosition()
		return nil
	case modelconfig.FieldModel:
		m.ResetModel()
		return nil
	case modelconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case modelconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelConfig edge %s", name)
}

// ModelConfigAuditMutation represents an operation that mutates the ModelConfigAudit nodes in the graph.
type ModelConfigAuditMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	position      *string
	old_model     *string
	new_model     *string
	changed_by    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ModelConfigAudit, error)
	predicates    []predicate.ModelConfigAudit
}

var _ ent.Mutation = (*ModelConfigAuditMutation)(nil)

// modelconfigauditOption allows management of the mutation configuration using functional options.
type modelconfigauditOption func(*ModelConfigAuditMutation)

// newModelConfigAuditMutation creates new mutation for the ModelConfigAudit entity.
func newModelConfigAuditMutation(c config, op Op, opts ...modelconfigauditOption) *ModelConfigAuditMutation {
	m := &ModelConfigAuditMutation{
		config:        c,
		op:            op,
		typ:           TypeModelConfigAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelConfigAuditID sets the ID field of the mutation.
func withModelConfigAuditID(id uuid.UUID) modelconfigauditOption {
	return func(m *ModelConfigAuditMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelConfigAudit
		)
		m.oldValue = func(ctx context.Context) (*ModelConfigAudit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelConfigAudit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelConfigAudit sets the old ModelConfigAudit of the mutation.
func withModelConfigAudit(node *ModelConfigAudit) modelconfigauditOption {
	return func(m *ModelConfigAuditMutation) {
		m.oldValue = func(context.Context) (*ModelConfigAudit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelConfigAuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelConfigAuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelConfigAudit entities.
func (m *ModelConfigAuditMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelConfigAuditMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelConfigAuditMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelConfigAudit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPosition sets the "position" field.
func (m *ModelConfigAuditMutation) SetPosition(s string) {
	m.position = &s
}

// Position returns the value of the "position" field in the mutation.
func (m *ModelConfigAuditMutation) Position() (r string, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ModelConfigAudit entity.
// If the ModelConfigAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigAuditMutation) OldPosition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// ResetPosition resets all changes to the "position" field.
func (m *ModelConfigAuditMutation) ResetPosition() {
	m.position = nil
}

// SetOldModel sets the "old_model" field.
func (m *ModelConfigAuditMutation) SetOldModel(s string) {
	m.old_model = &s
}

// OldModel returns the value of the "old_model" field in the mutation.
func (m *ModelConfigAuditMutation) OldModel() (r string, exists bool) {
	v := m.old_model
	if v == nil {
		return
	}
	return *v, true
}

// OldOldModel returns the old "old_model" field's value of the ModelConfigAudit entity.
// If the ModelConfigAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigAuditMutation) OldOldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldModel: %w", err)
	}
	return oldValue.OldModel, nil
}

// ClearOldModel clears the value of the "old_model" field.
func (m *ModelConfigAuditMutation) ClearOldModel() {
	m.old_model = nil
	m.clearedFields[modelconfigaudit.FieldOldModel] = struct{}{}
}

// OldModelCleared returns if the "old_model" field was cleared in this mutation.
func (m *ModelConfigAuditMutation) OldModelCleared() bool {
	_, ok := m.clearedFields[modelconfigaudit.FieldOldModel]
	return ok
}

// ResetOldModel resets all changes to the "old_model" field.
func (m *ModelConfigAuditMutation) ResetOldModel() {
	m.old_model = nil
	delete(m.clearedFields, modelconfigaudit.FieldOldModel)
}

// SetNewModel sets the "new_model" field.
func (m *ModelConfigAuditMutation) SetNewModel(s string) {
	m.new_model = &s
}

// NewModel returns the value of the "new_model" field in the mutation.
func (m *ModelConfigAuditMutation) NewModel() (r string, exists bool) {
	v := m.new_model
	if v == nil {
		return
	}
	return *v, true
}

// OldNewModel returns the old "new_model" field's value of the ModelConfigAudit entity.
// If the ModelConfigAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigAuditMutation) OldNewModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewModel: %w", err)
	}
	return oldValue.NewModel, nil
}

// ResetNewModel resets all changes to the "new_model" field.
func (m *ModelConfigAuditMutation) ResetNewModel() {
	m.new_model = nil
}

// SetChangedBy sets the "changed_by" field.
func (m *ModelConfigAuditMutation) SetChangedBy(s string) {
	m.changed_by = &s
}

// ChangedBy returns the value of the "changed_by" field in the mutation.
func (m *ModelConfigAuditMutation) ChangedBy() (r string, exists bool) {
	v := m.changed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedBy returns the old "changed_by" field's value of the ModelConfigAudit entity.
// If the ModelConfigAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigAuditMutation) OldChangedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedBy: %w", err)
	}
	return oldValue.ChangedBy, nil
}

// ClearChangedBy clears the value of the "changed_by" field.
func (m *ModelConfigAuditMutation) ClearChangedBy() {
	m.changed_by = nil
	m.clearedFields[modelconfigaudit.FieldChangedBy] = struct{}{}
}

// ChangedByCleared returns if the "changed_by" field was cleared in this mutation.
func (m *ModelConfigAuditMutation) ChangedByCleared() bool {
	_, ok := m.clearedFields[modelconfigaudit.FieldChangedBy]
	return ok
}

// ResetChangedBy resets all changes to the "changed_by" field.
func (m *ModelConfigAuditMutation) ResetChangedBy() {
	m.changed_by = nil
	delete(m.clearedFields, modelconfigaudit.FieldChangedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelConfigAuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelConfigAuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelConfigAudit entity.
// If the ModelConfigAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigAuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelConfigAuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ModelConfigAuditMutation builder.
func (m *ModelConfigAuditMutation) Where(ps ...predicate.ModelConfigAudit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelConfigAuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelConfigAuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelConfigAudit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelConfigAuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelConfigAuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelConfigAudit).
func (m *ModelConfigAuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelConfigAuditMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.position != nil {
		fields = append(fields, modelconfigaudit.FieldPosition)
	}
	if m.old_model != nil {
		fields = append(fields, modelconfigaudit.FieldOldModel)
	}
	if m.new_model != nil {
		fields = append(fields, modelconfigaudit.FieldNewModel)
	}
	if m.changed_by != nil {
		fields = append(fields, modelconfigaudit.FieldChangedBy)
	}
	if m.created_at != nil {
		fields = append(fields, modelconfigaudit.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelConfigAuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelconfigaudit.FieldPosition:
		return m.Position()
	case modelconfigaudit.FieldOldModel:
		return m.OldModel()
	case modelconfigaudit.FieldNewModel:
		return m.NewModel()
	case modelconfigaudit.FieldChangedBy:
		return m.ChangedBy()
	case modelconfigaudit.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelConfigAuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelconfigaudit.FieldPosition:
		return m.OldPosition(ctx)
	case modelconfigaudit.FieldOldModel:
		return m.OldOldModel(ctx)
	case modelconfigaudit.FieldNewModel:
		return m.OldNewModel(ctx)
	case modelconfigaudit.FieldChangedBy:
		return m.OldChangedBy(ctx)
	case modelconfigaudit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelConfigAudit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigAuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelconfigaudit.FieldPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case modelconfigaudit.FieldOldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldModel(v)
		return nil
	case modelconfigaudit.FieldNewModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewModel(v)
		return nil
	case modelconfigaudit.FieldChangedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedBy(v)
		return nil
	case modelconfigaudit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfigAudit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelConfigAuditMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelConfigAuditMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigAuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ModelConfigAudit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelConfigAuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelconfigaudit.FieldOldModel) {
		fields = append(fields, modelconfigaudit.FieldOldModel)
	}
	if m.FieldCleared(modelconfigaudit.FieldChangedBy) {
		fields = append(fields, modelconfigaudit.FieldChangedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelConfigAuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelConfigAuditMutation) ClearField(name string) error {
	switch name {
	case modelconfigaudit.FieldOldModel:
		m.ClearOldModel()
		return nil
	case modelconfigaudit.FieldChangedBy:
		m.ClearChangedBy()
		return nil
	}
	return fmt.Errorf("unknown ModelConfigAudit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelConfigAuditMutation) ResetField(name string) error {
	switch name {
	case modelconfigaudit.FieldPosition:
		m.ResetPosition()
		return nil
	case modelconfigaudit.FieldOldModel:
		m.ResetOldModel()
		return nil
	case modelconfigaudit.FieldNewModel:
		m.ResetNewModel()
		return nil
	case modelconfigaudit.FieldChangedBy:
		m.ResetChangedBy()
		return nil
	case modelconfigaudit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelConfigAudit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelConfigAuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelConfigAuditMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelConfigAuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelConfigAuditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelConfigAuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelConfigAuditMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelConfigAuditMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelConfigAudit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelConfigAuditMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelConfigAudit edge %s", name)
}

// RepositoryMutation represents an operation that mutates the Repository nodes in the graph.
type RepositoryMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	owner          *string
	name           *string
	default_branch *string
	enabled        *bool
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Repository, error)
	predicates     []predicate.Repository
}

var _ ent.Mutation = (*RepositoryMutation)(nil)

// repositoryOption allows management of the mutation configuration using functional options.
type repositoryOption func(*RepositoryMutation)

// newRepositoryMutation creates new mutation for the Repository entity.
func newRepositoryMutation(c config, op Op, opts ...repositoryOption) *RepositoryMutation {
	m := &RepositoryMutation{
		config:        c,
		op:            op,
		typ:           TypeRepository,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRepositoryID sets the ID field of the mutation.
func withRepositoryID(id uuid.UUID) repositoryOption {
	return func(m *RepositoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Repository
		)
		m.oldValue = func(ctx context.Context) (*Repository, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Repository.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRepository sets the old Repository of the mutation.
func withRepository(node *Repository) repositoryOption {
	return func(m *RepositoryMutation) {
		m.oldValue = func(context.Context) (*Repository, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RepositoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RepositoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Repository entities.
func (m *RepositoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RepositoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RepositoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Repository.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwner sets the "owner" field.
func (m *RepositoryMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *RepositoryMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *RepositoryMutation) ResetOwner() {
	m.owner = nil
}

// SetName sets the "name" field.
func (m *RepositoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RepositoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RepositoryMutation) ResetName() {
	m.name = nil
}

// SetDefaultBranch sets the "default_branch" field.
func (m *RepositoryMutation) SetDefaultBranch(s string) {
	m.default_branch = &s
}

// DefaultBranch returns the value of the "default_branch" field in the mutation.
func (m *RepositoryMutation) DefaultBranch() (r string, exists bool) {
	v := m.default_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultBranch returns the old "default_branch" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldDefaultBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultBranch: %w", err)
	}
	return oldValue.DefaultBranch, nil
}

// ResetDefaultBranch resets all changes to the "default_branch" field.
func (m *RepositoryMutation) ResetDefaultBranch() {
	m.default_branch = nil
}

// SetEnabled sets the "enabled" field.
func (m *RepositoryMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *RepositoryMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *RepositoryMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RepositoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RepositoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RepositoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RepositoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RepositoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RepositoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RepositoryMutation builder.
func (m *RepositoryMutation) Where(ps ...predicate.Repository) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RepositoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RepositoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Repository, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RepositoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RepositoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Repository).
func (m *RepositoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RepositoryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner != nil {
		fields = append(fields, repository.FieldOwner)
	}
	if m.name != nil {
		fields = append(fields, repository.FieldName)
	}
	if m.default_branch != nil {
		fields = append(fields, repository.FieldDefaultBranch)
	}
	if m.enabled != nil {
		fields = append(fields, repository.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, repository.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, repository.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RepositoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case repository.FieldOwner:
		return m.Owner()
	case repository.FieldName:
		return m.Name()
	case repository.FieldDefaultBranch:
		return m.DefaultBranch()
	case repository.FieldEnabled:
		return m.Enabled()
	case repository.FieldCreatedAt:
		return m.CreatedAt()
	case repository.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RepositoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case repository.FieldOwner:
		return m.OldOwner(ctx)
	case repository.FieldName:
		return m.OldName(ctx)
	case repository.FieldDefaultBranch:
		return m.OldDefaultBranch(ctx)
	case repository.FieldEnabled:
		return m.OldEnabled(ctx)
	case repository.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case repository.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Repository field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case repository.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case repository.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case repository.FieldDefaultBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultBranch(v)
		return nil
	case repository.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case repository.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case repository.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Repository field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RepositoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RepositoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Repository numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RepositoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RepositoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RepositoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Repository nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RepositoryMutation) ResetField(name string) error {
	switch name {
	case repository.FieldOwner:
		m.ResetOwner()
		return nil
	case repository.FieldName:
		m.ResetName()
		return nil
	case repository.FieldDefaultBranch:
		m.ResetDefaultBranch()
		return nil
	case repository.FieldEnabled:
		m.ResetEnabled()
		return nil
	case repository.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case repository.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Repository field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RepositoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RepositoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RepositoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RepositoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RepositoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RepositoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RepositoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Repository unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RepositoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Repository edge %s", name)
}

// SessionMemoryMutation represents an operation that mutates the SessionMemory nodes in the graph.
type SessionMemoryMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	phase                  *string
	progress               *[]models.ProgressEntry
	appendprogress         []models.ProgressEntry
	attempts               *[]models.AttemptRecord
	appendattempts         []models.AttemptRecord
	failure_patterns       *[]models.FailurePattern
	appendfailure_patterns []models.FailurePattern
	outputs                *map[string]json.RawMessage
	orchestration          **models.OrchestrationState
	error_count            *int
	adderror_count         *int
	retry_count            *int
	addretry_count         *int
	last_checkpoint_id     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	task                   *uuid.UUID
	clearedtask            bool
	done                   bool
	oldValue               func(context.Context) (*SessionMemory, error)
	predicates             []predicate.SessionMemory
}

var _ ent.Mutation = (*SessionMemoryMutation)(nil)

// sessionmemoryOption allows management of the mutation configuration using functional options.
type sessionmemoryOption func(*SessionMemoryMutation)

// newSessionMemoryMutation creates new mutation for the SessionMemory entity.
func newSessionMemoryMutation(c config, op Op, opts ...sessionmemoryOption) *SessionMemoryMutation {
	m := &SessionMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionMemoryID sets the ID field of the mutation.
func withSessionMemoryID(id uuid.UUID) sessionmemoryOption {
	return func(m *SessionMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionMemory
		)
		m.oldValue = func(ctx context.Context) (*SessionMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionMemory sets the old SessionMemory of the mutation.
func withSessionMemory(node *SessionMemory) sessionmemoryOption {
	return func(m *SessionMemoryMutation) {
		m.oldValue = func(context.Context) (*SessionMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionMemory entities.
func (m *SessionMemoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMemoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMemoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SessionMemoryMutation) SetTaskID(u uuid.UUID) {
	m.task = &u
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SessionMemoryMutation) TaskID() (r uuid.UUID, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldTaskID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SessionMemoryMutation) ResetTaskID() {
	m.task = nil
}

// SetPhase sets the "phase" field.
func (m *SessionMemoryMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *SessionMemoryMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *SessionMemoryMutation) ResetPhase() {
	m.phase = nil
}

// SetProgress sets the "progress" field.
func (m *SessionMemoryMutation) SetProgress(me []models.ProgressEntry) {
	m.progress = &me
	m.appendprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *SessionMemoryMutation) Progress() (r []models.ProgressEntry, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldProgress(ctx context.Context) (v []models.ProgressEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AppendProgress adds me to the "progress" field.
func (m *SessionMemoryMutation) AppendProgress(me []models.ProgressEntry) {
	m.appendprogress = append(m.appendprogress, me...)
}

// AppendedProgress returns the list of values that were appended to the "progress" field in this mutation.
func (m *SessionMemoryMutation) AppendedProgress() ([]models.ProgressEntry, bool) {
	if len(m.appendprogress) == 0 {
		return nil, false
	}
	return m.appendprogress, true
}

// ClearProgress clears the value of the "progress" field.
func (m *SessionMemoryMutation) ClearProgress() {
	m.progress = nil
	m.appendprogress = nil
	m.clearedFields[sessionmemory.FieldProgress] = struct{}{}
}

// ProgressCleared returns if the "progress" field was cleared in this mutation.
func (m *SessionMemoryMutation) ProgressCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldProgress]
	return ok
}

// ResetProgress resets all changes to the "progress" field.
func (m *SessionMemoryMutation) ResetProgress() {
	m.progress = nil
	m.appendprogress = nil
	delete(m.clearedFields, sessionmemory.FieldProgress)
}

// SetAttempts sets the "attempts" field.
func (m *SessionMemoryMutation) SetAttempts(mr []models.AttemptRecord) {
	m.attempts = &mr
	m.appendattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *SessionMemoryMutation) Attempts() (r []models.AttemptRecord, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldAttempts(ctx context.Context) (v []models.AttemptRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AppendAttempts adds mr to the "attempts" field.
func (m *SessionMemoryMutation) AppendAttempts(mr []models.AttemptRecord) {
	m.appendattempts = append(m.appendattempts, mr...)
}

// AppendedAttempts returns the list of values that were appended to the "attempts" field in this mutation.
func (m *SessionMemoryMutation) AppendedAttempts() ([]models.AttemptRecord, bool) {
	if len(m.appendattempts) == 0 {
		return nil, false
	}
	return m.appendattempts, true
}

// ClearAttempts clears the value of the "attempts" field.
func (m *SessionMemoryMutation) ClearAttempts() {
	m.attempts = nil
	m.appendattempts = nil
	m.clearedFields[sessionmemory.FieldAttempts] = struct{}{}
}

// AttemptsCleared returns if the "attempts" field was cleared in this mutation.
func (m *SessionMemoryMutation) AttemptsCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldAttempts]
	return ok
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *SessionMemoryMutation) ResetAttempts() {
	m.attempts = nil
	m.appendattempts = nil
	delete(m.clearedFields, sessionmemory.FieldAttempts)
}

// SetFailurePatterns sets the "failure_patterns" field.
func (m *SessionMemoryMutation) SetFailurePatterns(mp []models.FailurePattern) {
	m.failure_patterns = &mp
	m.appendfailure_patterns = nil
}

// FailurePatterns returns the value of the "failure_patterns" field in the mutation.
func (m *SessionMemoryMutation) FailurePatterns() (r []models.FailurePattern, exists bool) {
	v := m.failure_patterns
	if v == nil {
		return
	}
	return *v, true
}

// OldFailurePatterns returns the old "failure_patterns" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldFailurePatterns(ctx context.Context) (v []models.FailurePattern, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailurePatterns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailurePatterns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailurePatterns: %w", err)
	}
	return oldValue.FailurePatterns, nil
}

// AppendFailurePatterns adds mp to the "failure_patterns" field.
func (m *SessionMemoryMutation) AppendFailurePatterns(mp []models.FailurePattern) {
	m.appendfailure_patterns = append(m.appendfailure_patterns, mp...)
}

// AppendedFailurePatterns returns the list of values that were appended to the "failure_patterns" field in this mutation.
func (m *SessionMemoryMutation) AppendedFailurePatterns() ([]models.FailurePattern, bool) {
	if len(m.appendfailure_patterns) == 0 {
		return nil, false
	}
	return m.appendfailure_patterns, true
}

// ClearFailurePatterns clears the value of the "failure_patterns" field.
func (m *SessionMemoryMutation) ClearFailurePatterns() {
	m.failure_patterns = nil
	m.appendfailure_patterns = nil
	m.clearedFields[sessionmemory.FieldFailurePatterns] = struct{}{}
}

// FailurePatternsCleared returns if the "failure_patterns" field was cleared in this mutation.
func (m *SessionMemoryMutation) FailurePatternsCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldFailurePatterns]
	return ok
}

// ResetFailurePatterns resets all changes to the "failure_patterns" field.
func (m *SessionMemoryMutation) ResetFailurePatterns() {
	m.failure_patterns = nil
	m.appendfailure_patterns = nil
	delete(m.clearedFields, sessionmemory.FieldFailurePatterns)
}

// SetOutputs sets the "outputs" field.
func (m *SessionMemoryMutation) SetOutputs(mm map[string]json.RawMessage) {
	m.outputs = &mm
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *SessionMemoryMutation) Outputs() (r map[string]json.RawMessage, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldOutputs(ctx context.Context) (v map[string]json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *SessionMemoryMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[sessionmemory.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *SessionMemoryMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *SessionMemoryMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, sessionmemory.FieldOutputs)
}

// SetOrchestration sets the "orchestration" field.
func (m *SessionMemoryMutation) SetOrchestration(ms *models.OrchestrationState) {
	m.orchestration = &ms
}

// Orchestration returns the value of the "orchestration" field in the mutation.
func (m *SessionMemoryMutation) Orchestration() (r *models.OrchestrationState, exists bool) {
	v := m.orchestration
	if v == nil {
		return
	}
	return *v, true
}

// OldOrchestration returns the old "orchestration" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldOrchestration(ctx context.Context) (v *models.OrchestrationState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrchestration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrchestration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrchestration: %w", err)
	}
	return oldValue.Orchestration, nil
}

// ClearOrchestration clears the value of the "orchestration" field.
func (m *SessionMemoryMutation) ClearOrchestration() {
	m.orchestration = nil
	m.clearedFields[sessionmemory.FieldOrchestration] = struct{}{}
}

// OrchestrationCleared returns if the "orchestration" field was cleared in this mutation.
func (m *SessionMemoryMutation) OrchestrationCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldOrchestration]
	return ok
}

// ResetOrchestration resets all changes to the "orchestration" field.
func (m *SessionMemoryMutation) ResetOrchestration() {
	m.orchestration = nil
	delete(m.clearedFields, sessionmemory.FieldOrchestration)
}

// SetErrorCount sets the "error_count" field.
func (m *SessionMemoryMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *SessionMemoryMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *SessionMemoryMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *SessionMemoryMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *SessionMemoryMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *SessionMemoryMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *SessionMemoryMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *SessionMemoryMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *SessionMemoryMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *SessionMemoryMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastCheckpointID sets the "last_checkpoint_id" field.
func (m *SessionMemoryMutation) SetLastCheckpointID(u uuid.UUID) {
	m.last_checkpoint_id = &u
}

// LastCheckpointID returns the value of the "last_checkpoint_id" field in the mutation.
func (m *SessionMemoryMutation) LastCheckpointID() (r uuid.UUID, exists bool) {
	v := m.last_checkpoint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCheckpointID returns the old "last_checkpoint_id" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldLastCheckpointID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCheckpointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCheckpointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCheckpointID: %w", err)
	}
	return oldValue.LastCheckpointID, nil
}

// ClearLastCheckpointID clears the value of the "last_checkpoint_id" field.
func (m *SessionMemoryMutation) ClearLastCheckpointID() {
	m.last_checkpoint_id = nil
	m.clearedFields[sessionmemory.FieldLastCheckpointID] = struct{}{}
}

// LastCheckpointIDCleared returns if the "last_checkpoint_id" field was cleared in this mutation.
func (m *SessionMemoryMutation) LastCheckpointIDCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldLastCheckpointID]
	return ok
}

// ResetLastCheckpointID resets all changes to the "last_checkpoint_id" field.
func (m *SessionMemoryMutation) ResetLastCheckpointID() {
	m.last_checkpoint_id = nil
	delete(m.clearedFields, sessionmemory.FieldLastCheckpointID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMemoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMemoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMemoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMemoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMemoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMemoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *SessionMemoryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[sessionmemory.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *SessionMemoryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SessionMemoryMutation) TaskIDs() (ids []uuid.UUID) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SessionMemoryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the SessionMemoryMutation builder.
func (m *SessionMemoryMutation) Where(ps ...predicate.SessionMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionMemory).
func (m *SessionMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMemoryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task != nil {
		fields = append(fields, sessionmemory.FieldTaskID)
	}
	if m.phase != nil {
		fields = append(fields, sessionmemory.FieldPhase)
	}
	if m.progress != nil {
		fields = append(fields, sessionmemory.FieldProgress)
	}
	if m.attempts != nil {
		fields = append(fields, sessionmemory.FieldAttempts)
	}
	if m.failure_patterns != nil {
		fields = append(fields, sessionmemory.FieldFailurePatterns)
	}
	if m.outputs != nil {
		fields = append(fields, sessionmemory.FieldOutputs)
	}
	if m.orchestration != nil {
		fields = append(fields, sessionmemory.FieldOrchestration)
	}
	if m.error_count != nil {
		fields = append(fields, sessionmemory.FieldErrorCount)
	}
	if m.retry_count != nil {
		fields = append(fields, sessionmemory.FieldRetryCount)
	}
	if m.last_checkpoint_id != nil {
		fields = append(fields, sessionmemory.FieldLastCheckpointID)
	}
	if m.created_at != nil {
		fields = append(fields, sessionmemory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionmemory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionmemory.FieldTaskID:
		return m.TaskID()
	case sessionmemory.FieldPhase:
		return m.Phase()
	case sessionmemory.FieldProgress:
		return m.Progress()
	case sessionmemory.FieldAttempts:
		return m.Attempts()
	case sessionmemory.FieldFailurePatterns:
		return m.FailurePatterns()
	case sessionmemory.FieldOutputs:
		return m.Outputs()
	case sessionmemory.FieldOrchestration:
		return m.Orchestration()
	case sessionmemory.FieldErrorCount:
		return m.ErrorCount()
	case sessionmemory.FieldRetryCount:
		return m.RetryCount()
	case sessionmemory.FieldLastCheckpointID:
		return m.LastCheckpointID()
	case sessionmemory.FieldCreatedAt:
		return m.CreatedAt()
	case sessionmemory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionmemory.FieldTaskID:
		return m.OldTaskID(ctx)
	case sessionmemory.FieldPhase:
		return m.OldPhase(ctx)
	case sessionmemory.FieldProgress:
		return m.OldProgress(ctx)
	case sessionmemory.FieldAttempts:
		return m.OldAttempts(ctx)
	case sessionmemory.FieldFailurePatterns:
		return m.OldFailurePatterns(ctx)
	case sessionmemory.FieldOutputs:
		return m.OldOutputs(ctx)
	case sessionmemory.FieldOrchestration:
		return m.OldOrchestration(ctx)
	case sessionmemory.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case sessionmemory.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case sessionmemory.FieldLastCheckpointID:
		return m.OldLastCheckpointID(ctx)
	case sessionmemory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessionmemory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionmemory.FieldTaskID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case sessionmemory.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case sessionmemory.FieldProgress:
		v, ok := value.([]models.ProgressEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case sessionmemory.FieldAttempts:
		v, ok := value.([]models.AttemptRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case sessionmemory.FieldFailurePatterns:
		v, ok := value.([]models.FailurePattern)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailurePatterns(v)
		return nil
	case sessionmemory.FieldOutputs:
		v, ok := value.(map[string]json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case sessionmemory.FieldOrchestration:
		v, ok := value.(*models.OrchestrationState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrchestration(v)
		return nil
	case sessionmemory.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case sessionmemory.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case sessionmemory.FieldLastCheckpointID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCheckpointID(v)
		return nil
	case sessionmemory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessionmemory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMemoryMutation) AddedFields() []string {
	var fields []string
	if m.adderror_count != nil {
		fields = append(fields, sessionmemory.FieldErrorCount)
	}
	if m.addretry_count != nil {
		fields = append(fields, sessionmemory.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMemoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionmemory.FieldErrorCount:
		return m.AddedErrorCount()
	case sessionmemory.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionmemory.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	case sessionmemory.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionmemory.FieldProgress) {
		fields = append(fields, sessionmemory.FieldProgress)
	}
	if m.FieldCleared(sessionmemory.FieldAttempts) {
		fields = append(fields, sessionmemory.FieldAttempts)
	}
	if m.FieldCleared(sessionmemory.FieldFailurePatterns) {
		fields = append(fields, sessionmemory.FieldFailurePatterns)
	}
	if m.FieldCleared(sessionmemory.FieldOutputs) {
		fields = append(fields, sessionmemory.FieldOutputs)
	}
	if m.FieldCleared(sessionmemory.FieldOrchestration) {
		fields = append(fields, sessionmemory.FieldOrchestration)
	}
	if m.FieldCleared(sessionmemory.FieldLastCheckpointID) {
		fields = append(fields, sessionmemory.FieldLastCheckpointID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMemoryMutation) ClearField(name string) error {
	switch name {
	case sessionmemory.FieldProgress:
		m.ClearProgress()
		return nil
	case sessionmemory.FieldAttempts:
		m.ClearAttempts()
		return nil
	case sessionmemory.FieldFailurePatterns:
		m.ClearFailurePatterns()
		return nil
	case sessionmemory.FieldOutputs:
		m.ClearOutputs()
		return nil
	case sessionmemory.FieldOrchestration:
		m.ClearOrchestration()
		return nil
	case sessionmemory.FieldLastCheckpointID:
		m.ClearLastCheckpointID()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMemoryMutation) ResetField(name string) error {
	switch name {
	case sessionmemory.FieldTaskID:
		m.ResetTaskID()
		return nil
	case sessionmemory.FieldPhase:
		m.ResetPhase()
		return nil
	case sessionmemory.FieldProgress:
		m.ResetProgress()
		return nil
	case sessionmemory.FieldAttempts:
		m.ResetAttempts()
		return nil
	case sessionmemory.FieldFailurePatterns:
		m.ResetFailurePatterns()
		return nil
	case sessionmemory.FieldOutputs:
		m.ResetOutputs()
		return nil
	case sessionmemory.FieldOrchestration:
		m.ResetOrchestration()
		return nil
	case sessionmemory.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case sessionmemory.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case sessionmemory.FieldLastCheckpointID:
		m.ResetLastCheckpointID()
		return nil
	case sessionmemory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessionmemory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, sessionmemory.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMemoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionmemory.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, sessionmemory.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMemoryMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionmemory.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMemoryMutation) ClearEdge(name string) error {
	switch name {
	case sessionmemory.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMemoryMutation) ResetEdge(name string) error {
	switch name {
	case sessionmemory.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	repo_owner               *string
	repo_name                *string
	issue_number             *int
	addissue_number          *int
	issue_title              *string
	issue_body               *string
	status                   *models.Status
	attempt_count            *int
	addattempt_count         *int
	total_attempts           *int
	addtotal_attempts        *int
	max_attempts             *int
	addmax_attempts          *int
	escalation_level         *int
	addescalation_level      *int
	subtask_index            *int
	addsubtask_index         *int
	is_orchestrated          *bool
	definition_of_done       *[]string
	appenddefinition_of_done []string
	plan                     *[]models.PlanStep
	appendplan               []models.PlanStep
	target_files             *[]string
	appendtarget_files       []string
	estimated_complexity     *string
	estimated_effort         *string
	branch_name              *string
	current_diff             *string
	commit_message           *string
	pr_number                *int
	addpr_number             *int
	pr_url                   *string
	last_error               *string
	webhook_source           *string
	webhook_delivery_id      *string
	claimed_by               *string
	claimed_at               *time.Time
	last_heartbeat_at        *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	started_at               *time.Time
	completed_at             *time.Time
	clearedFields            map[string]struct{}
	memory                   *uuid.UUID
	clearedmemory            bool
	checkpoints              map[uuid.UUID]struct{}
	removedcheckpoints       map[uuid.UUID]struct{}
	clearedcheckpoints       bool
	events                   map[int64]struct{}
	removedevents            map[int64]struct{}
	clearedevents            bool
	traces                   map[uuid.UUID]struct{}
	removedtraces            map[uuid.UUID]struct{}
	clearedtraces            bool
	parent                   *uuid.UUID
	clearedparent            bool
	children                 map[uuid.UUID]struct{}
	removedchildren          map[uuid.UUID]struct{}
	clearedchildren          bool
	done                     bool
	oldValue                 func(context.Context) (*Task, error)
	predicates               []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id uuid.UUID) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRepoOwner sets the "repo_owner" field.
func (m *TaskMutation) SetRepoOwner(s string) {
	m.repo_owner = &s
}

// RepoOwner returns the value of the "repo_owner" field in the mutation.
func (m *TaskMutation) RepoOwner() (r string, exists bool) {
	v := m.repo_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoOwner returns the old "repo_owner" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRepoOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoOwner: %w", err)
	}
	return oldValue.RepoOwner, nil
}

// ResetRepoOwner resets all changes to the "repo_owner" field.
func (m *TaskMutation) ResetRepoOwner() {
	m.repo_owner = nil
}

// SetRepoName sets the "repo_name" field.
func (m *TaskMutation) SetRepoName(s string) {
	m.repo_name = &s
}

// RepoName returns the value of the "repo_name" field in the mutation.
func (m *TaskMutation) RepoName() (r string, exists bool) {
	v := m.repo_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoName returns the old "repo_name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRepoName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoName: %w", err)
	}
	return oldValue.RepoName, nil
}

// ResetRepoName resets all changes to the "repo_name" field.
func (m *TaskMutation) ResetRepoName() {
	m.repo_name = nil
}

// SetIssueNumber sets the "issue_number" field.
func (m *TaskMutation) SetIssueNumber(i int) {
	m.issue_number = &i
	m.addissue_number = nil
}

// IssueNumber returns the value of the "issue_number" field in the mutation.
func (m *TaskMutation) IssueNumber() (r int, exists bool) {
	v := m.issue_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueNumber returns the old "issue_number" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIssueNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueNumber: %w", err)
	}
	return oldValue.IssueNumber, nil
}

// AddIssueNumber adds i to the "issue_number" field.
func (m *TaskMutation) AddIssueNumber(i int) {
	if m.addissue_number != nil {
		*m.addissue_number += i
	} else {
		m.addissue_number = &i
	}
}

// AddedIssueNumber returns the value that was added to the "issue_number" field in this mutation.
func (m *TaskMutation) AddedIssueNumber() (r int, exists bool) {
	v := m.addissue_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetIssueNumber resets all changes to the "issue_number" field.
func (m *TaskMutation) ResetIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
}

// SetIssueTitle sets the "issue_title" field.
func (m *TaskMutation) SetIssueTitle(s string) {
	m.issue_title = &s
}

// IssueTitle returns the value of the "issue_title" field in the mutation.
func (m *TaskMutation) IssueTitle() (r string, exists bool) {
	v := m.issue_title
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueTitle returns the old "issue_title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIssueTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueTitle: %w", err)
	}
	return oldValue.IssueTitle, nil
}

// ResetIssueTitle resets all changes to the "issue_title" field.
func (m *TaskMutation) ResetIssueTitle() {
	m.issue_title = nil
}

// SetIssueBody sets the "issue_body" field.
func (m *TaskMutation) SetIssueBody(s string) {
	m.issue_body = &s
}

// IssueBody returns the value of the "issue_body" field in the mutation.
func (m *TaskMutation) IssueBody() (r string, exists bool) {
	v := m.issue_body
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueBody returns the old "issue_body" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIssueBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueBody: %w", err)
	}
	return oldValue.IssueBody, nil
}

// ClearIssueBody clears the value of the "issue_body" field.
func (m *TaskMutation) ClearIssueBody() {
	m.issue_body = nil
	m.clearedFields[task.FieldIssueBody] = struct{}{}
}

// IssueBodyCleared returns if the "issue_body" field was cleared in this mutation.
func (m *TaskMutation) IssueBodyCleared() bool {
	_, ok := m.clearedFields[task.FieldIssueBody]
	return ok
}

// ResetIssueBody resets all changes to the "issue_body" field.
func (m *TaskMutation) ResetIssueBody() {
	m.issue_body = nil
	delete(m.clearedFields, task.FieldIssueBody)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(value models.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r models.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v models.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *TaskMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *TaskMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *TaskMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *TaskMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *TaskMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetTotalAttempts sets the "total_attempts" field.
func (m *TaskMutation) SetTotalAttempts(i int) {
	m.total_attempts = &i
	m.addtotal_attempts = nil
}

// TotalAttempts returns the value of the "total_attempts" field in the mutation.
func (m *TaskMutation) TotalAttempts() (r int, exists bool) {
	v := m.total_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempts returns the old "total_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTotalAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempts: %w", err)
	}
	return oldValue.TotalAttempts, nil
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (m *TaskMutation) AddTotalAttempts(i int) {
	if m.addtotal_attempts != nil {
		*m.addtotal_attempts += i
	} else {
		m.addtotal_attempts = &i
	}
}

// AddedTotalAttempts returns the value that was added to the "total_attempts" field in this mutation.
func (m *TaskMutation) AddedTotalAttempts() (r int, exists bool) {
	v := m.addtotal_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempts resets all changes to the "total_attempts" field.
func (m *TaskMutation) ResetTotalAttempts() {
	m.total_attempts = nil
	m.addtotal_attempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *TaskMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *TaskMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *TaskMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *TaskMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *TaskMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetEscalationLevel sets the "escalation_level" field.
func (m *TaskMutation) SetEscalationLevel(i int) {
	m.escalation_level = &i
	m.addescalation_level = nil
}

// EscalationLevel returns the value of the "escalation_level" field in the mutation.
func (m *TaskMutation) EscalationLevel() (r int, exists bool) {
	v := m.escalation_level
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationLevel returns the old "escalation_level" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEscalationLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationLevel: %w", err)
	}
	return oldValue.EscalationLevel, nil
}

// AddEscalationLevel adds i to the "escalation_level" field.
func (m *TaskMutation) AddEscalationLevel(i int) {
	if m.addescalation_level != nil {
		*m.addescalation_level += i
	} else {
		m.addescalation_level = &i
	}
}

// AddedEscalationLevel returns the value that was added to the "escalation_level" field in this mutation.
func (m *TaskMutation) AddedEscalationLevel() (r int, exists bool) {
	v := m.addescalation_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetEscalationLevel resets all changes to the "escalation_level" field.
func (m *TaskMutation) ResetEscalationLevel() {
	m.escalation_level = nil
	m.addescalation_level = nil
}

// SetParentTaskID sets the "parent_task_id" field.
func (m *TaskMutation) SetParentTaskID(u uuid.UUID) {
	m.parent = &u
}

// ParentTaskID returns the value of the "parent_task_id" field in the mutation.
func (m *TaskMutation) ParentTaskID() (r uuid.UUID, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTaskID returns the old "parent_task_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParentTaskID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTaskID: %w", err)
	}
	return oldValue.ParentTaskID, nil
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (m *TaskMutation) ClearParentTaskID() {
	m.parent = nil
	m.clearedFields[task.FieldParentTaskID] = struct{}{}
}

// ParentTaskIDCleared returns if the "parent_task_id" field was cleared in this mutation.
func (m *TaskMutation) ParentTaskIDCleared() bool {
	_, ok := m.clearedFields[task.FieldParentTaskID]
	return ok
}

// ResetParentTaskID resets all changes to the "parent_task_id" field.
func (m *TaskMutation) ResetParentTaskID() {
	m.parent = nil
	delete(m.clearedFields, task.FieldParentTaskID)
}

// SetSubtaskIndex sets the "subtask_index" field.
func (m *TaskMutation) SetSubtaskIndex(i int) {
	m.subtask_index = &i
	m.addsubtask_index = nil
}

// SubtaskIndex returns the value of the "subtask_index" field in the mutation.
func (m *TaskMutation) SubtaskIndex() (r int, exists bool) {
	v := m.subtask_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtaskIndex returns the old "subtask_index" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSubtaskIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtaskIndex: %w", err)
	}
	return oldValue.SubtaskIndex, nil
}

// AddSubtaskIndex adds i to the "subtask_index" field.
func (m *TaskMutation) AddSubtaskIndex(i int) {
	if m.addsubtask_index != nil {
		*m.addsubtask_index += i
	} else {
		m.addsubtask_index = &i
	}
}

// AddedSubtaskIndex returns the value that was added to the "subtask_index" field in this mutation.
func (m *TaskMutation) AddedSubtaskIndex() (r int, exists bool) {
	v := m.addsubtask_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearSubtaskIndex clears the value of the "subtask_index" field.
func (m *TaskMutation) ClearSubtaskIndex() {
	m.subtask_index = nil
	m.addsubtask_index = nil
	m.clearedFields[task.FieldSubtaskIndex] = struct{}{}
}

// SubtaskIndexCleared returns if the "subtask_index" field was cleared in this mutation.
func (m *TaskMutation) SubtaskIndexCleared() bool {
	_, ok := m.clearedFields[task.FieldSubtaskIndex]
	return ok
}

// ResetSubtaskIndex resets all changes to the "subtask_index" field.
func (m *TaskMutation) ResetSubtaskIndex() {
	m.subtask_index = nil
	m.addsubtask_index = nil
	delete(m.clearedFields, task.FieldSubtaskIndex)
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (m *TaskMutation) SetIsOrchestrated(b bool) {
	m.is_orchestrated = &b
}

// IsOrchestrated returns the value of the "is_orchestrated" field in the mutation.
func (m *TaskMutation) IsOrchestrated() (r bool, exists bool) {
	v := m.is_orchestrated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOrchestrated returns the old "is_orchestrated" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIsOrchestrated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOrchestrated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOrchestrated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOrchestrated: %w", err)
	}
	return oldValue.IsOrchestrated, nil
}

// ResetIsOrchestrated resets all changes to the "is_orchestrated" field.
func (m *TaskMutation) ResetIsOrchestrated() {
	m.is_orchestrated = nil
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (m *TaskMutation) SetDefinitionOfDone(s []string) {
	m.definition_of_done = &s
	m.appenddefinition_of_done = nil
}

// DefinitionOfDone returns the value of the "definition_of_done" field in the mutation.
func (m *TaskMutation) DefinitionOfDone() (r []string, exists bool) {
	v := m.definition_of_done
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinitionOfDone returns the old "definition_of_done" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDefinitionOfDone(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinitionOfDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinitionOfDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinitionOfDone: %w", err)
	}
	return oldValue.DefinitionOfDone, nil
}

// AppendDefinitionOfDone adds s to the "definition_of_done" field.
func (m *TaskMutation) AppendDefinitionOfDone(s []string) {
	m.appenddefinition_of_done = append(m.appenddefinition_of_done, s...)
}

// AppendedDefinitionOfDone returns the list of values that were appended to the "definition_of_done" field in this mutation.
func (m *TaskMutation) AppendedDefinitionOfDone() ([]string, bool) {
	if len(m.appenddefinition_of_done) == 0 {
		return nil, false
	}
	return m.appenddefinition_of_done, true
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (m *TaskMutation) ClearDefinitionOfDone() {
	m.definition_of_done = nil
	m.appenddefinition_of_done = nil
	m.clearedFields[task.FieldDefinitionOfDone] = struct{}{}
}

// DefinitionOfDoneCleared returns if the "definition_of_done" field was cleared in this mutation.
func (m *TaskMutation) DefinitionOfDoneCleared() bool {
	_, ok := m.clearedFields[task.FieldDefinitionOfDone]
	return ok
}

// ResetDefinitionOfDone resets all changes to the "definition_of_done" field.
func (m *TaskMutation) ResetDefinitionOfDone() {
	m.definition_of_done = nil
	m.appenddefinition_of_done = nil
	delete(m.clearedFields, task.FieldDefinitionOfDone)
}

// SetPlan sets the "plan" field.
func (m *TaskMutation) SetPlan(ms []models.PlanStep) {
	m.plan = &ms
	m.appendplan = nil
}

// Plan returns the value of the "plan" field in the mutation.
func (m *TaskMutation) Plan() (r []models.PlanStep, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPlan(ctx context.Context) (v []models.PlanStep, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// AppendPlan adds ms to the "plan" field.
func (m *TaskMutation) AppendPlan(ms []models.PlanStep) {
	m.appendplan = append(m.appendplan, ms...)
}

// AppendedPlan returns the list of values that were appended to the "plan" field in this mutation.
func (m *TaskMutation) AppendedPlan() ([]models.PlanStep, bool) {
	if len(m.appendplan) == 0 {
		return nil, false
	}
	return m.appendplan, true
}

// ClearPlan clears the value of the "plan" field.
func (m *TaskMutation) ClearPlan() {
	m.plan = nil
	m.appendplan = nil
	m.clearedFields[task.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *TaskMutation) PlanCleared() bool {
	_, ok := m.clearedFields[task.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *TaskMutation) ResetPlan() {
	m.plan = nil
	m.appendplan = nil
	delete(m.clearedFields, task.FieldPlan)
}

// SetTargetFiles sets the "target_files" field.
func (m *TaskMutation) SetTargetFiles(s []string) {
	m.target_files = &s
	m.appendtarget_files = nil
}

// TargetFiles returns the value of the "target_files" field in the mutation.
func (m *TaskMutation) TargetFiles() (r []string, exists bool) {
	v := m.target_files
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetFiles returns the old "target_files" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTargetFiles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetFiles: %w", err)
	}
	return oldValue.TargetFiles, nil
}

// AppendTargetFiles adds s to the "target_files" field.
func (m *TaskMutation) AppendTargetFiles(s []string) {
	m.appendtarget_files = append(m.appendtarget_files, s...)
}

// AppendedTargetFiles returns the list of values that were appended to the "target_files" field in this mutation.
func (m *TaskMutation) AppendedTargetFiles() ([]string, bool) {
	if len(m.appendtarget_files) == 0 {
		return nil, false
	}
	return m.appendtarget_files, true
}

// ClearTargetFiles clears the value of the "target_files" field.
func (m *TaskMutation) ClearTargetFiles() {
	m.target_files = nil
	m.appendtarget_files = nil
	m.clearedFields[task.FieldTargetFiles] = struct{}{}
}

// TargetFilesCleared returns if the "target_files" field was cleared in this mutation.
func (m *TaskMutation) TargetFilesCleared() bool {
	_, ok := m.clearedFields[task.FieldTargetFiles]
	return ok
}

// ResetTargetFiles resets all changes to the "target_files" field.
func (m *TaskMutation) ResetTargetFiles() {
	m.target_files = nil
	m.appendtarget_files = nil
	delete(m.clearedFields, task.FieldTargetFiles)
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (m *TaskMutation) SetEstimatedComplexity(s string) {
	m.estimated_complexity = &s
}

// EstimatedComplexity returns the value of the "estimated_complexity" field in the mutation.
func (m *TaskMutation) EstimatedComplexity() (r string, exists bool) {
	v := m.estimated_complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedComplexity returns the old "estimated_complexity" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEstimatedComplexity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedComplexity: %w", err)
	}
	return oldValue.EstimatedComplexity, nil
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (m *TaskMutation) ClearEstimatedComplexity() {
	m.estimated_complexity = nil
	m.clearedFields[task.FieldEstimatedComplexity] = struct{}{}
}

// EstimatedComplexityCleared returns if the "estimated_complexity" field was cleared in this mutation.
func (m *TaskMutation) EstimatedComplexityCleared() bool {
	_, ok := m.clearedFields[task.FieldEstimatedComplexity]
	return ok
}

// ResetEstimatedComplexity resets all changes to the "estimated_complexity" field.
func (m *TaskMutation) ResetEstimatedComplexity() {
	m.estimated_complexity = nil
	delete(m.clearedFields, task.FieldEstimatedComplexity)
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (m *TaskMutation) SetEstimatedEffort(s string) {
	m.estimated_effort = &s
}

// EstimatedEffort returns the value of the "estimated_effort" field in the mutation.
func (m *TaskMutation) EstimatedEffort() (r string, exists bool) {
	v := m.estimated_effort
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedEffort returns the old "estimated_effort" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEstimatedEffort(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedEffort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedEffort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedEffort: %w", err)
	}
	return oldValue.EstimatedEffort, nil
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (m *TaskMutation) ClearEstimatedEffort() {
	m.estimated_effort = nil
	m.clearedFields[task.FieldEstimatedEffort] = struct{}{}
}

// EstimatedEffortCleared returns if the "estimated_effort" field was cleared in this mutation.
func (m *TaskMutation) EstimatedEffortCleared() bool {
	_, ok := m.clearedFields[task.FieldEstimatedEffort]
	return ok
}

// ResetEstimatedEffort resets all changes to the "estimated_effort" field.
func (m *TaskMutation) ResetEstimatedEffort() {
	m.estimated_effort = nil
	delete(m.clearedFields, task.FieldEstimatedEffort)
}

// SetBranchName sets the "branch_name" field.
func (m *TaskMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *TaskMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBranchName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *TaskMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[task.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *TaskMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[task.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *TaskMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, task.FieldBranchName)
}

// SetCurrentDiff sets the "current_diff" field.
func (m *TaskMutation) SetCurrentDiff(s string) {
	m.current_diff = &s
}

// CurrentDiff returns the value of the "current_diff" field in the mutation.
func (m *TaskMutation) CurrentDiff() (r string, exists bool) {
	v := m.current_diff
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentDiff returns the old "current_diff" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCurrentDiff(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentDiff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentDiff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentDiff: %w", err)
	}
	return oldValue.CurrentDiff, nil
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (m *TaskMutation) ClearCurrentDiff() {
	m.current_diff = nil
	m.clearedFields[task.FieldCurrentDiff] = struct{}{}
}

// CurrentDiffCleared returns if the "current_diff" field was cleared in this mutation.
func (m *TaskMutation) CurrentDiffCleared() bool {
	_, ok := m.clearedFields[task.FieldCurrentDiff]
	return ok
}

// ResetCurrentDiff resets all changes to the "current_diff" field.
func (m *TaskMutation) ResetCurrentDiff() {
	m.current_diff = nil
	delete(m.clearedFields, task.FieldCurrentDiff)
}

// SetCommitMessage sets the "commit_message" field.
func (m *TaskMutation) SetCommitMessage(s string) {
	m.commit_message = &s
}

// CommitMessage returns the value of the "commit_message" field in the mutation.
func (m *TaskMutation) CommitMessage() (r string, exists bool) {
	v := m.commit_message
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitMessage returns the old "commit_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCommitMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitMessage: %w", err)
	}
	return oldValue.CommitMessage, nil
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (m *TaskMutation) ClearCommitMessage() {
	m.commit_message = nil
	m.clearedFields[task.FieldCommitMessage] = struct{}{}
}

// CommitMessageCleared returns if the "commit_message" field was cleared in this mutation.
func (m *TaskMutation) CommitMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldCommitMessage]
	return ok
}

// ResetCommitMessage resets all changes to the "commit_message" field.
func (m *TaskMutation) ResetCommitMessage() {
	m.commit_message = nil
	delete(m.clearedFields, task.FieldCommitMessage)
}

// SetPrNumber sets the "pr_number" field.
func (m *TaskMutation) SetPrNumber(i int) {
	m.pr_number = &i
	m.addpr_number = nil
}

// PrNumber returns the value of the "pr_number" field in the mutation.
func (m *TaskMutation) PrNumber() (r int, exists bool) {
	v := m.pr_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrNumber returns the old "pr_number" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrNumber: %w", err)
	}
	return oldValue.PrNumber, nil
}

// AddPrNumber adds i to the "pr_number" field.
func (m *TaskMutation) AddPrNumber(i int) {
	if m.addpr_number != nil {
		*m.addpr_number += i
	} else {
		m.addpr_number = &i
	}
}

// AddedPrNumber returns the value that was added to the "pr_number" field in this mutation.
func (m *TaskMutation) AddedPrNumber() (r int, exists bool) {
	v := m.addpr_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrNumber clears the value of the "pr_number" field.
func (m *TaskMutation) ClearPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	m.clearedFields[task.FieldPrNumber] = struct{}{}
}

// PrNumberCleared returns if the "pr_number" field was cleared in this mutation.
func (m *TaskMutation) PrNumberCleared() bool {
	_, ok := m.clearedFields[task.FieldPrNumber]
	return ok
}

// ResetPrNumber resets all changes to the "pr_number" field.
func (m *TaskMutation) ResetPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	delete(m.clearedFields, task.FieldPrNumber)
}

// SetPrURL sets the "pr_url" field.
func (m *TaskMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *TaskMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *TaskMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[task.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *TaskMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[task.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *TaskMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, task.FieldPrURL)
}

// SetLastError sets the "last_error" field.
func (m *TaskMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *TaskMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *TaskMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[task.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *TaskMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *TaskMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, task.FieldLastError)
}

// SetWebhookSource sets the "webhook_source" field.
func (m *TaskMutation) SetWebhookSource(s string) {
	m.webhook_source = &s
}

// WebhookSource returns the value of the "webhook_source" field in the mutation.
func (m *TaskMutation) WebhookSource() (r string, exists bool) {
	v := m.webhook_source
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookSource returns the old "webhook_source" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWebhookSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookSource: %w", err)
	}
	return oldValue.WebhookSource, nil
}

// ClearWebhookSource clears the value of the "webhook_source" field.
func (m *TaskMutation) ClearWebhookSource() {
	m.webhook_source = nil
	m.clearedFields[task.FieldWebhookSource] = struct{}{}
}

// WebhookSourceCleared returns if the "webhook_source" field was cleared in this mutation.
func (m *TaskMutation) WebhookSourceCleared() bool {
	_, ok := m.clearedFields[task.FieldWebhookSource]
	return ok
}

// ResetWebhookSource resets all changes to the "webhook_source" field.
func (m *TaskMutation) ResetWebhookSource() {
	m.webhook_source = nil
	delete(m.clearedFields, task.FieldWebhookSource)
}

// SetWebhookDeliveryID sets the "webhook_delivery_id" field.
func (m *TaskMutation) SetWebhookDeliveryID(s string) {
	m.webhook_delivery_id = &s
}

// WebhookDeliveryID returns the value of the "webhook_delivery_id" field in the mutation.
func (m *TaskMutation) WebhookDeliveryID() (r string, exists bool) {
	v := m.webhook_delivery_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookDeliveryID returns the old "webhook_delivery_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWebhookDeliveryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookDeliveryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookDeliveryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookDeliveryID: %w", err)
	}
	return oldValue.WebhookDeliveryID, nil
}

// ClearWebhookDeliveryID clears the value of the "webhook_delivery_id" field.
func (m *TaskMutation) ClearWebhookDeliveryID() {
	m.webhook_delivery_id = nil
	m.clearedFields[task.FieldWebhookDeliveryID] = struct{}{}
}

// WebhookDeliveryIDCleared returns if the "webhook_delivery_id" field was cleared in this mutation.
func (m *TaskMutation) WebhookDeliveryIDCleared() bool {
	_, ok := m.clearedFields[task.FieldWebhookDeliveryID]
	return ok
}

// ResetWebhookDeliveryID resets all changes to the "webhook_delivery_id" field.
func (m *TaskMutation) ResetWebhookDeliveryID() {
	m.webhook_delivery_id = nil
	delete(m.clearedFields, task.FieldWebhookDeliveryID)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *TaskMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *TaskMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *TaskMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[task.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *TaskMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *TaskMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, task.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *TaskMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *TaskMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *TaskMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[task.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *TaskMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *TaskMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, task.FieldClaimedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[task.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, task.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetMemoryID sets the "memory" edge to the SessionMemory entity by id.
func (m *TaskMutation) SetMemoryID(id uuid.UUID) {
	m.memory = &id
}

// ClearMemory clears the "memory" edge to the SessionMemory entity.
func (m *TaskMutation) ClearMemory() {
	m.clearedmemory = true
}

// MemoryCleared reports if the "memory" edge to the SessionMemory entity was cleared.
func (m *TaskMutation) MemoryCleared() bool {
	return m.clearedmemory
}

// MemoryID returns the "memory" edge ID in the mutation.
func (m *TaskMutation) MemoryID() (id uuid.UUID, exists bool) {
	if m.memory != nil {
		return *m.memory, true
	}
	return
}

// MemoryIDs returns the "memory" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MemoryID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) MemoryIDs() (ids []uuid.UUID) {
	if id := m.memory; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMemory resets all changes to the "memory" edge.
func (m *TaskMutation) ResetMemory() {
	m.memory = nil
	m.clearedmemory = false
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *TaskMutation) AddCheckpointIDs(ids ...uuid.UUID) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *TaskMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *TaskMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *TaskMutation) RemoveCheckpointIDs(ids ...uuid.UUID) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *TaskMutation) RemovedCheckpointsIDs() (ids []uuid.UUID) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *TaskMutation) CheckpointsIDs() (ids []uuid.UUID) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *TaskMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by ids.
func (m *TaskMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the TaskEvent entity.
func (m *TaskMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the TaskEvent entity was cleared.
func (m *TaskMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the TaskEvent entity by IDs.
func (m *TaskMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the TaskEvent entity.
func (m *TaskMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TaskMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TaskMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by ids.
func (m *TaskMutation) AddTraceIDs(ids ...uuid.UUID) {
	if m.traces == nil {
		m.traces = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.traces[ids[i]] = struct{}{}
	}
}

// ClearTraces clears the "traces" edge to the AgentTrace entity.
func (m *TaskMutation) ClearTraces() {
	m.clearedtraces = true
}

// TracesCleared reports if the "traces" edge to the AgentTrace entity was cleared.
func (m *TaskMutation) TracesCleared() bool {
	return m.clearedtraces
}

// RemoveTraceIDs removes the "traces" edge to the AgentTrace entity by IDs.
func (m *TaskMutation) RemoveTraceIDs(ids ...uuid.UUID) {
	if m.removedtraces == nil {
		m.removedtraces = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.traces, ids[i])
		m.removedtraces[ids[i]] = struct{}{}
	}
}

// RemovedTraces returns the removed IDs of the "traces" edge to the AgentTrace entity.
func (m *TaskMutation) RemovedTracesIDs() (ids []uuid.UUID) {
	for id := range m.removedtraces {
		ids = append(ids, id)
	}
	return
}

// TracesIDs returns the "traces" edge IDs in the mutation.
func (m *TaskMutation) TracesIDs() (ids []uuid.UUID) {
	for id := range m.traces {
		ids = append(ids, id)
	}
	return
}

// ResetTraces resets all changes to the "traces" edge.
func (m *TaskMutation) ResetTraces() {
	m.traces = nil
	m.clearedtraces = false
	m.removedtraces = nil
}

// SetParentID sets the "parent" edge to the Task entity by id.
func (m *TaskMutation) SetParentID(id uuid.UUID) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the Task entity.
func (m *TaskMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[task.FieldParentTaskID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Task entity was cleared.
func (m *TaskMutation) ParentCleared() bool {
	return m.ParentTaskIDCleared() || m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *TaskMutation) ParentID() (id uuid.UUID, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) ParentIDs() (ids []uuid.UUID) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *TaskMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the Task entity by ids.
func (m *TaskMutation) AddChildIDs(ids ...uuid.UUID) {
	if m.children == nil {
		m.children = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Task entity.
func (m *TaskMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Task entity was cleared.
func (m *TaskMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Task entity by IDs.
func (m *TaskMutation) RemoveChildIDs(ids ...uuid.UUID) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Task entity.
func (m *TaskMutation) RemovedChildrenIDs() (ids []uuid.UUID) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *TaskMutation) ChildrenIDs() (ids []uuid.UUID) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *TaskMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 33)
	if m.repo_owner != nil {
		fields = append(fields, task.FieldRepoOwner)
	}
	if m.repo_name != nil {
		fields = append(fields, task.FieldRepoName)
	}
	if m.issue_number != nil {
		fields = append(fields, task.FieldIssueNumber)
	}
	if m.issue_title != nil {
		fields = append(fields, task.FieldIssueTitle)
	}
	if m.issue_body != nil {
		fields = append(fields, task.FieldIssueBody)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.attempt_count != nil {
		fields = append(fields, task.FieldAttemptCount)
	}
	if m.total_attempts != nil {
		fields = append(fields, task.FieldTotalAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	if m.escalation_level != nil {
		fields = append(fields, task.FieldEscalationLevel)
	}
	if m.parent != nil {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.subtask_index != nil {
		fields = append(fields, task.FieldSubtaskIndex)
	}
	if m.is_orchestrated != nil {
		fields = append(fields, task.FieldIsOrchestrated)
	}
	if m.definition_of_done != nil {
		fields = append(fields, task.FieldDefinitionOfDone)
	}
	if m.plan != nil {
		fields = append(fields, task.FieldPlan)
	}
	if m.target_files != nil {
		fields = append(fields, task.FieldTargetFiles)
	}
	if m.estimated_complexity != nil {
		fields = append(fields, task.FieldEstimatedComplexity)
	}
	if m.estimated_effort != nil {
		fields = append(fields, task.FieldEstimatedEffort)
	}
	if m.branch_name != nil {
		fields = append(fields, task.FieldBranchName)
	}
	if m.current_diff != nil {
		fields = append(fields, task.FieldCurrentDiff)
	}
	if m.commit_message != nil {
		fields = append(fields, task.FieldCommitMessage)
	}
	if m.pr_number != nil {
		fields = append(fields, task.FieldPrNumber)
	}
	if m.pr_url != nil {
		fields = append(fields, task.FieldPrURL)
	}
	if m.last_error != nil {
		fields = append(fields, task.FieldLastError)
	}
	if m.webhook_source != nil {
		fields = append(fields, task.FieldWebhookSource)
	}
	if m.webhook_delivery_id != nil {
		fields = append(fields, task.FieldWebhookDeliveryID)
	}
	if m.claimed_by != nil {
		fields = append(fields, task.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRepoOwner:
		return m.RepoOwner()
	case task.FieldRepoName:
		return m.RepoName()
	case task.FieldIssueNumber:
		return m.IssueNumber()
	case task.FieldIssueTitle:
		return m.IssueTitle()
	case task.FieldIssueBody:
		return m.IssueBody()
	case task.FieldStatus:
		return m.Status()
	case task.FieldAttemptCount:
		return m.AttemptCount()
	case task.FieldTotalAttempts:
		return m.TotalAttempts()
	case task.FieldMaxAttempts:
		return m.MaxAttempts()
	case task.FieldEscalationLevel:
		return m.EscalationLevel()
	case task.FieldParentTaskID:
		return m.ParentTaskID()
	case task.FieldSubtaskIndex:
		return m.SubtaskIndex()
	case task.FieldIsOrchestrated:
		return m.IsOrchestrated()
	case task.FieldDefinitionOfDone:
		return m.DefinitionOfDone()
	case task.FieldPlan:
		return m.Plan()
	case task.FieldTargetFiles:
		return m.TargetFiles()
	case task.FieldEstimatedComplexity:
		return m.EstimatedComplexity()
	case task.FieldEstimatedEffort:
		return m.EstimatedEffort()
	case task.FieldBranchName:
		return m.BranchName()
	case task.FieldCurrentDiff:
		return m.CurrentDiff()
	case task.FieldCommitMessage:
		return m.CommitMessage()
	case task.FieldPrNumber:
		return m.PrNumber()
	case task.FieldPrURL:
		return m.PrURL()
	case task.FieldLastError:
		return m.LastError()
	case task.FieldWebhookSource:
		return m.WebhookSource()
	case task.FieldWebhookDeliveryID:
		return m.WebhookDeliveryID()
	case task.FieldClaimedBy:
		return m.ClaimedBy()
	case task.FieldClaimedAt:
		return m.ClaimedAt()
	case task.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldRepoOwner:
		return m.OldRepoOwner(ctx)
	case task.FieldRepoName:
		return m.OldRepoName(ctx)
	case task.FieldIssueNumber:
		return m.OldIssueNumber(ctx)
	case task.FieldIssueTitle:
		return m.OldIssueTitle(ctx)
	case task.FieldIssueBody:
		return m.OldIssueBody(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case task.FieldTotalAttempts:
		return m.OldTotalAttempts(ctx)
	case task.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case task.FieldEscalationLevel:
		return m.OldEscalationLevel(ctx)
	case task.FieldParentTaskID:
		return m.OldParentTaskID(ctx)
	case task.FieldSubtaskIndex:
		return m.OldSubtaskIndex(ctx)
	case task.FieldIsOrchestrated:
		return m.OldIsOrchestrated(ctx)
	case task.FieldDefinitionOfDone:
		return m.OldDefinitionOfDone(ctx)
	case task.FieldPlan:
		return m.OldPlan(ctx)
	case task.FieldTargetFiles:
		return m.OldTargetFiles(ctx)
	case task.FieldEstimatedComplexity:
		return m.OldEstimatedComplexity(ctx)
	case task.FieldEstimatedEffort:
		return m.OldEstimatedEffort(ctx)
	case task.FieldBranchName:
		return m.OldBranchName(ctx)
	case task.FieldCurrentDiff:
		return m.OldCurrentDiff(ctx)
	case task.FieldCommitMessage:
		return m.OldCommitMessage(ctx)
	case task.FieldPrNumber:
		return m.OldPrNumber(ctx)
	case task.FieldPrURL:
		return m.OldPrURL(ctx)
	case task.FieldLastError:
		return m.OldLastError(ctx)
	case task.FieldWebhookSource:
		return m.OldWebhookSource(ctx)
	case task.FieldWebhookDeliveryID:
		return m.OldWebhookDeliveryID(ctx)
	case task.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case task.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case task.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldRepoOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoOwner(v)
		return nil
	case task.FieldRepoName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoName(v)
		return nil
	case task.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueNumber(v)
		return nil
	case task.FieldIssueTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueTitle(v)
		return nil
	case task.FieldIssueBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueBody(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(models.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case task.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempts(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case task.FieldEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationLevel(v)
		return nil
	case task.FieldParentTaskID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTaskID(v)
		return nil
	case task.FieldSubtaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtaskIndex(v)
		return nil
	case task.FieldIsOrchestrated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOrchestrated(v)
		return nil
	case task.FieldDefinitionOfDone:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinitionOfDone(v)
		return nil
	case task.FieldPlan:
		v, ok := value.([]models.PlanStep)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case task.FieldTargetFiles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetFiles(v)
		return nil
	case task.FieldEstimatedComplexity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedComplexity(v)
		return nil
	case task.FieldEstimatedEffort:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedEffort(v)
		return nil
	case task.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case task.FieldCurrentDiff:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentDiff(v)
		return nil
	case task.FieldCommitMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitMessage(v)
		return nil
	case task.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrNumber(v)
		return nil
	case task.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case task.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case task.FieldWebhookSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookSource(v)
		return nil
	case task.FieldWebhookDeliveryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookDeliveryID(v)
		return nil
	case task.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case task.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case task.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addissue_number != nil {
		fields = append(fields, task.FieldIssueNumber)
	}
	if m.addattempt_count != nil {
		fields = append(fields, task.FieldAttemptCount)
	}
	if m.addtotal_attempts != nil {
		fields = append(fields, task.FieldTotalAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	if m.addescalation_level != nil {
		fields = append(fields, task.FieldEscalationLevel)
	}
	if m.addsubtask_index != nil {
		fields = append(fields, task.FieldSubtaskIndex)
	}
	if m.addpr_number != nil {
		fields = append(fields, task.FieldPrNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldIssueNumber:
		return m.AddedIssueNumber()
	case task.FieldAttemptCount:
		return m.AddedAttemptCount()
	case task.FieldTotalAttempts:
		return m.AddedTotalAttempts()
	case task.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case task.FieldEscalationLevel:
		return m.AddedEscalationLevel()
	case task.FieldSubtaskIndex:
		return m.AddedSubtaskIndex()
	case task.FieldPrNumber:
		return m.AddedPrNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIssueNumber(v)
		return nil
	case task.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	case task.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempts(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case task.FieldEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEscalationLevel(v)
		return nil
	case task.FieldSubtaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtaskIndex(v)
		return nil
	case task.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldIssueBody) {
		fields = append(fields, task.FieldIssueBody)
	}
	if m.FieldCleared(task.FieldParentTaskID) {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.FieldCleared(task.FieldSubtaskIndex) {
		fields = append(fields, task.FieldSubtaskIndex)
	}
	if m.FieldCleared(task.FieldDefinitionOfDone) {
		fields = append(fields, task.FieldDefinitionOfDone)
	}
	if m.FieldCleared(task.FieldPlan) {
		fields = append(fields, task.FieldPlan)
	}
	if m.FieldCleared(task.FieldTargetFiles) {
		fields = append(fields, task.FieldTargetFiles)
	}
	if m.FieldCleared(task.FieldEstimatedComplexity) {
		fields = append(fields, task.FieldEstimatedComplexity)
	}
	if m.FieldCleared(task.FieldEstimatedEffort) {
		fields = append(fields, task.FieldEstimatedEffort)
	}
	if m.FieldCleared(task.FieldBranchName) {
		fields = append(fields, task.FieldBranchName)
	}
	if m.FieldCleared(task.FieldCurrentDiff) {
		fields = append(fields, task.FieldCurrentDiff)
	}
	if m.FieldCleared(task.FieldCommitMessage) {
		fields = append(fields, task.FieldCommitMessage)
	}
	if m.FieldCleared(task.FieldPrNumber) {
		fields = append(fields, task.FieldPrNumber)
	}
	if m.FieldCleared(task.FieldPrURL) {
		fields = append(fields, task.FieldPrURL)
	}
	if m.FieldCleared(task.FieldLastError) {
		fields = append(fields, task.FieldLastError)
	}
	if m.FieldCleared(task.FieldWebhookSource) {
		fields = append(fields, task.FieldWebhookSource)
	}
	if m.FieldCleared(task.FieldWebhookDeliveryID) {
		fields = append(fields, task.FieldWebhookDeliveryID)
	}
	if m.FieldCleared(task.FieldClaimedBy) {
		fields = append(fields, task.FieldClaimedBy)
	}
	if m.FieldCleared(task.FieldClaimedAt) {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.FieldCleared(task.FieldLastHeartbeatAt) {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldIssueBody:
		m.ClearIssueBody()
		return nil
	case task.FieldParentTaskID:
		m.ClearParentTaskID()
		return nil
	case task.FieldSubtaskIndex:
		m.ClearSubtaskIndex()
		return nil
	case task.FieldDefinitionOfDone:
		m.ClearDefinitionOfDone()
		return nil
	case task.FieldPlan:
		m.ClearPlan()
		return nil
	case task.FieldTargetFiles:
		m.ClearTargetFiles()
		return nil
	case task.FieldEstimatedComplexity:
		m.ClearEstimatedComplexity()
		return nil
	case task.FieldEstimatedEffort:
		m.ClearEstimatedEffort()
		return nil
	case task.FieldBranchName:
		m.ClearBranchName()
		return nil
	case task.FieldCurrentDiff:
		m.ClearCurrentDiff()
		return nil
	case task.FieldCommitMessage:
		m.ClearCommitMessage()
		return nil
	case task.FieldPrNumber:
		m.ClearPrNumber()
		return nil
	case task.FieldPrURL:
		m.ClearPrURL()
		return nil
	case task.FieldLastError:
		m.ClearLastError()
		return nil
	case task.FieldWebhookSource:
		m.ClearWebhookSource()
		return nil
	case task.FieldWebhookDeliveryID:
		m.ClearWebhookDeliveryID()
		return nil
	case task.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case task.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldRepoOwner:
		m.ResetRepoOwner()
		return nil
	case task.FieldRepoName:
		m.ResetRepoName()
		return nil
	case task.FieldIssueNumber:
		m.ResetIssueNumber()
		return nil
	case task.FieldIssueTitle:
		m.ResetIssueTitle()
		return nil
	case task.FieldIssueBody:
		m.ResetIssueBody()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case task.FieldTotalAttempts:
		m.ResetTotalAttempts()
		return nil
	case task.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case task.FieldEscalationLevel:
		m.ResetEscalationLevel()
		return nil
	case task.FieldParentTaskID:
		m.ResetParentTaskID()
		return nil
	case task.FieldSubtaskIndex:
		m.ResetSubtaskIndex()
		return nil
	case task.FieldIsOrchestrated:
		m.ResetIsOrchestrated()
		return nil
	case task.FieldDefinitionOfDone:
		m.ResetDefinitionOfDone()
		return nil
	case task.FieldPlan:
		m.ResetPlan()
		return nil
	case task.FieldTargetFiles:
		m.ResetTargetFiles()
		return nil
	case task.FieldEstimatedComplexity:
		m.ResetEstimatedComplexity()
		return nil
	case task.FieldEstimatedEffort:
		m.ResetEstimatedEffort()
		return nil
	case task.FieldBranchName:
		m.ResetBranchName()
		return nil
	case task.FieldCurrentDiff:
		m.ResetCurrentDiff()
		return nil
	case task.FieldCommitMessage:
		m.ResetCommitMessage()
		return nil
	case task.FieldPrNumber:
		m.ResetPrNumber()
		return nil
	case task.FieldPrURL:
		m.ResetPrURL()
		return nil
	case task.FieldLastError:
		m.ResetLastError()
		return nil
	case task.FieldWebhookSource:
		m.ResetWebhookSource()
		return nil
	case task.FieldWebhookDeliveryID:
		m.ResetWebhookDeliveryID()
		return nil
	case task.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case task.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.memory != nil {
		edges = append(edges, task.EdgeMemory)
	}
	if m.checkpoints != nil {
		edges = append(edges, task.EdgeCheckpoints)
	}
	if m.events != nil {
		edges = append(edges, task.EdgeEvents)
	}
	if m.traces != nil {
		edges = append(edges, task.EdgeTraces)
	}
	if m.parent != nil {
		edges = append(edges, task.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, task.EdgeChildren)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeMemory:
		if id := m.memory; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.traces))
		for id := range m.traces {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedcheckpoints != nil {
		edges = append(edges, task.EdgeCheckpoints)
	}
	if m.removedevents != nil {
		edges = append(edges, task.EdgeEvents)
	}
	if m.removedtraces != nil {
		edges = append(edges, task.EdgeTraces)
	}
	if m.removedchildren != nil {
		edges = append(edges, task.EdgeChildren)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.removedtraces))
		for id := range m.removedtraces {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedmemory {
		edges = append(edges, task.EdgeMemory)
	}
	if m.clearedcheckpoints {
		edges = append(edges, task.EdgeCheckpoints)
	}
	if m.clearedevents {
		edges = append(edges, task.EdgeEvents)
	}
	if m.clearedtraces {
		edges = append(edges, task.EdgeTraces)
	}
	if m.clearedparent {
		edges = append(edges, task.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, task.EdgeChildren)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeMemory:
		return m.clearedmemory
	case task.EdgeCheckpoints:
		return m.clearedcheckpoints
	case task.EdgeEvents:
		return m.clearedevents
	case task.EdgeTraces:
		return m.clearedtraces
	case task.EdgeParent:
		return m.clearedparent
	case task.EdgeChildren:
		return m.clearedchildren
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeMemory:
		m.ClearMemory()
		return nil
	case task.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeMemory:
		m.ResetMemory()
		return nil
	case task.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case task.EdgeEvents:
		m.ResetEvents()
		return nil
	case task.EdgeTraces:
		m.ResetTraces()
		return nil
	case task.EdgeParent:
		m.ResetParent()
		return nil
	case task.EdgeChildren:
		m.ResetChildren()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskEventMutation represents an operation that mutates the TaskEvent nodes in the graph.
type TaskEventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	channel       *string
	_type         *string
	payload       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *uuid.UUID
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*TaskEvent, error)
	predicates    []predicate.TaskEvent
}

var _ ent.Mutation = (*TaskEventMutation)(nil)

// taskeventOption allows management of the mutation configuration using functional options.
type taskeventOption func(*TaskEventMutation)

// newTaskEventMutation creates new mutation for the TaskEvent entity.
func newTaskEventMutation(c config, op Op, opts ...taskeventOption) *TaskEventMutation {
	m := &TaskEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskEventID sets the ID field of the mutation.
func withTaskEventID(id int64) taskeventOption {
	return func(m *TaskEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskEvent
		)
		m.oldValue = func(ctx context.Context) (*TaskEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskEvent sets the old TaskEvent of the mutation.
func withTaskEvent(node *TaskEvent) taskeventOption {
	return func(m *TaskEventMutation) {
		m.oldValue = func(context.Context) (*TaskEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskEvent entities.
func (m *TaskEventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskEventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskEventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskEventMutation) SetTaskID(u uuid.UUID) {
	m.task = &u
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskEventMutation) TaskID() (r uuid.UUID, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTaskID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskEventMutation) ResetTaskID() {
	m.task = nil
}

// SetChannel sets the "channel" field.
func (m *TaskEventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *TaskEventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *TaskEventMutation) ResetChannel() {
	m.channel = nil
}

// SetType sets the "type" field.
func (m *TaskEventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *TaskEventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *TaskEventMutation) ResetType() {
	m._type = nil
}

// SetPayload sets the "payload" field.
func (m *TaskEventMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TaskEventMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *TaskEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskEventMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskevent.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskEventMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskEventMutation) TaskIDs() (ids []uuid.UUID) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskEventMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskEventMutation builder.
func (m *TaskEventMutation) Where(ps ...predicate.TaskEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskEvent).
func (m *TaskEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task != nil {
		fields = append(fields, taskevent.FieldTaskID)
	}
	if m.channel != nil {
		fields = append(fields, taskevent.FieldChannel)
	}
	if m._type != nil {
		fields = append(fields, taskevent.FieldType)
	}
	if m.payload != nil {
		fields = append(fields, taskevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, taskevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldTaskID:
		return m.TaskID()
	case taskevent.FieldChannel:
		return m.Channel()
	case taskevent.FieldType:
		return m.GetType()
	case taskevent.FieldPayload:
		return m.Payload()
	case taskevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskevent.FieldChannel:
		return m.OldChannel(ctx)
	case taskevent.FieldType:
		return m.OldType(ctx)
	case taskevent.FieldPayload:
		return m.OldPayload(ctx)
	case taskevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldTaskID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskevent.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case taskevent.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case taskevent.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case taskevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskEventMutation) ResetField(name string) error {
	switch name {
	case taskevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskevent.FieldChannel:
		m.ResetChannel()
		return nil
	case taskevent.FieldType:
		m.ResetType()
		return nil
	case taskevent.FieldPayload:
		m.ResetPayload()
		return nil
	case taskevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskevent.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskevent.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskevent.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskEventMutation) EdgeCleared(name string) bool {
	switch name {
	case taskevent.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskEventMutation) ClearEdge(name string) error {
	switch name {
	case taskevent.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskEventMutation) ResetEdge(name string) error {
	switch name {
	case taskevent.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent edge %s", name)
}

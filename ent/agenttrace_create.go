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
	"github.com/patchpilot/patchpilot/ent/task"
)

// AgentTraceCreate is the builder for creating a AgentTrace entity.
type AgentTraceCreate struct {
	config
	mutation *AgentTraceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *AgentTraceCreate) SetTaskID(v uuid.UUID) *AgentTraceCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetParentTraceID sets the "parent_trace_id" field.
func (_c *AgentTraceCreate) SetParentTraceID(v uuid.UUID) *AgentTraceCreate {
	_c.mutation.SetParentTraceID(v)
	return _c
}

// SetNillableParentTraceID sets the "parent_trace_id" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableParentTraceID(v *uuid.UUID) *AgentTraceCreate {
	if v != nil {
		_c.SetParentTraceID(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *AgentTraceCreate) SetStage(v string) *AgentTraceCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AgentTraceCreate) SetModel(v string) *AgentTraceCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *AgentTraceCreate) SetPosition(v string) *AgentTraceCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentTraceCreate) SetStatus(v agenttrace.Status) *AgentTraceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableStatus(v *agenttrace.Status) *AgentTraceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *AgentTraceCreate) SetInputTokens(v int) *AgentTraceCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableInputTokens(v *int) *AgentTraceCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *AgentTraceCreate) SetOutputTokens(v int) *AgentTraceCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableOutputTokens(v *int) *AgentTraceCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *AgentTraceCreate) SetCostUsd(v float64) *AgentTraceCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableCostUsd(v *float64) *AgentTraceCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetOutputSummary sets the "output_summary" field.
func (_c *AgentTraceCreate) SetOutputSummary(v string) *AgentTraceCreate {
	_c.mutation.SetOutputSummary(v)
	return _c
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableOutputSummary(v *string) *AgentTraceCreate {
	if v != nil {
		_c.SetOutputSummary(*v)
	}
	return _c
}

// SetGateName sets the "gate_name" field.
func (_c *AgentTraceCreate) SetGateName(v string) *AgentTraceCreate {
	_c.mutation.SetGateName(v)
	return _c
}

// SetNillableGateName sets the "gate_name" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableGateName(v *string) *AgentTraceCreate {
	if v != nil {
		_c.SetGateName(*v)
	}
	return _c
}

// SetGatePassed sets the "gate_passed" field.
func (_c *AgentTraceCreate) SetGatePassed(v bool) *AgentTraceCreate {
	_c.mutation.SetGatePassed(v)
	return _c
}

// SetNillableGatePassed sets the "gate_passed" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableGatePassed(v *bool) *AgentTraceCreate {
	if v != nil {
		_c.SetGatePassed(*v)
	}
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *AgentTraceCreate) SetErrorType(v string) *AgentTraceCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableErrorType(v *string) *AgentTraceCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentTraceCreate) SetErrorMessage(v string) *AgentTraceCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableErrorMessage(v *string) *AgentTraceCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentTraceCreate) SetStartedAt(v time.Time) *AgentTraceCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableStartedAt(v *time.Time) *AgentTraceCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *AgentTraceCreate) SetEndedAt(v time.Time) *AgentTraceCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableEndedAt(v *time.Time) *AgentTraceCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentTraceCreate) SetID(v uuid.UUID) *AgentTraceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableID(v *uuid.UUID) *AgentTraceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *AgentTraceCreate) SetTask(v *Task) *AgentTraceCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the AgentTraceMutation object of the builder.
func (_c *AgentTraceCreate) Mutation() *AgentTraceMutation {
	return _c.mutation
}

// Save creates the AgentTrace in the database.
func (_c *AgentTraceCreate) Save(ctx context.Context) (*AgentTrace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentTraceCreate) SaveX(ctx context.Context) *AgentTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentTraceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentTraceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentTraceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agenttrace.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := agenttrace.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := agenttrace.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := agenttrace.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := agenttrace.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := agenttrace.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentTraceCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "AgentTrace.task_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "AgentTrace.stage"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "AgentTrace.model"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "AgentTrace.position"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentTrace.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agenttrace.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentTrace.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "AgentTrace.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "AgentTrace.output_tokens"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "AgentTrace.cost_usd"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AgentTrace.started_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "AgentTrace.task"`)}
	}
	return nil
}

func (_c *AgentTraceCreate) sqlSave(ctx context.Context) (*AgentTrace, error) {
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

func (_c *AgentTraceCreate) createSpec() (*AgentTrace, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentTrace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agenttrace.Table, sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ParentTraceID(); ok {
		_spec.SetField(agenttrace.FieldParentTraceID, field.TypeUUID, value)
		_node.ParentTraceID = &value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(agenttrace.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(agenttrace.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(agenttrace.FieldPosition, field.TypeString, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agenttrace.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(agenttrace.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(agenttrace.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(agenttrace.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.OutputSummary(); ok {
		_spec.SetField(agenttrace.FieldOutputSummary, field.TypeString, value)
		_node.OutputSummary = value
	}
	if value, ok := _c.mutation.GateName(); ok {
		_spec.SetField(agenttrace.FieldGateName, field.TypeString, value)
		_node.GateName = value
	}
	if value, ok := _c.mutation.GatePassed(); ok {
		_spec.SetField(agenttrace.FieldGatePassed, field.TypeBool, value)
		_node.GatePassed = &value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(agenttrace.FieldErrorType, field.TypeString, value)
		_node.ErrorType = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agenttrace.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agenttrace.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(agenttrace.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenttrace.TaskTable,
			Columns: []string{agenttrace.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentTrace.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentTraceUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentTraceCreate) OnConflict(opts ...sql.ConflictOption) *AgentTraceUpsertOne {
	_c.conflict = opts
	return &AgentTraceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentTraceCreate) OnConflictColumns(columns ...string) *AgentTraceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentTraceUpsertOne{
		create: _c,
	}
}

type (
	// AgentTraceUpsertOne is the builder for "upsert"-ing
	//  one AgentTrace node.
	AgentTraceUpsertOne struct {
		create *AgentTraceCreate
	}

	// AgentTraceUpsert is the "OnConflict" setter.
	AgentTraceUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskID sets the "task_id" field.
func (u *AgentTraceUpsert) SetTaskID(v uuid.UUID) *AgentTraceUpsert {
	u.Set(agenttrace.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateTaskID() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldTaskID)
	return u
}

// SetParentTraceID sets the "parent_trace_id" field.
func (u *AgentTraceUpsert) SetParentTraceID(v uuid.UUID) *AgentTraceUpsert {
	u.Set(agenttrace.FieldParentTraceID, v)
	return u
}

// UpdateParentTraceID sets the "parent_trace_id" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateParentTraceID() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldParentTraceID)
	return u
}

// ClearParentTraceID clears the value of the "parent_trace_id" field.
func (u *AgentTraceUpsert) ClearParentTraceID() *AgentTraceUpsert {
	u.SetNull(agenttrace.FieldParentTraceID)
	return u
}

// SetStage sets the "stage" field.
func (u *AgentTraceUpsert) SetStage(v string) *AgentTraceUpsert {
	u.Set(agenttrace.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateStage() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldStage)
	return u
}

// SetModel sets the "model" field.
func (u *AgentTraceUpsert) SetModel(v string) *AgentTraceUpsert {
	u.Set(agenttrace.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateModel() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldModel)
	return u
}

// SetPosition sets the "position" field.
func (u *AgentTraceUpsert) SetPosition(v string) *AgentTraceUpsert {
	u.Set(agenttrace.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdatePosition() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldPosition)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentTraceUpsert) SetStatus(v agenttrace.Status) *AgentTraceUpsert {
	u.Set(agenttrace.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateStatus() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldStatus)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *AgentTraceUpsert) SetInputTokens(v int) *AgentTraceUpsert {
	u.Set(agenttrace.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateInputTokens() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AgentTraceUpsert) AddInputTokens(v int) *AgentTraceUpsert {
	u.Add(agenttrace.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AgentTraceUpsert) SetOutputTokens(v int) *AgentTraceUpsert {
	u.Set(agenttrace.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateOutputTokens() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AgentTraceUpsert) AddOutputTokens(v int) *AgentTraceUpsert {
	u.Add(agenttrace.FieldOutputTokens, v)
	return u
}

// SetCostUsd sets the "cost_usd" field.
func (u *AgentTraceUpsert) SetCostUsd(v float64) *AgentTraceUpsert {
	u.Set(agenttrace.FieldCostUsd, v)
	return u
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateCostUsd() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldCostUsd)
	return u
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *AgentTraceUpsert) AddCostUsd(v float64) *AgentTraceUpsert {
	u.Add(agenttrace.FieldCostUsd, v)
	return u
}

// SetOutputSummary sets the "output_summary" field.
func (u *AgentTraceUpsert) SetOutputSummary(v string) *AgentTraceUpsert {
	u.Set(agenttrace.FieldOutputSummary, v)
	return u
}

// UpdateOutputSummary sets the "output_summary" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateOutputSummary() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldOutputSummary)
	return u
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (u *AgentTraceUpsert) ClearOutputSummary() *AgentTraceUpsert {
	u.SetNull(agenttrace.FieldOutputSummary)
	return u
}

// SetGateName sets the "gate_name" field.
func (u *AgentTraceUpsert) SetGateName(v string) *AgentTraceUpsert {
	u.Set(agenttrace.FieldGateName, v)
	return u
}

// UpdateGateName sets the "gate_name" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateGateName() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldGateName)
	return u
}

// ClearGateName clears the value of the "gate_name" field.
func (u *AgentTraceUpsert) ClearGateName() *AgentTraceUpsert {
	u.SetNull(agenttrace.FieldGateName)
	return u
}

// SetGatePassed sets the "gate_passed" field.
func (u *AgentTraceUpsert) SetGatePassed(v bool) *AgentTraceUpsert {
	u.Set(agenttrace.FieldGatePassed, v)
	return u
}

// UpdateGatePassed sets the "gate_passed" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateGatePassed() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldGatePassed)
	return u
}

// ClearGatePassed clears the value of the "gate_passed" field.
func (u *AgentTraceUpsert) ClearGatePassed() *AgentTraceUpsert {
	u.SetNull(agenttrace.FieldGatePassed)
	return u
}

// SetErrorType sets the "error_type" field.
func (u *AgentTraceUpsert) SetErrorType(v string) *AgentTraceUpsert {
	u.Set(agenttrace.FieldErrorType, v)
	return u
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateErrorType() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldErrorType)
	return u
}

// ClearErrorType clears the value of the "error_type" field.
func (u *AgentTraceUpsert) ClearErrorType() *AgentTraceUpsert {
	u.SetNull(agenttrace.FieldErrorType)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentTraceUpsert) SetErrorMessage(v string) *AgentTraceUpsert {
	u.Set(agenttrace.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateErrorMessage() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentTraceUpsert) ClearErrorMessage() *AgentTraceUpsert {
	u.SetNull(agenttrace.FieldErrorMessage)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *AgentTraceUpsert) SetEndedAt(v time.Time) *AgentTraceUpsert {
	u.Set(agenttrace.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateEndedAt() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *AgentTraceUpsert) ClearEndedAt() *AgentTraceUpsert {
	u.SetNull(agenttrace.FieldEndedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agenttrace.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentTraceUpsertOne) UpdateNewValues() *AgentTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agenttrace.FieldID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(agenttrace.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentTraceUpsertOne) Ignore() *AgentTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentTraceUpsertOne) DoNothing() *AgentTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentTraceCreate.OnConflict
// documentation for more info.
func (u *AgentTraceUpsertOne) Update(set func(*AgentTraceUpsert)) *AgentTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentTraceUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *AgentTraceUpsertOne) SetTaskID(v uuid.UUID) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateTaskID() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateTaskID()
	})
}

// SetParentTraceID sets the "parent_trace_id" field.
func (u *AgentTraceUpsertOne) SetParentTraceID(v uuid.UUID) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetParentTraceID(v)
	})
}

// UpdateParentTraceID sets the "parent_trace_id" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateParentTraceID() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateParentTraceID()
	})
}

// ClearParentTraceID clears the value of the "parent_trace_id" field.
func (u *AgentTraceUpsertOne) ClearParentTraceID() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearParentTraceID()
	})
}

// SetStage sets the "stage" field.
func (u *AgentTraceUpsertOne) SetStage(v string) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateStage() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateStage()
	})
}

// SetModel sets the "model" field.
func (u *AgentTraceUpsertOne) SetModel(v string) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateModel() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateModel()
	})
}

// SetPosition sets the "position" field.
func (u *AgentTraceUpsertOne) SetPosition(v string) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdatePosition() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdatePosition()
	})
}

// SetStatus sets the "status" field.
func (u *AgentTraceUpsertOne) SetStatus(v agenttrace.Status) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateStatus() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateStatus()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *AgentTraceUpsertOne) SetInputTokens(v int) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AgentTraceUpsertOne) AddInputTokens(v int) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateInputTokens() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AgentTraceUpsertOne) SetOutputTokens(v int) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AgentTraceUpsertOne) AddOutputTokens(v int) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateOutputTokens() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *AgentTraceUpsertOne) SetCostUsd(v float64) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *AgentTraceUpsertOne) AddCostUsd(v float64) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateCostUsd() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateCostUsd()
	})
}

// SetOutputSummary sets the "output_summary" field.
func (u *AgentTraceUpsertOne) SetOutputSummary(v string) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetOutputSummary(v)
	})
}

// UpdateOutputSummary sets the "output_summary" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateOutputSummary() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateOutputSummary()
	})
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (u *AgentTraceUpsertOne) ClearOutputSummary() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearOutputSummary()
	})
}

// SetGateName sets the "gate_name" field.
func (u *AgentTraceUpsertOne) SetGateName(v string) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetGateName(v)
	})
}

// UpdateGateName sets the "gate_name" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateGateName() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateGateName()
	})
}

// ClearGateName clears the value of the "gate_name" field.
func (u *AgentTraceUpsertOne) ClearGateName() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearGateName()
	})
}

// SetGatePassed sets the "gate_passed" field.
func (u *AgentTraceUpsertOne) SetGatePassed(v bool) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetGatePassed(v)
	})
}

// UpdateGatePassed sets the "gate_passed" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateGatePassed() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateGatePassed()
	})
}

// ClearGatePassed clears the value of the "gate_passed" field.
func (u *AgentTraceUpsertOne) ClearGatePassed() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearGatePassed()
	})
}

// SetErrorType sets the "error_type" field.
func (u *AgentTraceUpsertOne) SetErrorType(v string) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetErrorType(v)
	})
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateErrorType() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateErrorType()
	})
}

// ClearErrorType clears the value of the "error_type" field.
func (u *AgentTraceUpsertOne) ClearErrorType() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearErrorType()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentTraceUpsertOne) SetErrorMessage(v string) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateErrorMessage() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentTraceUpsertOne) ClearErrorMessage() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearErrorMessage()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *AgentTraceUpsertOne) SetEndedAt(v time.Time) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateEndedAt() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *AgentTraceUpsertOne) ClearEndedAt() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearEndedAt()
	})
}

// Exec executes the query.
func (u *AgentTraceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentTraceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentTraceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentTraceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentTraceUpsertOne.ID is not supported by MySQL driver. Use AgentTraceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentTraceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentTraceCreateBulk is the builder for creating many AgentTrace entities in bulk.
type AgentTraceCreateBulk struct {
	config
	err      error
	builders []*AgentTraceCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentTrace entities in the database.
func (_c *AgentTraceCreateBulk) Save(ctx context.Context) ([]*AgentTrace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentTrace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentTraceMutation)
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
func (_c *AgentTraceCreateBulk) SaveX(ctx context.Context) []*AgentTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentTraceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentTraceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentTrace.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentTraceUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentTraceCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentTraceUpsertBulk {
	_c.conflict = opts
	return &AgentTraceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentTraceCreateBulk) OnConflictColumns(columns ...string) *AgentTraceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentTraceUpsertBulk{
		create: _c,
	}
}

// AgentTraceUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentTrace nodes.
type AgentTraceUpsertBulk struct {
	create *AgentTraceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agenttrace.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentTraceUpsertBulk) UpdateNewValues() *AgentTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agenttrace.FieldID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(agenttrace.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentTraceUpsertBulk) Ignore() *AgentTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentTraceUpsertBulk) DoNothing() *AgentTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentTraceCreateBulk.OnConflict
// documentation for more info.
func (u *AgentTraceUpsertBulk) Update(set func(*AgentTraceUpsert)) *AgentTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentTraceUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *AgentTraceUpsertBulk) SetTaskID(v uuid.UUID) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateTaskID() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateTaskID()
	})
}

// SetParentTraceID sets the "parent_trace_id" field.
func (u *AgentTraceUpsertBulk) SetParentTraceID(v uuid.UUID) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetParentTraceID(v)
	})
}

// UpdateParentTraceID sets the "parent_trace_id" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateParentTraceID() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateParentTraceID()
	})
}

// ClearParentTraceID clears the value of the "parent_trace_id" field.
func (u *AgentTraceUpsertBulk) ClearParentTraceID() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearParentTraceID()
	})
}

// SetStage sets the "stage" field.
func (u *AgentTraceUpsertBulk) SetStage(v string) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateStage() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateStage()
	})
}

// SetModel sets the "model" field.
func (u *AgentTraceUpsertBulk) SetModel(v string) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateModel() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateModel()
	})
}

// SetPosition sets the "position" field.
func (u *AgentTraceUpsertBulk) SetPosition(v string) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdatePosition() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdatePosition()
	})
}

// SetStatus sets the "status" field.
func (u *AgentTraceUpsertBulk) SetStatus(v agenttrace.Status) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateStatus() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateStatus()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *AgentTraceUpsertBulk) SetInputTokens(v int) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AgentTraceUpsertBulk) AddInputTokens(v int) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateInputTokens() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AgentTraceUpsertBulk) SetOutputTokens(v int) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AgentTraceUpsertBulk) AddOutputTokens(v int) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateOutputTokens() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *AgentTraceUpsertBulk) SetCostUsd(v float64) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *AgentTraceUpsertBulk) AddCostUsd(v float64) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateCostUsd() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateCostUsd()
	})
}

// SetOutputSummary sets the "output_summary" field.
func (u *AgentTraceUpsertBulk) SetOutputSummary(v string) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetOutputSummary(v)
	})
}

// UpdateOutputSummary sets the "output_summary" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateOutputSummary() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateOutputSummary()
	})
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (u *AgentTraceUpsertBulk) ClearOutputSummary() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearOutputSummary()
	})
}

// SetGateName sets the "gate_name" field.
func (u *AgentTraceUpsertBulk) SetGateName(v string) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetGateName(v)
	})
}

// UpdateGateName sets the "gate_name" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateGateName() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateGateName()
	})
}

// ClearGateName clears the value of the "gate_name" field.
func (u *AgentTraceUpsertBulk) ClearGateName() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearGateName()
	})
}

// SetGatePassed sets the "gate_passed" field.
func (u *AgentTraceUpsertBulk) SetGatePassed(v bool) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetGatePassed(v)
	})
}

// UpdateGatePassed sets the "gate_passed" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateGatePassed() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateGatePassed()
	})
}

// ClearGatePassed clears the value of the "gate_passed" field.
func (u *AgentTraceUpsertBulk) ClearGatePassed() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearGatePassed()
	})
}

// SetErrorType sets the "error_type" field.
func (u *AgentTraceUpsertBulk) SetErrorType(v string) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetErrorType(v)
	})
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateErrorType() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateErrorType()
	})
}

// ClearErrorType clears the value of the "error_type" field.
func (u *AgentTraceUpsertBulk) ClearErrorType() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearErrorType()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentTraceUpsertBulk) SetErrorMessage(v string) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateErrorMessage() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentTraceUpsertBulk) ClearErrorMessage() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearErrorMessage()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *AgentTraceUpsertBulk) SetEndedAt(v time.Time) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateEndedAt() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *AgentTraceUpsertBulk) ClearEndedAt() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearEndedAt()
	})
}

// Exec executes the query.
func (u *AgentTraceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentTraceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentTraceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentTraceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

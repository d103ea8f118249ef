// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/agenttrace"
	"github.com/patchpilot/patchpilot/ent/predicate"
	"github.com/patchpilot/patchpilot/ent/task"
)

// AgentTraceUpdate is the builder for updating AgentTrace entities.
type AgentTraceUpdate struct {
	config
	hooks    []Hook
	mutation *AgentTraceMutation
}

// Where appends a list predicates to the AgentTraceUpdate builder.
func (_u *AgentTraceUpdate) Where(ps ...predicate.AgentTrace) *AgentTraceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AgentTraceUpdate) SetTaskID(v uuid.UUID) *AgentTraceUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableTaskID(v *uuid.UUID) *AgentTraceUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetParentTraceID sets the "parent_trace_id" field.
func (_u *AgentTraceUpdate) SetParentTraceID(v uuid.UUID) *AgentTraceUpdate {
	_u.mutation.SetParentTraceID(v)
	return _u
}

// SetNillableParentTraceID sets the "parent_trace_id" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableParentTraceID(v *uuid.UUID) *AgentTraceUpdate {
	if v != nil {
		_u.SetParentTraceID(*v)
	}
	return _u
}

// ClearParentTraceID clears the value of the "parent_trace_id" field.
func (_u *AgentTraceUpdate) ClearParentTraceID() *AgentTraceUpdate {
	_u.mutation.ClearParentTraceID()
	return _u
}

// SetStage sets the "stage" field.
func (_u *AgentTraceUpdate) SetStage(v string) *AgentTraceUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableStage(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentTraceUpdate) SetModel(v string) *AgentTraceUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableModel(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *AgentTraceUpdate) SetPosition(v string) *AgentTraceUpdate {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillablePosition(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentTraceUpdate) SetStatus(v agenttrace.Status) *AgentTraceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableStatus(v *agenttrace.Status) *AgentTraceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentTraceUpdate) SetInputTokens(v int) *AgentTraceUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableInputTokens(v *int) *AgentTraceUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentTraceUpdate) AddInputTokens(v int) *AgentTraceUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentTraceUpdate) SetOutputTokens(v int) *AgentTraceUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableOutputTokens(v *int) *AgentTraceUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentTraceUpdate) AddOutputTokens(v int) *AgentTraceUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *AgentTraceUpdate) SetCostUsd(v float64) *AgentTraceUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableCostUsd(v *float64) *AgentTraceUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *AgentTraceUpdate) AddCostUsd(v float64) *AgentTraceUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetOutputSummary sets the "output_summary" field.
func (_u *AgentTraceUpdate) SetOutputSummary(v string) *AgentTraceUpdate {
	_u.mutation.SetOutputSummary(v)
	return _u
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableOutputSummary(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetOutputSummary(*v)
	}
	return _u
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (_u *AgentTraceUpdate) ClearOutputSummary() *AgentTraceUpdate {
	_u.mutation.ClearOutputSummary()
	return _u
}

// SetGateName sets the "gate_name" field.
func (_u *AgentTraceUpdate) SetGateName(v string) *AgentTraceUpdate {
	_u.mutation.SetGateName(v)
	return _u
}

// SetNillableGateName sets the "gate_name" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableGateName(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetGateName(*v)
	}
	return _u
}

// ClearGateName clears the value of the "gate_name" field.
func (_u *AgentTraceUpdate) ClearGateName() *AgentTraceUpdate {
	_u.mutation.ClearGateName()
	return _u
}

// SetGatePassed sets the "gate_passed" field.
func (_u *AgentTraceUpdate) SetGatePassed(v bool) *AgentTraceUpdate {
	_u.mutation.SetGatePassed(v)
	return _u
}

// SetNillableGatePassed sets the "gate_passed" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableGatePassed(v *bool) *AgentTraceUpdate {
	if v != nil {
		_u.SetGatePassed(*v)
	}
	return _u
}

// ClearGatePassed clears the value of the "gate_passed" field.
func (_u *AgentTraceUpdate) ClearGatePassed() *AgentTraceUpdate {
	_u.mutation.ClearGatePassed()
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *AgentTraceUpdate) SetErrorType(v string) *AgentTraceUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableErrorType(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *AgentTraceUpdate) ClearErrorType() *AgentTraceUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentTraceUpdate) SetErrorMessage(v string) *AgentTraceUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableErrorMessage(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentTraceUpdate) ClearErrorMessage() *AgentTraceUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentTraceUpdate) SetEndedAt(v time.Time) *AgentTraceUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableEndedAt(v *time.Time) *AgentTraceUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentTraceUpdate) ClearEndedAt() *AgentTraceUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *AgentTraceUpdate) SetTask(v *Task) *AgentTraceUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the AgentTraceMutation object of the builder.
func (_u *AgentTraceUpdate) Mutation() *AgentTraceMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *AgentTraceUpdate) ClearTask() *AgentTraceUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentTraceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTraceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentTraceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTraceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTraceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agenttrace.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentTrace.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTrace.task"`)
	}
	return nil
}

func (_u *AgentTraceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttrace.Table, agenttrace.Columns, sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentTraceID(); ok {
		_spec.SetField(agenttrace.FieldParentTraceID, field.TypeUUID, value)
	}
	if _u.mutation.ParentTraceIDCleared() {
		_spec.ClearField(agenttrace.FieldParentTraceID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(agenttrace.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agenttrace.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(agenttrace.FieldPosition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agenttrace.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agenttrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agenttrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agenttrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agenttrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(agenttrace.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(agenttrace.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OutputSummary(); ok {
		_spec.SetField(agenttrace.FieldOutputSummary, field.TypeString, value)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(agenttrace.FieldOutputSummary, field.TypeString)
	}
	if value, ok := _u.mutation.GateName(); ok {
		_spec.SetField(agenttrace.FieldGateName, field.TypeString, value)
	}
	if _u.mutation.GateNameCleared() {
		_spec.ClearField(agenttrace.FieldGateName, field.TypeString)
	}
	if value, ok := _u.mutation.GatePassed(); ok {
		_spec.SetField(agenttrace.FieldGatePassed, field.TypeBool, value)
	}
	if _u.mutation.GatePassedCleared() {
		_spec.ClearField(agenttrace.FieldGatePassed, field.TypeBool)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(agenttrace.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(agenttrace.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agenttrace.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agenttrace.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agenttrace.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agenttrace.FieldEndedAt, field.TypeTime)
	}
	if _u.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentTraceUpdateOne is the builder for updating a single AgentTrace entity.
type AgentTraceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentTraceMutation
}

// SetTaskID sets the "task_id" field.
func (_u *AgentTraceUpdateOne) SetTaskID(v uuid.UUID) *AgentTraceUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableTaskID(v *uuid.UUID) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetParentTraceID sets the "parent_trace_id" field.
func (_u *AgentTraceUpdateOne) SetParentTraceID(v uuid.UUID) *AgentTraceUpdateOne {
	_u.mutation.SetParentTraceID(v)
	return _u
}

// SetNillableParentTraceID sets the "parent_trace_id" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableParentTraceID(v *uuid.UUID) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetParentTraceID(*v)
	}
	return _u
}

// ClearParentTraceID clears the value of the "parent_trace_id" field.
func (_u *AgentTraceUpdateOne) ClearParentTraceID() *AgentTraceUpdateOne {
	_u.mutation.ClearParentTraceID()
	return _u
}

// SetStage sets the "stage" field.
func (_u *AgentTraceUpdateOne) SetStage(v string) *AgentTraceUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableStage(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentTraceUpdateOne) SetModel(v string) *AgentTraceUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableModel(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *AgentTraceUpdateOne) SetPosition(v string) *AgentTraceUpdateOne {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillablePosition(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentTraceUpdateOne) SetStatus(v agenttrace.Status) *AgentTraceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableStatus(v *agenttrace.Status) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentTraceUpdateOne) SetInputTokens(v int) *AgentTraceUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableInputTokens(v *int) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentTraceUpdateOne) AddInputTokens(v int) *AgentTraceUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentTraceUpdateOne) SetOutputTokens(v int) *AgentTraceUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableOutputTokens(v *int) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentTraceUpdateOne) AddOutputTokens(v int) *AgentTraceUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *AgentTraceUpdateOne) SetCostUsd(v float64) *AgentTraceUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableCostUsd(v *float64) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *AgentTraceUpdateOne) AddCostUsd(v float64) *AgentTraceUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetOutputSummary sets the "output_summary" field.
func (_u *AgentTraceUpdateOne) SetOutputSummary(v string) *AgentTraceUpdateOne {
	_u.mutation.SetOutputSummary(v)
	return _u
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableOutputSummary(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetOutputSummary(*v)
	}
	return _u
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (_u *AgentTraceUpdateOne) ClearOutputSummary() *AgentTraceUpdateOne {
	_u.mutation.ClearOutputSummary()
	return _u
}

// SetGateName sets the "gate_name" field.
func (_u *AgentTraceUpdateOne) SetGateName(v string) *AgentTraceUpdateOne {
	_u.mutation.SetGateName(v)
	return _u
}

// SetNillableGateName sets the "gate_name" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableGateName(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetGateName(*v)
	}
	return _u
}

// ClearGateName clears the value of the "gate_name" field.
func (_u *AgentTraceUpdateOne) ClearGateName() *AgentTraceUpdateOne {
	_u.mutation.ClearGateName()
	return _u
}

// SetGatePassed sets the "gate_passed" field.
func (_u *AgentTraceUpdateOne) SetGatePassed(v bool) *AgentTraceUpdateOne {
	_u.mutation.SetGatePassed(v)
	return _u
}

// SetNillableGatePassed sets the "gate_passed" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableGatePassed(v *bool) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetGatePassed(*v)
	}
	return _u
}

// ClearGatePassed clears the value of the "gate_passed" field.
func (_u *AgentTraceUpdateOne) ClearGatePassed() *AgentTraceUpdateOne {
	_u.mutation.ClearGatePassed()
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *AgentTraceUpdateOne) SetErrorType(v string) *AgentTraceUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableErrorType(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *AgentTraceUpdateOne) ClearErrorType() *AgentTraceUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentTraceUpdateOne) SetErrorMessage(v string) *AgentTraceUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableErrorMessage(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentTraceUpdateOne) ClearErrorMessage() *AgentTraceUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentTraceUpdateOne) SetEndedAt(v time.Time) *AgentTraceUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableEndedAt(v *time.Time) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentTraceUpdateOne) ClearEndedAt() *AgentTraceUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *AgentTraceUpdateOne) SetTask(v *Task) *AgentTraceUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the AgentTraceMutation object of the builder.
func (_u *AgentTraceUpdateOne) Mutation() *AgentTraceMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *AgentTraceUpdateOne) ClearTask() *AgentTraceUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the AgentTraceUpdate builder.
func (_u *AgentTraceUpdateOne) Where(ps ...predicate.AgentTrace) *AgentTraceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentTraceUpdateOne) Select(field string, fields ...string) *AgentTraceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentTrace entity.
func (_u *AgentTraceUpdateOne) Save(ctx context.Context) (*AgentTrace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTraceUpdateOne) SaveX(ctx context.Context) *AgentTrace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentTraceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTraceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTraceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agenttrace.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentTrace.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTrace.task"`)
	}
	return nil
}

func (_u *AgentTraceUpdateOne) sqlSave(ctx context.Context) (_node *AgentTrace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttrace.Table, agenttrace.Columns, sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentTrace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenttrace.FieldID)
		for _, f := range fields {
			if !agenttrace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agenttrace.FieldID {
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
	if value, ok := _u.mutation.ParentTraceID(); ok {
		_spec.SetField(agenttrace.FieldParentTraceID, field.TypeUUID, value)
	}
	if _u.mutation.ParentTraceIDCleared() {
		_spec.ClearField(agenttrace.FieldParentTraceID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(agenttrace.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agenttrace.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(agenttrace.FieldPosition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agenttrace.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agenttrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agenttrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agenttrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agenttrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(agenttrace.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(agenttrace.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OutputSummary(); ok {
		_spec.SetField(agenttrace.FieldOutputSummary, field.TypeString, value)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(agenttrace.FieldOutputSummary, field.TypeString)
	}
	if value, ok := _u.mutation.GateName(); ok {
		_spec.SetField(agenttrace.FieldGateName, field.TypeString, value)
	}
	if _u.mutation.GateNameCleared() {
		_spec.ClearField(agenttrace.FieldGateName, field.TypeString)
	}
	if value, ok := _u.mutation.GatePassed(); ok {
		_spec.SetField(agenttrace.FieldGatePassed, field.TypeBool, value)
	}
	if _u.mutation.GatePassedCleared() {
		_spec.ClearField(agenttrace.FieldGatePassed, field.TypeBool)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(agenttrace.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(agenttrace.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agenttrace.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agenttrace.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agenttrace.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agenttrace.FieldEndedAt, field.TypeTime)
	}
	if _u.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentTrace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

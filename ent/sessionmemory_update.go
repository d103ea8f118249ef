// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/predicate"
	"github.com/patchpilot/patchpilot/ent/sessionmemory"
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// SessionMemoryUpdate is the builder for updating SessionMemory entities.
type SessionMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMemoryMutation
}

// Where appends a list predicates to the SessionMemoryUpdate builder.
func (_u *SessionMemoryUpdate) Where(ps ...predicate.SessionMemory) *SessionMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SessionMemoryUpdate) SetTaskID(v uuid.UUID) *SessionMemoryUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableTaskID(v *uuid.UUID) *SessionMemoryUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionMemoryUpdate) SetPhase(v string) *SessionMemoryUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillablePhase(v *string) *SessionMemoryUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SessionMemoryUpdate) SetProgress(v []models.ProgressEntry) *SessionMemoryUpdate {
	_u.mutation.SetProgress(v)
	return _u
}

// AppendProgress appends value to the "progress" field.
func (_u *SessionMemoryUpdate) AppendProgress(v []models.ProgressEntry) *SessionMemoryUpdate {
	_u.mutation.AppendProgress(v)
	return _u
}

// ClearProgress clears the value of the "progress" field.
func (_u *SessionMemoryUpdate) ClearProgress() *SessionMemoryUpdate {
	_u.mutation.ClearProgress()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SessionMemoryUpdate) SetAttempts(v []models.AttemptRecord) *SessionMemoryUpdate {
	_u.mutation.SetAttempts(v)
	return _u
}

// AppendAttempts appends value to the "attempts" field.
func (_u *SessionMemoryUpdate) AppendAttempts(v []models.AttemptRecord) *SessionMemoryUpdate {
	_u.mutation.AppendAttempts(v)
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *SessionMemoryUpdate) ClearAttempts() *SessionMemoryUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// SetFailurePatterns sets the "failure_patterns" field.
func (_u *SessionMemoryUpdate) SetFailurePatterns(v []models.FailurePattern) *SessionMemoryUpdate {
	_u.mutation.SetFailurePatterns(v)
	return _u
}

// AppendFailurePatterns appends value to the "failure_patterns" field.
func (_u *SessionMemoryUpdate) AppendFailurePatterns(v []models.FailurePattern) *SessionMemoryUpdate {
	_u.mutation.AppendFailurePatterns(v)
	return _u
}

// ClearFailurePatterns clears the value of the "failure_patterns" field.
func (_u *SessionMemoryUpdate) ClearFailurePatterns() *SessionMemoryUpdate {
	_u.mutation.ClearFailurePatterns()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *SessionMemoryUpdate) SetOutputs(v map[string]json.RawMessage) *SessionMemoryUpdate {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *SessionMemoryUpdate) ClearOutputs() *SessionMemoryUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// SetOrchestration sets the "orchestration" field.
func (_u *SessionMemoryUpdate) SetOrchestration(v *models.OrchestrationState) *SessionMemoryUpdate {
	_u.mutation.SetOrchestration(v)
	return _u
}

// ClearOrchestration clears the value of the "orchestration" field.
func (_u *SessionMemoryUpdate) ClearOrchestration() *SessionMemoryUpdate {
	_u.mutation.ClearOrchestration()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *SessionMemoryUpdate) SetErrorCount(v int) *SessionMemoryUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableErrorCount(v *int) *SessionMemoryUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *SessionMemoryUpdate) AddErrorCount(v int) *SessionMemoryUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SessionMemoryUpdate) SetRetryCount(v int) *SessionMemoryUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableRetryCount(v *int) *SessionMemoryUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SessionMemoryUpdate) AddRetryCount(v int) *SessionMemoryUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastCheckpointID sets the "last_checkpoint_id" field.
func (_u *SessionMemoryUpdate) SetLastCheckpointID(v uuid.UUID) *SessionMemoryUpdate {
	_u.mutation.SetLastCheckpointID(v)
	return _u
}

// SetNillableLastCheckpointID sets the "last_checkpoint_id" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableLastCheckpointID(v *uuid.UUID) *SessionMemoryUpdate {
	if v != nil {
		_u.SetLastCheckpointID(*v)
	}
	return _u
}

// ClearLastCheckpointID clears the value of the "last_checkpoint_id" field.
func (_u *SessionMemoryUpdate) ClearLastCheckpointID() *SessionMemoryUpdate {
	_u.mutation.ClearLastCheckpointID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionMemoryUpdate) SetUpdatedAt(v time.Time) *SessionMemoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *SessionMemoryUpdate) SetTask(v *Task) *SessionMemoryUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_u *SessionMemoryUpdate) Mutation() *SessionMemoryMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *SessionMemoryUpdate) ClearTask() *SessionMemoryUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionMemoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionMemoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMemoryUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionMemory.task"`)
	}
	return nil
}

func (_u *SessionMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmemory.Table, sessionmemory.Columns, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(sessionmemory.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(sessionmemory.FieldProgress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProgress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionmemory.FieldProgress, value)
		})
	}
	if _u.mutation.ProgressCleared() {
		_spec.ClearField(sessionmemory.FieldProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(sessionmemory.FieldAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionmemory.FieldAttempts, value)
		})
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(sessionmemory.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailurePatterns(); ok {
		_spec.SetField(sessionmemory.FieldFailurePatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailurePatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionmemory.FieldFailurePatterns, value)
		})
	}
	if _u.mutation.FailurePatternsCleared() {
		_spec.ClearField(sessionmemory.FieldFailurePatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(sessionmemory.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(sessionmemory.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Orchestration(); ok {
		_spec.SetField(sessionmemory.FieldOrchestration, field.TypeJSON, value)
	}
	if _u.mutation.OrchestrationCleared() {
		_spec.ClearField(sessionmemory.FieldOrchestration, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(sessionmemory.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(sessionmemory.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(sessionmemory.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(sessionmemory.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCheckpointID(); ok {
		_spec.SetField(sessionmemory.FieldLastCheckpointID, field.TypeUUID, value)
	}
	if _u.mutation.LastCheckpointIDCleared() {
		_spec.ClearField(sessionmemory.FieldLastCheckpointID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionmemory.TaskTable,
			Columns: []string{sessionmemory.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionmemory.TaskTable,
			Columns: []string{sessionmemory.TaskColumn},
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
			err = &NotFoundError{sessionmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionMemoryUpdateOne is the builder for updating a single SessionMemory entity.
type SessionMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMemoryMutation
}

// SetTaskID sets the "task_id" field.
func (_u *SessionMemoryUpdateOne) SetTaskID(v uuid.UUID) *SessionMemoryUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableTaskID(v *uuid.UUID) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionMemoryUpdateOne) SetPhase(v string) *SessionMemoryUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillablePhase(v *string) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SessionMemoryUpdateOne) SetProgress(v []models.ProgressEntry) *SessionMemoryUpdateOne {
	_u.mutation.SetProgress(v)
	return _u
}

// AppendProgress appends value to the "progress" field.
func (_u *SessionMemoryUpdateOne) AppendProgress(v []models.ProgressEntry) *SessionMemoryUpdateOne {
	_u.mutation.AppendProgress(v)
	return _u
}

// ClearProgress clears the value of the "progress" field.
func (_u *SessionMemoryUpdateOne) ClearProgress() *SessionMemoryUpdateOne {
	_u.mutation.ClearProgress()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SessionMemoryUpdateOne) SetAttempts(v []models.AttemptRecord) *SessionMemoryUpdateOne {
	_u.mutation.SetAttempts(v)
	return _u
}

// AppendAttempts appends value to the "attempts" field.
func (_u *SessionMemoryUpdateOne) AppendAttempts(v []models.AttemptRecord) *SessionMemoryUpdateOne {
	_u.mutation.AppendAttempts(v)
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *SessionMemoryUpdateOne) ClearAttempts() *SessionMemoryUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// SetFailurePatterns sets the "failure_patterns" field.
func (_u *SessionMemoryUpdateOne) SetFailurePatterns(v []models.FailurePattern) *SessionMemoryUpdateOne {
	_u.mutation.SetFailurePatterns(v)
	return _u
}

// AppendFailurePatterns appends value to the "failure_patterns" field.
func (_u *SessionMemoryUpdateOne) AppendFailurePatterns(v []models.FailurePattern) *SessionMemoryUpdateOne {
	_u.mutation.AppendFailurePatterns(v)
	return _u
}

// ClearFailurePatterns clears the value of the "failure_patterns" field.
func (_u *SessionMemoryUpdateOne) ClearFailurePatterns() *SessionMemoryUpdateOne {
	_u.mutation.ClearFailurePatterns()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *SessionMemoryUpdateOne) SetOutputs(v map[string]json.RawMessage) *SessionMemoryUpdateOne {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *SessionMemoryUpdateOne) ClearOutputs() *SessionMemoryUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// SetOrchestration sets the "orchestration" field.
func (_u *SessionMemoryUpdateOne) SetOrchestration(v *models.OrchestrationState) *SessionMemoryUpdateOne {
	_u.mutation.SetOrchestration(v)
	return _u
}

// ClearOrchestration clears the value of the "orchestration" field.
func (_u *SessionMemoryUpdateOne) ClearOrchestration() *SessionMemoryUpdateOne {
	_u.mutation.ClearOrchestration()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *SessionMemoryUpdateOne) SetErrorCount(v int) *SessionMemoryUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableErrorCount(v *int) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *SessionMemoryUpdateOne) AddErrorCount(v int) *SessionMemoryUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SessionMemoryUpdateOne) SetRetryCount(v int) *SessionMemoryUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableRetryCount(v *int) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SessionMemoryUpdateOne) AddRetryCount(v int) *SessionMemoryUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastCheckpointID sets the "last_checkpoint_id" field.
func (_u *SessionMemoryUpdateOne) SetLastCheckpointID(v uuid.UUID) *SessionMemoryUpdateOne {
	_u.mutation.SetLastCheckpointID(v)
	return _u
}

// SetNillableLastCheckpointID sets the "last_checkpoint_id" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableLastCheckpointID(v *uuid.UUID) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetLastCheckpointID(*v)
	}
	return _u
}

// ClearLastCheckpointID clears the value of the "last_checkpoint_id" field.
func (_u *SessionMemoryUpdateOne) ClearLastCheckpointID() *SessionMemoryUpdateOne {
	_u.mutation.ClearLastCheckpointID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionMemoryUpdateOne) SetUpdatedAt(v time.Time) *SessionMemoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *SessionMemoryUpdateOne) SetTask(v *Task) *SessionMemoryUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_u *SessionMemoryUpdateOne) Mutation() *SessionMemoryMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *SessionMemoryUpdateOne) ClearTask() *SessionMemoryUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the SessionMemoryUpdate builder.
func (_u *SessionMemoryUpdateOne) Where(ps ...predicate.SessionMemory) *SessionMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionMemoryUpdateOne) Select(field string, fields ...string) *SessionMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionMemory entity.
func (_u *SessionMemoryUpdateOne) Save(ctx context.Context) (*SessionMemory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMemoryUpdateOne) SaveX(ctx context.Context) *SessionMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionMemoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMemoryUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionMemory.task"`)
	}
	return nil
}

func (_u *SessionMemoryUpdateOne) sqlSave(ctx context.Context) (_node *SessionMemory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmemory.Table, sessionmemory.Columns, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionmemory.FieldID)
		for _, f := range fields {
			if !sessionmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionmemory.FieldID {
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
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(sessionmemory.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(sessionmemory.FieldProgress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProgress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionmemory.FieldProgress, value)
		})
	}
	if _u.mutation.ProgressCleared() {
		_spec.ClearField(sessionmemory.FieldProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(sessionmemory.FieldAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionmemory.FieldAttempts, value)
		})
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(sessionmemory.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailurePatterns(); ok {
		_spec.SetField(sessionmemory.FieldFailurePatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailurePatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionmemory.FieldFailurePatterns, value)
		})
	}
	if _u.mutation.FailurePatternsCleared() {
		_spec.ClearField(sessionmemory.FieldFailurePatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(sessionmemory.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(sessionmemory.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Orchestration(); ok {
		_spec.SetField(sessionmemory.FieldOrchestration, field.TypeJSON, value)
	}
	if _u.mutation.OrchestrationCleared() {
		_spec.ClearField(sessionmemory.FieldOrchestration, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(sessionmemory.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(sessionmemory.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(sessionmemory.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(sessionmemory.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCheckpointID(); ok {
		_spec.SetField(sessionmemory.FieldLastCheckpointID, field.TypeUUID, value)
	}
	if _u.mutation.LastCheckpointIDCleared() {
		_spec.ClearField(sessionmemory.FieldLastCheckpointID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionmemory.TaskTable,
			Columns: []string{sessionmemory.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionmemory.TaskTable,
			Columns: []string{sessionmemory.TaskColumn},
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
	_node = &SessionMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/sessionmemory"
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// SessionMemoryCreate is the builder for creating a SessionMemory entity.
type SessionMemoryCreate struct {
	config
	mutation *SessionMemoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *SessionMemoryCreate) SetTaskID(v uuid.UUID) *SessionMemoryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *SessionMemoryCreate) SetPhase(v string) *SessionMemoryCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillablePhase(v *string) *SessionMemoryCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *SessionMemoryCreate) SetProgress(v []models.ProgressEntry) *SessionMemoryCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SessionMemoryCreate) SetAttempts(v []models.AttemptRecord) *SessionMemoryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetFailurePatterns sets the "failure_patterns" field.
func (_c *SessionMemoryCreate) SetFailurePatterns(v []models.FailurePattern) *SessionMemoryCreate {
	_c.mutation.SetFailurePatterns(v)
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *SessionMemoryCreate) SetOutputs(v map[string]json.RawMessage) *SessionMemoryCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetOrchestration sets the "orchestration" field.
func (_c *SessionMemoryCreate) SetOrchestration(v *models.OrchestrationState) *SessionMemoryCreate {
	_c.mutation.SetOrchestration(v)
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *SessionMemoryCreate) SetErrorCount(v int) *SessionMemoryCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableErrorCount(v *int) *SessionMemoryCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *SessionMemoryCreate) SetRetryCount(v int) *SessionMemoryCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableRetryCount(v *int) *SessionMemoryCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastCheckpointID sets the "last_checkpoint_id" field.
func (_c *SessionMemoryCreate) SetLastCheckpointID(v uuid.UUID) *SessionMemoryCreate {
	_c.mutation.SetLastCheckpointID(v)
	return _c
}

// SetNillableLastCheckpointID sets the "last_checkpoint_id" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableLastCheckpointID(v *uuid.UUID) *SessionMemoryCreate {
	if v != nil {
		_c.SetLastCheckpointID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionMemoryCreate) SetCreatedAt(v time.Time) *SessionMemoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableCreatedAt(v *time.Time) *SessionMemoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionMemoryCreate) SetUpdatedAt(v time.Time) *SessionMemoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableUpdatedAt(v *time.Time) *SessionMemoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionMemoryCreate) SetID(v uuid.UUID) *SessionMemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableID(v *uuid.UUID) *SessionMemoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *SessionMemoryCreate) SetTask(v *Task) *SessionMemoryCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_c *SessionMemoryCreate) Mutation() *SessionMemoryMutation {
	return _c.mutation
}

// Save creates the SessionMemory in the database.
func (_c *SessionMemoryCreate) Save(ctx context.Context) (*SessionMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionMemoryCreate) SaveX(ctx context.Context) *SessionMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionMemoryCreate) defaults() {
	if _, ok := _c.mutation.Phase(); !ok {
		v := sessionmemory.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := sessionmemory.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := sessionmemory.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionmemory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionmemory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sessionmemory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionMemoryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SessionMemory.task_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "SessionMemory.phase"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "SessionMemory.error_count"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "SessionMemory.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionMemory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionMemory.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "SessionMemory.task"`)}
	}
	return nil
}

func (_c *SessionMemoryCreate) sqlSave(ctx context.Context) (*SessionMemory, error) {
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

func (_c *SessionMemoryCreate) createSpec() (*SessionMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionmemory.Table, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(sessionmemory.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(sessionmemory.FieldProgress, field.TypeJSON, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(sessionmemory.FieldAttempts, field.TypeJSON, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.FailurePatterns(); ok {
		_spec.SetField(sessionmemory.FieldFailurePatterns, field.TypeJSON, value)
		_node.FailurePatterns = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(sessionmemory.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.Orchestration(); ok {
		_spec.SetField(sessionmemory.FieldOrchestration, field.TypeJSON, value)
		_node.Orchestration = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(sessionmemory.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(sessionmemory.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastCheckpointID(); ok {
		_spec.SetField(sessionmemory.FieldLastCheckpointID, field.TypeUUID, value)
		_node.LastCheckpointID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionmemory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionMemory.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionMemoryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionMemoryCreate) OnConflict(opts ...sql.ConflictOption) *SessionMemoryUpsertOne {
	_c.conflict = opts
	return &SessionMemoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionMemoryCreate) OnConflictColumns(columns ...string) *SessionMemoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionMemoryUpsertOne{
		create: _c,
	}
}

type (
	// SessionMemoryUpsertOne is the builder for "upsert"-ing
	//  one SessionMemory node.
	SessionMemoryUpsertOne struct {
		create *SessionMemoryCreate
	}

	// SessionMemoryUpsert is the "OnConflict" setter.
	SessionMemoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskID sets the "task_id" field.
func (u *SessionMemoryUpsert) SetTaskID(v uuid.UUID) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateTaskID() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldTaskID)
	return u
}

// SetPhase sets the "phase" field.
func (u *SessionMemoryUpsert) SetPhase(v string) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdatePhase() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldPhase)
	return u
}

// SetProgress sets the "progress" field.
func (u *SessionMemoryUpsert) SetProgress(v []models.ProgressEntry) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateProgress() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldProgress)
	return u
}

// ClearProgress clears the value of the "progress" field.
func (u *SessionMemoryUpsert) ClearProgress() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldProgress)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *SessionMemoryUpsert) SetAttempts(v []models.AttemptRecord) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateAttempts() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldAttempts)
	return u
}

// ClearAttempts clears the value of the "attempts" field.
func (u *SessionMemoryUpsert) ClearAttempts() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldAttempts)
	return u
}

// SetFailurePatterns sets the "failure_patterns" field.
func (u *SessionMemoryUpsert) SetFailurePatterns(v []models.FailurePattern) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldFailurePatterns, v)
	return u
}

// UpdateFailurePatterns sets the "failure_patterns" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateFailurePatterns() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldFailurePatterns)
	return u
}

// ClearFailurePatterns clears the value of the "failure_patterns" field.
func (u *SessionMemoryUpsert) ClearFailurePatterns() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldFailurePatterns)
	return u
}

// SetOutputs sets the "outputs" field.
func (u *SessionMemoryUpsert) SetOutputs(v map[string]json.RawMessage) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldOutputs, v)
	return u
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateOutputs() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldOutputs)
	return u
}

// ClearOutputs clears the value of the "outputs" field.
func (u *SessionMemoryUpsert) ClearOutputs() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldOutputs)
	return u
}

// SetOrchestration sets the "orchestration" field.
func (u *SessionMemoryUpsert) SetOrchestration(v *models.OrchestrationState) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldOrchestration, v)
	return u
}

// UpdateOrchestration sets the "orchestration" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateOrchestration() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldOrchestration)
	return u
}

// ClearOrchestration clears the value of the "orchestration" field.
func (u *SessionMemoryUpsert) ClearOrchestration() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldOrchestration)
	return u
}

// SetErrorCount sets the "error_count" field.
func (u *SessionMemoryUpsert) SetErrorCount(v int) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldErrorCount, v)
	return u
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateErrorCount() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldErrorCount)
	return u
}

// AddErrorCount adds v to the "error_count" field.
func (u *SessionMemoryUpsert) AddErrorCount(v int) *SessionMemoryUpsert {
	u.Add(sessionmemory.FieldErrorCount, v)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *SessionMemoryUpsert) SetRetryCount(v int) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateRetryCount() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *SessionMemoryUpsert) AddRetryCount(v int) *SessionMemoryUpsert {
	u.Add(sessionmemory.FieldRetryCount, v)
	return u
}

// SetLastCheckpointID sets the "last_checkpoint_id" field.
func (u *SessionMemoryUpsert) SetLastCheckpointID(v uuid.UUID) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldLastCheckpointID, v)
	return u
}

// UpdateLastCheckpointID sets the "last_checkpoint_id" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateLastCheckpointID() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldLastCheckpointID)
	return u
}

// ClearLastCheckpointID clears the value of the "last_checkpoint_id" field.
func (u *SessionMemoryUpsert) ClearLastCheckpointID() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldLastCheckpointID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionMemoryUpsert) SetUpdatedAt(v time.Time) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateUpdatedAt() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionmemory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionMemoryUpsertOne) UpdateNewValues() *SessionMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessionmemory.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sessionmemory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionMemoryUpsertOne) Ignore() *SessionMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionMemoryUpsertOne) DoNothing() *SessionMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionMemoryCreate.OnConflict
// documentation for more info.
func (u *SessionMemoryUpsertOne) Update(set func(*SessionMemoryUpsert)) *SessionMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionMemoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *SessionMemoryUpsertOne) SetTaskID(v uuid.UUID) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateTaskID() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateTaskID()
	})
}

// SetPhase sets the "phase" field.
func (u *SessionMemoryUpsertOne) SetPhase(v string) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdatePhase() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdatePhase()
	})
}

// SetProgress sets the "progress" field.
func (u *SessionMemoryUpsertOne) SetProgress(v []models.ProgressEntry) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateProgress() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateProgress()
	})
}

// ClearProgress clears the value of the "progress" field.
func (u *SessionMemoryUpsertOne) ClearProgress() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearProgress()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SessionMemoryUpsertOne) SetAttempts(v []models.AttemptRecord) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateAttempts() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateAttempts()
	})
}

// ClearAttempts clears the value of the "attempts" field.
func (u *SessionMemoryUpsertOne) ClearAttempts() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearAttempts()
	})
}

// SetFailurePatterns sets the "failure_patterns" field.
func (u *SessionMemoryUpsertOne) SetFailurePatterns(v []models.FailurePattern) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetFailurePatterns(v)
	})
}

// UpdateFailurePatterns sets the "failure_patterns" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateFailurePatterns() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateFailurePatterns()
	})
}

// ClearFailurePatterns clears the value of the "failure_patterns" field.
func (u *SessionMemoryUpsertOne) ClearFailurePatterns() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearFailurePatterns()
	})
}

// SetOutputs sets the "outputs" field.
func (u *SessionMemoryUpsertOne) SetOutputs(v map[string]json.RawMessage) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetOutputs(v)
	})
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateOutputs() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateOutputs()
	})
}

// ClearOutputs clears the value of the "outputs" field.
func (u *SessionMemoryUpsertOne) ClearOutputs() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearOutputs()
	})
}

// SetOrchestration sets the "orchestration" field.
func (u *SessionMemoryUpsertOne) SetOrchestration(v *models.OrchestrationState) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetOrchestration(v)
	})
}

// UpdateOrchestration sets the "orchestration" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateOrchestration() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateOrchestration()
	})
}

// ClearOrchestration clears the value of the "orchestration" field.
func (u *SessionMemoryUpsertOne) ClearOrchestration() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearOrchestration()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *SessionMemoryUpsertOne) SetErrorCount(v int) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *SessionMemoryUpsertOne) AddErrorCount(v int) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateErrorCount() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateErrorCount()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *SessionMemoryUpsertOne) SetRetryCount(v int) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *SessionMemoryUpsertOne) AddRetryCount(v int) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateRetryCount() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateRetryCount()
	})
}

// SetLastCheckpointID sets the "last_checkpoint_id" field.
func (u *SessionMemoryUpsertOne) SetLastCheckpointID(v uuid.UUID) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetLastCheckpointID(v)
	})
}

// UpdateLastCheckpointID sets the "last_checkpoint_id" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateLastCheckpointID() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateLastCheckpointID()
	})
}

// ClearLastCheckpointID clears the value of the "last_checkpoint_id" field.
func (u *SessionMemoryUpsertOne) ClearLastCheckpointID() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearLastCheckpointID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionMemoryUpsertOne) SetUpdatedAt(v time.Time) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateUpdatedAt() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionMemoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionMemoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionMemoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionMemoryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionMemoryUpsertOne.ID is not supported by MySQL driver. Use SessionMemoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionMemoryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionMemoryCreateBulk is the builder for creating many SessionMemory entities in bulk.
type SessionMemoryCreateBulk struct {
	config
	err      error
	builders []*SessionMemoryCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionMemory entities in the database.
func (_c *SessionMemoryCreateBulk) Save(ctx context.Context) ([]*SessionMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMemoryMutation)
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
func (_c *SessionMemoryCreateBulk) SaveX(ctx context.Context) []*SessionMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionMemory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionMemoryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionMemoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionMemoryUpsertBulk {
	_c.conflict = opts
	return &SessionMemoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionMemoryCreateBulk) OnConflictColumns(columns ...string) *SessionMemoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionMemoryUpsertBulk{
		create: _c,
	}
}

// SessionMemoryUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionMemory nodes.
type SessionMemoryUpsertBulk struct {
	create *SessionMemoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionmemory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionMemoryUpsertBulk) UpdateNewValues() *SessionMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessionmemory.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sessionmemory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionMemoryUpsertBulk) Ignore() *SessionMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionMemoryUpsertBulk) DoNothing() *SessionMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionMemoryCreateBulk.OnConflict
// documentation for more info.
func (u *SessionMemoryUpsertBulk) Update(set func(*SessionMemoryUpsert)) *SessionMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionMemoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *SessionMemoryUpsertBulk) SetTaskID(v uuid.UUID) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateTaskID() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateTaskID()
	})
}

// SetPhase sets the "phase" field.
func (u *SessionMemoryUpsertBulk) SetPhase(v string) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdatePhase() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdatePhase()
	})
}

// SetProgress sets the "progress" field.
func (u *SessionMemoryUpsertBulk) SetProgress(v []models.ProgressEntry) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateProgress() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateProgress()
	})
}

// ClearProgress clears the value of the "progress" field.
func (u *SessionMemoryUpsertBulk) ClearProgress() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearProgress()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SessionMemoryUpsertBulk) SetAttempts(v []models.AttemptRecord) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateAttempts() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateAttempts()
	})
}

// ClearAttempts clears the value of the "attempts" field.
func (u *SessionMemoryUpsertBulk) ClearAttempts() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearAttempts()
	})
}

// SetFailurePatterns sets the "failure_patterns" field.
func (u *SessionMemoryUpsertBulk) SetFailurePatterns(v []models.FailurePattern) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetFailurePatterns(v)
	})
}

// UpdateFailurePatterns sets the "failure_patterns" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateFailurePatterns() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateFailurePatterns()
	})
}

// ClearFailurePatterns clears the value of the "failure_patterns" field.
func (u *SessionMemoryUpsertBulk) ClearFailurePatterns() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearFailurePatterns()
	})
}

// SetOutputs sets the "outputs" field.
func (u *SessionMemoryUpsertBulk) SetOutputs(v map[string]json.RawMessage) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetOutputs(v)
	})
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateOutputs() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateOutputs()
	})
}

// ClearOutputs clears the value of the "outputs" field.
func (u *SessionMemoryUpsertBulk) ClearOutputs() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearOutputs()
	})
}

// SetOrchestration sets the "orchestration" field.
func (u *SessionMemoryUpsertBulk) SetOrchestration(v *models.OrchestrationState) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetOrchestration(v)
	})
}

// UpdateOrchestration sets the "orchestration" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateOrchestration() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateOrchestration()
	})
}

// ClearOrchestration clears the value of the "orchestration" field.
func (u *SessionMemoryUpsertBulk) ClearOrchestration() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearOrchestration()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *SessionMemoryUpsertBulk) SetErrorCount(v int) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *SessionMemoryUpsertBulk) AddErrorCount(v int) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateErrorCount() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateErrorCount()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *SessionMemoryUpsertBulk) SetRetryCount(v int) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *SessionMemoryUpsertBulk) AddRetryCount(v int) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateRetryCount() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateRetryCount()
	})
}

// SetLastCheckpointID sets the "last_checkpoint_id" field.
func (u *SessionMemoryUpsertBulk) SetLastCheckpointID(v uuid.UUID) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetLastCheckpointID(v)
	})
}

// UpdateLastCheckpointID sets the "last_checkpoint_id" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateLastCheckpointID() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateLastCheckpointID()
	})
}

// ClearLastCheckpointID clears the value of the "last_checkpoint_id" field.
func (u *SessionMemoryUpsertBulk) ClearLastCheckpointID() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearLastCheckpointID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionMemoryUpsertBulk) SetUpdatedAt(v time.Time) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateUpdatedAt() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionMemoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionMemoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionMemoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionMemoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/ent/taskevent"
)

// TaskEventCreate is the builder for creating a TaskEvent entity.
type TaskEventCreate struct {
	config
	mutation *TaskEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *TaskEventCreate) SetTaskID(v uuid.UUID) *TaskEventCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *TaskEventCreate) SetChannel(v string) *TaskEventCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetType sets the "type" field.
func (_c *TaskEventCreate) SetType(v string) *TaskEventCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *TaskEventCreate) SetPayload(v string) *TaskEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskEventCreate) SetCreatedAt(v time.Time) *TaskEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskEventCreate) SetNillableCreatedAt(v *time.Time) *TaskEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskEventCreate) SetID(v int64) *TaskEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskEventCreate) SetTask(v *Task) *TaskEventCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskEventMutation object of the builder.
func (_c *TaskEventCreate) Mutation() *TaskEventMutation {
	return _c.mutation
}

// Save creates the TaskEvent in the database.
func (_c *TaskEventCreate) Save(ctx context.Context) (*TaskEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskEventCreate) SaveX(ctx context.Context) *TaskEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskEventCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskEvent.task_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "TaskEvent.channel"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "TaskEvent.type"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "TaskEvent.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskEvent.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskEvent.task"`)}
	}
	return nil
}

func (_c *TaskEventCreate) sqlSave(ctx context.Context) (*TaskEvent, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskEventCreate) createSpec() (*TaskEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskevent.Table, sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(taskevent.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(taskevent.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(taskevent.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskevent.TaskTable,
			Columns: []string{taskevent.TaskColumn},
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
//	client.TaskEvent.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskEventUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskEventCreate) OnConflict(opts ...sql.ConflictOption) *TaskEventUpsertOne {
	_c.conflict = opts
	return &TaskEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskEventCreate) OnConflictColumns(columns ...string) *TaskEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskEventUpsertOne{
		create: _c,
	}
}

type (
	// TaskEventUpsertOne is the builder for "upsert"-ing
	//  one TaskEvent node.
	TaskEventUpsertOne struct {
		create *TaskEventCreate
	}

	// TaskEventUpsert is the "OnConflict" setter.
	TaskEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskID sets the "task_id" field.
func (u *TaskEventUpsert) SetTaskID(v uuid.UUID) *TaskEventUpsert {
	u.Set(taskevent.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TaskEventUpsert) UpdateTaskID() *TaskEventUpsert {
	u.SetExcluded(taskevent.FieldTaskID)
	return u
}

// SetChannel sets the "channel" field.
func (u *TaskEventUpsert) SetChannel(v string) *TaskEventUpsert {
	u.Set(taskevent.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *TaskEventUpsert) UpdateChannel() *TaskEventUpsert {
	u.SetExcluded(taskevent.FieldChannel)
	return u
}

// SetType sets the "type" field.
func (u *TaskEventUpsert) SetType(v string) *TaskEventUpsert {
	u.Set(taskevent.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *TaskEventUpsert) UpdateType() *TaskEventUpsert {
	u.SetExcluded(taskevent.FieldType)
	return u
}

// SetPayload sets the "payload" field.
func (u *TaskEventUpsert) SetPayload(v string) *TaskEventUpsert {
	u.Set(taskevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *TaskEventUpsert) UpdatePayload() *TaskEventUpsert {
	u.SetExcluded(taskevent.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TaskEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskEventUpsertOne) UpdateNewValues() *TaskEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(taskevent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(taskevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskEventUpsertOne) Ignore() *TaskEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskEventUpsertOne) DoNothing() *TaskEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskEventCreate.OnConflict
// documentation for more info.
func (u *TaskEventUpsertOne) Update(set func(*TaskEventUpsert)) *TaskEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *TaskEventUpsertOne) SetTaskID(v uuid.UUID) *TaskEventUpsertOne {
	return u.Update(func(s *TaskEventUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TaskEventUpsertOne) UpdateTaskID() *TaskEventUpsertOne {
	return u.Update(func(s *TaskEventUpsert) {
		s.UpdateTaskID()
	})
}

// SetChannel sets the "channel" field.
func (u *TaskEventUpsertOne) SetChannel(v string) *TaskEventUpsertOne {
	return u.Update(func(s *TaskEventUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *TaskEventUpsertOne) UpdateChannel() *TaskEventUpsertOne {
	return u.Update(func(s *TaskEventUpsert) {
		s.UpdateChannel()
	})
}

// SetType sets the "type" field.
func (u *TaskEventUpsertOne) SetType(v string) *TaskEventUpsertOne {
	return u.Update(func(s *TaskEventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *TaskEventUpsertOne) UpdateType() *TaskEventUpsertOne {
	return u.Update(func(s *TaskEventUpsert) {
		s.UpdateType()
	})
}

// SetPayload sets the "payload" field.
func (u *TaskEventUpsertOne) SetPayload(v string) *TaskEventUpsertOne {
	return u.Update(func(s *TaskEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *TaskEventUpsertOne) UpdatePayload() *TaskEventUpsertOne {
	return u.Update(func(s *TaskEventUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *TaskEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskEventUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskEventUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskEventCreateBulk is the builder for creating many TaskEvent entities in bulk.
type TaskEventCreateBulk struct {
	config
	err      error
	builders []*TaskEventCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskEvent entities in the database.
func (_c *TaskEventCreateBulk) Save(ctx context.Context) ([]*TaskEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskEventMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *TaskEventCreateBulk) SaveX(ctx context.Context) []*TaskEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskEventUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskEventUpsertBulk {
	_c.conflict = opts
	return &TaskEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskEventCreateBulk) OnConflictColumns(columns ...string) *TaskEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskEventUpsertBulk{
		create: _c,
	}
}

// TaskEventUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskEvent nodes.
type TaskEventUpsertBulk struct {
	create *TaskEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskEventUpsertBulk) UpdateNewValues() *TaskEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(taskevent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(taskevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskEventUpsertBulk) Ignore() *TaskEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskEventUpsertBulk) DoNothing() *TaskEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskEventCreateBulk.OnConflict
// documentation for more info.
func (u *TaskEventUpsertBulk) Update(set func(*TaskEventUpsert)) *TaskEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *TaskEventUpsertBulk) SetTaskID(v uuid.UUID) *TaskEventUpsertBulk {
	return u.Update(func(s *TaskEventUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TaskEventUpsertBulk) UpdateTaskID() *TaskEventUpsertBulk {
	return u.Update(func(s *TaskEventUpsert) {
		s.UpdateTaskID()
	})
}

// SetChannel sets the "channel" field.
func (u *TaskEventUpsertBulk) SetChannel(v string) *TaskEventUpsertBulk {
	return u.Update(func(s *TaskEventUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *TaskEventUpsertBulk) UpdateChannel() *TaskEventUpsertBulk {
	return u.Update(func(s *TaskEventUpsert) {
		s.UpdateChannel()
	})
}

// SetType sets the "type" field.
func (u *TaskEventUpsertBulk) SetType(v string) *TaskEventUpsertBulk {
	return u.Update(func(s *TaskEventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *TaskEventUpsertBulk) UpdateType() *TaskEventUpsertBulk {
	return u.Update(func(s *TaskEventUpsert) {
		s.UpdateType()
	})
}

// SetPayload sets the "payload" field.
func (u *TaskEventUpsertBulk) SetPayload(v string) *TaskEventUpsertBulk {
	return u.Update(func(s *TaskEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *TaskEventUpsertBulk) UpdatePayload() *TaskEventUpsertBulk {
	return u.Update(func(s *TaskEventUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *TaskEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

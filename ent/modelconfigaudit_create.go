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
	"github.com/patchpilot/patchpilot/ent/modelconfigaudit"
)

// ModelConfigAuditCreate is the builder for creating a ModelConfigAudit entity.
type ModelConfigAuditCreate struct {
	config
	mutation *ModelConfigAuditMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPosition sets the "position" field.
func (_c *ModelConfigAuditCreate) SetPosition(v string) *ModelConfigAuditCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetOldModel sets the "old_model" field.
func (_c *ModelConfigAuditCreate) SetOldModel(v string) *ModelConfigAuditCreate {
	_c.mutation.SetOldModel(v)
	return _c
}

// SetNillableOldModel sets the "old_model" field if the given value is not nil.
func (_c *ModelConfigAuditCreate) SetNillableOldModel(v *string) *ModelConfigAuditCreate {
	if v != nil {
		_c.SetOldModel(*v)
	}
	return _c
}

// SetNewModel sets the "new_model" field.
func (_c *ModelConfigAuditCreate) SetNewModel(v string) *ModelConfigAuditCreate {
	_c.mutation.SetNewModel(v)
	return _c
}

// SetChangedBy sets the "changed_by" field.
func (_c *ModelConfigAuditCreate) SetChangedBy(v string) *ModelConfigAuditCreate {
	_c.mutation.SetChangedBy(v)
	return _c
}

// SetNillableChangedBy sets the "changed_by" field if the given value is not nil.
func (_c *ModelConfigAuditCreate) SetNillableChangedBy(v *string) *ModelConfigAuditCreate {
	if v != nil {
		_c.SetChangedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelConfigAuditCreate) SetCreatedAt(v time.Time) *ModelConfigAuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelConfigAuditCreate) SetNillableCreatedAt(v *time.Time) *ModelConfigAuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelConfigAuditCreate) SetID(v uuid.UUID) *ModelConfigAuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ModelConfigAuditCreate) SetNillableID(v *uuid.UUID) *ModelConfigAuditCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ModelConfigAuditMutation object of the builder.
func (_c *ModelConfigAuditCreate) Mutation() *ModelConfigAuditMutation {
	return _c.mutation
}

// Save creates the ModelConfigAudit in the database.
func (_c *ModelConfigAuditCreate) Save(ctx context.Context) (*ModelConfigAudit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelConfigAuditCreate) SaveX(ctx context.Context) *ModelConfigAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelConfigAuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelConfigAuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelConfigAuditCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelconfigaudit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := modelconfigaudit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelConfigAuditCreate) check() error {
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ModelConfigAudit.position"`)}
	}
	if _, ok := _c.mutation.NewModel(); !ok {
		return &ValidationError{Name: "new_model", err: errors.New(`ent: missing required field "ModelConfigAudit.new_model"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelConfigAudit.created_at"`)}
	}
	return nil
}

func (_c *ModelConfigAuditCreate) sqlSave(ctx context.Context) (*ModelConfigAudit, error) {
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

func (_c *ModelConfigAuditCreate) createSpec() (*ModelConfigAudit, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelConfigAudit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelconfigaudit.Table, sqlgraph.NewFieldSpec(modelconfigaudit.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(modelconfigaudit.FieldPosition, field.TypeString, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.OldModel(); ok {
		_spec.SetField(modelconfigaudit.FieldOldModel, field.TypeString, value)
		_node.OldModel = value
	}
	if value, ok := _c.mutation.NewModel(); ok {
		_spec.SetField(modelconfigaudit.FieldNewModel, field.TypeString, value)
		_node.NewModel = value
	}
	if value, ok := _c.mutation.ChangedBy(); ok {
		_spec.SetField(modelconfigaudit.FieldChangedBy, field.TypeString, value)
		_node.ChangedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelconfigaudit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelConfigAudit.Create().
//		SetPosition(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelConfigAuditUpsert) {
//			SetPosition(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelConfigAuditCreate) OnConflict(opts ...sql.ConflictOption) *ModelConfigAuditUpsertOne {
	_c.conflict = opts
	return &ModelConfigAuditUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelConfigAudit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelConfigAuditCreate) OnConflictColumns(columns ...string) *ModelConfigAuditUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelConfigAuditUpsertOne{
		create: _c,
	}
}

type (
	// ModelConfigAuditUpsertOne is the builder for "upsert"-ing
	//  one ModelConfigAudit node.
	ModelConfigAuditUpsertOne struct {
		create *ModelConfigAuditCreate
	}

	// ModelConfigAuditUpsert is the "OnConflict" setter.
	ModelConfigAuditUpsert struct {
		*sql.UpdateSet
	}
)

// SetPosition sets the "position" field.
func (u *ModelConfigAuditUpsert) SetPosition(v string) *ModelConfigAuditUpsert {
	u.Set(modelconfigaudit.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ModelConfigAuditUpsert) UpdatePosition() *ModelConfigAuditUpsert {
	u.SetExcluded(modelconfigaudit.FieldPosition)
	return u
}

// SetOldModel sets the "old_model" field.
func (u *ModelConfigAuditUpsert) SetOldModel(v string) *ModelConfigAuditUpsert {
	u.Set(modelconfigaudit.FieldOldModel, v)
	return u
}

// UpdateOldModel sets the "old_model" field to the value that was provided on create.
func (u *ModelConfigAuditUpsert) UpdateOldModel() *ModelConfigAuditUpsert {
	u.SetExcluded(modelconfigaudit.FieldOldModel)
	return u
}

// ClearOldModel clears the value of the "old_model" field.
func (u *ModelConfigAuditUpsert) ClearOldModel() *ModelConfigAuditUpsert {
	u.SetNull(modelconfigaudit.FieldOldModel)
	return u
}

// SetNewModel sets the "new_model" field.
func (u *ModelConfigAuditUpsert) SetNewModel(v string) *ModelConfigAuditUpsert {
	u.Set(modelconfigaudit.FieldNewModel, v)
	return u
}

// UpdateNewModel sets the "new_model" field to the value that was provided on create.
func (u *ModelConfigAuditUpsert) UpdateNewModel() *ModelConfigAuditUpsert {
	u.SetExcluded(modelconfigaudit.FieldNewModel)
	return u
}

// SetChangedBy sets the "changed_by" field.
func (u *ModelConfigAuditUpsert) SetChangedBy(v string) *ModelConfigAuditUpsert {
	u.Set(modelconfigaudit.FieldChangedBy, v)
	return u
}

// UpdateChangedBy sets the "changed_by" field to the value that was provided on create.
func (u *ModelConfigAuditUpsert) UpdateChangedBy() *ModelConfigAuditUpsert {
	u.SetExcluded(modelconfigaudit.FieldChangedBy)
	return u
}

// ClearChangedBy clears the value of the "changed_by" field.
func (u *ModelConfigAuditUpsert) ClearChangedBy() *ModelConfigAuditUpsert {
	u.SetNull(modelconfigaudit.FieldChangedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ModelConfigAudit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelconfigaudit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelConfigAuditUpsertOne) UpdateNewValues() *ModelConfigAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(modelconfigaudit.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(modelconfigaudit.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelConfigAudit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ModelConfigAuditUpsertOne) Ignore() *ModelConfigAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelConfigAuditUpsertOne) DoNothing() *ModelConfigAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelConfigAuditCreate.OnConflict
// documentation for more info.
func (u *ModelConfigAuditUpsertOne) Update(set func(*ModelConfigAuditUpsert)) *ModelConfigAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelConfigAuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetPosition sets the "position" field.
func (u *ModelConfigAuditUpsertOne) SetPosition(v string) *ModelConfigAuditUpsertOne {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.SetPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ModelConfigAuditUpsertOne) UpdatePosition() *ModelConfigAuditUpsertOne {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.UpdatePosition()
	})
}

// SetOldModel sets the "old_model" field.
func (u *ModelConfigAuditUpsertOne) SetOldModel(v string) *ModelConfigAuditUpsertOne {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.SetOldModel(v)
	})
}

// UpdateOldModel sets the "old_model" field to the value that was provided on create.
func (u *ModelConfigAuditUpsertOne) UpdateOldModel() *ModelConfigAuditUpsertOne {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.UpdateOldModel()
	})
}

// ClearOldModel clears the value of the "old_model" field.
func (u *ModelConfigAuditUpsertOne) ClearOldModel() *ModelConfigAuditUpsertOne {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.ClearOldModel()
	})
}

// SetNewModel sets the "new_model" field.
func (u *ModelConfigAuditUpsertOne) SetNewModel(v string) *ModelConfigAuditUpsertOne {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.SetNewModel(v)
	})
}

// UpdateNewModel sets the "new_model" field to the value that was provided on create.
func (u *ModelConfigAuditUpsertOne) UpdateNewModel() *ModelConfigAuditUpsertOne {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.UpdateNewModel()
	})
}

// SetChangedBy sets the "changed_by" field.
func (u *ModelConfigAuditUpsertOne) SetChangedBy(v string) *ModelConfigAuditUpsertOne {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.SetChangedBy(v)
	})
}

// UpdateChangedBy sets the "changed_by" field to the value that was provided on create.
func (u *ModelConfigAuditUpsertOne) UpdateChangedBy() *ModelConfigAuditUpsertOne {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.UpdateChangedBy()
	})
}

// ClearChangedBy clears the value of the "changed_by" field.
func (u *ModelConfigAuditUpsertOne) ClearChangedBy() *ModelConfigAuditUpsertOne {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.ClearChangedBy()
	})
}

// Exec executes the query.
func (u *ModelConfigAuditUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelConfigAuditCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelConfigAuditUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ModelConfigAuditUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ModelConfigAuditUpsertOne.ID is not supported by MySQL driver. Use ModelConfigAuditUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ModelConfigAuditUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ModelConfigAuditCreateBulk is the builder for creating many ModelConfigAudit entities in bulk.
type ModelConfigAuditCreateBulk struct {
	config
	err      error
	builders []*ModelConfigAuditCreate
	conflict []sql.ConflictOption
}

// Save creates the ModelConfigAudit entities in the database.
func (_c *ModelConfigAuditCreateBulk) Save(ctx context.Context) ([]*ModelConfigAudit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelConfigAudit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelConfigAuditMutation)
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
func (_c *ModelConfigAuditCreateBulk) SaveX(ctx context.Context) []*ModelConfigAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelConfigAuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelConfigAuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelConfigAudit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelConfigAuditUpsert) {
//			SetPosition(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelConfigAuditCreateBulk) OnConflict(opts ...sql.ConflictOption) *ModelConfigAuditUpsertBulk {
	_c.conflict = opts
	return &ModelConfigAuditUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelConfigAudit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelConfigAuditCreateBulk) OnConflictColumns(columns ...string) *ModelConfigAuditUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelConfigAuditUpsertBulk{
		create: _c,
	}
}

// ModelConfigAuditUpsertBulk is the builder for "upsert"-ing
// a bulk of ModelConfigAudit nodes.
type ModelConfigAuditUpsertBulk struct {
	create *ModelConfigAuditCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ModelConfigAudit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelconfigaudit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelConfigAuditUpsertBulk) UpdateNewValues() *ModelConfigAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(modelconfigaudit.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(modelconfigaudit.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelConfigAudit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ModelConfigAuditUpsertBulk) Ignore() *ModelConfigAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelConfigAuditUpsertBulk) DoNothing() *ModelConfigAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelConfigAuditCreateBulk.OnConflict
// documentation for more info.
func (u *ModelConfigAuditUpsertBulk) Update(set func(*ModelConfigAuditUpsert)) *ModelConfigAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelConfigAuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetPosition sets the "position" field.
func (u *ModelConfigAuditUpsertBulk) SetPosition(v string) *ModelConfigAuditUpsertBulk {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.SetPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ModelConfigAuditUpsertBulk) UpdatePosition() *ModelConfigAuditUpsertBulk {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.UpdatePosition()
	})
}

// SetOldModel sets the "old_model" field.
func (u *ModelConfigAuditUpsertBulk) SetOldModel(v string) *ModelConfigAuditUpsertBulk {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.SetOldModel(v)
	})
}

// UpdateOldModel sets the "old_model" field to the value that was provided on create.
func (u *ModelConfigAuditUpsertBulk) UpdateOldModel() *ModelConfigAuditUpsertBulk {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.UpdateOldModel()
	})
}

// ClearOldModel clears the value of the "old_model" field.
func (u *ModelConfigAuditUpsertBulk) ClearOldModel() *ModelConfigAuditUpsertBulk {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.ClearOldModel()
	})
}

// SetNewModel sets the "new_model" field.
func (u *ModelConfigAuditUpsertBulk) SetNewModel(v string) *ModelConfigAuditUpsertBulk {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.SetNewModel(v)
	})
}

// UpdateNewModel sets the "new_model" field to the value that was provided on create.
func (u *ModelConfigAuditUpsertBulk) UpdateNewModel() *ModelConfigAuditUpsertBulk {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.UpdateNewModel()
	})
}

// SetChangedBy sets the "changed_by" field.
func (u *ModelConfigAuditUpsertBulk) SetChangedBy(v string) *ModelConfigAuditUpsertBulk {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.SetChangedBy(v)
	})
}

// UpdateChangedBy sets the "changed_by" field to the value that was provided on create.
func (u *ModelConfigAuditUpsertBulk) UpdateChangedBy() *ModelConfigAuditUpsertBulk {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.UpdateChangedBy()
	})
}

// ClearChangedBy clears the value of the "changed_by" field.
func (u *ModelConfigAuditUpsertBulk) ClearChangedBy() *ModelConfigAuditUpsertBulk {
	return u.Update(func(s *ModelConfigAuditUpsert) {
		s.ClearChangedBy()
	})
}

// Exec executes the query.
func (u *ModelConfigAuditUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ModelConfigAuditCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelConfigAuditCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelConfigAuditUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/patchpilot/patchpilot/ent/modelconfig"
)

// ModelConfigCreate is the builder for creating a ModelConfig entity.
type ModelConfigCreate struct {
	config
	mutation *ModelConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPosition sets the "position" field.
func (_c *ModelConfigCreate) SetPosition(v string) *ModelConfigCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ModelConfigCreate) SetModel(v string) *ModelConfigCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelConfigCreate) SetCreatedAt(v time.Time) *ModelConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableCreatedAt(v *time.Time) *ModelConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModelConfigCreate) SetUpdatedAt(v time.Time) *ModelConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableUpdatedAt(v *time.Time) *ModelConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelConfigCreate) SetID(v uuid.UUID) *ModelConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableID(v *uuid.UUID) *ModelConfigCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_c *ModelConfigCreate) Mutation() *ModelConfigMutation {
	return _c.mutation
}

// Save creates the ModelConfig in the database.
func (_c *ModelConfigCreate) Save(ctx context.Context) (*ModelConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelConfigCreate) SaveX(ctx context.Context) *ModelConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelConfigCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := modelconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := modelconfig.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelConfigCreate) check() error {
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ModelConfig.position"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ModelConfig.model"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModelConfig.updated_at"`)}
	}
	return nil
}

func (_c *ModelConfigCreate) sqlSave(ctx context.Context) (*ModelConfig, error) {
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

func (_c *ModelConfigCreate) createSpec() (*ModelConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelconfig.Table, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(modelconfig.FieldPosition, field.TypeString, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(modelconfig.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(modelconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelConfig.Create().
//		SetPosition(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelConfigUpsert) {
//			SetPosition(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelConfigCreate) OnConflict(opts ...sql.ConflictOption) *ModelConfigUpsertOne {
	_c.conflict = opts
	return &ModelConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelConfigCreate) OnConflictColumns(columns ...string) *ModelConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelConfigUpsertOne{
		create: _c,
	}
}

type (
	// ModelConfigUpsertOne is the builder for "upsert"-ing
	//  one ModelConfig node.
	ModelConfigUpsertOne struct {
		create *ModelConfigCreate
	}

	// ModelConfigUpsert is the "OnConflict" setter.
	ModelConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetPosition sets the "position" field.
func (u *ModelConfigUpsert) SetPosition(v string) *ModelConfigUpsert {
	u.Set(modelconfig.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdatePosition() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldPosition)
	return u
}

// SetModel sets the "model" field.
func (u *ModelConfigUpsert) SetModel(v string) *ModelConfigUpsert {
	u.Set(modelconfig.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateModel() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldModel)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelConfigUpsert) SetUpdatedAt(v time.Time) *ModelConfigUpsert {
	u.Set(modelconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelConfigUpsert) UpdateUpdatedAt() *ModelConfigUpsert {
	u.SetExcluded(modelconfig.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelConfigUpsertOne) UpdateNewValues() *ModelConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(modelconfig.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(modelconfig.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ModelConfigUpsertOne) Ignore() *ModelConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelConfigUpsertOne) DoNothing() *ModelConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelConfigCreate.OnConflict
// documentation for more info.
func (u *ModelConfigUpsertOne) Update(set func(*ModelConfigUpsert)) *ModelConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetPosition sets the "position" field.
func (u *ModelConfigUpsertOne) SetPosition(v string) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdatePosition() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdatePosition()
	})
}

// SetModel sets the "model" field.
func (u *ModelConfigUpsertOne) SetModel(v string) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateModel() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateModel()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelConfigUpsertOne) SetUpdatedAt(v time.Time) *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelConfigUpsertOne) UpdateUpdatedAt() *ModelConfigUpsertOne {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ModelConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ModelConfigUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ModelConfigUpsertOne.ID is not supported by MySQL driver. Use ModelConfigUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ModelConfigUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ModelConfigCreateBulk is the builder for creating many ModelConfig entities in bulk.
type ModelConfigCreateBulk struct {
	config
	err      error
	builders []*ModelConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the ModelConfig entities in the database.
func (_c *ModelConfigCreateBulk) Save(ctx context.Context) ([]*ModelConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelConfigMutation)
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
func (_c *ModelConfigCreateBulk) SaveX(ctx context.Context) []*ModelConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelConfigUpsert) {
//			SetPosition(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *ModelConfigUpsertBulk {
	_c.conflict = opts
	return &ModelConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelConfigCreateBulk) OnConflictColumns(columns ...string) *ModelConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelConfigUpsertBulk{
		create: _c,
	}
}

// ModelConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of ModelConfig nodes.
type ModelConfigUpsertBulk struct {
	create *ModelConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelConfigUpsertBulk) UpdateNewValues() *ModelConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(modelconfig.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(modelconfig.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ModelConfigUpsertBulk) Ignore() *ModelConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelConfigUpsertBulk) DoNothing() *ModelConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelConfigCreateBulk.OnConflict
// documentation for more info.
func (u *ModelConfigUpsertBulk) Update(set func(*ModelConfigUpsert)) *ModelConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetPosition sets the "position" field.
func (u *ModelConfigUpsertBulk) SetPosition(v string) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdatePosition() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdatePosition()
	})
}

// SetModel sets the "model" field.
func (u *ModelConfigUpsertBulk) SetModel(v string) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateModel() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateModel()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelConfigUpsertBulk) SetUpdatedAt(v time.Time) *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelConfigUpsertBulk) UpdateUpdatedAt() *ModelConfigUpsertBulk {
	return u.Update(func(s *ModelConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ModelConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ModelConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

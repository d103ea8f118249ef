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
	"github.com/patchpilot/patchpilot/ent/modelconfig"
	"github.com/patchpilot/patchpilot/ent/predicate"
)

// ModelConfigUpdate is the builder for updating ModelConfig entities.
type ModelConfigUpdate struct {
	config
	hooks    []Hook
	mutation *ModelConfigMutation
}

// Where appends a list predicates to the ModelConfigUpdate builder.
func (_u *ModelConfigUpdate) Where(ps ...predicate.ModelConfig) *ModelConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPosition sets the "position" field.
func (_u *ModelConfigUpdate) SetPosition(v string) *ModelConfigUpdate {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillablePosition(v *string) *ModelConfigUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ModelConfigUpdate) SetModel(v string) *ModelConfigUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableModel(v *string) *ModelConfigUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelConfigUpdate) SetUpdatedAt(v time.Time) *ModelConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_u *ModelConfigUpdate) Mutation() *ModelConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ModelConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(modelconfig.FieldPosition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(modelconfig.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelConfigUpdateOne is the builder for updating a single ModelConfig entity.
type ModelConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelConfigMutation
}

// SetPosition sets the "position" field.
func (_u *ModelConfigUpdateOne) SetPosition(v string) *ModelConfigUpdateOne {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillablePosition(v *string) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ModelConfigUpdateOne) SetModel(v string) *ModelConfigUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableModel(v *string) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelConfigUpdateOne) SetUpdatedAt(v time.Time) *ModelConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_u *ModelConfigUpdateOne) Mutation() *ModelConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelConfigUpdate builder.
func (_u *ModelConfigUpdateOne) Where(ps ...predicate.ModelConfig) *ModelConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelConfigUpdateOne) Select(field string, fields ...string) *ModelConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelConfig entity.
func (_u *ModelConfigUpdateOne) Save(ctx context.Context) (*ModelConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelConfigUpdateOne) SaveX(ctx context.Context) *ModelConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ModelConfigUpdateOne) sqlSave(ctx context.Context) (_node *ModelConfig, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelconfig.FieldID)
		for _, f := range fields {
			if !modelconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelconfig.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(modelconfig.FieldPosition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(modelconfig.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ModelConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

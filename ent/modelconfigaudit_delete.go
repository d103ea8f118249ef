// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/patchpilot/patchpilot/ent/modelconfigaudit"
	"github.com/patchpilot/patchpilot/ent/predicate"
)

// ModelConfigAuditDelete is the builder for deleting a ModelConfigAudit entity.
type ModelConfigAuditDelete struct {
	config
	hooks    []Hook
	mutation *ModelConfigAuditMutation
}

// Where appends a list predicates to the ModelConfigAuditDelete builder.
func (_d *ModelConfigAuditDelete) Where(ps ...predicate.ModelConfigAudit) *ModelConfigAuditDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ModelConfigAuditDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ModelConfigAuditDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ModelConfigAuditDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(modelconfigaudit.Table, sqlgraph.NewFieldSpec(modelconfigaudit.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ModelConfigAuditDeleteOne is the builder for deleting a single ModelConfigAudit entity.
type ModelConfigAuditDeleteOne struct {
	_d *ModelConfigAuditDelete
}

// Where appends a list predicates to the ModelConfigAuditDelete builder.
func (_d *ModelConfigAuditDeleteOne) Where(ps ...predicate.ModelConfigAudit) *ModelConfigAuditDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ModelConfigAuditDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{modelconfigaudit.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ModelConfigAuditDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

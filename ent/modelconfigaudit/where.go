// Code generated by ent, DO NOT EDIT.

package modelconfigaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLTE(FieldID, id))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldPosition, v))
}

// OldModel applies equality check predicate on the "old_model" field. It's identical to OldModelEQ.
func OldModel(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldOldModel, v))
}

// NewModel applies equality check predicate on the "new_model" field. It's identical to NewModelEQ.
func NewModel(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldNewModel, v))
}

// ChangedBy applies equality check predicate on the "changed_by" field. It's identical to ChangedByEQ.
func ChangedBy(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldChangedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldCreatedAt, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLTE(FieldPosition, v))
}

// PositionContains applies the Contains predicate on the "position" field.
func PositionContains(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContains(FieldPosition, v))
}

// PositionHasPrefix applies the HasPrefix predicate on the "position" field.
func PositionHasPrefix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasPrefix(FieldPosition, v))
}

// PositionHasSuffix applies the HasSuffix predicate on the "position" field.
func PositionHasSuffix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasSuffix(FieldPosition, v))
}

// PositionEqualFold applies the EqualFold predicate on the "position" field.
func PositionEqualFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEqualFold(FieldPosition, v))
}

// PositionContainsFold applies the ContainsFold predicate on the "position" field.
func PositionContainsFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContainsFold(FieldPosition, v))
}

// OldModelEQ applies the EQ predicate on the "old_model" field.
func OldModelEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldOldModel, v))
}

// OldModelNEQ applies the NEQ predicate on the "old_model" field.
func OldModelNEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNEQ(FieldOldModel, v))
}

// OldModelIn applies the In predicate on the "old_model" field.
func OldModelIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIn(FieldOldModel, vs...))
}

// OldModelNotIn applies the NotIn predicate on the "old_model" field.
func OldModelNotIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotIn(FieldOldModel, vs...))
}

// OldModelGT applies the GT predicate on the "old_model" field.
func OldModelGT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGT(FieldOldModel, v))
}

// OldModelGTE applies the GTE predicate on the "old_model" field.
func OldModelGTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGTE(FieldOldModel, v))
}

// OldModelLT applies the LT predicate on the "old_model" field.
func OldModelLT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLT(FieldOldModel, v))
}

// OldModelLTE applies the LTE predicate on the "old_model" field.
func OldModelLTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLTE(FieldOldModel, v))
}

// OldModelContains applies the Contains predicate on the "old_model" field.
func OldModelContains(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContains(FieldOldModel, v))
}

// OldModelHasPrefix applies the HasPrefix predicate on the "old_model" field.
func OldModelHasPrefix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasPrefix(FieldOldModel, v))
}

// OldModelHasSuffix applies the HasSuffix predicate on the "old_model" field.
func OldModelHasSuffix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasSuffix(FieldOldModel, v))
}

// OldModelIsNil applies the IsNil predicate on the "old_model" field.
func OldModelIsNil() predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIsNull(FieldOldModel))
}

// OldModelNotNil applies the NotNil predicate on the "old_model" field.
func OldModelNotNil() predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotNull(FieldOldModel))
}

// OldModelEqualFold applies the EqualFold predicate on the "old_model" field.
func OldModelEqualFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEqualFold(FieldOldModel, v))
}

// OldModelContainsFold applies the ContainsFold predicate on the "old_model" field.
func OldModelContainsFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContainsFold(FieldOldModel, v))
}

// NewModelEQ applies the EQ predicate on the "new_model" field.
func NewModelEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldNewModel, v))
}

// NewModelNEQ applies the NEQ predicate on the "new_model" field.
func NewModelNEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNEQ(FieldNewModel, v))
}

// NewModelIn applies the In predicate on the "new_model" field.
func NewModelIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIn(FieldNewModel, vs...))
}

// NewModelNotIn applies the NotIn predicate on the "new_model" field.
func NewModelNotIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotIn(FieldNewModel, vs...))
}

// NewModelGT applies the GT predicate on the "new_model" field.
func NewModelGT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGT(FieldNewModel, v))
}

// NewModelGTE applies the GTE predicate on the "new_model" field.
func NewModelGTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGTE(FieldNewModel, v))
}

// NewModelLT applies the LT predicate on the "new_model" field.
func NewModelLT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLT(FieldNewModel, v))
}

// NewModelLTE applies the LTE predicate on the "new_model" field.
func NewModelLTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLTE(FieldNewModel, v))
}

// NewModelContains applies the Contains predicate on the "new_model" field.
func NewModelContains(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContains(FieldNewModel, v))
}

// NewModelHasPrefix applies the HasPrefix predicate on the "new_model" field.
func NewModelHasPrefix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasPrefix(FieldNewModel, v))
}

// NewModelHasSuffix applies the HasSuffix predicate on the "new_model" field.
func NewModelHasSuffix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasSuffix(FieldNewModel, v))
}

// NewModelEqualFold applies the EqualFold predicate on the "new_model" field.
func NewModelEqualFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEqualFold(FieldNewModel, v))
}

// NewModelContainsFold applies the ContainsFold predicate on the "new_model" field.
func NewModelContainsFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContainsFold(FieldNewModel, v))
}

// ChangedByEQ applies the EQ predicate on the "changed_by" field.
func ChangedByEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldChangedBy, v))
}

// ChangedByNEQ applies the NEQ predicate on the "changed_by" field.
func ChangedByNEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNEQ(FieldChangedBy, v))
}

// ChangedByIn applies the In predicate on the "changed_by" field.
func ChangedByIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIn(FieldChangedBy, vs...))
}

// ChangedByNotIn applies the NotIn predicate on the "changed_by" field.
func ChangedByNotIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotIn(FieldChangedBy, vs...))
}

// ChangedByGT applies the GT predicate on the "changed_by" field.
func ChangedByGT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGT(FieldChangedBy, v))
}

// ChangedByGTE applies the GTE predicate on the "changed_by" field.
func ChangedByGTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGTE(FieldChangedBy, v))
}

// ChangedByLT applies the LT predicate on the "changed_by" field.
func ChangedByLT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLT(FieldChangedBy, v))
}

// ChangedByLTE applies the LTE predicate on the "changed_by" field.
func ChangedByLTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLTE(FieldChangedBy, v))
}

// ChangedByContains applies the Contains predicate on the "changed_by" field.
func ChangedByContains(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContains(FieldChangedBy, v))
}

// ChangedByHasPrefix applies the HasPrefix predicate on the "changed_by" field.
func ChangedByHasPrefix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasPrefix(FieldChangedBy, v))
}

// ChangedByHasSuffix applies the HasSuffix predicate on the "changed_by" field.
func ChangedByHasSuffix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasSuffix(FieldChangedBy, v))
}

// ChangedByIsNil applies the IsNil predicate on the "changed_by" field.
func ChangedByIsNil() predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIsNull(FieldChangedBy))
}

// ChangedByNotNil applies the NotNil predicate on the "changed_by" field.
func ChangedByNotNil() predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotNull(FieldChangedBy))
}

// ChangedByEqualFold applies the EqualFold predicate on the "changed_by" field.
func ChangedByEqualFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEqualFold(FieldChangedBy, v))
}

// ChangedByContainsFold applies the ContainsFold predicate on the "changed_by" field.
func ChangedByContainsFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContainsFold(FieldChangedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelConfigAudit) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelConfigAudit) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelConfigAudit) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.NotPredicates(p))
}

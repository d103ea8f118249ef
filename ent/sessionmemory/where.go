// Code generated by ent, DO NOT EDIT.

package sessionmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldTaskID, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldPhase, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldErrorCount, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldRetryCount, v))
}

// LastCheckpointID applies equality check predicate on the "last_checkpoint_id" field. It's identical to LastCheckpointIDEQ.
func LastCheckpointID(v uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldLastCheckpointID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldTaskID, vs...))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldPhase, v))
}

// ProgressIsNil applies the IsNil predicate on the "progress" field.
func ProgressIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldProgress))
}

// ProgressNotNil applies the NotNil predicate on the "progress" field.
func ProgressNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldProgress))
}

// AttemptsIsNil applies the IsNil predicate on the "attempts" field.
func AttemptsIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldAttempts))
}

// AttemptsNotNil applies the NotNil predicate on the "attempts" field.
func AttemptsNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldAttempts))
}

// FailurePatternsIsNil applies the IsNil predicate on the "failure_patterns" field.
func FailurePatternsIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldFailurePatterns))
}

// FailurePatternsNotNil applies the NotNil predicate on the "failure_patterns" field.
func FailurePatternsNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldFailurePatterns))
}

// OutputsIsNil applies the IsNil predicate on the "outputs" field.
func OutputsIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldOutputs))
}

// OutputsNotNil applies the NotNil predicate on the "outputs" field.
func OutputsNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldOutputs))
}

// OrchestrationIsNil applies the IsNil predicate on the "orchestration" field.
func OrchestrationIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldOrchestration))
}

// OrchestrationNotNil applies the NotNil predicate on the "orchestration" field.
func OrchestrationNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldOrchestration))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldErrorCount, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldRetryCount, v))
}

// LastCheckpointIDEQ applies the EQ predicate on the "last_checkpoint_id" field.
func LastCheckpointIDEQ(v uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldLastCheckpointID, v))
}

// LastCheckpointIDNEQ applies the NEQ predicate on the "last_checkpoint_id" field.
func LastCheckpointIDNEQ(v uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldLastCheckpointID, v))
}

// LastCheckpointIDIn applies the In predicate on the "last_checkpoint_id" field.
func LastCheckpointIDIn(vs ...uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldLastCheckpointID, vs...))
}

// LastCheckpointIDNotIn applies the NotIn predicate on the "last_checkpoint_id" field.
func LastCheckpointIDNotIn(vs ...uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldLastCheckpointID, vs...))
}

// LastCheckpointIDGT applies the GT predicate on the "last_checkpoint_id" field.
func LastCheckpointIDGT(v uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldLastCheckpointID, v))
}

// LastCheckpointIDGTE applies the GTE predicate on the "last_checkpoint_id" field.
func LastCheckpointIDGTE(v uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldLastCheckpointID, v))
}

// LastCheckpointIDLT applies the LT predicate on the "last_checkpoint_id" field.
func LastCheckpointIDLT(v uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldLastCheckpointID, v))
}

// LastCheckpointIDLTE applies the LTE predicate on the "last_checkpoint_id" field.
func LastCheckpointIDLTE(v uuid.UUID) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldLastCheckpointID, v))
}

// LastCheckpointIDIsNil applies the IsNil predicate on the "last_checkpoint_id" field.
func LastCheckpointIDIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldLastCheckpointID))
}

// LastCheckpointIDNotNil applies the NotNil predicate on the "last_checkpoint_id" field.
func LastCheckpointIDNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldLastCheckpointID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.SessionMemory {
	return predicate.SessionMemory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.SessionMemory {
	return predicate.SessionMemory(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.NotPredicates(p))
}

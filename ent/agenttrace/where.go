// Code generated by ent, DO NOT EDIT.

package agenttrace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldTaskID, v))
}

// ParentTraceID applies equality check predicate on the "parent_trace_id" field. It's identical to ParentTraceIDEQ.
func ParentTraceID(v uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldParentTraceID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldStage, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldModel, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldPosition, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldOutputTokens, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldCostUsd, v))
}

// OutputSummary applies equality check predicate on the "output_summary" field. It's identical to OutputSummaryEQ.
func OutputSummary(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldOutputSummary, v))
}

// GateName applies equality check predicate on the "gate_name" field. It's identical to GateNameEQ.
func GateName(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldGateName, v))
}

// GatePassed applies equality check predicate on the "gate_passed" field. It's identical to GatePassedEQ.
func GatePassed(v bool) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldGatePassed, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldErrorType, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldEndedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldTaskID, vs...))
}

// ParentTraceIDEQ applies the EQ predicate on the "parent_trace_id" field.
func ParentTraceIDEQ(v uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldParentTraceID, v))
}

// ParentTraceIDNEQ applies the NEQ predicate on the "parent_trace_id" field.
func ParentTraceIDNEQ(v uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldParentTraceID, v))
}

// ParentTraceIDIn applies the In predicate on the "parent_trace_id" field.
func ParentTraceIDIn(vs ...uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldParentTraceID, vs...))
}

// ParentTraceIDNotIn applies the NotIn predicate on the "parent_trace_id" field.
func ParentTraceIDNotIn(vs ...uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldParentTraceID, vs...))
}

// ParentTraceIDGT applies the GT predicate on the "parent_trace_id" field.
func ParentTraceIDGT(v uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldParentTraceID, v))
}

// ParentTraceIDGTE applies the GTE predicate on the "parent_trace_id" field.
func ParentTraceIDGTE(v uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldParentTraceID, v))
}

// ParentTraceIDLT applies the LT predicate on the "parent_trace_id" field.
func ParentTraceIDLT(v uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldParentTraceID, v))
}

// ParentTraceIDLTE applies the LTE predicate on the "parent_trace_id" field.
func ParentTraceIDLTE(v uuid.UUID) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldParentTraceID, v))
}

// ParentTraceIDIsNil applies the IsNil predicate on the "parent_trace_id" field.
func ParentTraceIDIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldParentTraceID))
}

// ParentTraceIDNotNil applies the NotNil predicate on the "parent_trace_id" field.
func ParentTraceIDNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldParentTraceID))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldStage, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldModel, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldPosition, v))
}

// PositionContains applies the Contains predicate on the "position" field.
func PositionContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldPosition, v))
}

// PositionHasPrefix applies the HasPrefix predicate on the "position" field.
func PositionHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldPosition, v))
}

// PositionHasSuffix applies the HasSuffix predicate on the "position" field.
func PositionHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldPosition, v))
}

// PositionEqualFold applies the EqualFold predicate on the "position" field.
func PositionEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldPosition, v))
}

// PositionContainsFold applies the ContainsFold predicate on the "position" field.
func PositionContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldPosition, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldStatus, vs...))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldOutputTokens, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldCostUsd, v))
}

// OutputSummaryEQ applies the EQ predicate on the "output_summary" field.
func OutputSummaryEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldOutputSummary, v))
}

// OutputSummaryNEQ applies the NEQ predicate on the "output_summary" field.
func OutputSummaryNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldOutputSummary, v))
}

// OutputSummaryIn applies the In predicate on the "output_summary" field.
func OutputSummaryIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldOutputSummary, vs...))
}

// OutputSummaryNotIn applies the NotIn predicate on the "output_summary" field.
func OutputSummaryNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldOutputSummary, vs...))
}

// OutputSummaryGT applies the GT predicate on the "output_summary" field.
func OutputSummaryGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldOutputSummary, v))
}

// OutputSummaryGTE applies the GTE predicate on the "output_summary" field.
func OutputSummaryGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldOutputSummary, v))
}

// OutputSummaryLT applies the LT predicate on the "output_summary" field.
func OutputSummaryLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldOutputSummary, v))
}

// OutputSummaryLTE applies the LTE predicate on the "output_summary" field.
func OutputSummaryLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldOutputSummary, v))
}

// OutputSummaryContains applies the Contains predicate on the "output_summary" field.
func OutputSummaryContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldOutputSummary, v))
}

// OutputSummaryHasPrefix applies the HasPrefix predicate on the "output_summary" field.
func OutputSummaryHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldOutputSummary, v))
}

// OutputSummaryHasSuffix applies the HasSuffix predicate on the "output_summary" field.
func OutputSummaryHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldOutputSummary, v))
}

// OutputSummaryIsNil applies the IsNil predicate on the "output_summary" field.
func OutputSummaryIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldOutputSummary))
}

// OutputSummaryNotNil applies the NotNil predicate on the "output_summary" field.
func OutputSummaryNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldOutputSummary))
}

// OutputSummaryEqualFold applies the EqualFold predicate on the "output_summary" field.
func OutputSummaryEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldOutputSummary, v))
}

// OutputSummaryContainsFold applies the ContainsFold predicate on the "output_summary" field.
func OutputSummaryContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldOutputSummary, v))
}

// GateNameEQ applies the EQ predicate on the "gate_name" field.
func GateNameEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldGateName, v))
}

// GateNameNEQ applies the NEQ predicate on the "gate_name" field.
func GateNameNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldGateName, v))
}

// GateNameIn applies the In predicate on the "gate_name" field.
func GateNameIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldGateName, vs...))
}

// GateNameNotIn applies the NotIn predicate on the "gate_name" field.
func GateNameNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldGateName, vs...))
}

// GateNameGT applies the GT predicate on the "gate_name" field.
func GateNameGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldGateName, v))
}

// GateNameGTE applies the GTE predicate on the "gate_name" field.
func GateNameGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldGateName, v))
}

// GateNameLT applies the LT predicate on the "gate_name" field.
func GateNameLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldGateName, v))
}

// GateNameLTE applies the LTE predicate on the "gate_name" field.
func GateNameLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldGateName, v))
}

// GateNameContains applies the Contains predicate on the "gate_name" field.
func GateNameContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldGateName, v))
}

// GateNameHasPrefix applies the HasPrefix predicate on the "gate_name" field.
func GateNameHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldGateName, v))
}

// GateNameHasSuffix applies the HasSuffix predicate on the "gate_name" field.
func GateNameHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldGateName, v))
}

// GateNameIsNil applies the IsNil predicate on the "gate_name" field.
func GateNameIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldGateName))
}

// GateNameNotNil applies the NotNil predicate on the "gate_name" field.
func GateNameNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldGateName))
}

// GateNameEqualFold applies the EqualFold predicate on the "gate_name" field.
func GateNameEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldGateName, v))
}

// GateNameContainsFold applies the ContainsFold predicate on the "gate_name" field.
func GateNameContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldGateName, v))
}

// GatePassedEQ applies the EQ predicate on the "gate_passed" field.
func GatePassedEQ(v bool) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldGatePassed, v))
}

// GatePassedNEQ applies the NEQ predicate on the "gate_passed" field.
func GatePassedNEQ(v bool) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldGatePassed, v))
}

// GatePassedIsNil applies the IsNil predicate on the "gate_passed" field.
func GatePassedIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldGatePassed))
}

// GatePassedNotNil applies the NotNil predicate on the "gate_passed" field.
func GatePassedNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldGatePassed))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeIsNil applies the IsNil predicate on the "error_type" field.
func ErrorTypeIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldErrorType))
}

// ErrorTypeNotNil applies the NotNil predicate on the "error_type" field.
func ErrorTypeNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldErrorType))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldErrorType, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldEndedAt))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.AgentTrace {
	return predicate.AgentTrace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.AgentTrace {
	return predicate.AgentTrace(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentTrace) predicate.AgentTrace {
	return predicate.AgentTrace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentTrace) predicate.AgentTrace {
	return predicate.AgentTrace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentTrace) predicate.AgentTrace {
	return predicate.AgentTrace(sql.NotPredicates(p))
}

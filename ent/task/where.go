// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/predicate"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// RepoOwner applies equality check predicate on the "repo_owner" field. It's identical to RepoOwnerEQ.
func RepoOwner(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepoOwner, v))
}

// RepoName applies equality check predicate on the "repo_name" field. It's identical to RepoNameEQ.
func RepoName(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepoName, v))
}

// IssueNumber applies equality check predicate on the "issue_number" field. It's identical to IssueNumberEQ.
func IssueNumber(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueNumber, v))
}

// IssueTitle applies equality check predicate on the "issue_title" field. It's identical to IssueTitleEQ.
func IssueTitle(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueTitle, v))
}

// IssueBody applies equality check predicate on the "issue_body" field. It's identical to IssueBodyEQ.
func IssueBody(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueBody, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttemptCount, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTotalAttempts, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxAttempts, v))
}

// EscalationLevel applies equality check predicate on the "escalation_level" field. It's identical to EscalationLevelEQ.
func EscalationLevel(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEscalationLevel, v))
}

// ParentTaskID applies equality check predicate on the "parent_task_id" field. It's identical to ParentTaskIDEQ.
func ParentTaskID(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldParentTaskID, v))
}

// SubtaskIndex applies equality check predicate on the "subtask_index" field. It's identical to SubtaskIndexEQ.
func SubtaskIndex(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSubtaskIndex, v))
}

// IsOrchestrated applies equality check predicate on the "is_orchestrated" field. It's identical to IsOrchestratedEQ.
func IsOrchestrated(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsOrchestrated, v))
}

// EstimatedComplexity applies equality check predicate on the "estimated_complexity" field. It's identical to EstimatedComplexityEQ.
func EstimatedComplexity(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedComplexity, v))
}

// EstimatedEffort applies equality check predicate on the "estimated_effort" field. It's identical to EstimatedEffortEQ.
func EstimatedEffort(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedEffort, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBranchName, v))
}

// CurrentDiff applies equality check predicate on the "current_diff" field. It's identical to CurrentDiffEQ.
func CurrentDiff(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCurrentDiff, v))
}

// CommitMessage applies equality check predicate on the "commit_message" field. It's identical to CommitMessageEQ.
func CommitMessage(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCommitMessage, v))
}

// PrNumber applies equality check predicate on the "pr_number" field. It's identical to PrNumberEQ.
func PrNumber(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrNumber, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrURL, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastError, v))
}

// WebhookSource applies equality check predicate on the "webhook_source" field. It's identical to WebhookSourceEQ.
func WebhookSource(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWebhookSource, v))
}

// WebhookDeliveryID applies equality check predicate on the "webhook_delivery_id" field. It's identical to WebhookDeliveryIDEQ.
func WebhookDeliveryID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWebhookDeliveryID, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldClaimedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// RepoOwnerEQ applies the EQ predicate on the "repo_owner" field.
func RepoOwnerEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepoOwner, v))
}

// RepoOwnerNEQ applies the NEQ predicate on the "repo_owner" field.
func RepoOwnerNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRepoOwner, v))
}

// RepoOwnerIn applies the In predicate on the "repo_owner" field.
func RepoOwnerIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRepoOwner, vs...))
}

// RepoOwnerNotIn applies the NotIn predicate on the "repo_owner" field.
func RepoOwnerNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRepoOwner, vs...))
}

// RepoOwnerGT applies the GT predicate on the "repo_owner" field.
func RepoOwnerGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRepoOwner, v))
}

// RepoOwnerGTE applies the GTE predicate on the "repo_owner" field.
func RepoOwnerGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRepoOwner, v))
}

// RepoOwnerLT applies the LT predicate on the "repo_owner" field.
func RepoOwnerLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRepoOwner, v))
}

// RepoOwnerLTE applies the LTE predicate on the "repo_owner" field.
func RepoOwnerLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRepoOwner, v))
}

// RepoOwnerContains applies the Contains predicate on the "repo_owner" field.
func RepoOwnerContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldRepoOwner, v))
}

// RepoOwnerHasPrefix applies the HasPrefix predicate on the "repo_owner" field.
func RepoOwnerHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldRepoOwner, v))
}

// RepoOwnerHasSuffix applies the HasSuffix predicate on the "repo_owner" field.
func RepoOwnerHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldRepoOwner, v))
}

// RepoOwnerEqualFold applies the EqualFold predicate on the "repo_owner" field.
func RepoOwnerEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldRepoOwner, v))
}

// RepoOwnerContainsFold applies the ContainsFold predicate on the "repo_owner" field.
func RepoOwnerContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldRepoOwner, v))
}

// RepoNameEQ applies the EQ predicate on the "repo_name" field.
func RepoNameEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepoName, v))
}

// RepoNameNEQ applies the NEQ predicate on the "repo_name" field.
func RepoNameNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRepoName, v))
}

// RepoNameIn applies the In predicate on the "repo_name" field.
func RepoNameIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRepoName, vs...))
}

// RepoNameNotIn applies the NotIn predicate on the "repo_name" field.
func RepoNameNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRepoName, vs...))
}

// RepoNameGT applies the GT predicate on the "repo_name" field.
func RepoNameGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRepoName, v))
}

// RepoNameGTE applies the GTE predicate on the "repo_name" field.
func RepoNameGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRepoName, v))
}

// RepoNameLT applies the LT predicate on the "repo_name" field.
func RepoNameLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRepoName, v))
}

// RepoNameLTE applies the LTE predicate on the "repo_name" field.
func RepoNameLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRepoName, v))
}

// RepoNameContains applies the Contains predicate on the "repo_name" field.
func RepoNameContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldRepoName, v))
}

// RepoNameHasPrefix applies the HasPrefix predicate on the "repo_name" field.
func RepoNameHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldRepoName, v))
}

// RepoNameHasSuffix applies the HasSuffix predicate on the "repo_name" field.
func RepoNameHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldRepoName, v))
}

// RepoNameEqualFold applies the EqualFold predicate on the "repo_name" field.
func RepoNameEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldRepoName, v))
}

// RepoNameContainsFold applies the ContainsFold predicate on the "repo_name" field.
func RepoNameContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldRepoName, v))
}

// IssueNumberEQ applies the EQ predicate on the "issue_number" field.
func IssueNumberEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueNumber, v))
}

// IssueNumberNEQ applies the NEQ predicate on the "issue_number" field.
func IssueNumberNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIssueNumber, v))
}

// IssueNumberIn applies the In predicate on the "issue_number" field.
func IssueNumberIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldIssueNumber, vs...))
}

// IssueNumberNotIn applies the NotIn predicate on the "issue_number" field.
func IssueNumberNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldIssueNumber, vs...))
}

// IssueNumberGT applies the GT predicate on the "issue_number" field.
func IssueNumberGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldIssueNumber, v))
}

// IssueNumberGTE applies the GTE predicate on the "issue_number" field.
func IssueNumberGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldIssueNumber, v))
}

// IssueNumberLT applies the LT predicate on the "issue_number" field.
func IssueNumberLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldIssueNumber, v))
}

// IssueNumberLTE applies the LTE predicate on the "issue_number" field.
func IssueNumberLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldIssueNumber, v))
}

// IssueTitleEQ applies the EQ predicate on the "issue_title" field.
func IssueTitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueTitle, v))
}

// IssueTitleNEQ applies the NEQ predicate on the "issue_title" field.
func IssueTitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIssueTitle, v))
}

// IssueTitleIn applies the In predicate on the "issue_title" field.
func IssueTitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldIssueTitle, vs...))
}

// IssueTitleNotIn applies the NotIn predicate on the "issue_title" field.
func IssueTitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldIssueTitle, vs...))
}

// IssueTitleGT applies the GT predicate on the "issue_title" field.
func IssueTitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldIssueTitle, v))
}

// IssueTitleGTE applies the GTE predicate on the "issue_title" field.
func IssueTitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldIssueTitle, v))
}

// IssueTitleLT applies the LT predicate on the "issue_title" field.
func IssueTitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldIssueTitle, v))
}

// IssueTitleLTE applies the LTE predicate on the "issue_title" field.
func IssueTitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldIssueTitle, v))
}

// IssueTitleContains applies the Contains predicate on the "issue_title" field.
func IssueTitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldIssueTitle, v))
}

// IssueTitleHasPrefix applies the HasPrefix predicate on the "issue_title" field.
func IssueTitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldIssueTitle, v))
}

// IssueTitleHasSuffix applies the HasSuffix predicate on the "issue_title" field.
func IssueTitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldIssueTitle, v))
}

// IssueTitleEqualFold applies the EqualFold predicate on the "issue_title" field.
func IssueTitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldIssueTitle, v))
}

// IssueTitleContainsFold applies the ContainsFold predicate on the "issue_title" field.
func IssueTitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldIssueTitle, v))
}

// IssueBodyEQ applies the EQ predicate on the "issue_body" field.
func IssueBodyEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueBody, v))
}

// IssueBodyNEQ applies the NEQ predicate on the "issue_body" field.
func IssueBodyNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIssueBody, v))
}

// IssueBodyIn applies the In predicate on the "issue_body" field.
func IssueBodyIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldIssueBody, vs...))
}

// IssueBodyNotIn applies the NotIn predicate on the "issue_body" field.
func IssueBodyNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldIssueBody, vs...))
}

// IssueBodyGT applies the GT predicate on the "issue_body" field.
func IssueBodyGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldIssueBody, v))
}

// IssueBodyGTE applies the GTE predicate on the "issue_body" field.
func IssueBodyGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldIssueBody, v))
}

// IssueBodyLT applies the LT predicate on the "issue_body" field.
func IssueBodyLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldIssueBody, v))
}

// IssueBodyLTE applies the LTE predicate on the "issue_body" field.
func IssueBodyLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldIssueBody, v))
}

// IssueBodyContains applies the Contains predicate on the "issue_body" field.
func IssueBodyContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldIssueBody, v))
}

// IssueBodyHasPrefix applies the HasPrefix predicate on the "issue_body" field.
func IssueBodyHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldIssueBody, v))
}

// IssueBodyHasSuffix applies the HasSuffix predicate on the "issue_body" field.
func IssueBodyHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldIssueBody, v))
}

// IssueBodyIsNil applies the IsNil predicate on the "issue_body" field.
func IssueBodyIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldIssueBody))
}

// IssueBodyNotNil applies the NotNil predicate on the "issue_body" field.
func IssueBodyNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldIssueBody))
}

// IssueBodyEqualFold applies the EqualFold predicate on the "issue_body" field.
func IssueBodyEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldIssueBody, v))
}

// IssueBodyContainsFold applies the ContainsFold predicate on the "issue_body" field.
func IssueBodyContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldIssueBody, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v models.Status) predicate.Task {
	vc := v
	return predicate.Task(sql.FieldEQ(FieldStatus, vc))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v models.Status) predicate.Task {
	vc := v
	return predicate.Task(sql.FieldNEQ(FieldStatus, vc))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...models.Status) predicate.Task {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Task(sql.FieldIn(FieldStatus, v...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...models.Status) predicate.Task {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Task(sql.FieldNotIn(FieldStatus, v...))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAttemptCount, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTotalAttempts, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldMaxAttempts, v))
}

// EscalationLevelEQ applies the EQ predicate on the "escalation_level" field.
func EscalationLevelEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEscalationLevel, v))
}

// EscalationLevelNEQ applies the NEQ predicate on the "escalation_level" field.
func EscalationLevelNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEscalationLevel, v))
}

// EscalationLevelIn applies the In predicate on the "escalation_level" field.
func EscalationLevelIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEscalationLevel, vs...))
}

// EscalationLevelNotIn applies the NotIn predicate on the "escalation_level" field.
func EscalationLevelNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEscalationLevel, vs...))
}

// EscalationLevelGT applies the GT predicate on the "escalation_level" field.
func EscalationLevelGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEscalationLevel, v))
}

// EscalationLevelGTE applies the GTE predicate on the "escalation_level" field.
func EscalationLevelGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEscalationLevel, v))
}

// EscalationLevelLT applies the LT predicate on the "escalation_level" field.
func EscalationLevelLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEscalationLevel, v))
}

// EscalationLevelLTE applies the LTE predicate on the "escalation_level" field.
func EscalationLevelLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEscalationLevel, v))
}

// ParentTaskIDEQ applies the EQ predicate on the "parent_task_id" field.
func ParentTaskIDEQ(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldParentTaskID, v))
}

// ParentTaskIDNEQ applies the NEQ predicate on the "parent_task_id" field.
func ParentTaskIDNEQ(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldParentTaskID, v))
}

// ParentTaskIDIn applies the In predicate on the "parent_task_id" field.
func ParentTaskIDIn(vs ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldParentTaskID, vs...))
}

// ParentTaskIDNotIn applies the NotIn predicate on the "parent_task_id" field.
func ParentTaskIDNotIn(vs ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldParentTaskID, vs...))
}

// ParentTaskIDIsNil applies the IsNil predicate on the "parent_task_id" field.
func ParentTaskIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldParentTaskID))
}

// ParentTaskIDNotNil applies the NotNil predicate on the "parent_task_id" field.
func ParentTaskIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldParentTaskID))
}

// SubtaskIndexEQ applies the EQ predicate on the "subtask_index" field.
func SubtaskIndexEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSubtaskIndex, v))
}

// SubtaskIndexNEQ applies the NEQ predicate on the "subtask_index" field.
func SubtaskIndexNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSubtaskIndex, v))
}

// SubtaskIndexIn applies the In predicate on the "subtask_index" field.
func SubtaskIndexIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSubtaskIndex, vs...))
}

// SubtaskIndexNotIn applies the NotIn predicate on the "subtask_index" field.
func SubtaskIndexNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSubtaskIndex, vs...))
}

// SubtaskIndexGT applies the GT predicate on the "subtask_index" field.
func SubtaskIndexGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldSubtaskIndex, v))
}

// SubtaskIndexGTE applies the GTE predicate on the "subtask_index" field.
func SubtaskIndexGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldSubtaskIndex, v))
}

// SubtaskIndexLT applies the LT predicate on the "subtask_index" field.
func SubtaskIndexLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldSubtaskIndex, v))
}

// SubtaskIndexLTE applies the LTE predicate on the "subtask_index" field.
func SubtaskIndexLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldSubtaskIndex, v))
}

// SubtaskIndexIsNil applies the IsNil predicate on the "subtask_index" field.
func SubtaskIndexIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldSubtaskIndex))
}

// SubtaskIndexNotNil applies the NotNil predicate on the "subtask_index" field.
func SubtaskIndexNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldSubtaskIndex))
}

// IsOrchestratedEQ applies the EQ predicate on the "is_orchestrated" field.
func IsOrchestratedEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsOrchestrated, v))
}

// IsOrchestratedNEQ applies the NEQ predicate on the "is_orchestrated" field.
func IsOrchestratedNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIsOrchestrated, v))
}

// DefinitionOfDoneIsNil applies the IsNil predicate on the "definition_of_done" field.
func DefinitionOfDoneIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDefinitionOfDone))
}

// DefinitionOfDoneNotNil applies the NotNil predicate on the "definition_of_done" field.
func DefinitionOfDoneNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDefinitionOfDone))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPlan))
}

// TargetFilesIsNil applies the IsNil predicate on the "target_files" field.
func TargetFilesIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldTargetFiles))
}

// TargetFilesNotNil applies the NotNil predicate on the "target_files" field.
func TargetFilesNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldTargetFiles))
}

// EstimatedComplexityEQ applies the EQ predicate on the "estimated_complexity" field.
func EstimatedComplexityEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedComplexity, v))
}

// EstimatedComplexityNEQ applies the NEQ predicate on the "estimated_complexity" field.
func EstimatedComplexityNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEstimatedComplexity, v))
}

// EstimatedComplexityIn applies the In predicate on the "estimated_complexity" field.
func EstimatedComplexityIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEstimatedComplexity, vs...))
}

// EstimatedComplexityNotIn applies the NotIn predicate on the "estimated_complexity" field.
func EstimatedComplexityNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEstimatedComplexity, vs...))
}

// EstimatedComplexityGT applies the GT predicate on the "estimated_complexity" field.
func EstimatedComplexityGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEstimatedComplexity, v))
}

// EstimatedComplexityGTE applies the GTE predicate on the "estimated_complexity" field.
func EstimatedComplexityGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEstimatedComplexity, v))
}

// EstimatedComplexityLT applies the LT predicate on the "estimated_complexity" field.
func EstimatedComplexityLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEstimatedComplexity, v))
}

// EstimatedComplexityLTE applies the LTE predicate on the "estimated_complexity" field.
func EstimatedComplexityLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEstimatedComplexity, v))
}

// EstimatedComplexityContains applies the Contains predicate on the "estimated_complexity" field.
func EstimatedComplexityContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldEstimatedComplexity, v))
}

// EstimatedComplexityHasPrefix applies the HasPrefix predicate on the "estimated_complexity" field.
func EstimatedComplexityHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldEstimatedComplexity, v))
}

// EstimatedComplexityHasSuffix applies the HasSuffix predicate on the "estimated_complexity" field.
func EstimatedComplexityHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldEstimatedComplexity, v))
}

// EstimatedComplexityIsNil applies the IsNil predicate on the "estimated_complexity" field.
func EstimatedComplexityIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldEstimatedComplexity))
}

// EstimatedComplexityNotNil applies the NotNil predicate on the "estimated_complexity" field.
func EstimatedComplexityNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldEstimatedComplexity))
}

// EstimatedComplexityEqualFold applies the EqualFold predicate on the "estimated_complexity" field.
func EstimatedComplexityEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldEstimatedComplexity, v))
}

// EstimatedComplexityContainsFold applies the ContainsFold predicate on the "estimated_complexity" field.
func EstimatedComplexityContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldEstimatedComplexity, v))
}

// EstimatedEffortEQ applies the EQ predicate on the "estimated_effort" field.
func EstimatedEffortEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedEffort, v))
}

// EstimatedEffortNEQ applies the NEQ predicate on the "estimated_effort" field.
func EstimatedEffortNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEstimatedEffort, v))
}

// EstimatedEffortIn applies the In predicate on the "estimated_effort" field.
func EstimatedEffortIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEstimatedEffort, vs...))
}

// EstimatedEffortNotIn applies the NotIn predicate on the "estimated_effort" field.
func EstimatedEffortNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEstimatedEffort, vs...))
}

// EstimatedEffortGT applies the GT predicate on the "estimated_effort" field.
func EstimatedEffortGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEstimatedEffort, v))
}

// EstimatedEffortGTE applies the GTE predicate on the "estimated_effort" field.
func EstimatedEffortGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEstimatedEffort, v))
}

// EstimatedEffortLT applies the LT predicate on the "estimated_effort" field.
func EstimatedEffortLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEstimatedEffort, v))
}

// EstimatedEffortLTE applies the LTE predicate on the "estimated_effort" field.
func EstimatedEffortLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEstimatedEffort, v))
}

// EstimatedEffortContains applies the Contains predicate on the "estimated_effort" field.
func EstimatedEffortContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldEstimatedEffort, v))
}

// EstimatedEffortHasPrefix applies the HasPrefix predicate on the "estimated_effort" field.
func EstimatedEffortHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldEstimatedEffort, v))
}

// EstimatedEffortHasSuffix applies the HasSuffix predicate on the "estimated_effort" field.
func EstimatedEffortHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldEstimatedEffort, v))
}

// EstimatedEffortIsNil applies the IsNil predicate on the "estimated_effort" field.
func EstimatedEffortIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldEstimatedEffort))
}

// EstimatedEffortNotNil applies the NotNil predicate on the "estimated_effort" field.
func EstimatedEffortNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldEstimatedEffort))
}

// EstimatedEffortEqualFold applies the EqualFold predicate on the "estimated_effort" field.
func EstimatedEffortEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldEstimatedEffort, v))
}

// EstimatedEffortContainsFold applies the ContainsFold predicate on the "estimated_effort" field.
func EstimatedEffortContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldEstimatedEffort, v))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameIsNil applies the IsNil predicate on the "branch_name" field.
func BranchNameIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldBranchName))
}

// BranchNameNotNil applies the NotNil predicate on the "branch_name" field.
func BranchNameNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldBranchName))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldBranchName, v))
}

// CurrentDiffEQ applies the EQ predicate on the "current_diff" field.
func CurrentDiffEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCurrentDiff, v))
}

// CurrentDiffNEQ applies the NEQ predicate on the "current_diff" field.
func CurrentDiffNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCurrentDiff, v))
}

// CurrentDiffIn applies the In predicate on the "current_diff" field.
func CurrentDiffIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCurrentDiff, vs...))
}

// CurrentDiffNotIn applies the NotIn predicate on the "current_diff" field.
func CurrentDiffNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCurrentDiff, vs...))
}

// CurrentDiffGT applies the GT predicate on the "current_diff" field.
func CurrentDiffGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCurrentDiff, v))
}

// CurrentDiffGTE applies the GTE predicate on the "current_diff" field.
func CurrentDiffGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCurrentDiff, v))
}

// CurrentDiffLT applies the LT predicate on the "current_diff" field.
func CurrentDiffLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCurrentDiff, v))
}

// CurrentDiffLTE applies the LTE predicate on the "current_diff" field.
func CurrentDiffLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCurrentDiff, v))
}

// CurrentDiffContains applies the Contains predicate on the "current_diff" field.
func CurrentDiffContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCurrentDiff, v))
}

// CurrentDiffHasPrefix applies the HasPrefix predicate on the "current_diff" field.
func CurrentDiffHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCurrentDiff, v))
}

// CurrentDiffHasSuffix applies the HasSuffix predicate on the "current_diff" field.
func CurrentDiffHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCurrentDiff, v))
}

// CurrentDiffIsNil applies the IsNil predicate on the "current_diff" field.
func CurrentDiffIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCurrentDiff))
}

// CurrentDiffNotNil applies the NotNil predicate on the "current_diff" field.
func CurrentDiffNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCurrentDiff))
}

// CurrentDiffEqualFold applies the EqualFold predicate on the "current_diff" field.
func CurrentDiffEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCurrentDiff, v))
}

// CurrentDiffContainsFold applies the ContainsFold predicate on the "current_diff" field.
func CurrentDiffContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCurrentDiff, v))
}

// CommitMessageEQ applies the EQ predicate on the "commit_message" field.
func CommitMessageEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCommitMessage, v))
}

// CommitMessageNEQ applies the NEQ predicate on the "commit_message" field.
func CommitMessageNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCommitMessage, v))
}

// CommitMessageIn applies the In predicate on the "commit_message" field.
func CommitMessageIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCommitMessage, vs...))
}

// CommitMessageNotIn applies the NotIn predicate on the "commit_message" field.
func CommitMessageNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCommitMessage, vs...))
}

// CommitMessageGT applies the GT predicate on the "commit_message" field.
func CommitMessageGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCommitMessage, v))
}

// CommitMessageGTE applies the GTE predicate on the "commit_message" field.
func CommitMessageGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCommitMessage, v))
}

// CommitMessageLT applies the LT predicate on the "commit_message" field.
func CommitMessageLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCommitMessage, v))
}

// CommitMessageLTE applies the LTE predicate on the "commit_message" field.
func CommitMessageLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCommitMessage, v))
}

// CommitMessageContains applies the Contains predicate on the "commit_message" field.
func CommitMessageContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCommitMessage, v))
}

// CommitMessageHasPrefix applies the HasPrefix predicate on the "commit_message" field.
func CommitMessageHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCommitMessage, v))
}

// CommitMessageHasSuffix applies the HasSuffix predicate on the "commit_message" field.
func CommitMessageHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCommitMessage, v))
}

// CommitMessageIsNil applies the IsNil predicate on the "commit_message" field.
func CommitMessageIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCommitMessage))
}

// CommitMessageNotNil applies the NotNil predicate on the "commit_message" field.
func CommitMessageNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCommitMessage))
}

// CommitMessageEqualFold applies the EqualFold predicate on the "commit_message" field.
func CommitMessageEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCommitMessage, v))
}

// CommitMessageContainsFold applies the ContainsFold predicate on the "commit_message" field.
func CommitMessageContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCommitMessage, v))
}

// PrNumberEQ applies the EQ predicate on the "pr_number" field.
func PrNumberEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrNumber, v))
}

// PrNumberNEQ applies the NEQ predicate on the "pr_number" field.
func PrNumberNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPrNumber, v))
}

// PrNumberIn applies the In predicate on the "pr_number" field.
func PrNumberIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPrNumber, vs...))
}

// PrNumberNotIn applies the NotIn predicate on the "pr_number" field.
func PrNumberNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPrNumber, vs...))
}

// PrNumberGT applies the GT predicate on the "pr_number" field.
func PrNumberGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPrNumber, v))
}

// PrNumberGTE applies the GTE predicate on the "pr_number" field.
func PrNumberGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPrNumber, v))
}

// PrNumberLT applies the LT predicate on the "pr_number" field.
func PrNumberLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPrNumber, v))
}

// PrNumberLTE applies the LTE predicate on the "pr_number" field.
func PrNumberLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPrNumber, v))
}

// PrNumberIsNil applies the IsNil predicate on the "pr_number" field.
func PrNumberIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPrNumber))
}

// PrNumberNotNil applies the NotNil predicate on the "pr_number" field.
func PrNumberNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPrNumber))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPrURL, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldLastError, v))
}

// WebhookSourceEQ applies the EQ predicate on the "webhook_source" field.
func WebhookSourceEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWebhookSource, v))
}

// WebhookSourceNEQ applies the NEQ predicate on the "webhook_source" field.
func WebhookSourceNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldWebhookSource, v))
}

// WebhookSourceIn applies the In predicate on the "webhook_source" field.
func WebhookSourceIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldWebhookSource, vs...))
}

// WebhookSourceNotIn applies the NotIn predicate on the "webhook_source" field.
func WebhookSourceNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldWebhookSource, vs...))
}

// WebhookSourceGT applies the GT predicate on the "webhook_source" field.
func WebhookSourceGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldWebhookSource, v))
}

// WebhookSourceGTE applies the GTE predicate on the "webhook_source" field.
func WebhookSourceGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldWebhookSource, v))
}

// WebhookSourceLT applies the LT predicate on the "webhook_source" field.
func WebhookSourceLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldWebhookSource, v))
}

// WebhookSourceLTE applies the LTE predicate on the "webhook_source" field.
func WebhookSourceLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldWebhookSource, v))
}

// WebhookSourceContains applies the Contains predicate on the "webhook_source" field.
func WebhookSourceContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldWebhookSource, v))
}

// WebhookSourceHasPrefix applies the HasPrefix predicate on the "webhook_source" field.
func WebhookSourceHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldWebhookSource, v))
}

// WebhookSourceHasSuffix applies the HasSuffix predicate on the "webhook_source" field.
func WebhookSourceHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldWebhookSource, v))
}

// WebhookSourceIsNil applies the IsNil predicate on the "webhook_source" field.
func WebhookSourceIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldWebhookSource))
}

// WebhookSourceNotNil applies the NotNil predicate on the "webhook_source" field.
func WebhookSourceNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldWebhookSource))
}

// WebhookSourceEqualFold applies the EqualFold predicate on the "webhook_source" field.
func WebhookSourceEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldWebhookSource, v))
}

// WebhookSourceContainsFold applies the ContainsFold predicate on the "webhook_source" field.
func WebhookSourceContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldWebhookSource, v))
}

// WebhookDeliveryIDEQ applies the EQ predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWebhookDeliveryID, v))
}

// WebhookDeliveryIDNEQ applies the NEQ predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldWebhookDeliveryID, v))
}

// WebhookDeliveryIDIn applies the In predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldWebhookDeliveryID, vs...))
}

// WebhookDeliveryIDNotIn applies the NotIn predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldWebhookDeliveryID, vs...))
}

// WebhookDeliveryIDGT applies the GT predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldWebhookDeliveryID, v))
}

// WebhookDeliveryIDGTE applies the GTE predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldWebhookDeliveryID, v))
}

// WebhookDeliveryIDLT applies the LT predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldWebhookDeliveryID, v))
}

// WebhookDeliveryIDLTE applies the LTE predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldWebhookDeliveryID, v))
}

// WebhookDeliveryIDContains applies the Contains predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldWebhookDeliveryID, v))
}

// WebhookDeliveryIDHasPrefix applies the HasPrefix predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldWebhookDeliveryID, v))
}

// WebhookDeliveryIDHasSuffix applies the HasSuffix predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldWebhookDeliveryID, v))
}

// WebhookDeliveryIDIsNil applies the IsNil predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldWebhookDeliveryID))
}

// WebhookDeliveryIDNotNil applies the NotNil predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldWebhookDeliveryID))
}

// WebhookDeliveryIDEqualFold applies the EqualFold predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldWebhookDeliveryID, v))
}

// WebhookDeliveryIDContainsFold applies the ContainsFold predicate on the "webhook_delivery_id" field.
func WebhookDeliveryIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldWebhookDeliveryID, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldClaimedBy, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldClaimedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletedAt))
}

// HasMemory applies the HasEdge predicate on the "memory" edge.
func HasMemory() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, MemoryTable, MemoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemoryWith applies the HasEdge predicate on the "memory" edge with a given conditions (other predicates).
func HasMemoryWith(preds ...predicate.SessionMemory) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newMemoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.TaskEvent) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTraces applies the HasEdge predicate on the "traces" edge.
func HasTraces() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TracesTable, TracesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTracesWith applies the HasEdge predicate on the "traces" edge with a given conditions (other predicates).
func HasTracesWith(preds ...predicate.AgentTrace) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newTracesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Task) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.Task) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}

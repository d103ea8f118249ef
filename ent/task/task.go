// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/pkg/models"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRepoOwner holds the string denoting the repo_owner field in the database.
	FieldRepoOwner = "repo_owner"
	// FieldRepoName holds the string denoting the repo_name field in the database.
	FieldRepoName = "repo_name"
	// FieldIssueNumber holds the string denoting the issue_number field in the database.
	FieldIssueNumber = "issue_number"
	// FieldIssueTitle holds the string denoting the issue_title field in the database.
	FieldIssueTitle = "issue_title"
	// FieldIssueBody holds the string denoting the issue_body field in the database.
	FieldIssueBody = "issue_body"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldEscalationLevel holds the string denoting the escalation_level field in the database.
	FieldEscalationLevel = "escalation_level"
	// FieldParentTaskID holds the string denoting the parent_task_id field in the database.
	FieldParentTaskID = "parent_task_id"
	// FieldSubtaskIndex holds the string denoting the subtask_index field in the database.
	FieldSubtaskIndex = "subtask_index"
	// FieldIsOrchestrated holds the string denoting the is_orchestrated field in the database.
	FieldIsOrchestrated = "is_orchestrated"
	// FieldDefinitionOfDone holds the string denoting the definition_of_done field in the database.
	FieldDefinitionOfDone = "definition_of_done"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldTargetFiles holds the string denoting the target_files field in the database.
	FieldTargetFiles = "target_files"
	// FieldEstimatedComplexity holds the string denoting the estimated_complexity field in the database.
	FieldEstimatedComplexity = "estimated_complexity"
	// FieldEstimatedEffort holds the string denoting the estimated_effort field in the database.
	FieldEstimatedEffort = "estimated_effort"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldCurrentDiff holds the string denoting the current_diff field in the database.
	FieldCurrentDiff = "current_diff"
	// FieldCommitMessage holds the string denoting the commit_message field in the database.
	FieldCommitMessage = "commit_message"
	// FieldPrNumber holds the string denoting the pr_number field in the database.
	FieldPrNumber = "pr_number"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldWebhookSource holds the string denoting the webhook_source field in the database.
	FieldWebhookSource = "webhook_source"
	// FieldWebhookDeliveryID holds the string denoting the webhook_delivery_id field in the database.
	FieldWebhookDeliveryID = "webhook_delivery_id"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeMemory holds the string denoting the memory edge name in mutations.
	EdgeMemory = "memory"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeTraces holds the string denoting the traces edge name in mutations.
	EdgeTraces = "traces"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// MemoryTable is the table that holds the memory relation/edge.
	MemoryTable = "session_memories"
	// MemoryInverseTable is the table name for the SessionMemory entity.
	// It exists in this package in order to avoid circular dependency with the "sessionmemory" package.
	MemoryInverseTable = "session_memories"
	// MemoryColumn is the table column denoting the memory relation/edge.
	MemoryColumn = "task_id"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "checkpoints"
	// CheckpointsInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointsInverseTable = "checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "task_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "task_events"
	// EventsInverseTable is the table name for the TaskEvent entity.
	// It exists in this package in order to avoid circular dependency with the "taskevent" package.
	EventsInverseTable = "task_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "task_id"
	// TracesTable is the table that holds the traces relation/edge.
	TracesTable = "agent_traces"
	// TracesInverseTable is the table name for the AgentTrace entity.
	// It exists in this package in order to avoid circular dependency with the "agenttrace" package.
	TracesInverseTable = "agent_traces"
	// TracesColumn is the table column denoting the traces relation/edge.
	TracesColumn = "task_id"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "tasks"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_task_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "tasks"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldRepoOwner,
	FieldRepoName,
	FieldIssueNumber,
	FieldIssueTitle,
	FieldIssueBody,
	FieldStatus,
	FieldAttemptCount,
	FieldTotalAttempts,
	FieldMaxAttempts,
	FieldEscalationLevel,
	FieldParentTaskID,
	FieldSubtaskIndex,
	FieldIsOrchestrated,
	FieldDefinitionOfDone,
	FieldPlan,
	FieldTargetFiles,
	FieldEstimatedComplexity,
	FieldEstimatedEffort,
	FieldBranchName,
	FieldCurrentDiff,
	FieldCommitMessage,
	FieldPrNumber,
	FieldPrURL,
	FieldLastError,
	FieldWebhookSource,
	FieldWebhookDeliveryID,
	FieldClaimedBy,
	FieldClaimedAt,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultEscalationLevel holds the default value on creation for the "escalation_level" field.
	DefaultEscalationLevel int
	// DefaultIsOrchestrated holds the default value on creation for the "is_orchestrated" field.
	DefaultIsOrchestrated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

const DefaultStatus models.Status = "NEW"

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s models.Status) error {
	switch s {
	case "NEW", "PLANNING", "PLANNING_DONE", "BREAKDOWN_DONE", "ORCHESTRATING", "CODING", "CODING_DONE", "TESTING", "TESTS_FAILED", "FIXING", "TESTS_PASSED", "REVIEWING", "REVIEW_APPROVED", "REVIEW_REJECTED", "WAITING_HUMAN", "COMPLETED", "FAILED":
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRepoOwner orders the results by the repo_owner field.
func ByRepoOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoOwner, opts...).ToFunc()
}

// ByRepoName orders the results by the repo_name field.
func ByRepoName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoName, opts...).ToFunc()
}

// ByIssueNumber orders the results by the issue_number field.
func ByIssueNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueNumber, opts...).ToFunc()
}

// ByIssueTitle orders the results by the issue_title field.
func ByIssueTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueTitle, opts...).ToFunc()
}

// ByIssueBody orders the results by the issue_body field.
func ByIssueBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueBody, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByEscalationLevel orders the results by the escalation_level field.
func ByEscalationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationLevel, opts...).ToFunc()
}

// ByParentTaskID orders the results by the parent_task_id field.
func ByParentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTaskID, opts...).ToFunc()
}

// BySubtaskIndex orders the results by the subtask_index field.
func BySubtaskIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtaskIndex, opts...).ToFunc()
}

// ByIsOrchestrated orders the results by the is_orchestrated field.
func ByIsOrchestrated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOrchestrated, opts...).ToFunc()
}

// ByEstimatedComplexity orders the results by the estimated_complexity field.
func ByEstimatedComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedComplexity, opts...).ToFunc()
}

// ByEstimatedEffort orders the results by the estimated_effort field.
func ByEstimatedEffort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedEffort, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByCurrentDiff orders the results by the current_diff field.
func ByCurrentDiff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentDiff, opts...).ToFunc()
}

// ByCommitMessage orders the results by the commit_message field.
func ByCommitMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitMessage, opts...).ToFunc()
}

// ByPrNumber orders the results by the pr_number field.
func ByPrNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrNumber, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByWebhookSource orders the results by the webhook_source field.
func ByWebhookSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookSource, opts...).ToFunc()
}

// ByWebhookDeliveryID orders the results by the webhook_delivery_id field.
func ByWebhookDeliveryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookDeliveryID, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByMemoryField orders the results by memory field.
func ByMemoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemoryStep(), sql.OrderByField(field, opts...))
	}
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTracesCount orders the results by traces count.
func ByTracesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTracesStep(), opts...)
	}
}

// ByTraces orders the results by traces terms.
func ByTraces(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTracesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMemoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, MemoryTable, MemoryColumn),
	)
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newTracesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TracesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TracesTable, TracesColumn),
	)
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}

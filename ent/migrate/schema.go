// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentTracesColumns holds the columns for the "agent_traces" table.
	AgentTracesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "parent_trace_id", Type: field.TypeUUID, Nullable: true},
		{Name: "stage", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "position", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "output_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "gate_name", Type: field.TypeString, Nullable: true},
		{Name: "gate_passed", Type: field.TypeBool, Nullable: true},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// AgentTracesTable holds the schema information for the "agent_traces" table.
	AgentTracesTable = &schema.Table{
		Name:       "agent_traces",
		Columns:    AgentTracesColumns,
		PrimaryKey: []*schema.Column{AgentTracesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_traces_tasks_traces",
				Columns:    []*schema.Column{AgentTracesColumns[16]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agenttrace_task_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentTracesColumns[16], AgentTracesColumns[14]},
			},
			{
				Name:    "agenttrace_stage",
				Unique:  false,
				Columns: []*schema.Column{AgentTracesColumns[2]},
			},
			{
				Name:    "agenttrace_status",
				Unique:  false,
				Columns: []*schema.Column{AgentTracesColumns[5]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "snapshot", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_tasks_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[4]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[4], CheckpointsColumns[3]},
			},
		},
	}
	// ModelConfigsColumns holds the columns for the "model_configs" table.
	ModelConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeString, Unique: true},
		{Name: "model", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ModelConfigsTable holds the schema information for the "model_configs" table.
	ModelConfigsTable = &schema.Table{
		Name:       "model_configs",
		Columns:    ModelConfigsColumns,
		PrimaryKey: []*schema.Column{ModelConfigsColumns[0]},
	}
	// ModelConfigAuditsColumns holds the columns for the "model_config_audits" table.
	ModelConfigAuditsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeString},
		{Name: "old_model", Type: field.TypeString, Nullable: true},
		{Name: "new_model", Type: field.TypeString},
		{Name: "changed_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ModelConfigAuditsTable holds the schema information for the "model_config_audits" table.
	ModelConfigAuditsTable = &schema.Table{
		Name:       "model_config_audits",
		Columns:    ModelConfigAuditsColumns,
		PrimaryKey: []*schema.Column{ModelConfigAuditsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modelconfigaudit_position_created_at",
				Unique:  false,
				Columns: []*schema.Column{ModelConfigAuditsColumns[1], ModelConfigAuditsColumns[5]},
			},
		},
	}
	// RepositoriesColumns holds the columns for the "repositories" table.
	RepositoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "default_branch", Type: field.TypeString, Default: "main"},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RepositoriesTable holds the schema information for the "repositories" table.
	RepositoriesTable = &schema.Table{
		Name:       "repositories",
		Columns:    RepositoriesColumns,
		PrimaryKey: []*schema.Column{RepositoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "repository_owner_name",
				Unique:  true,
				Columns: []*schema.Column{RepositoriesColumns[1], RepositoriesColumns[2]},
			},
		},
	}
	// SessionMemoriesColumns holds the columns for the "session_memories" table.
	SessionMemoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "phase", Type: field.TypeString, Default: "planning"},
		{Name: "progress", Type: field.TypeJSON, Nullable: true},
		{Name: "attempts", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_patterns", Type: field.TypeJSON, Nullable: true},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "orchestration", Type: field.TypeJSON, Nullable: true},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_checkpoint_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeUUID, Unique: true},
	}
	// SessionMemoriesTable holds the schema information for the "session_memories" table.
	SessionMemoriesTable = &schema.Table{
		Name:       "session_memories",
		Columns:    SessionMemoriesColumns,
		PrimaryKey: []*schema.Column{SessionMemoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_memories_tasks_memory",
				Columns:    []*schema.Column{SessionMemoriesColumns[12]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "repo_owner", Type: field.TypeString},
		{Name: "repo_name", Type: field.TypeString},
		{Name: "issue_number", Type: field.TypeInt},
		{Name: "issue_title", Type: field.TypeString},
		{Name: "issue_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"NEW", "PLANNING", "PLANNING_DONE", "BREAKDOWN_DONE", "ORCHESTRATING", "CODING", "CODING_DONE", "TESTING", "TESTS_FAILED", "FIXING", "TESTS_PASSED", "REVIEWING", "REVIEW_APPROVED", "REVIEW_REJECTED", "WAITING_HUMAN", "COMPLETED", "FAILED"}, Default: "NEW"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "escalation_level", Type: field.TypeInt, Default: 0},
		{Name: "subtask_index", Type: field.TypeInt, Nullable: true},
		{Name: "is_orchestrated", Type: field.TypeBool, Default: false},
		{Name: "definition_of_done", Type: field.TypeJSON, Nullable: true},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "target_files", Type: field.TypeJSON, Nullable: true},
		{Name: "estimated_complexity", Type: field.TypeString, Nullable: true},
		{Name: "estimated_effort", Type: field.TypeString, Nullable: true},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "current_diff", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "commit_message", Type: field.TypeString, Nullable: true},
		{Name: "pr_number", Type: field.TypeInt, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "webhook_source", Type: field.TypeString, Nullable: true},
		{Name: "webhook_delivery_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "parent_task_id", Type: field.TypeUUID, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_tasks_children",
				Columns:    []*schema.Column{TasksColumns[33]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_parent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[33]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6], TasksColumns[29]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6], TasksColumns[28]},
			},
			{
				Name:    "task_webhook_delivery_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[25]},
			},
			{
				Name:    "task_repo_owner_repo_name_issue_number",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[2], TasksColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "parent_task_id IS NULL",
				},
			},
		},
	}
	// TaskEventsColumns holds the columns for the "task_events" table.
	TaskEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// TaskEventsTable holds the schema information for the "task_events" table.
	TaskEventsTable = &schema.Table{
		Name:       "task_events",
		Columns:    TaskEventsColumns,
		PrimaryKey: []*schema.Column{TaskEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_events_tasks_events",
				Columns:    []*schema.Column{TaskEventsColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskevent_task_id_id",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[5], TaskEventsColumns[0]},
			},
			{
				Name:    "taskevent_channel_id",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[1], TaskEventsColumns[0]},
			},
			{
				Name:    "taskevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentTracesTable,
		CheckpointsTable,
		ModelConfigsTable,
		ModelConfigAuditsTable,
		RepositoriesTable,
		SessionMemoriesTable,
		TasksTable,
		TaskEventsTable,
	}
)

func init() {
	AgentTracesTable.ForeignKeys[0].RefTable = TasksTable
	CheckpointsTable.ForeignKeys[0].RefTable = TasksTable
	SessionMemoriesTable.ForeignKeys[0].RefTable = TasksTable
	TasksTable.ForeignKeys[0].RefTable = TasksTable
	TaskEventsTable.ForeignKeys[0].RefTable = TasksTable
}

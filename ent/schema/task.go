package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/pkg/models"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("repo_owner"),
		field.String("repo_name"),
		field.Int("issue_number"),
		field.String("issue_title"),
		field.Text("issue_body").
			Optional(),
		field.Enum("status").
			GoType(models.Status("")).
			Default(string(models.StatusNew)),
		field.Int("attempt_count").
			Default(0).
			Comment("Same-stage retries; drives model escalation"),
		field.Int("total_attempts").
			Default(0).
			Comment("Cumulative attempts across stages, capped"),
		field.Int("max_attempts").
			Default(3),
		field.Int("escalation_level").
			Default(0),
		field.UUID("parent_task_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Set on subtask child tasks"),
		field.Int("subtask_index").
			Optional().
			Nillable(),
		field.Bool("is_orchestrated").
			Default(false).
			Comment("Parent went through breakdown"),
		field.JSON("definition_of_done", []string{}).
			Optional(),
		field.JSON("plan", []models.PlanStep{}).
			Optional(),
		field.JSON("target_files", []string{}).
			Optional(),
		field.String("estimated_complexity").
			Optional(),
		field.String("estimated_effort").
			Optional(),
		field.String("branch_name").
			Optional(),
		field.Text("current_diff").
			Optional(),
		field.String("commit_message").
			Optional(),
		field.Int("pr_number").
			Optional().
			Nillable(),
		field.String("pr_url").
			Optional(),
		field.Text("last_error").
			Optional(),
		field.String("webhook_source").
			Optional().
			Comment("Webhook source path segment that created this task"),
		field.String("webhook_delivery_id").
			Optional().
			Comment("Delivery id of the originating webhook event, for re-delivery dedupe"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Worker id for queue coordination"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("memory", SessionMemory.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", TaskEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("traces", AgentTrace.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("children", Task.Type).
			From("parent").
			Unique().
			Field("parent_task_id"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("parent_task_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("webhook_delivery_id"),

		// Latest-wins on re-trigger: one top-level task per issue. Child
		// tasks inherit the issue coordinate and are excluded.
		index.Fields("repo_owner", "repo_name", "issue_number").
			Unique().
			Annotations(entsql.IndexWhere("parent_task_id IS NULL")),
	}
}

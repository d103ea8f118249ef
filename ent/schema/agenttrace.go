package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AgentTrace holds the schema definition for the AgentTrace entity: one row
// per agent invocation, including failed ones.
type AgentTrace struct {
	ent.Schema
}

// Fields of the AgentTrace.
func (AgentTrace) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("task_id", uuid.UUID{}),
		field.UUID("parent_trace_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.String("stage").
			Comment("planner/coder/fixer/reviewer"),
		field.String("model"),
		field.String("position").
			Comment("Router position that resolved the model"),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Float("cost_usd").
			Default(0),
		field.Text("output_summary").
			Optional(),
		field.String("gate_name").
			Optional(),
		field.Bool("gate_passed").
			Optional().
			Nillable(),
		field.String("error_type").
			Optional(),
		field.Text("error_message").
			Optional(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentTrace.
func (AgentTrace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("traces").
			Unique().
			Required().
			Field("task_id"),
	}
}

// Indexes of the AgentTrace.
func (AgentTrace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "started_at"),
		index.Fields("stage"),
		index.Fields("status"),
	}
}

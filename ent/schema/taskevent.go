package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TaskEvent holds the schema definition for the TaskEvent entity. Events are
// published with NOTIFY and kept in this table so WebSocket clients can
// catch up from their last-seen cursor. The integer id doubles as the
// cursor.
type TaskEvent struct {
	ent.Schema
}

// Fields of the TaskEvent.
func (TaskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable(),
		field.UUID("task_id", uuid.UUID{}),
		field.String("channel").
			Comment("NOTIFY channel the event was published on"),
		field.String("type"),
		field.Text("payload").
			Comment("JSON envelope, also sent via pg_notify"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskEvent.
func (TaskEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("events").
			Unique().
			Required().
			Field("task_id"),
	}
}

// Indexes of the TaskEvent.
func (TaskEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "id"),
		index.Fields("channel", "id"),
		index.Fields("created_at"),
	}
}

package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/pkg/models"
)

// SessionMemory holds the schema definition for the SessionMemory entity.
// One row per task; the JSON columns are read-modify-written under a row
// lock by the memory service.
type SessionMemory struct {
	ent.Schema
}

// Fields of the SessionMemory.
func (SessionMemory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("task_id", uuid.UUID{}).
			Unique(),
		field.String("phase").
			Default(string(models.PhasePlanning)),
		field.JSON("progress", []models.ProgressEntry{}).
			Optional().
			Comment("Append-only ledger"),
		field.JSON("attempts", []models.AttemptRecord{}).
			Optional(),
		field.JSON("failure_patterns", []models.FailurePattern{}).
			Optional(),
		field.JSON("outputs", map[string]json.RawMessage{}).
			Optional().
			Comment("Write-once per agent"),
		field.JSON("orchestration", &models.OrchestrationState{}).
			Optional(),
		field.Int("error_count").
			Default(0),
		field.Int("retry_count").
			Default(0),
		field.UUID("last_checkpoint_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SessionMemory.
func (SessionMemory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("memory").
			Unique().
			Required().
			Field("task_id"),
	}
}

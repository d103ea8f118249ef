package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ModelConfig holds the schema definition for the ModelConfig entity: one
// row per router position override. Built-in defaults live in code; this
// table only stores deviations.
type ModelConfig struct {
	ent.Schema
}

// Fields of the ModelConfig.
func (ModelConfig) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("position").
			Unique(),
		field.String("model"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// ModelConfigAudit holds the schema definition for the ModelConfigAudit
// entity. Every change to the position table appends one row here.
type ModelConfigAudit struct {
	ent.Schema
}

// Fields of the ModelConfigAudit.
func (ModelConfigAudit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("position"),
		field.String("old_model").
			Optional().
			Comment("Empty when the position had no override"),
		field.String("new_model"),
		field.String("changed_by").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ModelConfigAudit.
func (ModelConfigAudit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position", "created_at"),
	}
}

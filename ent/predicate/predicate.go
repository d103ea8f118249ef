// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentTrace is the predicate function for agenttrace builders.
type AgentTrace func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// ModelConfig is the predicate function for modelconfig builders.
type ModelConfig func(*sql.Selector)

// ModelConfigAudit is the predicate function for modelconfigaudit builders.
type ModelConfigAudit func(*sql.Selector)

// Repository is the predicate function for repository builders.
type Repository func(*sql.Selector)

// SessionMemory is the predicate function for sessionmemory builders.
type SessionMemory func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskEvent is the predicate function for taskevent builders.
type TaskEvent func(*sql.Selector)

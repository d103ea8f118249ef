// Code generated by ent, DO NOT EDIT.

package modelconfigaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the modelconfigaudit type in the database.
	Label = "model_config_audit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldOldModel holds the string denoting the old_model field in the database.
	FieldOldModel = "old_model"
	// FieldNewModel holds the string denoting the new_model field in the database.
	FieldNewModel = "new_model"
	// FieldChangedBy holds the string denoting the changed_by field in the database.
	FieldChangedBy = "changed_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the modelconfigaudit in the database.
	Table = "model_config_audits"
)

// Columns holds all SQL columns for modelconfigaudit fields.
var Columns = []string{
	FieldID,
	FieldPosition,
	FieldOldModel,
	FieldNewModel,
	FieldChangedBy,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ModelConfigAudit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByOldModel orders the results by the old_model field.
func ByOldModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldModel, opts...).ToFunc()
}

// ByNewModel orders the results by the new_model field.
func ByNewModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewModel, opts...).ToFunc()
}

// ByChangedBy orders the results by the changed_by field.
func ByChangedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

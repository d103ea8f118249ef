// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/modelconfigaudit"
)

// ModelConfigAudit is the model entity for the ModelConfigAudit schema.
type ModelConfigAudit struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Position holds the value of the "position" field.
	Position string `json:"position,omitempty"`
	// Empty when the position had no override
	OldModel string `json:"old_model,omitempty"`
	// NewModel holds the value of the "new_model" field.
	NewModel string `json:"new_model,omitempty"`
	// ChangedBy holds the value of the "changed_by" field.
	ChangedBy string `json:"changed_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelConfigAudit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modelconfigaudit.FieldPosition, modelconfigaudit.FieldOldModel, modelconfigaudit.FieldNewModel, modelconfigaudit.FieldChangedBy:
			values[i] = new(sql.NullString)
		case modelconfigaudit.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case modelconfigaudit.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelConfigAudit fields.
func (_m *ModelConfigAudit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modelconfigaudit.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case modelconfigaudit.FieldPosition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = value.String
			}
		case modelconfigaudit.FieldOldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_model", values[i])
			} else if value.Valid {
				_m.OldModel = value.String
			}
		case modelconfigaudit.FieldNewModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_model", values[i])
			} else if value.Valid {
				_m.NewModel = value.String
			}
		case modelconfigaudit.FieldChangedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changed_by", values[i])
			} else if value.Valid {
				_m.ChangedBy = value.String
			}
		case modelconfigaudit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModelConfigAudit.
// This includes values selected through modifiers, order, etc.
func (_m *ModelConfigAudit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModelConfigAudit.
// Note that you need to call ModelConfigAudit.Unwrap() before calling this method if this ModelConfigAudit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelConfigAudit) Update() *ModelConfigAuditUpdateOne {
	return NewModelConfigAuditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelConfigAudit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelConfigAudit) Unwrap() *ModelConfigAudit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelConfigAudit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelConfigAudit) String() string {
	var builder strings.Builder
	builder.WriteString("ModelConfigAudit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("position=")
	builder.WriteString(_m.Position)
	builder.WriteString(", ")
	builder.WriteString("old_model=")
	builder.WriteString(_m.OldModel)
	builder.WriteString(", ")
	builder.WriteString("new_model=")
	builder.WriteString(_m.NewModel)
	builder.WriteString(", ")
	builder.WriteString("changed_by=")
	builder.WriteString(_m.ChangedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModelConfigAudits is a parsable slice of ModelConfigAudit.
type ModelConfigAudits []*ModelConfigAudit

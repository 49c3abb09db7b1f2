// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avinashj/socratic/ent/studentrecord"
)

// StudentRecord is the model entity for the StudentRecord schema.
type StudentRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Student identifier, one record per student
	StudentID string `json:"student_id,omitempty"`
	// JSON progress document
	Document string `json:"document,omitempty"`
	// Last save time
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case studentrecord.FieldStudentID, studentrecord.FieldDocument:
			values[i] = new(sql.NullString)
		case studentrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentRecord fields.
func (_m *StudentRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studentrecord.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case studentrecord.FieldDocument:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document", values[i])
			} else if value.Valid {
				_m.Document = value.String
			}
		case studentrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudentRecord.
// This includes values selected through modifiers, order, etc.
func (_m *StudentRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudentRecord.
// Note that you need to call StudentRecord.Unwrap() before calling this method if this StudentRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentRecord) Update() *StudentRecordUpdateOne {
	return NewStudentRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentRecord) Unwrap() *StudentRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudentRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentRecord) String() string {
	var builder strings.Builder
	builder.WriteString("StudentRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("document=")
	builder.WriteString(_m.Document)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudentRecords is a parsable slice of StudentRecord.
type StudentRecords []*StudentRecord

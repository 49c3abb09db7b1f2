package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentRecord holds the persisted progress document for a single student.
// The document is the canonical JSON form of progress.StudentProgress; the
// row is replaced wholesale on every save.
type StudentRecord struct {
	ent.Schema
}

func (StudentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Unique().
			Comment("Student identifier, one record per student"),
		field.Text("document").
			Comment("JSON progress document"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last save time"),
	}
}

func (StudentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
	}
}

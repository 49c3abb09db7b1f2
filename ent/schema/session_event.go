package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records tutoring session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session key grouping events, studentID_topic_seq"),
		field.String("student_id").
			NotEmpty().
			Comment("Student the session belongs to"),
		field.String("topic").
			NotEmpty().
			Comment("Topic under discussion"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("questions_asked").
			Default(0).
			Comment("Total questions (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.Bool("ended_early").
			Default(false).
			Comment("Session terminated before any question completed (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("student_id"),
		index.Fields("action"),
	}
}

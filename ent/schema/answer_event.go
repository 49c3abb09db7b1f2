package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single evaluated answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("student_id").
			NotEmpty().
			Comment("Student who answered"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the question was for"),
		field.String("level").
			NotEmpty().
			Comment("beginner, intermediate, or advanced"),
		field.String("category").
			NotEmpty().
			Comment("conceptual, application, or problem-solving"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("student_answer").
			Comment("What the student entered, may be empty"),
		field.Bool("correct").
			Comment("Whether the answer passed evaluation"),
		field.Float("score").
			Comment("Evaluation score in [0,1]"),
		field.String("feedback").
			Default("").
			Comment("Evaluator feedback shown to the student"),
		field.Bool("degraded").
			Default(false).
			Comment("Evaluation fell back to the heuristic"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("student_id"),
		index.Fields("topic"),
		index.Fields("correct"),
	}
}

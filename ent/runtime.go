// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avinashj/socratic/ent/answerevent"
	"github.com/avinashj/socratic/ent/llmrequestevent"
	"github.com/avinashj/socratic/ent/schema"
	"github.com/avinashj/socratic/ent/sessionevent"
	"github.com/avinashj/socratic/ent/studentrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescStudentID is the schema descriptor for student_id field.
	answereventDescStudentID := answereventFields[1].Descriptor()
	// answerevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	answerevent.StudentIDValidator = answereventDescStudentID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[2].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescLevel is the schema descriptor for level field.
	answereventDescLevel := answereventFields[3].Descriptor()
	// answerevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	answerevent.LevelValidator = answereventDescLevel.Validators[0].(func(string) error)
	// answereventDescCategory is the schema descriptor for category field.
	answereventDescCategory := answereventFields[4].Descriptor()
	// answerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	answerevent.CategoryValidator = answereventDescCategory.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[5].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescFeedback is the schema descriptor for feedback field.
	answereventDescFeedback := answereventFields[9].Descriptor()
	// answerevent.DefaultFeedback holds the default value on creation for the feedback field.
	answerevent.DefaultFeedback = answereventDescFeedback.Default.(string)
	// answereventDescDegraded is the schema descriptor for degraded field.
	answereventDescDegraded := answereventFields[10].Descriptor()
	// answerevent.DefaultDegraded holds the default value on creation for the degraded field.
	answerevent.DefaultDegraded = answereventDescDegraded.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescStudentID is the schema descriptor for student_id field.
	sessioneventDescStudentID := sessioneventFields[1].Descriptor()
	// sessionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	sessionevent.StudentIDValidator = sessioneventDescStudentID.Validators[0].(func(string) error)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[2].Descriptor()
	// sessionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionevent.TopicValidator = sessioneventDescTopic.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAsked is the schema descriptor for questions_asked field.
	sessioneventDescQuestionsAsked := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsAsked holds the default value on creation for the questions_asked field.
	sessionevent.DefaultQuestionsAsked = sessioneventDescQuestionsAsked.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescEndedEarly is the schema descriptor for ended_early field.
	sessioneventDescEndedEarly := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultEndedEarly holds the default value on creation for the ended_early field.
	sessionevent.DefaultEndedEarly = sessioneventDescEndedEarly.Default.(bool)
	studentrecordFields := schema.StudentRecord{}.Fields()
	_ = studentrecordFields
	// studentrecordDescStudentID is the schema descriptor for student_id field.
	studentrecordDescStudentID := studentrecordFields[0].Descriptor()
	// studentrecord.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	studentrecord.StudentIDValidator = studentrecordDescStudentID.Validators[0].(func(string) error)
	// studentrecordDescUpdatedAt is the schema descriptor for updated_at field.
	studentrecordDescUpdatedAt := studentrecordFields[2].Descriptor()
	// studentrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studentrecord.DefaultUpdatedAt = studentrecordDescUpdatedAt.Default.(func() time.Time)
	// studentrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studentrecord.UpdateDefaultUpdatedAt = studentrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}

package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData captures a session lifecycle event (start/end).
type SessionEventData struct {
	SessionID      string
	StudentID      string
	Topic          string
	Action         string
	QuestionsAsked int
	CorrectAnswers int
	DurationSecs   int
	EndedEarly     bool
}

// AnswerEventData captures one evaluated answer.
type AnswerEventData struct {
	SessionID     string
	StudentID     string
	Topic         string
	Level         string
	Category      string
	QuestionText  string
	StudentAnswer string
	Correct       bool
	Score         float64
	Feedback      string
	Degraded      bool
}

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read model for a persisted model request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events. All
// event types share one global sequence for cross-type ordering.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records an evaluated answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryLLMEvents returns model request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}

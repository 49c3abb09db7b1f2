package tutor

import "fmt"

// Question is a generated question shown to the student.
type Question struct {
	Text     string
	Category string
}

// Evaluation is the judgment of one answer.
type Evaluation struct {
	Correct  bool
	Score    float64 // clamped to [0,1]
	Feedback string

	// Degraded marks an evaluation produced by the keyword heuristic
	// because the structured model judgment could not be obtained.
	Degraded bool
}

// Exchange is one completed question/answer/evaluation triple.
type Exchange struct {
	Question   Question
	Answer     string
	Evaluation Evaluation
}

// SessionState is the mutable record threaded through one tutoring
// session. It is exclusively owned by its session and never shared.
type SessionState struct {
	Key       string
	StudentID string
	Topic     string
	Level     Level

	History []Exchange

	CurrentQuestion *Question
	CurrentAnswer   string
	LastEvaluation  *Evaluation

	QuestionsAsked int
	CorrectAnswers int

	// Explained marks that an explanation was already issued for the
	// current question; the router never explains twice per question.
	Explained bool

	// Active is false once the session terminated. No mutation is
	// permitted afterward.
	Active bool
}

// SessionKey builds the composite session identifier studentID_topic_seq.
func SessionKey(studentID, topic string, seq int) string {
	return fmt.Sprintf("%s_%s_%d", studentID, topic, seq)
}

// NewSessionState creates a fresh active session with zero counters.
func NewSessionState(key, studentID, topic string, level Level) *SessionState {
	return &SessionState{
		Key:       key,
		StudentID: studentID,
		Topic:     topic,
		Level:     level,
		Active:    true,
	}
}

// Accuracy returns the running accuracy as a fraction in [0,1], or 0
// when no questions have been asked.
func (s *SessionState) Accuracy() float64 {
	if s.QuestionsAsked == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.QuestionsAsked)
}

// BeginQuestion installs a new current question and clears the
// in-flight answer, evaluation and explanation marker.
func (s *SessionState) BeginQuestion(q Question) {
	s.CurrentQuestion = &q
	s.CurrentAnswer = ""
	s.LastEvaluation = nil
	s.Explained = false
}

// RecordEvaluation appends the completed exchange to history and
// updates the counters.
func (s *SessionState) RecordEvaluation(answer string, eval Evaluation) {
	s.CurrentAnswer = answer
	s.LastEvaluation = &eval
	if s.CurrentQuestion != nil {
		s.History = append(s.History, Exchange{
			Question:   *s.CurrentQuestion,
			Answer:     answer,
			Evaluation: eval,
		})
	}
	s.QuestionsAsked++
	if eval.Correct {
		s.CorrectAnswers++
	}
}

// PriorQuestions returns the text of up to the last n asked questions,
// most recent last, for prompt deduplication.
func (s *SessionState) PriorQuestions(n int) []string {
	history := s.History
	if len(history) > n {
		history = history[len(history)-n:]
	}
	out := make([]string, 0, len(history))
	for _, ex := range history {
		out = append(out, ex.Question.Text)
	}
	return out
}

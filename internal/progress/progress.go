// Package progress tracks cumulative per-student learning history across
// tutoring sessions and decides where that history is stored.
package progress

import (
	"time"
)

// StudentProgress is the cumulative record for one student. It is the
// canonical JSON document persisted per student and updated once per
// completed session.
type StudentProgress struct {
	// Sessions holds one summary per completed session, append-only,
	// ordered oldest first.
	Sessions []SessionSummary `json:"sessions"`

	// TopicsCovered lists distinct topics the student has studied,
	// in first-seen order.
	TopicsCovered []string `json:"topics_covered"`

	// TotalQuestions counts every question asked across all sessions.
	TotalQuestions int `json:"total_questions"`

	// TotalCorrect counts every correct answer across all sessions.
	TotalCorrect int `json:"total_correct"`

	// UnderstandingLevels maps topic to the student's most recent
	// level for that topic.
	UnderstandingLevels map[string]string `json:"understanding_levels"`
}

// SessionSummary captures the outcome of a single completed session.
type SessionSummary struct {
	Timestamp      time.Time `json:"timestamp"`
	Topic          string    `json:"topic"`
	QuestionsAsked int       `json:"questions_asked"`
	CorrectAnswers int       `json:"correct_answers"`

	// Accuracy is a percentage, 0-100.
	Accuracy float64 `json:"accuracy"`

	// EndedEarly marks a session terminated before any question
	// completed, usually because question generation failed.
	EndedEarly bool `json:"ended_early,omitempty"`
}

// New returns an empty StudentProgress with initialized containers.
func New() *StudentProgress {
	return &StudentProgress{
		Sessions:            []SessionSummary{},
		TopicsCovered:       []string{},
		UnderstandingLevels: map[string]string{},
	}
}

// Record appends a session summary and folds its counts into the
// cumulative totals. The topic is added to TopicsCovered if unseen and
// the understanding level for it is replaced with level.
func (p *StudentProgress) Record(summary SessionSummary, level string) {
	p.Sessions = append(p.Sessions, summary)
	p.TotalQuestions += summary.QuestionsAsked
	p.TotalCorrect += summary.CorrectAnswers

	if !p.HasTopic(summary.Topic) {
		p.TopicsCovered = append(p.TopicsCovered, summary.Topic)
	}
	if p.UnderstandingLevels == nil {
		p.UnderstandingLevels = map[string]string{}
	}
	p.UnderstandingLevels[summary.Topic] = level
}

// HasTopic reports whether the student has studied topic before.
func (p *StudentProgress) HasTopic(topic string) bool {
	for _, t := range p.TopicsCovered {
		if t == topic {
			return true
		}
	}
	return false
}

// LevelFor returns the recorded understanding level for topic, or
// fallback if the topic has never been studied.
func (p *StudentProgress) LevelFor(topic, fallback string) string {
	if lvl, ok := p.UnderstandingLevels[topic]; ok && lvl != "" {
		return lvl
	}
	return fallback
}

// OverallAccuracy returns the lifetime accuracy percentage, or 0 when
// no questions have been asked.
func (p *StudentProgress) OverallAccuracy() float64 {
	if p.TotalQuestions == 0 {
		return 0
	}
	return float64(p.TotalCorrect) / float64(p.TotalQuestions) * 100
}

// Summarize builds a SessionSummary from raw session counts. Accuracy
// is a percentage of correct answers; zero questions yields zero
// accuracy and marks the session as ended early.
func Summarize(topic string, questionsAsked, correctAnswers int, at time.Time) SessionSummary {
	s := SessionSummary{
		Timestamp:      at,
		Topic:          topic,
		QuestionsAsked: questionsAsked,
		CorrectAnswers: correctAnswers,
	}
	if questionsAsked > 0 {
		s.Accuracy = float64(correctAnswers) / float64(questionsAsked) * 100
	} else {
		s.EndedEarly = true
	}
	return s
}

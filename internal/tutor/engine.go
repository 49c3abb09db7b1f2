package tutor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avinashj/socratic/internal/gateway"
	"github.com/avinashj/socratic/internal/progress"
	"github.com/avinashj/socratic/internal/store"
)

// Engine wires the tutoring nodes together and owns the shared
// collaborators: the model gateway, the progress store, the per-student
// locker and the event log.
type Engine struct {
	questioner *Questioner
	evaluator  *Evaluator
	explainer  *Explainer

	progress progress.Store
	locker   *progress.Locker
	events   store.EventRepo // optional, nil disables event logging
	policy   Policy
}

// NewEngine creates an Engine. events may be nil.
func NewEngine(gw gateway.Gateway, ps progress.Store, events store.EventRepo, policy Policy) *Engine {
	return &Engine{
		questioner: NewQuestioner(gw),
		evaluator:  NewEvaluator(gw),
		explainer:  NewExplainer(gw),
		progress:   ps,
		locker:     progress.NewLocker(),
		events:     events,
		policy:     policy,
	}
}

// Session is one active tutoring interaction, from Start to the
// terminal Result. All methods must be called from a single goroutine.
type Session struct {
	engine *Engine

	// State is exposed for inspection; callers must not mutate it.
	State *SessionState

	// Outcome is set once the session has terminated.
	Outcome *Result

	// askFailed marks a session terminated because question generation
	// was exhausted; the summary carries it as EndedEarly regardless of
	// how many questions completed first.
	askFailed bool

	startedAt time.Time
}

// Step is the outcome of one answer cycle.
type Step struct {
	Evaluation Evaluation

	// Explanation is non-empty when the router selected the explain
	// node for this cycle.
	Explanation string

	// NextQuestion is the next question to show, empty when the
	// session terminated this cycle.
	NextQuestion string

	// Level is the (possibly adapted) level after this cycle.
	Level Level

	// Accuracy is the running accuracy as a fraction in [0,1].
	Accuracy float64

	// Done marks session termination; Outcome carries the result.
	Done    bool
	Outcome *Result
}

// Result is the terminal outcome of a session.
type Result struct {
	Summary progress.SessionSummary
	Level   Level

	// ProgressSaved is false when the progress write failed after a
	// retry; the session result is still valid.
	ProgressSaved bool
}

// Start initializes a session: loads prior progress (store failure
// degrades to an empty record), resolves the effective level, and asks
// the first question. If question generation fails entirely the
// returned session is already terminated with an early-ended Outcome.
func (e *Engine) Start(ctx context.Context, studentID, topic string, requested Level) (*Session, error) {
	e.locker.Lock(studentID)
	prog, err := e.progress.Load(ctx, studentID)
	e.locker.Unlock(studentID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: loading progress for %s: %v\n", studentID, err)
		prog = progress.New()
	}

	level := ParseLevel(prog.LevelFor(topic, requested.String()))
	seq := len(prog.Sessions) + 1
	key := SessionKey(studentID, topic, seq)

	state := NewSessionState(key, studentID, topic, level)
	sess := &Session{engine: e, State: state, startedAt: time.Now()}

	e.appendSessionEvent(ctx, state, "start", 0, false)

	q, err := e.questioner.Ask(ctx, state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		sess.askFailed = true
		sess.Outcome = sess.finish(ctx)
		return sess, nil
	}
	state.BeginQuestion(q)

	return sess, nil
}

// Question returns the current question text, or "" when none is
// pending.
func (s *Session) Question() string {
	if s.State.CurrentQuestion == nil {
		return ""
	}
	return s.State.CurrentQuestion.Text
}

// Active reports whether the session can still accept answers.
func (s *Session) Active() bool {
	return s.State.Active
}

// Submit runs one full answer cycle: evaluate, optionally explain,
// adapt the level, and either ask the next question or terminate.
func (s *Session) Submit(ctx context.Context, answer string) (*Step, error) {
	if !s.State.Active {
		return nil, fmt.Errorf("session %s is terminated", s.State.Key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e := s.engine
	state := s.State

	eval := e.evaluator.Evaluate(ctx, state, answer)
	state.RecordEvaluation(answer, eval)
	e.appendAnswerEvent(ctx, state, answer, eval)

	step := &Step{
		Evaluation: eval,
		Level:      state.Level,
		Accuracy:   state.Accuracy(),
	}

	next := Route(state, e.policy)

	if next == StateExplaining {
		step.Explanation = e.explainer.Explain(ctx, state)
		state.Explained = true
		next = Route(state, e.policy)
	}

	// Record node: adapt the level every cycle, including the one that
	// terminates the session. The new level applies to the next Ask
	// only and is the one written at Terminate.
	state.Level = e.policy.Adapt(state.Level, state.Accuracy(), state.QuestionsAsked)
	step.Level = state.Level

	if next == StateRecording {
		q, err := e.questioner.Ask(ctx, state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			s.askFailed = true
			next = StateTerminated
		} else {
			state.BeginQuestion(q)
			step.NextQuestion = q.Text
		}
	}

	if next == StateTerminated {
		step.Done = true
		step.Outcome = s.finish(ctx)
		s.Outcome = step.Outcome
	}

	return step, nil
}

// End terminates the session early on the caller's request. Calling
// End on a terminated session returns the existing Outcome.
func (s *Session) End(ctx context.Context) *Result {
	if s.Outcome != nil {
		return s.Outcome
	}
	s.Outcome = s.finish(ctx)
	return s.Outcome
}

// finish summarizes the session and performs the locked
// read-modify-write into the progress store. The save is retried once;
// if it still fails the result is flagged not-saved. A canceled
// context skips the store write entirely so an aborted session never
// leaves a partial record.
func (s *Session) finish(ctx context.Context) *Result {
	e := s.engine
	state := s.State
	state.Active = false

	summary := progress.Summarize(state.Topic, state.QuestionsAsked, state.CorrectAnswers, time.Now())
	if s.askFailed {
		summary.EndedEarly = true
	}

	saved := false
	if ctx.Err() == nil {
		e.locker.Lock(state.StudentID)
		prog, err := e.progress.Load(ctx, state.StudentID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: loading progress for %s: %v\n", state.StudentID, err)
			prog = progress.New()
		}
		prog.Record(summary, state.Level.String())

		err = e.progress.Save(ctx, state.StudentID, prog)
		if err != nil {
			err = e.progress.Save(ctx, state.StudentID, prog)
		}
		e.locker.Unlock(state.StudentID)

		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: saving progress for %s: %v\n", state.StudentID, err)
		} else {
			saved = true
		}
	}

	e.appendSessionEvent(ctx, state, "end", int(time.Since(s.startedAt).Seconds()), summary.EndedEarly)

	return &Result{
		Summary:       summary,
		Level:         state.Level,
		ProgressSaved: saved,
	}
}

func (e *Engine) appendSessionEvent(ctx context.Context, state *SessionState, action string, durationSecs int, endedEarly bool) {
	if e.events == nil {
		return
	}
	err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      state.Key,
		StudentID:      state.StudentID,
		Topic:          state.Topic,
		Action:         action,
		QuestionsAsked: state.QuestionsAsked,
		CorrectAnswers: state.CorrectAnswers,
		DurationSecs:   durationSecs,
		EndedEarly:     endedEarly,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}
}

func (e *Engine) appendAnswerEvent(ctx context.Context, state *SessionState, answer string, eval Evaluation) {
	if e.events == nil {
		return
	}
	questionText := ""
	category := ""
	if state.CurrentQuestion != nil {
		questionText = state.CurrentQuestion.Text
		category = state.CurrentQuestion.Category
	}
	err := e.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:     state.Key,
		StudentID:     state.StudentID,
		Topic:         state.Topic,
		Level:         state.Level.String(),
		Category:      category,
		QuestionText:  questionText,
		StudentAnswer: answer,
		Correct:       eval.Correct,
		Score:         eval.Score,
		Feedback:      eval.Feedback,
		Degraded:      eval.Degraded,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log answer event: %v\n", err)
	}
}

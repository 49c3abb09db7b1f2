package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/avinashj/socratic/internal/gateway"
	"github.com/avinashj/socratic/internal/progress"
)

func evalResponse(score float64, correct bool, feedback string) gateway.MockResponse {
	return gateway.MockResponse{
		Content: json.RawMessage(fmt.Sprintf(`{"score":%v,"correct":%t,"feedback":%q}`, score, correct, feedback)),
	}
}

func explanationResponse(text string) gateway.MockResponse {
	return gateway.MockResponse{Content: json.RawMessage(fmt.Sprintf("%q", text))}
}

func TestEngine_AllCorrectPromotesBeginner(t *testing.T) {
	mock := gateway.NewMockGateway(
		questionResponse("q1"),
		evalResponse(0.9, true, "good"),
		questionResponse("q2"),
		evalResponse(0.95, true, "good"),
		questionResponse("q3"),
		evalResponse(1.0, true, "good"),
		questionResponse("q4"),
	)
	ps := progress.NewMemoryStore()
	e := NewEngine(mock, ps, nil, DefaultPolicy())
	ctx := context.Background()

	sess, err := e.Start(ctx, "alice", "fractions", LevelBeginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.Question() != "q1" {
		t.Fatalf("expected q1, got %q", sess.Question())
	}

	var last *Step
	for i, answer := range []string{"a1", "a2", "a3"} {
		last, err = sess.Submit(ctx, answer)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if last.Explanation != "" {
			t.Fatalf("submit %d: unexpected explanation %q", i, last.Explanation)
		}
		if sess.State.CorrectAnswers > sess.State.QuestionsAsked {
			t.Fatalf("submit %d: correct %d > asked %d", i, sess.State.CorrectAnswers, sess.State.QuestionsAsked)
		}
	}

	if last.Accuracy != 1.0 {
		t.Fatalf("expected accuracy 1.0, got %v", last.Accuracy)
	}
	if last.Level != LevelIntermediate {
		t.Fatalf("expected promotion to intermediate, got %s", last.Level)
	}

	res := sess.End(ctx)
	if !res.ProgressSaved {
		t.Fatal("expected progress saved")
	}
	if res.Summary.Accuracy != 100.0 {
		t.Fatalf("expected summary accuracy 100.0, got %v", res.Summary.Accuracy)
	}

	prog, err := ps.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prog.TotalQuestions != 3 || prog.TotalCorrect != 3 {
		t.Fatalf("unexpected totals: %+v", prog)
	}
	if len(prog.Sessions) != 1 {
		t.Fatalf("expected exactly one session summary, got %d", len(prog.Sessions))
	}
	if prog.LevelFor("fractions", "") != "intermediate" {
		t.Fatalf("unexpected persisted level: %v", prog.UnderstandingLevels)
	}
}

func TestEngine_EmptyAnswerTriggersExplanationWithoutEvalCall(t *testing.T) {
	mock := gateway.NewMockGateway(
		questionResponse("q1"),
		explanationResponse("here is the idea"),
		questionResponse("q2"),
	)
	e := NewEngine(mock, progress.NewMemoryStore(), nil, DefaultPolicy())
	ctx := context.Background()

	sess, err := e.Start(ctx, "alice", "fractions", LevelBeginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	step, err := sess.Submit(ctx, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if step.Evaluation.Correct || step.Evaluation.Score != 0 {
		t.Fatalf("unexpected evaluation: %+v", step.Evaluation)
	}
	if step.Evaluation.Feedback != "no answer provided" {
		t.Fatalf("unexpected feedback: %q", step.Evaluation.Feedback)
	}
	if step.Explanation != "here is the idea" {
		t.Fatalf("expected explanation, got %q", step.Explanation)
	}
	if step.NextQuestion != "q2" {
		t.Fatalf("expected next question, got %q", step.NextQuestion)
	}
	// Start ask + explain + next ask: no evaluation call for the
	// empty answer.
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 gateway calls, got %d", mock.CallCount())
	}
}

func TestEngine_AskTotalFailureEndsEarly(t *testing.T) {
	mock := gateway.NewMockGateway() // every call fails
	ps := progress.NewMemoryStore()
	e := NewEngine(mock, ps, nil, DefaultPolicy())
	ctx := context.Background()

	sess, err := e.Start(ctx, "alice", "fractions", LevelBeginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if sess.Active() {
		t.Fatal("expected session terminated")
	}
	if sess.Outcome == nil || !sess.Outcome.Summary.EndedEarly {
		t.Fatalf("expected early-ended outcome, got %+v", sess.Outcome)
	}
	if sess.Outcome.Summary.QuestionsAsked != 0 {
		t.Fatalf("expected zero questions, got %d", sess.Outcome.Summary.QuestionsAsked)
	}

	prog, err := ps.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prog.TotalQuestions != 0 {
		t.Fatalf("total questions should be unchanged, got %d", prog.TotalQuestions)
	}
	if len(prog.Sessions) != 1 || !prog.Sessions[0].EndedEarly {
		t.Fatalf("expected one early-ended summary, got %+v", prog.Sessions)
	}
}

func TestEngine_MidSessionAskFailureFlagsSummaryEndedEarly(t *testing.T) {
	// One question completes, then generation is exhausted.
	mock := gateway.NewMockGateway(
		questionResponse("q1"),
		evalResponse(0.9, true, "good"),
	)
	ps := progress.NewMemoryStore()
	e := NewEngine(mock, ps, nil, DefaultPolicy())
	ctx := context.Background()

	sess, err := e.Start(ctx, "alice", "fractions", LevelBeginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	step, err := sess.Submit(ctx, "a1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if !step.Done || step.Outcome == nil {
		t.Fatalf("expected termination on ask exhaustion, got %+v", step)
	}
	if !step.Outcome.Summary.EndedEarly {
		t.Fatalf("summary must be flagged ended early: %+v", step.Outcome.Summary)
	}
	if step.Outcome.Summary.QuestionsAsked != 1 || step.Outcome.Summary.CorrectAnswers != 1 {
		t.Fatalf("summary must keep the completed counts: %+v", step.Outcome.Summary)
	}

	prog, err := ps.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(prog.Sessions) != 1 || !prog.Sessions[0].EndedEarly {
		t.Fatalf("persisted summary must carry the flag, got %+v", prog.Sessions)
	}
}

func TestEngine_WrongAnswersDemoteAfterFloor(t *testing.T) {
	mock := gateway.NewMockGateway(
		questionResponse("q1"),
		evalResponse(0.1, false, "off"),
		explanationResponse("e1"),
		questionResponse("q2"),
		evalResponse(0.2, false, "off"),
		explanationResponse("e2"),
		questionResponse("q3"),
		evalResponse(0.0, false, "off"),
		explanationResponse("e3"),
		questionResponse("q4"),
	)
	e := NewEngine(mock, progress.NewMemoryStore(), nil, DefaultPolicy())
	ctx := context.Background()

	sess, err := e.Start(ctx, "alice", "fractions", LevelAdvanced)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	step, err := sess.Submit(ctx, "wrong1")
	if err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	if step.Level != LevelAdvanced {
		t.Fatalf("no demotion before the floor, got %s", step.Level)
	}

	if _, err = sess.Submit(ctx, "wrong2"); err != nil {
		t.Fatalf("submit 2: %v", err)
	}

	step, err = sess.Submit(ctx, "wrong3")
	if err != nil {
		t.Fatalf("submit 3: %v", err)
	}
	if step.Level != LevelIntermediate {
		t.Fatalf("expected demotion to intermediate, got %s", step.Level)
	}
	if step.Explanation == "" {
		t.Fatal("expected an explanation for the miss")
	}
}

func TestEngine_QuestionCapTerminates(t *testing.T) {
	mock := gateway.NewMockGateway(
		questionResponse("q1"),
		evalResponse(1, true, "good"),
		questionResponse("q2"),
		evalResponse(1, true, "good"),
	)
	policy := DefaultPolicy()
	policy.QuestionCap = 2

	ps := progress.NewMemoryStore()
	e := NewEngine(mock, ps, nil, policy)
	ctx := context.Background()

	sess, err := e.Start(ctx, "alice", "fractions", LevelBeginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err = sess.Submit(ctx, "a1"); err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	step, err := sess.Submit(ctx, "a2")
	if err != nil {
		t.Fatalf("submit 2: %v", err)
	}

	if !step.Done || step.Outcome == nil {
		t.Fatalf("expected termination at cap, got %+v", step)
	}
	if step.NextQuestion != "" {
		t.Fatalf("no next question at cap, got %q", step.NextQuestion)
	}

	// Terminated is absorbing.
	asked := sess.State.QuestionsAsked
	if _, err := sess.Submit(ctx, "a3"); err == nil {
		t.Fatal("expected error submitting to terminated session")
	}
	if sess.State.QuestionsAsked != asked {
		t.Fatal("counters mutated after termination")
	}
}

// failingStore accepts loads but refuses saves.
type failingStore struct{}

func (f *failingStore) Load(_ context.Context, _ string) (*progress.StudentProgress, error) {
	return progress.New(), nil
}

func (f *failingStore) Save(_ context.Context, _ string, _ *progress.StudentProgress) error {
	return errors.New("disk full")
}

func TestEngine_SaveFailureFlagsResult(t *testing.T) {
	mock := gateway.NewMockGateway(
		questionResponse("q1"),
		evalResponse(1, true, "good"),
		questionResponse("q2"),
	)
	e := NewEngine(mock, &failingStore{}, nil, DefaultPolicy())
	ctx := context.Background()

	sess, err := e.Start(ctx, "alice", "fractions", LevelBeginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := sess.Submit(ctx, "a1"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	res := sess.End(ctx)
	if res.ProgressSaved {
		t.Fatal("expected progress-not-saved flag")
	}
	if res.Summary.QuestionsAsked != 1 {
		t.Fatalf("result should still carry the summary: %+v", res.Summary)
	}
}

func TestEngine_PriorTopicLevelWinsOverRequested(t *testing.T) {
	ps := progress.NewMemoryStore()
	ctx := context.Background()

	seed := progress.New()
	seed.Record(progress.Summarize("fractions", 3, 3, time.Now()), "advanced")
	if err := ps.Save(ctx, "alice", seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	mock := gateway.NewMockGateway(questionResponse("q1"))
	e := NewEngine(mock, ps, nil, DefaultPolicy())

	sess, err := e.Start(ctx, "alice", "fractions", LevelBeginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.State.Level != LevelAdvanced {
		t.Fatalf("expected recorded level advanced, got %s", sess.State.Level)
	}
	if sess.State.Key != "alice_fractions_2" {
		t.Fatalf("unexpected session key: %s", sess.State.Key)
	}
}

func TestEngine_CanceledContextSkipsSave(t *testing.T) {
	mock := gateway.NewMockGateway(
		questionResponse("q1"),
		evalResponse(1, true, "good"),
		questionResponse("q2"),
	)
	ps := progress.NewMemoryStore()
	e := NewEngine(mock, ps, nil, DefaultPolicy())
	ctx, cancel := context.WithCancel(context.Background())

	sess, err := e.Start(ctx, "alice", "fractions", LevelBeginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := sess.Submit(ctx, "a1"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	cancel()
	res := sess.End(ctx)
	if res.ProgressSaved {
		t.Fatal("canceled termination must not report a saved write")
	}

	prog, err := ps.Load(context.Background(), "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(prog.Sessions) != 0 {
		t.Fatalf("aborted session must not touch the store, got %+v", prog.Sessions)
	}
}

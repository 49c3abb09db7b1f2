package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/avinashj/socratic/internal/gateway"
)

func questionResponse(text string) gateway.MockResponse {
	return gateway.MockResponse{
		Content: json.RawMessage(fmt.Sprintf(`{"question":%q}`, text)),
	}
}

func TestAsk_CategoryRoundRobin(t *testing.T) {
	mock := gateway.NewMockGateway(
		questionResponse("q1"), questionResponse("q2"),
		questionResponse("q3"), questionResponse("q4"),
	)
	q := NewQuestioner(mock)
	s := NewSessionState("k", "alice", "algebra", LevelBeginner)

	want := []string{"conceptual", "application", "problem-solving", "conceptual"}
	for i, expected := range want {
		s.QuestionsAsked = i
		got, err := q.Ask(context.Background(), s)
		if err != nil {
			t.Fatalf("ask %d: %v", i, err)
		}
		if got.Category != expected {
			t.Fatalf("ask %d: category %q, want %q", i, got.Category, expected)
		}
	}
}

func TestAsk_PromptCarriesLevelAndPriorQuestions(t *testing.T) {
	mock := gateway.NewMockGateway(questionResponse("next"))
	q := NewQuestioner(mock)

	s := NewSessionState("k", "alice", "algebra", LevelIntermediate)
	for i := 1; i <= 4; i++ {
		s.BeginQuestion(Question{Text: fmt.Sprintf("old-%d", i)})
		s.RecordEvaluation("a", Evaluation{Correct: true, Score: 1})
	}

	if _, err := q.Ask(context.Background(), s); err != nil {
		t.Fatalf("ask: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "intermediate") {
		t.Fatalf("prompt missing level: %s", prompt)
	}
	// Only the last 3 prior questions are included.
	if strings.Contains(prompt, "old-1") {
		t.Fatalf("prompt should drop questions beyond the last 3: %s", prompt)
	}
	for _, want := range []string{"old-2", "old-3", "old-4"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q: %s", want, prompt)
		}
	}
}

func TestAsk_RetriesWithSimplifiedPrompt(t *testing.T) {
	mock := gateway.NewMockGateway(
		gateway.MockResponse{Err: &gateway.ErrUnavailable{Err: errors.New("down")}},
		questionResponse("recovered"),
	)
	q := NewQuestioner(mock)
	s := NewSessionState("k", "alice", "algebra", LevelBeginner)

	got, err := q.Ask(context.Background(), s)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got.Text != "recovered" {
		t.Fatalf("unexpected question: %q", got.Text)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}

	retry := mock.Calls[1].Messages[0].Content
	if !strings.Contains(retry, "Ask one") {
		t.Fatalf("expected simplified retry prompt, got: %s", retry)
	}
}

func TestAsk_TotalFailureReturnsError(t *testing.T) {
	mock := gateway.NewMockGateway()
	q := NewQuestioner(mock)
	s := NewSessionState("k", "alice", "algebra", LevelBeginner)

	if _, err := q.Ask(context.Background(), s); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 attempts, got %d", mock.CallCount())
	}
}

func TestAsk_EmptyQuestionTreatedAsFailure(t *testing.T) {
	mock := gateway.NewMockGateway(
		questionResponse("  "),
		questionResponse("backup"),
	)
	q := NewQuestioner(mock)
	s := NewSessionState("k", "alice", "algebra", LevelBeginner)

	got, err := q.Ask(context.Background(), s)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got.Text != "backup" {
		t.Fatalf("expected retry result, got %q", got.Text)
	}
}

package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/avinashj/socratic/internal/gateway"
)

func sessionWithQuestion(topic, question string) *SessionState {
	s := NewSessionState("k", "alice", topic, LevelBeginner)
	s.BeginQuestion(Question{Text: question, Category: "conceptual"})
	return s
}

func TestEvaluate_EmptyAnswerShortCircuits(t *testing.T) {
	mock := gateway.NewMockGateway()
	e := NewEvaluator(mock)
	s := sessionWithQuestion("fractions", "What is a fraction?")

	eval := e.Evaluate(context.Background(), s, "   ")

	if eval.Correct || eval.Score != 0 {
		t.Fatalf("expected incorrect with score 0, got %+v", eval)
	}
	if eval.Feedback != "no answer provided" {
		t.Fatalf("unexpected feedback: %q", eval.Feedback)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no gateway call, got %d", mock.CallCount())
	}
}

func TestEvaluate_StructuredJudgment(t *testing.T) {
	mock := gateway.NewMockGateway(
		gateway.MockResponse{Content: json.RawMessage(`{"score":0.85,"correct":true,"feedback":"solid"}`)},
	)
	e := NewEvaluator(mock)
	s := sessionWithQuestion("fractions", "What is a fraction?")

	eval := e.Evaluate(context.Background(), s, "a part of a whole")

	if !eval.Correct || eval.Score != 0.85 || eval.Feedback != "solid" {
		t.Fatalf("unexpected evaluation: %+v", eval)
	}
	if eval.Degraded {
		t.Fatal("structured judgment should not be degraded")
	}
}

func TestEvaluate_ScoreClamped(t *testing.T) {
	mock := gateway.NewMockGateway(
		gateway.MockResponse{Content: json.RawMessage(`{"score":1.7,"correct":true,"feedback":"x"}`)},
	)
	e := NewEvaluator(mock)
	s := sessionWithQuestion("fractions", "What is a fraction?")

	eval := e.Evaluate(context.Background(), s, "something")
	if eval.Score != 1.0 {
		t.Fatalf("expected clamped score 1.0, got %v", eval.Score)
	}
}

func TestEvaluate_GatewayFailureFallsBackToHeuristic(t *testing.T) {
	mock := gateway.NewMockGateway(
		gateway.MockResponse{Err: &gateway.ErrUnavailable{Err: errors.New("down")}},
	)
	e := NewEvaluator(mock)
	s := sessionWithQuestion("photosynthesis basics", "Explain photosynthesis basics.")

	eval := e.Evaluate(context.Background(), s, "photosynthesis converts light, that is the basics")

	if !eval.Degraded {
		t.Fatal("expected degraded evaluation")
	}
	if !eval.Correct || eval.Score != 1.0 {
		t.Fatalf("expected heuristic pass, got %+v", eval)
	}
}

func TestEvaluate_HeuristicRejectsUnrelatedAnswer(t *testing.T) {
	mock := gateway.NewMockGateway(
		gateway.MockResponse{Err: &gateway.ErrUnavailable{Err: errors.New("down")}},
	)
	e := NewEvaluator(mock)
	s := sessionWithQuestion("photosynthesis basics", "Explain photosynthesis basics.")

	eval := e.Evaluate(context.Background(), s, "I like turtles")

	if !eval.Degraded {
		t.Fatal("expected degraded evaluation")
	}
	if eval.Correct || eval.Score != 0 {
		t.Fatalf("expected heuristic fail, got %+v", eval)
	}
}

func TestEvaluate_MalformedJudgmentFallsBack(t *testing.T) {
	mock := gateway.NewMockGateway(
		gateway.MockResponse{Content: json.RawMessage(`not json at all`)},
	)
	e := NewEvaluator(mock)
	s := sessionWithQuestion("fractions", "What is a fraction?")

	eval := e.Evaluate(context.Background(), s, "a part of a whole")
	if !eval.Degraded {
		t.Fatalf("expected degraded evaluation, got %+v", eval)
	}
}

func TestKeywordOverlap_IgnoresShortAndRepeatedWords(t *testing.T) {
	// "the" is too short to count; "fraction" counts once despite repetition.
	n := keywordOverlap("the fraction fraction wall", "fraction of the wall")
	if n != 2 {
		t.Fatalf("expected overlap 2, got %d", n)
	}
}

package progress

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"
)

func TestRecord_AccumulatesTotals(t *testing.T) {
	p := New()
	now := time.Now()

	p.Record(Summarize("fractions", 5, 4, now), "intermediate")
	p.Record(Summarize("fractions", 3, 3, now), "advanced")

	if p.TotalQuestions != 8 {
		t.Fatalf("expected 8 total questions, got %d", p.TotalQuestions)
	}
	if p.TotalCorrect != 7 {
		t.Fatalf("expected 7 total correct, got %d", p.TotalCorrect)
	}
	if len(p.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(p.Sessions))
	}
}

func TestRecord_TopicAddedOnce(t *testing.T) {
	p := New()
	now := time.Now()

	p.Record(Summarize("algebra", 3, 1, now), "beginner")
	p.Record(Summarize("algebra", 3, 3, now), "intermediate")
	p.Record(Summarize("geometry", 3, 2, now), "beginner")

	if len(p.TopicsCovered) != 2 {
		t.Fatalf("expected 2 topics, got %v", p.TopicsCovered)
	}
	if p.TopicsCovered[0] != "algebra" || p.TopicsCovered[1] != "geometry" {
		t.Fatalf("unexpected topic order: %v", p.TopicsCovered)
	}
}

func TestRecord_LevelReplaced(t *testing.T) {
	p := New()
	now := time.Now()

	p.Record(Summarize("algebra", 3, 1, now), "beginner")
	if p.LevelFor("algebra", "beginner") != "beginner" {
		t.Fatalf("unexpected level: %v", p.UnderstandingLevels)
	}

	p.Record(Summarize("algebra", 5, 5, now), "advanced")
	if p.LevelFor("algebra", "beginner") != "advanced" {
		t.Fatalf("expected level replaced, got %v", p.UnderstandingLevels)
	}
}

func TestLevelFor_UnknownTopicFallsBack(t *testing.T) {
	p := New()
	if got := p.LevelFor("calculus", "beginner"); got != "beginner" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestSummarize_AccuracyIsPercent(t *testing.T) {
	s := Summarize("fractions", 4, 3, time.Now())
	if s.Accuracy != 75.0 {
		t.Fatalf("expected 75.0, got %v", s.Accuracy)
	}
	if s.EndedEarly {
		t.Fatal("session with questions should not be ended early")
	}
}

func TestSummarize_ZeroQuestionsEndedEarly(t *testing.T) {
	s := Summarize("fractions", 0, 0, time.Now())
	if s.Accuracy != 0 {
		t.Fatalf("expected 0 accuracy, got %v", s.Accuracy)
	}
	if !s.EndedEarly {
		t.Fatal("expected ended early")
	}
}

func TestOverallAccuracy(t *testing.T) {
	p := New()
	if p.OverallAccuracy() != 0 {
		t.Fatal("empty progress should have 0 accuracy")
	}

	now := time.Now()
	p.Record(Summarize("algebra", 4, 2, now), "beginner")
	if got := p.OverallAccuracy(); got != 50.0 {
		t.Fatalf("expected 50.0, got %v", got)
	}
}

func TestProgress_JSONDocumentShape(t *testing.T) {
	p := New()
	p.Record(Summarize("fractions", 2, 2, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)), "intermediate")

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"sessions", "topics_covered", "total_questions", "total_correct", "understanding_levels"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("missing key %q in document: %s", key, raw)
		}
	}
}

func TestMemoryStore_UnknownStudentIsEmpty(t *testing.T) {
	s := NewMemoryStore()

	p, err := s.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Sessions) != 0 || p.TotalQuestions != 0 {
		t.Fatalf("expected empty progress, got %+v", p)
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p := New()
	p.Record(Summarize("algebra", 3, 2, time.Now()), "beginner")
	if err := s.Save(ctx, "alice", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := s.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.TotalQuestions != 3 || loaded.TotalCorrect != 2 {
		t.Fatalf("unexpected totals: %+v", loaded)
	}
	if loaded.LevelFor("algebra", "") != "beginner" {
		t.Fatalf("unexpected level: %v", loaded.UnderstandingLevels)
	}
}

func TestMemoryStore_IsolatedFromCallerMutation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p := New()
	p.Record(Summarize("algebra", 3, 2, time.Now()), "beginner")
	if err := s.Save(ctx, "alice", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating the saved document must not affect the stored copy.
	p.TotalQuestions = 99

	loaded, err := s.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.TotalQuestions != 3 {
		t.Fatalf("stored document was mutated: %+v", loaded)
	}
}

func TestLocker_SerializesSameStudent(t *testing.T) {
	l := NewLocker()
	counter := 0

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Lock("alice")
			counter++
			l.Unlock("alice")
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50, got %d", counter)
	}
}

func TestLocker_IndependentStudents(t *testing.T) {
	l := NewLocker()

	l.Lock("alice")
	done := make(chan struct{})
	go func() {
		l.Lock("bob")
		l.Unlock("bob")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("bob's lock blocked on alice's")
	}
	l.Unlock("alice")
}

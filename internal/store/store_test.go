package store

import (
	"context"
	"testing"
	"time"

	"github.com/avinashj/socratic/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestProgressRepo_LoadUnknownStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressStore()

	p, err := repo.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(p.Sessions) != 0 || p.TotalQuestions != 0 {
		t.Fatalf("expected empty progress, got %+v", p)
	}
}

func TestProgressRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressStore()
	ctx := context.Background()

	p := progress.New()
	p.Record(progress.Summarize("fractions", 4, 3, time.Now().UTC()), "intermediate")

	if err := repo.Save(ctx, "alice", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.TotalQuestions != 4 || loaded.TotalCorrect != 3 {
		t.Fatalf("unexpected totals: %+v", loaded)
	}
	if loaded.LevelFor("fractions", "") != "intermediate" {
		t.Fatalf("unexpected level map: %v", loaded.UnderstandingLevels)
	}
	if len(loaded.Sessions) != 1 || loaded.Sessions[0].Accuracy != 75.0 {
		t.Fatalf("unexpected sessions: %+v", loaded.Sessions)
	}
}

func TestProgressRepo_SaveReplacesDocument(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressStore()
	ctx := context.Background()

	p := progress.New()
	p.Record(progress.Summarize("algebra", 2, 1, time.Now().UTC()), "beginner")
	if err := repo.Save(ctx, "bob", p); err != nil {
		t.Fatalf("first save: %v", err)
	}

	p.Record(progress.Summarize("algebra", 3, 3, time.Now().UTC()), "intermediate")
	if err := repo.Save(ctx, "bob", p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := repo.Load(ctx, "bob")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(loaded.Sessions))
	}
	if loaded.TotalQuestions != 5 {
		t.Fatalf("expected 5 total questions, got %d", loaded.TotalQuestions)
	}

	// Still exactly one row per student.
	count, err := s.Client().StudentRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 student record, got %d", count)
	}
}

func TestEventRepo_AppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "question-gen",
			InputTokens:  10,
			OutputTokens: 20,
			LatencyMs:    5,
			Success:      true,
			RequestBody:  "prompt",
			ResponseBody: `{"question":"q"}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Fatalf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != `{"question":"q"}` {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestEventRepo_SessionAndAnswerEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "alice_fractions_1",
		StudentID: "alice",
		Topic:     "fractions",
		Action:    "start",
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	err = repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:     "alice_fractions_1",
		StudentID:     "alice",
		Topic:         "fractions",
		Level:         "beginner",
		Category:      "conceptual",
		QuestionText:  "What is a fraction?",
		StudentAnswer: "part of a whole",
		Correct:       true,
		Score:         0.9,
		Feedback:      "right",
	})
	if err != nil {
		t.Fatalf("append answer event: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query session events: %v", err)
	}
	ae, err := s.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query answer events: %v", err)
	}
	if len(se) != 1 || len(ae) != 1 {
		t.Fatalf("expected 1 of each, got %d/%d", len(se), len(ae))
	}
	if ae[0].Sequence <= se[0].Sequence {
		t.Fatalf("expected answer sequence after session sequence: %d vs %d", ae[0].Sequence, se[0].Sequence)
	}
}

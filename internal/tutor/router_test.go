package tutor

import "testing"

func TestRoute_CapWinsFirst(t *testing.T) {
	s := NewSessionState("k", "alice", "algebra", LevelBeginner)
	s.QuestionsAsked = 10
	s.LastEvaluation = &Evaluation{Correct: false}

	if got := Route(s, DefaultPolicy()); got != StateTerminated {
		t.Fatalf("expected terminated at cap, got %s", got)
	}
}

func TestRoute_FirstMissExplains(t *testing.T) {
	s := NewSessionState("k", "alice", "algebra", LevelBeginner)
	s.BeginQuestion(Question{Text: "q1"})
	s.RecordEvaluation("wrong", Evaluation{Correct: false, Feedback: "nope"})

	if got := Route(s, DefaultPolicy()); got != StateExplaining {
		t.Fatalf("expected explaining on first miss, got %s", got)
	}
}

func TestRoute_NeverExplainsTwiceWithoutNewAsk(t *testing.T) {
	s := NewSessionState("k", "alice", "algebra", LevelBeginner)
	s.BeginQuestion(Question{Text: "q1"})
	s.RecordEvaluation("wrong", Evaluation{Correct: false})

	if got := Route(s, DefaultPolicy()); got != StateExplaining {
		t.Fatalf("expected explaining, got %s", got)
	}
	s.Explained = true

	if got := Route(s, DefaultPolicy()); got != StateRecording {
		t.Fatalf("expected recording after explanation, got %s", got)
	}

	// A new question resets the marker.
	s.BeginQuestion(Question{Text: "q2"})
	if s.Explained {
		t.Fatal("expected explained marker cleared by new question")
	}
}

func TestRoute_CorrectAnswerRecords(t *testing.T) {
	s := NewSessionState("k", "alice", "algebra", LevelBeginner)
	s.BeginQuestion(Question{Text: "q1"})
	s.RecordEvaluation("right", Evaluation{Correct: true, Score: 1})

	if got := Route(s, DefaultPolicy()); got != StateRecording {
		t.Fatalf("expected recording, got %s", got)
	}
}

func TestRoute_TerminatedIsAbsorbing(t *testing.T) {
	s := NewSessionState("k", "alice", "algebra", LevelBeginner)
	s.Active = false

	if got := Route(s, DefaultPolicy()); got != StateTerminated {
		t.Fatalf("expected terminated for inactive session, got %s", got)
	}
}

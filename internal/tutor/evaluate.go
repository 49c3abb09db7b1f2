package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avinashj/socratic/internal/gateway"
)

const evaluateSystemPrompt = `You are a tutor grading a student's free-text answer.

Rules:
- Judge whether the answer demonstrates understanding of the concept the question targets.
- Partial understanding earns a partial score; exact wording does not matter.
- score is a number from 0 to 1. correct is true when the answer is substantially right (score 0.6 or above is a reasonable bar).
- feedback is 1-3 sentences addressed to the student: what was right, what was missing.`

// evaluationSchema defines the structured judgment output.
var evaluationSchema = &gateway.Schema{
	Name:        "answer-evaluation",
	Description: "Judgment of a student's answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "How correct the answer is, 0 to 1",
			},
			"correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer is substantially correct",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short feedback addressed to the student",
			},
		},
		"required":             []any{"score", "correct", "feedback"},
		"additionalProperties": false,
	},
}

// Evaluator judges answers through the model gateway, with a keyword
// heuristic fallback. Evaluate never returns an error: the state
// machine always gets a usable evaluation.
type Evaluator struct {
	gw gateway.Gateway
}

// NewEvaluator creates an Evaluator backed by gw.
func NewEvaluator(gw gateway.Gateway) *Evaluator {
	return &Evaluator{gw: gw}
}

// Evaluate judges answer against the session's current question. An
// empty answer short-circuits without a gateway call.
func (e *Evaluator) Evaluate(ctx context.Context, s *SessionState, answer string) Evaluation {
	if strings.TrimSpace(answer) == "" {
		return Evaluation{
			Correct:  false,
			Score:    0,
			Feedback: "no answer provided",
		}
	}

	ctx = gateway.WithPurpose(ctx, gateway.PurposeEvaluation)

	req := gateway.Request{
		System: evaluateSystemPrompt,
		Messages: []gateway.Message{
			{Role: gateway.RoleUser, Content: buildEvaluateMessage(s, answer)},
		},
		Schema:    evaluationSchema,
		MaxTokens: 512,
	}

	resp, err := e.gw.Generate(ctx, req)
	if err != nil {
		return heuristicEvaluation(s, answer)
	}

	var out struct {
		Score    float64 `json:"score"`
		Correct  bool    `json:"correct"`
		Feedback string  `json:"feedback"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return heuristicEvaluation(s, answer)
	}

	return Evaluation{
		Correct:  out.Correct,
		Score:    clampScore(out.Score),
		Feedback: out.Feedback,
	}
}

func buildEvaluateMessage(s *SessionState, answer string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", s.Topic)
	fmt.Fprintf(&b, "Student level: %s\n", s.Level)
	if s.CurrentQuestion != nil {
		fmt.Fprintf(&b, "Question: %s\n", s.CurrentQuestion.Text)
	}
	fmt.Fprintf(&b, "Student answer: %s\n", answer)

	return b.String()
}

// heuristicEvaluation is the degraded path when the structured
// judgment cannot be obtained: a binary keyword-overlap check between
// the answer and the topic plus question. Score is 1 or 0.
func heuristicEvaluation(s *SessionState, answer string) Evaluation {
	subject := s.Topic
	if s.CurrentQuestion != nil {
		subject += " " + s.CurrentQuestion.Text
	}

	overlap := keywordOverlap(answer, subject)
	correct := overlap >= 2

	score := 0.0
	if correct {
		score = 1.0
	}

	return Evaluation{
		Correct:  correct,
		Score:    score,
		Feedback: "Your answer was recorded, but automatic grading was unavailable.",
		Degraded: true,
	}
}

// keywordOverlap counts distinct words longer than 3 characters that
// appear in both texts, case-insensitive.
func keywordOverlap(a, b string) int {
	want := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(b)) {
		w = strings.Trim(w, ".,;:?!\"'()")
		if len(w) > 3 {
			want[w] = true
		}
	}

	seen := map[string]bool{}
	count := 0
	for _, w := range strings.Fields(strings.ToLower(a)) {
		w = strings.Trim(w, ".,;:?!\"'()")
		if want[w] && !seen[w] {
			seen[w] = true
			count++
		}
	}
	return count
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/avinashj/socratic/internal/gateway"
)

const explainSystemPrompt = `You are a tutor explaining a concept a student just missed.

Rules:
- Explain the concept behind the question, not just the answer.
- Match the depth to the student's level.
- beginner: foundational framing, simple analogies, no jargon.
- intermediate: concrete steps with one worked example.
- advanced: terse and precise, assume fluency with the basics.
- Keep it to one short paragraph.`

// Explainer produces level-calibrated explanations for missed
// questions. On gateway failure it echoes the evaluation feedback
// rather than failing the session.
type Explainer struct {
	gw gateway.Gateway
}

// NewExplainer creates an Explainer backed by gw.
func NewExplainer(gw gateway.Gateway) *Explainer {
	return &Explainer{gw: gw}
}

// Explain returns an explanation for the session's current missed
// question. It never returns an error.
func (e *Explainer) Explain(ctx context.Context, s *SessionState) string {
	ctx = gateway.WithPurpose(ctx, gateway.PurposeExplanation)

	req := gateway.Request{
		System: explainSystemPrompt,
		Messages: []gateway.Message{
			{Role: gateway.RoleUser, Content: buildExplainMessage(s)},
		},
		MaxTokens:   512,
		Temperature: 0.3,
	}

	resp, err := e.gw.Generate(ctx, req)
	if err != nil || strings.TrimSpace(resp.Text()) == "" {
		// Fall back to the evaluator's feedback.
		if s.LastEvaluation != nil {
			return s.LastEvaluation.Feedback
		}
		return ""
	}

	return resp.Text()
}

func buildExplainMessage(s *SessionState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", s.Topic)
	fmt.Fprintf(&b, "Student level: %s\n", s.Level)
	if s.CurrentQuestion != nil {
		fmt.Fprintf(&b, "Missed question: %s\n", s.CurrentQuestion.Text)
	}
	fmt.Fprintf(&b, "Student answer: %s\n", s.CurrentAnswer)
	if s.LastEvaluation != nil {
		fmt.Fprintf(&b, "Grader feedback: %s\n", s.LastEvaluation.Feedback)
	}

	return b.String()
}

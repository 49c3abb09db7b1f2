package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avinashj/socratic/internal/gateway"
)

// categories is the round-robin question category rotation, keyed by
// the number of questions already asked.
var categories = []string{"conceptual", "application", "problem-solving"}

const questionSystemPrompt = `You are a tutor generating a single study question.

Rules:
- Generate exactly one question on the given topic, appropriate for the student's level.
- beginner: foundational definitions and simple recognition.
- intermediate: applying the concept to a concrete situation.
- advanced: multi-step reasoning or edge cases.
- The question must be answerable in free text in a few sentences.
- Do not repeat any question from the "already asked" list.
- Do not include the answer.`

// questionSchema defines the structured output for question generation.
var questionSchema = &gateway.Schema{
	Name:        "study-question",
	Description: "A single study question for the student",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question shown to the student, plain text",
			},
		},
		"required":             []any{"question"},
		"additionalProperties": false,
	},
}

// Questioner generates questions through the model gateway.
type Questioner struct {
	gw gateway.Gateway
}

// NewQuestioner creates a Questioner backed by gw.
func NewQuestioner(gw gateway.Gateway) *Questioner {
	return &Questioner{gw: gw}
}

// Ask generates the next question for the session. On a first failure
// it retries once with a simplified prompt; if that also fails, the
// error is returned and the caller should end the session gracefully.
func (q *Questioner) Ask(ctx context.Context, s *SessionState) (Question, error) {
	ctx = gateway.WithPurpose(ctx, gateway.PurposeQuestion)

	category := categories[s.QuestionsAsked%len(categories)]

	text, err := q.generate(ctx, buildQuestionMessage(s, category))
	if err != nil {
		// One retry with a simplified prompt.
		text, err = q.generate(ctx, buildSimpleQuestionMessage(s))
		if err != nil {
			return Question{}, fmt.Errorf("question generation failed: %w", err)
		}
	}

	return Question{Text: text, Category: category}, nil
}

func (q *Questioner) generate(ctx context.Context, userMsg string) (string, error) {
	req := gateway.Request{
		System: questionSystemPrompt,
		Messages: []gateway.Message{
			{Role: gateway.RoleUser, Content: userMsg},
		},
		Schema:      questionSchema,
		MaxTokens:   512,
		Temperature: 0.7,
	}

	resp, err := q.gw.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	var out struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse question response: %w", err)
	}
	if strings.TrimSpace(out.Question) == "" {
		return "", fmt.Errorf("empty question from model")
	}

	return out.Question, nil
}

// buildQuestionMessage constructs the full generation prompt.
func buildQuestionMessage(s *SessionState, category string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", s.Topic)
	fmt.Fprintf(&b, "Student level: %s\n", s.Level)
	fmt.Fprintf(&b, "Question category: %s\n", category)

	b.WriteString("\nAlready asked in this session:\n")
	prior := s.PriorQuestions(3)
	if len(prior) == 0 {
		b.WriteString("None")
	} else {
		for i, p := range prior {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p)
		}
	}

	return b.String()
}

// buildSimpleQuestionMessage is the stripped-down retry prompt.
func buildSimpleQuestionMessage(s *SessionState) string {
	return fmt.Sprintf("Ask one %s-level question about %s.", s.Level, s.Topic)
}

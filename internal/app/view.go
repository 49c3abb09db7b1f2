package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/avinashj/socratic/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	width := m.width
	if width <= 0 {
		width = 80
	}
	contentWidth := width - 8
	if contentWidth < 20 {
		contentWidth = 20
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("Socratic · %s", m.topic)))
	b.WriteString("\n")
	if m.session != nil {
		state := m.session.State
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
			"%s · level %s · %d/%d correct",
			state.StudentID, state.Level, state.CorrectAnswers, state.QuestionsAsked,
		)))
	}
	b.WriteString("\n\n")

	switch m.phase {
	case phaseLoading:
		b.WriteString(theme.Hint.Render("Thinking..."))

	case phaseAsking:
		b.WriteString(theme.Card.Render(wrap(m.session.Question(), contentWidth)))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Enter submit · Esc end session"))

	case phaseFeedback:
		step := m.lastStep
		if step.Evaluation.Correct {
			b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct (%.2f)", step.Evaluation.Score)))
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Not quite (%.2f)", step.Evaluation.Score)))
		}
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(wrap(step.Evaluation.Feedback, contentWidth)))
		if step.Explanation != "" {
			b.WriteString("\n\n")
			b.WriteString(theme.Card.Render(wrap(step.Explanation, contentWidth)))
		}
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press any key for the next question"))

	case phaseSummary:
		b.WriteString(m.renderSummary(contentWidth))

	case phaseError:
		b.WriteString(theme.Incorrect.Render("Something went wrong"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(wrap(m.errMsg, contentWidth)))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press any key to exit"))
	}

	v.SetContent(b.String())
	return v
}

func (m Model) renderSummary(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")

	if m.result != nil {
		s := m.result.Summary
		if s.EndedEarly {
			b.WriteString(theme.Incorrect.Render("The session ended early: questions could not be generated."))
			b.WriteString("\n\n")
		}
		b.WriteString(theme.Body.Render(fmt.Sprintf("Questions: %d", s.QuestionsAsked)))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Correct:   %d", s.CorrectAnswers)))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Accuracy:  %.1f%%", s.Accuracy)))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Level:     %s", m.result.Level)))
		if !m.result.ProgressSaved {
			b.WriteString("\n\n")
			b.WriteString(theme.Incorrect.Render("Warning: progress could not be saved."))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press any key to exit"))
	return b.String()
}

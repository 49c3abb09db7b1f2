// Package app is the interactive terminal session: one Bubble Tea
// model driving the tutoring loop for a single student and topic.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/avinashj/socratic/internal/tutor"
)

// phase tracks what the learn screen is showing.
type phase int

const (
	phaseLoading phase = iota
	phaseAsking
	phaseFeedback
	phaseSummary
	phaseError
)

// Model is the root Bubble Tea model for the learn command.
type Model struct {
	engine    *tutor.Engine
	studentID string
	topic     string
	level     tutor.Level

	session *tutor.Session
	phase   phase

	input    textinput.Model
	lastStep *tutor.Step
	result   *tutor.Result
	errMsg   string

	width  int
	height int
}

// NewModel creates the learn model. The session starts on Init.
func NewModel(engine *tutor.Engine, studentID, topic string, level tutor.Level) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.Focus()

	return Model{
		engine:    engine,
		studentID: studentID,
		topic:     topic,
		level:     level,
		input:     ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startSession(), m.input.Focus())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionReadyMsg:
		if msg.Err != nil {
			m.phase = phaseError
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.session = msg.Session
		if msg.Session.Outcome != nil {
			// Question generation failed; the session ended early.
			m.result = msg.Session.Outcome
			m.phase = phaseSummary
			return m, nil
		}
		m.phase = phaseAsking
		return m, nil

	case stepMsg:
		if msg.Err != nil {
			m.phase = phaseError
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.lastStep = msg.Step
		if msg.Step.Done {
			m.result = msg.Step.Outcome
			m.phase = phaseSummary
			return m, nil
		}
		m.phase = phaseFeedback
		return m, nil

	case endedMsg:
		m.result = msg.Result
		m.phase = phaseSummary
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseAsking {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		if m.session != nil && m.session.Active() {
			return m, m.endSession()
		}
		return m, tea.Quit
	}

	switch m.phase {
	case phaseAsking:
		switch key {
		case "esc":
			return m, m.endSession()
		case "enter":
			answer := m.input.Value()
			m.input.SetValue("")
			m.phase = phaseLoading
			return m, m.submit(answer)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseFeedback:
		// Any key moves on to the next question.
		m.phase = phaseAsking
		return m, m.input.Focus()

	case phaseSummary, phaseError:
		return m, tea.Quit
	}

	return m, nil
}

// startSession initializes the session off the UI goroutine.
func (m Model) startSession() tea.Cmd {
	engine, student, topic, level := m.engine, m.studentID, m.topic, m.level
	return func() tea.Msg {
		sess, err := engine.Start(context.Background(), student, topic, level)
		return sessionReadyMsg{Session: sess, Err: err}
	}
}

// submit runs one answer cycle off the UI goroutine.
func (m Model) submit(answer string) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		step, err := sess.Submit(context.Background(), answer)
		return stepMsg{Step: step, Err: err}
	}
}

// endSession terminates the session cleanly and shows the summary.
func (m Model) endSession() tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		if sess == nil {
			return endedMsg{Result: nil}
		}
		return endedMsg{Result: sess.End(context.Background())}
	}
}

// Run starts the Bubble Tea program for one learn session.
func Run(engine *tutor.Engine, studentID, topic string, level tutor.Level) error {
	p := tea.NewProgram(NewModel(engine, studentID, topic, level))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// wrap breaks text into lines no wider than width.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(text) {
		if line > 0 && line+len(word)+1 > width {
			b.WriteString("\n")
			line = 0
		} else if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}

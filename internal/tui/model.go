package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/magsim/internal/engine"
)

// DecisionRequest is sent into the running program via Program.Send
// whenever an ability needs a human call. Options is nil for a boolean
// decision.
type DecisionRequest struct {
	Prompt  string
	Options []string
}

// DecisionResult is what WaitForDecision returns once the human answers.
type DecisionResult struct {
	BoolValue   bool
	StringValue string
	Matched     bool
}

// Model is the Bubble Tea model for a single human-controlled racer. It
// renders the race log and current standings, and — whenever a
// DecisionRequest arrives — blocks the prompt line on the human's answer.
type Model struct {
	eng    *engine.Engine
	logger *log.Logger

	logViewport viewport.Model
	input       textinput.Model

	raceLog        []string
	decisionResult chan DecisionResult
	pending        *DecisionRequest
	quitting       bool

	width, height int
}

// NewModel builds a Model bound to eng; eng is read-only from the model's
// perspective (it only renders racer state, never mutates it).
func NewModel(eng *engine.Engine, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "waiting for a decision..."
	ti.CharLimit = 100
	ti.Width = 60
	ti.PromptStyle = PromptStyle
	ti.Prompt = "> "

	return &Model{
		eng:            eng,
		logger:         logger.WithPrefix("tui"),
		logViewport:    vp,
		input:          ti,
		raceLog:        []string{},
		decisionResult: make(chan DecisionResult, 1),
	}
}

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case DecisionRequest:
		req := msg
		m.pending = &req
		m.input.Placeholder = req.Prompt
		m.input.Focus()

	case logLineMsg:
		m.AddLogEntry(string(msg))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "up", "k":
			m.logViewport.ScrollUp(1)
		case "down", "j":
			m.logViewport.ScrollDown(1)
		case "enter":
			if m.pending != nil {
				m.resolvePending(strings.TrimSpace(m.input.Value()))
				m.input.SetValue("")
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// resolvePending parses raw against the pending request's shape and
// delivers a DecisionResult rather than blocking forever. A boolean request
// reads y, yes or an empty answer as yes and anything else as no; a
// selection request falls back to the first option on an unrecognized
// answer.
func (m *Model) resolvePending(raw string) {
	req := m.pending
	m.pending = nil
	m.input.Placeholder = "waiting for a decision..."

	lower := strings.ToLower(raw)
	if len(req.Options) == 0 {
		boolVal := lower == "y" || lower == "yes" || lower == ""
		m.AddLogEntry(fmt.Sprintf("%s -> %v", req.Prompt, boolVal))
		m.decisionResult <- DecisionResult{BoolValue: boolVal, Matched: true}
		return
	}

	for _, opt := range req.Options {
		if strings.EqualFold(opt, raw) {
			m.AddLogEntry(fmt.Sprintf("%s -> %s", req.Prompt, opt))
			m.decisionResult <- DecisionResult{StringValue: opt, Matched: true}
			return
		}
	}
	m.AddLogEntry(fmt.Sprintf("%s -> %s (unrecognized, using default)", req.Prompt, req.Options[0]))
	m.decisionResult <- DecisionResult{StringValue: req.Options[0], Matched: false}
}

// WaitForDecision blocks until the human resolves the currently pending
// DecisionRequest.
func (m *Model) WaitForDecision() DecisionResult {
	return <-m.decisionResult
}

// AddLogEntry appends a line to the race log, trimming the view to the
// bottom.
func (m *Model) AddLogEntry(line string) {
	m.raceLog = append(m.raceLog, line)
	m.logViewport.SetContent(strings.Join(m.raceLog, "\n"))
	m.logViewport.GotoBottom()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" magsim race ") + "\n\n")
	b.WriteString(RacerInfoStyle.Render(m.standings()) + "\n\n")
	b.WriteString(RaceLogStyle.Render(m.logViewport.View()) + "\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m *Model) standings() string {
	var lines []string
	for _, r := range m.eng.Racers() {
		style := lipgloss.NewStyle()
		switch {
		case r.Finished:
			style = FinishedStyle
		case r.Tripped:
			style = TrippedStyle
		}
		lines = append(lines, style.Render(fmt.Sprintf("%-12s pos=%-3d vp=%-3d", r.Name, r.Position, r.VictoryPoints)))
	}
	return strings.Join(lines, "\n")
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/magsim/internal/engine"
)

// Agent is the interactive engine.Agent backed by a running Bubble Tea
// program: a model running in its own goroutine, decisions relayed
// through a blocking channel rather than a return value threaded through
// Update.
type Agent struct {
	model      *Model
	program    *tea.Program
	mainLogger *log.Logger
}

// NewAgent builds an Agent bound to eng and registers it as eng's event
// observer; Start runs its Bubble Tea program in the background. Callers
// must Close it when the race ends.
func NewAgent(eng *engine.Engine, logger *log.Logger) *Agent {
	model := NewModel(eng, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	a := &Agent{
		model:      model,
		program:    program,
		mainLogger: logger,
	}
	eng.SetObserver(a.onEvent)
	return a
}

// Start runs the program in its own goroutine.
func (a *Agent) Start() error {
	go func() {
		if _, err := a.program.Run(); err != nil {
			a.mainLogger.Error("tui program exited", "error", err)
		}
	}()
	return nil
}

// Close tears down the program and restores the terminal.
func (a *Agent) Close() error {
	if a.program != nil {
		a.program.Quit()
		a.program.Wait()
		fmt.Print("\033[?25h")
		fmt.Print("\033c")
	}
	return nil
}

// onEvent mirrors published events into the race log, independent of any
// pending decision.
func (a *Agent) onEvent(ev engine.Event) {
	a.program.Send(logLineMsg(describeEvent(ev)))
}

type logLineMsg string

func describeEvent(ev engine.Event) string {
	switch e := ev.(type) {
	case engine.AbilityTriggeredEvent:
		return fmt.Sprintf("[%s] %s -> racer %d", e.Source, e.EventPhase(), e.TargetIdx())
	case engine.TripEvent:
		return fmt.Sprintf("racer %d tripped", e.TargetIdx())
	case engine.PostMoveEvent:
		return fmt.Sprintf("racer %d moved %d -> %d", e.TargetIdx(), e.StartTile, e.EndTile)
	case engine.PostWarpEvent:
		return fmt.Sprintf("racer %d warped %d -> %d", e.TargetIdx(), e.StartTile, e.EndTile)
	default:
		return string(ev.Kind())
	}
}

// MakeBooleanDecision implements engine.Agent by routing the prompt through
// the running program and blocking for the human's answer.
func (a *Agent) MakeBooleanDecision(ctx engine.DecisionContext) bool {
	a.program.Send(DecisionRequest{Prompt: fmt.Sprintf("racer %d: %s", ctx.Owner.Idx, ctx.Prompt)})
	result := a.model.WaitForDecision()
	return result.BoolValue
}

// MakeSelectionDecision implements engine.Agent by routing the prompt and
// its options through the running program.
func (a *Agent) MakeSelectionDecision(ctx engine.DecisionContext, options []string) (string, bool) {
	if len(options) == 0 {
		return "", false
	}
	a.program.Send(DecisionRequest{Prompt: fmt.Sprintf("racer %d: %s", ctx.Owner.Idx, ctx.Prompt), Options: options})
	result := a.model.WaitForDecision()
	return result.StringValue, result.Matched
}

package engine

// DecisionContext carries the read-only observations an Agent needs to make
// a boolean or selection decision. Agent calls happen synchronously mid-
// drain and must be pure with respect to engine state: observation only,
// never mutation.
type DecisionContext struct {
	Ability   AbilityName
	Owner     *Racer
	Prompt    string
	Engine    *Engine
}

// Agent is the pluggable decision hook abilities consult for live choices.
type Agent interface {
	MakeBooleanDecision(ctx DecisionContext) bool
	MakeSelectionDecision(ctx DecisionContext, options []string) (string, bool)
}

// BaselineAgent delegates to each ability's own stated baseline default:
// "yes" for boolean decisions, the first option for selections. It never
// consults board state.
type BaselineAgent struct{}

func (BaselineAgent) MakeBooleanDecision(ctx DecisionContext) bool { return true }

func (BaselineAgent) MakeSelectionDecision(ctx DecisionContext, options []string) (string, bool) {
	if len(options) == 0 {
		return "", false
	}
	return options[0], true
}

// AutoHeuristic is a per-ability heuristic consulted by AutoAgent. It may
// read engine/board/racer state but must not mutate it.
type AutoHeuristic func(ctx DecisionContext) bool

// AutoAgent calls ability-specific heuristics that may consult the board
// and other racers for boolean decisions, falling back to the baseline
// default when no heuristic is registered for an ability. Selection
// decisions always use the baseline default (the first option).
type AutoAgent struct {
	Heuristics map[AbilityName]AutoHeuristic
	fallback   BaselineAgent
}

// NewAutoAgent returns an AutoAgent with the given per-ability heuristics.
func NewAutoAgent(heuristics map[AbilityName]AutoHeuristic) *AutoAgent {
	return &AutoAgent{Heuristics: heuristics}
}

func (a *AutoAgent) MakeBooleanDecision(ctx DecisionContext) bool {
	if h, ok := a.Heuristics[ctx.Ability]; ok {
		return h(ctx)
	}
	return a.fallback.MakeBooleanDecision(ctx)
}

func (a *AutoAgent) MakeSelectionDecision(ctx DecisionContext, options []string) (string, bool) {
	return a.fallback.MakeSelectionDecision(ctx, options)
}

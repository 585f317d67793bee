package racers

import "github.com/lox/magsim/internal/engine"

// LongLegs: at turn start, asks the agent whether to lock this turn's
// roll to 5. BaselineAgent always says yes; a human-driven agent gets to
// decide per turn.
type LongLegs struct{}

func (LongLegs) Name() engine.AbilityName { return engine.AbilityLongLegs }

func (LongLegs) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindTurnStart}
}

func (LongLegs) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	start, ok := e.(engine.TurnStartEvent)
	if !ok || start.Target != owner.Idx {
		return nil
	}

	ctx := engine.DecisionContext{
		Ability: engine.AbilityLongLegs,
		Owner:   owner,
		Prompt:  "use Long Legs to lock this roll to 5?",
		Engine:  eng,
	}
	if !agent.MakeBooleanDecision(ctx) {
		return nil
	}

	eng.Logger().Debug("long legs engaged", "racer", owner.Idx)
	owner.RollOverride = &engine.RollOverride{Source: engine.AbilityLongLegs, Value: 5}

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: owner.Idx},
		Source: engine.AbilityLongLegs,
	}
}

package racers

import "github.com/lox/magsim/internal/engine"

// LackeyLoyalty: whenever another racer rolls a 6, Lackey rushes ahead
// +2 in loyal excitement.
type LackeyLoyalty struct{}

func (LackeyLoyalty) Name() engine.AbilityName { return engine.AbilityLackeyLoyalty }

func (LackeyLoyalty) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindRollResult}
}

func (LackeyLoyalty) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	roll, ok := e.(engine.RollResultEvent)
	if !ok || roll.Target == owner.Idx || roll.DiceValue != 6 {
		return nil
	}

	eng.Logger().Debug("lackey loyalty", "racer", owner.Idx)
	eng.PushMove(2, e.EventPhase(), owner.Idx, string(engine.AbilityLackeyLoyalty), owner.Idx, engine.EmitNone)

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: owner.Idx},
		Source: engine.AbilityLackeyLoyalty,
	}
}

package racers

import "github.com/lox/magsim/internal/engine"

// SkipperTurn: whenever another racer rolls a 1, Skipper steals the next
// turn outright, overriding the cursor so intervening racers are skipped
// entirely. When two Skippers both react to the same roll, the later one
// (by ascending racer index, per the resolver's dispatch order) wins —
// each Execute call overwrites the prior override.
type SkipperTurn struct{}

func (SkipperTurn) Name() engine.AbilityName { return engine.AbilitySkipperTurn }

func (SkipperTurn) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindRollResult}
}

func (SkipperTurn) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	roll, ok := e.(engine.RollResultEvent)
	if !ok || roll.Target == owner.Idx || roll.DiceValue != 1 {
		return nil
	}

	eng.Logger().Debug("skipper steals turn", "racer", owner.Idx)
	eng.SetNextTurnOverride(owner.Idx)

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: owner.Idx},
		Source: engine.AbilitySkipperTurn,
	}
}

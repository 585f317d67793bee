package racers

import "github.com/lox/magsim/internal/engine"

// InchwormCreep: whenever another racer rolls a 1, Inchworm steals their
// main move outright and creeps forward 1 of its own.
type InchwormCreep struct{}

func (InchwormCreep) Name() engine.AbilityName { return engine.AbilityInchwormCreep }

func (InchwormCreep) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindRollResult}
}

func (InchwormCreep) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	roll, ok := e.(engine.RollResultEvent)
	if !ok || roll.Target == owner.Idx || roll.DiceValue != 1 {
		return nil
	}

	eng.Logger().Debug("inchworm steals move", "racer", owner.Idx, "victim", roll.Target)
	eng.SkipMainMove(roll.Target)
	eng.PushMove(1, e.EventPhase(), owner.Idx, string(engine.AbilityInchwormCreep), owner.Idx, engine.EmitNone)

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: owner.Idx},
		Source: engine.AbilityInchwormCreep,
	}
}

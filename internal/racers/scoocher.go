package racers

import "github.com/lox/magsim/internal/engine"

// ScoochStep reacts to any other racer's ability firing (never its own)
// by advancing 1. Because every AbilityTriggeredEvent is published
// individually, Scoocher sees each contribution to a roll modifier query
// as a discrete step rather than one lump sum.
type ScoochStep struct{}

func (ScoochStep) Name() engine.AbilityName { return engine.AbilityScoochStep }

func (ScoochStep) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindAbilityTriggered}
}

func (ScoochStep) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	trig, ok := e.(engine.AbilityTriggeredEvent)
	if !ok || trig.Responsible == owner.Idx {
		return nil
	}

	eng.Logger().Debug("scooch", "racer", owner.Idx, "saw", trig.Source)
	eng.PushMove(1, e.EventPhase(), owner.Idx, string(engine.AbilityScoochStep), owner.Idx, engine.EmitNone)

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: owner.Idx},
		Source: engine.AbilityScoochStep,
	}
}

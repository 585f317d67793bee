package racers

import "github.com/lox/magsim/internal/engine"

// CentaurTrample: whenever Centaur's own movement passes another racer,
// that racer is knocked back 2 tiles.
type CentaurTrample struct{}

func (CentaurTrample) Name() engine.AbilityName { return engine.AbilityCentaurTrample }

func (CentaurTrample) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindPassing}
}

func (CentaurTrample) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	pass, ok := e.(engine.PassingEvent)
	if !ok || pass.PassingRacerIdx != owner.Idx {
		return nil
	}

	victim := eng.GetRacer(pass.PassedRacerIdx)
	if victim == nil || victim.Finished {
		return nil
	}

	eng.Logger().Debug("trample", "racer", owner.Idx, "victim", victim.Idx)
	eng.PushMove(-2, e.EventPhase(), victim.Idx, string(engine.AbilityCentaurTrample), owner.Idx, engine.EmitNone)

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: victim.Idx},
		Source: engine.AbilityCentaurTrample,
	}
}

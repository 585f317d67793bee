package racers

import "github.com/lox/magsim/internal/engine"

// BananaTrip triggers on PassingEvent, not landing-on, and trips whoever
// passed over Banana's tile. Landing exactly on the tile is not a pass
// and does not trip anyone.
type BananaTrip struct{}

func (BananaTrip) Name() engine.AbilityName { return engine.AbilityBananaTrip }

func (BananaTrip) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindPassing}
}

func (BananaTrip) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	pass, ok := e.(engine.PassingEvent)
	if !ok || pass.PassedRacerIdx != owner.Idx {
		return nil
	}

	victim := eng.GetRacer(pass.PassingRacerIdx)
	if victim == nil || victim.Finished {
		return nil
	}

	eng.Logger().Debug("banana slip", "racer", owner.Idx, "victim", victim.Idx)
	eng.PushTrip(victim.Idx, string(engine.AbilityBananaTrip), owner.Idx, e.EventPhase())

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: victim.Idx},
		Source: engine.AbilityBananaTrip,
	}
}

package racers

import "github.com/lox/magsim/internal/engine"

// SticklerStrictFinish vetoes any OTHER racer's move whose computed end
// tile would overshoot the board (exact finishes are still allowed).
// Stickler never vetoes its own move.
type SticklerStrictFinish struct{}

func (SticklerStrictFinish) Name() engine.AbilityName { return engine.AbilityStickler }

func (SticklerStrictFinish) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindPreMove}
}

func (SticklerStrictFinish) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	pre, ok := e.(engine.PreMoveEvent)
	if !ok || pre.Target == owner.Idx {
		return nil
	}
	if pre.EndTile <= eng.Board().Length {
		return nil
	}

	eng.Logger().Debug("stickler veto", "racer", owner.Idx, "target", pre.Target, "endTile", pre.EndTile)
	eng.VetoMove()

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: pre.Target},
		Source: engine.AbilityStickler,
	}
}

package racers

import "github.com/lox/magsim/internal/engine"

// SisyphusCurse grants +4 VP at setup (the curse's one compensation), and
// rolling a 6 sends Sisyphus back to the start, skips that turn's main
// move, and costs 1 VP.
type SisyphusCurse struct{}

func (SisyphusCurse) Name() engine.AbilityName { return engine.AbilitySisyphusCurse }

func (SisyphusCurse) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindRollResult}
}

func (SisyphusCurse) PreferredDice() []int { return []int{1, 2, 3, 4, 5} }

func (SisyphusCurse) Setup(eng *engine.Engine, owner *engine.Racer) {
	owner.VictoryPoints += 4
	eng.Logger().Debug("sisyphus curse granted", "racer", owner.Idx, "vp", owner.VictoryPoints)
}

func (SisyphusCurse) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	roll, ok := e.(engine.RollResultEvent)
	if !ok || roll.Target != owner.Idx || roll.DiceValue != 6 {
		return nil
	}

	eng.Logger().Debug("sisyphus rolled six", "racer", owner.Idx)
	eng.PushWarp(0, engine.PhaseReaction, owner.Idx, string(engine.AbilitySisyphusCurse), owner.Idx, engine.EmitNone)
	eng.SkipMainMove(owner.Idx)
	if owner.VictoryPoints > 0 {
		owner.VictoryPoints--
	}

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: owner.Idx},
		Source: engine.AbilitySisyphusCurse,
	}
}

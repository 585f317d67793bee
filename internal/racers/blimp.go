package racers

import "github.com/lox/magsim/internal/engine"

// BlimpRollModifier is a self-only roll modifier whose sign flips at the
// board's halfway marker — +3 in the first half (full steam ahead), -1
// past it (running out of hot air).
type BlimpRollModifier struct {
	OwnerIdx int
}

func (m BlimpRollModifier) Name() engine.ModifierName { return engine.ModifierBlimp }

func (m BlimpRollModifier) Equal(other engine.Modifier) bool {
	o, ok := other.(BlimpRollModifier)
	return ok && o.OwnerIdx == m.OwnerIdx
}

func (m BlimpRollModifier) ModifyRoll(q *engine.MoveDistanceQuery, ownerIdx int, eng *engine.Engine, rollingIdx int) []engine.AbilityTriggeredEvent {
	if rollingIdx != ownerIdx {
		return nil
	}
	owner := eng.GetRacer(ownerIdx)
	if owner == nil {
		return nil
	}

	threshold := eng.Board().SecondTurn
	if threshold == 0 {
		threshold = eng.Board().Length / 2
	}

	delta := -1
	if owner.Position < threshold {
		delta = 3
	}
	q.Modifiers = append(q.Modifiers, delta)

	return []engine.AbilityTriggeredEvent{{
		Base:   engine.Base{Phase: q.EventPhase(), Responsible: ownerIdx, Target: rollingIdx},
		Source: engine.AbilityBlimpModifier,
	}}
}

// BlimpModifierInstaller has no triggers of its own; it just installs
// BlimpRollModifier on its owner at race setup.
type BlimpModifierInstaller struct{}

func (BlimpModifierInstaller) Name() engine.AbilityName { return engine.AbilityBlimpModifier }

func (BlimpModifierInstaller) Triggers() []engine.EventKind { return nil }

func (BlimpModifierInstaller) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	return nil
}

func (BlimpModifierInstaller) Setup(eng *engine.Engine, owner *engine.Racer) {
	eng.AddRacerModifier(owner.Idx, BlimpRollModifier{OwnerIdx: owner.Idx})
}

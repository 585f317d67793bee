package racers

import "github.com/lox/magsim/internal/engine"

// GunkSlimeModifier is an others-only roll modifier that subtracts 1
// from everyone's distance except Gunk's own.
type GunkSlimeModifier struct {
	OwnerIdx int
}

func (m GunkSlimeModifier) Name() engine.ModifierName { return engine.ModifierGunk }

func (m GunkSlimeModifier) Equal(other engine.Modifier) bool {
	o, ok := other.(GunkSlimeModifier)
	return ok && o.OwnerIdx == m.OwnerIdx
}

func (m GunkSlimeModifier) ModifyRoll(q *engine.MoveDistanceQuery, ownerIdx int, eng *engine.Engine, rollingIdx int) []engine.AbilityTriggeredEvent {
	if rollingIdx == ownerIdx {
		return nil
	}
	q.Modifiers = append(q.Modifiers, -1)

	return []engine.AbilityTriggeredEvent{{
		Base:   engine.Base{Phase: q.EventPhase(), Responsible: ownerIdx, Target: rollingIdx},
		Source: engine.AbilityGunkSlime,
	}}
}

// GunkSlimeInstaller installs GunkSlimeModifier on Gunk at race setup.
type GunkSlimeInstaller struct{}

func (GunkSlimeInstaller) Name() engine.AbilityName { return engine.AbilityGunkSlime }

func (GunkSlimeInstaller) Triggers() []engine.EventKind { return nil }

func (GunkSlimeInstaller) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	return nil
}

func (GunkSlimeInstaller) Setup(eng *engine.Engine, owner *engine.Racer) {
	eng.AddRacerModifier(owner.Idx, GunkSlimeModifier{OwnerIdx: owner.Idx})
}

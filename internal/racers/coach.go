package racers

import "github.com/lox/magsim/internal/engine"

// CoachBoost is a self-only +1 roll modifier. CoachBoostManager keeps it
// attached to every racer (Coach included) that currently shares Coach's
// tile, recomputing whenever Coach's own position changes.
type CoachBoost struct {
	OwnerIdx int
}

func (m CoachBoost) Name() engine.ModifierName { return engine.ModifierCoach }

func (m CoachBoost) Equal(other engine.Modifier) bool {
	o, ok := other.(CoachBoost)
	return ok && o.OwnerIdx == m.OwnerIdx
}

func (m CoachBoost) ModifyRoll(q *engine.MoveDistanceQuery, ownerIdx int, eng *engine.Engine, rollingIdx int) []engine.AbilityTriggeredEvent {
	if rollingIdx != ownerIdx {
		return nil
	}
	q.Modifiers = append(q.Modifiers, 1)

	return []engine.AbilityTriggeredEvent{{
		Base:   engine.Base{Phase: q.EventPhase(), Responsible: ownerIdx, Target: rollingIdx},
		Source: engine.AbilityCoachBoost,
	}}
}

// CoachBoostManager is owned by Coach. It has no dice-modifying logic of
// its own; it just keeps CoachBoost attached to whoever is standing on
// Coach's tile.
type CoachBoostManager struct{}

func (CoachBoostManager) Name() engine.AbilityName { return engine.AbilityCoachBoost }

func (CoachBoostManager) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindPostMove, engine.KindPostWarp}
}

func (CoachBoostManager) Setup(eng *engine.Engine, owner *engine.Racer) {
	recomputeCoachAura(eng, owner.Idx)
}

func (CoachBoostManager) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	if e.TargetIdx() != owner.Idx {
		return nil
	}
	recomputeCoachAura(eng, owner.Idx)
	return nil
}

// recomputeCoachAura strips CoachBoost from every racer and reattaches it
// to whoever shares coachIdx's current tile, Coach included.
func recomputeCoachAura(eng *engine.Engine, coachIdx int) {
	coach := eng.GetRacer(coachIdx)
	if coach == nil {
		return
	}
	for _, r := range eng.Racers() {
		eng.RemoveRacerModifier(r.Idx, CoachBoost{OwnerIdx: r.Idx})
	}
	for _, r := range eng.Racers() {
		if !r.Finished && r.Position == coach.Position {
			eng.AddRacerModifier(r.Idx, CoachBoost{OwnerIdx: r.Idx})
		}
	}
}

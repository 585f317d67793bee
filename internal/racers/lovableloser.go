package racers

import "github.com/lox/magsim/internal/engine"

// LovableLoserBonus gains +1 VP at the start of any turn where it is
// strictly (no ties) in last place.
type LovableLoserBonus struct{}

func (LovableLoserBonus) Name() engine.AbilityName { return engine.AbilityLovableLoser }

func (LovableLoserBonus) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindTurnStart}
}

func (LovableLoserBonus) PreferredDice() []int { return []int{1, 2, 3} }

func (LovableLoserBonus) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	start, ok := e.(engine.TurnStartEvent)
	if !ok || start.Target != owner.Idx {
		return nil
	}

	strictlyLast := true
	for _, r := range eng.Racers() {
		if r.Idx == owner.Idx || r.Finished {
			continue
		}
		if r.Position <= owner.Position {
			strictlyLast = false
			break
		}
	}
	if !strictlyLast {
		return nil
	}

	owner.VictoryPoints++
	eng.Logger().Debug("lovable loser bonus", "racer", owner.Idx, "vp", owner.VictoryPoints)

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: owner.Idx},
		Source: engine.AbilityLovableLoser,
	}
}

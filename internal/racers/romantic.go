package racers

import "github.com/lox/magsim/internal/engine"

// RomanticMove: after any move or warp settles, if exactly two racers now
// share the destination tile, Romantic gets sentimental and advances 2
// more. Because this pushes another move that itself ends with a
// PostMoveEvent, pairing up again chains naturally.
type RomanticMove struct{}

func (RomanticMove) Name() engine.AbilityName { return engine.AbilityRomanticMove }

func (RomanticMove) Triggers() []engine.EventKind {
	return []engine.EventKind{engine.KindPostMove, engine.KindPostWarp}
}

func (RomanticMove) Execute(e engine.Event, owner *engine.Racer, eng *engine.Engine, agent engine.Agent) *engine.AbilityTriggeredEvent {
	var endTile int
	switch ev := e.(type) {
	case engine.PostMoveEvent:
		endTile = ev.EndTile
	case engine.PostWarpEvent:
		endTile = ev.EndTile
	default:
		return nil
	}

	count := 0
	for _, r := range eng.Racers() {
		if !r.Finished && r.Position == endTile {
			count++
		}
	}
	if count != 2 {
		return nil
	}

	eng.Logger().Debug("romantic pairing", "racer", owner.Idx, "tile", endTile)
	eng.PushMove(2, e.EventPhase(), owner.Idx, string(engine.AbilityRomanticMove), owner.Idx, engine.EmitNone)

	return &engine.AbilityTriggeredEvent{
		Base:   engine.Base{Phase: e.EventPhase(), Responsible: owner.Idx, Target: owner.Idx},
		Source: engine.AbilityRomanticMove,
	}
}

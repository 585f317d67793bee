package engine

// PushMove decomposes a movement intent into the canonical event sequence:
// gather roll modifiers (only for the turn's main move, i.e. source "System"
// in PhaseMainMove; ability, tile and other reaction moves are not
// modified), publish PreMoveEvent, publish a PassingEvent for
// every other non-finished racer strictly between the old and new
// position, update position, apply static tile features, publish
// PostMoveEvent, then optionally publish an AbilityTriggeredEvent for
// source.
//
// The MoveDistanceQuery modifier-gathering step is resolved synchronously
// here rather than through the general queue: no ability triggers on
// MoveDistanceQuery, so it is consumed by exactly one actor (the mover)
// and never needs FIFO ordering against other events.
func (e *Engine) PushMove(distance int, phase Phase, movedIdx int, source string, responsibleIdx int, emit EmitTiming) {
	r := e.GetRacer(movedIdx)
	if r == nil || r.Finished {
		return
	}

	query := &MoveDistanceQuery{
		Base:     Base{Phase: phase, Responsible: movedIdx, Target: movedIdx},
		Distance: distance,
	}
	if phase == PhaseMainMove && source == "System" {
		e.applyRollModifiers(query)
	}
	finalDistance := query.FinalDistance()

	start := r.Position
	end := start + finalDistance
	if end < 0 {
		end = 0
	}

	if emit == EmitBefore {
		ate := AbilityTriggeredEvent{Base: Base{Phase: phase, Responsible: responsibleIdx, Target: movedIdx}, Source: AbilityName(source)}
		e.recordAbilityTrigger(ate)
		e.Publish(ate)
		e.Drain()
	}

	e.pendingMoveVeto = false
	e.PublishNow(PreMoveEvent{Base: Base{Phase: phase, Responsible: responsibleIdx, Target: movedIdx}, StartTile: start, EndTile: end})
	if e.pendingMoveVeto {
		e.pendingMoveVeto = false
		return
	}

	lo, hi := start, end
	if lo > hi {
		lo, hi = hi, lo
	}
	for tile := lo + 1; tile < hi; tile++ {
		for _, other := range e.racers {
			if other.Idx == movedIdx || other.Finished {
				continue
			}
			if other.Position == tile {
				e.Publish(PassingEvent{
					Base:            Base{Phase: phase, Responsible: movedIdx, Target: other.Idx},
					PassingRacerIdx: movedIdx,
					PassedRacerIdx:  other.Idx,
				})
			}
		}
	}
	e.Drain()

	r.Position = end
	e.applyFinish(r)
	if !r.Finished {
		e.applyTileFeatures(r)
	}

	e.Publish(PostMoveEvent{Base: Base{Phase: phase, Responsible: responsibleIdx, Target: movedIdx}, StartTile: start, EndTile: end})
	e.Drain()

	if emit == EmitAfterResolution {
		ate := AbilityTriggeredEvent{Base: Base{Phase: phase, Responsible: responsibleIdx, Target: movedIdx}, Source: AbilityName(source)}
		e.recordAbilityTrigger(ate)
		e.Publish(ate)
		e.Drain()
	}
}

// PushWarp teleports warpedIdx to target, bypassing PassingEvent emission.
func (e *Engine) PushWarp(target int, phase Phase, warpedIdx int, source string, responsibleIdx int, emit EmitTiming) {
	r := e.GetRacer(warpedIdx)
	if r == nil || r.Finished {
		return
	}

	start := r.Position

	if emit == EmitBefore {
		ate := AbilityTriggeredEvent{Base: Base{Phase: phase, Responsible: responsibleIdx, Target: warpedIdx}, Source: AbilityName(source)}
		e.recordAbilityTrigger(ate)
		e.Publish(ate)
		e.Drain()
	}

	e.Publish(PreWarpEvent{Base: Base{Phase: phase, Responsible: responsibleIdx, Target: warpedIdx}})
	e.Drain()

	r.Position = target
	e.applyFinish(r)
	if !r.Finished {
		e.applyTileFeatures(r)
	}

	e.Publish(PostWarpEvent{Base: Base{Phase: phase, Responsible: responsibleIdx, Target: warpedIdx}, StartTile: start, EndTile: target})
	e.Drain()

	if emit == EmitAfterResolution {
		ate := AbilityTriggeredEvent{Base: Base{Phase: phase, Responsible: responsibleIdx, Target: warpedIdx}, Source: AbilityName(source)}
		e.recordAbilityTrigger(ate)
		e.Publish(ate)
		e.Drain()
	}
}

// PushTrip sets Tripped on trippedIdx and publishes a TripEvent. A call on
// an already-tripped racer is a no-op (idempotent). When the trip comes
// from a trip tile (source "Board"), the racer's TripTileModifiers are
// notified.
func (e *Engine) PushTrip(trippedIdx int, source string, responsibleIdx int, phase Phase) {
	r := e.GetRacer(trippedIdx)
	if r == nil || r.Finished || r.Tripped {
		return
	}
	r.Tripped = true
	e.Publish(TripEvent{Base: Base{Phase: phase, Responsible: responsibleIdx, Target: trippedIdx}})
	e.Drain()

	if source != "Board" {
		return
	}
	for _, m := range r.Modifiers {
		if tm, ok := m.(TripTileModifier); ok {
			tm.OnTripTileEntered(e, trippedIdx)
		}
	}
}

// applyFinish marks r finished once it reaches or crosses the board
// length, recording finish order, and clamps its reported position to the
// board length — except for Stickler itself, whose own overshoot is left
// unclamped. Stickler's veto of *other* racers' overshoot is a separate
// mechanism (SticklerStrictFinish, triggered on PreMoveEvent) that stops
// the move before it ever reaches this clamp.
func (e *Engine) applyFinish(r *Racer) {
	if r.Finished || r.Position < e.board.Length {
		return
	}
	r.Finished = true
	r.Tripped = false
	place := 1
	for _, other := range e.racers {
		if other.Idx != r.Idx && other.Finished && other.FinishPosition > 0 {
			place++
		}
	}
	r.FinishPosition = place
	if r.Name != Stickler {
		r.Position = e.board.Length
	}
}

// applyTileFeatures runs the static features at r's current tile, in
// registration order.
func (e *Engine) applyTileFeatures(r *Racer) {
	for _, f := range e.board.FeaturesAt(r.Position) {
		f.Apply(e, r.Idx)
	}
}

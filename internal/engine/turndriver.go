package engine

// RunTurn executes one turn for the current racer: turn-start, the
// tripped-recovery short-circuit, roll (or override), main move, turn-end,
// then cursor advancement. It is also the unit RunRace calls in a loop, and
// a test hook in its own right (RunTurns bounds it to n calls).
func (e *Engine) RunTurn() error {
	if e.fatalErr != nil {
		return e.fatalErr
	}
	if e.raceOver() {
		return nil
	}

	r := e.racers[e.currentRacerIdx]
	if r.Finished {
		e.advanceCursor()
		return e.Drain()
	}

	r.TurnsTaken++
	e.Publish(TurnStartEvent{Base: Base{Phase: PhaseTurnStart, Responsible: r.Idx, Target: r.Idx}})
	if err := e.Drain(); err != nil {
		return err
	}

	if r.Tripped {
		r.Tripped = false
		r.RecoveryTurns++
		e.Publish(TurnEndEvent{Base: Base{Phase: PhaseTurnEnd, Responsible: r.Idx, Target: r.Idx}})
		if err := e.Drain(); err != nil {
			return err
		}
		e.advanceCursor()
		return nil
	}

	diceValue := e.dice.Next()
	baseValue := diceValue
	if r.RollOverride != nil {
		baseValue = r.RollOverride.Value
		r.RollOverride = nil
	}
	r.SumDiceRolled += diceValue

	e.Publish(RollResultEvent{Base: Base{Phase: PhaseRollWindow, Responsible: r.Idx, Target: r.Idx}, DiceValue: diceValue, BaseValue: baseValue})
	if err := e.Drain(); err != nil {
		return err
	}

	if !r.MainMoveConsumed {
		e.PushMove(baseValue, PhaseMainMove, r.Idx, "System", r.Idx, EmitNone)
		if e.fatalErr != nil {
			return e.fatalErr
		}
	}

	e.Publish(TurnEndEvent{Base: Base{Phase: PhaseTurnEnd, Responsible: r.Idx, Target: r.Idx}})
	if err := e.Drain(); err != nil {
		return err
	}

	r.MainMoveConsumed = false
	r.RollOverride = nil

	e.advanceCursor()
	return nil
}

// advanceCursor jumps to nextTurnOverride if SkipperTurn (or another
// ability) set one, clearing it; otherwise increments modulo active
// racers, skipping finished ones.
func (e *Engine) advanceCursor() {
	if e.nextTurnOverride != nil {
		e.currentRacerIdx = *e.nextTurnOverride
		e.nextTurnOverride = nil
		return
	}
	n := len(e.racers)
	for i := 1; i <= n; i++ {
		idx := (e.currentRacerIdx + i) % n
		if !e.racers[idx].Finished {
			e.currentRacerIdx = idx
			return
		}
	}
}

// raceOver reports whether the race has reached its natural end: all
// racers finished, or all but one.
func (e *Engine) raceOver() bool {
	remaining := 0
	for _, r := range e.racers {
		if !r.Finished {
			remaining++
		}
	}
	return remaining <= 1
}

// RunTurns runs up to n turns, stopping early if the race ends or aborts.
func (e *Engine) RunTurns(n int) error {
	for i := 0; i < n; i++ {
		if e.raceOver() || e.fatalErr != nil {
			return e.fatalErr
		}
		if err := e.RunTurn(); err != nil {
			return err
		}
		e.totalTurns++
	}
	return e.fatalErr
}

// RunRace runs turns until finish or abort and returns the RaceResult.
func (e *Engine) RunRace() RaceResult {
	start := e.clock.Now()
	for !e.raceOver() {
		if e.totalTurns >= e.rules.MaxTurns {
			e.fatalErr = &RaceError{Code: MaxTurnsReached, Msg: "turn cap exceeded"}
			e.aborted = true
			break
		}
		if err := e.RunTurn(); err != nil {
			e.aborted = true
			break
		}
		e.totalTurns++
	}
	elapsed := e.clock.Now().Sub(start)
	return e.buildResult(elapsed)
}

package engine

import "time"

// Clock is the narrow time source Engine needs; quartz.Clock (both the real
// wall-clock and the fake used in tests) satisfies it structurally.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SetClock overrides the engine's time source, for deterministic
// ExecutionTimeMs assertions in tests (pair with a quartz.Mock).
func (e *Engine) SetClock(c Clock) { e.clock = c }

// RacerResult is the per-racer slice of a RaceResult, matching the
// persistence schema's field names 1:1.
type RacerResult struct {
	ConfigHash             string
	RacerID                int
	RacerName              RacerName
	FinalVP                int
	TurnsTaken             int
	RecoveryTurns          int
	SumDiceRolled          int
	AbilityTriggerCount    int
	AbilitySelfTargetCount int
	AbilityTargetCount     int
	FinishPosition         int
	Eliminated             bool
	Rank                   *int // 1, 2, or nil
}

// RaceResult is the full record a race produces, consumed by the batch
// runner / persistence layer (out of scope for this module).
type RaceResult struct {
	ConfigHash      string
	Seed            int64
	BoardID         string
	RacerNames      []RacerName
	RacerCount      int
	Timestamp       time.Time
	ExecutionTimeMs int64
	Aborted         bool
	AbortCode       ErrorCode
	MinorLoop       bool
	TotalTurns      int
	Racers          []RacerResult
}

func (e *Engine) buildResult(elapsed time.Duration) RaceResult {
	hash := e.configHash()
	names := make([]RacerName, len(e.racers))
	racerResults := make([]RacerResult, len(e.racers))

	for i, r := range e.racers {
		names[i] = r.Name
		var rank *int
		if r.Finished && r.FinishPosition <= 2 {
			p := r.FinishPosition
			rank = &p
		}
		racerResults[i] = RacerResult{
			ConfigHash:             hash,
			RacerID:                r.Idx,
			RacerName:              r.Name,
			FinalVP:                r.VictoryPoints,
			TurnsTaken:             r.TurnsTaken,
			RecoveryTurns:          r.RecoveryTurns,
			SumDiceRolled:          r.SumDiceRolled,
			AbilityTriggerCount:    r.AbilityTriggerCount,
			AbilitySelfTargetCount: r.AbilitySelfTargetCount,
			AbilityTargetCount:     r.AbilityTargetCount,
			FinishPosition:         r.FinishPosition,
			Eliminated:             !r.Finished && e.aborted,
			Rank:                   rank,
		}
	}

	var abortCode ErrorCode
	if e.fatalErr != nil {
		abortCode = e.fatalErr.Code
	}

	return RaceResult{
		ConfigHash:      hash,
		Seed:            e.seed,
		BoardID:         e.boardID,
		RacerNames:      names,
		RacerCount:      len(e.racers),
		Timestamp:       e.clock.Now(),
		ExecutionTimeMs: elapsed.Milliseconds(),
		Aborted:         e.aborted,
		AbortCode:       abortCode,
		MinorLoop:       e.minorLoopDetected,
		TotalTurns:      e.totalTurns,
		Racers:          racerResults,
	}
}

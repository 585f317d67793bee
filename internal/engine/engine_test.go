package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicRacers(names ...RacerName) []RacerConfig {
	cfgs := make([]RacerConfig, len(names))
	for i, n := range names {
		cfgs[i] = RacerConfig{Name: n}
	}
	return cfgs
}

func TestNew_RejectsZeroLengthBoard(t *testing.T) {
	board := &Board{Length: 0, Features: map[int][]TileFeature{}}
	_, err := New(board, 1, "bad", basicRacers(Mastermind), NewScriptedDice(1), nil, DefaultRules(), nil)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNew_RejectsNoRacers(t *testing.T) {
	board := NewBoard(10)
	_, err := New(board, 1, "empty", nil, NewScriptedDice(1), nil, DefaultRules(), nil)
	require.Error(t, err)
}

func TestNew_DefaultsAgentAndClock(t *testing.T) {
	board := NewBoard(10)
	e, err := New(board, 1, "defaults", basicRacers(Mastermind, FlipFlop), NewScriptedDice(1, 2, 6, 6, 6), nil, DefaultRules(), nil)
	require.NoError(t, err)
	require.NotNil(t, e.agent)
	require.NotNil(t, e.clock)
	// RunRace must not panic on the nil-clock path fixed in New.
	assert.NotPanics(t, func() { e.RunRace() })
}

// TestPushMove_PositionBounds exercises invariant: a racer's position never
// drops below 0 even when a negative delta would overshoot the start.
func TestPushMove_PositionBounds(t *testing.T) {
	board := NewBoard(20)
	e, err := New(board, 1, "bounds", basicRacers(Mastermind), NewScriptedDice(1), nil, DefaultRules(), nil)
	require.NoError(t, err)

	e.PushMove(-5, PhaseMainMove, 0, "System", 0, EmitNone)
	assert.Equal(t, 0, e.GetRacer(0).Position)
}

// TestPushMove_RoundTrip exercises the push_move(+k) then
// push_move(-k) round-trip law: net position is unchanged (in the absence
// of intervening tile features or abilities).
func TestPushMove_RoundTrip(t *testing.T) {
	board := NewBoard(30)
	e, err := New(board, 1, "roundtrip", basicRacers(Mastermind), NewScriptedDice(1), nil, DefaultRules(), nil)
	require.NoError(t, err)

	e.PushMove(7, PhaseMainMove, 0, "System", 0, EmitNone)
	start := e.GetRacer(0).Position
	e.PushMove(-7, PhaseMainMove, 0, "System", 0, EmitNone)
	assert.Equal(t, start-7, e.GetRacer(0).Position)
}

// TestPushWarp_DoubleIdempotent: warping to the same tile twice in a row
// leaves the racer exactly there, with no duplicated side effects beyond
// the two PostWarpEvents.
func TestPushWarp_DoubleIdempotent(t *testing.T) {
	board := NewBoard(30)
	e, err := New(board, 1, "warp", basicRacers(Mastermind), NewScriptedDice(1), nil, DefaultRules(), nil)
	require.NoError(t, err)

	var postWarps int
	e.SetObserver(func(ev Event) {
		if ev.Kind() == KindPostWarp {
			postWarps++
		}
	})

	e.PushWarp(12, PhaseReaction, 0, "Test", 0, EmitNone)
	e.PushWarp(12, PhaseReaction, 0, "Test", 0, EmitNone)

	assert.Equal(t, 12, e.GetRacer(0).Position)
	assert.Equal(t, 2, postWarps)
}

// TestPushTrip_Idempotent: a second trip on an already-tripped racer is a
// no-op and publishes no second TripEvent.
func TestPushTrip_Idempotent(t *testing.T) {
	board := NewBoard(30)
	e, err := New(board, 1, "trip", basicRacers(Mastermind), NewScriptedDice(1), nil, DefaultRules(), nil)
	require.NoError(t, err)

	var trips int
	e.SetObserver(func(ev Event) {
		if ev.Kind() == KindTrip {
			trips++
		}
	})

	e.PushTrip(0, "Test", 0, PhaseReaction)
	e.PushTrip(0, "Test", 0, PhaseReaction)

	assert.True(t, e.GetRacer(0).Tripped)
	assert.Equal(t, 1, trips)
}

// TestApplyFinish_ClampsExceptStickler covers the Stickler exemption: a
// generic racer's overshoot position is clamped to the board length, while
// Stickler's own overshoot passes through unclamped.
func TestApplyFinish_ClampsExceptStickler(t *testing.T) {
	board := NewBoard(30)
	e, err := New(board, 1, "finish", basicRacers(Mastermind, Stickler), NewScriptedDice(1, 1), nil, DefaultRules(), nil)
	require.NoError(t, err)

	e.PushMove(35, PhaseMainMove, 0, "System", 0, EmitNone)
	assert.Equal(t, 30, e.GetRacer(0).Position)
	assert.True(t, e.GetRacer(0).Finished)

	e.PushMove(35, PhaseMainMove, 1, "System", 1, EmitNone)
	assert.Equal(t, 35, e.GetRacer(1).Position)
	assert.True(t, e.GetRacer(1).Finished)
}

// TestFinishPosition_AscendingOrder checks finish order is assigned in the
// sequence racers cross the line, not by racer index.
func TestFinishPosition_AscendingOrder(t *testing.T) {
	board := NewBoard(10)
	e, err := New(board, 1, "order", basicRacers(Mastermind, FlipFlop), NewScriptedDice(1, 1), nil, DefaultRules(), nil)
	require.NoError(t, err)

	e.PushMove(10, PhaseMainMove, 1, "System", 1, EmitNone)
	e.PushMove(10, PhaseMainMove, 0, "System", 0, EmitNone)

	assert.Equal(t, 1, e.GetRacer(1).FinishPosition)
	assert.Equal(t, 2, e.GetRacer(0).FinishPosition)
}

// TestModifierDedupByEquality is the modifier dedup invariant: adding a
// modifier equal to one already attached is a no-op, so OnGain fires once
// and the racer holds a single copy.
func TestModifierDedupByEquality(t *testing.T) {
	board := NewBoard(10)
	e, err := New(board, 1, "dedup", basicRacers(Mastermind), NewScriptedDice(1), nil, DefaultRules(), nil)
	require.NoError(t, err)

	calls := 0
	m := countingModifier{onGain: func() { calls++ }}
	e.AddRacerModifier(0, m)
	e.AddRacerModifier(0, m) // equal modifier, must be deduped
	assert.Equal(t, 1, calls)
	assert.Len(t, e.GetRacer(0).Modifiers, 1)
}

type countingModifier struct {
	onGain func()
}

func (countingModifier) Name() ModifierName { return "counting" }
func (countingModifier) Equal(other Modifier) bool {
	_, ok := other.(countingModifier)
	return ok
}
func (c countingModifier) OnGain(eng *Engine, ownerIdx int) { c.onGain() }
func (c countingModifier) OnLoss(eng *Engine, ownerIdx int) {}

// TestRunRace_Determinism: two engines built from identical seed/dice/board
// configuration produce identical final positions and VP.
func TestRunRace_Determinism(t *testing.T) {
	build := func() *Engine {
		board := NewBoard(24)
		board.AddFeature(10, TripTile{})
		e, err := New(board, 99, "determinism", basicRacers(Mastermind, FlipFlop, Stickler), NewScriptedDice(3, 4, 2, 6, 5, 1, 2, 3, 4, 5, 6, 1), nil, DefaultRules(), nil)
		require.NoError(t, err)
		return e
	}

	e1 := build()
	e2 := build()
	e1.RunTurns(6)
	e2.RunTurns(6)

	for i := range e1.Racers() {
		assert.Equal(t, e1.GetRacer(i).Position, e2.GetRacer(i).Position)
		assert.Equal(t, e1.GetRacer(i).VictoryPoints, e2.GetRacer(i).VictoryPoints)
	}
}

// TestRunRace_MaxTurnsAborts confirms a race that never naturally ends
// aborts with MaxTurnsReached rather than looping forever.
func TestRunRace_MaxTurnsAborts(t *testing.T) {
	board := NewBoard(1_000_000)
	rules := DefaultRules()
	rules.MaxTurns = 3
	e, err := New(board, 1, "cap", basicRacers(Mastermind, FlipFlop), NewScriptedDice(1, 1, 1, 1, 1, 1), nil, rules, nil)
	require.NoError(t, err)

	result := e.RunRace()
	assert.True(t, result.Aborted)
	assert.Equal(t, MaxTurnsReached, result.AbortCode)
}

// TestAdvanceCursor_SkipsFinished confirms the cursor skips over racers who
// have already finished rather than giving them dead turns.
func TestAdvanceCursor_SkipsFinished(t *testing.T) {
	board := NewBoard(5)
	e, err := New(board, 1, "skip", basicRacers(Mastermind, FlipFlop, Stickler), NewScriptedDice(5, 1, 1), nil, DefaultRules(), nil)
	require.NoError(t, err)

	require.NoError(t, e.RunTurn()) // racer 0 finishes immediately
	assert.True(t, e.GetRacer(0).Finished)
	assert.Equal(t, 1, e.CurrentRacerIdx())

	require.NoError(t, e.RunTurn()) // racer 1
	require.NoError(t, e.RunTurn()) // racer 2; the cursor wraps past finished racer 0
	assert.Equal(t, 1, e.CurrentRacerIdx())
}

func TestVictoryPointTile_ClampsAtZero(t *testing.T) {
	board := NewBoard(10)
	board.AddFeature(5, VictoryPointTile{Delta: -100})
	e, err := New(board, 1, "vp", basicRacers(Mastermind), NewScriptedDice(1), nil, DefaultRules(), nil)
	require.NoError(t, err)

	e.PushMove(5, PhaseMainMove, 0, "System", 0, EmitNone)
	assert.Equal(t, 0, e.GetRacer(0).VictoryPoints)
}

func TestScriptedDice_PanicsWhenExhausted(t *testing.T) {
	d := NewScriptedDice(6)
	d.Next()
	assert.Panics(t, func() { d.Next() })
}

func TestConfigHash_StableForEquivalentRosters(t *testing.T) {
	board := NewBoard(10)
	e1, err := New(board, 5, "hash", basicRacers(Mastermind, FlipFlop), NewScriptedDice(1), nil, DefaultRules(), nil)
	require.NoError(t, err)
	e2, err := New(board, 5, "hash", basicRacers(FlipFlop, Mastermind), NewScriptedDice(1), nil, DefaultRules(), nil)
	require.NoError(t, err)

	// Sorted-name hashing means roster order doesn't affect the hash.
	assert.Equal(t, e1.configHash(), e2.configHash())
}

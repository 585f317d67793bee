package racers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/magsim/internal/engine"
)

func newRace(t *testing.T, length int, dice []int, names ...engine.RacerName) *engine.Engine {
	t.Helper()
	board := engine.NewBoard(length)
	e, err := engine.New(board, 1, "scenario", Configs(names...), engine.NewScriptedDice(dice...), nil, engine.DefaultRules(), nil)
	require.NoError(t, err)
	return e
}

func placeAt(e *engine.Engine, idx, pos int) {
	e.GetRacer(idx).Position = pos
}

// Scenario 1: Banana passing.
func TestScenario_BananaPassing(t *testing.T) {
	e := newRace(t, 30, []int{6}, engine.Centaur, engine.Banana)
	placeAt(e, 1, 4)

	require.NoError(t, e.RunTurn())

	centaur := e.GetRacer(0)
	banana := e.GetRacer(1)
	assert.Equal(t, 6, centaur.Position)
	assert.True(t, centaur.Tripped)
	assert.Equal(t, 2, banana.Position)
	assert.Greater(t, centaur.AbilityTriggerCount, 0)
	assert.Greater(t, banana.AbilityTriggerCount, 0)
}

// Scenario 2: Banana landing (not passing).
func TestScenario_BananaLandingNotPassing(t *testing.T) {
	e := newRace(t, 30, []int{4}, engine.Centaur, engine.Banana)
	placeAt(e, 1, 4)

	require.NoError(t, e.RunTurn())

	centaur := e.GetRacer(0)
	assert.Equal(t, 4, centaur.Position)
	assert.False(t, centaur.Tripped)
}

// Scenario 3: Romantic chain.
func TestScenario_RomanticChain(t *testing.T) {
	e := newRace(t, 30, []int{4}, engine.Romantic, engine.Banana, engine.FlipFlop)
	placeAt(e, 1, 4)
	placeAt(e, 2, 6)

	require.NoError(t, e.RunTurn())

	assert.Equal(t, 8, e.GetRacer(0).Position)
}

// Scenario 4: Scoocher cascade under Blimp.
func TestScenario_ScoocherCascadeUnderBlimp(t *testing.T) {
	e := newRace(t, 40, []int{2}, engine.Blimp, engine.Coach, engine.Gunk, engine.Scoocher)
	placeAt(e, 3, 10)

	require.NoError(t, e.RunTurn())

	assert.Equal(t, 5, e.GetRacer(0).Position)
	assert.Equal(t, 13, e.GetRacer(3).Position)
}

// Scenario 5: Sisyphus curse.
func TestScenario_SisyphusCurse(t *testing.T) {
	e := newRace(t, 30, []int{2, 2, 3, 2, 2, 6}, engine.Mastermind, engine.Stickler, engine.Sisyphus)
	placeAt(e, 2, 10)

	require.NoError(t, e.RunTurns(6))

	sisyphus := e.GetRacer(2)
	assert.Equal(t, 0, sisyphus.Position)
	assert.Equal(t, 3, sisyphus.VictoryPoints)
}

// Scenario 6: Stickler veto.
func TestScenario_SticklerVeto(t *testing.T) {
	e := newRace(t, 30, []int{3, 3, 2, 2}, engine.Stickler, engine.Banana)
	placeAt(e, 1, 28)

	require.NoError(t, e.RunTurn()) // Stickler: 0 -> 3
	require.NoError(t, e.RunTurn()) // Banana: 28+3=31 vetoed, stays at 28
	assert.Equal(t, 28, e.GetRacer(1).Position)

	require.NoError(t, e.RunTurn()) // Stickler: 3 -> 5
	require.NoError(t, e.RunTurn()) // Banana: 28+2=30, exact finish, allowed
	assert.Equal(t, 30, e.GetRacer(1).Position)
	assert.True(t, e.GetRacer(1).Finished)
}

// Stickler never vetoes its own overshoot.
func TestStickler_DoesNotBlockSelf(t *testing.T) {
	e := newRace(t, 30, []int{5}, engine.Stickler, engine.Mastermind)
	placeAt(e, 0, 28)

	require.NoError(t, e.RunTurn())
	assert.Equal(t, 33, e.GetRacer(0).Position)
	assert.True(t, e.GetRacer(0).Finished)
}

// Coach's boost attaches to anyone sharing its tile, including itself, and
// detaches once they move apart.
func TestCoach_BoostSharedTileOnly(t *testing.T) {
	e := newRace(t, 40, []int{1, 1}, engine.Coach, engine.Mastermind)
	placeAt(e, 1, 0) // Mastermind starts on Coach's tile

	require.NoError(t, e.RunTurn()) // Coach moves first, gets +1 self boost -> position 2
	assert.Equal(t, 2, e.GetRacer(0).Position)

	require.NoError(t, e.RunTurn()) // Mastermind no longer shares Coach's tile, no boost
	assert.Equal(t, 1, e.GetRacer(1).Position)
}

// Gunk's slime modifier only ever subtracts from other racers, never Gunk
// itself.
func TestGunk_SlowsOthersNotSelf(t *testing.T) {
	e := newRace(t, 40, []int{3, 3}, engine.Gunk, engine.Mastermind)

	require.NoError(t, e.RunTurn()) // Gunk's own roll: unaffected by its modifier
	assert.Equal(t, 3, e.GetRacer(0).Position)

	require.NoError(t, e.RunTurn()) // Mastermind's roll: -1 from Gunk's slime
	assert.Equal(t, 2, e.GetRacer(1).Position)
}

// Skipper steals the very next turn whenever another racer rolls a 1.
func TestSkipper_StealsNextTurnOnOne(t *testing.T) {
	// FlipFlop (idx1) is next in normal cursor order; Skipper (idx2) must
	// steal the turn out from under it.
	e := newRace(t, 40, []int{1, 3}, engine.Mastermind, engine.FlipFlop, engine.Skipper)

	require.NoError(t, e.RunTurn()) // Mastermind rolls 1, Skipper steals the turn
	assert.Equal(t, 2, e.CurrentRacerIdx())

	require.NoError(t, e.RunTurn()) // Skipper's stolen turn, FlipFlop still waiting
	assert.Equal(t, 3, e.GetRacer(2).Position)
	assert.Equal(t, 0, e.GetRacer(1).Position)
}

// Lackey rushes +2 whenever another racer rolls a 6.
func TestLackey_RushesOnSix(t *testing.T) {
	e := newRace(t, 40, []int{6, 1}, engine.Mastermind, engine.Lackey)
	require.NoError(t, e.RunTurn())
	assert.Equal(t, 2, e.GetRacer(1).Position)
}

// Inchworm steals another racer's main move when they roll a 1, and
// creeps forward 1 of its own instead.
func TestInchworm_StealsMoveOnOne(t *testing.T) {
	e := newRace(t, 40, []int{1, 5}, engine.Mastermind, engine.Inchworm)

	require.NoError(t, e.RunTurn())
	assert.Equal(t, 0, e.GetRacer(0).Position, "main move stolen")
	assert.Equal(t, 1, e.GetRacer(1).Position)
}

// LovableLoser gains a VP at the start of any turn it is strictly last.
func TestLovableLoser_BonusWhenStrictlyLast(t *testing.T) {
	e := newRace(t, 40, []int{1}, engine.LovableLoser, engine.Mastermind)
	placeAt(e, 1, 5)

	require.NoError(t, e.RunTurn())
	assert.Equal(t, 1, e.GetRacer(0).VictoryPoints)
}

func TestLovableLoser_NoBonusWhenTied(t *testing.T) {
	e := newRace(t, 40, []int{1}, engine.LovableLoser, engine.Mastermind)
	placeAt(e, 0, 5)
	placeAt(e, 1, 5)

	require.NoError(t, e.RunTurn())
	assert.Equal(t, 0, e.GetRacer(0).VictoryPoints)
}

// Legs locks the roll to 5 under the baseline agent, which always says yes.
func TestLegs_LocksRollToFiveUnderBaselineAgent(t *testing.T) {
	e := newRace(t, 40, []int{2}, engine.Legs, engine.Mastermind)
	require.NoError(t, e.RunTurn())
	assert.Equal(t, 5, e.GetRacer(0).Position)
}

// Sisyphus grants +4 VP at setup, independent of any turns run.
func TestSisyphus_SetupGrantsFourVP(t *testing.T) {
	e := newRace(t, 40, []int{1}, engine.Sisyphus)
	assert.Equal(t, 4, e.GetRacer(0).VictoryPoints)
}

// Stickler's veto also has to apply to a move pushed from inside another
// ability's reaction, not just a top-level main move: Lackey's rush fires
// from inside the drain that's already processing Stickler's own roll, so
// the veto must be visible before Lackey's move commits, not just on a
// move started fresh at the top level.
func TestStickler_VetoesReactionMove(t *testing.T) {
	e := newRace(t, 30, []int{6}, engine.Stickler, engine.Lackey)
	placeAt(e, 1, 29)

	require.NoError(t, e.RunTurn())

	assert.Equal(t, 29, e.GetRacer(1).Position, "lackey's overshooting rush is vetoed")
	assert.False(t, e.GetRacer(1).Finished)
	assert.Equal(t, 6, e.GetRacer(0).Position)
}

package engine

import "fmt"

// DiceSource is a pluggable nonblocking generator of integers 1..6. The
// seeded and scripted implementations below are kept separate so that
// production randomness never leaks into deterministic tests.
type DiceSource interface {
	Next() int
}

// randSource is the minimal surface engine needs from a PRNG, matching
// math/rand/v2's *rand.Rand.
type randSource interface {
	IntN(n int) int
}

// SeededDice draws uniformly from [1,6] using an injected PRNG (typically
// internal/randutil.New(seed)).
type SeededDice struct {
	rng randSource
}

// NewSeededDice wraps an already-seeded PRNG as a DiceSource.
func NewSeededDice(rng randSource) *SeededDice {
	return &SeededDice{rng: rng}
}

func (d *SeededDice) Next() int {
	return d.rng.IntN(6) + 1
}

// ScriptedDice replays a fixed sequence of rolls, used by tests that need
// exact reproducible dice values. It panics if exhausted, since a race
// driving past its scripted rolls is a test-authoring bug, not a runtime
// condition the engine should swallow.
type ScriptedDice struct {
	rolls []int
	next  int
}

// NewScriptedDice returns a DiceSource that yields rolls in order.
func NewScriptedDice(rolls ...int) *ScriptedDice {
	return &ScriptedDice{rolls: rolls}
}

func (d *ScriptedDice) Next() int {
	if d.next >= len(d.rolls) {
		panic(fmt.Sprintf("engine: ScriptedDice exhausted after %d rolls", len(d.rolls)))
	}
	v := d.rolls[d.next]
	d.next++
	return v
}

// Package engine implements the deterministic event-driven resolver that
// drives a single race of a turn-based board game: a queue of pending
// events, dispatch to every racer ability whose trigger matches, movement
// primitives that decompose intent into canonical event sequences, and a
// turn driver that produces the top-level events for each turn.
//
// # Basic usage
//
//	board := engine.NewBoard(30)
//	rng := randutil.New(42)
//	racers := racers.Configs(engine.Centaur, engine.Banana)
//	e, err := engine.New(board, 42, "classic", racers, engine.NewSeededDice(rng), nil, engine.DefaultRules(), nil)
//	result := e.RunRace()
//
// # Deterministic testing
//
// Use a ScriptedDice to pin the roll sequence instead of a seeded one:
//
//	dice := engine.NewScriptedDice(6, 4, 2)
//	e, _ := engine.New(board, 0, "classic", racers, dice, nil, engine.DefaultRules(), nil)
//
// # Architecture
//
// Engine delegates responsibilities to specialized components:
//   - Resolver: owns the FIFO event queue, dispatch order, and loop detection
//   - movement primitives (PushMove, PushWarp, PushTrip): the only way racer
//     position or trip state may change
//   - Ability / Modifier registries: racers own ordered lists of both
//   - Agent: pluggable decision hook invoked synchronously mid-drain
//
// The design follows a single-owner state model: the Engine owns all racers
// and the event queue; abilities and modifiers receive the Engine as a
// narrow collaborator and never retain a reference across calls.
package engine

// Package racers is the worked ability catalogue: one file per archetype.
// The resolver in internal/engine is the framework; everything here is a
// concrete racer plugged into it.
//
// Ability.Execute returns the AbilityTriggeredEvent it wants recorded and
// published directly rather than calling an engine helper, which lets
// internal/engine's resolver own counting and queueing uniformly: an
// ability that fires always returns a non-nil event, one that does not
// returns nil. Movement/warp/trip side effects are pushed with
// engine.EmitNone since the ability's own return value is already the
// observable trigger.
package racers

package engine

// Ability is a named behavior owned by one racer. The catalogue is closed,
// so this is a plain interface with one implementer per ability rather than
// a reflective dispatch table.
type Ability interface {
	Name() AbilityName
	// Triggers lists the event kinds this ability listens to.
	Triggers() []EventKind
	// Execute runs the ability's reaction to event e for its owner. A
	// non-nil return is published as a reaction; nil means the ability did
	// not fire (or handled its own publication via Engine methods).
	Execute(e Event, owner *Racer, eng *Engine, agent Agent) *AbilityTriggeredEvent
}

// SetupAbility is implemented by abilities that need one-time setup work
// at race start (e.g. installing a modifier, granting starting VP).
type SetupAbility interface {
	Setup(eng *Engine, owner *Racer)
}

// PreferredDiceAbility exposes the set of dice values an ability prefers,
// for dice-preference logic in smarter agents.
type PreferredDiceAbility interface {
	PreferredDice() []int
}

// Modifier is a passive, attachable effect on a racer. Capability methods
// are exposed via the optional interfaces below; a modifier implements
// whichever it needs.
type Modifier interface {
	Name() ModifierName
	// Equal reports structural equality for the dedup invariant.
	Equal(other Modifier) bool
}

// RollModifier contributes a delta to a MoveDistanceQuery. ownerIdx is the
// racer the modifier is attached to; rollingIdx is the racer currently
// moving. A modifier decides internally whether ownerIdx == rollingIdx
// (a self effect) or not (an others-only effect) applies.
type RollModifier interface {
	ModifyRoll(q *MoveDistanceQuery, ownerIdx int, eng *Engine, rollingIdx int) []AbilityTriggeredEvent
}

// TripTileModifier reacts to its owner entering a trip tile.
type TripTileModifier interface {
	OnTripTileEntered(eng *Engine, ownerIdx int)
}

// LifecycleModifier is notified when installed on / removed from a racer.
type LifecycleModifier interface {
	OnGain(eng *Engine, ownerIdx int)
	OnLoss(eng *Engine, ownerIdx int)
}

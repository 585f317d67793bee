package engine

// RacerName identifies a racer archetype. The catalogue is closed: these are
// the names worked abilities and test scenarios reference.
type RacerName string

const (
	Centaur      RacerName = "Centaur"
	Banana       RacerName = "Banana"
	Romantic     RacerName = "Romantic"
	Scoocher     RacerName = "Scoocher"
	Blimp        RacerName = "Blimp"
	Sisyphus     RacerName = "Sisyphus"
	Stickler     RacerName = "Stickler"
	Legs         RacerName = "Legs"
	Gunk         RacerName = "Gunk"
	Coach        RacerName = "Coach"
	LovableLoser RacerName = "LovableLoser"
	Lackey       RacerName = "Lackey"
	Inchworm     RacerName = "Inchworm"
	Skipper      RacerName = "Skipper"
	Mastermind   RacerName = "Mastermind"
	FlipFlop     RacerName = "FlipFlop"
)

// AbilityName identifies an ability implementation, stable across a race.
type AbilityName string

const (
	AbilityCentaurTrample   AbilityName = "CentaurTrample"
	AbilityBananaTrip       AbilityName = "BananaTrip"
	AbilityRomanticMove     AbilityName = "RomanticMove"
	AbilityScoochStep       AbilityName = "ScoochStep"
	AbilityBlimpModifier    AbilityName = "BlimpModifier"
	AbilitySisyphusCurse    AbilityName = "SisyphusCurse"
	AbilityStickler         AbilityName = "SticklerStrictFinish"
	AbilityLongLegs         AbilityName = "LongLegs"
	AbilityGunkSlime        AbilityName = "GunkSlimeModifier"
	AbilityCoachBoost       AbilityName = "CoachBoost"
	AbilityLovableLoser     AbilityName = "LovableLoserBonus"
	AbilityLackeyLoyalty    AbilityName = "LackeyLoyalty"
	AbilityInchwormCreep    AbilityName = "InchwormCreep"
	AbilitySkipperTurn      AbilityName = "SkipperTurn"
)

// ModifierName identifies a modifier implementation for dedup-by-equality.
type ModifierName string

const (
	ModifierBlimp ModifierName = "BlimpRollModifier"
	ModifierGunk  ModifierName = "GunkRollModifier"
	ModifierCoach ModifierName = "CoachBoost"
)

// Phase tags the coarse stage of a turn an event belongs to.
type Phase string

const (
	PhaseSetup      Phase = "SETUP"
	PhaseTurnStart  Phase = "TURN_START"
	PhaseRollWindow Phase = "ROLL_WINDOW"
	PhaseMainMove   Phase = "MAIN_MOVE"
	PhaseReaction   Phase = "REACTION"
	PhaseTurnEnd    Phase = "TURN_END"
)

// TimingMode selects BFS (default) or DFS reaction ordering.
type TimingMode string

const (
	TimingBFS TimingMode = "bfs"
	TimingDFS TimingMode = "dfs"
)

// EmitTiming controls when push_move/push_warp publish their optional
// AbilityTriggeredEvent.
type EmitTiming string

const (
	EmitNone           EmitTiming = "none"
	EmitBefore         EmitTiming = "before"
	EmitAfterResolution EmitTiming = "after_resolution"
)

// ErrorCode is a race-level abort status.
type ErrorCode string

const (
	CriticalLoopDetected ErrorCode = "CRITICAL_LOOP_DETECTED"
	MinorLoopDetected     ErrorCode = "MINOR_LOOP_DETECTED"
	MaxTurnsReached       ErrorCode = "MAX_TURNS_REACHED"
)

// Rules bundles per-race configuration that affects resolver behavior.
type Rules struct {
	TimingMode          TimingMode
	MaxTurns            int
	MaxStepsPerDrain    int
	MinorLoopStepsRatio float64 // fraction of MaxStepsPerDrain at which a MinorLoopDetected warning is recorded
}

// DefaultRules returns the BFS, 200-turn, 1000-step production defaults.
func DefaultRules() Rules {
	return Rules{
		TimingMode:          TimingBFS,
		MaxTurns:            200,
		MaxStepsPerDrain:    1000,
		MinorLoopStepsRatio: 0.5,
	}
}

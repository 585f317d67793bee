package engine

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// RacerConfig is the setup-time description of one competitor.
type RacerConfig struct {
	Name      RacerName
	Abilities []Ability // ability instances owned by this racer, in registration order
}

// Engine owns all race state: the board, the racers, the event queue
// (delegated to resolver), and turn-cursor bookkeeping. Abilities and
// modifiers receive it as a narrow mutable collaborator via publish,
// get_racer, skip_main_move, add/remove_racer_modifier; direct mutation of
// position outside the movement primitives is forbidden.
type Engine struct {
	board   *Board
	racers  []*Racer
	rules   Rules
	dice    DiceSource
	agent   Agent
	logger  *log.Logger
	seed    int64
	boardID string
	clock   Clock

	resolver *resolver

	currentRacerIdx   int
	nextTurnOverride  *int
	totalTurns        int
	aborted           bool
	abortErr          *RaceError
	minorLoopDetected bool
	pendingMoveVeto   bool
	fatalErr          *RaceError

	notify func(Event)
}

// VetoMove cancels the move currently publishing its PreMoveEvent. Used by
// SticklerStrictFinish to stop another racer's overshooting move before
// its position is committed.
func (e *Engine) VetoMove() { e.pendingMoveVeto = true }

// SetNextTurnOverride makes idx the active racer after the current turn
// ends, instead of the usual ascending-cursor advance. Used by
// SkipperTurn; if two abilities set it within the same turn the second
// call wins, which falls out of the mandated ascending-racer dispatch
// order rather than needing special-case code.
func (e *Engine) SetNextTurnOverride(idx int) { e.nextTurnOverride = &idx }

// New validates racer configs against the board and returns a ready-to-run
// Engine. Configuration errors (a nil or non-positive-length board, an
// empty roster, a racer name outside the RacerName set) are fatal here; no
// race begins.
func New(board *Board, seed int64, boardID string, racers []RacerConfig, dice DiceSource, agent Agent, rules Rules, logger *log.Logger) (*Engine, error) {
	if board == nil || board.Length <= 0 {
		return nil, &ConfigError{Reason: "board length must be positive"}
	}
	if len(racers) == 0 {
		return nil, &ConfigError{Reason: "at least one racer is required"}
	}
	for _, cfg := range racers {
		switch cfg.Name {
		case Centaur, Banana, Romantic, Scoocher, Blimp, Sisyphus, Stickler, Legs,
			Gunk, Coach, LovableLoser, Lackey, Inchworm, Skipper, Mastermind, FlipFlop:
		default:
			return nil, &ConfigError{Reason: fmt.Sprintf("unknown racer %q", cfg.Name)}
		}
	}
	if logger == nil {
		logger = log.Default()
	}
	if agent == nil {
		agent = BaselineAgent{}
	}

	e := &Engine{
		board:   board,
		rules:   rules,
		dice:    dice,
		agent:   agent,
		logger:  logger,
		seed:    seed,
		boardID: boardID,
		clock:   realClock{},
	}
	e.resolver = newResolver(e)

	for i, cfg := range racers {
		r := &Racer{
			Idx:       i,
			Name:      cfg.Name,
			Abilities: cfg.Abilities,
		}
		e.racers = append(e.racers, r)
	}
	for _, r := range e.racers {
		for _, a := range r.Abilities {
			if setup, ok := a.(SetupAbility); ok {
				setup.Setup(e, r)
			}
		}
	}
	return e, nil
}

// Racers returns the read-only racer list in setup order.
func (e *Engine) Racers() []*Racer { return e.racers }

// Board returns the board the race is run on.
func (e *Engine) Board() *Board { return e.board }

// GetRacer returns the racer at idx, or nil if out of range.
func (e *Engine) GetRacer(idx int) *Racer {
	if idx < 0 || idx >= len(e.racers) {
		return nil
	}
	return e.racers[idx]
}

// CurrentRacerIdx is the racer whose turn is in progress between turn
// boundaries.
func (e *Engine) CurrentRacerIdx() int { return e.currentRacerIdx }

// Logger exposes the structured logger abilities may use for tracing.
func (e *Engine) Logger() *log.Logger { return e.logger }

// SetObserver registers a callback invoked after each event is processed.
// Observer registration is optional and purely diagnostic; it must not
// mutate engine state.
func (e *Engine) SetObserver(fn func(Event)) { e.notify = fn }

// Publish appends event to the pending queue. It is the only entry point
// abilities and movement primitives use to make an event eligible for
// dispatch.
func (e *Engine) Publish(ev Event) { e.resolver.publish(ev) }

// Drain processes the queue to empty; safe to call re-entrantly. Once a
// RaceError has aborted the race, further Drain calls are no-ops that
// keep returning it: the resolver never retries.
func (e *Engine) Drain() error {
	if e.fatalErr != nil {
		return e.fatalErr
	}
	err := e.resolver.drain()
	if err != nil {
		if re, ok := err.(*RaceError); ok {
			e.fatalErr = re
		}
		return err
	}
	return nil
}

// PublishNow makes ev immediately effective, even when called from inside
// an already-active drain, so a reaction to it (a veto, say) is visible
// to the caller right away instead of waiting for the outer drain to
// reach it. Used for PreMoveEvent, whose veto check happens immediately
// after publishing it.
func (e *Engine) PublishNow(ev Event) error {
	if e.fatalErr != nil {
		return e.fatalErr
	}
	err := e.resolver.dispatchNow(ev)
	if err != nil {
		if re, ok := err.(*RaceError); ok {
			e.fatalErr = re
		}
		return err
	}
	return nil
}

// SkipMainMove marks racerIdx's main move consumed by setting its
// MainMoveConsumed flag, which the turn driver checks after the roll's
// reactions settle. It publishes no event.
func (e *Engine) SkipMainMove(racerIdx int) {
	r := e.GetRacer(racerIdx)
	if r == nil {
		return
	}
	r.MainMoveConsumed = true
}

// AddRacerModifier attaches m to racerIdx unless an equal modifier is
// already present (invariant 4: dedup by structural equality), firing the
// modifier's OnGain lifecycle hook if it declares one.
func (e *Engine) AddRacerModifier(racerIdx int, m Modifier) {
	r := e.GetRacer(racerIdx)
	if r == nil || r.HasModifier(m) {
		return
	}
	r.Modifiers = append(r.Modifiers, m)
	if lc, ok := m.(LifecycleModifier); ok {
		lc.OnGain(e, racerIdx)
	}
	e.logger.Debug("modifier gained", "racer", racerIdx, "modifier", m.Name())
}

// RemoveRacerModifier detaches the first modifier on racerIdx equal to m,
// firing its OnLoss lifecycle hook if it declares one.
func (e *Engine) RemoveRacerModifier(racerIdx int, m Modifier) {
	r := e.GetRacer(racerIdx)
	if r == nil {
		return
	}
	for i, existing := range r.Modifiers {
		if existing.Equal(m) {
			r.Modifiers = append(r.Modifiers[:i], r.Modifiers[i+1:]...)
			if lc, ok := existing.(LifecycleModifier); ok {
				lc.OnLoss(e, racerIdx)
			}
			e.logger.Debug("modifier lost", "racer", racerIdx, "modifier", m.Name())
			return
		}
	}
}

// applyRollModifiers runs every racer's RollModifier hooks against q, in
// ascending racer-index then registration order, accumulating deltas and
// any side AbilityTriggeredEvents they request.
func (e *Engine) applyRollModifiers(q *MoveDistanceQuery) {
	for _, r := range e.racers {
		for _, m := range r.Modifiers {
			rm, ok := m.(RollModifier)
			if !ok {
				continue
			}
			before := len(q.Modifiers)
			sideEvents := rm.ModifyRoll(q, r.Idx, e, q.Responsible)
			if len(q.Modifiers) > before {
				q.ModifierSources = append(q.ModifierSources, ModifierContribution{
					Source: string(m.Name()),
					Delta:  q.Modifiers[len(q.Modifiers)-1],
				})
			}
			for _, se := range sideEvents {
				e.recordAbilityTrigger(se)
				e.Publish(se)
			}
		}
	}
}

// recordAbilityTrigger updates the per-racer counters the RaceResult
// schema surfaces: total triggers, self-targeted, and other-targeted.
func (e *Engine) recordAbilityTrigger(ev AbilityTriggeredEvent) {
	owner := e.GetRacer(ev.Responsible)
	if owner == nil {
		return
	}
	owner.AbilityTriggerCount++
	if ev.Target == NoTarget || ev.Target == ev.Responsible {
		owner.AbilitySelfTargetCount++
	} else {
		owner.AbilityTargetCount++
	}
}

// configHash deterministically digests (board_id, seed, sorted racer-name
// tuple, rules) so the batch runner can dedupe equivalent configurations.
// Plain crypto/sha256: no third-party hashing library appears anywhere in
// the retrieved example repos, so this is the one place the ambient stack
// is stdlib by necessity rather than preference.
func (e *Engine) configHash() string {
	names := make([]string, len(e.racers))
	for i, r := range e.racers {
		names[i] = string(r.Name)
	}
	sort.Strings(names)
	payload := fmt.Sprintf("%s|%d|%s|%s|%d|%d", e.boardID, e.seed, strings.Join(names, ","), e.rules.TimingMode, e.rules.MaxTurns, e.rules.MaxStepsPerDrain)
	sum := sha256.Sum256([]byte(payload))
	return fmt.Sprintf("%x", sum[:])
}

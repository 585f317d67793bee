package engine

// queueEntry pairs a published event with the monotonically increasing id
// used for per-(ability,event) firing memoization.
type queueEntry struct {
	id    uint64
	event Event
}

// firedKey scopes the re-entry guard to one (racer, ability, event) triple
// within a single top-level drain.
type firedKey struct {
	racerIdx int
	ability  AbilityName
	eventID  uint64
}

// triggerPair is one (racer, ability) registered for a given event kind.
type triggerPair struct {
	racerIdx int
	ability  Ability
}

// resolver owns the FIFO event queue, dispatch order, and loop detection.
// drain() is the only way events become effective; it is safe to call
// re-entrantly from within an ability, in which case it is a no-op.
type resolver struct {
	eng *Engine

	queue       []queueEntry
	readCursor  int
	nextEventID uint64

	draining  bool
	firedMemo map[firedKey]bool
	stepCount int

	minorLoopFlagged bool
}

func newResolver(eng *Engine) *resolver {
	return &resolver{eng: eng}
}

// publish appends event to the back of the queue with a fresh id and
// returns that id.
func (r *resolver) publish(e Event) uint64 {
	r.nextEventID++
	id := r.nextEventID
	r.queue = append(r.queue, queueEntry{id: id, event: e})
	return id
}

// dispatchNow makes e immediately effective. At the top level (no drain
// in progress) this is publish-then-drain, same as always. Called from
// inside an active drain, a plain publish would just queue e behind
// whatever's already pending and the re-entrant drain() call right after
// would be a no-op — any reaction to e (a veto, say) wouldn't be visible
// until the outer drain eventually reaches it, long after the caller has
// already moved on. dispatchNow instead runs e through dispatch directly,
// so its reactions land synchronously regardless of nesting depth.
// Reactions it triggers still queue (BFS) or recurse (DFS) normally.
func (r *resolver) dispatchNow(e Event) error {
	if !r.draining {
		r.publish(e)
		return r.drain()
	}
	r.nextEventID++
	return r.dispatch(queueEntry{id: r.nextEventID, event: e})
}

// drain processes the queue to empty. Re-entrant calls (from inside an
// ability's Execute, which is itself called from within a drain) are a
// no-op: the outer drain call owns the loop.
func (r *resolver) drain() error {
	if r.draining {
		return nil
	}
	r.draining = true
	r.firedMemo = make(map[firedKey]bool)
	r.stepCount = 0
	defer func() { r.draining = false }()

	for r.readCursor < len(r.queue) {
		entry := r.queue[r.readCursor]
		r.readCursor++
		if err := r.dispatch(entry); err != nil {
			return err
		}
	}
	return nil
}

// dispatch runs every (racer, ability) pair registered for entry's kind, in
// ascending-racer-index then registration order. Roll modifiers are not run
// here; PushMove applies them itself. In DFS timing mode, a reaction is
// dispatched immediately (recursively) instead of being appended to the
// queue.
func (r *resolver) dispatch(entry queueEntry) error {
	r.stepCount++
	if r.stepCount > r.eng.rules.MaxStepsPerDrain {
		return &RaceError{Code: CriticalLoopDetected, Msg: "per-drain step cap exceeded"}
	}
	if !r.minorLoopFlagged && float64(r.stepCount) > float64(r.eng.rules.MaxStepsPerDrain)*r.eng.rules.MinorLoopStepsRatio {
		r.minorLoopFlagged = true
		r.eng.minorLoopDetected = true
	}

	for _, pair := range r.triggerPairs(entry.event.Kind()) {
		racer := r.eng.racers[pair.racerIdx]
		if racer.Finished {
			continue
		}
		key := firedKey{racerIdx: pair.racerIdx, ability: pair.ability.Name(), eventID: entry.id}
		if r.firedMemo[key] {
			continue
		}
		r.firedMemo[key] = true

		reaction := pair.ability.Execute(entry.event, racer, r.eng, r.eng.agent)
		if reaction == nil {
			continue
		}
		r.eng.recordAbilityTrigger(*reaction)

		if r.eng.rules.TimingMode == TimingDFS {
			r.nextEventID++
			if err := r.dispatch(queueEntry{id: r.nextEventID, event: *reaction}); err != nil {
				return err
			}
		} else {
			r.publish(*reaction)
		}
	}

	if r.eng.notify != nil {
		r.eng.notify(entry.event)
	}
	return nil
}

// triggerPairs returns the ordered (racer, ability) list for kind: by
// ascending racer index, then by the racer's ability registration order.
func (r *resolver) triggerPairs(kind EventKind) []triggerPair {
	var pairs []triggerPair
	for _, racer := range r.eng.racers {
		for _, ability := range racer.Abilities {
			for _, k := range ability.Triggers() {
				if k == kind {
					pairs = append(pairs, triggerPair{racerIdx: racer.Idx, ability: ability})
					break
				}
			}
		}
	}
	return pairs
}

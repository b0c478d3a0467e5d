// Package stagger holds the per-device, per-gesture distance accumulators
// behind staggering gestures.
//
// Entries are created lazily on the first qualifying motion sample, mutated
// on every subsequent one, and removed only by an explicit Clear when the
// surrounding engine observes the gesture's release. Nothing expires on its
// own; the population is bounded by the small number of configured gestures.
package stagger

import "sync"

// Key identifies one accumulator entry. Device and Gesture are stable
// string identifiers (a device serial or session ID, and the gesture's
// canonical config hash), so two gestures on the same device, or the same
// gesture shared across devices, never collide.
type Key struct {
	Device  string
	Gesture string
}

// State is a snapshot of one accumulator entry.
type State struct {
	// Accum is the distance carried toward the next trigger.
	Accum float64

	// Threshold is the cumulative distance currently required to trigger.
	Threshold float64

	// HasTriggered reports whether the entry has fired at least once.
	HasTriggered bool
}

type entry struct {
	accum           float64
	threshold       float64
	staggerDistance float64
	hasTriggered    bool
}

// Store is a keyed accumulator map safe for concurrent use. Notification
// delivery is single-threaded per device, so the lock is a safety net for
// cross-device access rather than a throughput concern.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[Key]*entry)}
}

// Accumulate adds delta to the entry for key, creating the entry on first
// use with threshold staggerDistance+deadZone. It returns the number of
// threshold crossings consumed: the loop keeps subtracting the current
// threshold while the accumulated distance reaches it, so an arbitrarily
// large delta can cross more than once in a single call. The first crossing
// permanently drops the dead zone from the threshold.
func (s *Store) Accumulate(key Key, staggerDistance, deadZone int, delta float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &entry{
			threshold:       float64(staggerDistance + deadZone),
			staggerDistance: float64(staggerDistance),
		}
		s.entries[key] = e
	}

	e.accum += delta
	crossings := 0
	for e.threshold > 0 && e.accum >= e.threshold {
		e.accum -= e.threshold
		if !e.hasTriggered {
			e.hasTriggered = true
			e.threshold = e.staggerDistance
		}
		crossings++
	}
	return crossings
}

// Peek returns a snapshot of the entry for key, if one exists.
func (s *Store) Peek(key Key) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return State{}, false
	}
	return State{Accum: e.accum, Threshold: e.threshold, HasTriggered: e.hasTriggered}, true
}

// Clear removes every entry belonging to device, leaving other devices'
// entries untouched. The surrounding engine calls this when it observes the
// gesture button's release.
func (s *Store) Clear(device string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		if key.Device == device {
			delete(s.entries, key)
		}
	}
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

package engine

import (
	"github.com/hidwork/mousegest/internal/gesture"
	"github.com/hidwork/mousegest/internal/gesture/stagger"
	"github.com/hidwork/mousegest/internal/notification"
)

// BatchMatcher matches a terminal notification's complete motion vector
// against a non-staggering gesture. The legacy whole-vector matcher lives
// in the surrounding rule engine; this subsystem only defines the boundary.
type BatchMatcher interface {
	Match(n notification.Notification, device string, g *gesture.MouseGesture) bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithBatchMatcher sets the matcher consulted for terminal notifications
// on non-staggering gestures. Without one, those notifications never match.
func WithBatchMatcher(m BatchMatcher) Option {
	return func(e *Evaluator) {
		e.batch = m
	}
}

// WithStore sets the accumulator store. Callers that share accumulator
// state across evaluators (one store per rule engine) inject it here;
// otherwise the evaluator owns a private store.
func WithStore(s *stagger.Store) Option {
	return func(e *Evaluator) {
		if s != nil {
			e.store = s
		}
	}
}

// Evaluator turns raw gesture notifications into boolean trigger decisions.
// It is the single entry point consumed by the rule engine.
type Evaluator struct {
	store *stagger.Store
	batch BatchMatcher
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{store: stagger.NewStore()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the evaluator's accumulator store.
func (e *Evaluator) Store() *stagger.Store {
	return e.store
}

// Evaluate decides whether the given raw notification triggers the gesture
// for the identified device. It never fails: malformed payloads, reserved
// markers, and motion away from the bound direction all yield false, which
// the rule engine must read as "no event this tick".
//
// Non-staggering gestures consider only terminal notifications, delegated
// to the batch matcher. Staggering gestures consider only incremental
// notifications: the delta is projected onto the sole bound direction and
// fed to the accumulator, whose threshold crossings decide the trigger.
func (e *Evaluator) Evaluate(payload []byte, device string, g *gesture.MouseGesture) bool {
	n, err := notification.Decode(payload)
	if err != nil {
		return false
	}

	if !g.Staggering() {
		if n.Kind() != notification.KindTerminal || e.batch == nil {
			return false
		}
		return e.batch.Match(n, device, g)
	}

	if n.Kind() != notification.KindIncremental {
		return false
	}

	dir, ok := g.Direction()
	if !ok {
		return false
	}
	delta := gesture.Distance(int(n.DX), int(n.DY), dir)
	if delta <= 0 {
		// No entry is created for non-matching motion.
		return false
	}

	key := stagger.Key{Device: device, Gesture: g.ID()}
	return e.store.Accumulate(key, g.StaggerDistance(), g.DeadZone(), delta) > 0
}

// Release clears all accumulator state for the device. The surrounding
// engine calls this when it detects the gesture button's release.
func (e *Evaluator) Release(device string) {
	e.store.Clear(device)
}

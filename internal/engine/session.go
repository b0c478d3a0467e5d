package engine

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hidwork/mousegest/internal/gesture"
)

// TriggerFunc is called once per gesture trigger.
type TriggerFunc func(device string, g *gesture.MouseGesture)

// Session binds one device channel to its configured gestures. The host
// dispatches one notification at a time per device, so HandleNotification
// is not called concurrently for the same session; the lock only guards
// gesture registration against in-flight dispatch.
type Session struct {
	mu        sync.Mutex
	device    string
	eval      *Evaluator
	gestures  []*gesture.MouseGesture
	onTrigger TriggerFunc
}

// NewSession creates a session for the identified device. When the
// transport supplies no stable serial, pass an empty device and the
// session generates a unique one.
func NewSession(device string, eval *Evaluator, onTrigger TriggerFunc) *Session {
	if device == "" {
		device = uuid.NewString()
	}
	return &Session{
		device:    device,
		eval:      eval,
		onTrigger: onTrigger,
	}
}

// Device returns the session's device identity.
func (s *Session) Device() string {
	return s.device
}

// Add registers a gesture with the session.
func (s *Session) Add(g *gesture.MouseGesture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gestures = append(s.gestures, g)
}

// SetGestures replaces the session's gestures, typically after a rules
// reload. Accumulator state keyed by unchanged gesture IDs survives.
func (s *Session) SetGestures(gestures []*gesture.MouseGesture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gestures = append([]*gesture.MouseGesture(nil), gestures...)
}

// HandleNotification evaluates one raw payload against every registered
// gesture, invoking the trigger callback for each that fires. It returns
// the number of gestures triggered.
func (s *Session) HandleNotification(payload []byte) int {
	s.mu.Lock()
	gestures := s.gestures
	s.mu.Unlock()

	fired := 0
	for _, g := range gestures {
		if s.eval.Evaluate(payload, s.device, g) {
			fired++
			if s.onTrigger != nil {
				s.onTrigger(s.device, g)
			}
		}
	}
	return fired
}

// Release observes the external release event for this device and clears
// its accumulator state.
func (s *Session) Release() {
	s.eval.Release(s.device)
}

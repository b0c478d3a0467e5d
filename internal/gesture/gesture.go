package gesture

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hidwork/mousegest/internal/diag"
)

// MouseGesture is the canonical descriptor for one configured gesture.
// It is built once from a configuration value and immutable afterwards.
type MouseGesture struct {
	movements       []string
	staggering      bool
	staggerDistance int
	deadZone        int
}

// Option configures gesture construction.
type Option func(*options)

type options struct {
	sink diag.Sink
	warn bool
}

// WithSink sets the sink that receives normalization warnings.
func WithSink(s diag.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

// Quiet suppresses normalization warnings.
func Quiet() Option {
	return func(o *options) {
		o.warn = false
	}
}

// New builds a canonical gesture descriptor from one of the three
// configuration shapes: a bare label string, an ordered sequence of labels,
// or a mapping with movements, staggering, distance, and dead_zone fields.
// It never fails; unrecognized shapes yield a gesture with no movements.
//
// Staggering requires exactly one direction label among the movements.
// When that precondition does not hold, staggering is disabled (movements
// are preserved) and a warning is sent to the configured sink.
func New(cfg any, opts ...Option) *MouseGesture {
	o := options{sink: diag.NewLogSink(nil), warn: true}
	for _, opt := range opts {
		opt(&o)
	}

	g := &MouseGesture{}
	switch v := cfg.(type) {
	case string:
		g.movements = []string{v}
	case []string:
		g.movements = append([]string(nil), v...)
	case []any:
		g.movements = labelList(v)
	case map[string]any:
		g.movements = movementsField(v["movements"])
		g.staggering, _ = v["staggering"].(bool)
		if g.staggering {
			g.staggerDistance = intField(v["distance"])
		}
		g.deadZone = intField(v["dead_zone"])
	}
	if g.movements == nil {
		g.movements = []string{}
	}
	if g.staggerDistance < 0 {
		g.staggerDistance = 0
	}
	if g.deadZone < 0 {
		g.deadZone = 0
	}

	if g.staggering {
		if n := g.directionCount(); n != 1 {
			if o.warn {
				o.sink.Warnf("gesture %v: staggering requires exactly one direction, found %d; staggering disabled", g.movements, n)
			}
			g.staggering = false
			g.staggerDistance = 0
		}
	}
	return g
}

// movementsField coerces the movements value of a mapping. Deserializers
// collapse a one-element list to a bare scalar, so a string becomes a
// one-element list.
func movementsField(v any) []string {
	switch m := v.(type) {
	case string:
		return []string{m}
	case []string:
		return append([]string(nil), m...)
	case []any:
		return labelList(m)
	default:
		return []string{}
	}
}

func labelList(items []any) []string {
	labels := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			labels = append(labels, s)
		} else {
			labels = append(labels, fmt.Sprint(item))
		}
	}
	return labels
}

// intField converts the numeric types the YAML and TOML decoders produce.
func intField(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func (g *MouseGesture) directionCount() int {
	n := 0
	for _, label := range g.movements {
		if IsDirection(label) {
			n++
		}
	}
	return n
}

// Movements returns a copy of the ordered movement labels.
func (g *MouseGesture) Movements() []string {
	return append([]string(nil), g.movements...)
}

// Staggering reports whether the gesture fires repeatedly while held
// rather than once on release.
func (g *MouseGesture) Staggering() bool {
	return g.staggering
}

// StaggerDistance returns the cumulative distance in pixels required per
// trigger after the first. It is 0 when the gesture is not staggering.
func (g *MouseGesture) StaggerDistance() int {
	return g.staggerDistance
}

// DeadZone returns the additional distance in pixels required before the
// very first trigger.
func (g *MouseGesture) DeadZone() int {
	return g.deadZone
}

// Direction returns the gesture's sole direction label. The second return
// is false when the movements contain no direction label.
func (g *MouseGesture) Direction() (string, bool) {
	for _, label := range g.movements {
		if IsDirection(label) {
			return label, true
		}
	}
	return "", false
}

// ID returns a stable identifier derived from the canonical descriptor.
// Two gestures built from the same configuration share an ID across
// processes, which makes it usable as the gesture component of an
// accumulator key.
func (g *MouseGesture) ID() string {
	h := fnv.New64a()
	for _, label := range g.movements {
		h.Write([]byte(label))
		h.Write([]byte{0})
	}
	fmt.Fprintf(h, "|%t|%d|%d", g.staggering, g.staggerDistance, g.deadZone)
	return strconv.FormatUint(h.Sum64(), 16)
}

// Data returns the persistence representation. Staggering gestures emit a
// mapping with all fields; non-staggering gestures emit the bare movement
// list, preserving compatibility with configurations predating staggering.
func (g *MouseGesture) Data() any {
	if !g.staggering {
		return g.Movements()
	}
	return map[string]any{
		"movements":  g.Movements(),
		"staggering": true,
		"distance":   g.staggerDistance,
		"dead_zone":  g.deadZone,
	}
}

// String returns a human-readable label for the gesture.
func (g *MouseGesture) String() string {
	s := strings.Join(g.movements, ", ")
	if g.staggering {
		s += fmt.Sprintf(" [staggering: %dpx]", g.staggerDistance)
	}
	return s
}

// MarshalYAML implements yaml.Marshaler using the Data representation.
func (g *MouseGesture) MarshalYAML() (any, error) {
	return g.Data(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Warnings raised during
// normalization go to the default sink; decode through config.LoadRules to
// inject a different one.
func (g *MouseGesture) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*g = *New(raw)
	return nil
}

// Package gesture defines the canonical mouse gesture descriptor and the
// directional distance math behind staggering.
//
// # Configuration Shapes
//
// Gesture configuration arrives in one of three legacy shapes, all
// normalized by New into the same descriptor:
//
//	"Mouse Up"                          # bare label
//	["Back Button", "Mouse Up"]         # ordered label list
//	{movements: ["Mouse Up"],           # full mapping
//	 staggering: true,
//	 distance: 50,
//	 dead_zone: 10}
//
// A mapping's movements field may itself be a bare string when a
// deserializer collapsed a one-element list; New coerces it back to a list.
//
// # Staggering
//
// A staggering gesture fires repeatedly while held, once per configured
// distance threshold crossed in its single bound direction, instead of once
// at release. Staggering requires exactly one direction label among the
// movements; control labels such as an initiating button do not count.
// Configurations violating the precondition are downgraded to
// non-staggering with a warning, never rejected.
//
// # Distance
//
// Distance projects a motion delta onto a direction's unit vector and
// clamps at zero: opposite or orthogonal motion contributes nothing rather
// than a fraction.
package gesture

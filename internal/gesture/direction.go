package gesture

// Direction labels a gesture can be bound to. Any other label appearing in
// a movement list is a control label (an initiating button such as
// "Back Button") and never counts toward directional distance.
const (
	DirUp        = "Mouse Up"
	DirDown      = "Mouse Down"
	DirLeft      = "Mouse Left"
	DirRight     = "Mouse Right"
	DirUpLeft    = "Mouse Up-left"
	DirUpRight   = "Mouse Up-right"
	DirDownLeft  = "Mouse Down-left"
	DirDownRight = "Mouse Down-right"
)

// invSqrt2 is the component magnitude of a diagonal unit vector.
const invSqrt2 = 0.7071067811865476

// directionVectors maps each direction label to its unit vector in screen
// coordinates, where y grows downward.
var directionVectors = map[string][2]float64{
	DirUp:        {0, -1},
	DirDown:      {0, 1},
	DirLeft:      {-1, 0},
	DirRight:     {1, 0},
	DirUpLeft:    {-invSqrt2, -invSqrt2},
	DirUpRight:   {invSqrt2, -invSqrt2},
	DirDownLeft:  {-invSqrt2, invSqrt2},
	DirDownRight: {invSqrt2, invSqrt2},
}

// IsDirection reports whether label names one of the eight compass
// directions.
func IsDirection(label string) bool {
	_, ok := directionVectors[label]
	return ok
}

// Distance returns the scalar projection of the motion delta (dx, dy) onto
// the unit vector for label. Motion orthogonal to or opposite the target
// direction contributes nothing: a projection at or below zero yields
// exactly 0. Unknown labels also yield 0.
func Distance(dx, dy int, label string) float64 {
	vec, ok := directionVectors[label]
	if !ok {
		return 0
	}
	d := float64(dx)*vec[0] + float64(dy)*vec[1]
	if d <= 0 {
		return 0
	}
	return d
}

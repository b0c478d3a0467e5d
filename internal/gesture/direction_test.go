package gesture

import (
	"math"
	"testing"
)

func TestIsDirection(t *testing.T) {
	directions := []string{
		DirUp, DirDown, DirLeft, DirRight,
		DirUpLeft, DirUpRight, DirDownLeft, DirDownRight,
	}
	for _, label := range directions {
		if !IsDirection(label) {
			t.Errorf("IsDirection(%q) = false, want true", label)
		}
	}

	controls := []string{"Back Button", "Forward Button", "", "Mouse", "mouse up"}
	for _, label := range controls {
		if IsDirection(label) {
			t.Errorf("IsDirection(%q) = true, want false", label)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		label  string
		want   float64
	}{
		{"up counts negative dy", 0, -50, DirUp, 50},
		{"up rejects positive dy", 0, 50, DirUp, 0},
		{"up rejects orthogonal motion", 50, 0, DirUp, 0},
		{"down counts positive dy", 0, 50, DirDown, 50},
		{"right counts positive dx", 50, 0, DirRight, 50},
		{"left counts negative dx", -50, 0, DirLeft, 50},
		{"zero motion", 0, 0, DirUp, 0},
		{"unknown label", 0, -50, "Back Button", 0},
		{"empty label", 0, -50, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.dx, tt.dy, tt.label); got != tt.want {
				t.Errorf("Distance(%d, %d, %q) = %v, want %v", tt.dx, tt.dy, tt.label, got, tt.want)
			}
		})
	}
}

func TestDistanceDiagonal(t *testing.T) {
	// Moving 30 right and 30 up projects onto the up-right diagonal as
	// 60/sqrt(2).
	got := Distance(30, -30, DirUpRight)
	want := 60 * invSqrt2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Distance(30, -30, %q) = %v, want %v", DirUpRight, got, want)
	}

	// The opposite diagonal rejects the same motion entirely.
	if got := Distance(30, -30, DirDownLeft); got != 0 {
		t.Errorf("Distance(30, -30, %q) = %v, want 0", DirDownLeft, got)
	}

	// Motion orthogonal to the diagonal projects to zero.
	if got := Distance(30, 30, DirUpRight); got != 0 {
		t.Errorf("Distance(30, 30, %q) = %v, want 0", DirUpRight, got)
	}
}

func TestDistanceNeverNegative(t *testing.T) {
	deltas := []struct{ dx, dy int }{
		{100, 100}, {-100, -100}, {100, -100}, {-100, 100}, {0, 0},
	}
	for label := range directionVectors {
		for _, d := range deltas {
			if got := Distance(d.dx, d.dy, label); got < 0 {
				t.Errorf("Distance(%d, %d, %q) = %v, want >= 0", d.dx, d.dy, label, got)
			}
		}
	}
}

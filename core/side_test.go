package core_test

import (
	"testing"

	"github.com/katalvlaran/lbrnth/core"
)

// TestSide_OppositeInvolution verifies Opposite is total and self-inverse.
func TestSide_OppositeInvolution(t *testing.T) {
	for _, s := range core.AllSides {
		o := s.Opposite()
		if o == 0 {
			t.Fatalf("%v: Opposite undefined", s)
		}
		if o == s {
			t.Errorf("%v: Opposite maps to itself", s)
		}
		if back := o.Opposite(); back != s {
			t.Errorf("%v: Opposite(Opposite) = %v; want %v", s, back, s)
		}
	}
}

// TestSide_Offset verifies the square-lattice offsets and the ok flag.
func TestSide_Offset(t *testing.T) {
	cases := []struct {
		s      core.Side
		dx, dy int
		ok     bool
	}{
		{core.North, 0, -1, true},
		{core.NorthEast, 1, -1, true},
		{core.East, 1, 0, true},
		{core.SouthEast, 1, 1, true},
		{core.South, 0, 1, true},
		{core.SouthWest, -1, 1, true},
		{core.West, -1, 0, true},
		{core.NorthWest, -1, -1, true},
		{core.Inward, 0, 0, false},
		{core.Outward, 0, 0, false},
		{core.Clockwise, 0, 0, false},
		{core.CounterClockwise, 0, 0, false},
	}
	for _, tc := range cases {
		dx, dy, ok := tc.s.Offset()
		if dx != tc.dx || dy != tc.dy || ok != tc.ok {
			t.Errorf("%v: Offset() = (%d,%d,%v); want (%d,%d,%v)",
				tc.s, dx, dy, ok, tc.dx, tc.dy, tc.ok)
		}
	}
}

// TestSide_Axis verifies the travel-axis classification used by the weave scan.
func TestSide_Axis(t *testing.T) {
	if a := core.East.Axis(); a != core.TunnelEW {
		t.Errorf("East.Axis() = %v; want EW", a)
	}
	if a := core.West.Axis(); a != core.TunnelEW {
		t.Errorf("West.Axis() = %v; want EW", a)
	}
	if a := core.North.Axis(); a != core.TunnelNS {
		t.Errorf("North.Axis() = %v; want NS", a)
	}
	if a := core.South.Axis(); a != core.TunnelNS {
		t.Errorf("South.Axis() = %v; want NS", a)
	}
	for _, s := range []core.Side{core.NorthEast, core.Inward, core.Clockwise} {
		if a := s.Axis(); a != core.TunnelNone {
			t.Errorf("%v.Axis() = %v; want none", s, a)
		}
	}
}

// TestSide_Valid verifies single-bit detection.
func TestSide_Valid(t *testing.T) {
	for _, s := range core.AllSides {
		if !s.Valid() {
			t.Errorf("%v: Valid() = false", s)
		}
	}
	for _, bad := range []core.Side{0, core.North | core.South, 1 << 12, 1 << 15} {
		if bad.Valid() {
			t.Errorf("Side(%#x): Valid() = true; want false", uint16(bad))
		}
	}
}

// TestSide_String spot-checks names including the fallback.
func TestSide_String(t *testing.T) {
	if got := core.SouthWest.String(); got != "SouthWest" {
		t.Errorf("SouthWest.String() = %q", got)
	}
	if got := core.CounterClockwise.String(); got != "CounterClockwise" {
		t.Errorf("CounterClockwise.String() = %q", got)
	}
	if got := core.Side(3).String(); got != "Side(?)" {
		t.Errorf("Side(3).String() = %q", got)
	}
}

// TestSide_Diagonal verifies the diagonal subset.
func TestSide_Diagonal(t *testing.T) {
	diag := map[core.Side]bool{
		core.NorthEast: true, core.SouthEast: true,
		core.SouthWest: true, core.NorthWest: true,
	}
	for _, s := range core.AllSides {
		if got := s.Diagonal(); got != diag[s] {
			t.Errorf("%v.Diagonal() = %v; want %v", s, got, diag[s])
		}
	}
}

// TestPoint_Dist verifies the Manhattan metric and the cross-family zero.
func TestPoint_Dist(t *testing.T) {
	a, b := core.Point{X: 1, Y: 2}, core.Point{X: 4, Y: 0}
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist = %d; want 5", d)
	}
	if d := b.Dist(a); d != 5 {
		t.Errorf("Dist not symmetric: %d", d)
	}
	if d := a.Dist(core.PolarPoint{Ring: 3, Width: 6}); d != 0 {
		t.Errorf("cross-family Dist = %d; want 0", d)
	}
}

// TestPolarPoint_Dist verifies the ring-wrapped metric: indices scale to the
// wider ring and the angular gap takes the shorter way around.
func TestPolarPoint_Dist(t *testing.T) {
	cases := []struct {
		name string
		a, b core.PolarPoint
		want int
	}{
		{"same ring short way", core.PolarPoint{Index: 0, Ring: 1, Width: 6}, core.PolarPoint{Index: 2, Ring: 1, Width: 6}, 2},
		{"same ring wraps", core.PolarPoint{Index: 0, Ring: 1, Width: 6}, core.PolarPoint{Index: 5, Ring: 1, Width: 6}, 1},
		{"adjacent rings scaled", core.PolarPoint{Index: 0, Ring: 1, Width: 6}, core.PolarPoint{Index: 11, Ring: 2, Width: 12}, 2},
		{"hub is purely radial", core.PolarPoint{Index: 0, Ring: 0, Width: 1}, core.PolarPoint{Index: 4, Ring: 2, Width: 12}, 2},
	}
	for _, tc := range cases {
		if d := tc.a.Dist(tc.b); d != tc.want {
			t.Errorf("%s: Dist = %d; want %d", tc.name, d, tc.want)
		}
		if d := tc.b.Dist(tc.a); d != tc.want {
			t.Errorf("%s: reverse Dist = %d; want %d", tc.name, d, tc.want)
		}
	}
}

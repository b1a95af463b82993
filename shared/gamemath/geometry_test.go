package gamemath

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{3, 0, 1, 1},
		{1, 1, 1, 1},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestLinearFunctionDistanceToFrequency(t *testing.T) {
	f := NewLinearFunction(14, 240, 440, 110)

	if got := f.Map(14); got != 440 {
		t.Fatalf("Map(14) = %v, want 440", got)
	}
	if got := f.Map(240); got != 110 {
		t.Fatalf("Map(240) = %v, want 110", got)
	}
	mid := f.Map(127)
	if math.Abs(mid-275) > 1e-9 {
		t.Fatalf("Map(127) = %v, want 275", mid)
	}
	if got := f.Inverse(275); math.Abs(got-127) > 1e-9 {
		t.Fatalf("Inverse(275) = %v, want 127", got)
	}
}

func TestLinearFunctionDegenerateDomain(t *testing.T) {
	f := NewLinearFunction(5, 5, 1, 2)
	if got := f.Map(100); got != 1 {
		t.Fatalf("Map on zero-width domain = %v, want 1", got)
	}
}

func TestPolarOffsetAndDistance(t *testing.T) {
	origin := dmath.Vec2{X: 10, Y: 20}
	p := PolarOffset(origin, 5, math.Pi/2)
	if math.Abs(p.X-10) > 1e-9 || math.Abs(p.Y-25) > 1e-9 {
		t.Fatalf("PolarOffset = %+v, want (10, 25)", p)
	}
	if d := Distance(origin, p); math.Abs(d-5) > 1e-9 {
		t.Fatalf("Distance = %v, want 5", d)
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		if got := WrapAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNearestAngleAcrossSeam(t *testing.T) {
	// Pointer just past -π while the limb sits just below π.
	current := math.Pi - 0.1
	target := -math.Pi + 0.1
	got := NearestAngle(current, target)
	if math.Abs(got-(math.Pi+0.1)) > 1e-9 {
		t.Fatalf("NearestAngle = %v, want %v", got, math.Pi+0.1)
	}
}

func TestAngleTo(t *testing.T) {
	origin := dmath.Vec2{X: 1, Y: 1}
	if got := AngleTo(origin, dmath.Vec2{X: 1, Y: 5}); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Fatalf("AngleTo straight down = %v, want π/2", got)
	}
}

package gamemath

import (
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestScanlineSpansSquare(t *testing.T) {
	square := []dmath.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	got := ScanlineSpans(square, 5, nil)
	if len(got) != 2 || got[0] != 0 || got[1] != 10 {
		t.Fatalf("spans at y=5 = %v, want [0 10]", got)
	}
	if got := ScanlineSpans(square, 11, nil); len(got) != 0 {
		t.Fatalf("spans below the square = %v, want none", got)
	}
}

func TestScanlineSpansConcave(t *testing.T) {
	// A "U": two prongs joined at the bottom.
	u := []dmath.Vec2{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 6}, {X: 7, Y: 6},
		{X: 7, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	got := ScanlineSpans(u, 3, nil)
	want := []float64{0, 3, 7, 10}
	if len(got) != len(want) {
		t.Fatalf("spans = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("spans = %v, want %v", got, want)
		}
	}
}

func TestScanlineSpansDegenerate(t *testing.T) {
	line := []dmath.Vec2{{X: 0, Y: 0}, {X: 5, Y: 5}}
	if got := ScanlineSpans(line, 2, nil); len(got) != 0 {
		t.Fatalf("two points are not a polygon, got %v", got)
	}
}

func TestBounds(t *testing.T) {
	minP, maxP := Bounds([]dmath.Vec2{{X: 3, Y: -1}, {X: -2, Y: 4}, {X: 1, Y: 1}})
	if minP != (dmath.Vec2{X: -2, Y: -1}) || maxP != (dmath.Vec2{X: 3, Y: 4}) {
		t.Fatalf("Bounds = %v %v", minP, maxP)
	}
}

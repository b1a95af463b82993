package gamemath

import (
	"math"
	"sort"

	dmath "github.com/yohamta/donburi/features/math"
)

// ScanlineSpans returns the x coordinates where the horizontal line at y
// crosses the closed polygon, sorted ascending. Consecutive pairs bound the
// inside of the polygon under the even-odd rule.
func ScanlineSpans(poly []dmath.Vec2, y float64, dst []float64) []float64 {
	dst = dst[:0]
	n := len(poly)
	if n < 3 {
		return dst
	}
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		// Half-open on y so shared vertices count once.
		if (a.Y <= y) == (b.Y <= y) {
			continue
		}
		dst = append(dst, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
	}
	sort.Float64s(dst)
	return dst
}

// Bounds returns the axis-aligned box around pts.
func Bounds(pts []dmath.Vec2) (minP, maxP dmath.Vec2) {
	if len(pts) == 0 {
		return dmath.Vec2{}, dmath.Vec2{}
	}
	minP = dmath.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	maxP = dmath.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range pts {
		minP.X, minP.Y = math.Min(minP.X, p.X), math.Min(minP.Y, p.Y)
		maxP.X, maxP.Y = math.Max(maxP.X, p.X), math.Max(maxP.Y, p.Y)
	}
	return minP, maxP
}

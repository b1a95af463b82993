package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t (unclamped).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Distance returns the euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PolarOffset returns origin + length*(cos θ, sin θ).
func PolarOffset(origin dmath.Vec2, length, theta float64) dmath.Vec2 {
	return dmath.Vec2{
		X: origin.X + length*math.Cos(theta),
		Y: origin.Y + length*math.Sin(theta),
	}
}

// LinearFunction maps a value from the domain [X1, X2] onto the range [Y1, Y2].
// Values outside the domain extrapolate; callers clamp when they need to.
type LinearFunction struct {
	X1, X2 float64
	Y1, Y2 float64
}

// NewLinearFunction builds a mapping from [x1, x2] onto [y1, y2].
func NewLinearFunction(x1, x2, y1, y2 float64) LinearFunction {
	return LinearFunction{X1: x1, X2: x2, Y1: y1, Y2: y2}
}

// Map evaluates the function at x. A zero-width domain returns Y1.
func (f LinearFunction) Map(x float64) float64 {
	if f.X2 == f.X1 {
		return f.Y1
	}
	return f.Y1 + (x-f.X1)*(f.Y2-f.Y1)/(f.X2-f.X1)
}

// Inverse maps y from the range back onto the domain.
func (f LinearFunction) Inverse(y float64) float64 {
	if f.Y2 == f.Y1 {
		return f.X1
	}
	return f.X1 + (y-f.Y1)*(f.X2-f.X1)/(f.Y2-f.Y1)
}

// AngleTo returns the direction from origin to p in radians.
func AngleTo(origin, p dmath.Vec2) float64 {
	return math.Atan2(p.Y-origin.Y, p.X-origin.X)
}

// WrapAngle folds a into (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// NearestAngle returns the angle equivalent to target that lies closest to
// current, so a drag across the ±π seam keeps turning the same way.
func NearestAngle(current, target float64) float64 {
	return current + WrapAngle(target-current)
}

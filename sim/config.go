package sim

import (
	"errors"
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ErrInvalidConfig is wrapped by every construction error caused by a bad Config.
var ErrInvalidConfig = errors.New("invalid simulation config")

// AppendageConfig describes one rotating limb.
type AppendageConfig struct {
	Pivot        dmath.Vec2
	Length       float64 // pivot to fingertip (arm) or shoe (leg)
	AngleOffset  float64 // added to the angle when projecting the tip
	MinAngle     float64
	MaxAngle     float64
	InitialAngle float64
}

// Band is a closed angular interval in radians.
type Band struct {
	Min, Max float64
}

// Contains reports whether a lies inside the band.
func (b Band) Contains(a float64) bool {
	return a >= b.Min && a <= b.Max
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Threshold fires a discharge once more than MinCharge active carriers are
// present and the fingertip is closer than MaxDistance to the doorknob.
type Threshold struct {
	MinCharge   int
	MaxDistance float64
}

// Config holds everything needed to build a Model.
type Config struct {
	Arm AppendageConfig
	Leg AppendageConfig

	Doorknob dmath.Vec2

	// ContactBand is the range of leg angles where the shoe rubs the carpet.
	ContactBand Band
	// FrictionStep splits ContactBand into steps; entering a new step mints
	// one carrier. Zero treats the whole band as a single step.
	FrictionStep float64

	// SpawnBox is the jitter box new carriers are placed in.
	SpawnBox Rect

	// Thresholds are walked in ascending MinCharge order; the first match wins.
	Thresholds []Threshold

	MaxCarriers  int // 0 means unlimited
	DrainPerTick int // 0 sweeps every retired carrier in one tick

	Seed uint64
}

// DefaultConfig returns the stock scene: a 768x504 layout with the arm
// reaching for a doorknob on the right and the leg over the carpet.
func DefaultConfig() Config {
	// Arm range is centered on the pose where the finger points straight at
	// the knob, so both ends of the range are the farthest pose.
	const armClosest = -0.052
	return Config{
		Arm: AppendageConfig{
			Pivot:        dmath.Vec2{X: 434, Y: 270},
			Length:       118,
			AngleOffset:  -0.26,
			MinAngle:     armClosest - math.Pi,
			MaxAngle:     armClosest + math.Pi,
			InitialAngle: -0.5,
		},
		Leg: AppendageConfig{
			Pivot:        dmath.Vec2{X: 400, Y: 330},
			Length:       115,
			MinAngle:     0.4,
			MaxAngle:     2.8,
			InitialAngle: 1.3,
		},
		Doorknob:     dmath.Vec2{X: 543.9, Y: 234.5},
		ContactBand:  Band{Min: 0.88, Max: 2.08},
		FrictionStep: 0.08,
		SpawnBox:     Rect{X: 460, Y: 450, Width: 50, Height: 50},
		Thresholds: []Threshold{
			{MinCharge: 10, MaxDistance: 20},
			{MinCharge: 15, MaxDistance: 30},
			{MinCharge: 20, MaxDistance: 40},
			{MinCharge: 25, MaxDistance: 50},
			{MinCharge: 30, MaxDistance: 60},
			{MinCharge: 35, MaxDistance: 70},
			{MinCharge: 40, MaxDistance: 80},
			{MinCharge: 50, MaxDistance: 100},
			{MinCharge: 60, MaxDistance: 120},
			{MinCharge: 70, MaxDistance: 140},
		},
		MaxCarriers:  100,
		DrainPerTick: 3,
		Seed:         1,
	}
}

// Validate checks the config for programming mistakes. Degenerate threshold
// tables are valid; they only mean a spark never fires.
func (c Config) Validate() error {
	if err := c.Arm.validate("arm"); err != nil {
		return err
	}
	if err := c.Leg.validate("leg"); err != nil {
		return err
	}
	if c.ContactBand.Min > c.ContactBand.Max {
		return fmt.Errorf("%w: contact band min %v exceeds max %v", ErrInvalidConfig, c.ContactBand.Min, c.ContactBand.Max)
	}
	if c.FrictionStep < 0 {
		return fmt.Errorf("%w: friction step must not be negative, got %v", ErrInvalidConfig, c.FrictionStep)
	}
	if c.SpawnBox.Width < 0 || c.SpawnBox.Height < 0 {
		return fmt.Errorf("%w: spawn box size must not be negative, got %vx%v", ErrInvalidConfig, c.SpawnBox.Width, c.SpawnBox.Height)
	}
	if c.MaxCarriers < 0 {
		return fmt.Errorf("%w: max carriers must not be negative, got %d", ErrInvalidConfig, c.MaxCarriers)
	}
	if c.DrainPerTick < 0 {
		return fmt.Errorf("%w: drain per tick must not be negative, got %d", ErrInvalidConfig, c.DrainPerTick)
	}
	return nil
}

func (a AppendageConfig) validate(name string) error {
	if !(a.Length > 0) {
		return fmt.Errorf("%w: %s length must be positive, got %v", ErrInvalidConfig, name, a.Length)
	}
	if a.MinAngle > a.MaxAngle {
		return fmt.Errorf("%w: %s min angle %v exceeds max angle %v", ErrInvalidConfig, name, a.MinAngle, a.MaxAngle)
	}
	if a.InitialAngle < a.MinAngle || a.InitialAngle > a.MaxAngle {
		return fmt.Errorf("%w: %s initial angle %v outside [%v, %v]", ErrInvalidConfig, name, a.InitialAngle, a.MinAngle, a.MaxAngle)
	}
	return nil
}

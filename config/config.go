package config

import (
	"image/color"

	"github.com/automoto/travoltage/sim"
	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every entity and renderer is registered on.
const Default ecs.LayerID = 0

// Config holds general application configuration
type Config struct {
	Width     int
	Height    int
	Title     string
	ScenePath string // TMX scene inside the embedded assets
}

// AppendageViewConfig controls how a limb is drawn and grabbed
type AppendageViewConfig struct {
	Thickness   float32
	Color       color.RGBA
	JointRadius float32

	GrabSize     float64 // side of the square grab handle around the tip
	BorderColor  color.RGBA
	BorderDash   float64 // dash length of the "drag me" border
	BorderRadius float32

	KeyboardSteps int // positions across the range for key nudges
}

// CarrierViewConfig controls carrier sprites
type CarrierViewConfig struct {
	Radius        float32
	Color         color.RGBA
	MinusColor    color.RGBA
	JostleRadius  float64 // idle wobble around the spawn position
	JostleSpeed   float64 // radians per second
	DrainDuration float32 // seconds for a carrier to travel to the knob
}

// SparkConfig controls the discharge bolt
type SparkConfig struct {
	Color        color.RGBA
	GlowColor    color.RGBA
	Segments     int
	Jitter       float64
	Thickness    float32
	FadeDuration float32 // seconds after the discharge ends
}

// HUDConfig contains status line layout and range descriptions
type HUDConfig struct {
	TextColor  color.RGBA
	PanelColor color.RGBA
	Margin     float64
	LineHeight float64

	ArmRanges sim.RangeMap
	LegRanges sim.RangeMap

	DischargeMessage  string  // formatted with the number of carriers drained
	MessageDuration   float64 // seconds
	DoorknobRadius    float32
	DoorknobColor     color.RGBA
	BackgroundColor   color.RGBA
	CarpetColor       color.RGBA
	DoorColor         color.RGBA
	BodyColor         color.RGBA
	BodyOutlineColor  color.RGBA
	ForceLineColor    color.RGBA
	FingerMarkerColor color.RGBA
}

// ShoeSoundConfig controls the shoe drag loop
type ShoeSoundConfig struct {
	StillTime float64 // seconds of zero leg velocity before the loop stops
}

// ToneConfig maps finger-to-knob distance to the proximity tone
type ToneConfig struct {
	NearDistance, FarDistance   float64
	NearFrequency, FarFrequency float64
	NearLFO, FarLFO             float64
	Volume                      float64
	MovingWindow                float64 // seconds the finger may rest before the tone stops
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowGeometry bool // body outline, force lines and finger marker
	NoSound      bool
}

// Global configuration instances
var C *Config
var Sim sim.Config
var Arm AppendageViewConfig
var Leg AppendageViewConfig
var Carrier CarrierViewConfig
var Spark SparkConfig
var HUD HUDConfig
var Shoe ShoeSoundConfig
var Tone ToneConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	SkinTone     = color.RGBA{R: 236, G: 188, B: 150, A: 255}
	Denim        = color.RGBA{R: 70, G: 90, B: 150, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:     768,
		Height:    624,
		Title:     "John Travoltage",
		ScenePath: "scenes/travoltage.tmx",
	}

	Sim = sim.DefaultConfig()

	Arm = AppendageViewConfig{
		Thickness:     14,
		Color:         SkinTone,
		JointRadius:   9,
		GrabSize:      48,
		BorderColor:   BrightYellow,
		BorderDash:    6,
		BorderRadius:  26,
		KeyboardSteps: 100,
	}

	Leg = AppendageViewConfig{
		Thickness:     22,
		Color:         Denim,
		JointRadius:   13,
		GrabSize:      56,
		BorderColor:   BrightYellow,
		BorderDash:    6,
		BorderRadius:  32,
		KeyboardSteps: 30,
	}

	Carrier = CarrierViewConfig{
		Radius:        5,
		Color:         LightBlue,
		MinusColor:    White,
		JostleRadius:  3,
		JostleSpeed:   6,
		DrainDuration: 0.35,
	}

	Spark = SparkConfig{
		Color:        White,
		GlowColor:    LightBlue,
		Segments:     7,
		Jitter:       6,
		Thickness:    2,
		FadeDuration: 0.25,
	}

	HUD = HUDConfig{
		TextColor:  White,
		PanelColor: BlackOverlay,
		Margin:     8,
		LineHeight: 16,

		ArmRanges: sim.RangeMap{Steps: 100, Entries: []sim.RangeEntry{
			{Min: 0, Max: 0, Text: "Hand farthest from doorknob"},
			{Min: 1, Max: 12, Text: "Hand very far from doorknob"},
			{Min: 13, Max: 24, Text: "Hand far from doorknob"},
			{Min: 25, Max: 25, Text: "Hand neither close nor far from doorknob"},
			{Min: 26, Max: 37, Text: "Hand close to doorknob"},
			{Min: 38, Max: 49, Text: "Hand very close to doorknob"},
			{Min: 50, Max: 50, Text: "Hand closest to doorknob"},
			{Min: 51, Max: 62, Text: "Hand very close to doorknob"},
			{Min: 63, Max: 74, Text: "Hand close to doorknob"},
			{Min: 75, Max: 75, Text: "Hand neither close nor far from doorknob"},
			{Min: 76, Max: 87, Text: "Hand far from doorknob"},
			{Min: 88, Max: 99, Text: "Hand very far from doorknob"},
			{Min: 100, Max: 100, Text: "Hand farthest from doorknob"},
		}},
		LegRanges: sim.RangeMap{Steps: 30, Entries: []sim.RangeEntry{
			{Min: 0, Max: 5, Text: "Foot off carpet"},
			{Min: 6, Max: 21, Text: "Foot on carpet"},
			{Min: 22, Max: 30, Text: "Foot off carpet"},
		}},

		DischargeMessage:  "%d electrons discharged",
		MessageDuration:   2.5,
		DoorknobRadius:    7,
		DoorknobColor:     color.RGBA{R: 200, G: 170, B: 60, A: 255},
		BackgroundColor:   color.RGBA{R: 190, G: 220, B: 240, A: 255},
		CarpetColor:       color.RGBA{R: 150, G: 70, B: 60, A: 255},
		DoorColor:         color.RGBA{R: 140, G: 100, B: 60, A: 255},
		BodyColor:         color.RGBA{R: 40, G: 40, B: 48, A: 255},
		BodyOutlineColor:  color.RGBA{R: 0, G: 0, B: 255, A: 200},
		ForceLineColor:    color.RGBA{R: 255, G: 0, B: 0, A: 200},
		FingerMarkerColor: Red,
	}

	Shoe = ShoeSoundConfig{
		StillTime: 0.1,
	}

	Tone = ToneConfig{
		NearDistance:  14,
		FarDistance:   240,
		NearFrequency: 440,
		FarFrequency:  110,
		NearLFO:       10,
		FarLFO:        1,
		Volume:        0.2,
		MovingWindow:  1.0,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowGeometry: false,
		NoSound:      false,
	}
}

package config

import "github.com/automoto/travoltage/shared/synth"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Discharge cues, one is picked at random per spark
	SoundOuch
	SoundShock
	// Looping shoe drag, direction follows the leg's angular velocity
	SoundShoeForward
	SoundShoeBackward
	// UI sounds
	SoundButton
)

// ClipSpec describes a synthesized sound effect
type ClipSpec = synth.Clip

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to clip descriptions
type SoundConfig struct {
	Clips             map[SoundID]ClipSpec
	VolumeMultipliers map[SoundID]float64
	Discharge         []SoundID
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Clips: map[SoundID]ClipSpec{
			SoundOuch:         {Wave: synth.Square, StartFreq: 620, EndFreq: 240, Duration: 0.45, Decay: 5},
			SoundShock:        {Wave: synth.Noise, Duration: 0.35, Decay: 9},
			SoundShoeForward:  {Wave: synth.Noise, StartFreq: 900, EndFreq: 1400, Duration: 0.5, Loop: true},
			SoundShoeBackward: {Wave: synth.Noise, StartFreq: 1400, EndFreq: 900, Duration: 0.5, Loop: true},
			SoundButton:       {Wave: synth.Sine, StartFreq: 880, EndFreq: 880, Duration: 0.06, Decay: 30},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundShoeForward:  0.35,
			SoundShoeBackward: 0.35,
			SoundButton:       0.5,
		},
		Discharge: []SoundID{SoundOuch, SoundShock},
	}
}

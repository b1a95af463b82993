package components

import (
	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/shared/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // 0.0 - 1.0
	Enabled    bool
	PendingSFX []cfg.SoundID

	// Shoe drag loop currently playing, SoundNone when silent
	ShoeSound    cfg.SoundID
	ShoePlayer   *audio.Player
	LegStillTime float64

	// Proximity tone
	Tone       *synth.Tone
	TonePlayer *audio.Player
}

var Audio = donburi.NewComponentType[AudioData]()

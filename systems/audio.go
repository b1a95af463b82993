package systems

import (
	"log"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/automoto/travoltage/assets"
	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalSoundEnabled         = true
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Clips {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: Could not render sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays pending SFX and keeps the shoe loop and proximity tone
// in step with the model.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	audioData.Enabled = globalSoundEnabled
	audioData.SFXVolume = globalSFXVolume

	for _, soundID := range audioData.PendingSFX {
		if audioData.Enabled {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	sd := GetSimulation(e)
	if sd == nil {
		return
	}
	updateShoeSound(audioData, sd)
	updateTone(e, audioData, sd)
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	player.SetVolume(sfxVolume(soundID))
	player.Play()
}

func sfxVolume(soundID cfg.SoundID) float64 {
	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	return volume
}

// onAudioSpark plays one of the discharge cues at random.
func onAudioSpark(e *ecs.ECS, ev SparkEvent) {
	if !ev.Visible || !globalSoundEnabled || len(cfg.Sound.Discharge) == 0 {
		return
	}
	PlaySFX(e, cfg.Sound.Discharge[rand.IntN(len(cfg.Sound.Discharge))])
}

// updateShoeSound loops the shoe drag while the shoe moves on the carpet. The
// loop direction follows the sign of the leg's angular velocity, and it only
// stops after the leg has been still for cfg.Shoe.StillTime.
func updateShoeSound(ad *components.AudioData, sd *components.SimulationData) {
	want := cfg.SoundNone
	velocity := sd.Model.Leg.AngularVelocity()

	if ad.Enabled && sd.Model.ShoeOnCarpet() {
		switch {
		case velocity > 0:
			want = cfg.SoundShoeBackward
			ad.LegStillTime = 0
		case velocity < 0:
			want = cfg.SoundShoeForward
			ad.LegStillTime = 0
		default:
			ad.LegStillTime += frameSeconds()
			if ad.LegStillTime < cfg.Shoe.StillTime {
				want = ad.ShoeSound
			}
		}
	}

	if want == ad.ShoeSound {
		return
	}
	stopShoeSound(ad)
	if want == cfg.SoundNone {
		return
	}

	player, err := globalAudioLoader.LoadLoop(want)
	if err != nil {
		log.Printf("Warning: Could not start shoe sound: %v", err)
		return
	}
	player.SetVolume(sfxVolume(want))
	player.Play()
	ad.ShoePlayer = player
	ad.ShoeSound = want
}

func stopShoeSound(ad *components.AudioData) {
	if ad.ShoePlayer != nil {
		_ = ad.ShoePlayer.Close()
		ad.ShoePlayer = nil
	}
	ad.ShoeSound = cfg.SoundNone
}

// updateTone sounds the finger's distance to the doorknob while the arm is
// dragged and the finger moved within cfg.Tone.MovingWindow: closer is
// higher pitched with a faster wobble.
func updateTone(e *ecs.ECS, ad *components.AudioData, sd *components.SimulationData) {
	son := getSonification(e)
	if son == nil {
		return
	}

	finger := sd.Model.Arm.FingerPosition()
	if finger != son.PreviousFinger {
		son.PreviousFinger = finger
		son.TimeAtFinger = 0
	} else {
		son.TimeAtFinger += frameSeconds()
	}

	active := ad.Enabled && armDragging(e) && son.TimeAtFinger < cfg.Tone.MovingWindow
	if !active {
		if ad.Tone != nil {
			ad.Tone.Stop()
		}
		return
	}

	if ad.Tone == nil {
		tone, player, err := globalAudioLoader.LoadTone()
		if err != nil {
			log.Printf("Warning: Could not start proximity tone: %v", err)
			return
		}
		player.Play()
		ad.Tone, ad.TonePlayer = tone, player
	}

	freq, lfo := ToneFor(sd.Model.FingerDistance())
	ad.Tone.Set(freq, lfo, cfg.Tone.Volume*globalSFXVolume)
}

// ToneFor maps a finger distance onto the tone frequency and LFO rate.
// Distances outside the configured span are clamped to it.
func ToneFor(distance float64) (freq, lfo float64) {
	t := cfg.Tone
	d := gamemath.Clamp(distance, math.Min(t.NearDistance, t.FarDistance), math.Max(t.NearDistance, t.FarDistance))
	freq = gamemath.NewLinearFunction(t.NearDistance, t.FarDistance, t.NearFrequency, t.FarFrequency).Map(d)
	lfo = gamemath.NewLinearFunction(t.NearDistance, t.FarDistance, t.NearLFO, t.FarLFO).Map(d)
	return freq, lfo
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = gamemath.Clamp(volume, 0, 1)
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// SetSoundEnabled mutes or unmutes every sound. Muting silences running loops
// on the next UpdateAudio.
func SetSoundEnabled(enabled bool) {
	globalSoundEnabled = enabled
}

// SoundEnabled reports whether sound is on.
func SoundEnabled() bool {
	return globalSoundEnabled
}

// StopAllSounds closes the looping players of this ECS.
func StopAllSounds(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	ad := components.Audio.Get(entry)
	stopShoeSound(ad)
	if ad.TonePlayer != nil {
		_ = ad.TonePlayer.Close()
		ad.TonePlayer = nil
		ad.Tone = nil
	}
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			Enabled:    globalSoundEnabled,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

func getSonification(e *ecs.ECS) *components.SonificationData {
	entry, ok := components.Sonification.First(e.World)
	if !ok {
		return nil
	}
	return components.Sonification.Get(entry)
}

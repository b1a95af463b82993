package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/shared/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader renders and caches synthesized sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}
	clip, ok := cfg.Sound.Clips[id]
	if !ok {
		return nil, fmt.Errorf("no clip for sound %d", id)
	}
	data := synth.Render(clip, l.context.SampleRate(), uint64(id))
	if len(data) == 0 {
		return nil, fmt.Errorf("sound %d rendered empty", id)
	}
	l.sfxCache[id] = data
	return data, nil
}

// LoadSFX returns a new one-shot player each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

// LoadLoop returns a player that repeats the clip until paused.
func (l *AudioLoader) LoadLoop(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	return l.context.NewPlayer(loop)
}

// LoadTone returns an endless tone generator and its player.
func (l *AudioLoader) LoadTone() (*synth.Tone, *audio.Player, error) {
	tone := synth.NewTone(l.context.SampleRate())
	player, err := l.context.NewPlayer(tone)
	if err != nil {
		return nil, nil, fmt.Errorf("tone player: %w", err)
	}
	return tone, player, nil
}

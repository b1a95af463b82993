// Package synth renders short sound effects and a continuous tone as 16-bit
// little-endian stereo PCM, the format ebiten's audio players consume.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"sync/atomic"
)

// BytesPerFrame is one stereo frame of two 16-bit samples.
const BytesPerFrame = 4

// Waveform selects the oscillator.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Noise
)

// Clip describes a synthesized sound effect.
type Clip struct {
	Wave      Waveform
	StartFreq float64 // Hz at the start of the clip
	EndFreq   float64 // Hz at the end, swept linearly
	Duration  float64 // seconds
	Decay     float64 // exponential amplitude decay per second, 0 = flat
	Loop      bool
}

// Render returns the PCM for c at sampleRate. Noise clips are seeded so the
// same clip always renders the same bytes. Noise with a frequency is low-pass
// filtered at that frequency.
func Render(c Clip, sampleRate int, seed uint64) []byte {
	frames := int(c.Duration * float64(sampleRate))
	if frames <= 0 || sampleRate <= 0 {
		return nil
	}
	out := make([]byte, frames*BytesPerFrame)
	rng := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))

	sr := float64(sampleRate)
	phase := 0.0
	filtered := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / sr
		progress := float64(i) / float64(frames)
		freq := c.StartFreq + (c.EndFreq-c.StartFreq)*progress

		var v float64
		switch c.Wave {
		case Sine:
			v = math.Sin(2 * math.Pi * phase)
		case Square:
			if phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case Noise:
			v = rng.Float64()*2 - 1
			if freq > 0 {
				alpha := 1 - math.Exp(-2*math.Pi*freq/sr)
				filtered += alpha * (v - filtered)
				v = filtered * 2
			}
		}
		phase += freq / sr
		phase -= math.Floor(phase)

		amp := 1.0
		if c.Decay > 0 {
			amp = math.Exp(-c.Decay * t)
		}
		if !c.Loop {
			amp *= edgeFade(i, frames, sampleRate)
		}
		putFrame(out[i*BytesPerFrame:], v*amp*0.8)
	}
	return out
}

// edgeFade ramps the first and last 5ms to avoid clicks.
func edgeFade(i, frames, sampleRate int) float64 {
	ramp := sampleRate / 200
	if ramp <= 0 {
		return 1
	}
	if i < ramp {
		return float64(i) / float64(ramp)
	}
	if left := frames - 1 - i; left < ramp {
		return float64(left) / float64(ramp)
	}
	return 1
}

func putFrame(b []byte, v float64) {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s := uint16(int16(v * math.MaxInt16))
	binary.LittleEndian.PutUint16(b[0:], s)
	binary.LittleEndian.PutUint16(b[2:], s)
}

// Tone is an endless sine oscillator with an amplitude LFO. Its parameters
// are set from the game loop while the audio player reads it on its own
// goroutine, so they are stored atomically.
type Tone struct {
	sampleRate float64

	freq   atomic.Uint64 // float64 bits
	lfo    atomic.Uint64 // float64 bits
	volume atomic.Uint64 // float64 bits, target amplitude

	// owned by the reader
	phase, lfoPhase, gain float64
}

// NewTone returns a silent tone.
func NewTone(sampleRate int) *Tone {
	t := &Tone{sampleRate: float64(sampleRate)}
	t.Set(220, 1, 0)
	return t
}

// Set updates the oscillator frequency, LFO rate (both Hz) and target volume.
func (t *Tone) Set(freq, lfo, volume float64) {
	t.freq.Store(math.Float64bits(freq))
	t.lfo.Store(math.Float64bits(lfo))
	t.volume.Store(math.Float64bits(volume))
}

// Stop fades the tone out.
func (t *Tone) Stop() {
	t.volume.Store(math.Float64bits(0))
}

// Frequency returns the current oscillator frequency.
func (t *Tone) Frequency() float64 { return math.Float64frombits(t.freq.Load()) }

// LFO returns the current LFO rate.
func (t *Tone) LFO() float64 { return math.Float64frombits(t.lfo.Load()) }

// Volume returns the target volume.
func (t *Tone) Volume() float64 { return math.Float64frombits(t.volume.Load()) }

// Read fills p with whole stereo frames. It never returns an error.
func (t *Tone) Read(p []byte) (int, error) {
	n := len(p) / BytesPerFrame * BytesPerFrame
	freq, lfo, target := t.Frequency(), t.LFO(), t.Volume()
	// ~10ms glide so parameter jumps do not click
	glide := 1 - math.Exp(-1/(0.01*t.sampleRate))
	for i := 0; i < n; i += BytesPerFrame {
		t.gain += (target - t.gain) * glide
		mod := 0.6 + 0.4*math.Sin(2*math.Pi*t.lfoPhase)
		putFrame(p[i:], math.Sin(2*math.Pi*t.phase)*mod*t.gain)

		t.phase += freq / t.sampleRate
		t.phase -= math.Floor(t.phase)
		t.lfoPhase += lfo / t.sampleRate
		t.lfoPhase -= math.Floor(t.lfoPhase)
	}
	return n, nil
}

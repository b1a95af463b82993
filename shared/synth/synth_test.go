package synth

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestRenderLength(t *testing.T) {
	tests := []struct {
		name string
		clip Clip
		want int
	}{
		{"sine", Clip{Wave: Sine, StartFreq: 440, EndFreq: 440, Duration: 0.5}, 22050 * BytesPerFrame},
		{"noise", Clip{Wave: Noise, Duration: 0.1, Decay: 5}, 4410 * BytesPerFrame},
		{"empty", Clip{Wave: Square, Duration: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Render(tt.clip, 44100, 1)); got != tt.want {
				t.Fatalf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	c := Clip{Wave: Noise, StartFreq: 900, EndFreq: 1400, Duration: 0.05}
	if !bytes.Equal(Render(c, 44100, 3), Render(c, 44100, 3)) {
		t.Fatalf("same seed rendered different noise")
	}
	if bytes.Equal(Render(c, 44100, 3), Render(c, 44100, 4)) {
		t.Fatalf("different seeds rendered identical noise")
	}
}

func TestRenderFadesEdges(t *testing.T) {
	pcm := Render(Clip{Wave: Square, StartFreq: 200, EndFreq: 200, Duration: 0.1}, 44100, 1)
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-BytesPerFrame:]))
	if first != 0 || last != 0 {
		t.Fatalf("edges = %d, %d, want silence", first, last)
	}
}

func TestToneReadsWholeFrames(t *testing.T) {
	tone := NewTone(44100)
	buf := make([]byte, 1027)
	n, err := tone.Read(buf)
	if err != nil || n != 1024 {
		t.Fatalf("Read = %d, %v", n, err)
	}
	for _, b := range buf[:n] {
		if b != 0 {
			t.Fatalf("silent tone produced samples")
		}
	}

	tone.Set(440, 5, 1)
	if tone.Frequency() != 440 || tone.LFO() != 5 || tone.Volume() != 1 {
		t.Fatalf("Set did not store parameters")
	}
	loud := false
	for i := 0; i < 10 && !loud; i++ {
		tone.Read(buf)
		for j := 0; j+1 < n; j += 2 {
			if int16(binary.LittleEndian.Uint16(buf[j:])) > 1000 {
				loud = true
			}
		}
	}
	if !loud {
		t.Fatalf("tone never became audible")
	}

	tone.Stop()
	if tone.Volume() != 0 {
		t.Fatalf("Stop left volume at %v", tone.Volume())
	}
}

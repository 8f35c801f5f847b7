package assets

import (
	"encoding/binary"
	"math"
)

// SampleRate is the rate every synthesized clip is rendered at.
const SampleRate = 44100

// Tone describes a short decaying sine sweep.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64
	Volume   float64
}

// HitTone is played when a projectile destroys an enemy.
var HitTone = Tone{StartHz: 880, EndHz: 220, Duration: 0.12, Volume: 0.35}

// PCM renders t as 16-bit little-endian stereo, the layout ebiten's audio
// players take directly.
func (t Tone) PCM(sampleRate int) []byte {
	if sampleRate <= 0 || t.Duration <= 0 {
		return nil
	}
	n := int(t.Duration * float64(sampleRate))
	out := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*p
		phase += 2 * math.Pi * freq / float64(sampleRate)
		env := (1 - p) * (1 - p)
		v := int16(math.Sin(phase) * env * t.Volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

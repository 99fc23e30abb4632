package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BlipGenerator generates a single decaying sine tone.
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlipGenerator creates a blip generator at the given frequency.
func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fast exponential decay keeps the blip percussive
		envelope := math.Exp(-t * 30)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// SweepGenerator generates a tone gliding from one frequency to another.
type SweepGenerator struct {
	sr       beep.SampleRate
	fromFreq float64
	toFreq   float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a frequency sweep over the given duration.
func NewSweepGenerator(sr beep.SampleRate, fromFreq, toFreq float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:       sr,
		fromFreq: fromFreq,
		toFreq:   toFreq,
		samples:  sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1 {
			progress = 1
		}

		freq := g.fromFreq + (g.toFreq-g.fromFreq)*progress

		// Integrate phase so the glide has no discontinuities
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Soft fade towards the end of the sweep
		envelope := 1.0 - progress*progress
		sample := 0.18 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// PopGenerator generates a crackling pop from filtered noise.
type PopGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewPopGenerator creates a pop sound generator.
func NewPopGenerator(sr beep.SampleRate) *PopGenerator {
	return &PopGenerator{
		sr:   sr,
		seed: 0x5eed,
	}
}

func (g *PopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 18)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Low thump under the noise
		thump := 0.4 * math.Sin(2*math.Pi*90*t)

		sample := envelope * (0.2*noise + thump*0.3)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PopGenerator) Err() error {
	return nil
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/gridpath/parameter"
)

// SweepGenerator glides a sine from one frequency to another, then ends
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a finite frequency sweep
func NewSweepGenerator(sr beep.SampleRate, from, to float64, length time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(length),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		// Fade out over the sweep to avoid a click at the end
		amplitude := parameter.AudioVolume * (1 - progress)
		sample := amplitude * math.Sin(2*math.Pi*g.phase)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz; wrap with beep.Take to bound it
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade-in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * parameter.AudioVolume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// scale multiplies a streamer's output by a constant gain
func scale(s beep.Streamer, gain float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		return n, ok
	})
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// FadeStreamer scales its source linearly from full volume down to
// silence over a fixed number of samples, then ends.
type FadeStreamer struct {
	src   beep.Streamer
	total int
	pos   int
}

// NewFade wraps src with a linear fade-out of the given sample length.
func NewFade(src beep.Streamer, samples int) *FadeStreamer {
	return &FadeStreamer{src: src, total: samples}
}

func (f *FadeStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if f.pos >= f.total {
		return 0, false
	}
	if rest := f.total - f.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = f.src.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(f.pos)/float64(f.total)
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *FadeStreamer) Err() error {
	return f.src.Err()
}

// NewChime builds the "food eaten" cue: two short rising sine notes.
func NewChime(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := generators.SineTone(sr, 880)
	if err != nil {
		return nil, err
	}
	high, err := generators.SineTone(sr, 1320)
	if err != nil {
		return nil, err
	}
	first := sr.N(60 * time.Millisecond)
	second := sr.N(90 * time.Millisecond)
	return beep.Seq(
		NewFade(beep.Take(first, low), first),
		NewFade(beep.Take(second, high), second),
	), nil
}

// BuzzGenerator generates a low-pitch buzz, used for the reset cue
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

		// Fundamental plus two harmonics for a harsh tone
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms attack to avoid a click
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

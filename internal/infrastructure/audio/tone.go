package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a square-ish oscillator with a linear fade-out, loud enough for a
// cue without clicking at the end.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewTone creates a finite tone streamer.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		// Soft square: sine pushed through tanh.
		val := math.Tanh(3*math.Sin(2*math.Pi*t.phase)) / math.Tanh(3)
		val *= 1 - float64(t.position)/float64(t.duration)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

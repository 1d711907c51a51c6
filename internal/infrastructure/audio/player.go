// Package audio plays short tone cues for round events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/younwookim/hookarcade/internal/application/round"
	"github.com/younwookim/hookarcade/internal/infrastructure/config"
)

// cueNames maps config keys to the events they sound on
var cueNames = map[string]round.EventKind{
	"roundStarted": round.EventRoundStarted,
	"hooked":       round.EventHooked,
	"missed":       round.EventMissed,
	"reeled":       round.EventReeled,
	"escaped":      round.EventEscaped,
	"gameOver":     round.EventGameOver,
}

// Cue is a single tone
type Cue struct {
	Freq     float64
	Duration time.Duration
}

// Player mixes cues onto the speaker
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	cues        map[round.EventKind]Cue
	initialized bool
}

// NewPlayer creates a player from config. Unknown cue names are ignored.
func NewPlayer(cfg config.AudioConfig) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: cfg.Volume,
		cues:   make(map[round.EventKind]Cue, len(cfg.Cues)),
	}
	for name, c := range cfg.Cues {
		kind, ok := cueNames[name]
		if !ok {
			continue
		}
		p.cues[kind] = Cue{
			Freq:     c.FreqHz,
			Duration: time.Duration(c.DurationMs) * time.Millisecond,
		}
	}
	return p
}

// Initialize opens the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Streamer returns the streamer for kind, or false if it has no cue.
func (p *Player) Streamer(kind round.EventKind) (beep.Streamer, bool) {
	c, ok := p.cues[kind]
	if !ok || c.Duration <= 0 {
		return nil, false
	}
	return &effects.Gain{
		Streamer: NewTone(c.Freq, c.Duration, p.rate),
		Gain:     p.volume - 1,
	}, true
}

// Handle plays the cue for ev. It is a no-op until Initialize succeeds.
func (p *Player) Handle(ev round.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, ok := p.Streamer(ev.Kind)
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

package terminal

import (
	"github.com/younwookim/hookarcade/internal/application/input"
	"github.com/younwookim/hookarcade/internal/domain/entity"
)

// Detent waveforms as seen on the (A, B) lines, ending back at rest.
var (
	turnRight = []input.Pins{{A: false, B: true}, {A: false, B: false}, {A: true, B: false}, {A: true, B: true}}
	turnLeft  = []input.Pins{{A: true, B: false}, {A: false, B: false}, {A: false, B: true}, {A: true, B: true}}
)

// Knob stands in for the rotary encoder of the handheld build. Actions are
// replayed as pin changes into an input.Encoder, so terminal input goes
// through the same decoding as the hardware.
type Knob struct {
	encoder *input.Encoder
}

// NewKnob creates a knob whose encoder feeds q.
func NewKnob(q *input.Queue) *Knob {
	return &Knob{encoder: input.NewEncoder(q)}
}

// Send plays the pin sequence for a.
func (k *Knob) Send(a entity.Action) {
	switch a {
	case entity.ActionLeft:
		k.play(turnLeft)
	case entity.ActionRight:
		k.play(turnRight)
	case entity.ActionHook:
		// Button is active low: press, then release.
		k.encoder.OnChange(input.Pins{A: true, B: true, Button: false})
		k.encoder.OnChange(input.Pins{A: true, B: true, Button: true})
	}
}

func (k *Knob) play(wave []input.Pins) {
	for _, p := range wave {
		p.Button = true
		k.encoder.OnChange(p)
	}
}

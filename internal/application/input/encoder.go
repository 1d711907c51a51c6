package input

// Pins is a snapshot of the rotary encoder lines taken in the pin-change
// callback.
type Pins struct {
	A, B   bool
	Button bool // active low
}

// Encoder is a rotary encoder with push button feeding a Queue. OnChange is
// meant to be called from the pin-change callback; it owns the decoder state
// so no package-level mutable state is needed.
type Encoder struct {
	decoder Decoder
	button  Button
	queue   *Queue
}

// NewEncoder creates an encoder producing into q.
func NewEncoder(q *Queue) *Encoder {
	return &Encoder{queue: q}
}

// OnChange samples the pins and pushes any resulting actions.
func (e *Encoder) OnChange(p Pins) {
	if a, ok := e.decoder.Sample(p.A, p.B); ok {
		e.queue.Push(a)
	}
	if a, ok := e.button.Sample(p.Button); ok {
		e.queue.Push(a)
	}
}

package input

import "github.com/younwookim/hookarcade/internal/domain/entity"

// detent is the position of a quadrature encoder within one detent cycle,
// named after the (A, B) levels that define it.
type detent int

const (
	detentRest    detent = iota // A=1 B=1
	detentCWStart               // A=0 B=1
	detentHalfway               // A=0 B=0
	detentCCWStart              // A=1 B=0
)

type rotation int

const (
	rotationNone rotation = iota
	rotationCW
	rotationCCW
)

// Decoder turns (A, B) pin samples from a quadrature rotary encoder into
// Left/Right actions, one per completed detent cycle.
type Decoder struct {
	pos detent
	dir rotation
}

// Sample feeds the current pin levels. It returns an action when a full
// detent cycle in a consistent direction completes.
func (d *Decoder) Sample(aHigh, bHigh bool) (entity.Action, bool) {
	switch {
	case d.pos == detentRest && !aHigh && bHigh:
		d.dir = rotationCW
		d.pos = detentCWStart
	case d.pos == detentCCWStart && d.dir == rotationCW && aHigh && bHigh:
		d.reset()
		return entity.ActionRight, true
	case d.pos == detentRest && aHigh && !bHigh:
		d.dir = rotationCCW
		d.pos = detentCCWStart
	case d.pos == detentCWStart && d.dir == rotationCCW && aHigh && bHigh:
		d.reset()
		return entity.ActionLeft, true

	// Inconsistent or partial transitions only track position.
	case aHigh && bHigh:
		d.reset()
	case !aHigh && bHigh:
		d.pos = detentCWStart
	case !aHigh && !bHigh:
		d.pos = detentHalfway
	default:
		d.pos = detentCCWStart
	}
	return entity.ActionNone, false
}

func (d *Decoder) reset() {
	d.pos = detentRest
	d.dir = rotationNone
}

// Button turns an active-low push button line into Hook actions, one per press.
type Button struct {
	pressed bool
}

// Sample feeds the current line level. It returns Hook on the press edge.
func (b *Button) Sample(high bool) (entity.Action, bool) {
	down := !high
	edge := down && !b.pressed
	b.pressed = down
	if edge {
		return entity.ActionHook, true
	}
	return entity.ActionNone, false
}

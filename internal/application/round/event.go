package round

import "github.com/younwookim/hookarcade/internal/domain/entity"

// EventKind identifies a notable round transition or outcome
type EventKind int

const (
	EventRoundStarted EventKind = iota
	EventHooked
	EventMissed
	EventReeled
	EventEscaped
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventRoundStarted:
		return "RoundStarted"
	case EventHooked:
		return "Hooked"
	case EventMissed:
		return "Missed"
	case EventReeled:
		return "Reeled"
	case EventEscaped:
		return "Escaped"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is reported through Controller.OnEvent after the tick that caused it.
type Event struct {
	Kind     EventKind
	Category entity.Category // hooked, reeled or escaped category
	Points   int32           // score delta applied, if any
	Score    int32           // score after the event
	Seed     uint64          // spawner seed, for RoundStarted
}

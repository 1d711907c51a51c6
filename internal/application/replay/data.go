package replay

import (
	"fmt"
	"strings"

	"github.com/younwookim/hookarcade/internal/domain/clock"
	"github.com/younwookim/hookarcade/internal/domain/entity"
)

// Version is written into every recording
const Version = "2.0"

// Frame records one executed tick
type Frame struct {
	T uint64 `json:"t" msgpack:"t"`                     // Tick timestamp (µs)
	A string `json:"a,omitempty" msgpack:"a,omitempty"` // Applied actions as symbols, e.g. "LLH"
}

// Instant returns the tick timestamp.
func (f Frame) Instant() clock.Instant { return clock.Instant(f.T) }

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string  `json:"version" msgpack:"version"`
	Seed      uint64  `json:"seed" msgpack:"seed"`
	Target    string  `json:"target" msgpack:"target"`
	StartTime string  `json:"startTime" msgpack:"startTime"`
	Frames    []Frame `json:"frames" msgpack:"frames"`
}

// EncodeActions packs actions into their symbol string. None is skipped.
func EncodeActions(actions []entity.Action) string {
	if len(actions) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range actions {
		if a.IsSome() {
			b.WriteByte(a.Symbol())
		}
	}
	return b.String()
}

// DecodeActions unpacks a symbol string.
func DecodeActions(s string) ([]entity.Action, error) {
	if s == "" {
		return nil, nil
	}
	out := make([]entity.Action, 0, len(s))
	for i := 0; i < len(s); i++ {
		a := entity.ActionFromSymbol(s[i])
		if !a.IsSome() {
			return nil, fmt.Errorf("unknown action symbol %q at %d", s[i], i)
		}
		out = append(out, a)
	}
	return out, nil
}

package replay

import (
	"fmt"

	"github.com/younwookim/hookarcade/internal/application/round"
	"github.com/younwookim/hookarcade/internal/domain/clock"
)

// Replayer feeds recorded ticks back into a controller
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// NewController builds a controller seeded like the recorded session.
func (r *Replayer) NewController(cfg round.Config) *round.Controller {
	cfg.Seed = r.data.Seed
	return round.New(cfg)
}

// Advance steps c through every remaining frame recorded at or before upTo
// and returns the number of frames applied.
func (r *Replayer) Advance(c *round.Controller, upTo clock.Instant) (int, error) {
	n := 0
	for r.frame < len(r.data.Frames) {
		f := r.data.Frames[r.frame]
		if f.Instant() > upTo {
			break
		}
		actions, err := DecodeActions(f.A)
		if err != nil {
			return n, fmt.Errorf("frame %d: %w", r.frame, err)
		}
		c.Step(f.Instant(), actions)
		r.frame++
		n++
	}
	return n, nil
}

// Run steps c through all remaining frames.
func (r *Replayer) Run(c *round.Controller) error {
	if len(r.data.Frames) == 0 {
		return nil
	}
	_, err := r.Advance(c, r.data.Frames[len(r.data.Frames)-1].Instant())
	return err
}

// Done reports whether every frame has been applied
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() uint64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/younwookim/hookarcade/internal/domain/clock"
	"github.com/younwookim/hookarcade/internal/domain/entity"
)

// ErrEmpty is returned when saving a recording without frames
var ErrEmpty = errors.New("no frames to save")

// Recorder captures executed ticks for replay
type Recorder struct {
	data ReplayData
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed uint64, target string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Target:    target,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 3600), // ~1 minute at 60 ticks/s
		},
	}
}

// RecordTick records one executed tick and the actions applied in it
func (r *Recorder) RecordTick(now clock.Instant, actions []entity.Action) {
	r.data.Frames = append(r.data.Frames, Frame{T: now.Micros(), A: EncodeActions(actions)})
}

// Save writes the recording to filename
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}
	if err := Save(filename, &r.data); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename(ext string) string {
	return fmt.Sprintf("replay_%s.%s", time.Now().Format("20060102_150405"), ext)
}

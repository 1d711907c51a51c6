package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hookarcade/internal/application/replay"
	"github.com/younwookim/hookarcade/internal/application/round"
	"github.com/younwookim/hookarcade/internal/application/scene"
	"github.com/younwookim/hookarcade/internal/application/state"
	"github.com/younwookim/hookarcade/internal/domain/clock"
	"github.com/younwookim/hookarcade/internal/domain/entity"
)

// fakeClock advances one tick interval per reading.
type fakeClock struct {
	now clock.Instant
}

func (c *fakeClock) Now() clock.Instant {
	c.now += 16_000
	return c.now
}

// scriptedSource returns one batch per poll.
type scriptedSource struct {
	batches [][]entity.Action
}

func (s *scriptedSource) Poll() []entity.Action {
	if len(s.batches) == 0 {
		return nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}

type eventLog struct {
	events []round.Event
}

func (l *eventLog) Handle(ev round.Event) {
	l.events = append(l.events, ev)
}

func newTestPlaying(opts Options) *Playing {
	if opts.Now == nil {
		opts.Now = (&fakeClock{}).Now
	}
	if opts.Source == nil {
		opts.Source = &scriptedSource{}
	}
	return New(round.DefaultConfig(), 2, opts)
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := newTestPlaying(Options{})

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
}

func TestPlaying_UpdateFeedsSourceIntoController(t *testing.T) {
	src := &scriptedSource{batches: [][]entity.Action{
		nil,
		{entity.ActionLeft},
		{entity.ActionLeft, entity.ActionLeft},
	}}
	p := newTestPlaying(Options{Source: src})

	for i := 0; i < 3; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}

	// The first update only primes the tick clock; its input was empty.
	assert.InDelta(t, 64-3*2.75, p.Controller().Actor().Location().X, 1e-4)
	assert.Equal(t, uint64(2), p.Controller().Ticks())
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	src := &scriptedSource{batches: [][]entity.Action{nil, {entity.ActionRight}, nil}}
	p := newTestPlaying(Options{RecordPath: path, Source: src})

	require.NotNil(t, p.recorder)
	for i := 0; i < 3; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, p.recorder.FrameCount())

	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "R", data.Frames[0].A)
	assert.Equal(t, Target, data.Target)
}

func TestPlaying_ReplayReproducesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.msgpack")
	var batches [][]entity.Action
	for i := 0; i < 60; i++ {
		batches = append(batches, []entity.Action{entity.ActionLeft})
	}
	batches = append(batches, []entity.Action{entity.ActionHook})

	live := newTestPlaying(Options{RecordPath: path, Source: &scriptedSource{batches: batches}})
	for i := 0; i < 200; i++ {
		_, _ = live.Update(1.0 / 60.0)
	}
	live.OnExit()
	require.Equal(t, state.PhaseActive, live.Controller().Round().Phase())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	sounds := &eventLog{}
	played := newTestPlaying(Options{Replay: data, Sounds: sounds})
	for i := 0; i < 200; i++ {
		_, err := played.Update(1.0 / 60.0)
		require.NoError(t, err)
	}

	assert.True(t, played.replayDone)
	assert.Equal(t, live.Controller().Round(), played.Controller().Round())
	assert.Equal(t, live.Controller().Actor().Location(), played.Controller().Actor().Location())
	require.NotEmpty(t, sounds.events)
	assert.Equal(t, round.EventRoundStarted, sounds.events[0].Kind)
}

func TestPlaying_OnEnterOnExit(t *testing.T) {
	p := newTestPlaying(Options{})

	assert.NotPanics(t, func() {
		p.OnEnter()
		p.OnExit()
	})
}

func TestPlaying_RestartReplayPlaysFromStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	var batches [][]entity.Action
	for i := 0; i < 40; i++ {
		batches = append(batches, []entity.Action{entity.ActionLeft})
	}
	live := newTestPlaying(Options{RecordPath: path, Source: &scriptedSource{batches: batches}})
	for i := 0; i < 100; i++ {
		_, _ = live.Update(1.0 / 60.0)
	}
	live.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	clk := &fakeClock{}
	played := newTestPlaying(Options{Replay: data, Now: clk.Now})
	for i := 0; i < 50; i++ {
		_, err := played.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	require.Greater(t, played.replayer.CurrentFrame(), 0)

	played.restartReplay(clk.now)
	assert.Zero(t, played.replayer.CurrentFrame())
	assert.Zero(t, played.Controller().Ticks())
	assert.Equal(t, state.PhaseInit, played.Controller().Round().Phase())

	for i := 0; i < 120; i++ {
		_, err := played.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	assert.True(t, played.replayDone)
	assert.Equal(t, live.Controller().Ticks(), played.Controller().Ticks())
	assert.Equal(t, live.Controller().Actor().Location(), played.Controller().Actor().Location())
}

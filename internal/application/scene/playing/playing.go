// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/hookarcade/internal/application/input"
	"github.com/younwookim/hookarcade/internal/application/replay"
	"github.com/younwookim/hookarcade/internal/application/round"
	"github.com/younwookim/hookarcade/internal/application/scene"
	"github.com/younwookim/hookarcade/internal/domain/clock"
	"github.com/younwookim/hookarcade/internal/infrastructure/render"
)

// Target is the tick-interval profile the windowed build uses.
const Target = "window"

// EventHandler receives round events, e.g. the audio player.
type EventHandler interface {
	Handle(ev round.Event)
}

// Options configures a Playing scene
type Options struct {
	RecordPath string               // record executed ticks to this file
	Replay     *replay.ReplayData   // play this recording instead of live input
	Source     input.Source         // live input
	Sounds     EventHandler         // optional
	Now        func() clock.Instant // defaults to time since the scene was created
}

// Playing is the main gameplay scene
type Playing struct {
	cfg        round.Config
	controller *round.Controller
	queue      *input.Queue
	source     input.Source
	surface    *render.Surface
	sounds     EventHandler
	now        func() clock.Instant
	paused     bool

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	// Playback
	replayer   *replay.Replayer
	replayBase clock.Instant // scene time the replay restarted at
	replayDone bool
}

// New creates a new Playing scene.
func New(cfg round.Config, scale int, opts Options) *Playing {
	p := &Playing{
		cfg:            cfg,
		queue:          input.NewQueue(),
		source:         opts.Source,
		surface:        render.NewSurface(scale),
		sounds:         opts.Sounds,
		now:            opts.Now,
		recordFilename: opts.RecordPath,
	}
	if p.now == nil {
		start := time.Now()
		p.now = func() clock.Instant { return clock.FromDuration(time.Since(start)) }
	}

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.controller = p.replayer.NewController(cfg)
		log.Printf("Replaying %d ticks (seed: %d)", p.replayer.TotalFrames(), p.replayer.Seed())
	} else {
		p.controller = round.New(cfg)
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" && p.replayer == nil {
		p.recorder = replay.NewRecorder(cfg.Seed, Target)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, cfg.Seed)
	}

	p.controller.OnEvent = p.onEvent
	return p
}

// Controller exposes the simulation, mainly for tests.
func (p *Playing) Controller() *round.Controller { return p.controller }

func (p *Playing) onEvent(ev round.Event) {
	switch ev.Kind {
	case round.EventRoundStarted:
		log.Printf("Round started (seed: %d)", ev.Seed)
	case round.EventGameOver:
		log.Printf("Game over (score: %d)", ev.Score)
		// Auto-save recording on game over
		p.saveRecording()
	}
	if p.sounds != nil {
		p.sounds.Handle(ev)
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	// R: Watch the replay again from the start
	if p.replayer != nil && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.restartReplay(p.now())
	}
	if p.paused {
		return nil, nil
	}

	return nil, p.step(p.now())
}

func (p *Playing) step(now clock.Instant) error {
	if p.replayer != nil {
		if _, err := p.replayer.Advance(p.controller, now-p.replayBase); err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		if p.replayer.Done() && !p.replayDone {
			p.replayDone = true
			log.Printf("Replay finished: %s", p.controller.Round())
		}
		return nil
	}

	if p.source != nil {
		input.Pump(p.source, p.queue)
	}
	actions, ok := p.controller.Update(now, p.queue)
	if ok && p.recorder != nil {
		p.recorder.RecordTick(now, actions)
	}
	return nil
}

// restartReplay rewinds playback to the first frame on a fresh controller,
// with recorded time counted from now.
func (p *Playing) restartReplay(now clock.Instant) {
	p.replayer.Reset()
	p.controller = p.replayer.NewController(p.cfg)
	p.controller.OnEvent = p.onEvent
	p.replayBase = now
	p.replayDone = false
	log.Printf("Replay restarted (seed: %d)", p.replayer.Seed())
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename("json")
	}

	if err := p.recorder.Save(filename); err != nil {
		if !errors.Is(err, replay.ErrEmpty) {
			log.Printf("Failed to save recording: %v", err)
		}
		return
	}
	log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.surface.Begin(screen)
	p.controller.Draw(p.surface)

	switch {
	case p.paused:
		ebitenutil.DebugPrint(screen, "PAUSED")
	case p.replayer != nil:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames()))
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

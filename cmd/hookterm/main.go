// Command hookterm plays the arcade in a text terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/hookarcade/configs"
	"github.com/younwookim/hookarcade/internal/application/input"
	"github.com/younwookim/hookarcade/internal/application/replay"
	"github.com/younwookim/hookarcade/internal/application/round"
	"github.com/younwookim/hookarcade/internal/domain/clock"
	"github.com/younwookim/hookarcade/internal/infrastructure/audio"
	"github.com/younwookim/hookarcade/internal/infrastructure/config"
	"github.com/younwookim/hookarcade/internal/infrastructure/terminal"
)

const (
	target    = "terminal"
	frameRate = 16 * time.Millisecond
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file")
	seedFlag := flag.Uint64("seed", 0, "Override the spawner seed")
	mute := flag.Bool("mute", false, "Disable sound")
	knob := flag.Bool("knob", false, "Decode input through an emulated rotary encoder")
	flag.Parse()

	cfg, err := config.NewFSLoader(configs.FS, "configs").LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	roundCfg := round.ConfigFrom(cfg, target)
	if *seedFlag != 0 {
		roundCfg.Seed = *seedFlag
	}

	// Logs would corrupt the screen; send them to a file when asked.
	if path := os.Getenv("HOOKTERM_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer terminal.Restore(screen)
	screen.EnableMouse()
	screen.HideCursor()

	controller := round.New(roundCfg)
	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder(roundCfg.Seed, target)
	}

	var player *audio.Player
	if !*mute && cfg.Arcade.Audio.Enabled {
		player = audio.NewPlayer(cfg.Arcade.Audio)
		if err := player.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
			player = nil
		}
	}
	controller.OnEvent = func(ev round.Event) {
		log.Printf("round: %s score=%d", ev.Kind, ev.Score)
		if player != nil {
			player.Handle(ev)
		}
	}

	queue := input.NewQueue()
	done := make(chan struct{})
	listener := terminal.NewListener(queue)
	if *knob {
		listener.UseKnob()
	}
	go listener.Run(screen, done)

	field := roundCfg.Field
	surface := terminal.NewSurface(int(field.Width), int(field.Height))
	start := time.Now()

	ticker := time.NewTicker(frameRate)
loop:
	for {
		select {
		case <-done:
			break loop
		case <-ticker.C:
			now := clock.FromDuration(time.Since(start))
			if actions, ok := controller.Update(now, queue); ok && recorder != nil {
				recorder.RecordTick(now, actions)
			}
			surface.Clear()
			controller.Draw(surface)
			surface.Flush(screen, 0, 0)
		}
	}
	ticker.Stop()
	screen.Fini()

	if player != nil {
		player.Cleanup()
	}
	if recorder != nil {
		if err := recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			fmt.Printf("Recording saved to %s (%d frames)\n", *recordFlag, recorder.FrameCount())
		}
	}
	fmt.Printf("%s after %d ticks: score %d\n", controller.Round(), controller.Ticks(), controller.Round().Score())
}

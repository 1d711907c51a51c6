package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hookarcade/configs"
	"github.com/younwookim/hookarcade/internal/application/game"
	"github.com/younwookim/hookarcade/internal/application/replay"
	"github.com/younwookim/hookarcade/internal/application/round"
	"github.com/younwookim/hookarcade/internal/application/scene"
	"github.com/younwookim/hookarcade/internal/application/scene/playing"
	"github.com/younwookim/hookarcade/internal/application/scene/splash"
	"github.com/younwookim/hookarcade/internal/application/system"
	"github.com/younwookim/hookarcade/internal/infrastructure/audio"
	"github.com/younwookim/hookarcade/internal/infrastructure/config"
)

// pixelScale magnifies the 128x64 playfield so the HUD font fits.
const pixelScale = 2

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record run.json or run.msgpack)")
	replayFlag := flag.String("replay", "", "Play back a recording")
	headless := flag.Bool("headless", false, "With -replay: simulate without a window and print the result")
	seedFlag := flag.Uint64("seed", 0, "Override the spawner seed")
	mute := flag.Bool("mute", false, "Disable sound")
	configDir := flag.String("config", "", "Load configuration from this directory instead of the embedded one")
	flag.Parse()

	// Load configurations, embedded unless a directory is given
	loader := config.NewFSLoader(configs.FS, "configs")
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	roundCfg := round.ConfigFrom(cfg, playing.Target)
	if *seedFlag != 0 {
		roundCfg.Seed = *seedFlag
	}

	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
	}

	if *headless {
		if data == nil {
			log.Fatal("-headless needs -replay")
		}
		r, ticks, err := playback(data, roundCfg)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Printf("%s after %d ticks: score %d, health %d\n", r, ticks, r.Score(), r.Health())
		return
	}

	var sounds playing.EventHandler
	if !*mute && cfg.Arcade.Audio.Enabled {
		player := audio.NewPlayer(cfg.Arcade.Audio)
		if err := player.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Cleanup()
			sounds = player
		}
	}

	display := cfg.Arcade.Display
	newPlaying := func() scene.Scene {
		return playing.New(roundCfg, pixelScale, playing.Options{
			RecordPath: *recordFlag,
			Replay:     data,
			Source:     system.NewInputSystem(cfg.Arcade.Input),
			Sounds:     sounds,
		})
	}
	g := game.New(splash.New(pixelScale, splash.DefaultDuration, newPlaying),
		display.ScreenWidth*pixelScale, display.ScreenHeight*pixelScale)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Hook Arcade")
	g.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game stopped: %v", err)
	}
}

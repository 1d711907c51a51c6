package round

import (
	"time"

	"github.com/younwookim/hookarcade/internal/application/system"
	"github.com/younwookim/hookarcade/internal/domain/entity"
	"github.com/younwookim/hookarcade/internal/infrastructure/config"
)

// Config holds everything a Controller needs. Values are in playfield pixels
// and ticks unless noted.
type Config struct {
	Field           entity.Playfield
	MinTickInterval time.Duration
	Actor           entity.ActorConfig
	Spawner         system.SpawnerConfig
	Seed            uint64
	ReseedStep      uint64 // added to the seed on every restart after game over
	MissPenalty     int32
	Selector        entity.Point
	CharWidth       int // HUD glyph advance, for right-aligned text
}

// DefaultConfig returns the stock 128x64 configuration.
func DefaultConfig() Config {
	field := entity.Playfield{Width: 128, Height: 64}
	return Config{
		Field:           field,
		MinTickInterval: 16 * time.Millisecond,
		Actor: entity.ActorConfig{
			Field:         field,
			Start:         entity.NewPoint(64, 51),
			Width:         18,
			Height:        13,
			WalkSpeed:     2.75,
			HookSpeed:     2.0,
			WalkBoost:     0.15,
			HookBoost:     0.1,
			ReelFactor:    1.2,
			HookWidth:     5,
			HookBoxOffset: 5,
			HookBoxHeight: 3,
		},
		Spawner: system.SpawnerConfig{
			Field:           field,
			Period:          6 * time.Second,
			BaseSpeed:       0.65,
			SpeedStep:       0.25,
			Lanes:           [2]float32{28, 10},
			UpperLaneChance: 0.3,
			CreepWidth:      13,
			CreepHeight:     11,
			Reward:          entity.DefaultReward,
		},
		Seed:        123489,
		ReseedStep:  73432,
		MissPenalty: 10,
		Selector:    entity.NewPoint(0, 24),
		CharWidth:   4,
	}
}

// ConfigFrom converts the loaded game configuration. target selects the tick
// interval of a deployment ("window", "terminal", "browser"). A zero tick
// interval, reseed step or HUD char width keeps the stock value.
func ConfigFrom(cfg *config.GameConfig, target string) Config {
	arcade, ents := cfg.Arcade, cfg.Entities
	field := entity.Playfield{
		Width:  float32(arcade.Display.ScreenWidth),
		Height: float32(arcade.Display.ScreenHeight),
	}
	a := ents.Actor
	sp := arcade.Spawner
	out := Config{
		Field:           field,
		MinTickInterval: arcade.Tick.Interval(target),
		Actor: entity.ActorConfig{
			Field:         field,
			Start:         entity.NewPoint(a.Start.X, a.Start.Y),
			Width:         uint8(a.Width),
			Height:        uint8(a.Height),
			WalkSpeed:     float32(a.WalkSpeed),
			HookSpeed:     float32(a.HookSpeed),
			WalkBoost:     float32(a.WalkBoost),
			HookBoost:     float32(a.HookBoost),
			ReelFactor:    float32(a.ReelFactor),
			HookWidth:     uint8(ents.Hook.Width),
			HookBoxOffset: float32(ents.Hook.HitboxOffsetY),
			HookBoxHeight: float32(ents.Hook.HitboxHeight),
		},
		Spawner: system.SpawnerConfig{
			Field:           field,
			Period:          time.Duration(sp.PeriodMs) * time.Millisecond,
			BaseSpeed:       float32(sp.BaseSpeed),
			SpeedStep:       float32(sp.SpeedStep),
			Lanes:           [2]float32{float32(sp.Lanes.Lower), float32(sp.Lanes.Upper)},
			UpperLaneChance: sp.UpperLaneChance,
			CreepWidth:      uint8(ents.Creep.Width),
			CreepHeight:     uint8(ents.Creep.Height),
			Reward:          uint16(ents.Creep.Reward),
		},
		Seed:        sp.Seed,
		ReseedStep:  arcade.Round.ReseedStep,
		MissPenalty: int32(arcade.Round.MissPenalty),
		Selector:    entity.NewPoint(arcade.Round.Selector.X, arcade.Round.Selector.Y),
		CharWidth:   arcade.HUD.CharWidth,
	}

	def := DefaultConfig()
	if out.MinTickInterval <= 0 {
		out.MinTickInterval = def.MinTickInterval
	}
	if out.ReseedStep == 0 {
		out.ReseedStep = def.ReseedStep
	}
	if out.CharWidth <= 0 {
		out.CharWidth = def.CharWidth
	}
	return out
}

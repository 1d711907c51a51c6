package config

import "time"

// ArcadeConfig is the root config for arcade.json
type ArcadeConfig struct {
	Display DisplayConfig `json:"display"`
	Tick    TickConfig    `json:"tick"`
	Round   RoundConfig   `json:"round"`
	Spawner SpawnerConfig `json:"spawner"`
	HUD     HUDConfig     `json:"hud"`
	Input   InputConfig   `json:"input"`
	Audio   AudioConfig   `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// TickConfig sets the minimum interval between simulation ticks.
// Overrides are keyed by deployment target ("browser", "terminal", ...).
type TickConfig struct {
	IntervalMicros int64            `json:"intervalMicros"`
	Overrides      map[string]int64 `json:"overrides"`
}

// Interval returns the tick interval for target, falling back to the default.
func (t TickConfig) Interval(target string) time.Duration {
	us := t.IntervalMicros
	if v, ok := t.Overrides[target]; ok {
		us = v
	}
	return time.Duration(us) * time.Microsecond
}

type RoundConfig struct {
	MissPenalty int     `json:"missPenalty"`
	ReseedStep  uint64  `json:"reseedStep"`
	Selector    PointXY `json:"selector"`
}

type SpawnerConfig struct {
	PeriodMs        int64       `json:"periodMs"`
	BaseSpeed       float64     `json:"baseSpeed"`
	SpeedStep       float64     `json:"speedStep"`
	Lanes           LanesConfig `json:"lanes"`
	UpperLaneChance float64     `json:"upperLaneChance"`
	Seed            uint64      `json:"seed"`
}

// LanesConfig holds the top-edge y of the two spawn lanes
type LanesConfig struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

type HUDConfig struct {
	CharWidth int `json:"charWidth"`
}

// InputConfig sets key auto-repeat for held movement keys, in frames
type InputConfig struct {
	RepeatDelay    int `json:"repeatDelay"`
	RepeatInterval int `json:"repeatInterval"`
}

// AudioConfig configures the tone cues played on round events
type AudioConfig struct {
	Enabled    bool                 `json:"enabled"`
	SampleRate int                  `json:"sampleRate"`
	Volume     float64              `json:"volume"`
	Cues       map[string]CueConfig `json:"cues"`
}

type CueConfig struct {
	FreqHz     float64 `json:"freqHz"`
	DurationMs int     `json:"durationMs"`
}

type PointXY struct {
	X int `json:"x"`
	Y int `json:"y"`
}

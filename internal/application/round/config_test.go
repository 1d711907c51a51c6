package round

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/hookarcade/internal/infrastructure/config"
)

func newGameConfig() *config.GameConfig {
	cfg := &config.GameConfig{
		Arcade:   &config.ArcadeConfig{},
		Entities: &config.EntitiesConfig{},
	}
	cfg.Arcade.Display = config.DisplayConfig{ScreenWidth: 128, ScreenHeight: 64}
	return cfg
}

func TestConfigFrom_ZeroValuesKeepDefaults(t *testing.T) {
	cfg := newGameConfig()

	got := ConfigFrom(cfg, "window")

	def := DefaultConfig()
	assert.Equal(t, def.MinTickInterval, got.MinTickInterval)
	assert.Equal(t, def.ReseedStep, got.ReseedStep)
	assert.Equal(t, def.CharWidth, got.CharWidth)
}

func TestConfigFrom_TargetOverride(t *testing.T) {
	cfg := newGameConfig()
	cfg.Arcade.Tick = config.TickConfig{
		IntervalMicros: 20_000,
		Overrides:      map[string]int64{"browser": 1_000},
	}
	cfg.Arcade.HUD.CharWidth = 6

	assert.Equal(t, 20*time.Millisecond, ConfigFrom(cfg, "terminal").MinTickInterval)
	assert.Equal(t, time.Millisecond, ConfigFrom(cfg, "browser").MinTickInterval)
	assert.Equal(t, 6, ConfigFrom(cfg, "window").CharWidth)
}

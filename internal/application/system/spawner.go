package system

import (
	"math/rand"
	"time"

	"github.com/younwookim/hookarcade/internal/domain/clock"
	"github.com/younwookim/hookarcade/internal/domain/entity"
)

// SpawnerConfig configures creep generation
type SpawnerConfig struct {
	Field           entity.Playfield
	Period          time.Duration // nominal time between spawns
	BaseSpeed       float32       // initial creep speed in pixels per tick
	SpeedStep       float32       // added to the base speed after every spawn
	Lanes           [2]float32    // lower and upper lane y
	UpperLaneChance float64
	CreepWidth      uint8
	CreepHeight     uint8
	Reward          uint16 // starting reward; zero keeps entity.DefaultReward
}

// Spawner generates creeps at jittered intervals with a speed ramp.
// For a fixed seed and sequence of timestamps the generated creeps are
// reproducible.
type Spawner struct {
	cfg       SpawnerConfig
	baseSpeed float32
	rng       *rand.Rand
	lastID    entity.ID
	lastSpawn clock.Instant
}

// NewSpawner creates a spawner whose spawn timer starts at start.
func NewSpawner(cfg SpawnerConfig, seed uint64, start clock.Instant) *Spawner {
	return &Spawner{
		cfg:       cfg,
		baseSpeed: cfg.BaseSpeed,
		rng:       rand.New(rand.NewSource(int64(seed))),
		lastSpawn: start,
	}
}

// BaseSpeed returns the current base speed.
func (s *Spawner) BaseSpeed() float32 { return s.baseSpeed }


// maxDeviation is the exclusive upper bound of the spawn jitter in milliseconds
func (s *Spawner) maxDeviation() int64 {
	return s.cfg.Period.Milliseconds() / 3
}

func (s *Spawner) due(now clock.Instant) bool {
	elapsed := now.MustSince(s.lastSpawn).Milliseconds()
	var jitter int64
	if dev := s.maxDeviation(); dev > 0 {
		jitter = s.rng.Int63n(dev)
	}
	return elapsed+jitter > s.cfg.Period.Milliseconds()
}

// TrySpawn returns a new creep when the jittered spawn period has elapsed.
func (s *Spawner) TrySpawn(now clock.Instant) (*entity.Entity, bool) {
	if !s.due(now) {
		return nil, false
	}
	s.lastSpawn = now
	s.baseSpeed += s.cfg.SpeedStep
	return s.randomCreep(), true
}

func (s *Spawner) randomCreep() *entity.Entity {
	s.lastID++

	upper := s.rng.Float64() < s.cfg.UpperLaneChance
	goRight := s.rng.Float64() < 0.5

	y := s.cfg.Lanes[0]
	if upper {
		y = s.cfg.Lanes[1]
	}

	speed := s.baseSpeed + float32(s.rng.Float64())
	x := float32(0)
	if !goRight {
		x = s.cfg.Field.Width
		speed = -speed
	}

	// Only the friendly archetype is generated for now.
	c := entity.NewCreep(s.lastID, entity.Point{X: x, Y: y}, entity.FactionRadiant, speed, s.cfg.CreepWidth, s.cfg.CreepHeight)
	if s.cfg.Reward > 0 {
		c.Reward = s.cfg.Reward
	}
	return c
}

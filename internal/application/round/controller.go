// Package round runs the hook-arcade simulation: it owns the round state,
// the actor, the entity registry and the spawner, and advances them one
// tick at a time.
package round

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/younwookim/hookarcade/internal/application/input"
	"github.com/younwookim/hookarcade/internal/application/state"
	"github.com/younwookim/hookarcade/internal/application/system"
	"github.com/younwookim/hookarcade/internal/domain/clock"
	"github.com/younwookim/hookarcade/internal/domain/entity"
)

// SelectorID is the registry id of the start/restart selector.
const SelectorID entity.ID = 0

// GameOverText is shown under the final score.
const GameOverText = "GAME OVER, TRY AGAIN?"

// Controller advances the simulation. It is not safe for concurrent use;
// actions from other goroutines go through an input.Queue.
type Controller struct {
	cfg      Config
	round    state.Round
	seed     uint64
	actor    *entity.Actor
	registry *entity.Registry
	spawner  *system.Spawner

	last    clock.Instant
	primed  bool
	ticks   uint64
	escaped []entity.ID

	// OnEvent is called for every round event, if set.
	OnEvent func(Event)
}

// New creates a controller in the Init phase.
func New(cfg Config) *Controller {
	return &Controller{
		cfg:      cfg,
		round:    state.NewRound(),
		seed:     cfg.Seed,
		actor:    entity.NewActor(cfg.Actor),
		registry: entity.NewRegistry(),
	}
}

// Round returns the current round state.
func (c *Controller) Round() state.Round { return c.round }

// Actor returns the player-controlled actor.
func (c *Controller) Actor() *entity.Actor { return c.actor }

// Registry returns the live entities.
func (c *Controller) Registry() *entity.Registry { return c.registry }

// Seed returns the seed the next or current spawner uses.
func (c *Controller) Seed() uint64 { return c.seed }

// Ticks returns the number of executed ticks.
func (c *Controller) Ticks() uint64 { return c.ticks }

// Field returns the playfield size.
func (c *Controller) Field() entity.Playfield { return c.cfg.Field }

// Control forwards an action to the actor. Non-walking actors ignore it.
func (c *Controller) Control(a entity.Action) {
	c.actor.Act(a)
}

// Due reports whether a tick at now would execute. The first call on a fresh
// controller only sets the reference time.
func (c *Controller) Due(now clock.Instant) bool {
	if !c.primed {
		c.last = now
		c.primed = true
		return false
	}
	return now.MustSince(c.last) >= c.cfg.MinTickInterval
}

// Update drains q and runs one tick when due. Actions stay queued while the
// tick is gated. It returns the applied actions and whether a tick ran.
func (c *Controller) Update(now clock.Instant, q *input.Queue) ([]entity.Action, bool) {
	if !c.Due(now) {
		return nil, false
	}
	batch := q.Drain()
	actions := batch.Actions()
	c.Step(now, actions)
	return actions, true
}

// Step applies actions in order and runs one tick at now without gating.
// Replays call it directly with recorded frames.
func (c *Controller) Step(now clock.Instant, actions []entity.Action) {
	if c.primed {
		now.MustSince(c.last)
	}
	for _, a := range actions {
		c.Control(a)
	}
	c.last = now
	c.primed = true
	c.ticks++

	switch c.round.Phase() {
	case state.PhaseInit, state.PhaseGameOver:
		c.selectorTick(now)
	case state.PhaseActive:
		c.mainTick(now)
	}
}

func (c *Controller) selectorTick(now clock.Instant) {
	if !c.round.Started() {
		selector := entity.NewCreep(SelectorID, c.cfg.Selector, entity.FactionRadiant, 0,
			c.cfg.Spawner.CreepWidth, c.cfg.Spawner.CreepHeight)
		c.registry.Insert(selector)
		c.round.SetStarted()
	}

	r, ok := c.actor.Tick(c.registry).(entity.Reeled)
	if !ok || !r.Caught {
		return
	}

	if c.round.Phase() == state.PhaseGameOver {
		c.seed += c.cfg.ReseedStep
		c.actor = entity.NewActor(c.cfg.Actor)
	}
	c.registry.Clear()
	c.spawner = system.NewSpawner(c.cfg.Spawner, c.seed, now)
	c.round.Next()
	c.emit(Event{Kind: EventRoundStarted, Seed: c.seed})
}

func (c *Controller) mainTick(now clock.Instant) {
	switch sig := c.actor.Tick(c.registry).(type) {
	case entity.Hooked:
		var points int32
		if sig.Entity.Category.IsFriendlyCreep() {
			points = toPoints(sig.Entity.Score(c.cfg.Field))
			c.round.AddScore(points)
		}
		c.emit(Event{Kind: EventHooked, Category: sig.Entity.Category, Points: points})
	case entity.Missed:
		c.round.AddScore(-c.cfg.MissPenalty)
		c.emit(Event{Kind: EventMissed, Points: -c.cfg.MissPenalty})
	case entity.Reeled:
		c.emit(Event{Kind: EventReeled, Category: sig.Category})
	}

	c.escaped = c.escaped[:0]
	c.registry.Each(func(e *entity.Entity) {
		if e.Tick(c.cfg.Field) {
			c.escaped = append(c.escaped, e.ID)
		}
	})
	for _, id := range c.escaped {
		e, ok := c.registry.Remove(id)
		if !ok {
			panic(fmt.Sprintf("round: escaped entity %d vanished", id))
		}
		if !e.Category.IsFriendlyCreep() || c.round.Phase() != state.PhaseActive {
			continue
		}
		c.round.Damage()
		c.emit(Event{Kind: EventEscaped, Category: e.Category})
	}

	if c.round.Phase() != state.PhaseActive {
		c.gameOver()
		return
	}

	if creep, ok := c.spawner.TrySpawn(now); ok {
		c.registry.Insert(creep)
	}
}

// gameOver drops everything still on the field, including a catch in flight,
// so ids can be reused and a stale catch can't restart the round.
func (c *Controller) gameOver() {
	c.registry.Clear()
	c.actor = entity.NewActor(c.cfg.Actor)
	c.spawner = nil
	c.emit(Event{Kind: EventGameOver})
}

func (c *Controller) emit(ev Event) {
	ev.Score = c.round.Score()
	if c.OnEvent != nil {
		c.OnEvent(ev)
	}
}

func toPoints(p uint32) int32 {
	if p > math.MaxInt32 {
		panic(fmt.Sprintf("round: points too large: %d", p))
	}
	return int32(p)
}

// Draw renders the HUD for the current phase, then every entity, then the actor.
func (c *Controller) Draw(s entity.Surface) {
	switch c.round.Phase() {
	case state.PhaseInit:
		s.DrawSprite(entity.SpriteSplash, image.Point{})
	case state.PhaseActive:
		s.DrawText(strconv.Itoa(int(c.round.Score())), image.Pt(2, 4))
		hp := HealthText(c.round.Health())
		x := int(c.cfg.Field.Width) - 4 - len(hp)*c.cfg.CharWidth
		s.DrawText(hp, image.Pt(x, 6))
	case state.PhaseGameOver:
		s.DrawText(strconv.Itoa(int(c.round.Score())), image.Pt(64, 4))
		s.DrawText(GameOverText, image.Pt(36, 32))
	}

	c.registry.Each(func(e *entity.Entity) {
		e.Draw(s)
	})
	c.actor.Draw(s)
}

// HealthText renders health as repeated hearts.
func HealthText(health uint8) string {
	return strings.Repeat("<3 ", int(health))
}

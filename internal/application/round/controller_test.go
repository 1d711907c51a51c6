package round

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hookarcade/internal/application/input"
	"github.com/younwookim/hookarcade/internal/application/state"
	"github.com/younwookim/hookarcade/internal/application/system"
	"github.com/younwookim/hookarcade/internal/domain/clock"
	"github.com/younwookim/hookarcade/internal/domain/entity"
)

const tick = clock.Instant(16_000)

// newActive returns a controller already in an active round with a fresh
// spawner started at zero.
func newActive(t *testing.T, score int32, health uint8) *Controller {
	t.Helper()
	c := New(DefaultConfig())
	c.round = state.Active(score, health)
	c.spawner = system.NewSpawner(c.cfg.Spawner, c.seed, 0)
	return c
}

// driveSelector walks the actor onto the selector and hooks it, returning the
// timestamp of the last executed tick.
func driveSelector(t *testing.T, c *Controller, now clock.Instant) clock.Instant {
	t.Helper()
	for i := 0; i < 40 && c.Actor().Location().X > 0; i++ {
		now += tick
		c.Step(now, []entity.Action{entity.ActionLeft})
	}
	require.Zero(t, c.Actor().Location().X)

	now += tick
	c.Step(now, []entity.Action{entity.ActionHook})
	for i := 0; i < 60 && c.Round().Phase() != state.PhaseActive; i++ {
		now += tick
		c.Step(now, nil)
	}
	require.Equal(t, state.PhaseActive, c.Round().Phase())
	return now
}

func collectEvents(c *Controller) *[]Event {
	var events []Event
	c.OnEvent = func(ev Event) {
		events = append(events, ev)
	}
	return &events
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestController_UpdateGatesOnMinInterval(t *testing.T) {
	c := New(DefaultConfig())
	q := input.NewQueue()
	ran := func(now clock.Instant) bool {
		_, ok := c.Update(now, q)
		return ok
	}

	assert.False(t, ran(0), "first call only sets the reference time")
	assert.False(t, ran(10_000))
	assert.True(t, ran(16_000))
	assert.False(t, ran(20_000), "gated from the previous executed tick")
	assert.False(t, ran(31_999))
	assert.True(t, ran(32_000))
	assert.Equal(t, uint64(2), c.Ticks())
}

func TestController_UpdatePanicsOnBackwardTime(t *testing.T) {
	c := New(DefaultConfig())
	q := input.NewQueue()
	c.Update(50_000, q)

	assert.Panics(t, func() {
		c.Update(40_000, q)
	})
}

func TestController_UpdateKeepsActionsWhileGated(t *testing.T) {
	c := New(DefaultConfig())
	q := input.NewQueue()
	q.Push(entity.ActionLeft)

	actions, ok := c.Update(0, q)
	assert.False(t, ok)
	assert.Nil(t, actions)

	actions, ok = c.Update(16_000, q)
	require.True(t, ok)
	assert.Equal(t, []entity.Action{entity.ActionLeft}, actions)
	assert.InDelta(t, 64-2.75, c.Actor().Location().X, 1e-5)

	b := q.Drain()
	assert.Zero(t, b.Len(), "applied actions are drained")
}

func TestController_InitPlacesSelector(t *testing.T) {
	c := New(DefaultConfig())
	c.Step(tick, nil)

	assert.True(t, c.Round().Started())
	sel, ok := c.Registry().Get(SelectorID)
	require.True(t, ok)
	assert.Equal(t, entity.NewPoint(0, 24), sel.Location)
	assert.Zero(t, sel.Speed)
	assert.True(t, sel.Category.IsFriendlyCreep())

	c.Step(2*tick, nil)
	assert.Equal(t, 1, c.Registry().Len(), "selector is placed once")
}

func TestController_HookingSelectorStartsRound(t *testing.T) {
	c := New(DefaultConfig())
	events := collectEvents(c)

	driveSelector(t, c, 0)

	assert.Equal(t, state.Active(0, state.DefaultHealth), c.Round())
	assert.Equal(t, c.cfg.Seed, c.Seed(), "first round keeps the base seed")
	assert.Equal(t, 0, c.Registry().Len())
	assert.Equal(t, []EventKind{EventRoundStarted}, kinds(*events))
	assert.Equal(t, c.cfg.Seed, (*events)[0].Seed)
}

func TestController_MissPenaltyFloorsAtZero(t *testing.T) {
	c := newActive(t, 4, 3)
	events := collectEvents(c)

	now := tick
	c.Step(now, []entity.Action{entity.ActionHook})
	for i := 0; i < 30 && c.Actor().State() == entity.ActorHookFlying; i++ {
		now += tick
		c.Step(now, nil)
	}

	assert.Equal(t, int32(0), c.Round().Score())
	require.NotEmpty(t, *events)
	assert.Equal(t, EventMissed, (*events)[0].Kind)
	assert.Equal(t, int32(-10), (*events)[0].Points)
}

func TestController_HookedFriendlyCreepScores(t *testing.T) {
	c := newActive(t, 0, 3)
	events := collectEvents(c)

	now := tick
	c.Step(now, []entity.Action{entity.ActionHook})
	for i := 0; i < 11; i++ {
		now += tick
		c.Step(now, nil)
	}
	hook, ok := c.Actor().Hook()
	require.True(t, ok)
	require.Equal(t, float32(27), hook.Y)

	// Placed just before the hook reaches it so its reward hasn't decayed.
	creep := entity.NewCreep(42, entity.NewPoint(60, 20), entity.FactionRadiant, 1, 13, 11)
	c.Registry().Insert(creep)

	now += tick
	c.Step(now, nil)

	assert.Equal(t, int32(145), c.Round().Score())
	assert.Equal(t, entity.ActorHookReeling, c.Actor().State())
	_, ok = c.Registry().Get(42)
	assert.False(t, ok)
	require.Len(t, *events, 1)
	assert.Equal(t, EventHooked, (*events)[0].Kind)
	assert.Equal(t, int32(145), (*events)[0].Points)
}

func TestController_HookedDireCreepScoresNothing(t *testing.T) {
	c := newActive(t, 7, 3)

	now := tick
	c.Step(now, []entity.Action{entity.ActionHook})
	for i := 0; i < 11; i++ {
		now += tick
		c.Step(now, nil)
	}
	c.Registry().Insert(entity.NewCreep(9, entity.NewPoint(60, 20), entity.FactionDire, 0, 13, 11))

	now += tick
	c.Step(now, nil)

	assert.Equal(t, entity.ActorHookReeling, c.Actor().State())
	assert.Equal(t, int32(7), c.Round().Score())
}

func TestController_EscapeAfter128TicksDamages(t *testing.T) {
	c := newActive(t, 0, 3)
	events := collectEvents(c)
	c.Registry().Insert(entity.NewCreep(77, entity.NewPoint(0, 40), entity.FactionRadiant, 1, 13, 11))

	now := clock.Instant(0)
	for i := 0; i < 127; i++ {
		now += tick
		c.Step(now, nil)
	}
	e, ok := c.Registry().Get(77)
	require.True(t, ok)
	assert.Equal(t, float32(127), e.Location.X)
	assert.Equal(t, uint8(3), c.Round().Health())

	now += tick
	c.Step(now, nil)

	_, ok = c.Registry().Get(77)
	assert.False(t, ok)
	assert.Equal(t, uint8(2), c.Round().Health())
	assert.Equal(t, []EventKind{EventEscaped}, kinds(*events))
}

func TestController_DireEscapeDoesNotDamage(t *testing.T) {
	c := newActive(t, 0, 3)
	c.Registry().Insert(entity.NewCreep(5, entity.NewPoint(127, 40), entity.FactionDire, 1, 13, 11))

	c.Step(tick, nil)

	assert.Zero(t, c.Registry().Len())
	assert.Equal(t, uint8(3), c.Round().Health())
}

func TestController_LastHealthEndsRound(t *testing.T) {
	c := newActive(t, 30, 1)
	events := collectEvents(c)
	// More simultaneous escapes than health left; the surplus is ignored.
	for id := entity.ID(1); id <= 12; id++ {
		c.Registry().Insert(entity.NewCreep(id, entity.NewPoint(127, 40), entity.FactionRadiant, 1, 13, 11))
	}

	require.NotPanics(t, func() {
		c.Step(tick, nil)
	})

	assert.Equal(t, state.PhaseGameOver, c.Round().Phase())
	assert.Equal(t, int32(30), c.Round().Score())
	assert.Zero(t, c.Registry().Len())
	assert.Equal(t, []EventKind{EventEscaped, EventGameOver}, kinds(*events))

	c.Step(2*tick, nil)
	_, ok := c.Registry().Get(SelectorID)
	assert.True(t, ok, "selector returns after game over")
}

func TestController_RestartReseedsAndResetsActor(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)
	c.round = state.GameOver(false, 90)

	now := driveSelector(t, c, 0)

	assert.Equal(t, cfg.Seed+cfg.ReseedStep, c.Seed())
	assert.Equal(t, cfg.Actor.Start, c.Actor().Location())
	assert.Equal(t, cfg.Actor.WalkSpeed, c.Actor().WalkSpeed(), "fresh actor drops earlier boosts")
	assert.Equal(t, state.Active(0, state.DefaultHealth), c.Round())

	c.Step(now+tick, nil)
	assert.Equal(t, state.PhaseActive, c.Round().Phase())
}

func TestController_SpawnsDuringActiveRound(t *testing.T) {
	c := newActive(t, 0, 3)

	now := clock.Instant(0)
	for i := 0; i < 400 && c.Registry().Len() == 0; i++ {
		now += tick
		c.Step(now, nil)
	}

	require.Equal(t, 1, c.Registry().Len())
	assert.Greater(t, now, clock.Instant(4_000_000), "no spawn before two thirds of the period")
}

func TestController_Deterministic(t *testing.T) {
	run := func() ([]Event, int32) {
		c := New(DefaultConfig())
		events := collectEvents(c)
		now := driveSelector(t, c, 0)
		for i := 0; i < 5000; i++ {
			now += tick
			var actions []entity.Action
			if i%90 == 0 {
				actions = []entity.Action{entity.ActionHook}
			}
			c.Step(now, actions)
		}
		return *events, c.Round().Score()
	}

	e1, s1 := run()
	e2, s2 := run()
	assert.Equal(t, e1, e2)
	assert.Equal(t, s1, s2)
}

type textCall struct {
	text string
	at   image.Point
}

type fakeSurface struct {
	sprites []entity.Sprite
	texts   []textCall
}

func (s *fakeSurface) DrawSprite(sprite entity.Sprite, _ image.Point) {
	s.sprites = append(s.sprites, sprite)
}

func (s *fakeSurface) DrawText(text string, at image.Point) {
	s.texts = append(s.texts, textCall{text, at})
}

func TestController_DrawInit(t *testing.T) {
	c := New(DefaultConfig())
	c.Step(tick, nil)

	s := &fakeSurface{}
	c.Draw(s)

	assert.Equal(t, []entity.Sprite{entity.SpriteSplash, entity.SpriteCreepRadiant, entity.SpriteActorBody}, s.sprites)
	assert.Empty(t, s.texts)
}

func TestController_DrawActiveHUD(t *testing.T) {
	c := newActive(t, 1234, 3)

	s := &fakeSurface{}
	c.Draw(s)

	require.Len(t, s.texts, 2)
	assert.Equal(t, textCall{"1234", image.Pt(2, 4)}, s.texts[0])
	assert.Equal(t, textCall{"<3 <3 <3 ", image.Pt(128-4-9*4, 6)}, s.texts[1])
	assert.Equal(t, []entity.Sprite{entity.SpriteActorBody}, s.sprites)
}

func TestController_DrawGameOver(t *testing.T) {
	c := New(DefaultConfig())
	c.round = state.GameOver(false, 55)

	s := &fakeSurface{}
	c.Draw(s)

	assert.Equal(t, []textCall{
		{"55", image.Pt(64, 4)},
		{GameOverText, image.Pt(36, 32)},
	}, s.texts)
}

func TestHealthText(t *testing.T) {
	assert.Equal(t, "", HealthText(0))
	assert.Equal(t, "<3 <3 ", HealthText(2))
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "Hooked", EventHooked.String())
	assert.Equal(t, "Unknown", EventKind(99).String())
}

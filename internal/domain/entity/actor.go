package entity

import "fmt"

// ActorState is the behavior state of the hook operator.
type ActorState int

const (
	ActorWalking ActorState = iota
	ActorHookFlying
	ActorHookReeling
)

// String returns the string representation of the actor state
func (s ActorState) String() string {
	switch s {
	case ActorWalking:
		return "Walking"
	case ActorHookFlying:
		return "HookFlying"
	case ActorHookReeling:
		return "HookReeling"
	default:
		return "Unknown"
	}
}

// ActorConfig holds the tunables of the hook operator.
type ActorConfig struct {
	Field         Playfield
	Start         Point
	Width         uint8
	Height        uint8
	WalkSpeed     float32 // pixels per Left/Right action
	HookSpeed     float32 // pixels per tick while flying
	WalkBoost     float32 // added to WalkSpeed after every reel-in
	HookBoost     float32 // added to HookSpeed after every reel-in
	ReelFactor    float32 // reel speed = HookSpeed * ReelFactor
	HookWidth     uint8
	HookBoxOffset float32 // hitbox starts this far below the hook tip
	HookBoxHeight float32
}

// Signal is a gameplay event emitted by Actor.Tick.
type Signal interface {
	isSignal()
}

// Hooked is emitted when the hook captures an entity. The entity has been
// removed from the registry and now belongs to the receiver.
type Hooked struct {
	Entity *Entity
}

func (Hooked) isSignal() {}

// Missed is emitted when the hook reaches the top edge without a catch.
type Missed struct{}

func (Missed) isSignal() {}

// Reeled is emitted when the hook returns to the actor. Caught is false when
// the hook comes back empty.
type Reeled struct {
	Category Category
	Caught   bool
}

func (Reeled) isSignal() {}

// Actor is the player-controlled hook operator.
type Actor struct {
	cfg       ActorConfig
	location  Point
	walkSpeed float32
	hookSpeed float32

	state  ActorState
	hook   Point
	catch  Category
	caught bool
}

// NewActor creates an actor standing at the configured start location.
func NewActor(cfg ActorConfig) *Actor {
	return &Actor{
		cfg:       cfg,
		location:  cfg.Start,
		walkSpeed: cfg.WalkSpeed,
		hookSpeed: cfg.HookSpeed,
		state:     ActorWalking,
	}
}

// Location returns the top-left corner of the actor's body.
func (a *Actor) Location() Point { return a.location }

// State returns the current behavior state.
func (a *Actor) State() ActorState { return a.state }

// WalkSpeed returns the current walking speed.
func (a *Actor) WalkSpeed() float32 { return a.walkSpeed }

// HookSpeed returns the current hook extend speed.
func (a *Actor) HookSpeed() float32 { return a.hookSpeed }

// Hook returns the hook position while the hook is out.
func (a *Actor) Hook() (Point, bool) {
	if a.state == ActorWalking {
		return Point{}, false
	}
	return a.hook, true
}

// Catch returns the category being reeled in, if any.
func (a *Actor) Catch() (Category, bool) {
	if a.state != ActorHookReeling {
		return Category{}, false
	}
	return a.catch, a.caught
}

// Act applies an input action. Actions are ignored while the hook is out.
func (a *Actor) Act(action Action) {
	if a.state != ActorWalking {
		return
	}

	switch action {
	case ActionLeft:
		if a.walkSpeed > a.location.X {
			a.location.X = 0
			return
		}
		a.location.X -= a.walkSpeed
	case ActionRight:
		maxX := a.cfg.Field.Width - float32(a.cfg.Width)
		if a.location.X+a.walkSpeed > maxX {
			a.location.X = maxX
			return
		}
		a.location.X += a.walkSpeed
	case ActionHook:
		a.state = ActorHookFlying
		a.hook = a.location
		a.caught = false
	}
}

// Tick advances the hook by one simulation step. It returns nil when nothing
// noteworthy happened.
func (a *Actor) Tick(reg *Registry) Signal {
	switch a.state {
	case ActorHookFlying:
		return a.tickFlying(reg)
	case ActorHookReeling:
		return a.tickReeling()
	}
	return nil
}

func (a *Actor) tickFlying(reg *Registry) Signal {
	next := a.hook
	next.Y -= a.hookSpeed

	if next.Y <= 0 {
		a.reel(next, Category{}, false)
		return Missed{}
	}

	box := NewRect(next.X, next.Y+a.cfg.HookBoxOffset, float32(a.cfg.HookWidth), a.cfg.HookBoxHeight)
	if hit, ok := reg.FirstCollision(box); ok {
		captured, ok := reg.Remove(hit.ID)
		if !ok {
			panic(fmt.Sprintf("entity: collided entity %d missing from registry", hit.ID))
		}
		a.reel(next, captured.Category, true)
		return Hooked{Entity: captured}
	}

	a.hook = next
	return nil
}

func (a *Actor) tickReeling() Signal {
	next := a.hook
	next.Y += a.hookSpeed * a.cfg.ReelFactor

	if next.Y >= a.location.Y-float32(a.cfg.Height) {
		signal := Reeled{Category: a.catch, Caught: a.caught}
		a.state = ActorWalking
		a.hook = Point{}
		a.catch = Category{}
		a.caught = false
		a.hookSpeed += a.cfg.HookBoost
		a.walkSpeed += a.cfg.WalkBoost
		return signal
	}

	a.hook = next
	return nil
}

func (a *Actor) reel(at Point, catch Category, caught bool) {
	a.state = ActorHookReeling
	a.hook = at
	a.catch = catch
	a.caught = caught
}

package entity

import "math"

// DefaultReward is the reward a freshly made creep carries before decay.
const DefaultReward = 100

// Playfield is the fixed simulation area in pixels.
type Playfield struct {
	Width  float32
	Height float32
}

// Entity is a scrolling hookable object owned by the Registry.
type Entity struct {
	ID       ID
	Location Point
	Category Category
	Sprite   Sprite
	Width    uint8
	Height   uint8
	Reward   uint16
	Speed    float32 // pixels per tick; sign is the travel direction
}

// NewCreep creates a creep of the given faction.
func NewCreep(id ID, location Point, faction Faction, speed float32, width, height uint8) *Entity {
	c := Creep(faction)
	return &Entity{
		ID:       id,
		Location: location,
		Category: c,
		Sprite:   SpriteFor(c),
		Width:    width,
		Height:   height,
		Reward:   DefaultReward,
		Speed:    speed,
	}
}

// Bounds returns the collision rectangle of the entity.
func (e *Entity) Bounds() Rect {
	return Rect{
		Pos:  e.Location,
		Size: Point{X: float32(e.Width), Y: float32(e.Height)},
	}
}

// Tick advances the entity by one simulation step and reports whether it
// left the horizontal playfield bounds. The caller removes escaped entities.
func (e *Entity) Tick(field Playfield) (escaped bool) {
	e.Location.X += e.Speed
	if e.Reward > 1 {
		e.Reward--
	}
	return e.Location.X < 0 || e.Location.X >= field.Width
}

// Score returns the points awarded for capturing the entity. Only the
// friendly creep scores; early (undecayed) and high (small y) catches pay more.
func (e *Entity) Score(field Playfield) uint32 {
	if !e.Category.IsFriendlyCreep() {
		return 0
	}
	bonus := math.Floor(float64(e.Speed) + float64(field.Height-e.Location.Y))
	if bonus < 0 {
		bonus = 0
	}
	return uint32(e.Reward) + uint32(bonus)
}

// Intersects reports whether the entity's bounds overlap r.
func (e *Entity) Intersects(r Rect) bool {
	return e.Bounds().Intersects(r)
}

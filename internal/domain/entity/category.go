package entity

// Kind is the broad category of a hookable object.
type Kind int

const (
	KindCreep Kind = iota
	KindBlockade
	KindRune
)

// Faction of a creep.
type Faction int

const (
	FactionRadiant Faction = iota // friendly
	FactionDire
)

// RuneKind is the effect carried by a power-up rune.
type RuneKind int

const (
	RuneWalkSpeed RuneKind = iota
	RuneHookSpeed
	RuneHookSize
)

// Category describes what a hookable entity is. It is comparable, so
// categories can be matched with ==.
type Category struct {
	Kind      Kind
	Faction   Faction  // KindCreep only
	Rune      RuneKind // KindRune only
	Magnitude int      // KindRune only
}

// Creep returns the category of a creep of the given faction.
func Creep(f Faction) Category {
	return Category{Kind: KindCreep, Faction: f}
}

// Blockade returns the obstacle category.
func Blockade() Category {
	return Category{Kind: KindBlockade}
}

// Rune returns a power-up rune category.
func Rune(kind RuneKind, magnitude int) Category {
	return Category{Kind: KindRune, Rune: kind, Magnitude: magnitude}
}

// FriendlyCreep is the only archetype that scores and that damages the
// player when it escapes.
var FriendlyCreep = Creep(FactionRadiant)

// IsFriendlyCreep reports whether c is the friendly-faction creep.
func (c Category) IsFriendlyCreep() bool {
	return c == FriendlyCreep
}

// Sprite selects the image the display collaborator draws.
type Sprite int

const (
	SpriteSplash Sprite = iota
	SpriteActorBody
	SpriteHook
	SpriteCreepRadiant
	SpriteCreepDire
)

// SpriteFor returns the sprite used for an entity of the given category.
func SpriteFor(c Category) Sprite {
	if c.Kind == KindCreep && c.Faction == FactionDire {
		return SpriteCreepDire
	}
	return SpriteCreepRadiant
}

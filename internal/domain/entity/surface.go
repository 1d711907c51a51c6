package entity

import "image"

// Surface is the drawing capability provided by the display collaborator.
// Positions are top-left anchored pixel coordinates on the playfield. The
// surface owns pixel buffers and presentation.
type Surface interface {
	DrawSprite(sprite Sprite, at image.Point)
	DrawText(text string, at image.Point)
}

// Draw renders the entity sprite at its location.
func (e *Entity) Draw(s Surface) {
	s.DrawSprite(e.Sprite, e.Location.Pixel())
}

// Draw renders the actor body and, while the hook is out, the hook.
func (a *Actor) Draw(s Surface) {
	s.DrawSprite(SpriteActorBody, a.location.Pixel())
	if hook, ok := a.Hook(); ok {
		s.DrawSprite(SpriteHook, hook.Pixel())
	}
}

// Package render draws the simulation onto an ebiten image.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/younwookim/hookarcade/internal/domain/entity"
	"github.com/younwookim/hookarcade/internal/infrastructure/sprite"
	"golang.org/x/image/font/basicfont"
)

// Colors for rendering
var (
	ColorBG = color.RGBA{8, 12, 20, 255}
	ColorFG = color.RGBA{120, 230, 255, 255}
)

// Surface implements entity.Surface on an ebiten image. Playfield pixels
// are magnified by Scale so the 7x13 HUD font lines up with the sprites.
type Surface struct {
	Scale  int
	target *ebiten.Image
	images map[entity.Sprite]*ebiten.Image
}

// NewSurface creates a surface. Sprite images are built on first use.
func NewSurface(scale int) *Surface {
	if scale < 1 {
		scale = 1
	}
	return &Surface{
		Scale:  scale,
		images: make(map[entity.Sprite]*ebiten.Image),
	}
}

// Begin clears target and directs subsequent draws to it.
func (s *Surface) Begin(target *ebiten.Image) {
	s.target = target
	target.Fill(ColorBG)
}

// DrawSprite draws a sprite with its top-left corner at the given playfield pixel.
func (s *Surface) DrawSprite(spr entity.Sprite, at image.Point) {
	img := s.image(spr)
	if img == nil || s.target == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(s.Scale), float64(s.Scale))
	op.GeoM.Translate(float64(at.X*s.Scale), float64(at.Y*s.Scale))
	s.target.DrawImage(img, op)
}

// DrawText draws text with its top-left corner at the given playfield pixel.
func (s *Surface) DrawText(str string, at image.Point) {
	if s.target == nil {
		return
	}
	x, y := TextOrigin(at, s.Scale)
	text.Draw(s.target, str, basicfont.Face7x13, x, y, ColorFG)
}

// TextOrigin converts a top-left playfield point into the screen baseline
// position text.Draw expects.
func TextOrigin(at image.Point, scale int) (int, int) {
	return at.X * scale, at.Y*scale + basicfont.Face7x13.Ascent
}

func (s *Surface) image(spr entity.Sprite) *ebiten.Image {
	if img, ok := s.images[spr]; ok {
		return img
	}
	b, ok := sprite.For(spr)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(Rasterize(b, ColorFG))
	s.images[spr] = img
	return img
}

// Rasterize converts a bitmap into an RGBA image with transparent background.
func Rasterize(b sprite.Bitmap, fg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				img.SetRGBA(x, y, fg)
			}
		}
	}
	return img
}

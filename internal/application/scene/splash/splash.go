// Package splash shows the title card before play starts.
package splash

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/hookarcade/internal/application/scene"
	"github.com/younwookim/hookarcade/internal/domain/entity"
	"github.com/younwookim/hookarcade/internal/infrastructure/render"
)

// DefaultDuration is how long the title card stays up.
const DefaultDuration = 1.0

// Splash draws the splash sprite for a fixed time, then hands over to the
// scene built by next. Any key skips it.
type Splash struct {
	surface  *render.Surface
	duration float64
	elapsed  float64
	next     func() scene.Scene
}

// New creates a splash scene lasting duration seconds.
func New(scale int, duration float64, next func() scene.Scene) *Splash {
	return &Splash{
		surface:  render.NewSurface(scale),
		duration: duration,
		next:     next,
	}
}

// Update implements scene.Scene
func (s *Splash) Update(dt float64) (scene.Scene, error) {
	s.elapsed += dt
	if s.elapsed+1e-9 >= s.duration || len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		return s.next(), nil
	}
	return nil, nil
}

// Draw implements scene.Scene
func (s *Splash) Draw(screen *ebiten.Image) {
	s.surface.Begin(screen)
	s.surface.DrawSprite(entity.SpriteSplash, image.Point{})
}

// OnEnter implements scene.Scene
func (s *Splash) OnEnter() {
	s.elapsed = 0
}

// OnExit implements scene.Scene
func (s *Splash) OnExit() {}

// Package game runs the arcade's scenes inside ebiten.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hookarcade/internal/application/scene"
)

// defaultTPS matches ebiten's own default tick rate.
const defaultTPS = 60

// Game implements ebiten.Game. It owns the active scene and swaps it when
// Update returns a successor.
type Game struct {
	current scene.Scene
	width   int
	height  int
	dt      float64
	closed  bool
}

// New enters first and returns a game with a logical screen of width x
// height pixels.
func New(first scene.Scene, width, height int) *Game {
	g := &Game{
		width:  width,
		height: height,
		dt:     1.0 / defaultTPS,
	}
	g.enter(first)
	return g
}

// SetTPS sets ebiten's tick rate and the dt handed to scenes. Non-positive
// rates are ignored.
func (g *Game) SetTPS(tps int) {
	if tps <= 0 {
		return
	}
	ebiten.SetTPS(tps)
	g.dt = 1.0 / float64(tps)
}

func (g *Game) enter(s scene.Scene) {
	g.current = s
	s.OnEnter()
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next != nil {
		g.current.OnExit()
		g.enter(next)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout implements ebiten.Game. The logical size never follows the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Close exits the active scene. Only the first call has an effect; call it
// once ebiten.RunGame has returned.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// Package terminal runs the simulation in a text terminal using half-block
// characters, two playfield pixels per cell.
package terminal

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/hookarcade/internal/domain/entity"
	"github.com/younwookim/hookarcade/internal/infrastructure/sprite"
)

var (
	stylePixels = tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
)

type textRun struct {
	col, row int
	text     string
}

// Surface implements entity.Surface into a pixel buffer that Flush turns
// into terminal cells.
type Surface struct {
	width, height int
	pixels        []bool
	texts         []textRun
}

// NewSurface creates a surface for a playfield of w x h pixels.
func NewSurface(w, h int) *Surface {
	return &Surface{
		width:  w,
		height: h,
		pixels: make([]bool, w*h),
	}
}

// Size returns the cell grid needed to show the whole playfield.
func (s *Surface) Size() (cols, rows int) {
	return s.width, (s.height + 1) / 2
}

// Clear drops everything drawn since the last Clear.
func (s *Surface) Clear() {
	for i := range s.pixels {
		s.pixels[i] = false
	}
	s.texts = s.texts[:0]
}

// DrawSprite ORs the sprite bitmap into the buffer.
func (s *Surface) DrawSprite(spr entity.Sprite, at image.Point) {
	b, ok := sprite.For(spr)
	if !ok {
		return
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				s.set(at.X+x, at.Y+y)
			}
		}
	}
}

// DrawText places text one character per cell, starting at the cell that
// holds the given pixel.
func (s *Surface) DrawText(text string, at image.Point) {
	s.texts = append(s.texts, textRun{col: at.X, row: at.Y / 2, text: text})
}

func (s *Surface) set(x, y int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = true
}

func (s *Surface) pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return false
	}
	return s.pixels[y*s.width+x]
}

// Cell returns the rune shown at a cell, ignoring text.
func (s *Surface) Cell(col, row int) rune {
	top, bottom := s.pixel(col, 2*row), s.pixel(col, 2*row+1)
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

// textAt returns the text drawn at a cell, if any. Later text wins.
func (s *Surface) textAt(col, row int) (rune, bool) {
	r, ok := ' ', false
	for _, t := range s.texts {
		if t.row != row {
			continue
		}
		for i, c := range []rune(t.text) {
			if t.col+i == col {
				r, ok = c, true
			}
		}
	}
	return r, ok
}

// Flush writes the buffer to screen at the given cell offset and shows it.
func (s *Surface) Flush(screen tcell.Screen, offX, offY int) {
	cols, rows := s.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			screen.SetContent(offX+col, offY+row, s.Cell(col, row), nil, stylePixels)
		}
	}
	for _, t := range s.texts {
		for i, c := range []rune(t.text) {
			col := t.col + i
			if col < 0 || col >= cols || t.row < 0 || t.row >= rows {
				continue
			}
			screen.SetContent(offX+col, offY+t.row, c, nil, styleText)
		}
	}
	screen.Show()
}

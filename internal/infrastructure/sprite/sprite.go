// Package sprite holds the 1-bit artwork for every entity.Sprite. Front-ends
// rasterize these bitmaps in whatever way suits their display.
package sprite

import (
	"fmt"
	"strings"

	"github.com/younwookim/hookarcade/internal/domain/entity"
)

// Bitmap is a monochrome image; set pixels are drawn in the foreground color.
type Bitmap struct {
	Width  int
	Height int
	bits   []bool
}

// NewBitmap returns a blank bitmap.
func NewBitmap(w, h int) Bitmap {
	return Bitmap{Width: w, Height: h, bits: make([]bool, w*h)}
}

// Parse builds a bitmap from rows where '#' is a set pixel. All rows must
// have the same length.
func Parse(rows ...string) Bitmap {
	if len(rows) == 0 {
		return Bitmap{}
	}
	b := NewBitmap(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.Width {
			panic(fmt.Sprintf("sprite: row %d is %d wide, want %d", y, len(row), b.Width))
		}
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				b.Set(x, y)
			}
		}
	}
	return b
}

// At reports whether the pixel is set. Out-of-range pixels are clear.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.bits[y*b.Width+x]
}

// Set sets a pixel. Out-of-range pixels are ignored.
func (b Bitmap) Set(x, y int) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.bits[y*b.Width+x] = true
}

// count returns the number of set pixels.
func (b Bitmap) count() int {
	n := 0
	for _, v := range b.bits {
		if v {
			n++
		}
	}
	return n
}

// String renders the bitmap back into '#' and '.' rows.
func (b Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var actorBody = Parse(
	"........##........",
	".......####.......",
	"........##........",
	"......######......",
	".....#.####.#.....",
	"....#..####..#....",
	"......##..##......",
	"......#....#......",
	"##################",
	"#................#",
	".#..............#.",
	"..#............#..",
	"...############...",
)

var hook = Parse(
	"..#..",
	"..#..",
	"..#..",
	"..#..",
	"..#..",
	"#.#.#",
	"#.#.#",
	"#...#",
	".###.",
)

var creepRadiant = Parse(
	"....#####....",
	"..##.....##..",
	".#..##.##..#.",
	".#..##.##..#.",
	"#...........#",
	"#..#.....#..#",
	"#...#####...#",
	".#.........#.",
	"..##.....##..",
	"....#####....",
	"...#.....#...",
)

var creepDire = Parse(
	"#...........#",
	".#.#######.#.",
	"..#.......#..",
	".#..#...#..#.",
	"#...##.##...#",
	"#...........#",
	"#...#####...#",
	"#..#.....#..#",
	".#.........#.",
	"..#########..",
	".#.#.....#.#.",
)

var sheet = map[entity.Sprite]Bitmap{
	entity.SpriteSplash:       splash(),
	entity.SpriteActorBody:    actorBody,
	entity.SpriteHook:         hook,
	entity.SpriteCreepRadiant: creepRadiant,
	entity.SpriteCreepDire:    creepDire,
}

// For returns the bitmap of s.
func For(s entity.Sprite) (Bitmap, bool) {
	b, ok := sheet[s]
	return b, ok
}

package sprite

// glyphs is a 3x5 font covering the splash lettering.
var glyphs = map[rune][5]string{
	'A': {"###", "#.#", "###", "#.#", "#.#"},
	'C': {"###", "#..", "#..", "#..", "###"},
	'D': {"##.", "#.#", "#.#", "#.#", "##."},
	'E': {"###", "#..", "##.", "#..", "###"},
	'H': {"#.#", "#.#", "###", "#.#", "#.#"},
	'K': {"#.#", "##.", "#..", "##.", "#.#"},
	'O': {"###", "#.#", "#.#", "#.#", "###"},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'<': {"..#", ".#.", "#..", ".#.", "..#"},
	' ': {"...", "...", "...", "...", "..."},
}

// stamp draws s at (x, y) with each font pixel scaled to a scale x scale block.
func stamp(b Bitmap, s string, x, y, scale int) {
	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			g = glyphs[' ']
		}
		for gy, row := range g {
			for gx := 0; gx < len(row); gx++ {
				if row[gx] != '#' {
					continue
				}
				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						b.Set(x+gx*scale+dx, y+gy*scale+dy)
					}
				}
			}
		}
		x += 4 * scale
	}
}

// splash is the 128x64 title card. The arrow points at the start selector
// the round controller places at (0, 24).
func splash() Bitmap {
	b := NewBitmap(128, 64)
	for x := 0; x < b.Width; x++ {
		b.Set(x, 0)
		b.Set(x, b.Height-1)
	}
	for y := 0; y < b.Height; y++ {
		b.Set(0, y)
		b.Set(b.Width-1, y)
	}
	stamp(b, "HOOK", 34, 4, 4)
	stamp(b, "ARCADE", 41, 28, 2)
	stamp(b, "<", 17, 26, 2)
	return b
}

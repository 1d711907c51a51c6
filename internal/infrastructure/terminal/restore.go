package terminal

import "github.com/gdamore/tcell/v2"

// Restore finalizes screen if the caller is panicking, then re-panics, so a
// crash doesn't leave the terminal in raw mode. Defer it directly after
// screen.Init.
func Restore(screen tcell.Screen) {
	if r := recover(); r != nil {
		screen.Fini()
		panic(r)
	}
}

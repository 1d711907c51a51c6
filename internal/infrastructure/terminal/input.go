package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/hookarcade/internal/application/input"
	"github.com/younwookim/hookarcade/internal/domain/entity"
)

// KeyAction maps a key press to an action.
func KeyAction(key tcell.Key, r rune) entity.Action {
	switch key {
	case tcell.KeyLeft:
		return entity.ActionLeft
	case tcell.KeyRight:
		return entity.ActionRight
	case tcell.KeyUp, tcell.KeyEnter:
		return entity.ActionHook
	case tcell.KeyRune:
		switch r {
		case 'a', 'h':
			return entity.ActionLeft
		case 'd', 'l':
			return entity.ActionRight
		case ' ', 'w', 'k':
			return entity.ActionHook
		}
	}
	return entity.ActionNone
}

// Listener is the asynchronous producer for a terminal session: it turns
// tcell events into actions on the shared queue.
type Listener struct {
	queue   *input.Queue
	knob    *Knob
	buttons tcell.ButtonMask
}

// NewListener creates a listener feeding q.
func NewListener(q *input.Queue) *Listener {
	return &Listener{queue: q}
}

// UseKnob routes every action through an emulated rotary encoder instead of
// pushing it directly.
func (l *Listener) UseKnob() {
	l.knob = NewKnob(l.queue)
}

func (l *Listener) emit(a entity.Action) {
	if l.knob != nil {
		l.knob.Send(a)
		return
	}
	l.queue.Push(a)
}

// MouseActions maps a mouse event's buttons to actions. Only the press edge
// of the primary button hooks; wheel notches walk.
func (l *Listener) MouseActions(buttons tcell.ButtonMask) []entity.Action {
	var actions []entity.Action
	if buttons&tcell.WheelUp != 0 {
		actions = append(actions, entity.ActionLeft)
	}
	if buttons&tcell.WheelDown != 0 {
		actions = append(actions, entity.ActionRight)
	}
	if buttons&tcell.Button1 != 0 && l.buttons&tcell.Button1 == 0 {
		actions = append(actions, entity.ActionHook)
	}
	l.buttons = buttons
	return actions
}

// Handle pushes the actions for ev and reports whether the session should end.
// A nil event means the screen was finalized.
func (l *Listener) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case nil:
		return true
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
		if a := KeyAction(ev.Key(), ev.Rune()); a.IsSome() {
			l.emit(a)
		}
	case *tcell.EventMouse:
		for _, a := range l.MouseActions(ev.Buttons()) {
			l.emit(a)
		}
	}
	return false
}

// Run polls screen until the session ends, then closes done.
func (l *Listener) Run(screen tcell.Screen, done chan<- struct{}) {
	defer close(done)
	for {
		if l.Handle(screen.PollEvent()) {
			return
		}
	}
}

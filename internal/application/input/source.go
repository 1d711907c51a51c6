package input

import "github.com/younwookim/hookarcade/internal/domain/entity"

// Source is a front-end input adapter: keyboard/mouse, terminal, browser
// canvas or hardware. Poll returns the actions produced since the last poll.
type Source interface {
	Poll() []entity.Action
}

// Pump moves every polled action from src into q. Actions beyond the queue
// capacity are dropped.
func Pump(src Source, q *Queue) {
	for _, a := range src.Poll() {
		if a.IsSome() {
			q.Push(a)
		}
	}
}

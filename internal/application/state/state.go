package state

import "fmt"

// Phase is the tag of the round state union.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseActive
	PhaseGameOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseActive:
		return "Active"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// DefaultHealth is the health a new active round starts with.
const DefaultHealth = 3

// Round is the top-level round state.
//
//	Init(started)            pre-round ready screen
//	Active(score, health)    playing
//	GameOver(started, score) post-round screen
//
// Started marks that the selector decoy has been placed.
type Round struct {
	phase   Phase
	started bool
	score   int32
	health  uint8
}

// NewRound returns Init(false).
func NewRound() Round {
	return Round{phase: PhaseInit}
}

// Active returns Active(score, health).
func Active(score int32, health uint8) Round {
	return Round{phase: PhaseActive, score: score, health: health}
}

// GameOver returns GameOver(started, score).
func GameOver(started bool, score int32) Round {
	return Round{phase: PhaseGameOver, started: started, score: score}
}

// Phase returns the current tag.
func (r Round) Phase() Phase { return r.phase }

// Started reports whether the selector has been placed (Init and GameOver only).
func (r Round) Started() bool { return r.started }

// Score returns the running score while active, or the final score after game over.
func (r Round) Score() int32 { return r.score }

// Health returns the remaining health while active.
func (r Round) Health() uint8 { return r.health }

// Next advances the round: Init -> Active, Active -> GameOver, GameOver -> Active.
func (r *Round) Next() {
	switch r.phase {
	case PhaseInit, PhaseGameOver:
		*r = Active(0, DefaultHealth)
	case PhaseActive:
		*r = GameOver(false, r.score)
	}
}

// SetStarted marks the selector as placed. It only affects Init(false) and
// GameOver(false, _).
func (r *Round) SetStarted() {
	if r.phase == PhaseInit || r.phase == PhaseGameOver {
		r.started = true
	}
}

// AddScore adds delta to the score, flooring at zero. It panics outside an
// active round.
func (r *Round) AddScore(delta int32) {
	if r.phase != PhaseActive {
		panic(fmt.Sprintf("state: can't add score in %s round", r.phase))
	}
	if delta < 0 && -int64(delta) > int64(r.score) {
		r.score = 0
		return
	}
	r.score += delta
}

// Damage removes one health point; at the last point the round ends instead.
// It panics outside an active round.
func (r *Round) Damage() {
	if r.phase != PhaseActive {
		panic(fmt.Sprintf("state: can't damage in %s round", r.phase))
	}
	if r.health <= 1 {
		r.Next()
		return
	}
	r.health--
}

// String returns the label shown for the round
func (r Round) String() string {
	switch r.phase {
	case PhaseInit:
		return "Game start"
	case PhaseActive:
		return "Game in progress"
	case PhaseGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

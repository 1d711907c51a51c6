package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/hookarcade/internal/domain/entity"
	"github.com/younwookim/hookarcade/internal/infrastructure/config"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	hookKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}
)

// InputState holds one frame of raw window input
type InputState struct {
	LeftFrames  int // frames the left key has been held, 0 if up
	RightFrames int
	HookPressed bool    // hook key, left click or touch went down this frame
	WheelY      float64 // vertical wheel delta
}

// InputSystem turns window input into actions
type InputSystem struct {
	repeatDelay    int
	repeatInterval int
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg config.InputConfig) *InputSystem {
	return &InputSystem{
		repeatDelay:    cfg.RepeatDelay,
		repeatInterval: cfg.RepeatInterval,
	}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	_, wy := ebiten.Wheel()
	return InputState{
		LeftFrames:  heldFrames(leftKeys),
		RightFrames: heldFrames(rightKeys),
		HookPressed: anyJustPressed(hookKeys) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(inpututil.AppendJustPressedTouchIDs(nil)) > 0,
		WheelY: wy,
	}
}

// Poll reads the window and returns this frame's actions.
func (s *InputSystem) Poll() []entity.Action {
	return s.Actions(s.GetInput())
}

// Actions maps an input state to actions. Held movement keys fire on the
// first frame and then auto-repeat.
func (s *InputSystem) Actions(in InputState) []entity.Action {
	var actions []entity.Action
	if s.fires(in.LeftFrames) {
		actions = append(actions, entity.ActionLeft)
	}
	if s.fires(in.RightFrames) {
		actions = append(actions, entity.ActionRight)
	}
	// Wheel up walks left, like the desktop and browser builds.
	switch {
	case in.WheelY > 0:
		actions = append(actions, entity.ActionLeft)
	case in.WheelY < 0:
		actions = append(actions, entity.ActionRight)
	}
	if in.HookPressed {
		actions = append(actions, entity.ActionHook)
	}
	return actions
}

func (s *InputSystem) fires(frames int) bool {
	switch {
	case frames <= 0:
		return false
	case frames == 1:
		return true
	case s.repeatInterval <= 0 || frames <= s.repeatDelay:
		return false
	default:
		return (frames-s.repeatDelay)%s.repeatInterval == 0
	}
}

func heldFrames(keys []ebiten.Key) int {
	held := 0
	for _, k := range keys {
		if d := inpututil.KeyPressDuration(k); d > held {
			held = d
		}
	}
	return held
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

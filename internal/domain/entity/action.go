package entity

// Action is an abstract input symbol. Front-ends translate raw keyboard,
// mouse, touch or encoder events into actions; the simulation never sees the
// raw events.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionHook
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionHook:
		return "Hook"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-letter code used by replay files.
func (a Action) Symbol() byte {
	switch a {
	case ActionLeft:
		return 'L'
	case ActionRight:
		return 'R'
	case ActionHook:
		return 'H'
	default:
		return 'N'
	}
}

// ActionFromSymbol parses a replay symbol. Unknown symbols map to ActionNone.
func ActionFromSymbol(b byte) Action {
	switch b {
	case 'L':
		return ActionLeft
	case 'R':
		return ActionRight
	case 'H':
		return ActionHook
	default:
		return ActionNone
	}
}

// IsSome reports whether the action does something.
func (a Action) IsSome() bool {
	return a != ActionNone
}

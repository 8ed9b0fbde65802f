package types

// Action is the logical command decoded from one input chunk
type Action int

const (
	// ActionNone is produced for any input the control does not recognise
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionToggle
	ActionSubmit
)

func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionToggle:
		return "toggle"
	case ActionSubmit:
		return "submit"
	default:
		return "none"
	}
}

// IsNavigation reports whether the action moves the highlight
func (a Action) IsNavigation() bool {
	return a == ActionMoveUp || a == ActionMoveDown
}
